package httphandler

import (
	"net/http"
	"sync"
)

// FormGuard lets a single submission of each form run at a time. A
// second submission while the first is in flight gets 409.
type FormGuard struct {
	mu   sync.Mutex
	busy map[string]struct{}
}

func NewFormGuard() *FormGuard {
	return &FormGuard{busy: make(map[string]struct{})}
}

func (g *FormGuard) acquire(form string) (release func(), ok bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, taken := g.busy[form]; taken {
		return nil, false
	}
	g.busy[form] = struct{}{}
	return func() {
		g.mu.Lock()
		delete(g.busy, form)
		g.mu.Unlock()
	}, true
}

// formKey names the form a request submits.
type formKey func(*http.Request) string

func form(name string) formKey {
	return func(*http.Request) string { return name }
}

// formOf keys the form by a path value, one form per edited entity.
func formOf(name, pathValue string) formKey {
	return func(r *http.Request) string {
		return name + "/" + r.PathValue(pathValue)
	}
}

func (g *FormGuard) Single(key formKey, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		release, ok := g.acquire(key(r))
		if !ok {
			writeError(w, http.StatusConflict, msgFormBusy)
			return
		}
		defer release()
		next(w, r)
	}
}
