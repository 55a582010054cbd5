package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/niksmo/ecom-admin/internal/core/port"
)

type AuthHandler struct {
	auth port.AuthService
}

func RegisterAuth(mux *http.ServeMux, g *FormGuard, auth port.AuthService) {
	h := AuthHandler{auth}
	mux.HandleFunc("GET /healthz", h.Health)
	mux.HandleFunc("GET /v1/session", h.Session)
	mux.HandleFunc("POST /v1/auth/login", g.Single(form("login"), h.Login))
	mux.HandleFunc("POST /v1/auth/register", g.Single(form("register"), h.Register))
	mux.HandleFunc("POST /v1/auth/logout", h.Logout)
}

func (h AuthHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, "ok")
}

func (h AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sessionResponse{h.auth.Authenticated()})
}

func (h AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.Login"
	log := slog.With("op", op)

	var c domain.Credentials
	if err := decodeJSON(w, r, &c); err != nil {
		log.Warn("failed to parse JSON", "err", err)
		writeError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	if err := h.auth.Login(r.Context(), c); err != nil {
		writeFailure(w, log, err, "Could not sign in")
		return
	}
	writeMessage(w, "Signed in.")
}

func (h AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.Register"
	log := slog.With("op", op)

	var reg domain.Registration
	if err := decodeJSON(w, r, &reg); err != nil {
		log.Warn("failed to parse JSON", "err", err)
		writeError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	if err := h.auth.Register(r.Context(), reg); err != nil {
		writeFailure(w, log, err, "Could not create the account")
		return
	}
	writeMessage(w, "Account created, you can sign in now.")
}

func (h AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	const op = "AuthHandler.Logout"
	log := slog.With("op", op)

	if err := h.auth.Logout(r.Context()); err != nil {
		writeFailure(w, log, err, "Could not sign out")
		return
	}
	writeMessage(w, "Signed out.")
}
