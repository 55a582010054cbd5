package httphandler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/niksmo/ecom-admin/internal/core/port"
)

type CategoriesHandler struct {
	categories port.CategoriesService
}

func RegisterCategories(mux *http.ServeMux, g *FormGuard, categories port.CategoriesService) {
	h := CategoriesHandler{categories}
	mux.HandleFunc("GET /v1/categories", h.List)
	mux.HandleFunc("GET /v1/categories/options", h.Options)
	mux.HandleFunc("POST /v1/categories", g.Single(form("category-create"), h.Create))
	mux.HandleFunc(
		"DELETE /v1/categories/{id}",
		g.Single(formOf("category-delete", "id"), h.Delete),
	)
	mux.HandleFunc(
		"POST /v1/categories/{id}/products/{productId}",
		g.Single(formOf("category-products", "id"), h.AddProduct),
	)
	mux.HandleFunc(
		"DELETE /v1/categories/{id}/products/{productId}",
		g.Single(formOf("category-products", "id"), h.RemoveProduct),
	)
}

func (h CategoriesHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "CategoriesHandler.List"
	log := slog.With("op", op)

	cats, err := h.categories.ListCategories(r.Context())
	if err != nil {
		writeFailure(w, log, err, "Could not load the categories")
		return
	}
	if cats == nil {
		cats = []domain.Category{}
	}
	writeJSON(w, http.StatusOK, cats)
}

// Options never fails, a broken load gives an empty list.
func (h CategoriesHandler) Options(w http.ResponseWriter, r *http.Request) {
	cats := h.categories.CategoryOptions(r.Context())
	if cats == nil {
		cats = []domain.Category{}
	}
	writeJSON(w, http.StatusOK, cats)
}

func (h CategoriesHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "CategoriesHandler.Create"
	log := slog.With("op", op)

	var nc domain.NewCategory
	if err := decodeJSON(w, r, &nc); err != nil {
		log.Warn("failed to parse JSON", "err", err)
		writeError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	c, err := h.categories.CreateCategory(r.Context(), nc)
	if err != nil {
		writeFailure(w, log, err, "Could not create the category")
		return
	}
	writeJSON(w, http.StatusCreated, categoryResponse{
		feedback: feedback{Message: fmt.Sprintf("Created category %q.", c.Name)},
		Category: c,
	})
}

func (h CategoriesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "CategoriesHandler.Delete"
	log := slog.With("op", op)
	const fallback = "Could not delete the category"

	id, err := pathID(r, "id")
	if err != nil {
		writeFailure(w, log, err, fallback)
		return
	}

	if err := h.categories.DeleteCategory(r.Context(), id); err != nil {
		writeFailure(w, log, err, fallback)
		return
	}
	writeMessage(w, fmt.Sprintf("Category #%d deleted.", id))
}

func (h CategoriesHandler) AddProduct(w http.ResponseWriter, r *http.Request) {
	const op = "CategoriesHandler.AddProduct"
	log := slog.With("op", op)
	const fallback = "Could not add the product to the category"

	categoryID, productID, err := membershipIDs(r)
	if err != nil {
		writeFailure(w, log, err, fallback)
		return
	}

	err = h.categories.AddProductToCategory(r.Context(), categoryID, productID)
	if err != nil {
		writeFailure(w, log, err, fallback)
		return
	}
	writeMessage(w, fmt.Sprintf(
		"Product #%d added to category #%d.", productID, categoryID,
	))
}

func (h CategoriesHandler) RemoveProduct(w http.ResponseWriter, r *http.Request) {
	const op = "CategoriesHandler.RemoveProduct"
	log := slog.With("op", op)
	const fallback = "Could not remove the product from the category"

	categoryID, productID, err := membershipIDs(r)
	if err != nil {
		writeFailure(w, log, err, fallback)
		return
	}

	err = h.categories.RemoveProductFromCategory(r.Context(), categoryID, productID)
	if err != nil {
		writeFailure(w, log, err, fallback)
		return
	}
	writeMessage(w, fmt.Sprintf(
		"Product #%d removed from category #%d.", productID, categoryID,
	))
}

func membershipIDs(r *http.Request) (categoryID, productID int64, err error) {
	if categoryID, err = pathID(r, "id"); err != nil {
		return 0, 0, err
	}
	if productID, err = pathID(r, "productId"); err != nil {
		return 0, 0, err
	}
	return categoryID, productID, nil
}
