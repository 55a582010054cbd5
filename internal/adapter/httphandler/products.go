package httphandler

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"strings"

	"github.com/niksmo/ecom-admin/internal/core/domain"
	"github.com/niksmo/ecom-admin/internal/core/port"
	"github.com/niksmo/ecom-admin/internal/core/service"
	"github.com/niksmo/ecom-admin/pkg/currency"
)

const (
	maxProductForm   = 2 * domain.MaxImageSize
	maxFormMemory    = 1 << 20
	msgInvalidForm   = "invalid form data"
	fallbackCreating = "Could not create the product"
)

type ProductsHandler struct {
	products port.ProductsService
}

func RegisterProducts(mux *http.ServeMux, g *FormGuard, products port.ProductsService) {
	h := ProductsHandler{products}
	mux.HandleFunc("GET /v1/products", h.List)
	mux.HandleFunc("POST /v1/products", g.Single(form("product-create"), h.Create))
	mux.HandleFunc(
		"PATCH /v1/products/{id}",
		g.Single(formOf("product-edit", "id"), h.Update),
	)
	mux.HandleFunc(
		"DELETE /v1/products/{id}",
		g.Single(formOf("product-delete", "id"), h.Delete),
	)
	mux.HandleFunc("POST /v1/products/batch", g.Single(form("batch"), h.SubmitBatch))
	mux.HandleFunc("POST /v1/products/batch/items", h.AddBatchItem)
}

func (h ProductsHandler) SubmitBatch(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.SubmitBatch"
	log := slog.With("op", op)

	var req batchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Warn("failed to parse JSON", "err", err)
		writeError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	res, err := h.products.SubmitBatch(r.Context(), req.Payload)
	if err != nil {
		writeFailure(w, log, err, "Could not create the products")
		return
	}

	total := currency.FormatVND(res.TotalPrice)
	writeJSON(w, http.StatusOK, batchResponse{
		feedback: feedback{
			Message: fmt.Sprintf("Created %d products worth %s.", res.Created, total),
		},
		Created:        res.Created,
		TotalPrice:     res.TotalPrice,
		TotalPriceText: total,
	})
}

// AddBatchItem appends a typed product to the batch payload. The payload
// comes back unchanged when the item is rejected.
func (h ProductsHandler) AddBatchItem(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.AddBatchItem"
	log := slog.With("op", op)

	var req batchItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Warn("failed to parse JSON", "err", err)
		writeError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	payload, err := h.products.AddManualProduct(req.Payload, req.Item)
	if err != nil {
		status := statusFor(err)
		log.Warn("item rejected", "status", status, "err", err)
		writeJSON(w, status, batchItemResponse{
			feedback: feedback{Error: service.Message(err, "Could not add the product")},
			Payload:  req.Payload,
		})
		return
	}

	name := strings.TrimSpace(req.Item.Name)
	writeJSON(w, http.StatusOK, batchItemResponse{
		feedback: feedback{Message: fmt.Sprintf("Added %q to the list.", name)},
		Payload:  payload,
	})
}

func (h ProductsHandler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.Create"
	log := slog.With("op", op)

	r.Body = http.MaxBytesReader(w, r.Body, maxProductForm)
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, domain.ErrImageTooLarge.Error())
			return
		}
		log.Warn("failed to parse form", "err", err)
		writeError(w, http.StatusBadRequest, msgInvalidForm)
		return
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	f := domain.ManualProductForm{
		Name:        r.FormValue("name"),
		Price:       r.FormValue("price"),
		Description: r.FormValue("description"),
		Rating:      r.FormValue("rating"),
		ReviewCount: r.FormValue("reviewCount"),
		Sizes:       r.FormValue("sizes"),
		Colors:      r.FormValue("colors"),
		Quantity:    r.FormValue("quantity"),
	}
	categoryID, err := optionalID(r.FormValue("categoryId"))
	if err != nil {
		writeFailure(w, log, err, fallbackCreating)
		return
	}

	img, err := readImage(r)
	if err != nil {
		log.Warn("failed to read image", "err", err)
		writeError(w, http.StatusBadRequest, msgInvalidForm)
		return
	}

	if err := h.products.CreateProduct(r.Context(), f, img, categoryID); err != nil {
		writeFailure(w, log, err, fallbackCreating)
		return
	}
	writeMessage(w, fmt.Sprintf("Created product %q.", strings.TrimSpace(f.Name)))
}

// readImage returns the uploaded "image" file. A missing file gives an
// empty image. The declared type wins over a sniffed one.
func readImage(r *http.Request) (domain.Image, error) {
	file, hdr, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return domain.Image{}, nil
	}
	if err != nil {
		return domain.Image{}, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, domain.MaxImageSize+1))
	if err != nil {
		return domain.Image{}, err
	}

	ct := hdr.Header.Get("Content-Type")
	if ct == "" || ct == "application/octet-stream" {
		ct = http.DetectContentType(data)
	}
	if mediaType, _, err := mime.ParseMediaType(ct); err == nil {
		ct = mediaType
	}
	return domain.Image{ContentType: ct, Data: data}, nil
}

func (h ProductsHandler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.Update"
	log := slog.With("op", op)
	const fallback = "Could not update the product"

	id, err := pathID(r, "id")
	if err != nil {
		writeFailure(w, log, err, fallback)
		return
	}

	var patch domain.ProductPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		log.Warn("failed to parse JSON", "err", err)
		writeError(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	if err := h.products.UpdateProduct(r.Context(), id, patch); err != nil {
		writeFailure(w, log, err, fallback)
		return
	}
	writeMessage(w, fmt.Sprintf("Product #%d updated.", id))
}

func (h ProductsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.Delete"
	log := slog.With("op", op)
	const fallback = "Could not delete the product"

	id, err := pathID(r, "id")
	if err != nil {
		writeFailure(w, log, err, fallback)
		return
	}

	if err := h.products.DeleteProduct(r.Context(), id); err != nil {
		writeFailure(w, log, err, fallback)
		return
	}
	writeMessage(w, fmt.Sprintf("Product #%d deleted.", id))
}

func (h ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.List"
	log := slog.With("op", op)
	const fallback = "Could not load the products"

	categoryID, err := optionalID(r.URL.Query().Get("categoryId"))
	if err != nil {
		writeFailure(w, log, err, fallback)
		return
	}

	l, err := h.products.ListProducts(r.Context(), categoryID)
	if err != nil {
		writeFailure(w, log, err, fallback)
		return
	}
	writeJSON(w, http.StatusOK, l)
}
