package handlers

import (
	"encoding/json"
	"net/http"

	"catalog-backend/application/services"
	"catalog-backend/pkg/common"
	"catalog-backend/pkg/errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	service *services.ProductService
	logger  *zap.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *services.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// ListAvailable handles GET /products/available
func (h *ProductHandler) ListAvailable(w http.ResponseWriter, r *http.Request) {
	views, err := h.service.List(r.Context())
	if err != nil {
		h.respondError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, views)
}

// Get handles GET /products/{productID}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")

	view, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.respondError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, view)
}

// Create handles POST /products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreateProductInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		common.RespondMessage(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	view, err := h.service.Create(r.Context(), input)
	if err != nil {
		h.respondError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusCreated, view)
}

// Delete handles DELETE /products/{productID}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, err)
		return
	}

	common.RespondJSON(w, http.StatusOK, map[string]string{"deletedId": id})
}

// respondError maps service errors onto the response shapes the API
// contract promises: {"message": ...} for 4xx, {"error": ...} for 500.
func (h *ProductHandler) respondError(w http.ResponseWriter, err error) {
	appErr := errors.GetAppError(err)
	if appErr != nil {
		switch appErr.Type {
		case errors.ErrorTypeValidation:
			common.RespondMessage(w, http.StatusBadRequest, appErr.Message)
			return
		case errors.ErrorTypeNotFound:
			common.RespondNotFound(w)
			return
		}
	}

	h.logger.Error("Request failed", zap.Error(err))
	message := err.Error()
	if appErr != nil {
		message = appErr.Message
	}
	common.RespondInternalError(w, message)
}
