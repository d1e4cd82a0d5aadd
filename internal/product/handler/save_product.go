package handler

import (
	"errors"
	"net/http"

	"jewelstore/internal/domain"
	httpserver "jewelstore/internal/platform/http"
	"jewelstore/internal/product"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// CreateProduct godoc
// @Summary Create a product
// @Description Validate the product, price it from the latest rate of its metal and karat, and store it
// @Tags Products
// @Accept json
// @Produce json
// @Param request body ProductRequest true "Product"
// @Success 201 {object} ProductResponse
// @Failure 400 {object} httpserver.ErrorResponse
// @Failure 500 {object} httpserver.ErrorResponse
// @Router /products [post]
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := httpserver.DecodeJSON(r, &req); err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.service.Create(r.Context(), req.toInput())
	if err != nil {
		if status, msg, ok := clientError(err); ok {
			httpserver.WriteError(w, status, msg)
			return
		}
		msg := "ups, couldn't create product this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "CreateProduct", "code": req.ProductCode}).Error(msg)
		httpserver.WriteError(w, http.StatusInternalServerError, msg)
		return
	}

	httpserver.WriteJSON(w, http.StatusCreated, toProductResponse(p))
}

// UpdateProduct godoc
// @Summary Update a product
// @Description Replace the product fields and re-price it from the current rate
// @Tags Products
// @Accept json
// @Produce json
// @Param id path string true "Product id"
// @Param request body ProductRequest true "Product"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} httpserver.ErrorResponse
// @Failure 404 {object} httpserver.ErrorResponse
// @Failure 500 {object} httpserver.ErrorResponse
// @Router /products/{id} [put]
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	var req ProductRequest
	if err = httpserver.DecodeJSON(r, &req); err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.service.Update(r.Context(), id, req.toInput())
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			httpserver.WriteError(w, http.StatusNotFound, "product not found")
			return
		}
		if status, msg, ok := clientError(err); ok {
			httpserver.WriteError(w, status, msg)
			return
		}
		msg := "ups, couldn't update product this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "UpdateProduct", "id": id}).Error(msg)
		httpserver.WriteError(w, http.StatusInternalServerError, msg)
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, toProductResponse(p))
}

func clientError(err error) (int, string, bool) {
	switch {
	case errors.Is(err, product.ErrInvalidProduct):
		return http.StatusBadRequest, err.Error(), true
	case errors.Is(err, product.ErrRateNotSet):
		return http.StatusBadRequest, err.Error(), true
	default:
		return 0, "", false
	}
}
