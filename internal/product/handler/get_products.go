package handler

import (
	"errors"
	"net/http"

	"jewelstore/internal/domain"
	httpserver "jewelstore/internal/platform/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ListProducts godoc
// @Summary List products
// @Description Every product priced from the current rates; products without a rate carry an error instead of costs
// @Tags Products
// @Produce json
// @Success 200 {array} ProductResponse
// @Failure 500 {object} httpserver.ErrorResponse
// @Router /products [get]
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.List(r.Context())
	if err != nil {
		msg := "ups, couldn't list products this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "ListProducts"}).Error(msg)
		httpserver.WriteError(w, http.StatusInternalServerError, msg)
		return
	}
	httpserver.WriteJSON(w, http.StatusOK, toProductResponses(products))
}

// GetProduct godoc
// @Summary Get a product or the products of a category
// @Description Returns the product with this id; when none exists the id is treated as a category id and the category's products are returned as an array
// @Tags Products
// @Produce json
// @Param id path string true "Product or category id"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} httpserver.ErrorResponse
// @Failure 404 {object} httpserver.ErrorResponse
// @Failure 500 {object} httpserver.ErrorResponse
// @Router /products/{id} [get]
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	lookup, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			httpserver.WriteError(w, http.StatusNotFound, "no products found with this id")
			return
		}
		msg := "ups, couldn't get product this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetProduct", "id": id}).Error(msg)
		httpserver.WriteError(w, http.StatusInternalServerError, msg)
		return
	}

	if lookup.Product != nil {
		httpserver.WriteJSON(w, http.StatusOK, toProductResponse(*lookup.Product))
		return
	}
	httpserver.WriteJSON(w, http.StatusOK, toProductResponses(lookup.InCategory))
}

// DeleteProduct godoc
// @Summary Delete a product
// @Tags Products
// @Produce json
// @Param id path string true "Product id"
// @Success 200 {object} httpserver.MessageResponse
// @Failure 400 {object} httpserver.ErrorResponse
// @Failure 404 {object} httpserver.ErrorResponse
// @Failure 500 {object} httpserver.ErrorResponse
// @Router /products/{id} [delete]
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	if err = h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			httpserver.WriteError(w, http.StatusNotFound, "product not found")
			return
		}
		msg := "ups, couldn't delete product this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "DeleteProduct", "id": id}).Error(msg)
		httpserver.WriteError(w, http.StatusInternalServerError, msg)
		return
	}
	httpserver.WriteJSON(w, http.StatusOK, httpserver.MessageResponse{Message: "product deleted"})
}
