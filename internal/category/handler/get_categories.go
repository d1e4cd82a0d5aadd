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

// ListCategories godoc
// @Summary List menu columns
// @Tags Categories
// @Produce json
// @Success 200 {array} CategoryResponse
// @Failure 500 {object} httpserver.ErrorResponse
// @Router /categories [get]
func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.List(r.Context())
	if err != nil {
		msg := "ups, couldn't list categories this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "ListCategories"}).Error(msg)
		httpserver.WriteError(w, http.StatusInternalServerError, msg)
		return
	}
	res := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		res = append(res, toCategoryResponse(c))
	}
	httpserver.WriteJSON(w, http.StatusOK, res)
}

// ListItems godoc
// @Summary List every tile of every column
// @Tags Categories
// @Produce json
// @Success 200 {array} ItemResponse
// @Failure 500 {object} httpserver.ErrorResponse
// @Router /categories/items [get]
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.Items(r.Context())
	if err != nil {
		msg := "ups, couldn't list category items this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "ListItems"}).Error(msg)
		httpserver.WriteError(w, http.StatusInternalServerError, msg)
		return
	}
	res := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		res = append(res, toItemResponse(it))
	}
	httpserver.WriteJSON(w, http.StatusOK, res)
}

// GetCategory godoc
// @Summary Get a menu column
// @Tags Categories
// @Produce json
// @Param id path string true "Category id"
// @Success 200 {object} CategoryResponse
// @Failure 400 {object} httpserver.ErrorResponse
// @Failure 404 {object} httpserver.ErrorResponse
// @Failure 500 {object} httpserver.ErrorResponse
// @Router /categories/{id} [get]
func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, "invalid category id")
		return
	}
	c, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			httpserver.WriteError(w, http.StatusNotFound, "category not found")
			return
		}
		msg := "ups, couldn't get category this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetCategory", "id": id}).Error(msg)
		httpserver.WriteError(w, http.StatusInternalServerError, msg)
		return
	}
	httpserver.WriteJSON(w, http.StatusOK, toCategoryResponse(c))
}
