package handler

import (
	"errors"
	"net/http"

	"jewelstore/internal/category"
	"jewelstore/internal/domain"
	httpserver "jewelstore/internal/platform/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// UpdateItem godoc
// @Summary Update a tile
// @Description Only the fields that are sent are changed; a new image replaces the old one
// @Tags Categories
// @Accept mpfd
// @Accept json
// @Produce json
// @Param categoryId path string true "Category id"
// @Param itemId path string true "Item id"
// @Param link formData string false "Tile link"
// @Param description formData string false "Tile description"
// @Param label formData string false "Tile label"
// @Param background formData string false "Background class"
// @Param height_class formData string false "Height class"
// @Param image formData file false "Tile image"
// @Success 200 {object} CategoryResponse
// @Failure 400 {object} httpserver.ErrorResponse
// @Failure 404 {object} httpserver.ErrorResponse
// @Failure 500 {object} httpserver.ErrorResponse
// @Router /categories/{categoryId}/items/{itemId} [put]
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	categoryID, itemID, ok := itemPath(w, r)
	if !ok {
		return
	}
	req, image, err := readItemRequest(r)
	if err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	defer closeImage(image)

	c, err := h.service.UpdateItem(r.Context(), categoryID, itemID, req.item(), image)
	if err != nil {
		if category.IsValidation(err) {
			httpserver.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		if writeItemNotFound(w, err) {
			return
		}
		msg := "ups, couldn't update category item this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "UpdateItem", "category": categoryID, "item": itemID}).Error(msg)
		httpserver.WriteError(w, http.StatusInternalServerError, msg)
		return
	}
	httpserver.WriteJSON(w, http.StatusOK, toCategoryResponse(c))
}

// DeleteItem godoc
// @Summary Delete a tile
// @Tags Categories
// @Produce json
// @Param categoryId path string true "Category id"
// @Param itemId path string true "Item id"
// @Success 200 {object} CategoryResponse
// @Failure 400 {object} httpserver.ErrorResponse
// @Failure 404 {object} httpserver.ErrorResponse
// @Failure 500 {object} httpserver.ErrorResponse
// @Router /categories/{categoryId}/items/{itemId} [delete]
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	categoryID, itemID, ok := itemPath(w, r)
	if !ok {
		return
	}
	c, err := h.service.DeleteItem(r.Context(), categoryID, itemID)
	if err != nil {
		if writeItemNotFound(w, err) {
			return
		}
		msg := "ups, couldn't delete category item this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "DeleteItem", "category": categoryID, "item": itemID}).Error(msg)
		httpserver.WriteError(w, http.StatusInternalServerError, msg)
		return
	}
	httpserver.WriteJSON(w, http.StatusOK, toCategoryResponse(c))
}

func itemPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	categoryID, err := uuid.Parse(chi.URLParam(r, "categoryId"))
	if err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, "invalid category id")
		return uuid.Nil, uuid.Nil, false
	}
	itemID, err := uuid.Parse(chi.URLParam(r, "itemId"))
	if err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, "invalid item id")
		return uuid.Nil, uuid.Nil, false
	}
	return categoryID, itemID, true
}

func writeItemNotFound(w http.ResponseWriter, err error) bool {
	switch {
	case errors.Is(err, domain.ErrCategoryNotFound):
		httpserver.WriteError(w, http.StatusNotFound, "category column not found")
	case errors.Is(err, domain.ErrCategoryItemNotFound):
		httpserver.WriteError(w, http.StatusNotFound, "category item not found within this column")
	default:
		return false
	}
	return true
}
