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

// CreateCategory godoc
// @Summary Add a tile
// @Description Appends a tile to the column given by id, or creates a new column when id is empty. Accepts multipart form data with an optional image file, or JSON.
// @Tags Categories
// @Accept mpfd
// @Accept json
// @Produce json
// @Param id formData string false "Existing column id"
// @Param column_class formData string false "Column class, required for a new column"
// @Param link formData string true "Tile link"
// @Param description formData string true "Tile description, at most 200 characters"
// @Param label formData string true "Tile label, at most 50 characters"
// @Param background formData string true "Background class"
// @Param height_class formData string true "Height class"
// @Param image formData file false "Tile image"
// @Success 200 {object} CategoryResponse "Tile added to an existing column"
// @Success 201 {object} CategoryResponse "New column created"
// @Failure 400 {object} httpserver.ErrorResponse
// @Failure 404 {object} httpserver.ErrorResponse
// @Failure 500 {object} httpserver.ErrorResponse
// @Router /categories [post]
func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	req, image, err := readItemRequest(r)
	if err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	defer closeImage(image)

	columnID, err := parseOptionalID(req.ID)
	if err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, "invalid category id")
		return
	}

	c, created, err := h.service.Create(r.Context(), category.CreateInput{
		ColumnID:    columnID,
		ColumnClass: req.ColumnClass,
		Item:        req.item(),
		Image:       image,
	})
	if err != nil {
		switch {
		case category.IsValidation(err):
			httpserver.WriteError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrCategoryNotFound):
			httpserver.WriteError(w, http.StatusNotFound, "category not found")
		default:
			msg := "ups, couldn't save category this time"
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "CreateCategory", "id": req.ID}).Error(msg)
			httpserver.WriteError(w, http.StatusInternalServerError, msg)
		}
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	httpserver.WriteJSON(w, status, toCategoryResponse(c))
}

// CreateStyle godoc
// @Summary Create an empty column
// @Tags Categories
// @Accept json
// @Produce json
// @Param request body ColumnRequest true "Column class"
// @Success 201 {object} CategoryResponse
// @Failure 400 {object} httpserver.ErrorResponse
// @Failure 500 {object} httpserver.ErrorResponse
// @Router /categories/style [post]
func (h *Handler) CreateStyle(w http.ResponseWriter, r *http.Request) {
	var req ColumnRequest
	if err := httpserver.DecodeJSON(r, &req); err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	c, err := h.service.CreateStyle(r.Context(), req.ColumnClass)
	if err != nil {
		if category.IsValidation(err) {
			httpserver.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		msg := "ups, couldn't create column this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "CreateStyle"}).Error(msg)
		httpserver.WriteError(w, http.StatusInternalServerError, msg)
		return
	}
	httpserver.WriteJSON(w, http.StatusCreated, toCategoryResponse(c))
}

// UpdateCategory godoc
// @Summary Change a column's class
// @Tags Categories
// @Accept json
// @Produce json
// @Param id path string true "Category id"
// @Param request body ColumnRequest true "Column class"
// @Success 200 {object} CategoryResponse
// @Failure 400 {object} httpserver.ErrorResponse
// @Failure 404 {object} httpserver.ErrorResponse
// @Failure 500 {object} httpserver.ErrorResponse
// @Router /categories/{id} [put]
func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, "invalid category id")
		return
	}
	var req ColumnRequest
	if err = httpserver.DecodeJSON(r, &req); err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.service.UpdateColumn(r.Context(), id, req.ColumnClass)
	if err != nil {
		switch {
		case category.IsValidation(err):
			httpserver.WriteError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrCategoryNotFound):
			httpserver.WriteError(w, http.StatusNotFound, "category not found")
		default:
			msg := "ups, couldn't update category this time"
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "UpdateCategory", "id": id}).Error(msg)
			httpserver.WriteError(w, http.StatusInternalServerError, msg)
		}
		return
	}
	httpserver.WriteJSON(w, http.StatusOK, toCategoryResponse(c))
}

// DeleteCategory godoc
// @Summary Delete a column with its tiles
// @Tags Categories
// @Produce json
// @Param id path string true "Category id"
// @Success 200 {object} httpserver.MessageResponse
// @Failure 400 {object} httpserver.ErrorResponse
// @Failure 404 {object} httpserver.ErrorResponse
// @Failure 500 {object} httpserver.ErrorResponse
// @Router /categories/{id} [delete]
func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, "invalid category id")
		return
	}
	if err = h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			httpserver.WriteError(w, http.StatusNotFound, "category not found")
			return
		}
		msg := "ups, couldn't delete category this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "DeleteCategory", "id": id}).Error(msg)
		httpserver.WriteError(w, http.StatusInternalServerError, msg)
		return
	}
	httpserver.WriteJSON(w, http.StatusOK, httpserver.MessageResponse{Message: "category deleted"})
}
