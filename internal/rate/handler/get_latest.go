package handler

import (
	"errors"
	"net/http"

	"jewelstore/internal/domain"
	httpserver "jewelstore/internal/platform/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// GetLatest godoc
// @Summary Latest rates of a metal
// @Description Newest rate of every karat of the metal
// @Tags Rates
// @Produce json
// @Param metal path string true "Metal" Enums(gold, silver, platinum)
// @Success 200 {array} RateResponse
// @Failure 400 {object} httpserver.ErrorResponse
// @Failure 404 {object} httpserver.ErrorResponse
// @Failure 500 {object} httpserver.ErrorResponse
// @Router /rates/{metal} [get]
func (h *Handler) GetLatest(w http.ResponseWriter, r *http.Request) {
	metal, err := h.validator.ValidateMetal(chi.URLParam(r, "metal"))
	if err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	records, err := h.service.Latest(r.Context(), metal)
	if err != nil {
		if errors.Is(err, domain.ErrRateNotFound) {
			httpserver.WriteError(w, http.StatusNotFound, "no "+string(metal)+" rates available")
			return
		}
		msg := "ups, couldn't get latest rates this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetLatest", "metal": metal}).Error(msg)
		httpserver.WriteError(w, http.StatusInternalServerError, msg)
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, toRateResponses(records))
}
