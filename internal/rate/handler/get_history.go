package handler

import (
	"errors"
	"net/http"

	"jewelstore/internal/domain"
	httpserver "jewelstore/internal/platform/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

type HistoryEntry struct {
	Date string `json:"date" example:"2025-03-10"`
	RateResponse
}

// GetHistory godoc
// @Summary Daily rate history
// @Description One rate per day for the trailing week: the latest at or before scheduledTime plus 30 minutes, otherwise the first one after it
// @Tags Rates
// @Produce json
// @Param metal path string true "Metal" Enums(gold, silver, platinum)
// @Param karat path string true "Karat" Enums(24k, 22k, 18k)
// @Param scheduledTime query string false "Daily cutoff, HH:mm" default(13:00)
// @Success 200 {array} HistoryEntry
// @Failure 400 {object} httpserver.ErrorResponse
// @Failure 404 {object} httpserver.ErrorResponse
// @Failure 500 {object} httpserver.ErrorResponse
// @Router /rates/{metal}/history/{karat} [get]
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	instrument, err := h.validator.ValidateInstrument(chi.URLParam(r, "metal"), chi.URLParam(r, "karat"))
	if err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	cutoff, err := h.validator.ParseScheduledTime(r.URL.Query().Get("scheduledTime"), h.defaultCutoff)
	if err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	snapshots, err := h.service.History(r.Context(), instrument, cutoff)
	if err != nil {
		if errors.Is(err, domain.ErrRateNotFound) {
			httpserver.WriteError(w, http.StatusNotFound, "no historical rates found for this karat")
			return
		}
		msg := "ups, couldn't get rate history this time"
		logrus.WithError(err).WithFields(logrus.Fields{
			"handler":    "GetHistory",
			"instrument": instrument.String(),
			"cutoff":     cutoff.String(),
		}).Error(msg)
		httpserver.WriteError(w, http.StatusInternalServerError, msg)
		return
	}

	res := make([]HistoryEntry, 0, len(snapshots))
	for _, s := range snapshots {
		res = append(res, HistoryEntry{Date: s.Day.Format("2006-01-02"), RateResponse: toRateResponse(s.Record)})
	}
	httpserver.WriteJSON(w, http.StatusOK, res)
}
