package handler

import (
	"net/http"

	httpserver "jewelstore/internal/platform/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type RecordRateRequest struct {
	Karat       string          `json:"karat" example:"22k"`
	RatePerGram decimal.Decimal `json:"rate_per_gram" swaggertype:"string" example:"6417.5"`
}

// RecordRate godoc
// @Summary Record a rate
// @Description Append a new rate observation; earlier records stay untouched
// @Tags Rates
// @Accept json
// @Produce json
// @Param metal path string true "Metal" Enums(gold, silver, platinum)
// @Param request body RecordRateRequest true "Karat and rate per gram"
// @Success 201 {object} RateResponse
// @Failure 400 {object} httpserver.ErrorResponse
// @Failure 500 {object} httpserver.ErrorResponse
// @Router /rates/{metal} [post]
func (h *Handler) RecordRate(w http.ResponseWriter, r *http.Request) {
	var req RecordRateRequest
	if err := httpserver.DecodeJSON(r, &req); err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	instrument, err := h.validator.ValidateInstrument(chi.URLParam(r, "metal"), req.Karat)
	if err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err = h.validator.ValidateRate(req.RatePerGram); err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	record, err := h.service.Record(r.Context(), instrument, req.RatePerGram)
	if err != nil {
		msg := "ups, couldn't record rate this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "RecordRate", "instrument": instrument.String()}).Error(msg)
		httpserver.WriteError(w, http.StatusInternalServerError, msg)
		return
	}

	httpserver.WriteJSON(w, http.StatusCreated, toRateResponse(record))
}
