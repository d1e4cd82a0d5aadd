package handler

import (
	"errors"
	"net/http"

	"jewelstore/internal/domain"
	httpserver "jewelstore/internal/platform/http"
	"jewelstore/internal/rate"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type OpeningRate struct {
	RatePerGram decimal.Decimal `json:"rate_per_gram" swaggertype:"string" example:"6417.5"`
	RatePerPoun decimal.Decimal `json:"rate_per_poun" swaggertype:"string" example:"51340"`
}

type TrendDay struct {
	Date    string                                `json:"date" example:"10-03-2025"`
	Rates   map[string]map[string]decimal.Decimal `json:"rates" swaggertype:"object"`
	Opening map[string]OpeningRate                `json:"opening"`
}

func toTrendDays(days []rate.DailyTrend) []TrendDay {
	res := make([]TrendDay, 0, len(days))
	for _, d := range days {
		day := TrendDay{
			Date:    d.Date,
			Rates:   make(map[string]map[string]decimal.Decimal, len(d.Hourly)),
			Opening: make(map[string]OpeningRate, len(d.Opening)),
		}
		for hour, byKarat := range d.Hourly {
			rates := make(map[string]decimal.Decimal, len(byKarat))
			for karat, v := range byKarat {
				rates[string(karat)] = v
			}
			day.Rates[hour] = rates
		}
		for karat, rec := range d.Opening {
			day.Opening[string(karat)] = OpeningRate{RatePerGram: rec.RatePerGram, RatePerPoun: rec.RatePerPoun()}
		}
		res = append(res, day)
	}
	return res
}

// GetTrends godoc
// @Summary Hourly rate trends of a metal
// @Description Last 7 days grouped by day and hour, oldest day first
// @Tags Rates
// @Produce json
// @Param metal path string true "Metal" Enums(gold, silver, platinum)
// @Success 200 {array} TrendDay
// @Failure 400 {object} httpserver.ErrorResponse
// @Failure 404 {object} httpserver.ErrorResponse
// @Failure 500 {object} httpserver.ErrorResponse
// @Router /rates/{metal}/trends [get]
func (h *Handler) GetTrends(w http.ResponseWriter, r *http.Request) {
	metal, err := h.validator.ValidateMetal(chi.URLParam(r, "metal"))
	if err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	days, err := h.service.Trends(r.Context(), metal)
	if err != nil {
		if errors.Is(err, domain.ErrRateNotFound) {
			httpserver.WriteError(w, http.StatusNotFound, "no "+string(metal)+" rate data found")
			return
		}
		msg := "ups, couldn't get rate trends this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetTrends", "metal": metal}).Error(msg)
		httpserver.WriteError(w, http.StatusInternalServerError, msg)
		return
	}

	httpserver.WriteJSON(w, http.StatusOK, toTrendDays(days))
}

// GetAllTrends godoc
// @Summary Hourly rate trends of all metals
// @Tags Rates
// @Produce json
// @Success 200 {object} map[string][]TrendDay
// @Failure 404 {object} httpserver.ErrorResponse
// @Failure 500 {object} httpserver.ErrorResponse
// @Router /rates/all-trends [get]
func (h *Handler) GetAllTrends(w http.ResponseWriter, r *http.Request) {
	all, err := h.service.AllTrends(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrRateNotFound) {
			httpserver.WriteError(w, http.StatusNotFound, "no rate data found")
			return
		}
		msg := "ups, couldn't get rate trends this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetAllTrends"}).Error(msg)
		httpserver.WriteError(w, http.StatusInternalServerError, msg)
		return
	}

	res := make(map[string][]TrendDay, len(all))
	for _, m := range all {
		res[string(m.Metal)] = toTrendDays(m.Days)
	}
	httpserver.WriteJSON(w, http.StatusOK, res)
}
