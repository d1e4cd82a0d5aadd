package handler

import (
	"errors"
	"net/http"

	"jewelstore/internal/analytics"
	"jewelstore/internal/domain"
	httpserver "jewelstore/internal/platform/http"

	"github.com/sirupsen/logrus"
)

// RecordSale godoc
// @Summary Record a sale
// @Tags Analytics
// @Accept json
// @Produce json
// @Param request body SaleRequest true "Sale"
// @Success 201 {object} SaleResponse
// @Failure 400 {object} httpserver.ErrorResponse
// @Failure 500 {object} httpserver.ErrorResponse
// @Router /analytics/sale [post]
func (h *Handler) RecordSale(w http.ResponseWriter, r *http.Request) {
	var req SaleRequest
	if err := httpserver.DecodeJSON(r, &req); err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sale, err := h.service.RecordSale(r.Context(), req.input())
	if err != nil {
		switch {
		case analytics.IsValidation(err):
			httpserver.WriteError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrUserNotFound):
			httpserver.WriteError(w, http.StatusBadRequest, "unknown user")
		default:
			msg := "ups, couldn't record sale this time"
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "RecordSale", "user": req.UserID}).Error(msg)
			httpserver.WriteError(w, http.StatusInternalServerError, msg)
		}
		return
	}
	httpserver.WriteJSON(w, http.StatusCreated, toSaleResponse(sale, nil))
}

// SaveAbandonedCart godoc
// @Summary Save the cart of a browser session
// @Description Creates or replaces the cart of the session; a known user is kept when the update is anonymous
// @Tags Analytics
// @Accept json
// @Produce json
// @Param request body CartRequest true "Cart"
// @Success 200 {object} CartResponse
// @Failure 400 {object} httpserver.ErrorResponse
// @Failure 500 {object} httpserver.ErrorResponse
// @Router /analytics/abandoned [post]
func (h *Handler) SaveAbandonedCart(w http.ResponseWriter, r *http.Request) {
	var req CartRequest
	if err := httpserver.DecodeJSON(r, &req); err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cart, err := h.service.SaveAbandonedCart(r.Context(), req.input())
	if err != nil {
		switch {
		case analytics.IsValidation(err):
			httpserver.WriteError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrUserNotFound):
			httpserver.WriteError(w, http.StatusBadRequest, "unknown user")
		default:
			msg := "ups, couldn't save abandoned cart this time"
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "SaveAbandonedCart", "session": req.SessionID}).Error(msg)
			httpserver.WriteError(w, http.StatusInternalServerError, msg)
		}
		return
	}
	httpserver.WriteJSON(w, http.StatusOK, toCartResponse(cart, nil, nil))
}

// GetSummary godoc
// @Summary Sales and abandoned cart overview
// @Description Totals plus the ten most recent sales and abandoned carts
// @Tags Analytics
// @Produce json
// @Success 200 {object} SummaryResponse
// @Failure 500 {object} httpserver.ErrorResponse
// @Router /analytics/summary [get]
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.Summary(r.Context())
	if err != nil {
		msg := "ups, couldn't build analytics this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetSummary"}).Error(msg)
		httpserver.WriteError(w, http.StatusInternalServerError, msg)
		return
	}
	httpserver.WriteJSON(w, http.StatusOK, toSummaryResponse(summary))
}
