package handler

import (
	"errors"
	"net/http"

	"jewelstore/internal/domain"
	httpserver "jewelstore/internal/platform/http"

	"github.com/sirupsen/logrus"
)

type GetAllResponse struct {
	Metals map[string][]RateResponse `json:"metals"`
}

// GetAll godoc
// @Summary Latest rates of all metals
// @Tags Rates
// @Produce json
// @Success 200 {object} GetAllResponse
// @Failure 404 {object} httpserver.ErrorResponse
// @Failure 500 {object} httpserver.ErrorResponse
// @Router /rates/all [get]
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	all, err := h.service.All(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrRateNotFound) {
			httpserver.WriteError(w, http.StatusNotFound, "no rates available")
			return
		}
		msg := "ups, couldn't get rates this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "GetAll"}).Error(msg)
		httpserver.WriteError(w, http.StatusInternalServerError, msg)
		return
	}

	res := GetAllResponse{Metals: make(map[string][]RateResponse, len(all))}
	for _, m := range all {
		res.Metals[string(m.Metal)] = toRateResponses(m.Rates)
	}
	httpserver.WriteJSON(w, http.StatusOK, res)
}
