package handler

import (
	"errors"
	"net/http"

	"jewelstore/internal/auth"
	"jewelstore/internal/domain"
	httpserver "jewelstore/internal/platform/http"

	"github.com/sirupsen/logrus"
)

// ListUsers godoc
// @Summary List registered customers
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {array} UserResponse
// @Failure 401 {object} httpserver.ErrorResponse
// @Failure 500 {object} httpserver.ErrorResponse
// @Router /auth/users [get]
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		msg := "ups, couldn't list users this time"
		subject, _ := SubjectFromContext(r.Context())
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "ListUsers", "subject": subject}).Error(msg)
		httpserver.WriteError(w, http.StatusInternalServerError, msg)
		return
	}
	res := make([]UserResponse, 0, len(users))
	for _, u := range users {
		res = append(res, toUserResponse(u))
	}
	httpserver.WriteJSON(w, http.StatusOK, res)
}

// CreateUser godoc
// @Summary Register a customer
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body UserRequest true "Customer details, all fields required"
// @Success 201 {object} UserResponse
// @Failure 400 {object} httpserver.ErrorResponse
// @Failure 500 {object} httpserver.ErrorResponse
// @Router /auth/users [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req UserRequest
	if err := httpserver.DecodeJSON(r, &req); err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.service.CreateUser(r.Context(), auth.UserInput(req))
	if err != nil {
		switch {
		case auth.IsValidation(err):
			httpserver.WriteError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrUserExists):
			httpserver.WriteError(w, http.StatusBadRequest, "user already exists")
		default:
			msg := "ups, couldn't create user this time"
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "CreateUser"}).Error(msg)
			httpserver.WriteError(w, http.StatusInternalServerError, msg)
		}
		return
	}
	httpserver.WriteJSON(w, http.StatusCreated, toUserResponse(u))
}
