package handler

import (
	"errors"
	"net/http"

	"jewelstore/internal/auth"
	httpserver "jewelstore/internal/platform/http"

	"github.com/sirupsen/logrus"
)

// SendOTP godoc
// @Summary Send a one-time password by SMS
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body SendOTPRequest true "Phone number"
// @Success 200 {object} SendOTPResponse
// @Failure 400 {object} httpserver.ErrorResponse
// @Failure 500 {object} httpserver.ErrorResponse
// @Router /auth/send-otp [post]
func (h *Handler) SendOTP(w http.ResponseWriter, r *http.Request) {
	var req SendOTPRequest
	if err := httpserver.DecodeJSON(r, &req); err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sessionID, err := h.service.SendOTP(r.Context(), req.Phone)
	if err != nil {
		if auth.IsValidation(err) {
			httpserver.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		msg := "ups, couldn't send otp this time"
		logrus.WithError(err).WithFields(logrus.Fields{"handler": "SendOTP"}).Error(msg)
		httpserver.WriteError(w, http.StatusInternalServerError, msg)
		return
	}
	httpserver.WriteJSON(w, http.StatusOK, SendOTPResponse{SessionID: sessionID})
}

// VerifyOTP godoc
// @Summary Verify a one-time password and issue a login token
// @Description The token subject is the user id for registered customers and the phone number otherwise
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body VerifyOTPRequest true "Session, code and phone"
// @Success 200 {object} VerifyOTPResponse
// @Failure 400 {object} httpserver.ErrorResponse
// @Failure 500 {object} httpserver.ErrorResponse
// @Router /auth/verify-otp [post]
func (h *Handler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	var req VerifyOTPRequest
	if err := httpserver.DecodeJSON(r, &req); err != nil {
		httpserver.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.service.VerifyOTP(r.Context(), auth.VerifyInput{
		SessionID: req.SessionID,
		OTP:       req.OTP,
		Phone:     req.Phone,
	})
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidOTP):
			httpserver.WriteError(w, http.StatusBadRequest, "invalid otp")
		case auth.IsValidation(err):
			httpserver.WriteError(w, http.StatusBadRequest, err.Error())
		default:
			msg := "ups, couldn't verify otp this time"
			logrus.WithError(err).WithFields(logrus.Fields{"handler": "VerifyOTP"}).Error(msg)
			httpserver.WriteError(w, http.StatusInternalServerError, msg)
		}
		return
	}

	if !res.Registered() {
		httpserver.WriteJSON(w, http.StatusOK, VerifyOTPResponse{
			Message: "OTP verified successfully. Please fill in your details.",
			Token:   res.Token,
			User:    UserResponse{Phone: res.Phone},
		})
		return
	}
	httpserver.WriteJSON(w, http.StatusOK, VerifyOTPResponse{
		Message:        "OTP verified successfully",
		Token:          res.Token,
		RedirectToHome: true,
		User:           toUserResponse(*res.User),
	})
}
