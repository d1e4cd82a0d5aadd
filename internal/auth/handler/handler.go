package handler

import (
	"context"
	"time"

	"jewelstore/internal/auth"
	"jewelstore/internal/domain"

	"github.com/google/uuid"
)

type Service interface {
	SendOTP(ctx context.Context, phone string) (string, error)
	VerifyOTP(ctx context.Context, in auth.VerifyInput) (auth.Result, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, in auth.UserInput) (domain.User, error)
}

type Handler struct {
	service Service
	tokens  TokenVerifier
}

type SendOTPRequest struct {
	Phone string `json:"phone" example:"9876543210"`
}

type SendOTPResponse struct {
	SessionID string `json:"session_id" example:"cf735a45-abc3-4d34-9a5e-000000000000"`
}

type VerifyOTPRequest struct {
	SessionID string `json:"session_id" example:"cf735a45-abc3-4d34-9a5e-000000000000"`
	OTP       string `json:"otp" example:"123456"`
	Phone     string `json:"phone" example:"9876543210"`
}

// VerifyOTPResponse tells the client to go home when the phone is registered, or to
// collect the customer's details otherwise.
type VerifyOTPResponse struct {
	Message        string       `json:"message" example:"OTP verified successfully"`
	Token          string       `json:"token"`
	RedirectToHome bool         `json:"redirect_to_home"`
	User           UserResponse `json:"user"`
}

type UserRequest struct {
	Phone   string `json:"phone" example:"9876543210"`
	Name    string `json:"name" example:"Asha"`
	Email   string `json:"email" example:"asha@example.com"`
	Address string `json:"address" example:"12 MG Road, Bengaluru"`
	Pincode string `json:"pincode" example:"560001"`
}

type UserResponse struct {
	ID        *uuid.UUID `json:"id,omitempty"`
	Phone     string     `json:"phone"`
	Name      string     `json:"name,omitempty"`
	Email     string     `json:"email,omitempty"`
	Address   string     `json:"address,omitempty"`
	Pincode   string     `json:"pincode,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

func toUserResponse(u domain.User) UserResponse {
	return UserResponse{
		ID:        &u.ID,
		Phone:     u.Phone,
		Name:      u.Name,
		Email:     u.Email,
		Address:   u.Address,
		Pincode:   u.Pincode,
		CreatedAt: &u.CreatedAt,
	}
}

func NewAuthHandler(service Service, tokens TokenVerifier) *Handler {
	return &Handler{service: service, tokens: tokens}
}
