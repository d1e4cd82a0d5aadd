package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jewelstore/internal/adapters"
	"jewelstore/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrPhoneRequired        = errors.New("phone number is required")
	ErrVerifyFieldsRequired = errors.New("session id, otp and phone are required")
	ErrUserFieldsRequired   = errors.New("missing required fields")
	ErrInvalidOTP           = errors.New("invalid otp")
)

// IsValidation reports whether err is caused by the caller's input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrPhoneRequired) ||
		errors.Is(err, ErrVerifyFieldsRequired) ||
		errors.Is(err, ErrUserFieldsRequired)
}

type VerifyInput struct {
	SessionID string
	OTP       string
	Phone     string
}

// Result of a successful OTP check. User is nil when the phone is not registered.
type Result struct {
	Token string
	Phone string
	User  *domain.User
}

func (r Result) Registered() bool {
	return r.User != nil
}

type UserInput struct {
	Phone   string
	Name    string
	Email   string
	Address string
	Pincode string
}

type Service struct {
	otp    adapters.OTPClient
	users  adapters.UserRepository
	tokens *TokenIssuer
	now    func() time.Time
}

func (s *Service) SendOTP(ctx context.Context, phone string) (string, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return "", ErrPhoneRequired
	}
	sessionID, err := s.otp.Send(ctx, phone)
	if err != nil {
		return "", fmt.Errorf("failed to send otp: %w", err)
	}
	return sessionID, nil
}

func (s *Service) VerifyOTP(ctx context.Context, in VerifyInput) (Result, error) {
	in.SessionID = strings.TrimSpace(in.SessionID)
	in.OTP = strings.TrimSpace(in.OTP)
	in.Phone = strings.TrimSpace(in.Phone)
	if in.SessionID == "" || in.OTP == "" || in.Phone == "" {
		return Result{}, ErrVerifyFieldsRequired
	}

	ok, err := s.otp.Verify(ctx, in.SessionID, in.OTP)
	if err != nil {
		return Result{}, fmt.Errorf("failed to verify otp: %w", err)
	}
	if !ok {
		return Result{}, ErrInvalidOTP
	}

	res := Result{Phone: in.Phone}
	subject := in.Phone
	user, err := s.users.GetByPhone(ctx, in.Phone)
	switch {
	case err == nil:
		res.User = &user
		subject = user.ID.String()
	case !errors.Is(err, domain.ErrUserNotFound):
		return Result{}, err
	}

	res.Token, err = s.tokens.Issue(subject)
	if err != nil {
		return Result{}, err
	}
	return res, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// CreateUser registers a customer. Every field is required and phone numbers are unique.
func (s *Service) CreateUser(ctx context.Context, in UserInput) (domain.User, error) {
	u := domain.User{
		Phone:   strings.TrimSpace(in.Phone),
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.TrimSpace(in.Email),
		Address: strings.TrimSpace(in.Address),
		Pincode: strings.TrimSpace(in.Pincode),
	}
	if u.Phone == "" || u.Name == "" || u.Email == "" || u.Address == "" || u.Pincode == "" {
		return domain.User{}, ErrUserFieldsRequired
	}

	u.ID = uuid.New()
	u.CreatedAt = s.now().UTC()
	if err := s.users.Create(ctx, u); err != nil {
		return domain.User{}, err
	}
	return u, nil
}

func NewService(otp adapters.OTPClient, users adapters.UserRepository, tokens *TokenIssuer) *Service {
	return &Service{otp: otp, users: users, tokens: tokens, now: time.Now}
}
