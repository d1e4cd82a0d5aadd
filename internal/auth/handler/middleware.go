package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"jewelstore/internal/auth"
	httpserver "jewelstore/internal/platform/http"

	"github.com/sirupsen/logrus"
)

type TokenVerifier interface {
	Subject(token string) (string, error)
}

type subjectKey struct{}

// SubjectFromContext returns the token subject stored by RequireToken.
func SubjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey{}).(string)
	return subject, ok
}

// RequireToken rejects requests without a valid "Authorization: Bearer <token>" header.
func (h *Handler) RequireToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scheme, token, found := strings.Cut(r.Header.Get("Authorization"), " ")
		if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			httpserver.WriteError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}

		subject, err := h.tokens.Subject(strings.TrimSpace(token))
		if err != nil {
			if !errors.Is(err, auth.ErrInvalidToken) {
				logrus.WithError(err).WithFields(logrus.Fields{"handler": "RequireToken"}).Warn("token check failed")
			}
			httpserver.WriteError(w, http.StatusUnauthorized, "invalid or expired token")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), subjectKey{}, subject)))
	})
}
