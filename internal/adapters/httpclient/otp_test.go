package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOTPClient_Send(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"Status":"Success","Details":"sess-42"}`))
	}))
	t.Cleanup(srv.Close)

	c := NewOTPClient(srv.Client(), srv.URL+"/API/V1", "key", "LOGIN")

	session, err := c.Send(context.Background(), "9876543210")
	require.NoError(t, err)
	require.Equal(t, "sess-42", session)
	require.Equal(t, "/API/V1/key/SMS/9876543210/AUTOGEN3/LOGIN", gotPath)
}

func TestOTPClient_Send_ProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Status":"Error","Details":"Invalid API key"}`))
	}))
	t.Cleanup(srv.Close)

	c := NewOTPClient(srv.Client(), srv.URL, "bad", "LOGIN")

	_, err := c.Send(context.Background(), "9876543210")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Invalid API key")
}

func TestOTPClient_Verify(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   bool
		errMsg string
	}{
		{name: "matched", status: http.StatusOK, body: `{"Status":"Success","Details":"OTP Matched"}`, want: true},
		{name: "mismatch 200", status: http.StatusOK, body: `{"Status":"Error","Details":"OTP Mismatch"}`},
		{name: "mismatch 400", status: http.StatusBadRequest, body: `{"Status":"Error","Details":"OTP Mismatch"}`},
		{name: "gateway down", status: http.StatusBadGateway, body: `<html>`, errMsg: "unexpected status code 502"},
		{name: "garbage", status: http.StatusOK, body: `{`, errMsg: "failed to decode response"},
		{name: "empty status", status: http.StatusOK, body: `{}`, errMsg: "empty status"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gotPath string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			t.Cleanup(srv.Close)

			c := NewOTPClient(srv.Client(), srv.URL, "key", "LOGIN")

			ok, err := c.Verify(context.Background(), "sess-42", "123456")
			require.Equal(t, "/key/SMS/VERIFY/sess-42/123456", gotPath)
			if tc.errMsg != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.errMsg)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, ok)
		})
	}
}
