package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
)

const otpSuccess = "Success"

// OTPClient talks to the 2factor SMS API.
type OTPClient struct {
	http     *http.Client
	baseURL  string
	apiKey   string
	template string
}

type otpResponse struct {
	Status  string `json:"Status"`
	Details string `json:"Details"`
}

// Send asks the provider to generate and deliver an OTP and returns its session id.
func (c *OTPClient) Send(ctx context.Context, phone string) (string, error) {
	u, err := url.JoinPath(c.baseURL, c.apiKey, "SMS", phone, "AUTOGEN3", c.template)
	if err != nil {
		return "", fmt.Errorf("failed to build OTP send URL: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create OTP send request: %w", err)
	}

	var body otpResponse
	if err = doJSON(c.http, req, &body, "otp send"); err != nil {
		return "", err
	}
	if body.Status != otpSuccess || body.Details == "" {
		return "", fmt.Errorf("otp provider returned %q: %s", body.Status, body.Details)
	}
	return body.Details, nil
}

// Verify reports whether otp matches the session. A rejected code is not an error.
func (c *OTPClient) Verify(ctx context.Context, sessionID, otp string) (bool, error) {
	u, err := url.JoinPath(c.baseURL, c.apiKey, "SMS", "VERIFY", sessionID, otp)
	if err != nil {
		return false, fmt.Errorf("failed to build OTP verify URL: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false, fmt.Errorf("failed to create OTP verify request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false, fmt.Errorf("failed to execute OTP verify request: %w", err)
	}
	defer resp.Body.Close()

	// The provider answers mismatches with a 4xx and a regular JSON body.
	var body otpResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		if resp.StatusCode >= 300 {
			return false, fmt.Errorf("unexpected status code %d for otp verify: %s", resp.StatusCode, resp.Status)
		}
		return false, fmt.Errorf("failed to decode response for otp verify: %w", err)
	}
	if body.Status == "" {
		return false, errors.New("otp provider returned an empty status")
	}
	return body.Status == otpSuccess, nil
}

func NewOTPClient(httpClient *http.Client, baseURL, apiKey, template string) *OTPClient {
	return &OTPClient{http: httpClient, baseURL: baseURL, apiKey: apiKey, template: template}
}
