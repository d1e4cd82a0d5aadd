package httpclient

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// doJSON executes req and decodes a 2xx JSON body into dst.
func doJSON(httpClient *http.Client, req *http.Request, dst any, subject string) error {
	resp, err := httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request for %s: %w", subject, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status code %d for %s: %s", resp.StatusCode, subject, resp.Status)
	}

	if err = json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("failed to decode response for %s: %w", subject, err)
	}
	return nil
}
