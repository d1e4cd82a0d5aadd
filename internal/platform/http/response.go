package http

import (
	"encoding/json"
	"errors"
	"net/http"
)

var errTrailingData = errors.New("request body must contain a single JSON object")

type ErrorResponse struct {
	Error string `json:"error" example:"rate not found"`
}

type MessageResponse struct {
	Message string `json:"message" example:"product deleted"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

func WriteError(w http.ResponseWriter, statusCode int, errorMsg string) {
	WriteJSON(w, statusCode, ErrorResponse{Error: errorMsg})
}

// DecodeJSON decodes exactly one JSON value from the request body.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return errTrailingData
	}
	return nil
}
