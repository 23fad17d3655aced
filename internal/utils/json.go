package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"gib2sgf/internal/errors"
)

// DecodeJSONRequest decodes the body of r into dst, rejecting unknown fields
// and bodies larger than limit bytes.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, dst interface{}, limit int64) error {
	body := http.MaxBytesReader(w, r.Body, limit)
	defer body.Close()

	decoder := json.NewDecoder(body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrInvalidJSON, err)
	}
	if decoder.More() {
		return fmt.Errorf("%w: trailing data", errors.ErrInvalidJSON)
	}
	return nil
}

// ReadRequestBody reads at most limit bytes of the body of r.
func ReadRequestBody(w http.ResponseWriter, r *http.Request, limit int64) ([]byte, error) {
	body := http.MaxBytesReader(w, r.Body, limit)
	defer body.Close()
	return io.ReadAll(body)
}
