package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/actuallystonmai/basket-gateway/internal/domain"
	"github.com/actuallystonmai/basket-gateway/internal/validation"
)

const maxBodyBytes = 1 << 20

// decodeJSON reads a JSON body into T and validates it. An empty body
// yields the zero T.
func decodeJSON[T any](r *http.Request) (T, error) {
	var zero, dst T
	if r.Body == nil {
		return zero, nil
	}
	defer r.Body.Close()

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(&dst); err != nil {
		if errors.Is(err, io.EOF) {
			return zero, nil
		}
		return zero, domain.NewClientError("Invalid JSON body: %v", err)
	}
	if dec.More() {
		return zero, domain.NewClientError("Invalid JSON body: unexpected trailing data")
	}

	if err := validation.Struct(dst); err != nil {
		return zero, err
	}
	return dst, nil
}

// decodeArray accepts only a non-empty JSON array
func decodeArray[T any](raw json.RawMessage) ([]T, bool) {
	var out []T
	if len(raw) == 0 || raw[0] != '[' {
		return nil, false
	}
	if err := json.Unmarshal(raw, &out); err != nil || len(out) == 0 {
		return nil, false
	}
	return out, true
}
