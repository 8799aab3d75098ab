package handlers

//go:generate mockgen -source=request.go -destination=mock_request.go -package=handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	domainerrors "github.com/sbilibin2017/gw-bookmarker/internal/errors"
)

// RequestValidator checks a decoded request body.
type RequestValidator interface {
	Validate(s any) error
}

// ErrorResponse is the envelope written for every failed request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Error struct {
		// default: Please sign up or log in
		Message string `json:"message"`
		// default: 401
		Status int `json:"status"`
	} `json:"error"`
}

var errInvalidBody = domainerrors.Validation("Invalid request body")

// decodeBody decodes the JSON body into dst and validates it.
func decodeBody(r *http.Request, v RequestValidator, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errInvalidBody.WithCause(err)
	}
	return v.Validate(dst)
}

// VolumeIDField is a volume id that clients may send as a JSON string or number.
type VolumeIDField string

// UnmarshalJSON keeps strings as they are and stores numbers in their literal form.
func (f *VolumeIDField) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = VolumeIDField(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("volume_id must be a string or a number: %w", err)
	}
	*f = VolumeIDField(n.String())
	return nil
}

// idParam parses a numeric chi URL parameter.
func idParam(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.Validation(name + " must be a positive integer")
	}
	return id, nil
}
