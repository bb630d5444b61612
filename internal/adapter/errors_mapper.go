package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/promptdeck/promptdeck/internal/app"
)

// mapHTTPError turns a non-2xx response into one of the package sentinels.
//
// The server writes canonical message bodies (internal/app), so the mapping
// is driven by status code with the body disambiguating 400s; no substring
// guessing is needed.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrPermissionDenied, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrDuplicate, body)
	case http.StatusBadRequest:
		if body == app.MsgMissingRequiredField {
			return fmt.Errorf("%w: %s", ErrMissingRequiredField, body)
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}
