package youtube

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

// Video search failures.
var (
	// ErrMissingAPIKey indicates no API key is configured, so no call is attempted.
	ErrMissingAPIKey = errors.New("youtube: api key not configured")

	// ErrRateLimited indicates the local limiter or the provider refused the call.
	ErrRateLimited = errors.New("youtube: rate limit exceeded")

	// ErrQuotaExceeded indicates the daily API quota is used up.
	ErrQuotaExceeded = errors.New("youtube: quota exceeded")

	// ErrForbidden indicates the key is invalid or lacks access to the API.
	ErrForbidden = errors.New("youtube: forbidden")

	// ErrBadRequest indicates the provider rejected the request parameters.
	ErrBadRequest = errors.New("youtube: bad request")

	// ErrProvider covers any other non-success response.
	ErrProvider = errors.New("youtube: provider error")

	// ErrMalformedResponse indicates the response lacks the fields a video needs.
	ErrMalformedResponse = errors.New("youtube: malformed response")
)

// quotaReasons are the googleapi error reasons the API uses for exhausted quota.
var quotaReasons = map[string]bool{
	"quotaExceeded":      true,
	"dailyLimitExceeded": true,
}

// IsRateLimited returns true if the error means the call should be backed off.
func IsRateLimited(err error) bool {
	return errors.Is(err, ErrRateLimited) || errors.Is(err, ErrQuotaExceeded)
}

// WrapError converts a googleapi error into one of the package sentinels,
// keeping the provider message. Other errors are returned unchanged.
func WrapError(err error) error {
	if err == nil {
		return nil
	}

	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return err
	}

	switch {
	case gerr.Code == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", ErrRateLimited, gerr.Message)
	case gerr.Code == http.StatusForbidden && hasQuotaReason(gerr):
		return fmt.Errorf("%w: %s", ErrQuotaExceeded, gerr.Message)
	case gerr.Code == http.StatusForbidden || gerr.Code == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrForbidden, gerr.Message)
	case gerr.Code == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, gerr.Message)
	default:
		return fmt.Errorf("%w: status %d: %s", ErrProvider, gerr.Code, gerr.Message)
	}
}

func hasQuotaReason(gerr *googleapi.Error) bool {
	for _, item := range gerr.Errors {
		if quotaReasons[item.Reason] {
			return true
		}
	}
	return false
}
