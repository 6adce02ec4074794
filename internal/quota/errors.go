package quota

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDailyQuota is the hard-stop signal for the daily query cap. It is never
// retried and must stop the scheduler from issuing new queries.
var ErrDailyQuota = errors.New("daily query quota exceeded")

// AuthError is a credentials/configuration failure (bad key, bad cx,
// API not enabled). Fatal for the whole run.
type AuthError struct {
	Status int
	Msg    string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("auth or config error (%d): %s", e.Status, e.Msg)
}

// TransientError is a retryable server-side or rate-limit failure.
type TransientError struct {
	Status int
	Msg    string
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("transient error (%d): %s", e.Status, e.Msg)
}

// ClassifyHTTP maps an upstream status code and error message onto the error
// taxonomy. A 429 whose message indicates the per-day cap becomes
// ErrDailyQuota; other 429s and 5xx are transient; 400/403 are auth/config.
func ClassifyHTTP(status int, msg string) error {
	if status == 429 && isDailyCapMessage(msg) {
		return ErrDailyQuota
	}
	if status == 429 || (status >= 500 && status < 600) {
		return &TransientError{Status: status, Msg: msg}
	}
	if status == 400 || status == 403 {
		return &AuthError{Status: status, Msg: msg}
	}
	return fmt.Errorf("unexpected status %d: %s", status, msg)
}

func isDailyCapMessage(msg string) bool {
	m := strings.ToLower(msg)
	return strings.Contains(m, "quota") && strings.Contains(m, "per day")
}

// IsTransient reports whether err belongs to the retryable class.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

// IsFatal reports whether err belongs to the auth/config class.
func IsFatal(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}
