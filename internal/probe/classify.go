package probe

import (
	"errors"
	"net/http"
	"strings"

	"google.golang.org/genai"
)

// Outcome buckets one probe attempt.
type Outcome int

const (
	OutcomeWorking Outcome = iota
	OutcomeNotFound
	OutcomeNoPermission
	OutcomeError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWorking:
		return "working"
	case OutcomeNotFound:
		return "not-found"
	case OutcomeNoPermission:
		return "no-permission"
	default:
		return "error"
	}
}

// Classify assigns exactly one outcome to a probe failure. A typed API error
// with a 404/403 status wins; otherwise the error text is matched
// case-insensitively, with not-found and no-permission taking precedence over
// the generic error bucket. The text match is a best-effort heuristic over
// upstream message formats.
func Classify(err error) Outcome {
	if err == nil {
		return OutcomeWorking
	}
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusNotFound:
			return OutcomeNotFound
		case http.StatusForbidden:
			return OutcomeNoPermission
		}
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "404") || strings.Contains(msg, "not found"):
		return OutcomeNotFound
	case strings.Contains(msg, "403") || strings.Contains(msg, "permission"):
		return OutcomeNoPermission
	}
	return OutcomeError
}
