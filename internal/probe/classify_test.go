package probe

import (
	"errors"
	"testing"

	"google.golang.org/genai"
)

func TestClassify_NilIsWorking(t *testing.T) {
	if got := Classify(nil); got != OutcomeWorking {
		t.Fatalf("expected working, got %v", got)
	}
}

func TestClassify_MessageHeuristics(t *testing.T) {
	cases := []struct {
		msg  string
		want Outcome
	}{
		{"404 model not found", OutcomeNotFound},
		{"403 Forbidden: permission denied", OutcomeNoPermission},
		{"model Not Found for API version", OutcomeNotFound},
		{"PERMISSION_DENIED on resource", OutcomeNoPermission},
		{"connection reset by peer", OutcomeError},
		{"deadline exceeded", OutcomeError},
	}
	for _, c := range cases {
		if got := Classify(errors.New(c.msg)); got != c.want {
			t.Fatalf("Classify(%q) = %v, want %v", c.msg, got, c.want)
		}
	}
}

func TestClassify_SubstringWinsOverGenericError(t *testing.T) {
	// A 403 buried in unrelated text still means no-permission, not a
	// generic error.
	err := errors.New("upstream proxy returned 403 while tunneling request id 9f2c")
	if got := Classify(err); got != OutcomeNoPermission {
		t.Fatalf("expected no-permission, got %v", got)
	}
}

func TestClassify_NotFoundTakesPrecedence(t *testing.T) {
	err := errors.New("404: requested entity not found; check permission settings")
	if got := Classify(err); got != OutcomeNotFound {
		t.Fatalf("expected not-found, got %v", got)
	}
}

func TestClassify_TypedAPIError(t *testing.T) {
	nf := genai.APIError{Code: 404, Message: "requested entity was not located", Status: "NOT_FOUND"}
	if got := Classify(nf); got != OutcomeNotFound {
		t.Fatalf("expected not-found for typed 404, got %v", got)
	}
	denied := genai.APIError{Code: 403, Message: "caller lacks IAM grant", Status: "PERMISSION_DENIED"}
	if got := Classify(denied); got != OutcomeNoPermission {
		t.Fatalf("expected no-permission for typed 403, got %v", got)
	}
}

func TestClassify_TypedAPIErrorOtherCodeFallsThrough(t *testing.T) {
	rl := genai.APIError{Code: 429, Message: "resource exhausted", Status: "RESOURCE_EXHAUSTED"}
	if got := Classify(rl); got != OutcomeError {
		t.Fatalf("expected error outcome for typed 429, got %v", got)
	}
}
