package probe

import (
	"context"
	"errors"
	"testing"
)

type fakeGenerator struct {
	replies map[string]string
	errs    map[string]error
	calls   []string
}

func (f *fakeGenerator) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	f.calls = append(f.calls, model)
	if err, ok := f.errs[model]; ok {
		return "", err
	}
	return f.replies[model], nil
}

func TestRun_ProbesInOrderAndContinuesPastFailures(t *testing.T) {
	models := []string{"m-good", "m-gone", "m-locked", "m-flaky", "m-also-good"}
	fake := &fakeGenerator{
		replies: map[string]string{"m-good": "OK", "m-also-good": "OK"},
		errs: map[string]error{
			"m-gone":   errors.New("404 model not found"),
			"m-locked": errors.New("403 Forbidden: permission denied"),
			"m-flaky":  errors.New("connection reset by peer"),
		},
	}

	results := Run(context.Background(), fake, models, DefaultPrompt)

	if len(results) != len(models) {
		t.Fatalf("expected %d results, got %d", len(models), len(results))
	}
	for i, model := range models {
		if fake.calls[i] != model {
			t.Fatalf("call %d was %s, want %s", i, fake.calls[i], model)
		}
		if results[i].Model != model {
			t.Fatalf("result %d is for %s, want %s", i, results[i].Model, model)
		}
	}

	want := []Outcome{OutcomeWorking, OutcomeNotFound, OutcomeNoPermission, OutcomeError, OutcomeWorking}
	for i, w := range want {
		if results[i].Outcome != w {
			t.Fatalf("result %d outcome %v, want %v", i, results[i].Outcome, w)
		}
	}
	if results[0].Reply != "OK" {
		t.Fatalf("expected reply retained, got %q", results[0].Reply)
	}
	if results[3].Err != "connection reset by peer" {
		t.Fatalf("expected raw error text retained, got %q", results[3].Err)
	}
}

func TestRun_EachModelProbedExactlyOnce(t *testing.T) {
	models := []string{"a", "b", "c"}
	fake := &fakeGenerator{replies: map[string]string{"a": "OK", "b": "OK", "c": "OK"}}

	Run(context.Background(), fake, models, DefaultPrompt)

	if len(fake.calls) != 3 {
		t.Fatalf("expected 3 calls, got %d: %v", len(fake.calls), fake.calls)
	}
}

func TestApproxTokens(t *testing.T) {
	if n := approxTokens(""); n != 0 {
		t.Fatalf("empty reply should count 0 tokens, got %d", n)
	}
	if n := approxTokens("OK"); n <= 0 {
		t.Fatalf("expected positive token estimate for non-empty reply, got %d", n)
	}
}
