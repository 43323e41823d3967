package report

import (
	"fmt"
	"io"

	"gemcheck/internal/catalog"
	"gemcheck/internal/probe"
)

// Recommendation labels by position in the working list.
var recommendations = []struct {
	label string
	note  string
}{
	{"🚀 Primary:  ", "most advanced"},
	{"⚡ Secondary:", "fast & efficient"},
	{"💨 Fastest:  ", "ultra-fast"},
}

// Write renders the compatibility report. Working models appear once each in
// probe order; recommendation lines are emitted only for positions that
// exist, so fewer than three successes is fine.
func Write(w io.Writer, results []probe.Result, restricted, deprecated []catalog.ModelInfo) {
	var working []probe.Result
	for _, r := range results {
		if r.Outcome == probe.OutcomeWorking {
			working = append(working, r)
		}
	}

	fmt.Fprintln(w, "=== SUMMARY ===")
	fmt.Fprintf(w, "Working models found: %d\n", len(working))
	for _, r := range working {
		if r.ReplyTokens > 0 {
			fmt.Fprintf(w, "  ✅ %s (~%d tokens) - Response: %s\n", r.Model, r.ReplyTokens, r.Reply)
		} else {
			fmt.Fprintf(w, "  ✅ %s - Response: %s\n", r.Model, r.Reply)
		}
	}
	for _, r := range results {
		switch r.Outcome {
		case probe.OutcomeNotFound:
			fmt.Fprintf(w, "  ❌ NOT FOUND: %s\n", r.Model)
		case probe.OutcomeNoPermission:
			fmt.Fprintf(w, "  🚫 NO PERMISSION: %s\n", r.Model)
		case probe.OutcomeError:
			fmt.Fprintf(w, "  ⚠️  ERROR: %s - %s\n", r.Model, r.Err)
		}
	}

	if len(working) == 0 {
		fmt.Fprintln(w, "\n❌ No working models found. Check your API key and permissions.")
	} else {
		fmt.Fprintln(w, "\nRecommended models:")
		for i, rec := range recommendations {
			if i >= len(working) {
				break
			}
			fmt.Fprintf(w, "  %s %s (%s)\n", rec.label, working[i].Model, rec.note)
		}

		fmt.Fprintln(w, "\n=== CONFIGURATION READY ===")
		fmt.Fprintln(w, "Suggested assignment:")
		fmt.Fprintf(w, "  • Deep thinking: %s\n", working[0].Model)
		if len(working) > 1 {
			fmt.Fprintf(w, "  • Quick thinking: %s\n", working[1].Model)
		}
	}

	fmt.Fprintln(w, "\n=== RESTRICTED MODELS ===")
	fmt.Fprintln(w, "These models require billing/paid plan:")
	for _, m := range restricted {
		fmt.Fprintf(w, "  💳 %s\n", m.Name)
	}

	fmt.Fprintln(w, "\n=== DEPRECATED MODELS ===")
	fmt.Fprintln(w, "These models are no longer available:")
	for _, m := range deprecated {
		fmt.Fprintf(w, "  ❌ %s\n", m.Name)
	}
}
