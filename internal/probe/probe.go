package probe

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/tiktoken-go/tokenizer"
)

// DefaultPrompt is the fixed probe prompt sent to every candidate model.
const DefaultPrompt = "Hello, respond with just 'OK'"

// TextGenerator issues one synchronous text generation request against a
// named model.
type TextGenerator interface {
	GenerateText(ctx context.Context, model, prompt string) (string, error)
}

// Result is the classified outcome of probing a single model identifier.
type Result struct {
	Model       string
	Outcome     Outcome
	Reply       string
	ReplyTokens int
	Err         string
}

// Run probes each model in order with one request apiece. Failures are
// classified and recorded; the loop always continues to the next model.
func Run(ctx context.Context, gen TextGenerator, models []string, prompt string) []Result {
	results := make([]Result, 0, len(models))
	for _, model := range models {
		logrus.Infof("testing model: %s", model)
		reply, err := gen.GenerateText(ctx, model, prompt)
		r := Result{Model: model, Outcome: Classify(err)}
		switch r.Outcome {
		case OutcomeWorking:
			r.Reply = reply
			r.ReplyTokens = approxTokens(reply)
			logrus.Infof("success: %s", model)
		case OutcomeNotFound:
			logrus.Warnf("not found: %s", model)
		case OutcomeNoPermission:
			logrus.Warnf("no permission: %s", model)
		default:
			r.Err = err.Error()
			logrus.Warnf("error probing %s: %v", model, err)
		}
		results = append(results, r)
	}
	return results
}

// approxTokens estimates the token count of a reply using the O200kBase
// encoding. The upstream tokenizer differs, so this is an estimate only.
func approxTokens(text string) int {
	if text == "" {
		return 0
	}
	enc, err := tokenizer.Get(tokenizer.O200kBase)
	if err != nil {
		return 0
	}
	n, err := enc.Count(text)
	if err != nil {
		return 0
	}
	return n
}
