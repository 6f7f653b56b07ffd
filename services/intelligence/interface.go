// File: services/intelligence/interface.go
package ai

import (
	"context"

	"valetpro/models"
)

// Result is the outcome of one text-generation call: either Text or Err is set.
type Result struct {
	Text string
	Err  error
}

// OK reports whether the call produced usable text.
func (r Result) OK() bool {
	return r.Err == nil
}

// TextGenerator turns a prompt into text with a single remote call.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) Result
}

// MessageGenerator produces customer-facing status messages. It never fails:
// remote errors are replaced with local templates.
type MessageGenerator interface {
	Generate(ctx context.Context, kind models.MessageKind, mc models.MessageContext) string
	Mode() string
}

const (
	ModeGemini  = "gemini"
	ModeOffline = "offline"
)
