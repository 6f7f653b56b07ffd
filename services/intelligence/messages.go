// File: services/intelligence/messages.go
package ai

import (
	"context"
	"fmt"
	"time"

	"valetpro/models"

	"go.uber.org/zap"
)

// DefaultMessageGenerator asks a TextGenerator for a status message and falls
// back to fixed templates. With no TextGenerator it runs offline.
type DefaultMessageGenerator struct {
	text    TextGenerator
	timeout time.Duration
	logger  *zap.Logger
}

// NewMessageGenerator builds a generator. A nil text generator means no
// credential was configured; that is logged once here and nowhere else.
func NewMessageGenerator(text TextGenerator, timeout time.Duration, logger *zap.Logger) *DefaultMessageGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if text == nil {
		logger.Warn("API_KEY not set, using fallback status messages")
	}
	return &DefaultMessageGenerator{text: text, timeout: timeout, logger: logger}
}

func (g *DefaultMessageGenerator) Mode() string {
	if g.text == nil {
		return ModeOffline
	}
	return ModeGemini
}

// Generate never returns an empty string and never retries.
func (g *DefaultMessageGenerator) Generate(ctx context.Context, kind models.MessageKind, mc models.MessageContext) string {
	if g.text == nil {
		return OfflineMessage(kind, mc)
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	res := g.text.GenerateText(ctx, Prompt(kind, mc))
	if !res.OK() {
		g.logger.Error("Error generating status message with Gemini",
			zap.String("kind", string(kind)),
			zap.Error(res.Err),
		)
		return FallbackMessage(kind, mc)
	}
	return res.Text
}

// Prompt is the instruction sent to the model for kind.
func Prompt(kind models.MessageKind, mc models.MessageContext) string {
	car, driver := mc.Car, mc.Driver.Name
	switch kind {
	case models.MessageRegistration:
		return fmt.Sprintf("You are a friendly valet parking assistant. Write a short, welcoming confirmation message (1-2 sentences) for a customer who just registered their %s %s. Mention that their driver, %s, is assigned to them. Be warm and reassuring.",
			car.Make, car.Model, driver)
	case models.MessageInTransit:
		return fmt.Sprintf("You are a friendly valet parking assistant. Write a short, exciting update message (1-2 sentences) for a customer. Their driver, %s, is retrieving their %s %s and the estimated time is %s minutes. Sound helpful and efficient.",
			driver, car.Make, car.Model, mc.Eta)
	default:
		return fmt.Sprintf("You are a friendly valet parking assistant. Write a short, clear message (1-2 sentences) for a customer informing them their %s %s is now ready for pickup. Mention the driver, %s, has delivered it. Be concise and positive.",
			car.Make, car.Model, driver)
	}
}

// OfflineMessage is used when no credential is configured.
func OfflineMessage(kind models.MessageKind, mc models.MessageContext) string {
	car, driver := mc.Car, mc.Driver.Name
	switch kind {
	case models.MessageRegistration:
		return fmt.Sprintf("Welcome! Your %s %s is registered. Our driver, %s, will take good care of it.", car.Make, car.Model, driver)
	case models.MessageInTransit:
		return fmt.Sprintf("Great news! %s is bringing your %s %s. It will be ready in about %s minutes.", driver, car.Make, car.Model, mc.Eta)
	default:
		return fmt.Sprintf("Your %s %s is ready for pickup!", car.Make, car.Model)
	}
}

// FallbackMessage is used when a configured remote call fails.
func FallbackMessage(kind models.MessageKind, mc models.MessageContext) string {
	car, driver := mc.Car, mc.Driver.Name
	switch kind {
	case models.MessageRegistration:
		return fmt.Sprintf("Your %s %s is now registered with us. %s is at your service. Enjoy your time!", car.Make, car.Model, driver)
	case models.MessageInTransit:
		return fmt.Sprintf("Your %s %s is on its way! Expect it in approximately %s minutes.", car.Make, car.Model, mc.Eta)
	default:
		return fmt.Sprintf("Your %s %s is ready for pickup. Please meet %s at the exit.", car.Make, car.Model, driver)
	}
}
