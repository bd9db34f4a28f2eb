package ai

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"staynest/models"
	"staynest/services/auth"

	"go.uber.org/zap"
)

// User-facing replies for the non-provider outcomes.
const (
	UnavailableReply = "I'm sorry, the StayNest assistant isn't available right now. Please try again later or browse our hotels directly."
	SafetyReply      = "I'm sorry, I can't complete that request because it was flagged by our safety filters. Could you try rephrasing it?"
	errorReplyFormat = "Sorry, I'm having trouble connecting right now. Please try again in a moment. (Error: %s)"
)

// Outcome names the terminal state a request ended in.
type Outcome string

const (
	OutcomeUnavailable Outcome = "unavailable"
	OutcomeProvider    Outcome = "provider"
	OutcomeSafety      Outcome = "safety"
	OutcomeError       Outcome = "error"
)

// ChatInput is one assistant request. Credential is the raw bearer token, empty for guests.
type ChatInput struct {
	Message    string
	History    []models.ChatTurn
	Credential string
}

// Reply is the shaped answer: an HTTP status and the text for {"response": ...}.
type Reply struct {
	Status  int
	Text    string
	Outcome Outcome
	Model   string // model that answered, set for OutcomeProvider
}

// Options tune the provider loop.
type Options struct {
	Models          []string // fallback order, first is preferred
	MaxOutputTokens int32
	Safety          SafetyThreshold
	ProviderTimeout time.Duration
	LookupTimeout   time.Duration
}

// ProviderAttempt records one step of the fallback loop.
type ProviderAttempt struct {
	Model string
	Text  string
	Err   *ProviderError
}

// fallbackResult is either a success (Err nil) or exhaustion carrying the last error.
type fallbackResult struct {
	Text     string
	Model    string
	Err      *ProviderError
	Attempts []ProviderAttempt
}

func (r fallbackResult) ok() bool { return r.Err == nil }

// DefaultAssistantService implements AssistantService. A nil generator means
// no provider key is configured.
type DefaultAssistantService struct {
	generator TextGenerator
	verifier  auth.CredentialVerifier
	builder   *ContextBuilder
	opts      Options
	logger    *zap.Logger
}

func NewDefaultAssistantService(
	generator TextGenerator,
	verifier auth.CredentialVerifier,
	store RecordStore,
	opts Options,
	logger *zap.Logger,
) *DefaultAssistantService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Safety == "" {
		opts.Safety = SafetyBlockOnlyHigh
	}
	return &DefaultAssistantService{
		generator: generator,
		verifier:  verifier,
		builder:   NewContextBuilder(store, opts.LookupTimeout, logger),
		opts:      opts,
		logger:    logger,
	}
}

// Respond runs one request through identity resolution, context assembly,
// history sanitization, prompt assembly and the provider fallback loop.
func (s *DefaultAssistantService) Respond(ctx context.Context, in ChatInput) Reply {
	if s.generator == nil {
		return Reply{Status: http.StatusOK, Text: UnavailableReply, Outcome: OutcomeUnavailable}
	}

	userID := s.resolveIdentity(ctx, in.Credential)
	user, inventory := s.builder.Build(ctx, userID)
	history := SanitizeHistory(in.History)
	prompt := BuildPrompt(user, inventory, in.Message)

	res := s.runFallback(ctx, history, prompt)
	if res.ok() {
		s.logger.Info("assistant replied",
			zap.String("model", res.Model),
			zap.String("user_id", userID),
			zap.Int("attempts", len(res.Attempts)))
		return Reply{Status: http.StatusOK, Text: NormalizeLoginTrigger(res.Text), Outcome: OutcomeProvider, Model: res.Model}
	}

	if res.Err.IsSafety() {
		s.logger.Warn("all models failed, last on safety", zap.String("user_id", userID), zap.Error(res.Err))
		return Reply{Status: http.StatusOK, Text: SafetyReply, Outcome: OutcomeSafety}
	}

	s.logger.Error("all models failed", zap.String("user_id", userID), zap.Int("attempts", len(res.Attempts)), zap.Error(res.Err))
	return Reply{
		Status:  http.StatusInternalServerError,
		Text:    fmt.Sprintf(errorReplyFormat, res.Err.Error()),
		Outcome: OutcomeError,
	}
}

// resolveIdentity returns the caller's user ID, or "" when the credential is
// absent or does not verify.
func (s *DefaultAssistantService) resolveIdentity(ctx context.Context, credential string) string {
	if credential == "" || s.verifier == nil {
		return ""
	}
	userID, err := s.verifier.Verify(ctx, credential)
	if err != nil {
		s.logger.Debug("credential rejected, continuing as guest", zap.Error(err))
		return ""
	}
	return userID
}

// runFallback tries each model in order and stops at the first success.
// Attempts never overlap and a failed model is not retried.
func (s *DefaultAssistantService) runFallback(ctx context.Context, history []models.ChatTurn, prompt string) fallbackResult {
	var res fallbackResult
	if len(s.opts.Models) == 0 {
		res.Err = &ProviderError{Kind: KindTransient, Err: ErrNoModels}
		return res
	}

	genOpts := GenerateOptions{MaxOutputTokens: s.opts.MaxOutputTokens, Safety: s.opts.Safety}
	for _, model := range s.opts.Models {
		if err := ctx.Err(); err != nil {
			if res.Err == nil {
				res.Err = &ProviderError{Model: model, Kind: KindTransient, Err: err}
			}
			break
		}

		text, err := s.attempt(ctx, model, history, prompt, genOpts)
		if err == nil && text == "" {
			err = ErrEmptyResponse
		}
		if err != nil {
			pe := classifyError(model, err)
			res.Attempts = append(res.Attempts, ProviderAttempt{Model: model, Err: pe})
			res.Err = pe
			s.logger.Warn("model attempt failed",
				zap.String("model", model),
				zap.String("kind", string(pe.Kind)),
				zap.Error(pe.Err))
			continue
		}

		res.Attempts = append(res.Attempts, ProviderAttempt{Model: model, Text: text})
		res.Text, res.Model, res.Err = text, model, nil
		return res
	}
	return res
}

func (s *DefaultAssistantService) attempt(ctx context.Context, model string, history []models.ChatTurn, prompt string, opts GenerateOptions) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("model %s panicked: %v", model, r)
		}
	}()

	if s.opts.ProviderTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.ProviderTimeout)
		defer cancel()
	}
	return s.generator.Generate(ctx, model, history, prompt, opts)
}
