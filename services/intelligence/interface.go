package ai

import (
	"context"

	"staynest/models"
)

// AssistantService answers one chat message. It never returns a Go error:
// every failure is already shaped into a conversational Reply.
type AssistantService interface {
	Respond(ctx context.Context, in ChatInput) Reply
}

// RecordStore is the read-only slice of the record store the assistant needs.
// Each call may fail independently.
type RecordStore interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	ListRecentBookings(ctx context.Context, userID string, limit int) ([]models.Booking, error)
	ListOwnedProperties(ctx context.Context, userID string) ([]models.Property, error)
	CountWishlist(ctx context.Context, userID string) (int64, error)
	ListApprovedProperties(ctx context.Context, limit int) ([]models.Property, error)
}

// TextGenerator produces a reply from a named model. history holds the prior
// turns, prompt is sent as the final user turn.
type TextGenerator interface {
	Generate(ctx context.Context, model string, history []models.ChatTurn, prompt string, opts GenerateOptions) (string, error)
}

// SafetyThreshold is the provider-neutral blocking level applied to every harm category.
type SafetyThreshold string

const (
	SafetyBlockNone     SafetyThreshold = "BLOCK_NONE"
	SafetyBlockOnlyHigh SafetyThreshold = "BLOCK_ONLY_HIGH"
	SafetyBlockMedium   SafetyThreshold = "BLOCK_MEDIUM_AND_ABOVE"
)

// GenerateOptions are applied to every provider attempt.
type GenerateOptions struct {
	MaxOutputTokens int32
	Safety          SafetyThreshold
}
