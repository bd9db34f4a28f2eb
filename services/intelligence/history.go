package ai

import (
	"strings"

	"staynest/models"
)

// MaxHistoryTurns is how many prior turns are forwarded to the model.
const MaxHistoryTurns = 10

// normalizeRole maps accepted role names onto the model's vocabulary.
// It returns "" for anything else.
func normalizeRole(role string) string {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case models.RoleUser:
		return models.RoleUser
	case models.RoleModel, "assistant":
		return models.RoleModel
	default:
		return ""
	}
}

// SanitizeHistory filters caller-supplied turns down to what a provider
// accepts: user/model roles only, no blank turns, at most MaxHistoryTurns of
// the most recent ones, and never opening with a model turn.
func SanitizeHistory(turns []models.ChatTurn) []models.ChatTurn {
	clean := make([]models.ChatTurn, 0, len(turns))
	for _, t := range turns {
		role := normalizeRole(t.Role)
		if role == "" || strings.TrimSpace(t.Text) == "" {
			continue
		}
		clean = append(clean, models.ChatTurn{Role: role, Text: t.Text})
	}

	if len(clean) > MaxHistoryTurns {
		clean = clean[len(clean)-MaxHistoryTurns:]
	}

	for len(clean) > 0 && clean[0].Role != models.RoleUser {
		clean = clean[1:]
	}
	return clean
}
