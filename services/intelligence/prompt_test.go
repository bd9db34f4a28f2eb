package ai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptGuest(t *testing.T) {
	inv := InventorySnapshot{{Name: "Goa Resort", City: "Goa", Type: "resort", PricePerNight: 4500, Rating: 4.6}}

	prompt := BuildPrompt(nil, inv, "Suggest a hotel in Goa")

	assert.Contains(t, prompt, "Guest (not logged in)")
	assert.Contains(t, prompt, "- Goa Resort in Goa (resort), 4500.00 per night, rated 4.6/5")
	assert.Contains(t, prompt, "reply with exactly "+LoginTriggerToken)
	assert.NotContains(t, prompt, "recent bookings")
	assert.True(t, strings.HasSuffix(prompt, "User message: Suggest a hotel in Goa"))
}

func TestBuildPromptSectionOrder(t *testing.T) {
	count := int64(4)
	user := &UserContextSnapshot{
		UserID:  "u1",
		Profile: &Profile{Name: "Asha", Email: "asha@example.com", Phone: "98765"},
		Bookings: []BookingSummary{{
			PropertyName: "Sea View", CheckIn: "2026-11-01", CheckOut: "2026-11-03",
			Status: "confirmed", TotalPrice: 9000, PaymentMethod: "card", Guests: 2, SpecialRequests: "late check-in",
		}},
		Listings:      []ListingSummary{{Name: "Hill Cottage", City: "Ooty", Status: "pending", PricePerNight: 3000}},
		WishlistCount: &count,
	}
	inv := InventorySnapshot{{Name: "Goa Resort", City: "Goa", Type: "resort", PricePerNight: 4500, Rating: 4.6}}

	prompt := BuildPrompt(user, inv, "what did I book?")

	order := []string{
		"You are StayNest Assistant",
		"logged in as Asha (email asha@example.com, phone 98765)",
		"Sea View: 2026-11-01 to 2026-11-03, status confirmed, total 9000.00, paid by card, 2 guest(s), notes: late check-in",
		"Hill Cottage in Ooty, status pending",
		"4 properties saved in their wishlist",
		"Available hotels:",
		"Guidelines:",
		"User message: what did I book?",
	}
	last := -1
	for _, part := range order {
		idx := strings.Index(prompt, part)
		if assert.NotEqual(t, -1, idx, "missing %q", part) {
			assert.Greater(t, idx, last, "%q out of order", part)
			last = idx
		}
	}
}

func TestBuildPromptDegradedSections(t *testing.T) {
	user := &UserContextSnapshot{UserID: "u1"}

	prompt := BuildPrompt(user, nil, "hello there")

	assert.Contains(t, prompt, "profile details are unavailable")
	assert.Contains(t, prompt, NoHotelsSentence)
	assert.NotContains(t, prompt, "Available hotels:")
	assert.NotContains(t, prompt, "wishlist.")
	assert.Contains(t, prompt, "User message: hello there")
}

func TestNormalizeLoginTrigger(t *testing.T) {
	assert.Equal(t, LoginTriggerToken, NormalizeLoginTrigger(LoginTriggerToken))
	assert.Equal(t, LoginTriggerToken, NormalizeLoginTrigger("  `LOGIN_REQUIRED`\n"))
	assert.Equal(t, LoginTriggerToken, NormalizeLoginTrigger("\"LOGIN_REQUIRED\"."))
	assert.Equal(t, "Please log in: LOGIN_REQUIRED", NormalizeLoginTrigger("Please log in: LOGIN_REQUIRED"))
	assert.Equal(t, "Try Goa Resort", NormalizeLoginTrigger("Try Goa Resort"))
}
