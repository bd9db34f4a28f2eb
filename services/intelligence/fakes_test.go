package ai

import (
	"context"
	"errors"
	"sync"

	"staynest/models"
)

var errStoreDown = errors.New("store unavailable")

// fakeStore serves fixed records; a non-nil err field fails that lookup.
type fakeStore struct {
	user       *models.User
	bookings   []models.Booking
	owned      []models.Property
	wishlist   int64
	approved   []models.Property
	userErr    error
	bookErr    error
	ownedErr   error
	wishErr    error
	approveErr error

	mu           sync.Mutex
	bookingLimit int
	approveLimit int
	calls        []string
}

func (f *fakeStore) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeStore) GetUser(ctx context.Context, id string) (*models.User, error) {
	f.record("user:" + id)
	if f.userErr != nil {
		return nil, f.userErr
	}
	return f.user, nil
}

func (f *fakeStore) ListRecentBookings(ctx context.Context, userID string, limit int) ([]models.Booking, error) {
	f.record("bookings:" + userID)
	f.mu.Lock()
	f.bookingLimit = limit
	f.mu.Unlock()
	if f.bookErr != nil {
		return nil, f.bookErr
	}
	return f.bookings, nil
}

func (f *fakeStore) ListOwnedProperties(ctx context.Context, userID string) ([]models.Property, error) {
	f.record("owned:" + userID)
	if f.ownedErr != nil {
		return nil, f.ownedErr
	}
	return f.owned, nil
}

func (f *fakeStore) CountWishlist(ctx context.Context, userID string) (int64, error) {
	f.record("wishlist:" + userID)
	if f.wishErr != nil {
		return 0, f.wishErr
	}
	return f.wishlist, nil
}

func (f *fakeStore) ListApprovedProperties(ctx context.Context, limit int) ([]models.Property, error) {
	f.record("approved")
	f.mu.Lock()
	f.approveLimit = limit
	f.mu.Unlock()
	if f.approveErr != nil {
		return nil, f.approveErr
	}
	return f.approved, nil
}

func (f *fakeStore) userCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c != "approved" {
			n++
		}
	}
	return n
}

// fakeVerifier accepts exactly one token.
type fakeVerifier struct {
	token  string
	userID string
}

func (v *fakeVerifier) Verify(ctx context.Context, token string) (string, error) {
	if token != v.token {
		return "", errors.New("token is expired")
	}
	return v.userID, nil
}

// scriptedReply is what a fake model answers.
type scriptedReply struct {
	text string
	err  error
}

type generateCall struct {
	model   string
	history []models.ChatTurn
	prompt  string
	opts    GenerateOptions
}

// fakeGenerator answers per model from a script and records every call.
type fakeGenerator struct {
	replies map[string]scriptedReply
	calls   []generateCall
}

func (g *fakeGenerator) Generate(ctx context.Context, model string, history []models.ChatTurn, prompt string, opts GenerateOptions) (string, error) {
	g.calls = append(g.calls, generateCall{model: model, history: history, prompt: prompt, opts: opts})
	r, ok := g.replies[model]
	if !ok {
		return "", errors.New("models/" + model + " is not found")
	}
	return r.text, r.err
}

func (g *fakeGenerator) calledModels() []string {
	var out []string
	for _, c := range g.calls {
		out = append(out, c.model)
	}
	return out
}
