package ai

import (
	"context"
	"fmt"
	"sync"
	"time"

	"staynest/models"

	"go.uber.org/zap"
)

const (
	// MaxRecentBookings is how many bookings are summarised for the user.
	MaxRecentBookings = 3
	// MaxInventoryListings is how many approved listings the assistant sees.
	MaxInventoryListings = 20
)

// Profile is the caller's account data. Empty strings are left out of the prompt.
type Profile struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

type BookingSummary struct {
	PropertyName    string
	CheckIn         string
	CheckOut        string
	Status          string
	TotalPrice      float64
	PaymentMethod   string
	Guests          int
	SpecialRequests string
}

type ListingSummary struct {
	Name          string
	City          string
	Status        string
	PricePerNight float64
}

type InventoryItem struct {
	Name          string
	City          string
	Type          string
	PricePerNight float64
	Rating        float64
}

// UserContextSnapshot is the per-request view of an authenticated caller.
// A nil pointer or nil slice means the section is absent, either because the
// lookup failed or because there was nothing to show; absent sections are not rendered.
type UserContextSnapshot struct {
	UserID        string
	Profile       *Profile
	Bookings      []BookingSummary
	Listings      []ListingSummary
	WishlistCount *int64
}

// InventorySnapshot lists publicly approved properties. nil means none could be shown.
type InventorySnapshot []InventoryItem

// ContextBuilder fans out the record lookups that feed the prompt. Every
// lookup has its own deadline and its failure only blanks its own section.
type ContextBuilder struct {
	store         RecordStore
	lookupTimeout time.Duration
	logger        *zap.Logger
}

func NewContextBuilder(store RecordStore, lookupTimeout time.Duration, logger *zap.Logger) *ContextBuilder {
	return &ContextBuilder{store: store, lookupTimeout: lookupTimeout, logger: logger}
}

// Build loads the user snapshot (when userID is set) and the inventory concurrently.
// It never fails.
func (b *ContextBuilder) Build(ctx context.Context, userID string) (*UserContextSnapshot, InventorySnapshot) {
	var (
		wg        sync.WaitGroup
		inventory InventorySnapshot
		snap      *UserContextSnapshot
	)

	b.isolate(ctx, &wg, "inventory", userID, func(ctx context.Context) error {
		props, err := b.store.ListApprovedProperties(ctx, MaxInventoryListings)
		if err != nil {
			return err
		}
		inventory = toInventory(props)
		return nil
	})

	if userID != "" {
		snap = &UserContextSnapshot{UserID: userID}

		b.isolate(ctx, &wg, "profile", userID, func(ctx context.Context) error {
			user, err := b.store.GetUser(ctx, userID)
			if err != nil {
				return err
			}
			if user == nil {
				return fmt.Errorf("user %s not found", userID)
			}
			snap.Profile = &Profile{Name: user.Name, Email: user.Email, Phone: user.Phone, Address: user.Address}
			return nil
		})

		b.isolate(ctx, &wg, "bookings", userID, func(ctx context.Context) error {
			bookings, err := b.store.ListRecentBookings(ctx, userID, MaxRecentBookings)
			if err != nil {
				return err
			}
			snap.Bookings = toBookingSummaries(bookings)
			return nil
		})

		b.isolate(ctx, &wg, "listings", userID, func(ctx context.Context) error {
			props, err := b.store.ListOwnedProperties(ctx, userID)
			if err != nil {
				return err
			}
			snap.Listings = toListingSummaries(props)
			return nil
		})

		b.isolate(ctx, &wg, "wishlist", userID, func(ctx context.Context) error {
			n, err := b.store.CountWishlist(ctx, userID)
			if err != nil {
				return err
			}
			if n > 0 {
				snap.WishlistCount = &n
			}
			return nil
		})
	}

	wg.Wait()
	return snap, inventory
}

// isolate runs lookup in its own goroutine, bounded by the lookup timeout.
// An error or panic becomes a log line and never reaches the caller.
func (b *ContextBuilder) isolate(ctx context.Context, wg *sync.WaitGroup, section, userID string, lookup func(context.Context) error) {
	wg.Add(1)
	go func() {
		defer wg.Done()

		var err error
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
			if err != nil {
				b.logger.Warn("context lookup failed, section omitted",
					zap.String("section", section),
					zap.String("user_id", userID),
					zap.Error(err))
			}
		}()

		lctx := ctx
		if b.lookupTimeout > 0 {
			var cancel context.CancelFunc
			lctx, cancel = context.WithTimeout(ctx, b.lookupTimeout)
			defer cancel()
		}
		err = lookup(lctx)
	}()
}

func toInventory(props []models.Property) InventorySnapshot {
	if len(props) == 0 {
		return nil
	}
	if len(props) > MaxInventoryListings {
		props = props[:MaxInventoryListings]
	}
	items := make(InventorySnapshot, 0, len(props))
	for _, p := range props {
		items = append(items, InventoryItem{
			Name:          p.Name,
			City:          p.City,
			Type:          p.Type,
			PricePerNight: p.PricePerNight,
			Rating:        p.Rating,
		})
	}
	return items
}

func toBookingSummaries(bookings []models.Booking) []BookingSummary {
	if len(bookings) == 0 {
		return nil
	}
	if len(bookings) > MaxRecentBookings {
		bookings = bookings[:MaxRecentBookings]
	}
	out := make([]BookingSummary, 0, len(bookings))
	for _, bk := range bookings {
		out = append(out, BookingSummary{
			PropertyName:    bk.PropertyName,
			CheckIn:         bk.CheckIn,
			CheckOut:        bk.CheckOut,
			Status:          bk.Status,
			TotalPrice:      bk.TotalPrice,
			PaymentMethod:   bk.PaymentMethod,
			Guests:          bk.Guests,
			SpecialRequests: bk.SpecialRequests,
		})
	}
	return out
}

func toListingSummaries(props []models.Property) []ListingSummary {
	if len(props) == 0 {
		return nil
	}
	out := make([]ListingSummary, 0, len(props))
	for _, p := range props {
		out = append(out, ListingSummary{
			Name:          p.Name,
			City:          p.City,
			Status:        p.Status,
			PricePerNight: p.PricePerNight,
		})
	}
	return out
}
