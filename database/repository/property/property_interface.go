package propertyRepo

import (
	"context"

	"staynest/models"
)

// PropertyRepository defines read access to property listings.
type PropertyRepository interface {
	// ListByOwner returns every property owned by the given host, whatever its status.
	ListByOwner(ctx context.Context, ownerID string) ([]models.Property, error)
	// ListApproved returns up to limit publicly listed properties, best rated first.
	ListApproved(ctx context.Context, limit int) ([]models.Property, error)
}
