package usecases

import (
	"context"

	appcatalog "github.com/jaras-platform/jaras/internal/application/catalog"
	"github.com/jaras-platform/jaras/internal/domain/catalog"
)

// CatalogProvider is the part of the snapshot provider the catalog use
// cases need.
type CatalogProvider interface {
	Snapshot(ctx context.Context) (*catalog.Snapshot, error)
	Status() (appcatalog.Status, error)
	Reload(ctx context.Context) (*catalog.Snapshot, error)
}
