package application

import (
	"context"

	"frankfurter/internal/domain"
)

// NoopCatalogStore never hits; used when no shared store is configured.
type NoopCatalogStore struct{}

func (NoopCatalogStore) Load(context.Context) (domain.Currencies, bool, error) { return nil, false, nil }
func (NoopCatalogStore) Save(context.Context, domain.Currencies) error         { return nil }
