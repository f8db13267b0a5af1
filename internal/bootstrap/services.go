package bootstrap

import (
	"github.com/Jauphraux/SoBApp/configs"
	"github.com/Jauphraux/SoBApp/internal/catalog"
	"github.com/Jauphraux/SoBApp/internal/character"
	"github.com/Jauphraux/SoBApp/internal/concurrency"
	"github.com/Jauphraux/SoBApp/internal/config"
	"github.com/Jauphraux/SoBApp/internal/event"
	"github.com/Jauphraux/SoBApp/internal/inventory"
)

// Services holds the application services
type Services struct {
	Catalog   catalog.Service
	Character character.Service
	Inventory inventory.Service
}

// InitializeServices wires the services. Character and inventory share one
// lock manager so they serialise on the same character keys.
func InitializeServices(cfg *config.Config, repos *Repositories, publisher *event.ResilientPublisher) *Services {
	locks := concurrency.NewLockManager()
	cacheCfg := catalog.CacheConfig{Size: cfg.CatalogCacheSize, TTL: cfg.CatalogCacheTTL}

	return &Services{
		Catalog:   catalog.NewService(repos.Catalog, catalog.NewLoader(configs.Schemas()), cacheCfg, publisher),
		Character: character.NewService(repos.Character, repos.Catalog, locks, publisher),
		Inventory: inventory.NewService(repos.Inventory, locks, publisher),
	}
}
