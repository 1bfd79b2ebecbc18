// Package app provides service initialization.
package app

import (
	"github.com/rs/zerolog/log"

	"github.com/cakeshop/cart-service/config"
	"github.com/cakeshop/cart-service/internal/repository"
	"github.com/cakeshop/cart-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Carts service.CartService
}

// InitializeServices initializes the cart service. When no database is
// available, carts fall back to an in-memory repository so the service stays
// usable for local development.
func InitializeServices(cfg config.CacheConfig, dbComponents *DatabaseComponents) *ServiceComponents {
	var repo repository.CartsRepositoryInterface
	if dbComponents != nil && dbComponents.CartsRepo != nil {
		repo = dbComponents.CartsRepo
	} else {
		log.Warn().Msg("No database available, cart slots held in memory only")
		repo = repository.NewInMemoryCartsRepository()
	}

	var opts []service.CartOption
	if cfg.Size > 0 {
		opts = append(opts, service.WithSessionCache(cfg.Size, cfg.TTL))
	}

	carts := service.NewCartService(repo, opts...)

	return &ServiceComponents{
		Carts: carts,
	}
}
