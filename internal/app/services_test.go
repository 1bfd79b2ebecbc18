//go:build !integration

package app

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cakeshop/cart-service/config"
	"github.com/cakeshop/cart-service/internal/cart"
	"github.com/cakeshop/cart-service/internal/domain/model"
)

func TestInitializeServices(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.CacheConfig
		validate func(*testing.T, *ServiceComponents)
	}{
		{
			name: "creates service without session cache",
			cfg: config.CacheConfig{
				Size: 0,
				TTL:  0,
			},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.Carts)
			},
		},
		{
			name: "creates service with session cache enabled",
			cfg: config.CacheConfig{
				Size: 1000,
				TTL:  5 * time.Minute,
			},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.Carts)
			},
		},
		{
			name: "zero cache size disables cache",
			cfg: config.CacheConfig{
				Size: 0,
				TTL:  5 * time.Minute,
			},
			validate: func(t *testing.T, components *ServiceComponents) {
				assert.NotNil(t, components)
				assert.NotNil(t, components.Carts)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			components := InitializeServices(tt.cfg, nil)
			if tt.validate != nil {
				tt.validate(t, components)
			}
		})
	}
}

func TestServiceComponents_CartsFallBackToMemory(t *testing.T) {
	// No database components: carts must still work from memory
	components := InitializeServices(config.CacheConfig{
		Size: 100,
		TTL:  time.Minute,
	}, nil)

	assert.NotNil(t, components.Carts)

	ctx := context.Background()
	state := components.Carts.Dispatch(ctx, "smoke-session", cart.AddItem{
		Item: model.CartLineItem{
			Product:   model.Cake{ID: 42, Name: "Chocolate Truffle", Price: "500.00"},
			Quantity:  1,
			Weight:    "1kg",
			Flavor:    "chocolate",
			UnitPrice: model.ParsePrice("500.00"),
		},
	})

	assert.Len(t, state.Items, 1)
	assert.Equal(t, 1, state.ItemCount)
	assert.Equal(t, "500", state.Total.String())

	// Snapshot sees the same state
	snap := components.Carts.Snapshot(ctx, "smoke-session")
	assert.Equal(t, state.ItemCount, snap.ItemCount)
}
