// Package main is the entry point for the cart-service application.
//
// @title           Cake Cart API
// @version         1.0.0
// @description     Shopping cart service for the cake storefront.
//
//	Carts are keyed by an opaque session identifier carried in the X-Cart-Session
//	header; totals are computed server-side and monetary values travel as
//	decimal-formatted strings.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/cakeshop/cart-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for storefront clients. Required if authentication is enabled.
//
// @tag.name        Cart
// @tag.description Cart operations
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/cakeshop/cart-service/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/cakeshop/cart-service/config"
	"github.com/cakeshop/cart-service/internal/app"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
