package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/ogrande/tower-cards/internal/api"
	"github.com/ogrande/tower-cards/internal/cardgen"
	"github.com/ogrande/tower-cards/internal/constants"
	"github.com/ogrande/tower-cards/internal/logging"
	"github.com/ogrande/tower-cards/internal/service"
	"github.com/ogrande/tower-cards/internal/version"
)

func main() {
	// Optional .env for local development; absence is fine.
	_ = godotenv.Load()

	configPath := os.Getenv(constants.EnvConfigPath)
	if configPath == "" {
		configPath = "./tower_config.json"
	}
	cfg := loadConfigOrExit(configPath)

	// TOWER_STORE overrides the configured snapshot location.
	if p := os.Getenv(constants.EnvStorePath); p != "" {
		cfg.StorePath = p
	}

	store := openStoreOrExit(cfg)
	factory, err := cardgen.NewFactory(cfg.NodeID)
	if err != nil {
		logging.Fatal("Failed to initialize card factory", err, logging.Fields{"node_id": cfg.NodeID})
	}

	svc := service.NewService(store, factory)
	handler := api.NewHandler(svc)

	router := gin.Default()

	apiRoutes := router.Group(constants.RouteAPIPrefix)
	{
		apiRoutes.GET(constants.RouteVersion, api.Version)
		apiRoutes.GET(constants.RouteTemplates, handler.ListTemplates)

		apiRoutes.GET(constants.RoutePlayer, handler.GetProfile)
		apiRoutes.GET(constants.RouteCards, handler.ListCards)
		apiRoutes.POST(constants.RouteDrop, handler.Drop)
		apiRoutes.POST(constants.RouteBattle, handler.Battle)
		apiRoutes.POST(constants.RouteSelect, handler.SelectCard)
		apiRoutes.POST(constants.RouteEnhance, handler.Enhance)
		apiRoutes.GET(constants.RouteFloor, handler.GetFloor)
		apiRoutes.POST(constants.RouteFloorNext, handler.NextFloor)
		apiRoutes.POST(constants.RouteFloorSet, handler.SetFloor)
		apiRoutes.POST(constants.RouteHourly, handler.Hourly)
		apiRoutes.POST(constants.RouteFarm, handler.Farm)
	}

	addr := cfg.ServerAddress
	logging.Info("Server started", logging.Fields{
		constants.LogFieldAddr:    addr,
		constants.LogFieldBackend: cfg.StoreBackend,
		"build":                   version.String(),
	})
	if err := router.Run(addr); err != nil {
		logging.Fatal("Failed to start server", err, nil)
	}
}
