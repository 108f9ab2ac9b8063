package main

import (
	"context"
	"ecommerce-dashboard/internal/api"
	"ecommerce-dashboard/internal/api/handler"
	"ecommerce-dashboard/internal/config"
	"ecommerce-dashboard/internal/source"
	"ecommerce-dashboard/pkg/router"
	"ecommerce-dashboard/pkg/utils"
	"os"

	"github.com/jessevdk/go-flags"
	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("log")

type options struct {
	Config string `short:"c" long:"config" description:"JSON config file" default:"config.json"`
}

// @title E-commerce Dashboard API
// @version 1.0
// @description Year-filtered sales reports over the e-commerce order export.
// @host localhost:8080
// @BasePath /
func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		log.Fatalf("%s", err)
	}
	if err := utils.InitLogger(cfg.LogLevel); err != nil {
		log.Fatalf("%s", err)
	}
	log.Debugf("Config: %+v", cfg)

	table, err := source.Load(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	h := handler.New(table, handler.Options{
		TopN:           cfg.TopN,
		DefaultYears:   cfg.DefaultYears,
		AvailableYears: cfg.AvailableYears,
	})

	// Create router
	r := router.New()

	// Register API routes
	api.RegisterRoutes(r, h)

	// Start server
	if err := r.Start(cfg.Address, cfg.Timeout()); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
