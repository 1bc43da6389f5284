package app

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/hataden-app/hataden-price-checker/internal/config"
	handlers "github.com/hataden-app/hataden-price-checker/internal/http"
	"github.com/hataden-app/hataden-price-checker/internal/obs"
	"github.com/hataden-app/hataden-price-checker/internal/providers"
	"github.com/hataden-app/hataden-price-checker/internal/routes"
	"github.com/hataden-app/hataden-price-checker/internal/search"
	"github.com/prometheus/client_golang/prometheus"
)

type App struct {
	Router     http.Handler
	Aggregator search.AggregatorService
	Metrics    *obs.Metrics
	Logger     *slog.Logger
}

func New(cfg config.Config) *App {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	client := &http.Client{Timeout: cfg.ProviderTimeout}
	providersList := []search.Provider{
		providers.NewRakutenProvider(client, cfg.RakutenAppID, cfg.RakutenAffiliateID),
		providers.NewYahooProvider(client, cfg.YahooAppID, cfg.ValueCommerceSID, cfg.ValueCommercePID),
	}

	customRegistry := prometheus.NewRegistry()
	metrics := obs.NewMetrics(customRegistry)
	agg := search.NewAggregator(providersList, cfg.HitsPerSource, cfg.ProviderTimeout, metrics, logger)
	h := handlers.NewHandler(agg, metrics, cfg.ComputeTimeout, cfg.StaticDir)

	router := routes.GetRoutes(h, metrics, logger, cfg.StaticDir)

	return &App{
		Router:     router,
		Aggregator: agg,
		Metrics:    metrics,
		Logger:     logger,
	}
}
