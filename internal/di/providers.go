package di

import (
	"fmt"

	"TradePulse/internal/domain/repository"
	domsvc "TradePulse/internal/domain/service"
	"TradePulse/internal/handler/api"
	internalrepo "TradePulse/internal/repository"
	"TradePulse/internal/service/cache"
	"TradePulse/internal/service/coingecko"
	"TradePulse/internal/service/explain"
	"TradePulse/internal/service/metrics"
	"TradePulse/internal/service/ratelimit"
	"TradePulse/internal/usecase"
	"TradePulse/pkg/config"
	xhttp "TradePulse/pkg/http"
	pkgkafka "TradePulse/pkg/kafka"
	applogger "TradePulse/pkg/logger"
	"TradePulse/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	l, err := applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates the Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideSnapshotCache selects the cache backend from config.
func ProvideSnapshotCache(cfg *config.Config) cache.SnapshotCache {
	if cfg.Cache.Backend == "redis" {
		return cache.NewRedisCache(cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
	}
	return cache.NewMemoryCache()
}

// ProvidePriceSource creates the CoinGecko price source.
func ProvidePriceSource(cfg *config.Config) repository.PriceSource {
	return coingecko.New(cfg.CoinGecko.BaseURL, cfg.CoinGecko.APIKey, cfg.CoinGecko.FetchTimeout)
}

// ProvidePriceService creates the price use case with its batch pacer.
func ProvidePriceService(
	source repository.PriceSource,
	snapCache cache.SnapshotCache,
	m repository.Metrics,
	logger *applogger.Logger,
	cfg *config.Config,
) *usecase.PriceService {
	return usecase.NewPriceService(
		source,
		snapCache,
		m,
		logger,
		cfg.Cache.Freshness,
		cfg.CoinGecko.FetchTimeout,
		ratelimit.NewPacer(cfg.Pacing.PriceInterval),
	)
}

// ProvideSignalService creates the signal use case.
func ProvideSignalService(prices *usecase.PriceService, logger *applogger.Logger) *usecase.SignalService {
	return usecase.NewSignalService(prices, logger)
}

// ProvideAlertLog creates the bounded alert log.
func ProvideAlertLog() *usecase.AlertLog {
	return usecase.NewAlertLog(usecase.MaxStoredAlerts)
}

// ProvideAlertPublisher creates the optional Kafka fan-out. Returns nil
// when kafka is disabled in config.
func ProvideAlertPublisher(cfg *config.Config) (repository.AlertPublisher, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.WriteTimeout)
	if err != nil {
		return nil, fmt.Errorf("alert publisher: %w", err)
	}
	return internalrepo.NewKafkaAlertPublisher(producer), nil
}

// ProvideAlertService creates the alert use case.
func ProvideAlertService(
	log *usecase.AlertLog,
	publisher repository.AlertPublisher,
	m repository.Metrics,
	logger *applogger.Logger,
) *usecase.AlertService {
	return usecase.NewAlertService(log, publisher, m, logger)
}

// ProvideExplainer creates the rule-based explainer.
func ProvideExplainer() domsvc.Explainer {
	return explain.New()
}

// ProvideExplainService creates the explanation use case with its own pacer.
func ProvideExplainService(
	prices *usecase.PriceService,
	explainer domsvc.Explainer,
	logger *applogger.Logger,
	cfg *config.Config,
) *usecase.ExplainService {
	return usecase.NewExplainService(prices, explainer, ratelimit.NewPacer(cfg.Pacing.ExplainInterval), logger)
}

// ProvideHandler creates the HTTP handler.
func ProvideHandler(
	logger *applogger.Logger,
	prices *usecase.PriceService,
	signals *usecase.SignalService,
	alerts *usecase.AlertService,
	explainSvc *usecase.ExplainService,
	cfg *config.Config,
) xhttp.Handler {
	return api.NewHandler(logger, prices, signals, alerts, explainSvc, api.StreamConfig{
		Enabled:      cfg.Stream.Enabled,
		PushInterval: cfg.Stream.PushInterval,
	})
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	logger *applogger.Logger,
	handler xhttp.Handler,
	publisher repository.AlertPublisher,
) *server.App {
	if publisher != nil {
		return server.New(cfg, logger, handler, publisher)
	}
	return server.New(cfg, logger, handler)
}
