package di

import (
	"MarketLens/internal/catalog"
	"MarketLens/internal/domain/repository"
	"MarketLens/internal/handler/api"
	"MarketLens/internal/service/binance"
	"MarketLens/internal/service/graphmail"
	"MarketLens/internal/usecase"
	"MarketLens/pkg/config"
	xhttp "MarketLens/pkg/http"
	applogger "MarketLens/pkg/logger"
	"MarketLens/pkg/metrics"
	"MarketLens/pkg/server"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideCatalog builds the immutable fallback registry.
func ProvideCatalog() *catalog.Registry {
	return catalog.NewRegistry()
}

// ProvideQuoteSource creates the Binance quote adapter. The HTTP client
// timeout sits above the per-fetch context deadline so the context always
// fires first.
func ProvideQuoteSource(cfg *config.Config) repository.QuoteSource {
	httpClient := xhttp.NewClient(xhttp.WithTimeout(2 * cfg.Quotes.Timeout))
	return binance.New(httpClient,
		binance.WithBaseURL(cfg.Quotes.BaseURL),
		binance.WithQuoteAsset(cfg.Quotes.QuoteAsset),
	)
}

// ProvideMailTransport creates the Graph mail transport.
func ProvideMailTransport(cfg *config.Config) repository.MailTransport {
	httpClient := xhttp.NewClient()
	return graphmail.New(httpClient,
		cfg.Mail.TenantID,
		cfg.Mail.ClientID,
		cfg.Mail.ClientSecret,
		cfg.Mail.SenderEmail,
	)
}

// ProvideSnapshotService creates the degrading fetch orchestrator.
func ProvideSnapshotService(
	reg *catalog.Registry,
	source repository.QuoteSource,
	m repository.Metrics,
	logger *applogger.Logger,
	cfg *config.Config,
) *usecase.SnapshotService {
	return usecase.NewSnapshotService(reg, source, m, logger, cfg.Quotes.Timeout, cfg.Quotes.DefaultSymbol)
}

// ProvideNewsService creates the news feed assembler.
func ProvideNewsService(reg *catalog.Registry, snapshots *usecase.SnapshotService) *usecase.NewsService {
	return usecase.NewNewsService(reg, snapshots)
}

// ProvideEmailService creates the email dispatcher.
func ProvideEmailService(
	cfg *config.Config,
	transport repository.MailTransport,
	m repository.Metrics,
	logger *applogger.Logger,
) *usecase.EmailService {
	return usecase.NewEmailService(cfg.Mail, transport, m, logger)
}

// ProvideHandler creates the HTTP route handler.
func ProvideHandler(
	logger *applogger.Logger,
	snapshots *usecase.SnapshotService,
	news *usecase.NewsService,
	email *usecase.EmailService,
) xhttp.Handler {
	return api.NewAPIEchoHandler(logger, snapshots, news, email)
}

// ProvideApp creates the application server.
func ProvideApp(cfg *config.Config, handler xhttp.Handler, logger *applogger.Logger) *server.App {
	return server.New(cfg, handler, logger)
}
