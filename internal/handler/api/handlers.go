package api

import (
	"errors"
	"net/http"

	"TradePulse/internal/domain/models"
	"TradePulse/internal/usecase"
	xhttp "TradePulse/pkg/http"
	xlogger "TradePulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// Handler implements the Echo HTTP surface over the price, signal, alert,
// and explain services.
type Handler struct {
	logger  *xlogger.Logger
	prices  *usecase.PriceService
	signals *usecase.SignalService
	alerts  *usecase.AlertService
	explain *usecase.ExplainService
	stream  StreamConfig
}

func NewHandler(
	logger *xlogger.Logger,
	prices *usecase.PriceService,
	signals *usecase.SignalService,
	alerts *usecase.AlertService,
	explain *usecase.ExplainService,
	stream StreamConfig,
) *Handler {
	return &Handler{
		logger:  logger,
		prices:  prices,
		signals: signals,
		alerts:  alerts,
		explain: explain,
		stream:  stream,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Index)
	e.GET("/_health", h.Liveness)
	e.GET("/health", h.Health)
	e.GET("/prices", h.Prices)
	e.GET("/signals", h.Signals)
	e.GET("/explain-signal", h.ExplainSignal)
	e.GET("/explain-all-signals", h.ExplainAllSignals)
	e.POST("/tradingview-webhook", h.TradingViewWebhook)
	e.GET("/tradingview-alerts", h.TradingViewAlerts)
	e.GET("/alerts/:symbol", h.SymbolAlerts)
	e.GET("/cache-stats", h.CacheStats)
	e.POST("/clear-alerts", h.ClearAlerts)
	e.POST("/clear-cache", h.ClearCache)
	if h.stream.Enabled {
		e.GET("/ws/prices", h.StreamPrices)
	}
}

var endpointList = []string{
	"GET /health",
	"GET /prices",
	"GET /signals",
	"GET /explain-signal?symbol=BTC",
	"GET /explain-all-signals",
	"POST /tradingview-webhook",
	"GET /tradingview-alerts",
	"GET /alerts/{symbol}",
	"GET /cache-stats",
	"POST /clear-alerts",
	"POST /clear-cache",
}

// Liveness is the plain probe used by the deployment platform.
func (h *Handler) Liveness(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) Health(c echo.Context) error {
	return xhttp.SuccessResponse(c, models.HealthResponse{
		Status:         "healthy",
		Service:        "tradepulse",
		SupportedCoins: models.SupportedSymbols,
		Endpoints:      endpointList,
	})
}

func (h *Handler) Prices(c echo.Context) error {
	snaps := h.prices.AllPrices(c.Request().Context())
	return xhttp.SuccessResponse(c, snaps)
}

func (h *Handler) Signals(c echo.Context) error {
	entries := h.signals.AllSignals(c.Request().Context())
	return xhttp.SuccessResponse(c, entries)
}

func (h *Handler) ExplainSignal(c echo.Context) error {
	req := &models.ExplainRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	expl, err := h.explain.ExplainSymbol(c.Request().Context(), req.Symbol)
	if err != nil {
		return h.explainError(c, req.Symbol, err)
	}
	return xhttp.SuccessResponse(c, expl)
}

func (h *Handler) ExplainAllSignals(c echo.Context) error {
	expls := h.explain.ExplainAll(c.Request().Context())
	return xhttp.SuccessResponse(c, expls)
}

func (h *Handler) TradingViewWebhook(c echo.Context) error {
	req := &models.WebhookRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	alert, err := h.alerts.Record(c.Request().Context(), req.Symbol, req.Price, req.AlertName)
	if err != nil {
		if errors.Is(err, models.ErrUnsupportedSymbol) {
			return xhttp.AppErrorResponse(c,
				xhttp.NewAppError("ERR_UNSUPPORTED_SYMBOL", err.Error(), http.StatusBadRequest).WithError(err))
		}
		h.logger.Error("webhook record failed", xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}
	return xhttp.CreatedResponse(c, alert)
}

func (h *Handler) TradingViewAlerts(c echo.Context) error {
	alerts := h.alerts.ListAll()
	return xhttp.SuccessResponse(c, models.AlertListResponse{Count: len(alerts), Alerts: alerts})
}

func (h *Handler) SymbolAlerts(c echo.Context) error {
	alerts := h.alerts.ListBySymbol(c.Param("symbol"))
	return xhttp.SuccessResponse(c, models.AlertListResponse{Count: len(alerts), Alerts: alerts})
}

func (h *Handler) CacheStats(c echo.Context) error {
	stats, err := h.prices.CacheStats(c.Request().Context())
	if err != nil {
		h.logger.Error("cache stats failed", xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}
	return xhttp.SuccessResponse(c, models.CacheStatsResponse{
		CachedEntries: stats.Entries,
		CachedSymbols: stats.Symbols,
		AlertCount:    h.alerts.Count(),
	})
}

func (h *Handler) ClearAlerts(c echo.Context) error {
	h.alerts.ClearAll()
	return xhttp.SuccessResponse(c, models.ClearedResponse{Cleared: "alerts"})
}

func (h *Handler) ClearCache(c echo.Context) error {
	if err := h.prices.ClearCache(c.Request().Context()); err != nil {
		h.logger.Error("cache clear failed", xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}
	return xhttp.SuccessResponse(c, models.ClearedResponse{Cleared: "cache"})
}

// explainError maps explain failures: 400 for symbols outside the supported
// set, 503 when the price fetch failed.
func (h *Handler) explainError(c echo.Context, symbol string, err error) error {
	if errors.Is(err, models.ErrUnsupportedSymbol) {
		return xhttp.AppErrorResponse(c,
			xhttp.NewAppError("ERR_UNSUPPORTED_SYMBOL", err.Error(), http.StatusBadRequest).WithError(err))
	}
	h.logger.Warn("explain failed", xlogger.String("symbol", symbol), xlogger.Error(err))
	return xhttp.AppErrorResponse(c, xhttp.ServiceUnavailableErrorf("price fetch failed for %s", symbol).WithError(err))
}
