package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

const indexPage = `<!DOCTYPE html>
<html>
<head>
    <title>TradePulse</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; line-height: 1.6; }
        h1 { color: #2c3e50; border-bottom: 2px solid #3498db; padding-bottom: 10px; }
        .endpoint { background: #f8f9fa; padding: 12px 15px; margin: 8px 0; border-radius: 5px; border-left: 4px solid #3498db; }
        .method { display: inline-block; width: 70px; padding: 3px 8px; margin-right: 10px; border-radius: 3px; text-align: center; font-weight: bold; font-size: 0.9em; }
        .get { background: #d4edda; color: #155724; }
        .post { background: #d1ecf1; color: #0c5460; }
        a { color: #2980b9; text-decoration: none; }
        .container { max-width: 800px; margin: 0 auto; }
    </style>
</head>
<body>
    <div class="container">
        <h1>TradePulse</h1>
        <p>Live prices and trading signals for BTC, ETH, SOL, PAXG.</p>
        <div class="endpoint"><span class="method get">GET</span> <a href="/health">/health</a> - Detailed health with endpoints</div>
        <div class="endpoint"><span class="method get">GET</span> <a href="/prices">/prices</a> - Live crypto prices</div>
        <div class="endpoint"><span class="method get">GET</span> <a href="/signals">/signals</a> - Trading signals from live prices</div>
        <div class="endpoint"><span class="method get">GET</span> <a href="/explain-signal?symbol=BTC">/explain-signal</a> - Explanation for one symbol</div>
        <div class="endpoint"><span class="method get">GET</span> <a href="/explain-all-signals">/explain-all-signals</a> - Explanations for all symbols</div>
        <div class="endpoint"><span class="method post">POST</span> /tradingview-webhook - Receive TradingView alerts</div>
        <div class="endpoint"><span class="method get">GET</span> <a href="/tradingview-alerts">/tradingview-alerts</a> - Recent alerts</div>
        <div class="endpoint"><span class="method get">GET</span> <a href="/alerts/BTC">/alerts/{symbol}</a> - Alerts for one symbol</div>
        <div class="endpoint"><span class="method get">GET</span> <a href="/cache-stats">/cache-stats</a> - Cache statistics</div>
        <div class="endpoint"><span class="method post">POST</span> /clear-alerts - Clear all alerts</div>
        <div class="endpoint"><span class="method post">POST</span> /clear-cache - Clear price cache</div>
    </div>
</body>
</html>
`

// Index serves a small endpoint directory.
func (h *Handler) Index(c echo.Context) error {
	return c.HTML(http.StatusOK, indexPage)
}
