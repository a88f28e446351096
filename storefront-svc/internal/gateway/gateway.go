package gateway

import (
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	MenuSvcURL  string
	StatsSvcURL string
}

// Gateway forwards the /api/ routes the storefront does not serve itself.
type Gateway struct {
	config Config
	client HTTPClient
	logger *zap.Logger
}

func NewGateway(config Config, client HTTPClient, logger *zap.Logger) *Gateway {
	return &Gateway{
		config: config,
		client: client,
		logger: logger,
	}
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	g.logger.Debug("proxy", zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.String("target", targetURL))

	url := targetURL + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		g.logger.Error("failed to create proxy request", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Error("failed to proxy", zap.String("target", targetURL), zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		g.logger.Warn("failed to copy proxied response", zap.Error(err))
	}
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	if strings.HasPrefix(path, "/api/restaurants/") && strings.HasSuffix(path, "/overview") {
		g.ProxyRequest(w, r, g.config.StatsSvcURL)
		return
	}

	if path == "/api/cart-settings" ||
		strings.HasPrefix(path, "/api/orders") ||
		strings.HasPrefix(path, "/api/check/") ||
		strings.HasPrefix(path, "/api/restaurants/") {
		g.ProxyRequest(w, r, g.config.MenuSvcURL)
		return
	}

	g.logger.Info("unmatched api route", zap.String("method", r.Method), zap.String("path", path))
	http.Error(w, "API route not found", http.StatusNotFound)
}

// RegisterRoutes must run after the storefront's own routes so they win.
func (g *Gateway) RegisterRoutes(r *mux.Router) {
	r.PathPrefix("/api/").HandlerFunc(g.RouteHandler)
}
