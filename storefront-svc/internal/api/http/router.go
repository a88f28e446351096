package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"overcooked-ordering/storefront-svc/internal/gateway"
)

// NewRouter serves the cart and checkout routes and proxies every other /api/
// path through the gateway.
func NewRouter(handler *Handler, gw *gateway.Gateway) http.Handler {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	gw.RegisterRoutes(r)
	return cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	}).Handler(r)
}
