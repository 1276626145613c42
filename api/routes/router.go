package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/boondocksgrill/ordering/api/controllers"
	cartcontrollers "github.com/boondocksgrill/ordering/api/controllers/cart"
	"github.com/boondocksgrill/ordering/api/middleware"
	"github.com/boondocksgrill/ordering/internal/cart"
	"github.com/boondocksgrill/ordering/internal/catalog"
	"github.com/boondocksgrill/ordering/pkg/config"
	"github.com/boondocksgrill/ordering/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	registry *prometheus.Registry,
	catalogService catalog.Service,
	cartService cart.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/menu", func(r chi.Router) {
		r.Get("/", controllers.MenuList(catalogService, logg))
		r.Get("/addons/{type}", controllers.MenuAddons(catalogService, logg))
	})

	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Get("/", cartcontrollers.Fetch(cartService, logg))
		r.Put("/", cartcontrollers.Replace(cartService, logg))
		r.Post("/items", cartcontrollers.AddItem(cartService, logg))
		r.Post("/items/{key}/decrement", cartcontrollers.Decrement(cartService, logg))
		r.Delete("/items/{key}", cartcontrollers.Delete(cartService, logg))
		r.Put("/items/{key}/addon", cartcontrollers.SetAddon(cartService, logg))
		r.Post("/checkout", cartcontrollers.Checkout(cartService, cfg.Pricing.ReceiptHeader, logg))
	})

	return r
}
