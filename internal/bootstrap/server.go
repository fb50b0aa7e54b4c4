package bootstrap

import (
	"context"
	"net/http"
	"time"

	"github.com/connect237/busconnect/api"
	"github.com/connect237/busconnect/config"
	"github.com/connect237/busconnect/internal/catalog"
	"github.com/connect237/busconnect/internal/service/booking"
	"github.com/connect237/busconnect/internal/service/parcels"
	"github.com/connect237/busconnect/internal/service/routes"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Run starts the HTTP server and blocks until the context is canceled or the
// server fails.
func Run(
	ctx context.Context,
	cfg *config.Config,
	cat *catalog.Catalog,
	routeSvc routes.RouteUseCase,
	bookingSvc booking.BookingUseCase,
	parcelSvc parcels.ParcelUseCase,
	log zerolog.Logger,
) error {
	engine := newEngine(cfg, cat, routeSvc, bookingSvc, parcelSvc, log)

	srv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: engine,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func newEngine(
	cfg *config.Config,
	cat *catalog.Catalog,
	routeSvc routes.RouteUseCase,
	bookingSvc booking.BookingUseCase,
	parcelSvc parcels.ParcelUseCase,
	log zerolog.Logger,
) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger(log))
	engine.Use(cors(cfg.HTTP.CORSOrigins))

	engine.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	group := engine.Group("/api")
	api.NewCatalogHandler(cat).Register(group)
	api.NewRouteHandler(routeSvc).Register(group)
	api.NewBookingHandler(bookingSvc).Register(group)
	api.NewPromoHandler(cat).Register(group)
	api.NewParcelHandler(parcelSvc).Register(group)

	return engine
}

func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	}
}

func cors(origins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(origins))
	allowAll := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
		allowed[o] = true
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (allowAll || allowed[origin]) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
