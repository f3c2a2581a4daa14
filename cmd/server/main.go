package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lintang/routesearch/docs"
	"lintang/routesearch/pkg/logging"
	"lintang/routesearch/pkg/routedata"
	"lintang/routesearch/pkg/server/rest"
	"lintang/routesearch/pkg/server/rest/service"
	"lintang/routesearch/pkg/spatial"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

var (
	listenAddr = flag.String("listenaddr", ":5000", "server listen address")
	mapFile    = flag.String("f", "map.json.zst", "route document buat road network graphnya")
	snapIndex  = flag.String("snap", "h3", "spatial index untuk snapping koordinat: h3 atau rtree")
	workers    = flag.Int("workers", 4, "jumlah worker untuk compare dan travel time matrix")
	logLevel   = flag.String("log-level", "info", "log level")
	logJSON    = flag.Bool("log-json", false, "log dalam format json")
	docsHost   = flag.String("docs-host", "localhost:5000", "host yang ditulis di swagger doc")
)

//	@title			routesearch API
//	@version		1.0
//	@description	uninformed & informed search di road network

// @host		localhost:5000
// @BasePath	/api
// @schemes	http
func main() {
	flag.Parse()
	logger, err := logging.New(*logLevel, *logJSON)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid log level")
	}

	ds, err := routedata.Load(*mapFile)
	if err != nil {
		logger.Fatal().Err(err).Str("file", *mapFile).Msg("load route document")
	}

	var index spatial.Index
	switch *snapIndex {
	case "h3":
		index = spatial.NewH3Index(ds.Graph.Intersections())
	case "rtree":
		index = spatial.NewRTreeIndex(ds.Graph.Intersections())
	default:
		logger.Fatal().Str("snap", *snapIndex).Msg("unknown spatial index")
	}

	reg := prometheus.NewRegistry()
	m := rest.NewMetrics(reg)

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(rest.PromeHttpMiddleware(m)) // prometheus http middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Mount("/debug", middleware.Profiler())

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	docs.SwaggerInfo.Host = *docsHost
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), // url swagger doc, relatif ke host server
	))

	navigatorSvc := service.NewNavigationService(ds, index, *workers, logger)
	rest.NavigatorRouter(r, navigatorSvc, m)

	srv := &http.Server{
		Addr:              *listenAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info().
			Str("addr", *listenAddr).
			Int("intersections", ds.Graph.NumIntersections()).
			Int("segments", ds.Graph.NumSegments()).
			Str("snap", *snapIndex).
			Msg("server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("listen")
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
	logger.Info().Msg("server stopped")
}
