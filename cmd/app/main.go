package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"roamio/cmd/fx/config_fx"
	"roamio/cmd/fx/controllers_fx"
	"roamio/cmd/fx/places_fx"
	"roamio/cmd/fx/planner_fx"
	"roamio/cmd/fx/prompt_fx"
	"roamio/cmd/fx/trips_fx"
	"roamio/internal/api/controllers"
	"roamio/internal/config"
	"roamio/pkg/middleware"
)

func main() {
	fx.New(appOptions()).Run()
}

func appOptions() fx.Option {
	return fx.Options(
		config_fx.Module,
		prompt_fx.Module,
		places_fx.Module,
		trips_fx.Module,
		planner_fx.Module,
		controllers_fx.Module,

		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)
}

func StartServer(lc fx.Lifecycle, cfg config.Config, engine *gin.Engine, log *zap.Logger) {
	for _, key := range cfg.MissingCredentials() {
		log.Warn("credential not set; the backend that needs it will report an error per request", zap.String("key", key))
	}

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: engine}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			go func() {
				log.Info("starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("HTTP server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func ProvideRouter(
	cfg config.Config,
	log *zap.Logger,
	healthController *controllers.HealthController,
	itineraryController *controllers.ItineraryController,
	placesController *controllers.PlacesController,
	tripController *controllers.TripController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	RegisterRoutes(r, healthController, itineraryController, placesController, tripController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	healthController *controllers.HealthController,
	itineraryController *controllers.ItineraryController,
	placesController *controllers.PlacesController,
	tripController *controllers.TripController) {

	r.GET("/health", healthController.Health)

	itineraryGroup := r.Group("/itineraries")
	itineraryGroup.POST("", itineraryController.PlanTrip)
	itineraryGroup.POST("/prompt", itineraryController.PreviewPrompt)

	placesGroup := r.Group("/places")
	placesGroup.GET("/top", placesController.GetTopPlaces)
	placesGroup.GET("/search", placesController.SearchPlace)

	tripsGroup := r.Group("/trips")
	tripsGroup.POST("", tripController.SaveTrip)
	tripsGroup.GET("", tripController.ListTrips)
	tripsGroup.GET("/:id", tripController.GetTrip)
}
