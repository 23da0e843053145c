package app

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"openhours/internal/app/deps"
	"openhours/internal/app/services"
	evaluateopeninghours "openhours/internal/http/handlers/hours/evaluate_opening_hours"
	validateopeninghours "openhours/internal/http/handlers/hours/validate_opening_hours"
	createplace "openhours/internal/http/handlers/places/create_place"
	getplacestatus "openhours/internal/http/handlers/places/get_place_status"
	listplaces "openhours/internal/http/handlers/places/list_places"
	placeevents "openhours/internal/http/handlers/places/place_events"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	router := NewRouter(deps, s)
	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}

func NewRouter(deps *deps.Deps, s *services.Services) chi.Router {
	hoursRouter := chi.NewRouter()
	hoursRouter.Method(http.MethodPost, "/evaluate", evaluateopeninghours.New(s.EvaluateOpeningHours))
	hoursRouter.Method(http.MethodPost, "/validate", validateopeninghours.New(s.ValidateOpeningHours))

	placesRouter := chi.NewRouter()
	placesRouter.Method(http.MethodPost, "/", createplace.New(s.CreatePlace))
	placesRouter.Method(http.MethodGet, "/", listplaces.New(s.ListPlaces))
	placesRouter.Method(http.MethodGet, "/{placeID:[0-9]+}/status", getplacestatus.New(s.GetPlaceStatus))
	placesRouter.Method(
		http.MethodGet,
		"/events",
		placeevents.New(deps.Logger, deps.SseServer, deps.StatusRelay.Stream()),
	)

	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/hours", hoursRouter)
	router.Mount("/places", placesRouter)

	return router
}
