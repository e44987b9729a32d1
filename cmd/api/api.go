package main

import (
	"context"
	"errors"
	"expvar"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"ruchi/docs" //this is required to generate swagger docs
	"ruchi/internal/auth"
	"ruchi/internal/chat"
	"ruchi/internal/geocode"
	"ruchi/internal/mailer"
	"ruchi/internal/notifications"
	"ruchi/internal/ratelimiter"
	"ruchi/internal/sharecode"
	"ruchi/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config        config
	store         store.Storage
	logger        *zap.SugaredLogger
	mailer        mailer.Client
	push          notifications.PushSender
	authenticator auth.Authenticator
	rateLimiter   ratelimiter.Limiter
	geocoder      *geocode.Client
	assistant     *chat.Client
	shareCodes    *sharecode.Codec

	// tracks best-effort background work so shutdown can wait for it
	wg sync.WaitGroup
}

type config struct {
	addr        string
	db          dbConfig
	env         string
	apiURL      string
	mail        mailConfig
	auth        authConfig
	rateLimiter ratelimiter.Config
	geocode     geocodeConfig
	chat        chat.Config
	shareSalt   string
	expoEnabled bool
}

type authConfig struct {
	basic       basicConfig
	token       tokenConfig
	mockLogin   bool
	demoAdmin   bool
	adminEmails []string
}

type tokenConfig struct {
	refreshSecret   string
	secret          string
	accessTokenExp  time.Duration
	refreshTokenExp time.Duration
	iss             string
}

type basicConfig struct {
	user string
	pass string
}

type mailConfig struct {
	smtp mailer.SMTPConfig
}

type dbConfig struct {
	addr         string
	maxOpenConns int
	maxIdleTime  string
}

type geocodeConfig struct {
	url     string
	timeout time.Duration
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))

	if app.config.rateLimiter.Enabled {
		r.Use(app.RateLimiterMiddleware)
	}

	//Set a timeout value on the request context (ctx), that will signal through ctx.Done() that the request has timed out and further processing should be stopped
	r.Use(middleware.Timeout(60 * time.Second))

	r.Route("/v1", func(r chi.Router) {
		r.With(app.BasicAuthMiddleware()).Get("/health", app.healthCheckHandler)
		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

		r.With(app.BasicAuthMiddleware()).Get("/debug/vars", expvar.Handler().ServeHTTP)

		r.Get("/districts", app.listDistrictsHandler)
		r.Get("/food-types", app.listFoodTypesHandler)
		r.Get("/locations/resolve", app.resolveLocationHandler)
		r.Post("/chat", app.chatHandler)

		// share links resolve without a session
		r.Get("/s/{code}", app.getSpotByShareCodeHandler)

		r.Route("/spots", func(r chi.Router) {
			r.Get("/", app.listSpotsHandler)
			r.With(app.AuthTokenMiddleware).Post("/", app.createSpotHandler)

			r.Route("/{spotID}", func(r chi.Router) {
				r.With(app.OptionalAuthMiddleware).Get("/", app.getSpotHandler)
				r.With(app.OptionalAuthMiddleware).Get("/reviews", app.listSpotReviewsHandler)
				r.With(app.AuthTokenMiddleware).Post("/reviews", app.createReviewHandler)
				r.With(app.AuthTokenMiddleware).Put("/favorite", app.toggleFavoriteHandler)
			})
		})

		r.Route("/users/me", func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)
			r.Get("/", app.getProfileHandler)
			r.Patch("/", app.updateProfileHandler)
			r.Get("/favorites", app.listFavoritesHandler)
			r.Get("/history", app.listHistoryHandler)
			r.Put("/push-token", app.savePushTokenHandler)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(app.AuthTokenMiddleware)
			r.Use(app.RequireAdmin)
			r.Get("/spots/pending", app.listPendingSpotsHandler)
			r.Post("/spots/{spotID}/approve", app.approveSpotHandler)
			r.Delete("/spots/{spotID}", app.deleteSpotHandler)
		})

		// Public routes
		r.Route("/authentication", func(r chi.Router) {
			r.Post("/user", app.registerUserHandler)
			r.Post("/token", app.createTokenHandler)
			r.Post("/refresh", app.refreshTokenHandler)
		})
	})
	return r
}

func (app *application) run(mux http.Handler) error {
	// Docs
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/v1"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	// Implementing graceful shutdown
	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdown <- err
		}

		app.logger.Infow("completing background tasks", "addr", srv.Addr)
		app.wg.Wait()
		shutdown <- nil
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
