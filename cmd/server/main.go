package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/kalakararena/api/internal/http/health"
	"github.com/kalakararena/api/internal/http/v1/routes"
	"github.com/kalakararena/api/internal/platform/auth"
	appconfig "github.com/kalakararena/api/internal/platform/config"
	appfirebase "github.com/kalakararena/api/internal/platform/firebase"
	applog "github.com/kalakararena/api/internal/platform/logging"
	appmiddleware "github.com/kalakararena/api/internal/platform/middleware"
	"github.com/kalakararena/api/internal/platform/respond"
	"github.com/kalakararena/api/internal/platform/storage"
	accountsvc "github.com/kalakararena/api/internal/service/account"
	contactsvc "github.com/kalakararena/api/internal/service/contact"
	creatorsvc "github.com/kalakararena/api/internal/service/creator"
	"github.com/kalakararena/api/internal/service/directory"
	followsvc "github.com/kalakararena/api/internal/service/follow"
	postsvc "github.com/kalakararena/api/internal/service/post"
	profilesvc "github.com/kalakararena/api/internal/service/profile"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	cfg, err := appconfig.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		applog.LogFatal(context.Background(), "config load failed", err)
	}

	ctx := context.Background()
	clients, err := appfirebase.InitializeClients(ctx, appfirebase.Config{
		ProjectID:                    cfg.Firebase.ProjectID,
		GoogleApplicationCredentials: cfg.Firebase.CredentialsFile,
	})
	if err != nil {
		applog.LogFatal(ctx, "firebase initialization failed", err)
	}
	defer func() {
		if err := clients.Close(); err != nil {
			applog.LogError(context.Background(), "firebase client close error", err)
		}
	}()

	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Security("/api-docs"),
		appmiddleware.Vary(),
		appmiddleware.CORS(cfg.CORS.AllowedOrigins),
		appmiddleware.RequestID(),
		// RealIP extracts client IP from X-Real-IP or X-Forwarded-For headers.
		// SECURITY: Only use behind a trusted reverse proxy (e.g., Cloud Run, nginx).
		// Without a trusted proxy, clients can spoof their IP address.
		chimiddleware.RealIP,
		// RequestSize limits request body size to keep image uploads bounded.
		chimiddleware.RequestSize(10<<20), // 10 MB limit
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)
	respond.Install()

	router.Get("/health", health.Handler)

	humaCfg := huma.DefaultConfig("Kalakar Arena API", Version)
	humaCfg.DocsPath = "/api-docs"
	api := humachi.New(router, humaCfg)

	// Add CBOR content type to OpenAPI requests and responses
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation,
		func(_ *huma.OpenAPI, op *huma.Operation) {
			if op.RequestBody != nil && op.RequestBody.Content != nil {
				if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
					op.RequestBody.Content["application/cbor"] = jsonContent
				}
			}
			for _, resp := range op.Responses {
				if resp.Content == nil {
					continue
				}
				if jsonContent, ok := resp.Content["application/json"]; ok {
					resp.Content["application/cbor"] = jsonContent
				}
			}
		},
	)

	profiles := profilesvc.NewFirestoreStore(clients.Firestore)
	creators := creatorsvc.NewFirestoreStore(clients.Firestore)
	posts := postsvc.NewFirestoreStore(clients.Firestore)
	follows := followsvc.NewFirestoreStore(clients.Firestore)
	contacts := contactsvc.NewFirestoreStore(clients.Firestore)

	routes.Register(api, auth.NewFirebaseVerifier(clients.Auth), routes.Services{
		Accounts:  accountsvc.NewFirebaseService(clients.Auth, profiles, creators),
		Profiles:  profiles,
		Creators:  creators,
		Posts:     posts,
		Follows:   follows,
		Contacts:  contacts,
		Directory: directory.NewComposite(profiles, creators, posts, follows, contacts),

		Store:         storage.NewGCSStore(clients.Storage),
		AvatarsBucket: cfg.Storage.AvatarsBucket,
		PostsBucket:   cfg.Storage.PostsBucket,
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}

	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(context.Background(), "server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		applog.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		os.Exit(1)
	case <-stop:
		applog.LogInfo(context.Background(), "shutdown signal received")
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		applog.LogError(shutdownCtx, "server shutdown error", err)
	}
	applog.LogInfo(context.Background(), "server exited")
}
