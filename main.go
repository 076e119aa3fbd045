package main

import (
	"context"
	"database/sql"
	"net/http"
	"strings"

	chi "github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	nats "github.com/nats-io/nats.go"
	"go.uber.org/fx"
	"go.uber.org/zap"

	handler "github.com/Cba40/blogCBA/internal/handler/v1"
	"github.com/Cba40/blogCBA/internal/mailer"
	"github.com/Cba40/blogCBA/internal/service"
	"github.com/Cba40/blogCBA/internal/storage"
	"github.com/Cba40/blogCBA/internal/worker"
	"github.com/Cba40/blogCBA/pkg/envutils"
	"github.com/Cba40/blogCBA/pkg/httputils"
	"github.com/Cba40/blogCBA/pkg/natsinfo"
)

func NewLogger() (*zap.SugaredLogger, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

type HTTPServerConfig struct {
	Addr           string
	AllowedOrigins []string
}

func NewHTTPServerConfig() *HTTPServerConfig {
	return &HTTPServerConfig{
		Addr:           envutils.Env("HTTP_ADDR", ":5000"),
		AllowedOrigins: strings.Split(envutils.Env("CORS_ALLOWED_ORIGINS", "http://localhost:5173"), ","),
	}
}

const indexPage = `<!DOCTYPE html>
<html lang="es">
<head><meta charset="UTF-8" /><title>API del CBA Blog</title></head>
<body>
  <h1>API del CBA Blog</h1>
  <p><a href="/api/articles">Ver artículos</a></p>
  <p><a href="/api/subscribers">Ver suscriptores</a></p>
</body>
</html>`

type NewHTTPServerParams struct {
	fx.In
	Lifecycle fx.Lifecycle

	Config   *HTTPServerConfig
	Handlers []httputils.Handler `group:"handlers"`
	Log      *zap.SugaredLogger
}

func NewHTTPServer(params NewHTTPServerParams) *http.Server {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   params.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
	}))

	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		httputils.WriteHTMLResponse(w, http.StatusOK, indexPage)
	})

	for _, h := range params.Handlers {
		h.OnRouter(router)
	}

	server := &http.Server{
		Addr:    params.Config.Addr,
		Handler: router,
	}

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			params.Log.Infof("Serving on %s", server.Addr)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					params.Log.Errorf("http server stopped. Err:%s", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return server.Shutdown(ctx)
		},
	})

	return server
}

func main() {
	_ = godotenv.Load()

	fx.New(
		fx.Provide(
			NewLogger,

			storage.NewDatabaseConfig,
			storage.NewDatabaseConnection,
			func(db *sql.DB) *storage.Queries { return storage.New(db) },
			func(queries *storage.Queries) service.ArticleStore { return queries },
			func(queries *storage.Queries) service.SubscriberStore { return queries },

			natsinfo.NewNatsConfig,
			natsinfo.NewNatsConnection,
			func(js nats.JetStreamContext) natsinfo.Publisher { return js },

			mailer.NewSMTPConfig,
			mailer.NewSMTPMailer,
			func(m *mailer.SMTPMailer) service.Mailer { return m },

			service.NewSiteConfig,
			service.NewArticleService,
			service.NewSubscriberService,
			service.NewNewsletterService,
			service.NewContactService,

			handler.NewExportConfig,
			worker.NewContactConfig,

			httputils.AsHandler(`group:"handlers"`, handler.NewArticleHandler),
			httputils.AsHandler(`group:"handlers"`, handler.NewSubscriberHandler),
			httputils.AsHandler(`group:"handlers"`, handler.NewNewsletterHandler),
			httputils.AsHandler(`group:"handlers"`, handler.NewExportHandler),

			NewHTTPServerConfig,
			NewHTTPServer,
		),
		fx.Invoke(
			worker.StartContactConsumerWorker,
			func(*http.Server) {},
		),
	).Run()
}
