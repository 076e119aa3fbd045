package handler

import (
	"crypto/subtle"
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/fx"

	"github.com/Cba40/blogCBA/internal/model"
	"github.com/Cba40/blogCBA/internal/service"
	"github.com/Cba40/blogCBA/pkg/envutils"
	"github.com/Cba40/blogCBA/pkg/httputils"
)

type ExportConfig struct {
	// Token gates the full-dump endpoint. Empty disables it entirely.
	Token string
}

func NewExportConfig() *ExportConfig {
	return &ExportConfig{
		Token: envutils.EnvSecret("EXPORT_TOKEN"),
	}
}

type exportResponse struct {
	Timestamp   string             `json:"timestamp"`
	Articles    []model.Article    `json:"articles"`
	Subscribers []model.Subscriber `json:"subscribers"`
}

type exportHandler struct {
	config            *ExportConfig
	articleService    *service.ArticleService
	subscriberService *service.SubscriberService
}

func (hand *exportHandler) ExportData(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if hand.config.Token == "" ||
		subtle.ConstantTimeCompare([]byte(token), []byte(hand.config.Token)) != 1 {
		httputils.WriteErrorResponse(w, http.StatusForbidden, "Token inválido")
		return
	}

	articles, err := hand.articleService.ListArticles(r.Context())
	if err != nil {
		httputils.WriteErrorResponse(w, http.StatusInternalServerError, "Error al exportar datos")
		return
	}
	subscribers, err := hand.subscriberService.Recipients(r.Context())
	if err != nil {
		httputils.WriteErrorResponse(w, http.StatusInternalServerError, "Error al exportar datos")
		return
	}

	httputils.WriteJSONResponse(w, http.StatusOK, exportResponse{
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		Articles:    articles,
		Subscribers: subscribers,
	})
}

func (hand *exportHandler) OnRouter(router http.Handler) {
	switch r := router.(type) {
	case *chi.Mux:
		r.Get("/api/export-data/{token}", hand.ExportData)
	}
}

var _ httputils.Handler = (*exportHandler)(nil)

type NewExportHandlerParams struct {
	fx.In

	Config            *ExportConfig
	ArticleService    *service.ArticleService
	SubscriberService *service.SubscriberService
}

func NewExportHandler(params NewExportHandlerParams) *exportHandler {
	return &exportHandler{
		config:            params.Config,
		articleService:    params.ArticleService,
		subscriberService: params.SubscriberService,
	}
}
