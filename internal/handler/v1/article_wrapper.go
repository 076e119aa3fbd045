package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/Cba40/blogCBA/internal/model"
	"github.com/Cba40/blogCBA/internal/service"
	"github.com/Cba40/blogCBA/pkg/httputils"
)

type ArticleURLParams struct {
	ID string
}

type ArticleHandler interface {
	GetArticles(w http.ResponseWriter, r *http.Request)
	GetArticleByID(w http.ResponseWriter, r *http.Request, params *ArticleURLParams)
	CreateArticle(w http.ResponseWriter, r *http.Request, body *model.Article)
	UpdateArticle(w http.ResponseWriter, r *http.Request, params *ArticleURLParams, body *model.Article)
	DeleteArticle(w http.ResponseWriter, r *http.Request, params *ArticleURLParams)
}

type articleParamsWrapperHandler struct {
	handler ArticleHandler
}

func articleURLParams(r *http.Request) *ArticleURLParams {
	return &ArticleURLParams{ID: chi.URLParam(r, "id")}
}

func decodeArticleBody(w http.ResponseWriter, r *http.Request) (*model.Article, bool) {
	var body model.Article
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httputils.WriteErrorResponse(w, http.StatusBadRequest, "Cuerpo de la petición inválido")
		return nil, false
	}
	return &body, true
}

func (h *articleParamsWrapperHandler) GetArticles(w http.ResponseWriter, r *http.Request) {
	h.handler.GetArticles(w, r)
}

func (h *articleParamsWrapperHandler) GetArticleByID(w http.ResponseWriter, r *http.Request) {
	h.handler.GetArticleByID(w, r, articleURLParams(r))
}

func (h *articleParamsWrapperHandler) CreateArticle(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeArticleBody(w, r)
	if !ok {
		return
	}
	h.handler.CreateArticle(w, r, body)
}

func (h *articleParamsWrapperHandler) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	body, ok := decodeArticleBody(w, r)
	if !ok {
		return
	}
	h.handler.UpdateArticle(w, r, articleURLParams(r), body)
}

func (h *articleParamsWrapperHandler) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	h.handler.DeleteArticle(w, r, articleURLParams(r))
}

func (h *articleParamsWrapperHandler) OnRouter(router http.Handler) {
	switch r := router.(type) {
	case *chi.Mux:
		r.Get("/api/articles", h.GetArticles)
		r.Post("/api/articles", h.CreateArticle)
		r.Get("/api/articles/{id}", h.GetArticleByID)
		r.Put("/api/articles/{id}", h.UpdateArticle)
		r.Delete("/api/articles/{id}", h.DeleteArticle)
	}
}

var _ httputils.Handler = (*articleParamsWrapperHandler)(nil)

func newArticleParamsWrapper(handler ArticleHandler) *articleParamsWrapperHandler {
	return &articleParamsWrapperHandler{
		handler: handler,
	}
}

func articleErrHandler(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrArticleNotFound):
		httputils.WriteErrorResponse(w, http.StatusNotFound, "No encontrado")
	case errors.Is(err, service.ErrMissingArticleFields):
		httputils.WriteErrorResponse(w, http.StatusBadRequest, "Faltan campos requeridos")
	case errors.Is(err, service.ErrArticleExists):
		httputils.WriteErrorResponse(w, http.StatusBadRequest, "Ya existe un artículo con ese id")
	default:
		httputils.WriteErrorResponse(w, http.StatusInternalServerError, "Error interno del servidor")
	}
}
