package handler

import (
	"net/http"

	"go.uber.org/fx"

	"github.com/Cba40/blogCBA/internal/model"
	"github.com/Cba40/blogCBA/internal/service"
	"github.com/Cba40/blogCBA/pkg/httputils"
)

type articleHandler struct {
	articleService *service.ArticleService
}

func (hand *articleHandler) GetArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := hand.articleService.ListArticles(r.Context())
	if err != nil {
		articleErrHandler(w, err)
		return
	}
	httputils.WriteJSONResponse(w, http.StatusOK, articles)
}

func (hand *articleHandler) GetArticleByID(w http.ResponseWriter, r *http.Request, params *ArticleURLParams) {
	article, err := hand.articleService.GetArticle(r.Context(), params.ID)
	if err != nil {
		articleErrHandler(w, err)
		return
	}
	httputils.WriteJSONResponse(w, http.StatusOK, article)
}

func (hand *articleHandler) CreateArticle(w http.ResponseWriter, r *http.Request, body *model.Article) {
	article, err := hand.articleService.CreateArticle(r.Context(), *body)
	if err != nil {
		articleErrHandler(w, err)
		return
	}
	httputils.WriteJSONResponse(w, http.StatusCreated, article)
}

func (hand *articleHandler) UpdateArticle(w http.ResponseWriter, r *http.Request, params *ArticleURLParams, body *model.Article) {
	article, err := hand.articleService.UpdateArticle(r.Context(), params.ID, *body)
	if err != nil {
		articleErrHandler(w, err)
		return
	}
	httputils.WriteJSONResponse(w, http.StatusOK, article)
}

func (hand *articleHandler) DeleteArticle(w http.ResponseWriter, r *http.Request, params *ArticleURLParams) {
	if err := hand.articleService.DeleteArticle(r.Context(), params.ID); err != nil {
		articleErrHandler(w, err)
		return
	}
	httputils.WriteMessageResponse(w, http.StatusOK, "Artículo eliminado")
}

var _ ArticleHandler = (*articleHandler)(nil)

type NewArticleHandlerParams struct {
	fx.In

	ArticleService *service.ArticleService
}

func NewArticleHandler(params NewArticleHandlerParams) *articleParamsWrapperHandler {
	return newArticleParamsWrapper(&articleHandler{
		articleService: params.ArticleService,
	})
}
