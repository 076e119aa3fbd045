package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/fx"

	"github.com/Cba40/blogCBA/internal/service"
	"github.com/Cba40/blogCBA/pkg/httputils"
)

type NewsletterRequest struct {
	Subject string `json:"subject"`
	Content string `json:"content"`
}

type newsletterResponse struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

type newsletterHandler struct {
	newsletterService *service.NewsletterService
	contactService    *service.ContactService
}

func (hand *newsletterHandler) SendNewsletter(w http.ResponseWriter, r *http.Request) {
	var body NewsletterRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httputils.WriteErrorResponse(w, http.StatusBadRequest, "Faltan asunto o contenido")
		return
	}

	count, err := hand.newsletterService.Dispatch(r.Context(), body.Subject, body.Content)
	switch {
	case errors.Is(err, service.ErrMissingFields):
		httputils.WriteErrorResponse(w, http.StatusBadRequest, "Faltan asunto o contenido")
	case errors.Is(err, service.ErrNoSubscribers):
		httputils.WriteMessageResponse(w, http.StatusOK, "No hay suscriptores")
	case err != nil:
		httputils.WriteErrorResponse(w, http.StatusInternalServerError, "Error al enviar emails")
	default:
		httputils.WriteJSONResponse(w, http.StatusOK, newsletterResponse{
			Message: fmt.Sprintf("Newsletter enviado a %d suscriptor(es)", count),
			Count:   count,
		})
	}
}

func (hand *newsletterHandler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var body NewsletterRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httputils.WriteErrorResponse(w, http.StatusBadRequest, "Faltan asunto o contenido")
		return
	}

	err := hand.contactService.Submit(r.Context(), body.Subject, body.Content)
	switch {
	case errors.Is(err, service.ErrMissingContactFields):
		httputils.WriteErrorResponse(w, http.StatusBadRequest, "Faltan asunto o contenido")
	case err != nil:
		httputils.WriteErrorResponse(w, http.StatusInternalServerError, "No se pudo enviar el mensaje")
	default:
		httputils.WriteMessageResponse(w, http.StatusOK, "Mensaje recibido")
	}
}

func (hand *newsletterHandler) OnRouter(router http.Handler) {
	switch r := router.(type) {
	case *chi.Mux:
		r.Post("/api/newsletter", hand.SendNewsletter)
		r.Post("/api/contact", hand.SubmitContact)
	}
}

var _ httputils.Handler = (*newsletterHandler)(nil)

type NewNewsletterHandlerParams struct {
	fx.In

	NewsletterService *service.NewsletterService
	ContactService    *service.ContactService
}

func NewNewsletterHandler(params NewNewsletterHandlerParams) *newsletterHandler {
	return &newsletterHandler{
		newsletterService: params.NewsletterService,
		contactService:    params.ContactService,
	}
}
