package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"net/http"

	chi "github.com/go-chi/chi/v5"
	"go.uber.org/fx"

	"github.com/Cba40/blogCBA/internal/service"
	"github.com/Cba40/blogCBA/pkg/httputils"
)

type SubscribeRequest struct {
	Email string `json:"email"`
}

type subscriberHandler struct {
	subscriberService *service.SubscriberService
}

func (hand *subscriberHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	var body SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httputils.WriteErrorResponse(w, http.StatusBadRequest, "Email inválido")
		return
	}

	_, already, err := hand.subscriberService.Subscribe(r.Context(), body.Email)
	switch {
	case errors.Is(err, service.ErrInvalidEmail):
		httputils.WriteErrorResponse(w, http.StatusBadRequest, "Email inválido")
	case err != nil:
		httputils.WriteErrorResponse(w, http.StatusInternalServerError, "Error al suscribir")
	case already:
		httputils.WriteMessageResponse(w, http.StatusOK, "Ya estás suscrito")
	default:
		httputils.WriteMessageResponse(w, http.StatusCreated, "Suscrito exitosamente")
	}
}

func (hand *subscriberHandler) ListSubscribers(w http.ResponseWriter, r *http.Request) {
	entries, err := hand.subscriberService.ListSubscribers(r.Context())
	if err != nil {
		httputils.WriteErrorResponse(w, http.StatusInternalServerError, "Error al obtener suscriptores")
		return
	}
	httputils.WriteJSONResponse(w, http.StatusOK, entries)
}

// Unsubscribe answers HTML: the link lands straight from an email client.
func (hand *subscriberHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		httputils.WriteHTMLResponse(w, http.StatusBadRequest, unsubscribePage("Falta el token de baja."))
		return
	}

	email, err := hand.subscriberService.Unsubscribe(r.Context(), token)
	switch {
	case errors.Is(err, service.ErrSubscriberNotFound):
		httputils.WriteHTMLResponse(w, http.StatusNotFound, unsubscribePage("Suscripción no encontrada."))
	case err != nil:
		httputils.WriteHTMLResponse(w, http.StatusInternalServerError, unsubscribePage("Error al darse de baja."))
	default:
		httputils.WriteHTMLResponse(w, http.StatusOK,
			unsubscribePage(fmt.Sprintf("Te has dado de baja: %s", html.EscapeString(email))))
	}
}

func unsubscribePage(message string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="es">
<head><meta charset="UTF-8" /><title>CBA Blog</title></head>
<body style="font-family: sans-serif; text-align: center; padding: 40px;">
  <h1>CBA Blog</h1>
  <p>%s</p>
</body>
</html>`, message)
}

func (hand *subscriberHandler) OnRouter(router http.Handler) {
	switch r := router.(type) {
	case *chi.Mux:
		r.Post("/api/subscribers", hand.Subscribe)
		r.Get("/api/subscribers", hand.ListSubscribers)
		r.Get("/api/unsubscribe", hand.Unsubscribe)
	}
}

var _ httputils.Handler = (*subscriberHandler)(nil)

type NewSubscriberHandlerParams struct {
	fx.In

	SubscriberService *service.SubscriberService
}

func NewSubscriberHandler(params NewSubscriberHandlerParams) *subscriberHandler {
	return &subscriberHandler{
		subscriberService: params.SubscriberService,
	}
}
