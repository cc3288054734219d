// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package card

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/taibuivan/tolaria/internal/platform/apperr"
	"github.com/taibuivan/tolaria/internal/platform/middleware"
	requestutil "github.com/taibuivan/tolaria/internal/platform/request"
	"github.com/taibuivan/tolaria/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the card catalogue endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public
	router.Get("/{id}", handler.getCard)
	router.Get("/slug/{slug}", handler.getCardBySlug)

	return router
}

func (handler *Handler) getCard(writer http.ResponseWriter, request *http.Request) {
	idStr := requestutil.ID(request, "id")
	cardID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		respond.Error(writer, request, apperr.ValidationError("invalid card id"))
		return
	}

	found, err := handler.service.GetCard(request.Context(), cardID, viewerID(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, found)
}

func (handler *Handler) getCardBySlug(writer http.ResponseWriter, request *http.Request) {
	slug := requestutil.ID(request, "slug")

	found, err := handler.service.GetCardBySlug(request.Context(), slug, viewerID(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, found)
}

func viewerID(request *http.Request) string {
	if claims := middleware.GetUser(request.Context()); claims != nil {
		return claims.UserID
	}
	return ""
}
