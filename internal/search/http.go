// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package search

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/tolaria/internal/platform/apperr"
	"github.com/taibuivan/tolaria/internal/platform/middleware"
	"github.com/taibuivan/tolaria/internal/platform/respond"
	"github.com/taibuivan/tolaria/internal/search/param"
	"github.com/taibuivan/tolaria/pkg/pagination"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the search endpoint.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public; a signed-in user additionally gets ownership matching and
	// per-card owned counts.
	router.Get("/", handler.search)

	return router
}

func (handler *Handler) search(writer http.ResponseWriter, request *http.Request) {
	query := strings.TrimSpace(request.URL.Query().Get("q"))
	if query == "" {
		respond.Error(writer, request, apperr.ValidationError("search query is required"))
		return
	}

	searchRequest := Request{
		Query: query,
		Page:  pagination.FromRequest(request),
	}
	if claims := middleware.GetUser(request.Context()); claims != nil {
		searchRequest.Actor = &param.Actor{ID: claims.UserID, Username: claims.Username}
	}

	page, err := handler.service.Search(request.Context(), searchRequest)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, page)
}
