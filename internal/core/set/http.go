// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package set

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	requestutil "github.com/taibuivan/tolaria/internal/platform/request"
	"github.com/taibuivan/tolaria/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the set endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	// Public
	router.Get("/", handler.listSets)
	router.Get("/{code}", handler.getSet)

	return router
}

func (handler *Handler) listSets(writer http.ResponseWriter, request *http.Request) {
	sets, err := handler.service.ListSets(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, sets)
}

func (handler *Handler) getSet(writer http.ResponseWriter, request *http.Request) {
	code := requestutil.ID(request, "code")

	found, err := handler.service.GetSet(request.Context(), code)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, found)
}
