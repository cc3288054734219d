// Copyright (c) 2026 Tolaria. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package collection

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

// Routes returns a [chi.Router] configured with the collection endpoints.
// Everything here acts on the signed-in user's own data.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	// # Owned Cards
	router.Get("/owned", handler.listOwned)
	router.Put("/owned/{printingID}", handler.setOwned)

	// # Decks
	router.Get("/decks", handler.listDecks)
	router.Post("/decks", handler.createDeck)
	router.Get("/decks/{id}", handler.getDeck)
	router.Delete("/decks/{id}", handler.deleteDeck)
	router.Put("/decks/{id}/cards/{cardID}", handler.setDeckCard)

	return router
}

func (handler *Handler) listOwned(writer http.ResponseWriter, request *http.Request) {
	owned, err := handler.service.ListOwned(request.Context(), ownerID(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, owned)
}

func (handler *Handler) setOwned(writer http.ResponseWriter, request *http.Request) {
	printingID, err := pathID(request, "printingID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input struct {
		Count int `json:"count"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	owned, err := handler.service.SetOwnedCount(request.Context(), ownerID(request), printingID, input.Count)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if owned == nil {
		respond.NoContent(writer)
		return
	}
	respond.OK(writer, owned)
}

func (handler *Handler) listDecks(writer http.ResponseWriter, request *http.Request) {
	decks, err := handler.service.ListDecks(request.Context(), ownerID(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, decks)
}

func (handler *Handler) createDeck(writer http.ResponseWriter, request *http.Request) {
	var input Deck
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	input.OwnerID = ownerID(request)

	if err := handler.service.CreateDeck(request.Context(), &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, input)
}

func (handler *Handler) getDeck(writer http.ResponseWriter, request *http.Request) {
	deckID, err := pathID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	deck, err := handler.service.GetDeck(request.Context(), ownerID(request), deckID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, deck)
}

func (handler *Handler) deleteDeck(writer http.ResponseWriter, request *http.Request) {
	deckID, err := pathID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.DeleteDeck(request.Context(), ownerID(request), deckID); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func (handler *Handler) setDeckCard(writer http.ResponseWriter, request *http.Request) {
	deckID, err := pathID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	cardID, err := pathID(request, "cardID")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input struct {
		Count int    `json:"count"`
		Board string `json:"board"`
	}
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	err = handler.service.SetDeckCard(request.Context(), ownerID(request), deckID, cardID, input.Count, input.Board)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

func ownerID(request *http.Request) string {
	if claims := middleware.GetUser(request.Context()); claims != nil {
		return claims.UserID
	}
	return ""
}

func pathID(request *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(requestutil.ID(request, name), 10, 64)
	if err != nil {
		return 0, apperr.ValidationError("invalid " + name)
	}
	return id, nil
}
