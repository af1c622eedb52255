package handlers

import (
	"github.com/gorilla/mux"

	"github.com/adkotun/tg-memory/memory-backend/middleware"
)

func (h *Handler) NewRouter() *mux.Router {
	r := mux.NewRouter()

	// Public routes
	r.HandleFunc("/api/auth", h.Auth).Methods("POST")
	r.HandleFunc("/api/leaderboard/{deckSize}", h.Leaderboard).Methods("GET")
	r.HandleFunc("/api/img/{hash}", h.Image).Methods("GET")

	// Secured routes
	secured := r.PathPrefix("/api/game").Subrouter()
	secured.Use(middleware.SessionValidation(h.sessions))
	secured.HandleFunc("/start", h.StartGame).Methods("POST")
	if h.rules.Flips == 2 {
		secured.HandleFunc("/open", h.RevealPair).Methods("POST")
	} else {
		secured.HandleFunc("/open", h.OpenCard).Methods("POST")
	}
	return r
}
