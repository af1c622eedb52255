package handlers

import (
	"context"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/adkotun/tg-memory/memory-backend/game"
	"github.com/adkotun/tg-memory/memory-backend/models"
	"github.com/adkotun/tg-memory/memory-backend/responses"
	"github.com/adkotun/tg-memory/memory-backend/utils"
)

const leaderboardSize = 20

// Leaderboard returns the fastest completions for one deck size.
func (h *Handler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	deckSize, err := strconv.Atoi(vars["deckSize"])
	if err != nil || !game.ValidDeckSize(deckSize) {
		utils.HandleError(w, responses.BadRequestError{Msg: "deckSize must be one of 4, 6 or 8."})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	scores, err := h.store.TopScores(ctx, deckSize, leaderboardSize)
	if err != nil {
		log.Printf("Error fetching leaderboard: %v", err)
		utils.HandleError(w, responses.InternalServerError{Msg: "Failed to fetch the leaderboard."})
		return
	}

	if scores == nil {
		scores = []models.Score{}
	}
	utils.HandleSuccess(w, models.SuccessResponse(scores))
}
