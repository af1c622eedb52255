package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/adkotun/tg-memory/memory-backend/models"
	"github.com/adkotun/tg-memory/memory-backend/responses"
	"github.com/adkotun/tg-memory/memory-backend/telegram"
	"github.com/adkotun/tg-memory/memory-backend/utils"
)

const storeTimeout = 5 * time.Second

// Auth exchanges Telegram init data for a session cookie. The raw assertion
// is consumed here and never stored; only the stable user row survives it.
func (h *Handler) Auth(w http.ResponseWriter, r *http.Request) {
	var req models.AuthRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		utils.HandleError(w, responses.BadRequestError{Msg: "Invalid request."})
		return
	}

	if req.InitData == "" || req.Hash == "" {
		utils.HandleError(w, responses.BadRequestError{Msg: "initData and hash are required."})
		return
	}

	initData, err := telegram.ParseInitData(req.InitData)
	if err != nil {
		utils.HandleError(w, responses.BadRequestError{Msg: "Invalid init data."})
		return
	}

	if !h.verifier.Verify(req.Hash, req.InitData) {
		utils.HandleError(w, responses.UnauthorizedError{Msg: "Telegram signature check failed."})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	user, err := h.store.UpsertUser(ctx, initData.User.ID, initData.User.FirstName, initData.User.PhotoURL)
	if err != nil {
		log.Println(err)
		utils.HandleError(w, responses.InternalServerError{Msg: "Failed to create user."})
		return
	}

	tokenString, err := h.sessions.Issue(&models.Claims{UserID: user.ID})
	if err != nil {
		utils.HandleError(w, responses.InternalServerError{Msg: "Failed to generate token."})
		return
	}

	h.setSessionCookie(w, tokenString)
	utils.HandleSuccess(w, models.SuccessResponse(map[string]string{"message": "Authenticated."}))
}
