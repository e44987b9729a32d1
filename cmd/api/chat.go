package main

import (
	"net/http"
	"strings"

	"ruchi/internal/chat"
)

type ChatPayload struct {
	Message string         `json:"message" validate:"required,max=2000"`
	History []chat.Message `json:"history" validate:"max=50,dive"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

// chatHandler godoc
//
//	@Summary		Ask Ruchi AI
//	@Description	Sends the conversation to the food assistant. On upstream failure the response is 502 carrying a friendly fallback message.
//	@Tags			chat
//	@Accept			json
//	@Produce		json
//	@Param			payload	body		ChatPayload	true	"Message and prior turns"
//	@Success		200		{object}	ChatResponse
//	@Failure		400		{object}	ErrorBadRequestResponse
//	@Failure		502		{object}	error
//	@Failure		503		{object}	error
//	@Router			/chat [post]
func (app *application) chatHandler(w http.ResponseWriter, r *http.Request) {
	var payload ChatPayload
	if err := readJSON(w, r, &payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}
	payload.Message = strings.TrimSpace(payload.Message)

	if err := Validate.Struct(payload); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if !app.assistant.Configured() {
		app.serviceUnavailableResponse(w, r, chat.ErrNotConfigured)
		return
	}

	reply, err := app.assistant.Reply(r.Context(), payload.History, payload.Message)
	if err != nil {
		app.upstreamErrorResponse(w, r, err, chat.FallbackReply)
		return
	}

	if err := app.jsonResponse(w, http.StatusOK, ChatResponse{Reply: reply}); err != nil {
		app.internalServerError(w, r, err)
	}
}
