package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/mstead/pantry/internal/chatbot"
	"github.com/mstead/pantry/internal/websocket"
)

// ChatbotHandler bridges the chat endpoint to an Interpreter. When the bot
// changed the list it also notifies WebSocket clients, so open tabs refresh
// even before the chatbot's own client does.
type ChatbotHandler struct {
	bot    chatbot.Interpreter
	hub    *websocket.Hub
	logger *slog.Logger
}

func NewChatbotHandler(bot chatbot.Interpreter, hub *websocket.Hub, logger *slog.Logger) *ChatbotHandler {
	return &ChatbotHandler{bot: bot, hub: hub, logger: logger}
}

func (h *ChatbotHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeMessage(w, http.StatusBadRequest, "message is required")
		return
	}

	reply, err := h.bot.Interpret(req.Message)
	if err != nil {
		h.logger.Error("interpret message", "error", err)
		writeMessage(w, http.StatusInternalServerError, "failed to process message")
		return
	}

	if reply.Refresh && h.hub != nil {
		h.hub.Broadcast(websocket.NewMessage("grocery", "changed", ""))
	}

	writeJSON(w, http.StatusOK, reply)
}
