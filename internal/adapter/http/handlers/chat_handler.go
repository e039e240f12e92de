package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	request "klusmarkt/internal/adapter/http/dto/request"
	response "klusmarkt/internal/adapter/http/dto/response"
	"klusmarkt/internal/usecase"
)

// ChatHandler serves job threads between a customer and one craftsman.
type ChatHandler struct {
	usecase usecase.IChatUseCase
}

func NewChatHandler(uc usecase.IChatUseCase) *ChatHandler {
	return &ChatHandler{usecase: uc}
}

// Messages godoc
// @Summary  Messages of a chat
// @Tags     chat
// @Produce  json
// @Param    chatId path string true "Chat ID (jobId_craftsmanId)"
// @Success  200 {object} response.ListResponse[entities.ChatMessage]
// @Failure  400 {object} pkg.HTTPError
// @Router   /chats/{chatId}/messages [get]
func (h *ChatHandler) Messages(c *gin.Context) {
	msgs, err := h.usecase.Messages(c.Request.Context(), c.Param("chatId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.NewList(msgs))
}

// Send godoc
// @Summary  Send a message
// @Tags     chat
// @Accept   json
// @Produce  json
// @Param    chatId path string true "Chat ID (jobId_craftsmanId)"
// @Param    message body request.ChatMessageRequest true "Message"
// @Success  201 {object} entities.ChatMessage
// @Failure  400 {object} pkg.HTTPError
// @Router   /chats/{chatId}/messages [post]
func (h *ChatHandler) Send(c *gin.Context) {
	var payload request.ChatMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	msg, err := h.usecase.Send(c.Request.Context(), c.Param("chatId"), payload.SenderID, payload.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// MarkRead godoc
// @Summary  Mark received messages as read
// @Tags     chat
// @Accept   json
// @Produce  json
// @Param    chatId path string true "Chat ID (jobId_craftsmanId)"
// @Param    reader body request.MarkReadRequest true "Reader"
// @Success  200 {object} response.MarkReadResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /chats/{chatId}/read [post]
func (h *ChatHandler) MarkRead(c *gin.Context) {
	var payload request.MarkReadRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondInvalidPayload(c)
		return
	}

	chatID := c.Param("chatId")
	n, err := h.usecase.MarkRead(c.Request.Context(), chatID, payload.ReaderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.MarkReadResponse{ChatID: chatID, Updated: n})
}
