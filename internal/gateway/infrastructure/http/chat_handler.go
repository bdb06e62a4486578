package http

import (
	"net/http"

	"github.com/Lexv0lk/secondhand-market/internal/gateway/domain"
	"github.com/Lexv0lk/secondhand-market/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

type openRoomRequestBody struct {
	Name           string `json:"name"`
	IsGlobal       bool   `json:"isGlobal"`
	ParticipantIDs []int  `json:"participantIds"`
}

type postMessageRequestBody struct {
	RoomID  int    `json:"roomId" binding:"required"`
	Content string `json:"content"`
}

type ChatHandler struct {
	service domain.ChatService
	logger  logging.Logger
}

func NewChatHandler(service domain.ChatService, logger logging.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		logger:  logger,
	}
}

func (h *ChatHandler) ListRooms(c *gin.Context) {
	rooms, err := h.service.ListRooms(c.Request.Context(), currentUserID(c))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, rooms)
}

// OpenRoom answers 201 for a new room and 200 when an existing room with the same members is returned.
func (h *ChatHandler) OpenRoom(c *gin.Context) {
	var body openRoomRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		abortInvalidRequest(c, "invalid request body")
		return
	}

	room, created, err := h.service.OpenRoom(
		c.Request.Context(),
		currentUserID(c),
		body.Name,
		body.IsGlobal,
		body.ParticipantIDs,
	)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	c.JSON(status, room)
}

func (h *ChatHandler) ListMessages(c *gin.Context) {
	roomID, ok := pathID(c)
	if !ok {
		return
	}

	messages, err := h.service.ListMessages(c.Request.Context(), currentUserID(c), roomID)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, messages)
}

func (h *ChatHandler) PostMessage(c *gin.Context) {
	var body postMessageRequestBody

	if err := c.ShouldBindJSON(&body); err != nil {
		abortInvalidRequest(c, "invalid request body")
		return
	}

	message, err := h.service.PostMessage(c.Request.Context(), currentUserID(c), body.RoomID, body.Content)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, message)
}
