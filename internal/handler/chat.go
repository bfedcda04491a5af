package handler

import (
	"learntendo/internal/domain"
	"learntendo/internal/dto"
	"learntendo/internal/service"

	"github.com/gofiber/fiber/v2"
)

// ChatHandler handles tutor chat HTTP requests
type ChatHandler struct {
	service service.ChatService
}

// NewChatHandler creates a new ChatHandler instance
func NewChatHandler(service service.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// Chat godoc
// @Summary Chat with the AI tutor
// @Description Sends one message to the tutor. Omit session_id to start a new session; reuse the returned session_id to continue it.
// @Tags chat
// @Accept json
// @Produce json
// @Param request body dto.ChatRequest true "Chat turn"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /chat [post]
func (h *ChatHandler) Chat(c *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Request body must be valid JSON")
	}

	reply, sessionID, err := h.service.Chat(c.UserContext(), req.SessionID, req.UserInput)
	if err != nil {
		return err
	}

	return c.JSON(dto.ChatResponse{
		Message:   reply,
		SessionID: sessionID,
	})
}
