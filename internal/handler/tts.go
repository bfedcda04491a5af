package handler

import (
	"learntendo/internal/domain"
	"learntendo/internal/dto"
	"learntendo/internal/service"

	"github.com/gofiber/fiber/v2"
)

// TTSHandler handles text-to-speech HTTP requests
type TTSHandler struct {
	service service.TTSService
}

// NewTTSHandler creates a new TTSHandler instance
func NewTTSHandler(service service.TTSService) *TTSHandler {
	return &TTSHandler{service: service}
}

// Synthesize godoc
// @Summary Convert text to speech
// @Description Returns an MP3 rendition of the given text. Arabic text is voiced in Arabic, everything else in English.
// @Tags tts
// @Accept json
// @Produce audio/mpeg
// @Param request body dto.TTSRequest true "Text to synthesize"
// @Success 200 {file} binary
// @Failure 400 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /tts [post]
func (h *TTSHandler) Synthesize(c *fiber.Ctx) error {
	var req dto.TTSRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Request body must be valid JSON")
	}

	clip, err := h.service.Synthesize(c.UserContext(), req.Text)
	if err != nil {
		return err
	}

	c.Set(fiber.HeaderContentType, clip.MIMEType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+clip.Filename+`"`)
	return c.Send(clip.Audio)
}
