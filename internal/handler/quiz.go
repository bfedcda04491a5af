package handler

import (
	"learntendo/internal/domain"
	"learntendo/internal/dto"
	"learntendo/internal/service"
	"learntendo/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles question generation HTTP requests
type QuizHandler struct {
	service   service.QuizService
	validator *validation.Validator
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(service service.QuizService) *QuizHandler {
	return &QuizHandler{
		service:   service,
		validator: validation.NewValidator(),
	}
}

// GenerateQuestions godoc
// @Summary Generate quiz questions
// @Description Generates structured quiz questions from raw text or an uploaded document (pdf, docx, pptx, txt)
// @Tags questions
// @Accept multipart/form-data
// @Produce json
// @Param sourceType formData string true "TEXT or FILE"
// @Param textInput formData string false "Source text when sourceType is TEXT"
// @Param fileInput formData file false "Source document when sourceType is FILE"
// @Param numOfQuestions formData int true "Number of questions (1-50)"
// @Param difficultyLevel formData string true "Difficulty level"
// @Param typeOfQuestions formData string true "Question type, e.g. MCQ or True/False"
// @Param language formData string false "Output language (default English)"
// @Success 200 {object} dto.GenerateQuestionsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 502 {object} dto.ErrorResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /generateQuestions [post]
func (h *QuizHandler) GenerateQuestions(c *fiber.Ctx) error {
	sourceType := c.FormValue("sourceType")
	count, validationErrs := h.validator.ValidateGenerateRequest(
		sourceType,
		c.FormValue("numOfQuestions"),
		c.FormValue("difficultyLevel"),
		c.FormValue("typeOfQuestions"),
	)
	if len(validationErrs) > 0 {
		return validationErrs
	}

	req := &domain.GenerationRequest{
		SourceType:      domain.SourceType(sourceType),
		RawText:         c.FormValue("textInput"),
		NumOfQuestions:  count,
		DifficultyLevel: c.FormValue("difficultyLevel"),
		TypeOfQuestions: c.FormValue("typeOfQuestions"),
		Language:        c.FormValue("language"),
	}

	if req.SourceType == domain.SourceTypeFile {
		header, err := c.FormFile("fileInput")
		if err != nil {
			return domain.NewInvalidInputError(service.MsgInvalidInput)
		}
		file, err := header.Open()
		if err != nil {
			return domain.NewInternalError("failed to open uploaded file", err)
		}
		defer file.Close()
		req.Upload = &domain.UploadedDocument{
			Filename: header.Filename,
			Content:  file,
		}
	}

	records, err := h.service.GenerateQuestions(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.JSON(dto.GenerateQuestionsResponse{QuestionData: records})
}
