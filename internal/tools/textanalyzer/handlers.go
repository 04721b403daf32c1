package textanalyzer

import (
	"github.com/gofiber/fiber/v2"
	"github.com/toolhub/toolhub-backend/internal/dto"
)

type AnalyzeRequest struct {
	Text string `json:"text"`
}

type TextAnalyzerHandler struct{}

func NewTextAnalyzerHandler() *TextAnalyzerHandler {
	return &TextAnalyzerHandler{}
}

func (h *TextAnalyzerHandler) Analyze(c *fiber.Ctx) error {
	var req AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	analysis := Analyze(req.Text)
	if analysis == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Text is required",
		})
	}

	return c.JSON(analysis)
}
