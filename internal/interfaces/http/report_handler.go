package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ledgerflow-api/internal/application/dto"
	"github.com/jhoicas/ledgerflow-api/internal/application/report"
)

// ReportHandler genera reportes y devuelve el documento como descarga.
type ReportHandler struct {
	uc      *report.ReportUseCase
	timeout time.Duration
}

// NewReportHandler construye el handler. timeout <= 0 no limita la generación.
func NewReportHandler(uc *report.ReportUseCase, timeout time.Duration) *ReportHandler {
	return &ReportHandler{uc: uc, timeout: timeout}
}

// Generate POST /api/reports
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateReportRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	ctx := c.UserContext()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}
	res, err := h.uc.Generate(ctx, in)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, res.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, res.FileName))
	c.Set("X-Report-Handle", res.Handle)
	return c.Status(fiber.StatusOK).Send(res.Content)
}
