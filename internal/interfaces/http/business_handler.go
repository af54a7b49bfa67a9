package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ledgerflow-api/internal/application/dto"
	"github.com/jhoicas/ledgerflow-api/internal/application/ledger"
)

// BusinessHandler datos del negocio y totales.
type BusinessHandler struct {
	uc *ledger.BusinessUseCase
}

// NewBusinessHandler construye el handler.
func NewBusinessHandler(uc *ledger.BusinessUseCase) *BusinessHandler {
	return &BusinessHandler{uc: uc}
}

// Get GET /api/business
func (h *BusinessHandler) Get(c *fiber.Ctx) error {
	data, err := h.uc.GetBusinessData(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(data)
}

// Update PUT /api/business
func (h *BusinessHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateBusinessRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	data, err := h.uc.UpdateBusiness(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(data)
}
