package dto

import "github.com/shopspring/decimal"

// UpdateBusinessRequest body para PUT /api/business. Campos nil se conservan.
type UpdateBusinessRequest struct {
	Name    *string `json:"name,omitempty"`
	Owner   *string `json:"owner,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Address *string `json:"address,omitempty"`
}

// BusinessResponse respuesta de GET /api/business: metadatos + totales sobre los clientes actuales.
type BusinessResponse struct {
	Name             string          `json:"name"`
	Owner            string          `json:"owner"`
	Phone            string          `json:"phone"`
	Address          string          `json:"address"`
	TotalToReceive   decimal.Decimal `json:"total_to_receive"`
	TotalToPay       decimal.Decimal `json:"total_to_pay"`
	NetBalance       decimal.Decimal `json:"net_balance"`
	NetStatus        string          `json:"net_status"` // Positive | Negative | Balanced
	CustomerCount    int             `json:"customer_count"`
	OutstandingCount int             `json:"outstanding_count"`
}
