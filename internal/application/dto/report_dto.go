package dto

import (
	"time"

	"github.com/jhoicas/ledgerflow-api/internal/domain"
)

// GenerateReportRequest body para POST /api/reports.
// Las fechas aceptan YYYY-MM-DD o RFC3339; una fecha final sin hora cubre el día completo.
type GenerateReportRequest struct {
	Kind      string `json:"kind"` // outstanding | summary | transactions
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	Format    string `json:"format,omitempty"` // por defecto pdf
}

// DateLayout formato de fecha sin hora aceptado en los reportes.
const DateLayout = "2006-01-02"

// Period interpreta el rango de fechas. Inicio vacío: sin límite inferior; fin vacío: now.
func (r GenerateReportRequest) Period(now time.Time) (start, end time.Time, err error) {
	if r.StartDate != "" {
		if start, _, err = parseReportDate("start_date", r.StartDate); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	end = now
	if r.EndDate != "" {
		var dateOnly bool
		if end, dateOnly, err = parseReportDate("end_date", r.EndDate); err != nil {
			return time.Time{}, time.Time{}, err
		}
		if dateOnly {
			end = end.Add(24*time.Hour - time.Nanosecond)
		}
	}
	return start, end, nil
}

func parseReportDate(field, s string) (time.Time, bool, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, true, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, false, domain.NewValidationError(field, "fecha inválida, use YYYY-MM-DD o RFC3339")
	}
	return t, false, nil
}

// ReportResponse metadatos del documento generado (el cuerpo HTTP lleva los bytes).
type ReportResponse struct {
	Handle      string `json:"handle"`
	FileName    string `json:"file_name"`
	Format      string `json:"format"`
	ContentType string `json:"content_type"`
	Size        int    `json:"size"`
	StoredAt    string `json:"stored_at,omitempty"`
}
