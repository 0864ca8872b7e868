package dto

import "agendador/internal/domains/report/model"

type ReportResponse struct {
	Rooms       []model.Row `json:"rooms"`
	Total       int         `json:"total"`
	GeneratedAt string      `json:"generated_at"`
}

type ExportRequest struct {
	Format string `json:"format" validate:"omitempty,oneof=csv xlsx"`
}

// FormatOrDefault falls back to CSV.
func (e ExportRequest) FormatOrDefault() string {
	if e.Format == "" {
		return model.FormatCSV
	}

	return e.Format
}

type ExportResponse struct {
	URL         string `json:"url"`
	Format      string `json:"format"`
	GeneratedAt string `json:"generated_at"`
}
