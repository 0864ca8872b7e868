package dto

import (
	"agendador/shared/constant"
	"agendador/shared/model"
	"agendador/shared/timezone"
	"time"
)

// Metadata is the audit trail as rendered to clients. Unset timestamps are omitted.
type Metadata struct {
	CreatedAt  string `json:"created_at,omitempty"`
	CreatedBy  string `json:"created_by,omitempty"`
	ModifiedAt string `json:"modified_at,omitempty"`
	ModifiedBy string `json:"modified_by,omitempty"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = formatInstant(model.CreatedAt)
	m.CreatedBy = model.CreatedBy
	m.ModifiedAt = formatInstant(model.ModifiedAt)
	m.ModifiedBy = model.ModifiedBy
}

func formatInstant(t time.Time) string {
	if t.IsZero() {
		return constant.Empty
	}

	return timezone.Format(t, constant.DateFormat)
}
