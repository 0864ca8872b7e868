package model

import "agendador/shared/model"

const (
	TableName  = "users"
	EntityName = "user"

	FieldID       = "id"
	FieldEmail    = "email"
	FieldFullName = "full_name"
	FieldRole     = "role"
	FieldActive   = "active"
)

type User struct {
	ID       string `db:"id"`
	Email    string `db:"email"`
	FullName string `db:"full_name"`
	Role     string `db:"role"`
	Active   bool   `db:"active"`
	model.Metadata
}

// DisplayName falls back to the email when no name is on file.
func (u User) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}

	return u.Email
}
