package model

import (
	"agendador/shared/constant"
	"context"
)

// Caller is the authenticated identity a request acts as.
type Caller struct {
	ID    string
	Email string
	Role  string
}

func (c Caller) IsAdmin() bool {
	return c.Role == constant.RoleAdmin
}

func (c Caller) IsZero() bool {
	return c.ID == constant.Empty
}

// CallerFromContext reads the identity placed on ctx by the auth middleware.
func CallerFromContext(ctx context.Context) Caller {
	id, _ := ctx.Value(constant.ContextKeyUserID).(string)
	email, _ := ctx.Value(constant.ContextKeyUserEmail).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	return Caller{ID: id, Email: email, Role: role}
}

// ContextWithCaller stores c on ctx under the auth middleware keys.
func ContextWithCaller(ctx context.Context, c Caller) context.Context {
	ctx = context.WithValue(ctx, constant.ContextKeyUserID, c.ID)
	ctx = context.WithValue(ctx, constant.ContextKeyUserEmail, c.Email)

	return context.WithValue(ctx, constant.ContextKeyUserRole, c.Role)
}
