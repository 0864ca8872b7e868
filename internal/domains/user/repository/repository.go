package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"agendador/infras/otel"
	"agendador/infras/postgres"
	"agendador/internal/domains/user/model"
	"agendador/shared/constant"
	gDto "agendador/shared/dto"
	gRepo "agendador/shared/repository"
	"context"
	"fmt"
)

type User interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.User, error)
	ListAdmins(ctx context.Context) ([]model.User, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldID, db, otel,
			gRepo.WithDefaultOrder(model.TableName+"."+model.FieldEmail+" ASC")),
		otel: otel,
	}
}

func (r *repositoryImpl) ListAdmins(ctx context.Context) (res []model.User, err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".user.ListAdmins")
	defer scope.End()
	defer scope.TraceIfError(&err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldRole, Value: constant.RoleAdmin, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldActive, Value: true, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	res, err = r.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}

	return res, nil
}
