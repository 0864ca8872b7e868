package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"agendador/infras/otel"
	"agendador/infras/postgres"
	"agendador/internal/domains/room/model"
	gDto "agendador/shared/dto"
	gRepo "agendador/shared/repository"
	"context"
)

// Room is read-only; rooms are administered outside this service.
type Room interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel,
			gRepo.WithDefaultOrder(model.TableName+"."+model.FieldName+" ASC")),
	}
}
