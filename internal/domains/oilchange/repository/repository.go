package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"mesa/infras/otel"
	"mesa/infras/postgres"
	"mesa/internal/domains/oilchange/model"
	gDto "mesa/shared/dto"
	gRepo "mesa/shared/repository"
)

type OilChange interface {
	Insert(ctx context.Context, model model.OilChange) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.OilChange, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.OilChange, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	Distinct(ctx context.Context, columnName string, filter gDto.FilterGroup) ([]string, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.OilChange]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) OilChange {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.OilChange](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}
