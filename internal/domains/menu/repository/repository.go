package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"mesa/infras/otel"
	"mesa/infras/postgres"
	"mesa/internal/domains/menu/model"
	"mesa/shared/constant"
	gDto "mesa/shared/dto"
	gRepo "mesa/shared/repository"
	"mesa/shared/timezone"
)

type Dish interface {
	Insert(ctx context.Context, model model.Dish) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Dish, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Dish, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
	Reorder(ctx context.Context, restaurantID, user string, ids []string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Dish]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Dish {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Dish](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// Reorder rewrites the display order of the given dishes in one transaction;
// slice position becomes the new order.
func (repo *repositoryImpl) Reorder(ctx context.Context, restaurantID, user string, ids []string) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".dish.Reorder")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		log.Error().Err(err).Msg("failed to begin reorder transaction")

		return fmt.Errorf("failed to begin reorder transaction: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				log.Error().Err(rbErr).Msg("failed to rollback reorder transaction")
			}
		}
	}()

	now := timezone.Now()

	for position, id := range ids {
		filter := gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorAnd,
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldID,
					Operator: gDto.FilterOperatorEq,
					Value:    id,
					Table:    model.TableName,
				},
				gDto.Filter{
					Field:    model.FieldRestaurantID,
					Operator: gDto.FilterOperatorEq,
					Value:    restaurantID,
					Table:    model.TableName,
				},
			},
		}

		updatedFields := map[string]any{
			model.FieldDisplayOrder: position,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: user,
		}

		if err = repo.UpdateTx(ctx, tx, updatedFields, filter); err != nil {
			return fmt.Errorf("failed to reorder dish %s: %w", id, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Error().Err(err).Msg("failed to commit reorder transaction")

		return fmt.Errorf("failed to commit reorder transaction: %w", err)
	}

	return nil
}
