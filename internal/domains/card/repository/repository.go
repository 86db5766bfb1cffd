package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"rental/infras/otel"
	"rental/infras/postgres"
	"rental/internal/domains/card/model"
	gDto "rental/shared/dto"
	gRepo "rental/shared/repository"
)

type Card interface {
	InsertReturning(ctx context.Context, model model.PaymentCard) (int64, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.PaymentCard, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	ExistTx(ctx context.Context, sqltx *sqlx.Tx, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.PaymentCard]
}

func New(db *postgres.Connection, otel otel.Otel) Card {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.PaymentCard](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
