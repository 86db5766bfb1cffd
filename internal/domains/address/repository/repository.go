package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"rental/infras/otel"
	"rental/infras/postgres"
	"rental/internal/domains/address/model"
	gDto "rental/shared/dto"
	gRepo "rental/shared/repository"
)

type Address interface {
	InsertReturning(ctx context.Context, model model.Address) (int64, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Address, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Delete(ctx context.Context, filter gDto.FilterGroup) (int64, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Address]
}

func New(db *postgres.Connection, otel otel.Otel) Address {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Address](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}
