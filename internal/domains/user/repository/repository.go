package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"github.com/jmoiron/sqlx"

	"rental/infras/otel"
	"rental/infras/postgres"
	"rental/internal/domains/user/model"
	"rental/shared"
	gDto "rental/shared/dto"
	gRepo "rental/shared/repository"
)

type User interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.User) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.User, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)

	InsertAgentTx(ctx context.Context, sqltx *sqlx.Tx, agent model.Agent) error
	InsertRenterTx(ctx context.Context, sqltx *sqlx.Tx, renter model.Renter) error
	GetAgent(ctx context.Context, email string) (model.Agent, error)
	GetRenter(ctx context.Context, email string) (model.Renter, error)
	GetRewards(ctx context.Context, email string) (model.Reward, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.User]
	agent   gRepo.Repository[model.Agent]
	renter  gRepo.Repository[model.Renter]
	rewards gRepo.Repository[model.Reward]
}

func New(db *postgres.Connection, otel otel.Otel) User {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.User](model.EntityName, model.TableName, model.FieldEmail, db, otel),
		agent:      gRepo.NewRepository[model.Agent]("agent", model.AgentTableName, model.FieldEmail, db, otel),
		renter:     gRepo.NewRepository[model.Renter]("renter", model.RenterTableName, model.FieldEmail, db, otel),
		rewards:    gRepo.NewRepository[model.Reward]("rewards", model.RewardsTableName, model.FieldRenterEmail, db, otel),
	}
}

func (r *repositoryImpl) InsertAgentTx(ctx context.Context, sqltx *sqlx.Tx, agent model.Agent) error {
	return r.agent.InsertTx(ctx, sqltx, agent) //nolint:wrapcheck
}

func (r *repositoryImpl) InsertRenterTx(ctx context.Context, sqltx *sqlx.Tx, renter model.Renter) error {
	return r.renter.InsertTx(ctx, sqltx, renter) //nolint:wrapcheck
}

func (r *repositoryImpl) GetAgent(ctx context.Context, email string) (model.Agent, error) {
	return r.agent.Get(ctx, shared.FilterByID(email, model.FieldEmail, model.AgentTableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetRenter(ctx context.Context, email string) (model.Renter, error) {
	return r.renter.Get(ctx, shared.FilterByID(email, model.FieldEmail, model.RenterTableName)) //nolint:wrapcheck
}

// GetRewards returns a zero count for renters who never booked.
func (r *repositoryImpl) GetRewards(ctx context.Context, email string) (model.Reward, error) {
	return r.rewards.Get(ctx, shared.FilterByID(email, model.FieldRenterEmail, model.RewardsTableName)) //nolint:wrapcheck
}
