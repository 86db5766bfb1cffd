package service

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"rental/infras/jwt"
	"rental/infras/otel"
	"rental/infras/postgres"
	"rental/internal/domains/auth/model/dto"
	userModel "rental/internal/domains/user/model"
	userRepo "rental/internal/domains/user/repository"
	"rental/shared"
	"rental/shared/constant"
	"rental/shared/failure"
	"rental/shared/validator"
)

const (
	msgEmailRegistered     = "email already registered"
	msgUserNotFound        = "user not found, please register first"
	msgInvalidRefreshToken = "invalid refresh token"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.LoginResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
}

type serviceImpl struct {
	userRepo   userRepo.User
	transactor postgres.Transactor
	otel       otel.Otel
	jwtService jwt.JWT
}

func New(userRepo userRepo.User, transactor postgres.Transactor, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		userRepo:   userRepo,
		transactor: transactor,
		otel:       otel,
		jwtService: jwt,
	}
}

// Register stores the user and its agent or renter profile together, then signs the user in.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	emailFilter := shared.FilterByID(req.Email, userModel.FieldEmail, userModel.TableName)

	exists, err := s.userRepo.Exist(ctx, emailFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, failure.FromStore(err, msgEmailRegistered)
	}

	if exists {
		return res, failure.Conflict(msgEmailRegistered) // nolint:wrapcheck
	}

	renter, err := req.ToRenterModel()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.userRepo.InsertTx(ctx, tx, req.ToUserModel()); err != nil {
			return err //nolint:wrapcheck
		}

		if req.UserType == constant.RoleAgent {
			return s.userRepo.InsertAgentTx(ctx, tx, req.ToAgentModel()) //nolint:wrapcheck
		}

		return s.userRepo.InsertRenterTx(ctx, tx, renter) //nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("failed to register user")

		return res, failure.FromStore(err, msgEmailRegistered)
	}

	return s.issueTokens(req.Email, req.UserType)
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Email = dto.NormalizeEmail(req.Email)

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	user, err := s.userRepo.Get(ctx, shared.FilterByID(req.Email, userModel.FieldEmail, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, failure.FromStore(err, msgUserNotFound)
	}

	if !user.Exists() {
		return res, failure.NotFound(msgUserNotFound) // nolint:wrapcheck
	}

	return s.issueTokens(user.Email, user.UserType)
}

func (s *serviceImpl) issueTokens(email, role string) (res dto.LoginResponse, err error) {
	tokenPair, err := s.jwtService.GenerateTokenPair(email, role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate token pair")

		return res, failure.InternalError(err) // nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair, role)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Error().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized(msgInvalidRefreshToken) // nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}
