package commands

import (
	"context"
	"log/slog"

	"stay-booking/internal/domain/auth"
	"stay-booking/internal/domain/user"
	"stay-booking/internal/infra"
	"stay-booking/internal/pkg/clock"
	"stay-booking/internal/pkg/errs"
	"stay-booking/internal/pkg/jwt"
	"stay-booking/internal/pkg/password"
	"stay-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrUserInactive       = errs.New("user inactive")
	ErrTokenGeneration    = errs.New("token generation failed")
	ErrTokenValidation    = errs.New("token validation failed")
)

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type LoginResult struct {
	UserID    uuid.UUID
	TokenPair *TokenPair
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

//go:generate mockgen -source=auth.go -destination=../../../tests/mock/commands/auth_mock.go -package=commandsmock

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (uuid.UUID, error)
	Login(ctx context.Context, email, pw string) (*LoginResult, error)
	RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	jwtService *jwt.Service
	hasher     *password.Hasher
	clock      clock.Clock
}

func NewAuthCommands(uow shared.UnitOfWork, jwtService *jwt.Service, hasher *password.Hasher, clk clock.Clock) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		jwtService: jwtService,
		hasher:     hasher,
		clock:      clk,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (uuid.UUID, error) {
	reg, err := auth.NewRegistration(in.Email, in.Password, in.FirstName, in.LastName)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	hash, err := a.hasher.Hash(reg.Password().Value())
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	u := user.NewUser(reg.Email(), hash, reg.Name(), user.RoleUser)
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Users().Create(ctx, u); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(auth.ErrEmailTaken, errs.ErrConflict)
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return u.ID(), nil
}

func (a *authCommandsImpl) Login(ctx context.Context, email, pw string) (*LoginResult, error) {
	credentials, err := auth.NewCredentials(email, pw)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	snap, err := a.validateUser(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(snap.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	pair, err := a.issueTokens(snap.ID, role)
	if err != nil {
		return nil, err
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, snap.ID, a.clock.Now())
	})
	if err != nil {
		// Login already succeeded; only the audit column is stale.
		slog.Warn("failed to update last login", "user_id", snap.ID, "error", err.Error())
	}

	return &LoginResult{UserID: snap.ID, TokenPair: pair}, nil
}

func (a *authCommandsImpl) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	claims, err := a.jwtService.ValidateToken(refreshToken)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if claims.TokenType != jwt.TokenTypeRefresh {
		return nil, ErrTokenValidation
	}

	// Role and active flag are re-read so that admin changes take effect.
	snap, err := a.uow.CommandReads().UserByID(ctx, claims.UserID)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}
	if !snap.IsActive {
		return nil, ErrUserInactive
	}
	role, err := user.NewRole(snap.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenValidation)
	}

	return a.issueTokens(snap.ID, role)
}

func (a *authCommandsImpl) issueTokens(userID uuid.UUID, role user.Role) (*TokenPair, error) {
	accessToken, err := a.jwtService.GenerateAccessToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	refreshToken, err := a.jwtService.GenerateRefreshToken(userID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

func (a *authCommandsImpl) validateUser(ctx context.Context, credentials auth.Credentials) (*shared.UserSnapshot, error) {
	snap, err := a.uow.CommandReads().UserByEmail(ctx, credentials.Email().Value())
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		return nil, ErrInvalidCredentials
	}

	if err := a.hasher.Compare(snap.PasswordHash, credentials.Password()); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !snap.IsActive {
		return nil, ErrUserInactive
	}

	return snap, nil
}
