package auth

import (
	"context"
	"errors"
	"time"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
	"storefront/internal/usecase"
)

// アクセストークンを発行する約束（実装はcmd側でJWTを署名する）
type TokenIssuer interface {
	Issue(userID int64, role model.Role, now time.Time) (token string, expiresAt time.Time, err error)
}

// 現在時刻
type Clock interface {
	Now() time.Time
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	AccessToken string
	ExpiresAt   time.Time
	User        model.User
}

type LoginUsecase struct {
	userRepo repo.UserRepository
	verifier PasswordVerifier
	issuer   TokenIssuer
	clock    Clock
}

// DI
func NewLoginUsecase(
	userRepo repo.UserRepository,
	verifier PasswordVerifier,
	issuer TokenIssuer,
	clock Clock,
) *LoginUsecase {
	return &LoginUsecase{
		userRepo: userRepo,
		verifier: verifier,
		issuer:   issuer,
		clock:    clock,
	}
}

func (u *LoginUsecase) Execute(ctx context.Context, in LoginInput) (LoginOutput, error) {
	var out LoginOutput

	if in.Email == "" || in.Password == "" {
		return out, usecase.NewAppError(usecase.KindValidation, "email and password are required")
	}

	user, err := u.userRepo.FindByEmail(ctx, in.Email)
	if errors.Is(err, repo.ErrNotFound) {
		// ユーザー有無を悟らせないため、パスワード不一致と同じ応答にする
		return out, usecase.NewAppError(usecase.KindUnauthenticated, "invalid email or password")
	}
	if err != nil {
		return out, usecase.NewAppError(usecase.KindInternal, "db error")
	}

	if !u.verifier.Verify(in.Password, user.PasswordHash) {
		return out, usecase.NewAppError(usecase.KindUnauthenticated, "invalid email or password")
	}

	token, expiresAt, err := u.issuer.Issue(user.ID, user.Role, u.clock.Now())
	if err != nil {
		return out, usecase.NewAppError(usecase.KindInternal, "token error")
	}

	user.PasswordHash = ""
	out = LoginOutput{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        user,
	}
	return out, nil
}
