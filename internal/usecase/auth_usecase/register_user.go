package auth

import (
	"context"
	"errors"
	"net/mail"
	"strings"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
	"storefront/internal/usecase"
)

type RegisterUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

type RegisterUserOutput struct {
	User model.User
}

// RegisterUserUsecaseは会員登録の処理。
type RegisterUserUsecase struct {
	userRepo repo.UserRepository
	hasher   PasswordHasher
}

// DI
func NewRegisterUserUsecase(userRepo repo.UserRepository, hasher PasswordHasher) *RegisterUserUsecase {
	return &RegisterUserUsecase{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

func (u *RegisterUserUsecase) Execute(ctx context.Context, in RegisterUserInput) (RegisterUserOutput, error) {
	var out RegisterUserOutput

	if strings.TrimSpace(in.FirstName) == "" || strings.TrimSpace(in.LastName) == "" {
		return out, usecase.NewAppError(usecase.KindValidation, "name is required")
	}
	if !isValidEmailFormat(in.Email) {
		return out, usecase.NewAppError(usecase.KindValidation, "invalid email format")
	}
	if len(in.Password) < 8 {
		return out, usecase.NewAppError(usecase.KindValidation, "password too short")
	}

	// email重複チェック（最終防衛はDBの一意制約）
	_, err := u.userRepo.FindByEmail(ctx, in.Email)
	if err == nil {
		return out, usecase.NewAppError(usecase.KindConflict, "email already registered")
	}
	if !errors.Is(err, repo.ErrNotFound) {
		return out, usecase.NewAppError(usecase.KindInternal, "db error")
	}

	// ここでハッシュ化してから保存に渡す
	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return out, usecase.NewAppError(usecase.KindInternal, "hash error")
	}

	created, err := u.userRepo.Create(ctx, model.User{
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: hashed,
		Role:         model.RoleUser,
	})
	if errors.Is(err, repo.ErrConflict) {
		return out, usecase.NewAppError(usecase.KindConflict, "email already registered")
	}
	if err != nil {
		return out, usecase.NewAppError(usecase.KindInternal, "db error")
	}

	// 返すときはハッシュを空にして漏洩防止
	created.PasswordHash = ""
	out.User = created
	return out, nil
}

func isValidEmailFormat(email string) bool {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return false
	}
	_, err := mail.ParseAddress(trimmed)
	return err == nil
}
