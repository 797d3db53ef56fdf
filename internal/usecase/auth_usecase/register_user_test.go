package auth

import (
	"context"
	"testing"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
	"storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRegisterUserUsecase_Execute_HashesPassword(t *testing.T) {
	ctx := context.Background()
	userRepo := new(userRepoMock)
	hasher := NewBcryptPasswordHasher(4) // テストはコスト最小で
	uc := NewRegisterUserUsecase(userRepo, hasher)

	userRepo.On("FindByEmail", ctx, "taro@example.com").Return(model.User{}, repo.ErrNotFound)

	var saved model.User
	userRepo.On("Create", ctx, mock.Anything).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).(model.User)
		}).
		Return(model.User{ID: 1, Email: "taro@example.com", PasswordHash: "dummy", Role: model.RoleUser}, nil)

	out, err := uc.Execute(ctx, RegisterUserInput{
		FirstName: "太郎",
		LastName:  "山田",
		Email:     "taro@example.com",
		Password:  "secretpass1",
	})
	require.NoError(t, err)

	// 平文のまま保存していないこと
	assert.NotEqual(t, "secretpass1", saved.PasswordHash)
	assert.True(t, NewBcryptPasswordVerifier().Verify("secretpass1", saved.PasswordHash))
	assert.Equal(t, model.RoleUser, saved.Role)

	// レスポンスにハッシュを含めない
	assert.Empty(t, out.User.PasswordHash)
}

func TestRegisterUserUsecase_Execute_Validation(t *testing.T) {
	ctx := context.Background()
	uc := NewRegisterUserUsecase(new(userRepoMock), NewBcryptPasswordHasher(4))

	tests := []struct {
		name string
		in   RegisterUserInput
	}{
		{"missing first name", RegisterUserInput{LastName: "山田", Email: "a@example.com", Password: "secretpass1"}},
		{"invalid email", RegisterUserInput{FirstName: "太郎", LastName: "山田", Email: "not-an-email", Password: "secretpass1"}},
		{"short password", RegisterUserInput{FirstName: "太郎", LastName: "山田", Email: "a@example.com", Password: "short"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.in)
			require.Error(t, err)

			appErr, ok := usecase.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, usecase.KindValidation, appErr.Kind)
		})
	}
}

func TestRegisterUserUsecase_Execute_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	userRepo := new(userRepoMock)
	uc := NewRegisterUserUsecase(userRepo, NewBcryptPasswordHasher(4))

	userRepo.On("FindByEmail", ctx, "taro@example.com").
		Return(model.User{ID: 1, Email: "taro@example.com"}, nil)

	_, err := uc.Execute(ctx, RegisterUserInput{
		FirstName: "太郎",
		LastName:  "山田",
		Email:     "taro@example.com",
		Password:  "secretpass1",
	})
	require.Error(t, err)

	appErr, ok := usecase.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, usecase.KindConflict, appErr.Kind)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegisterUserUsecase_Execute_DuplicateEmailRace(t *testing.T) {
	ctx := context.Background()
	userRepo := new(userRepoMock)
	uc := NewRegisterUserUsecase(userRepo, NewBcryptPasswordHasher(4))

	// 事前チェックはすり抜けたがINSERTで一意制約に当たるケース
	userRepo.On("FindByEmail", ctx, "taro@example.com").Return(model.User{}, repo.ErrNotFound)
	userRepo.On("Create", ctx, mock.Anything).Return(model.User{}, repo.ErrConflict)

	_, err := uc.Execute(ctx, RegisterUserInput{
		FirstName: "太郎",
		LastName:  "山田",
		Email:     "taro@example.com",
		Password:  "secretpass1",
	})
	require.Error(t, err)

	appErr, ok := usecase.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, usecase.KindConflict, appErr.Kind)
}
