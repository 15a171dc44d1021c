package service

import (
	"context"
	"testing"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) UserService {
	t.Helper()
	db := newTestDB(t)
	return NewUserService(
		repository.NewUserRepository(db),
		repository.NewOperationLogRepository(db),
	)
}

func TestCreateUserAndLogin(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, CreateUserRequest{
		Name:     "运营管理员",
		Email:    "admin@example.com",
		Password: "s3cret-pass",
		Role:     model.RoleAdmin,
	}, "")
	require.NoError(t, err)
	assert.Equal(t, model.UserStatusActive, created.Status)

	resp, err := svc.Login(ctx, LoginUserRequest{Email: "admin@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)

	token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
		return middleware.GetJWTSecret(), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, created.ID.String(), claims["sub"])
	assert.Equal(t, model.RoleAdmin, claims["role"])

	// Login is recorded.
	me, err := svc.GetUserByID(ctx, created.ID.String())
	require.NoError(t, err)
	assert.NotNil(t, me.LastLoginAt)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, CreateUserRequest{
		Name:     "普通用户",
		Email:    "user@example.com",
		Password: "correct-pass",
		Role:     model.RoleUser,
	}, "")
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginUserRequest{Email: "user@example.com", Password: "wrong-pass"})
	assert.EqualError(t, err, "invalid email or password")

	_, err = svc.Login(ctx, LoginUserRequest{Email: "nobody@example.com", Password: "correct-pass"})
	assert.EqualError(t, err, "invalid email or password")
}

func TestLoginRejectsDisabledAccount(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, CreateUserRequest{
		Name:     "停用账号",
		Email:    "disabled@example.com",
		Password: "whatever-pass",
		Role:     model.RoleUser,
		Status:   model.UserStatusDisabled,
	}, "")
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginUserRequest{Email: "disabled@example.com", Password: "whatever-pass"})
	assert.EqualError(t, err, "account is disabled")
}

func TestCreateUserRejectsDuplicateEmailAndBadRole(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, CreateUserRequest{
		Name:     "第一个",
		Email:    "dup@example.com",
		Password: "password1",
		Role:     model.RoleUser,
	}, "")
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, CreateUserRequest{
		Name:     "第二个",
		Email:    "dup@example.com",
		Password: "password2",
		Role:     model.RoleUser,
	}, "")
	assert.EqualError(t, err, "email already exists")

	_, err = svc.CreateUser(ctx, CreateUserRequest{
		Name:     "越权",
		Email:    "root@example.com",
		Password: "password3",
		Role:     "SUPERUSER",
	}, "")
	assert.EqualError(t, err, "invalid role: must be ADMIN or USER")
}
