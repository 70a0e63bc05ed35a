package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatmail/backend/internal/domain"
	"chatmail/backend/internal/storage/memory"
)

func TestUserService_Create(t *testing.T) {
	store := memory.NewStore()
	svc := NewUserService(store)
	ctx := context.Background()

	user, err := svc.Create(ctx, CreateUserInput{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	assert.False(t, user.ID.IsZero())
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	store := memory.NewStore()
	svc := NewUserService(store)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateUserInput{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)

	// 同一邮箱重复注册被拒绝
	_, err = svc.Create(ctx, CreateUserInput{Name: "Alice Again", Email: "alice@example.com"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserService_Create_InvalidEmail(t *testing.T) {
	store := memory.NewStore()
	svc := NewUserService(store)

	_, err := svc.Create(context.Background(), CreateUserInput{Name: "Bad", Email: "not-an-email"})
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)
}

func TestUserService_List(t *testing.T) {
	store := memory.NewStore()
	svc := NewUserService(store)
	ctx := context.Background()

	users, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)

	_, err = svc.Create(ctx, CreateUserInput{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateUserInput{Name: "Bob", Email: "bob@example.com"})
	require.NoError(t, err)

	users, err = svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Alice", users[0].Name)
	assert.Equal(t, "Bob", users[1].Name)
}
