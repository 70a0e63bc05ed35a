package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"chatmail/backend/internal/domain"
	"chatmail/backend/internal/storage"
	"chatmail/backend/internal/storage/memory"
)

func TestConversationService_Create(t *testing.T) {
	store := memory.NewStore()
	svc := NewConversationService(store)
	ctx := context.Background()

	alice := bson.NewObjectID().Hex()
	bob := bson.NewObjectID().Hex()

	conv, err := svc.Create(ctx, CreateConversationInput{
		ParticipantIDs: []string{alice, bob},
		Title:          "Planning",
	})
	require.NoError(t, err)
	assert.False(t, conv.ID.IsZero())
	assert.Equal(t, "Planning", conv.Title)
	assert.Len(t, conv.Participants, 2)
	assert.Nil(t, conv.LastMessage)
	assert.Equal(t, conv.CreatedAt, conv.UpdatedAt)
}

func TestConversationService_Create_DefaultTitle(t *testing.T) {
	store := memory.NewStore()
	svc := NewConversationService(store)

	conv, err := svc.Create(context.Background(), CreateConversationInput{
		ParticipantIDs: []string{bson.NewObjectID().Hex(), bson.NewObjectID().Hex()},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConversationTitle, conv.Title)
}

func TestConversationService_Create_Validation(t *testing.T) {
	store := memory.NewStore()
	svc := NewConversationService(store)
	ctx := context.Background()

	// 参与者不足两名
	_, err := svc.Create(ctx, CreateConversationInput{ParticipantIDs: []string{bson.NewObjectID().Hex()}})
	assert.ErrorIs(t, err, ErrTooFewParticipants)

	_, err = svc.Create(ctx, CreateConversationInput{})
	assert.ErrorIs(t, err, ErrTooFewParticipants)

	// 列表中任何一个非法标识都会被拒绝
	_, err = svc.Create(ctx, CreateConversationInput{
		ParticipantIDs: []string{bson.NewObjectID().Hex(), "bogus"},
	})
	assert.ErrorIs(t, err, ErrInvalidParticipantID)
}

func TestConversationService_List(t *testing.T) {
	store := memory.NewStore()
	svc := NewConversationService(store)
	ctx := context.Background()

	alice := bson.NewObjectID()
	bob := bson.NewObjectID()
	carol := bson.NewObjectID()

	_, err := svc.Create(ctx, CreateConversationInput{
		ParticipantIDs: []string{alice.Hex(), bob.Hex()},
		Title:          "AB",
	})
	require.NoError(t, err)
	_, err = svc.Create(ctx, CreateConversationInput{
		ParticipantIDs: []string{alice.Hex(), carol.Hex()},
		Title:          "AC",
	})
	require.NoError(t, err)

	// 无筛选返回全部
	all, err := svc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// 按参与者筛选
	bobOnly, err := svc.List(ctx, bob.Hex())
	require.NoError(t, err)
	require.Len(t, bobOnly, 1)
	assert.Equal(t, "AB", bobOnly[0].Title)

	// 非法的 user_id 静默退化为无筛选
	all, err = svc.List(ctx, "not-a-valid-id")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestConversationService_Get(t *testing.T) {
	store := memory.NewStore()
	svc := NewConversationService(store)
	ctx := context.Background()

	conv, err := svc.Create(ctx, CreateConversationInput{
		ParticipantIDs: []string{bson.NewObjectID().Hex(), bson.NewObjectID().Hex()},
	})
	require.NoError(t, err)

	got, err := svc.Get(ctx, conv.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, conv.ID, got.ID)

	// 非法标识
	_, err = svc.Get(ctx, "bogus")
	assert.ErrorIs(t, err, domain.ErrInvalidID)

	// 格式合法但不存在
	_, err = svc.Get(ctx, bson.NewObjectID().Hex())
	assert.ErrorIs(t, err, storage.ErrConversationNotFound)
}
