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

func TestEmailService_Send_FanOut(t *testing.T) {
	store := memory.NewStore()
	svc := NewEmailService(store, nil)
	ctx := context.Background()

	sent, err := svc.Send(ctx, SendEmailInput{
		Sender:  "a@x.com",
		To:      []string{"b@x.com", "c@x.com"},
		CC:      []string{"d@x.com"},
		BCC:     []string{"e@x.com"},
		Subject: "Hi",
		Body:    "Hello",
	})
	require.NoError(t, err)

	// 发件记录：sent 文件夹、无归属者
	assert.Equal(t, domain.FolderSent, sent.Folder)
	assert.Empty(t, sent.Owner)
	assert.False(t, sent.ID.IsZero())

	// 每个 to 收件人一条收件箱副本，cc/bcc 不产生副本
	all, err := store.ListEmails(ctx, storage.EmailFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3) // 1 条发件记录 + 2 条副本

	for _, recipient := range []string{"b@x.com", "c@x.com"} {
		inbox, err := svc.List(ctx, recipient, domain.FolderInbox)
		require.NoError(t, err)
		require.Len(t, inbox, 1, "recipient %s", recipient)
		assert.Equal(t, "Hi", inbox[0].Subject)
		assert.False(t, inbox[0].Read)
		assert.NotEqual(t, sent.ID, inbox[0].ID)
	}

	for _, bystander := range []string{"d@x.com", "e@x.com"} {
		inbox, err := svc.List(ctx, bystander, domain.FolderInbox)
		require.NoError(t, err)
		assert.Empty(t, inbox, "recipient %s", bystander)
	}
}

func TestEmailService_Send_NoRecipients(t *testing.T) {
	store := memory.NewStore()
	svc := NewEmailService(store, nil)
	ctx := context.Background()

	// to 为空：只有发件记录，没有副本
	sent, err := svc.Send(ctx, SendEmailInput{
		Sender:  "a@x.com",
		Subject: "Draft-ish",
	})
	require.NoError(t, err)
	assert.NotNil(t, sent.To)
	assert.Empty(t, sent.To)

	all, err := store.ListEmails(ctx, storage.EmailFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestEmailService_Send_InvalidAddresses(t *testing.T) {
	store := memory.NewStore()
	svc := NewEmailService(store, nil)
	ctx := context.Background()

	_, err := svc.Send(ctx, SendEmailInput{Sender: "bogus", To: []string{"b@x.com"}})
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)

	_, err = svc.Send(ctx, SendEmailInput{Sender: "a@x.com", To: []string{"bogus"}})
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)

	_, err = svc.Send(ctx, SendEmailInput{Sender: "a@x.com", To: []string{"b@x.com"}, CC: []string{"bogus"}})
	assert.ErrorIs(t, err, domain.ErrInvalidEmail)

	// 校验失败时不产生任何写入
	all, err := store.ListEmails(ctx, storage.EmailFilter{})
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestEmailService_Update(t *testing.T) {
	store := memory.NewStore()
	svc := NewEmailService(store, nil)
	ctx := context.Background()

	sent, err := svc.Send(ctx, SendEmailInput{
		Sender: "a@x.com",
		To:     []string{"b@x.com"},
	})
	require.NoError(t, err)

	inbox, err := svc.List(ctx, "b@x.com", domain.FolderInbox)
	require.NoError(t, err)
	require.Len(t, inbox, 1)
	emailID := inbox[0].ID

	// 只更新 read
	read := true
	updated, err := svc.Update(ctx, emailID.Hex(), UpdateEmailInput{Read: &read})
	require.NoError(t, err)
	assert.True(t, updated.Read)
	assert.Equal(t, domain.FolderInbox, updated.Folder)
	assert.True(t, updated.UpdatedAt.After(inbox[0].UpdatedAt))

	// 只更新 folder
	trash := domain.FolderTrash
	updated, err = svc.Update(ctx, emailID.Hex(), UpdateEmailInput{Folder: &trash})
	require.NoError(t, err)
	assert.Equal(t, domain.FolderTrash, updated.Folder)
	assert.True(t, updated.Read)

	// 发件记录不受影响
	got, err := svc.List(ctx, "", domain.FolderSent)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, sent.ID, got[0].ID)
	assert.False(t, got[0].Read)
}

func TestEmailService_Update_Errors(t *testing.T) {
	store := memory.NewStore()
	svc := NewEmailService(store, nil)
	ctx := context.Background()

	read := true

	// 非法标识
	_, err := svc.Update(ctx, "bogus", UpdateEmailInput{Read: &read})
	assert.ErrorIs(t, err, domain.ErrInvalidID)

	// 格式合法但不存在
	_, err = svc.Update(ctx, bson.NewObjectID().Hex(), UpdateEmailInput{Read: &read})
	assert.ErrorIs(t, err, storage.ErrEmailNotFound)
}
