package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"chatmail/backend/internal/domain"
	"chatmail/backend/internal/storage"
)

func TestMemoryStore_UserOperations(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	// Test CreateUser（自动分配标识）
	user := &domain.User{Name: "Alice", Email: "alice@example.com"}
	err := store.CreateUser(ctx, user)
	require.NoError(t, err)
	assert.False(t, user.ID.IsZero())

	// Test GetUserByEmail
	found, err := store.GetUserByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)
	assert.Equal(t, "Alice", found.Name)

	// 未知邮箱返回哨兵错误
	_, err = store.GetUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, storage.ErrUserNotFound)

	// Test ListUsers（插入顺序）
	require.NoError(t, store.CreateUser(ctx, &domain.User{Name: "Bob", Email: "bob@example.com"}))
	users, err := store.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Alice", users[0].Name)
	assert.Equal(t, "Bob", users[1].Name)
}

func TestMemoryStore_ConversationOperations(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	alice := bson.NewObjectID()
	bob := bson.NewObjectID()
	carol := bson.NewObjectID()
	base := time.Now().UTC()

	first := &domain.Conversation{
		Participants: []bson.ObjectID{alice, bob},
		Title:        "First",
		CreatedAt:    base,
		UpdatedAt:    base,
	}
	second := &domain.Conversation{
		Participants: []bson.ObjectID{alice, carol},
		Title:        "Second",
		CreatedAt:    base.Add(time.Minute),
		UpdatedAt:    base.Add(time.Minute),
	}
	require.NoError(t, store.CreateConversation(ctx, first))
	require.NoError(t, store.CreateConversation(ctx, second))

	// Test GetConversation
	got, err := store.GetConversation(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "First", got.Title)
	assert.Nil(t, got.LastMessage)

	_, err = store.GetConversation(ctx, bson.NewObjectID())
	assert.ErrorIs(t, err, storage.ErrConversationNotFound)

	// Test ListConversations：按 updated_at 降序
	all, err := store.ListConversations(ctx, storage.ConversationFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Second", all[0].Title)
	assert.Equal(t, "First", all[1].Title)

	// 按参与者筛选
	onlyBob, err := store.ListConversations(ctx, storage.ConversationFilter{Participant: &bob})
	require.NoError(t, err)
	require.Len(t, onlyBob, 1)
	assert.Equal(t, "First", onlyBob[0].Title)

	// Test TouchConversation：刷新缓存并提升排序
	touchAt := base.Add(2 * time.Minute)
	require.NoError(t, store.TouchConversation(ctx, first.ID, "hello", touchAt))

	got, err = store.GetConversation(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastMessage)
	assert.Equal(t, "hello", *got.LastMessage)
	assert.Equal(t, touchAt, got.UpdatedAt)

	all, err = store.ListConversations(ctx, storage.ConversationFilter{})
	require.NoError(t, err)
	assert.Equal(t, "First", all[0].Title)

	// 会话不存在时 Touch 为空操作
	assert.NoError(t, store.TouchConversation(ctx, bson.NewObjectID(), "x", touchAt))
}

func TestMemoryStore_MessageOperations(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	convID := bson.NewObjectID()
	sender := bson.NewObjectID()
	base := time.Now().UTC()

	for i, content := range []string{"one", "two", "three"} {
		msg := &domain.Message{
			ConversationID: convID,
			SenderID:       sender,
			Content:        content,
			CreatedAt:      base.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, store.CreateMessage(ctx, msg))
		assert.False(t, msg.ID.IsZero())
	}

	// 按创建时间升序
	messages, err := store.ListMessages(ctx, convID)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "one", messages[0].Content)
	assert.Equal(t, "three", messages[2].Content)

	// 未知会话返回空列表而非错误
	messages, err = store.ListMessages(ctx, bson.NewObjectID())
	require.NoError(t, err)
	assert.Empty(t, messages)
}

func TestMemoryStore_EmailOperations(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	base := time.Now().UTC()

	sent := &domain.Email{
		Sender:    "a@example.com",
		To:        []string{"b@example.com"},
		Subject:   "Hi",
		Body:      "Hello",
		Folder:    domain.FolderSent,
		CreatedAt: base,
		UpdatedAt: base,
	}
	require.NoError(t, store.CreateEmail(ctx, sent))

	inbox := sent.InboxCopy("b@example.com", base.Add(time.Second))
	require.NoError(t, store.CreateEmails(ctx, []*domain.Email{inbox}))

	// 按 owner+folder 筛选
	emails, err := store.ListEmails(ctx, storage.EmailFilter{Owner: "b@example.com", Folder: domain.FolderInbox})
	require.NoError(t, err)
	require.Len(t, emails, 1)
	assert.Equal(t, "Hi", emails[0].Subject)
	assert.False(t, emails[0].Read)

	// 无筛选时按创建时间降序
	emails, err = store.ListEmails(ctx, storage.EmailFilter{})
	require.NoError(t, err)
	require.Len(t, emails, 2)
	assert.Equal(t, inbox.ID, emails[0].ID)
	assert.Equal(t, sent.ID, emails[1].ID)

	// Test UpdateEmail：部分更新
	read := true
	archived := domain.FolderArchived
	updateAt := base.Add(time.Minute)
	updated, err := store.UpdateEmail(ctx, inbox.ID, storage.EmailUpdate{
		Read:      &read,
		Folder:    &archived,
		UpdatedAt: updateAt,
	})
	require.NoError(t, err)
	assert.True(t, updated.Read)
	assert.Equal(t, domain.FolderArchived, updated.Folder)
	assert.Equal(t, updateAt, updated.UpdatedAt)

	// 只更新 read，folder 保持不变
	unread := false
	updated, err = store.UpdateEmail(ctx, inbox.ID, storage.EmailUpdate{Read: &unread, UpdatedAt: updateAt.Add(time.Second)})
	require.NoError(t, err)
	assert.False(t, updated.Read)
	assert.Equal(t, domain.FolderArchived, updated.Folder)

	// 未知邮件返回哨兵错误
	_, err = store.UpdateEmail(ctx, bson.NewObjectID(), storage.EmailUpdate{UpdatedAt: updateAt})
	assert.ErrorIs(t, err, storage.ErrEmailNotFound)
}

func TestMemoryStore_Search(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, store.CreateConversation(ctx, &domain.Conversation{
		Participants: []bson.ObjectID{bson.NewObjectID(), bson.NewObjectID()},
		Title:        "Project Alpha",
		CreatedAt:    now,
		UpdatedAt:    now,
	}))
	require.NoError(t, store.CreateEmail(ctx, &domain.Email{
		Sender:    "a@example.com",
		To:        []string{"b@example.com"},
		Subject:   "alpha release",
		Body:      "details inside",
		Folder:    domain.FolderSent,
		CreatedAt: now,
		UpdatedAt: now,
	}))
	require.NoError(t, store.CreateEmail(ctx, &domain.Email{
		Sender:    "a@example.com",
		To:        []string{"b@example.com"},
		Subject:   "unrelated",
		Body:      "but mentions ALPHA in the body",
		Folder:    domain.FolderSent,
		CreatedAt: now,
		UpdatedAt: now,
	}))

	// 大小写不敏感的子串匹配
	conversations, err := store.SearchConversations(ctx, "ALPHA", 10)
	require.NoError(t, err)
	assert.Len(t, conversations, 1)

	emails, err := store.SearchEmails(ctx, "alpha", 10)
	require.NoError(t, err)
	assert.Len(t, emails, 2)

	// 上限截断
	emails, err = store.SearchEmails(ctx, "alpha", 1)
	require.NoError(t, err)
	assert.Len(t, emails, 1)

	// 无匹配
	conversations, err = store.SearchConversations(ctx, "beta", 10)
	require.NoError(t, err)
	assert.Empty(t, conversations)
}

func TestMemoryStore_Utility(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	assert.NoError(t, store.Health(ctx))
	assert.NoError(t, store.Close(ctx))

	names, err := store.CollectionNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{
		storage.CollectionUsers,
		storage.CollectionConversations,
		storage.CollectionMessages,
		storage.CollectionEmails,
	}, names)
}
