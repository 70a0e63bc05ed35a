package storage

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"chatmail/backend/internal/domain"
)

var (
	// ErrUserNotFound 用户未找到错误
	ErrUserNotFound = errors.New("user not found")
	// ErrConversationNotFound 会话未找到错误
	ErrConversationNotFound = errors.New("conversation not found")
	// ErrEmailNotFound 邮件未找到错误
	ErrEmailNotFound = errors.New("email not found")
)

// 集合名称。/test 诊断端点按此顺序报告。
const (
	CollectionUsers         = "user"
	CollectionConversations = "conversation"
	CollectionMessages      = "message"
	CollectionEmails        = "email"
)

// ConversationFilter 会话列表的筛选条件。
type ConversationFilter struct {
	Participant *bson.ObjectID // 为 nil 时不筛选
}

// EmailFilter 邮件列表的筛选条件，全部为精确匹配。
type EmailFilter struct {
	Owner  string // 为空时不筛选
	Folder string // 为空时不筛选
}

// EmailUpdate 描述对一封邮件的部分更新。
// 只有非 nil 的字段会被写入；UpdatedAt 总是刷新。
type EmailUpdate struct {
	Read      *bool
	Folder    *string
	UpdatedAt time.Time
}

// UserRepository 定义用户数据存取操作。
type UserRepository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// ConversationRepository 定义会话数据存取操作。
type ConversationRepository interface {
	CreateConversation(ctx context.Context, conversation *domain.Conversation) error
	GetConversation(ctx context.Context, id bson.ObjectID) (*domain.Conversation, error)
	// ListConversations 按 UpdatedAt 降序返回（最近活跃的在前）。
	ListConversations(ctx context.Context, filter ConversationFilter) ([]domain.Conversation, error)
	// TouchConversation 刷新 last_message 与 updated_at。
	// 会话不存在时静默忽略（消息发送不回滚）。
	TouchConversation(ctx context.Context, id bson.ObjectID, lastMessage string, at time.Time) error
	// SearchConversations 在标题上做大小写不敏感的子串匹配。
	SearchConversations(ctx context.Context, query string, limit int) ([]domain.Conversation, error)
}

// MessageRepository 定义消息数据存取操作。
type MessageRepository interface {
	CreateMessage(ctx context.Context, message *domain.Message) error
	// ListMessages 按 CreatedAt 升序返回；会话不存在时返回空列表。
	ListMessages(ctx context.Context, conversationID bson.ObjectID) ([]domain.Message, error)
}

// EmailRepository 定义邮件数据存取操作。
type EmailRepository interface {
	CreateEmail(ctx context.Context, email *domain.Email) error
	// CreateEmails 批量写入收件箱副本。与 CreateEmail 不构成事务，
	// 中途失败可能留下部分副本。
	CreateEmails(ctx context.Context, emails []*domain.Email) error
	// ListEmails 按 CreatedAt 降序返回。
	ListEmails(ctx context.Context, filter EmailFilter) ([]domain.Email, error)
	// UpdateEmail 应用部分更新并返回更新后的记录。
	// 无匹配记录时返回 ErrEmailNotFound。
	UpdateEmail(ctx context.Context, id bson.ObjectID, update EmailUpdate) (*domain.Email, error)
	// SearchEmails 在主题或正文上做大小写不敏感的子串匹配。
	SearchEmails(ctx context.Context, query string, limit int) ([]domain.Email, error)
}

// Store 定义完整的存储接口。
type Store interface {
	UserRepository
	ConversationRepository
	MessageRepository
	EmailRepository

	// 工具方法
	Close(ctx context.Context) error
	Health(ctx context.Context) error
	CollectionNames(ctx context.Context) ([]string, error)
}
