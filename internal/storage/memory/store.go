package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"chatmail/backend/internal/domain"
	"chatmail/backend/internal/storage"
)

// Store 使用内存保存用户、会话、消息与邮件数据，
// 用于开发验证以及作为测试中的可替换存储。
type Store struct {
	mu            sync.RWMutex
	users         map[bson.ObjectID]*domain.User
	userOrder     []bson.ObjectID
	byEmail       map[string]bson.ObjectID            // email -> userID（精确匹配）
	conversations map[bson.ObjectID]*domain.Conversation
	messages      map[bson.ObjectID][]*domain.Message // conversationID -> 按创建顺序
	emails        []*domain.Email                     // 按插入顺序
	emailIndex    map[bson.ObjectID]int
}

// NewStore 创建一个内存存储实例。
func NewStore() *Store {
	return &Store{
		users:         make(map[bson.ObjectID]*domain.User),
		byEmail:       make(map[string]bson.ObjectID),
		conversations: make(map[bson.ObjectID]*domain.Conversation),
		messages:      make(map[bson.ObjectID][]*domain.Message),
		emails:        make([]*domain.Email, 0),
		emailIndex:    make(map[bson.ObjectID]int),
	}
}

// CreateUser 保存用户，缺少身份字段时自动分配。
func (s *Store) CreateUser(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.ID.IsZero() {
		user.ID = bson.NewObjectID()
	}
	stored := *user
	s.users[stored.ID] = &stored
	s.userOrder = append(s.userOrder, stored.ID)
	s.byEmail[stored.Email] = stored.ID
	return nil
}

// GetUserByEmail 按邮箱地址精确查找用户。
func (s *Store) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEmail[email]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	user := *s.users[id]
	return &user, nil
}

// ListUsers 返回全部用户的快照（插入顺序）。
func (s *Store) ListUsers(_ context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.User, 0, len(s.userOrder))
	for _, id := range s.userOrder {
		result = append(result, *s.users[id])
	}
	return result, nil
}

// CreateConversation 保存会话。
func (s *Store) CreateConversation(_ context.Context, conversation *domain.Conversation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if conversation.ID.IsZero() {
		conversation.ID = bson.NewObjectID()
	}
	stored := *conversation
	s.conversations[stored.ID] = &stored
	return nil
}

// GetConversation 根据 ID 获取会话。
func (s *Store) GetConversation(_ context.Context, id bson.ObjectID) (*domain.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conversation, ok := s.conversations[id]
	if !ok {
		return nil, storage.ErrConversationNotFound
	}
	c := *conversation
	return &c, nil
}

// ListConversations 返回会话快照，UpdatedAt 降序。
func (s *Store) ListConversations(_ context.Context, filter storage.ConversationFilter) ([]domain.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Conversation, 0, len(s.conversations))
	for _, c := range s.conversations {
		if filter.Participant != nil && !c.HasParticipant(*filter.Participant) {
			continue
		}
		result = append(result, *c)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})
	return result, nil
}

// TouchConversation 刷新会话的 last_message 与 updated_at。
// 会话不存在时静默忽略。
func (s *Store) TouchConversation(_ context.Context, id bson.ObjectID, lastMessage string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	conversation, ok := s.conversations[id]
	if !ok {
		return nil
	}
	msg := lastMessage
	conversation.LastMessage = &msg
	conversation.UpdatedAt = at
	return nil
}

// SearchConversations 在标题上做大小写不敏感的子串匹配。
func (s *Store) SearchConversations(_ context.Context, query string, limit int) ([]domain.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(query)
	result := make([]domain.Conversation, 0, limit)
	for _, c := range s.conversations {
		if len(result) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(c.Title), needle) {
			result = append(result, *c)
		}
	}
	return result, nil
}

// CreateMessage 保存消息。
func (s *Store) CreateMessage(_ context.Context, message *domain.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if message.ID.IsZero() {
		message.ID = bson.NewObjectID()
	}
	stored := *message
	s.messages[stored.ConversationID] = append(s.messages[stored.ConversationID], &stored)
	return nil
}

// ListMessages 返回会话内的消息，CreatedAt 升序。
// 会话不存在时返回空列表。
func (s *Store) ListMessages(_ context.Context, conversationID bson.ObjectID) ([]domain.Message, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.messages[conversationID]
	result := make([]domain.Message, 0, len(stored))
	for _, m := range stored {
		result = append(result, *m)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})
	return result, nil
}

// CreateEmail 保存一封邮件记录。
func (s *Store) CreateEmail(_ context.Context, email *domain.Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveEmailLocked(email)
	return nil
}

// CreateEmails 批量保存邮件记录（收件箱副本的扇出写入）。
func (s *Store) CreateEmails(_ context.Context, emails []*domain.Email) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, email := range emails {
		s.saveEmailLocked(email)
	}
	return nil
}

func (s *Store) saveEmailLocked(email *domain.Email) {
	if email.ID.IsZero() {
		email.ID = bson.NewObjectID()
	}
	stored := *email
	s.emailIndex[stored.ID] = len(s.emails)
	s.emails = append(s.emails, &stored)
}

// ListEmails 返回匹配筛选条件的邮件，CreatedAt 降序。
func (s *Store) ListEmails(_ context.Context, filter storage.EmailFilter) ([]domain.Email, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Email, 0, len(s.emails))
	for _, e := range s.emails {
		if filter.Owner != "" && e.Owner != filter.Owner {
			continue
		}
		if filter.Folder != "" && e.Folder != filter.Folder {
			continue
		}
		result = append(result, *e)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// UpdateEmail 应用部分更新并返回更新后的记录。
func (s *Store) UpdateEmail(_ context.Context, id bson.ObjectID, update storage.EmailUpdate) (*domain.Email, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.emailIndex[id]
	if !ok {
		return nil, storage.ErrEmailNotFound
	}
	email := s.emails[idx]
	if update.Read != nil {
		email.Read = *update.Read
	}
	if update.Folder != nil {
		email.Folder = *update.Folder
	}
	email.UpdatedAt = update.UpdatedAt

	e := *email
	return &e, nil
}

// SearchEmails 在主题或正文上做大小写不敏感的子串匹配。
func (s *Store) SearchEmails(_ context.Context, query string, limit int) ([]domain.Email, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	needle := strings.ToLower(query)
	result := make([]domain.Email, 0, limit)
	for _, e := range s.emails {
		if len(result) >= limit {
			break
		}
		if strings.Contains(strings.ToLower(e.Subject), needle) ||
			strings.Contains(strings.ToLower(e.Body), needle) {
			result = append(result, *e)
		}
	}
	return result, nil
}

// Close 关闭存储（内存实现无资源可释放）。
func (s *Store) Close(context.Context) error { return nil }

// Health 报告存储健康状态。
func (s *Store) Health(context.Context) error { return nil }

// CollectionNames 返回存储中的集合名称。
func (s *Store) CollectionNames(context.Context) ([]string, error) {
	return []string{
		storage.CollectionUsers,
		storage.CollectionConversations,
		storage.CollectionMessages,
		storage.CollectionEmails,
	}, nil
}
