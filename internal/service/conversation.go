package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"chatmail/backend/internal/domain"
	"chatmail/backend/internal/storage"
)

var (
	// ErrTooFewParticipants 会话参与者不足两人
	ErrTooFewParticipants = errors.New("at least two participants required")
	// ErrInvalidParticipantID 参与者标识符格式错误
	ErrInvalidParticipantID = errors.New("invalid participant id")
)

// ConversationService 封装会话管理逻辑。
type ConversationService struct {
	repo storage.ConversationRepository
}

// NewConversationService 创建会话业务服务。
func NewConversationService(repo storage.ConversationRepository) *ConversationService {
	return &ConversationService{repo: repo}
}

// CreateConversationInput 定义创建会话的输入。
type CreateConversationInput struct {
	ParticipantIDs []string
	Title          string // 为空时使用默认标题
}

// Create 新建一个会话。
// 参与者标识符只校验格式，不校验用户是否存在。
func (s *ConversationService) Create(ctx context.Context, input CreateConversationInput) (*domain.Conversation, error) {
	if len(input.ParticipantIDs) < 2 {
		return nil, ErrTooFewParticipants
	}

	participants := make([]bson.ObjectID, 0, len(input.ParticipantIDs))
	for _, pid := range input.ParticipantIDs {
		id, err := domain.ParseID(pid)
		if err != nil {
			return nil, ErrInvalidParticipantID
		}
		participants = append(participants, id)
	}

	title := input.Title
	if title == "" {
		title = domain.DefaultConversationTitle
	}

	now := time.Now().UTC()
	conversation := &domain.Conversation{
		Participants: participants,
		Title:        title,
		LastMessage:  nil,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.CreateConversation(ctx, conversation); err != nil {
		return nil, err
	}
	return conversation, nil
}

// List 返回会话列表，最近活跃的在前。
// userID 为空或格式非法时不做筛选（校验失败静默退化为全量）。
func (s *ConversationService) List(ctx context.Context, userID string) ([]domain.Conversation, error) {
	filter := storage.ConversationFilter{}
	if userID != "" {
		if id, err := domain.ParseID(userID); err == nil {
			filter.Participant = &id
		}
	}
	return s.repo.ListConversations(ctx, filter)
}

// Get 获取单个会话。
func (s *ConversationService) Get(ctx context.Context, conversationID string) (*domain.Conversation, error) {
	id, err := domain.ParseID(conversationID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetConversation(ctx, id)
}
