package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"chatmail/backend/internal/domain"
	"chatmail/backend/internal/storage"
)

// ErrInvalidMessageIDs 消息的会话或发送者标识格式非法。
// 两个标识作为一组校验，对外报告为同一个错误。
var ErrInvalidMessageIDs = errors.New("invalid message ids")

// MessageService 封装消息发送逻辑。
type MessageService struct {
	messages      storage.MessageRepository
	conversations storage.ConversationRepository
	logger        *zap.Logger
}

// NewMessageService 创建消息业务服务。
func NewMessageService(messages storage.MessageRepository, conversations storage.ConversationRepository, logger *zap.Logger) *MessageService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MessageService{
		messages:      messages,
		conversations: conversations,
		logger:        logger,
	}
}

// SendMessageInput 定义发送消息的输入。
type SendMessageInput struct {
	ConversationID string
	SenderID       string
	Content        string
}

// Send 在会话中发送一条消息。
//
// 两个标识符只校验格式。消息写入后刷新父会话的 last_message 与
// updated_at；会话不存在时该刷新为空操作，消息仍然保留
// （非致命行为，见宽松引用完整性策略）。
func (s *MessageService) Send(ctx context.Context, input SendMessageInput) (*domain.Message, error) {
	conversationID, err := domain.ParseID(input.ConversationID)
	if err != nil {
		return nil, ErrInvalidMessageIDs
	}
	senderID, err := domain.ParseID(input.SenderID)
	if err != nil {
		return nil, ErrInvalidMessageIDs
	}

	message := &domain.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        input.Content,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.messages.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	if err := s.conversations.TouchConversation(ctx, conversationID, input.Content, time.Now().UTC()); err != nil {
		// 消息已写入，刷新失败不回滚
		s.logger.Warn("failed to touch conversation after message send",
			zap.String("conversation_id", conversationID.Hex()),
			zap.Error(err),
		)
	}

	return message, nil
}

// List 列出指定会话内的消息（时间升序）。
func (s *MessageService) List(ctx context.Context, conversationID string) ([]domain.Message, error) {
	id, err := domain.ParseID(conversationID)
	if err != nil {
		return nil, err
	}
	return s.messages.ListMessages(ctx, id)
}
