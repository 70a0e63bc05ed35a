package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"chatmail/backend/internal/domain"
)

// CreateMessage 保存消息。
func (s *Store) CreateMessage(ctx context.Context, message *domain.Message) error {
	if message.ID.IsZero() {
		message.ID = bson.NewObjectID()
	}
	_, err := s.messages.InsertOne(ctx, message)
	return err
}

// ListMessages 返回会话内的消息，created_at 升序。
// 不校验会话是否存在（不存在时自然为空）。
func (s *Store) ListMessages(ctx context.Context, conversationID bson.ObjectID) ([]domain.Message, error) {
	cursor, err := s.messages.Find(ctx,
		bson.M{"conversation_id": conversationID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	messages := make([]domain.Message, 0)
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
