package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"chatmail/backend/internal/domain"
	"chatmail/backend/internal/storage"
)

// CreateConversation 保存会话。
func (s *Store) CreateConversation(ctx context.Context, conversation *domain.Conversation) error {
	if conversation.ID.IsZero() {
		conversation.ID = bson.NewObjectID()
	}
	_, err := s.conversations.InsertOne(ctx, conversation)
	return err
}

// GetConversation 根据 ID 获取会话。
func (s *Store) GetConversation(ctx context.Context, id bson.ObjectID) (*domain.Conversation, error) {
	var conversation domain.Conversation
	err := s.conversations.FindOne(ctx, bson.M{"_id": id}).Decode(&conversation)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storage.ErrConversationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &conversation, nil
}

// ListConversations 返回会话列表，updated_at 降序。
func (s *Store) ListConversations(ctx context.Context, filter storage.ConversationFilter) ([]domain.Conversation, error) {
	query := bson.M{}
	if filter.Participant != nil {
		// 数组字段上的相等匹配即包含匹配
		query["participants"] = *filter.Participant
	}

	cursor, err := s.conversations.Find(ctx, query,
		options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	conversations := make([]domain.Conversation, 0)
	if err := cursor.All(ctx, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}

// TouchConversation 刷新会话的 last_message 与 updated_at。
// 无匹配文档时为空操作。
func (s *Store) TouchConversation(ctx context.Context, id bson.ObjectID, lastMessage string, at time.Time) error {
	_, err := s.conversations.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"last_message": lastMessage, "updated_at": at}})
	return err
}

// SearchConversations 在标题上做大小写不敏感的正则匹配。
func (s *Store) SearchConversations(ctx context.Context, query string, limit int) ([]domain.Conversation, error) {
	cursor, err := s.conversations.Find(ctx,
		bson.M{"title": bson.M{"$regex": query, "$options": "i"}},
		options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	conversations := make([]domain.Conversation, 0)
	if err := cursor.All(ctx, &conversations); err != nil {
		return nil, err
	}
	return conversations, nil
}
