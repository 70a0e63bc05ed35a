package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"chatmail/backend/internal/domain"
	"chatmail/backend/internal/storage"
)

// CreateEmail 保存一封邮件记录。
func (s *Store) CreateEmail(ctx context.Context, email *domain.Email) error {
	if email.ID.IsZero() {
		email.ID = bson.NewObjectID()
	}
	_, err := s.emails.InsertOne(ctx, email)
	return err
}

// CreateEmails 批量写入收件箱副本。与发送记录的写入不构成事务。
func (s *Store) CreateEmails(ctx context.Context, emails []*domain.Email) error {
	if len(emails) == 0 {
		return nil
	}
	for _, email := range emails {
		if email.ID.IsZero() {
			email.ID = bson.NewObjectID()
		}
	}
	_, err := s.emails.InsertMany(ctx, emails)
	return err
}

// ListEmails 返回匹配筛选条件的邮件，created_at 降序。
func (s *Store) ListEmails(ctx context.Context, filter storage.EmailFilter) ([]domain.Email, error) {
	query := bson.M{}
	if filter.Owner != "" {
		query["owner"] = filter.Owner
	}
	if filter.Folder != "" {
		query["folder"] = filter.Folder
	}

	cursor, err := s.emails.Find(ctx, query,
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	emails := make([]domain.Email, 0)
	if err := cursor.All(ctx, &emails); err != nil {
		return nil, err
	}
	return emails, nil
}

// UpdateEmail 应用部分更新并返回更新后的记录。
func (s *Store) UpdateEmail(ctx context.Context, id bson.ObjectID, update storage.EmailUpdate) (*domain.Email, error) {
	set := bson.M{"updated_at": update.UpdatedAt}
	if update.Read != nil {
		set["read"] = *update.Read
	}
	if update.Folder != nil {
		set["folder"] = *update.Folder
	}

	var email domain.Email
	err := s.emails.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&email)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, storage.ErrEmailNotFound
	}
	if err != nil {
		return nil, err
	}
	return &email, nil
}

// SearchEmails 在主题或正文上做大小写不敏感的正则匹配。
func (s *Store) SearchEmails(ctx context.Context, query string, limit int) ([]domain.Email, error) {
	pattern := bson.M{"$regex": query, "$options": "i"}
	cursor, err := s.emails.Find(ctx,
		bson.M{"$or": bson.A{
			bson.M{"subject": pattern},
			bson.M{"body": pattern},
		}},
		options.Find().SetLimit(int64(limit)))
	if err != nil {
		return nil, err
	}
	emails := make([]domain.Email, 0)
	if err := cursor.All(ctx, &emails); err != nil {
		return nil, err
	}
	return emails, nil
}
