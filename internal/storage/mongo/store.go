package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"chatmail/backend/internal/storage"
)

// Store 基于 MongoDB 实现 storage.Store。
// 并发安全由驱动自身保证，不在此层加锁。
type Store struct {
	client        *mongo.Client
	db            *mongo.Database
	users         *mongo.Collection
	conversations *mongo.Collection
	messages      *mongo.Collection
	emails        *mongo.Collection
}

func newStore(client *mongo.Client, db *mongo.Database) *Store {
	return &Store{
		client:        client,
		db:            db,
		users:         db.Collection(storage.CollectionUsers),
		conversations: db.Collection(storage.CollectionConversations),
		messages:      db.Collection(storage.CollectionMessages),
		emails:        db.Collection(storage.CollectionEmails),
	}
}

// Close 断开数据库连接。
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Health 检查数据库可达性。
func (s *Store) Health(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// CollectionNames 返回数据库中的集合名称。
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.D{})
}
