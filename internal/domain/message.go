package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Message 表示会话内的一条消息，创建后不可变。
type Message struct {
	ID             bson.ObjectID `bson:"_id,omitempty"`
	ConversationID bson.ObjectID `bson:"conversation_id"`
	SenderID       bson.ObjectID `bson:"sender_id"`
	Content        string        `bson:"content"`
	CreatedAt      time.Time     `bson:"created_at"`
}
