package domain

import "go.mongodb.org/mongo-driver/v2/bson"

// User 表示一名注册用户。用户创建后不会被修改或删除。
type User struct {
	ID    bson.ObjectID `bson:"_id,omitempty"`
	Name  string        `bson:"name"`
	Email string        `bson:"email"` // 全局唯一（精确匹配，区分大小写）
}
