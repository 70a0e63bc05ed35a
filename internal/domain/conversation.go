package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// DefaultConversationTitle 未指定标题时使用的默认标题
const DefaultConversationTitle = "Conversation"

// Conversation 表示一组参与者之间的会话。
//
// Participants 中的标识符只做格式校验，不保证引用的用户存在
// （宽松引用完整性策略，见 DESIGN.md）。
type Conversation struct {
	ID           bson.ObjectID   `bson:"_id,omitempty"`
	Participants []bson.ObjectID `bson:"participants"` // 至少 2 个
	Title        string          `bson:"title"`
	LastMessage  *string         `bson:"last_message"` // 最近一条消息正文的缓存，初始为 nil
	CreatedAt    time.Time       `bson:"created_at"`
	UpdatedAt    time.Time       `bson:"updated_at"` // 发送消息时刷新
}

// HasParticipant 判断指定用户是否在会话参与者中。
func (c *Conversation) HasParticipant(userID bson.ObjectID) bool {
	for _, p := range c.Participants {
		if p == userID {
			return true
		}
	}
	return false
}
