package httptransport

import (
	"time"

	"chatmail/backend/internal/domain"
)

// 对外序列化约定：存储内部的 _id 重命名为字符串 id（十六进制），
// 时间戳按 ISO-8601 文本输出（time.Time 的默认 JSON 编码），
// 列表中内嵌的标识符引用转为字符串。缺少身份字段的文档序列化为
// 空 id 而不是报错。

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:    domain.IDHex(u.ID),
		Name:  u.Name,
		Email: u.Email,
	}
}

type conversationResponse struct {
	ID           string    `json:"id"`
	Participants []string  `json:"participants"`
	Title        string    `json:"title"`
	LastMessage  *string   `json:"last_message"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func toConversationResponse(c *domain.Conversation) conversationResponse {
	participants := make([]string, 0, len(c.Participants))
	for _, p := range c.Participants {
		participants = append(participants, domain.IDHex(p))
	}
	return conversationResponse{
		ID:           domain.IDHex(c.ID),
		Participants: participants,
		Title:        c.Title,
		LastMessage:  c.LastMessage,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

type messageResponse struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	Content        string    `json:"content"`
	CreatedAt      time.Time `json:"created_at"`
}

func toMessageResponse(m *domain.Message) messageResponse {
	return messageResponse{
		ID:             domain.IDHex(m.ID),
		ConversationID: domain.IDHex(m.ConversationID),
		SenderID:       domain.IDHex(m.SenderID),
		Content:        m.Content,
		CreatedAt:      m.CreatedAt,
	}
}

type emailResponse struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	To        []string  `json:"to"`
	CC        []string  `json:"cc"`
	BCC       []string  `json:"bcc"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	Folder    string    `json:"folder"`
	Owner     string    `json:"owner,omitempty"` // sent 记录上省略
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toEmailResponse(e *domain.Email) emailResponse {
	return emailResponse{
		ID:        domain.IDHex(e.ID),
		Sender:    e.Sender,
		To:        emptyList(e.To),
		CC:        emptyList(e.CC),
		BCC:       emptyList(e.BCC),
		Subject:   e.Subject,
		Body:      e.Body,
		Read:      e.Read,
		Folder:    e.Folder,
		Owner:     e.Owner,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// emptyList 保证 JSON 输出为 [] 而不是 null。
func emptyList(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
