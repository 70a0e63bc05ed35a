package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Folder 表示邮件所在的文件夹。文件夹之间没有强制的状态迁移图，
// PATCH 可以把任意值写入 folder 字段。
type Folder = string

// 系统自身写入的文件夹取值
const (
	FolderInbox    Folder = "inbox"
	FolderSent     Folder = "sent"
	FolderDrafts   Folder = "drafts"
	FolderTrash    Folder = "trash"
	FolderArchived Folder = "archived"
)

// Email 表示一封邮件记录。
//
// 一次发送产生 1 条 sent 记录（Owner 为空）加上每个 to 收件人各一条
// 独立的 inbox 副本（Owner 为该收件人地址）。副本之间互不关联，
// 可以各自标记已读或移动文件夹。cc/bcc 收件人不产生副本（固定契约）。
type Email struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Sender    string        `bson:"sender"`
	To        []string      `bson:"to"`
	CC        []string      `bson:"cc"`
	BCC       []string      `bson:"bcc"`
	Subject   string        `bson:"subject"`
	Body      string        `bson:"body"`
	Read      bool          `bson:"read"`
	Folder    Folder        `bson:"folder"`
	Owner     string        `bson:"owner,omitempty"` // 只在收件人副本上设置
	CreatedAt time.Time     `bson:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at"`
}

// InboxCopy 生成发往 recipient 的收件箱副本：内容字段完整复制，
// 身份、时间戳全新，folder 固定为 inbox，read 重置为 false。
func (e *Email) InboxCopy(recipient string, now time.Time) *Email {
	return &Email{
		ID:        bson.NewObjectID(),
		Sender:    e.Sender,
		To:        e.To,
		CC:        e.CC,
		BCC:       e.BCC,
		Subject:   e.Subject,
		Body:      e.Body,
		Read:      false,
		Folder:    FolderInbox,
		Owner:     recipient,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
