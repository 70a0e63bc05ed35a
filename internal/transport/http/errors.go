package httptransport

import (
	"errors"

	"github.com/gin-gonic/gin"

	"chatmail/backend/internal/domain"
	"chatmail/backend/internal/service"
	"chatmail/backend/internal/storage"
)

// 通用错误消息
const (
	MsgInvalidRequest = "Invalid request body"
	MsgInternalError  = "Internal server error"
)

// badRequestErrors 映射到 400 的业务错误
var badRequestErrors = map[error]string{
	domain.ErrInvalidID:             "Invalid id",
	domain.ErrInvalidEmail:          "Invalid email address",
	domain.ErrEmailTooLong:          "Invalid email address",
	service.ErrEmailTaken:           "Email already exists", // 重复邮箱按 400 处理而非 409
	service.ErrTooFewParticipants:   "At least two participants required",
	service.ErrInvalidParticipantID: "Invalid participant id",
	service.ErrInvalidMessageIDs:    "Invalid ids", // 消息的两个标识作为一组报告
}

// notFoundErrors 映射到 404 的业务错误
var notFoundErrors = map[error]string{
	storage.ErrConversationNotFound: "Not found",
	storage.ErrEmailNotFound:        "Not found",
	storage.ErrUserNotFound:         "Not found",
}

// writeError 将业务错误映射为 HTTP 错误响应。
// 未知错误一律按内部错误处理，不向外泄露细节。
func writeError(c *gin.Context, err error) {
	for known, msg := range badRequestErrors {
		if errors.Is(err, known) {
			BadRequest(c, msg)
			return
		}
	}
	for known, msg := range notFoundErrors {
		if errors.Is(err, known) {
			NotFound(c, msg)
			return
		}
	}
	_ = c.Error(err) // 挂到上下文，供日志中间件输出
	InternalError(c, MsgInternalError)
}
