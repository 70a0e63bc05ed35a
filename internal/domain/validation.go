package domain

import (
	"errors"
	"net/mail"
	"strings"
)

// 验证相关的错误定义
var (
	ErrInvalidEmail = errors.New("invalid email format")
	ErrEmailTooLong = errors.New("email address too long")
)

// RFC 5322 邮箱地址长度上限
const MaxEmailLength = 254

// ValidateEmailAddress 校验邮箱地址格式。
// 要求能被 RFC 5322 解析，且域名部分至少包含一个点
// （与原接口的 EmailStr 语义对齐，拒绝 "a@b" 这类裸域地址）。
func ValidateEmailAddress(email string) error {
	if email == "" {
		return ErrInvalidEmail
	}
	if len(email) > MaxEmailLength {
		return ErrEmailTooLong
	}

	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}

	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return ErrInvalidEmail
	}
	domainPart := email[at+1:]
	if !strings.Contains(domainPart, ".") ||
		strings.HasPrefix(domainPart, ".") || strings.HasSuffix(domainPart, ".") {
		return ErrInvalidEmail
	}

	return nil
}

// ValidEmailAddress 是 ValidateEmailAddress 的布尔便捷形式。
func ValidEmailAddress(email string) bool {
	return ValidateEmailAddress(email) == nil
}
