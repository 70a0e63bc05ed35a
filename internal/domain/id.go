package domain

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ErrInvalidID 标识符格式错误（必须是 24 位十六进制 ObjectID）
var ErrInvalidID = errors.New("invalid id")

// ParseID 将外部传入的字符串标识符解析为 ObjectID。
// 只校验语法，不校验引用的文档是否存在。
func ParseID(s string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(s)
	if err != nil {
		return bson.ObjectID{}, ErrInvalidID
	}
	return id, nil
}

// IsValidID 判断字符串是否为合法的 ObjectID 格式。
func IsValidID(s string) bool {
	_, err := bson.ObjectIDFromHex(s)
	return err == nil
}

// IDHex 返回标识符的字符串形式；零值 ObjectID 返回空字符串，
// 以兼容缺少身份字段的文档。
func IDHex(id bson.ObjectID) string {
	if id.IsZero() {
		return ""
	}
	return id.Hex()
}
