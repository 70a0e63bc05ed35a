package httptransport

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// 注意：本 API 与既有前端约定了旧格式——成功响应直接返回对象/数组，
// 错误响应为 {"detail": "<message>"}，不使用统一信封。

// errorResponse 错误响应体
type errorResponse struct {
	Detail string `json:"detail"`
}

// BadRequest 请求参数错误（400）
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, errorResponse{Detail: msg})
}

// NotFound 资源不存在错误（404）
func NotFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, errorResponse{Detail: msg})
}

// InternalError 服务器内部错误（500）
func InternalError(c *gin.Context, msg string) {
	c.JSON(http.StatusInternalServerError, errorResponse{Detail: msg})
}
