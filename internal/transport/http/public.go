package httptransport

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"chatmail/backend/internal/config"
	"chatmail/backend/internal/storage"
)

// PublicHandler 公开API处理器（无需认证）
type PublicHandler struct {
	cfg   *config.Config
	store storage.Store
}

// NewPublicHandler 创建公开API处理器
func NewPublicHandler(cfg *config.Config, store storage.Store) *PublicHandler {
	return &PublicHandler{
		cfg:   cfg,
		store: store,
	}
}

// Root godoc
// @Summary 服务信息
// @Description 返回服务运行标识
// @Tags Public
// @Produce json
// @Success 200 {object} object{message=string}
// @Router / [get]
func (h *PublicHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Chat & Email API running"})
}

// TestDatabase godoc
// @Summary 数据库诊断
// @Description 检查后端与数据库的连通性，始终返回 200
// @Tags Public
// @Produce json
// @Success 200 {object} object{backend=string,database=string,database_url=string,database_name=string,connection_status=string,collections=[]string}
// @Router /test [get]
func (h *PublicHandler) TestDatabase(c *gin.Context) {
	response := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      "❌ Not Set",
		"database_name":     "❌ Not Set",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}
	if h.cfg != nil {
		if h.cfg.Database.URL != "" {
			response["database_url"] = "✅ Set"
		}
		if h.cfg.Database.Name != "" {
			response["database_name"] = "✅ Set"
		}
	}

	if h.store != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := h.store.Health(ctx); err != nil {
			response["database"] = "❌ Error: " + truncateError(err, 80)
		} else {
			response["database"] = "✅ Available"
			response["connection_status"] = "Connected"
			if names, err := h.store.CollectionNames(ctx); err != nil {
				response["database"] = "⚠️ Connected but Error: " + truncateError(err, 80)
			} else {
				response["collections"] = names
				response["database"] = "✅ Connected & Working"
			}
		}
	}

	c.JSON(http.StatusOK, response)
}

// truncateError 截断错误文本，诊断输出不需要完整堆栈。
func truncateError(err error, limit int) string {
	msg := err.Error()
	if len(msg) > limit {
		msg = msg[:limit]
	}
	return msg
}
