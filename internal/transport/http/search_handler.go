package httptransport

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type searchResponse struct {
	Conversations []conversationResponse `json:"conversations"`
	Emails        []emailResponse        `json:"emails"`
}

// search godoc
// @Summary 全局搜索
// @Description 按关键字搜索会话标题与邮件主题/正文，各类别最多返回 10 条
// @Tags Search
// @Produce json
// @Param q query string false "关键字"
// @Success 200 {object} searchResponse
// @Router /api/search [get]
func (h *Handler) search(c *gin.Context) {
	result, err := h.searcher.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeError(c, err)
		return
	}

	resp := searchResponse{
		Conversations: make([]conversationResponse, 0, len(result.Conversations)),
		Emails:        make([]emailResponse, 0, len(result.Emails)),
	}
	for i := range result.Conversations {
		resp.Conversations = append(resp.Conversations, toConversationResponse(&result.Conversations[i]))
	}
	for i := range result.Emails {
		resp.Emails = append(resp.Emails, toEmailResponse(&result.Emails[i]))
	}
	c.JSON(http.StatusOK, resp)
}
