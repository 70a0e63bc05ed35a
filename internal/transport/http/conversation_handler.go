package httptransport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chatmail/backend/internal/service"
)

type createConversationRequest struct {
	ParticipantIDs []string `json:"participant_ids" binding:"required"`
	Title          string   `json:"title"`
}

type sendMessageRequest struct {
	ConversationID string `json:"conversation_id" binding:"required"`
	SenderID       string `json:"sender_id" binding:"required"`
	Content        string `json:"content" binding:"required"`
}

// createConversation godoc
// @Summary 创建会话
// @Description 创建一个新会话，至少需要两名参与者
// @Tags Conversations
// @Accept json
// @Produce json
// @Param request body createConversationRequest true "会话信息"
// @Success 200 {object} conversationResponse
// @Failure 400 {object} errorResponse
// @Router /api/conversations [post]
func (h *Handler) createConversation(c *gin.Context) {
	var req createConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, MsgInvalidRequest)
		return
	}

	conversation, err := h.conversations.Create(c.Request.Context(), service.CreateConversationInput{
		ParticipantIDs: req.ParticipantIDs,
		Title:          req.Title,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toConversationResponse(conversation))
}

// listConversations godoc
// @Summary 会话列表
// @Description 列出会话，可按参与者过滤，按最近更新排序
// @Tags Conversations
// @Produce json
// @Param user_id query string false "参与者标识"
// @Success 200 {array} conversationResponse
// @Router /api/conversations [get]
func (h *Handler) listConversations(c *gin.Context) {
	conversations, err := h.conversations.List(c.Request.Context(), c.Query("user_id"))
	if err != nil {
		writeError(c, err)
		return
	}

	responses := make([]conversationResponse, 0, len(conversations))
	for i := range conversations {
		responses = append(responses, toConversationResponse(&conversations[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// getConversation godoc
// @Summary 会话详情
// @Description 按标识获取单个会话
// @Tags Conversations
// @Produce json
// @Param id path string true "会话标识"
// @Success 200 {object} conversationResponse
// @Failure 404 {object} errorResponse
// @Router /api/conversations/{id} [get]
func (h *Handler) getConversation(c *gin.Context) {
	conversation, err := h.conversations.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toConversationResponse(conversation))
}

// listMessages godoc
// @Summary 会话消息
// @Description 按发送时间升序返回会话内全部消息
// @Tags Messages
// @Produce json
// @Param id path string true "会话标识"
// @Success 200 {array} messageResponse
// @Failure 400 {object} errorResponse
// @Router /api/conversations/{id}/messages [get]
func (h *Handler) listMessages(c *gin.Context) {
	messages, err := h.messages.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	responses := make([]messageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, toMessageResponse(&messages[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// sendMessage godoc
// @Summary 发送消息
// @Description 在会话中追加一条消息并刷新会话的最后消息缓存
// @Tags Messages
// @Accept json
// @Produce json
// @Param request body sendMessageRequest true "消息内容"
// @Success 200 {object} messageResponse
// @Failure 400 {object} errorResponse
// @Router /api/messages [post]
func (h *Handler) sendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, MsgInvalidRequest)
		return
	}

	message, err := h.messages.Send(c.Request.Context(), service.SendMessageInput{
		ConversationID: req.ConversationID,
		SenderID:       req.SenderID,
		Content:        req.Content,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toMessageResponse(message))
}
