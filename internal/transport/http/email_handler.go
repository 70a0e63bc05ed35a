package httptransport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chatmail/backend/internal/service"
)

type sendEmailRequest struct {
	Sender  string   `json:"sender" binding:"required"`
	To      []string `json:"to" binding:"required"`
	CC      []string `json:"cc"`
	BCC     []string `json:"bcc"`
	Subject string   `json:"subject" binding:"required"`
	Body    string   `json:"body" binding:"required"`
}

type updateEmailRequest struct {
	Read   *bool   `json:"read"`
	Folder *string `json:"folder"`
}

// sendEmail godoc
// @Summary 发送邮件
// @Description 保存发件记录并为每个 to 收件人生成收件箱副本
// @Tags Emails
// @Accept json
// @Produce json
// @Param request body sendEmailRequest true "邮件内容"
// @Success 200 {object} emailResponse
// @Failure 400 {object} errorResponse
// @Router /api/emails [post]
func (h *Handler) sendEmail(c *gin.Context) {
	var req sendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, MsgInvalidRequest)
		return
	}

	email, err := h.emails.Send(c.Request.Context(), service.SendEmailInput{
		Sender:  req.Sender,
		To:      req.To,
		CC:      req.CC,
		BCC:     req.BCC,
		Subject: req.Subject,
		Body:    req.Body,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEmailResponse(email))
}

// listEmails godoc
// @Summary 邮件列表
// @Description 列出邮件，可按 owner 与 folder 过滤，按时间倒序
// @Tags Emails
// @Produce json
// @Param owner query string false "邮箱归属者"
// @Param folder query string false "文件夹"
// @Success 200 {array} emailResponse
// @Router /api/emails [get]
func (h *Handler) listEmails(c *gin.Context) {
	emails, err := h.emails.List(c.Request.Context(), c.Query("owner"), c.Query("folder"))
	if err != nil {
		writeError(c, err)
		return
	}

	responses := make([]emailResponse, 0, len(emails))
	for i := range emails {
		responses = append(responses, toEmailResponse(&emails[i]))
	}
	c.JSON(http.StatusOK, responses)
}

// updateEmail godoc
// @Summary 更新邮件
// @Description 部分更新邮件的已读状态或所在文件夹
// @Tags Emails
// @Accept json
// @Produce json
// @Param id path string true "邮件标识"
// @Param request body updateEmailRequest true "更新字段"
// @Success 200 {object} emailResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /api/emails/{id} [patch]
func (h *Handler) updateEmail(c *gin.Context) {
	var req updateEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, MsgInvalidRequest)
		return
	}

	email, err := h.emails.Update(c.Request.Context(), c.Param("id"), service.UpdateEmailInput{
		Read:   req.Read,
		Folder: req.Folder,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toEmailResponse(email))
}
