package httptransport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"chatmail/backend/internal/service"
)

type createUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// createUser godoc
// @Summary 注册用户
// @Description 创建一名新用户；邮箱地址必须唯一
// @Tags Users
// @Accept json
// @Produce json
// @Param request body createUserRequest true "用户信息"
// @Success 200 {object} userResponse
// @Failure 400 {object} errorResponse
// @Router /api/users [post]
func (h *Handler) createUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, MsgInvalidRequest)
		return
	}

	user, err := h.users.Create(c.Request.Context(), service.CreateUserInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

// listUsers godoc
// @Summary 用户列表
// @Description 返回全部注册用户
// @Tags Users
// @Produce json
// @Success 200 {array} userResponse
// @Router /api/users [get]
func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}

	responses := make([]userResponse, 0, len(users))
	for i := range users {
		responses = append(responses, toUserResponse(&users[i]))
	}
	c.JSON(http.StatusOK, responses)
}
