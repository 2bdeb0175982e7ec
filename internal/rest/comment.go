package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/rest/request"
	"github.com/Guyuepp/forum-api/internal/rest/response"
)

type commentHandler struct {
	Service domain.CommentUsecase
}

func NewCommentHandler(svc domain.CommentUsecase) *commentHandler {
	return &commentHandler{
		Service: svc,
	}
}

func (h *commentHandler) CreateComment(c *gin.Context) {
	p, err := request.Payload(c)
	if err != nil {
		respondError(c, err)
		return
	}
	in, err := domain.NewAddComment(request.WithOwner(p, userID(c), map[string]string{
		"threadId": c.Param("threadId"),
	}))
	if err != nil {
		respondError(c, err)
		return
	}

	added, err := h.Service.AddComment(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(gin.H{
		"addedComment": response.NewAddedCommentFromDomain(added),
	}))
}

func (h *commentHandler) DeleteComment(c *gin.Context) {
	err := h.Service.DeleteComment(c.Request.Context(), c.Param("threadId"), c.Param("commentId"), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Body{Status: "success"})
}

// ToggleLike likes the comment, or removes the caller's like if present.
func (h *commentHandler) ToggleLike(c *gin.Context) {
	action, err := h.Service.ToggleLike(c.Request.Context(), c.Param("threadId"), c.Param("commentId"), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.SuccessMessage(action.Message()))
}
