package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/rest/request"
	"github.com/Guyuepp/forum-api/internal/rest/response"
)

type replyHandler struct {
	Service domain.ReplyUsecase
}

func NewReplyHandler(svc domain.ReplyUsecase) *replyHandler {
	return &replyHandler{
		Service: svc,
	}
}

func (h *replyHandler) CreateReply(c *gin.Context) {
	p, err := request.Payload(c)
	if err != nil {
		respondError(c, err)
		return
	}
	in, err := domain.NewAddReply(request.WithOwner(p, userID(c), map[string]string{
		"threadId":  c.Param("threadId"),
		"commentId": c.Param("commentId"),
	}))
	if err != nil {
		respondError(c, err)
		return
	}

	added, err := h.Service.AddReply(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(gin.H{
		"addedReply": response.NewAddedReplyFromDomain(added),
	}))
}

func (h *replyHandler) DeleteReply(c *gin.Context) {
	err := h.Service.DeleteReply(c.Request.Context(),
		c.Param("threadId"), c.Param("commentId"), c.Param("replyId"), userID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Body{Status: "success"})
}
