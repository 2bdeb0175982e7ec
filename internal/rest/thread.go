package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/rest/request"
	"github.com/Guyuepp/forum-api/internal/rest/response"
)

// ThreadHandler represent the httphandler for thread
type ThreadHandler struct {
	Service domain.ThreadUsecase
}

func NewThreadHandler(svc domain.ThreadUsecase) *ThreadHandler {
	return &ThreadHandler{
		Service: svc,
	}
}

// Store creates a thread owned by the caller.
func (h *ThreadHandler) Store(c *gin.Context) {
	p, err := request.Payload(c)
	if err != nil {
		respondError(c, err)
		return
	}
	in, err := domain.NewAddThread(request.WithOwner(p, userID(c), nil))
	if err != nil {
		respondError(c, err)
		return
	}

	added, err := h.Service.AddThread(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response.Success(gin.H{
		"addedThread": response.NewAddedThreadFromDomain(added),
	}))
}

// GetByID returns the thread with its comments and replies.
func (h *ThreadHandler) GetByID(c *gin.Context) {
	detail, err := h.Service.GetThreadDetail(c.Request.Context(), c.Param("threadId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(gin.H{
		"thread": response.NewThreadDetailFromDomain(&detail),
	}))
}
