package request

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/forum-api/domain"
)

// ErrMalformedBody is returned when the body is not a JSON object.
var ErrMalformedBody = &domain.Error{Kind: domain.ErrBadParamInput, Message: "payload harus berupa objek JSON"}

// Payload decodes the request body into a raw payload so the domain
// validators can tell a missing field from a wrongly typed one. An empty
// body yields an empty payload.
func Payload(c *gin.Context) (domain.Payload, error) {
	var p domain.Payload
	if err := c.ShouldBindJSON(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, ErrMalformedBody
	}
	if p == nil {
		p = domain.Payload{}
	}
	return p, nil
}

// WithOwner adds the authenticated user and the path parameters to p,
// overriding anything the client sent under the same keys.
func WithOwner(p domain.Payload, owner string, params map[string]string) domain.Payload {
	p["owner"] = owner
	for k, v := range params {
		p[k] = v
	}
	return p
}
