package middleware

import (
	"strconv"

	"github.com/omid-sharifi/timetrack/internal/domain/entity"
	"github.com/gin-gonic/gin"
)

// Identity headers set by the trusted authentication gateway
const (
	HeaderActorID   = "X-Actor-ID"
	HeaderActorRole = "X-Actor-Role"

	contextActorKey = "actor"
)

// Actor resolves the acting identity from the gateway headers and stores it
// in the request context. A missing or malformed identity yields the zero
// actor; authentication is enforced by the use cases, not here.
func Actor() gin.HandlerFunc {
	return func(c *gin.Context) {
		var actor entity.Actor

		if idHeader := c.GetHeader(HeaderActorID); idHeader != "" {
			if id, err := strconv.ParseUint(idHeader, 10, 64); err == nil {
				actor.ID = id
			}
		}
		if roleHeader := c.GetHeader(HeaderActorRole); entity.IsValidRole(roleHeader) {
			actor.Role = entity.Role(roleHeader)
		}

		c.Set(contextActorKey, actor)
		c.Next()
	}
}

// ActorFromContext returns the actor resolved for the current request
func ActorFromContext(c *gin.Context) entity.Actor {
	if value, exists := c.Get(contextActorKey); exists {
		if actor, ok := value.(entity.Actor); ok {
			return actor
		}
	}
	return entity.Actor{}
}
