package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/sitedesk/sitedesk/internal/domain/user"
	"github.com/sitedesk/sitedesk/internal/shared/constants"
)

// SetActor stores the resolved actor and its identity keys on the context.
func SetActor(c *gin.Context, actor user.Actor) {
	c.Set(constants.ContextKeyActor, actor)
	c.Set(constants.ContextKeyUserID, actor.UserID)
	c.Set(constants.ContextKeyUserRole, actor.Role.String())
}

// GetActor returns the actor set by RequireAuth.
func GetActor(c *gin.Context) (user.Actor, bool) {
	v, exists := c.Get(constants.ContextKeyActor)
	if !exists {
		return user.Actor{}, false
	}
	actor, ok := v.(user.Actor)
	return actor, ok
}
