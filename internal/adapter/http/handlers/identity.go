package handlers

import (
	"log"
	"net/http"
	"strings"

	"revolux/internal/domain/entities"
	"revolux/pkg"

	"github.com/gin-gonic/gin"
)

const (
	HeaderUserEmail = "X-User-Email"
	HeaderUserRole  = "X-User-Role"

	// queryUserEmail lets EventSource clients, which cannot set headers,
	// identify themselves on the stream endpoint.
	queryUserEmail = "user_email"

	actorContextKey = "revolux.actor"
)

var (
	errMissingIdentity = pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing user identity", http.StatusUnauthorized)
	errInvalidRole     = pkg.NewDomainErrorSimple("INVALID_ROLE", "Unknown user role", http.StatusUnauthorized)
)

// RequireIdentity resolves the caller from the identity provider headers.
// Without X-User-Role the role follows the e-mail tag convention.
func RequireIdentity() gin.HandlerFunc {
	return requireIdentity(false)
}

// RequireStreamIdentity is RequireIdentity for the event stream: it also
// accepts the e-mail in the user_email query parameter.
func RequireStreamIdentity() gin.HandlerFunc {
	return requireIdentity(true)
}

func requireIdentity(allowQuery bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := strings.TrimSpace(c.GetHeader(HeaderUserEmail))
		if email == "" && allowQuery {
			email = strings.TrimSpace(c.Query(queryUserEmail))
		}
		if email == "" {
			c.AbortWithStatusJSON(errMissingIdentity.HTTPStatus, errMissingIdentity.ToHTTPError())
			return
		}

		role := entities.RoleFromEmail(email)
		if raw := strings.TrimSpace(c.GetHeader(HeaderUserRole)); raw != "" {
			parsed, ok := entities.ParseRole(raw)
			if !ok {
				log.Printf("[identity][middleware] invalid role email=%s role=%s", email, raw)
				c.AbortWithStatusJSON(errInvalidRole.HTTPStatus, errInvalidRole.ToHTTPError())
				return
			}
			role = parsed
		}

		c.Set(actorContextKey, entities.Actor{Email: email, Role: role})
		c.Next()
	}
}

func actorFrom(c *gin.Context) entities.Actor {
	if v, ok := c.Get(actorContextKey); ok {
		if actor, ok := v.(entities.Actor); ok {
			return actor
		}
	}
	return entities.Actor{}
}
