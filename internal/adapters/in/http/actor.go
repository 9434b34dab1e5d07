package http

import (
	"context"
	"net/http"

	"commerce/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// HeaderActorID carries the authenticated actor's identifier. Empty or absent
// means a guest request.
const HeaderActorID = "X-Actor-ID"

type actorContextKey struct{}

// ActorMiddleware extracts the actor identifier from the X-Actor-ID header and
// stores it on the request context. A malformed identifier is rejected before
// it can reach any permission check.
func ActorMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(HeaderActorID)
			if raw == "" {
				return next(c)
			}

			actorID, err := kernel.ActorIDFromString(raw)
			if err != nil {
				return c.JSON(http.StatusBadRequest, Error{
					Code:    http.StatusBadRequest,
					Message: "Invalid " + HeaderActorID + " header",
				})
			}

			ctx := context.WithValue(c.Request().Context(), actorContextKey{}, &actorID)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// ContextActorResolver resolves the session actor the middleware stored.
// Implements the authorization gate's ActorResolver.
type ContextActorResolver struct{}

// CurrentActorID returns the request's actor, nil for guests.
func (ContextActorResolver) CurrentActorID(ctx context.Context) *kernel.ActorID {
	actor, _ := ctx.Value(actorContextKey{}).(*kernel.ActorID)
	return actor
}
