package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/JaunMarin423/CrudUsers/internal/models"
	"github.com/JaunMarin423/CrudUsers/internal/services"
	"github.com/JaunMarin423/CrudUsers/internal/utils"
)

const principalKey = "currentUser"

// CurrentUser returns the user Protect resolved for this request.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, ok := c.Get(principalKey)
	if !ok {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}

// Protect resolves the bearer token to a live, active user and attaches it to
// the request context. Absent token, bad token, vanished user, and
// deactivated account all fail with 401.
func Protect(tokens *services.TokenService, users services.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := services.ExtractBearer(c.GetHeader("Authorization"))
		if tokenStr == "" {
			abort(c, utils.Unauthorized("No estás autenticado. Por favor inicia sesión para acceder."))
			return
		}

		claims, err := tokens.Verify(tokenStr)
		if err != nil {
			// The normalizer distinguishes expired from invalid.
			abort(c, err)
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, models.ErrUserNotFound) {
				abort(c, utils.Unauthorized("El usuario al que pertenece este token ya no existe."))
				return
			}
			abort(c, err)
			return
		}

		if !user.IsActive {
			abort(c, utils.Unauthorized("Tu cuenta ha sido desactivada."))
			return
		}

		c.Set(principalKey, user)
		c.Next()
	}
}

// RestrictTo allows only the listed roles past. Requires Protect upstream.
func RestrictTo(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abort(c, utils.Unauthorized("No estás autenticado."))
			return
		}

		for _, role := range roles {
			if user.Role == role {
				c.Next()
				return
			}
		}
		abort(c, utils.Forbidden("No tienes permiso para realizar esta acción."))
	}
}

// OwnerOrAdmin lets admins through unconditionally; everyone else may only
// reach the user record named by the route parameter when it is their own.
// A missing target is reported as a generic not-found so the response does
// not leak whether the record exists.
func OwnerOrAdmin(users services.UserStore, paramName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abort(c, utils.Unauthorized("No estás autenticado."))
			return
		}

		if user.Role == models.RoleAdmin {
			c.Next()
			return
		}

		target, err := users.GetByID(c.Request.Context(), c.Param(paramName))
		if err != nil {
			if errors.Is(err, models.ErrUserNotFound) {
				abort(c, utils.NotFound("Recurso no encontrado"))
				return
			}
			abort(c, err)
			return
		}

		if target.ID != user.ID {
			abort(c, utils.Forbidden("No tienes permiso para realizar esta acción."))
			return
		}
		c.Next()
	}
}

func abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
