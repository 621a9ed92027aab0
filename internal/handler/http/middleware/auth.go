package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Quill/internal/domain/apperror"
	"github.com/mikiasgoitom/Quill/internal/domain/entity"
	"github.com/mikiasgoitom/Quill/internal/handler/http/dto"
	"github.com/mikiasgoitom/Quill/internal/infrastructure/metrics"
	"github.com/mikiasgoitom/Quill/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/Quill/internal/usecase/contract"
)

// Keys under which the caller identity is stored on the gin context.
const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, dto.ErrorEnvelope{Status: false, Message: message})
}

// credentialFrom returns the first credential cookie present, checking the
// families in their fixed order.
func credentialFrom(c *gin.Context) (string, bool) {
	for _, role := range entity.Roles {
		if v, err := c.Cookie(role.CookieName()); err == nil && v != "" {
			return v, true
		}
	}
	return "", false
}

// AuthMiddleware verifies the request credential and attaches the caller's id and role.
func AuthMiddleware(jwtService usecase.JWTService, logger usecasecontract.IAppLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := credentialFrom(c)
		if !ok {
			metrics.IncAuthFailure("missing")
			abort(c, http.StatusUnauthorized, "unauthenticated, please login")
			return
		}

		claims, err := jwtService.ParseAccessToken(token)
		if err != nil {
			switch apperror.KindOf(err) {
			case apperror.KindTokenExpired:
				metrics.IncAuthFailure("expired")
				abort(c, http.StatusUnauthorized, "token expired, please login again")
			default:
				metrics.IncAuthFailure("invalid")
				abort(c, http.StatusUnauthorized, "invalid token")
			}
			logger.Debugf("auth: rejected credential on %s: %v", c.FullPath(), err)
			return
		}

		if !claims.Role.IsKnown() {
			metrics.IncAuthFailure("role")
			abort(c, http.StatusForbidden, "unauthorized")
			return
		}

		c.Set(ContextUserID, claims.PrincipalID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// RequirePermission admits the caller only when the table grants perm to their role.
// It must run after AuthMiddleware.
func RequirePermission(table entity.PermissionTable, perm entity.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, _ := c.Get(ContextRole)
		r, _ := role.(entity.Role)
		if !table.Allows(perm, r) {
			metrics.IncAuthFailure("forbidden")
			abort(c, http.StatusForbidden, "unauthorized")
			return
		}
		c.Next()
	}
}
