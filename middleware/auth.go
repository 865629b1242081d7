package middleware

import (
	"net/http"
	"strings"

	appctx "SnackShop/pkg/context"
	"SnackShop/pkg/jwt"
	"SnackShop/pkg/response"

	"github.com/gin-gonic/gin"
)

// Auth 缺 token 回 401，token 无效或过期回 403
func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "missing authorization token")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Abort(c, http.StatusUnauthorized, "missing authorization token")
			return
		}

		claims, err := jwt.ParseToken(secret, parts[1])
		if err != nil {
			response.Abort(c, http.StatusForbidden, "invalid or expired token")
			return
		}

		c.Set(appctx.CtxUserID, claims.UserID)
		c.Set(appctx.CtxEmail, claims.Email)
		c.Set(appctx.CtxFullName, claims.FullName)
		c.Set(appctx.CtxRole, claims.Role)

		c.Next()
	}
}

// RequireStaff 只读 Auth 写进上下文的角色，必须挂在 Auth 之后
func RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(appctx.CtxRole)
		if role != jwt.RoleStaff && role != jwt.RoleAdmin {
			response.Abort(c, http.StatusForbidden, "staff or admin access required")
			return
		}
		c.Next()
	}
}
