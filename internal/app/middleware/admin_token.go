package middleware

import (
	"crypto/subtle"
	"net/http"

	"civicdesk-http-service/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

var adminToken string

// InitAuthMiddleware 初始化认证中间件
func InitAuthMiddleware(cfg *config.Config) {
	adminToken = cfg.AdminToken
}

// extractToken 从查询参数或表单字段中提取管理令牌
func extractToken(c *gin.Context) string {
	if token := c.Query("token"); token != "" {
		return token
	}
	return c.PostForm("token")
}

// RequireAdminToken 校验共享管理令牌，失败时在任何写入发生前拒绝请求
func RequireAdminToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(adminToken)) != 1 {
			c.String(http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}
		c.Next()
	}
}
