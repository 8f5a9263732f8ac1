package middlewares

import (
	"strings"

	"blogapp/pkg/session"

	"github.com/gin-gonic/gin"
)

const userIDKey = "userID"

// Session 从 Authorization 头或 token cookie 里解析用户 id；
// 没带或解析失败就按未登录继续，不拦截请求
func Session(secret string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := ctx.GetHeader("Authorization")
		token = strings.TrimPrefix(token, "Bearer ")
		if token == "" {
			token, _ = ctx.Cookie("token")
		}

		if token != "" {
			if userID, err := session.ParseUserID(token, secret); err == nil {
				ctx.Set(userIDKey, userID)
			}
		}

		ctx.Next()
	}
}

// CurrentUserID 当前请求的用户 id，未登录返回 0
func CurrentUserID(ctx *gin.Context) uint {
	if v, ok := ctx.Get(userIDKey); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
