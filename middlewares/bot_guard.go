package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mssola/useragent"
)

// BotGuard 禁止爬虫访问，命中直接 404 中断
func BotGuard() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ua := useragent.New(ctx.Request.UserAgent())
		if ua.Bot() {
			ctx.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		ctx.Next()
	}
}
