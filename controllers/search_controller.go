package controllers

import (
	"net/http"

	"blogapp/services"

	"github.com/gin-gonic/gin"
)

type SearchController struct {
	search *services.SearchService
}

func NewSearchController(search *services.SearchService) *SearchController {
	return &SearchController{search: search}
}

// Search 关键词搜索；爬虫在路由中间件里已被挡掉
func (c *SearchController) Search(ctx *gin.Context) {
	wd := ctx.Query("wd")

	list, err := c.search.Search(wd, pageParam(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"title": c.search.Clean(wd), "article": list})
}
