package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"blogapp/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ArticleController struct {
	articles *services.ArticleService
	views    *services.ViewService
	comments *services.CommentService
}

func NewArticleController(articles *services.ArticleService, views *services.ViewService, comments *services.CommentService) *ArticleController {
	return &ArticleController{articles: articles, views: views, comments: comments}
}

func pageParam(ctx *gin.Context) int {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	return page
}

func idParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return 0, false
	}
	return uint(id), true
}

// Index 首页文章列表
func (c *ArticleController) Index(ctx *gin.Context) {
	list, err := c.articles.List(pageParam(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, list)
}

// Show 文章详情；每次访问经过去重后累加点击量
func (c *ArticleController) Show(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	article, err := c.articles.Get(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "article not found"})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	counted, err := c.views.RecordView(id, ctx.ClientIP())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if counted {
		article.Click++
	}

	prev, next, err := c.articles.Neighbors(id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	thread, err := c.comments.GetThread(id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"article":  article,
		"prev":     prev,
		"next":     next,
		"comments": thread,
	})
}

// Category 分类下的文章
func (c *ArticleController) Category(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	category, list, err := c.articles.ListByCategory(id, pageParam(ctx))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"category": category, "article": list})
}

// Tag 标签下的文章
func (c *ArticleController) Tag(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	tag, list, err := c.articles.ListByTag(id, pageParam(ctx))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "tag not found"})
		return
	}
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"tag": tag, "article": list})
}

// Top 点击排行
func (c *ArticleController) Top(ctx *gin.Context) {
	top, err := strconv.Atoi(ctx.DefaultQuery("top", "10"))
	if err != nil || top <= 0 {
		top = 10
	}

	list, err := c.views.TopArticles(top)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"list": list})
}
