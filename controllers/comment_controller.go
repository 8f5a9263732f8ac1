package controllers

import (
	"errors"
	"net/http"

	"blogapp/middlewares"
	"blogapp/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CommentController struct {
	comments *services.CommentService
}

func NewCommentController(comments *services.CommentService) *CommentController {
	return &CommentController{comments: comments}
}

// Store 发表评论
func (c *CommentController) Store(ctx *gin.Context) {
	var input services.CommentInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := c.comments.Store(input, middlewares.CurrentUserID(ctx))
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "article or parent comment not found"})
	case errors.Is(err, services.ErrContentRequired),
		errors.Is(err, services.ErrArticleRequired),
		errors.Is(err, services.ErrParentMismatch):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusOK, gin.H{"id": id})
	}
}

// Thread 文章的评论树
func (c *CommentController) Thread(ctx *gin.Context) {
	id, ok := idParam(ctx)
	if !ok {
		return
	}

	thread, err := c.comments.GetThread(id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"comments": thread})
}

// CheckLogin 会话里有没有用户 id
func (c *CommentController) CheckLogin(ctx *gin.Context) {
	if middlewares.CurrentUserID(ctx) == 0 {
		ctx.JSON(http.StatusOK, 0)
		return
	}
	ctx.JSON(http.StatusOK, 1)
}
