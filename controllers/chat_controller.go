package controllers

import (
	"net/http"

	"blogapp/services"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	chats *services.ChatService
}

func NewChatController(chats *services.ChatService) *ChatController {
	return &ChatController{chats: chats}
}

// List 随言碎语
func (c *ChatController) List(ctx *gin.Context) {
	chats, err := c.chats.List()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"chat": chats})
}
