package controllers

import (
	"net/http"

	"blogapp/services"

	"github.com/gin-gonic/gin"
)

type FeedController struct {
	feed *services.FeedService
}

func NewFeedController(feed *services.FeedService) *FeedController {
	return &FeedController{feed: feed}
}

// Feed Atom 订阅
func (c *FeedController) Feed(ctx *gin.Context) {
	doc, err := c.feed.AtomXML()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.Data(http.StatusOK, "application/xml; charset=utf-8", []byte(doc))
}
