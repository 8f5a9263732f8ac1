package router

import (
	"blogapp/config"
	"blogapp/controllers"
	"blogapp/global"
	"blogapp/middlewares"
	"blogapp/pkg/cache"
	"blogapp/pkg/session"
	"blogapp/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	cfg := config.AppConfig

	var store cache.Cache
	var sessions session.Store
	if global.RedisDB != nil {
		store = cache.NewRedisCache(global.RedisDB)
		sessions = session.NewRedisStore(global.RedisDB)
	} else {
		store = cache.NewMemoryCache()
		sessions = session.NewMemoryStore()
	}

	articleService := services.NewArticleService(global.Db)
	viewService := services.NewViewService(global.Db, store, global.RedisDB)
	commentService := services.NewCommentService(global.Db, store, sessions, global.RabbitChannel, cfg.RabbitMQ.Queue)
	searchService := services.NewSearchService(global.Db)
	chatService := services.NewChatService(global.Db)
	feedService := services.NewFeedService(global.Db, store, services.SiteMeta{
		Title:       cfg.Site.Title,
		Description: cfg.Site.Description,
		Logo:        cfg.Site.Logo,
		Url:         cfg.Site.Url,
		Lang:        cfg.Site.Lang,
	})

	articleController := controllers.NewArticleController(articleService, viewService, commentService)
	commentController := controllers.NewCommentController(commentService)
	searchController := controllers.NewSearchController(searchService)
	feedController := controllers.NewFeedController(feedService)
	chatController := controllers.NewChatController(chatService)

	r := gin.Default()
	r.Use(cors.Default())
	r.Use(middlewares.Session(cfg.Jwt.Secret))

	r.GET("/", articleController.Index)
	r.GET("/article/:id", articleController.Show)
	r.GET("/article/:id/comments", commentController.Thread)
	r.GET("/category/:id", articleController.Category)
	r.GET("/tag/:id", articleController.Tag)
	r.GET("/top", articleController.Top)
	r.GET("/chat", chatController.List)
	r.GET("/search", middlewares.BotGuard(), searchController.Search)
	r.GET("/feed", feedController.Feed)
	r.GET("/checklogin", commentController.CheckLogin)
	r.POST("/comment", commentController.Store)

	return r
}
