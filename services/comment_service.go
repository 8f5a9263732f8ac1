package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/mail"
	"sort"

	"blogapp/models"
	"blogapp/pkg/cache"
	"blogapp/pkg/session"

	amqp "github.com/rabbitmq/amqp091-go"
	"gorm.io/gorm"
)

const newCommentCacheKey = "common:newComment"

var (
	ErrContentRequired = errors.New("comment content is required")
	ErrArticleRequired = errors.New("article id is required")
	ErrParentMismatch  = errors.New("parent comment belongs to a different article")
)

type CommentInput struct {
	Content   string `json:"content" binding:"required"`
	ArticleID uint   `json:"article_id" binding:"required"`
	PID       *uint  `json:"pid"`
	Email     string `json:"email"`
}

// CommentService 评论存储与树状读取
type CommentService struct {
	db       *gorm.DB
	cache    cache.Cache
	sessions session.Store
	mq       *amqp.Channel // 可选，新评论事件
	queue    string
}

func NewCommentService(db *gorm.DB, c cache.Cache, sessions session.Store, mq *amqp.Channel, queue string) *CommentService {
	return &CommentService{db: db, cache: c, sessions: sessions, mq: mq, queue: queue}
}

// Store 保存评论。父评论必须属于同一篇文章；填了合法邮箱则回写到
// oauth_users 并同步进会话，非法邮箱直接忽略不报错。
func (s *CommentService) Store(input CommentInput, userID uint) (uint, error) {
	if input.Content == "" {
		return 0, ErrContentRequired
	}
	if input.ArticleID == 0 {
		return 0, ErrArticleRequired
	}

	var article models.Article
	if err := s.db.Select("id").First(&article, input.ArticleID).Error; err != nil {
		return 0, err
	}

	if input.PID != nil {
		var parent models.Comment
		if err := s.db.First(&parent, *input.PID).Error; err != nil {
			return 0, err
		}
		if parent.ArticleID != input.ArticleID {
			return 0, ErrParentMismatch
		}
	}

	if userID != 0 && input.Email != "" {
		if _, err := mail.ParseAddress(input.Email); err == nil {
			err := s.db.Model(&models.OauthUser{}).
				Where("id = ?", userID).
				Update("email", input.Email).Error
			if err != nil {
				return 0, err
			}
			if err := s.sessions.Set(userID, "email", input.Email); err != nil {
				log.Println("session email update failed:", err)
			}
		}
	}

	comment := models.Comment{
		ArticleID: input.ArticleID,
		PID:       input.PID,
		UserID:    userID,
		Content:   input.Content,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return 0, err
	}

	if err := s.cache.Forget(newCommentCacheKey); err != nil {
		log.Println("new comment cache invalidation failed:", err)
	}

	s.publishNewComment(comment)

	return comment.ID, nil
}

func (s *CommentService) publishNewComment(comment models.Comment) {
	if s.mq == nil {
		return
	}
	body, err := json.Marshal(map[string]uint{"id": comment.ID, "article_id": comment.ArticleID})
	if err != nil {
		return
	}
	err = s.mq.PublishWithContext(context.Background(), "", s.queue, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		log.Println("comment event publish failed:", err)
	}
}

// GetThread 取文章全部评论并按 pid 还原层级；同级按 created_at、id 升序。
// pid 指向的父评论不在结果集时该评论按顶级处理，避免静默丢失。
func (s *CommentService) GetThread(articleID uint) ([]*models.CommentNode, error) {
	var comments []models.Comment
	err := s.db.
		Where("article_id = ?", articleID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}

	nodes := make(map[uint]*models.CommentNode, len(comments))
	for i := range comments {
		nodes[comments[i].ID] = &models.CommentNode{Comment: comments[i], Children: []*models.CommentNode{}}
	}

	roots := make([]*models.CommentNode, 0)
	for i := range comments {
		node := nodes[comments[i].ID]
		if pid := comments[i].PID; pid != nil {
			if parent, ok := nodes[*pid]; ok {
				parent.Children = append(parent.Children, node)
				continue
			}
		}
		roots = append(roots, node)
	}

	sortThread(roots)
	return roots, nil
}

func sortThread(nodes []*models.CommentNode) {
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].CreatedAt.Equal(nodes[j].CreatedAt) {
			return nodes[i].ID < nodes[j].ID
		}
		return nodes[i].CreatedAt.Before(nodes[j].CreatedAt)
	})
	for _, n := range nodes {
		sortThread(n.Children)
	}
}
