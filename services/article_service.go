package services

import (
	"blogapp/models"

	"gorm.io/gorm"
)

// ArticleService 文章查询
type ArticleService struct {
	db *gorm.DB
}

func NewArticleService(db *gorm.DB) *ArticleService {
	return &ArticleService{db: db}
}

// List 首页文章列表
func (s *ArticleService) List(page int) (*ArticleList, error) {
	return listArticles(s.db, page, nil)
}

// Get 文章详情，带分类和标签
func (s *ArticleService) Get(id uint) (*models.Article, error) {
	var article models.Article
	err := s.db.Preload("Category").Preload("Tags").First(&article, id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

type ArticleRef struct {
	ID    uint   `json:"id"`
	Title string `json:"title"`
}

// Neighbors 上一篇、下一篇；不存在时对应项为 nil
func (s *ArticleService) Neighbors(id uint) (prev, next *ArticleRef, err error) {
	var p models.Article
	e := s.db.Select("id", "title").
		Where("id > ?", id).
		Order("created_at ASC").
		First(&p).Error
	if e == nil {
		prev = &ArticleRef{ID: p.ID, Title: p.Title}
	} else if e != gorm.ErrRecordNotFound {
		return nil, nil, e
	}

	var n models.Article
	e = s.db.Select("id", "title").
		Where("id < ?", id).
		Order("created_at DESC").
		First(&n).Error
	if e == nil {
		next = &ArticleRef{ID: n.ID, Title: n.Title}
	} else if e != gorm.ErrRecordNotFound {
		return nil, nil, e
	}

	return prev, next, nil
}

// ListByCategory 分类下的文章；分类本身只查一次，手动盖回每条文章，
// 保持和首页列表一致的渲染结构
func (s *ArticleService) ListByCategory(categoryID uint, page int) (*models.Category, *ArticleList, error) {
	var category models.Category
	err := s.db.Select("id", "name", "keywords", "description").
		First(&category, categoryID).Error
	if err != nil {
		return nil, nil, err
	}

	list, err := listArticles(s.db, page, func(q *gorm.DB) *gorm.DB {
		return q.Where("articles.category_id = ?", categoryID)
	})
	if err != nil {
		return nil, nil, err
	}

	for i := range list.Items {
		list.Items[i].Category = category
	}

	return &category, list, nil
}

// ListByTag 标签下的文章
func (s *ArticleService) ListByTag(tagID uint, page int) (*models.Tag, *ArticleList, error) {
	var tag models.Tag
	if err := s.db.Select("id", "name").First(&tag, tagID).Error; err != nil {
		return nil, nil, err
	}

	list, err := listArticles(s.db, page, func(q *gorm.DB) *gorm.DB {
		return q.Joins("JOIN article_tags ON article_tags.article_id = articles.id").
			Where("article_tags.tag_id = ?", tagID)
	})
	if err != nil {
		return nil, nil, err
	}

	return &tag, list, nil
}
