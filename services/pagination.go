package services

import (
	"blogapp/models"

	"gorm.io/gorm"
)

// PageSize 列表统一每页 10 条
const PageSize = 10

type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

type ArticleList struct {
	Items      []models.Article `json:"items"`
	Pagination Pagination       `json:"pagination"`
}

func newPagination(page int, total int64) Pagination {
	pages := int((total + PageSize - 1) / PageSize)
	return Pagination{Page: page, PageSize: PageSize, Total: total, TotalPages: pages}
}

// listArticles 按 created_at 倒序分页查询文章列表字段，scope 追加过滤条件
func listArticles(db *gorm.DB, page int, scope func(*gorm.DB) *gorm.DB) (*ArticleList, error) {
	if page < 1 {
		page = 1
	}

	base := func() *gorm.DB {
		q := db.Model(&models.Article{})
		if scope != nil {
			q = scope(q)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, err
	}

	var items []models.Article
	err := base().
		Select("articles.id", "articles.category_id", "articles.title", "articles.author",
			"articles.description", "articles.cover", "articles.created_at").
		Preload("Category").
		Preload("Tags").
		Order("articles.created_at DESC").
		Limit(PageSize).
		Offset((page - 1) * PageSize).
		Find(&items).Error
	if err != nil {
		return nil, err
	}

	return &ArticleList{Items: items, Pagination: newPagination(page, total)}, nil
}
