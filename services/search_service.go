package services

import (
	"strings"

	"blogapp/models"

	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"
)

// SearchService 站内关键词搜索
type SearchService struct {
	db     *gorm.DB
	policy *bluemonday.Policy
}

func NewSearchService(db *gorm.DB) *SearchService {
	return &SearchService{db: db, policy: bluemonday.StrictPolicy()}
}

// Clean 剥掉查询词里的标签和脚本
func (s *SearchService) Clean(raw string) string {
	return strings.TrimSpace(s.policy.Sanitize(raw))
}

// MatchIDs 按空白切词，对标题、关键词、描述、正文做叠加 LIKE 匹配
func (s *SearchService) MatchIDs(query string) ([]uint, error) {
	words := strings.Fields(query)
	if len(words) == 0 {
		return nil, nil
	}

	q := s.db.Model(&models.Article{})
	for _, w := range words {
		like := "%" + w + "%"
		q = q.Where("title LIKE ? OR keywords LIKE ? OR description LIKE ? OR markdown LIKE ?",
			like, like, like, like)
	}

	var ids []uint
	if err := q.Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

// Search 清洗查询词后取匹配 id 集，再走统一的分页文章列表。
// 清洗后为空串时退化为不过滤的全量列表。
func (s *SearchService) Search(query string, page int) (*ArticleList, error) {
	wd := s.Clean(query)
	if wd == "" {
		return listArticles(s.db, page, nil)
	}

	ids, err := s.MatchIDs(wd)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		if page < 1 {
			page = 1
		}
		return &ArticleList{Items: []models.Article{}, Pagination: newPagination(page, 0)}, nil
	}

	return listArticles(s.db, page, func(q *gorm.DB) *gorm.DB {
		return q.Where("articles.id IN ?", ids)
	})
}
