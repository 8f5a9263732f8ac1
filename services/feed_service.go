package services

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"time"

	"blogapp/models"
	"blogapp/pkg/cache"

	"github.com/gorilla/feeds"
	"gorm.io/gorm"
)

const (
	feedCacheKey        = "feed:article"
	feedCacheTTLMinutes = 10080 // 缓存一周
)

// SiteMeta 订阅源的固定站点信息
type SiteMeta struct {
	Title       string
	Description string
	Logo        string
	Url         string
	Lang        string
}

// FeedService 生成 Atom 订阅
type FeedService struct {
	db    *gorm.DB
	cache cache.Cache
	site  SiteMeta
}

func NewFeedService(db *gorm.DB, c cache.Cache, site SiteMeta) *FeedService {
	return &FeedService{db: db, cache: c, site: site}
}

type feedArticle struct {
	ID          uint      `json:"id"`
	Author      string    `json:"author"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	HTML        string    `json:"html"`
	CreatedAt   time.Time `json:"created_at"`
}

func (s *FeedService) cachedArticles() ([]feedArticle, error) {
	payload, err := s.cache.Remember(feedCacheKey, feedCacheTTLMinutes, func() (string, error) {
		var articles []feedArticle
		err := s.db.Model(&models.Article{}).
			Select("id", "author", "title", "description", "html", "created_at").
			Order("created_at DESC").
			Find(&articles).Error
		if err != nil {
			return "", err
		}
		data, err := json.Marshal(articles)
		return string(data), err
	})
	if err != nil {
		return nil, err
	}

	var articles []feedArticle
	if err := json.Unmarshal([]byte(payload), &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// BuildFeed 组装订阅文档；没有文章时发布时间退化为当前时间
func (s *FeedService) BuildFeed() (*feeds.Feed, error) {
	articles, err := s.cachedArticles()
	if err != nil {
		return nil, err
	}

	pubdate := time.Now()
	if len(articles) > 0 {
		pubdate = articles[0].CreatedAt
	}

	feed := &feeds.Feed{
		Title:       s.site.Title,
		Description: s.site.Description,
		Link:        &feeds.Link{Href: s.site.Url + "/feed"},
		Image:       &feeds.Image{Url: s.site.Logo},
		Updated:     pubdate,
	}

	for _, a := range articles {
		link := fmt.Sprintf("%s/article/%d", s.site.Url, a.ID)
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          link,
			Title:       a.Title,
			Author:      &feeds.Author{Name: a.Author},
			Link:        &feeds.Link{Href: link},
			Description: a.Description,
			Created:     a.CreatedAt,
		})
	}

	return feed, nil
}

// atomDoc 给 gorilla 生成的 atom 文档补上 xml:lang
type atomDoc struct {
	*feeds.AtomFeed
	Lang string `xml:"xml:lang,attr"`
}

// AtomXML 渲染成 Atom XML 文本
func (s *FeedService) AtomXML() (string, error) {
	feed, err := s.BuildFeed()
	if err != nil {
		return "", err
	}

	atomFeed := (&feeds.Atom{Feed: feed}).AtomFeed()
	atomFeed.Logo = s.site.Logo

	data, err := xml.MarshalIndent(atomDoc{AtomFeed: atomFeed, Lang: s.site.Lang}, "", "  ")
	if err != nil {
		return "", err
	}
	return xml.Header + string(data), nil
}
