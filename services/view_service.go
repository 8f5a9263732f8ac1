package services

import (
	"log"
	"strconv"

	"blogapp/models"
	"blogapp/pkg/cache"

	"github.com/go-redis/redis"
	"gorm.io/gorm"
)

const (
	viewDedupPrefix     = "articleRequestList"
	viewDedupTTLMinutes = 1440 // 同一 ip 对同一文章每天只计一次
	clickRankKey        = "rank:article:clicks"
)

// ViewService 文章访问量去重计数
type ViewService struct {
	db    *gorm.DB
	cache cache.Cache
	redis *redis.Client // 可选，点击排行用
}

func NewViewService(db *gorm.DB, c cache.Cache, redisClient *redis.Client) *ViewService {
	return &ViewService{db: db, cache: c, redis: redisClient}
}

func dedupKey(articleID uint, ip string) string {
	return viewDedupPrefix + ip + ":" + strconv.FormatUint(uint64(articleID), 10)
}

// RecordView 以 ip+文章 id 作 key 去重；窗口内首次访问 click+1 并返回 true。
// 缓存不可用时按未访问处理（fail open），宁可多计一次也不丢计数。
func (s *ViewService) RecordView(articleID uint, ip string) (bool, error) {
	key := dedupKey(articleID, ip)

	seen, err := s.cache.Has(key)
	if err != nil {
		log.Println("view dedup cache unavailable, counting view:", err)
		seen = false
	}
	if seen {
		return false, nil
	}

	if err := s.cache.Set(key, "", viewDedupTTLMinutes); err != nil {
		log.Println("view dedup cache write failed:", err)
	}

	result := s.db.Model(&models.Article{}).
		Where("id = ?", articleID).
		UpdateColumn("click", gorm.Expr("click + ?", 1))
	if result.Error != nil {
		return false, result.Error
	}
	if result.RowsAffected == 0 {
		return false, gorm.ErrRecordNotFound
	}

	if s.redis != nil {
		idStr := strconv.FormatUint(uint64(articleID), 10)
		if err := s.redis.ZIncrBy(clickRankKey, 1, idStr).Err(); err != nil {
			log.Println("click rank update failed:", err)
		}
	}

	return true, nil
}

type RankedArticle struct {
	ID    uint   `json:"id"`
	Title string `json:"title,omitempty"`
	Click int64  `json:"click"`
	Rank  int    `json:"rank"`
}

// TopArticles 从 Redis ZSET 取点击排行，标题从库里补齐（查不到就留空）
func (s *ViewService) TopArticles(top int) ([]RankedArticle, error) {
	if s.redis == nil {
		return []RankedArticle{}, nil
	}
	if top <= 0 {
		top = 10
	}

	zres, err := s.redis.ZRevRangeWithScores(clickRankKey, 0, int64(top-1)).Result()
	if err == redis.Nil {
		return []RankedArticle{}, nil
	}
	if err != nil {
		return nil, err
	}

	list := make([]RankedArticle, 0, len(zres))
	for idx, z := range zres {
		member, _ := z.Member.(string)
		id, _ := strconv.ParseUint(member, 10, 64)
		item := RankedArticle{ID: uint(id), Click: int64(z.Score), Rank: idx + 1}
		var art models.Article
		if err := s.db.Select("id", "title").First(&art, uint(id)).Error; err == nil {
			item.Title = art.Title
		}
		list = append(list, item)
	}
	return list, nil
}
