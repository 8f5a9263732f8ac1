package models

import "time"

// Comment 文章评论；PID 为空表示顶级评论
type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ArticleID uint      `gorm:"not null;index" json:"article_id"`
	PID       *uint     `gorm:"column:pid;index" json:"pid"`
	UserID    uint      `gorm:"index" json:"user_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CommentNode 按 pid 组装出的评论树节点
type CommentNode struct {
	Comment
	Children []*CommentNode `json:"children"`
}
