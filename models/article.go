package models

import "time"

// Article 博客文章
type Article struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CategoryID  uint      `gorm:"index" json:"category_id"`
	Category    Category  `json:"category"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Author      string    `gorm:"size:64" json:"author"`
	Keywords    string    `gorm:"size:255" json:"keywords"`
	Description string    `gorm:"size:255" json:"description"`
	Cover       string    `gorm:"size:255" json:"cover"`
	Markdown    string    `gorm:"type:longtext" json:"markdown,omitempty"`
	HTML        string    `gorm:"column:html;type:longtext" json:"html,omitempty"`
	Click       int       `gorm:"default:0" json:"click"`
	Tags        []Tag     `gorm:"many2many:article_tags" json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
