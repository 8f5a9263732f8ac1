package models

import "time"

// Category 文章分类
type Category struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:64;not null" json:"name"`
	Keywords    string    `gorm:"size:255" json:"keywords"`
	Description string    `gorm:"size:255" json:"description"`
	Articles    []Article `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
