package models

import "time"

// OauthUser 第三方登录用户；评论时填写的邮箱会回写到这里
type OauthUser struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:64" json:"name"`
	Avatar    string    `gorm:"size:255" json:"avatar"`
	Email     *string   `gorm:"size:128" json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
