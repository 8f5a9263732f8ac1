package services

import (
	"blogapp/models"

	"gorm.io/gorm"
)

// ChatService 随言碎语，平铺倒序列表
type ChatService struct {
	db *gorm.DB
}

func NewChatService(db *gorm.DB) *ChatService {
	return &ChatService{db: db}
}

func (s *ChatService) List() ([]models.Chat, error) {
	var chats []models.Chat
	err := s.db.Order("created_at DESC").Find(&chats).Error
	return chats, err
}
