package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jobquestapp/jobquest-backend/internal/models"
)

// ChatService is the gorm-backed ChatStore.
type ChatService struct {
	db *gorm.DB
}

func NewChatService(db *gorm.DB) *ChatService {
	return &ChatService{db: db}
}

func (s *ChatService) SaveMessage(ctx context.Context, msg *models.ChatMessage) error {
	if err := s.db.WithContext(ctx).Create(msg).Error; err != nil {
		return fmt.Errorf("insert chat message: %w", err)
	}
	return nil
}
