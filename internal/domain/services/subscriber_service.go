package services

import (
	"errors"
	"strings"

	"civicdesk-http-service/internal/domain/models"
	"civicdesk-http-service/internal/infrastructure/config"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrInvalidEmail      = errors.New("a valid email address is required")
	ErrContactValidation = errors.New("name, topic, and message are required")
)

// ContactMessageRequest 居民直接留言的输入
type ContactMessageRequest struct {
	FullName string
	Phone    string
	Topic    string
	Message  string
}

// InterfaceSubscriberService 订阅与留言服务接口
type InterfaceSubscriberService interface {
	Subscribe(email string) (*models.Subscriber, error)
	SaveContactMessage(req *ContactMessageRequest) (*models.ContactMessage, error)
	GetRecentMessages(limit int) ([]models.ContactMessage, error)
}

// SubscriberService 负责邮箱订阅与居民留言
type SubscriberService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewSubscriberService 创建一个新的订阅服务
func NewSubscriberService(db *gorm.DB, cfg *config.Config) InterfaceSubscriberService {
	return &SubscriberService{
		DB:     db,
		Config: cfg,
	}
}

// 1 Subscribe 登记订阅邮箱，重复订阅静默成功（insert-or-ignore）
func (s *SubscriberService) Subscribe(email string) (*models.Subscriber, error) {
	email = strings.TrimSpace(email)
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}

	sub := &models.Subscriber{
		Email:            email,
		UnsubscribeToken: uuid.NewString(),
	}
	if err := s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(sub).Error; err != nil {
		return nil, err
	}

	// 冲突被忽略时回读已存在的记录，对调用方保持同样的成功语义
	if sub.ID == 0 {
		var existing models.Subscriber
		if err := s.DB.Where("email = ?", email).First(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}
	return sub, nil
}

// 2 SaveContactMessage 保存居民直接留言
func (s *SubscriberService) SaveContactMessage(req *ContactMessageRequest) (*models.ContactMessage, error) {
	fullName := strings.TrimSpace(req.FullName)
	topic := strings.TrimSpace(req.Topic)
	message := strings.TrimSpace(req.Message)
	if fullName == "" || topic == "" || message == "" {
		return nil, ErrContactValidation
	}

	msg := &models.ContactMessage{
		FullName: fullName,
		Phone:    strings.TrimSpace(req.Phone),
		Topic:    topic,
		Message:  message,
	}
	if err := s.DB.Create(msg).Error; err != nil {
		return nil, err
	}
	return msg, nil
}

// 3 GetRecentMessages 获取最近的留言，供管理面板展示
func (s *SubscriberService) GetRecentMessages(limit int) ([]models.ContactMessage, error) {
	if limit <= 0 {
		limit = 100
	}
	var messages []models.ContactMessage
	if err := s.DB.Order("created_at DESC").Limit(limit).Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
