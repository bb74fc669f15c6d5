package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"civicdesk-http-service/internal/domain/models"
	"civicdesk-http-service/internal/infrastructure/config"
	"civicdesk-http-service/utils"

	"gorm.io/gorm"
)

const (
	// referencePrefix 追踪编号的品牌前缀
	referencePrefix = "MGD-2027"
	// referenceAttempts 编号冲突时的最大重试次数
	referenceAttempts = 5
)

var (
	ErrIssueValidation    = errors.New("area, category, and message are required")
	ErrInvalidCategory    = errors.New("unknown issue category")
	ErrInvalidUrgency     = errors.New("unknown urgency level")
	ErrInvalidStatus      = errors.New("unknown issue status")
	ErrIssueNotFound      = errors.New("issue not found")
	ErrReferenceExhausted = errors.New("could not allocate a unique reference")
)

// SubmitIssueRequest 居民提交问题的输入
type SubmitIssueRequest struct {
	FullName string
	Phone    string
	Area     string
	Category string
	Urgency  string
	Message  string
}

// InterfaceIssueService 问题服务接口
type InterfaceIssueService interface {
	SubmitIssue(req *SubmitIssueRequest) (*models.Issue, error)
	TrackIssue(reference string) (*models.Issue, error)
	UpdateIssueStatus(id uint, status models.IssueStatus) (*models.Issue, error)
	GetRecentIssues(limit int) ([]models.Issue, error)
}

// IssueService 负责问题的生命周期：创建、编号分配、状态流转与追踪查询
type IssueService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewIssueService 创建一个新的问题服务
func NewIssueService(db *gorm.DB, cfg *config.Config) InterfaceIssueService {
	return &IssueService{
		DB:     db,
		Config: cfg,
	}
}

// 1 SubmitIssue 受理居民提交的问题并分配追踪编号
func (s *IssueService) SubmitIssue(req *SubmitIssueRequest) (*models.Issue, error) {
	area := strings.TrimSpace(req.Area)
	category := models.IssueCategory(strings.TrimSpace(req.Category))
	message := strings.TrimSpace(req.Message)

	// 所有校验先于任何写入
	if area == "" || category == "" || message == "" {
		return nil, ErrIssueValidation
	}
	if !models.ValidIssueCategory(category) {
		return nil, ErrInvalidCategory
	}

	urgency := models.IssueUrgency(strings.TrimSpace(req.Urgency))
	if urgency == "" {
		urgency = models.UrgencyNormal
	}
	if !models.ValidIssueUrgency(urgency) {
		return nil, ErrInvalidUrgency
	}

	// 唯一索引是编号去重的最终仲裁，冲突时重新生成并重试
	for attempt := 0; attempt < referenceAttempts; attempt++ {
		issue := &models.Issue{
			Reference: newReference(),
			FullName:  strings.TrimSpace(req.FullName),
			Phone:     strings.TrimSpace(req.Phone),
			Area:      area,
			Category:  category,
			Urgency:   urgency,
			Message:   message,
			Status:    models.StatusReceived,
		}

		err := s.DB.Create(issue).Error
		if err == nil {
			return issue, nil
		}
		if !isDuplicateKey(err) {
			return nil, err
		}
	}

	return nil, ErrReferenceExhausted
}

// 2 TrackIssue 根据追踪编号查询问题
func (s *IssueService) TrackIssue(reference string) (*models.Issue, error) {
	var issue models.Issue
	if err := s.DB.Where("reference = ?", strings.TrimSpace(reference)).First(&issue).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIssueNotFound
		}
		return nil, err
	}
	return &issue, nil
}

// 3 UpdateIssueStatus 更新问题处理状态并刷新 updated_at
func (s *IssueService) UpdateIssueStatus(id uint, status models.IssueStatus) (*models.Issue, error) {
	if !models.ValidIssueStatus(status) {
		return nil, ErrInvalidStatus
	}

	result := s.DB.Model(&models.Issue{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return nil, result.Error
	}
	// 零行受影响说明目标不存在
	if result.RowsAffected == 0 {
		return nil, ErrIssueNotFound
	}

	var issue models.Issue
	if err := s.DB.First(&issue, id).Error; err != nil {
		return nil, err
	}
	return &issue, nil
}

// 4 GetRecentIssues 获取最近提交的问题，供管理面板展示
func (s *IssueService) GetRecentIssues(limit int) ([]models.Issue, error) {
	if limit <= 0 {
		limit = 200
	}
	var issues []models.Issue
	if err := s.DB.Order("created_at DESC").Limit(limit).Find(&issues).Error; err != nil {
		return nil, err
	}
	return issues, nil
}

// newReference 生成带品牌前缀的追踪编号: 前缀 + UTC秒级时间戳 + 随机十六进制后缀
func newReference() string {
	return fmt.Sprintf("%s-%s-%s",
		referencePrefix,
		time.Now().UTC().Format("060102150405"),
		utils.RandomHex(2),
	)
}

// isDuplicateKey 识别唯一约束冲突
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
