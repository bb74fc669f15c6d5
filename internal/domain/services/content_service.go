package services

import (
	"errors"
	"strings"

	"civicdesk-http-service/internal/domain/models"
	"civicdesk-http-service/internal/infrastructure/config"

	"gorm.io/gorm"
)

var (
	ErrUpdateValidation    = errors.New("title, category, and body are required")
	ErrInvalidUpdateStatus = errors.New("unknown update status")
	ErrEventValidation     = errors.New("title, venue, date, and agenda are required")
)

// PublishUpdateRequest 发布官方更新的输入
type PublishUpdateRequest struct {
	Title    string
	Category string
	Location string
	Status   string
	Body     string
}

// CreateEventRequest 创建活动的输入
type CreateEventRequest struct {
	Title     string
	Venue     string
	EventDate string
	Agenda    string
}

// InterfaceContentService 官方内容服务接口
type InterfaceContentService interface {
	GetLatestUpdates(limit int) ([]models.Update, error)
	GetUpcomingEvents(limit int) ([]models.Event, error)
	PublishUpdate(req *PublishUpdateRequest) (*models.Update, error)
	CreateEvent(req *CreateEventRequest) (*models.Event, error)
	SeedStarterContent() error
}

// ContentService 负责官方更新与活动的发布和读取
type ContentService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewContentService 创建一个新的内容服务
func NewContentService(db *gorm.DB, cfg *config.Config) InterfaceContentService {
	return &ContentService{
		DB:     db,
		Config: cfg,
	}
}

// 1 GetLatestUpdates 按发布时间倒序获取官方更新
func (s *ContentService) GetLatestUpdates(limit int) ([]models.Update, error) {
	if limit <= 0 {
		limit = 100
	}
	var updates []models.Update
	if err := s.DB.Order("created_at DESC").Limit(limit).Find(&updates).Error; err != nil {
		return nil, err
	}
	return updates, nil
}

// 2 GetUpcomingEvents 按活动时间升序获取活动
func (s *ContentService) GetUpcomingEvents(limit int) ([]models.Event, error) {
	query := s.DB.Order("event_date ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	var events []models.Event
	if err := query.Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// 3 PublishUpdate 发布一条官方更新
func (s *ContentService) PublishUpdate(req *PublishUpdateRequest) (*models.Update, error) {
	title := strings.TrimSpace(req.Title)
	category := strings.TrimSpace(req.Category)
	body := strings.TrimSpace(req.Body)
	if title == "" || category == "" || body == "" {
		return nil, ErrUpdateValidation
	}

	status := models.UpdateStatus(strings.TrimSpace(req.Status))
	if status == "" {
		status = models.UpdateOngoing
	}
	if !models.ValidUpdateStatus(status) {
		return nil, ErrInvalidUpdateStatus
	}

	update := &models.Update{
		Title:    title,
		Category: category,
		Location: strings.TrimSpace(req.Location),
		Status:   status,
		Body:     body,
	}
	if err := s.DB.Create(update).Error; err != nil {
		return nil, err
	}
	return update, nil
}

// 4 CreateEvent 创建一场公开活动
func (s *ContentService) CreateEvent(req *CreateEventRequest) (*models.Event, error) {
	title := strings.TrimSpace(req.Title)
	venue := strings.TrimSpace(req.Venue)
	eventDate := strings.TrimSpace(req.EventDate)
	agenda := strings.TrimSpace(req.Agenda)
	if title == "" || venue == "" || eventDate == "" || agenda == "" {
		return nil, ErrEventValidation
	}

	event := &models.Event{
		Title:     title,
		Venue:     venue,
		EventDate: eventDate,
		Agenda:    agenda,
	}
	if err := s.DB.Create(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

// 5 SeedStarterContent 仅在空表时写入初始内容，可在每次启动时安全执行
func (s *ContentService) SeedStarterContent() error {
	var updateCount int64
	if err := s.DB.Model(&models.Update{}).Count(&updateCount).Error; err != nil {
		return err
	}
	if updateCount == 0 {
		starter := []models.Update{
			{
				Title:    "Official Launch of Abraham Senteu Digital Platform",
				Category: "Official Statement",
				Location: "Magadi Ward",
				Status:   models.UpdateCompleted,
				Body:     "This website is now the official platform for updates, public engagement, issue reporting, and campaign accountability.",
			},
			{
				Title:    "Water Access Mapping Underway",
				Category: "Development Update",
				Location: "Shompole, Olkiramatian, Nguruman",
				Status:   models.UpdateOngoing,
				Body:     "Community mapping has started to identify non-functional water points and prioritize interventions.",
			},
			{
				Title:    "Ward Listening Forums Calendar Published",
				Category: "Event Announcement",
				Location: "All Magadi Zones",
				Status:   models.UpdatePlanned,
				Body:     "A structured listening forum calendar has been published for residents to raise local priorities.",
			},
		}
		if err := s.DB.Create(&starter).Error; err != nil {
			return err
		}
	}

	var eventCount int64
	if err := s.DB.Model(&models.Event{}).Count(&eventCount).Error; err != nil {
		return err
	}
	if eventCount == 0 {
		starter := []models.Event{
			{
				Title:     "Community Listening Forum",
				Venue:     "Magadi Social Hall",
				EventDate: "2026-03-15 10:00",
				Agenda:    "Water, roads, and youth opportunities",
			},
			{
				Title:     "Women Leadership Dialogue",
				Venue:     "Oloika Primary Grounds",
				EventDate: "2026-03-22 11:00",
				Agenda:    "Women empowerment, safety, and enterprise",
			},
			{
				Title:     "Youth Skills Baraza",
				Venue:     "Nguruman Market Centre",
				EventDate: "2026-03-29 09:30",
				Agenda:    "Skills, jobs, and micro-enterprise roadmap",
			},
		}
		if err := s.DB.Create(&starter).Error; err != nil {
			return err
		}
	}

	return nil
}
