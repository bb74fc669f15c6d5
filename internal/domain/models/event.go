package models

// Event 公开活动安排，event_date 保存 "YYYY-MM-DD HH:MM" 文本便于排序展示
type Event struct {
	BaseModel
	Title     string `gorm:"type:varchar(200);not null" json:"title"`
	Venue     string `gorm:"type:varchar(200);not null" json:"venue"`
	EventDate string `gorm:"type:varchar(30);not null" json:"event_date"`
	Agenda    string `gorm:"type:text;not null" json:"agenda"`
}
