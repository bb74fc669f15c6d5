package models

// ContactMessage 居民直接发来的消息，只创建，不修改
type ContactMessage struct {
	BaseModel
	FullName string `gorm:"type:varchar(100);not null" json:"full_name"`
	Phone    string `gorm:"type:varchar(30)" json:"phone"`
	Topic    string `gorm:"type:varchar(200);not null" json:"topic"`
	Message  string `gorm:"type:text;not null" json:"message"`
}
