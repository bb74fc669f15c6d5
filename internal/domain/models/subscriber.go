package models

// Subscriber 订阅官方更新的邮箱，email 全局唯一
type Subscriber struct {
	BaseModel
	Email            string `gorm:"type:varchar(200);uniqueIndex;not null" json:"email"`
	UnsubscribeToken string `gorm:"type:varchar(36);not null" json:"-"` // Token not exposed in JSON
}
