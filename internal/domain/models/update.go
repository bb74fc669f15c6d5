package models

// UpdateStatus 官方更新进展枚举
type UpdateStatus string

const (
	UpdatePlanned   UpdateStatus = "Planned"
	UpdateOngoing   UpdateStatus = "Ongoing"
	UpdateCompleted UpdateStatus = "Completed"
)

var validUpdateStatuses = map[UpdateStatus]bool{
	UpdatePlanned:   true,
	UpdateOngoing:   true,
	UpdateCompleted: true,
}

// ValidUpdateStatus 检查更新进展是否属于固定枚举
func ValidUpdateStatus(s UpdateStatus) bool { return validUpdateStatuses[s] }

// Update 管理员发布的官方更新，只创建和读取
type Update struct {
	BaseModel
	Title    string       `gorm:"type:varchar(200);not null" json:"title"`
	Category string       `gorm:"type:varchar(100);not null" json:"category"`
	Location string       `gorm:"type:varchar(200)" json:"location"`
	Status   UpdateStatus `gorm:"type:varchar(20);default:'Ongoing'" json:"status"`
	Body     string       `gorm:"type:text;not null" json:"body"`
}
