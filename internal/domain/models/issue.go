package models

// IssueCategory 问题类别枚举
type IssueCategory string

const (
	CategoryWater       IssueCategory = "Water"
	CategoryRoads       IssueCategory = "Roads/Transport"
	CategoryHealth      IssueCategory = "Health"
	CategoryEducation   IssueCategory = "Education"
	CategorySecurity    IssueCategory = "Security"
	CategoryYouthWomen  IssueCategory = "Youth/Women Opportunities"
	CategoryEnvironment IssueCategory = "Environment"
	CategoryOther       IssueCategory = "Other"
)

// IssueUrgency 紧急程度枚举
type IssueUrgency string

const (
	UrgencyNormal   IssueUrgency = "Normal"
	UrgencyHigh     IssueUrgency = "High"
	UrgencyCritical IssueUrgency = "Critical"
)

// IssueStatus 处理状态枚举
type IssueStatus string

const (
	StatusReceived     IssueStatus = "Received"
	StatusAcknowledged IssueStatus = "Acknowledged"
	StatusInProgress   IssueStatus = "In Progress"
	StatusResolved     IssueStatus = "Resolved"
)

var validCategories = map[IssueCategory]bool{
	CategoryWater:       true,
	CategoryRoads:       true,
	CategoryHealth:      true,
	CategoryEducation:   true,
	CategorySecurity:    true,
	CategoryYouthWomen:  true,
	CategoryEnvironment: true,
	CategoryOther:       true,
}

var validUrgencies = map[IssueUrgency]bool{
	UrgencyNormal:   true,
	UrgencyHigh:     true,
	UrgencyCritical: true,
}

var validStatuses = map[IssueStatus]bool{
	StatusReceived:     true,
	StatusAcknowledged: true,
	StatusInProgress:   true,
	StatusResolved:     true,
}

// ValidIssueCategory 检查类别是否属于固定枚举
func ValidIssueCategory(c IssueCategory) bool { return validCategories[c] }

// ValidIssueUrgency 检查紧急程度是否属于固定枚举
func ValidIssueUrgency(u IssueUrgency) bool { return validUrgencies[u] }

// ValidIssueStatus 检查处理状态是否属于固定枚举
func ValidIssueStatus(s IssueStatus) bool { return validStatuses[s] }

// Issue 居民提交的社区问题，reference 在创建时分配且永不变更
type Issue struct {
	BaseModel
	Reference string        `gorm:"type:varchar(32);uniqueIndex;not null" json:"reference"`
	FullName  string        `gorm:"type:varchar(100)" json:"full_name"`
	Phone     string        `gorm:"type:varchar(30)" json:"phone"`
	Area      string        `gorm:"type:varchar(100);not null" json:"area"`
	Category  IssueCategory `gorm:"type:varchar(50);not null" json:"category"`
	Urgency   IssueUrgency  `gorm:"type:varchar(20);default:'Normal'" json:"urgency"`
	Message   string        `gorm:"type:text;not null" json:"message"`
	Status    IssueStatus   `gorm:"type:varchar(20);default:'Received'" json:"status"`
}
