package code

// 错误码消息映射
var codeMessageMap = map[int]string{
	// 通用错误码
	ErrSuccess:         "OK",
	ErrUnknown:         "Internal server error",
	ErrBind:            "Invalid request payload",
	ErrValidation:      "Request validation failed",
	ErrTokenInvalid:    "Invalid admin token",
	ErrTooManyRequests: "Too many requests, please slow down",

	// 问题上报相关错误码
	ErrIssueNotFound:        "No issue found for that reference",
	ErrIssueValidation:      "Area, category, and message are required",
	ErrIssueCategoryInvalid: "Select a valid category",
	ErrIssueStatusInvalid:   "Unknown issue status",
	ErrReferenceExhausted:   "Could not allocate a tracking reference, please retry",

	// 订阅与留言相关错误码
	ErrEmailInvalid:      "Please provide a valid email address",
	ErrContactValidation: "Name, topic, and message are required",

	// 内容发布相关错误码
	ErrUpdateValidation: "Title, category, and body are required",
	ErrEventValidation:  "Title, venue, date, and agenda are required",

	// 数据库相关错误码
	ErrDatabase:       "Database error",
	ErrRecordNotFound: "Record not found",
}

// 错误码HTTP状态码映射
var codeStatusMap = map[int]int{
	// 通用错误码
	ErrSuccess:         StatusOK,
	ErrUnknown:         StatusInternalServerError,
	ErrBind:            StatusBadRequest,
	ErrValidation:      StatusBadRequest,
	ErrTokenInvalid:    StatusUnauthorized,
	ErrTooManyRequests: StatusTooManyRequests,

	// 问题上报相关错误码
	ErrIssueNotFound:        StatusNotFound,
	ErrIssueValidation:      StatusBadRequest,
	ErrIssueCategoryInvalid: StatusBadRequest,
	ErrIssueStatusInvalid:   StatusBadRequest,
	ErrReferenceExhausted:   StatusInternalServerError,

	// 订阅与留言相关错误码
	ErrEmailInvalid:      StatusBadRequest,
	ErrContactValidation: StatusBadRequest,

	// 内容发布相关错误码
	ErrUpdateValidation: StatusBadRequest,
	ErrEventValidation:  StatusBadRequest,

	// 数据库相关错误码
	ErrDatabase:       StatusInternalServerError,
	ErrRecordNotFound: StatusNotFound,
}

// GetMessage 返回错误码对应的提示消息
func GetMessage(errorCode int) string {
	if msg, ok := codeMessageMap[errorCode]; ok {
		return msg
	}
	return codeMessageMap[ErrUnknown]
}

// GetStatus 返回错误码对应的HTTP状态码
func GetStatus(errorCode int) int {
	if status, ok := codeStatusMap[errorCode]; ok {
		return status
	}
	return StatusInternalServerError
}
