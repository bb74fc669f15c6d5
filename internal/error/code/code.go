package code

// HTTP状态码.
const (
	// StatusOK - 200: 成功.
	StatusOK = 200
	// StatusBadRequest - 400: 请求参数错误.
	StatusBadRequest = 400
	// StatusUnauthorized - 401: 未授权.
	StatusUnauthorized = 401
	// StatusNotFound - 404: 资源不存在.
	StatusNotFound = 404
	// StatusTooManyRequests - 429: 请求过多.
	StatusTooManyRequests = 429
	// StatusInternalServerError - 500: 服务器内部错误.
	StatusInternalServerError = 500
)

// 通用错误码 (100xxx).
const (
	// ErrSuccess - 200: 成功.
	ErrSuccess int = iota + 100000
	// ErrUnknown - 500: 未知错误.
	ErrUnknown
	// ErrBind - 400: 请求参数绑定错误.
	ErrBind
	// ErrValidation - 400: 请求参数验证错误.
	ErrValidation
	// ErrTokenInvalid - 401: 管理令牌无效.
	ErrTokenInvalid
	// ErrTooManyRequests - 429: 请求频率过高.
	ErrTooManyRequests
)

// 问题上报相关错误码 (101xxx).
const (
	// ErrIssueNotFound - 404: 问题不存在.
	ErrIssueNotFound int = iota + 101000
	// ErrIssueValidation - 400: 问题提交内容不完整.
	ErrIssueValidation
	// ErrIssueCategoryInvalid - 400: 问题类别不在枚举内.
	ErrIssueCategoryInvalid
	// ErrIssueStatusInvalid - 400: 处理状态不在枚举内.
	ErrIssueStatusInvalid
	// ErrReferenceExhausted - 500: 追踪编号分配重试耗尽.
	ErrReferenceExhausted
)

// 订阅与留言相关错误码 (102xxx).
const (
	// ErrEmailInvalid - 400: 邮箱格式无效.
	ErrEmailInvalid int = iota + 102000
	// ErrContactValidation - 400: 留言内容不完整.
	ErrContactValidation
)

// 内容发布相关错误码 (103xxx).
const (
	// ErrUpdateValidation - 400: 官方更新内容不完整.
	ErrUpdateValidation int = iota + 103000
	// ErrEventValidation - 400: 活动内容不完整.
	ErrEventValidation
)

// 数据库相关错误码 (105xxx).
const (
	// ErrDatabase - 500: 数据库错误.
	ErrDatabase int = iota + 105000
	// ErrRecordNotFound - 404: 记录不存在.
	ErrRecordNotFound
)
