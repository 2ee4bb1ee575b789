package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderUserAgent     = "User-Agent"

	// Content Types
	ContentTypeJSON = "application/json"

	// Context keys
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyActor     = "actor"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableUsers                 = "users"
	TableComplaintCategories   = "complaint_categories"
	TableGuidanceTemplates     = "guidance_templates"
	TableComplaints            = "complaints"
	TableDailySequences        = "complaint_daily_sequences"
	TableWorkOrders            = "work_orders"
	TableVisitLogs             = "visit_logs"
	TableStatusHistory         = "complaint_status_history"
	TableComplaintComments     = "complaint_comments"
	TableNotificationTemplates = "notification_templates"
	TableNotificationQueue     = "notification_queue"
	TableNotices               = "notices"
	TableFAQs                  = "faqs"

	// Redis key prefixes
	RedisKeyTicketSequence = "sitedesk:ticket_seq:"
	RedisKeyCategory       = "sitedesk:category:"
	RedisKeyCategoryList   = "sitedesk:categories"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
)
