package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// HTTP Headers
	HeaderXRequestID     = "X-Request-ID"
	HeaderAcceptLanguage = "Accept-Language"
	HeaderContentLang    = "Content-Language"
	HeaderRetryAfter     = "Retry-After"

	// Context keys
	ContextKeyRequestID = "request_id"
	ContextKeyLang      = "lang"

	// Database table names
	TablePlans  = "plans"
	TableAddons = "addons"

	// Quote flows, used as metric labels and log fields
	FlowNewCustomer      = "new_customer"
	FlowExistingCustomer = "existing_customer"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgCatalogUnavailable  = "Pricing catalog is unavailable"
	ErrMsgCatalogLoading      = "Pricing catalog is still loading"
	ErrMsgValidationFailed    = "Validation failed"
)
