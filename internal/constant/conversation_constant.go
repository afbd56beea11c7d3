package constant

// ConversationStatus is the stored lifecycle state of a conversation.
type ConversationStatus string

const (
	ConversationActive    ConversationStatus = "active"
	ConversationCompleted ConversationStatus = "completed"
)

// GateStatus is the per-viewer visibility state. It is always derived,
// never persisted (the prototype stored a flat canViewAll flag, which
// goes stale the moment participants answer at different times).
type GateStatus string

const (
	GateLocked       GateStatus = "locked"
	GateUnlocked     GateStatus = "unlocked"
	GateCompleted    GateStatus = "completed"
	GateUnauthorized GateStatus = "unauthorized"
)

// TokenStatus is the resolution-time state of a share token.
type TokenStatus string

const (
	TokenValid   TokenStatus = "valid"
	TokenUsed    TokenStatus = "used"
	TokenExpired TokenStatus = "expired"
	TokenInvalid TokenStatus = "invalid"
)

// Answer content bounds, measured in unicode codepoints.
const (
	AnswerMinLength = 2
	AnswerMaxLength = 800
)
