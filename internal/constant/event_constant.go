package constant

// Event type codes published to the NATS bus.
const (
	EventUserLogin             = "USER_LOGIN"
	EventShareTokenIssued      = "SHARE_TOKEN_ISSUED"
	EventAnswerSubmitted       = "ANSWER_SUBMITTED"
	EventConversationCompleted = "CONVERSATION_COMPLETED"
)
