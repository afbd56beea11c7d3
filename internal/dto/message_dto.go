package dto

import "github.com/google/uuid"

// ProjectConversationMessage asks the projection consumer to rebuild the
// history summaries of one conversation.
type ProjectConversationMessage struct {
	ConversationId uuid.UUID `json:"conversation_id"`
}
