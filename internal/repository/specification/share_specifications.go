package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByTokenString filters share tokens by their opaque token value.
type ByTokenString struct {
	Token string
}

func (s ByTokenString) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("token = ?", s.Token)
}

// ByConversationID filters participants/answers by their parent conversation.
type ByConversationID struct {
	ConversationID uuid.UUID
}

func (s ByConversationID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("conversation_id = ?", s.ConversationID)
}

// ByConversationIDs filters by a set of parent conversations.
type ByConversationIDs struct {
	ConversationIDs []uuid.UUID
}

func (s ByConversationIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("conversation_id IN ?", s.ConversationIDs)
}

// ByParticipantUserID filters participants by the linked account, if any.
type ByParticipantUserID struct {
	UserID uuid.UUID
}

func (s ByParticipantUserID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}
