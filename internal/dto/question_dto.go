package dto

import (
	"github.com/google/uuid"

	"maum-baedal-be/internal/constant"
)

type QuestionResponse struct {
	Id       uuid.UUID                 `json:"id"`
	Content  string                    `json:"content"`
	Category constant.QuestionCategory `json:"category"`
	Date     string                    `json:"date"` // YYYY-MM-DD the question was served for
}
