package service

import (
	"strings"
	"testing"
)

func TestValidateContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{name: "empty", content: "", wantErr: true},
		{name: "single rune", content: "응", wantErr: true},
		{name: "two runes is the floor", content: "응응", wantErr: false},
		{name: "two ascii runes", content: "ok", wantErr: false},
		{name: "korean sentence", content: "오늘은 날씨가 정말 좋았어요.", wantErr: false},
		{name: "exactly 800 runes", content: strings.Repeat("가", 800), wantErr: false},
		{name: "801 runes", content: strings.Repeat("가", 801), wantErr: true},
		{name: "800 multibyte runes over 2400 bytes", content: strings.Repeat("말", 800), wantErr: false},
		{name: "mixed emoji within bound", content: "좋아요 👍👍", wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateContent(tt.content)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateContent(%d runes) error = %v, wantErr %v",
					len([]rune(tt.content)), err, tt.wantErr)
			}
		})
	}
}
