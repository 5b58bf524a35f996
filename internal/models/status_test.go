package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusMetaForType(t *testing.T) {
	tests := []struct {
		statusType string
		want       StatusMeta
		ok         bool
	}{
		{StatusFree, StatusMeta{Title: "Free", Icon: "check", Color: "success", Message: "Available now"}, true},
		{StatusBusy, StatusMeta{Title: "Busy", Icon: "times", Color: "danger", Message: "Do not disturb"}, true},
		{StatusMeeting, StatusMeta{Title: "Meeting", Icon: "briefcase", Color: "info", Message: "In a meeting"}, true},
		{StatusSleeping, StatusMeta{Title: "Sleeping", Icon: "moon", Color: "purple", Message: "Catching some Z's"}, true},
		{StatusCustom, StatusMeta{}, false},
		{"vacation", StatusMeta{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.statusType, func(t *testing.T) {
			meta, ok := StatusMetaForType(tt.statusType)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, meta)
		})
	}
}

func TestValidStatusType(t *testing.T) {
	for _, valid := range []string{StatusFree, StatusBusy, StatusMeeting, StatusSleeping, StatusCustom} {
		assert.True(t, ValidStatusType(valid), valid)
	}
	for _, invalid := range []string{"", "away", "FREE"} {
		assert.False(t, ValidStatusType(invalid), invalid)
	}
}
