package view

import "github.com/google/uuid"

// Notice levels
const (
	NoticeInfo  = "info"
	NoticeError = "error"
)

// Notice is a transient, dismissible message shown once on the next page
// render: success confirmations and non-session errors end up here.
type Notice struct {
	ID      string `json:"id"`
	Level   string `json:"level"`
	Message string `json:"message"`
}

func NewNotice(level, message string) Notice {
	return Notice{
		ID:      uuid.NewString(),
		Level:   level,
		Message: message,
	}
}
