package domain

import "time"

// Stream names
const (
	StreamAPILogs = "stream:geography:api_logs"
)

// APILog - запись журнала запроса к API, уходит в стрим и сохраняется воркером
type APILog struct {
	RequestID  string    `json:"request_id"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	Username   string    `json:"username,omitempty"`
	StatusCode int       `json:"status_code"`
	Success    bool      `json:"success"`
	Message    string    `json:"message,omitempty"`
	DurationMS int64     `json:"duration_ms"`
	DateStart  time.Time `json:"date_start"`
	DateEnd    time.Time `json:"date_end"`
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
