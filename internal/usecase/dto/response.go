package dto

import "github.com/location-moderation/internal/domain"

// IntakeResponse - ответ клиентскому приложению на принятую заявку
type IntakeResponse struct {
	Success   bool   `json:"success"`
	RequestID string `json:"request_id"`
	Message   string `json:"message,omitempty"`
}

// Resolution - результат терминального перехода заявки
type Resolution struct {
	Request  domain.PendingRequest `json:"request"`
	Approved bool                  `json:"approved"`
	Key      string                `json:"key,omitempty"`
	Text     string                `json:"-"`
}

// HealthResponse - состояние сервиса
type HealthResponse struct {
	Status          string   `json:"status"`
	Timestamp       string   `json:"timestamp"`
	PendingRequests int      `json:"pending_requests"`
	Countries       []string `json:"countries"`
	Config          struct {
		TelegramConfigured bool `json:"telegram_token_configured"`
		GitHubConfigured   bool `json:"github_token_configured"`
	} `json:"config"`
}
