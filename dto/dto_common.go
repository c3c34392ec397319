package dto

import "time"

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ClearResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	DeletedCount int64  `json:"deletedCount"`
}

type StatusResponse struct {
	IsOpen bool `json:"isOpen"`
}

type ToggleResponse struct {
	Message string `json:"message"`
	IsOpen  bool   `json:"isOpen"`
}

type PingResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type LoginRequest struct {
	Password string `json:"password" form:"password"`
}

// LoginResponse carries either the marker header to send on admin calls or
// a bearer token, depending on the configured authenticator.
type LoginResponse struct {
	Success   bool       `json:"success"`
	Header    string     `json:"header,omitempty"`
	Value     string     `json:"value,omitempty"`
	Token     string     `json:"token,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}
