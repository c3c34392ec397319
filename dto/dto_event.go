package dto

import "gdg-registration/internal/models"

type EventRequest struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Date        string `json:"date" form:"date"`
	Location    string `json:"location" form:"location"`
}

type EventSaveResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Event   *models.Event `json:"event"`
}
