package dto

type CreateEventRequest struct {
	Title              string   `json:"title" binding:"required"`
	Description        string   `json:"description" binding:"required"`
	Date               string   `json:"date" binding:"required"`
	StartTime          string   `json:"start_time" binding:"required"`
	EndTime            string   `json:"end_time" binding:"required"`
	Location           string   `json:"location" binding:"required"`
	ImageURL           string   `json:"image_url"`
	Capacity           int      `json:"capacity" binding:"gte=0"`
	VolunteerQuota     *int     `json:"volunteer_quota" binding:"omitempty,gte=0"`
	VolunteerEventType string   `json:"volunteer_event_type"`
	Questions          []string `json:"questions"`
}

// SignupRequest drives toggle and register. UserID defaults to the acting
// user; Name is the volunteer display name mirrored into the roster. Role
// may be empty when the toggle withdraws.
type SignupRequest struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	Name   string `json:"name"`
}

type RosterRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateUserRequest struct {
	Name           string `json:"name" binding:"required"`
	Role           string `json:"role"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
}

type UpdateUserRequest struct {
	Name *string `json:"name"`
	Role *string `json:"role"`
}

type SetRoleRequest struct {
	Role string `json:"role" binding:"required"`
}
