package domain

import "time"

type Role string

const (
	RoleParticipant Role = "participant"
	RoleVolunteer   Role = "volunteer"
	RoleAdmin       Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleParticipant, RoleVolunteer, RoleAdmin:
		return true
	}
	return false
}

// Staff reports whether the role sees volunteer colouring and volunteer-only events.
func (r Role) Staff() bool {
	return r == RoleVolunteer || r == RoleAdmin
}

type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Role           Role      `json:"role"`
	TelegramChatID *int64    `json:"telegram_chat_id"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateUserInput struct {
	Name           string
	Role           Role
	TelegramChatID *int64
}

type UpdateUserInput struct {
	Name *string
	Role *Role
}
