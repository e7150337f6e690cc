package domain

import "time"

// User is the student profile as the backend returns it. Optional fields
// stay zero-valued when the backend omits them.
type User struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Age        int       `json:"age,omitempty"`
	Email      string    `json:"email,omitempty"`
	Mobile     string    `json:"mobile,omitempty"`
	BoardID    string    `json:"boardId,omitempty"`
	ClassID    string    `json:"classId,omitempty"`
	IsVerified bool      `json:"isVerified,omitempty"`
	CreatedAt  time.Time `json:"createdAt,omitzero"`
	UpdatedAt  time.Time `json:"updatedAt,omitzero"`
}

// RegisterInput is the signup payload. Field names follow the backend's
// snake_case registration contract.
type RegisterInput struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Mobile   string `json:"mobile"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
	BoardID  string `json:"board_id"`
	ClassID  string `json:"class_id"`
}

// ProfileUpdate carries the mutable profile fields. Nil means "leave as is".
type ProfileUpdate struct {
	BoardID *string `json:"board_id,omitempty"`
	ClassID *string `json:"class_id,omitempty"`
}
