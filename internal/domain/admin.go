package domain

import "time"

// AdminProfile is the dashboard operator identity returned by admin login.
type AdminProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AdminStudentUser is the moderation view of a student: the profile plus
// board/class names and the two independently toggleable flags. Nullable
// backend columns map to pointers.
type AdminStudentUser struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Age        int       `json:"age"`
	Email      *string   `json:"email"`
	Mobile     *string   `json:"mobile"`
	BoardID    *string   `json:"boardId"`
	ClassID    *string   `json:"classId"`
	BoardName  *string   `json:"boardName"`
	ClassName  *string   `json:"className"`
	Role       string    `json:"role"`
	IsActive   bool      `json:"isActive"`
	IsVerified bool      `json:"isVerified"`
	CreatedAt  time.Time `json:"createdAt"`
}
