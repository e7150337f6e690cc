package domain

import "time"

// Message roles used by the tutor chat.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// TutorSession joins a student to one subject/topic conversation. It is
// created once per topic selection and is the key for message exchange.
type TutorSession struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	SubjectID string    `json:"subjectId"`
	TopicID   string    `json:"topicId"`
	CreatedAt time.Time `json:"createdAt"`
}

// TutorMessage is append-only per session; ordering is creation order.
type TutorMessage struct {
	ID        string    `json:"id"`
	SessionID string    `json:"sessionId"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}
