package apiclient

import (
	"context"
	"net/url"

	"github.com/shiksha-labs/tutorbot/internal/domain"
)

// TutorAPI drives the tutoring conversation. A session must exist before
// messages can be sent; its id is the join key callers thread through.
type TutorAPI struct {
	client *Client
}

type SendMessageResponse struct {
	UserMessage  domain.TutorMessage `json:"userMessage"`
	TutorMessage domain.TutorMessage `json:"tutorMessage"`
}

func (t *TutorAPI) CreateSession(ctx context.Context, subjectID, topicID string) (domain.TutorSession, error) {
	var out domain.TutorSession
	err := t.client.post(ctx, "/tutor/session", "tutor",
		map[string]string{"subjectId": subjectID, "topicId": topicID}, TrustUser, &out)
	return out, err
}

func (t *TutorAPI) Sessions(ctx context.Context) ([]domain.TutorSession, error) {
	var out []domain.TutorSession
	err := t.client.get(ctx, "/tutor/sessions", "tutor", TrustUser, &out)
	return out, err
}

func (t *TutorAPI) Messages(ctx context.Context, sessionID string) ([]domain.TutorMessage, error) {
	var out []domain.TutorMessage
	err := t.client.get(ctx, "/tutor/messages/"+url.PathEscape(sessionID), "tutor", TrustUser, &out)
	return out, err
}

// SendMessage posts one student message and returns both the echoed user
// message and the generated tutor reply.
func (t *TutorAPI) SendMessage(ctx context.Context, sessionID, content string) (SendMessageResponse, error) {
	var out SendMessageResponse
	err := t.client.post(ctx, "/tutor/message", "tutor",
		map[string]string{"sessionId": sessionID, "content": content}, TrustUser, &out)
	return out, err
}
