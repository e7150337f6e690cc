package apiclient

import (
	"context"
	"net/url"

	"github.com/shiksha-labs/tutorbot/internal/domain"
)

// AcademicAPI reads the catalog hierarchy. All listings are public and
// parent-scoped; unrelated listings carry no ordering dependency between
// each other.
type AcademicAPI struct {
	client *Client
}

func (a *AcademicAPI) Boards(ctx context.Context) ([]domain.Board, error) {
	var out []domain.Board
	err := a.client.get(ctx, "/academic/boards", "academic", TrustNone, &out)
	return out, err
}

func (a *AcademicAPI) ClassesByBoard(ctx context.Context, boardID string) ([]domain.Class, error) {
	var out []domain.Class
	err := a.client.get(ctx, "/academic/classes/"+url.PathEscape(boardID), "academic", TrustNone, &out)
	return out, err
}

func (a *AcademicAPI) SubjectsByClass(ctx context.Context, classID string) ([]domain.Subject, error) {
	var out []domain.Subject
	err := a.client.get(ctx, "/academic/subjects/"+url.PathEscape(classID), "academic", TrustNone, &out)
	return out, err
}

func (a *AcademicAPI) TopicsBySubject(ctx context.Context, subjectID string) ([]domain.Topic, error) {
	var out []domain.Topic
	err := a.client.get(ctx, "/academic/topics/"+url.PathEscape(subjectID), "academic", TrustNone, &out)
	return out, err
}

func (a *AcademicAPI) SubTopicsByTopic(ctx context.Context, topicID string) ([]domain.SubTopic, error) {
	var out []domain.SubTopic
	err := a.client.get(ctx, "/academic/subtopics/"+url.PathEscape(topicID), "academic", TrustNone, &out)
	return out, err
}
