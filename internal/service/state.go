package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/shiksha-labs/tutorbot/internal/credstore"
	"github.com/shiksha-labs/tutorbot/internal/domain"
)

// Chat-local keys kept next to the credentials but owned by the bot, not
// the API layer.
const (
	keyActiveSession      = "activeSession"
	keyActiveSessionLabel = "activeSessionLabel"
	keyFlow               = "flow"
	keyPendingSubject     = "pendingSubject"
	keyPendingBoard       = "pendingBoard"
	keyStudentsQuery      = "studentsQuery"
)

// ChatState persists the bot-side conversation state for one chat: which
// tutor session text messages go to, and the in-progress login/signup flow.
type ChatState struct {
	store credstore.Store
}

func NewChatState(store credstore.Store) *ChatState {
	return &ChatState{store: store}
}

// ActiveSession returns the tutor session id plain messages are routed to.
func (s *ChatState) ActiveSession(ctx context.Context) (string, error) {
	id, err := s.store.Get(ctx, keyActiveSession)
	if err == credstore.ErrNotFound {
		return "", domain.ErrNoActiveSession
	}
	return id, err
}

func (s *ChatState) ActiveSessionLabel(ctx context.Context) string {
	label, err := s.store.Get(ctx, keyActiveSessionLabel)
	if err != nil {
		return ""
	}
	return label
}

func (s *ChatState) SetActiveSession(ctx context.Context, sessionID, label string) error {
	if err := s.store.Set(ctx, keyActiveSession, sessionID); err != nil {
		return err
	}
	return s.store.Set(ctx, keyActiveSessionLabel, label)
}

func (s *ChatState) ClearActiveSession(ctx context.Context) error {
	if err := s.store.Delete(ctx, keyActiveSession); err != nil {
		return err
	}
	return s.store.Delete(ctx, keyActiveSessionLabel)
}

// PendingSubject is the subject chosen while the topic keyboard is open.
// Keyboard callback payloads are too small to carry two catalog ids.
func (s *ChatState) PendingSubject(ctx context.Context) (string, error) {
	return s.store.Get(ctx, keyPendingSubject)
}

func (s *ChatState) SetPendingSubject(ctx context.Context, subjectID string) error {
	return s.store.Set(ctx, keyPendingSubject, subjectID)
}

// PendingBoard is the board chosen in settings while the class keyboard is
// open.
func (s *ChatState) PendingBoard(ctx context.Context) (string, error) {
	return s.store.Get(ctx, keyPendingBoard)
}

func (s *ChatState) SetPendingBoard(ctx context.Context, boardID string) error {
	return s.store.Set(ctx, keyPendingBoard, boardID)
}

// StudentsQuery remembers the admin's last search filter across pagination.
func (s *ChatState) StudentsQuery(ctx context.Context) string {
	q, err := s.store.Get(ctx, keyStudentsQuery)
	if err != nil {
		return ""
	}
	return q
}

func (s *ChatState) SetStudentsQuery(ctx context.Context, query string) error {
	return s.store.Set(ctx, keyStudentsQuery, query)
}

// Flow returns the in-progress login/signup flow, or ErrNoActiveFlow.
func (s *ChatState) Flow(ctx context.Context) (*Flow, error) {
	raw, err := s.store.Get(ctx, keyFlow)
	if err == credstore.ErrNotFound {
		return nil, domain.ErrNoActiveFlow
	}
	if err != nil {
		return nil, err
	}
	var flow Flow
	if err := json.Unmarshal([]byte(raw), &flow); err != nil {
		return nil, fmt.Errorf("decode flow: %w", err)
	}
	return &flow, nil
}

func (s *ChatState) SetFlow(ctx context.Context, flow *Flow) error {
	raw, err := json.Marshal(flow)
	if err != nil {
		return fmt.Errorf("encode flow: %w", err)
	}
	return s.store.Set(ctx, keyFlow, string(raw))
}

func (s *ChatState) ClearFlow(ctx context.Context) error {
	return s.store.Delete(ctx, keyFlow)
}
