package service

import (
	"context"
	"testing"

	"github.com/shiksha-labs/tutorbot/internal/credstore"
	"github.com/shiksha-labs/tutorbot/internal/domain"
)

func TestActiveSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	state := NewChatState(credstore.NewMemory())

	if _, err := state.ActiveSession(ctx); err != domain.ErrNoActiveSession {
		t.Errorf("fresh state: err = %v, want ErrNoActiveSession", err)
	}

	if err := state.SetActiveSession(ctx, "s1", "Maths · Algebra"); err != nil {
		t.Fatal(err)
	}
	id, err := state.ActiveSession(ctx)
	if err != nil || id != "s1" {
		t.Errorf("ActiveSession = %q, %v", id, err)
	}
	if label := state.ActiveSessionLabel(ctx); label != "Maths · Algebra" {
		t.Errorf("label = %q", label)
	}

	if err := state.ClearActiveSession(ctx); err != nil {
		t.Fatal(err)
	}
	if _, err := state.ActiveSession(ctx); err != domain.ErrNoActiveSession {
		t.Errorf("after clear: err = %v", err)
	}
}

func TestFlowPersistsAcrossStates(t *testing.T) {
	ctx := context.Background()
	store := credstore.NewMemory()

	// Same backing store, new ChatState: simulates a bot restart.
	first := NewChatState(store)
	flow := &Flow{
		Kind:     FlowSignup,
		Step:     StepClass,
		Register: domain.RegisterInput{
			Name:    "Ravi",
			Age:     14,
			Mobile:  "9988776655",
			BoardID: "b1",
		},
	}
	if err := first.SetFlow(ctx, flow); err != nil {
		t.Fatal(err)
	}

	second := NewChatState(store)
	got, err := second.Flow(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.Kind != FlowSignup || got.Step != StepClass || got.Register.Name != "Ravi" {
		t.Errorf("restored flow = %+v", got)
	}
}

func TestPendingSelectionsAndQuery(t *testing.T) {
	ctx := context.Background()
	state := NewChatState(credstore.NewMemory())

	if err := state.SetPendingSubject(ctx, "subj1"); err != nil {
		t.Fatal(err)
	}
	if got, err := state.PendingSubject(ctx); err != nil || got != "subj1" {
		t.Errorf("PendingSubject = %q, %v", got, err)
	}

	if err := state.SetPendingBoard(ctx, "b1"); err != nil {
		t.Fatal(err)
	}
	if got, err := state.PendingBoard(ctx); err != nil || got != "b1" {
		t.Errorf("PendingBoard = %q, %v", got, err)
	}

	if got := state.StudentsQuery(ctx); got != "" {
		t.Errorf("fresh query = %q", got)
	}
	if err := state.SetStudentsQuery(ctx, "ravi"); err != nil {
		t.Fatal(err)
	}
	if got := state.StudentsQuery(ctx); got != "ravi" {
		t.Errorf("StudentsQuery = %q", got)
	}
}
