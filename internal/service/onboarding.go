package service

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/shiksha-labs/tutorbot/internal/apiclient"
	"github.com/shiksha-labs/tutorbot/internal/config"
	"github.com/shiksha-labs/tutorbot/internal/domain"
)

type FlowKind string

const (
	FlowLogin  FlowKind = "login"
	FlowSignup FlowKind = "signup"
)

type FlowStep string

const (
	StepMobile   FlowStep = "mobile"
	StepOTP      FlowStep = "otp"
	StepName     FlowStep = "name"
	StepAge      FlowStep = "age"
	StepEmail    FlowStep = "email"
	StepPassword FlowStep = "password"
	StepBoard    FlowStep = "board"
	StepClass    FlowStep = "class"
)

// Flow is the persisted position inside a login or signup conversation.
// It survives restarts because it lives in the chat's credential namespace.
type Flow struct {
	Kind     FlowKind             `json:"kind"`
	Step     FlowStep             `json:"step"`
	Mobile   string               `json:"mobile,omitempty"`
	Register domain.RegisterInput `json:"register"`
}

// StepResult tells the handler what to do next. ErrorText carries a
// validation or backend message to render verbatim; the flow stays where it
// is so the student can simply try again.
type StepResult struct {
	Prompt        string
	ErrorText     string
	Done          bool
	LoggedIn      *domain.User
	NeedBoardPick bool
	NeedClassPick bool
	BoardID       string
}

// Onboarding is the login/signup state machine. It owns no transport: all
// backend interaction goes through the per-chat API client.
type Onboarding struct{}

func NewOnboarding() *Onboarding {
	return &Onboarding{}
}

func (o *Onboarding) StartLogin(ctx context.Context, acct *Account) (StepResult, error) {
	flow := &Flow{Kind: FlowLogin, Step: StepMobile}
	if err := acct.State.SetFlow(ctx, flow); err != nil {
		return StepResult{}, err
	}
	return StepResult{Prompt: "Enter your 10-digit mobile number."}, nil
}

func (o *Onboarding) StartSignup(ctx context.Context, acct *Account) (StepResult, error) {
	flow := &Flow{Kind: FlowSignup, Step: StepName}
	if err := acct.State.SetFlow(ctx, flow); err != nil {
		return StepResult{}, err
	}
	return StepResult{Prompt: "Let's create your account. What's your name?"}, nil
}

func (o *Onboarding) Cancel(ctx context.Context, acct *Account) error {
	return acct.State.ClearFlow(ctx)
}

// HandleText advances the flow with one text input from the student.
func (o *Onboarding) HandleText(ctx context.Context, acct *Account, text string) (StepResult, error) {
	flow, err := acct.State.Flow(ctx)
	if err != nil {
		return StepResult{}, err
	}
	text = strings.TrimSpace(text)

	switch flow.Step {
	case StepMobile:
		return o.handleMobile(ctx, acct, flow, text)
	case StepOTP:
		return o.handleOTP(ctx, acct, flow, text)
	case StepName:
		if text == "" {
			return StepResult{ErrorText: "Please send your name."}, nil
		}
		flow.Register.Name = text
		flow.Step = StepAge
		if err := acct.State.SetFlow(ctx, flow); err != nil {
			return StepResult{}, err
		}
		return StepResult{Prompt: "How old are you?"}, nil
	case StepAge:
		age, err := strconv.Atoi(text)
		if err != nil || age < config.MinStudentAge || age > config.MaxStudentAge {
			return StepResult{ErrorText: "Please send your age as a number."}, nil
		}
		flow.Register.Age = age
		flow.Step = StepMobile
		if err := acct.State.SetFlow(ctx, flow); err != nil {
			return StepResult{}, err
		}
		return StepResult{Prompt: "Your 10-digit mobile number?"}, nil
	case StepEmail:
		if text != "-" {
			if !strings.Contains(text, "@") {
				return StepResult{ErrorText: "That doesn't look like an email. Send \"-\" to skip."}, nil
			}
			flow.Register.Email = text
		}
		flow.Step = StepPassword
		if err := acct.State.SetFlow(ctx, flow); err != nil {
			return StepResult{}, err
		}
		return StepResult{Prompt: "Choose a password (at least 8 characters)."}, nil
	case StepPassword:
		if len(text) < 8 {
			return StepResult{ErrorText: "Password must be at least 8 characters."}, nil
		}
		flow.Register.Password = text
		flow.Step = StepBoard
		if err := acct.State.SetFlow(ctx, flow); err != nil {
			return StepResult{}, err
		}
		return StepResult{Prompt: "Pick your board:", NeedBoardPick: true}, nil
	case StepBoard, StepClass:
		return StepResult{ErrorText: "Use the buttons above to pick."}, nil
	}
	return StepResult{}, fmt.Errorf("unknown flow step %q", flow.Step)
}

func (o *Onboarding) handleMobile(ctx context.Context, acct *Account, flow *Flow, text string) (StepResult, error) {
	if !isMobile(text) {
		return StepResult{ErrorText: "Please send a valid 10-digit mobile number."}, nil
	}

	if flow.Kind == FlowSignup {
		flow.Register.Mobile = text
		flow.Step = StepEmail
		if err := acct.State.SetFlow(ctx, flow); err != nil {
			return StepResult{}, err
		}
		return StepResult{Prompt: "Your email address? Send \"-\" to skip."}, nil
	}

	resp, err := acct.Client.Auth.RequestOTP(ctx, text)
	if err != nil {
		if apiclient.StatusOf(err) == http.StatusNotFound {
			return StepResult{ErrorText: "No account found for this number. Use /signup to create one."}, nil
		}
		return StepResult{ErrorText: err.Error()}, nil
	}

	flow.Mobile = text
	flow.Step = StepOTP
	if err := acct.State.SetFlow(ctx, flow); err != nil {
		return StepResult{}, err
	}
	prompt := resp.Message
	if prompt == "" {
		prompt = "We sent a code to your mobile. Enter it here."
	}
	return StepResult{Prompt: prompt}, nil
}

func (o *Onboarding) handleOTP(ctx context.Context, acct *Account, flow *Flow, text string) (StepResult, error) {
	resp, err := acct.Client.Auth.VerifyOTP(ctx, flow.Mobile, text)
	if err != nil {
		// Invalid vs expired codes arrive as distinct backend statuses;
		// the message is shown verbatim and the step stays retryable.
		return StepResult{ErrorText: err.Error()}, nil
	}

	if err := acct.Session.SaveLogin(ctx, resp.Token, resp.User); err != nil {
		return StepResult{}, err
	}
	if err := acct.State.ClearFlow(ctx); err != nil {
		return StepResult{}, err
	}
	user := resp.User
	return StepResult{Done: true, LoggedIn: &user}, nil
}

// PickBoard records the board chosen from the signup keyboard.
func (o *Onboarding) PickBoard(ctx context.Context, acct *Account, boardID string) (StepResult, error) {
	flow, err := acct.State.Flow(ctx)
	if err != nil {
		return StepResult{}, err
	}
	if flow.Kind != FlowSignup || flow.Step != StepBoard {
		return StepResult{ErrorText: "No board selection is pending."}, nil
	}
	flow.Register.BoardID = boardID
	flow.Step = StepClass
	if err := acct.State.SetFlow(ctx, flow); err != nil {
		return StepResult{}, err
	}
	return StepResult{Prompt: "And your class:", NeedClassPick: true, BoardID: boardID}, nil
}

// PickClass completes the signup: register the profile, then start mobile
// verification on the freshly registered number.
func (o *Onboarding) PickClass(ctx context.Context, acct *Account, classID string) (StepResult, error) {
	flow, err := acct.State.Flow(ctx)
	if err != nil {
		return StepResult{}, err
	}
	if flow.Kind != FlowSignup || flow.Step != StepClass {
		return StepResult{ErrorText: "No class selection is pending."}, nil
	}
	flow.Register.ClassID = classID

	if _, err := acct.Client.Auth.Register(ctx, flow.Register); err != nil {
		return StepResult{ErrorText: err.Error()}, nil
	}

	if _, err := acct.Client.Auth.RequestOTP(ctx, flow.Register.Mobile); err != nil {
		return StepResult{ErrorText: err.Error()}, nil
	}

	flow.Mobile = flow.Register.Mobile
	flow.Step = StepOTP
	if err := acct.State.SetFlow(ctx, flow); err != nil {
		return StepResult{}, err
	}
	return StepResult{Prompt: "Account created! Enter the code we sent to verify your mobile."}, nil
}

func isMobile(s string) bool {
	if len(s) != 10 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
