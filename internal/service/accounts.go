package service

import (
	"fmt"
	"time"

	"github.com/shiksha-labs/tutorbot/internal/apiclient"
	"github.com/shiksha-labs/tutorbot/internal/credstore"
)

// Accounts hands out per-chat API clients. Each Telegram chat gets its own
// credential namespace, so one chat's login never leaks into another —
// the same isolation one browser profile's localStorage gives the web app.
type Accounts struct {
	store   credstore.Store
	baseURL string
	timeout time.Duration
}

func NewAccounts(store credstore.Store, baseURL string, timeout time.Duration) *Accounts {
	return &Accounts{store: store, baseURL: baseURL, timeout: timeout}
}

// Account bundles everything one chat needs to talk to the backend.
type Account struct {
	ChatID  int64
	Session *credstore.Session
	Client  *apiclient.Client
	State   *ChatState
}

func (a *Accounts) ForChat(chatID int64) *Account {
	scoped := credstore.Prefixed(a.store, fmt.Sprintf("chat:%d:", chatID))
	session := credstore.NewSession(scoped)
	return &Account{
		ChatID:  chatID,
		Session: session,
		Client:  apiclient.New(a.baseURL, a.timeout, session),
		State:   NewChatState(scoped),
	}
}

// Anonymous returns a client with no credential backing, for public calls
// such as catalog listings.
func (a *Accounts) Anonymous() *apiclient.Client {
	return apiclient.New(a.baseURL, a.timeout, credstore.NewSession(credstore.NewMemory()))
}
