package domain

import "errors"

var (
	ErrNoActiveSession = errors.New("no active tutor session")
	ErrNoActiveFlow    = errors.New("no active conversation flow")
	ErrBoardNotFound   = errors.New("board not found")
	ErrClassNotFound   = errors.New("class not found")
)
