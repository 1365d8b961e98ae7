package chat

import "errors"

var (
	// ErrDuplicateAction is returned while a chat for the same character is already being resolved
	ErrDuplicateAction = errors.New("chat creation already in progress")

	// ErrEmptyChatID is returned when the backend reports success without a chat id
	ErrEmptyChatID = errors.New("backend returned empty chat id")

	// ErrEmptyMessage is returned for blank message content
	ErrEmptyMessage = errors.New("message content is empty")

	// ErrEmptyCharacterID is returned when the selected character has no id
	ErrEmptyCharacterID = errors.New("character id is empty")
)
