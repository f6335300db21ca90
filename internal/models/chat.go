package models

import (
	"fmt"

	apperrors "github.com/julianstephens/auragenie/internal/errors"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleModel
}

type ChatMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

func ModelMessage(content string) ChatMessage {
	return ChatMessage{Role: RoleModel, Content: content}
}

func UserMessage(content string) ChatMessage {
	return ChatMessage{Role: RoleUser, Content: content}
}

func (m ChatMessage) Validate() error {
	if !m.Role.Valid() {
		return fmt.Errorf("%q: %w", m.Role, apperrors.ErrUnknownRole)
	}
	return nil
}
