package models

import (
	"time"

	"github.com/avwray/lifedeck/internal/constants"
)

type Todo struct {
	ID        string             `json:"id"`
	Owner     string             `json:"owner"`
	Text      string             `json:"text"`
	Priority  constants.Priority `json:"priority"`
	Completed bool               `json:"completed"`
	CreatedAt time.Time          `json:"created_at"`
	DeletedAt *time.Time         `json:"deleted_at,omitempty"`
}
