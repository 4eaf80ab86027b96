package models

import "time"

// Turn is a single entry in the session chat log: who said it and what.
type Turn struct {
	ID        int64     `json:"id"`
	Role      string    `json:"role"` // "user" or "assistant"
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
