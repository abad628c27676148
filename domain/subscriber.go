package domain

import "time"

// Subscriber is an address collected through the waitlist form.
type Subscriber struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Source    string    `json:"source,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type JoinRequest struct {
	Email  string `json:"email" validate:"required,email,max=254"`
	Source string `json:"source" validate:"max=64"`
}
