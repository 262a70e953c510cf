package dto

import (
	"time"

	"ledgerdesk/internal/platform/id"
)

type LoginInput struct {
	Email    string
	Password string
}

type SignupInput struct {
	Email    string
	Password string
	Confirm  string
	Role     string
}

type UserOutput struct {
	ID         id.ID
	Email      string
	Role       string
	Privileged bool
}

type StateOutput struct {
	User      UserOutput
	LoggedIn  bool
	Loading   bool
	LastError string
}

type WhoamiOutput struct {
	User      UserOutput
	ExpiresAt time.Time
	HasExpiry bool
}

type RouteDecision struct {
	Path     string
	Redirect bool
}
