package dto

import "ledgerdesk/internal/platform/id"

type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserOutput struct {
	ID    id.ID  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type TokensOutput struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// AuthOutput is the body of a successful login or register call. User is nil
// when the server omitted it.
type AuthOutput struct {
	User   *UserOutput  `json:"user"`
	Tokens TokensOutput `json:"tokens"`
}
