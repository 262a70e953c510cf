package domain

import "ledgerdesk/internal/platform/id"

// Durable storage keys. All three are written and removed together.
const (
	KeyUser         = "user"
	KeyAccessToken  = "accessToken"
	KeyRefreshToken = "refreshToken"
)

const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

type User struct {
	ID    id.ID  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Privileged reports whether the user may see mutation controls.
func (u User) Privileged() bool {
	switch u.Role {
	case RoleAdmin, RoleManager:
		return true
	default:
		return false
	}
}

type Session struct {
	User         *User
	AccessToken  string
	RefreshToken string
}

// Authenticated holds when both the user and the access token are present.
func (s Session) Authenticated() bool {
	return s.User != nil && s.AccessToken != ""
}

func StorageKeys() []string {
	return []string{KeyUser, KeyAccessToken, KeyRefreshToken}
}
