package domain

import "time"

type Account struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string // argon2 encoded
	Active       bool   // false until the activation link is followed
	AvatarURL    *string
	Bio          *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicProfile is the only account shape handed to clients.
type PublicProfile struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	AvatarURL *string `json:"avatarUrl"`
	Bio       *string `json:"bio"`
}

func (a Account) Profile() PublicProfile {
	return PublicProfile{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		AvatarURL: a.AvatarURL,
		Bio:       a.Bio,
	}
}
