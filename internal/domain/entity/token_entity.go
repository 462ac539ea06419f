package entity

import "time"

// AccessToken is a persisted bearer token. Only the hash of the secret half is stored.
type AccessToken struct {
	ID         string
	UserID     string
	Name       string
	TokenHash  string
	LastUsedAt *time.Time
	CreatedAt  time.Time
}
