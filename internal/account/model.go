package account

import "time"

type Account struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
