package article

import "time"

// Article is a user-owned content record. OwnerID is fixed at creation
// and never reassigned.
type Article struct {
	ID        string
	OwnerID   string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
