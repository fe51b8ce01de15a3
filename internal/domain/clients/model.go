package clients

import "time"

// Client is a registered visitor of the studio site. Rows are created
// by registration only; no route updates or deletes them.
type Client struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Email     string `gorm:"not null;uniqueIndex:idx_clients_email" json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	// bcrypt hash, cost 10.
	Password string `json:"-"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
