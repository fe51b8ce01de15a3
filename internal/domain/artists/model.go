package artists

import "time"

// Artist is a studio artist. There is no registration route; rows are
// created directly in the database. Text1 and Text2 are the two
// freeform blocks shown on the artist page, editable over the API.
type Artist struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Email string `gorm:"not null;uniqueIndex:idx_artists_email" json:"email"`
	// Stored in plaintext and compared by equality on login. Kept as
	// the original behaves; clients get bcrypt, artists do not.
	Password string `json:"-"`
	Name     string `json:"name"`
	// Path is the URL segment galleries are filtered by.
	Path         string `gorm:"column:artist_path" json:"path"`
	ProfileImage string `json:"profile_image"`
	Text1        string `json:"text1"`
	Text2        string `json:"text2"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
