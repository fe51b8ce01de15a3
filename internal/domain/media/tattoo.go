package media

import "time"

// Tattoo is one gallery image. Filename is the object key in the
// bucket; URL is the public form built at upload time. Signed read
// URLs are generated per request and never persisted.
type Tattoo struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Filename string `gorm:"not null" json:"filename"`
	URL      string `json:"url"`
	ArtistID uint   `json:"artist_id"`
	// Denormalized from the artist row; galleries filter on it.
	ArtistPath string `gorm:"column:artist_path" json:"artist_path"`

	CreatedAt time.Time `json:"-"`
}
