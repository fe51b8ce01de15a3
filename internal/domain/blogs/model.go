package blogs

import "time"

// Blog is a full post. The artist fields are denormalized at write
// time. Filename is the header image's object key.
type Blog struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Title      string `json:"title"`
	Date       string `json:"date"`
	Path       string `json:"path"`
	Paragraph1 string `json:"paragraph1"`
	Paragraph2 string `json:"paragraph2"`
	Filename   string `gorm:"not null" json:"filename"`
	URL        string `json:"url"`

	ArtistID    uint   `json:"artist_id"`
	ArtistName  string `json:"artist_name"`
	ArtistImage string `json:"artist_image"`

	CreatedAt time.Time `json:"-"`
}

// Thumbnail is the teaser card for a post. It is written by its own
// route, independent of the Blog insert; no foreign key ties the two.
// Deletion is scoped by (artist_id, title) and title is not unique, so
// one delete may remove several rows.
type Thumbnail struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `json:"title"`
	Intro    string `json:"intro"`
	Date     string `json:"date"`
	Path     string `json:"path"`
	Filename string `gorm:"not null" json:"filename"`
	URL      string `json:"url"`

	ArtistID    uint   `json:"artist_id"`
	ArtistName  string `json:"artist_name"`
	ArtistImage string `json:"artist_image"`

	CreatedAt time.Time `json:"-"`
}
