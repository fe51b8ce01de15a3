package blogs

import "github.com/Josip135/TattooStudio/internal/domain/blogs"

// BlogDTO is a blog row plus its per-request signed read URL.
type BlogDTO struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Path        string `json:"path"`
	Paragraph1  string `json:"paragraph1"`
	Paragraph2  string `json:"paragraph2"`
	Filename    string `json:"filename"`
	URL         string `json:"url"`
	ArtistID    uint   `json:"artist_id"`
	ArtistName  string `json:"artist_name"`
	ArtistImage string `json:"artist_image"`
	SignedURL   string `json:"signed_url"`
}

func toBlogDTO(b blogs.Blog, signedURL string) BlogDTO {
	return BlogDTO{
		ID:          b.ID,
		Title:       b.Title,
		Date:        b.Date,
		Path:        b.Path,
		Paragraph1:  b.Paragraph1,
		Paragraph2:  b.Paragraph2,
		Filename:    b.Filename,
		URL:         b.URL,
		ArtistID:    b.ArtistID,
		ArtistName:  b.ArtistName,
		ArtistImage: b.ArtistImage,
		SignedURL:   signedURL,
	}
}

type ThumbnailDTO struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Intro       string `json:"intro"`
	Date        string `json:"date"`
	Path        string `json:"path"`
	Filename    string `json:"filename"`
	URL         string `json:"url"`
	ArtistID    uint   `json:"artist_id"`
	ArtistName  string `json:"artist_name"`
	ArtistImage string `json:"artist_image"`
	SignedURL   string `json:"signed_url"`
}

func toThumbnailDTO(t blogs.Thumbnail, signedURL string) ThumbnailDTO {
	return ThumbnailDTO{
		ID:          t.ID,
		Title:       t.Title,
		Intro:       t.Intro,
		Date:        t.Date,
		Path:        t.Path,
		Filename:    t.Filename,
		URL:         t.URL,
		ArtistID:    t.ArtistID,
		ArtistName:  t.ArtistName,
		ArtistImage: t.ArtistImage,
		SignedURL:   signedURL,
	}
}
