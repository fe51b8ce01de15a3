package gallery

import "github.com/Josip135/TattooStudio/internal/domain/media"

// TattooDTO is a gallery row plus its per-request signed read URL.
type TattooDTO struct {
	ID         uint   `json:"id"`
	Filename   string `json:"filename"`
	URL        string `json:"url"`
	ArtistID   uint   `json:"artist_id"`
	ArtistPath string `json:"artist_path"`
	SignedURL  string `json:"signed_url"`
}

func toTattooDTO(t media.Tattoo, signedURL string) TattooDTO {
	return TattooDTO{
		ID:         t.ID,
		Filename:   t.Filename,
		URL:        t.URL,
		ArtistID:   t.ArtistID,
		ArtistPath: t.ArtistPath,
		SignedURL:  signedURL,
	}
}
