package artists

import (
	"errors"
	"net/http"

	"github.com/Josip135/TattooStudio/internal/domain/artists"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	DB *gorm.DB
}

// PublicView is the artist projection shown on the site. Email and
// password never leave the server.
type PublicView struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Path         string `json:"path"`
	ProfileImage string `json:"profile_image"`
	Text1        string `json:"text1"`
	Text2        string `json:"text2"`
}

// GetByEmail handles GET /artists/:artist where the segment is the
// artist's login email.
func (h *Handler) GetByEmail(c *gin.Context) {
	email := c.Param("artist")

	var artist artists.Artist
	err := h.DB.WithContext(c.Request.Context()).
		Where("email = ?", email).First(&artist).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Korisnik ne postoji!"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Greška na serveru"})
		return
	}

	c.JSON(http.StatusOK, PublicView{
		ID:           artist.ID,
		Name:         artist.Name,
		Path:         artist.Path,
		ProfileImage: artist.ProfileImage,
		Text1:        artist.Text1,
		Text2:        artist.Text2,
	})
}

// EditText1 handles POST /artists/:id/text1.
func (h *Handler) EditText1(c *gin.Context) {
	h.editText(c, "text1")
}

// EditText2 handles POST /artists/:id/text2.
func (h *Handler) EditText2(c *gin.Context) {
	h.editText(c, "text2")
}

func (h *Handler) editText(c *gin.Context, column string) {
	var input struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// The artist id comes from the caller; there is no token check
	// here, matching the rest of the mutation surface.
	res := h.DB.WithContext(c.Request.Context()).
		Model(&artists.Artist{}).
		Where("id = ?", c.Param("id")).
		Update(column, input.Text)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Greška na serveru"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": res.RowsAffected})
}
