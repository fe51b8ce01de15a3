package gallery

import (
	"bytes"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/Josip135/TattooStudio/internal/domain/media"
	"github.com/Josip135/TattooStudio/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	DB      *gorm.DB
	Storage storage.Storage
}

// All upload routes share one bucket, so gallery objects live under
// their own prefix; a tattoo named like an existing blog image must
// never touch the blog's object.
func objectKey(filename string) string {
	return "tattoos/" + filename
}

// Upload handles POST /tattoos (multipart: file, artist_id,
// artist_path). Objects are keyed by the original filename, so a
// second upload with a name that is already referenced is rejected
// instead of silently overwriting the first object.
func (h *Handler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Nedostaje datoteka!"})
		return
	}
	defer file.Close()

	artistID, err := strconv.ParseUint(c.PostForm("artist_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Neispravan artist_id!"})
		return
	}
	artistPath := c.PostForm("artist_path")

	ctx := c.Request.Context()

	var existing media.Tattoo
	err = h.DB.WithContext(ctx).Where("filename = ?", header.Filename).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"detail": "Datoteka s tim imenom već postoji!"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Greška na serveru"})
		return
	}

	var buffer bytes.Buffer
	if _, err := io.Copy(&buffer, file); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Greška na serveru"})
		return
	}

	key := objectKey(header.Filename)
	contentType := header.Header.Get("Content-Type")
	if err := h.Storage.Upload(ctx, key, &buffer, int64(buffer.Len()), contentType); err != nil {
		log.Println("tattoo upload failed:", err)
		c.JSON(http.StatusBadGateway, gin.H{"detail": "Prijenos datoteke nije uspio!"})
		return
	}

	tattoo := media.Tattoo{
		Filename:   header.Filename,
		URL:        h.Storage.PublicURL(key),
		ArtistID:   uint(artistID),
		ArtistPath: artistPath,
	}
	if err := h.DB.WithContext(ctx).Create(&tattoo).Error; err != nil {
		// Upload and insert are not one transaction; remove the object
		// so a failed insert does not leave an orphan behind.
		if rmErr := h.Storage.Remove(ctx, key); rmErr != nil {
			log.Println("compensating remove failed:", rmErr)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Greška na serveru"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": tattoo.ID, "filename": tattoo.Filename, "url": tattoo.URL})
}

// ListByArtist handles GET /artists/:artist/tattoos where the segment
// is the artist's gallery path. Each row gets a fresh 24-hour signed
// URL; URLs are never stored because they expire.
func (h *Handler) ListByArtist(c *gin.Context) {
	artistPath := c.Param("artist")
	ctx := c.Request.Context()

	var rows []media.Tattoo
	err := h.DB.WithContext(ctx).
		Where("artist_path = ?", artistPath).
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Greška na serveru"})
		return
	}

	out := make([]TattooDTO, 0, len(rows))
	for _, row := range rows {
		signed, err := h.Storage.PresignedGet(ctx, objectKey(row.Filename), storage.SignedURLExpiry)
		if err != nil {
			// A single presign failure fails the whole list with a
			// real status; never leave the request unanswered.
			log.Println("presign failed:", err)
			c.JSON(http.StatusBadGateway, gin.H{"detail": "Dohvat slika nije uspio!"})
			return
		}
		out = append(out, toTattooDTO(row, signed))
	}

	c.JSON(http.StatusOK, out)
}

// Delete handles POST /tattoos/delete, scoped by the
// (image_id, artist_id) pair. The storage object is removed after the
// row; a failed removal is logged but does not undo the delete.
func (h *Handler) Delete(c *gin.Context) {
	var input struct {
		ImageID  uint `json:"image_id" binding:"required"`
		ArtistID uint `json:"artist_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	var tattoo media.Tattoo
	err := h.DB.WithContext(ctx).
		Where("id = ? AND artist_id = ?", input.ImageID, input.ArtistID).
		First(&tattoo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, gin.H{"deleted": 0})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Greška na serveru"})
		return
	}

	res := h.DB.WithContext(ctx).
		Where("id = ? AND artist_id = ?", input.ImageID, input.ArtistID).
		Delete(&media.Tattoo{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Greška na serveru"})
		return
	}

	if res.RowsAffected > 0 {
		if err := h.Storage.Remove(ctx, objectKey(tattoo.Filename)); err != nil {
			log.Println("object remove failed:", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"deleted": res.RowsAffected})
}
