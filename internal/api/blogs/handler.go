package blogs

import (
	"bytes"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/Josip135/TattooStudio/internal/domain/blogs"
	"github.com/Josip135/TattooStudio/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	DB      *gorm.DB
	Storage storage.Storage
}

// Blog and thumbnail objects get their own key prefixes in the shared
// bucket. Filename reuse across routes then maps to distinct objects,
// and deleting a thumbnail can never remove an object a blog row still
// references.
func blogKey(filename string) string {
	return "blogs/" + filename
}

func thumbnailKey(filename string) string {
	return "thumbnails/" + filename
}

// readUpload pulls the multipart file into memory and returns its
// name, bytes and content type. Responses for the error cases are
// written here so callers can just return.
func readUpload(c *gin.Context) (string, *bytes.Buffer, string, bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Nedostaje datoteka!"})
		return "", nil, "", false
	}
	defer file.Close()

	var buffer bytes.Buffer
	if _, err := io.Copy(&buffer, file); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Greška na serveru"})
		return "", nil, "", false
	}
	return header.Filename, &buffer, header.Header.Get("Content-Type"), true
}

func formArtistID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.PostForm("artist_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Neispravan artist_id!"})
		return 0, false
	}
	return uint(id), true
}

// UploadBlog handles POST /blogs (multipart). The header image goes to
// storage first; the row insert follows, with a compensating object
// removal if the insert fails. The matching thumbnail is written by
// its own route and nothing ties the two inserts together.
func (h *Handler) UploadBlog(c *gin.Context) {
	filename, buffer, contentType, ok := readUpload(c)
	if !ok {
		return
	}
	artistID, ok := formArtistID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	var existing blogs.Blog
	err := h.DB.WithContext(ctx).Where("filename = ?", filename).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"detail": "Datoteka s tim imenom već postoji!"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Greška na serveru"})
		return
	}

	key := blogKey(filename)
	if err := h.Storage.Upload(ctx, key, buffer, int64(buffer.Len()), contentType); err != nil {
		log.Println("blog upload failed:", err)
		c.JSON(http.StatusBadGateway, gin.H{"detail": "Prijenos datoteke nije uspio!"})
		return
	}

	blog := blogs.Blog{
		Title:       c.PostForm("title"),
		Date:        c.PostForm("date"),
		Path:        c.PostForm("path"),
		Paragraph1:  c.PostForm("paragraph1"),
		Paragraph2:  c.PostForm("paragraph2"),
		Filename:    filename,
		URL:         h.Storage.PublicURL(key),
		ArtistID:    artistID,
		ArtistName:  c.PostForm("artist_name"),
		ArtistImage: c.PostForm("artist_image"),
	}
	if err := h.DB.WithContext(ctx).Create(&blog).Error; err != nil {
		if rmErr := h.Storage.Remove(ctx, key); rmErr != nil {
			log.Println("compensating remove failed:", rmErr)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Greška na serveru"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": blog.ID, "filename": blog.Filename, "url": blog.URL})
}

// UploadThumbnail handles POST /blog-thumbnails (multipart), the same
// upload-then-insert pattern as UploadBlog.
func (h *Handler) UploadThumbnail(c *gin.Context) {
	filename, buffer, contentType, ok := readUpload(c)
	if !ok {
		return
	}
	artistID, ok := formArtistID(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	var existing blogs.Thumbnail
	err := h.DB.WithContext(ctx).Where("filename = ?", filename).First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, gin.H{"detail": "Datoteka s tim imenom već postoji!"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Greška na serveru"})
		return
	}

	key := thumbnailKey(filename)
	if err := h.Storage.Upload(ctx, key, buffer, int64(buffer.Len()), contentType); err != nil {
		log.Println("thumbnail upload failed:", err)
		c.JSON(http.StatusBadGateway, gin.H{"detail": "Prijenos datoteke nije uspio!"})
		return
	}

	thumb := blogs.Thumbnail{
		Title:       c.PostForm("title"),
		Intro:       c.PostForm("intro"),
		Date:        c.PostForm("date"),
		Path:        c.PostForm("path"),
		Filename:    filename,
		URL:         h.Storage.PublicURL(key),
		ArtistID:    artistID,
		ArtistName:  c.PostForm("artist_name"),
		ArtistImage: c.PostForm("artist_image"),
	}
	if err := h.DB.WithContext(ctx).Create(&thumb).Error; err != nil {
		if rmErr := h.Storage.Remove(ctx, key); rmErr != nil {
			log.Println("compensating remove failed:", rmErr)
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Greška na serveru"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": thumb.ID, "filename": thumb.Filename, "url": thumb.URL})
}

// ListBlogs handles GET /blogs with a sequential per-row presign pass.
func (h *Handler) ListBlogs(c *gin.Context) {
	ctx := c.Request.Context()

	var rows []blogs.Blog
	if err := h.DB.WithContext(ctx).Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Greška na serveru"})
		return
	}

	out := make([]BlogDTO, 0, len(rows))
	for _, row := range rows {
		signed, err := h.Storage.PresignedGet(ctx, blogKey(row.Filename), storage.SignedURLExpiry)
		if err != nil {
			log.Println("presign failed:", err)
			c.JSON(http.StatusBadGateway, gin.H{"detail": "Dohvat blogova nije uspio!"})
			return
		}
		out = append(out, toBlogDTO(row, signed))
	}

	c.JSON(http.StatusOK, out)
}

// ListThumbnails handles GET /thumbnails.
func (h *Handler) ListThumbnails(c *gin.Context) {
	ctx := c.Request.Context()

	var rows []blogs.Thumbnail
	if err := h.DB.WithContext(ctx).Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Greška na serveru"})
		return
	}

	out := make([]ThumbnailDTO, 0, len(rows))
	for _, row := range rows {
		signed, err := h.Storage.PresignedGet(ctx, thumbnailKey(row.Filename), storage.SignedURLExpiry)
		if err != nil {
			log.Println("presign failed:", err)
			c.JSON(http.StatusBadGateway, gin.H{"detail": "Dohvat naslovnica nije uspio!"})
			return
		}
		out = append(out, toThumbnailDTO(row, signed))
	}

	c.JSON(http.StatusOK, out)
}

// EditParagraph1 handles POST /blogs/:artist_id/paragraph1.
func (h *Handler) EditParagraph1(c *gin.Context) {
	h.editParagraph(c, "paragraph1")
}

// EditParagraph2 handles POST /blogs/:artist_id/paragraph2.
func (h *Handler) EditParagraph2(c *gin.Context) {
	h.editParagraph(c, "paragraph2")
}

// editParagraph updates the paragraph on EVERY blog row of the artist.
// The route carries no blog id, so there is nothing narrower to scope
// by; do not narrow this without also changing the route contract.
func (h *Handler) editParagraph(c *gin.Context, column string) {
	var input struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := h.DB.WithContext(c.Request.Context()).
		Model(&blogs.Blog{}).
		Where("artist_id = ?", c.Param("artist_id")).
		Update(column, input.Text)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Greška na serveru"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": res.RowsAffected})
}

// DeleteThumbnail handles POST /blogs/delete. Scope is
// (artist_id, title); the title is not unique, so every matching row
// goes, and the count says how many did. Blog rows are untouched.
func (h *Handler) DeleteThumbnail(c *gin.Context) {
	var input struct {
		ArtistID uint   `json:"artist_id" binding:"required"`
		Title    string `json:"title" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()

	var matches []blogs.Thumbnail
	err := h.DB.WithContext(ctx).
		Where("artist_id = ? AND title = ?", input.ArtistID, input.Title).
		Find(&matches).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Greška na serveru"})
		return
	}

	res := h.DB.WithContext(ctx).
		Where("artist_id = ? AND title = ?", input.ArtistID, input.Title).
		Delete(&blogs.Thumbnail{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Greška na serveru"})
		return
	}

	for _, m := range matches {
		if err := h.Storage.Remove(ctx, thumbnailKey(m.Filename)); err != nil {
			log.Println("object remove failed:", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"deleted": res.RowsAffected})
}
