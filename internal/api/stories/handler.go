package stories

import (
	"net/http"

	"github.com/Josip135/TattooStudio/internal/domain/stories"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	DB *gorm.DB
}

// List handles GET /stories: the full table in natural order.
func (h *Handler) List(c *gin.Context) {
	var all []stories.Story
	if err := h.DB.WithContext(c.Request.Context()).Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Greška na serveru"})
		return
	}
	c.JSON(http.StatusOK, all)
}

// Create handles POST /stories. The client name is denormalized into
// the row as supplied; it is not checked against the clients table.
func (h *Handler) Create(c *gin.Context) {
	var input struct {
		Text      string `json:"text" binding:"required"`
		ClientID  uint   `json:"client_id" binding:"required"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	story := stories.Story{
		Text:      input.Text,
		ClientID:  input.ClientID,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}
	if err := h.DB.WithContext(c.Request.Context()).Create(&story).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Greška na serveru"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": story.ID})
}

// Delete handles POST /stories/delete. The (story_id, client_id) pair
// is the only authorization: a mismatch deletes nothing and reports
// zero affected rows instead of an error.
func (h *Handler) Delete(c *gin.Context) {
	var input struct {
		StoryID  uint `json:"story_id" binding:"required"`
		ClientID uint `json:"client_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := ownedStoryQuery(h.DB.WithContext(c.Request.Context()), input.StoryID, input.ClientID).
		Delete(&stories.Story{})
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Greška na serveru"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": res.RowsAffected})
}

// Edit handles POST /stories/edit with the same owner-pair predicate
// as Delete.
func (h *Handler) Edit(c *gin.Context) {
	var input struct {
		Text     string `json:"text" binding:"required"`
		StoryID  uint   `json:"story_id" binding:"required"`
		ClientID uint   `json:"client_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res := ownedStoryQuery(h.DB.WithContext(c.Request.Context()), input.StoryID, input.ClientID).
		Update("text", input.Text)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Greška na serveru"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": res.RowsAffected})
}
