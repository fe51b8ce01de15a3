package clients

import (
	"errors"
	"net/http"

	"github.com/Josip135/TattooStudio/internal/domain/clients"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	DB *gorm.DB
}

// PublicView is the projection handed to the frontend after login; the
// password hash stays out of it.
type PublicView struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// GetByEmail handles GET /clients/:email.
func (h *Handler) GetByEmail(c *gin.Context) {
	email := c.Param("email")

	var client clients.Client
	err := h.DB.WithContext(c.Request.Context()).
		Where("email = ?", email).First(&client).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Korisnik ne postoji!"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Greška na serveru"})
		return
	}

	c.JSON(http.StatusOK, PublicView{
		ID:        client.ID,
		Email:     client.Email,
		FirstName: client.FirstName,
		LastName:  client.LastName,
	})
}
