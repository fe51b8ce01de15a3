package routes

import (
	artistsapi "github.com/Josip135/TattooStudio/internal/api/artists"
	authapi "github.com/Josip135/TattooStudio/internal/api/auth"
	blogsapi "github.com/Josip135/TattooStudio/internal/api/blogs"
	clientsapi "github.com/Josip135/TattooStudio/internal/api/clients"
	galleryapi "github.com/Josip135/TattooStudio/internal/api/gallery"
	storiesapi "github.com/Josip135/TattooStudio/internal/api/stories"
	"github.com/Josip135/TattooStudio/internal/app/http/middleware"
	"github.com/Josip135/TattooStudio/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires every endpoint to handlers built around the
// injected database handle and object store. Tokens issued by the auth
// routes are advisory: no route requires one, and mutations are scoped
// only by the owner-id predicates inside the handlers.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, store storage.Storage, jwtSecret string) {
	auth := &authapi.Handler{DB: db, JWTSecret: jwtSecret}
	clients := &clientsapi.Handler{DB: db}
	artists := &artistsapi.Handler{DB: db}
	stories := &storiesapi.Handler{DB: db}
	gallery := &galleryapi.Handler{DB: db, Storage: store}
	blogs := &blogsapi.Handler{DB: db, Storage: store}

	r.Use(middleware.SanitizeJSONInput())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.POST("/clients/register", auth.RegisterClient)
	r.POST("/clients/login", auth.LoginClient)
	r.POST("/artists/login", auth.LoginArtist)

	r.GET("/clients/:email", clients.GetByEmail)
	r.GET("/artists/:artist", artists.GetByEmail)

	r.GET("/stories", stories.List)
	r.POST("/stories", stories.Create)
	r.POST("/stories/delete", stories.Delete)
	r.POST("/stories/edit", stories.Edit)

	// Edits ride on PUT so the id segment does not collide with the
	// static /artists/login and /blogs/delete POST routes.
	r.PUT("/artists/:id/text1", artists.EditText1)
	r.PUT("/artists/:id/text2", artists.EditText2)

	r.GET("/artists/:artist/tattoos", gallery.ListByArtist)
	r.POST("/tattoos", gallery.Upload)
	r.POST("/tattoos/delete", gallery.Delete)

	r.GET("/blogs", blogs.ListBlogs)
	r.GET("/thumbnails", blogs.ListThumbnails)
	r.POST("/blogs", blogs.UploadBlog)
	r.POST("/blog-thumbnails", blogs.UploadThumbnail)
	r.POST("/blogs/delete", blogs.DeleteThumbnail)
	r.PUT("/blogs/:artist_id/paragraph1", blogs.EditParagraph1)
	r.PUT("/blogs/:artist_id/paragraph2", blogs.EditParagraph2)
}
