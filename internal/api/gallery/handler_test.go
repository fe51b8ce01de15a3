package gallery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/Josip135/TattooStudio/database"
	"github.com/Josip135/TattooStudio/internal/domain/media"
	"github.com/Josip135/TattooStudio/internal/storage/storagetest"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setup(t *testing.T) (*gin.Engine, *gorm.DB, *storagetest.Fake) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	fake := storagetest.New()
	h := &Handler{DB: db, Storage: fake}
	r := gin.New()
	r.POST("/tattoos", h.Upload)
	r.POST("/tattoos/delete", h.Delete)
	r.GET("/artists/:artist/tattoos", h.ListByArtist)
	return r, db, fake
}

func uploadRequest(t *testing.T, filename string, content []byte, fields map[string]string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)

	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/tattoos", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestUploadStoresObjectAndRow(t *testing.T) {
	r, db, fake := setup(t)

	req := uploadRequest(t, "dragon.jpg", []byte("jpeg bytes"), map[string]string{
		"artist_id": "3", "artist_path": "ink",
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, fake.Has("tattoos/dragon.jpg"))
	assert.Equal(t, []byte("jpeg bytes"), fake.Object("tattoos/dragon.jpg"))

	var row media.Tattoo
	require.NoError(t, db.Where("filename = ?", "dragon.jpg").First(&row).Error)
	assert.Equal(t, uint(3), row.ArtistID)
	assert.Equal(t, "ink", row.ArtistPath)
	assert.Equal(t, fake.PublicURL("tattoos/dragon.jpg"), row.URL)
}

func TestUploadDuplicateFilenameRejected(t *testing.T) {
	r, db, fake := setup(t)

	first := httptest.NewRecorder()
	r.ServeHTTP(first, uploadRequest(t, "dragon.jpg", []byte("first"), map[string]string{
		"artist_id": "3", "artist_path": "ink",
	}))
	require.Equal(t, http.StatusCreated, first.Code)

	second := httptest.NewRecorder()
	r.ServeHTTP(second, uploadRequest(t, "dragon.jpg", []byte("second"), map[string]string{
		"artist_id": "4", "artist_path": "other",
	}))
	assert.Equal(t, http.StatusConflict, second.Code)

	// The first upload's object is untouched.
	assert.Equal(t, []byte("first"), fake.Object("tattoos/dragon.jpg"))

	var count int64
	db.Model(&media.Tattoo{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUploadCompensatesWhenInsertFails(t *testing.T) {
	r, db, fake := setup(t)

	require.NoError(t, db.Callback().Create().Before("gorm:create").
		Register("force_insert_failure", func(tx *gorm.DB) {
			tx.AddError(errors.New("forced insert failure"))
		}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "dragon.jpg", []byte("jpeg bytes"), map[string]string{
		"artist_id": "3", "artist_path": "ink",
	}))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// The uploaded object was removed again.
	assert.False(t, fake.Has("tattoos/dragon.jpg"))
}

func TestUploadBadArtistID(t *testing.T) {
	r, _, fake := setup(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, uploadRequest(t, "dragon.jpg", []byte("x"), map[string]string{
		"artist_id": "nope", "artist_path": "ink",
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, fake.Has("tattoos/dragon.jpg"))
}

func TestListByArtistSignedURLs(t *testing.T) {
	r, db, _ := setup(t)

	for i := 1; i <= 3; i++ {
		require.NoError(t, db.Create(&media.Tattoo{
			Filename:   fmt.Sprintf("ink-%d.jpg", i),
			URL:        fmt.Sprintf("https://fake.storage/bucket/ink-%d.jpg", i),
			ArtistID:   3,
			ArtistPath: "ink",
		}).Error)
	}
	require.NoError(t, db.Create(&media.Tattoo{
		Filename: "other.jpg", ArtistID: 4, ArtistPath: "other",
	}).Error)

	req := httptest.NewRequest(http.MethodGet, "/artists/ink/tattoos", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var got []TattooDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 3)

	for i, dto := range got {
		assert.Equal(t, fmt.Sprintf("ink-%d.jpg", i+1), dto.Filename)
		// One signed URL per row, carrying the 24h expiry.
		assert.Equal(t,
			fmt.Sprintf("https://fake.storage/bucket/tattoos/ink-%d.jpg?expires=86400", i+1),
			dto.SignedURL)
	}
	// Ordered by ascending id.
	assert.True(t, got[0].ID < got[1].ID && got[1].ID < got[2].ID)
}

func TestListByArtistPresignFailureIsBadGateway(t *testing.T) {
	r, db, fake := setup(t)

	require.NoError(t, db.Create(&media.Tattoo{
		Filename: "ink.jpg", ArtistID: 3, ArtistPath: "ink",
	}).Error)
	fake.FailPresign = true

	req := httptest.NewRequest(http.MethodGet, "/artists/ink/tattoos", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestDeleteScopedByOwnerPair(t *testing.T) {
	r, db, fake := setup(t)

	tattoo := media.Tattoo{Filename: "ink.jpg", ArtistID: 3, ArtistPath: "ink"}
	require.NoError(t, db.Create(&tattoo).Error)
	require.NoError(t, fake.Upload(context.Background(), "tattoos/ink.jpg", bytes.NewReader([]byte("x")), 1, ""))

	w := postJSON(t, r, "/tattoos/delete", gin.H{"image_id": tattoo.ID, "artist_id": 99})
	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]float64
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Zero(t, resp["deleted"])
	assert.True(t, fake.Has("tattoos/ink.jpg"))

	w = postJSON(t, r, "/tattoos/delete", gin.H{"image_id": tattoo.ID, "artist_id": 3})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(1), resp["deleted"])
	assert.False(t, fake.Has("tattoos/ink.jpg"))

	var count int64
	db.Model(&media.Tattoo{}).Count(&count)
	assert.Zero(t, count)
}
