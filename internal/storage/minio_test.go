package storage

import (
	"bytes"
	"context"
	"io"
	"net/url"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockMinio struct {
	mock.Mock
}

func (m *mockMinio) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	args := m.Called(ctx, bucketName, objectName, reader, objectSize, opts)
	return args.Get(0).(minio.UploadInfo), args.Error(1)
}

func (m *mockMinio) PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error) {
	args := m.Called(ctx, bucketName, objectName, expires, reqParams)
	return args.Get(0).(*url.URL), args.Error(1)
}

func (m *mockMinio) RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
	args := m.Called(ctx, bucketName, objectName, opts)
	return args.Error(0)
}

func newTestStorage(client minioAPI) *MinioStorage {
	return &MinioStorage{
		endpoint: "s3.example.com",
		bucket:   "tattoos",
		useSSL:   true,
		client:   client,
	}
}

func TestMinioStorage(t *testing.T) {
	t.Run("Upload", func(t *testing.T) {
		m := new(mockMinio)
		s := newTestStorage(m)
		content := []byte("image bytes")

		m.On("PutObject", mock.Anything, "tattoos", "dragon.jpg", mock.Anything, int64(len(content)),
			minio.PutObjectOptions{ContentType: "image/jpeg"}).
			Return(minio.UploadInfo{Key: "dragon.jpg"}, nil)

		err := s.Upload(context.Background(), "dragon.jpg", bytes.NewReader(content), int64(len(content)), "image/jpeg")
		assert.NoError(t, err)
		m.AssertExpectations(t)
	})

	t.Run("UploadDefaultsContentType", func(t *testing.T) {
		m := new(mockMinio)
		s := newTestStorage(m)

		m.On("PutObject", mock.Anything, "tattoos", "raw.bin", mock.Anything, int64(3),
			minio.PutObjectOptions{ContentType: defaultContentType}).
			Return(minio.UploadInfo{}, nil)

		err := s.Upload(context.Background(), "raw.bin", bytes.NewReader([]byte("abc")), 3, "")
		assert.NoError(t, err)
		m.AssertExpectations(t)
	})

	t.Run("PresignedGet", func(t *testing.T) {
		m := new(mockMinio)
		s := newTestStorage(m)
		signed := &url.URL{Scheme: "https", Host: "s3.example.com", Path: "/tattoos/dragon.jpg", RawQuery: "X-Amz-Expires=86400"}

		m.On("PresignedGetObject", mock.Anything, "tattoos", "dragon.jpg", SignedURLExpiry, url.Values{}).
			Return(signed, nil)

		got, err := s.PresignedGet(context.Background(), "dragon.jpg", SignedURLExpiry)
		assert.NoError(t, err)
		assert.Equal(t, signed.String(), got)
		m.AssertExpectations(t)
	})

	t.Run("Remove", func(t *testing.T) {
		m := new(mockMinio)
		s := newTestStorage(m)

		m.On("RemoveObject", mock.Anything, "tattoos", "dragon.jpg", minio.RemoveObjectOptions{}).
			Return(nil)

		assert.NoError(t, s.Remove(context.Background(), "dragon.jpg"))
		m.AssertExpectations(t)
	})

	t.Run("PublicURL", func(t *testing.T) {
		s := newTestStorage(nil)
		assert.Equal(t, "https://s3.example.com/tattoos/dragon.jpg", s.PublicURL("dragon.jpg"))

		s.useSSL = false
		assert.Equal(t, "http://s3.example.com/tattoos/dragon.jpg", s.PublicURL("dragon.jpg"))
	})
}
