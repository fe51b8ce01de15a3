// Package storagetest provides an in-memory Storage used by the
// handler tests.
package storagetest

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"
)

// Fake keeps uploaded objects in a map. PresignedGet encodes the key
// and the expiry seconds into the URL so tests can assert on both.
// Set FailPresign or FailUpload to force the error paths.
type Fake struct {
	mu      sync.Mutex
	objects map[string][]byte

	FailUpload  bool
	FailPresign bool
}

func New() *Fake {
	return &Fake{objects: make(map[string][]byte)}
}

func (f *Fake) Upload(_ context.Context, key string, reader io.Reader, _ int64, _ string) error {
	if f.FailUpload {
		return fmt.Errorf("fake: upload refused")
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = data
	return nil
}

func (f *Fake) PresignedGet(_ context.Context, key string, expires time.Duration) (string, error) {
	if f.FailPresign {
		return "", fmt.Errorf("fake: presign refused")
	}
	return fmt.Sprintf("https://fake.storage/bucket/%s?expires=%d", key, int(expires.Seconds())), nil
}

func (f *Fake) Remove(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	return nil
}

func (f *Fake) PublicURL(key string) string {
	return "https://fake.storage/bucket/" + key
}

// Has reports whether an object exists under key.
func (f *Fake) Has(key string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.objects[key]
	return ok
}

// Object returns the stored bytes for key.
func (f *Fake) Object(key string) []byte {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.objects[key]
}
