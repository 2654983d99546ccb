package assetService

import (
	"AnatomyOverlay/internal/api/asset"
	"AnatomyOverlay/pkg/redis"
	"AnatomyOverlay/pkg/s3"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
)

type fakeS3 struct {
	models   []string
	listErr  error
	presigns []string
	err      error
}

func (f *fakeS3) ListModels() ([]string, error) {
	return f.models, f.listErr
}

func (f *fakeS3) PresignUrl(key string) (string, time.Time, error) {
	f.presigns = append(f.presigns, key)
	if f.err != nil {
		return "", time.Time{}, f.err
	}
	return "https://bucket.example/" + key + "?sig=1", time.Now().Add(s3.PresignTTL), nil
}

type fakeCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string][]byte{}}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, dest interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.data[key]
	if !ok {
		return redis.ErrCacheMiss
	}
	return jsoniter.Unmarshal(raw, dest)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := jsoniter.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.data[key] = raw
	c.mu.Unlock()
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	delete(c.data, key)
	c.mu.Unlock()
	return nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestValidModelName(t *testing.T) {
	tests := map[string]bool{
		"hand.glb":        true,
		"Skeleton_v2.GLB": true,
		"":                false,
		".glb":            false,
		"hand.gltf":       false,
		"models/hand.glb": false,
		`..\hand.glb`:     false,
		"../secret.glb":   false,
		"hand..glb":       false,
		"hand.glb.exe":    false,
		"hand":            false,
	}
	for name, want := range tests {
		if got := ValidModelName(name); got != want {
			t.Errorf("ValidModelName(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestModelURL(t *testing.T) {
	storage := &fakeS3{}
	cache := newFakeCache()
	svc := New(testLogger(), storage, cache)

	resp, err := svc.ModelURL(context.Background(), "hand.glb")
	if err != nil {
		t.Fatalf("ModelURL: %v", err)
	}
	if resp.Name != "hand.glb" || resp.URL != "https://bucket.example/models/hand.glb?sig=1" {
		t.Errorf("unexpected response %+v", resp)
	}
	if time.Until(resp.ExpiresAt) <= 14*time.Minute {
		t.Errorf("ExpiresAt too early: %v", resp.ExpiresAt)
	}

	if _, err := svc.ModelURL(context.Background(), "hand.glb"); err != nil {
		t.Fatalf("second ModelURL: %v", err)
	}
	if len(storage.presigns) != 1 {
		t.Errorf("cached url should be reused, presigned %d times", len(storage.presigns))
	}
}

func TestModelURLErrors(t *testing.T) {
	tests := []struct {
		name    string
		storage *fakeS3
		model   string
		want    error
	}{
		{"bad name", &fakeS3{}, "../x.glb", asset.ErrInvalidModelName},
		{"not found", &fakeS3{err: s3.ErrObjectNotFound}, "missing.glb", asset.ErrModelNotFound},
		{"storage failure", &fakeS3{err: errors.New("boom")}, "hand.glb", asset.ErrAssetStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := New(testLogger(), tt.storage, nil)
			if _, err := svc.ModelURL(context.Background(), tt.model); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestWithoutStorage(t *testing.T) {
	svc := New(testLogger(), nil, nil)

	if _, err := svc.ListModels(context.Background()); !errors.Is(err, asset.ErrAssetsUnavailable) {
		t.Errorf("ListModels err = %v", err)
	}
	if _, err := svc.ModelURL(context.Background(), "hand.glb"); !errors.Is(err, asset.ErrAssetsUnavailable) {
		t.Errorf("ModelURL err = %v", err)
	}
}

func TestListModels(t *testing.T) {
	svc := New(testLogger(), &fakeS3{}, nil)
	models, err := svc.ListModels(context.Background())
	if err != nil || models == nil || len(models) != 0 {
		t.Errorf("empty bucket: models=%v err=%v", models, err)
	}

	svc = New(testLogger(), &fakeS3{listErr: errors.New("denied")}, nil)
	if _, err := svc.ListModels(context.Background()); !errors.Is(err, asset.ErrAssetStorage) {
		t.Errorf("err = %v, want ErrAssetStorage", err)
	}
}
