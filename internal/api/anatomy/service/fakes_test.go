package anatomyService

import (
	"AnatomyOverlay/internal/api/anatomy"
	anatomyRepository "AnatomyOverlay/internal/api/anatomy/repository"
	"AnatomyOverlay/internal/entity"
	"AnatomyOverlay/pkg/redis"
	"context"
	"errors"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
)

type fakeStore struct {
	mu        sync.Mutex
	overrides map[string]entity.DescriptionOverride
	parts     map[string]entity.PartDocument
	commits   int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		overrides: map[string]entity.DescriptionOverride{},
		parts:     map[string]entity.PartDocument{},
	}
}

func (f *fakeStore) NewClient(tx bool) (anatomyRepository.Client, error) {
	return anatomyRepository.Client{
		Overrides: f,
		Parts:     f,
		Commit: func() error {
			f.mu.Lock()
			f.commits++
			f.mu.Unlock()
			return nil
		},
		Rollback: func() error { return nil },
	}, nil
}

func (f *fakeStore) GetOverride(_ context.Context, structure string) (entity.DescriptionOverride, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.overrides[structure]
	if !ok {
		return entity.DescriptionOverride{}, anatomy.ErrOverrideNotFound
	}
	return o, nil
}

func (f *fakeStore) UpsertOverride(_ context.Context, o entity.DescriptionOverride) (entity.DescriptionOverride, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o.UpdatedAt = time.Now()
	f.overrides[o.Structure] = o
	return o, nil
}

func (f *fakeStore) DeleteOverride(_ context.Context, structure string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.overrides[structure]; !ok {
		return anatomy.ErrOverrideNotFound
	}
	delete(f.overrides, structure)
	return nil
}

func (f *fakeStore) GetPartDocument(_ context.Context, partID string) (entity.PartDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.parts[partID]
	if !ok {
		return entity.PartDocument{}, anatomy.ErrPartDocumentNotFound
	}
	return d, nil
}

func (f *fakeStore) UpsertPartDocument(_ context.Context, doc entity.PartDocument) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.parts[doc.PartID] = doc
	return nil
}

type fakeCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{items: map[string][]byte{}}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, dest interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.items[key]
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
	defer c.mu.Unlock()
	c.items[key] = raw
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	return nil
}

func (c *fakeCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.items[key]
	return ok
}

type fakeGenerator struct {
	text  string
	err   error
	calls int
}

func (g *fakeGenerator) GenerateText(context.Context, string) (string, error) {
	g.calls++
	return g.text, g.err
}

func (g *fakeGenerator) Close() {}

type fakeChatGPT struct {
	reply   string
	doc     map[string]interface{}
	err     error
	lastMsg string
}

func (f *fakeChatGPT) Chat(_ context.Context, msg string) (string, error) {
	f.lastMsg = msg
	return f.reply, f.err
}

func (f *fakeChatGPT) DescribePart(_ context.Context, structure string) (map[string]interface{}, error) {
	f.lastMsg = structure
	return f.doc, f.err
}

type fakePartAPI struct {
	docs  map[string]map[string]interface{}
	calls []string
}

func (f *fakePartAPI) Fetch(partID string) (map[string]interface{}, error) {
	f.calls = append(f.calls, partID)
	if doc, ok := f.docs[partID]; ok {
		return doc, nil
	}
	return nil, errors.New("upstream unavailable")
}
