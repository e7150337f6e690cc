package service

import (
	"context"
	"sync"
	"time"

	"github.com/shiksha-labs/tutorbot/internal/apiclient"
	"github.com/shiksha-labs/tutorbot/internal/domain"
)

// Catalog reads the academic hierarchy through the public API and caches
// each listing for a TTL so keyboard paging does not refetch. Entries are
// parent-scoped and independent of each other.
type Catalog struct {
	api *apiclient.AcademicAPI
	ttl time.Duration

	mu      sync.RWMutex
	entries map[string]catalogEntry
}

type catalogEntry struct {
	value    any
	cachedAt time.Time
}

func NewCatalog(api *apiclient.AcademicAPI, ttl time.Duration) *Catalog {
	return &Catalog{
		api:     api,
		ttl:     ttl,
		entries: make(map[string]catalogEntry),
	}
}

func (c *Catalog) cached(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok || time.Since(e.cachedAt) > c.ttl {
		return nil, false
	}
	return e.value, true
}

func (c *Catalog) store(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = catalogEntry{value: value, cachedAt: time.Now()}
}

func (c *Catalog) Boards(ctx context.Context) ([]domain.Board, error) {
	if v, ok := c.cached("boards"); ok {
		return v.([]domain.Board), nil
	}
	boards, err := c.api.Boards(ctx)
	if err != nil {
		return nil, err
	}
	c.store("boards", boards)
	return boards, nil
}

func (c *Catalog) ClassesByBoard(ctx context.Context, boardID string) ([]domain.Class, error) {
	key := "classes:" + boardID
	if v, ok := c.cached(key); ok {
		return v.([]domain.Class), nil
	}
	classes, err := c.api.ClassesByBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}
	c.store(key, classes)
	return classes, nil
}

func (c *Catalog) SubjectsByClass(ctx context.Context, classID string) ([]domain.Subject, error) {
	key := "subjects:" + classID
	if v, ok := c.cached(key); ok {
		return v.([]domain.Subject), nil
	}
	subjects, err := c.api.SubjectsByClass(ctx, classID)
	if err != nil {
		return nil, err
	}
	c.store(key, subjects)
	return subjects, nil
}

func (c *Catalog) TopicsBySubject(ctx context.Context, subjectID string) ([]domain.Topic, error) {
	key := "topics:" + subjectID
	if v, ok := c.cached(key); ok {
		return v.([]domain.Topic), nil
	}
	topics, err := c.api.TopicsBySubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	c.store(key, topics)
	return topics, nil
}

func (c *Catalog) SubTopicsByTopic(ctx context.Context, topicID string) ([]domain.SubTopic, error) {
	key := "subtopics:" + topicID
	if v, ok := c.cached(key); ok {
		return v.([]domain.SubTopic), nil
	}
	subTopics, err := c.api.SubTopicsByTopic(ctx, topicID)
	if err != nil {
		return nil, err
	}
	c.store(key, subTopics)
	return subTopics, nil
}

// BoardByID resolves a board name for display. Falls back to the raw id
// when the board has vanished from the catalog.
func (c *Catalog) BoardByID(ctx context.Context, boardID string) (domain.Board, error) {
	boards, err := c.Boards(ctx)
	if err != nil {
		return domain.Board{}, err
	}
	for _, b := range boards {
		if b.ID == boardID {
			return b, nil
		}
	}
	return domain.Board{}, domain.ErrBoardNotFound
}

func (c *Catalog) ClassByID(ctx context.Context, boardID, classID string) (domain.Class, error) {
	classes, err := c.ClassesByBoard(ctx, boardID)
	if err != nil {
		return domain.Class{}, err
	}
	for _, cl := range classes {
		if cl.ID == classID {
			return cl, nil
		}
	}
	return domain.Class{}, domain.ErrClassNotFound
}
