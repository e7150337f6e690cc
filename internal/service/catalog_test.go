package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shiksha-labs/tutorbot/internal/apiclient"
	"github.com/shiksha-labs/tutorbot/internal/credstore"
	"github.com/shiksha-labs/tutorbot/internal/domain"
)

func newCatalogBackend(t *testing.T) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var hits atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("/academic/boards", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`[{"id":"b1","name":"CBSE"},{"id":"b2","name":"ICSE"}]`))
	})
	mux.HandleFunc("/academic/classes/b1", func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`[{"id":"c9","name":"Class 9","boardId":"b1"}]`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &hits
}

func newCatalog(srv *httptest.Server, ttl time.Duration) *Catalog {
	client := apiclient.New(srv.URL, 5*time.Second, credstore.NewSession(credstore.NewMemory()))
	return NewCatalog(client.Academic, ttl)
}

func TestCatalogCachesWithinTTL(t *testing.T) {
	srv, hits := newCatalogBackend(t)
	catalog := newCatalog(srv, time.Hour)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		boards, err := catalog.Boards(ctx)
		if err != nil {
			t.Fatalf("Boards: %v", err)
		}
		if len(boards) != 2 || boards[0].Name != "CBSE" {
			t.Fatalf("boards = %+v", boards)
		}
	}
	if hits.Load() != 1 {
		t.Errorf("backend hits = %d, want 1", hits.Load())
	}
}

func TestCatalogRefetchesAfterTTL(t *testing.T) {
	srv, hits := newCatalogBackend(t)
	catalog := newCatalog(srv, time.Nanosecond)
	ctx := context.Background()

	if _, err := catalog.Boards(ctx); err != nil {
		t.Fatal(err)
	}
	time.Sleep(time.Millisecond)
	if _, err := catalog.Boards(ctx); err != nil {
		t.Fatal(err)
	}
	if hits.Load() != 2 {
		t.Errorf("backend hits = %d, want 2", hits.Load())
	}
}

func TestCatalogScopesEntriesByParent(t *testing.T) {
	srv, hits := newCatalogBackend(t)
	catalog := newCatalog(srv, time.Hour)
	ctx := context.Background()

	if _, err := catalog.Boards(ctx); err != nil {
		t.Fatal(err)
	}
	classes, err := catalog.ClassesByBoard(ctx, "b1")
	if err != nil {
		t.Fatal(err)
	}
	if len(classes) != 1 || classes[0].ID != "c9" {
		t.Fatalf("classes = %+v", classes)
	}
	if hits.Load() != 2 {
		t.Errorf("backend hits = %d, want 2 (one per listing)", hits.Load())
	}
}

func TestBoardAndClassLookup(t *testing.T) {
	srv, _ := newCatalogBackend(t)
	catalog := newCatalog(srv, time.Hour)
	ctx := context.Background()

	board, err := catalog.BoardByID(ctx, "b2")
	if err != nil || board.Name != "ICSE" {
		t.Errorf("BoardByID = %+v, %v", board, err)
	}
	if _, err := catalog.BoardByID(ctx, "nope"); err != domain.ErrBoardNotFound {
		t.Errorf("missing board: err = %v", err)
	}

	class, err := catalog.ClassByID(ctx, "b1", "c9")
	if err != nil || class.Name != "Class 9" {
		t.Errorf("ClassByID = %+v, %v", class, err)
	}
	if _, err := catalog.ClassByID(ctx, "b1", "nope"); err != domain.ErrClassNotFound {
		t.Errorf("missing class: err = %v", err)
	}
}
