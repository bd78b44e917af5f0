package stores

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"casafront/internal/cache"
	"casafront/internal/models"
)

func homeHandler(t *testing.T, hits *int32) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		switch r.URL.Path {
		case "/publications/mostPopularPublications":
			writeJSONBody(t, w, []models.PublicationDTO{
				adminFixture(1, "Casa uno", models.PublicationActive, false),
				adminFixture(2, "Casa dos", models.PublicationActive, false),
				adminFixture(1, "Casa uno repetida", models.PublicationActive, false),
			})
		case "/publications/lastPublications":
			writeJSONBody(t, w, []models.PublicationDTO{
				adminFixture(3, "Casa tres", models.PublicationActive, false),
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})
}

func TestHomeFetch(t *testing.T) {
	var hits int32
	client, _ := newBackend(t, homeHandler(t, &hits))
	store := NewHomeStore(client, cache.NewHomeCache(nil, 0))

	if err := store.Fetch(context.Background()); err != nil {
		t.Fatal(err)
	}
	popular := store.Popular()
	if len(popular) != 2 {
		t.Fatalf("popular = %d, duplicates must be dropped", len(popular))
	}
	if popular[0].Title != "Casa en Laureles" {
		t.Fatalf("card title = %q", popular[0].Title)
	}
	if popular[0].IsNew {
		t.Fatal("popular cards are not marked new")
	}
	latest := store.Latest()
	if len(latest) != 1 || !latest[0].IsNew {
		t.Fatalf("latest = %v", latest)
	}
}

// The feeds load once per session; repeat fetches must not hit the backend.
func TestHomeFetchLatch(t *testing.T) {
	var hits int32
	client, _ := newBackend(t, homeHandler(t, &hits))
	store := NewHomeStore(client, cache.NewHomeCache(nil, 0))

	if err := store.Fetch(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := store.Fetch(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := atomic.LoadInt32(&hits); got != 2 {
		t.Fatalf("backend hits = %d, want one per feed", got)
	}

	// Refresh resets the latch and refetches both feeds.
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got := atomic.LoadInt32(&hits); got != 4 {
		t.Fatalf("backend hits after refresh = %d", got)
	}
}

func TestHomeFetchNotFound(t *testing.T) {
	var hits int32
	var broken int32 = 1
	inner := homeHandler(t, &hits)
	client, _ := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.LoadInt32(&broken) == 1 {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		inner.ServeHTTP(w, r)
	}))
	store := NewHomeStore(client, cache.NewHomeCache(nil, 0))

	if err := store.Fetch(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if store.Error() != "No se encontraron publicaciones" {
		t.Fatalf("error = %q", store.Error())
	}

	// A failed load must not latch; the next fetch retries and recovers.
	atomic.StoreInt32(&broken, 0)
	if err := store.Fetch(context.Background()); err != nil {
		t.Fatal(err)
	}
	if len(store.Popular()) != 2 {
		t.Fatalf("popular after recovery = %d", len(store.Popular()))
	}
	if store.Error() != "" {
		t.Fatalf("error not cleared: %q", store.Error())
	}
}

func TestHomeSyncFavorites(t *testing.T) {
	var hits int32
	client, _ := newBackend(t, homeHandler(t, &hits))
	store := NewHomeStore(client, cache.NewHomeCache(nil, 0))
	if err := store.Fetch(context.Background()); err != nil {
		t.Fatal(err)
	}

	store.SyncFavorites(map[int]bool{2: true, 3: true})
	for _, p := range store.Popular() {
		if p.ID == 2 && !p.Favorited {
			t.Fatal("popular feed not synced")
		}
		if p.ID == 1 && p.Favorited {
			t.Fatal("unfavorited listing marked")
		}
	}
	if latest := store.Latest(); !latest[0].Favorited {
		t.Fatal("latest feed not synced")
	}

	store.UpdateFavoriteStatus(3, false)
	if latest := store.Latest(); latest[0].Favorited {
		t.Fatal("single-listing update not applied")
	}
}
