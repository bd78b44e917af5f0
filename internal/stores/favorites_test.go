package stores

import (
	"context"
	"net/http"
	"reflect"
	"sync/atomic"
	"testing"

	"casafront/internal/api"
	"casafront/internal/models"
)

func favoriteFixtures(ids ...int) []models.FavoriteDTO {
	dtos := make([]models.FavoriteDTO, 0, len(ids))
	for _, id := range ids {
		dtos = append(dtos, models.FavoriteDTO{
			PublicationID: id,
			TypeName:      "Casa",
			Neighborhood:  "Laureles",
			PropertyPrice: 100000,
		})
	}
	return dtos
}

func TestFavoritesFetch(t *testing.T) {
	client, _ := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/favorites/my-favorites" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		writePage(t, w, favoriteFixtures(1, 2, 3), 0, 1, 3, 12)
	}))
	store := NewFavoritesStore(client, &fakeSession{token: "test-token"}, 12)

	if err := store.Fetch(context.Background(), 0); err != nil {
		t.Fatal(err)
	}
	favorites := store.Favorites()
	if len(favorites) != 3 {
		t.Fatalf("favorites = %d", len(favorites))
	}
	if !favorites[0].Favorited {
		t.Fatal("fetched favorites must be marked favorited")
	}
	page, totalPages, totalElements := store.Pagination()
	if page != 0 || totalPages != 1 || totalElements != 3 {
		t.Fatalf("pagination = %d/%d/%d", page, totalPages, totalElements)
	}
	ids := store.FavoriteIDs()
	if !ids[2] || ids[9] {
		t.Fatalf("ids = %v", ids)
	}
}

func TestFavoritesFetchWithoutToken(t *testing.T) {
	var hits int32
	client, _ := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	store := NewFavoritesStore(client, &fakeSession{}, 12)

	err := store.Fetch(context.Background(), 0)
	if !api.IsUnauthorized(err) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if store.Error() != api.MsgNoToken {
		t.Fatalf("store error = %q", store.Error())
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Fatal("fetch without token must not hit the backend")
	}
}

func TestToggleOptimisticSuccess(t *testing.T) {
	var toggles int32
	client, _ := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/favorites/my-favorites":
			writePage(t, w, favoriteFixtures(1, 2, 3), 0, 1, 3, 12)
		case "/favorites/toggle":
			atomic.AddInt32(&toggles, 1)
			writeJSONBody(t, w, map[string]string{"message": "ok"})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	store := NewFavoritesStore(client, &fakeSession{token: "test-token"}, 12)
	if err := store.Fetch(context.Background(), 0); err != nil {
		t.Fatal(err)
	}

	result := store.ToggleOptimistic(context.Background(), 2)
	if !result.Success {
		t.Fatalf("toggle failed: %s", result.Error)
	}
	if atomic.LoadInt32(&toggles) != 1 {
		t.Fatalf("toggle requests = %d", toggles)
	}
	favorites := store.Favorites()
	if len(favorites) != 2 {
		t.Fatalf("favorites after removal = %d", len(favorites))
	}
	for _, fav := range favorites {
		if fav.ID == 2 {
			t.Fatal("removed favorite still present")
		}
	}
	if _, _, totalElements := store.Pagination(); totalElements != 2 {
		t.Fatalf("totalElements = %d", totalElements)
	}
}

// A failed toggle must restore the exact prior state, counters included.
func TestToggleOptimisticRollback(t *testing.T) {
	var fail int32
	client, _ := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/favorites/my-favorites":
			writePage(t, w, favoriteFixtures(1, 2, 3), 1, 2, 15, 12)
		case "/favorites/toggle":
			if atomic.LoadInt32(&fail) == 1 {
				w.WriteHeader(http.StatusInternalServerError)
				writeJSONBody(t, w, map[string]string{"message": "backend caído"})
				return
			}
			writeJSONBody(t, w, map[string]string{"message": "ok"})
		}
	}))
	store := NewFavoritesStore(client, &fakeSession{token: "test-token"}, 12)
	if err := store.Fetch(context.Background(), 1); err != nil {
		t.Fatal(err)
	}

	before := store.Favorites()
	beforePage, beforeTotalPages, beforeTotal := store.Pagination()
	atomic.StoreInt32(&fail, 1)

	result := store.ToggleOptimistic(context.Background(), 2)
	if result.Success {
		t.Fatal("toggle should have failed")
	}
	if result.Error != "backend caído" {
		t.Fatalf("error = %q", result.Error)
	}

	after := store.Favorites()
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("favorites not restored: %v != %v", before, after)
	}
	page, totalPages, total := store.Pagination()
	if page != beforePage || totalPages != beforeTotalPages || total != beforeTotal {
		t.Fatalf("counters not restored: %d/%d/%d", page, totalPages, total)
	}

	// The pending mark must be gone: a retry goes through.
	atomic.StoreInt32(&fail, 0)
	if result := store.ToggleOptimistic(context.Background(), 2); !result.Success {
		t.Fatalf("retry failed: %s", result.Error)
	}
}

func TestToggleOptimisticPageStepsBack(t *testing.T) {
	client, _ := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/favorites/my-favorites":
			writePage(t, w, favoriteFixtures(25), 2, 3, 25, 12)
		case "/favorites/toggle":
			writeJSONBody(t, w, map[string]string{"message": "ok"})
		}
	}))
	store := NewFavoritesStore(client, &fakeSession{token: "test-token"}, 12)
	if err := store.Fetch(context.Background(), 2); err != nil {
		t.Fatal(err)
	}

	if result := store.ToggleOptimistic(context.Background(), 25); !result.Success {
		t.Fatalf("toggle failed: %s", result.Error)
	}
	page, totalPages, total := store.Pagination()
	if total != 24 {
		t.Fatalf("totalElements = %d", total)
	}
	if totalPages != 2 {
		t.Fatalf("totalPages = %d, want ceil(24/12)", totalPages)
	}
	if page != 1 {
		t.Fatalf("page = %d, want step back after emptying the page", page)
	}
}

func TestToggleOptimisticUnknownPublication(t *testing.T) {
	var hits int32
	client, _ := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/favorites/toggle" {
			atomic.AddInt32(&hits, 1)
		}
		writePage(t, w, favoriteFixtures(1), 0, 1, 1, 12)
	}))
	store := NewFavoritesStore(client, &fakeSession{token: "test-token"}, 12)
	if err := store.Fetch(context.Background(), 0); err != nil {
		t.Fatal(err)
	}

	result := store.ToggleOptimistic(context.Background(), 404)
	if result.Success || result.Error != "Propiedad no encontrada" {
		t.Fatalf("result = %+v", result)
	}
	if atomic.LoadInt32(&hits) != 0 {
		t.Fatal("unknown id must not reach the backend")
	}
}

// While a toggle is in flight, a second toggle for the same listing is
// refused without a second request.
func TestToggleOptimisticPendingExclusion(t *testing.T) {
	var toggles int32
	entered := make(chan struct{})
	release := make(chan struct{})
	client, _ := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/favorites/my-favorites":
			writePage(t, w, favoriteFixtures(1, 2), 0, 1, 2, 12)
		case "/favorites/toggle":
			atomic.AddInt32(&toggles, 1)
			close(entered)
			<-release
			writeJSONBody(t, w, map[string]string{"message": "ok"})
		}
	}))
	store := NewFavoritesStore(client, &fakeSession{token: "test-token"}, 12)
	if err := store.Fetch(context.Background(), 0); err != nil {
		t.Fatal(err)
	}

	first := make(chan models.ToggleResult, 1)
	go func() {
		first <- store.ToggleOptimistic(context.Background(), 1)
	}()
	<-entered

	second := store.ToggleOptimistic(context.Background(), 1)
	if second.Success || second.Error != "Operación en progreso" {
		t.Fatalf("second toggle = %+v", second)
	}

	close(release)
	if result := <-first; !result.Success {
		t.Fatalf("first toggle failed: %s", result.Error)
	}
	if atomic.LoadInt32(&toggles) != 1 {
		t.Fatalf("toggle requests = %d, want 1", toggles)
	}
}

func TestToggleWithoutToken(t *testing.T) {
	client, _ := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	}))
	store := NewFavoritesStore(client, &fakeSession{}, 12)
	result := store.ToggleOptimistic(context.Background(), 1)
	if result.Success || result.Error != api.MsgNoToken {
		t.Fatalf("result = %+v", result)
	}
}
