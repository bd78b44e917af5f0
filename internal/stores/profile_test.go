package stores

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"casafront/internal/models"
)

func TestProfileFetch(t *testing.T) {
	client, _ := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/user/8/public-profile" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		writeJSONBody(t, w, models.ProfileDTO{ID: 8, Name: "Carlos", TotalPublications: 4})
	}))
	store := NewProfileStore(client)

	profile, err := store.Fetch(context.Background(), 8)
	if err != nil {
		t.Fatal(err)
	}
	if profile.Name != "Carlos" || profile.TotalPublications != 4 {
		t.Fatalf("profile = %+v", profile)
	}
	if cached, ok := store.Profile(); !ok || cached.ID != 8 {
		t.Fatalf("cache = %+v, %v", cached, ok)
	}
}

func TestProfileFetchFailureClearsCache(t *testing.T) {
	var fail int32
	client, _ := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.LoadInt32(&fail) == 1 {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		writeJSONBody(t, w, models.ProfileDTO{ID: 8, Name: "Carlos"})
	}))
	store := NewProfileStore(client)

	if _, err := store.Fetch(context.Background(), 8); err != nil {
		t.Fatal(err)
	}
	atomic.StoreInt32(&fail, 1)
	if _, err := store.Fetch(context.Background(), 8); err == nil {
		t.Fatal("expected error")
	}
	if _, ok := store.Profile(); ok {
		t.Fatal("stale profile survived a failed fetch")
	}
	if store.Error() == "" {
		t.Fatal("fetch error not recorded")
	}
}

func TestProfileClear(t *testing.T) {
	client, _ := newBackend(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSONBody(t, w, models.ProfileDTO{ID: 8, Name: "Carlos"})
	}))
	store := NewProfileStore(client)
	if _, err := store.Fetch(context.Background(), 8); err != nil {
		t.Fatal(err)
	}
	store.Clear()
	if _, ok := store.Profile(); ok {
		t.Fatal("clear left a profile behind")
	}
}
