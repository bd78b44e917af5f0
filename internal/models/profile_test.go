package models

import "testing"

func TestProfileFromDTOVisibility(t *testing.T) {
	dto := ProfileDTO{
		ID:        8,
		Name:      "Carlos",
		Email:     "carlos@example.com",
		Phone:     "3001234567",
		ShowEmail: true,
		ShowPhone: false,
	}
	p := ProfileFromDTO(dto)
	if p.Email != "carlos@example.com" {
		t.Fatalf("email hidden despite showEmail, got %q", p.Email)
	}
	if p.Phone != "" {
		t.Fatalf("phone leaked despite showPhone=false, got %q", p.Phone)
	}
}

func TestProfileFromDTONameFallback(t *testing.T) {
	p := ProfileFromDTO(ProfileDTO{ID: 8})
	if p.Name != "Usuario" {
		t.Fatalf("name fallback = %q", p.Name)
	}
}

func TestFavoriteFromDTO(t *testing.T) {
	dto := FavoriteDTO{
		PublicationID: 31,
		TypeName:      "Casa",
		Neighborhood:  "Belén",
		PropertyPrice: 180000,
		OwnerName:     "Lucía",
	}
	p := FavoriteFromDTO(dto)
	if p.ID != 31 {
		t.Fatalf("id = %d, want publicationId", p.ID)
	}
	if p.Title != "Casa en Belén" {
		t.Fatalf("title = %q", p.Title)
	}
	if !p.Favorited {
		t.Fatal("favorite entry must be marked favorited")
	}
	if p.PublisherName != "Lucía" {
		t.Fatalf("publisher = %q", p.PublisherName)
	}
	if p.ImageURL != "/placeholder.svg" {
		t.Fatalf("image fallback = %q", p.ImageURL)
	}
}
