package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"casafront/internal/models"
)

// FetchFavorites returns one page of the user's favorites.
func (c *Client) FetchFavorites(ctx context.Context, page int) (models.Page, error) {
	var envelope models.Page
	path := "/favorites/my-favorites?page=" + strconv.Itoa(page)
	if err := c.getJSON(ctx, path, &envelope); err != nil {
		return models.Page{}, err
	}
	return envelope, nil
}

// ToggleFavorite flips favorite membership for a publication.
func (c *Client) ToggleFavorite(ctx context.Context, publicationID int) error {
	body := map[string]int{"publicationId": publicationID}
	return c.sendJSON(ctx, http.MethodPost, "/favorites/toggle", body, nil)
}

// CheckFavorite reports whether a publication is in the user's favorites.
func (c *Client) CheckFavorite(ctx context.Context, publicationID int) (bool, error) {
	var resp struct {
		IsFavorite bool `json:"isFavorite"`
	}
	path := fmt.Sprintf("/favorites/check/%d", publicationID)
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return false, err
	}
	return resp.IsFavorite, nil
}
