package api

import (
	"context"
	"fmt"

	"casafront/internal/models"
)

// FetchPublicProfile returns a user's public profile. The backend decides how
// much contact information the requester may see.
func (c *Client) FetchPublicProfile(ctx context.Context, userID int) (models.ProfileDTO, error) {
	var dto models.ProfileDTO
	path := fmt.Sprintf("/user/%d/public-profile", userID)
	if err := c.getJSON(ctx, path, &dto); err != nil {
		return models.ProfileDTO{}, err
	}
	return dto, nil
}
