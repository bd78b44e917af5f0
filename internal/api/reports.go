package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"casafront/internal/models"
)

// FetchReports returns one page of user reports for the moderation panel.
func (c *Client) FetchReports(ctx context.Context, page, size int) (models.Page, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("size", strconv.Itoa(size))
	var envelope models.Page
	if err := c.getJSON(ctx, "/reports/admin/all?"+params.Encode(), &envelope); err != nil {
		return models.Page{}, err
	}
	return envelope, nil
}

// ResolveReport applies an admin action to a pending report. Approving a
// report may also change the reported publication's status server-side.
func (c *Client) ResolveReport(ctx context.Context, reportID int, action, feedback string) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	path := fmt.Sprintf("/reports/%d/resolve", reportID)
	body := map[string]string{"action": action, "feedback": feedback}
	if err := c.sendJSON(ctx, http.MethodPut, path, body, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
