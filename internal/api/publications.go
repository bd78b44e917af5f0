package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"casafront/internal/models"
)

// FetchPublications returns the public feed of listings.
func (c *Client) FetchPublications(ctx context.Context) ([]models.PublicationDTO, error) {
	var dtos []models.PublicationDTO
	if err := c.getJSON(ctx, "/publications/All", &dtos); err != nil {
		return nil, err
	}
	return dtos, nil
}

// FetchPublicationByID fetches one listing.
func (c *Client) FetchPublicationByID(ctx context.Context, id int) (models.PublicationDTO, error) {
	var dto models.PublicationDTO
	path := "/publications/publicationById?publicationId=" + strconv.Itoa(id)
	if err := c.getJSON(ctx, path, &dto); err != nil {
		return models.PublicationDTO{}, err
	}
	return dto, nil
}

// SearchPublications runs a server-side filtered search.
func (c *Client) SearchPublications(ctx context.Context, filters map[string]string) ([]models.PublicationDTO, error) {
	params := url.Values{}
	for key, value := range filters {
		if value != "" {
			params.Set(key, value)
		}
	}
	var dtos []models.PublicationDTO
	if err := c.getJSON(ctx, "/publications?"+params.Encode(), &dtos); err != nil {
		return nil, err
	}
	return dtos, nil
}

// FetchPopularPublications returns the home-page popular feed.
func (c *Client) FetchPopularPublications(ctx context.Context) ([]models.PublicationDTO, error) {
	var dtos []models.PublicationDTO
	if err := c.getJSON(ctx, "/publications/mostPopularPublications", &dtos); err != nil {
		return nil, err
	}
	return dtos, nil
}

// FetchLatestPublications returns the home-page newest feed.
func (c *Client) FetchLatestPublications(ctx context.Context) ([]models.PublicationDTO, error) {
	var dtos []models.PublicationDTO
	if err := c.getJSON(ctx, "/publications/lastPublications", &dtos); err != nil {
		return nil, err
	}
	return dtos, nil
}

// FetchAdminPublications returns one page of listings in any status for the
// moderation panel. statusFilter is omitted for ALL.
func (c *Client) FetchAdminPublications(ctx context.Context, page, size int, statusFilter string) (models.Page, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	params.Set("size", strconv.Itoa(size))
	if statusFilter != "" && statusFilter != "ALL" {
		params.Set("status", statusFilter)
	}
	var envelope models.Page
	if err := c.getJSON(ctx, "/publications/admin/all?"+params.Encode(), &envelope); err != nil {
		return models.Page{}, err
	}
	return envelope, nil
}

// UpdatePublicationStatus asks the backend to change a listing's status.
func (c *Client) UpdatePublicationStatus(ctx context.Context, id int, status string) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	path := fmt.Sprintf("/publications/admin/%d/status", id)
	body := map[string]string{"status": status}
	if err := c.sendJSON(ctx, http.MethodPut, path, body, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// UpdatePublication sends the edit-wizard form as multipart and returns the
// updated listing.
func (c *Client) UpdatePublication(ctx context.Context, id int, form models.PublicationUpdate) (models.PublicationDTO, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := writeUpdateForm(writer, form); err != nil {
		return models.PublicationDTO{}, &Error{Kind: KindServer, Message: err.Error()}
	}
	if err := writer.Close(); err != nil {
		return models.PublicationDTO{}, &Error{Kind: KindServer, Message: err.Error()}
	}

	path := fmt.Sprintf("%s/publications/%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, path, &buf)
	if err != nil {
		return models.PublicationDTO{}, &Error{Kind: KindNetwork, Message: MsgNoConnection}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var dto models.PublicationDTO
	if err := c.do(req, &dto); err != nil {
		return models.PublicationDTO{}, err
	}
	return dto, nil
}

func writeUpdateForm(writer *multipart.Writer, form models.PublicationUpdate) error {
	fields := map[string]string{
		"propertyAddress":     form.PropertyAddress,
		"propertyTitle":       form.PropertyTitle,
		"typeName":            form.TypeName,
		"neighborhood":        form.Neighborhood,
		"municipality":        form.Municipality,
		"department":          form.Department,
		"longitude":           form.Longitude,
		"latitude":            form.Latitude,
		"propertySize":        form.PropertySize,
		"propertyBedrooms":    form.PropertyBedrooms,
		"propertyFloors":      form.PropertyFloors,
		"propertyParking":     form.PropertyParking,
		"propertyFurnished":   strconv.FormatBool(form.PropertyFurnished),
		"PropertyDescription": form.PropertyDescription,
		"PropertyPrice":       form.PropertyPrice,
	}
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return err
		}
	}

	// Untouched time slots are not sent at all; resending them makes the
	// backend orphan-delete and recreate the collection.
	if !form.TimesChanged {
		return nil
	}
	if len(form.AvailableTimes) == 0 {
		return writer.WriteField("availableTimes", "[]")
	}
	for i, slot := range form.AvailableTimes {
		prefix := fmt.Sprintf("availableTimes[%d]", i)
		if slot.ID != 0 {
			if err := writer.WriteField(prefix+".id", strconv.Itoa(slot.ID)); err != nil {
				return err
			}
		}
		if err := writer.WriteField(prefix+".dayOfWeek", strconv.Itoa(slot.DayOfWeek)); err != nil {
			return err
		}
		if err := writer.WriteField(prefix+".startTime", slot.StartTime); err != nil {
			return err
		}
		if err := writer.WriteField(prefix+".endTime", slot.EndTime); err != nil {
			return err
		}
	}
	return nil
}

// CreateReport flags a publication on behalf of the current user.
func (c *Client) CreateReport(ctx context.Context, report models.NewReport) error {
	return c.sendJSON(ctx, http.MethodPost, "/reports/create", report, nil)
}
