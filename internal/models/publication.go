package models

import (
	"strconv"
	"strings"
)

// Publication statuses as the backend reports them.
const (
	PublicationActive   = "ACTIVE"
	PublicationInactive = "INACTIVE"
	PublicationReported = "REPORTED"

	// StatusUnknown is the display fallback when the backend sends no status.
	StatusUnknown = "DESCONOCIDO"
)

const placeholderImage = "/placeholder.svg"

// AvailableTime is a weekly visit slot. DayOfWeek is 1..7 (Monday..Sunday).
type AvailableTime struct {
	ID        int    `json:"id,omitempty"`
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Coordinates of a property on the map.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PublicationDTO is the backend's wire shape for a property listing.
type PublicationDTO struct {
	ID                  int             `json:"id"`
	PropertyImageURLs   []string        `json:"propertyImageUrls"`
	PropertyTitle       *string         `json:"propertyTitle"`
	TypeName            string          `json:"typeName"`
	PropertyPrice       float64         `json:"propertyPrice"`
	PropertyDescription string          `json:"propertyDescription"`
	PropertyAddress     string          `json:"propertyAddress"`
	Neighborhood        string          `json:"neighborhood"`
	Municipality        string          `json:"municipality"`
	Department          string          `json:"department"`
	PropertySize        float64         `json:"propertySize"`
	PropertyBedrooms    int             `json:"propertyBedrooms"`
	PropertyFloors      int             `json:"propertyFloors"`
	PropertyParking     int             `json:"propertyParking"`
	PropertyFurnished   bool            `json:"propertyFurnished"`
	Latitude            float64         `json:"latitude"`
	Longitude           float64         `json:"longitude"`
	UserName            string          `json:"userName"`
	UserID              int             `json:"userId"`
	OwnerID             int             `json:"ownerId"`
	UserEmail           string          `json:"userEmail"`
	UserPhoneNumber     string          `json:"userPhoneNumber"`
	AvailableTimes      []AvailableTime `json:"availableTimes"`
	Status              string          `json:"status"`
	IsReported          bool            `json:"isReported"`
	ReportCount         int             `json:"reportCount"`
	CreatedAt           string          `json:"createdAt"`
	UpdatedAt           string          `json:"updatedAt"`
}

// Publication is the flat view model the pages render.
type Publication struct {
	ID              int             `json:"id"`
	ImageURL        string          `json:"imageUrl"`
	Images          []string        `json:"images"`
	Title           string          `json:"title"`
	PropertyTitle   string          `json:"propertyTitle"`
	TypeName        string          `json:"typeName"`
	Price           string          `json:"price"`
	PropertyPrice   float64         `json:"propertyPrice"`
	Location        string          `json:"location"`
	Description     string          `json:"description"`
	Address         string          `json:"address"`
	Neighborhood    string          `json:"neighborhood"`
	Municipality    string          `json:"municipality"`
	Department      string          `json:"department"`
	Size            float64         `json:"size"`
	Bedrooms        int             `json:"bedrooms"`
	Floors          int             `json:"floors"`
	Parking         int             `json:"parking"`
	Furnished       bool            `json:"furnished"`
	PublisherName   string          `json:"publisherName"`
	PublisherID     int             `json:"publisherId"`
	UserEmail       string          `json:"userEmail,omitempty"`
	UserPhoneNumber string          `json:"userPhoneNumber,omitempty"`
	Coordinates     Coordinates     `json:"coordinates"`
	AvailableTimes  []AvailableTime `json:"availableTimes"`
	Status          string          `json:"status"`
	IsReported      bool            `json:"isReported"`
	ReportCount     int             `json:"reportCount"`
	IsNew           bool            `json:"isNew"`
	Favorited       bool            `json:"favorited"`
	CreatedAt       string          `json:"createdAt,omitempty"`
	UpdatedAt       string          `json:"updatedAt,omitempty"`
}

// PublicationFromDTO maps a backend listing into the view model. The title is
// the raw propertyTitle only; a nil title maps to the empty string so the edit
// form can tell "no title yet" apart from a generated label.
func PublicationFromDTO(dto PublicationDTO) Publication {
	title := ""
	if dto.PropertyTitle != nil {
		title = *dto.PropertyTitle
	}

	return Publication{
		ID:              dto.ID,
		ImageURL:        firstImage(dto.PropertyImageURLs),
		Images:          imagesOrEmpty(dto.PropertyImageURLs),
		Title:           title,
		PropertyTitle:   title,
		TypeName:        dto.TypeName,
		Price:           PriceLabel(dto.PropertyPrice),
		PropertyPrice:   dto.PropertyPrice,
		Location:        dto.Municipality + ", " + dto.Department,
		Description:     dto.PropertyDescription,
		Address:         dto.PropertyAddress,
		Neighborhood:    dto.Neighborhood,
		Municipality:    dto.Municipality,
		Department:      dto.Department,
		Size:            dto.PropertySize,
		Bedrooms:        dto.PropertyBedrooms,
		Floors:          dto.PropertyFloors,
		Parking:         dto.PropertyParking,
		Furnished:       dto.PropertyFurnished,
		PublisherName:   dto.UserName,
		PublisherID:     publisherID(dto),
		UserEmail:       dto.UserEmail,
		UserPhoneNumber: dto.UserPhoneNumber,
		Coordinates:     Coordinates{Lat: dto.Latitude, Lng: dto.Longitude},
		AvailableTimes:  timesOrEmpty(dto.AvailableTimes),
		Status:          statusOrActive(dto.Status),
		IsReported:      dto.IsReported,
		ReportCount:     dto.ReportCount,
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
	}
}

// CardFromDTO maps a listing for card surfaces (home feed). Cards show a
// generated "tipo en barrio" label instead of the raw title.
func CardFromDTO(dto PublicationDTO, isNew bool) Publication {
	p := PublicationFromDTO(dto)
	p.Title = dto.TypeName + " en " + dto.Neighborhood
	p.IsNew = isNew
	return p
}

// DisplayStatus resolves the status label the admin panel shows. A reported
// flag wins over the raw status; an empty status falls back to StatusUnknown.
func DisplayStatus(p Publication) string {
	if p.IsReported || p.Status == PublicationReported {
		return PublicationReported
	}
	if p.Status != "" {
		return p.Status
	}
	return StatusUnknown
}

func publisherID(dto PublicationDTO) int {
	if dto.UserID != 0 {
		return dto.UserID
	}
	return dto.OwnerID
}

func firstImage(urls []string) string {
	if len(urls) > 0 {
		return urls[0]
	}
	return placeholderImage
}

func imagesOrEmpty(urls []string) []string {
	if urls == nil {
		return []string{}
	}
	return urls
}

func timesOrEmpty(times []AvailableTime) []AvailableTime {
	if times == nil {
		return []AvailableTime{}
	}
	return times
}

func statusOrActive(status string) string {
	if status == "" {
		return PublicationActive
	}
	return status
}

// PriceLabel renders a price as the "$230,000" display string.
func PriceLabel(price float64) string {
	s := strconv.FormatFloat(price, 'f', -1, 64)
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	neg := false
	if strings.HasPrefix(intPart, "-") {
		neg = true
		intPart = intPart[1:]
	}
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := "$" + b.String() + frac
	if neg {
		out = "-" + out
	}
	return out
}
