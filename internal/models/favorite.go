package models

// FavoriteDTO is the backend's wire shape for a favorited listing. It carries a
// denormalized summary of the publication keyed by publicationId.
type FavoriteDTO struct {
	PublicationID       int             `json:"publicationId"`
	PropertyImageURLs   []string        `json:"propertyImageUrls"`
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
	OwnerName           string          `json:"ownerName"`
	AvailableTimes      []AvailableTime `json:"availableTimes"`
}

// FavoriteFromDTO maps a favorite entry onto the publication card shape, with
// the membership flag already set.
func FavoriteFromDTO(dto FavoriteDTO) Publication {
	return Publication{
		ID:             dto.PublicationID,
		ImageURL:       firstImage(dto.PropertyImageURLs),
		Images:         imagesOrEmpty(dto.PropertyImageURLs),
		Title:          dto.TypeName + " en " + dto.Neighborhood,
		TypeName:       dto.TypeName,
		Price:          PriceLabel(dto.PropertyPrice),
		PropertyPrice:  dto.PropertyPrice,
		Location:       dto.Municipality + ", " + dto.Department,
		Description:    dto.PropertyDescription,
		Address:        dto.PropertyAddress,
		Neighborhood:   dto.Neighborhood,
		Municipality:   dto.Municipality,
		Department:     dto.Department,
		Size:           dto.PropertySize,
		Bedrooms:       dto.PropertyBedrooms,
		Floors:         dto.PropertyFloors,
		Parking:        dto.PropertyParking,
		Furnished:      dto.PropertyFurnished,
		PublisherName:  dto.OwnerName,
		Coordinates:    Coordinates{Lat: dto.Latitude, Lng: dto.Longitude},
		AvailableTimes: timesOrEmpty(dto.AvailableTimes),
		Status:         PublicationActive,
		Favorited:      true,
	}
}

// ToggleResult is what favorite toggles hand back to the caller so the page
// can react immediately without reading store state.
type ToggleResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
