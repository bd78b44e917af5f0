package models

// PublicationUpdate is the multipart payload for editing a publication.
// Numeric fields travel as strings because the backend reads form values;
// PropertyPrice is the decimal string produced at the I/O boundary by the
// wizard's price codec.
type PublicationUpdate struct {
	PropertyTitle       string
	TypeName            string
	PropertyDescription string
	PropertyAddress     string
	Neighborhood        string
	Municipality        string
	Department          string
	Latitude            string
	Longitude           string
	PropertySize        string
	PropertyBedrooms    string
	PropertyFloors      string
	PropertyParking     string
	PropertyFurnished   bool
	PropertyPrice       string
	AvailableTimes      []AvailableTime
	// TimesChanged guards against the backend's orphan-deletion problem on
	// collection updates: untouched slots are simply not sent.
	TimesChanged bool
}
