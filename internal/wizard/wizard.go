package wizard

import (
	"fmt"
	"strconv"
	"strings"

	"casafront/internal/models"
)

// Field types mirrored from the publication form.
const (
	FieldText      = "text"
	FieldTextarea  = "textarea"
	FieldNumber    = "number"
	FieldPrice     = "price"
	FieldCheckbox  = "checkbox"
	FieldTimeSlots = "timeSlots"
	FieldMap       = "map"
	FieldFile      = "file"
)

// Field describes one form input and its validation policy.
type Field struct {
	ID            string
	Label         string
	Type          string
	Required      bool
	Min           float64
	AllowDecimals bool
}

// Step is one page of the publication wizard.
type Step struct {
	ID     string
	Title  string
	Fields []Field
}

// Steps of the edit/create publication wizard. The review step validates all
// prior steps instead of carrying fields of its own.
var Steps = []Step{
	{
		ID:    "general",
		Title: "Información General",
		Fields: []Field{
			{ID: "title", Label: "Título del Aviso", Type: FieldText, Required: true},
			{ID: "tipo", Label: "Tipo de Propiedad", Type: FieldText, Required: true},
			{ID: "propertyDescription", Label: "Descripción", Type: FieldTextarea, Required: true},
			{ID: "propertySize", Label: "Tamaño (m²)", Type: FieldNumber, Required: true, Min: 0, AllowDecimals: true},
			{ID: "propertyBedrooms", Label: "Dormitorios", Type: FieldNumber, Required: true, Min: 0},
			{ID: "propertyFloors", Label: "Plantas", Type: FieldNumber, Required: true, Min: 0},
			{ID: "propertyParking", Label: "Estacionamientos", Type: FieldNumber, Required: true, Min: 0},
			{ID: "propertyFurnished", Label: "Amueblado", Type: FieldCheckbox},
		},
	},
	{
		ID:    "location",
		Title: "Ubicación",
		Fields: []Field{
			{ID: "propertyAddress", Label: "Dirección", Type: FieldText, Required: true},
			{ID: "neighborhood", Label: "Barrio", Type: FieldText, Required: true},
			{ID: "locationMap", Label: "Ubicación", Type: FieldMap, Required: true},
		},
	},
	{
		ID:    "price",
		Title: "Precio y Disponibilidad",
		Fields: []Field{
			{ID: "propertyPrice", Label: "Precio", Type: FieldPrice, Required: true},
			{ID: "availableTimes", Label: "Horarios Disponibles", Type: FieldTimeSlots, Required: true},
		},
	},
	{
		ID:    "images",
		Title: "Imágenes",
		Fields: []Field{
			{ID: "files", Label: "Nuevas Imágenes (Opcional)", Type: FieldFile},
		},
	},
	{
		ID:    "review",
		Title: "Revisar Información",
	},
}

// Form holds the wizard's working state. Numeric fields keep the raw entry
// string until submission; the price is a cents digit string.
type Form struct {
	Title        string                 `json:"title"`
	TypeName     string                 `json:"tipo"`
	Description  string                 `json:"propertyDescription"`
	Size         string                 `json:"propertySize"`
	Bedrooms     string                 `json:"propertyBedrooms"`
	Floors       string                 `json:"propertyFloors"`
	Parking      string                 `json:"propertyParking"`
	Furnished    bool                   `json:"propertyFurnished"`
	Address      string                 `json:"propertyAddress"`
	Neighborhood string                 `json:"neighborhood"`
	Municipality string                 `json:"municipality"`
	Department   string                 `json:"department"`
	Latitude     string                 `json:"latitude"`
	Longitude    string                 `json:"longitude"`
	Price        string                 `json:"propertyPrice"`
	TimeSlots    []models.AvailableTime `json:"availableTimes"`
	TimesChanged bool                   `json:"availableTimesChanged"`
	Files        []string               `json:"files"`
}

func (f *Form) value(fieldID string) string {
	switch fieldID {
	case "title":
		return f.Title
	case "tipo":
		return f.TypeName
	case "propertyDescription":
		return f.Description
	case "propertySize":
		return f.Size
	case "propertyBedrooms":
		return f.Bedrooms
	case "propertyFloors":
		return f.Floors
	case "propertyParking":
		return f.Parking
	case "propertyAddress":
		return f.Address
	case "neighborhood":
		return f.Neighborhood
	case "propertyPrice":
		return f.Price
	}
	return ""
}

func validateField(field Field, value string) string {
	if field.Required && strings.TrimSpace(value) == "" {
		return field.Label + " es obligatorio"
	}
	if value == "" {
		return ""
	}

	switch field.Type {
	case FieldText, FieldTextarea:
		trimmed := strings.TrimSpace(value)
		if len(trimmed) == 0 {
			return field.Label + " no puede estar vacío"
		}
		if len([]rune(trimmed)) < 3 {
			return field.Label + " debe tener al menos 3 caracteres"
		}
	case FieldNumber:
		num, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return field.Label + " debe ser un número válido"
		}
		if num < field.Min {
			return fmt.Sprintf("%s debe ser mayor o igual a %v", field.Label, field.Min)
		}
		if num < 0 {
			return field.Label + " no puede ser negativo"
		}
		if !field.AllowDecimals && num != float64(int64(num)) {
			return field.Label + " debe ser un número entero"
		}
	case FieldPrice:
		if CentsValue(value) <= 0 {
			return field.Label + " debe ser un valor válido mayor a 0"
		}
	}
	return ""
}

// ValidateStep checks one step's fields and returns field id -> message for
// every violation. An empty map means the step may advance.
func (f *Form) ValidateStep(stepIndex int) map[string]string {
	if stepIndex < 0 || stepIndex >= len(Steps) {
		return map[string]string{}
	}

	errs := map[string]string{}
	for _, field := range Steps[stepIndex].Fields {
		switch field.Type {
		case FieldTimeSlots:
			if len(f.TimeSlots) == 0 {
				errs["availableTimes"] = "Debe agregar al menos un horario disponible"
			}
		case FieldMap:
			if f.Latitude == "" || f.Longitude == "" {
				errs["locationMap"] = "Debe seleccionar una ubicación en el mapa"
			}
		case FieldFile, FieldCheckbox:
			// optional on edit
		default:
			if msg := validateField(field, f.value(field.ID)); msg != "" {
				errs[field.ID] = msg
			}
		}
	}
	return errs
}

// CanAdvance reports whether the wizard may leave the given step.
func (f *Form) CanAdvance(stepIndex int) bool {
	return len(f.ValidateStep(stepIndex)) == 0
}

// ValidateAll re-validates every step before the review step and returns the
// title of the first failing step, or "" when the form may be submitted.
func (f *Form) ValidateAll() string {
	for i := 0; i < len(Steps)-1; i++ {
		if len(f.ValidateStep(i)) > 0 {
			return Steps[i].Title
		}
	}
	return ""
}

// ToUpdate converts the form into the multipart payload, encoding the price
// into the backend's decimal form at this boundary only.
func (f *Form) ToUpdate() models.PublicationUpdate {
	return models.PublicationUpdate{
		PropertyTitle:       strings.TrimSpace(f.Title),
		TypeName:            f.TypeName,
		PropertyDescription: f.Description,
		PropertyAddress:     f.Address,
		Neighborhood:        f.Neighborhood,
		Municipality:        f.Municipality,
		Department:          f.Department,
		Latitude:            f.Latitude,
		Longitude:           f.Longitude,
		PropertySize:        f.Size,
		PropertyBedrooms:    f.Bedrooms,
		PropertyFloors:      f.Floors,
		PropertyParking:     f.Parking,
		PropertyFurnished:   f.Furnished,
		PropertyPrice:       EncodeForAPI(f.Price),
		AvailableTimes:      f.TimeSlots,
		TimesChanged:        f.TimesChanged,
	}
}

// FormFromPublication pre-fills the wizard from a cached publication, the way
// the edit page seeds its state.
func FormFromPublication(p models.Publication) Form {
	price := FromDecimal(p.PropertyPrice)
	if price == "" || price == "0" {
		price = FromLabel(p.Price)
	}
	return Form{
		Title:        p.PropertyTitle,
		TypeName:     p.TypeName,
		Description:  p.Description,
		Size:         formatEntry(p.Size),
		Bedrooms:     strconv.Itoa(p.Bedrooms),
		Floors:       strconv.Itoa(p.Floors),
		Parking:      strconv.Itoa(p.Parking),
		Furnished:    p.Furnished,
		Address:      p.Address,
		Neighborhood: p.Neighborhood,
		Municipality: p.Municipality,
		Department:   p.Department,
		Latitude:     formatEntry(p.Coordinates.Lat),
		Longitude:    formatEntry(p.Coordinates.Lng),
		Price:        price,
		TimeSlots:    p.AvailableTimes,
	}
}

func formatEntry(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
