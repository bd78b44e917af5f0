package wizard

import (
	"math"
	"strconv"
	"strings"
)

// Prices travel through the wizard as a digit string counting minor currency
// units: "23000000" is $230,000.00. Entry never touches floating point; the
// decimal form exists only at the I/O boundary.

// Digits strips everything but digits from a raw price entry.
func Digits(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func splitCents(digits string) (string, string) {
	for len(digits) < 3 {
		digits = "0" + digits
	}
	return digits[:len(digits)-2], digits[len(digits)-2:]
}

// FormatPrice renders a cents digit string as the grouped display form,
// "23000000" -> "230,000.00".
func FormatPrice(digits string) string {
	dollars, cents := splitCents(Digits(digits))
	dollars = strings.TrimLeft(dollars, "0")
	if dollars == "" {
		dollars = "0"
	}
	var b strings.Builder
	for i, r := range dollars {
		if i > 0 && (len(dollars)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String() + "." + cents
}

// EncodeForAPI renders a cents digit string as the backend's decimal form,
// "23000000" -> "230000.00".
func EncodeForAPI(digits string) string {
	cleaned := Digits(digits)
	if cleaned == "" {
		return "0.00"
	}
	dollars, cents := splitCents(cleaned)
	dollars = strings.TrimLeft(dollars, "0")
	if dollars == "" {
		dollars = "0"
	}
	return dollars + "." + cents
}

// FromDecimal converts the backend's decimal dollar amount into the wizard's
// cents digit string, 230000.00 -> "23000000".
func FromDecimal(price float64) string {
	if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return ""
	}
	cents := int64(math.Round(price * 100))
	return strconv.FormatInt(cents, 10)
}

// FromLabel recovers a cents digit string from a display label like
// "$350,000" (whole dollars, so two zero cents are appended).
func FromLabel(label string) string {
	digits := Digits(label)
	if digits == "" {
		return ""
	}
	return strings.TrimLeft(digits, "0") + "00"
}

// CentsValue parses a cents digit string into its integer value.
func CentsValue(digits string) int64 {
	cleaned := Digits(digits)
	if cleaned == "" {
		return 0
	}
	v, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0
	}
	return v
}
