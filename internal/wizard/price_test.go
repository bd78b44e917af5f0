package wizard

import "testing"

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		digits string
		want   string
	}{
		{"23000000", "230,000.00"},
		{"35000000", "350,000.00"},
		{"1", "0.01"},
		{"99", "0.99"},
		{"100", "1.00"},
		{"123456789", "1,234,567.89"},
		{"", "0.00"},
		{"abc12x3", "1.23"},
	}
	for _, tt := range tests {
		if got := FormatPrice(tt.digits); got != tt.want {
			t.Fatalf("FormatPrice(%q) = %q, want %q", tt.digits, got, tt.want)
		}
	}
}

func TestEncodeForAPI(t *testing.T) {
	tests := []struct {
		digits string
		want   string
	}{
		{"23000000", "230000.00"},
		{"150", "1.50"},
		{"7", "0.07"},
		{"", "0.00"},
		{"0000", "0.00"},
	}
	for _, tt := range tests {
		if got := EncodeForAPI(tt.digits); got != tt.want {
			t.Fatalf("EncodeForAPI(%q) = %q, want %q", tt.digits, got, tt.want)
		}
	}
}

// The backend hands back a decimal; editing must restore the exact digit
// string the user originally typed.
func TestPriceRoundTrip(t *testing.T) {
	original := "23000000"
	encoded := EncodeForAPI(original)
	if encoded != "230000.00" {
		t.Fatalf("encoded = %q", encoded)
	}
	restored := FromDecimal(230000.00)
	if restored != original {
		t.Fatalf("FromDecimal(230000.00) = %q, want %q", restored, original)
	}
	if FormatPrice(restored) != "230,000.00" {
		t.Fatalf("display after round trip = %q", FormatPrice(restored))
	}
}

func TestFromDecimal(t *testing.T) {
	if got := FromDecimal(0.1); got != "10" {
		t.Fatalf("FromDecimal(0.1) = %q, want %q", got, "10")
	}
	if got := FromDecimal(1234.56); got != "123456" {
		t.Fatalf("FromDecimal(1234.56) = %q", got)
	}
	if got := FromDecimal(-5); got != "" {
		t.Fatalf("negative price should map to empty, got %q", got)
	}
}

func TestFromLabel(t *testing.T) {
	if got := FromLabel("$350,000"); got != "35000000" {
		t.Fatalf("FromLabel($350,000) = %q", got)
	}
	if got := FromLabel("sin precio"); got != "" {
		t.Fatalf("FromLabel without digits = %q", got)
	}
}

func TestCentsValue(t *testing.T) {
	if got := CentsValue("23000000"); got != 23000000 {
		t.Fatalf("CentsValue = %d", got)
	}
	if got := CentsValue(""); got != 0 {
		t.Fatalf("CentsValue of empty = %d", got)
	}
}
