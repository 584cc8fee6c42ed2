package services

import "testing"

func TestParsePriceWellFormed(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"$1.234,56", 1234.56},
		{"$2.500,00", 2500},
		{"$0,00", 0},
		{"$ 2.500", 2500},
		{"$999", 999},
		{"1.234.567,89", 1234567.89},
		{"$123,5", 123.5},
	}

	for _, tt := range tests {
		got := ParsePrice(tt.raw)
		if !got.Valid {
			t.Errorf("ParsePrice(%q) = missing; want %.2f", tt.raw, tt.want)
			continue
		}
		if got.Value != tt.want {
			t.Errorf("ParsePrice(%q) = %.2f; want %.2f", tt.raw, got.Value, tt.want)
		}
	}
}

func TestParsePriceMissing(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"Precio no disponible",
		"Sin precio",
		"free",
		"$",
		"12.34",    // dot is a thousands separator, group must be 3 digits
		"1,2,3",    // two decimal separators
		"$-500,00", // negative never parses
		"ฟรี🙂",
	}

	for _, raw := range tests {
		if got := ParsePrice(raw); got.Valid {
			t.Errorf("ParsePrice(%q) = %.2f; want missing", raw, got.Value)
		}
	}
}

func TestParsePriceNeverNegative(t *testing.T) {
	for _, raw := range []string{"$1.234,56", "$0,00", "garbage", "-1", "$5,99"} {
		got := ParsePrice(raw)
		if got.Valid && got.Value < 0 {
			t.Errorf("ParsePrice(%q) = %.2f; negative values must not escape", raw, got.Value)
		}
	}
}
