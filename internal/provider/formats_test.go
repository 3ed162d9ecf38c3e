package provider

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
)

func newTestFaker() *gofakeit.Faker {
	return gofakeit.NewFaker(rand.NewPCG(1, 1), false)
}

func TestIbanCheckDigits(t *testing.T) {
	tests := []struct {
		country string
		bban    string
		want    string
	}{
		{"DE", "370400440532013000", "89"},
		{"GB", "NWBK60161331926819", "29"},
	}
	for _, tt := range tests {
		if got := ibanCheckDigits(tt.country, tt.bban); got != tt.want {
			t.Errorf("ibanCheckDigits(%q, %q) = %q, want %q", tt.country, tt.bban, got, tt.want)
		}
	}
}

func TestISBNChecksums(t *testing.T) {
	f := newTestFaker()
	for i := 0; i < 50; i++ {
		isbn := strings.ReplaceAll(isbn10(f), "-", "")
		if len(isbn) != 10 {
			t.Fatalf("isbn10 %q has wrong length", isbn)
		}
		sum := 0
		for j, r := range isbn {
			v := int(r - '0')
			if r == 'X' {
				v = 10
			}
			sum += (10 - j) * v
		}
		if sum%11 != 0 {
			t.Errorf("isbn10 %q fails checksum", isbn)
		}

		isbn = strings.ReplaceAll(isbn13(f), "-", "")
		if len(isbn) != 13 {
			t.Fatalf("isbn13 %q has wrong length", isbn)
		}
		sum = 0
		for j, r := range isbn {
			w := 1
			if j%2 == 1 {
				w = 3
			}
			sum += w * int(r-'0')
		}
		if sum%10 != 0 {
			t.Errorf("isbn13 %q fails checksum", isbn)
		}
	}
}

func TestBitString(t *testing.T) {
	s := bitString(newTestFaker(), 4)
	if len(s) != 32 {
		t.Fatalf("expected 32 bits, got %d", len(s))
	}
	if strings.Trim(s, "01") != "" {
		t.Errorf("unexpected characters in %q", s)
	}
}

func TestSentence(t *testing.T) {
	s := sentence(newTestFaker(), 5)
	if !strings.HasSuffix(s, ".") {
		t.Errorf("sentence %q should end with a period", s)
	}
	if got := len(strings.Fields(s)); got != 5 {
		t.Errorf("expected 5 words, got %d in %q", got, s)
	}
}
