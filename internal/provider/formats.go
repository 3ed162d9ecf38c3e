package provider

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
)

// fakerReader feeds uuid.NewRandomFromReader from the seeded source.
type fakerReader struct{ f *gofakeit.Faker }

func (r fakerReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.f.Uint8()
	}
	return len(p), nil
}

func randomBytes(f *gofakeit.Faker, n int) []byte {
	b := make([]byte, n)
	_, _ = fakerReader{f}.Read(b)
	return b
}

func md5Hex(f *gofakeit.Faker) string {
	sum := md5.Sum(randomBytes(f, 32))
	return hex.EncodeToString(sum[:])
}

func sha1Hex(f *gofakeit.Faker) string {
	sum := sha1.Sum(randomBytes(f, 32))
	return hex.EncodeToString(sum[:])
}

func sha256Hex(f *gofakeit.Faker) string {
	sum := sha256.Sum256(randomBytes(f, 32))
	return hex.EncodeToString(sum[:])
}

func bitString(f *gofakeit.Faker, n int) string {
	var sb strings.Builder
	for _, b := range randomBytes(f, n) {
		fmt.Fprintf(&sb, "%08b", b)
	}
	return sb.String()
}

func sentence(f *gofakeit.Faker, words int) string {
	parts := make([]string, words)
	for i := range parts {
		parts[i] = strings.ToLower(f.Word())
	}
	s := strings.Join(parts, " ")
	return strings.ToUpper(s[:1]) + s[1:] + "."
}

func paragraph(f *gofakeit.Faker, sentences int) string {
	parts := make([]string, sentences)
	for i := range parts {
		parts[i] = sentence(f, f.Number(4, 10))
	}
	return strings.Join(parts, " ")
}

// German layout: 8 digit bank code followed by a 10 digit account number.
func bban(f *gofakeit.Faker) string {
	return f.Numerify("##################")
}

func iban(f *gofakeit.Faker) string {
	const country = "DE"
	b := bban(f)
	return country + ibanCheckDigits(country, b) + b
}

// ibanCheckDigits implements ISO 13616 mod 97-10.
func ibanCheckDigits(country, bban string) string {
	rearranged := bban + country + "00"
	rem := 0
	for _, r := range rearranged {
		var v int
		switch {
		case r >= '0' && r <= '9':
			v = int(r - '0')
			rem = (rem*10 + v) % 97
			continue
		case r >= 'A' && r <= 'Z':
			v = int(r-'A') + 10
		}
		rem = (rem*100 + v) % 97
	}
	return fmt.Sprintf("%02d", 98-rem)
}

func swift8(f *gofakeit.Faker) string {
	return strings.ToUpper(f.Lexify("????")) + f.CountryAbr() + strings.ToUpper(f.Lexify("??"))
}

func isbn10(f *gofakeit.Faker) string {
	body := f.Numerify("#########")
	sum := 0
	for i, r := range body {
		sum += (10 - i) * int(r-'0')
	}
	check := (11 - sum%11) % 11
	digit := strconv.Itoa(check)
	if check == 10 {
		digit = "X"
	}
	return body[:1] + "-" + body[1:4] + "-" + body[4:] + "-" + digit
}

func isbn13(f *gofakeit.Faker) string {
	body := "978" + f.Numerify("#########")
	sum := 0
	for i, r := range body {
		w := 1
		if i%2 == 1 {
			w = 3
		}
		sum += w * int(r-'0')
	}
	check := (10 - sum%10) % 10
	return body[:3] + "-" + body[3:4] + "-" + body[4:7] + "-" + body[7:] + "-" + strconv.Itoa(check)
}
