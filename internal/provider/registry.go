package provider

import (
	"fmt"
	"net/netip"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

// Func produces one fake value. now is fixed for the whole batch.
type Func func(f *gofakeit.Faker, now time.Time) string

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04:05"
	isoLayout      = "2006-01-02T15:04:05"
	timeLayout     = "15:04:05"
)

var (
	epoch           = time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC)
	freeDomains     = []string{"gmail.com", "yahoo.com", "hotmail.com", "outlook.com", "proton.me"}
	safeDomains     = []string{"example.com", "example.net", "example.org"}
	hostPrefixes    = []string{"web", "db", "lb", "srv", "mail", "email", "desktop", "laptop"}
	unixDevices     = []string{"sd", "vd", "xvd"}
	linuxProcessors = []string{"i686", "x86_64"}
	windowsTokens   = []string{"Windows NT 10.0", "Windows NT 6.3", "Windows NT 6.2", "Windows NT 6.1", "Windows NT 6.0"}
	callingCodes    = []string{"+1", "+7", "+20", "+27", "+30", "+31", "+33", "+34", "+39", "+44", "+46", "+49", "+52", "+55", "+61", "+81", "+82", "+86", "+91", "+234"}
)

var registry = map[string]Func{
	// address
	"address":         func(f *gofakeit.Faker, _ time.Time) string { return f.Address().Address },
	"building_number": func(f *gofakeit.Faker, _ time.Time) string { return f.StreetNumber() },
	"city":            func(f *gofakeit.Faker, _ time.Time) string { return f.City() },
	"city_suffix":     func(f *gofakeit.Faker, _ time.Time) string { return f.RandomString(citySuffixes) },
	"country":         func(f *gofakeit.Faker, _ time.Time) string { return f.Country() },
	"country_code":    func(f *gofakeit.Faker, _ time.Time) string { return f.CountryAbr() },
	"postcode":        func(f *gofakeit.Faker, _ time.Time) string { return f.Zip() },
	"state":           func(f *gofakeit.Faker, _ time.Time) string { return f.State() },
	"state_abbr":      func(f *gofakeit.Faker, _ time.Time) string { return f.StateAbr() },
	"street_address":  func(f *gofakeit.Faker, _ time.Time) string { return f.Street() },
	"street_name":     func(f *gofakeit.Faker, _ time.Time) string { return f.StreetName() },
	"street_suffix":   func(f *gofakeit.Faker, _ time.Time) string { return f.StreetSuffix() },

	// automotive
	"license_plate": func(f *gofakeit.Faker, _ time.Time) string {
		return strings.ToUpper(f.Lexify("???")) + "-" + f.Numerify("####")
	},

	// bank
	"bban":    func(f *gofakeit.Faker, _ time.Time) string { return bban(f) },
	"iban":    func(f *gofakeit.Faker, _ time.Time) string { return iban(f) },
	"swift8":  func(f *gofakeit.Faker, _ time.Time) string { return swift8(f) },
	"swift11": func(f *gofakeit.Faker, _ time.Time) string { return swift8(f) + f.Numerify("###") },

	// color
	"color_name": func(f *gofakeit.Faker, _ time.Time) string { return f.Color() },
	"hex_color":  func(f *gofakeit.Faker, _ time.Time) string { return f.HexColor() },
	"rgb_color":  func(f *gofakeit.Faker, _ time.Time) string { return joinInts(f.RGBColor(), ",") },

	// company
	"bs":             func(f *gofakeit.Faker, _ time.Time) string { return f.BS() },
	"catch_phrase":   func(f *gofakeit.Faker, _ time.Time) string { return f.Slogan() },
	"company":        func(f *gofakeit.Faker, _ time.Time) string { return f.Company() },
	"company_suffix": func(f *gofakeit.Faker, _ time.Time) string { return f.CompanySuffix() },

	// credit card
	"credit_card_full": func(f *gofakeit.Faker, _ time.Time) string {
		cc := f.CreditCard()
		return fmt.Sprintf("%s %s %s CVC: %s", cc.Type, cc.Number, cc.Exp, cc.Cvv)
	},
	"credit_card_number":        func(f *gofakeit.Faker, _ time.Time) string { return f.CreditCard().Number },
	"credit_card_provider":      func(f *gofakeit.Faker, _ time.Time) string { return f.CreditCardType() },
	"credit_card_security_code": func(f *gofakeit.Faker, _ time.Time) string { return f.CreditCardCvv() },

	// currency
	"currency_code": func(f *gofakeit.Faker, _ time.Time) string { return f.CurrencyShort() },
	"currency_name": func(f *gofakeit.Faker, _ time.Time) string { return f.CurrencyLong() },
	"pricetag":      func(f *gofakeit.Faker, _ time.Time) string { return fmt.Sprintf("$%.2f", f.Price(1, 10000)) },

	// date and time
	"date": func(f *gofakeit.Faker, now time.Time) string {
		return f.DateRange(epoch, now).Format(dateLayout)
	},
	"date_of_birth": func(f *gofakeit.Faker, now time.Time) string {
		return f.DateRange(now.AddDate(-115, 0, 0), now).Format(dateLayout)
	},
	"date_this_month": func(f *gofakeit.Faker, now time.Time) string {
		return f.DateRange(startOfMonth(now), now).Format(dateLayout)
	},
	"date_this_year": func(f *gofakeit.Faker, now time.Time) string {
		return f.DateRange(startOfYear(now), now).Format(dateLayout)
	},
	"date_this_decade": func(f *gofakeit.Faker, now time.Time) string {
		return f.DateRange(startOfDecade(now), now).Format(dateLayout)
	},
	"date_time": func(f *gofakeit.Faker, now time.Time) string {
		return f.DateRange(epoch, now).Format(dateTimeLayout)
	},
	"date_time_this_month": func(f *gofakeit.Faker, now time.Time) string {
		return f.DateRange(startOfMonth(now), now).Format(dateTimeLayout)
	},
	"date_time_this_year": func(f *gofakeit.Faker, now time.Time) string {
		return f.DateRange(startOfYear(now), now).Format(dateTimeLayout)
	},
	"date_time_this_decade": func(f *gofakeit.Faker, now time.Time) string {
		return f.DateRange(startOfDecade(now), now).Format(dateTimeLayout)
	},
	"day_of_month": func(f *gofakeit.Faker, _ time.Time) string {
		return fmt.Sprintf("%02d", f.Day())
	},
	"day_of_week": func(f *gofakeit.Faker, _ time.Time) string {
		return f.WeekDay()
	},
	"future_date": func(f *gofakeit.Faker, now time.Time) string {
		return f.DateRange(now.AddDate(0, 0, 1), now.AddDate(0, 0, 30)).Format(dateLayout)
	},
	"future_datetime": func(f *gofakeit.Faker, now time.Time) string {
		return f.DateRange(now.Add(time.Second), now.AddDate(0, 0, 30)).Format(dateTimeLayout)
	},
	"iso8601": func(f *gofakeit.Faker, now time.Time) string {
		return f.DateRange(epoch, now).Format(isoLayout)
	},
	"month": func(f *gofakeit.Faker, _ time.Time) string {
		return fmt.Sprintf("%02d", f.Month())
	},
	"month_name": func(f *gofakeit.Faker, _ time.Time) string {
		return f.MonthString()
	},
	"past_date": func(f *gofakeit.Faker, now time.Time) string {
		return f.DateRange(now.AddDate(0, 0, -30), now.AddDate(0, 0, -1)).Format(dateLayout)
	},
	"past_datetime": func(f *gofakeit.Faker, now time.Time) string {
		return f.DateRange(now.AddDate(0, 0, -30), now.Add(-time.Second)).Format(dateTimeLayout)
	},
	"time": func(f *gofakeit.Faker, now time.Time) string {
		return f.DateRange(epoch, now).Format(timeLayout)
	},
	"timezone": func(f *gofakeit.Faker, _ time.Time) string {
		return f.TimeZoneRegion()
	},
	"unix_time": func(f *gofakeit.Faker, now time.Time) string {
		return strconv.FormatInt(f.DateRange(epoch, now).Unix(), 10)
	},
	"year": func(f *gofakeit.Faker, now time.Time) string {
		return strconv.Itoa(f.Number(1970, now.Year()))
	},

	// geo
	"coordinate": func(f *gofakeit.Faker, _ time.Time) string { return formatCoord(f.Float64Range(-180, 180)) },
	"latitude":   func(f *gofakeit.Faker, _ time.Time) string { return formatCoord(f.Latitude()) },
	"latlng": func(f *gofakeit.Faker, _ time.Time) string {
		return fmt.Sprintf("(%s, %s)", formatCoord(f.Latitude()), formatCoord(f.Longitude()))
	},
	"longitude": func(f *gofakeit.Faker, _ time.Time) string { return formatCoord(f.Longitude()) },

	// file
	"file_extension": func(f *gofakeit.Faker, _ time.Time) string { return f.FileExtension() },
	"file_name":      func(f *gofakeit.Faker, _ time.Time) string { return strings.ToLower(f.Word()) + "." + f.FileExtension() },
	"file_path": func(f *gofakeit.Faker, _ time.Time) string {
		return "/" + strings.ToLower(f.Word()) + "/" + strings.ToLower(f.Word()) + "." + f.FileExtension()
	},
	"mime_type":   func(f *gofakeit.Faker, _ time.Time) string { return f.FileMimeType() },
	"unix_device": func(f *gofakeit.Faker, _ time.Time) string { return unixDevice(f) },
	"unix_partition": func(f *gofakeit.Faker, _ time.Time) string {
		return unixDevice(f) + strconv.Itoa(f.Number(1, 9))
	},

	// internet
	"ascii_company_email": func(f *gofakeit.Faker, _ time.Time) string { return companyEmail(f) },
	"ascii_email":         func(f *gofakeit.Faker, _ time.Time) string { return f.Email() },
	"ascii_free_email":    func(f *gofakeit.Faker, _ time.Time) string { return freeEmail(f) },
	"ascii_safe_email":    func(f *gofakeit.Faker, _ time.Time) string { return safeEmail(f) },
	"company_email":       func(f *gofakeit.Faker, _ time.Time) string { return companyEmail(f) },
	"domain_name":         func(f *gofakeit.Faker, _ time.Time) string { return f.DomainName() },
	"domain_word": func(f *gofakeit.Faker, _ time.Time) string {
		word, _, _ := strings.Cut(f.DomainName(), ".")
		return word
	},
	"email":             func(f *gofakeit.Faker, _ time.Time) string { return f.Email() },
	"free_email":        func(f *gofakeit.Faker, _ time.Time) string { return freeEmail(f) },
	"free_email_domain": func(f *gofakeit.Faker, _ time.Time) string { return f.RandomString(freeDomains) },
	"hostname": func(f *gofakeit.Faker, _ time.Time) string {
		return f.RandomString(hostPrefixes) + "-" + f.Numerify("##") + "." + f.DomainName()
	},
	"http_method": func(f *gofakeit.Faker, _ time.Time) string { return f.HTTPMethod() },
	"image_url": func(f *gofakeit.Faker, _ time.Time) string {
		return fmt.Sprintf("https://picsum.photos/%d/%d", f.Number(100, 1024), f.Number(100, 1024))
	},
	"ipv4":         func(f *gofakeit.Faker, _ time.Time) string { return f.IPv4Address() },
	"ipv4_private": func(f *gofakeit.Faker, _ time.Time) string { return privateIPv4(f) },
	"ipv4_public":  func(f *gofakeit.Faker, _ time.Time) string { return publicIPv4(f) },
	"ipv6":         func(f *gofakeit.Faker, _ time.Time) string { return f.IPv6Address() },
	"mac_address":  func(f *gofakeit.Faker, _ time.Time) string { return f.MacAddress() },
	"port_number":  func(f *gofakeit.Faker, _ time.Time) string { return strconv.Itoa(f.Number(0, 65535)) },
	"safe_email":   func(f *gofakeit.Faker, _ time.Time) string { return safeEmail(f) },
	"slug": func(f *gofakeit.Faker, _ time.Time) string {
		return strings.ToLower(f.Word() + "-" + f.Word() + "-" + f.Word())
	},
	"uri":       func(f *gofakeit.Faker, _ time.Time) string { return f.URL() },
	"user_name": func(f *gofakeit.Faker, _ time.Time) string { return f.Username() },

	// isbn
	"isbn10": func(f *gofakeit.Faker, _ time.Time) string { return isbn10(f) },
	"isbn13": func(f *gofakeit.Faker, _ time.Time) string { return isbn13(f) },

	// job
	"job": func(f *gofakeit.Faker, _ time.Time) string { return f.JobTitle() },

	// lorem
	"paragraph": func(f *gofakeit.Faker, _ time.Time) string { return paragraph(f, f.Number(3, 5)) },
	"sentence":  func(f *gofakeit.Faker, _ time.Time) string { return sentence(f, f.Number(4, 10)) },
	"text": func(f *gofakeit.Faker, _ time.Time) string {
		return paragraph(f, f.Number(2, 3)) + " " + paragraph(f, f.Number(2, 3))
	},
	"word": func(f *gofakeit.Faker, _ time.Time) string { return strings.ToLower(f.Word()) },

	// misc
	"binary":   func(f *gofakeit.Faker, _ time.Time) string { return bitString(f, 4) },
	"md5":      func(f *gofakeit.Faker, _ time.Time) string { return md5Hex(f) },
	"password": func(f *gofakeit.Faker, _ time.Time) string { return f.Password(true, true, true, true, false, 10) },
	"sha1":     func(f *gofakeit.Faker, _ time.Time) string { return sha1Hex(f) },
	"sha256":   func(f *gofakeit.Faker, _ time.Time) string { return sha256Hex(f) },
	"uuid4": func(f *gofakeit.Faker, _ time.Time) string {
		return uuid.Must(uuid.NewRandomFromReader(fakerReader{f})).String()
	},

	// person
	"first_name":        func(f *gofakeit.Faker, _ time.Time) string { return f.FirstName() },
	"first_name_female": func(f *gofakeit.Faker, _ time.Time) string { return f.RandomString(femaleFirstNames) },
	"first_name_male":   func(f *gofakeit.Faker, _ time.Time) string { return f.RandomString(maleFirstNames) },
	"last_name":         func(f *gofakeit.Faker, _ time.Time) string { return f.LastName() },
	"last_name_female":  func(f *gofakeit.Faker, _ time.Time) string { return f.RandomString(femaleLastNames) },
	"last_name_male":    func(f *gofakeit.Faker, _ time.Time) string { return f.RandomString(maleLastNames) },
	"name":              func(f *gofakeit.Faker, _ time.Time) string { return f.Name() },
	"name_female": func(f *gofakeit.Faker, _ time.Time) string {
		return f.RandomString(femaleFirstNames) + " " + f.RandomString(femaleLastNames)
	},
	"name_male": func(f *gofakeit.Faker, _ time.Time) string {
		return f.RandomString(maleFirstNames) + " " + f.RandomString(maleLastNames)
	},
	"name_prefix": func(f *gofakeit.Faker, _ time.Time) string { return f.NamePrefix() },
	"name_suffix": func(f *gofakeit.Faker, _ time.Time) string { return f.NameSuffix() },
	"ssn":         func(f *gofakeit.Faker, _ time.Time) string { return f.SSN() },

	// phone
	"country_calling_code": func(f *gofakeit.Faker, _ time.Time) string { return f.RandomString(callingCodes) },
	"msisdn":               func(f *gofakeit.Faker, _ time.Time) string { return f.Numerify("#############") },
	"phone_number":         func(f *gofakeit.Faker, _ time.Time) string { return f.PhoneFormatted() },

	// user agent
	"android_platform_token": func(f *gofakeit.Faker, _ time.Time) string {
		return fmt.Sprintf("Android %d.%d", f.Number(5, 14), f.Number(0, 3))
	},
	"chrome":  func(f *gofakeit.Faker, _ time.Time) string { return f.ChromeUserAgent() },
	"firefox": func(f *gofakeit.Faker, _ time.Time) string { return f.FirefoxUserAgent() },
	"ios_platform_token": func(f *gofakeit.Faker, _ time.Time) string {
		return fmt.Sprintf("iPhone; CPU iPhone OS %d_%d like Mac OS X", f.Number(12, 17), f.Number(0, 6))
	},
	"linux_platform_token": func(f *gofakeit.Faker, _ time.Time) string {
		return "X11; Linux " + f.RandomString(linuxProcessors)
	},
	"linux_processor": func(f *gofakeit.Faker, _ time.Time) string { return f.RandomString(linuxProcessors) },
	"mac_platform_token": func(f *gofakeit.Faker, _ time.Time) string {
		return fmt.Sprintf("Macintosh; Intel Mac OS X 10_%d_%d", f.Number(10, 15), f.Number(0, 9))
	},
	"opera":                  func(f *gofakeit.Faker, _ time.Time) string { return f.OperaUserAgent() },
	"safari":                 func(f *gofakeit.Faker, _ time.Time) string { return f.SafariUserAgent() },
	"user_agent":             func(f *gofakeit.Faker, _ time.Time) string { return f.UserAgent() },
	"windows_platform_token": func(f *gofakeit.Faker, _ time.Time) string { return f.RandomString(windowsTokens) },
}

// Names returns the registered provider names in ascending order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func startOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

func startOfDecade(t time.Time) time.Time {
	return time.Date(t.Year()-t.Year()%10, time.January, 1, 0, 0, 0, 0, t.Location())
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func joinInts(values []int, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, sep)
}

func unixDevice(f *gofakeit.Faker) string {
	return "/dev/" + f.RandomString(unixDevices) + strings.ToLower(f.Letter())
}

func localPart(f *gofakeit.Faker) string {
	return strings.ToLower(f.Username())
}

func freeEmail(f *gofakeit.Faker) string {
	return localPart(f) + "@" + f.RandomString(freeDomains)
}

func safeEmail(f *gofakeit.Faker) string {
	return localPart(f) + "@" + f.RandomString(safeDomains)
}

func companyEmail(f *gofakeit.Faker) string {
	return localPart(f) + "@" + f.DomainName()
}

func privateIPv4(f *gofakeit.Faker) string {
	switch f.Number(0, 2) {
	case 0:
		return fmt.Sprintf("10.%d.%d.%d", f.Number(0, 255), f.Number(0, 255), f.Number(1, 254))
	case 1:
		return fmt.Sprintf("172.%d.%d.%d", f.Number(16, 31), f.Number(0, 255), f.Number(1, 254))
	default:
		return fmt.Sprintf("192.168.%d.%d", f.Number(0, 255), f.Number(1, 254))
	}
}

// publicIPv4 draws until the address is globally routable. The draw sequence
// depends only on the source, so it stays reproducible.
func publicIPv4(f *gofakeit.Faker) string {
	for {
		addr, err := netip.ParseAddr(f.IPv4Address())
		if err != nil {
			continue
		}
		if addr.IsGlobalUnicast() && !addr.IsPrivate() {
			return addr.String()
		}
	}
}
