// Package validation holds the field validators for user-submitted marketplace
// input: Chilean national IDs (RUT), both license plate generations, prices,
// mileage and contact fields.
//
// Validators are pure functions from a raw string to an Outcome. Messages are
// part of the observable contract; screens surface them verbatim, so changing
// a message is a breaking change.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Outcome classifies a single raw input as valid or invalid with a
// human-readable reason. Produced fresh per call.
type Outcome struct {
	Valid   bool
	Message string
}

// Func is a single-field validator.
type Func func(value string) Outcome

func valid() Outcome {
	return Outcome{Valid: true}
}

func invalid(message string) Outcome {
	return Outcome{Valid: false, Message: message}
}

// Price policy bounds, in whole pesos. Policy constants, not derived.
const (
	PriceFloor   = 100_000
	PriceCeiling = 999_999_999
)

// MileageCeiling is the highest plausible odometer reading accepted.
const MileageCeiling = 999_999

// MinimumYear is the oldest model year accepted.
const MinimumYear = 1900

var (
	nationalIDPattern = regexp.MustCompile(`^(\d{1,8})([0-9Kk])$`)
	plateOldPattern   = regexp.MustCompile(`^[A-Z]{4}\d{2}$`)
	plateNewPattern   = regexp.MustCompile(`^([A-Z]{4}\d{2}|[A-Z]{2}\d{4})$`)
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern      = regexp.MustCompile(`^(56)?\d{9}$`)
)

// NationalIDCheckChar computes the mod-11 check character for a RUT body:
// digits are weighted right-to-left with the cyclic sequence 2,3,4,5,6,7 and
// the complement 11-(sum mod 11) maps 11 to "0" and 10 to "K".
func NationalIDCheckChar(body string) string {
	sum := 0
	multiplier := 2
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]-'0') * multiplier
		if multiplier == 7 {
			multiplier = 2
		} else {
			multiplier++
		}
	}

	switch check := 11 - (sum % 11); check {
	case 11:
		return "0"
	case 10:
		return "K"
	default:
		return strconv.Itoa(check)
	}
}

// NationalID validates a Chilean RUT: 1-8 digits plus a check character,
// separators optional. A malformed value and a wrong check digit fail with
// distinct messages so callers can tell a typo from a transcription error.
func NationalID(value string) Outcome {
	if strings.TrimSpace(value) == "" {
		return invalid("National ID is required")
	}

	clean := strings.NewReplacer(".", "", "-", "").Replace(strings.TrimSpace(value))
	match := nationalIDPattern.FindStringSubmatch(clean)
	if match == nil {
		return invalid("Invalid national ID format. Use: 12345678-9")
	}

	body := match[1]
	check := strings.ToUpper(match[2])
	if check != NationalIDCheckChar(body) {
		return invalid("The national ID entered is not valid")
	}
	return valid()
}

// NormalizePlate uppercases and trims a license plate. The normalized form is
// the unique key identifying a physical vehicle.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

// Plate validates a license plate against the union of the old format
// (4 letters + 2 digits) and the new format (which additionally allows
// 2 letters + 4 digits).
func Plate(value string) Outcome {
	if strings.TrimSpace(value) == "" {
		return invalid("License plate is required")
	}

	normalized := NormalizePlate(value)
	if len(normalized) != 6 {
		return invalid("License plate must be 6 characters")
	}

	if !plateOldPattern.MatchString(normalized) && !plateNewPattern.MatchString(normalized) {
		return invalid("Invalid plate format. Valid formats: BBCD12 (4 letters + 2 digits) or BB1234 (2 letters + 4 digits)")
	}
	return valid()
}

// Price validates a listing price against the policy floor and ceiling,
// both inclusive. Prices are whole pesos; fractional input is rejected here
// so that the value the pipeline stores is exactly the value validated.
func Price(value string) Outcome {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return invalid("Price is required")
	}

	price, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil {
		if _, floatErr := strconv.ParseFloat(trimmed, 64); floatErr == nil {
			return invalid("Price must be a whole number")
		}
		return invalid("Price is required")
	}
	if price < PriceFloor {
		return invalid(fmt.Sprintf("Price looks too low. Minimum is %d", PriceFloor))
	}
	if price > PriceCeiling {
		return invalid("Price exceeds the maximum allowed")
	}
	return valid()
}

// Mileage validates an odometer reading. Zero is a legal reading.
func Mileage(value string) Outcome {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return invalid("Mileage is required")
	}

	km, err := strconv.Atoi(trimmed)
	if err != nil {
		return invalid("Mileage is required")
	}
	if km < 0 {
		return invalid("Mileage cannot be negative")
	}
	if km > MileageCeiling {
		return invalid("Mileage looks too high")
	}
	return valid()
}

// Email validates an address against a deliberately permissive
// local@domain.tld shape. The looseness is load-bearing: existing accounts
// were accepted under this rule, so tightening it would lock users out.
func Email(value string) Outcome {
	if value == "" {
		return invalid("Email is required")
	}
	if !emailPattern.MatchString(value) {
		return invalid("Email format is not valid")
	}
	return valid()
}

// Phone validates a Chilean mobile number, country code optional. Spaces,
// dashes and plus signs are stripped before matching.
func Phone(value string) Outcome {
	if strings.TrimSpace(value) == "" {
		return invalid("Phone is required")
	}

	clean := strings.NewReplacer(" ", "", "-", "", "+", "").Replace(value)
	if !phonePattern.MatchString(clean) {
		return invalid("Invalid phone format. Use: +56 9 XXXX XXXX")
	}
	return valid()
}

// Year validates a model year against the current calendar year.
func Year(value string) Outcome {
	return YearIn(time.Now().Year())(value)
}

// YearIn returns a model-year validator pinned to the given current year,
// accepting at most one year ahead of it.
func YearIn(currentYear int) Func {
	return func(value string) Outcome {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			return invalid("Year is required")
		}

		year, err := strconv.Atoi(trimmed)
		if err != nil {
			return invalid("Year is required")
		}
		if year < MinimumYear {
			return invalid("Year is too old")
		}
		if year > currentYear+1 {
			return invalid("Year cannot be in the future")
		}
		return valid()
	}
}

// Required returns a presence validator whose message names the field.
func Required(label string) Func {
	return func(value string) Outcome {
		if strings.TrimSpace(value) == "" {
			return invalid(fmt.Sprintf("%s is required", label))
		}
		return valid()
	}
}

// MinLength returns a lower length-bound validator whose message names the field.
func MinLength(label string, min int) Func {
	return func(value string) Outcome {
		if len(value) < min {
			return invalid(fmt.Sprintf("%s must be at least %d characters", label, min))
		}
		return valid()
	}
}

// MaxLength returns an upper length-bound validator whose message names the field.
func MaxLength(label string, max int) Func {
	return func(value string) Outcome {
		if len(value) > max {
			return invalid(fmt.Sprintf("%s cannot exceed %d characters", label, max))
		}
		return valid()
	}
}
