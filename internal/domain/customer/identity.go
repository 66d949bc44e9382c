package customer

import (
	"strconv"
	"strings"
	"time"

	"cable-billing/internal/pkg/apperrors"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

const femaleSerialOffset = 500

// Identity holds the fields encoded in a national identity number.
type Identity struct {
	BirthYear int
	Serial    int
}

// ParseIdentity decodes a 12 digit identity number or a legacy 10 character
// one (nine digits followed by V or X).
func ParseIdentity(identityNo string) (Identity, error) {
	switch len(identityNo) {
	case 12:
		if !allDigits(identityNo) {
			return Identity{}, unsupportedIdentity()
		}
		year, _ := strconv.Atoi(identityNo[:4])
		serial, _ := strconv.Atoi(identityNo[4:7])
		return Identity{BirthYear: year, Serial: serial}, nil
	case 10:
		suffix := strings.ToUpper(identityNo[9:])
		if !allDigits(identityNo[:9]) || (suffix != "V" && suffix != "X") {
			return Identity{}, unsupportedIdentity()
		}
		year, _ := strconv.Atoi(identityNo[:2])
		serial, _ := strconv.Atoi(identityNo[2:5])
		return Identity{BirthYear: 1900 + year, Serial: serial}, nil
	default:
		return Identity{}, unsupportedIdentity()
	}
}

// Age is the difference in calendar years, birthdays are not considered.
func (i Identity) Age(now time.Time) int {
	return now.Year() - i.BirthYear
}

func (i Identity) IsMale() bool {
	return i.Serial < femaleSerialOffset
}

func (i Identity) Gender() Gender {
	if i.IsMale() {
		return GenderMale
	}
	return GenderFemale
}

func unsupportedIdentity() error {
	return apperrors.NewValidationError("identityNo", "unsupported identity format")
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
