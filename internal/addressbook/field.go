package addressbook

import (
	"regexp"
	"strings"
	"time"

	"github.com/username/address-book/pkg/dateutil"
)

var phoneRe = regexp.MustCompile(`^[0-9]{10}$`)

// Field is the closed set of validated contact fields: Name, Phone, Birthday.
// A Field always holds a value that passed its rule.
type Field interface {
	String() string
	field()
}

// Name is a contact name; never blank
type Name struct {
	value string
}

// NewName validates a contact name. Surrounding whitespace is checked, not stripped.
func NewName(raw string) (Name, error) {
	if strings.TrimSpace(raw) == "" {
		return Name{}, &ValidationError{Field: "name", Value: raw, Reason: "name must not be empty"}
	}
	return Name{value: raw}, nil
}

func (n Name) String() string { return n.value }
func (Name) field() {}

// Phone is exactly 10 ASCII digits
type Phone struct {
	value string
}

// NewPhone validates a phone number
func NewPhone(raw string) (Phone, error) {
	if !phoneRe.MatchString(raw) {
		return Phone{}, &ValidationError{Field: "phone", Value: raw, Reason: "phone number must be exactly 10 digits"}
	}
	return Phone{value: raw}, nil
}

func (p Phone) String() string { return p.value }
func (Phone) field() {}

// Set replaces the number only if raw is a valid phone
func (p *Phone) Set(raw string) error {
	next, err := NewPhone(raw)
	if err != nil {
		return err
	}
	*p = next
	return nil
}

// Birthday is a calendar date parsed from DD.MM.YYYY
type Birthday struct {
	date time.Time
}

// NewBirthday validates and parses a birthday
func NewBirthday(raw string) (Birthday, error) {
	date, err := dateutil.ParseBirthday(raw)
	if err != nil {
		return Birthday{}, &ValidationError{Field: "birthday", Value: raw, Reason: "invalid date format, use DD.MM.YYYY"}
	}
	return Birthday{date: date}, nil
}

// Date returns the birthday as a civil date (UTC midnight)
func (b Birthday) Date() time.Time { return b.date }

// String renders the birthday back in DD.MM.YYYY
func (b Birthday) String() string { return b.date.Format(dateutil.BirthdayLayout) }
func (Birthday) field() {}

var (
	_ Field = Name{}
	_ Field = Phone{}
	_ Field = Birthday{}
)
