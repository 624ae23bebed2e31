package contacts

import (
	"regexp"
	"strings"
	"time"

	"github.com/tartampluch/go-contacts/internal/config"
)

var phonePattern = regexp.MustCompile(config.PhonePattern)

// Field stores a single value of a fixed semantic type. Every assignment,
// including the initial one, passes through the field's rule; a rejected
// value leaves the previously stored value unchanged.
type Field[T any] struct {
	value T
	rule  func(T) error
}

// NewField constructs a field holding value, enforcing rule on this and every
// later assignment. A nil rule accepts any value.
func NewField[T any](value T, rule func(T) error) (Field[T], error) {
	f := Field[T]{rule: rule}
	if err := f.Set(value); err != nil {
		return Field[T]{}, err
	}
	return f, nil
}

// Value returns the stored value.
func (f Field[T]) Value() T {
	return f.value
}

// Set replaces the stored value after validating it.
func (f *Field[T]) Set(value T) error {
	if f.rule != nil {
		if err := f.rule(value); err != nil {
			return err
		}
	}
	f.value = value
	return nil
}

// Name identifies a contact record. The value is stored verbatim and must not
// be empty or whitespace-only.
type Name struct {
	Field[string]
}

// NewName validates and wraps a contact name.
func NewName(value string) (Name, error) {
	f, err := NewField(value, validateName)
	if err != nil {
		return Name{}, err
	}
	return Name{f}, nil
}

func validateName(value string) error {
	if strings.TrimSpace(value) == "" {
		return validationf(config.ErrNameEmpty)
	}
	return nil
}

// String returns the stored name.
func (n Name) String() string {
	return n.Value()
}

// Phone holds one contact phone number of exactly ten decimal digits, with no
// separators and no leading plus sign.
type Phone struct {
	Field[string]
}

// NewPhone validates and wraps a phone number.
func NewPhone(value string) (Phone, error) {
	f, err := NewField(value, validatePhone)
	if err != nil {
		return Phone{}, err
	}
	return Phone{f}, nil
}

func validatePhone(value string) error {
	if !phonePattern.MatchString(value) {
		return validationf(config.ErrPhoneFormat, value)
	}
	return nil
}

// Equal reports whether two phone numbers hold the same digit string.
func (p Phone) Equal(other Phone) bool {
	return p.Value() == other.Value()
}

// String returns the digit string.
func (p Phone) String() string {
	return p.Value()
}

// Birthday holds a contact's date of birth. It is constructed from, assigned
// from, and rendered back to the DD.MM.YYYY form.
type Birthday struct {
	Field[time.Time]
}

// NewBirthday parses value as DD.MM.YYYY and wraps the resulting date.
// Impossible calendar dates (e.g. 31.02.2000) are rejected.
func NewBirthday(value string) (Birthday, error) {
	t, err := parseBirthday(value)
	if err != nil {
		return Birthday{}, err
	}
	return Birthday{Field[time.Time]{value: t}}, nil
}

// Set replaces the stored date after parsing value as DD.MM.YYYY.
// It shadows the embedded setter so assignments keep the string contract.
func (b *Birthday) Set(value string) error {
	t, err := parseBirthday(value)
	if err != nil {
		return err
	}
	return b.Field.Set(t)
}

// String renders the date back to DD.MM.YYYY, regardless of locale.
func (b Birthday) String() string {
	return b.Value().Format(config.DateFormatBirthday)
}

func parseBirthday(value string) (time.Time, error) {
	t, err := time.Parse(config.DateFormatBirthday, value)
	if err != nil {
		return time.Time{}, validationf(config.ErrDateFormat)
	}
	return t, nil
}
