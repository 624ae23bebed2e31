package contacts

import (
	"fmt"
	"strings"

	"github.com/tartampluch/go-contacts/internal/config"
)

// Record is a single contact: an immutable name, an ordered set of distinct
// phone numbers, and an optional birthday.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a record holding only a name. Phones and the birthday are
// attached afterwards through the mutating operations.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{name: n}, nil
}

// Name returns the contact name. It never changes after construction.
func (r *Record) Name() string {
	return r.name.Value()
}

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// PhonesString joins all phone numbers with "; " for display.
func (r *Record) PhonesString() string {
	values := make([]string, len(r.phones))
	for i, p := range r.phones {
		values[i] = p.Value()
	}
	return strings.Join(values, config.PhoneSeparator)
}

// AddPhone validates and appends a phone number. Appending a number already
// on the record fails with a duplicate error and changes nothing.
func (r *Record) AddPhone(value string) error {
	if r.PhoneExists(value) {
		return duplicatef(config.ErrPhoneExists, value)
	}
	p, err := NewPhone(value)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// RemovePhone removes the single matching phone number, keeping the order of
// the remaining entries.
func (r *Record) RemovePhone(value string) error {
	i := r.indexOf(value)
	if i < 0 {
		return notFoundf(config.ErrPhoneNotFound, value)
	}
	r.phones = append(r.phones[:i], r.phones[i+1:]...)
	return nil
}

// EditPhone replaces oldValue with newValue in place. The duplicate check on
// newValue runs before any lookup or mutation; a malformed newValue is
// rejected by the phone setter, leaving oldValue untouched.
func (r *Record) EditPhone(oldValue, newValue string) error {
	if r.PhoneExists(newValue) {
		return duplicatef(config.ErrPhoneExists, newValue)
	}
	i := r.indexOf(oldValue)
	if i < 0 {
		return notFoundf(config.ErrPhoneNotFound, oldValue)
	}
	return r.phones[i].Set(newValue)
}

// PhoneExists reports whether an equal phone number is on the record.
func (r *Record) PhoneExists(value string) bool {
	return r.indexOf(value) >= 0
}

// FindPhone returns the matching phone entry.
func (r *Record) FindPhone(value string) (Phone, error) {
	i := r.indexOf(value)
	if i < 0 {
		return Phone{}, notFoundf(config.ErrPhoneNotFound, value)
	}
	return r.phones[i], nil
}

// indexOf locates a phone by its digit string. Phone numbers are unique
// within a record, so the first match is the only one.
func (r *Record) indexOf(value string) int {
	for i, p := range r.phones {
		if p.Value() == value {
			return i
		}
	}
	return -1
}

// AddBirthday parses and sets the birthday. At most one birthday is kept per
// record: a later valid call overwrites the earlier date, while a failed
// parse leaves the stored date unchanged.
func (r *Record) AddBirthday(value string) error {
	b, err := NewBirthday(value)
	if err != nil {
		return err
	}
	r.birthday = &b
	return nil
}

// Birthday returns the stored birthday and whether one is set.
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// String renders the record for the "all" listing.
func (r *Record) String() string {
	birthday := config.BirthdayNotSet
	if r.birthday != nil {
		birthday = r.birthday.String()
	}
	return fmt.Sprintf(config.FormatRecord, r.Name(), birthday, r.PhonesString())
}
