package contacts

import (
	"time"

	"github.com/tartampluch/go-contacts/internal/config"
)

// AddressBook maps contact names to records. A separate key slice preserves
// insertion order, which a Go map alone would not, so listings and the
// upcoming-birthday query stay stable across runs.
type AddressBook struct {
	// Clock supplies "today" for the birthday queries. Tests replace it
	// with a fixed-time implementation.
	Clock Clock

	records map[string]*Record
	order   []string
}

// NewAddressBook returns an empty book backed by the real clock.
func NewAddressBook() *AddressBook {
	return &AddressBook{
		Clock:   RealClock{},
		records: make(map[string]*Record),
	}
}

// AddRecord inserts the record keyed by its name. A colliding name silently
// replaces the stored record but keeps its original iteration position,
// mirroring map-update semantics.
func (ab *AddressBook) AddRecord(r *Record) {
	name := r.Name()
	if _, ok := ab.records[name]; !ok {
		ab.order = append(ab.order, name)
	}
	ab.records[name] = r
}

// Find returns the record stored under name.
func (ab *AddressBook) Find(name string) (*Record, error) {
	r, ok := ab.records[name]
	if !ok {
		return nil, notFoundf(config.ErrContactNotFound, name)
	}
	return r, nil
}

// Exists reports whether a record is stored under name.
func (ab *AddressBook) Exists(name string) bool {
	_, ok := ab.records[name]
	return ok
}

// Delete removes the record stored under name.
func (ab *AddressBook) Delete(name string) error {
	if _, ok := ab.records[name]; !ok {
		return notFoundf(config.ErrContactNotFound, name)
	}
	delete(ab.records, name)
	for i, stored := range ab.order {
		if stored == name {
			ab.order = append(ab.order[:i], ab.order[i+1:]...)
			break
		}
	}
	return nil
}

// Len returns the number of stored records.
func (ab *AddressBook) Len() int {
	return len(ab.records)
}

// Records returns the stored records in insertion order.
func (ab *AddressBook) Records() []*Record {
	out := make([]*Record, 0, len(ab.order))
	for _, name := range ab.order {
		out = append(out, ab.records[name])
	}
	return out
}

// UpcomingBirthday describes one birthday falling inside the congratulation
// window, with the greeting date already moved off weekends.
type UpcomingBirthday struct {
	Name               string
	ActualDate         string
	CongratulationDate string
}

// UpcomingBirthdays lists the contacts whose birthday, reinterpreted in the
// current year, falls between today and seven days ahead inclusive. A
// congratulation date landing on Saturday or Sunday moves to the following
// Monday; the actual date is reported unshifted. Results keep book order.
func (ab *AddressBook) UpcomingBirthdays() []UpcomingBirthday {
	now := ab.Clock.Now()
	// Whole-day arithmetic on UTC midnights; local midnights are not always
	// 24h apart across DST transitions.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	var upcoming []UpcomingBirthday
	for _, rec := range ab.Records() {
		b, ok := rec.Birthday()
		if !ok {
			continue
		}

		born := b.Value()
		// Reinterpret the birthday in the current year. time.Date normalizes
		// Feb 29 to Mar 1 when the year is not a leap year.
		congratulation := time.Date(today.Year(), born.Month(), born.Day(), 0, 0, 0, 0, time.UTC)

		diff := int(congratulation.Sub(today).Hours() / 24)
		if diff < 0 || diff > config.UpcomingWindowDays {
			continue
		}

		switch congratulation.Weekday() {
		case time.Saturday:
			congratulation = congratulation.AddDate(0, 0, 2)
		case time.Sunday:
			congratulation = congratulation.AddDate(0, 0, 1)
		}

		upcoming = append(upcoming, UpcomingBirthday{
			Name:               rec.Name(),
			ActualDate:         b.String(),
			CongratulationDate: congratulation.Format(config.DateFormatBirthday),
		})
	}
	return upcoming
}

// NextOccurrence determines the date a birthday is next celebrated relative
// to now: the current-year reinterpretation when it is today or later,
// otherwise the next-year one. Feb 29 normalizes to Mar 1 outside leap years.
func NextOccurrence(now, birthday time.Time) time.Time {
	loc := now.Location()

	candidate := time.Date(now.Year(), birthday.Month(), birthday.Day(), 0, 0, 0, 0, loc)
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	if candidate.Before(todayStart) {
		candidate = time.Date(now.Year()+1, birthday.Month(), birthday.Day(), 0, 0, 0, 0, loc)
	}
	return candidate
}
