package contacts

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/tartampluch/go-contacts/internal/config"
)

// SeedFakeRecords fills the book with count generated contacts. Every record
// gets a ten-digit phone number; roughly half also get a birthday somewhere
// between the minimum seed year and today. Records are keyed by first name,
// so generation retries until an unused name comes up.
func SeedFakeRecords(faker *gofakeit.Faker, book *AddressBook, count int) error {
	earliest := time.Date(config.SeedBirthYearMin, time.January, 1, 0, 0, 0, 0, time.UTC)
	now := book.Clock.Now()

	for i := 0; i < count; i++ {
		name, err := uniqueName(faker, book)
		if err != nil {
			return err
		}

		rec, err := NewRecord(name)
		if err != nil {
			return fmt.Errorf("seed record %q: %w", name, err)
		}
		if err := rec.AddPhone(faker.Numerify(config.SeedPhonePattern)); err != nil {
			return fmt.Errorf("seed phone for %q: %w", name, err)
		}
		if faker.Bool() {
			dob := faker.DateRange(earliest, now)
			if err := rec.AddBirthday(dob.Format(config.DateFormatBirthday)); err != nil {
				return fmt.Errorf("seed birthday for %q: %w", name, err)
			}
		}
		book.AddRecord(rec)
	}

	slog.Info(config.MsgSeedDone,
		config.LogKeyComponent, config.CompSeed,
		config.LogKeyCount, count)
	return nil
}

func uniqueName(faker *gofakeit.Faker, book *AddressBook) (string, error) {
	for attempt := 0; attempt < config.SeedMaxAttempts; attempt++ {
		name := faker.FirstName()
		if !book.Exists(name) {
			return name, nil
		}
	}
	return "", errors.New(config.ErrSeedNames)
}
