package exchange

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-vcard"

	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/contacts"
)

// ImportStats summarizes one import run.
type ImportStats struct {
	Processed int // cards decoded
	Imported  int // records added to the book
	Skipped   int // cards dropped (malformed, unnamed, or already present)
}

// EncodeVCards serializes every record as a vCard 4.0, in book order. Each
// card carries FN, one TEL per phone, and BDAY when a birthday is set.
func EncodeVCards(book *contacts.AddressBook) ([]byte, error) {
	var buf bytes.Buffer
	enc := vcard.NewEncoder(&buf)

	for _, rec := range book.Records() {
		card := make(vcard.Card)
		card.SetValue(config.VCardFN, rec.Name())
		for _, p := range rec.Phones() {
			card.AddValue(config.VCardTEL, p.Value())
		}
		if b, ok := rec.Birthday(); ok {
			card.SetValue(config.VCardBDAY, b.Value().Format(config.DateFormatVCardDash))
		}

		vcard.ToV4(card)
		if err := enc.Encode(card); err != nil {
			return nil, fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
		}
	}

	slog.Info(config.MsgExportDone,
		config.LogKeyComponent, config.CompExchange,
		config.LogKeyCount, book.Len(),
		config.LogKeySizeBytes, buf.Len())
	return buf.Bytes(), nil
}

// ImportVCards decodes a vCard stream into the book. Cards are matched by
// name (FN, falling back to N); unnamed cards and names already present are
// skipped, so an import never overwrites. Invalid phone numbers and
// unparseable birthdays are dropped per card, the rest of the card survives.
func ImportVCards(r io.Reader, book *contacts.AddressBook) (ImportStats, error) {
	decoder := vcard.NewDecoder(r)
	var stats ImportStats

	failures := 0
	for {
		card, err := decoder.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			failures++
			if failures >= config.ImportErrorLimit {
				return stats, fmt.Errorf("%s: %w", config.ErrVCardParse, err)
			}
			// Keep decoding to recover as many cards as possible.
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompExchange,
				config.LogKeyError, err)
			stats.Skipped++
			continue
		}
		failures = 0
		stats.Processed++

		name := ""
		if fn := card.Get(config.VCardFN); fn != nil {
			name = fn.Value
		} else if n := card.Get(config.VCardN); n != nil {
			name = n.Value
		}

		rec, err := contacts.NewRecord(name)
		if err != nil || book.Exists(name) {
			slog.Warn(config.MsgSkippedContact,
				config.LogKeyComponent, config.CompExchange,
				config.LogKeyName, name)
			stats.Skipped++
			continue
		}

		for _, tel := range card.Values(config.VCardTEL) {
			if err := rec.AddPhone(tel); err != nil {
				slog.Warn(config.MsgSkippedPhone,
					config.LogKeyComponent, config.CompExchange,
					config.LogKeyName, name,
					config.LogKeyValue, tel)
			}
		}

		if bday := card.Get(config.VCardBDAY); bday != nil && bday.Value != "" {
			if dob, err := parseVCardDate(bday.Value); err == nil {
				_ = rec.AddBirthday(dob.Format(config.DateFormatBirthday))
			} else {
				slog.Debug(config.MsgSkippedDate,
					config.LogKeyComponent, config.CompExchange,
					config.LogKeyName, name,
					config.LogKeyValue, bday.Value)
			}
		}

		book.AddRecord(rec)
		stats.Imported++
	}

	slog.Info(config.MsgImportDone,
		config.LogKeyComponent, config.CompExchange,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyTotal, stats.Processed),
			slog.Int(config.LogKeyImported, stats.Imported),
			slog.Int(config.LogKeySkipped, stats.Skipped),
		),
	)
	return stats, nil
}

// parseVCardDate accepts the two BDAY layouts seen in practice, with and
// without dashes.
func parseVCardDate(value string) (time.Time, error) {
	for _, layout := range []string{config.DateFormatVCardDash, config.DateFormatVCardBasic} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New(config.ErrDateParse)
}
