package exchange

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"

	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/contacts"
)

// CalendarWriter renders the birthdays stored in a book as an iCalendar
// stream, one all-day event per contact at the birthday's next occurrence.
type CalendarWriter struct {
	Clock contacts.Clock

	// FormatSummary lets the caller inject a localized event title. When
	// nil, a plain English fallback is used.
	FormatSummary func(name string, age int) string
}

// Encode builds the VCALENDAR. A book without birthdays yields a minimal
// empty calendar so consumers never see an invalid feed.
func (w *CalendarWriter) Encode(book *contacts.AddressBook) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	now := w.Clock.Now()
	dtStamp := ical.NewProp(config.PropDTStamp)
	dtStamp.SetDateTime(now.UTC())

	events := 0
	for _, rec := range book.Records() {
		b, ok := rec.Birthday()
		if !ok {
			continue
		}

		born := b.Value()
		next := contacts.NextOccurrence(now, born)
		age := next.Year() - born.Year()

		// Deterministic UID so re-exports update events instead of
		// duplicating them.
		input := fmt.Sprintf(config.FormatHashInput, rec.Name(), born.Format(time.RFC3339), config.UIDSalt)
		hash := sha256.Sum256([]byte(input))
		uidBase := fmt.Sprintf("%x", hash[:config.UIDHashLength])

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, uidBase, next.Year(), config.ICalDomain))

		summary := fmt.Sprintf(config.FallbackSummaryAge, rec.Name(), age)
		if w.FormatSummary != nil {
			summary = w.FormatSummary(rec.Name(), age)
		}
		event.Props.SetText(config.PropSummary, summary)

		dtStart := ical.NewProp(config.PropDTStart)
		dtStart.SetDate(next)
		event.Props.Set(dtStart)
		event.Props.Set(dtStamp)

		cal.Children = append(cal.Children, event.Component)
		events++
	}

	if events == 0 {
		w.logDone(0, len(config.StubVCalendar))
		return []byte(config.StubVCalendar), nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	w.logDone(events, buf.Len())
	return buf.Bytes(), nil
}

func (w *CalendarWriter) logDone(events, size int) {
	slog.Info(config.MsgGenSuccess,
		config.LogKeyComponent, config.CompExchange,
		config.LogKeyCount, events,
		config.LogKeySizeBytes, size)
}
