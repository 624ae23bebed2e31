package exchange_test

import (
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/contacts"
	"github.com/tartampluch/go-contacts/internal/exchange"
)

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

func buildBook(t *testing.T, now time.Time) *contacts.AddressBook {
	t.Helper()
	book := contacts.NewAddressBook()
	book.Clock = MockClock{CurrentTime: now}
	return book
}

func mustAdd(t *testing.T, book *contacts.AddressBook, name, phone, birthday string) {
	t.Helper()
	rec, err := contacts.NewRecord(name)
	require.NoError(t, err)
	if phone != "" {
		require.NoError(t, rec.AddPhone(phone))
	}
	if birthday != "" {
		require.NoError(t, rec.AddBirthday(birthday))
	}
	book.AddRecord(rec)
}

func TestEncodeVCards(t *testing.T) {
	book := buildBook(t, time.Now())
	mustAdd(t, book, "Anna", "0123456789", "10.06.2000")
	mustAdd(t, book, "Bob", "9876543210", "")

	data, err := exchange.EncodeVCards(book)
	require.NoError(t, err)

	out := string(data)
	assert.Equal(t, 2, strings.Count(out, "BEGIN:VCARD"))
	assert.Contains(t, out, "VERSION:4.0")
	assert.Contains(t, out, "FN:Anna")
	assert.Contains(t, out, "TEL:0123456789")
	assert.Contains(t, out, "BDAY:2000-06-10")
	assert.Contains(t, out, "FN:Bob")
	// Bob has no birthday, so only Anna's card carries a BDAY.
	assert.Equal(t, 1, strings.Count(out, "BDAY:"))
	// Book order is preserved on the wire.
	assert.Less(t, strings.Index(out, "FN:Anna"), strings.Index(out, "FN:Bob"))
}

func TestVCardRoundTrip(t *testing.T) {
	// Scenario: exporting a book and importing the stream into an empty one
	// reproduces names, phones, and birthdays.
	src := buildBook(t, time.Now())
	mustAdd(t, src, "Anna", "0123456789", "10.06.2000")
	mustAdd(t, src, "Bob", "9876543210", "")

	data, err := exchange.EncodeVCards(src)
	require.NoError(t, err)

	dst := buildBook(t, time.Now())
	stats, err := exchange.ImportVCards(strings.NewReader(string(data)), dst)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Processed)
	assert.Equal(t, 2, stats.Imported)
	assert.Equal(t, 0, stats.Skipped)

	anna, err := dst.Find("Anna")
	require.NoError(t, err)
	assert.Equal(t, "0123456789", anna.PhonesString())
	b, ok := anna.Birthday()
	require.True(t, ok)
	assert.Equal(t, "10.06.2000", b.String())

	bob, err := dst.Find("Bob")
	require.NoError(t, err)
	assert.Equal(t, "9876543210", bob.PhonesString())
	_, ok = bob.Birthday()
	assert.False(t, ok)
}

func TestImportVCards_SkipsAndRecovers(t *testing.T) {
	// Scenario: a mixed stream with a clean card, a name collision, an
	// unnamed card, a broken phone, and a broken birthday.
	stream := `BEGIN:VCARD
VERSION:4.0
FN:Fresh
TEL:1111111111
BDAY:19900615
END:VCARD
BEGIN:VCARD
VERSION:4.0
FN:Existing
TEL:2222222222
END:VCARD
BEGIN:VCARD
VERSION:4.0
TEL:3333333333
END:VCARD
BEGIN:VCARD
VERSION:4.0
FN:BadPhone
TEL:abc
TEL:4444444444
END:VCARD
BEGIN:VCARD
VERSION:4.0
FN:BadDate
TEL:5555555555
BDAY:junk
END:VCARD`

	book := buildBook(t, time.Now())
	mustAdd(t, book, "Existing", "9999999999", "")

	stats, err := exchange.ImportVCards(strings.NewReader(stream), book)
	require.NoError(t, err)

	assert.Equal(t, 5, stats.Processed)
	assert.Equal(t, 3, stats.Imported, "Fresh, BadPhone, BadDate")
	assert.Equal(t, 2, stats.Skipped, "collision and unnamed card")

	// The import never overwrites.
	existing, err := book.Find("Existing")
	require.NoError(t, err)
	assert.Equal(t, "9999999999", existing.PhonesString())

	// Basic-format BDAY parses.
	fresh, err := book.Find("Fresh")
	require.NoError(t, err)
	b, ok := fresh.Birthday()
	require.True(t, ok)
	assert.Equal(t, "15.06.1990", b.String())

	// An invalid phone is dropped, the valid one survives.
	badPhone, err := book.Find("BadPhone")
	require.NoError(t, err)
	assert.Equal(t, "4444444444", badPhone.PhonesString())

	// An unparseable birthday is dropped, the contact stays.
	badDate, err := book.Find("BadDate")
	require.NoError(t, err)
	_, ok = badDate.Birthday()
	assert.False(t, ok)
}

func TestImportVCards_FNFallbackToN(t *testing.T) {
	stream := `BEGIN:VCARD
VERSION:4.0
N:Doe;John;;;
TEL:1234567890
END:VCARD`

	book := buildBook(t, time.Now())
	stats, err := exchange.ImportVCards(strings.NewReader(stream), book)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Imported)
	assert.True(t, book.Exists("Doe;John;;;"), "structured name is taken verbatim when FN is absent")
}

func TestImportVCards_FromFile(t *testing.T) {
	content := `BEGIN:VCARD
VERSION:4.0
FN:File Person
TEL:0123456789
END:VCARD`

	tmpFile, err := os.CreateTemp("", "import_*.vcf")
	require.NoError(t, err)
	defer func() { _ = os.Remove(tmpFile.Name()) }()

	_, err = tmpFile.WriteString(content)
	require.NoError(t, err)
	_ = tmpFile.Close()

	f, err := os.Open(tmpFile.Name())
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	book := buildBook(t, time.Now())
	stats, err := exchange.ImportVCards(f, book)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Imported)
	assert.True(t, book.Exists("File Person"))
}

func TestCalendarWriter_Encode(t *testing.T) {
	// Reference "Now": Jan 1st, 2025. John's birthday already has a 2025
	// occurrence ahead; the event lands there as an all-day entry.
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	book := buildBook(t, now)
	mustAdd(t, book, "John", "0123456789", "15.06.1990")
	mustAdd(t, book, "NoBday", "9876543210", "")

	writer := &exchange.CalendarWriter{Clock: MockClock{CurrentTime: now}}
	data, err := writer.Encode(book)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "X-WR-CALNAME:Birthdays")
	assert.Contains(t, out, "METHOD:PUBLISH")
	assert.Contains(t, out, "DTSTART;VALUE=DATE:20250615")
	assert.Contains(t, out, "SUMMARY:Birthday: John (35)")
	assert.Contains(t, out, "@"+config.ICalDomain)
	assert.Equal(t, 1, strings.Count(out, "BEGIN:VEVENT"), "contacts without birthdays produce no events")
}

func TestCalendarWriter_DeterministicUID(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	book := buildBook(t, now)
	mustAdd(t, book, "John", "0123456789", "15.06.1990")

	writer := &exchange.CalendarWriter{Clock: MockClock{CurrentTime: now}}
	first, err := writer.Encode(book)
	require.NoError(t, err)
	second, err := writer.Encode(book)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second), "re-exports must be byte-stable for a fixed clock")
}

func TestCalendarWriter_CustomSummary(t *testing.T) {
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	book := buildBook(t, now)
	mustAdd(t, book, "John", "0123456789", "15.06.1990")

	writer := &exchange.CalendarWriter{
		Clock: MockClock{CurrentTime: now},
		FormatSummary: func(name string, age int) string {
			return fmt.Sprintf("%s turns %d", name, age)
		},
	}
	data, err := writer.Encode(book)
	require.NoError(t, err)
	assert.Contains(t, string(data), "SUMMARY:John turns 35")
}

func TestCalendarWriter_EmptyBook(t *testing.T) {
	// No birthdays at all still yields a valid, empty VCALENDAR.
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	book := buildBook(t, now)
	mustAdd(t, book, "NoBday", "9876543210", "")

	writer := &exchange.CalendarWriter{Clock: MockClock{CurrentTime: now}}
	data, err := writer.Encode(book)
	require.NoError(t, err)
	assert.Equal(t, config.StubVCalendar, string(data))
}
