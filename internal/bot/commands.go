package bot

import (
	"log/slog"
	"os"
	"strings"

	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/contacts"
	"github.com/tartampluch/go-contacts/internal/exchange"
)

// hello greets the operator.
func (m *Manager) hello(_ []string, _ *contacts.AddressBook) (string, error) {
	return m.getMsg(config.TKeyMsgHello), nil
}

// addContact creates a contact with a phone number. When the contact already
// exists the number is appended to it instead.
func (m *Manager) addContact(args []string, book *contacts.AddressBook) (string, error) {
	name, phone := args[0], args[1]

	if !book.Exists(name) {
		rec, err := contacts.NewRecord(name)
		if err != nil {
			return "", err
		}
		if err := rec.AddPhone(phone); err != nil {
			return "", err
		}
		book.AddRecord(rec)
		return m.getMsg(config.TKeyMsgContactAdded), nil
	}

	rec, err := book.Find(name)
	if err != nil {
		return "", err
	}
	if rec.PhoneExists(phone) {
		return m.getMsg(config.TKeyMsgPhoneExists), nil
	}
	if err := rec.AddPhone(phone); err != nil {
		return "", err
	}
	return m.getMsg(config.TKeyMsgPhoneAdded), nil
}

// changeContact replaces one phone number with another.
func (m *Manager) changeContact(args []string, book *contacts.AddressBook) (string, error) {
	name, oldPhone, newPhone := args[0], args[1], args[2]

	rec, err := book.Find(name)
	if err != nil {
		if contacts.IsNotFound(err) {
			return m.getMsg(config.TKeyMsgContactMissing), nil
		}
		return "", err
	}
	if !rec.PhoneExists(oldPhone) {
		return m.getMsg(config.TKeyMsgOldPhoneMiss), nil
	}
	if rec.PhoneExists(newPhone) {
		return m.getMsg(config.TKeyMsgNewPhoneExists), nil
	}
	if err := rec.EditPhone(oldPhone, newPhone); err != nil {
		return "", err
	}

	return m.localize(config.TKeyMsgPhoneUpdated, map[string]any{
		"Old":  oldPhone,
		"New":  newPhone,
		"Name": name,
	}), nil
}

// showPhone lists the phone numbers of one contact.
func (m *Manager) showPhone(args []string, book *contacts.AddressBook) (string, error) {
	rec, err := book.Find(args[0])
	if err != nil {
		if contacts.IsNotFound(err) {
			return m.getMsg(config.TKeyMsgContactMissing), nil
		}
		return "", err
	}
	return rec.PhonesString(), nil
}

// showAll prints every record, one per line, in book order.
func (m *Manager) showAll(_ []string, book *contacts.AddressBook) (string, error) {
	records := book.Records()
	if len(records) == 0 {
		return m.getMsg(config.TKeyMsgBookEmpty), nil
	}

	lines := make([]string, 0, len(records))
	for _, rec := range records {
		lines = append(lines, rec.String())
	}
	return strings.Join(lines, "\n"), nil
}

// addBirthday attaches a birthday to a contact, replacing any previous one.
func (m *Manager) addBirthday(args []string, book *contacts.AddressBook) (string, error) {
	name, date := args[0], args[1]

	rec, err := book.Find(name)
	if err != nil {
		if contacts.IsNotFound(err) {
			return m.getMsg(config.TKeyMsgContactMissing), nil
		}
		return "", err
	}
	if err := rec.AddBirthday(date); err != nil {
		return "", err
	}

	return m.localize(config.TKeyMsgBirthdayAdded, map[string]any{"Name": name}), nil
}

// showBirthday prints a contact's stored birthday.
func (m *Manager) showBirthday(args []string, book *contacts.AddressBook) (string, error) {
	rec, err := book.Find(args[0])
	if err != nil {
		if contacts.IsNotFound(err) {
			return m.getMsg(config.TKeyMsgContactMissing), nil
		}
		return "", err
	}

	b, ok := rec.Birthday()
	if !ok {
		return m.getMsg(config.TKeyMsgBirthdayUnset), nil
	}
	return b.String(), nil
}

// upcomingBirthdays lists who to congratulate within the next week.
func (m *Manager) upcomingBirthdays(_ []string, book *contacts.AddressBook) (string, error) {
	upcoming := book.UpcomingBirthdays()
	if len(upcoming) == 0 {
		return m.getMsg(config.TKeyMsgNoUpcoming), nil
	}

	lines := make([]string, 0, len(upcoming))
	for _, u := range upcoming {
		lines = append(lines, m.localize(config.TKeyMsgUpcomingEntry, map[string]any{
			"Name":           u.Name,
			"Actual":         u.ActualDate,
			"Congratulation": u.CongratulationDate,
		}))
	}
	return strings.Join(lines, "\n"), nil
}

// removePhone drops one phone number from a contact.
func (m *Manager) removePhone(args []string, book *contacts.AddressBook) (string, error) {
	name, phone := args[0], args[1]

	rec, err := book.Find(name)
	if err != nil {
		if contacts.IsNotFound(err) {
			return m.getMsg(config.TKeyMsgContactMissing), nil
		}
		return "", err
	}
	if err := rec.RemovePhone(phone); err != nil {
		return "", err
	}
	return m.getMsg(config.TKeyMsgPhoneRemoved), nil
}

// deleteContact removes a whole record from the book.
func (m *Manager) deleteContact(args []string, book *contacts.AddressBook) (string, error) {
	if err := book.Delete(args[0]); err != nil {
		if contacts.IsNotFound(err) {
			return m.getMsg(config.TKeyMsgContactMissing), nil
		}
		return "", err
	}
	return m.getMsg(config.TKeyMsgContactDeleted), nil
}

// importVCards merges contacts from a vCard file into the book.
func (m *Manager) importVCards(args []string, book *contacts.AddressBook) (string, error) {
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		slog.Warn(config.ErrImportOpen,
			config.LogKeyComponent, config.CompBot,
			config.LogKeyPath, path,
			config.LogKeyError, err,
		)
		return m.localize(config.TKeyMsgImportFailed, map[string]any{"Reason": err.Error()}), nil
	}
	defer func() { _ = f.Close() }()

	stats, err := exchange.ImportVCards(f, book)
	if err != nil {
		return "", err
	}

	return m.localize(config.TKeyMsgImported, map[string]any{
		"Imported":  stats.Imported,
		"Processed": stats.Processed,
		"Skipped":   stats.Skipped,
	}), nil
}

// exportVCards prints the whole book as a vCard 4.0 stream.
func (m *Manager) exportVCards(_ []string, book *contacts.AddressBook) (string, error) {
	if book.Len() == 0 {
		return m.getMsg(config.TKeyMsgNothingExport), nil
	}

	data, err := exchange.EncodeVCards(book)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// exportCalendar prints the stored birthdays as an iCalendar with localized
// event titles.
func (m *Manager) exportCalendar(_ []string, book *contacts.AddressBook) (string, error) {
	writer := &exchange.CalendarWriter{
		Clock: book.Clock,
		FormatSummary: func(name string, age int) string {
			return m.localize(config.TKeyEvtSummaryAge, map[string]any{
				"Name": name,
				"Age":  age,
			})
		},
	}

	data, err := writer.Encode(book)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}

// help prints the command table.
func (m *Manager) help(_ []string, _ *contacts.AddressBook) (string, error) {
	return m.usageListing(), nil
}
