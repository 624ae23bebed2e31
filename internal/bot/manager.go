package bot

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/nicksnyder/go-i18n/v2/i18n"

	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/contacts"
)

// CommandFunc handles one command: positional arguments in, reply text out.
// Failures are reported through the error and rendered by the dispatcher.
type CommandFunc func(args []string, book *contacts.AddressBook) (string, error)

type commandEntry struct {
	name    string
	hints   []string // positional argument placeholders, one per argument
	handler CommandFunc
}

// Manager owns the command table and the interpreter loop.
type Manager struct {
	book     *contacts.AddressBook
	commands map[string]commandEntry
	order    []string

	in     io.Reader
	out    io.Writer
	styles Styles

	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	language  string
}

// Options configures a Manager. Zero values fall back to stdin/stdout,
// colored styles, and the default language.
type Options struct {
	In       io.Reader
	Out      io.Writer
	Language string
	NoColor  bool
}

// NewManager builds an interpreter bound to the given book.
func NewManager(book *contacts.AddressBook, opts Options) *Manager {
	m := &Manager{
		book:     book,
		commands: make(map[string]commandEntry),
		in:       opts.In,
		out:      opts.Out,
		styles:   DefaultStyles(),
		language: opts.Language,
	}
	if m.in == nil {
		m.in = os.Stdin
	}
	if m.out == nil {
		m.out = os.Stdout
	}
	if opts.NoColor {
		m.styles = PlainStyles()
	}

	m.setupI18n()

	m.register(config.CmdHello, nil, m.hello)
	m.register(config.CmdAdd, []string{config.ArgName, config.ArgPhone}, m.addContact)
	m.register(config.CmdChange, []string{config.ArgName, config.ArgOldPhone, config.ArgNewPhone}, m.changeContact)
	m.register(config.CmdPhone, []string{config.ArgName}, m.showPhone)
	m.register(config.CmdAll, nil, m.showAll)
	m.register(config.CmdAddBirthday, []string{config.ArgName, config.ArgDate}, m.addBirthday)
	m.register(config.CmdShowBirthday, []string{config.ArgName}, m.showBirthday)
	m.register(config.CmdBirthdays, nil, m.upcomingBirthdays)
	m.register(config.CmdRemovePhone, []string{config.ArgName, config.ArgPhone}, m.removePhone)
	m.register(config.CmdDelete, []string{config.ArgName}, m.deleteContact)
	m.register(config.CmdImport, []string{config.ArgPath}, m.importVCards)
	m.register(config.CmdExport, nil, m.exportVCards)
	m.register(config.CmdCalendar, nil, m.exportCalendar)
	m.register(config.CmdHelp, nil, m.help)

	return m
}

func (m *Manager) register(name string, hints []string, handler CommandFunc) {
	m.commands[name] = commandEntry{name: name, hints: hints, handler: handler}
	m.order = append(m.order, name)
}

// Run drives the interpreter until the input closes, an exit command
// arrives, or the context is cancelled. Reading happens on a side goroutine
// so cancellation interrupts a pending prompt; commands themselves still run
// strictly one at a time.
func (m *Manager) Run(ctx context.Context) error {
	m.println(m.getMsg(config.TKeyMsgWelcome))

	scanner := bufio.NewScanner(m.in)
	lines := make(chan string)
	done := make(chan struct{})
	defer close(done)
	go func() {
		defer close(lines)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
	}()

	for {
		fmt.Fprint(m.out, m.styles.Prompt.Render(m.getMsg(config.TKeyMsgPrompt)))

		select {
		case <-ctx.Done():
			slog.Info(config.MsgCtxCancel, config.LogKeyComponent, config.CompBot)
			// The prompt line is still open; finish it first.
			fmt.Fprintln(m.out)
			m.println(m.getMsg(config.TKeyMsgExiting))
			return nil

		case line, ok := <-lines:
			if !ok {
				slog.Info(config.MsgInputClosed, config.LogKeyComponent, config.CompBot)
				m.println(m.getMsg(config.TKeyMsgGoodbye))
				return scanner.Err()
			}
			if m.handleLine(line) {
				return nil
			}
		}
	}
}

// handleLine processes one raw input line and reports whether the loop
// should terminate.
func (m *Manager) handleLine(line string) bool {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		m.println(m.getMsg(config.TKeyMsgEmptyInput))
		return false
	}

	// Only the command word is case-folded; arguments stay verbatim.
	command := strings.ToLower(tokens[0])
	args := tokens[1:]

	if command == config.CmdClose || command == config.CmdExit {
		m.println(m.getMsg(config.TKeyMsgGoodbye))
		return true
	}

	m.println(m.Execute(command, args))
	return false
}

// Execute dispatches a single parsed command and returns the rendered reply.
func (m *Manager) Execute(command string, args []string) string {
	entry, ok := m.commands[command]
	if !ok {
		return m.renderUnknown()
	}
	if len(args) != len(entry.hints) {
		return m.renderArity(entry)
	}

	slog.Debug(config.MsgCommandRun,
		config.LogKeyComponent, config.CompBot,
		config.LogKeyCommand, command,
		config.LogKeyArgs, args,
	)

	out, err := entry.handler(args, m.book)
	if err != nil {
		return m.renderError(command, err)
	}
	return out
}

func (m *Manager) renderUnknown() string {
	return m.styles.Error.Render(m.getMsg(config.TKeyErrInvalidCommand)) + "\n" + m.usageListing()
}

// usageListing renders the command table, one usage line per command. The
// exit words close the list; they are loop controls, not registered commands.
func (m *Manager) usageListing() string {
	var b strings.Builder
	b.WriteString(m.getMsg(config.TKeyMsgAvailable))
	for _, name := range m.order {
		entry := m.commands[name]
		b.WriteString("\n")
		if len(entry.hints) == 0 {
			b.WriteString(fmt.Sprintf(config.FormatHintBare, name))
		} else {
			b.WriteString(fmt.Sprintf(config.FormatHintLine, name, strings.Join(entry.hints, " ")))
		}
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf(config.FormatHintBare, config.CmdClose))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf(config.FormatHintBare, config.CmdExit))
	return b.String()
}

func (m *Manager) renderArity(entry commandEntry) string {
	usage := m.localize(config.TKeyMsgUsage, map[string]any{
		"Command": entry.name,
		"Args":    strings.Join(entry.hints, " "),
	})
	return m.styles.Error.Render(m.getMsg(config.TKeyErrInvalidArgs)) + "\n" + strings.TrimRight(usage, " ")
}

// renderError translates a handler failure by kind. Validation failures are
// user mistakes and get the loud treatment; stored-data misses read as plain
// domain messages; everything else is logged and reported generically.
func (m *Manager) renderError(command string, err error) string {
	switch {
	case contacts.IsValidation(err):
		return m.styles.Error.Render(m.localize(config.TKeyErrInvalidArg, map[string]any{
			"Reason": err.Error(),
		}))
	case contacts.IsNotFound(err), contacts.IsDuplicate(err):
		return err.Error()
	default:
		slog.Error(config.ErrCommandFailed,
			config.LogKeyComponent, config.CompBot,
			config.LogKeyCommand, command,
			config.LogKeyError, err,
		)
		return m.styles.Error.Render(m.getMsg(config.TKeyErrUnexpected))
	}
}

func (m *Manager) println(s string) {
	fmt.Fprintln(m.out, s)
}
