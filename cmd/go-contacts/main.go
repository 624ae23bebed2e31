package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/tartampluch/go-contacts/internal/bot"
	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/contacts"
)

// CLI defines the command-line flags. Flags take precedence over
// environment variables, which take precedence over the settings file.
type CLI struct {
	Lang    string           `help:"Interface language code (e.g. en, uk)." short:"l"`
	Seed    int              `help:"Fill the book with this many generated demo contacts." short:"s"`
	NoColor bool             `help:"Disable colored prompt and error output."`
	Debug   bool             `help:"Enable debug logging to stderr." short:"d"`
	Version kong.VersionFlag `help:"Show version information and exit." short:"v"`
}

// main is the application entry point.
// It delegates execution to runMain to ensure that deferred function calls
// (like closing log files) are executed before the process terminates.
// os.Exit() does not run defers, so we must return an integer code first.
func main() {
	os.Exit(runMain())
}

// runMain manages the application lifecycle, argument parsing, and exit codes.
// Returns config.ExitCodeSuccess on success, config.ExitCodeError on failure.
func runMain() int {
	// -------------------------------------------------------------------------
	// 1. CLI Argument Parsing
	// -------------------------------------------------------------------------
	var cli CLI
	kong.Parse(&cli,
		kong.Name(config.AppDirName),
		kong.Description(config.AppDescription),
		kong.Vars{"version": fmt.Sprintf(config.MsgVersionOutput,
			config.AppName, config.Version, runtime.GOOS, runtime.GOARCH)},
	)

	// -------------------------------------------------------------------------
	// 2. Logging Initialization
	// -------------------------------------------------------------------------
	// We configure structured logging (slog) early to capture startup issues.
	logCloser := setupLogging(cli.Debug)
	if logCloser != nil {
		defer func() {
			_ = logCloser.Close() // Best effort close
		}()
	}

	// -------------------------------------------------------------------------
	// 3. Context & Signal Handling
	// -------------------------------------------------------------------------
	// Create a root context that cancels on SIGINT (Ctrl+C) or SIGTERM.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logStartupInfo()

	// -------------------------------------------------------------------------
	// 4. Application Logic
	// -------------------------------------------------------------------------
	if err := run(ctx, cli); err != nil {
		slog.Error(config.ErrAppFailed,
			config.LogKeyComponent, config.CompMain,
			config.LogKeyError, err,
		)
		// Log records go to a file, so fatal errors must also reach the terminal.
		fmt.Fprintln(os.Stderr, err)
		return config.ExitCodeError
	}

	slog.Info(config.MsgAppStop, config.LogKeyComponent, config.CompMain)
	return config.ExitCodeSuccess
}

// run assembles the address book from the merged settings and hands control
// to the interactive command loop. It blocks until the user exits or ctx is
// cancelled.
func run(ctx context.Context, cli CLI) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	if err := settings.ApplyEnv(); err != nil {
		return err
	}

	if cli.Lang != "" {
		settings.Language = cli.Lang
	}
	if cli.Seed > 0 {
		settings.Seed = cli.Seed
	}
	if cli.NoColor {
		settings.NoColor = true
	}

	if err := settings.Validate(); err != nil {
		return err
	}

	book := contacts.NewAddressBook()
	if settings.Seed > 0 {
		// Seed 0 lets the generator pick its own randomness source.
		if err := contacts.SeedFakeRecords(gofakeit.New(0), book, settings.Seed); err != nil {
			return err
		}
	}

	manager := bot.NewManager(book, bot.Options{
		In:       os.Stdin,
		Out:      os.Stdout,
		Language: settings.Language,
		NoColor:  settings.NoColor || !bot.IsTTY(os.Stdout),
	})
	return manager.Run(ctx)
}

// loadSettings resolves the settings file path and reads it. A missing file
// or an unresolvable config directory is not fatal: defaults keep the bot
// usable. Malformed settings files are fatal so typos do not pass silently.
func loadSettings() (config.Settings, error) {
	path, err := config.SettingsPath()
	if err != nil {
		slog.Warn(config.MsgSettingsDefault,
			config.LogKeyComponent, config.CompConfig,
			config.LogKeyError, err,
		)
		return config.DefaultSettings(), nil
	}

	settings, err := config.LoadSettings(path)
	if err != nil {
		return settings, err
	}

	if _, statErr := os.Stat(path); statErr == nil {
		slog.Info(config.MsgSettingsLoaded,
			config.LogKeyComponent, config.CompConfig,
			config.LogKeyPath, path,
		)
	} else {
		slog.Info(config.MsgSettingsDefault,
			config.LogKeyComponent, config.CompConfig,
			config.LogKeyPath, path,
		)
	}
	return settings, nil
}

// logStartupInfo logs environment details useful for debugging.
func logStartupInfo() {
	slog.Info(config.MsgAppStarting,
		config.LogKeyComponent, config.CompMain,
		slog.Group(config.LogKeyBuild,
			slog.String(config.LogKeyApp, config.AppName),
			slog.String(config.LogKeyVersion, config.Version),
			slog.String(config.LogKeyGoVer, runtime.Version()),
		),
		slog.Group(config.LogKeyEnv,
			slog.String(config.LogKeyOS, runtime.GOOS),
			slog.String(config.LogKeyArch, runtime.GOARCH),
			slog.Int(config.LogKeyPID, os.Getpid()),
		),
	)
}

// setupLogging configures the default slog logger. The command loop owns
// stdout, so log records go to a file in the user cache directory, plus
// stderr when debug mode is on. Records are discarded when neither sink is
// available.
func setupLogging(debugMode bool) io.Closer {
	var writers []io.Writer
	var logFile *os.File

	if logPath, err := getLogFilePath(); err == nil {
		// O_TRUNC resets logs on restart to prevent indefinite growth.
		// Use centralized permission constants for security.
		f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, config.FilePermUserRW)
		if err == nil {
			writers = append(writers, f)
			logFile = f
		} else {
			fmt.Fprintf(os.Stderr, config.MsgLogWarning, config.ErrLogFile, logPath, err)
		}
	}

	if debugMode {
		writers = append(writers, os.Stderr)
	}
	if len(writers) == 0 {
		writers = append(writers, io.Discard)
	}

	level := slog.LevelInfo
	if debugMode {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: debugMode,
	}

	logger := slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), opts))
	slog.SetDefault(logger)

	if logFile == nil {
		return nil
	}
	return logFile
}

// getLogFilePath determines the platform-specific cache directory for logs.
func getLogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, config.AppDirName)

	// Ensure the directory exists with restricted permissions (700).
	if err := os.MkdirAll(appDir, config.DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", config.ErrCreateDir, err)
	}

	return filepath.Join(appDir, config.LogFileName), nil
}
