package bot_test

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tartampluch/go-contacts/internal/config"
)

// TestI18nIntegrity ensures that every translation key defined in config.go
// actually exists in each shipped locale catalog.
func TestI18nIntegrity(t *testing.T) {
	keysToCheck := []string{
		config.TKeyMsgWelcome,
		config.TKeyMsgPrompt,
		config.TKeyMsgGoodbye,
		config.TKeyMsgExiting,
		config.TKeyMsgEmptyInput,
		config.TKeyMsgHello,
		config.TKeyMsgContactAdded,
		config.TKeyMsgPhoneAdded,
		config.TKeyMsgPhoneExists,
		config.TKeyMsgContactMissing,
		config.TKeyMsgOldPhoneMiss,
		config.TKeyMsgNewPhoneExists,
		config.TKeyMsgPhoneUpdated,
		config.TKeyMsgPhoneRemoved,
		config.TKeyMsgContactDeleted,
		config.TKeyMsgBirthdayAdded,
		config.TKeyMsgBirthdayUnset,
		config.TKeyMsgNoUpcoming,
		config.TKeyMsgUpcomingEntry,
		config.TKeyMsgBookEmpty,
		config.TKeyMsgNothingExport,
		config.TKeyMsgImported,
		config.TKeyMsgImportFailed,
		config.TKeyMsgAvailable,
		config.TKeyMsgUsage,
		config.TKeyErrInvalidCommand,
		config.TKeyErrInvalidArgs,
		config.TKeyErrInvalidArg,
		config.TKeyErrUnexpected,
		config.TKeyEvtSummaryAge,
	}

	definedKeys := make(map[string]bool)
	for _, k := range keysToCheck {
		definedKeys[k] = true
	}

	for _, lang := range config.SupportedLanguages {
		t.Run(lang, func(t *testing.T) {
			path := fmt.Sprintf("locales/active.%s.json", lang)
			content, err := os.ReadFile(path)
			require.NoErrorf(t, err, "Must load %s", path)

			var jsonMap map[string]interface{}
			err = json.Unmarshal(content, &jsonMap)
			require.NoError(t, err, "JSON must be valid")

			for key := range definedKeys {
				_, exists := jsonMap[key]
				assert.Truef(t, exists, "Key '%s' defined in config.go is missing in %s", key, path)
			}

			// Check for orphan keys in JSON (keys that exist in JSON but not in Go)
			for jsonKey := range jsonMap {
				if strings.HasPrefix(jsonKey, "_") {
					continue
				}
				if !definedKeys[jsonKey] {
					t.Logf("Warning: Key '%s' exists in %s but is not checked in the test suite (might be unused)", jsonKey, path)
				}
			}
		})
	}
}
