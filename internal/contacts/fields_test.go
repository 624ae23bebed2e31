package contacts_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tartampluch/go-contacts/internal/config"
	"github.com/tartampluch/go-contacts/internal/contacts"
)

func TestNewPhone_Validation(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"Exactly ten digits", "0123456789", false},
		{"All zeros", "0000000000", false},
		{"Too short", "123", true},
		{"Too long", "01234567890", true},
		{"Letter inside", "012345678a", true},
		{"Spaces inside", "012 345 678", true},
		{"Plus prefix", "+123456789", true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := contacts.NewPhone(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, contacts.IsValidation(err), "rejected phone must carry the validation kind")
				assert.EqualError(t, err, fmt.Sprintf(config.ErrPhoneFormat, tt.value))
				return
			}
			require.NoError(t, err)
			// Round-trip: a stored value reads back verbatim.
			assert.Equal(t, tt.value, p.Value())
			assert.Equal(t, tt.value, p.String())
		})
	}
}

func TestPhone_Set_RejectsWithoutMutating(t *testing.T) {
	p, err := contacts.NewPhone("0123456789")
	require.NoError(t, err)

	// A failed update must leave the previous value intact.
	err = p.Set("bad")
	require.Error(t, err)
	assert.True(t, contacts.IsValidation(err))
	assert.Equal(t, "0123456789", p.Value())

	require.NoError(t, p.Set("9876543210"))
	assert.Equal(t, "9876543210", p.Value())
}

func TestPhone_Equal(t *testing.T) {
	a, err := contacts.NewPhone("0123456789")
	require.NoError(t, err)
	b, err := contacts.NewPhone("0123456789")
	require.NoError(t, err)
	c, err := contacts.NewPhone("9876543210")
	require.NoError(t, err)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestNewBirthday_Validation(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"Standard date", "10.06.2000", false},
		{"Leap day on leap year", "29.02.2000", false},
		{"First of January", "01.01.1999", false},
		{"Impossible day", "31.02.2000", true},
		{"Leap day on non-leap year", "29.02.2001", true},
		{"Day not zero-padded", "1.06.2000", true},
		{"Month not zero-padded", "10.6.2000", true},
		{"Two-digit year", "10.06.00", true},
		{"ISO order", "2000-06-10", true},
		{"Slashes", "10/06/2000", true},
		{"Garbage", "not-a-date", true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := contacts.NewBirthday(tt.value)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, contacts.IsValidation(err))
				// The message is part of the user contract and must match exactly.
				assert.EqualError(t, err, config.ErrDateFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.value, b.String(), "formatting a parsed birthday must reproduce the input")
		})
	}
}

func TestBirthday_Set_RejectsWithoutMutating(t *testing.T) {
	b, err := contacts.NewBirthday("10.06.2000")
	require.NoError(t, err)

	err = b.Set("31.02.2001")
	require.Error(t, err)
	assert.True(t, contacts.IsValidation(err))
	assert.Equal(t, "10.06.2000", b.String(), "failed update must not clobber the stored date")

	require.NoError(t, b.Set("01.01.1995"))
	assert.Equal(t, "01.01.1995", b.String())
}

func TestNewName(t *testing.T) {
	// Names are stored verbatim, surrounding spaces included; only blank
	// input is rejected.
	n, err := contacts.NewName(" Bob ")
	require.NoError(t, err)
	assert.Equal(t, " Bob ", n.Value())

	for _, value := range []string{"", "   ", "\t"} {
		_, err := contacts.NewName(value)
		require.Error(t, err, "value %q", value)
		assert.True(t, contacts.IsValidation(err))
		assert.EqualError(t, err, config.ErrNameEmpty)
	}
}

func TestNewField_CustomRule(t *testing.T) {
	ruleErr := errors.New("must be positive")
	positive := func(v int) error {
		if v <= 0 {
			return ruleErr
		}
		return nil
	}

	f, err := contacts.NewField(5, positive)
	require.NoError(t, err)
	assert.Equal(t, 5, f.Value())

	// The rule guards construction and every later update.
	_, err = contacts.NewField(-1, positive)
	assert.ErrorIs(t, err, ruleErr)

	err = f.Set(0)
	assert.ErrorIs(t, err, ruleErr)
	assert.Equal(t, 5, f.Value())

	// A nil rule accepts anything.
	free, err := contacts.NewField("anything", nil)
	require.NoError(t, err)
	assert.Equal(t, "anything", free.Value())
}

func TestErrorKinds(t *testing.T) {
	_, err := contacts.NewPhone("nope")
	require.Error(t, err)

	assert.True(t, contacts.IsValidation(err))
	assert.False(t, contacts.IsNotFound(err))
	assert.False(t, contacts.IsDuplicate(err))

	// Foreign errors carry no kind at all.
	plain := errors.New("boom")
	assert.False(t, contacts.IsValidation(plain))
	assert.False(t, contacts.IsNotFound(plain))
	assert.False(t, contacts.IsDuplicate(plain))
}
