package anoncreds

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitHandlesSortsByID(t *testing.T) {
	a, b := &ObjectHandle{handle: 1}, &ObjectHandle{handle: 2}
	ids, hs, err := splitHandles("schemas", map[string]*ObjectHandle{"z": a, "m": b})
	require.NoError(t, err)
	assert.Equal(t, []string{"m", "z"}, ids)
	assert.Equal(t, []*ObjectHandle{b, a}, hs)

	_, _, err = splitHandles("schemas", map[string]*ObjectHandle{"x": nil})
	var serr *SerializationError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "schemas", serr.Field)
}

func TestOrderedValues(t *testing.T) {
	got, err := orderedValues("enc", []string{"age", "name"}, map[string]string{"name": "1", "age": "2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "1"}, got)

	_, err = orderedValues("enc", []string{"age", "name"}, map[string]string{"name": "1", "height": "2"})
	assert.ErrorIs(t, err, ErrSerialization)
	_, err = orderedValues("enc", []string{"age"}, map[string]string{})
	assert.ErrorIs(t, err, ErrSerialization)
}

func TestCheckEntries(t *testing.T) {
	cred := &ObjectHandle{handle: 1}
	released := &ObjectHandle{handle: 2}
	released.released.Store(true)
	big := int64(math.MaxInt32) + 1

	tests := []struct {
		name    string
		entries []CredentialEntry
		proves  []CredentialProve
		wantErr error
	}{
		{"valid", []CredentialEntry{{Credential: cred}}, []CredentialProve{{EntryIndex: 0}}, nil},
		{"nil credential", []CredentialEntry{{}}, nil, ErrSerialization},
		{"released state", []CredentialEntry{{Credential: cred, RevocationState: released}}, nil, ErrHandleReleased},
		{"timestamp overflow", []CredentialEntry{{Credential: cred, Timestamp: &big}}, nil, ErrSerialization},
		{"prove index", []CredentialEntry{{Credential: cred}}, []CredentialProve{{EntryIndex: -1}}, ErrSerialization},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkEntries(tt.entries, tt.proves)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestErrorCodeString(t *testing.T) {
	assert.Equal(t, "Input", ErrorCodeInput.String())
	assert.Equal(t, "RevocationRegistryFull", ErrorCodeRevocationRegistryFull.String())
	assert.Equal(t, "ErrorCode(42)", ErrorCode(42).String())
	assert.Equal(t, ErrorCodeSuccess, CodeOf(nil))
}
