package anoncreds

import (
	"fmt"
	"sort"
)

// CredentialEntry is one credential offered to a presentation. Timestamp
// and RevocationState are only set for revocable credentials.
type CredentialEntry struct {
	Credential      *ObjectHandle
	Timestamp       *int64
	RevocationState *ObjectHandle
}

// CredentialProve points a requested referent at a credential entry.
type CredentialProve struct {
	EntryIndex  int64
	Referent    string
	IsPredicate bool
	Reveal      bool
}

// NonRevokedIntervalOverride lets a verifier accept a status list published
// at OverrideRevocationStatusListTimestamp for a request whose non-revoked
// interval starts at RequestedFromTimestamp.
type NonRevokedIntervalOverride struct {
	RevocationRegistryDefinitionID        string
	RequestedFromTimestamp                int32
	OverrideRevocationStatusListTimestamp int32
}

// CredentialRevocationConfig binds an issued credential to a revocation
// registry slot. RegistryIndex starts at 1.
type CredentialRevocationConfig struct {
	RegistryDefinition        *ObjectHandle
	RegistryDefinitionPrivate *ObjectHandle
	StatusList                *ObjectHandle
	RegistryIndex             int64
}

// splitStrings returns the keys of m in sorted order with their values.
func splitStrings(m map[string]string) (keys, values []string) {
	keys = make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	values = make([]string, len(keys))
	for i, k := range keys {
		values[i] = m[k]
	}
	return keys, values
}

// splitHandles returns the ids of m in sorted order with their handles.
func splitHandles(field string, m map[string]*ObjectHandle) ([]string, []*ObjectHandle, error) {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	hs := make([]*ObjectHandle, len(ids))
	for i, id := range ids {
		if m[id] == nil {
			return nil, nil, serializationErr(field, "nil handle for id %q", id)
		}
		hs[i] = m[id]
	}
	return ids, hs, nil
}

// orderedValues lists m's values in the order of names. Every name must be
// present and m must hold nothing else.
func orderedValues(field string, names []string, m map[string]string) ([]string, error) {
	if len(m) != len(names) {
		return nil, serializationErr(field, "expected %d values, got %d", len(names), len(m))
	}
	out := make([]string, len(names))
	for i, n := range names {
		v, ok := m[n]
		if !ok {
			return nil, serializationErr(field, "missing value for %q", n)
		}
		out[i] = v
	}
	return out, nil
}

// checkLive rejects nil or released handles in a record field.
func checkLive(field string, h *ObjectHandle) error {
	if h == nil {
		return serializationErr(field, "required handle missing")
	}
	if h.isReleased() {
		return fmt.Errorf("%s: %w", field, ErrHandleReleased)
	}
	return nil
}

// checkOptional is checkLive for fields where nil means absent.
func checkOptional(field string, h *ObjectHandle) error {
	if h == nil {
		return nil
	}
	return checkLive(field, h)
}
