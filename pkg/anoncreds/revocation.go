package anoncreds

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/anoncreds/anoncreds-go/internal/native"
)

// noTimestamp encodes an absent timestamp for the native signatures.
const noTimestamp = -1

// CreateRevocationRegistryDefinitionParams contains the inputs of
// CreateRevocationRegistryDefinition. RevocationRegistryType defaults to
// "CL_ACCUM"; an empty TailsDirectoryPath lets the library choose.
type CreateRevocationRegistryDefinitionParams struct {
	CredentialDefinition   *ObjectHandle
	CredentialDefinitionID string
	IssuerID               string
	Tag                    string
	RevocationRegistryType string
	MaximumCredentialCount int64
	TailsDirectoryPath     string
}

// CreateRevocationRegistryDefinitionResult holds the public definition and
// its private part.
type CreateRevocationRegistryDefinitionResult struct {
	RevocationRegistryDefinition        *ObjectHandle
	RevocationRegistryDefinitionPrivate *ObjectHandle
}

// Close releases both handles.
func (r *CreateRevocationRegistryDefinitionResult) Close() error {
	if r == nil {
		return nil
	}
	r.RevocationRegistryDefinition.Release()
	r.RevocationRegistryDefinitionPrivate.Release()
	return nil
}

func (a *Anoncreds) CreateRevocationRegistryDefinition(ctx context.Context, params *CreateRevocationRegistryDefinitionParams) (*CreateRevocationRegistryDefinitionResult, error) {
	if err := a.ready(); err != nil {
		return nil, err
	}
	if params == nil {
		return nil, errNilParams
	}
	regType := params.RevocationRegistryType
	if regType == "" {
		regType = "CL_ACCUM"
	}
	var (
		credDef                                        native.ObjectHandle
		credDefID, issuerID, tag, revRegType, tailsDir *byte
		maxCredNum                                     int64
		regDef, regDefPrivate                          *native.ObjectHandle
		res                                            *CreateRevocationRegistryDefinitionResult
	)
	err := a.invoke(ctx, nativeCall{
		op: "CreateRevocationRegistryDefinition",
		fn: native.FnCreateRevocationRegistryDef,
		args: []native.Arg{
			native.A("credentialDefinition", params.CredentialDefinition),
			native.A("credentialDefinitionId", params.CredentialDefinitionID),
			native.A("issuerId", params.IssuerID),
			native.A("tag", params.Tag),
			native.A("revocationRegistryType", regType),
			native.A("maximumCredentialCount", params.MaximumCredentialCount),
			native.A("tailsDirectoryPath", optionalString(params.TailsDirectoryPath)),
		},
		lower: func(l *lowerer) {
			credDef = l.handle("credentialDefinition")
			credDefID = l.text("credentialDefinitionId")
			issuerID = l.text("issuerId")
			tag = l.text("tag")
			revRegType = l.text("revocationRegistryType")
			maxCredNum = l.int64("maximumCredentialCount", 0)
			tailsDir = l.optText("tailsDirectoryPath")
			regDef, regDefPrivate = l.ar.OutHandle(), l.ar.OutHandle()
		},
		call: func() native.ErrorCode {
			return a.lib.CreateRevocationRegistryDef(credDef, credDefID, issuerID, tag, revRegType, maxCredNum, tailsDir, regDef, regDefPrivate)
		},
		collect: func() error {
			hs, err := a.adopt(native.FnCreateRevocationRegistryDef, *regDef, *regDefPrivate)
			if err != nil {
				return err
			}
			res = &CreateRevocationRegistryDefinitionResult{
				RevocationRegistryDefinition:        hs[0],
				RevocationRegistryDefinitionPrivate: hs[1],
			}
			return nil
		},
	})
	return res, err
}

// RevocationRegistryDefinitionGetAttribute reads one of id, max_cred_num,
// tails_hash or tails_location.
func (a *Anoncreds) RevocationRegistryDefinitionGetAttribute(ctx context.Context, def *ObjectHandle, name string) (string, error) {
	v, ok, err := a.getAttribute(ctx, "RevocationRegistryDefinitionGetAttribute",
		native.FnRevocationRegistryDefinitionGetAttribute, def, name, native.Library.RevocationRegistryDefinitionGetAttribute)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%s %s: %w", native.FnRevocationRegistryDefinitionGetAttribute, name, ErrUnexpectedNull)
	}
	return v, nil
}

func (a *Anoncreds) RevocationRegistryDefinitionID(ctx context.Context, def *ObjectHandle) (string, error) {
	return a.RevocationRegistryDefinitionGetAttribute(ctx, def, "id")
}

func (a *Anoncreds) RevocationRegistryDefinitionMaxCredNum(ctx context.Context, def *ObjectHandle) (int64, error) {
	v, err := a.RevocationRegistryDefinitionGetAttribute(ctx, def, "max_cred_num")
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("anoncreds: max_cred_num %q: %w", v, err)
	}
	return n, nil
}

func (a *Anoncreds) RevocationRegistryDefinitionTailsHash(ctx context.Context, def *ObjectHandle) (string, error) {
	return a.RevocationRegistryDefinitionGetAttribute(ctx, def, "tails_hash")
}

func (a *Anoncreds) RevocationRegistryDefinitionTailsLocation(ctx context.Context, def *ObjectHandle) (string, error) {
	return a.RevocationRegistryDefinitionGetAttribute(ctx, def, "tails_location")
}

// CreateRevocationStatusListParams contains the inputs of
// CreateRevocationStatusList. A nil Timestamp leaves the list unpublished.
type CreateRevocationStatusListParams struct {
	CredentialDefinition                *ObjectHandle
	RevocationRegistryDefinitionID      string
	RevocationRegistryDefinition        *ObjectHandle
	RevocationRegistryDefinitionPrivate *ObjectHandle
	IssuerID                            string
	IssuanceByDefault                   bool
	Timestamp                           *int64
}

func (a *Anoncreds) CreateRevocationStatusList(ctx context.Context, params *CreateRevocationStatusListParams) (*ObjectHandle, error) {
	if err := a.ready(); err != nil {
		return nil, err
	}
	if params == nil {
		return nil, errNilParams
	}
	var (
		credDef, revRegDef, revRegDefPrivate native.ObjectHandle
		revRegDefID, issuerID                *byte
		issuanceByDefault                    int8
		timestamp                            int64
		out                                  *native.ObjectHandle
		res                                  *ObjectHandle
	)
	err := a.invoke(ctx, nativeCall{
		op: "CreateRevocationStatusList",
		fn: native.FnCreateRevocationStatusList,
		args: []native.Arg{
			native.A("credentialDefinition", params.CredentialDefinition),
			native.A("revocationRegistryDefinitionId", params.RevocationRegistryDefinitionID),
			native.A("revocationRegistryDefinition", params.RevocationRegistryDefinition),
			native.A("revocationRegistryDefinitionPrivate", params.RevocationRegistryDefinitionPrivate),
			native.A("issuerId", params.IssuerID),
			native.A("issuanceByDefault", params.IssuanceByDefault),
			native.A("timestamp", params.Timestamp),
		},
		lower: func(l *lowerer) {
			credDef = l.handle("credentialDefinition")
			revRegDefID = l.text("revocationRegistryDefinitionId")
			revRegDef = l.handle("revocationRegistryDefinition")
			revRegDefPrivate = l.handle("revocationRegistryDefinitionPrivate")
			issuerID = l.text("issuerId")
			issuanceByDefault = l.int8("issuanceByDefault")
			timestamp = l.int64("timestamp", noTimestamp)
			out = l.ar.OutHandle()
		},
		call: func() native.ErrorCode {
			return a.lib.CreateRevocationStatusList(credDef, revRegDefID, revRegDef, revRegDefPrivate, issuerID, issuanceByDefault, timestamp, out)
		},
		collect: func() (err error) {
			res, err = a.adoptOne(native.FnCreateRevocationStatusList, *out)
			return err
		},
	})
	return res, err
}

// UpdateRevocationStatusListParams contains the inputs of
// UpdateRevocationStatusList. Issued and Revoked hold 1-based registry
// indices; nil means none. A nil Timestamp keeps the current one.
type UpdateRevocationStatusListParams struct {
	CredentialDefinition                *ObjectHandle
	RevocationRegistryDefinition        *ObjectHandle
	RevocationRegistryDefinitionPrivate *ObjectHandle
	CurrentRevocationStatusList         *ObjectHandle
	Issued                              []int32
	Revoked                             []int32
	Timestamp                           *int64
}

// UpdateRevocationStatusList returns a new status list. The current list is
// left untouched; see RevocationStatusList for handle replacement.
func (a *Anoncreds) UpdateRevocationStatusList(ctx context.Context, params *UpdateRevocationStatusListParams) (*ObjectHandle, error) {
	if err := a.ready(); err != nil {
		return nil, err
	}
	if params == nil {
		return nil, errNilParams
	}
	var (
		credDef, revRegDef, revRegDefPrivate, current native.ObjectHandle
		issued, revoked                               native.FfiI32List
		timestamp                                     int64
		out                                           *native.ObjectHandle
		res                                           *ObjectHandle
	)
	err := a.invoke(ctx, nativeCall{
		op: "UpdateRevocationStatusList",
		fn: native.FnUpdateRevocationStatusList,
		args: []native.Arg{
			native.A("credentialDefinition", params.CredentialDefinition),
			native.A("revocationRegistryDefinition", params.RevocationRegistryDefinition),
			native.A("revocationRegistryDefinitionPrivate", params.RevocationRegistryDefinitionPrivate),
			native.A("currentRevocationStatusList", params.CurrentRevocationStatusList),
			native.A("issued", params.Issued),
			native.A("revoked", params.Revoked),
			native.A("timestamp", params.Timestamp),
		},
		lower: func(l *lowerer) {
			credDef = l.handle("credentialDefinition")
			revRegDef = l.handle("revocationRegistryDefinition")
			revRegDefPrivate = l.handle("revocationRegistryDefinitionPrivate")
			current = l.handle("currentRevocationStatusList")
			issued = l.ints("issued")
			revoked = l.ints("revoked")
			timestamp = l.int64("timestamp", noTimestamp)
			out = l.ar.OutHandle()
		},
		call: func() native.ErrorCode {
			return a.lib.UpdateRevocationStatusList(credDef, revRegDef, revRegDefPrivate, current, issued, revoked, timestamp, out)
		},
		collect: func() (err error) {
			res, err = a.adoptOne(native.FnUpdateRevocationStatusList, *out)
			return err
		},
	})
	return res, err
}

// UpdateRevocationStatusListTimestampOnly returns a copy of current
// published at timestamp.
func (a *Anoncreds) UpdateRevocationStatusListTimestampOnly(ctx context.Context, current *ObjectHandle, timestamp int64) (*ObjectHandle, error) {
	var (
		ts     int64
		handle native.ObjectHandle
		out    *native.ObjectHandle
		res    *ObjectHandle
	)
	err := a.invoke(ctx, nativeCall{
		op: "UpdateRevocationStatusListTimestampOnly",
		fn: native.FnUpdateRevocationStatusListTimestampOnly,
		args: []native.Arg{
			native.A("timestamp", timestamp),
			native.A("currentRevocationStatusList", current),
		},
		lower: func(l *lowerer) {
			ts = l.int64("timestamp", noTimestamp)
			handle = l.handle("currentRevocationStatusList")
			out = l.ar.OutHandle()
		},
		call: func() native.ErrorCode {
			return a.lib.UpdateRevocationStatusListTimestampOnly(ts, handle, out)
		},
		collect: func() (err error) {
			res, err = a.adoptOne(native.FnUpdateRevocationStatusListTimestampOnly, *out)
			return err
		},
	})
	return res, err
}

// RevocationStatusList tracks the current status list of one registry.
// Updates replace the held handle and release the previous one.
type RevocationStatusList struct {
	owner   *Anoncreds
	mu      sync.Mutex
	current *ObjectHandle
}

// NewRevocationStatusList takes ownership of current.
func (a *Anoncreds) NewRevocationStatusList(current *ObjectHandle) *RevocationStatusList {
	return &RevocationStatusList{owner: a, current: current}
}

// Current returns the held handle. It stays valid until the next update.
func (s *RevocationStatusList) Current() *ObjectHandle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Update applies params with CurrentRevocationStatusList set to the held
// list.
func (s *RevocationStatusList) Update(ctx context.Context, params UpdateRevocationStatusListParams) (*ObjectHandle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	params.CurrentRevocationStatusList = s.current
	next, err := s.owner.UpdateRevocationStatusList(ctx, &params)
	if err != nil {
		return nil, err
	}
	s.swap(next)
	return next, nil
}

// UpdateTimestamp republishes the held list at timestamp.
func (s *RevocationStatusList) UpdateTimestamp(ctx context.Context, timestamp int64) (*ObjectHandle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := s.owner.UpdateRevocationStatusListTimestampOnly(ctx, s.current, timestamp)
	if err != nil {
		return nil, err
	}
	s.swap(next)
	return next, nil
}

func (s *RevocationStatusList) swap(next *ObjectHandle) {
	prev := s.current
	s.current = next
	prev.Release()
}

// Close releases the held list.
func (s *RevocationStatusList) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current.Release()
	return nil
}

// CreateOrUpdateRevocationStateParams contains the inputs of
// CreateOrUpdateRevocationState. OldRevocationState and
// OldRevocationStatusList are set together when updating.
type CreateOrUpdateRevocationStateParams struct {
	RevocationRegistryDefinition *ObjectHandle
	RevocationStatusList         *ObjectHandle
	RevocationRegistryIndex      int64
	TailsPath                    string
	OldRevocationState           *ObjectHandle
	OldRevocationStatusList      *ObjectHandle
}

func (a *Anoncreds) CreateOrUpdateRevocationState(ctx context.Context, params *CreateOrUpdateRevocationStateParams) (*ObjectHandle, error) {
	if err := a.ready(); err != nil {
		return nil, err
	}
	if params == nil {
		return nil, errNilParams
	}
	var (
		revRegDef, statusList, oldState, oldList native.ObjectHandle
		regIdx                                   int64
		tailsPath                                *byte
		out                                      *native.ObjectHandle
		res                                      *ObjectHandle
	)
	err := a.invoke(ctx, nativeCall{
		op: "CreateOrUpdateRevocationState",
		fn: native.FnCreateOrUpdateRevocationState,
		args: []native.Arg{
			native.A("revocationRegistryDefinition", params.RevocationRegistryDefinition),
			native.A("revocationStatusList", params.RevocationStatusList),
			native.A("revocationRegistryIndex", params.RevocationRegistryIndex),
			native.A("tailsPath", params.TailsPath),
			native.A("oldRevocationState", params.OldRevocationState),
			native.A("oldRevocationStatusList", params.OldRevocationStatusList),
		},
		lower: func(l *lowerer) {
			revRegDef = l.handle("revocationRegistryDefinition")
			statusList = l.handle("revocationStatusList")
			regIdx = l.int64("revocationRegistryIndex", 0)
			tailsPath = l.text("tailsPath")
			oldState = l.optHandle("oldRevocationState")
			oldList = l.optHandle("oldRevocationStatusList")
			out = l.ar.OutHandle()
		},
		call: func() native.ErrorCode {
			return a.lib.CreateOrUpdateRevocationState(revRegDef, statusList, regIdx, tailsPath, oldState, oldList, out)
		},
		collect: func() (err error) {
			res, err = a.adoptOne(native.FnCreateOrUpdateRevocationState, *out)
			return err
		},
	})
	return res, err
}
