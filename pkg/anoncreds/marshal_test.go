package anoncreds

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/anoncreds/anoncreds-go/internal/native"
	"github.com/anoncreds/anoncreds-go/internal/native/mocks"
	"github.com/anoncreds/anoncreds-go/pkg/anoncreds/logging"
)

func newMocked(t *testing.T) (*Anoncreds, *mocks.MockLibrary) {
	t.Helper()
	ctrl := gomock.NewController(t)
	lib := mocks.NewMockLibrary(ctrl)
	return New(lib, WithLogger(logging.Discard())), lib
}

// cstr returns a NUL-terminated string the mock can hand out as native
// memory.
func cstr(s string) *byte {
	b := append([]byte(s), 0)
	return &b[0]
}

func TestCreateCredentialMarshaling(t *testing.T) {
	a, lib := newMocked(t)
	ctx := context.Background()

	lib.EXPECT().
		CreateCredential(native.ObjectHandle(1), native.ObjectHandle(2), native.ObjectHandle(3), native.ObjectHandle(4),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_, _, _, _ native.ObjectHandle, names, raws, encoded native.FfiStrList, rev *native.FfiCredRevInfo, out *native.ObjectHandle) native.ErrorCode {
			assert.Equal(t, []string{"age", "name", "sex"}, names.Strings())
			assert.Equal(t, []string{"28", "Alex", "male"}, raws.Strings())
			assert.Equal(t, []string{"28", "99", "7"}, encoded.Strings())
			require.NotNil(t, rev)
			assert.Equal(t, native.FfiCredRevInfo{RegDef: 5, RegDefPrivate: 6, StatusList: 7, RegIdx: 3}, *rev)
			*out = 10
			return native.Success
		})

	h := func(n native.ObjectHandle) *ObjectHandle { return &ObjectHandle{handle: n, owner: a} }
	cred, err := a.CreateCredential(ctx, &CreateCredentialParams{
		CredentialDefinition:        h(1),
		CredentialDefinitionPrivate: h(2),
		CredentialOffer:             h(3),
		CredentialRequest:           h(4),
		AttributeRawValues:          map[string]string{"sex": "male", "name": "Alex", "age": "28"},
		AttributeEncodedValues:      map[string]string{"name": "99", "sex": "7", "age": "28"},
		Revocation: &CredentialRevocationConfig{
			RegistryDefinition:        h(5),
			RegistryDefinitionPrivate: h(6),
			StatusList:                h(7),
			RegistryIndex:             3,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, uintptr(10), cred.Handle())
}

func TestCreateCredentialWithoutRevocation(t *testing.T) {
	a, lib := newMocked(t)

	lib.EXPECT().
		CreateCredential(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_, _, _, _ native.ObjectHandle, _, _, encoded native.FfiStrList, rev *native.FfiCredRevInfo, out *native.ObjectHandle) native.ErrorCode {
			assert.Zero(t, encoded.Count)
			assert.Nil(t, rev)
			*out = 11
			return native.Success
		})

	h := func(n native.ObjectHandle) *ObjectHandle { return &ObjectHandle{handle: n, owner: a} }
	_, err := a.CreateCredential(context.Background(), &CreateCredentialParams{
		CredentialDefinition:        h(1),
		CredentialDefinitionPrivate: h(2),
		CredentialOffer:             h(3),
		CredentialRequest:           h(4),
		AttributeRawValues:          map[string]string{"name": "Alex"},
	})
	require.NoError(t, err)
}

func TestCreatePresentationMarshaling(t *testing.T) {
	a, lib := newMocked(t)
	h := func(n native.ObjectHandle) *ObjectHandle { return &ObjectHandle{handle: n, owner: a} }

	lib.EXPECT().
		CreatePresentation(native.ObjectHandle(1), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ native.ObjectHandle, entries native.FfiCredentialEntryList, proves native.FfiCredentialProveList,
			selfNames, selfValues native.FfiStrList, linkSecret *byte, schemas native.FfiObjectHandleList, schemaIDs native.FfiStrList,
			credDefs native.FfiObjectHandleList, credDefIDs native.FfiStrList, out *native.ObjectHandle) native.ErrorCode {
			assert.Equal(t, []native.FfiCredentialEntry{
				{Credential: 2, Timestamp: 12, RevState: 3},
				{Credential: 4, Timestamp: -1, RevState: 0},
			}, entries.Entries())

			ps := proves.Proves()
			require.Len(t, ps, 2)
			assert.Equal(t, int64(1), ps[0].EntryIdx)
			assert.Equal(t, "attr1_referent", native.GoString(ps[0].Referent))
			assert.Equal(t, int8(0), ps[0].IsPredicate)
			assert.Equal(t, int8(1), ps[0].Reveal)
			assert.Equal(t, int8(1), ps[1].IsPredicate)

			assert.Equal(t, []string{"attr2_referent", "attr3_referent"}, selfNames.Strings())
			assert.Equal(t, []string{"b", "a"}, selfValues.Strings())
			assert.Equal(t, "secret", native.GoString(linkSecret))
			assert.Equal(t, []string{"schema:a", "schema:b"}, schemaIDs.Strings())
			assert.Equal(t, []native.ObjectHandle{6, 5}, schemas.Handles())
			assert.Equal(t, []string{"cd:1"}, credDefIDs.Strings())
			assert.Equal(t, []native.ObjectHandle{7}, credDefs.Handles())
			*out = 20
			return native.Success
		})

	ts := int64(12)
	_, err := a.CreatePresentation(context.Background(), &CreatePresentationParams{
		PresentationRequest: h(1),
		Credentials: []CredentialEntry{
			{Credential: h(2), Timestamp: &ts, RevocationState: h(3)},
			{Credential: h(4)},
		},
		CredentialsProve: []CredentialProve{
			{EntryIndex: 1, Referent: "attr1_referent", Reveal: true},
			{EntryIndex: 0, Referent: "predicate1_referent", IsPredicate: true, Reveal: true},
		},
		SelfAttest:            map[string]string{"attr3_referent": "a", "attr2_referent": "b"},
		LinkSecret:            "secret",
		Schemas:               map[string]*ObjectHandle{"schema:b": h(5), "schema:a": h(6)},
		CredentialDefinitions: map[string]*ObjectHandle{"cd:1": h(7)},
	})
	require.NoError(t, err)
}

func TestVerifyPresentationMarshaling(t *testing.T) {
	a, lib := newMocked(t)
	h := func(n native.ObjectHandle) *ObjectHandle { return &ObjectHandle{handle: n, owner: a} }

	lib.EXPECT().
		VerifyW3cPresentation(native.ObjectHandle(1), native.ObjectHandle(2), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(),
			gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_, _ native.ObjectHandle, schemas native.FfiObjectHandleList, schemaIDs native.FfiStrList,
			credDefs native.FfiObjectHandleList, credDefIDs native.FfiStrList, revRegDefs native.FfiObjectHandleList, revRegDefIDs native.FfiStrList,
			lists native.FfiObjectHandleList, overrides native.FfiNonrevokedIntervalOverrideList, valid *int8) native.ErrorCode {
			assert.Equal(t, []native.ObjectHandle{3}, schemas.Handles())
			assert.Equal(t, []string{"s"}, schemaIDs.Strings())
			assert.Zero(t, revRegDefs.Count)
			assert.Zero(t, revRegDefIDs.Count)
			assert.Zero(t, lists.Count)
			ovs := overrides.Overrides()
			require.Len(t, ovs, 1)
			assert.Equal(t, "rr", native.GoString(ovs[0].RevRegDefID))
			assert.Equal(t, int32(13), ovs[0].RequestedFromTs)
			assert.Equal(t, int32(12), ovs[0].OverrideRevStatusListTs)
			*valid = 1
			return native.Success
		})

	ok, err := a.VerifyW3cPresentation(context.Background(), &VerifyPresentationParams{
		Presentation:                h(1),
		PresentationRequest:         h(2),
		SchemaIDs:                   []string{"s"},
		Schemas:                     []*ObjectHandle{h(3)},
		CredentialDefinitionIDs:     []string{"c"},
		CredentialDefinitions:       []*ObjectHandle{h(4)},
		NonRevokedIntervalOverrides: []NonRevokedIntervalOverride{{"rr", 13, 12}},
	})
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestAbsentTimestampLowersToSentinel(t *testing.T) {
	a, lib := newMocked(t)
	h := func(n native.ObjectHandle) *ObjectHandle { return &ObjectHandle{handle: n, owner: a} }

	lib.EXPECT().
		CreateRevocationStatusList(native.ObjectHandle(1), gomock.Any(), native.ObjectHandle(2), native.ObjectHandle(3), gomock.Any(),
			int8(0), int64(-1), gomock.Any()).
		DoAndReturn(func(_ native.ObjectHandle, id *byte, _, _ native.ObjectHandle, issuer *byte, _ int8, _ int64, out *native.ObjectHandle) native.ErrorCode {
			assert.Equal(t, "rr:1", native.GoString(id))
			assert.Equal(t, "did:1", native.GoString(issuer))
			*out = 9
			return native.Success
		})

	_, err := a.CreateRevocationStatusList(context.Background(), &CreateRevocationStatusListParams{
		CredentialDefinition:                h(1),
		RevocationRegistryDefinitionID:      "rr:1",
		RevocationRegistryDefinition:        h(2),
		RevocationRegistryDefinitionPrivate: h(3),
		IssuerID:                            "did:1",
	})
	require.NoError(t, err)
}

func TestEmptyOptionalStringsLowerToNull(t *testing.T) {
	a, lib := newMocked(t)
	h := func(n native.ObjectHandle) *ObjectHandle { return &ObjectHandle{handle: n, owner: a} }

	lib.EXPECT().
		CreateCredentialRequest(gomock.Nil(), gomock.Any(), native.ObjectHandle(1), gomock.Any(), gomock.Any(), native.ObjectHandle(2), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_, proverDID *byte, _ native.ObjectHandle, linkSecret, linkSecretID *byte, _ native.ObjectHandle, req, meta *native.ObjectHandle) native.ErrorCode {
			assert.Equal(t, "did:prover", native.GoString(proverDID))
			assert.Equal(t, "secret", native.GoString(linkSecret))
			assert.Equal(t, "default", native.GoString(linkSecretID))
			*req, *meta = 3, 4
			return native.Success
		})

	res, err := a.CreateCredentialRequest(context.Background(), &CreateCredentialRequestParams{
		ProverDID:            "did:prover",
		CredentialDefinition: h(1),
		LinkSecret:           "secret",
		LinkSecretID:         "default",
		CredentialOffer:      h(2),
	})
	require.NoError(t, err)
	assert.Equal(t, uintptr(3), res.CredentialRequest.Handle())
	assert.Equal(t, uintptr(4), res.CredentialRequestMetadata.Handle())
}

func TestPartialOutputsAreFreed(t *testing.T) {
	a, lib := newMocked(t)
	h := &ObjectHandle{handle: 1, owner: a}

	lib.EXPECT().
		CreateCredentialDefinition(gomock.Any(), native.ObjectHandle(1), gomock.Any(), gomock.Any(), gomock.Any(), int8(1), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ *byte, _ native.ObjectHandle, _, _, sigType *byte, _ int8, credDef, credDefPrivate, keyProof *native.ObjectHandle) native.ErrorCode {
			assert.Equal(t, "CL", native.GoString(sigType))
			*credDef, *credDefPrivate, *keyProof = 7, 0, 9
			return native.Success
		})
	lib.EXPECT().ObjectFree(native.ObjectHandle(7))
	lib.EXPECT().ObjectFree(native.ObjectHandle(9))

	res, err := a.CreateCredentialDefinition(context.Background(), &CreateCredentialDefinitionParams{
		SchemaID: "s", Schema: h, IssuerID: "did", Tag: "t", SupportRevocation: true,
	})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, ErrUnexpectedNull)
}

func TestErrorRecordIsReadAndFreed(t *testing.T) {
	a, lib := newMocked(t)
	record := cstr(`{"code":3,"message":"state is broken"}`)

	gomock.InOrder(
		lib.EXPECT().GenerateNonce(gomock.Any()).Return(native.ErrorCode(3)),
		lib.EXPECT().GetCurrentError(gomock.Any()).DoAndReturn(func(out **byte) native.ErrorCode {
			*out = record
			return native.Success
		}),
		lib.EXPECT().StringFree(record),
	)

	_, err := a.GenerateNonce(context.Background())
	var aerr *Error
	require.ErrorAs(t, err, &aerr)
	assert.Equal(t, ErrorCodeInvalidState, aerr.Code)
	assert.Equal(t, "state is broken", aerr.Message)
	assert.Equal(t, native.FnGenerateNonce, aerr.Function)
	assert.False(t, aerr.Mismatch)
}

func TestNullOutputIsUnexpected(t *testing.T) {
	a, lib := newMocked(t)
	lib.EXPECT().CreateLinkSecret(gomock.Any()).Return(native.Success)

	_, err := a.CreateLinkSecret(context.Background())
	assert.ErrorIs(t, err, ErrUnexpectedNull)
}

func TestLinkSecretIsZeroizedAfterCall(t *testing.T) {
	a, lib := newMocked(t)
	var seen *byte
	lib.EXPECT().
		ProcessCredential(native.ObjectHandle(1), native.ObjectHandle(2), gomock.Any(), native.ObjectHandle(3), native.ObjectHandle(0), gomock.Any()).
		DoAndReturn(func(_, _ native.ObjectHandle, linkSecret *byte, _, _ native.ObjectHandle, out *native.ObjectHandle) native.ErrorCode {
			assert.Equal(t, "topsecret", native.GoString(linkSecret))
			seen = linkSecret
			*out = 4
			return native.Success
		})

	h := func(n native.ObjectHandle) *ObjectHandle { return &ObjectHandle{handle: n, owner: a} }
	_, err := a.ProcessCredential(context.Background(), &ProcessCredentialParams{
		Credential:                h(1),
		CredentialRequestMetadata: h(2),
		LinkSecret:                "topsecret",
		CredentialDefinition:      h(3),
	})
	require.NoError(t, err)
	require.NotNil(t, seen)
	assert.Equal(t, "", native.GoString(seen))
}
