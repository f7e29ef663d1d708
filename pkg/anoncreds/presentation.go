package anoncreds

import (
	"context"
	"fmt"
	"math"

	"github.com/anoncreds/anoncreds-go/internal/native"
	"github.com/anoncreds/anoncreds-go/pkg/anoncreds/logging"
)

// CreatePresentationParams contains the inputs of CreatePresentation.
// Schemas and CredentialDefinitions are keyed by ledger id.
// SelfAttest maps self-attested referents to their values.
type CreatePresentationParams struct {
	PresentationRequest   *ObjectHandle
	Credentials           []CredentialEntry
	CredentialsProve      []CredentialProve
	SelfAttest            map[string]string
	LinkSecret            string
	Schemas               map[string]*ObjectHandle
	CredentialDefinitions map[string]*ObjectHandle
}

// CreateW3cPresentationParams contains the inputs of CreateW3cPresentation.
// W3cVersion selects the data model, "1.1" or "2.0"; empty means 1.1.
type CreateW3cPresentationParams struct {
	PresentationRequest   *ObjectHandle
	Credentials           []CredentialEntry
	CredentialsProve      []CredentialProve
	LinkSecret            string
	Schemas               map[string]*ObjectHandle
	CredentialDefinitions map[string]*ObjectHandle
	W3cVersion            string
}

// presentationInputs is the lowered form shared by both presentation
// builders.
type presentationInputs struct {
	presReq      native.ObjectHandle
	entries      native.FfiCredentialEntryList
	proves       native.FfiCredentialProveList
	linkSecret   *byte
	schemas      native.FfiObjectHandleList
	schemaIDs    native.FfiStrList
	credDefs     native.FfiObjectHandleList
	credDefIDs   native.FfiStrList
	entriesInput []CredentialEntry
	provesInput  []CredentialProve
}

func presentationArgs(presReq *ObjectHandle, linkSecret string, schemas, credDefs map[string]*ObjectHandle) ([]native.Arg, error) {
	schemaIDs, schemaHandles, err := splitHandles("schemas", schemas)
	if err != nil {
		return nil, err
	}
	credDefIDs, credDefHandles, err := splitHandles("credentialDefinitions", credDefs)
	if err != nil {
		return nil, err
	}
	return []native.Arg{
		native.A("presentationRequest", presReq),
		native.A("linkSecret", linkSecret),
		native.A("schemaIds", schemaIDs),
		native.A("schemas", schemaHandles),
		native.A("credentialDefinitionIds", credDefIDs),
		native.A("credentialDefinitions", credDefHandles),
	}, nil
}

// checkEntries validates the handles referenced by credential entries.
func checkEntries(entries []CredentialEntry, proves []CredentialProve) error {
	for i, e := range entries {
		if err := checkLive(fmt.Sprintf("credentials[%d].credential", i), e.Credential); err != nil {
			return err
		}
		if err := checkOptional(fmt.Sprintf("credentials[%d].revocationState", i), e.RevocationState); err != nil {
			return err
		}
		if e.Timestamp != nil && (*e.Timestamp < math.MinInt32 || *e.Timestamp > math.MaxInt32) {
			return serializationErr(fmt.Sprintf("credentials[%d].timestamp", i), "value %d does not fit in int32", *e.Timestamp)
		}
	}
	for i, p := range proves {
		if p.EntryIndex < 0 || p.EntryIndex >= int64(len(entries)) {
			return serializationErr(fmt.Sprintf("credentialsProve[%d].entryIndex", i), "index %d out of range", p.EntryIndex)
		}
	}
	return nil
}

// entries lowers credential entries. Absent timestamps become -1 and
// absent revocation states the zero handle.
func (l *lowerer) entries(es []CredentialEntry) native.FfiCredentialEntryList {
	if l.err != nil {
		return native.FfiCredentialEntryList{}
	}
	out := make([]native.FfiCredentialEntry, len(es))
	for i, e := range es {
		ts := int32(noTimestamp)
		if e.Timestamp != nil {
			ts = int32(*e.Timestamp)
		}
		out[i] = native.FfiCredentialEntry{
			Credential: e.Credential.NativeHandle(),
			Timestamp:  ts,
			RevState:   e.RevocationState.NativeHandle(),
		}
	}
	return l.ar.CredentialEntries(out)
}

// proves lowers prove directives. Referents are copied into the arena.
func (l *lowerer) proves(ps []CredentialProve) native.FfiCredentialProveList {
	if l.err != nil {
		return native.FfiCredentialProveList{}
	}
	out := make([]native.FfiCredentialProve, len(ps))
	for i, p := range ps {
		out[i] = native.FfiCredentialProve{
			EntryIdx:    p.EntryIndex,
			Referent:    l.ar.CString(p.Referent),
			IsPredicate: boolInt8(p.IsPredicate),
			Reveal:      boolInt8(p.Reveal),
		}
	}
	return l.ar.CredentialProves(out)
}

func (l *lowerer) presentation(in *presentationInputs) {
	in.presReq = l.handle("presentationRequest")
	in.entries = l.entries(in.entriesInput)
	in.proves = l.proves(in.provesInput)
	in.linkSecret = l.secret("linkSecret")
	in.schemaIDs = l.strs("schemaIds")
	in.schemas = l.handles("schemas")
	in.credDefIDs = l.strs("credentialDefinitionIds")
	in.credDefs = l.handles("credentialDefinitions")
}

func boolInt8(b bool) int8 {
	if b {
		return 1
	}
	return 0
}

// CreatePresentation builds a presentation answering the request from the
// given credentials.
func (a *Anoncreds) CreatePresentation(ctx context.Context, params *CreatePresentationParams) (*ObjectHandle, error) {
	if err := a.ready(); err != nil {
		return nil, err
	}
	if params == nil {
		return nil, errNilParams
	}
	if err := checkEntries(params.Credentials, params.CredentialsProve); err != nil {
		return nil, err
	}
	args, err := presentationArgs(params.PresentationRequest, params.LinkSecret, params.Schemas, params.CredentialDefinitions)
	if err != nil {
		return nil, err
	}
	attestNames, attestValues := splitStrings(params.SelfAttest)
	args = append(args,
		native.A("selfAttestNames", attestNames),
		native.A("selfAttestValues", attestValues))

	a.log.Debug(ctx, "creating presentation", "credentials", len(params.Credentials), logging.Redacted("link_secret"))
	in := &presentationInputs{entriesInput: params.Credentials, provesInput: params.CredentialsProve}
	var (
		names, values native.FfiStrList
		out           *native.ObjectHandle
		res           *ObjectHandle
	)
	err = a.invoke(ctx, nativeCall{
		op:   "CreatePresentation",
		fn:   native.FnCreatePresentation,
		args: args,
		lower: func(l *lowerer) {
			l.presentation(in)
			names = l.strs("selfAttestNames")
			values = l.strs("selfAttestValues")
			out = l.ar.OutHandle()
		},
		call: func() native.ErrorCode {
			return a.lib.CreatePresentation(in.presReq, in.entries, in.proves, names, values, in.linkSecret,
				in.schemas, in.schemaIDs, in.credDefs, in.credDefIDs, out)
		},
		collect: func() (err error) {
			res, err = a.adoptOne(native.FnCreatePresentation, *out)
			return err
		},
	})
	return res, err
}

// CreateW3cPresentation builds a W3C verifiable presentation from W3C
// credentials.
func (a *Anoncreds) CreateW3cPresentation(ctx context.Context, params *CreateW3cPresentationParams) (*ObjectHandle, error) {
	if err := a.ready(); err != nil {
		return nil, err
	}
	if params == nil {
		return nil, errNilParams
	}
	if err := checkEntries(params.Credentials, params.CredentialsProve); err != nil {
		return nil, err
	}
	args, err := presentationArgs(params.PresentationRequest, params.LinkSecret, params.Schemas, params.CredentialDefinitions)
	if err != nil {
		return nil, err
	}
	args = append(args, native.A("w3cVersion", optionalString(params.W3cVersion)))

	in := &presentationInputs{entriesInput: params.Credentials, provesInput: params.CredentialsProve}
	var (
		version *byte
		out     *native.ObjectHandle
		res     *ObjectHandle
	)
	err = a.invoke(ctx, nativeCall{
		op:   "CreateW3cPresentation",
		fn:   native.FnCreateW3cPresentation,
		args: args,
		lower: func(l *lowerer) {
			l.presentation(in)
			version = l.optText("w3cVersion")
			out = l.ar.OutHandle()
		},
		call: func() native.ErrorCode {
			return a.lib.CreateW3cPresentation(in.presReq, in.entries, in.proves, in.linkSecret,
				in.schemas, in.schemaIDs, in.credDefs, in.credDefIDs, version, out)
		},
		collect: func() (err error) {
			res, err = a.adoptOne(native.FnCreateW3cPresentation, *out)
			return err
		},
	})
	return res, err
}

// VerifyPresentationParams contains the inputs of VerifyPresentation and
// VerifyW3cPresentation. Each id slice runs parallel to its handle slice.
// The revocation slices may be empty when the request asks for no
// non-revocation proof.
type VerifyPresentationParams struct {
	Presentation                    *ObjectHandle
	PresentationRequest             *ObjectHandle
	SchemaIDs                       []string
	Schemas                         []*ObjectHandle
	CredentialDefinitionIDs         []string
	CredentialDefinitions           []*ObjectHandle
	RevocationRegistryDefinitionIDs []string
	RevocationRegistryDefinitions   []*ObjectHandle
	RevocationStatusLists           []*ObjectHandle
	NonRevokedIntervalOverrides     []NonRevokedIntervalOverride
}

func (p *VerifyPresentationParams) validate() error {
	if len(p.SchemaIDs) != len(p.Schemas) {
		return serializationErr("schemaIds", "%d ids for %d schemas", len(p.SchemaIDs), len(p.Schemas))
	}
	if len(p.CredentialDefinitionIDs) != len(p.CredentialDefinitions) {
		return serializationErr("credentialDefinitionIds", "%d ids for %d credential definitions",
			len(p.CredentialDefinitionIDs), len(p.CredentialDefinitions))
	}
	if len(p.RevocationRegistryDefinitionIDs) != len(p.RevocationRegistryDefinitions) {
		return serializationErr("revocationRegistryDefinitionIds", "%d ids for %d revocation registry definitions",
			len(p.RevocationRegistryDefinitionIDs), len(p.RevocationRegistryDefinitions))
	}
	return nil
}

func (p *VerifyPresentationParams) args() []native.Arg {
	return []native.Arg{
		native.A("presentation", p.Presentation),
		native.A("presentationRequest", p.PresentationRequest),
		native.A("schemaIds", p.SchemaIDs),
		native.A("schemas", p.Schemas),
		native.A("credentialDefinitionIds", p.CredentialDefinitionIDs),
		native.A("credentialDefinitions", p.CredentialDefinitions),
		native.A("revocationRegistryDefinitionIds", p.RevocationRegistryDefinitionIDs),
		native.A("revocationRegistryDefinitions", p.RevocationRegistryDefinitions),
		native.A("revocationStatusLists", p.RevocationStatusLists),
	}
}

// overrides lowers interval overrides. Ids are copied into the arena.
func (l *lowerer) overrides(ovs []NonRevokedIntervalOverride) native.FfiNonrevokedIntervalOverrideList {
	if l.err != nil {
		return native.FfiNonrevokedIntervalOverrideList{}
	}
	out := make([]native.FfiNonrevokedIntervalOverride, len(ovs))
	for i, o := range ovs {
		out[i] = native.FfiNonrevokedIntervalOverride{
			RevRegDefID:             l.ar.CString(o.RevocationRegistryDefinitionID),
			RequestedFromTs:         o.RequestedFromTimestamp,
			OverrideRevStatusListTs: o.OverrideRevocationStatusListTimestamp,
		}
	}
	return l.ar.NonrevokedOverrides(out)
}

type verifyFunc func(lib native.Library, presentation, presReq native.ObjectHandle, schemas native.FfiObjectHandleList, schemaIDs native.FfiStrList,
	credDefs native.FfiObjectHandleList, credDefIDs native.FfiStrList, revRegDefs native.FfiObjectHandleList, revRegDefIDs native.FfiStrList,
	revStatusLists native.FfiObjectHandleList, overrides native.FfiNonrevokedIntervalOverrideList, valid *int8) native.ErrorCode

// verify runs either verification entry point. A false result means the
// proof did not verify; structural problems are errors.
func (a *Anoncreds) verify(ctx context.Context, op, fn string, params *VerifyPresentationParams, f verifyFunc) (bool, error) {
	if params == nil {
		return false, errNilParams
	}
	if err := params.validate(); err != nil {
		return false, err
	}
	var (
		presentation, presReq                      native.ObjectHandle
		schemas, credDefs, revRegDefs, statusLists native.FfiObjectHandleList
		schemaIDs, credDefIDs, revRegDefIDs        native.FfiStrList
		overrides                                  native.FfiNonrevokedIntervalOverrideList
		out                                        *int8
		valid                                      bool
	)
	err := a.invoke(ctx, nativeCall{
		op:   op,
		fn:   fn,
		args: params.args(),
		lower: func(l *lowerer) {
			presentation = l.handle("presentation")
			presReq = l.handle("presentationRequest")
			schemaIDs = l.strs("schemaIds")
			schemas = l.handles("schemas")
			credDefIDs = l.strs("credentialDefinitionIds")
			credDefs = l.handles("credentialDefinitions")
			revRegDefIDs = l.strs("revocationRegistryDefinitionIds")
			revRegDefs = l.handles("revocationRegistryDefinitions")
			statusLists = l.handles("revocationStatusLists")
			overrides = l.overrides(params.NonRevokedIntervalOverrides)
			out = l.ar.OutInt8()
		},
		call: func() native.ErrorCode {
			return f(a.lib, presentation, presReq, schemas, schemaIDs, credDefs, credDefIDs, revRegDefs, revRegDefIDs, statusLists, overrides, out)
		},
		collect: func() error {
			valid = *out != 0
			return nil
		},
	})
	return valid, err
}

// VerifyPresentation checks a presentation against its request.
func (a *Anoncreds) VerifyPresentation(ctx context.Context, params *VerifyPresentationParams) (bool, error) {
	return a.verify(ctx, "VerifyPresentation", native.FnVerifyPresentation, params, native.Library.VerifyPresentation)
}

// VerifyW3cPresentation checks a W3C presentation against its request.
func (a *Anoncreds) VerifyW3cPresentation(ctx context.Context, params *VerifyPresentationParams) (bool, error) {
	return a.verify(ctx, "VerifyW3cPresentation", native.FnVerifyW3cPresentation, params, native.Library.VerifyW3cPresentation)
}
