package anoncreds

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/anoncreds/anoncreds-go/internal/native"
	"github.com/anoncreds/anoncreds-go/pkg/anoncreds/logging"
)

// CreateLinkSecret returns a new holder link secret. Treat the value as a
// private key: never log it.
func (a *Anoncreds) CreateLinkSecret(ctx context.Context) (string, error) {
	var (
		out    **byte
		secret string
	)
	err := a.invoke(ctx, nativeCall{
		op:    "CreateLinkSecret",
		fn:    native.FnCreateLinkSecret,
		lower: func(l *lowerer) { out = l.ar.OutString() },
		call:  func() native.ErrorCode { return a.lib.CreateLinkSecret(out) },
		collect: func() (err error) {
			secret, err = a.takeString(native.FnCreateLinkSecret, *out)
			return err
		},
	})
	return secret, err
}

// NewLinkSecretID returns a random identifier for naming a link secret in
// credential requests.
func NewLinkSecretID() string {
	return uuid.NewString()
}

// CreateCredentialOfferParams contains the inputs of CreateCredentialOffer.
type CreateCredentialOfferParams struct {
	SchemaID               string
	CredentialDefinitionID string
	KeyCorrectnessProof    *ObjectHandle
}

func (a *Anoncreds) CreateCredentialOffer(ctx context.Context, params *CreateCredentialOfferParams) (*ObjectHandle, error) {
	if err := a.ready(); err != nil {
		return nil, err
	}
	if params == nil {
		return nil, errNilParams
	}
	var (
		schemaID, credDefID *byte
		keyProof            native.ObjectHandle
		out                 *native.ObjectHandle
		res                 *ObjectHandle
	)
	err := a.invoke(ctx, nativeCall{
		op: "CreateCredentialOffer",
		fn: native.FnCreateCredentialOffer,
		args: []native.Arg{
			native.A("schemaId", params.SchemaID),
			native.A("credentialDefinitionId", params.CredentialDefinitionID),
			native.A("keyCorrectnessProof", params.KeyCorrectnessProof),
		},
		lower: func(l *lowerer) {
			schemaID = l.text("schemaId")
			credDefID = l.text("credentialDefinitionId")
			keyProof = l.handle("keyCorrectnessProof")
			out = l.ar.OutHandle()
		},
		call: func() native.ErrorCode {
			return a.lib.CreateCredentialOffer(schemaID, credDefID, keyProof, out)
		},
		collect: func() (err error) {
			res, err = a.adoptOne(native.FnCreateCredentialOffer, *out)
			return err
		},
	})
	return res, err
}

// CreateCredentialRequestParams contains the inputs of
// CreateCredentialRequest. Exactly one of Entropy and ProverDID should be
// set.
type CreateCredentialRequestParams struct {
	Entropy              string
	ProverDID            string
	CredentialDefinition *ObjectHandle
	LinkSecret           string
	LinkSecretID         string
	CredentialOffer      *ObjectHandle
}

// CreateCredentialRequestResult holds the request sent to the issuer and the
// metadata the holder keeps for ProcessCredential.
type CreateCredentialRequestResult struct {
	CredentialRequest         *ObjectHandle
	CredentialRequestMetadata *ObjectHandle
}

// Close releases both handles.
func (r *CreateCredentialRequestResult) Close() error {
	if r == nil {
		return nil
	}
	r.CredentialRequest.Release()
	r.CredentialRequestMetadata.Release()
	return nil
}

func (a *Anoncreds) CreateCredentialRequest(ctx context.Context, params *CreateCredentialRequestParams) (*CreateCredentialRequestResult, error) {
	if err := a.ready(); err != nil {
		return nil, err
	}
	if params == nil {
		return nil, errNilParams
	}
	a.log.Debug(ctx, "creating credential request", "link_secret_id", params.LinkSecretID, logging.Redacted("link_secret"))
	var (
		entropy, proverDID, linkSecret, linkSecretID *byte
		credDef, credOffer                           native.ObjectHandle
		request, metadata                            *native.ObjectHandle
		res                                          *CreateCredentialRequestResult
	)
	err := a.invoke(ctx, nativeCall{
		op: "CreateCredentialRequest",
		fn: native.FnCreateCredentialRequest,
		args: []native.Arg{
			native.A("entropy", optionalString(params.Entropy)),
			native.A("proverDid", optionalString(params.ProverDID)),
			native.A("credentialDefinition", params.CredentialDefinition),
			native.A("linkSecret", params.LinkSecret),
			native.A("linkSecretId", params.LinkSecretID),
			native.A("credentialOffer", params.CredentialOffer),
		},
		lower: func(l *lowerer) {
			entropy = l.optText("entropy")
			proverDID = l.optText("proverDid")
			credDef = l.handle("credentialDefinition")
			linkSecret = l.secret("linkSecret")
			linkSecretID = l.text("linkSecretId")
			credOffer = l.handle("credentialOffer")
			request, metadata = l.ar.OutHandle(), l.ar.OutHandle()
		},
		call: func() native.ErrorCode {
			return a.lib.CreateCredentialRequest(entropy, proverDID, credDef, linkSecret, linkSecretID, credOffer, request, metadata)
		},
		collect: func() error {
			hs, err := a.adopt(native.FnCreateCredentialRequest, *request, *metadata)
			if err != nil {
				return err
			}
			res = &CreateCredentialRequestResult{CredentialRequest: hs[0], CredentialRequestMetadata: hs[1]}
			return nil
		},
	})
	return res, err
}

// optionalString maps the empty string to an absent argument.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// CreateCredentialParams contains the inputs of CreateCredential.
// AttributeEncodedValues, when set, must have the same keys as
// AttributeRawValues. Revocation is nil for non-revocable credentials.
type CreateCredentialParams struct {
	CredentialDefinition        *ObjectHandle
	CredentialDefinitionPrivate *ObjectHandle
	CredentialOffer             *ObjectHandle
	CredentialRequest           *ObjectHandle
	AttributeRawValues          map[string]string
	AttributeEncodedValues      map[string]string
	Revocation                  *CredentialRevocationConfig
}

// revocationArgs flattens cfg into named arguments so handle checks and
// serialization apply to each field.
func revocationArgs(cfg *CredentialRevocationConfig) []native.Arg {
	if cfg == nil {
		return nil
	}
	return []native.Arg{
		native.A("revocationRegistryDefinition", cfg.RegistryDefinition),
		native.A("revocationRegistryDefinitionPrivate", cfg.RegistryDefinitionPrivate),
		native.A("revocationStatusList", cfg.StatusList),
		native.A("revocationRegistryIndex", cfg.RegistryIndex),
	}
}

// revInfo lowers the flattened revocation config. It returns nil when no
// config was supplied.
func (l *lowerer) revInfo(present bool) *native.FfiCredRevInfo {
	if !present {
		return nil
	}
	info := &native.FfiCredRevInfo{
		RegDef:        l.handle("revocationRegistryDefinition"),
		RegDefPrivate: l.handle("revocationRegistryDefinitionPrivate"),
		StatusList:    l.handle("revocationStatusList"),
		RegIdx:        l.int64("revocationRegistryIndex", 0),
	}
	if l.err != nil {
		return nil
	}
	return l.ar.CredRevInfo(info)
}

func (a *Anoncreds) CreateCredential(ctx context.Context, params *CreateCredentialParams) (*ObjectHandle, error) {
	if err := a.ready(); err != nil {
		return nil, err
	}
	if params == nil {
		return nil, errNilParams
	}
	names, raws := splitStrings(params.AttributeRawValues)
	var encoded []string
	if params.AttributeEncodedValues != nil {
		var err error
		if encoded, err = orderedValues("attributeEncodedValues", names, params.AttributeEncodedValues); err != nil {
			return nil, err
		}
	}
	args := append([]native.Arg{
		native.A("credentialDefinition", params.CredentialDefinition),
		native.A("credentialDefinitionPrivate", params.CredentialDefinitionPrivate),
		native.A("credentialOffer", params.CredentialOffer),
		native.A("credentialRequest", params.CredentialRequest),
		native.A("attributeNames", names),
		native.A("attributeRawValues", raws),
		native.A("attributeEncodedValues", encoded),
	}, revocationArgs(params.Revocation)...)

	var (
		credDef, credDefPrivate, credOffer, credRequest native.ObjectHandle
		attrNames, attrRaw, attrEnc                     native.FfiStrList
		revocation                                      *native.FfiCredRevInfo
		out                                             *native.ObjectHandle
		res                                             *ObjectHandle
	)
	err := a.invoke(ctx, nativeCall{
		op:   "CreateCredential",
		fn:   native.FnCreateCredential,
		args: args,
		lower: func(l *lowerer) {
			credDef = l.handle("credentialDefinition")
			credDefPrivate = l.handle("credentialDefinitionPrivate")
			credOffer = l.handle("credentialOffer")
			credRequest = l.handle("credentialRequest")
			attrNames = l.strs("attributeNames")
			attrRaw = l.strs("attributeRawValues")
			attrEnc = l.strs("attributeEncodedValues")
			revocation = l.revInfo(params.Revocation != nil)
			out = l.ar.OutHandle()
		},
		call: func() native.ErrorCode {
			return a.lib.CreateCredential(credDef, credDefPrivate, credOffer, credRequest, attrNames, attrRaw, attrEnc, revocation, out)
		},
		collect: func() (err error) {
			res, err = a.adoptOne(native.FnCreateCredential, *out)
			return err
		},
	})
	return res, err
}

// EncodeCredentialAttributes returns the native encoding of each raw value,
// in order.
func (a *Anoncreds) EncodeCredentialAttributes(ctx context.Context, rawValues []string) ([]string, error) {
	var (
		raws native.FfiStrList
		out  **byte
		res  []string
	)
	err := a.invoke(ctx, nativeCall{
		op:   "EncodeCredentialAttributes",
		fn:   native.FnEncodeCredentialAttributes,
		args: []native.Arg{native.A("attributeRawValues", rawValues)},
		lower: func(l *lowerer) {
			raws = l.strs("attributeRawValues")
			out = l.ar.OutString()
		},
		call: func() native.ErrorCode { return a.lib.EncodeCredentialAttributes(raws, out) },
		collect: func() error {
			joined, err := a.takeString(native.FnEncodeCredentialAttributes, *out)
			if err != nil {
				return err
			}
			if joined != "" {
				res = strings.Split(joined, ",")
			}
			return nil
		},
	})
	return res, err
}

// ProcessCredentialParams contains the inputs of ProcessCredential.
// RevocationRegistryDefinition is required for revocable credentials only.
type ProcessCredentialParams struct {
	Credential                   *ObjectHandle
	CredentialRequestMetadata    *ObjectHandle
	LinkSecret                   string
	CredentialDefinition         *ObjectHandle
	RevocationRegistryDefinition *ObjectHandle
}

func (p *ProcessCredentialParams) args() []native.Arg {
	return []native.Arg{
		native.A("credential", p.Credential),
		native.A("credentialRequestMetadata", p.CredentialRequestMetadata),
		native.A("linkSecret", p.LinkSecret),
		native.A("credentialDefinition", p.CredentialDefinition),
		native.A("revocationRegistryDefinition", p.RevocationRegistryDefinition),
	}
}

// processCall builds the shared call of ProcessCredential and
// ProcessW3cCredential.
func (a *Anoncreds) processCall(op, fn string, params *ProcessCredentialParams, res **ObjectHandle,
	f func(lib native.Library, cred, meta native.ObjectHandle, linkSecret *byte, credDef, revRegDef native.ObjectHandle, out *native.ObjectHandle) native.ErrorCode) nativeCall {
	var (
		cred, meta, credDef, revRegDef native.ObjectHandle
		linkSecret                     *byte
		out                            *native.ObjectHandle
	)
	return nativeCall{
		op:   op,
		fn:   fn,
		args: params.args(),
		lower: func(l *lowerer) {
			cred = l.handle("credential")
			meta = l.handle("credentialRequestMetadata")
			linkSecret = l.secret("linkSecret")
			credDef = l.handle("credentialDefinition")
			revRegDef = l.optHandle("revocationRegistryDefinition")
			out = l.ar.OutHandle()
		},
		call: func() native.ErrorCode {
			return f(a.lib, cred, meta, linkSecret, credDef, revRegDef, out)
		},
		collect: func() (err error) {
			*res, err = a.adoptOne(fn, *out)
			return err
		},
	}
}

// ProcessCredential completes an issued credential on the holder side and
// returns the credential to store.
func (a *Anoncreds) ProcessCredential(ctx context.Context, params *ProcessCredentialParams) (*ObjectHandle, error) {
	if err := a.ready(); err != nil {
		return nil, err
	}
	if params == nil {
		return nil, errNilParams
	}
	var res *ObjectHandle
	err := a.invoke(ctx, a.processCall("ProcessCredential", native.FnProcessCredential, params, &res, native.Library.ProcessCredential))
	return res, err
}

// CredentialGetAttribute reads one of schema_id, cred_def_id, rev_reg_id or
// rev_reg_index. ok is false when the credential has no such value.
func (a *Anoncreds) CredentialGetAttribute(ctx context.Context, cred *ObjectHandle, name string) (value string, ok bool, err error) {
	return a.getAttribute(ctx, "CredentialGetAttribute", native.FnCredentialGetAttribute, cred, name, native.Library.CredentialGetAttribute)
}

// CredentialRevocationRegistryIndex returns the credential's slot in its
// revocation registry. ok is false for non-revocable credentials.
func (a *Anoncreds) CredentialRevocationRegistryIndex(ctx context.Context, cred *ObjectHandle) (int64, bool, error) {
	v, ok, err := a.CredentialGetAttribute(ctx, cred, "rev_reg_index")
	if err != nil || !ok {
		return 0, false, err
	}
	idx, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("anoncreds: rev_reg_index %q: %w", v, err)
	}
	return idx, true, nil
}

// getAttribute is the shared shape of the native attribute accessors.
func (a *Anoncreds) getAttribute(ctx context.Context, op, fn string, h *ObjectHandle, name string,
	f func(lib native.Library, handle native.ObjectHandle, name *byte, result **byte) native.ErrorCode) (string, bool, error) {
	var (
		handle native.ObjectHandle
		cname  *byte
		out    **byte
		value  string
		ok     bool
	)
	err := a.invoke(ctx, nativeCall{
		op:   op,
		fn:   fn,
		args: []native.Arg{native.A("handle", h), native.A("name", name)},
		lower: func(l *lowerer) {
			handle = l.handle("handle")
			cname = l.text("name")
			out = l.ar.OutString()
		},
		call: func() native.ErrorCode { return f(a.lib, handle, cname, out) },
		collect: func() error {
			value, ok = a.takeOptString(*out)
			return nil
		},
	})
	if err != nil {
		return "", false, err
	}
	return value, ok, nil
}
