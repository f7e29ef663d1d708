package anoncreds

import (
	"context"
	"fmt"
	"strconv"

	"github.com/anoncreds/anoncreds-go/internal/native"
)

// CreateW3cCredentialParams contains the inputs of CreateW3cCredential.
// W3cVersion is "1.1" or "2.0"; empty means 1.1.
type CreateW3cCredentialParams struct {
	CredentialDefinition        *ObjectHandle
	CredentialDefinitionPrivate *ObjectHandle
	CredentialOffer             *ObjectHandle
	CredentialRequest           *ObjectHandle
	AttributeRawValues          map[string]string
	Revocation                  *CredentialRevocationConfig
	W3cVersion                  string
}

func (a *Anoncreds) CreateW3cCredential(ctx context.Context, params *CreateW3cCredentialParams) (*ObjectHandle, error) {
	if err := a.ready(); err != nil {
		return nil, err
	}
	if params == nil {
		return nil, errNilParams
	}
	names, raws := splitStrings(params.AttributeRawValues)
	args := append([]native.Arg{
		native.A("credentialDefinition", params.CredentialDefinition),
		native.A("credentialDefinitionPrivate", params.CredentialDefinitionPrivate),
		native.A("credentialOffer", params.CredentialOffer),
		native.A("credentialRequest", params.CredentialRequest),
		native.A("attributeNames", names),
		native.A("attributeRawValues", raws),
		native.A("w3cVersion", optionalString(params.W3cVersion)),
	}, revocationArgs(params.Revocation)...)

	var (
		credDef, credDefPrivate, credOffer, credRequest native.ObjectHandle
		attrNames, attrRaw                              native.FfiStrList
		revocation                                      *native.FfiCredRevInfo
		version                                         *byte
		out                                             *native.ObjectHandle
		res                                             *ObjectHandle
	)
	err := a.invoke(ctx, nativeCall{
		op:   "CreateW3cCredential",
		fn:   native.FnCreateW3cCredential,
		args: args,
		lower: func(l *lowerer) {
			credDef = l.handle("credentialDefinition")
			credDefPrivate = l.handle("credentialDefinitionPrivate")
			credOffer = l.handle("credentialOffer")
			credRequest = l.handle("credentialRequest")
			attrNames = l.strs("attributeNames")
			attrRaw = l.strs("attributeRawValues")
			revocation = l.revInfo(params.Revocation != nil)
			version = l.optText("w3cVersion")
			out = l.ar.OutHandle()
		},
		call: func() native.ErrorCode {
			return a.lib.CreateW3cCredential(credDef, credDefPrivate, credOffer, credRequest, attrNames, attrRaw, revocation, version, out)
		},
		collect: func() (err error) {
			res, err = a.adoptOne(native.FnCreateW3cCredential, *out)
			return err
		},
	})
	return res, err
}

// ProcessW3cCredential is ProcessCredential for W3C credentials.
func (a *Anoncreds) ProcessW3cCredential(ctx context.Context, params *ProcessCredentialParams) (*ObjectHandle, error) {
	if err := a.ready(); err != nil {
		return nil, err
	}
	if params == nil {
		return nil, errNilParams
	}
	var res *ObjectHandle
	err := a.invoke(ctx, a.processCall("ProcessW3cCredential", native.FnProcessW3cCredential, params, &res, native.Library.ProcessW3cCredential))
	return res, err
}

// CredentialToW3c converts a legacy credential issued by issuerID.
func (a *Anoncreds) CredentialToW3c(ctx context.Context, cred *ObjectHandle, issuerID, w3cVersion string) (*ObjectHandle, error) {
	var (
		handle          native.ObjectHandle
		issuer, version *byte
		out             *native.ObjectHandle
		res             *ObjectHandle
	)
	err := a.invoke(ctx, nativeCall{
		op: "CredentialToW3c",
		fn: native.FnCredentialToW3c,
		args: []native.Arg{
			native.A("credential", cred),
			native.A("issuerId", issuerID),
			native.A("w3cVersion", optionalString(w3cVersion)),
		},
		lower: func(l *lowerer) {
			handle = l.handle("credential")
			issuer = l.text("issuerId")
			version = l.optText("w3cVersion")
			out = l.ar.OutHandle()
		},
		call: func() native.ErrorCode { return a.lib.CredentialToW3c(handle, issuer, version, out) },
		collect: func() (err error) {
			res, err = a.adoptOne(native.FnCredentialToW3c, *out)
			return err
		},
	})
	return res, err
}

// CredentialFromW3c converts a W3C credential back to the legacy form.
func (a *Anoncreds) CredentialFromW3c(ctx context.Context, cred *ObjectHandle) (*ObjectHandle, error) {
	var (
		handle native.ObjectHandle
		out    *native.ObjectHandle
		res    *ObjectHandle
	)
	err := a.invoke(ctx, nativeCall{
		op:   "CredentialFromW3c",
		fn:   native.FnCredentialFromW3c,
		args: []native.Arg{native.A("credential", cred)},
		lower: func(l *lowerer) {
			handle = l.handle("credential")
			out = l.ar.OutHandle()
		},
		call: func() native.ErrorCode { return a.lib.CredentialFromW3c(handle, out) },
		collect: func() (err error) {
			res, err = a.adoptOne(native.FnCredentialFromW3c, *out)
			return err
		},
	})
	return res, err
}

// W3cCredentialGetIntegrityProofDetails returns a handle to the identifiers
// carried by the credential's integrity proof. Read them with
// W3cCredentialProofGetAttribute.
func (a *Anoncreds) W3cCredentialGetIntegrityProofDetails(ctx context.Context, cred *ObjectHandle) (*ObjectHandle, error) {
	var (
		handle native.ObjectHandle
		out    *native.ObjectHandle
		res    *ObjectHandle
	)
	err := a.invoke(ctx, nativeCall{
		op:   "W3cCredentialGetIntegrityProofDetails",
		fn:   native.FnW3cCredentialGetIntegrityProofDetails,
		args: []native.Arg{native.A("credential", cred)},
		lower: func(l *lowerer) {
			handle = l.handle("credential")
			out = l.ar.OutHandle()
		},
		call: func() native.ErrorCode { return a.lib.W3cCredentialGetIntegrityProofDetails(handle, out) },
		collect: func() (err error) {
			res, err = a.adoptOne(native.FnW3cCredentialGetIntegrityProofDetails, *out)
			return err
		},
	})
	return res, err
}

// W3cCredentialProofGetAttribute reads one of schema_id, cred_def_id,
// rev_reg_id, rev_reg_index or timestamp from proof details. ok is false
// when the value is absent.
func (a *Anoncreds) W3cCredentialProofGetAttribute(ctx context.Context, details *ObjectHandle, name string) (value string, ok bool, err error) {
	return a.getAttribute(ctx, "W3cCredentialProofGetAttribute", native.FnW3cCredentialProofGetAttribute, details, name, native.Library.W3cCredentialProofGetAttribute)
}

// W3cCredentialRevocationRegistryIndex reads rev_reg_index from proof
// details.
func (a *Anoncreds) W3cCredentialRevocationRegistryIndex(ctx context.Context, details *ObjectHandle) (int64, bool, error) {
	v, ok, err := a.W3cCredentialProofGetAttribute(ctx, details, "rev_reg_index")
	if err != nil || !ok {
		return 0, false, err
	}
	idx, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("anoncreds: rev_reg_index %q: %w", v, err)
	}
	return idx, true, nil
}
