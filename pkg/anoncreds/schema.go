package anoncreds

import (
	"context"

	"github.com/anoncreds/anoncreds-go/internal/native"
)

// CreateSchemaParams contains the inputs of CreateSchema.
type CreateSchemaParams struct {
	Name           string
	Version        string
	IssuerID       string
	AttributeNames []string
}

// CreateSchema creates a schema. Attribute order is preserved.
func (a *Anoncreds) CreateSchema(ctx context.Context, params *CreateSchemaParams) (*ObjectHandle, error) {
	if err := a.ready(); err != nil {
		return nil, err
	}
	if params == nil {
		return nil, errNilParams
	}
	var (
		name, version, issuerID *byte
		attrNames               native.FfiStrList
		out                     *native.ObjectHandle
		res                     *ObjectHandle
	)
	err := a.invoke(ctx, nativeCall{
		op: "CreateSchema",
		fn: native.FnCreateSchema,
		args: []native.Arg{
			native.A("name", params.Name),
			native.A("version", params.Version),
			native.A("issuerId", params.IssuerID),
			native.A("attributeNames", params.AttributeNames),
		},
		lower: func(l *lowerer) {
			name = l.text("name")
			version = l.text("version")
			issuerID = l.text("issuerId")
			attrNames = l.strs("attributeNames")
			out = l.ar.OutHandle()
		},
		call: func() native.ErrorCode {
			return a.lib.CreateSchema(name, version, issuerID, attrNames, out)
		},
		collect: func() (err error) {
			res, err = a.adoptOne(native.FnCreateSchema, *out)
			return err
		},
	})
	return res, err
}

// CreateCredentialDefinitionParams contains the inputs of
// CreateCredentialDefinition. SignatureType defaults to "CL".
type CreateCredentialDefinitionParams struct {
	SchemaID          string
	Schema            *ObjectHandle
	IssuerID          string
	Tag               string
	SignatureType     string
	SupportRevocation bool
}

// CreateCredentialDefinitionResult holds the three objects produced by one
// native call.
type CreateCredentialDefinitionResult struct {
	CredentialDefinition        *ObjectHandle
	CredentialDefinitionPrivate *ObjectHandle
	KeyCorrectnessProof         *ObjectHandle
}

// Close releases all three handles.
func (r *CreateCredentialDefinitionResult) Close() error {
	if r == nil {
		return nil
	}
	r.CredentialDefinition.Release()
	r.CredentialDefinitionPrivate.Release()
	r.KeyCorrectnessProof.Release()
	return nil
}

// CreateCredentialDefinition creates a credential definition with its
// private part and key correctness proof.
func (a *Anoncreds) CreateCredentialDefinition(ctx context.Context, params *CreateCredentialDefinitionParams) (*CreateCredentialDefinitionResult, error) {
	if err := a.ready(); err != nil {
		return nil, err
	}
	if params == nil {
		return nil, errNilParams
	}
	sigType := params.SignatureType
	if sigType == "" {
		sigType = "CL"
	}
	var (
		schemaID, tag, issuerID, signatureType *byte
		schema                                 native.ObjectHandle
		supportRevocation                      int8
		credDef, credDefPrivate, keyProof      *native.ObjectHandle
		res                                    *CreateCredentialDefinitionResult
	)
	err := a.invoke(ctx, nativeCall{
		op: "CreateCredentialDefinition",
		fn: native.FnCreateCredentialDefinition,
		args: []native.Arg{
			native.A("schemaId", params.SchemaID),
			native.A("schema", params.Schema),
			native.A("tag", params.Tag),
			native.A("issuerId", params.IssuerID),
			native.A("signatureType", sigType),
			native.A("supportRevocation", params.SupportRevocation),
		},
		lower: func(l *lowerer) {
			schemaID = l.text("schemaId")
			schema = l.handle("schema")
			tag = l.text("tag")
			issuerID = l.text("issuerId")
			signatureType = l.text("signatureType")
			supportRevocation = l.int8("supportRevocation")
			credDef, credDefPrivate, keyProof = l.ar.OutHandle(), l.ar.OutHandle(), l.ar.OutHandle()
		},
		call: func() native.ErrorCode {
			return a.lib.CreateCredentialDefinition(schemaID, schema, tag, issuerID, signatureType, supportRevocation, credDef, credDefPrivate, keyProof)
		},
		collect: func() error {
			hs, err := a.adopt(native.FnCreateCredentialDefinition, *credDef, *credDefPrivate, *keyProof)
			if err != nil {
				return err
			}
			res = &CreateCredentialDefinitionResult{
				CredentialDefinition:        hs[0],
				CredentialDefinitionPrivate: hs[1],
				KeyCorrectnessProof:         hs[2],
			}
			return nil
		},
	})
	return res, err
}
