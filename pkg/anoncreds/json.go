package anoncreds

import (
	"context"

	"github.com/anoncreds/anoncreds-go/internal/native"
)

// ObjectKind selects the JSON constructor used by FromJSON.
type ObjectKind = native.ObjectKind

const (
	KindSchema                              = native.ObjectSchema
	KindCredentialDefinition                = native.ObjectCredentialDefinition
	KindCredentialDefinitionPrivate         = native.ObjectCredentialDefinitionPrivate
	KindKeyCorrectnessProof                 = native.ObjectKeyCorrectnessProof
	KindRevocationRegistryDefinition        = native.ObjectRevocationRegistryDefinition
	KindRevocationRegistryDefinitionPrivate = native.ObjectRevocationRegistryDefinitionPrivate
	KindRevocationRegistry                  = native.ObjectRevocationRegistry
	KindRevocationStatusList                = native.ObjectRevocationStatusList
	KindRevocationState                     = native.ObjectRevocationState
	KindCredentialOffer                     = native.ObjectCredentialOffer
	KindCredentialRequest                   = native.ObjectCredentialRequest
	KindCredentialRequestMetadata           = native.ObjectCredentialRequestMetadata
	KindCredential                          = native.ObjectCredential
	KindW3cCredential                       = native.ObjectW3cCredential
	KindPresentationRequest                 = native.ObjectPresentationRequest
	KindPresentation                        = native.ObjectPresentation
	KindW3cPresentation                     = native.ObjectW3cPresentation
)

// ObjectKinds lists every kind FromJSON accepts.
func ObjectKinds() []ObjectKind {
	return native.ObjectKinds()
}

// FromJSON parses v into a new native object of the given kind. v may be a
// string, []byte, json.RawMessage or any value encoding/json can marshal.
func (a *Anoncreds) FromJSON(ctx context.Context, kind ObjectKind, v any) (*ObjectHandle, error) {
	if err := a.ready(); err != nil {
		return nil, err
	}
	if !kind.Valid() {
		return nil, serializationErr("kind", "unknown object kind %d", uint8(kind))
	}
	fn := kind.FromJSONSymbol()
	var (
		data native.ByteBuffer
		out  *native.ObjectHandle
		res  *ObjectHandle
	)
	err := a.invoke(ctx, nativeCall{
		op:   "FromJSON",
		fn:   fn,
		args: []native.Arg{native.A("json", v)},
		lower: func(l *lowerer) {
			data = l.bytes("json")
			out = l.ar.OutHandle()
		},
		call: func() native.ErrorCode { return a.lib.FromJSON(kind, data, out) },
		collect: func() (err error) {
			res, err = a.adoptOne(fn, *out)
			return err
		},
	})
	return res, err
}

func (a *Anoncreds) SchemaFromJSON(ctx context.Context, v any) (*ObjectHandle, error) {
	return a.FromJSON(ctx, KindSchema, v)
}

func (a *Anoncreds) CredentialDefinitionFromJSON(ctx context.Context, v any) (*ObjectHandle, error) {
	return a.FromJSON(ctx, KindCredentialDefinition, v)
}

func (a *Anoncreds) CredentialDefinitionPrivateFromJSON(ctx context.Context, v any) (*ObjectHandle, error) {
	return a.FromJSON(ctx, KindCredentialDefinitionPrivate, v)
}

func (a *Anoncreds) KeyCorrectnessProofFromJSON(ctx context.Context, v any) (*ObjectHandle, error) {
	return a.FromJSON(ctx, KindKeyCorrectnessProof, v)
}

func (a *Anoncreds) RevocationRegistryDefinitionFromJSON(ctx context.Context, v any) (*ObjectHandle, error) {
	return a.FromJSON(ctx, KindRevocationRegistryDefinition, v)
}

func (a *Anoncreds) RevocationRegistryDefinitionPrivateFromJSON(ctx context.Context, v any) (*ObjectHandle, error) {
	return a.FromJSON(ctx, KindRevocationRegistryDefinitionPrivate, v)
}

func (a *Anoncreds) RevocationRegistryFromJSON(ctx context.Context, v any) (*ObjectHandle, error) {
	return a.FromJSON(ctx, KindRevocationRegistry, v)
}

func (a *Anoncreds) RevocationStatusListFromJSON(ctx context.Context, v any) (*ObjectHandle, error) {
	return a.FromJSON(ctx, KindRevocationStatusList, v)
}

func (a *Anoncreds) RevocationStateFromJSON(ctx context.Context, v any) (*ObjectHandle, error) {
	return a.FromJSON(ctx, KindRevocationState, v)
}

func (a *Anoncreds) CredentialOfferFromJSON(ctx context.Context, v any) (*ObjectHandle, error) {
	return a.FromJSON(ctx, KindCredentialOffer, v)
}

func (a *Anoncreds) CredentialRequestFromJSON(ctx context.Context, v any) (*ObjectHandle, error) {
	return a.FromJSON(ctx, KindCredentialRequest, v)
}

func (a *Anoncreds) CredentialRequestMetadataFromJSON(ctx context.Context, v any) (*ObjectHandle, error) {
	return a.FromJSON(ctx, KindCredentialRequestMetadata, v)
}

func (a *Anoncreds) CredentialFromJSON(ctx context.Context, v any) (*ObjectHandle, error) {
	return a.FromJSON(ctx, KindCredential, v)
}

func (a *Anoncreds) W3cCredentialFromJSON(ctx context.Context, v any) (*ObjectHandle, error) {
	return a.FromJSON(ctx, KindW3cCredential, v)
}

func (a *Anoncreds) PresentationRequestFromJSON(ctx context.Context, v any) (*ObjectHandle, error) {
	return a.FromJSON(ctx, KindPresentationRequest, v)
}

func (a *Anoncreds) PresentationFromJSON(ctx context.Context, v any) (*ObjectHandle, error) {
	return a.FromJSON(ctx, KindPresentation, v)
}

func (a *Anoncreds) W3cPresentationFromJSON(ctx context.Context, v any) (*ObjectHandle, error) {
	return a.FromJSON(ctx, KindW3cPresentation, v)
}

// GetJSON returns the canonical JSON of h. The native buffer is freed once
// copied.
func (a *Anoncreds) GetJSON(ctx context.Context, h *ObjectHandle) ([]byte, error) {
	var (
		handle native.ObjectHandle
		out    *native.ByteBuffer
		res    []byte
	)
	err := a.invoke(ctx, nativeCall{
		op:   "GetJSON",
		fn:   native.FnObjectGetJSON,
		args: []native.Arg{native.A("handle", h)},
		lower: func(l *lowerer) {
			handle = l.handle("handle")
			out = l.ar.OutBuffer()
		},
		call: func() native.ErrorCode { return a.lib.ObjectGetJSON(handle, out) },
		collect: func() (err error) {
			res, err = a.takeBuffer(native.FnObjectGetJSON, *out)
			return err
		},
	})
	return res, err
}

// GetTypeName returns the native type name of h.
func (a *Anoncreds) GetTypeName(ctx context.Context, h *ObjectHandle) (string, error) {
	var (
		handle native.ObjectHandle
		out    **byte
		res    string
	)
	err := a.invoke(ctx, nativeCall{
		op:   "GetTypeName",
		fn:   native.FnObjectGetTypeName,
		args: []native.Arg{native.A("handle", h)},
		lower: func(l *lowerer) {
			handle = l.handle("handle")
			out = l.ar.OutString()
		},
		call: func() native.ErrorCode { return a.lib.ObjectGetTypeName(handle, out) },
		collect: func() (err error) {
			res, err = a.takeString(native.FnObjectGetTypeName, *out)
			return err
		},
	})
	return res, err
}

// ObjectFree releases h. It is the same as h.Release().
func (a *Anoncreds) ObjectFree(ctx context.Context, h *ObjectHandle) {
	if h == nil || h.owner == nil {
		return
	}
	h.owner.release(ctx, h)
}
