package native

import (
	"reflect"
	"sort"
)

// ParamType is the boundary type of one native parameter.
type ParamType uint8

const (
	ParamText ParamType = iota + 1
	ParamInt8
	ParamInt64
	ParamHandle
	ParamByteBufferIn
	ParamStrList
	ParamI32List
	ParamHandleList
	ParamCredRevInfoPtr
	ParamCredentialEntryList
	ParamCredentialProveList
	ParamNonrevokedOverrideList
	ParamOutHandle
	ParamOutText
	ParamOutByteBuffer
	ParamOutInt8
)

var paramNames = map[ParamType]string{
	ParamText:                   "text",
	ParamInt8:                   "int8",
	ParamInt64:                  "int64",
	ParamHandle:                 "handle",
	ParamByteBufferIn:           "byte buffer",
	ParamStrList:                "string list",
	ParamI32List:                "i32 list",
	ParamHandleList:             "handle list",
	ParamCredRevInfoPtr:         "cred rev info*",
	ParamCredentialEntryList:    "credential entry list",
	ParamCredentialProveList:    "credential prove list",
	ParamNonrevokedOverrideList: "nonrevoked override list",
	ParamOutHandle:              "out handle",
	ParamOutText:                "out text",
	ParamOutByteBuffer:          "out byte buffer",
	ParamOutInt8:                "out int8",
}

func (p ParamType) String() string {
	if s, ok := paramNames[p]; ok {
		return s
	}
	return "invalid"
}

// IsOutput reports whether the parameter is an output slot written by the
// library.
func (p ParamType) IsOutput() bool {
	switch p {
	case ParamOutHandle, ParamOutText, ParamOutByteBuffer, ParamOutInt8:
		return true
	}
	return false
}

// GoType is the Go type a bound function variable uses for p.
func (p ParamType) GoType() reflect.Type {
	switch p {
	case ParamText:
		return reflect.TypeOf((*byte)(nil))
	case ParamInt8:
		return reflect.TypeOf(int8(0))
	case ParamInt64:
		return reflect.TypeOf(int64(0))
	case ParamHandle:
		return reflect.TypeOf(ObjectHandle(0))
	case ParamByteBufferIn:
		return reflect.TypeOf(ByteBuffer{})
	case ParamStrList:
		return reflect.TypeOf(FfiStrList{})
	case ParamI32List:
		return reflect.TypeOf(FfiI32List{})
	case ParamHandleList:
		return reflect.TypeOf(FfiObjectHandleList{})
	case ParamCredRevInfoPtr:
		return reflect.TypeOf((*FfiCredRevInfo)(nil))
	case ParamCredentialEntryList:
		return reflect.TypeOf(FfiCredentialEntryList{})
	case ParamCredentialProveList:
		return reflect.TypeOf(FfiCredentialProveList{})
	case ParamNonrevokedOverrideList:
		return reflect.TypeOf(FfiNonrevokedIntervalOverrideList{})
	case ParamOutHandle:
		return reflect.TypeOf((*ObjectHandle)(nil))
	case ParamOutText:
		return reflect.TypeOf((**byte)(nil))
	case ParamOutByteBuffer:
		return reflect.TypeOf((*ByteBuffer)(nil))
	case ParamOutInt8:
		return reflect.TypeOf((*int8)(nil))
	}
	return nil
}

// ReturnKind is the return convention of an entry point.
type ReturnKind uint8

const (
	// Fallible functions return an ErrorCode; zero is success.
	Fallible ReturnKind = iota + 1
	// Infallible functions return their value directly.
	Infallible
	// Void functions return nothing. Only the release helpers use it.
	Void
)

func (r ReturnKind) String() string {
	switch r {
	case Fallible:
		return "fallible"
	case Infallible:
		return "infallible"
	case Void:
		return "void"
	}
	return "invalid"
}

// Signature declares the parameter list and return convention of one
// native entry point.
type Signature struct {
	Name    string
	Params  []ParamType
	Returns ReturnKind
}

// Outputs counts the output parameters.
func (s Signature) Outputs() int {
	n := 0
	for _, p := range s.Params {
		if p.IsOutput() {
			n++
		}
	}
	return n
}

func (s Signature) clone() Signature {
	s.Params = append([]ParamType(nil), s.Params...)
	return s
}

const (
	FnVersion                                  = "anoncreds_version"
	FnSetDefaultLogger                         = "anoncreds_set_default_logger"
	FnGetCurrentError                          = "anoncreds_get_current_error"
	FnGenerateNonce                            = "anoncreds_generate_nonce"
	FnBufferFree                               = "anoncreds_buffer_free"
	FnStringFree                               = "anoncreds_string_free"
	FnObjectFree                               = "anoncreds_object_free"
	FnObjectGetJSON                            = "anoncreds_object_get_json"
	FnObjectGetTypeName                        = "anoncreds_object_get_type_name"
	FnCreateSchema                             = "anoncreds_create_schema"
	FnCreateCredentialDefinition               = "anoncreds_create_credential_definition"
	FnCreateRevocationRegistryDef              = "anoncreds_create_revocation_registry_def"
	FnRevocationRegistryDefinitionGetAttribute = "anoncreds_revocation_registry_definition_get_attribute"
	FnCreateRevocationStatusList               = "anoncreds_create_revocation_status_list"
	FnUpdateRevocationStatusList               = "anoncreds_update_revocation_status_list"
	FnUpdateRevocationStatusListTimestampOnly  = "anoncreds_update_revocation_status_list_timestamp_only"
	FnCreateOrUpdateRevocationState            = "anoncreds_create_or_update_revocation_state"
	FnCreateLinkSecret                         = "anoncreds_create_link_secret"
	FnCreateCredentialOffer                    = "anoncreds_create_credential_offer"
	FnCreateCredentialRequest                  = "anoncreds_create_credential_request"
	FnCreateCredential                         = "anoncreds_create_credential"
	FnCredentialGetAttribute                   = "anoncreds_credential_get_attribute"
	FnProcessCredential                        = "anoncreds_process_credential"
	FnEncodeCredentialAttributes               = "anoncreds_encode_credential_attributes"
	FnCreateW3cCredential                      = "anoncreds_create_w3c_credential"
	FnCredentialToW3c                          = "anoncreds_credential_to_w3c"
	FnCredentialFromW3c                        = "anoncreds_credential_from_w3c"
	FnProcessW3cCredential                     = "anoncreds_process_w3c_credential"
	FnW3cCredentialGetIntegrityProofDetails    = "anoncreds_w3c_credential_get_integrity_proof_details"
	FnW3cCredentialProofGetAttribute           = "anoncreds_w3c_credential_proof_get_attribute"
	FnCreatePresentation                       = "anoncreds_create_presentation"
	FnVerifyPresentation                       = "anoncreds_verify_presentation"
	FnCreateW3cPresentation                    = "anoncreds_create_w3c_presentation"
	FnVerifyW3cPresentation                    = "anoncreds_verify_w3c_presentation"
)

func fallible(name string, params ...ParamType) Signature {
	return Signature{Name: name, Params: params, Returns: Fallible}
}

var callTable = buildCallTable()

func buildCallTable() map[string]Signature {
	const (
		T   = ParamText
		I8  = ParamInt8
		I64 = ParamInt64
		H   = ParamHandle
		SL  = ParamStrList
		IL  = ParamI32List
		HL  = ParamHandleList
		OH  = ParamOutHandle
		OT  = ParamOutText
	)

	sigs := []Signature{
		{Name: FnVersion, Returns: Infallible},
		fallible(FnSetDefaultLogger),
		fallible(FnGetCurrentError, OT),
		fallible(FnGenerateNonce, OT),
		{Name: FnBufferFree, Params: []ParamType{ParamByteBufferIn}, Returns: Void},
		{Name: FnStringFree, Params: []ParamType{T}, Returns: Void},
		{Name: FnObjectFree, Params: []ParamType{H}, Returns: Void},
		fallible(FnObjectGetJSON, H, ParamOutByteBuffer),
		fallible(FnObjectGetTypeName, H, OT),

		fallible(FnCreateSchema, T, T, T, SL, OH),
		fallible(FnCreateCredentialDefinition, T, H, T, T, T, I8, OH, OH, OH),
		fallible(FnCreateRevocationRegistryDef, H, T, T, T, T, I64, T, OH, OH),
		fallible(FnRevocationRegistryDefinitionGetAttribute, H, T, OT),
		fallible(FnCreateRevocationStatusList, H, T, H, H, T, I8, I64, OH),
		fallible(FnUpdateRevocationStatusList, H, H, H, H, IL, IL, I64, OH),
		fallible(FnUpdateRevocationStatusListTimestampOnly, I64, H, OH),
		fallible(FnCreateOrUpdateRevocationState, H, H, I64, T, H, H, OH),

		fallible(FnCreateLinkSecret, OT),
		fallible(FnCreateCredentialOffer, T, T, H, OH),
		fallible(FnCreateCredentialRequest, T, T, H, T, T, H, OH, OH),
		fallible(FnCreateCredential, H, H, H, H, SL, SL, SL, ParamCredRevInfoPtr, OH),
		fallible(FnCredentialGetAttribute, H, T, OT),
		fallible(FnProcessCredential, H, H, T, H, H, OH),
		fallible(FnEncodeCredentialAttributes, SL, OT),

		fallible(FnCreateW3cCredential, H, H, H, H, SL, SL, ParamCredRevInfoPtr, T, OH),
		fallible(FnCredentialToW3c, H, T, T, OH),
		fallible(FnCredentialFromW3c, H, OH),
		fallible(FnProcessW3cCredential, H, H, T, H, H, OH),
		fallible(FnW3cCredentialGetIntegrityProofDetails, H, OH),
		fallible(FnW3cCredentialProofGetAttribute, H, T, OT),

		fallible(FnCreatePresentation, H, ParamCredentialEntryList, ParamCredentialProveList, SL, SL, T, HL, SL, HL, SL, OH),
		fallible(FnVerifyPresentation, H, H, HL, SL, HL, SL, HL, SL, HL, ParamNonrevokedOverrideList, ParamOutInt8),
		fallible(FnCreateW3cPresentation, H, ParamCredentialEntryList, ParamCredentialProveList, T, HL, SL, HL, SL, T, OH),
		fallible(FnVerifyW3cPresentation, H, H, HL, SL, HL, SL, HL, SL, HL, ParamNonrevokedOverrideList, ParamOutInt8),
	}
	for k := ObjectKind(1); k < numObjectKinds; k++ {
		sigs = append(sigs, fallible(k.FromJSONSymbol(), ParamByteBufferIn, OH))
	}

	table := make(map[string]Signature, len(sigs))
	for _, s := range sigs {
		if _, dup := table[s.Name]; dup {
			panic("anoncreds/internal/native: duplicate call table entry " + s.Name)
		}
		table[s.Name] = s
	}
	return table
}

// Lookup returns the signature of the named entry point.
func Lookup(name string) (Signature, bool) {
	s, ok := callTable[name]
	if !ok {
		return Signature{}, false
	}
	return s.clone(), true
}

// Names lists every entry point in the table, sorted.
func Names() []string {
	names := make([]string, 0, len(callTable))
	for n := range callTable {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// OutputCount is the number of output slots the named function writes, or
// -1 for an unknown function.
func OutputCount(name string) int {
	s, ok := callTable[name]
	if !ok {
		return -1
	}
	return s.Outputs()
}
