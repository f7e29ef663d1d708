package native

//go:generate mockgen -source=library.go -destination=mocks/mock_library.go -package=mocks Library

// ObjectKind names a domain object type that can be constructed from JSON.
type ObjectKind uint8

const (
	ObjectSchema ObjectKind = iota + 1
	ObjectCredentialDefinition
	ObjectCredentialDefinitionPrivate
	ObjectKeyCorrectnessProof
	ObjectRevocationRegistryDefinition
	ObjectRevocationRegistryDefinitionPrivate
	ObjectRevocationRegistry
	ObjectRevocationStatusList
	ObjectRevocationState
	ObjectCredentialOffer
	ObjectCredentialRequest
	ObjectCredentialRequestMetadata
	ObjectCredential
	ObjectW3cCredential
	ObjectPresentationRequest
	ObjectPresentation
	ObjectW3cPresentation
	numObjectKinds
)

var objectKindNames = [numObjectKinds]string{
	ObjectSchema:                              "schema",
	ObjectCredentialDefinition:                "credential_definition",
	ObjectCredentialDefinitionPrivate:         "credential_definition_private",
	ObjectKeyCorrectnessProof:                 "key_correctness_proof",
	ObjectRevocationRegistryDefinition:        "revocation_registry_definition",
	ObjectRevocationRegistryDefinitionPrivate: "revocation_registry_definition_private",
	ObjectRevocationRegistry:                  "revocation_registry",
	ObjectRevocationStatusList:                "revocation_status_list",
	ObjectRevocationState:                     "revocation_state",
	ObjectCredentialOffer:                     "credential_offer",
	ObjectCredentialRequest:                   "credential_request",
	ObjectCredentialRequestMetadata:           "credential_request_metadata",
	ObjectCredential:                          "credential",
	ObjectW3cCredential:                       "w3c_credential",
	ObjectPresentationRequest:                 "presentation_request",
	ObjectPresentation:                        "presentation",
	ObjectW3cPresentation:                     "w3c_presentation",
}

// ObjectKinds lists every kind in declaration order.
func ObjectKinds() []ObjectKind {
	out := make([]ObjectKind, 0, numObjectKinds-1)
	for k := ObjectKind(1); k < numObjectKinds; k++ {
		out = append(out, k)
	}
	return out
}

// Valid reports whether k is a known kind.
func (k ObjectKind) Valid() bool {
	return k > 0 && k < numObjectKinds
}

func (k ObjectKind) String() string {
	if !k.Valid() {
		return "unknown"
	}
	return objectKindNames[k]
}

// FromJSONSymbol is the C symbol of the kind's JSON constructor.
func (k ObjectKind) FromJSONSymbol() string {
	return "anoncreds_" + k.String() + "_from_json"
}

// Library is the typed surface of libanoncreds. There is one method per
// entry point in the call table; the 17 JSON constructors share FromJSON.
// Parameters use the boundary layouts and must come from an Arena.
//
// Implementations: the cgo loader (Open), mocklib.Library and
// mocks.MockLibrary.
type Library interface {
	Version() *byte
	SetDefaultLogger() ErrorCode
	GetCurrentError(errorJSON **byte) ErrorCode
	GenerateNonce(nonce **byte) ErrorCode

	BufferFree(buf ByteBuffer)
	StringFree(s *byte)
	ObjectFree(handle ObjectHandle)
	ObjectGetJSON(handle ObjectHandle, result *ByteBuffer) ErrorCode
	ObjectGetTypeName(handle ObjectHandle, typeName **byte) ErrorCode
	FromJSON(kind ObjectKind, json ByteBuffer, result *ObjectHandle) ErrorCode

	CreateSchema(name, version, issuerID *byte, attrNames FfiStrList, result *ObjectHandle) ErrorCode
	CreateCredentialDefinition(schemaID *byte, schema ObjectHandle, tag, issuerID, signatureType *byte, supportRevocation int8, credDef, credDefPrivate, keyProof *ObjectHandle) ErrorCode
	CreateRevocationRegistryDef(credDef ObjectHandle, credDefID, issuerID, tag, revRegType *byte, maxCredNum int64, tailsDirPath *byte, regDef, regDefPrivate *ObjectHandle) ErrorCode
	RevocationRegistryDefinitionGetAttribute(handle ObjectHandle, name *byte, result **byte) ErrorCode
	CreateRevocationStatusList(credDef ObjectHandle, revRegDefID *byte, revRegDef, revRegDefPrivate ObjectHandle, issuerID *byte, issuanceByDefault int8, timestamp int64, result *ObjectHandle) ErrorCode
	UpdateRevocationStatusList(credDef, revRegDef, revRegDefPrivate, current ObjectHandle, issued, revoked FfiI32List, timestamp int64, result *ObjectHandle) ErrorCode
	UpdateRevocationStatusListTimestampOnly(timestamp int64, current ObjectHandle, result *ObjectHandle) ErrorCode
	CreateOrUpdateRevocationState(revRegDef, statusList ObjectHandle, revRegIdx int64, tailsPath *byte, oldState, oldStatusList ObjectHandle, result *ObjectHandle) ErrorCode

	CreateLinkSecret(linkSecret **byte) ErrorCode
	CreateCredentialOffer(schemaID, credDefID *byte, keyProof ObjectHandle, result *ObjectHandle) ErrorCode
	CreateCredentialRequest(entropy, proverDID *byte, credDef ObjectHandle, linkSecret, linkSecretID *byte, credOffer ObjectHandle, request, metadata *ObjectHandle) ErrorCode
	CreateCredential(credDef, credDefPrivate, credOffer, credRequest ObjectHandle, attrNames, attrRawValues, attrEncValues FfiStrList, revocation *FfiCredRevInfo, result *ObjectHandle) ErrorCode
	CredentialGetAttribute(handle ObjectHandle, name *byte, result **byte) ErrorCode
	ProcessCredential(cred, credReqMetadata ObjectHandle, linkSecret *byte, credDef, revRegDef ObjectHandle, result *ObjectHandle) ErrorCode
	EncodeCredentialAttributes(attrRawValues FfiStrList, result **byte) ErrorCode

	CreateW3cCredential(credDef, credDefPrivate, credOffer, credRequest ObjectHandle, attrNames, attrRawValues FfiStrList, revocation *FfiCredRevInfo, w3cVersion *byte, result *ObjectHandle) ErrorCode
	CredentialToW3c(cred ObjectHandle, issuerID, w3cVersion *byte, result *ObjectHandle) ErrorCode
	CredentialFromW3c(cred ObjectHandle, result *ObjectHandle) ErrorCode
	ProcessW3cCredential(cred, credReqMetadata ObjectHandle, linkSecret *byte, credDef, revRegDef ObjectHandle, result *ObjectHandle) ErrorCode
	W3cCredentialGetIntegrityProofDetails(cred ObjectHandle, result *ObjectHandle) ErrorCode
	W3cCredentialProofGetAttribute(handle ObjectHandle, name *byte, result **byte) ErrorCode

	CreatePresentation(presReq ObjectHandle, credentials FfiCredentialEntryList, credentialsProve FfiCredentialProveList, selfAttestNames, selfAttestValues FfiStrList, linkSecret *byte, schemas FfiObjectHandleList, schemaIDs FfiStrList, credDefs FfiObjectHandleList, credDefIDs FfiStrList, result *ObjectHandle) ErrorCode
	VerifyPresentation(presentation, presReq ObjectHandle, schemas FfiObjectHandleList, schemaIDs FfiStrList, credDefs FfiObjectHandleList, credDefIDs FfiStrList, revRegDefs FfiObjectHandleList, revRegDefIDs FfiStrList, revStatusLists FfiObjectHandleList, overrides FfiNonrevokedIntervalOverrideList, valid *int8) ErrorCode
	CreateW3cPresentation(presReq ObjectHandle, credentials FfiCredentialEntryList, credentialsProve FfiCredentialProveList, linkSecret *byte, schemas FfiObjectHandleList, schemaIDs FfiStrList, credDefs FfiObjectHandleList, credDefIDs FfiStrList, w3cVersion *byte, result *ObjectHandle) ErrorCode
	VerifyW3cPresentation(presentation, presReq ObjectHandle, schemas FfiObjectHandleList, schemaIDs FfiStrList, credDefs FfiObjectHandleList, credDefIDs FfiStrList, revRegDefs FfiObjectHandleList, revRegDefIDs FfiStrList, revStatusLists FfiObjectHandleList, overrides FfiNonrevokedIntervalOverrideList, valid *int8) ErrorCode
}
