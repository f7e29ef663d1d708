//go:build cgo && (darwin || linux)

package native

/*
#include <stddef.h>
#include <stdint.h>

typedef size_t ObjectHandle;
typedef int64_t ErrorCode;
typedef const char *FfiStr;

typedef struct ByteBuffer { int64_t len; uint8_t *data; } ByteBuffer;
typedef struct FfiStrList { size_t count; const FfiStr *data; } FfiStrList;
typedef struct FfiI32List { size_t count; const int32_t *data; } FfiI32List;
typedef struct FfiObjectHandleList { size_t count; const ObjectHandle *data; } FfiObjectHandleList;

typedef struct FfiCredRevInfo {
	ObjectHandle reg_def;
	ObjectHandle reg_def_private;
	ObjectHandle status_list;
	int64_t reg_idx;
} FfiCredRevInfo;

typedef struct FfiCredentialEntry {
	ObjectHandle credential;
	int32_t timestamp;
	ObjectHandle rev_state;
} FfiCredentialEntry;
typedef struct FfiCredentialEntryList { size_t count; const FfiCredentialEntry *data; } FfiCredentialEntryList;

typedef struct FfiCredentialProve {
	int64_t entry_idx;
	FfiStr referent;
	int8_t is_predicate;
	int8_t reveal;
} FfiCredentialProve;
typedef struct FfiCredentialProveList { size_t count; const FfiCredentialProve *data; } FfiCredentialProveList;

typedef struct FfiNonrevokedIntervalOverride {
	FfiStr rev_reg_def_id;
	int32_t requested_from_ts;
	int32_t override_rev_status_list_ts;
} FfiNonrevokedIntervalOverride;
typedef struct FfiNonrevokedIntervalOverrideList { size_t count; const FfiNonrevokedIntervalOverride *data; } FfiNonrevokedIntervalOverrideList;

// Each trampoline calls the dlsym'd address through its anoncreds.h
// prototype so the C compiler applies the platform calling convention.

static const char *ac_version(uintptr_t fn) {
	return ((const char *(*)(void))fn)();
}

static ErrorCode ac_no_args(uintptr_t fn) {
	return ((ErrorCode (*)(void))fn)();
}

static ErrorCode ac_out_text(uintptr_t fn, const char **out) {
	return ((ErrorCode (*)(const char **))fn)(out);
}

static void ac_buffer_free(uintptr_t fn, ByteBuffer buf) {
	((void (*)(ByteBuffer))fn)(buf);
}

static void ac_string_free(uintptr_t fn, char *s) {
	((void (*)(char *))fn)(s);
}

static void ac_object_free(uintptr_t fn, ObjectHandle h) {
	((void (*)(ObjectHandle))fn)(h);
}

static ErrorCode ac_object_get_json(uintptr_t fn, ObjectHandle h, ByteBuffer *out) {
	return ((ErrorCode (*)(ObjectHandle, ByteBuffer *))fn)(h, out);
}

static ErrorCode ac_handle_out_text(uintptr_t fn, ObjectHandle h, const char **out) {
	return ((ErrorCode (*)(ObjectHandle, const char **))fn)(h, out);
}

static ErrorCode ac_handle_out_handle(uintptr_t fn, ObjectHandle h, ObjectHandle *out) {
	return ((ErrorCode (*)(ObjectHandle, ObjectHandle *))fn)(h, out);
}

static ErrorCode ac_from_json(uintptr_t fn, ByteBuffer json, ObjectHandle *out) {
	return ((ErrorCode (*)(ByteBuffer, ObjectHandle *))fn)(json, out);
}

static ErrorCode ac_create_schema(uintptr_t fn, FfiStr name, FfiStr version, FfiStr issuer_id,
		FfiStrList attr_names, ObjectHandle *out) {
	return ((ErrorCode (*)(FfiStr, FfiStr, FfiStr, FfiStrList, ObjectHandle *))fn)(
		name, version, issuer_id, attr_names, out);
}

static ErrorCode ac_create_credential_definition(uintptr_t fn, FfiStr schema_id, ObjectHandle schema,
		FfiStr tag, FfiStr issuer_id, FfiStr signature_type, int8_t support_revocation,
		ObjectHandle *cred_def, ObjectHandle *cred_def_pvt, ObjectHandle *key_proof) {
	return ((ErrorCode (*)(FfiStr, ObjectHandle, FfiStr, FfiStr, FfiStr, int8_t,
		ObjectHandle *, ObjectHandle *, ObjectHandle *))fn)(
		schema_id, schema, tag, issuer_id, signature_type, support_revocation,
		cred_def, cred_def_pvt, key_proof);
}

static ErrorCode ac_create_revocation_registry_def(uintptr_t fn, ObjectHandle cred_def,
		FfiStr cred_def_id, FfiStr issuer_id, FfiStr tag, FfiStr rev_reg_type, int64_t max_cred_num,
		FfiStr tails_dir_path, ObjectHandle *reg_def, ObjectHandle *reg_def_private) {
	return ((ErrorCode (*)(ObjectHandle, FfiStr, FfiStr, FfiStr, FfiStr, int64_t, FfiStr,
		ObjectHandle *, ObjectHandle *))fn)(
		cred_def, cred_def_id, issuer_id, tag, rev_reg_type, max_cred_num, tails_dir_path,
		reg_def, reg_def_private);
}

static ErrorCode ac_get_attribute(uintptr_t fn, ObjectHandle h, FfiStr name, const char **out) {
	return ((ErrorCode (*)(ObjectHandle, FfiStr, const char **))fn)(h, name, out);
}

static ErrorCode ac_create_revocation_status_list(uintptr_t fn, ObjectHandle cred_def,
		FfiStr rev_reg_def_id, ObjectHandle rev_reg_def, ObjectHandle rev_reg_priv, FfiStr issuer_id,
		int8_t issuance_by_default, int64_t timestamp, ObjectHandle *out) {
	return ((ErrorCode (*)(ObjectHandle, FfiStr, ObjectHandle, ObjectHandle, FfiStr, int8_t, int64_t,
		ObjectHandle *))fn)(
		cred_def, rev_reg_def_id, rev_reg_def, rev_reg_priv, issuer_id, issuance_by_default,
		timestamp, out);
}

static ErrorCode ac_update_revocation_status_list(uintptr_t fn, ObjectHandle cred_def,
		ObjectHandle rev_reg_def, ObjectHandle rev_reg_priv, ObjectHandle current,
		FfiI32List issued, FfiI32List revoked, int64_t timestamp, ObjectHandle *out) {
	return ((ErrorCode (*)(ObjectHandle, ObjectHandle, ObjectHandle, ObjectHandle, FfiI32List,
		FfiI32List, int64_t, ObjectHandle *))fn)(
		cred_def, rev_reg_def, rev_reg_priv, current, issued, revoked, timestamp, out);
}

static ErrorCode ac_update_revocation_status_list_timestamp_only(uintptr_t fn, int64_t timestamp,
		ObjectHandle current, ObjectHandle *out) {
	return ((ErrorCode (*)(int64_t, ObjectHandle, ObjectHandle *))fn)(timestamp, current, out);
}

static ErrorCode ac_create_or_update_revocation_state(uintptr_t fn, ObjectHandle rev_reg_def,
		ObjectHandle status_list, int64_t rev_reg_index, FfiStr tails_path, ObjectHandle old_state,
		ObjectHandle old_status_list, ObjectHandle *out) {
	return ((ErrorCode (*)(ObjectHandle, ObjectHandle, int64_t, FfiStr, ObjectHandle, ObjectHandle,
		ObjectHandle *))fn)(
		rev_reg_def, status_list, rev_reg_index, tails_path, old_state, old_status_list, out);
}

static ErrorCode ac_create_credential_offer(uintptr_t fn, FfiStr schema_id, FfiStr cred_def_id,
		ObjectHandle key_proof, ObjectHandle *out) {
	return ((ErrorCode (*)(FfiStr, FfiStr, ObjectHandle, ObjectHandle *))fn)(
		schema_id, cred_def_id, key_proof, out);
}

static ErrorCode ac_create_credential_request(uintptr_t fn, FfiStr entropy, FfiStr prover_did,
		ObjectHandle cred_def, FfiStr link_secret, FfiStr link_secret_id, ObjectHandle cred_offer,
		ObjectHandle *request, ObjectHandle *metadata) {
	return ((ErrorCode (*)(FfiStr, FfiStr, ObjectHandle, FfiStr, FfiStr, ObjectHandle,
		ObjectHandle *, ObjectHandle *))fn)(
		entropy, prover_did, cred_def, link_secret, link_secret_id, cred_offer, request, metadata);
}

static ErrorCode ac_create_credential(uintptr_t fn, ObjectHandle cred_def, ObjectHandle cred_def_private,
		ObjectHandle cred_offer, ObjectHandle cred_request, FfiStrList attr_names,
		FfiStrList attr_raw_values, FfiStrList attr_enc_values, const FfiCredRevInfo *revocation,
		ObjectHandle *out) {
	return ((ErrorCode (*)(ObjectHandle, ObjectHandle, ObjectHandle, ObjectHandle, FfiStrList,
		FfiStrList, FfiStrList, const FfiCredRevInfo *, ObjectHandle *))fn)(
		cred_def, cred_def_private, cred_offer, cred_request, attr_names, attr_raw_values,
		attr_enc_values, revocation, out);
}

static ErrorCode ac_process_credential(uintptr_t fn, ObjectHandle cred, ObjectHandle cred_req_metadata,
		FfiStr link_secret, ObjectHandle cred_def, ObjectHandle rev_reg_def, ObjectHandle *out) {
	return ((ErrorCode (*)(ObjectHandle, ObjectHandle, FfiStr, ObjectHandle, ObjectHandle,
		ObjectHandle *))fn)(
		cred, cred_req_metadata, link_secret, cred_def, rev_reg_def, out);
}

static ErrorCode ac_encode_credential_attributes(uintptr_t fn, FfiStrList attr_raw_values,
		const char **out) {
	return ((ErrorCode (*)(FfiStrList, const char **))fn)(attr_raw_values, out);
}

static ErrorCode ac_create_w3c_credential(uintptr_t fn, ObjectHandle cred_def,
		ObjectHandle cred_def_private, ObjectHandle cred_offer, ObjectHandle cred_request,
		FfiStrList attr_names, FfiStrList attr_raw_values, const FfiCredRevInfo *revocation,
		FfiStr w3c_version, ObjectHandle *out) {
	return ((ErrorCode (*)(ObjectHandle, ObjectHandle, ObjectHandle, ObjectHandle, FfiStrList,
		FfiStrList, const FfiCredRevInfo *, FfiStr, ObjectHandle *))fn)(
		cred_def, cred_def_private, cred_offer, cred_request, attr_names, attr_raw_values,
		revocation, w3c_version, out);
}

static ErrorCode ac_credential_to_w3c(uintptr_t fn, ObjectHandle cred, FfiStr issuer_id,
		FfiStr w3c_version, ObjectHandle *out) {
	return ((ErrorCode (*)(ObjectHandle, FfiStr, FfiStr, ObjectHandle *))fn)(
		cred, issuer_id, w3c_version, out);
}

static ErrorCode ac_create_presentation(uintptr_t fn, ObjectHandle pres_req,
		FfiCredentialEntryList credentials, FfiCredentialProveList credentials_prove,
		FfiStrList self_attest_names, FfiStrList self_attest_values, FfiStr link_secret,
		FfiObjectHandleList schemas, FfiStrList schema_ids, FfiObjectHandleList cred_defs,
		FfiStrList cred_def_ids, ObjectHandle *out) {
	return ((ErrorCode (*)(ObjectHandle, FfiCredentialEntryList, FfiCredentialProveList, FfiStrList,
		FfiStrList, FfiStr, FfiObjectHandleList, FfiStrList, FfiObjectHandleList, FfiStrList,
		ObjectHandle *))fn)(
		pres_req, credentials, credentials_prove, self_attest_names, self_attest_values,
		link_secret, schemas, schema_ids, cred_defs, cred_def_ids, out);
}

static ErrorCode ac_verify_presentation(uintptr_t fn, ObjectHandle presentation, ObjectHandle pres_req,
		FfiObjectHandleList schemas, FfiStrList schema_ids, FfiObjectHandleList cred_defs,
		FfiStrList cred_def_ids, FfiObjectHandleList rev_reg_defs, FfiStrList rev_reg_def_ids,
		FfiObjectHandleList rev_status_lists, FfiNonrevokedIntervalOverrideList overrides,
		int8_t *valid) {
	return ((ErrorCode (*)(ObjectHandle, ObjectHandle, FfiObjectHandleList, FfiStrList,
		FfiObjectHandleList, FfiStrList, FfiObjectHandleList, FfiStrList, FfiObjectHandleList,
		FfiNonrevokedIntervalOverrideList, int8_t *))fn)(
		presentation, pres_req, schemas, schema_ids, cred_defs, cred_def_ids, rev_reg_defs,
		rev_reg_def_ids, rev_status_lists, overrides, valid);
}

static ErrorCode ac_create_w3c_presentation(uintptr_t fn, ObjectHandle pres_req,
		FfiCredentialEntryList credentials, FfiCredentialProveList credentials_prove,
		FfiStr link_secret, FfiObjectHandleList schemas, FfiStrList schema_ids,
		FfiObjectHandleList cred_defs, FfiStrList cred_def_ids, FfiStr w3c_version,
		ObjectHandle *out) {
	return ((ErrorCode (*)(ObjectHandle, FfiCredentialEntryList, FfiCredentialProveList, FfiStr,
		FfiObjectHandleList, FfiStrList, FfiObjectHandleList, FfiStrList, FfiStr,
		ObjectHandle *))fn)(
		pres_req, credentials, credentials_prove, link_secret, schemas, schema_ids, cred_defs,
		cred_def_ids, w3c_version, out);
}
*/
import "C"

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"unsafe"

	"github.com/ebitengine/purego"
)

// Dylib is libanoncreds loaded with dlopen. Calls go through the cgo
// trampolines above; purego only opens the object and resolves symbols.
type Dylib struct {
	path   string
	handle uintptr
	sym    symbols
}

var _ Library = (*Dylib)(nil)

func libraryName() string {
	if runtime.GOOS == "darwin" {
		return "libanoncreds.dylib"
	}
	return "libanoncreds.so"
}

// candidates lists the places Open tries, most specific first.
func candidates(path string) []string {
	if path != "" {
		return []string{path}
	}
	name := libraryName()
	var out []string
	if env := os.Getenv(EnvLibraryPath); env != "" {
		out = append(out, env)
	}
	out = append(out, filepath.Join("lib", name))
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		out = append(out, filepath.Join(dir, name), filepath.Join(dir, "..", "lib", name))
	}
	// Bare name: let the dynamic linker search its own path.
	return append(out, name)
}

// Open loads libanoncreds and resolves every entry point of the call
// table. An empty path searches $ANONCREDS_LIBRARY_PATH, ./lib, the
// executable's directory and the linker path.
//
// A file that exists but cannot be loaded is reported as such and stops
// the search; only an exhausted search yields ErrLibraryNotFound. A
// library missing entry points yields ErrBind.
func Open(path string) (Library, error) {
	var lastErr error
	for _, cand := range candidates(path) {
		explicit := filepath.Base(cand) != cand
		if explicit {
			if _, err := os.Stat(cand); err != nil {
				lastErr = err
				continue
			}
		}
		handle, err := purego.Dlopen(cand, purego.RTLD_NOW|purego.RTLD_LOCAL)
		if err != nil {
			if explicit {
				return nil, fmt.Errorf("anoncreds/internal/native: load %s: %w", cand, err)
			}
			lastErr = err
			continue
		}
		sym, err := resolveSymbols(func(name string) (uintptr, error) {
			return purego.Dlsym(handle, name)
		})
		if err != nil {
			_ = purego.Dlclose(handle)
			return nil, fmt.Errorf("%w (%s)", err, cand)
		}
		return &Dylib{path: cand, handle: handle, sym: sym}, nil
	}
	if lastErr == nil {
		lastErr = errors.New("no candidate paths")
	}
	return nil, fmt.Errorf("%w: %v", ErrLibraryNotFound, lastErr)
}

// Path is the file the library was loaded from.
func (d *Dylib) Path() string { return d.path }

// Close unloads the library. Any later call panics.
func (d *Dylib) Close() error {
	if d.handle == 0 {
		return nil
	}
	err := purego.Dlclose(d.handle)
	d.handle = 0
	d.sym = nil
	return err
}

func (d *Dylib) addr(name string) C.uintptr_t {
	p := d.sym[name]
	if p == 0 {
		panic("anoncreds/internal/native: " + name + " called on a closed or unbound library")
	}
	return C.uintptr_t(p)
}

func cText(p *byte) *C.char { return (*C.char)(unsafe.Pointer(p)) }

func cOutText(p **byte) **C.char { return (**C.char)(unsafe.Pointer(p)) }

func cHandle(h ObjectHandle) C.ObjectHandle { return C.ObjectHandle(h) }

func cOutHandle(p *ObjectHandle) *C.ObjectHandle { return (*C.ObjectHandle)(unsafe.Pointer(p)) }

// The list and buffer conversions reinterpret the Go mirrors in place.
// TestLayoutsMatchC keeps both sides identical.

func cBuffer(b ByteBuffer) C.ByteBuffer { return *(*C.ByteBuffer)(unsafe.Pointer(&b)) }

func cStrList(l FfiStrList) C.FfiStrList { return *(*C.FfiStrList)(unsafe.Pointer(&l)) }

func cI32List(l FfiI32List) C.FfiI32List { return *(*C.FfiI32List)(unsafe.Pointer(&l)) }

func cHandleList(l FfiObjectHandleList) C.FfiObjectHandleList {
	return *(*C.FfiObjectHandleList)(unsafe.Pointer(&l))
}

func cEntryList(l FfiCredentialEntryList) C.FfiCredentialEntryList {
	return *(*C.FfiCredentialEntryList)(unsafe.Pointer(&l))
}

func cProveList(l FfiCredentialProveList) C.FfiCredentialProveList {
	return *(*C.FfiCredentialProveList)(unsafe.Pointer(&l))
}

func cOverrideList(l FfiNonrevokedIntervalOverrideList) C.FfiNonrevokedIntervalOverrideList {
	return *(*C.FfiNonrevokedIntervalOverrideList)(unsafe.Pointer(&l))
}

func cRevInfo(p *FfiCredRevInfo) *C.FfiCredRevInfo { return (*C.FfiCredRevInfo)(unsafe.Pointer(p)) }

func (d *Dylib) Version() *byte {
	return (*byte)(unsafe.Pointer(C.ac_version(d.addr(FnVersion))))
}

func (d *Dylib) SetDefaultLogger() ErrorCode {
	return ErrorCode(C.ac_no_args(d.addr(FnSetDefaultLogger)))
}

func (d *Dylib) GetCurrentError(errorJSON **byte) ErrorCode {
	return ErrorCode(C.ac_out_text(d.addr(FnGetCurrentError), cOutText(errorJSON)))
}

func (d *Dylib) GenerateNonce(nonce **byte) ErrorCode {
	return ErrorCode(C.ac_out_text(d.addr(FnGenerateNonce), cOutText(nonce)))
}

func (d *Dylib) BufferFree(buf ByteBuffer) {
	C.ac_buffer_free(d.addr(FnBufferFree), cBuffer(buf))
}

func (d *Dylib) StringFree(s *byte) {
	C.ac_string_free(d.addr(FnStringFree), cText(s))
}

func (d *Dylib) ObjectFree(handle ObjectHandle) {
	C.ac_object_free(d.addr(FnObjectFree), cHandle(handle))
}

func (d *Dylib) ObjectGetJSON(handle ObjectHandle, result *ByteBuffer) ErrorCode {
	return ErrorCode(C.ac_object_get_json(d.addr(FnObjectGetJSON), cHandle(handle),
		(*C.ByteBuffer)(unsafe.Pointer(result))))
}

func (d *Dylib) ObjectGetTypeName(handle ObjectHandle, typeName **byte) ErrorCode {
	return ErrorCode(C.ac_handle_out_text(d.addr(FnObjectGetTypeName), cHandle(handle), cOutText(typeName)))
}

// FromJSON dispatches to the kind's JSON constructor. It panics on an
// invalid kind.
func (d *Dylib) FromJSON(kind ObjectKind, json ByteBuffer, result *ObjectHandle) ErrorCode {
	if !kind.Valid() {
		panic(fmt.Sprintf("anoncreds/internal/native: invalid object kind %d", kind))
	}
	return ErrorCode(C.ac_from_json(d.addr(kind.FromJSONSymbol()), cBuffer(json), cOutHandle(result)))
}

func (d *Dylib) CreateSchema(name, version, issuerID *byte, attrNames FfiStrList, result *ObjectHandle) ErrorCode {
	return ErrorCode(C.ac_create_schema(d.addr(FnCreateSchema), cText(name), cText(version), cText(issuerID),
		cStrList(attrNames), cOutHandle(result)))
}

func (d *Dylib) CreateCredentialDefinition(schemaID *byte, schema ObjectHandle, tag, issuerID, signatureType *byte, supportRevocation int8, credDef, credDefPrivate, keyProof *ObjectHandle) ErrorCode {
	return ErrorCode(C.ac_create_credential_definition(d.addr(FnCreateCredentialDefinition),
		cText(schemaID), cHandle(schema), cText(tag), cText(issuerID), cText(signatureType),
		C.int8_t(supportRevocation), cOutHandle(credDef), cOutHandle(credDefPrivate), cOutHandle(keyProof)))
}

func (d *Dylib) CreateRevocationRegistryDef(credDef ObjectHandle, credDefID, issuerID, tag, revRegType *byte, maxCredNum int64, tailsDirPath *byte, regDef, regDefPrivate *ObjectHandle) ErrorCode {
	return ErrorCode(C.ac_create_revocation_registry_def(d.addr(FnCreateRevocationRegistryDef),
		cHandle(credDef), cText(credDefID), cText(issuerID), cText(tag), cText(revRegType),
		C.int64_t(maxCredNum), cText(tailsDirPath), cOutHandle(regDef), cOutHandle(regDefPrivate)))
}

func (d *Dylib) RevocationRegistryDefinitionGetAttribute(handle ObjectHandle, name *byte, result **byte) ErrorCode {
	return ErrorCode(C.ac_get_attribute(d.addr(FnRevocationRegistryDefinitionGetAttribute),
		cHandle(handle), cText(name), cOutText(result)))
}

func (d *Dylib) CreateRevocationStatusList(credDef ObjectHandle, revRegDefID *byte, revRegDef, revRegDefPrivate ObjectHandle, issuerID *byte, issuanceByDefault int8, timestamp int64, result *ObjectHandle) ErrorCode {
	return ErrorCode(C.ac_create_revocation_status_list(d.addr(FnCreateRevocationStatusList),
		cHandle(credDef), cText(revRegDefID), cHandle(revRegDef), cHandle(revRegDefPrivate), cText(issuerID),
		C.int8_t(issuanceByDefault), C.int64_t(timestamp), cOutHandle(result)))
}

func (d *Dylib) UpdateRevocationStatusList(credDef, revRegDef, revRegDefPrivate, current ObjectHandle, issued, revoked FfiI32List, timestamp int64, result *ObjectHandle) ErrorCode {
	return ErrorCode(C.ac_update_revocation_status_list(d.addr(FnUpdateRevocationStatusList),
		cHandle(credDef), cHandle(revRegDef), cHandle(revRegDefPrivate), cHandle(current),
		cI32List(issued), cI32List(revoked), C.int64_t(timestamp), cOutHandle(result)))
}

func (d *Dylib) UpdateRevocationStatusListTimestampOnly(timestamp int64, current ObjectHandle, result *ObjectHandle) ErrorCode {
	return ErrorCode(C.ac_update_revocation_status_list_timestamp_only(d.addr(FnUpdateRevocationStatusListTimestampOnly),
		C.int64_t(timestamp), cHandle(current), cOutHandle(result)))
}

func (d *Dylib) CreateOrUpdateRevocationState(revRegDef, statusList ObjectHandle, revRegIdx int64, tailsPath *byte, oldState, oldStatusList ObjectHandle, result *ObjectHandle) ErrorCode {
	return ErrorCode(C.ac_create_or_update_revocation_state(d.addr(FnCreateOrUpdateRevocationState),
		cHandle(revRegDef), cHandle(statusList), C.int64_t(revRegIdx), cText(tailsPath),
		cHandle(oldState), cHandle(oldStatusList), cOutHandle(result)))
}

func (d *Dylib) CreateLinkSecret(linkSecret **byte) ErrorCode {
	return ErrorCode(C.ac_out_text(d.addr(FnCreateLinkSecret), cOutText(linkSecret)))
}

func (d *Dylib) CreateCredentialOffer(schemaID, credDefID *byte, keyProof ObjectHandle, result *ObjectHandle) ErrorCode {
	return ErrorCode(C.ac_create_credential_offer(d.addr(FnCreateCredentialOffer),
		cText(schemaID), cText(credDefID), cHandle(keyProof), cOutHandle(result)))
}

func (d *Dylib) CreateCredentialRequest(entropy, proverDID *byte, credDef ObjectHandle, linkSecret, linkSecretID *byte, credOffer ObjectHandle, request, metadata *ObjectHandle) ErrorCode {
	return ErrorCode(C.ac_create_credential_request(d.addr(FnCreateCredentialRequest),
		cText(entropy), cText(proverDID), cHandle(credDef), cText(linkSecret), cText(linkSecretID),
		cHandle(credOffer), cOutHandle(request), cOutHandle(metadata)))
}

func (d *Dylib) CreateCredential(credDef, credDefPrivate, credOffer, credRequest ObjectHandle, attrNames, attrRawValues, attrEncValues FfiStrList, revocation *FfiCredRevInfo, result *ObjectHandle) ErrorCode {
	return ErrorCode(C.ac_create_credential(d.addr(FnCreateCredential),
		cHandle(credDef), cHandle(credDefPrivate), cHandle(credOffer), cHandle(credRequest),
		cStrList(attrNames), cStrList(attrRawValues), cStrList(attrEncValues), cRevInfo(revocation),
		cOutHandle(result)))
}

func (d *Dylib) CredentialGetAttribute(handle ObjectHandle, name *byte, result **byte) ErrorCode {
	return ErrorCode(C.ac_get_attribute(d.addr(FnCredentialGetAttribute), cHandle(handle), cText(name), cOutText(result)))
}

func (d *Dylib) ProcessCredential(cred, credReqMetadata ObjectHandle, linkSecret *byte, credDef, revRegDef ObjectHandle, result *ObjectHandle) ErrorCode {
	return ErrorCode(C.ac_process_credential(d.addr(FnProcessCredential),
		cHandle(cred), cHandle(credReqMetadata), cText(linkSecret), cHandle(credDef), cHandle(revRegDef),
		cOutHandle(result)))
}

func (d *Dylib) EncodeCredentialAttributes(attrRawValues FfiStrList, result **byte) ErrorCode {
	return ErrorCode(C.ac_encode_credential_attributes(d.addr(FnEncodeCredentialAttributes),
		cStrList(attrRawValues), cOutText(result)))
}

func (d *Dylib) CreateW3cCredential(credDef, credDefPrivate, credOffer, credRequest ObjectHandle, attrNames, attrRawValues FfiStrList, revocation *FfiCredRevInfo, w3cVersion *byte, result *ObjectHandle) ErrorCode {
	return ErrorCode(C.ac_create_w3c_credential(d.addr(FnCreateW3cCredential),
		cHandle(credDef), cHandle(credDefPrivate), cHandle(credOffer), cHandle(credRequest),
		cStrList(attrNames), cStrList(attrRawValues), cRevInfo(revocation), cText(w3cVersion),
		cOutHandle(result)))
}

func (d *Dylib) CredentialToW3c(cred ObjectHandle, issuerID, w3cVersion *byte, result *ObjectHandle) ErrorCode {
	return ErrorCode(C.ac_credential_to_w3c(d.addr(FnCredentialToW3c),
		cHandle(cred), cText(issuerID), cText(w3cVersion), cOutHandle(result)))
}

func (d *Dylib) CredentialFromW3c(cred ObjectHandle, result *ObjectHandle) ErrorCode {
	return ErrorCode(C.ac_handle_out_handle(d.addr(FnCredentialFromW3c), cHandle(cred), cOutHandle(result)))
}

func (d *Dylib) ProcessW3cCredential(cred, credReqMetadata ObjectHandle, linkSecret *byte, credDef, revRegDef ObjectHandle, result *ObjectHandle) ErrorCode {
	return ErrorCode(C.ac_process_credential(d.addr(FnProcessW3cCredential),
		cHandle(cred), cHandle(credReqMetadata), cText(linkSecret), cHandle(credDef), cHandle(revRegDef),
		cOutHandle(result)))
}

func (d *Dylib) W3cCredentialGetIntegrityProofDetails(cred ObjectHandle, result *ObjectHandle) ErrorCode {
	return ErrorCode(C.ac_handle_out_handle(d.addr(FnW3cCredentialGetIntegrityProofDetails),
		cHandle(cred), cOutHandle(result)))
}

func (d *Dylib) W3cCredentialProofGetAttribute(handle ObjectHandle, name *byte, result **byte) ErrorCode {
	return ErrorCode(C.ac_get_attribute(d.addr(FnW3cCredentialProofGetAttribute),
		cHandle(handle), cText(name), cOutText(result)))
}

func (d *Dylib) CreatePresentation(presReq ObjectHandle, credentials FfiCredentialEntryList, credentialsProve FfiCredentialProveList, selfAttestNames, selfAttestValues FfiStrList, linkSecret *byte, schemas FfiObjectHandleList, schemaIDs FfiStrList, credDefs FfiObjectHandleList, credDefIDs FfiStrList, result *ObjectHandle) ErrorCode {
	return ErrorCode(C.ac_create_presentation(d.addr(FnCreatePresentation),
		cHandle(presReq), cEntryList(credentials), cProveList(credentialsProve),
		cStrList(selfAttestNames), cStrList(selfAttestValues), cText(linkSecret),
		cHandleList(schemas), cStrList(schemaIDs), cHandleList(credDefs), cStrList(credDefIDs),
		cOutHandle(result)))
}

func (d *Dylib) VerifyPresentation(presentation, presReq ObjectHandle, schemas FfiObjectHandleList, schemaIDs FfiStrList, credDefs FfiObjectHandleList, credDefIDs FfiStrList, revRegDefs FfiObjectHandleList, revRegDefIDs FfiStrList, revStatusLists FfiObjectHandleList, overrides FfiNonrevokedIntervalOverrideList, valid *int8) ErrorCode {
	return d.verify(FnVerifyPresentation, presentation, presReq, schemas, schemaIDs, credDefs, credDefIDs,
		revRegDefs, revRegDefIDs, revStatusLists, overrides, valid)
}

func (d *Dylib) CreateW3cPresentation(presReq ObjectHandle, credentials FfiCredentialEntryList, credentialsProve FfiCredentialProveList, linkSecret *byte, schemas FfiObjectHandleList, schemaIDs FfiStrList, credDefs FfiObjectHandleList, credDefIDs FfiStrList, w3cVersion *byte, result *ObjectHandle) ErrorCode {
	return ErrorCode(C.ac_create_w3c_presentation(d.addr(FnCreateW3cPresentation),
		cHandle(presReq), cEntryList(credentials), cProveList(credentialsProve), cText(linkSecret),
		cHandleList(schemas), cStrList(schemaIDs), cHandleList(credDefs), cStrList(credDefIDs),
		cText(w3cVersion), cOutHandle(result)))
}

func (d *Dylib) VerifyW3cPresentation(presentation, presReq ObjectHandle, schemas FfiObjectHandleList, schemaIDs FfiStrList, credDefs FfiObjectHandleList, credDefIDs FfiStrList, revRegDefs FfiObjectHandleList, revRegDefIDs FfiStrList, revStatusLists FfiObjectHandleList, overrides FfiNonrevokedIntervalOverrideList, valid *int8) ErrorCode {
	return d.verify(FnVerifyW3cPresentation, presentation, presReq, schemas, schemaIDs, credDefs, credDefIDs,
		revRegDefs, revRegDefIDs, revStatusLists, overrides, valid)
}

func (d *Dylib) verify(fn string, presentation, presReq ObjectHandle, schemas FfiObjectHandleList, schemaIDs FfiStrList, credDefs FfiObjectHandleList, credDefIDs FfiStrList, revRegDefs FfiObjectHandleList, revRegDefIDs FfiStrList, revStatusLists FfiObjectHandleList, overrides FfiNonrevokedIntervalOverrideList, valid *int8) ErrorCode {
	return ErrorCode(C.ac_verify_presentation(d.addr(fn),
		cHandle(presentation), cHandle(presReq), cHandleList(schemas), cStrList(schemaIDs),
		cHandleList(credDefs), cStrList(credDefIDs), cHandleList(revRegDefs), cStrList(revRegDefIDs),
		cHandleList(revStatusLists), cOverrideList(overrides), (*C.int8_t)(unsafe.Pointer(valid))))
}

// cLayouts reports what the C compiler assigns to the boundary structs:
// sizes keyed by type name and offsets keyed "Type.GoField".
func cLayouts() map[string]uintptr {
	var (
		buf   C.ByteBuffer
		strs  C.FfiStrList
		ints  C.FfiI32List
		hl    C.FfiObjectHandleList
		rev   C.FfiCredRevInfo
		entry C.FfiCredentialEntry
		el    C.FfiCredentialEntryList
		prove C.FfiCredentialProve
		pl    C.FfiCredentialProveList
		ovr   C.FfiNonrevokedIntervalOverride
		ol    C.FfiNonrevokedIntervalOverrideList
	)
	return map[string]uintptr{
		"ByteBuffer":      unsafe.Sizeof(buf),
		"ByteBuffer.Len":  unsafe.Offsetof(buf.len),
		"ByteBuffer.Data": unsafe.Offsetof(buf.data),

		"FfiStrList":       unsafe.Sizeof(strs),
		"FfiStrList.Count": unsafe.Offsetof(strs.count),
		"FfiStrList.Data":  unsafe.Offsetof(strs.data),

		"FfiI32List":       unsafe.Sizeof(ints),
		"FfiI32List.Count": unsafe.Offsetof(ints.count),
		"FfiI32List.Data":  unsafe.Offsetof(ints.data),

		"FfiObjectHandleList":       unsafe.Sizeof(hl),
		"FfiObjectHandleList.Count": unsafe.Offsetof(hl.count),
		"FfiObjectHandleList.Data":  unsafe.Offsetof(hl.data),

		"FfiCredentialEntryList":       unsafe.Sizeof(el),
		"FfiCredentialEntryList.Count": unsafe.Offsetof(el.count),
		"FfiCredentialEntryList.Data":  unsafe.Offsetof(el.data),

		"FfiCredentialProveList":       unsafe.Sizeof(pl),
		"FfiCredentialProveList.Count": unsafe.Offsetof(pl.count),
		"FfiCredentialProveList.Data":  unsafe.Offsetof(pl.data),

		"FfiNonrevokedIntervalOverrideList":       unsafe.Sizeof(ol),
		"FfiNonrevokedIntervalOverrideList.Count": unsafe.Offsetof(ol.count),
		"FfiNonrevokedIntervalOverrideList.Data":  unsafe.Offsetof(ol.data),

		"FfiCredRevInfo":               unsafe.Sizeof(rev),
		"FfiCredRevInfo.RegDef":        unsafe.Offsetof(rev.reg_def),
		"FfiCredRevInfo.RegDefPrivate": unsafe.Offsetof(rev.reg_def_private),
		"FfiCredRevInfo.StatusList":    unsafe.Offsetof(rev.status_list),
		"FfiCredRevInfo.RegIdx":        unsafe.Offsetof(rev.reg_idx),

		"FfiCredentialEntry":            unsafe.Sizeof(entry),
		"FfiCredentialEntry.Credential": unsafe.Offsetof(entry.credential),
		"FfiCredentialEntry.Timestamp":  unsafe.Offsetof(entry.timestamp),
		"FfiCredentialEntry.RevState":   unsafe.Offsetof(entry.rev_state),

		"FfiCredentialProve":             unsafe.Sizeof(prove),
		"FfiCredentialProve.EntryIdx":    unsafe.Offsetof(prove.entry_idx),
		"FfiCredentialProve.Referent":    unsafe.Offsetof(prove.referent),
		"FfiCredentialProve.IsPredicate": unsafe.Offsetof(prove.is_predicate),
		"FfiCredentialProve.Reveal":      unsafe.Offsetof(prove.reveal),

		"FfiNonrevokedIntervalOverride":                         unsafe.Sizeof(ovr),
		"FfiNonrevokedIntervalOverride.RevRegDefID":             unsafe.Offsetof(ovr.rev_reg_def_id),
		"FfiNonrevokedIntervalOverride.RequestedFromTs":         unsafe.Offsetof(ovr.requested_from_ts),
		"FfiNonrevokedIntervalOverride.OverrideRevStatusListTs": unsafe.Offsetof(ovr.override_rev_status_list_ts),
	}
}
