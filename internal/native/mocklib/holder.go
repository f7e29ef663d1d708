package mocklib

import (
	"math/big"
	"sort"
	"strconv"
	"strings"

	"github.com/anoncreds/anoncreds-go/internal/native"
)

func (l *Library) CreateLinkSecret(linkSecret **byte) native.ErrorCode {
	return l.run(native.FnCreateLinkSecret, func() error {
		s, err := randomDecimal(256)
		if err != nil {
			return err
		}
		*linkSecret = l.allocString(s)
		return nil
	})
}

// linkSecretRef binds a credential to the holder's link secret without
// storing the secret itself.
func linkSecretRef(p *byte) (string, error) {
	s, err := required(p, "link_secret")
	if err != nil {
		return "", err
	}
	if _, ok := new(big.Int).SetString(s, 10); !ok {
		return "", inputErr("Invalid link secret: not a decimal number")
	}
	return digest("link-secret", s), nil
}

func (l *Library) CreateCredentialRequest(entropy, proverDID *byte, credDef native.ObjectHandle, linkSecret, linkSecretID *byte, credOffer native.ObjectHandle, request, metadata *native.ObjectHandle) native.ErrorCode {
	return l.run(native.FnCreateCredentialRequest, func() error {
		if _, err := load[credentialDefinition](l, credDef, typeCredentialDefinition); err != nil {
			return err
		}
		offer, err := load[credentialOffer](l, credOffer, typeCredentialOffer)
		if err != nil {
			return err
		}
		ent, did := optional(entropy), optional(proverDID)
		switch {
		case ent == nil && did == nil:
			return inputErr("Entropy or prover DID must be provided")
		case ent != nil && did != nil:
			return inputErr("Only one of entropy or prover DID may be provided")
		}
		ref, err := linkSecretRef(linkSecret)
		if err != nil {
			return err
		}
		lsID, err := required(linkSecretID, "link_secret_id")
		if err != nil {
			return err
		}
		nonce, err := randomDecimal(80)
		if err != nil {
			return err
		}

		req := &credentialRequest{
			Entropy:   ent,
			ProverDID: did,
			CredDefID: offer.CredDefID,
			BlindedMs: blindedLinkSecret{U: ref},
			Nonce:     nonce,
		}
		req.BlindedMsCorrectnessProof.C = opaque()
		req.BlindedMsCorrectnessProof.VDashCap = opaque()
		req.BlindedMsCorrectnessProof.MCaps = map[string]string{"master_secret": opaque()}

		meta := &credentialRequestMetadata{Nonce: offer.Nonce, LinkSecretName: lsID}
		meta.LinkSecretBlindingData.VPrime = opaque()

		*request = l.put(typeCredentialRequest, req)
		*metadata = l.put(typeCredentialRequestMetadata, meta)
		return nil
	})
}

// revocationBinding is the resolved form of FfiCredRevInfo.
type revocationBinding struct {
	def    *revocationRegistryDefinition
	list   *revocationStatusList
	regIdx int64
}

func (l *Library) resolveRevocation(info *native.FfiCredRevInfo, cd *credentialDefinition) (*revocationBinding, error) {
	if info == nil {
		return nil, nil
	}
	if cd.Value.Revocation == nil {
		return nil, inputErr("Credential definition does not support revocation")
	}
	def, err := load[revocationRegistryDefinition](l, info.RegDef, typeRevRegDef)
	if err != nil {
		return nil, err
	}
	if _, err := load[revocationRegistryDefinitionPrivate](l, info.RegDefPrivate, typeRevRegDefPrivate); err != nil {
		return nil, err
	}
	list, err := load[revocationStatusList](l, info.StatusList, typeRevocationStatusList)
	if err != nil {
		return nil, err
	}
	if info.RegIdx < 1 || info.RegIdx > def.Value.MaxCredNum {
		return nil, &failure{code: codeInvalidUserRevocID, message: "Invalid revocation index " + strconv.FormatInt(info.RegIdx, 10)}
	}
	return &revocationBinding{def: def, list: list, regIdx: info.RegIdx}, nil
}

// issue builds a legacy credential. It backs both the legacy and the W3C
// issuance paths.
func (l *Library) issue(credDef, credDefPrivate, credOffer, credRequest native.ObjectHandle, names, raws, encoded []string, revocation *native.FfiCredRevInfo) (*credential, error) {
	cd, err := load[credentialDefinition](l, credDef, typeCredentialDefinition)
	if err != nil {
		return nil, err
	}
	if _, err := load[credentialDefinitionPrivate](l, credDefPrivate, typeCredentialDefinitionPriv); err != nil {
		return nil, err
	}
	offer, err := load[credentialOffer](l, credOffer, typeCredentialOffer)
	if err != nil {
		return nil, err
	}
	req, err := load[credentialRequest](l, credRequest, typeCredentialRequest)
	if err != nil {
		return nil, err
	}
	if req.CredDefID != offer.CredDefID {
		return nil, inputErr("Credential request does not match the credential offer")
	}

	if len(names) != len(raws) {
		return nil, inputErr("Attribute names and raw values differ in length")
	}
	if len(encoded) != 0 && len(encoded) != len(raws) {
		return nil, inputErr("Attribute encoded values differ in length")
	}
	if len(names) == 0 {
		return nil, inputErr("No credential attributes provided")
	}
	if err := checkAttributes(cd, names); err != nil {
		return nil, err
	}

	rev, err := l.resolveRevocation(revocation, cd)
	if err != nil {
		return nil, err
	}

	cred := &credential{
		SchemaID:  offer.SchemaID,
		CredDefID: offer.CredDefID,
		Values:    make(map[string]attributeValue, len(names)),
	}
	for i, n := range names {
		enc := encodeAttribute(raws[i])
		if len(encoded) != 0 {
			enc = encoded[i]
		}
		cred.Values[n] = attributeValue{Raw: raws[i], Encoded: enc}
	}
	cred.Signature.PCredential.M2 = req.BlindedMs.U
	cred.Signature.PCredential.A = opaque()
	cred.Signature.PCredential.E = opaque()
	cred.Signature.PCredential.V = opaque()
	cred.SignatureCorrectnessProof.Se = opaque()
	cred.SignatureCorrectnessProof.C = opaque()
	if rev != nil {
		id := rev.list.RevRegDefID
		cred.RevRegID = &id
		cred.Signature.RCredential = &rCredential{Sigma: opaque(), C: opaque(), I: rev.regIdx}
		cred.RevReg = &accumulator{Accum: rev.list.CurrentAccumulator}
		cred.Witness = &witness{Omega: opaque()}
	}
	return cred, nil
}

// checkAttributes compares the issued attribute set against the
// credential definition's key set when the definition carries one.
func checkAttributes(cd *credentialDefinition, names []string) error {
	var keys []string
	for k := range cd.Value.Primary.R {
		if k != "master_secret" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return nil
	}
	got := append([]string(nil), names...)
	sort.Strings(keys)
	sort.Strings(got)
	if strings.Join(keys, "\x00") != strings.Join(got, "\x00") {
		return inputErr("Credential attributes do not match the credential definition")
	}
	return nil
}

func (l *Library) CreateCredential(credDef, credDefPrivate, credOffer, credRequest native.ObjectHandle, attrNames, attrRawValues, attrEncValues native.FfiStrList, revocation *native.FfiCredRevInfo, result *native.ObjectHandle) native.ErrorCode {
	return l.run(native.FnCreateCredential, func() error {
		cred, err := l.issue(credDef, credDefPrivate, credOffer, credRequest,
			attrNames.Strings(), attrRawValues.Strings(), attrEncValues.Strings(), revocation)
		if err != nil {
			return err
		}
		*result = l.put(typeCredential, cred)
		return nil
	})
}

func (l *Library) CredentialGetAttribute(handle native.ObjectHandle, name *byte, result **byte) native.ErrorCode {
	return l.run(native.FnCredentialGetAttribute, func() error {
		cred, err := load[credential](l, handle, typeCredential)
		if err != nil {
			return err
		}
		v, present, err := credentialAttribute(cred, native.GoString(name))
		if err != nil {
			return err
		}
		if present {
			*result = l.allocString(v)
		}
		return nil
	})
}

// credentialAttribute reads one of the fixed accessor names. Absent
// revocation fields report present=false and leave the result null.
func credentialAttribute(cred *credential, name string) (string, bool, error) {
	switch name {
	case "schema_id":
		return cred.SchemaID, true, nil
	case "cred_def_id":
		return cred.CredDefID, true, nil
	case "rev_reg_id":
		if cred.RevRegID == nil {
			return "", false, nil
		}
		return *cred.RevRegID, true, nil
	case "rev_reg_index":
		if cred.Signature.RCredential == nil {
			return "", false, nil
		}
		return strconv.FormatInt(cred.Signature.RCredential.I, 10), true, nil
	default:
		return "", false, inputErr("Unsupported attribute: %s", name)
	}
}

// process checks the holder-side inputs and returns the stored copy of cred.
func (l *Library) process(cred *credential, credReqMetadata native.ObjectHandle, linkSecret *byte, credDef, revRegDef native.ObjectHandle) (*credential, error) {
	if _, err := load[credentialRequestMetadata](l, credReqMetadata, typeCredentialRequestMetadata); err != nil {
		return nil, err
	}
	cd, err := load[credentialDefinition](l, credDef, typeCredentialDefinition)
	if err != nil {
		return nil, err
	}
	ref, err := linkSecretRef(linkSecret)
	if err != nil {
		return nil, err
	}
	if cred.Signature.PCredential.M2 != ref {
		return nil, inputErr("Credential was not issued for this link secret")
	}
	if cred.RevRegID != nil {
		if cd.Value.Revocation == nil {
			return nil, inputErr("Credential definition does not support revocation")
		}
		if _, err := load[revocationRegistryDefinition](l, revRegDef, typeRevRegDef); err != nil {
			return nil, err
		}
	}
	out := *cred
	return &out, nil
}

func (l *Library) ProcessCredential(cred, credReqMetadata native.ObjectHandle, linkSecret *byte, credDef, revRegDef native.ObjectHandle, result *native.ObjectHandle) native.ErrorCode {
	return l.run(native.FnProcessCredential, func() error {
		c, err := load[credential](l, cred, typeCredential)
		if err != nil {
			return err
		}
		out, err := l.process(c, credReqMetadata, linkSecret, credDef, revRegDef)
		if err != nil {
			return err
		}
		*result = l.put(typeCredential, out)
		return nil
	})
}

// EncodeCredentialAttributes returns the encodings joined by commas.
func (l *Library) EncodeCredentialAttributes(attrRawValues native.FfiStrList, result **byte) native.ErrorCode {
	return l.run(native.FnEncodeCredentialAttributes, func() error {
		raws := attrRawValues.Strings()
		out := make([]string, len(raws))
		for i, r := range raws {
			out[i] = encodeAttribute(r)
		}
		*result = l.allocString(strings.Join(out, ","))
		return nil
	})
}
