package mocklib

import (
	"encoding/base64"
	"encoding/json"
	"strconv"

	"github.com/anoncreds/anoncreds-go/internal/native"
)

const (
	w3cContextV11  = "https://www.w3.org/2018/credentials/v1"
	w3cContextV20  = "https://www.w3.org/ns/credentials/v2"
	w3cCryptosuite = "anoncreds-2023"
)

func w3cContext(version *byte) ([]string, error) {
	switch v := native.GoString(version); v {
	case "", "1.1":
		return []string{w3cContextV11, "https://w3id.org/security/data-integrity/v2"}, nil
	case "2.0":
		return []string{w3cContextV20}, nil
	default:
		return nil, inputErr("Unsupported W3C version %q", v)
	}
}

type w3cProof struct {
	Type               string `json:"type"`
	Cryptosuite        string `json:"cryptosuite"`
	ProofPurpose       string `json:"proofPurpose"`
	VerificationMethod string `json:"verificationMethod"`
	Challenge          string `json:"challenge,omitempty"`
	ProofValue         string `json:"proofValue"`
}

type w3cCredential struct {
	Context           []string          `json:"@context"`
	Type              []string          `json:"type"`
	Issuer            string            `json:"issuer"`
	CredentialSubject map[string]string `json:"credentialSubject"`
	Proof             w3cProof          `json:"proof"`
}

func (c *w3cCredential) validate() error {
	if c.Proof.Cryptosuite != w3cCryptosuite {
		return inputErr("Invalid W3C credential: unsupported cryptosuite %q", c.Proof.Cryptosuite)
	}
	_, err := c.legacy()
	return err
}

// proofDetails is the view returned by the integrity proof accessor.
type proofDetails struct {
	SchemaID    string  `json:"schema_id"`
	CredDefID   string  `json:"cred_def_id"`
	RevRegID    *string `json:"rev_reg_id"`
	RevRegIndex *int64  `json:"rev_reg_index"`
	Timestamp   *int64  `json:"timestamp"`
}

func encodeProofValue(v any) (string, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return "u" + base64.RawURLEncoding.EncodeToString(raw), nil
}

func decodeProofValue(s string, v any) error {
	if len(s) < 2 || s[0] != 'u' {
		return inputErr("Invalid proof value encoding")
	}
	raw, err := base64.RawURLEncoding.DecodeString(s[1:])
	if err != nil {
		return inputErr("Invalid proof value encoding: %v", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return inputErr("Invalid proof value: %v", err)
	}
	return nil
}

// toW3c wraps a legacy credential. The full legacy form travels in the
// proof value so the conversion is lossless.
func toW3c(cred *credential, issuerID string, version *byte) (*w3cCredential, error) {
	ctx, err := w3cContext(version)
	if err != nil {
		return nil, err
	}
	pv, err := encodeProofValue(cred)
	if err != nil {
		return nil, err
	}
	subject := make(map[string]string, len(cred.Values))
	for name, v := range cred.Values {
		subject[name] = v.Raw
	}
	return &w3cCredential{
		Context:           ctx,
		Type:              []string{"VerifiableCredential"},
		Issuer:            issuerID,
		CredentialSubject: subject,
		Proof: w3cProof{
			Type:               "DataIntegrityProof",
			Cryptosuite:        w3cCryptosuite,
			ProofPurpose:       "assertionMethod",
			VerificationMethod: cred.CredDefID,
			ProofValue:         pv,
		},
	}, nil
}

func (c *w3cCredential) legacy() (*credential, error) {
	cred := new(credential)
	if err := decodeProofValue(c.Proof.ProofValue, cred); err != nil {
		return nil, err
	}
	if err := cred.validate(); err != nil {
		return nil, err
	}
	for name, raw := range c.CredentialSubject {
		v, ok := cred.Values[name]
		if !ok || v.Raw != raw {
			return nil, inputErr("Invalid W3C credential: subject attribute %s does not match the proof", name)
		}
	}
	return cred, nil
}

func (l *Library) CreateW3cCredential(credDef, credDefPrivate, credOffer, credRequest native.ObjectHandle, attrNames, attrRawValues native.FfiStrList, revocation *native.FfiCredRevInfo, w3cVersion *byte, result *native.ObjectHandle) native.ErrorCode {
	return l.run(native.FnCreateW3cCredential, func() error {
		cred, err := l.issue(credDef, credDefPrivate, credOffer, credRequest,
			attrNames.Strings(), attrRawValues.Strings(), nil, revocation)
		if err != nil {
			return err
		}
		cd, err := load[credentialDefinition](l, credDef, typeCredentialDefinition)
		if err != nil {
			return err
		}
		w, err := toW3c(cred, cd.IssuerID, w3cVersion)
		if err != nil {
			return err
		}
		*result = l.put(typeW3cCredential, w)
		return nil
	})
}

func (l *Library) CredentialToW3c(cred native.ObjectHandle, issuerID, w3cVersion *byte, result *native.ObjectHandle) native.ErrorCode {
	return l.run(native.FnCredentialToW3c, func() error {
		c, err := load[credential](l, cred, typeCredential)
		if err != nil {
			return err
		}
		iid, err := required(issuerID, "issuer_id")
		if err != nil {
			return err
		}
		w, err := toW3c(c, iid, w3cVersion)
		if err != nil {
			return err
		}
		*result = l.put(typeW3cCredential, w)
		return nil
	})
}

func (l *Library) CredentialFromW3c(cred native.ObjectHandle, result *native.ObjectHandle) native.ErrorCode {
	return l.run(native.FnCredentialFromW3c, func() error {
		w, err := load[w3cCredential](l, cred, typeW3cCredential)
		if err != nil {
			return err
		}
		c, err := w.legacy()
		if err != nil {
			return err
		}
		*result = l.put(typeCredential, c)
		return nil
	})
}

func (l *Library) ProcessW3cCredential(cred, credReqMetadata native.ObjectHandle, linkSecret *byte, credDef, revRegDef native.ObjectHandle, result *native.ObjectHandle) native.ErrorCode {
	return l.run(native.FnProcessW3cCredential, func() error {
		w, err := load[w3cCredential](l, cred, typeW3cCredential)
		if err != nil {
			return err
		}
		c, err := w.legacy()
		if err != nil {
			return err
		}
		processed, err := l.process(c, credReqMetadata, linkSecret, credDef, revRegDef)
		if err != nil {
			return err
		}
		pv, err := encodeProofValue(processed)
		if err != nil {
			return err
		}
		out := *w
		out.Proof.ProofValue = pv
		*result = l.put(typeW3cCredential, &out)
		return nil
	})
}

func (l *Library) W3cCredentialGetIntegrityProofDetails(cred native.ObjectHandle, result *native.ObjectHandle) native.ErrorCode {
	return l.run(native.FnW3cCredentialGetIntegrityProofDetails, func() error {
		w, err := load[w3cCredential](l, cred, typeW3cCredential)
		if err != nil {
			return err
		}
		c, err := w.legacy()
		if err != nil {
			return err
		}
		d := &proofDetails{SchemaID: c.SchemaID, CredDefID: c.CredDefID, RevRegID: c.RevRegID}
		if c.Signature.RCredential != nil {
			idx := c.Signature.RCredential.I
			d.RevRegIndex = &idx
		}
		*result = l.put(typeProofDetails, d)
		return nil
	})
}

func (l *Library) W3cCredentialProofGetAttribute(handle native.ObjectHandle, name *byte, result **byte) native.ErrorCode {
	return l.run(native.FnW3cCredentialProofGetAttribute, func() error {
		d, err := load[proofDetails](l, handle, typeProofDetails)
		if err != nil {
			return err
		}
		var v *string
		switch attr := native.GoString(name); attr {
		case "schema_id":
			v = &d.SchemaID
		case "cred_def_id":
			v = &d.CredDefID
		case "rev_reg_id":
			v = d.RevRegID
		case "rev_reg_index":
			if d.RevRegIndex != nil {
				s := strconv.FormatInt(*d.RevRegIndex, 10)
				v = &s
			}
		case "timestamp":
			if d.Timestamp != nil {
				s := strconv.FormatInt(*d.Timestamp, 10)
				v = &s
			}
		default:
			return inputErr("Unsupported attribute: %s", attr)
		}
		if v != nil {
			*result = l.allocString(*v)
		}
		return nil
	})
}
