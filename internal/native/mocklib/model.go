package mocklib

import (
	"bytes"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"math/big"
	"strconv"

	"github.com/google/uuid"

	"github.com/anoncreds/anoncreds-go/internal/native"
)

// Type names reported by ObjectGetTypeName.
const (
	typeSchema                    = "Schema"
	typeCredentialDefinition      = "CredentialDefinition"
	typeCredentialDefinitionPriv  = "CredentialDefinitionPrivate"
	typeKeyCorrectnessProof       = "CredentialKeyCorrectnessProof"
	typeRevRegDef                 = "RevocationRegistryDefinition"
	typeRevRegDefPrivate          = "RevocationRegistryDefinitionPrivate"
	typeRevocationRegistry        = "RevocationRegistry"
	typeRevocationStatusList      = "RevocationStatusList"
	typeRevocationState           = "CredentialRevocationState"
	typeCredentialOffer           = "CredentialOffer"
	typeCredentialRequest         = "CredentialRequest"
	typeCredentialRequestMetadata = "CredentialRequestMetadata"
	typeCredential                = "Credential"
	typeW3cCredential             = "W3CCredential"
	typeProofDetails              = "CredentialProofDetails"
	typePresentationRequest       = "PresentationRequest"
	typePresentation              = "Presentation"
	typeW3cPresentation           = "W3CPresentation"
)

type schema struct {
	Name      string   `json:"name"`
	Version   string   `json:"version"`
	IssuerID  string   `json:"issuerId"`
	AttrNames []string `json:"attrNames"`
}

func (s *schema) validate() error {
	switch {
	case s.Name == "":
		return inputErr("Invalid schema: name is empty")
	case s.Version == "":
		return inputErr("Invalid schema: version is empty")
	case s.IssuerID == "":
		return inputErr("Invalid schema: issuerId is empty")
	case len(s.AttrNames) == 0:
		return inputErr("Invalid schema: attrNames is empty")
	}
	seen := make(map[string]bool, len(s.AttrNames))
	for _, a := range s.AttrNames {
		if a == "" {
			return inputErr("Invalid schema: empty attribute name")
		}
		if seen[a] {
			return inputErr("Invalid schema: duplicate attribute %q", a)
		}
		seen[a] = true
	}
	return nil
}

type primaryKey struct {
	N     string            `json:"n"`
	S     string            `json:"s"`
	R     map[string]string `json:"r"`
	Rctxt string            `json:"rctxt"`
	Z     string            `json:"z"`
}

type revocationKey struct {
	G  string `json:"g"`
	H  string `json:"h"`
	PK string `json:"pk"`
	Y  string `json:"y"`
}

type credDefValue struct {
	Primary    primaryKey     `json:"primary"`
	Revocation *revocationKey `json:"revocation,omitempty"`
}

type credentialDefinition struct {
	SchemaID string       `json:"schemaId"`
	Type     string       `json:"type"`
	Tag      string       `json:"tag"`
	IssuerID string       `json:"issuerId"`
	Value    credDefValue `json:"value"`
}

func (c *credentialDefinition) validate() error {
	switch {
	case c.SchemaID == "":
		return inputErr("Invalid credential definition: schemaId is empty")
	case c.IssuerID == "":
		return inputErr("Invalid credential definition: issuerId is empty")
	case c.Type != "CL":
		return inputErr("Invalid credential definition: unsupported signature type %q", c.Type)
	}
	return nil
}

type credentialDefinitionPrivate struct {
	Value struct {
		PKey struct {
			P string `json:"p"`
			Q string `json:"q"`
		} `json:"p_key"`
	} `json:"value"`
}

type keyCorrectnessProof struct {
	C     string      `json:"c"`
	XzCap string      `json:"xz_cap"`
	XrCap [][2]string `json:"xr_cap"`
}

type revRegDefValue struct {
	MaxCredNum int64 `json:"maxCredNum"`
	PublicKeys struct {
		AccumKey struct {
			Z string `json:"z"`
		} `json:"accumKey"`
	} `json:"publicKeys"`
	TailsHash     string `json:"tailsHash"`
	TailsLocation string `json:"tailsLocation"`
}

type revocationRegistryDefinition struct {
	ID           string         `json:"id,omitempty"`
	IssuerID     string         `json:"issuerId"`
	RevocDefType string         `json:"revocDefType"`
	Tag          string         `json:"tag"`
	CredDefID    string         `json:"credDefId"`
	Value        revRegDefValue `json:"value"`
}

func (r *revocationRegistryDefinition) validate() error {
	switch {
	case r.RevocDefType != "CL_ACCUM":
		return inputErr("Invalid revocation registry type %q", r.RevocDefType)
	case r.Value.MaxCredNum <= 0:
		return inputErr("Invalid revocation registry: maxCredNum must be positive")
	}
	return nil
}

type revocationRegistryDefinitionPrivate struct {
	Value struct {
		Gamma string `json:"gamma"`
	} `json:"value"`
}

type accumulator struct {
	Accum string `json:"accum"`
}

type revocationRegistry struct {
	Value accumulator `json:"value"`
}

type revocationStatusList struct {
	RevRegDefID        string `json:"revRegDefId,omitempty"`
	IssuerID           string `json:"issuerId"`
	RevocationList     []int  `json:"revocationList"`
	CurrentAccumulator string `json:"currentAccumulator,omitempty"`
	Timestamp          *int64 `json:"timestamp,omitempty"`
}

// revoked reports the bit for a 1-based registry index.
func (s *revocationStatusList) revoked(idx int64) bool {
	return idx >= 1 && idx <= int64(len(s.RevocationList)) && s.RevocationList[idx-1] == 1
}

type witness struct {
	Omega string `json:"omega"`
}

type revocationState struct {
	Witness   witness     `json:"witness"`
	RevReg    accumulator `json:"rev_reg"`
	Timestamp int64       `json:"timestamp"`
	RevRegIdx int64       `json:"rev_reg_idx"`
}

type credentialOffer struct {
	SchemaID            string              `json:"schema_id"`
	CredDefID           string              `json:"cred_def_id"`
	KeyCorrectnessProof keyCorrectnessProof `json:"key_correctness_proof"`
	Nonce               string              `json:"nonce"`
}

type blindedLinkSecret struct {
	U  string  `json:"u"`
	Ur *string `json:"ur"`
}

type credentialRequest struct {
	Entropy                   *string           `json:"entropy,omitempty"`
	ProverDID                 *string           `json:"prover_did,omitempty"`
	CredDefID                 string            `json:"cred_def_id"`
	BlindedMs                 blindedLinkSecret `json:"blinded_ms"`
	BlindedMsCorrectnessProof struct {
		C        string            `json:"c"`
		VDashCap string            `json:"v_dash_cap"`
		MCaps    map[string]string `json:"m_caps"`
	} `json:"blinded_ms_correctness_proof"`
	Nonce string `json:"nonce"`
}

type credentialRequestMetadata struct {
	LinkSecretBlindingData struct {
		VPrime  string  `json:"v_prime"`
		VrPrime *string `json:"vr_prime"`
	} `json:"link_secret_blinding_data"`
	Nonce          string `json:"nonce"`
	LinkSecretName string `json:"link_secret_name"`
}

type attributeValue struct {
	Raw     string `json:"raw"`
	Encoded string `json:"encoded"`
}

type rCredential struct {
	Sigma string `json:"sigma"`
	C     string `json:"c"`
	I     int64  `json:"i"`
}

type credentialSignature struct {
	PCredential struct {
		M2 string `json:"m_2"`
		A  string `json:"a"`
		E  string `json:"e"`
		V  string `json:"v"`
	} `json:"p_credential"`
	RCredential *rCredential `json:"r_credential"`
}

type credential struct {
	SchemaID                  string                    `json:"schema_id"`
	CredDefID                 string                    `json:"cred_def_id"`
	RevRegID                  *string                   `json:"rev_reg_id"`
	Values                    map[string]attributeValue `json:"values"`
	Signature                 credentialSignature       `json:"signature"`
	SignatureCorrectnessProof struct {
		Se string `json:"se"`
		C  string `json:"c"`
	} `json:"signature_correctness_proof"`
	RevReg  *accumulator `json:"rev_reg"`
	Witness *witness     `json:"witness"`
}

func (c *credential) validate() error {
	if c.SchemaID == "" || c.CredDefID == "" {
		return inputErr("Invalid credential: missing schema_id or cred_def_id")
	}
	if len(c.Values) == 0 {
		return inputErr("Invalid credential: no attribute values")
	}
	return nil
}

type interval struct {
	From *int64 `json:"from,omitempty"`
	To   *int64 `json:"to,omitempty"`
}

type attributeInfo struct {
	Name         *string         `json:"name,omitempty"`
	Names        []string        `json:"names,omitempty"`
	Restrictions json.RawMessage `json:"restrictions,omitempty"`
	NonRevoked   *interval       `json:"non_revoked,omitempty"`
}

func (a attributeInfo) names() []string {
	if a.Name != nil {
		return []string{*a.Name}
	}
	return a.Names
}

type predicateInfo struct {
	Name         string          `json:"name"`
	PType        string          `json:"p_type"`
	PValue       int64           `json:"p_value"`
	Restrictions json.RawMessage `json:"restrictions,omitempty"`
	NonRevoked   *interval       `json:"non_revoked,omitempty"`
}

type presentationRequest struct {
	Nonce               string                   `json:"nonce"`
	Name                string                   `json:"name"`
	Version             string                   `json:"version"`
	RequestedAttributes map[string]attributeInfo `json:"requested_attributes"`
	RequestedPredicates map[string]predicateInfo `json:"requested_predicates"`
	NonRevoked          *interval                `json:"non_revoked,omitempty"`
}

func (p *presentationRequest) validate() error {
	if p.Nonce == "" {
		return inputErr("Invalid presentation request: nonce is empty")
	}
	if _, ok := new(big.Int).SetString(p.Nonce, 10); !ok {
		return inputErr("Invalid presentation request: nonce is not a decimal number")
	}
	for ref, a := range p.RequestedAttributes {
		if (a.Name == nil) == (len(a.Names) == 0) {
			return inputErr("Invalid presentation request: attribute %s needs exactly one of name or names", ref)
		}
	}
	for ref, pr := range p.RequestedPredicates {
		if _, ok := predicateOps[pr.PType]; !ok {
			return inputErr("Invalid presentation request: predicate %s has unsupported p_type %q", ref, pr.PType)
		}
	}
	return nil
}

// constructor decodes one object kind from JSON.
type constructor struct {
	typeName string
	decode   func([]byte) (any, error)
}

type validator interface {
	validate() error
}

func decoder[T any](typeName string) constructor {
	return constructor{
		typeName: typeName,
		decode: func(data []byte) (any, error) {
			v := new(T)
			dec := json.NewDecoder(bytes.NewReader(data))
			if err := dec.Decode(v); err != nil {
				return nil, inputErr("Invalid %s JSON: %v", typeName, err)
			}
			if vv, ok := any(v).(validator); ok {
				if err := vv.validate(); err != nil {
					return nil, err
				}
			}
			return v, nil
		},
	}
}

var constructors = map[native.ObjectKind]constructor{
	native.ObjectSchema:                              decoder[schema](typeSchema),
	native.ObjectCredentialDefinition:                decoder[credentialDefinition](typeCredentialDefinition),
	native.ObjectCredentialDefinitionPrivate:         decoder[credentialDefinitionPrivate](typeCredentialDefinitionPriv),
	native.ObjectKeyCorrectnessProof:                 decoder[keyCorrectnessProof](typeKeyCorrectnessProof),
	native.ObjectRevocationRegistryDefinition:        decoder[revocationRegistryDefinition](typeRevRegDef),
	native.ObjectRevocationRegistryDefinitionPrivate: decoder[revocationRegistryDefinitionPrivate](typeRevRegDefPrivate),
	native.ObjectRevocationRegistry:                  decoder[revocationRegistry](typeRevocationRegistry),
	native.ObjectRevocationStatusList:                decoder[revocationStatusList](typeRevocationStatusList),
	native.ObjectRevocationState:                     decoder[revocationState](typeRevocationState),
	native.ObjectCredentialOffer:                     decoder[credentialOffer](typeCredentialOffer),
	native.ObjectCredentialRequest:                   decoder[credentialRequest](typeCredentialRequest),
	native.ObjectCredentialRequestMetadata:           decoder[credentialRequestMetadata](typeCredentialRequestMetadata),
	native.ObjectCredential:                          decoder[credential](typeCredential),
	native.ObjectW3cCredential:                       decoder[w3cCredential](typeW3cCredential),
	native.ObjectPresentationRequest:                 decoder[presentationRequest](typePresentationRequest),
	native.ObjectPresentation:                        decoder[presentation](typePresentation),
	native.ObjectW3cPresentation:                     decoder[w3cPresentation](typeW3cPresentation),
}

// opaque stands in for a group element or signature component.
func opaque() string {
	return uuid.NewString()
}

func randomDecimal(bits int) (string, error) {
	limit := new(big.Int).Lsh(big.NewInt(1), uint(bits))
	n, err := rand.Int(rand.Reader, limit)
	if err != nil {
		return "", err
	}
	return n.String(), nil
}

func digest(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// encodeAttribute maps a raw value to its canonical integer encoding: values
// that parse as a 32-bit signed integer pass through, anything else becomes
// the decimal form of its SHA-256 digest read as a big-endian integer.
func encodeAttribute(raw string) string {
	if _, err := strconv.ParseInt(raw, 10, 32); err == nil {
		return raw
	}
	sum := sha256.Sum256([]byte(raw))
	return new(big.Int).SetBytes(sum[:]).String()
}
