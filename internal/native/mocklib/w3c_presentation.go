package mocklib

import (
	"github.com/anoncreds/anoncreds-go/internal/native"
)

type w3cPresentedCredential struct {
	Context           []string          `json:"@context"`
	Type              []string          `json:"type"`
	Issuer            string            `json:"issuer"`
	CredentialSubject map[string]string `json:"credentialSubject"`
	Proof             w3cProof          `json:"proof"`
}

type w3cPresentation struct {
	Context              []string                 `json:"@context"`
	Type                 []string                 `json:"type"`
	VerifiableCredential []w3cPresentedCredential `json:"verifiableCredential"`
	Proof                w3cProof                 `json:"proof"`
}

func (p *w3cPresentation) validate() error {
	_, err := p.inner()
	return err
}

// inner recovers the presentation carried in the proof value.
func (p *w3cPresentation) inner() (*presentation, error) {
	if p.Proof.Cryptosuite != w3cCryptosuite {
		return nil, inputErr("Invalid W3C presentation: unsupported cryptosuite %q", p.Proof.Cryptosuite)
	}
	inner := new(presentation)
	if err := decodeProofValue(p.Proof.ProofValue, inner); err != nil {
		return nil, err
	}
	return inner, nil
}

func toW3cPresentation(p *presentation, req *presentationRequest, version *byte) (*w3cPresentation, error) {
	ctx, err := w3cContext(version)
	if err != nil {
		return nil, err
	}
	pv, err := encodeProofValue(p)
	if err != nil {
		return nil, err
	}
	out := &w3cPresentation{
		Context: ctx,
		Type:    []string{"VerifiablePresentation"},
		Proof: w3cProof{
			Type:         "DataIntegrityProof",
			Cryptosuite:  w3cCryptosuite,
			ProofPurpose: "authentication",
			Challenge:    req.Nonce,
			ProofValue:   pv,
		},
	}

	subjects := make([]map[string]string, len(p.Identifiers))
	for i := range subjects {
		subjects[i] = map[string]string{}
	}
	rp := p.RequestedProof
	for ref, v := range rp.RevealedAttrs {
		if info, ok := req.RequestedAttributes[ref]; ok && info.Name != nil {
			subjects[v.SubProofIndex][*info.Name] = v.Raw
		}
	}
	for _, g := range rp.RevealedAttrGroups {
		for name, v := range g.Values {
			subjects[g.SubProofIndex][name] = v.Raw
		}
	}
	for i, id := range p.Identifiers {
		out.VerifiableCredential = append(out.VerifiableCredential, w3cPresentedCredential{
			Context:           ctx,
			Type:              []string{"VerifiableCredential"},
			Issuer:            id.CredDefID,
			CredentialSubject: subjects[i],
			Proof: w3cProof{
				Type:               "DataIntegrityProof",
				Cryptosuite:        w3cCryptosuite,
				ProofPurpose:       "assertionMethod",
				VerificationMethod: id.CredDefID,
				ProofValue:         opaque(),
			},
		})
	}
	return out, nil
}

func (l *Library) CreateW3cPresentation(presReq native.ObjectHandle, credentials native.FfiCredentialEntryList, credentialsProve native.FfiCredentialProveList, linkSecret *byte, schemas native.FfiObjectHandleList, schemaIDs native.FfiStrList, credDefs native.FfiObjectHandleList, credDefIDs native.FfiStrList, w3cVersion *byte, result *native.ObjectHandle) native.ErrorCode {
	return l.run(native.FnCreateW3cPresentation, func() error {
		p, err := l.present(presReq, credentials, credentialsProve, nil, linkSecret, schemas, schemaIDs, credDefs, credDefIDs, true)
		if err != nil {
			return err
		}
		req, err := load[presentationRequest](l, presReq, typePresentationRequest)
		if err != nil {
			return err
		}
		w, err := toW3cPresentation(p, req, w3cVersion)
		if err != nil {
			return err
		}
		*result = l.put(typeW3cPresentation, w)
		return nil
	})
}

func (l *Library) VerifyW3cPresentation(presentationHandle, presReq native.ObjectHandle, schemas native.FfiObjectHandleList, schemaIDs native.FfiStrList, credDefs native.FfiObjectHandleList, credDefIDs native.FfiStrList, revRegDefs native.FfiObjectHandleList, revRegDefIDs native.FfiStrList, revStatusLists native.FfiObjectHandleList, overrides native.FfiNonrevokedIntervalOverrideList, valid *int8) native.ErrorCode {
	return l.run(native.FnVerifyW3cPresentation, func() error {
		w, err := load[w3cPresentation](l, presentationHandle, typeW3cPresentation)
		if err != nil {
			return err
		}
		pres, err := w.inner()
		if err != nil {
			return err
		}
		in, err := l.verifyInput(pres, presReq, schemas, schemaIDs, credDefs, credDefIDs, revRegDefs, revRegDefIDs, revStatusLists, overrides)
		if err != nil {
			return err
		}
		ok, err := verifyPresentation(in)
		if err != nil {
			return err
		}
		*valid = boolInt8(ok)
		return nil
	})
}
