package mocklib

import (
	"slices"
	"strconv"

	"github.com/anoncreds/anoncreds-go/internal/native"
)

var predicateOps = map[string]func(v, bound int64) bool{
	">=": func(v, b int64) bool { return v >= b },
	">":  func(v, b int64) bool { return v > b },
	"<=": func(v, b int64) bool { return v <= b },
	"<":  func(v, b int64) bool { return v < b },
}

type geProof struct {
	Attr   string `json:"attr"`
	PType  string `json:"p_type"`
	PValue int64  `json:"p_value"`
}

type primaryProof struct {
	RevealedAttrs map[string]string `json:"revealed_attrs"`
	GeProofs      []geProof         `json:"ge_proofs"`
	M2            string            `json:"m2"`
}

type nonRevocProof struct {
	Accum     string `json:"accum"`
	RevRegIdx int64  `json:"rev_reg_idx"`
}

type subProof struct {
	PrimaryProof  primaryProof   `json:"primary_proof"`
	NonRevocProof *nonRevocProof `json:"non_revoc_proof"`
}

type subProofRef struct {
	SubProofIndex int `json:"sub_proof_index"`
}

type revealedAttr struct {
	SubProofIndex int    `json:"sub_proof_index"`
	Raw           string `json:"raw"`
	Encoded       string `json:"encoded"`
}

type revealedGroup struct {
	SubProofIndex int                       `json:"sub_proof_index"`
	Values        map[string]attributeValue `json:"values"`
}

type requestedProof struct {
	RevealedAttrs      map[string]revealedAttr  `json:"revealed_attrs"`
	RevealedAttrGroups map[string]revealedGroup `json:"revealed_attr_groups"`
	SelfAttestedAttrs  map[string]string        `json:"self_attested_attrs"`
	UnrevealedAttrs    map[string]subProofRef   `json:"unrevealed_attrs"`
	Predicates         map[string]subProofRef   `json:"predicates"`
}

type identifier struct {
	SchemaID  string  `json:"schema_id"`
	CredDefID string  `json:"cred_def_id"`
	RevRegID  *string `json:"rev_reg_id"`
	Timestamp *int64  `json:"timestamp"`
}

type presentation struct {
	Proof struct {
		Proofs          []subProof `json:"proofs"`
		AggregatedProof struct {
			CHash string   `json:"c_hash"`
			CList []string `json:"c_list"`
		} `json:"aggregated_proof"`
	} `json:"proof"`
	RequestedProof requestedProof `json:"requested_proof"`
	Identifiers    []identifier   `json:"identifiers"`
}

func challenge(nonce string) string {
	return digest("presentation", nonce)
}

// presentedCredential is one resolved FfiCredentialEntry.
type presentedCredential struct {
	cred      *credential
	timestamp *int64
	state     *revocationState
}

func (l *Library) resolveEntries(entries []native.FfiCredentialEntry, w3c bool) ([]presentedCredential, error) {
	out := make([]presentedCredential, len(entries))
	for i, e := range entries {
		var (
			cred *credential
			err  error
		)
		if w3c {
			var w *w3cCredential
			if w, err = load[w3cCredential](l, e.Credential, typeW3cCredential); err == nil {
				cred, err = w.legacy()
			}
		} else {
			cred, err = load[credential](l, e.Credential, typeCredential)
		}
		if err != nil {
			return nil, err
		}
		state, err := loadOptional[revocationState](l, e.RevState, typeRevocationState)
		if err != nil {
			return nil, err
		}
		out[i] = presentedCredential{cred: cred, state: state}
		if e.Timestamp >= 0 {
			ts := int64(e.Timestamp)
			out[i].timestamp = &ts
		}
	}
	return out, nil
}

// loadIDs loads the handle list and checks it pairs up with ids.
func loadIDs[T any](l *Library, handles []native.ObjectHandle, ids []string, typeName, what string) ([]*T, error) {
	if len(handles) != len(ids) {
		return nil, inputErr("Number of %s handles and ids differ", what)
	}
	out := make([]*T, len(handles))
	for i, h := range handles {
		v, err := load[T](l, h, typeName)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func effectiveInterval(own, global *interval) *interval {
	if own != nil {
		return own
	}
	return global
}

type presentationInput struct {
	req          *presentationRequest
	entries      []presentedCredential
	proves       []native.FfiCredentialProve
	selfAttested map[string]string
	linkRef      string
	schemaIDs    []string
	credDefIDs   []string
}

func buildPresentation(in presentationInput) (*presentation, error) {
	p := &presentation{}
	rp := &p.RequestedProof
	rp.RevealedAttrs = map[string]revealedAttr{}
	rp.RevealedAttrGroups = map[string]revealedGroup{}
	rp.SelfAttestedAttrs = map[string]string{}
	rp.UnrevealedAttrs = map[string]subProofRef{}
	rp.Predicates = map[string]subProofRef{}

	subIndex := map[int64]int{}
	wantsNonRevoc := map[int]bool{}
	sub := func(entryIdx int64) (int, *presentedCredential, error) {
		if entryIdx < 0 || entryIdx >= int64(len(in.entries)) {
			return 0, nil, inputErr("Invalid credential entry index %d", entryIdx)
		}
		e := &in.entries[entryIdx]
		if i, ok := subIndex[entryIdx]; ok {
			return i, e, nil
		}
		if e.cred.Signature.PCredential.M2 != in.linkRef {
			return 0, nil, inputErr("Credential was not issued for this link secret")
		}
		if !slices.Contains(in.schemaIDs, e.cred.SchemaID) {
			return 0, nil, inputErr("Schema not provided for ID: %s", e.cred.SchemaID)
		}
		if !slices.Contains(in.credDefIDs, e.cred.CredDefID) {
			return 0, nil, inputErr("Credential definition not provided for ID: %s", e.cred.CredDefID)
		}
		i := len(p.Proof.Proofs)
		subIndex[entryIdx] = i
		p.Proof.Proofs = append(p.Proof.Proofs, subProof{PrimaryProof: primaryProof{
			RevealedAttrs: map[string]string{},
			M2:            digest("m2", e.cred.Signature.PCredential.M2, in.req.Nonce),
		}})
		p.Identifiers = append(p.Identifiers, identifier{
			SchemaID:  e.cred.SchemaID,
			CredDefID: e.cred.CredDefID,
			RevRegID:  e.cred.RevRegID,
		})
		return i, e, nil
	}

	for _, pr := range in.proves {
		ref := native.GoString(pr.Referent)
		i, e, err := sub(pr.EntryIdx)
		if err != nil {
			return nil, err
		}
		primary := &p.Proof.Proofs[i].PrimaryProof

		if pr.IsPredicate != 0 {
			info, ok := in.req.RequestedPredicates[ref]
			if !ok {
				return nil, inputErr("Predicate referent not found in request: %s", ref)
			}
			v, ok := e.cred.Values[info.Name]
			if !ok {
				return nil, inputErr("Attribute %s not found in credential", info.Name)
			}
			op, ok := predicateOps[info.PType]
			if !ok {
				return nil, inputErr("Unsupported predicate type %q", info.PType)
			}
			n, err := strconv.ParseInt(v.Encoded, 10, 64)
			if err != nil || !op(n, info.PValue) {
				return nil, inputErr("Predicate is not satisfied: %s", ref)
			}
			primary.GeProofs = append(primary.GeProofs, geProof{Attr: info.Name, PType: info.PType, PValue: info.PValue})
			rp.Predicates[ref] = subProofRef{SubProofIndex: i}
			if effectiveInterval(info.NonRevoked, in.req.NonRevoked) != nil {
				wantsNonRevoc[i] = true
			}
			continue
		}

		info, ok := in.req.RequestedAttributes[ref]
		if !ok {
			return nil, inputErr("Attribute referent not found in request: %s", ref)
		}
		values := map[string]attributeValue{}
		for _, name := range info.names() {
			v, ok := e.cred.Values[name]
			if !ok {
				return nil, inputErr("Attribute %s not found in credential", name)
			}
			values[name] = v
		}
		switch {
		case pr.Reveal == 0:
			rp.UnrevealedAttrs[ref] = subProofRef{SubProofIndex: i}
		case info.Name != nil:
			v := values[*info.Name]
			rp.RevealedAttrs[ref] = revealedAttr{SubProofIndex: i, Raw: v.Raw, Encoded: v.Encoded}
			primary.RevealedAttrs[*info.Name] = v.Encoded
		default:
			rp.RevealedAttrGroups[ref] = revealedGroup{SubProofIndex: i, Values: values}
			for name, v := range values {
				primary.RevealedAttrs[name] = v.Encoded
			}
		}
		if effectiveInterval(info.NonRevoked, in.req.NonRevoked) != nil {
			wantsNonRevoc[i] = true
		}
	}

	for ref, v := range in.selfAttested {
		if _, ok := in.req.RequestedAttributes[ref]; !ok {
			return nil, inputErr("Self attested attribute not requested: %s", ref)
		}
		rp.SelfAttestedAttrs[ref] = v
	}

	for ref := range in.req.RequestedAttributes {
		if !rp.answers(ref) {
			return nil, inputErr("Requested attribute not provided: %s", ref)
		}
	}
	for ref := range in.req.RequestedPredicates {
		if _, ok := rp.Predicates[ref]; !ok {
			return nil, inputErr("Requested predicate not provided: %s", ref)
		}
	}

	for entryIdx, i := range subIndex {
		e := in.entries[entryIdx]
		if e.cred.RevRegID == nil || e.cred.Signature.RCredential == nil {
			continue
		}
		if e.state == nil || e.timestamp == nil {
			if wantsNonRevoc[i] {
				return nil, inputErr("Revocation state and timestamp required for credential entry %d", entryIdx)
			}
			continue
		}
		p.Proof.Proofs[i].NonRevocProof = &nonRevocProof{
			Accum:     e.state.RevReg.Accum,
			RevRegIdx: e.cred.Signature.RCredential.I,
		}
		p.Identifiers[i].Timestamp = e.timestamp
	}

	p.Proof.AggregatedProof.CHash = challenge(in.req.Nonce)
	p.Proof.AggregatedProof.CList = []string{opaque()}
	return p, nil
}

func (rp *requestedProof) answers(ref string) bool {
	if _, ok := rp.RevealedAttrs[ref]; ok {
		return true
	}
	if _, ok := rp.RevealedAttrGroups[ref]; ok {
		return true
	}
	if _, ok := rp.UnrevealedAttrs[ref]; ok {
		return true
	}
	_, ok := rp.SelfAttestedAttrs[ref]
	return ok
}

type verifyInput struct {
	pres         *presentation
	req          *presentationRequest
	schemaIDs    []string
	credDefIDs   []string
	revRegDefIDs []string
	lists        []*revocationStatusList
	overrides    []native.FfiNonrevokedIntervalOverride
}

// verifyPresentation returns false for proofs that do not hold and an
// error for inputs the verifier cannot evaluate.
func verifyPresentation(in verifyInput) (bool, error) {
	p, req := in.pres, in.req
	rp := &p.RequestedProof
	if p.Proof.AggregatedProof.CHash != challenge(req.Nonce) {
		return false, nil
	}
	subProofs := p.Proof.Proofs
	if len(subProofs) != len(p.Identifiers) {
		return false, inputErr("Presentation identifiers do not match its proofs")
	}
	validIdx := func(i int) error {
		if i < 0 || i >= len(subProofs) {
			return inputErr("Invalid sub proof index %d", i)
		}
		return nil
	}

	intervals := make([]*interval, len(subProofs))
	for ref, info := range req.RequestedAttributes {
		if !rp.answers(ref) {
			return false, inputErr("Requested attribute not found in presentation: %s", ref)
		}
		idx := -1
		if v, ok := rp.RevealedAttrs[ref]; ok {
			if err := validIdx(v.SubProofIndex); err != nil {
				return false, err
			}
			if info.Name == nil || v.Encoded != encodeAttribute(v.Raw) || subProofs[v.SubProofIndex].PrimaryProof.RevealedAttrs[*info.Name] != v.Encoded {
				return false, nil
			}
			idx = v.SubProofIndex
		} else if g, ok := rp.RevealedAttrGroups[ref]; ok {
			if err := validIdx(g.SubProofIndex); err != nil {
				return false, err
			}
			for _, name := range info.names() {
				v, ok := g.Values[name]
				if !ok || v.Encoded != encodeAttribute(v.Raw) || subProofs[g.SubProofIndex].PrimaryProof.RevealedAttrs[name] != v.Encoded {
					return false, nil
				}
			}
			idx = g.SubProofIndex
		} else if u, ok := rp.UnrevealedAttrs[ref]; ok {
			if err := validIdx(u.SubProofIndex); err != nil {
				return false, err
			}
			idx = u.SubProofIndex
		}
		if idx >= 0 && intervals[idx] == nil {
			intervals[idx] = effectiveInterval(info.NonRevoked, req.NonRevoked)
		}
	}
	for ref, info := range req.RequestedPredicates {
		s, ok := rp.Predicates[ref]
		if !ok {
			return false, inputErr("Requested predicate not found in presentation: %s", ref)
		}
		if err := validIdx(s.SubProofIndex); err != nil {
			return false, err
		}
		want := geProof{Attr: info.Name, PType: info.PType, PValue: info.PValue}
		if !slices.Contains(subProofs[s.SubProofIndex].PrimaryProof.GeProofs, want) {
			return false, nil
		}
		if intervals[s.SubProofIndex] == nil {
			intervals[s.SubProofIndex] = effectiveInterval(info.NonRevoked, req.NonRevoked)
		}
	}

	for i, id := range p.Identifiers {
		if !slices.Contains(in.schemaIDs, id.SchemaID) {
			return false, inputErr("Schema not provided for ID: %s", id.SchemaID)
		}
		if !slices.Contains(in.credDefIDs, id.CredDefID) {
			return false, inputErr("Credential definition not provided for ID: %s", id.CredDefID)
		}
		if intervals[i] == nil || id.RevRegID == nil {
			continue
		}
		ok, err := in.checkRevocation(id, intervals[i], subProofs[i].NonRevocProof)
		if err != nil || !ok {
			return false, err
		}
	}
	return true, nil
}

func (in verifyInput) checkRevocation(id identifier, iv *interval, proof *nonRevocProof) (bool, error) {
	revRegID := *id.RevRegID
	if id.Timestamp == nil {
		return false, inputErr("Missing timestamp for revocable credential %s", revRegID)
	}
	if !slices.Contains(in.revRegDefIDs, revRegID) {
		return false, inputErr("Revocation registry definition not provided for ID: %s", revRegID)
	}

	ts := *id.Timestamp
	if iv.To != nil && ts > *iv.To {
		return false, inputErr("Invalid timestamp: %d is after the requested interval", ts)
	}
	if iv.From != nil && ts < *iv.From {
		overridden := false
		for _, ov := range in.overrides {
			if native.GoString(ov.RevRegDefID) == revRegID && int64(ov.RequestedFromTs) == *iv.From {
				overridden = int64(ov.OverrideRevStatusListTs) == ts
				break
			}
		}
		if !overridden {
			return false, inputErr("Invalid timestamp: %d is before the requested interval", ts)
		}
	}

	var list *revocationStatusList
	for _, s := range in.lists {
		if s.RevRegDefID == revRegID && s.Timestamp != nil && *s.Timestamp == ts {
			list = s
			break
		}
	}
	if list == nil {
		return false, inputErr("Revocation status list not provided for %s at %d", revRegID, ts)
	}
	if proof == nil || proof.Accum != list.CurrentAccumulator || list.revoked(proof.RevRegIdx) {
		return false, nil
	}
	return true, nil
}

func (l *Library) CreatePresentation(presReq native.ObjectHandle, credentials native.FfiCredentialEntryList, credentialsProve native.FfiCredentialProveList, selfAttestNames, selfAttestValues native.FfiStrList, linkSecret *byte, schemas native.FfiObjectHandleList, schemaIDs native.FfiStrList, credDefs native.FfiObjectHandleList, credDefIDs native.FfiStrList, result *native.ObjectHandle) native.ErrorCode {
	return l.run(native.FnCreatePresentation, func() error {
		names, values := selfAttestNames.Strings(), selfAttestValues.Strings()
		if len(names) != len(values) {
			return inputErr("Self attested names and values differ in length")
		}
		self := make(map[string]string, len(names))
		for i, n := range names {
			self[n] = values[i]
		}
		p, err := l.present(presReq, credentials, credentialsProve, self, linkSecret, schemas, schemaIDs, credDefs, credDefIDs, false)
		if err != nil {
			return err
		}
		*result = l.put(typePresentation, p)
		return nil
	})
}

func (l *Library) present(presReq native.ObjectHandle, credentials native.FfiCredentialEntryList, credentialsProve native.FfiCredentialProveList, self map[string]string, linkSecret *byte, schemas native.FfiObjectHandleList, schemaIDs native.FfiStrList, credDefs native.FfiObjectHandleList, credDefIDs native.FfiStrList, w3c bool) (*presentation, error) {
	req, err := load[presentationRequest](l, presReq, typePresentationRequest)
	if err != nil {
		return nil, err
	}
	entries, err := l.resolveEntries(credentials.Entries(), w3c)
	if err != nil {
		return nil, err
	}
	ref, err := linkSecretRef(linkSecret)
	if err != nil {
		return nil, err
	}
	sids, cdids := schemaIDs.Strings(), credDefIDs.Strings()
	if _, err := loadIDs[schema](l, schemas.Handles(), sids, typeSchema, "schema"); err != nil {
		return nil, err
	}
	if _, err := loadIDs[credentialDefinition](l, credDefs.Handles(), cdids, typeCredentialDefinition, "credential definition"); err != nil {
		return nil, err
	}
	return buildPresentation(presentationInput{
		req:          req,
		entries:      entries,
		proves:       credentialsProve.Proves(),
		selfAttested: self,
		linkRef:      ref,
		schemaIDs:    sids,
		credDefIDs:   cdids,
	})
}

func (l *Library) verifyInput(pres *presentation, presReq native.ObjectHandle, schemas native.FfiObjectHandleList, schemaIDs native.FfiStrList, credDefs native.FfiObjectHandleList, credDefIDs native.FfiStrList, revRegDefs native.FfiObjectHandleList, revRegDefIDs native.FfiStrList, revStatusLists native.FfiObjectHandleList, overrides native.FfiNonrevokedIntervalOverrideList) (verifyInput, error) {
	req, err := load[presentationRequest](l, presReq, typePresentationRequest)
	if err != nil {
		return verifyInput{}, err
	}
	sids, cdids, rids := schemaIDs.Strings(), credDefIDs.Strings(), revRegDefIDs.Strings()
	if _, err := loadIDs[schema](l, schemas.Handles(), sids, typeSchema, "schema"); err != nil {
		return verifyInput{}, err
	}
	if _, err := loadIDs[credentialDefinition](l, credDefs.Handles(), cdids, typeCredentialDefinition, "credential definition"); err != nil {
		return verifyInput{}, err
	}
	if _, err := loadIDs[revocationRegistryDefinition](l, revRegDefs.Handles(), rids, typeRevRegDef, "revocation registry definition"); err != nil {
		return verifyInput{}, err
	}
	var lists []*revocationStatusList
	for _, h := range revStatusLists.Handles() {
		s, err := load[revocationStatusList](l, h, typeRevocationStatusList)
		if err != nil {
			return verifyInput{}, err
		}
		lists = append(lists, s)
	}
	return verifyInput{
		pres:         pres,
		req:          req,
		schemaIDs:    sids,
		credDefIDs:   cdids,
		revRegDefIDs: rids,
		lists:        lists,
		overrides:    overrides.Overrides(),
	}, nil
}

func (l *Library) VerifyPresentation(presentationHandle, presReq native.ObjectHandle, schemas native.FfiObjectHandleList, schemaIDs native.FfiStrList, credDefs native.FfiObjectHandleList, credDefIDs native.FfiStrList, revRegDefs native.FfiObjectHandleList, revRegDefIDs native.FfiStrList, revStatusLists native.FfiObjectHandleList, overrides native.FfiNonrevokedIntervalOverrideList, valid *int8) native.ErrorCode {
	return l.run(native.FnVerifyPresentation, func() error {
		pres, err := load[presentation](l, presentationHandle, typePresentation)
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

func boolInt8(b bool) int8 {
	if b {
		return 1
	}
	return 0
}
