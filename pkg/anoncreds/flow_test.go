package anoncreds_test

import (
	"path/filepath"

	"github.com/anoncreds/anoncreds-go/internal/native"
	"github.com/anoncreds/anoncreds-go/pkg/anoncreds"
)

const ledgerID = "mock:uri"

// issued holds the issuer and holder objects of one credential flow. Every
// handle is tracked by scope.
type issued struct {
	scope          *anoncreds.Scope
	schema         *anoncreds.ObjectHandle
	credDef        *anoncreds.CreateCredentialDefinitionResult
	revReg         *anoncreds.CreateRevocationRegistryDefinitionResult
	statusList     *anoncreds.ObjectHandle
	offer          *anoncreds.ObjectHandle
	request        *anoncreds.CreateCredentialRequestResult
	credential     *anoncreds.ObjectHandle
	linkSecret     string
	tailsDirectory string
}

func int64p(v int64) *int64 { return &v }

func (s *FacadeSuite) issue(revocable bool) *issued {
	r := s.Require()
	is := &issued{scope: s.a.NewScope(), tailsDirectory: s.T().TempDir()}
	s.T().Cleanup(func() { is.scope.Close() })

	var err error
	is.schema, err = s.a.CreateSchema(s.ctx, &anoncreds.CreateSchemaParams{
		Name: "schema-1", Version: "1", IssuerID: ledgerID,
		AttributeNames: []string{"name", "age", "sex", "height"},
	})
	r.NoError(err)
	is.scope.Track(is.schema)

	is.credDef, err = s.a.CreateCredentialDefinition(s.ctx, &anoncreds.CreateCredentialDefinitionParams{
		SchemaID: ledgerID, Schema: is.schema, IssuerID: ledgerID, Tag: "TAG", SupportRevocation: revocable,
	})
	r.NoError(err)
	is.scope.Track(is.credDef.CredentialDefinition)
	is.scope.Track(is.credDef.CredentialDefinitionPrivate)
	is.scope.Track(is.credDef.KeyCorrectnessProof)

	if revocable {
		is.revReg, err = s.a.CreateRevocationRegistryDefinition(s.ctx, &anoncreds.CreateRevocationRegistryDefinitionParams{
			CredentialDefinition:   is.credDef.CredentialDefinition,
			CredentialDefinitionID: ledgerID,
			IssuerID:               ledgerID,
			Tag:                    "some_tag",
			MaximumCredentialCount: 10,
			TailsDirectoryPath:     is.tailsDirectory,
		})
		r.NoError(err)
		is.scope.Track(is.revReg.RevocationRegistryDefinition)
		is.scope.Track(is.revReg.RevocationRegistryDefinitionPrivate)

		is.statusList, err = s.a.CreateRevocationStatusList(s.ctx, &anoncreds.CreateRevocationStatusListParams{
			CredentialDefinition:                is.credDef.CredentialDefinition,
			RevocationRegistryDefinitionID:      ledgerID,
			RevocationRegistryDefinition:        is.revReg.RevocationRegistryDefinition,
			RevocationRegistryDefinitionPrivate: is.revReg.RevocationRegistryDefinitionPrivate,
			IssuerID:                            ledgerID,
			IssuanceByDefault:                   true,
			Timestamp:                           int64p(12),
		})
		r.NoError(err)
		is.scope.Track(is.statusList)
	}

	is.offer, err = s.a.CreateCredentialOffer(s.ctx, &anoncreds.CreateCredentialOfferParams{
		SchemaID: ledgerID, CredentialDefinitionID: ledgerID, KeyCorrectnessProof: is.credDef.KeyCorrectnessProof,
	})
	r.NoError(err)
	is.scope.Track(is.offer)

	is.linkSecret, err = s.a.CreateLinkSecret(s.ctx)
	r.NoError(err)

	is.request, err = s.a.CreateCredentialRequest(s.ctx, &anoncreds.CreateCredentialRequestParams{
		Entropy:              "entropy",
		CredentialDefinition: is.credDef.CredentialDefinition,
		LinkSecret:           is.linkSecret,
		LinkSecretID:         anoncreds.NewLinkSecretID(),
		CredentialOffer:      is.offer,
	})
	r.NoError(err)
	is.scope.Track(is.request.CredentialRequest)
	is.scope.Track(is.request.CredentialRequestMetadata)

	params := &anoncreds.CreateCredentialParams{
		CredentialDefinition:        is.credDef.CredentialDefinition,
		CredentialDefinitionPrivate: is.credDef.CredentialDefinitionPrivate,
		CredentialOffer:             is.offer,
		CredentialRequest:           is.request.CredentialRequest,
		AttributeRawValues:          credentialValues(),
	}
	if revocable {
		params.Revocation = is.revocationConfig(9)
	}
	cred, err := s.a.CreateCredential(s.ctx, params)
	r.NoError(err)
	is.scope.Track(cred)

	is.credential, err = s.a.ProcessCredential(s.ctx, is.processParams(cred))
	r.NoError(err)
	is.scope.Track(is.credential)
	return is
}

func credentialValues() map[string]string {
	return map[string]string{"name": "Alex", "height": "175", "age": "28", "sex": "male"}
}

func (is *issued) revocationConfig(index int64) *anoncreds.CredentialRevocationConfig {
	return &anoncreds.CredentialRevocationConfig{
		RegistryDefinition:        is.revReg.RevocationRegistryDefinition,
		RegistryDefinitionPrivate: is.revReg.RevocationRegistryDefinitionPrivate,
		StatusList:                is.statusList,
		RegistryIndex:             index,
	}
}

func (is *issued) processParams(cred *anoncreds.ObjectHandle) *anoncreds.ProcessCredentialParams {
	p := &anoncreds.ProcessCredentialParams{
		Credential:                cred,
		CredentialRequestMetadata: is.request.CredentialRequestMetadata,
		LinkSecret:                is.linkSecret,
		CredentialDefinition:      is.credDef.CredentialDefinition,
	}
	if is.revReg != nil {
		p.RevocationRegistryDefinition = is.revReg.RevocationRegistryDefinition
	}
	return p
}

func (s *FacadeSuite) revocationState(is *issued, list *anoncreds.ObjectHandle) *anoncreds.ObjectHandle {
	tails, err := s.a.RevocationRegistryDefinitionTailsLocation(s.ctx, is.revReg.RevocationRegistryDefinition)
	s.Require().NoError(err)
	state, err := s.a.CreateOrUpdateRevocationState(s.ctx, &anoncreds.CreateOrUpdateRevocationStateParams{
		RevocationRegistryDefinition: is.revReg.RevocationRegistryDefinition,
		RevocationStatusList:         list,
		RevocationRegistryIndex:      9,
		TailsPath:                    tails,
	})
	s.Require().NoError(err)
	return is.scope.Track(state)
}

// presentationRequest builds the request used by the presentation tests.
// A nil from omits the non-revocation interval.
func (s *FacadeSuite) presentationRequest(is *issued, from *int64) *anoncreds.ObjectHandle {
	nonce, err := s.a.GenerateNonce(s.ctx)
	s.Require().NoError(err)
	req := map[string]any{
		"nonce":   nonce,
		"name":    "pres_req_1",
		"version": "0.1",
		"requested_attributes": map[string]any{
			"attr1_referent": map[string]any{"name": "name", "issuer": ledgerID},
			"attr2_referent": map[string]any{"name": "sex"},
			"attr3_referent": map[string]any{"name": "phone"},
			"attr4_referent": map[string]any{"names": []string{"name", "height"}},
		},
		"requested_predicates": map[string]any{
			"predicate1_referent": map[string]any{"name": "age", "p_type": ">=", "p_value": 18},
		},
	}
	if from != nil {
		req["non_revoked"] = map[string]any{"from": *from, "to": 200}
	}
	h, err := is.scope.FromJSON(s.ctx, anoncreds.KindPresentationRequest, req)
	s.Require().NoError(err)
	return h
}

func proves() []anoncreds.CredentialProve {
	return []anoncreds.CredentialProve{
		{EntryIndex: 0, Referent: "attr1_referent", Reveal: true},
		{EntryIndex: 0, Referent: "attr2_referent", Reveal: false},
		{EntryIndex: 0, Referent: "attr4_referent", Reveal: true},
		{EntryIndex: 0, Referent: "predicate1_referent", IsPredicate: true, Reveal: true},
	}
}

func (s *FacadeSuite) present(is *issued, req *anoncreds.ObjectHandle, entry anoncreds.CredentialEntry) *anoncreds.ObjectHandle {
	pres, err := s.a.CreatePresentation(s.ctx, &anoncreds.CreatePresentationParams{
		PresentationRequest:   req,
		Credentials:           []anoncreds.CredentialEntry{entry},
		CredentialsProve:      proves(),
		SelfAttest:            map[string]string{"attr3_referent": "8-800-300"},
		LinkSecret:            is.linkSecret,
		Schemas:               map[string]*anoncreds.ObjectHandle{ledgerID: is.schema},
		CredentialDefinitions: map[string]*anoncreds.ObjectHandle{ledgerID: is.credDef.CredentialDefinition},
	})
	s.Require().NoError(err)
	return is.scope.Track(pres)
}

// w3cPresentationRequest asks only for what a W3C presentation can carry:
// no self-attested attributes.
func (s *FacadeSuite) w3cPresentationRequest(is *issued) *anoncreds.ObjectHandle {
	req, err := is.scope.FromJSON(s.ctx, anoncreds.KindPresentationRequest, `{
		"nonce": "98765",
		"name": "pres_req_1",
		"version": "0.1",
		"requested_attributes": {"attr1_referent": {"name": "name"}, "attr2_referent": {"names": ["name", "height"]}},
		"requested_predicates": {"predicate1_referent": {"name": "age", "p_type": ">=", "p_value": 18}},
		"non_revoked": {"from": 10, "to": 200}
	}`)
	s.Require().NoError(err)
	return req
}

func (s *FacadeSuite) presentW3c(is *issued, req *anoncreds.ObjectHandle, entry anoncreds.CredentialEntry) *anoncreds.ObjectHandle {
	pres, err := s.a.CreateW3cPresentation(s.ctx, &anoncreds.CreateW3cPresentationParams{
		PresentationRequest: req,
		Credentials:         []anoncreds.CredentialEntry{entry},
		CredentialsProve: []anoncreds.CredentialProve{
			{EntryIndex: 0, Referent: "attr1_referent", Reveal: true},
			{EntryIndex: 0, Referent: "attr2_referent", Reveal: true},
			{EntryIndex: 0, Referent: "predicate1_referent", IsPredicate: true, Reveal: true},
		},
		LinkSecret:            is.linkSecret,
		Schemas:               map[string]*anoncreds.ObjectHandle{ledgerID: is.schema},
		CredentialDefinitions: map[string]*anoncreds.ObjectHandle{ledgerID: is.credDef.CredentialDefinition},
	})
	s.Require().NoError(err)
	return is.scope.Track(pres)
}

func (is *issued) verifyParams(pres, req, list *anoncreds.ObjectHandle) *anoncreds.VerifyPresentationParams {
	p := &anoncreds.VerifyPresentationParams{
		Presentation:            pres,
		PresentationRequest:     req,
		SchemaIDs:               []string{ledgerID},
		Schemas:                 []*anoncreds.ObjectHandle{is.schema},
		CredentialDefinitionIDs: []string{ledgerID},
		CredentialDefinitions:   []*anoncreds.ObjectHandle{is.credDef.CredentialDefinition},
	}
	if list != nil {
		p.RevocationRegistryDefinitionIDs = []string{ledgerID}
		p.RevocationRegistryDefinitions = []*anoncreds.ObjectHandle{is.revReg.RevocationRegistryDefinition}
		p.RevocationStatusLists = []*anoncreds.ObjectHandle{list}
	}
	return p
}

func (s *FacadeSuite) TestCredentialAttributes() {
	is := s.issue(true)

	for name, want := range map[string]string{"schema_id": ledgerID, "cred_def_id": ledgerID, "rev_reg_id": ledgerID} {
		got, ok, err := s.a.CredentialGetAttribute(s.ctx, is.credential, name)
		s.Require().NoError(err)
		s.True(ok, name)
		s.Equal(want, got, name)
	}
	idx, ok, err := s.a.CredentialRevocationRegistryIndex(s.ctx, is.credential)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(int64(9), idx)

	_, _, err = s.a.CredentialGetAttribute(s.ctx, is.credential, "nope")
	s.Equal(anoncreds.ErrorCodeInput, anoncreds.CodeOf(err))

	var doc struct {
		Values map[string]struct {
			Raw     string `json:"raw"`
			Encoded string `json:"encoded"`
		} `json:"values"`
	}
	s.Require().NoError(is.credential.Unmarshal(s.ctx, &doc))
	s.Equal("Alex", doc.Values["name"].Raw)
	s.Equal("28", doc.Values["age"].Encoded)
}

func (s *FacadeSuite) TestNonRevocableCredentialHasNoIndex() {
	is := s.issue(false)
	_, ok, err := s.a.CredentialRevocationRegistryIndex(s.ctx, is.credential)
	s.Require().NoError(err)
	s.False(ok)
	_, ok, err = s.a.CredentialGetAttribute(s.ctx, is.credential, "rev_reg_id")
	s.Require().NoError(err)
	s.False(ok)
}

func (s *FacadeSuite) TestEncodedValuesMustMatchRawNames() {
	is := s.issue(false)
	calls := s.lib.Calls(native.FnCreateCredential)

	_, err := s.a.CreateCredential(s.ctx, &anoncreds.CreateCredentialParams{
		CredentialDefinition:        is.credDef.CredentialDefinition,
		CredentialDefinitionPrivate: is.credDef.CredentialDefinitionPrivate,
		CredentialOffer:             is.offer,
		CredentialRequest:           is.request.CredentialRequest,
		AttributeRawValues:          credentialValues(),
		AttributeEncodedValues:      map[string]string{"name": "1", "age": "28"},
	})
	s.ErrorIs(err, anoncreds.ErrSerialization)
	s.Equal(calls, s.lib.Calls(native.FnCreateCredential))
}

func (s *FacadeSuite) TestRevocationRegistryDefinitionGetters() {
	is := s.issue(true)
	def := is.revReg.RevocationRegistryDefinition

	n, err := s.a.RevocationRegistryDefinitionMaxCredNum(s.ctx, def)
	s.Require().NoError(err)
	s.Equal(int64(10), n)

	hash, err := s.a.RevocationRegistryDefinitionTailsHash(s.ctx, def)
	s.Require().NoError(err)
	s.NotEmpty(hash)

	location, err := s.a.RevocationRegistryDefinitionTailsLocation(s.ctx, def)
	s.Require().NoError(err)
	s.Equal(filepath.Join(is.tailsDirectory, hash), location)

	// Definitions built locally carry no ledger id until published.
	_, err = s.a.RevocationRegistryDefinitionID(s.ctx, def)
	s.Equal(anoncreds.ErrorCodeInput, anoncreds.CodeOf(err))

	raw, err := def.ToJSON(s.ctx)
	s.Require().NoError(err)
	var doc map[string]any
	s.Require().NoError(def.Unmarshal(s.ctx, &doc))
	doc["id"] = "mock:uri:published"
	published, err := is.scope.FromJSON(s.ctx, anoncreds.KindRevocationRegistryDefinition, doc)
	s.Require().NoError(err)
	id, err := s.a.RevocationRegistryDefinitionID(s.ctx, published)
	s.Require().NoError(err)
	s.Equal("mock:uri:published", id)
	s.NotEmpty(raw)
}

func (s *FacadeSuite) TestPresentationVerifies() {
	is := s.issue(true)
	state := s.revocationState(is, is.statusList)
	req := s.presentationRequest(is, int64p(10))
	pres := s.present(is, req, anoncreds.CredentialEntry{
		Credential: is.credential, Timestamp: int64p(12), RevocationState: state,
	})

	var doc struct {
		RequestedProof struct {
			RevealedAttrs map[string]struct {
				Raw string `json:"raw"`
			} `json:"revealed_attrs"`
			SelfAttestedAttrs map[string]string `json:"self_attested_attrs"`
		} `json:"requested_proof"`
	}
	s.Require().NoError(pres.Unmarshal(s.ctx, &doc))
	s.Equal("Alex", doc.RequestedProof.RevealedAttrs["attr1_referent"].Raw)
	s.Equal("8-800-300", doc.RequestedProof.SelfAttestedAttrs["attr3_referent"])

	valid, err := s.a.VerifyPresentation(s.ctx, is.verifyParams(pres, req, is.statusList))
	s.Require().NoError(err)
	s.True(valid)
}

func (s *FacadeSuite) TestVerifyNeedsOverrideForLaterInterval() {
	is := s.issue(true)
	state := s.revocationState(is, is.statusList)
	req := s.presentationRequest(is, int64p(13))
	pres := s.present(is, req, anoncreds.CredentialEntry{
		Credential: is.credential, Timestamp: int64p(12), RevocationState: state,
	})

	params := is.verifyParams(pres, req, is.statusList)
	_, err := s.a.VerifyPresentation(s.ctx, params)
	var aerr *anoncreds.Error
	s.Require().ErrorAs(err, &aerr)
	s.Equal(anoncreds.ErrorCodeInput, aerr.Code)
	s.Contains(aerr.Message, "Invalid timestamp")

	params.NonRevokedIntervalOverrides = []anoncreds.NonRevokedIntervalOverride{{
		RevocationRegistryDefinitionID:        ledgerID,
		RequestedFromTimestamp:                13,
		OverrideRevocationStatusListTimestamp: 12,
	}}
	valid, err := s.a.VerifyPresentation(s.ctx, params)
	s.Require().NoError(err)
	s.True(valid)
}

func (s *FacadeSuite) TestPresentationWithoutRevocation() {
	is := s.issue(false)
	req := s.presentationRequest(is, nil)
	pres := s.present(is, req, anoncreds.CredentialEntry{Credential: is.credential})

	valid, err := s.a.VerifyPresentation(s.ctx, is.verifyParams(pres, req, nil))
	s.Require().NoError(err)
	s.True(valid)
}

func (s *FacadeSuite) TestPresentationRejectsBadProveIndex() {
	is := s.issue(false)
	req := s.presentationRequest(is, nil)
	calls := s.lib.Calls(native.FnCreatePresentation)

	_, err := s.a.CreatePresentation(s.ctx, &anoncreds.CreatePresentationParams{
		PresentationRequest: req,
		Credentials:         []anoncreds.CredentialEntry{{Credential: is.credential}},
		CredentialsProve:    []anoncreds.CredentialProve{{EntryIndex: 1, Referent: "attr1_referent", Reveal: true}},
		LinkSecret:          is.linkSecret,
		Schemas:             map[string]*anoncreds.ObjectHandle{ledgerID: is.schema},
		CredentialDefinitions: map[string]*anoncreds.ObjectHandle{
			ledgerID: is.credDef.CredentialDefinition,
		},
	})
	s.ErrorIs(err, anoncreds.ErrSerialization)
	s.Equal(calls, s.lib.Calls(native.FnCreatePresentation))
}

func (s *FacadeSuite) TestRevocationStatusListUpdates() {
	is := s.issue(true)
	state := s.revocationState(is, is.statusList)
	req := s.presentationRequest(is, int64p(10))
	pres := s.present(is, req, anoncreds.CredentialEntry{
		Credential: is.credential, Timestamp: int64p(12), RevocationState: state,
	})

	initial := is.scope.Keep(is.statusList)
	lists := s.a.NewRevocationStatusList(initial)
	defer lists.Close()

	revoked, err := lists.Update(s.ctx, anoncreds.UpdateRevocationStatusListParams{
		CredentialDefinition:                is.credDef.CredentialDefinition,
		RevocationRegistryDefinition:        is.revReg.RevocationRegistryDefinition,
		RevocationRegistryDefinitionPrivate: is.revReg.RevocationRegistryDefinitionPrivate,
		Revoked:                             []int32{9},
	})
	s.Require().NoError(err)
	s.True(initial.Released())
	s.Same(revoked, lists.Current())

	var doc struct {
		RevocationList []int `json:"revocationList"`
		Timestamp      int64 `json:"timestamp"`
	}
	s.Require().NoError(revoked.Unmarshal(s.ctx, &doc))
	s.Equal(1, doc.RevocationList[8])
	s.Equal(int64(12), doc.Timestamp)

	valid, err := s.a.VerifyPresentation(s.ctx, is.verifyParams(pres, req, revoked))
	s.Require().NoError(err)
	s.False(valid)

	tails, err := s.a.RevocationRegistryDefinitionTailsLocation(s.ctx, is.revReg.RevocationRegistryDefinition)
	s.Require().NoError(err)
	_, err = s.a.CreateOrUpdateRevocationState(s.ctx, &anoncreds.CreateOrUpdateRevocationStateParams{
		RevocationRegistryDefinition: is.revReg.RevocationRegistryDefinition,
		RevocationStatusList:         revoked,
		RevocationRegistryIndex:      9,
		TailsPath:                    tails,
	})
	s.Equal(anoncreds.ErrorCodeCredentialRevoked, anoncreds.CodeOf(err))

	moved, err := lists.UpdateTimestamp(s.ctx, 20)
	s.Require().NoError(err)
	s.True(revoked.Released())
	s.Require().NoError(moved.Unmarshal(s.ctx, &doc))
	s.Equal(int64(20), doc.Timestamp)
}

func (s *FacadeSuite) TestW3cFlow() {
	is := s.issue(true)
	w3c, err := s.a.CreateW3cCredential(s.ctx, &anoncreds.CreateW3cCredentialParams{
		CredentialDefinition:        is.credDef.CredentialDefinition,
		CredentialDefinitionPrivate: is.credDef.CredentialDefinitionPrivate,
		CredentialOffer:             is.offer,
		CredentialRequest:           is.request.CredentialRequest,
		AttributeRawValues:          credentialValues(),
		Revocation:                  is.revocationConfig(9),
	})
	s.Require().NoError(err)
	is.scope.Track(w3c)

	received, err := s.a.ProcessW3cCredential(s.ctx, is.processParams(w3c))
	s.Require().NoError(err)
	is.scope.Track(received)

	details, err := s.a.W3cCredentialGetIntegrityProofDetails(s.ctx, received)
	s.Require().NoError(err)
	is.scope.Track(details)
	credDefID, ok, err := s.a.W3cCredentialProofGetAttribute(s.ctx, details, "cred_def_id")
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(ledgerID, credDefID)
	idx, ok, err := s.a.W3cCredentialRevocationRegistryIndex(s.ctx, details)
	s.Require().NoError(err)
	s.True(ok)
	s.Equal(int64(9), idx)

	legacy, err := s.a.CredentialFromW3c(s.ctx, received)
	s.Require().NoError(err)
	is.scope.Track(legacy)
	schemaID, _, err := s.a.CredentialGetAttribute(s.ctx, legacy, "schema_id")
	s.Require().NoError(err)
	s.Equal(ledgerID, schemaID)

	back, err := s.a.CredentialToW3c(s.ctx, legacy, ledgerID, "2.0")
	s.Require().NoError(err)
	is.scope.Track(back)
	var doc map[string]any
	s.Require().NoError(back.Unmarshal(s.ctx, &doc))
	s.Equal([]any{"https://www.w3.org/ns/credentials/v2"}, doc["@context"])

	_, err = s.a.CredentialToW3c(s.ctx, legacy, ledgerID, "3.0")
	s.Equal(anoncreds.ErrorCodeInput, anoncreds.CodeOf(err))

	state := s.revocationState(is, is.statusList)
	req := s.w3cPresentationRequest(is)
	pres := s.presentW3c(is, req, anoncreds.CredentialEntry{
		Credential: received, Timestamp: int64p(12), RevocationState: state,
	})

	valid, err := s.a.VerifyW3cPresentation(s.ctx, is.verifyParams(pres, req, is.statusList))
	s.Require().NoError(err)
	s.True(valid)
}

// TestFromJSONRoundTrip re-parses one object of every kind from its own
// JSON and checks the result is identical.
func (s *FacadeSuite) TestFromJSONRoundTrip() {
	is := s.issue(true)
	state := s.revocationState(is, is.statusList)
	req := s.presentationRequest(is, int64p(10))
	pres := s.present(is, req, anoncreds.CredentialEntry{
		Credential: is.credential, Timestamp: int64p(12), RevocationState: state,
	})
	w3c, err := s.a.CredentialToW3c(s.ctx, is.credential, ledgerID, "")
	s.Require().NoError(err)
	is.scope.Track(w3c)
	w3cPres := s.presentW3c(is, s.w3cPresentationRequest(is), anoncreds.CredentialEntry{
		Credential: w3c, Timestamp: int64p(12), RevocationState: state,
	})
	registry, err := is.scope.FromJSON(s.ctx, anoncreds.KindRevocationRegistry, `{"value":{"accum":"21 1 2"}}`)
	s.Require().NoError(err)

	objects := map[anoncreds.ObjectKind]*anoncreds.ObjectHandle{
		anoncreds.KindSchema:                              is.schema,
		anoncreds.KindCredentialDefinition:                is.credDef.CredentialDefinition,
		anoncreds.KindCredentialDefinitionPrivate:         is.credDef.CredentialDefinitionPrivate,
		anoncreds.KindKeyCorrectnessProof:                 is.credDef.KeyCorrectnessProof,
		anoncreds.KindRevocationRegistryDefinition:        is.revReg.RevocationRegistryDefinition,
		anoncreds.KindRevocationRegistryDefinitionPrivate: is.revReg.RevocationRegistryDefinitionPrivate,
		anoncreds.KindRevocationRegistry:                  registry,
		anoncreds.KindRevocationStatusList:                is.statusList,
		anoncreds.KindRevocationState:                     state,
		anoncreds.KindCredentialOffer:                     is.offer,
		anoncreds.KindCredentialRequest:                   is.request.CredentialRequest,
		anoncreds.KindCredentialRequestMetadata:           is.request.CredentialRequestMetadata,
		anoncreds.KindCredential:                          is.credential,
		anoncreds.KindW3cCredential:                       w3c,
		anoncreds.KindPresentationRequest:                 req,
		anoncreds.KindPresentation:                        pres,
		anoncreds.KindW3cPresentation:                     w3cPres,
	}
	s.Require().Len(objects, len(anoncreds.ObjectKinds()))

	for _, kind := range anoncreds.ObjectKinds() {
		h := objects[kind]
		raw, err := h.ToJSON(s.ctx)
		s.Require().NoError(err, kind.String())
		again, err := is.scope.FromJSON(s.ctx, kind, raw)
		s.Require().NoError(err, kind.String())
		rawAgain, err := again.ToJSON(s.ctx)
		s.Require().NoError(err, kind.String())
		s.JSONEq(string(raw), string(rawAgain), kind.String())

		want, err := h.TypeName(s.ctx)
		s.Require().NoError(err)
		got, err := again.TypeName(s.ctx)
		s.Require().NoError(err)
		s.Equal(want, got, kind.String())
	}
}
