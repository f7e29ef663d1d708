package anoncreds_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/anoncreds/anoncreds-go/internal/native"
	"github.com/anoncreds/anoncreds-go/internal/native/mocklib"
	"github.com/anoncreds/anoncreds-go/pkg/anoncreds"
	"github.com/anoncreds/anoncreds-go/pkg/anoncreds/logging"
	"github.com/anoncreds/anoncreds-go/pkg/anoncreds/metrics"
)

type FacadeSuite struct {
	suite.Suite
	ctx    context.Context
	lib    *mocklib.Library
	reg    *prometheus.Registry
	tracer *recordingProvider
	a      *anoncreds.Anoncreds
}

func (s *FacadeSuite) SetupTest() {
	s.ctx = context.Background()
	s.lib = mocklib.New()
	s.reg = prometheus.NewRegistry()
	s.tracer = &recordingProvider{}
	s.a = anoncreds.New(s.lib,
		anoncreds.WithLogger(logging.Discard()),
		anoncreds.WithMetrics(metrics.New(s.reg)),
		anoncreds.WithTracerProvider(s.tracer),
	)
}

// TearDownTest checks that every string and buffer the library handed out
// was freed exactly once.
func (s *FacadeSuite) TearDownTest() {
	s.Equal(0, s.lib.OutstandingStrings(), "native strings leaked")
	s.Equal(0, s.lib.OutstandingBuffers(), "native buffers leaked")
	s.Equal(0, s.lib.InvalidFrees(), "invalid native frees")
}

func TestFacadeSuite(t *testing.T) {
	suite.Run(t, new(FacadeSuite))
}

func (s *FacadeSuite) counter(name string, labels ...string) float64 {
	families, err := s.reg.Gather()
	s.Require().NoError(err)
	for _, f := range families {
		if f.GetName() != name {
			continue
		}
	metrics:
		for _, m := range f.GetMetric() {
			for i := 0; i+1 < len(labels); i += 2 {
				found := false
				for _, lp := range m.GetLabel() {
					if lp.GetName() == labels[i] && lp.GetValue() == labels[i+1] {
						found = true
					}
				}
				if !found {
					continue metrics
				}
			}
			if m.GetCounter() != nil {
				return m.GetCounter().GetValue()
			}
			return m.GetGauge().GetValue()
		}
	}
	return 0
}

func (s *FacadeSuite) schema(attrs ...string) *anoncreds.ObjectHandle {
	h, err := s.a.CreateSchema(s.ctx, &anoncreds.CreateSchemaParams{
		Name:           "schema-1",
		Version:        "1.0",
		IssuerID:       "mock:uri",
		AttributeNames: attrs,
	})
	s.Require().NoError(err)
	return h
}

func (s *FacadeSuite) TestVersion() {
	v, err := s.a.Version(s.ctx)
	s.Require().NoError(err)
	s.Equal(mocklib.DefaultVersion, v)
}

func (s *FacadeSuite) TestCreateSchemaPreservesAttributeOrder() {
	h := s.schema("name", "age", "sex", "height")
	defer h.Release()

	var doc struct {
		Name      string   `json:"name"`
		IssuerID  string   `json:"issuerId"`
		AttrNames []string `json:"attrNames"`
	}
	s.Require().NoError(h.Unmarshal(s.ctx, &doc))
	s.Equal("schema-1", doc.Name)
	s.Equal("mock:uri", doc.IssuerID)
	s.Equal([]string{"name", "age", "sex", "height"}, doc.AttrNames)

	name, err := h.TypeName(s.ctx)
	s.Require().NoError(err)
	s.Equal("Schema", name)
	s.Equal(1.0, s.counter("anoncreds_live_handles"))
}

func (s *FacadeSuite) TestNativeErrorCarriesMessage() {
	_, err := s.a.CreateSchema(s.ctx, &anoncreds.CreateSchemaParams{
		Name:     "schema-1",
		Version:  "1.0",
		IssuerID: "mock:uri",
	})
	s.Require().Error(err)

	var aerr *anoncreds.Error
	s.Require().ErrorAs(err, &aerr)
	s.Equal(anoncreds.ErrorCodeInput, aerr.Code)
	s.Contains(aerr.Message, "attrNames")
	s.Equal(native.FnCreateSchema, aerr.Function)
	s.False(aerr.Mismatch)
	s.ErrorIs(err, &anoncreds.Error{Code: anoncreds.ErrorCodeInput})
	s.Equal(anoncreds.ErrorCodeInput, anoncreds.CodeOf(err))

	// The failing call consumed the slot.
	rec, err := s.a.CurrentError(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(0), rec.Code)
	s.Nil(rec.Message)

	s.Equal(1.0, s.counter("anoncreds_native_calls_total", "function", native.FnCreateSchema, "result", "error"))
}

func (s *FacadeSuite) TestErrorChannelMismatch() {
	s.lib.FailNext(native.FnCreateSchema, 17, "boom")
	s.lib.InterleaveError(42, "overwritten")

	h, err := s.a.CreateSchema(s.ctx, &anoncreds.CreateSchemaParams{
		Name: "schema-1", Version: "1.0", IssuerID: "mock:uri", AttributeNames: []string{"name"},
	})
	s.Nil(h)
	s.Require().Error(err)

	var aerr *anoncreds.Error
	s.Require().ErrorAs(err, &aerr)
	s.Equal(anoncreds.ErrorCode(17), aerr.Code)
	s.Equal(anoncreds.ErrorDetailsUnavailable, aerr.Message)
	s.True(aerr.Mismatch)
	s.ErrorIs(err, anoncreds.ErrErrorChannelMismatch)
	s.Equal(1.0, s.counter("anoncreds_error_channel_mismatches_total"))
}

func (s *FacadeSuite) TestErrorFetchFailureIsMismatch() {
	s.lib.FailNext(native.FnGenerateNonce, 4, "rng")
	s.lib.FailErrorFetch(true)

	_, err := s.a.GenerateNonce(s.ctx)
	var aerr *anoncreds.Error
	s.Require().ErrorAs(err, &aerr)
	s.Equal(anoncreds.ErrorCodeUnexpected, aerr.Code)
	s.True(aerr.Mismatch)
	s.Equal(anoncreds.ErrorDetailsUnavailable, aerr.Message)
}

func (s *FacadeSuite) TestSerializationFailureMakesNoNativeCall() {
	_, err := s.a.FromJSON(s.ctx, anoncreds.KindSchema, []any{"name", 1})
	s.Require().Error(err)
	s.ErrorIs(err, anoncreds.ErrSerialization)

	var serr *anoncreds.SerializationError
	s.Require().ErrorAs(err, &serr)
	s.Equal("json", serr.Field)

	_, err = s.a.VerifyPresentation(s.ctx, &anoncreds.VerifyPresentationParams{
		SchemaIDs: []string{"a", "b"},
		Schemas:   []*anoncreds.ObjectHandle{},
	})
	s.ErrorIs(err, anoncreds.ErrSerialization)

	_, err = s.a.FromJSON(s.ctx, anoncreds.ObjectKind(99), `{}`)
	s.ErrorIs(err, anoncreds.ErrSerialization)

	s.Equal(0, s.lib.TotalCalls())
}

func (s *FacadeSuite) TestReleasedHandleNeverReachesNative() {
	h := s.schema("name")
	h.Release()
	s.True(h.Released())
	s.Contains(h.String(), "released")

	_, err := h.ToJSON(s.ctx)
	s.ErrorIs(err, anoncreds.ErrHandleReleased)
	_, err = s.a.CreateCredentialDefinition(s.ctx, &anoncreds.CreateCredentialDefinitionParams{
		SchemaID: "mock:uri", Schema: h, IssuerID: "mock:uri", Tag: "TAG",
	})
	s.ErrorIs(err, anoncreds.ErrHandleReleased)
	s.Equal(0, s.lib.Calls(native.FnObjectGetJSON))
	s.Equal(0, s.lib.Calls(native.FnCreateCredentialDefinition))

	h.Release()
	s.Require().NoError(h.Close())
	s.Equal(1, s.lib.Calls(native.FnObjectFree))
	s.Equal(0, s.lib.LiveObjects())
	s.Equal(0.0, s.counter("anoncreds_live_handles"))
}

func (s *FacadeSuite) TestNilHandleIsSerializationError() {
	_, err := s.a.GetJSON(s.ctx, nil)
	s.ErrorIs(err, anoncreds.ErrSerialization)
	s.Equal(0, s.lib.TotalCalls())
}

func (s *FacadeSuite) TestFromJSONAcceptsEveryInputForm() {
	doc := map[string]any{
		"name":      "schema-1",
		"version":   "1.0",
		"issuerId":  "mock:uri",
		"attrNames": []string{"name"},
	}
	raw := `{"name":"schema-1","version":"1.0","issuerId":"mock:uri","attrNames":["name"]}`

	scope := s.a.NewScope()
	defer scope.Close()
	for _, v := range []any{doc, raw, []byte(raw)} {
		h, err := scope.FromJSON(s.ctx, anoncreds.KindSchema, v)
		s.Require().NoError(err)
		got, err := h.ToJSON(s.ctx)
		s.Require().NoError(err)
		s.JSONEq(raw, string(got))
	}
	s.Equal(3, scope.Len())

	_, err := s.a.SchemaFromJSON(s.ctx, `{"name":`)
	s.Equal(anoncreds.ErrorCodeInput, anoncreds.CodeOf(err))
}

func (s *FacadeSuite) TestScopeReleasesTemporaries() {
	kept := s.schema("name")
	defer kept.Release()

	scope := s.a.NewScope()
	same, err := scope.Resolve(s.ctx, anoncreds.KindSchema, kept)
	s.Require().NoError(err)
	s.Same(kept, same)

	tmp, err := scope.Resolve(s.ctx, anoncreds.KindSchema,
		`{"name":"s","version":"1","issuerId":"mock:uri","attrNames":["a"]}`)
	s.Require().NoError(err)
	survivor := scope.Keep(scope.Track(s.schema("age")))
	defer survivor.Release()

	none, err := scope.Resolve(s.ctx, anoncreds.KindSchema, nil)
	s.Require().NoError(err)
	s.Nil(none)
	s.Equal(1, scope.Len())

	s.Require().NoError(scope.Close())
	s.Require().NoError(scope.Close())
	s.True(tmp.Released())
	s.False(kept.Released())
	s.False(survivor.Released())
	s.Equal(2, s.lib.LiveObjects())

	_, err = scope.Resolve(s.ctx, anoncreds.KindSchema, tmp)
	s.ErrorIs(err, anoncreds.ErrHandleReleased)
}

func (s *FacadeSuite) TestNonceAndLinkSecret() {
	nonce, err := s.a.GenerateNonce(s.ctx)
	s.Require().NoError(err)
	s.Regexp(`^[0-9]+$`, nonce)

	secret, err := s.a.CreateLinkSecret(s.ctx)
	s.Require().NoError(err)
	s.NotEmpty(secret)

	_, err = uuid.Parse(anoncreds.NewLinkSecretID())
	s.NoError(err)
}

func (s *FacadeSuite) TestEncodeCredentialAttributes() {
	got, err := s.a.EncodeCredentialAttributes(s.ctx, []string{"value2", "value1", "12", "-7"})
	s.Require().NoError(err)
	s.Equal([]string{
		"2360207505573967335061705667247358223962382058438765247085581582985596391831",
		"27404702143883897701950953229849815393032792099783647152371385368148256400014",
		"12",
		"-7",
	}, got)
}

func (s *FacadeSuite) TestSetDefaultLogger() {
	s.Require().NoError(s.a.SetDefaultLogger(s.ctx))
	s.True(s.lib.LoggerInstalled())
}

func (s *FacadeSuite) TestSpans() {
	h := s.schema("name")
	defer h.Release()
	_, err := s.a.CreateSchema(s.ctx, &anoncreds.CreateSchemaParams{Name: "x", Version: "1", IssuerID: "mock:uri"})
	s.Require().Error(err)

	spans := s.tracer.ended()
	s.Require().Len(spans, 2)
	s.Equal("anoncreds.CreateSchema", spans[0].name)
	s.Contains(spans[0].attrs, attribute.String("anoncreds.function", native.FnCreateSchema))
	s.Equal(codes.Unset, spans[0].code)
	s.Equal(codes.Error, spans[1].code)
	s.Contains(spans[1].attrs, attribute.Int64("anoncreds.error_code", int64(anoncreds.ErrorCodeInput)))
}

func (s *FacadeSuite) TestClose() {
	h := s.schema("name")
	s.Require().NoError(s.a.Close())
	s.ErrorIs(s.a.Close(), anoncreds.ErrLibraryClosed)

	_, err := s.a.GenerateNonce(s.ctx)
	s.ErrorIs(err, anoncreds.ErrLibraryClosed)
	_, err = s.a.CurrentError(s.ctx)
	s.ErrorIs(err, anoncreds.ErrLibraryClosed)

	calls := s.lib.TotalCalls()
	h.Release()
	s.True(h.Released())
	s.Equal(calls, s.lib.TotalCalls())
	s.True(s.lib.Closed())
	s.Zero(s.lib.CallsAfterClose())
}

func (s *FacadeSuite) TestRegisterAndDefault() {
	defer anoncreds.Register(nil)

	anoncreds.Register(nil)
	_, err := anoncreds.Default()
	s.ErrorIs(err, anoncreds.ErrNotRegistered)
	s.Equal(anoncreds.NativeFallback, anoncreds.NativeVersion())

	anoncreds.Register(s.a)
	got, err := anoncreds.Default()
	s.Require().NoError(err)
	s.Same(s.a, got)
	s.Equal(mocklib.DefaultVersion, anoncreds.NativeVersion())
	s.Equal(anoncreds.Version, anoncreds.WrapperVersion())
}

type facadeCall struct {
	name string
	call func(ctx context.Context, a *anoncreds.Anoncreds) error
}

// facadeCalls invokes every fallible facade method with placeholder input.
func facadeCalls() []facadeCall {
	return []facadeCall{
		{"Version", func(ctx context.Context, a *anoncreds.Anoncreds) error { _, err := a.Version(ctx); return err }},
		{"SetDefaultLogger", func(ctx context.Context, a *anoncreds.Anoncreds) error { return a.SetDefaultLogger(ctx) }},
		{"GenerateNonce", func(ctx context.Context, a *anoncreds.Anoncreds) error { _, err := a.GenerateNonce(ctx); return err }},
		{"CreateLinkSecret", func(ctx context.Context, a *anoncreds.Anoncreds) error { _, err := a.CreateLinkSecret(ctx); return err }},
		{"CreateSchema", func(ctx context.Context, a *anoncreds.Anoncreds) error {
			_, err := a.CreateSchema(ctx, &anoncreds.CreateSchemaParams{})
			return err
		}},
		{"CreateCredentialDefinition", func(ctx context.Context, a *anoncreds.Anoncreds) error {
			_, err := a.CreateCredentialDefinition(ctx, &anoncreds.CreateCredentialDefinitionParams{})
			return err
		}},
		{"CreateCredentialOffer", func(ctx context.Context, a *anoncreds.Anoncreds) error {
			_, err := a.CreateCredentialOffer(ctx, &anoncreds.CreateCredentialOfferParams{})
			return err
		}},
		{"CreateCredentialRequest", func(ctx context.Context, a *anoncreds.Anoncreds) error {
			_, err := a.CreateCredentialRequest(ctx, &anoncreds.CreateCredentialRequestParams{})
			return err
		}},
		{"CreateCredential", func(ctx context.Context, a *anoncreds.Anoncreds) error {
			_, err := a.CreateCredential(ctx, &anoncreds.CreateCredentialParams{})
			return err
		}},
		{"EncodeCredentialAttributes", func(ctx context.Context, a *anoncreds.Anoncreds) error {
			_, err := a.EncodeCredentialAttributes(ctx, []string{"x"})
			return err
		}},
		{"ProcessCredential", func(ctx context.Context, a *anoncreds.Anoncreds) error {
			_, err := a.ProcessCredential(ctx, &anoncreds.ProcessCredentialParams{})
			return err
		}},
		{"CredentialGetAttribute", func(ctx context.Context, a *anoncreds.Anoncreds) error {
			_, _, err := a.CredentialGetAttribute(ctx, nil, "schema_id")
			return err
		}},
		{"CredentialRevocationRegistryIndex", func(ctx context.Context, a *anoncreds.Anoncreds) error {
			_, _, err := a.CredentialRevocationRegistryIndex(ctx, nil)
			return err
		}},
		{"FromJSON", func(ctx context.Context, a *anoncreds.Anoncreds) error {
			_, err := a.FromJSON(ctx, anoncreds.KindSchema, "{}")
			return err
		}},
		{"SchemaFromJSON", func(ctx context.Context, a *anoncreds.Anoncreds) error {
			_, err := a.SchemaFromJSON(ctx, "{}")
			return err
		}},
		{"GetJSON", func(ctx context.Context, a *anoncreds.Anoncreds) error { _, err := a.GetJSON(ctx, nil); return err }},
		{"GetTypeName", func(ctx context.Context, a *anoncreds.Anoncreds) error { _, err := a.GetTypeName(ctx, nil); return err }},
		{"CurrentError", func(ctx context.Context, a *anoncreds.Anoncreds) error { _, err := a.CurrentError(ctx); return err }},
		{"CreatePresentation", func(ctx context.Context, a *anoncreds.Anoncreds) error {
			_, err := a.CreatePresentation(ctx, &anoncreds.CreatePresentationParams{})
			return err
		}},
		{"CreateW3cPresentation", func(ctx context.Context, a *anoncreds.Anoncreds) error {
			_, err := a.CreateW3cPresentation(ctx, &anoncreds.CreateW3cPresentationParams{})
			return err
		}},
		{"VerifyPresentation", func(ctx context.Context, a *anoncreds.Anoncreds) error {
			_, err := a.VerifyPresentation(ctx, &anoncreds.VerifyPresentationParams{})
			return err
		}},
		{"VerifyW3cPresentation", func(ctx context.Context, a *anoncreds.Anoncreds) error {
			_, err := a.VerifyW3cPresentation(ctx, &anoncreds.VerifyPresentationParams{})
			return err
		}},
		{"CreateRevocationRegistryDefinition", func(ctx context.Context, a *anoncreds.Anoncreds) error {
			_, err := a.CreateRevocationRegistryDefinition(ctx, &anoncreds.CreateRevocationRegistryDefinitionParams{})
			return err
		}},
		{"RevocationRegistryDefinitionGetAttribute", func(ctx context.Context, a *anoncreds.Anoncreds) error {
			_, err := a.RevocationRegistryDefinitionGetAttribute(ctx, nil, "id")
			return err
		}},
		{"RevocationRegistryDefinitionID", func(ctx context.Context, a *anoncreds.Anoncreds) error {
			_, err := a.RevocationRegistryDefinitionID(ctx, nil)
			return err
		}},
		{"RevocationRegistryDefinitionMaxCredNum", func(ctx context.Context, a *anoncreds.Anoncreds) error {
			_, err := a.RevocationRegistryDefinitionMaxCredNum(ctx, nil)
			return err
		}},
		{"RevocationRegistryDefinitionTailsHash", func(ctx context.Context, a *anoncreds.Anoncreds) error {
			_, err := a.RevocationRegistryDefinitionTailsHash(ctx, nil)
			return err
		}},
		{"RevocationRegistryDefinitionTailsLocation", func(ctx context.Context, a *anoncreds.Anoncreds) error {
			_, err := a.RevocationRegistryDefinitionTailsLocation(ctx, nil)
			return err
		}},
		{"CreateRevocationStatusList", func(ctx context.Context, a *anoncreds.Anoncreds) error {
			_, err := a.CreateRevocationStatusList(ctx, &anoncreds.CreateRevocationStatusListParams{})
			return err
		}},
		{"UpdateRevocationStatusList", func(ctx context.Context, a *anoncreds.Anoncreds) error {
			_, err := a.UpdateRevocationStatusList(ctx, &anoncreds.UpdateRevocationStatusListParams{})
			return err
		}},
		{"UpdateRevocationStatusListTimestampOnly", func(ctx context.Context, a *anoncreds.Anoncreds) error {
			_, err := a.UpdateRevocationStatusListTimestampOnly(ctx, nil, 10)
			return err
		}},
		{"CreateOrUpdateRevocationState", func(ctx context.Context, a *anoncreds.Anoncreds) error {
			_, err := a.CreateOrUpdateRevocationState(ctx, &anoncreds.CreateOrUpdateRevocationStateParams{})
			return err
		}},
		{"CreateW3cCredential", func(ctx context.Context, a *anoncreds.Anoncreds) error {
			_, err := a.CreateW3cCredential(ctx, &anoncreds.CreateW3cCredentialParams{})
			return err
		}},
		{"ProcessW3cCredential", func(ctx context.Context, a *anoncreds.Anoncreds) error {
			_, err := a.ProcessW3cCredential(ctx, &anoncreds.ProcessCredentialParams{})
			return err
		}},
		{"CredentialToW3c", func(ctx context.Context, a *anoncreds.Anoncreds) error {
			_, err := a.CredentialToW3c(ctx, nil, "mock:uri", "1.1")
			return err
		}},
		{"CredentialFromW3c", func(ctx context.Context, a *anoncreds.Anoncreds) error {
			_, err := a.CredentialFromW3c(ctx, nil)
			return err
		}},
		{"W3cCredentialGetIntegrityProofDetails", func(ctx context.Context, a *anoncreds.Anoncreds) error {
			_, err := a.W3cCredentialGetIntegrityProofDetails(ctx, nil)
			return err
		}},
		{"W3cCredentialProofGetAttribute", func(ctx context.Context, a *anoncreds.Anoncreds) error {
			_, _, err := a.W3cCredentialProofGetAttribute(ctx, nil, "schema_id")
			return err
		}},
		{"W3cCredentialRevocationRegistryIndex", func(ctx context.Context, a *anoncreds.Anoncreds) error {
			_, _, err := a.W3cCredentialRevocationRegistryIndex(ctx, nil)
			return err
		}},
	}
}

// Instances without a library fail fast on every method instead of
// dereferencing the missing backend.
func (s *FacadeSuite) TestUnregisteredInstance() {
	instances := map[string]*anoncreds.Anoncreds{
		"nil":      nil,
		"New(nil)": anoncreds.New(nil),
	}
	for name, a := range instances {
		s.Run(name, func() {
			for _, c := range facadeCalls() {
				var err error
				s.NotPanics(func() { err = c.call(s.ctx, a) }, c.name)
				s.ErrorIs(err, anoncreds.ErrNotRegistered, c.name)
			}
			s.NotPanics(func() { a.ObjectFree(s.ctx, nil) })
			s.NotNil(a.NewScope())
			s.NoError(a.Close())
		})
	}
}

// After Close the same methods report ErrLibraryClosed without reaching the
// library.
func (s *FacadeSuite) TestClosedInstanceFailsFast() {
	s.Require().NoError(s.a.Close())
	calls := s.lib.TotalCalls()
	for _, c := range facadeCalls() {
		s.ErrorIs(c.call(s.ctx, s.a), anoncreds.ErrLibraryClosed, c.name)
	}
	s.Equal(calls, s.lib.TotalCalls())
}

func TestOpenMissingLibrary(t *testing.T) {
	_, err := anoncreds.Open(anoncreds.Config{LibraryPath: "/nonexistent/libanoncreds.so"})
	if errors.Is(err, anoncreds.ErrNotBuilt) {
		t.Skip("no native loader in this build")
	}
	if !errors.Is(err, anoncreds.ErrLibraryLoad) || !errors.Is(err, anoncreds.ErrLibraryNotFound) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOpenErrorMapping(t *testing.T) {
	rejected := errors.New("dlopen: invalid ELF header")
	tests := []struct {
		name     string
		openErr  error
		want     []error
		notWant  []error
		wantSame bool
	}{
		{
			name:     "not built",
			openErr:  native.ErrNotBuilt,
			want:     []error{anoncreds.ErrNotBuilt},
			notWant:  []error{anoncreds.ErrLibraryLoad},
			wantSame: true,
		},
		{
			name:    "not found",
			openErr: fmt.Errorf("%w: no such file", native.ErrLibraryNotFound),
			want:    []error{anoncreds.ErrLibraryLoad, anoncreds.ErrLibraryNotFound},
			notWant: []error{anoncreds.ErrLibraryBind, anoncreds.ErrNotBuilt},
		},
		{
			name:    "missing entry point",
			openErr: fmt.Errorf("%w: anoncreds_create_schema: undefined symbol", native.ErrBind),
			want:    []error{anoncreds.ErrLibraryLoad, anoncreds.ErrLibraryBind},
			notWant: []error{anoncreds.ErrLibraryNotFound},
		},
		{
			name:    "rejected by the loader",
			openErr: rejected,
			want:    []error{anoncreds.ErrLibraryLoad, rejected},
			notWant: []error{anoncreds.ErrLibraryNotFound, anoncreds.ErrLibraryBind},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			restore := anoncreds.SetOpenLibrary(func(path string) (native.Library, error) {
				gotPath = path
				return nil, tt.openErr
			})
			defer restore()

			a, err := anoncreds.Open(anoncreds.Config{LibraryPath: "/opt/libanoncreds.so"})
			if a != nil {
				t.Fatal("expected no instance")
			}
			if gotPath != "/opt/libanoncreds.so" {
				t.Fatalf("loader got path %q", gotPath)
			}
			if tt.wantSame && err != anoncreds.ErrNotBuilt {
				t.Fatalf("want ErrNotBuilt unwrapped, got %v", err)
			}
			for _, w := range tt.want {
				if !errors.Is(err, w) {
					t.Errorf("%v does not match %v", err, w)
				}
			}
			for _, w := range tt.notWant {
				if errors.Is(err, w) {
					t.Errorf("%v unexpectedly matches %v", err, w)
				}
			}
		})
	}
}

func TestOpenOwnsLoadedLibrary(t *testing.T) {
	lib := mocklib.New()
	restore := anoncreds.SetOpenLibrary(func(string) (native.Library, error) { return lib, nil })
	defer restore()

	a, err := anoncreds.Open(anoncreds.Config{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := a.GenerateNonce(context.Background()); err != nil {
		t.Fatal(err)
	}
	if err := a.Close(); err != nil {
		t.Fatal(err)
	}
	if !lib.Closed() {
		t.Fatal("Close did not unload the library")
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv(anoncreds.EnvLibraryPath, "/opt/lib/libanoncreds.so")
	t.Setenv(anoncreds.EnvLogLevel, "debug")
	cfg, err := anoncreds.ConfigFromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.LibraryPath != "/opt/lib/libanoncreds.so" || cfg.Logger == nil {
		t.Fatalf("unexpected config: %+v", cfg)
	}

	t.Setenv(anoncreds.EnvLogLevel, "loud")
	if _, err := anoncreds.ConfigFromEnv(); err == nil {
		t.Fatal("expected an invalid level error")
	}
}

// recordingProvider keeps every span started through it.
type recordingProvider struct {
	noop.TracerProvider
	mu    sync.Mutex
	spans []*recordedSpan
}

func (p *recordingProvider) Tracer(string, ...trace.TracerOption) trace.Tracer {
	return &recordingTracer{p: p}
}

func (p *recordingProvider) ended() []*recordedSpan {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []*recordedSpan
	for _, sp := range p.spans {
		if sp.done {
			out = append(out, sp)
		}
	}
	return out
}

type recordingTracer struct {
	noop.Tracer
	p *recordingProvider
}

func (t *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	cfg := trace.NewSpanStartConfig(opts...)
	sp := &recordedSpan{name: name, attrs: cfg.Attributes()}
	t.p.mu.Lock()
	t.p.spans = append(t.p.spans, sp)
	t.p.mu.Unlock()
	return trace.ContextWithSpan(ctx, sp), sp
}

type recordedSpan struct {
	noop.Span
	name  string
	attrs []attribute.KeyValue
	code  codes.Code
	done  bool
}

func (s *recordedSpan) SetAttributes(kv ...attribute.KeyValue) { s.attrs = append(s.attrs, kv...) }

func (s *recordedSpan) SetStatus(code codes.Code, _ string) { s.code = code }

func (s *recordedSpan) End(...trace.SpanEndOption) { s.done = true }
