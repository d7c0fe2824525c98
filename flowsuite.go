package flowsuite

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/lime816/whatsappsuitetest-sub002/internal/binding"
	"github.com/lime816/whatsappsuitetest-sub002/internal/compiler"
	"github.com/lime816/whatsappsuitetest-sub002/internal/endpoint"
	"github.com/lime816/whatsappsuitetest-sub002/internal/presentation/graph"
	"github.com/lime816/whatsappsuitetest-sub002/internal/validator"
	"github.com/lime816/whatsappsuitetest-sub002/pkg/catalog"
	"github.com/lime816/whatsappsuitetest-sub002/pkg/domain"
	"github.com/lime816/whatsappsuitetest-sub002/pkg/editor"
	"github.com/lime816/whatsappsuitetest-sub002/pkg/observability"
	"github.com/lime816/whatsappsuitetest-sub002/pkg/ports"
	"github.com/lime816/whatsappsuitetest-sub002/pkg/wire"
)

// Version of the flowsuite library and CLI.
const Version = "0.4.0"

type (
	// ValidationResult is the outcome of a validation call.
	ValidationResult = validator.Result
	// Issue is a single validation error or warning.
	Issue = validator.Issue
	// Limit is one entry of the content limit table.
	Limit = validator.Limit
	// GraphOverlay highlights screens on a rendered graph.
	GraphOverlay = graph.GraphOverlay
)

// Suite is the high-level entry point of the library. It wires the catalog,
// validator, compiler and serializer together and reports every call to the
// configured hooks.
type Suite struct {
	factory *catalog.Factory
	parser  *compiler.Parser
	cache   ports.DocumentCache
	hooks   domain.Hooks
	ids     catalog.IDGenerator
	logger  *slog.Logger
}

// Option defines a functional option for configuring the Suite.
type Option func(*Suite)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Suite) {
		s.logger = logger
	}
}

// WithIDGenerator replaces the UUID generator used for new elements.
func WithIDGenerator(gen catalog.IDGenerator) Option {
	return func(s *Suite) {
		s.ids = gen
	}
}

// WithHooks registers observability hooks. Repeated calls accumulate.
func WithHooks(hooks domain.Hooks) Option {
	return func(s *Suite) {
		s.hooks = s.hooks.Merge(hooks)
	}
}

// WithCache enables caching of exported documents.
func WithCache(cache ports.DocumentCache) Option {
	return func(s *Suite) {
		s.cache = cache
	}
}

// WithParserFormat forces the syntax used by Parse instead of sniffing it.
func WithParserFormat(f compiler.Format) Option {
	return func(s *Suite) {
		s.parser = compiler.NewParser(compiler.WithFormat(f))
	}
}

// New initializes a Suite.
func New(opts ...Option) *Suite {
	s := &Suite{}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.parser == nil {
		s.parser = compiler.NewParser()
	}
	s.factory = catalog.New(s.ids)
	s.hooks = observability.LoggingHooks(s.logger).Merge(s.hooks)
	return s
}

// Factory returns the element factory bound to the suite's id generator.
func (s *Suite) Factory() *catalog.Factory {
	return s.factory
}

// CreateDefault returns a new element of kind with its default attributes.
func (s *Suite) CreateDefault(kind domain.Kind, opts ...catalog.Option) (domain.Element, error) {
	return s.factory.CreateDefault(kind, opts...)
}

// NewEditor returns a screen graph store. If onReport is set, every
// mutation is followed by a flow validation of the new snapshot.
func (s *Suite) NewEditor(onReport func(ValidationResult), opts ...editor.Option) *editor.Store {
	if onReport != nil {
		opts = append(opts, editor.WithChangeHook(func(screens []domain.Screen) {
			onReport(s.ValidateFlow(context.Background(), screens))
		}))
	}
	return editor.New(s.factory, opts...)
}

// Parse decodes a JSON, JSONC or YAML flow source into screens.
func (s *Suite) Parse(data []byte) ([]domain.Screen, error) {
	return s.parser.Parse(data)
}

// ParseElement decodes one element from JSON or YAML.
func (s *Suite) ParseElement(data []byte) (domain.Element, error) {
	return s.parser.ParseElement(data)
}

// ValidateElement checks one element against the content limits.
func (s *Suite) ValidateElement(ctx context.Context, el domain.Element) ValidationResult {
	start := time.Now()
	res := validator.ValidateElement(el)
	s.emitValidate(ctx, domain.ScopeElement, res, start)
	return res
}

// ValidateScreen checks a screen's elements and its count limits.
func (s *Suite) ValidateScreen(ctx context.Context, screen domain.Screen) ValidationResult {
	start := time.Now()
	res := validator.ValidateScreen(screen)
	s.emitValidate(ctx, domain.ScopeScreen, res, start)
	return res
}

// ValidateFlow checks every screen plus the flow's structure.
func (s *Suite) ValidateFlow(ctx context.Context, screens []domain.Screen) ValidationResult {
	start := time.Now()
	res := validator.ValidateFlow(screens)
	s.emitValidate(ctx, domain.ScopeFlow, res, start)
	return res
}

func (s *Suite) emitValidate(ctx context.Context, scope domain.ValidationScope, res ValidationResult, start time.Time) {
	s.hooks.EmitValidate(ctx, &domain.ValidateEvent{
		Timestamp: start,
		Scope:     scope,
		Errors:    len(res.Errors),
		Warnings:  len(res.Warnings),
		Duration:  time.Since(start),
	})
}

// Compile turns screens into a flow document. It does not validate content
// limits; callers run ValidateFlow first.
func (s *Suite) Compile(ctx context.Context, screens []domain.Screen) (*domain.FlowDocument, error) {
	start := time.Now()
	doc, err := compiler.Compile(screens)
	s.hooks.EmitCompile(ctx, &domain.CompileEvent{
		Timestamp: start,
		Screens:   len(screens),
		Elements:  countElements(screens),
		Duration:  time.Since(start),
		Err:       err,
	})
	return doc, err
}

// Export compiles screens and returns the platform wire JSON. With a cache
// configured, documents are looked up by the fingerprint of their input.
// Cache failures are logged and never fail the export.
func (s *Suite) Export(ctx context.Context, screens []domain.Screen) ([]byte, error) {
	var key string
	if s.cache != nil {
		fp, err := wire.Fingerprint(screens)
		if err != nil {
			return nil, err
		}
		key = fp
		out, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			s.hooks.EmitCompile(ctx, &domain.CompileEvent{
				Timestamp: time.Now(),
				Screens:   len(screens),
				Elements:  countElements(screens),
				Cached:    true,
			})
			return out, nil
		case !errors.Is(err, domain.ErrCacheMiss):
			s.logger.WarnContext(ctx, "cache lookup failed", "key", key, "err", err)
		}
	}

	doc, err := s.Compile(ctx, screens)
	if err != nil {
		return nil, err
	}
	out, err := wire.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to encode flow: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Put(ctx, key, out); err != nil {
			s.logger.WarnContext(ctx, "cache store failed", "key", key, "err", err)
		}
	}
	return out, nil
}

// CachedDocuments lists the fingerprints held by the document cache in
// sorted order. It returns nil without a cache.
func (s *Suite) CachedDocuments(ctx context.Context) ([]string, error) {
	if s.cache == nil {
		return nil, nil
	}
	keys, err := s.cache.Keys(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cache: %w", err)
	}
	slices.Sort(keys)
	return keys, nil
}

// DataModel returns the data schema inferred from the screens, or nil.
func (s *Suite) DataModel(screens []domain.Screen) *domain.DataModel {
	return binding.Extract(screens)
}

// Schema compiles screens and describes their data-exchange endpoint as an
// OpenAPI document.
func (s *Suite) Schema(ctx context.Context, title string, screens []domain.Screen) (*openapi3.T, error) {
	doc, err := s.Compile(ctx, screens)
	if err != nil {
		return nil, err
	}
	if err := endpoint.CheckExamples(doc.Data); err != nil {
		return nil, fmt.Errorf("inconsistent data model: %w", err)
	}
	return endpoint.Document(ctx, title, doc)
}

// Graph renders the navigation graph as a Mermaid flowchart.
func (s *Suite) Graph(screens []domain.Screen, overlay *GraphOverlay) string {
	return graph.GenerateMermaid(screens, overlay)
}

// Limits returns the content limits that apply to kind.
func Limits(kind domain.Kind) []Limit {
	return validator.Limits(kind)
}

func countElements(screens []domain.Screen) int {
	n := 0
	for _, s := range screens {
		n += len(s.Elements)
	}
	return n
}
