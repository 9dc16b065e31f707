package collection

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/restkit/jsonapi/document"
	"github.com/restkit/jsonapi/iri"
	"github.com/restkit/jsonapi/paging"
	"github.com/restkit/jsonapi/property"
	"github.com/restkit/jsonapi/validator"
)

const defaultPageParameter = "page"

// Context carries the request-scoped inputs of one collection
// normalization.
type Context struct {
	RequestIRI string
	Resource   string
	Operation  string
}

// ResourceMetadata describes how navigation links are generated for a
// resource operation. Empty CursorFields selects offset pagination.
type ResourceMetadata struct {
	CursorFields []paging.Field
	URLStrategy  iri.Strategy
}

// Inspector derives the pagination state of a collection from the request
// context.
type Inspector interface {
	Inspect(items []any, ctx *Context) (paging.Config, error)
}

// MetadataResolver looks up the link-generation metadata of the resource
// being normalized.
type MetadataResolver interface {
	Resolve(ctx *Context) (*ResourceMetadata, error)
}

// ItemNormalizer turns one collection element into a fragment: a structured
// mapping holding a data member and, optionally, an included sequence.
type ItemNormalizer interface {
	NormalizeItem(item any, format string, ctx *Context) (any, error)
}

// Normalizer assembles paginated collection responses into JSON:API
// documents. It is stateless across calls and safe for concurrent use.
type Normalizer struct {
	inspector Inspector
	resolver  MetadataResolver
	items     ItemNormalizer
	reader    paging.ValueReader
	pageParam string
	logger    logrus.FieldLogger
}

// Option configures a Normalizer.
type Option func(*Normalizer)

// WithPageParameter overrides the page query parameter name.
func WithPageParameter(name string) Option {
	return func(n *Normalizer) { n.pageParam = name }
}

// WithValueReader overrides the property reader used for cursor fields.
func WithValueReader(r paging.ValueReader) Option {
	return func(n *Normalizer) { n.reader = r }
}

// WithLogger attaches a logger. The default discards all output.
func WithLogger(l logrus.FieldLogger) Option {
	return func(n *Normalizer) { n.logger = l }
}

// New creates a collection normalizer from its collaborators.
func New(inspector Inspector, resolver MetadataResolver, items ItemNormalizer, opts ...Option) (*Normalizer, error) {
	if inspector == nil || resolver == nil || items == nil {
		return nil, errors.New("collection: inspector, resolver and item normalizer are required")
	}

	n := &Normalizer{
		inspector: inspector,
		resolver:  resolver,
		items:     items,
		reader:    property.NewReader(),
		pageParam: defaultPageParameter,
		logger:    discardLogger(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n, nil
}

// NormalizeCollection builds the full collection document: navigation
// links and metadata from the pagination state, member data and
// de-duplicated included resources from the per-item normalizer.
func (n *Normalizer) NormalizeCollection(ctx *Context, items []any, format string) (*document.Document, error) {
	if ctx == nil {
		return nil, errors.New("collection: context is required")
	}

	cfg, err := n.inspector.Inspect(items, ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect pagination: %w", err)
	}

	meta, err := n.resolver.Resolve(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve resource metadata: %w", err)
	}
	if meta == nil {
		meta = &ResourceMetadata{}
	}

	parsed, err := iri.Parse(ctx.RequestIRI, n.pageParam)
	if err != nil {
		return nil, err
	}

	var links document.Links
	if len(meta.CursorFields) > 0 {
		if err := validateCursorFields(meta.CursorFields); err != nil {
			return nil, err
		}
		var first, last any
		if len(items) > 0 {
			first, last = items[0], items[len(items)-1]
		}
		links, err = paging.BuildCursorLinks(parsed, cfg, meta.CursorFields, first, last, n.reader)
		if err != nil {
			return nil, err
		}
	} else {
		links = paging.BuildOffsetLinks(parsed, n.pageParam, cfg, meta.URLStrategy)
	}

	data, included, err := n.aggregate(items, format, ctx)
	if err != nil {
		return nil, err
	}

	doc := &document.Document{
		Links:    links,
		Meta:     paging.BuildMeta(cfg),
		Data:     data,
		Included: included,
	}

	n.logger.WithFields(logrus.Fields{
		"resource": ctx.Resource,
		"items":    len(data),
		"included": len(included),
	}).Debug("collection normalized")

	return doc, nil
}

// validateCursorFields rejects cursor field definitions with a missing name
// or an order outside asc/desc before any link is computed from them.
func validateCursorFields(fields []paging.Field) error {
	for _, f := range fields {
		if msgs := validator.ValidateStruct(&f); len(msgs) > 0 {
			return fmt.Errorf("invalid cursor field %q: %v", f.Name, msgs)
		}
	}
	return nil
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
