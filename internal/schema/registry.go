package schema

import (
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"sync"

	"github.com/minio/highwayhash"
	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var fingerprintKey = []byte("chart-manifest-schema-registry-k")

// Registry is an append-only set of schema documents keyed by "$id".
// Compilation happens on first use and is memoized. It is safe for
// concurrent use.
type Registry struct {
	mu      sync.Mutex
	logger  *zap.Logger
	entries map[string]*entry
	printer *message.Printer
}

type entry struct {
	doc         any
	fingerprint uint64
	compiled    *jsonschema.Schema
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the registry logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		r.logger = l
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		logger:  zap.NewNop(),
		entries: map[string]*entry{},
		printer: message.NewPrinter(language.English),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

var _ Engine = (*Registry)(nil)

// Register adds doc under its "$id". An id that is already registered is
// left untouched.
func (r *Registry) Register(doc any) (string, error) {
	obj, ok := doc.(map[string]any)
	if !ok {
		return "", errors.New("schema document must be a JSON object")
	}

	id, ok := obj["$id"].(string)
	if !ok || id == "" {
		return "", ErrMissingID
	}

	fp, err := fingerprint(doc)
	if err != nil {
		return "", fmt.Errorf("fingerprinting schema %s: %w", id, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.entries[id]; ok {
		if existing.fingerprint != fp {
			r.logger.Warn("schema already registered with different content; keeping first",
				zap.String("id", id))
		}

		return id, nil
	}

	r.entries[id] = &entry{doc: doc, fingerprint: fp}
	r.logger.Debug("registered schema", zap.String("id", id), zap.Uint64("fingerprint", fp))

	return id, nil
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.entries[id]

	return ok
}

// Document returns the registered document for id.
func (r *Registry) Document(id string) (any, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, false
	}

	return e.doc, true
}

// Validate checks instance against the schema registered as id. The
// instance must be a decoded JSON value. A failed validation is reported
// through Output, not as an error.
func (r *Registry) Validate(id string, instance any) (*Output, error) {
	sch, err := r.compiled(id)
	if err != nil {
		return nil, err
	}

	err = sch.Validate(instance)
	if err == nil {
		return &Output{Valid: true}, nil
	}

	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return nil, fmt.Errorf("validating against %s: %w", id, err)
	}

	out := &Output{Valid: false}
	r.flatten(ve, &out.Errors)

	return out, nil
}

func (r *Registry) compiled(id string) (*jsonschema.Schema, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[id]
	if !ok {
		return nil, &NotRegisteredError{ID: id}
	}

	if e.compiled != nil {
		return e.compiled, nil
	}

	c := jsonschema.NewCompiler()
	c.DefaultDraft(jsonschema.Draft2020)

	if err := c.AddResource(id, e.doc); err != nil {
		return nil, fmt.Errorf("adding schema %s: %w", id, err)
	}

	sch, err := c.Compile(id)
	if err != nil {
		return nil, fmt.Errorf("compiling schema %s: %w", id, err)
	}

	e.compiled = sch
	r.logger.Debug("compiled schema", zap.String("id", id))

	return sch, nil
}

// flatten appends ve and its causes depth-first. Siblings are ordered by the
// deepest instance location below them, then by location, so the last unit
// is always a failure at the deepest instance location.
func (r *Registry) flatten(ve *jsonschema.ValidationError, out *[]OutputUnit) {
	var keywordPath []string

	msg := ""

	if ve.ErrorKind != nil {
		keywordPath = ve.ErrorKind.KeywordPath()
		msg = ve.ErrorKind.LocalizedString(r.printer)
	}

	unit := OutputUnit{
		AbsoluteKeywordLocation: keywordLocation(ve.SchemaURL, keywordPath),
		InstanceLocation:        "#" + pointer(ve.InstanceLocation),
		Message:                 msg,
	}

	if len(keywordPath) > 0 {
		unit.Keyword = keywordPath[0]
	}

	*out = append(*out, unit)

	for _, cause := range sortedCauses(ve) {
		r.flatten(cause, out)
	}
}

func sortedCauses(ve *jsonschema.ValidationError) []*jsonschema.ValidationError {
	causes := slices.Clone(ve.Causes)

	depths := make(map[*jsonschema.ValidationError]int, len(causes))
	for _, c := range causes {
		depths[c] = maxDepth(c)
	}

	slices.SortStableFunc(causes, func(a, b *jsonschema.ValidationError) int {
		if d := cmp.Compare(depths[a], depths[b]); d != 0 {
			return d
		}

		if c := cmp.Compare(pointer(a.InstanceLocation), pointer(b.InstanceLocation)); c != 0 {
			return c
		}

		return cmp.Compare(causeKeywordLocation(a), causeKeywordLocation(b))
	})

	return causes
}

// maxDepth is the longest instance location in the subtree of ve.
func maxDepth(ve *jsonschema.ValidationError) int {
	depth := len(ve.InstanceLocation)
	for _, c := range ve.Causes {
		depth = max(depth, maxDepth(c))
	}

	return depth
}

func causeKeywordLocation(ve *jsonschema.ValidationError) string {
	var keywordPath []string
	if ve.ErrorKind != nil {
		keywordPath = ve.ErrorKind.KeywordPath()
	}

	return keywordLocation(ve.SchemaURL, keywordPath)
}

func keywordLocation(schemaURL string, keywordPath []string) string {
	if !strings.Contains(schemaURL, "#") {
		schemaURL += "#"
	}

	return schemaURL + pointer(keywordPath)
}

// pointer renders tokens as a percent-encoded JSON pointer ("" for the
// root), the form used in URI fragments.
func pointer(tokens []string) string {
	var b strings.Builder

	for _, tok := range tokens {
		b.WriteByte('/')
		tok = strings.ReplaceAll(tok, "~", "~0")
		tok = strings.ReplaceAll(tok, "/", "~1")
		b.WriteString(url.PathEscape(tok))
	}

	return b.String()
}

func fingerprint(doc any) (uint64, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return 0, err
	}

	hash, err := highwayhash.New64(fingerprintKey)
	if err != nil {
		return 0, err
	}

	_, err = hash.Write(data)

	return hash.Sum64(), err
}
