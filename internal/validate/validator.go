package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.uber.org/zap"

	"chart-manifest/internal/localize"
	"chart-manifest/internal/schema"
)

// Result is the outcome of validating one document.
type Result struct {
	Valid      bool   `json:"valid"`
	Diagnostic string `json:"diagnostic,omitempty"`
}

// Validator validates manifests. It is safe for concurrent use when its
// engine is.
type Validator struct {
	engine  schema.Engine
	querier localize.Querier
	logger  *zap.Logger
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the validator logger.
func WithLogger(l *zap.Logger) Option {
	return func(v *Validator) {
		v.logger = l
	}
}

// WithQuerier replaces the JSONPath evaluator used for diagnostics.
func WithQuerier(q localize.Querier) Option {
	return func(v *Validator) {
		v.querier = q
	}
}

// New registers the embedded schemas on engine and returns a Validator
// using it.
func New(engine schema.Engine, opts ...Option) (*Validator, error) {
	v := &Validator{
		engine:  engine,
		querier: localize.JSONPath{},
		logger:  zap.NewNop(),
	}

	for _, opt := range opts {
		opt(v)
	}

	if err := schema.RegisterEmbedded(engine); err != nil {
		return nil, fmt.Errorf("registering schemas: %w", err)
	}

	return v, nil
}

// Validate checks instance, which may be any JSON-marshalable value. With
// schema.KindAuto the kind is sniffed from the document.
func (v *Validator) Validate(ctx context.Context, instance any, kind schema.Kind) (Result, error) {
	doc, err := normalize(instance)
	if err != nil {
		return Result{}, err
	}

	return v.validate(ctx, doc, kind)
}

// ValidateBytes parses data as JSON and validates it.
func (v *Validator) ValidateBytes(ctx context.Context, data []byte, kind schema.Kind) (Result, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return Result{}, fmt.Errorf("failed to parse manifest JSON: %w", err)
	}

	return v.validate(ctx, doc, kind)
}

// ValidateFullOutput returns the id of the schema used and the engine's
// complete output.
func (v *Validator) ValidateFullOutput(ctx context.Context, instance any, kind schema.Kind) (string, *schema.Output, error) {
	doc, err := normalize(instance)
	if err != nil {
		return "", nil, err
	}

	return v.run(ctx, doc, kind)
}

func (v *Validator) validate(ctx context.Context, doc any, kind schema.Kind) (Result, error) {
	id, out, err := v.run(ctx, doc, kind)
	if err != nil {
		return Result{}, err
	}

	if out.Valid {
		return Result{Valid: true}, nil
	}

	schemaDoc, _ := v.engine.Document(id)

	return Result{
		Valid:      false,
		Diagnostic: localize.Localize(doc, out, schemaDoc, v.querier),
	}, nil
}

func (v *Validator) run(ctx context.Context, doc any, kind schema.Kind) (string, *schema.Output, error) {
	if err := ctx.Err(); err != nil {
		return "", nil, err
	}

	if kind == schema.KindAuto {
		kind = schema.Sniff(doc)
	}

	id := kind.SchemaID()
	if id == "" {
		return "", nil, fmt.Errorf("no schema for kind %s", kind)
	}

	out, err := v.engine.Validate(id, doc)
	if err != nil {
		return "", nil, err
	}

	v.logger.Debug("validated document",
		zap.Stringer("kind", kind),
		zap.String("schema", id),
		zap.Bool("valid", out.Valid),
		zap.Int("errors", len(out.Errors)))

	return id, out, nil
}

// normalize converts instance to the engine's decoded-JSON representation.
func normalize(instance any) (any, error) {
	data, err := json.Marshal(instance)
	if err != nil {
		return nil, fmt.Errorf("encoding instance: %w", err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding instance: %w", err)
	}

	return doc, nil
}
