package engine

import (
	"context"
	"fmt"

	"github.com/vk/tlvconfig/internal/config"
	"github.com/vk/tlvconfig/internal/ctxlog"
	"github.com/vk/tlvconfig/internal/param"
	"github.com/vk/tlvconfig/internal/validation"
)

// Catalog is the read-only view of the parameter registry the engine needs.
type Catalog interface {
	Lookup(key string) (config.Parameter, error)
}

// Override is one request entry. A nil Value stands for an explicit null and
// selects the parameter's default.
type Override struct {
	Key   string
	Value param.Value
}

// Program is the result of a successful translation.
type Program struct {
	Lines []string `json:"lines"`
}

// Option configures an Engine.
type Option func(*Engine)

// WithStrictValidation makes the engine evaluate each parameter's declared
// validation rule against submitted values, in addition to the kind check.
func WithStrictValidation(strict bool) Option {
	return func(e *Engine) { e.strict = strict }
}

// Engine renders overrides against a catalog.
type Engine struct {
	catalog Catalog
	strict  bool
}

// New creates an engine reading from catalog.
func New(catalog Catalog, opts ...Option) *Engine {
	e := &Engine{catalog: catalog}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Strict reports whether validation rules are enforced.
func (e *Engine) Strict() bool { return e.strict }

// Translate renders one macro line per override, in the order given. Keys
// that are not present produce no line.
func (e *Engine) Translate(ctx context.Context, overrides []Override) (Program, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Translation started.", "entries", len(overrides), "strict", e.strict)

	lines := make([]string, 0, len(overrides))
	for _, o := range overrides {
		line, err := e.translateOne(o)
		if err != nil {
			logger.Debug("Translation aborted.", "json_key", o.Key, "error", err)
			return Program{}, err
		}
		logger.Debug("Rendered macro line.", "json_key", o.Key, "line", line)
		lines = append(lines, line)
	}

	logger.Debug("Translation finished.", "lines", len(lines))
	return Program{Lines: lines}, nil
}

func (e *Engine) translateOne(o Override) (string, error) {
	p, err := e.catalog.Lookup(o.Key)
	if err != nil {
		return "", err
	}

	effective := p.Default
	if o.Value != nil {
		if o.Value.Kind() != p.Accepts.InputType {
			return "", &TypeMismatchError{Key: p.JSONKey, Expected: p.Accepts.InputType, Actual: o.Value.Kind()}
		}
		if e.strict {
			if err := validation.Evaluate(p.JSONKey, p.Accepts.Validation, o.Value); err != nil {
				return "", err
			}
		}
		effective = o.Value
	}

	mapped, err := p.OutputMapper.Apply(effective)
	if err != nil {
		return "", &MapperError{Key: p.JSONKey, Mapper: p.OutputMapper, Err: err}
	}
	return Render(p, mapped), nil
}

// Render formats a single macro line for parameter p with value v.
func Render(p config.Parameter, v param.Value) string {
	return fmt.Sprintf("%s(['%s'], %s)", p.MacroType.Keyword(), p.VerilogName, v.Verilog())
}
