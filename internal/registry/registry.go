package registry

import (
	"context"
	"fmt"
	"slices"

	"github.com/vk/tlvconfig/internal/config"
	"github.com/vk/tlvconfig/internal/ctxlog"
)

// UnknownKeyError is returned by Lookup for a JSON key not in the catalog.
type UnknownKeyError struct {
	Key string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("Json key %s not found", e.Key)
}

// Registry holds the validated catalog for a single application instance.
type Registry struct {
	params []config.Parameter
	byKey  map[string]int
}

// New validates the model and builds a registry from it. The registry keeps
// its own copies, so later changes to the model are not observed.
func New(ctx context.Context, model *config.Model) (*Registry, error) {
	logger := ctxlog.FromContext(ctx)

	if err := Validate(model); err != nil {
		return nil, err
	}

	r := &Registry{
		params: make([]config.Parameter, 0, len(model.Parameters)),
		byKey:  make(map[string]int, len(model.Parameters)),
	}
	for _, p := range model.Parameters {
		r.byKey[p.JSONKey] = len(r.params)
		r.params = append(r.params, clone(p))
		logger.Debug("Registered catalog parameter.", "json_key", p.JSONKey, "verilog_name", p.VerilogName, "source", p.Source)
	}

	logger.Info("Parameter catalog ready.", "parameters", len(r.params))
	return r, nil
}

// List returns every parameter in declaration order.
func (r *Registry) List() []config.Parameter {
	out := make([]config.Parameter, len(r.params))
	for i := range r.params {
		out[i] = clone(&r.params[i])
	}
	return out
}

// Lookup returns the parameter registered under key.
func (r *Registry) Lookup(key string) (config.Parameter, error) {
	i, ok := r.byKey[key]
	if !ok {
		return config.Parameter{}, &UnknownKeyError{Key: key}
	}
	return clone(&r.params[i]), nil
}

// Len reports the number of parameters in the catalog.
func (r *Registry) Len() int {
	return len(r.params)
}

// clone copies p, including the slices and pointers a caller could mutate.
func clone(p *config.Parameter) config.Parameter {
	c := *p
	c.Accepts.Validation.List = slices.Clone(p.Accepts.Validation.List)
	if p.Accepts.Validation.Number != nil {
		n := *p.Accepts.Validation.Number
		c.Accepts.Validation.Number = &n
	}
	return c
}
