package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/tlvconfig/internal/config"
	"github.com/vk/tlvconfig/internal/hcl"
	"github.com/vk/tlvconfig/internal/mapper"
	"github.com/vk/tlvconfig/internal/param"
	"github.com/vk/tlvconfig/internal/testutil"
)

func intPtr(i int) *int { return &i }

func newParam(key string, kind param.Kind, def param.Value) *config.Parameter {
	rule := config.Validation{Type: config.ValidationIn, List: []string{"true", "false"}}
	if kind == param.KindInteger {
		rule = config.Validation{Type: config.ValidationGreaterThan, Number: intPtr(-1)}
	}
	return &config.Parameter{
		MacroType:    config.MacroDefine,
		ReadableName: key,
		VerilogName:  "M4_" + key,
		Default:      def,
		JSONKey:      key,
		Accepts:      config.AcceptsType{InputType: kind, Validation: rule},
		Source:       "test",
	}
}

func TestNew_BuiltinCatalog(t *testing.T) {
	ctx, _ := testutil.Context(t)
	model, err := hcl.NewLoader().Load(ctx)
	require.NoError(t, err)

	reg, err := New(ctx, model)
	require.NoError(t, err)
	assert.Equal(t, 17, reg.Len())

	for _, p := range reg.List() {
		assert.Equal(t, p.Accepts.InputType, p.Default.Kind(), "default kind for %s", p.JSONKey)
	}

	cores, err := reg.Lookup("cores")
	require.NoError(t, err)
	assert.Equal(t, "M4_CORE", cores.VerilogName)
}

func TestLookup_UnknownKey(t *testing.T) {
	ctx, _ := testutil.Context(t)
	reg, err := New(ctx, &config.Model{Parameters: []*config.Parameter{newParam("cores", param.KindInteger, param.Integer(2))}})
	require.NoError(t, err)

	_, err = reg.Lookup("unknown_key")
	var unknown *UnknownKeyError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "unknown_key", unknown.Key)
	assert.EqualError(t, err, "Json key unknown_key not found")
}

func TestRegistry_IsIsolatedFromCallers(t *testing.T) {
	ctx, _ := testutil.Context(t)
	source := newParam("impl", param.KindBoolean, param.Boolean(true))
	reg, err := New(ctx, &config.Model{Parameters: []*config.Parameter{source}})
	require.NoError(t, err)

	// Mutating the model after construction has no effect.
	source.VerilogName = "CHANGED"
	source.Accepts.Validation.List[0] = "changed"

	listed := reg.List()
	assert.Equal(t, "M4_impl", listed[0].VerilogName)
	assert.Equal(t, "true", listed[0].Accepts.Validation.List[0])

	// Neither does mutating what List or Lookup hand out.
	listed[0].Accepts.Validation.List[0] = "changed"
	again, err := reg.Lookup("impl")
	require.NoError(t, err)
	assert.Equal(t, "true", again.Accepts.Validation.List[0])
}

func TestRegistry_ConcurrentReads(t *testing.T) {
	ctx, _ := testutil.Context(t)
	model, err := hcl.NewLoader().Load(ctx)
	require.NoError(t, err)
	reg, err := New(ctx, model)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for _, p := range reg.List() {
				_, err := reg.Lookup(p.JSONKey)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name        string
		params      []*config.Parameter
		errContains []string
	}{
		{
			name: "duplicate json key",
			params: []*config.Parameter{
				newParam("cores", param.KindInteger, param.Integer(2)),
				newParam("cores", param.KindInteger, param.Integer(3)),
			},
			errContains: []string{"parameter 'cores': duplicate json key"},
		},
		{
			name:        "default kind mismatch",
			params:      []*config.Parameter{newParam("cores", param.KindInteger, param.Boolean(true))},
			errContains: []string{"default value is BOOLEAN but the parameter accepts INTEGER"},
		},
		{
			name: "mapper kind mismatch",
			params: []*config.Parameter{func() *config.Parameter {
				p := newParam("cores", param.KindInteger, param.Integer(2))
				p.OutputMapper = mapper.BoolToBit
				return p
			}()},
			errContains: []string{"output mapper bool_to_bit requires BOOLEAN input"},
		},
		{
			name: "unknown mapper",
			params: []*config.Parameter{func() *config.Parameter {
				p := newParam("impl", param.KindBoolean, param.Boolean(true))
				p.OutputMapper = mapper.Name("invert")
				return p
			}()},
			errContains: []string{"unknown output mapper"},
		},
		{
			name: "malformed rule",
			params: []*config.Parameter{func() *config.Parameter {
				p := newParam("cores", param.KindInteger, param.Integer(2))
				p.Accepts.Validation.List = []string{"1"}
				return p
			}()},
			errContains: []string{"GREATER_THAN rule must not set a list"},
		},
		{
			name:        "default violates rule",
			params:      []*config.Parameter{newParam("cores", param.KindInteger, param.Integer(-5))},
			errContains: []string{"default value violates its own rule"},
		},
		{
			name: "all problems reported together",
			params: []*config.Parameter{
				newParam("", param.KindInteger, param.Integer(2)),
				func() *config.Parameter {
					p := newParam("impl", param.KindBoolean, nil)
					p.VerilogName = ""
					return p
				}(),
			},
			errContains: []string{"json key must not be empty", "parameter 'impl': verilog name must not be empty", "parameter 'impl': missing default value"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(&config.Model{Parameters: tc.params})
			require.Error(t, err)
			for _, want := range tc.errContains {
				assert.Contains(t, err.Error(), want)
			}
		})
	}

	require.Error(t, Validate(nil))
}
