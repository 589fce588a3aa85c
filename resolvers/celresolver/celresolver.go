// Package celresolver resolves destination values by evaluating a CEL
// expression against the mapped source object.
//
// The source is exposed as the variable src. Structs become maps keyed by
// exported field name, so `src.FullName + " <" + src.Email + ">"` reads two
// fields of the source.
package celresolver

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/google/cel-go/cel"

	"automapper/rules"
)

// Variable is the name the source object is bound to.
const Variable = "src"

// ErrEmptyExpression is returned for blank expressions.
var ErrEmptyExpression = errors.New("celresolver: expression required")

var newEnv = func() (*cel.Env, error) {
	return cel.NewEnv(cel.Variable(Variable, cel.DynType))
}

var programCache sync.Map

// Resolver evaluates one compiled CEL expression.
type Resolver struct {
	expr    string
	program cel.Program
}

var _ rules.ValueResolver = (*Resolver)(nil)

// New compiles expr. Programs are cached by expression text.
func New(expr string) (*Resolver, error) {
	program, err := loadOrCompile(expr)
	if err != nil {
		return nil, err
	}

	return &Resolver{expr: strings.TrimSpace(expr), program: program}, nil
}

// MustNew is like New but panics on error.
func MustNew(expr string) *Resolver {
	r, err := New(expr)
	if err != nil {
		panic(err)
	}

	return r
}

// Expression returns the source text.
func (r *Resolver) Expression() string {
	return r.expr
}

// Resolve implements rules.ValueResolver.
func (r *Resolver) Resolve(source any) (any, error) {
	out, _, err := r.program.Eval(map[string]any{Variable: native(reflect.ValueOf(source))})
	if err != nil {
		return nil, fmt.Errorf("celresolver: %s: %w", r.expr, err)
	}

	return out.Value(), nil
}

func loadOrCompile(expr string) (cel.Program, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, ErrEmptyExpression
	}

	if cached, ok := programCache.Load(expr); ok {
		return cached.(cel.Program), nil
	}

	env, err := newEnv()
	if err != nil {
		return nil, err
	}

	ast, issues := env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("celresolver: %w", issues.Err())
	}

	program, err := env.Program(ast)
	if err != nil {
		return nil, err
	}

	programCache.Store(expr, program)

	return program, nil
}

var timeType = reflect.TypeOf(time.Time{})

// native turns v into values the default CEL adapter understands: structs
// become map[string]any, slices and arrays []any, string-keyed maps
// map[string]any.
func native(v reflect.Value) any {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return nil
		}

		v = v.Elem()
	}

	if !v.IsValid() {
		return nil
	}

	switch v.Kind() {
	case reflect.Struct:
		if v.Type() == timeType {
			return v.Interface()
		}

		out := make(map[string]any, v.NumField())
		for _, f := range reflect.VisibleFields(v.Type()) {
			if !f.IsExported() || f.Anonymous {
				continue
			}

			fv, err := v.FieldByIndexErr(f.Index)
			if err != nil || !fv.CanInterface() {
				continue
			}

			out[f.Name] = native(fv)
		}

		return out
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.Type().Elem().Kind() == reflect.Uint8 {
			return v.Bytes()
		}

		out := make([]any, v.Len())
		for i := range out {
			out[i] = native(v.Index(i))
		}

		return out
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return v.Interface()
		}

		out := make(map[string]any, v.Len())
		for it := v.MapRange(); it.Next(); {
			out[it.Key().String()] = native(it.Value())
		}

		return out
	case reflect.Bool:
		return v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint()
	case reflect.Float32, reflect.Float64:
		return v.Float()
	case reflect.String:
		return v.String()
	default:
		return v.Interface()
	}
}
