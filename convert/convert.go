package convert

import (
	"reflect"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/colinmarc/svalue/heap"
	"github.com/colinmarc/svalue/internal/errs"
)

// Converter turns a foreign Go value into a heap.Value, or reports that it
// cannot handle v.
type Converter func(v any) (heap.Value, error)

// Registry holds user-registered Converters, keyed by the concrete
// reflect.Type they accept. The zero Registry is ready to use and falls
// back to the built-in conversions for any type with no registered
// converter.
//
// A singleflight.Group collapses concurrent converter lookups for the
// same type into one map read; Convert itself never registers a
// converter, so registrations happen only through Register.
type Registry struct {
	mu    sync.RWMutex
	byTyp map[reflect.Type]Converter
	group singleflight.Group
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byTyp: make(map[reflect.Type]Converter)}
}

// Register installs fn as the converter for values of type t. A later
// call for the same type replaces the earlier converter.
func (r *Registry) Register(t reflect.Type, fn Converter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.byTyp == nil {
		r.byTyp = make(map[reflect.Type]Converter)
	}
	r.byTyp[t] = fn
}

// lookup returns the registered converter for t, using the singleflight
// group so concurrent lookups for the same not-yet-resolved type share
// one map read.
func (r *Registry) lookup(t reflect.Type) (Converter, bool) {
	v, err, _ := r.group.Do(t.String(), func() (any, error) {
		r.mu.RLock()
		defer r.mu.RUnlock()
		fn, ok := r.byTyp[t]
		return registryLookupResult{fn, ok}, nil
	})
	if err != nil {
		return nil, false
	}
	res := v.(registryLookupResult)
	return res.fn, res.ok
}

type registryLookupResult struct {
	fn Converter
	ok bool
}

// Convert converts v into a heap.Value, trying r's registered converters
// first (by v's concrete type) and falling back to the built-in
// conversions for the Go shapes the value model already covers natively.
func (r *Registry) Convert(v any) (heap.Value, error) {
	if v == nil {
		return heap.Null(), nil
	}
	if hv, ok := v.(heap.Value); ok {
		return hv, nil
	}
	if r != nil {
		if fn, ok := r.lookup(reflect.TypeOf(v)); ok {
			return fn(v)
		}
	}
	return r.convertBuiltin(v)
}

// convertBuiltin handles the Go types that map directly onto the value
// model's seven cases, recursing into slices/maps via r so registered
// converters still apply to nested elements.
func (r *Registry) convertBuiltin(v any) (heap.Value, error) {
	switch x := v.(type) {
	case bool:
		return heap.Bool(x), nil
	case string:
		return heap.Str(x), nil
	case int:
		return heap.Int(int64(x)), nil
	case int8:
		return heap.Int(int64(x)), nil
	case int16:
		return heap.Int(int64(x)), nil
	case int32:
		return heap.Int(int64(x)), nil
	case int64:
		return heap.Int(x), nil
	case uint:
		return heap.Int(int64(x)), nil
	case uint8:
		return heap.Int(int64(x)), nil
	case uint16:
		return heap.Int(int64(x)), nil
	case uint32:
		return heap.Int(int64(x)), nil
	case uint64:
		return heap.Int(int64(x)), nil
	case float32:
		return heap.Float(float64(x)), nil
	case float64:
		return heap.Float(x), nil
	case []any:
		vals := make([]heap.Value, len(x))
		for i, e := range x {
			ev, err := r.Convert(e)
			if err != nil {
				return heap.Null(), err
			}
			vals[i] = ev
		}
		return heap.NewArray(vals...), nil
	case map[string]any:
		pairs := make([]heap.Pair, 0, len(x))
		for k, e := range x {
			ev, err := r.Convert(e)
			if err != nil {
				return heap.Null(), err
			}
			pairs = append(pairs, heap.Pair{Key: k, Value: ev})
		}
		return heap.NewObjectFrom(pairs...), nil
	default:
		return heap.Null(), errs.Typef("Convert", "no converter registered for %T", v)
	}
}

// defaultRegistry is the package-level Registry backing the Convert
// and RegisterConverter package functions, for callers who don't need
// more than one registry.
var defaultRegistry = NewRegistry()

// Convert converts v using the default registry.
func Convert(v any) (heap.Value, error) { return defaultRegistry.Convert(v) }

// RegisterConverter installs fn for type t in the default registry.
func RegisterConverter(t reflect.Type, fn Converter) { defaultRegistry.Register(t, fn) }
