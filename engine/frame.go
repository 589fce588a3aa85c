package engine

import (
	"fmt"
	"reflect"
)

type identity struct {
	t   reflect.Type
	ptr uintptr
	n   int
}

// frame is one step of the recursion path. Frames are immutable and shared
// by goroutines mapping sibling elements.
type frame struct {
	parent *frame
	id     identity
	keyed  bool
	depth  int
}

// enter pushes v onto the path starting at f.
func (c *call) enter(f *frame, v reflect.Value) (*frame, error) {
	next := &frame{parent: f, depth: 1}
	if f != nil {
		next.depth = f.depth + 1
	}

	if next.depth > c.m.cfg.MaxDepth {
		return nil, fmt.Errorf("%w: depth %d", ErrMaxDepth, c.m.cfg.MaxDepth)
	}

	next.id, next.keyed = identityOf(v)
	if !next.keyed {
		return next, nil
	}

	for p := f; p != nil; p = p.parent {
		if p.keyed && p.id == next.id {
			return nil, fmt.Errorf("%w: %s revisited", ErrCyclicGraph, next.id.t)
		}
	}

	return next, nil
}

func identityOf(v reflect.Value) (identity, bool) {
	for v.IsValid() && v.Kind() == reflect.Interface {
		v = v.Elem()
	}

	if !v.IsValid() {
		return identity{}, false
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Map:
		if v.IsNil() {
			return identity{}, false
		}

		return identity{t: v.Type(), ptr: v.Pointer()}, true
	case reflect.Slice:
		if v.IsNil() || v.Len() == 0 {
			return identity{}, false
		}

		return identity{t: v.Type(), ptr: v.Pointer(), n: v.Len()}, true
	default:
		return identity{}, false
	}
}
