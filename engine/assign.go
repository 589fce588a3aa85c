package engine

import (
	"reflect"

	"automapper/catalog"
	"automapper/options"
	"automapper/primitive"
)

// assign stores value into p of obj. nil stores the zero value. A value
// that cannot be adapted to the property type leaves it untouched.
func (c *call) assign(gc gapContext, p *catalog.Property, obj reflect.Value, value any) {
	field := p.Field(obj)
	if value == nil {
		field.Set(reflect.Zero(field.Type()))
		return
	}

	v, ok := adapt(reflect.ValueOf(value), field.Type(), c.m.cfg.Conversions)
	if !ok {
		c.rec.add(options.GapTypeMismatch, gc.gap("cannot assign %T to %s", value, field.Type()))
		return
	}

	field.Set(v)
}

// adapt turns v into a value assignable to t: pointers are taken or
// followed, scalars converted within the allowed categories, and slices,
// arrays and maps converted element by element.
func adapt(v reflect.Value, t reflect.Type, allowed primitive.CategoryEnum) (reflect.Value, bool) {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Zero(t), true
		}

		v = v.Elem()
	}

	if !v.IsValid() {
		return reflect.Zero(t), true
	}

	if v.Type().AssignableTo(t) {
		return v, true
	}

	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Zero(t), true
		}

		return adapt(v.Elem(), t, allowed)
	}

	if t.Kind() == reflect.Pointer {
		inner, ok := adapt(v, t.Elem(), allowed)
		if !ok {
			return reflect.Value{}, false
		}

		out := reflect.New(t.Elem())
		out.Elem().Set(inner)

		return out, true
	}

	if primitive.FromReflectType(v.Type()).IsScalar() && primitive.FromReflectType(t).IsScalar() {
		return primitive.Convert(v, t, allowed)
	}

	switch t.Kind() {
	case reflect.Slice:
		if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
			return reflect.Value{}, false
		}

		out := reflect.MakeSlice(t, v.Len(), v.Len())
		if !adaptElements(v, out, allowed) {
			return reflect.Value{}, false
		}

		return out, true
	case reflect.Array:
		if (v.Kind() != reflect.Slice && v.Kind() != reflect.Array) || v.Len() > t.Len() {
			return reflect.Value{}, false
		}

		out := reflect.New(t).Elem()
		if !adaptElements(v, out, allowed) {
			return reflect.Value{}, false
		}

		return out, true
	case reflect.Map:
		if v.Kind() != reflect.Map {
			return reflect.Value{}, false
		}

		out := reflect.MakeMapWithSize(t, v.Len())
		for it := v.MapRange(); it.Next(); {
			k, ok := adapt(it.Key(), t.Key(), allowed)
			if !ok {
				return reflect.Value{}, false
			}

			e, ok := adapt(it.Value(), t.Elem(), allowed)
			if !ok {
				return reflect.Value{}, false
			}

			out.SetMapIndex(k, e)
		}

		return out, true
	default:
		return reflect.Value{}, false
	}
}

func adaptElements(from, to reflect.Value, allowed primitive.CategoryEnum) bool {
	for i := range from.Len() {
		e, ok := adapt(from.Index(i), to.Type().Elem(), allowed)
		if !ok {
			return false
		}

		to.Index(i).Set(e)
	}

	return true
}
