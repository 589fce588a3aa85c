package engine

import (
	"reflect"

	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"

	"automapper/catalog"
	"automapper/options"
	"automapper/primitive"
	"automapper/rules"
)

// call is the state of one Map invocation.
type call struct {
	m   *Mapper
	rec *recorder
}

// mapValue is the dispatcher behind Map.
func (c *call) mapValue(f *frame, gc *gapContext, dst, src any) (any, error) {
	if isAbsent(src) {
		return nil, nil
	}

	switch d := dst.(type) {
	case *catalog.Property:
		if d == nil {
			return scalarOrNil(src), nil
		}

		return c.mapProperty(f, gapContext{prop: d}, d, src)
	case reflect.Type:
		if desc, err := c.m.catalog.Describe(d); err == nil {
			return c.mapObject(f, gc, desc.New(), src)
		}

		if isCollection(d.Kind()) {
			return copyCollection(src, d), nil
		}

		return scalarOrNil(src), nil
	case catalog.TypeName:
		if desc, ok := c.m.catalog.Lookup(string(d)); ok {
			return c.mapObject(f, gc, desc.New(), src)
		}

		return scalarOrNil(src), nil
	}

	dv := reflect.ValueOf(dst)
	switch {
	case !dv.IsValid():
	case dv.Kind() == reflect.Pointer && dv.Type().Elem().Kind() == reflect.Struct:
		if dv.IsNil() {
			dv = reflect.New(dv.Type().Elem())
		}

		return c.mapObject(f, gc, dv, src)
	case dv.Kind() == reflect.Struct:
		cp := reflect.New(dv.Type())
		cp.Elem().Set(dv)

		return c.mapObject(f, gc, cp, src)
	case isCollection(dv.Kind()):
		return copyCollection(src, dv.Type()), nil
	}

	return scalarOrNil(src), nil
}

// mapObject fills the struct dst points at from src.
func (c *call) mapObject(f *frame, gc *gapContext, dst reflect.Value, src any) (any, error) {
	if isAbsent(src) {
		return nil, nil
	}

	dstDesc, err := c.m.catalog.Describe(dst.Type())
	if err != nil {
		return nil, err
	}

	sv := indirect(reflect.ValueOf(src))
	if sv.Kind() != reflect.Struct {
		if gc != nil {
			c.rec.add(options.GapNonObjectSource, gc.gap("%s expected, got %T", dstDesc.Name, src))
		} else {
			c.rec.add(options.GapNonObjectSource, Gap{
				Pair:    pairName(reflect.TypeOf(src).String(), dstDesc.Name),
				Message: "object source expected, got " + reflect.TypeOf(src).String(),
			})
		}

		return nil, nil
	}

	if sv.Type() == dst.Type().Elem() {
		return src, nil
	}

	next, err := c.enter(f, reflect.ValueOf(src))
	if err != nil {
		return nil, err
	}

	srcDesc, err := c.m.catalog.Describe(sv.Type())
	if err != nil {
		return nil, err
	}

	obj := dst.Elem()
	pair := pairName(srcDesc.Name, dstDesc.Name)
	for _, p := range dstDesc.Properties() {
		pc := gapContext{pair: pair, prop: p}
		if err := c.mapMember(next, pc, p, obj, srcDesc, sv, src); err != nil {
			return nil, err
		}
	}

	return dst.Interface(), nil
}

// mapMember fills one destination property: rule first, then the
// same-named source property.
func (c *call) mapMember(
	f *frame,
	gc gapContext,
	p *catalog.Property,
	obj reflect.Value,
	srcDesc *catalog.Descriptor,
	sv reflect.Value,
	src any,
) error {
	rule, ok := c.m.rules.Lookup(p.Ref)
	if !ok {
		sp, found := srcDesc.Property(p.Name)
		if !found {
			g := gc.gap("no rule and no source property %q", p.Name)
			g.Suggestions = suggest(p.Name, srcDesc.PropertyNames())
			c.rec.add(options.GapMissingSource, g)

			return nil
		}

		out, err := c.mapProperty(f, gc, p, sp.Get(sv).Interface())
		if err != nil {
			return err
		}

		c.assign(gc, p, obj, out)

		return nil
	}

	switch {
	case rule.From != nil && rule.AppliesTo(srcDesc.Name):
		return c.applySource(f, gc, rule, p, obj, srcDesc, sv)
	case rule.Resolver != nil:
		out, err := rule.Resolver.Resolve(src)
		if err != nil {
			return err
		}

		c.m.logger.Debug("resolver applied", slog.String("property", p.Ref.String()))
		c.assign(gc, p, obj, out)
	case rule.From != nil:
		c.rec.add(options.GapSourceTypeMismatch, gc.gap("rule reads %s, source is %s", rule.From, srcDesc.Name))
	default:
		c.rec.add(options.GapRuleWithoutSource, gc.gap("rule %s has no source", rule))
	}

	return nil
}

func (c *call) applySource(
	f *frame,
	gc gapContext,
	rule *rules.Rule,
	p *catalog.Property,
	obj reflect.Value,
	srcDesc *catalog.Descriptor,
	sv reflect.Value,
) error {
	sp, ok := srcDesc.Property(rule.From.Name)
	if !ok {
		g := gc.gap("source property %s not found", rule.From)
		g.Suggestions = suggest(rule.From.Name, srcDesc.PropertyNames())
		c.rec.add(options.GapMissingSource, g)

		return nil
	}

	raw := sp.Get(sv).Interface()
	if rule.Converter != nil {
		out, err := rule.Converter.Convert(raw)
		if err != nil {
			return err
		}

		c.m.logger.Debug("converter applied", slog.String("property", p.Ref.String()))
		c.assign(gc, p, obj, out)

		return nil
	}

	out, err := c.mapProperty(f, gc, p, raw)
	if err != nil {
		return err
	}

	c.assign(gc, p, obj, out)

	return nil
}

// mapProperty maps value into the declared type of p.
func (c *call) mapProperty(f *frame, gc gapContext, p *catalog.Property, value any) (any, error) {
	name, ok := c.m.meta.DeclaredType(p)
	if !ok || name == "" {
		c.rec.add(options.GapUnresolvedType, gc.gap("%s has no declared type", p.Ref))
		return nil, nil
	}

	if desc, found := c.m.catalog.Lookup(name); found {
		return c.mapObject(f, &gc, desc.New(), value)
	}

	if primitive.IsArrayTypeName(name) {
		return copyCollection(value, p.Type), nil
	}

	if primitive.IsScalarTypeName(name) {
		return scalarOrNil(value), nil
	}

	if elem, isList := primitive.ElementTypeName(name); isList {
		if desc, found := c.m.catalog.Lookup(elem); found {
			return c.mapObjectArray(f, gc, desc, value)
		}

		if primitive.IsScalarTypeName(elem) {
			return copyCollection(value, p.Type), nil
		}
	}

	c.rec.add(options.GapUnresolvedType, gc.gap("declared type %q of %s is unknown", name, p.Ref))

	return nil, nil
}

// mapObjectArray maps each element of value into a fresh desc instance.
// The result keeps the element order.
func (c *call) mapObjectArray(f *frame, gc gapContext, desc *catalog.Descriptor, value any) (any, error) {
	v := reflect.ValueOf(value)
	if !v.IsValid() || (v.Kind() != reflect.Slice && v.Kind() != reflect.Array) {
		return []any{}, nil
	}

	next, err := c.enter(f, v)
	if err != nil {
		return nil, err
	}

	out := make([]any, v.Len())
	one := func(i int) error {
		r, err := c.mapValue(next, &gc, desc.New().Interface(), v.Index(i).Interface())
		if err != nil {
			return err
		}

		out[i] = r

		return nil
	}

	if workers := c.m.cfg.Concurrency; workers > 1 && len(out) > 1 {
		var g errgroup.Group
		g.SetLimit(workers)

		for i := range out {
			g.Go(func() error { return one(i) })
		}

		if err := g.Wait(); err != nil {
			return nil, err
		}

		return out, nil
	}

	for i := range out {
		if err := one(i); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// copyCollection returns a shallow copy of a slice, array or map. Any
// other value yields an empty container: a map of type want when want is a
// map, else an empty []any.
func copyCollection(value any, want reflect.Type) any {
	v := reflect.ValueOf(value)
	if !v.IsValid() {
		return emptyCollection(want)
	}

	switch v.Kind() {
	case reflect.Slice:
		out := reflect.MakeSlice(v.Type(), v.Len(), v.Len())
		reflect.Copy(out, v)

		return out.Interface()
	case reflect.Array:
		out := reflect.New(v.Type()).Elem()
		out.Set(v)

		return out.Interface()
	case reflect.Map:
		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		for it := v.MapRange(); it.Next(); {
			out.SetMapIndex(it.Key(), it.Value())
		}

		return out.Interface()
	default:
		return emptyCollection(want)
	}
}

func emptyCollection(want reflect.Type) any {
	for want != nil && want.Kind() == reflect.Pointer {
		want = want.Elem()
	}

	if want != nil && want.Kind() == reflect.Map {
		return reflect.MakeMap(want).Interface()
	}

	return []any{}
}

func scalarOrNil(v any) any {
	if primitive.IsScalarValue(v) {
		return v
	}

	return nil
}

func isAbsent(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

func isCollection(k reflect.Kind) bool {
	return k == reflect.Slice || k == reflect.Array || k == reflect.Map
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}

		v = v.Elem()
	}

	return v
}
