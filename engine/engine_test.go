package engine_test

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automapper/catalog"
	"automapper/engine"
	"automapper/options"
	"automapper/resolvers/celresolver"
	"automapper/rules"
)

func TestMap_AbsentSource(t *testing.T) {
	m := newMapper(t, nil)

	dsts := map[string]any{
		"object":    &Dest{},
		"slice":     []int{},
		"map":       map[string]int{},
		"type name": catalog.TypeName("Dest"),
		"type":      reflect.TypeOf(Dest{}),
		"scalar":    0,
		"nil":       nil,
	}
	srcs := map[string]any{
		"nil":         nil,
		"nil pointer": (*Source)(nil),
		"nil slice":   []int(nil),
		"nil map":     map[string]int(nil),
	}

	for dn, dst := range dsts {
		for sn, src := range srcs {
			t.Run(dn+"/"+sn, func(t *testing.T) {
				out, err := m.Map(dst, src)
				require.NoError(t, err)
				assert.Nil(t, out)
			})
		}
	}
}

func TestMap_DirectRule(t *testing.T) {
	m := newMapper(t, func(b *rules.Builder) {
		require.NoError(t, b.Direct("Dest::FullName", "Source::Name"))
	})

	out, err := m.Map(&Dest{}, &Source{Name: "Ada"})
	require.NoError(t, err)

	d, ok := out.(*Dest)
	require.True(t, ok)
	assert.Equal(t, "Ada", d.FullName)
	assert.Equal(t, "Ada", d.Name)
}

func TestMap_ResolverRule(t *testing.T) {
	sum := rules.ResolverFunc(func(src any) (any, error) {
		s := src.(*Source)
		return s.Age + len(s.Tags), nil
	})
	m := newMapper(t, func(b *rules.Builder) {
		require.NoError(t, b.WithResolver("Dest::Total", sum))
	})

	src := sampleSource()
	want, err := sum.Resolve(src)
	require.NoError(t, err)

	out, err := m.Map(&Dest{}, src)
	require.NoError(t, err)
	assert.Equal(t, want, out.(*Dest).Total)
}

func TestMap_ExpressionResolverIntoInt(t *testing.T) {
	m := newMapper(t, func(b *rules.Builder) {
		require.NoError(t, b.WithResolver("Dest::Total", celresolver.MustNew("src.Age * 2")))
	})

	res, err := m.MapWithReport(&Dest{}, sampleSource())
	require.NoError(t, err)
	assert.Equal(t, 72, res.Value.(*Dest).Total)

	for _, g := range res.Gaps {
		assert.NotEqual(t, "type_mismatch", g.Code, g.String())
	}
}

type flatLabels struct {
	Labels string
}

type labelSet struct {
	Labels map[string]string
}

func TestMap_DeclaredArrayIntoMapFromScalar(t *testing.T) {
	m := newMapper(t, nil)

	res, err := m.MapWithReport(&labelSet{}, flatLabels{Labels: "vip"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{}, res.Value.(*labelSet).Labels)
	assert.Empty(t, res.Gaps)
}

func TestMap_ScalarArray(t *testing.T) {
	m := newMapper(t, nil)

	t.Run("map", func(t *testing.T) {
		src := map[string]int{"a": 1, "b": 2}

		out, err := m.Map([]any{}, src)
		require.NoError(t, err)
		assert.Equal(t, src, out)

		out.(map[string]int)["c"] = 3
		assert.Len(t, src, 2)
	})

	t.Run("slice", func(t *testing.T) {
		src := []string{"x", "y", "z"}

		out, err := m.Map([]string{}, src)
		require.NoError(t, err)
		assert.Equal(t, src, out)

		out.([]string)[0] = "changed"
		assert.Equal(t, "x", src[0])
	})

	t.Run("array", func(t *testing.T) {
		src := [3]int{3, 1, 2}

		out, err := m.Map([]int{}, src)
		require.NoError(t, err)
		assert.Equal(t, src, out)
	})

	t.Run("not an array", func(t *testing.T) {
		out, err := m.Map([]int{}, 42)
		require.NoError(t, err)
		assert.Equal(t, []any{}, out)
	})
}

func TestMap_IdentityPassthrough(t *testing.T) {
	m := newMapper(t, nil)
	src := sampleSource()

	out, err := m.Map(&Source{}, src)
	require.NoError(t, err)
	assert.Same(t, src, out)

	byValue, err := m.Map(&Source{}, *src)
	require.NoError(t, err)
	assert.Equal(t, *src, byValue)
}

func TestMap_UntouchedWithoutSource(t *testing.T) {
	m := newMapper(t, nil)

	out, err := m.Map(&Dest{Extra: "keep", FullName: "default"}, sampleSource())
	require.NoError(t, err)

	d := out.(*Dest)
	assert.Equal(t, "keep", d.Extra)
	assert.Equal(t, "default", d.FullName)
}

func TestMap_RulePrecedence(t *testing.T) {
	m := newMapper(t, func(b *rules.Builder) {
		require.NoError(t, b.Direct("Dest::Name", "Source::Email"))
	})

	out, err := m.Map(&Dest{}, sampleSource())
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", out.(*Dest).Name)
}

func TestMap_Converter(t *testing.T) {
	m := newMapper(t, func(b *rules.Builder) {
		b.ForMember("Dest::Email").FromMember("Source::Email").Using(upper)
	})

	out, err := m.Map(&Dest{}, sampleSource())
	require.NoError(t, err)
	assert.Equal(t, "ADA@EXAMPLE.COM", out.(*Dest).Email)
}

func TestMap_Convention(t *testing.T) {
	m := newMapper(t, nil)
	src := sampleSource()

	out, err := m.Map(&Dest{}, src)
	require.NoError(t, err)

	d := out.(*Dest)
	assert.Equal(t, "Ada", d.Name)
	assert.Equal(t, int64(36), d.Age)
	assert.Equal(t, src.Tags, d.Tags)
	assert.Equal(t, *src.Home, d.Home)
	assert.Equal(t, src.Homes, d.Homes)
	assert.Zero(t, d.Total)

	d.Tags[0] = "changed"
	assert.Equal(t, "math", src.Tags[0])
}

func TestMap_ObjectArrayPreservesOrder(t *testing.T) {
	for _, workers := range []int{1, 2, 8} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			m := newMapper(t, nil, engine.WithConcurrency(workers))
			src := sampleSource()

			out, err := m.Map(&Dest{}, src)
			require.NoError(t, err)

			d := out.(*Dest)
			require.Len(t, d.Homes, len(src.Homes))
			for i := range src.Homes {
				assert.Equal(t, src.Homes[i].City, d.Homes[i].City)
			}
		})
	}
}

func TestMap_ParallelMatchesSequential(t *testing.T) {
	src := &Source{}
	for i := range 100 {
		src.Homes = append(src.Homes, Address{City: string(rune('a' + i%26))})
	}

	seq, err := newMapper(t, nil).Map(&Dest{}, src)
	require.NoError(t, err)

	par, err := newMapper(t, nil, engine.WithConcurrency(16)).Map(&Dest{}, src)
	require.NoError(t, err)

	assert.Equal(t, seq, par)
}

func TestMap_PropertyHandle(t *testing.T) {
	m := newMapper(t, nil)

	desc, ok := m.Catalog().Lookup("Dest")
	require.True(t, ok)

	homes, ok := desc.Property("Homes")
	require.True(t, ok)

	out, err := m.Map(homes, []Address{{City: "a"}, {City: "b"}})
	require.NoError(t, err)
	assert.Equal(t, []any{Address{City: "a"}, Address{City: "b"}}, out)

	out, err = m.Map(homes, "not a list")
	require.NoError(t, err)
	assert.Equal(t, []any{}, out)

	name, ok := desc.Property("Name")
	require.True(t, ok)

	out, err = m.Map(name, "Ada")
	require.NoError(t, err)
	assert.Equal(t, "Ada", out)

	out, err = m.Map(name, []int{1})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestMap_TypeReferences(t *testing.T) {
	m := newMapper(t, nil)

	for name, dst := range map[string]any{
		"type name":   catalog.TypeName("Dest"),
		"type":        reflect.TypeOf(Dest{}),
		"nil pointer": (*Dest)(nil),
		"value":       Dest{},
	} {
		t.Run(name, func(t *testing.T) {
			out, err := m.Map(dst, &Source{Name: "Ada"})
			require.NoError(t, err)

			d, ok := out.(*Dest)
			require.True(t, ok)
			assert.Equal(t, "Ada", d.Name)
		})
	}
}

func TestMap_ScalarFallback(t *testing.T) {
	m := newMapper(t, nil)

	tests := []struct {
		name string
		dst  any
		src  any
		want any
	}{
		{name: "scalar to scalar", dst: 0, src: "x", want: "x"},
		{name: "object to scalar", dst: 0, src: &Source{}, want: nil},
		{name: "unknown type name", dst: catalog.TypeName("Unknown"), src: 42, want: 42},
		{name: "nil destination", dst: nil, src: true, want: true},
		{name: "object to nil destination", dst: nil, src: Source{}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := m.Map(tt.dst, tt.src)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestMap_NonObjectSource(t *testing.T) {
	m := newMapper(t, nil)

	out, err := m.Map(&Dest{}, "Ada")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestMap_CollaboratorErrorsPassThrough(t *testing.T) {
	failing := rules.ConverterFunc(func(any) (any, error) { return nil, errBoom })
	failingResolver := rules.ResolverFunc(func(any) (any, error) { return nil, errBoom })

	t.Run("converter", func(t *testing.T) {
		m := newMapper(t, func(b *rules.Builder) {
			require.NoError(t, b.WithConverter("Dest::Name", "Source::Name", failing))
		})

		out, err := m.Map(&Dest{}, sampleSource())
		assert.Same(t, errBoom, err)
		assert.Nil(t, out)
	})

	t.Run("resolver", func(t *testing.T) {
		m := newMapper(t, func(b *rules.Builder) {
			require.NoError(t, b.WithResolver("Dest::Total", failingResolver))
		})

		_, err := m.Map(&Dest{}, sampleSource())
		assert.Same(t, errBoom, err)
	})

	t.Run("nested in parallel array", func(t *testing.T) {
		m := newMapper(t, func(b *rules.Builder) {
			require.NoError(t, b.WithResolver("Place::Street", failingResolver))
		}, engine.WithConcurrency(4))

		_, err := m.Map(&Itinerary{}, &Trip{Stops: sampleSource().Homes})
		assert.Same(t, errBoom, err)
	})
}

func TestMap_SourceOwnerMismatch(t *testing.T) {
	constant := rules.ResolverFunc(func(any) (any, error) { return 7, nil })

	t.Run("untouched without resolver", func(t *testing.T) {
		m := newMapper(t, func(b *rules.Builder) {
			require.NoError(t, b.Direct("Dest::Total", "Other::Total"))
		})

		out, err := m.Map(&Dest{Total: 1}, sampleSource())
		require.NoError(t, err)
		assert.Equal(t, 1, out.(*Dest).Total)
	})

	t.Run("resolver fallback", func(t *testing.T) {
		m := newMapper(t, func(b *rules.Builder) {
			b.ForMember("Dest::Total").FromMember("Other::Total").ResolveUsing(constant)
		})

		out, err := m.Map(&Dest{}, sampleSource())
		require.NoError(t, err)
		assert.Equal(t, 7, out.(*Dest).Total)
	})

	t.Run("source wins when owner matches", func(t *testing.T) {
		m := newMapper(t, func(b *rules.Builder) {
			b.ForMember("Dest::Total").FromMember("Source::Age").ResolveUsing(constant)
		})

		out, err := m.Map(&Dest{}, sampleSource())
		require.NoError(t, err)
		assert.Equal(t, 36, out.(*Dest).Total)
	})
}

func TestTo(t *testing.T) {
	m := newMapper(t, nil)

	d, err := engine.To[Dest](m, sampleSource())
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "Ada", d.Name)

	src := sampleSource()
	same, err := engine.To[Source](m, src)
	require.NoError(t, err)
	assert.Same(t, src, same)

	byValue, err := engine.To[Source](m, *src)
	require.NoError(t, err)
	assert.Equal(t, src, byValue)

	none, err := engine.To[Dest](m, nil)
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestMap_ObjectArrayIntoOtherType(t *testing.T) {
	m := newMapper(t, nil, engine.WithConcurrency(3))
	trip := &Trip{Stops: sampleSource().Homes}

	out, err := m.Map(&Itinerary{}, trip)
	require.NoError(t, err)

	stops := out.(*Itinerary).Stops
	require.Len(t, stops, len(trip.Stops))
	for i, stop := range stops {
		assert.Equal(t, trip.Stops[i].City, stop.City)
	}
}

func TestNew(t *testing.T) {
	m, err := engine.New(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, options.Default(), m.Config())

	_, err = engine.New(nil, nil, engine.WithMaxDepth(0))
	require.ErrorIs(t, err, options.ErrInvalidConfig)

	_, err = engine.New(nil, nil, engine.WithConcurrency(0))
	require.ErrorIs(t, err, options.ErrInvalidConfig)

	assert.Panics(t, func() { engine.MustNew(nil, nil, engine.WithMaxDepth(-1)) })
}

func TestMap_WithoutRegistrations(t *testing.T) {
	m, err := engine.New(nil, nil)
	require.NoError(t, err)

	out, err := m.Map(&Dest{}, sampleSource())
	require.NoError(t, err)

	d := out.(*Dest)
	assert.Equal(t, "Ada", d.Name)
	assert.Len(t, d.Homes, 3)
}
