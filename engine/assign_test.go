package engine

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automapper/primitive"
)

type status string

type point struct{ X, Y int }

func TestAdapt(t *testing.T) {
	five := 5

	tests := []struct {
		name  string
		value any
		to    reflect.Type
		want  any
		ok    bool
	}{
		{name: "assignable", value: "a", to: reflect.TypeOf(""), want: "a", ok: true},
		{name: "widening", value: int32(7), to: reflect.TypeOf(int64(0)), want: int64(7), ok: true},
		{name: "narrowing", value: int64(7), to: reflect.TypeOf(int8(0)), ok: false},
		{name: "named string", value: "open", to: reflect.TypeOf(status("")), want: status("open"), ok: true},
		{name: "string to int", value: "7", to: reflect.TypeOf(0), ok: false},
		{name: "pointer to value", value: &five, to: reflect.TypeOf(0), want: 5, ok: true},
		{name: "value to pointer", value: point{X: 1}, to: reflect.TypeOf(&point{}), want: &point{X: 1}, ok: true},
		{name: "nil pointer", value: (*point)(nil), to: reflect.TypeOf(point{}), want: point{}, ok: true},
		{name: "any slice", value: []any{1, 2}, to: reflect.TypeOf([]int64{}), want: []int64{1, 2}, ok: true},
		{name: "bad element", value: []any{1, "x"}, to: reflect.TypeOf([]int{}), ok: false},
		{name: "slice to array", value: []int{1, 2}, to: reflect.TypeOf([3]int{}), want: [3]int{1, 2, 0}, ok: true},
		{name: "slice too long", value: []int{1, 2, 3, 4}, to: reflect.TypeOf([3]int{}), ok: false},
		{name: "map", value: map[string]int8{"a": 1}, to: reflect.TypeOf(map[string]int{}), want: map[string]int{"a": 1}, ok: true},
		{name: "map from slice", value: []int{1}, to: reflect.TypeOf(map[string]int{}), ok: false},
		{name: "struct mismatch", value: point{}, to: reflect.TypeOf(""), ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := adapt(reflect.ValueOf(tt.value), tt.to, primitive.CategorySafeNumber)
			require.Equal(t, tt.ok, ok)

			if tt.ok {
				assert.Equal(t, tt.want, got.Interface())
			}
		})
	}
}

func TestAdapt_AllConversions(t *testing.T) {
	_, ok := adapt(reflect.ValueOf(int64(300)), reflect.TypeOf(int8(0)), primitive.CategoryAll)
	assert.True(t, ok)

	_, ok = adapt(reflect.ValueOf(int64(300)), reflect.TypeOf(int8(0)), primitive.CategoryNone)
	assert.False(t, ok)
}

func TestCopyCollection(t *testing.T) {
	src := []int{1, 2}
	out := copyCollection(src, reflect.TypeOf([]int{})).([]int)
	out[0] = 9
	assert.Equal(t, 1, src[0])

	assert.Equal(t, []any{}, copyCollection("x", reflect.TypeOf([]int{})))
	assert.Equal(t, []any{}, copyCollection(nil, nil))

	labels := reflect.TypeOf(map[string]string{})
	assert.Equal(t, map[string]string{}, copyCollection("x", labels))
	assert.Equal(t, map[string]string{}, copyCollection(nil, reflect.PointerTo(labels)))
}

func TestIsAbsent(t *testing.T) {
	var nilMap map[string]int

	assert.True(t, isAbsent(nil))
	assert.True(t, isAbsent((*point)(nil)))
	assert.True(t, isAbsent(nilMap))
	assert.True(t, isAbsent([]int(nil)))
	assert.False(t, isAbsent(0))
	assert.False(t, isAbsent(""))
	assert.False(t, isAbsent([]int{}))
	assert.False(t, isAbsent(point{}))
}
