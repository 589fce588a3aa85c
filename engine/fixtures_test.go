package engine_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"automapper/catalog"
	"automapper/engine"
	"automapper/rules"
)

type Address struct {
	Street string
	City   string
}

type Source struct {
	Name  string
	Email string
	Age   int
	Tags  []string
	Home  *Address
	Homes []Address
}

type Dest struct {
	FullName string
	Name     string
	Email    string
	Total    int
	Age      int64
	Tags     []string
	Home     Address
	Homes    []Address
	Extra    string
}

type Place struct {
	Street string
	City   string
}

type Itinerary struct {
	Stops []Place `automap:"Place[]"`
}

type Trip struct {
	Stops []Address
}

type Node struct {
	Name string
	Next *Node
}

type NodeView struct {
	Name string
	Next *NodeView
}

var errBoom = errors.New("boom")

var upper = rules.ConverterFunc(func(v any) (any, error) {
	return strings.ToUpper(v.(string)), nil
})

func newCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	cat := catalog.New()
	require.NoError(t, cat.Register("Address", Address{}))
	require.NoError(t, cat.Register("Source", Source{}))
	require.NoError(t, cat.Register("Dest", Dest{}))
	require.NoError(t, cat.Register("Place", Place{}))
	require.NoError(t, cat.Register("Itinerary", Itinerary{}))
	require.NoError(t, cat.Register("Trip", Trip{}))
	require.NoError(t, cat.Register("Node", Node{}))
	require.NoError(t, cat.Register("NodeView", NodeView{}))

	return cat
}

func newMapper(t *testing.T, configure func(b *rules.Builder), opts ...engine.Option) *engine.Mapper {
	t.Helper()

	b := rules.NewBuilder()
	if configure != nil {
		configure(b)
	}

	reg, err := b.Build()
	require.NoError(t, err)

	m, err := engine.New(reg, newCatalog(t), opts...)
	require.NoError(t, err)

	return m
}

func sampleSource() *Source {
	return &Source{
		Name:  "Ada",
		Email: "ada@example.com",
		Age:   36,
		Tags:  []string{"math", "engines"},
		Home:  &Address{Street: "St James's Square", City: "London"},
		Homes: []Address{
			{City: "London"},
			{City: "Marylebone"},
			{City: "Ockham"},
		},
	}
}
