package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automapper/engine"
)

func chain(names ...string) *Node {
	var head *Node
	for i := len(names) - 1; i >= 0; i-- {
		head = &Node{Name: names[i], Next: head}
	}

	return head
}

func TestMap_Chain(t *testing.T) {
	m := newMapper(t, nil)

	out, err := m.Map(&NodeView{}, chain("a", "b", "c"))
	require.NoError(t, err)

	v := out.(*NodeView)
	assert.Equal(t, "a", v.Name)
	require.NotNil(t, v.Next)
	assert.Equal(t, "b", v.Next.Name)
	require.NotNil(t, v.Next.Next)
	assert.Equal(t, "c", v.Next.Next.Name)
	assert.Nil(t, v.Next.Next.Next)
}

func TestMap_CyclicGraph(t *testing.T) {
	m := newMapper(t, nil)

	self := &Node{Name: "self"}
	self.Next = self

	_, err := m.Map(&NodeView{}, self)
	require.ErrorIs(t, err, engine.ErrCyclicGraph)

	ring := chain("a", "b", "c")
	ring.Next.Next.Next = ring

	_, err = m.Map(&NodeView{}, ring)
	require.ErrorIs(t, err, engine.ErrCyclicGraph)
}

func TestMap_SameTypeCycleIsPassedThrough(t *testing.T) {
	m := newMapper(t, nil)

	self := &Node{Name: "self"}
	self.Next = self

	out, err := m.Map(&Node{}, self)
	require.NoError(t, err)
	assert.Same(t, self, out)
}

func TestMap_MaxDepth(t *testing.T) {
	src := chain("1", "2", "3", "4", "5")

	_, err := newMapper(t, nil, engine.WithMaxDepth(3)).Map(&NodeView{}, src)
	require.ErrorIs(t, err, engine.ErrMaxDepth)

	out, err := newMapper(t, nil, engine.WithMaxDepth(5)).Map(&NodeView{}, src)
	require.NoError(t, err)
	assert.Equal(t, "5", out.(*NodeView).Next.Next.Next.Next.Name)
}
