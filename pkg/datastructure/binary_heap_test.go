package datastructure

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestMinHeapExtractsInAscendingOrder(t *testing.T) {
	h := NewMinHeap[string]()
	r := rand.New(rand.NewSource(31))

	for i := 0; i < 500; i++ {
		h.Insert(NewPriorityQueueNode(r.Float64()*1000, "item"))
	}
	require.Equal(t, 500, h.Size())

	prev := -1.0
	for h.Size() > 0 {
		node, err := h.ExtractMin()
		require.NoError(t, err)
		require.GreaterOrEqual(t, node.GetRank(), prev)
		prev = node.GetRank()
	}

	_, err := h.ExtractMin()
	require.Error(t, err)
}

func TestMinHeapAllowsDuplicateItems(t *testing.T) {
	h := NewMinHeap[string]()
	h.Insert(NewPriorityQueueNode(2.0, "same"))
	h.Insert(NewPriorityQueueNode(1.0, "same"))

	node, err := h.GetMin()
	require.NoError(t, err)
	require.Equal(t, 1.0, node.GetRank())
	require.Equal(t, "same", node.GetItem())
	require.Equal(t, 2, h.Size())
}

func TestMinHeapClear(t *testing.T) {
	h := NewMinHeap[int]()
	h.Insert(NewPriorityQueueNode(1.0, 1))
	h.Clear()
	require.Equal(t, 0, h.Size())
}
