package tests

import (
	"testing"
	"time"

	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

// NewExecutor returns executor over a fresh single-node chain. The committee
// is used as the default sender.
func NewExecutor(t testing.TB) *neotest.Executor {
	bc, acc := chain.NewSingle(t)
	return neotest.NewExecutor(t, bc, acc, acc)
}

// SkipTime adds an empty block with timestamp shifted by d from the top
// block. Invocations following it are done with one more millisecond.
func SkipTime(t testing.TB, e *neotest.Executor, d time.Duration) {
	b := e.NewUnsignedBlock(t)
	b.Timestamp = e.TopBlock(t).Timestamp + uint64(d/time.Millisecond)
	require.NoError(t, e.Chain.AddBlock(e.SignBlock(b)))
}

// IteratorToArray reads all items of the iterator returned by the test
// invocation.
func IteratorToArray(iter *storage.Iterator) []stackitem.Item {
	stackItems := make([]stackitem.Item, 0)
	for iter.Next() {
		stackItems = append(stackItems, iter.Value())
	}
	return stackItems
}

// CallIterator invokes method without state changes and returns all items
// of the resulting iterator.
func CallIterator(t testing.TB, c *neotest.ContractInvoker, method string, args ...any) []stackitem.Item {
	s, err := c.TestInvoke(t, method, args...)
	require.NoError(t, err)

	iter, ok := s.Pop().Interop().Value().(*storage.Iterator)
	require.True(t, ok)

	return IteratorToArray(iter)
}
