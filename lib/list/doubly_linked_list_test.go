package list

import (
	"container/list"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func doublyValues[T any](t *testing.T, l DoublyLinkedList[T]) []T {
	return lo.Map(lo.Range(int(l.Len())), func(_ int, idx int) T {
		n, err := l.Get(int64(idx))
		require.NoError(t, err)
		return n.Value()
	})
}

// requireDoublyInvariants checks the length, both ends and the
// next/prev symmetry by walking forward and backward.
func requireDoublyInvariants[T any](t *testing.T, l DoublyLinkedList[T]) {
	dl := l.(*doublyLinkedList[T])
	if dl.len == 0 {
		require.Nil(t, dl.first)
		require.Nil(t, dl.last)
		require.True(t, dl.IsEmpty())
		return
	}
	require.False(t, dl.IsEmpty())
	require.Nil(t, dl.first.prev)
	require.Nil(t, dl.last.next)

	var (
		prev  *DoublyNode[T]
		count int64
	)
	for n := dl.first; n != nil; n = n.next {
		require.True(t, n.prev == prev, "broken prev link at %d", count)
		prev = n
		count++
		require.LessOrEqual(t, count, dl.len, "cycle or stale length")
	}
	require.Equal(t, dl.len, count)
	require.True(t, prev == dl.last)

	count = 0
	for n := dl.last; n != nil; n = n.prev {
		count++
		require.LessOrEqual(t, count, dl.len, "cycle or stale length")
	}
	require.Equal(t, dl.len, count)
}

func requireDetached[T any](t *testing.T, n *DoublyNode[T]) {
	require.NotNil(t, n)
	require.Nil(t, n.prev)
	require.Nil(t, n.next)
}

func newDoublyLinkedListOf(values ...int) DoublyLinkedList[int] {
	l := NewDoublyLinkedList[int]()
	for _, v := range values {
		l.Add(v)
	}
	return l
}

func TestDoublyLinkedList_Scenario(t *testing.T) {
	l := newDoublyLinkedListOf(1, 2, 3, 4, 5)
	require.Equal(t, int64(5), l.Len())
	require.Equal(t, []int{1, 2, 3, 4, 5}, doublyValues(t, l))

	t.Log("insert 999 at head")
	_, err := l.Insert(999, 0)
	require.NoError(t, err)
	require.Equal(t, int64(6), l.Len())
	require.Equal(t, []int{999, 1, 2, 3, 4, 5}, doublyValues(t, l))

	t.Log("swap 5 and 2")
	require.NoError(t, l.Swap(5, 2))
	require.Equal(t, []int{999, 1, 5, 3, 4, 2}, doublyValues(t, l))
	last, err := l.GetLast()
	require.NoError(t, err)
	require.Equal(t, 2, last.Value())
	requireDoublyInvariants(t, l)
}

func TestDoublyLinkedList_Add(t *testing.T) {
	l := NewDoublyLinkedList[int]()
	l2 := list.New()
	require.True(t, l.IsEmpty())

	for i := 0; i < 16; i++ {
		n := l.Add(i)
		e := l2.PushBack(i)
		require.Equal(t, e.Value, n.Value())
		last, err := l.GetLast()
		require.NoError(t, err)
		require.Same(t, n, last)
		requireDoublyInvariants(t, l)
	}
	require.Equal(t, int64(l2.Len()), l.Len())

	dlistItr, err := l.GetFirst()
	require.NoError(t, err)
	for e := l2.Front(); e != nil; e = e.Next() {
		require.Equal(t, e.Value, dlistItr.Value())
		dlistItr = dlistItr.next
	}
	require.Nil(t, dlistItr)
}

func TestDoublyLinkedList_Insert(t *testing.T) {
	testcases := []struct {
		name     string
		init     []int
		value    int
		index    int64
		expected []int
		err      error
	}{
		{"empty head", nil, 1, 0, []int{1}, nil},
		{"head", []int{1, 2, 3}, 0, 0, []int{0, 1, 2, 3}, nil},
		{"after head", []int{1, 2, 3}, 9, 1, []int{1, 9, 2, 3}, nil},
		{"before last", []int{1, 2, 3}, 9, 2, []int{1, 2, 9, 3}, nil},
		{"tail", []int{1, 2, 3}, 4, 3, []int{1, 2, 3, 4}, nil},
		{"upper half", []int{1, 2, 3, 4, 5, 6}, 9, 5, []int{1, 2, 3, 4, 5, 9, 6}, nil},
		{"negative", []int{1, 2, 3}, 9, -1, []int{1, 2, 3}, ErrOutOfRange},
		{"beyond tail", []int{1, 2, 3}, 9, 4, []int{1, 2, 3}, ErrOutOfRange},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			l := newDoublyLinkedListOf(tc.init...)
			n, err := l.Insert(tc.value, tc.index)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				require.Nil(t, n)
			} else {
				require.NoError(t, err)
				require.Equal(t, tc.value, n.Value())
				got, err := l.Get(tc.index)
				require.NoError(t, err)
				require.Same(t, n, got)
			}
			require.Equal(t, tc.expected, doublyValues(t, l))
			requireDoublyInvariants(t, l)
		})
	}
}

func TestDoublyLinkedList_GetFromBothEnds(t *testing.T) {
	values := lo.Range(9)
	l := newDoublyLinkedListOf(values...)
	for _, idx := range values {
		n, err := l.Get(int64(idx))
		require.NoError(t, err)
		require.Equal(t, idx, n.Value())
	}

	first, err := l.GetFirst()
	require.NoError(t, err)
	n, err := l.Get(0)
	require.NoError(t, err)
	require.Same(t, first, n)

	last, err := l.GetLast()
	require.NoError(t, err)
	n, err = l.Get(l.Len() - 1)
	require.NoError(t, err)
	require.Same(t, last, n)

	for _, idx := range []int64{-1, 9} {
		n, err = l.Get(idx)
		require.ErrorIs(t, err, ErrOutOfRange)
		require.Nil(t, n)
	}
}

func TestDoublyLinkedList_RemoveFirstAndLast(t *testing.T) {
	l := newDoublyLinkedListOf(1, 2, 3, 4)

	n, err := l.RemoveFirst()
	require.NoError(t, err)
	require.Equal(t, 1, n.Value())
	requireDetached(t, n)
	require.Equal(t, []int{2, 3, 4}, doublyValues(t, l))
	requireDoublyInvariants(t, l)

	n, err = l.RemoveLast()
	require.NoError(t, err)
	require.Equal(t, 4, n.Value())
	requireDetached(t, n)
	require.Equal(t, []int{2, 3}, doublyValues(t, l))
	requireDoublyInvariants(t, l)

	n, err = l.RemoveFirst()
	require.NoError(t, err)
	require.Equal(t, 2, n.Value())

	t.Log("remove the only one")
	n, err = l.RemoveLast()
	require.NoError(t, err)
	require.Equal(t, 3, n.Value())
	requireDetached(t, n)
	requireDoublyInvariants(t, l)

	l.Add(5)
	n, err = l.RemoveFirst()
	require.NoError(t, err)
	require.Equal(t, 5, n.Value())
	requireDoublyInvariants(t, l)
}

func TestDoublyLinkedList_Remove(t *testing.T) {
	testcases := []struct {
		name     string
		index    int64
		removed  int
		expected []int
	}{
		{"head", 0, 1, []int{2, 3, 4, 5}},
		{"lower half", 1, 2, []int{1, 3, 4, 5}},
		{"middle", 2, 3, []int{1, 2, 4, 5}},
		{"upper half", 3, 4, []int{1, 2, 3, 5}},
		{"tail", 4, 5, []int{1, 2, 3, 4}},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			l := newDoublyLinkedListOf(1, 2, 3, 4, 5)
			n, err := l.Remove(tc.index)
			require.NoError(t, err)
			require.Equal(t, tc.removed, n.Value())
			requireDetached(t, n)
			require.Equal(t, int64(4), l.Len())
			require.Equal(t, tc.expected, doublyValues(t, l))
			requireDoublyInvariants(t, l)
		})
	}
}

func TestDoublyLinkedList_FailedCallsLeaveListUnchanged(t *testing.T) {
	empty := NewDoublyLinkedList[string]()
	_, err := empty.GetFirst()
	require.ErrorIs(t, err, ErrEmptyCollection)
	_, err = empty.GetLast()
	require.ErrorIs(t, err, ErrEmptyCollection)
	_, err = empty.RemoveFirst()
	require.ErrorIs(t, err, ErrEmptyCollection)
	_, err = empty.RemoveLast()
	require.ErrorIs(t, err, ErrEmptyCollection)
	_, err = empty.Get(0)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = empty.Remove(0)
	require.ErrorIs(t, err, ErrOutOfRange)
	require.ErrorIs(t, empty.Swap(1, 0), ErrOutOfRange)
	requireDoublyInvariants(t, empty)

	l := newDoublyLinkedListOf(1, 2, 3)
	_, err = l.Remove(3)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = l.Insert(4, -2)
	require.ErrorIs(t, err, ErrOutOfRange)
	require.ErrorIs(t, l.Swap(2, 3), ErrOutOfRange)
	require.Equal(t, []int{1, 2, 3}, doublyValues(t, l))
	requireDoublyInvariants(t, l)

	var nilNode *DoublyNode[int]
	require.Zero(t, nilNode.Value())
}

func TestDoublyLinkedList_SwapCases(t *testing.T) {
	testcases := []struct {
		name     string
		i, j     int64
		expected []int
	}{
		{"noop", 4, 4, []int{0, 1, 2, 3, 4, 5}},
		{"adjacent at head", 0, 1, []int{1, 0, 2, 3, 4, 5}},
		{"adjacent in middle", 2, 3, []int{0, 1, 3, 2, 4, 5}},
		{"adjacent reversed", 1, 0, []int{1, 0, 2, 3, 4, 5}},
		{"adjacent at tail", 5, 4, []int{0, 1, 2, 3, 5, 4}},
		{"distant by one between", 2, 4, []int{0, 1, 4, 3, 2, 5}},
		{"distant head and tail", 5, 0, []int{5, 1, 2, 3, 4, 0}},
		{"distant head and middle", 0, 2, []int{2, 1, 0, 3, 4, 5}},
		{"distant middle and tail", 1, 5, []int{0, 5, 2, 3, 4, 1}},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			l := newDoublyLinkedListOf(0, 1, 2, 3, 4, 5)
			require.NoError(t, l.Swap(tc.i, tc.j))
			require.Equal(t, tc.expected, doublyValues(t, l))
			requireDoublyInvariants(t, l)
		})
	}
}

func TestDoublyLinkedList_SwapTwoNodes(t *testing.T) {
	l := newDoublyLinkedListOf(1, 2)
	first, err := l.GetFirst()
	require.NoError(t, err)
	last, err := l.GetLast()
	require.NoError(t, err)

	require.NoError(t, l.Swap(0, 1))
	newFirst, err := l.GetFirst()
	require.NoError(t, err)
	newLast, err := l.GetLast()
	require.NoError(t, err)
	require.Same(t, last, newFirst)
	require.Same(t, first, newLast)
	requireDoublyInvariants(t, l)
}

func TestDoublyLinkedList_SwapKeepsNodeIdentity(t *testing.T) {
	l := newDoublyLinkedListOf(0, 1, 2, 3, 4)
	handles := lo.Map(lo.Range(5), func(_ int, idx int) *DoublyNode[int] {
		n, err := l.Get(int64(idx))
		require.NoError(t, err)
		return n
	})

	require.NoError(t, l.Swap(1, 3))
	n, err := l.Get(1)
	require.NoError(t, err)
	assert.Same(t, handles[3], n)
	n, err = l.Get(3)
	require.NoError(t, err)
	assert.Same(t, handles[1], n)
	for _, idx := range []int64{0, 2, 4} {
		n, err = l.Get(idx)
		require.NoError(t, err)
		assert.Same(t, handles[idx], n)
	}
}

func TestDoublyLinkedList_SwapIsInvolution(t *testing.T) {
	for size := 1; size <= 6; size++ {
		expected := lo.Range(size)
		l := newDoublyLinkedListOf(expected...)
		for i := int64(0); i < int64(size); i++ {
			for j := int64(0); j < int64(size); j++ {
				require.NoError(t, l.Swap(i, j))
				requireDoublyInvariants(t, l)
				require.NoError(t, l.Swap(i, j))
				requireDoublyInvariants(t, l)
				require.Equal(t, expected, doublyValues(t, l), "size %d swap(%d,%d)", size, i, j)
			}
		}
	}
}

func TestDoublyLinkedList_SwapOutOfRange(t *testing.T) {
	l := newDoublyLinkedListOf(1, 2, 3)
	err := l.Swap(5, -5)
	require.ErrorIs(t, err, ErrOutOfRange)
	require.Len(t, multierr.Errors(err), 2)
	require.Contains(t, err.Error(), "swap index 5 out of range [0, 3)")
	require.Contains(t, err.Error(), "swap index -5 out of range [0, 3)")
	require.Equal(t, []int{1, 2, 3}, doublyValues(t, l))
}

func TestDoublyLinkedList_MixedOperations(t *testing.T) {
	l := NewDoublyLinkedList[int]()
	l2 := list.New()
	checkItems := func() {
		require.Equal(t, int64(l2.Len()), l.Len())
		idx := int64(0)
		for e := l2.Front(); e != nil; e = e.Next() {
			n, err := l.Get(idx)
			require.NoError(t, err)
			require.Equal(t, e.Value, n.Value())
			idx++
		}
		requireDoublyInvariants(t, l)
	}

	for i := 1; i <= 5; i++ {
		l.Add(i)
		l2.PushBack(i)
	}
	checkItems()

	t.Log("insert front and back")
	_, err := l.Insert(0, 0)
	require.NoError(t, err)
	l2.PushFront(0)
	_, err = l.Insert(6, l.Len())
	require.NoError(t, err)
	l2.PushBack(6)
	checkItems()

	t.Log("remove middle")
	_, err = l.Remove(3)
	require.NoError(t, err)
	e := l2.Front()
	for i := 0; i < 3; i++ {
		e = e.Next()
	}
	l2.Remove(e)
	checkItems()

	t.Log("swap head and tail")
	require.NoError(t, l.Swap(0, l.Len()-1))
	l2.MoveToFront(l2.Back())
	l2.MoveToBack(l2.Front().Next())
	checkItems()
}

func BenchmarkDoublyLinkedList_Add(b *testing.B) {
	l := NewDoublyLinkedList[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.Add(i)
	}
	b.ReportAllocs()
}

func BenchmarkSDKLinkedList_PushBack(b *testing.B) {
	l := list.New()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		l.PushBack(i)
	}
	b.ReportAllocs()
}

func BenchmarkDoublyLinkedList_Swap(b *testing.B) {
	l := newDoublyLinkedListOf(lo.Range(1024)...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Swap(int64(i%1024), int64((i*7)%1024))
	}
	b.ReportAllocs()
}
