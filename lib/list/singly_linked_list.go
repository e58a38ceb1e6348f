package list

var _ SinglyLinkedList[struct{}] = (*singlyLinkedList[struct{}])(nil) // Type check assertion

type singlyNode[T any] struct {
	next  *singlyNode[T]
	value T
}

// singlyLinkedList keeps only the head. The tail is always found by
// traversal.
type singlyLinkedList[T any] struct {
	first *singlyNode[T]
	len   int64
	stats *linkedListStats
}

func NewSinglyLinkedList[T any](opts ...LinkedListOption) SinglyLinkedList[T] {
	return &singlyLinkedList[T]{
		stats: buildLinkedListStats(opts...),
	}
}

func (l *singlyLinkedList[T]) Len() int64 {
	return l.len
}

func (l *singlyLinkedList[T]) IsEmpty() bool {
	return l.len == 0
}

// locate returns the node at index and its predecessor.
// The predecessor of the first node is nil.
// The index must have been validated.
func (l *singlyLinkedList[T]) locate(index int64) (prev, n *singlyNode[T]) {
	n = l.first
	for i := int64(0); i < index; i++ {
		prev, n = n, n.next
	}
	l.stats.RecordTraversal(index)
	return prev, n
}

func (l *singlyLinkedList[T]) tail() *singlyNode[T] {
	if l.first == nil {
		return nil
	}
	_, n := l.locate(l.len - 1)
	return n
}

// link makes b the successor of a. A nil a means b becomes the head.
func (l *singlyLinkedList[T]) link(a, b *singlyNode[T]) {
	if a == nil {
		l.first = b
		return
	}
	a.next = b
}

func (l *singlyLinkedList[T]) Add(v T) {
	newN := &singlyNode[T]{value: v}
	l.link(l.tail(), newN)
	l.len++
	l.stats.RecordOp(opAdd)
	l.stats.RecordLen(1)
}

func (l *singlyLinkedList[T]) Insert(v T, index int64) error {
	if err := checkPositionIndex(singlyLinkedListName, opInsert, index, l.len); err != nil {
		l.stats.RecordFailure(opInsert, err)
		return err
	}

	newN := &singlyNode[T]{value: v}
	if index == 0 {
		newN.next = l.first
		l.first = newN
	} else {
		_, prev := l.locate(index - 1)
		newN.next = prev.next
		prev.next = newN
	}
	l.len++
	l.stats.RecordOp(opInsert)
	l.stats.RecordLen(1)
	return nil
}

func (l *singlyLinkedList[T]) Get(index int64) (T, error) {
	if err := checkElementIndex(singlyLinkedListName, opGet, index, l.len); err != nil {
		l.stats.RecordFailure(opGet, err)
		var zero T
		return zero, err
	}
	_, n := l.locate(index)
	l.stats.RecordOp(opGet)
	return n.value, nil
}

func (l *singlyLinkedList[T]) GetFirst() (T, error) {
	if err := checkNotEmpty(singlyLinkedListName, "get first", l.len); err != nil {
		l.stats.RecordFailure(opGet, err)
		var zero T
		return zero, err
	}
	l.stats.RecordOp(opGet)
	return l.first.value, nil
}

func (l *singlyLinkedList[T]) GetLast() (T, error) {
	if err := checkNotEmpty(singlyLinkedListName, "get last", l.len); err != nil {
		l.stats.RecordFailure(opGet, err)
		var zero T
		return zero, err
	}
	l.stats.RecordOp(opGet)
	return l.tail().value, nil
}

// unlink detaches the successor of prev, or the head if prev is nil.
func (l *singlyLinkedList[T]) unlink(prev *singlyNode[T]) T {
	var n *singlyNode[T]
	if prev == nil {
		n = l.first
	} else {
		n = prev.next
	}
	l.link(prev, n.next)
	n.next = nil // avoid memory leaks
	l.len--
	l.stats.RecordOp(opRemove)
	l.stats.RecordLen(-1)
	return n.value
}

func (l *singlyLinkedList[T]) RemoveFirst() (T, error) {
	if err := checkNotEmpty(singlyLinkedListName, "remove first", l.len); err != nil {
		l.stats.RecordFailure(opRemove, err)
		var zero T
		return zero, err
	}
	return l.unlink(nil), nil
}

// RemoveLast walks to the second-to-last node. Removing the only node
// leaves the list empty.
func (l *singlyLinkedList[T]) RemoveLast() (T, error) {
	if err := checkNotEmpty(singlyLinkedListName, "remove last", l.len); err != nil {
		l.stats.RecordFailure(opRemove, err)
		var zero T
		return zero, err
	}
	prev, _ := l.locate(l.len - 1)
	return l.unlink(prev), nil
}

func (l *singlyLinkedList[T]) Remove(index int64) (T, error) {
	if err := checkElementIndex(singlyLinkedListName, opRemove, index, l.len); err != nil {
		l.stats.RecordFailure(opRemove, err)
		var zero T
		return zero, err
	}
	prev, _ := l.locate(index)
	return l.unlink(prev), nil
}

func (l *singlyLinkedList[T]) Swap(i, j int64) error {
	if err := checkSwapIndices(singlyLinkedListName, i, j, l.len); err != nil {
		l.stats.RecordFailure(opSwap, err)
		return err
	}

	i, j, c := classifySwap(i, j)
	switch c {
	case swapAdjacent:
		p1, n1 := l.locate(i)
		n2 := n1.next
		s2 := n2.next
		l.link(p1, n2)
		l.link(n2, n1)
		l.link(n1, s2)
	case swapDistant:
		p1, n1 := l.locate(i)
		// Continue from n1, the head is not revisited.
		p2 := n1
		for k := i + 1; k < j; k++ {
			p2 = p2.next
		}
		l.stats.RecordTraversal(j - i)
		n2 := p2.next
		s1, s2 := n1.next, n2.next
		l.link(p1, n2)
		l.link(n2, s1)
		l.link(p2, n1)
		l.link(n1, s2)
	case swapNoop:
		fallthrough
	default:
	}
	l.stats.RecordOp(opSwap)
	return nil
}
