package list

var _ DoublyLinkedList[struct{}] = (*doublyLinkedList[struct{}])(nil) // Type check assertion

// DoublyNode is the node handle of the doubly linked list.
// The next link owns the successor, the prev link is only a back-reference
// for the backward traversal.
type DoublyNode[T any] struct {
	prev, next *DoublyNode[T]
	value      T // The type of value may be a small size type.
	// It should be placed at the end of the struct to avoid taking too much padding.
}

func (n *DoublyNode[T]) Value() T {
	if n == nil {
		var zero T
		return zero
	}
	return n.value
}

type doublyLinkedList[T any] struct {
	first, last *DoublyNode[T]
	len         int64
	stats       *linkedListStats
}

func NewDoublyLinkedList[T any](opts ...LinkedListOption) DoublyLinkedList[T] {
	return &doublyLinkedList[T]{
		stats: buildLinkedListStats(opts...),
	}
}

func (l *doublyLinkedList[T]) Len() int64 {
	return l.len
}

func (l *doublyLinkedList[T]) IsEmpty() bool {
	return l.len == 0
}

// nodeAt walks from the nearer end. The index must have been validated.
func (l *doublyLinkedList[T]) nodeAt(index int64) *DoublyNode[T] {
	var (
		n     *DoublyNode[T]
		steps int64
	)
	if index < l.len>>1 {
		n = l.first
		for ; steps < index; steps++ {
			n = n.next
		}
	} else {
		n = l.last
		for ; steps < l.len-1-index; steps++ {
			n = n.prev
		}
	}
	l.stats.RecordTraversal(steps)
	return n
}

// link makes b the successor of a and a the predecessor of b.
// A nil a means b becomes the first node, a nil b means a becomes the last node.
func (l *doublyLinkedList[T]) link(a, b *DoublyNode[T]) {
	if a == nil {
		l.first = b
	} else {
		a.next = b
	}
	if b == nil {
		l.last = a
	} else {
		b.prev = a
	}
}

func (l *doublyLinkedList[T]) append(newN *DoublyNode[T]) *DoublyNode[T] {
	l.link(l.last, newN)
	l.link(newN, nil)
	l.len++
	return newN
}

func (l *doublyLinkedList[T]) Add(v T) *DoublyNode[T] {
	newN := l.append(&DoublyNode[T]{value: v})
	l.stats.RecordOp(opAdd)
	l.stats.RecordLen(1)
	return newN
}

func (l *doublyLinkedList[T]) Insert(v T, index int64) (*DoublyNode[T], error) {
	if err := checkPositionIndex(doublyLinkedListName, opInsert, index, l.len); err != nil {
		l.stats.RecordFailure(opInsert, err)
		return nil, err
	}

	newN := &DoublyNode[T]{value: v}
	switch {
	case index == l.len:
		// Appending also covers the empty list.
		l.append(newN)
	case index == 0:
		l.link(newN, l.first)
		l.link(nil, newN)
		l.len++
	default:
		prev := l.nodeAt(index - 1)
		succ := prev.next
		l.link(prev, newN)
		l.link(newN, succ)
		l.len++
	}
	l.stats.RecordOp(opInsert)
	l.stats.RecordLen(1)
	return newN, nil
}

func (l *doublyLinkedList[T]) Get(index int64) (*DoublyNode[T], error) {
	if err := checkElementIndex(doublyLinkedListName, opGet, index, l.len); err != nil {
		l.stats.RecordFailure(opGet, err)
		return nil, err
	}
	l.stats.RecordOp(opGet)
	return l.nodeAt(index), nil
}

func (l *doublyLinkedList[T]) GetFirst() (*DoublyNode[T], error) {
	if err := checkNotEmpty(doublyLinkedListName, "get first", l.len); err != nil {
		l.stats.RecordFailure(opGet, err)
		return nil, err
	}
	l.stats.RecordOp(opGet)
	return l.first, nil
}

func (l *doublyLinkedList[T]) GetLast() (*DoublyNode[T], error) {
	if err := checkNotEmpty(doublyLinkedListName, "get last", l.len); err != nil {
		l.stats.RecordFailure(opGet, err)
		return nil, err
	}
	l.stats.RecordOp(opGet)
	return l.last, nil
}

// unlink joins the neighbours of n, then clears n's links so the
// returned handle cannot reach back into the list.
func (l *doublyLinkedList[T]) unlink(n *DoublyNode[T]) *DoublyNode[T] {
	l.link(n.prev, n.next)
	n.prev, n.next = nil, nil // avoid memory leaks
	l.len--
	l.stats.RecordOp(opRemove)
	l.stats.RecordLen(-1)
	return n
}

func (l *doublyLinkedList[T]) RemoveFirst() (*DoublyNode[T], error) {
	if err := checkNotEmpty(doublyLinkedListName, "remove first", l.len); err != nil {
		l.stats.RecordFailure(opRemove, err)
		return nil, err
	}
	return l.unlink(l.first), nil
}

func (l *doublyLinkedList[T]) RemoveLast() (*DoublyNode[T], error) {
	if err := checkNotEmpty(doublyLinkedListName, "remove last", l.len); err != nil {
		l.stats.RecordFailure(opRemove, err)
		return nil, err
	}
	return l.unlink(l.last), nil
}

func (l *doublyLinkedList[T]) Remove(index int64) (*DoublyNode[T], error) {
	if err := checkElementIndex(doublyLinkedListName, opRemove, index, l.len); err != nil {
		l.stats.RecordFailure(opRemove, err)
		return nil, err
	}

	switch index {
	case 0:
		return l.unlink(l.first), nil
	case l.len - 1:
		return l.unlink(l.last), nil
	default:
	}
	return l.unlink(l.nodeAt(index)), nil
}

func (l *doublyLinkedList[T]) Swap(i, j int64) error {
	if err := checkSwapIndices(doublyLinkedListName, i, j, l.len); err != nil {
		l.stats.RecordFailure(opSwap, err)
		return err
	}

	i, j, c := classifySwap(i, j)
	switch c {
	case swapAdjacent:
		n1 := l.nodeAt(i)
		n2 := n1.next
		p1, s2 := n1.prev, n2.next
		l.link(p1, n2)
		l.link(n2, n1)
		l.link(n1, s2)
	case swapDistant:
		n1, n2 := l.nodeAt(i), l.nodeAt(j)
		p1, s1 := n1.prev, n1.next
		p2, s2 := n2.prev, n2.next
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
