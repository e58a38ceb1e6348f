package list

// Note that both linked lists are not thread safe.
// Indices are 0-based. Every validation happens before any
// relinking, so a failed call leaves the list unchanged.

// BasicLinkedList is the contract shared by the singly and the doubly linked list.
type BasicLinkedList interface {
	// Len returns the number of live nodes.
	Len() int64
	IsEmpty() bool
	// Swap exchanges the positions of the nodes at index i and j by relinking
	// them. The stored values are never exchanged.
	// It is a no-op if i == j and returns ErrOutOfRange if either index is not
	// in [0, Len()).
	Swap(i, j int64) error
}

// SinglyLinkedList is a one-way linked list without tail cache.
// Accessing the tail traverses the whole list. Values are returned directly.
type SinglyLinkedList[T any] interface {
	BasicLinkedList
	// Add appends the value v at the tail.
	Add(v T)
	// Insert inserts the value v at index, 0 <= index <= Len().
	Insert(v T, index int64) error
	Get(index int64) (T, error)
	// GetFirst returns ErrEmptyCollection if the list is empty.
	GetFirst() (T, error)
	// GetLast returns ErrEmptyCollection if the list is empty.
	GetLast() (T, error)
	// RemoveFirst detaches the head and returns its value.
	RemoveFirst() (T, error)
	// RemoveLast detaches the tail and returns its value.
	RemoveLast() (T, error)
	// Remove detaches the node at index and returns its value.
	Remove(index int64) (T, error)
}

// DoublyLinkedList is a two-way linked list caching both ends.
// Nodes are returned as handles, and a handle keeps its identity
// across Swap.
type DoublyLinkedList[T any] interface {
	BasicLinkedList
	// Add appends the value v at the tail in O(1) and returns the new node.
	Add(v T) *DoublyNode[T]
	// Insert inserts the value v at index, 0 <= index <= Len(), and returns the new node.
	Insert(v T, index int64) (*DoublyNode[T], error)
	Get(index int64) (*DoublyNode[T], error)
	// GetFirst returns ErrEmptyCollection if the list is empty.
	GetFirst() (*DoublyNode[T], error)
	// GetLast returns ErrEmptyCollection if the list is empty.
	GetLast() (*DoublyNode[T], error)
	// RemoveFirst detaches the head in O(1) and returns it.
	RemoveFirst() (*DoublyNode[T], error)
	// RemoveLast detaches the tail in O(1) and returns it.
	RemoveLast() (*DoublyNode[T], error)
	// Remove detaches the node at index and returns it.
	Remove(index int64) (*DoublyNode[T], error)
}
