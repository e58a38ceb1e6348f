package list

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/benz9527/xlist/lib/infra"
)

var (
	ErrOutOfRange      = errors.New("index out of range")
	ErrEmptyCollection = errors.New("empty collection")
)

const (
	singlyLinkedListName = "singly-linked-list"
	doublyLinkedListName = "doubly-linked-list"
)

type linkedListOp string

const (
	opAdd    linkedListOp = "add"
	opInsert linkedListOp = "insert"
	opGet    linkedListOp = "get"
	opRemove linkedListOp = "remove"
	opSwap   linkedListOp = "swap"
)

func (op linkedListOp) String() string {
	return string(op)
}

// checkElementIndex validates an index of an existing node, [0, length).
func checkElementIndex(listName string, op linkedListOp, index, length int64) error {
	if index >= 0 && index < length {
		return nil
	}
	return infra.WrapErrorStackWithMessage(
		ErrOutOfRange,
		fmt.Sprintf("[%s] %s index %d out of range [0, %d)", listName, op, index, length),
	)
}

// checkPositionIndex validates an insertion position, [0, length].
func checkPositionIndex(listName string, op linkedListOp, index, length int64) error {
	if index >= 0 && index <= length {
		return nil
	}
	return infra.WrapErrorStackWithMessage(
		ErrOutOfRange,
		fmt.Sprintf("[%s] %s index %d out of range [0, %d]", listName, op, index, length),
	)
}

// checkSwapIndices reports both indices if both of them are invalid.
func checkSwapIndices(listName string, i, j, length int64) error {
	return multierr.Combine(
		checkElementIndex(listName, opSwap, i, length),
		checkElementIndex(listName, opSwap, j, length),
	)
}

func checkNotEmpty(listName string, op string, length int64) error {
	if length > 0 {
		return nil
	}
	return infra.WrapErrorStackWithMessage(
		ErrEmptyCollection,
		fmt.Sprintf("[%s] %s on empty list", listName, op),
	)
}
