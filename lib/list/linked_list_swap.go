package list

// Swap relinks nodes instead of exchanging values, so the cases are
// closed over the distance between the two (ordered) positions.
// Endpoints are not a case of their own. Both lists relink through a
// link(a, b) helper where a nil a means b becomes the first node.
//
//	case          | relinking (p: predecessor, s: successor)
//	--------------+-----------------------------------------
//	swapNoop      | -
//	swapAdjacent  | p1 -> n2 -> n1 -> s2
//	swapDistant   | p1 -> n2 -> s1 ... p2 -> n1 -> s2
type swapCase uint8

const (
	swapNoop swapCase = iota
	swapAdjacent
	swapDistant
)

func (c swapCase) String() string {
	switch c {
	case swapNoop:
		return "noop"
	case swapAdjacent:
		return "adjacent"
	case swapDistant:
		return "distant"
	default:
	}
	return "unknown"
}

// classifySwap orders the indices so that i <= j. A reversed adjacent
// request (j+1 == i) becomes a forward adjacent one.
func classifySwap(i, j int64) (int64, int64, swapCase) {
	if i == j {
		return i, j, swapNoop
	}
	if i > j {
		i, j = j, i
	}
	if j-i == 1 {
		return i, j, swapAdjacent
	}
	return i, j, swapDistant
}
