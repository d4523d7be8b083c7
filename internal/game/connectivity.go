package game

// Connected reports whether dest is reachable from start through orthogonally
// adjacent cells that share start's owner. Off-board coordinates are never connected.
func Connected(b *Board, start, dest Pos) bool {
	if !b.In(start) || !b.In(dest) {
		return false
	}

	owner := b.Cells[b.index(start)]
	visited := make([]bool, len(b.Cells))
	stack := make([]Pos, 0, 16)

	visited[b.index(start)] = true
	stack = append(stack, start)

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == dest {
			return true
		}

		for _, d := range orthogonal {
			next := cur.add(d)
			if !b.In(next) {
				continue
			}
			i := b.index(next)
			if visited[i] || b.Cells[i] != owner {
				continue
			}
			visited[i] = true
			stack = append(stack, next)
		}
	}
	return false
}
