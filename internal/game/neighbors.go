package game

// HasSameOwnerNeighbor reports whether any orthogonal neighbour of p belongs to player.
func HasSameOwnerNeighbor(b *Board, p Pos, player int) bool {
	if !b.In(p) {
		return false
	}
	for _, d := range orthogonal {
		n := p.add(d)
		if b.In(n) && b.At(n) == player {
			return true
		}
	}
	return false
}

// NewAdjacentFree counts the free neighbours of p that player does not border yet,
// i.e. the cells that become adjacent free for player once p is taken.
func NewAdjacentFree(b *Board, p Pos, player int) int {
	if !b.In(p) {
		return 0
	}
	count := 0
	for _, d := range orthogonal {
		n := p.add(d)
		if b.In(n) && b.At(n) == 0 && !HasSameOwnerNeighbor(b, n, player) {
			count++
		}
	}
	return count
}

// CollectSameOwnerNeighbors returns the neighbours of p owned by player.
// Slots with active[i] == false are unused.
func CollectSameOwnerNeighbors(b *Board, p Pos, player int) (cells [4]Pos, active [4]bool) {
	if !b.In(p) {
		return
	}
	for i, d := range orthogonal {
		n := p.add(d)
		if b.In(n) && b.At(n) == player {
			cells[i] = n
			active[i] = true
		}
	}
	return
}

// neighborOwners returns the distinct non-zero owners around p.
func neighborOwners(b *Board, p Pos) []int {
	owners := make([]int, 0, 4)
	for _, d := range orthogonal {
		n := p.add(d)
		if !b.In(n) {
			continue
		}
		o := b.At(n)
		if o == 0 || containsOwner(owners, o) {
			continue
		}
		owners = append(owners, o)
	}
	return owners
}

func containsOwner(owners []int, o int) bool {
	for _, x := range owners {
		if x == o {
			return true
		}
	}
	return false
}
