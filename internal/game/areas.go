package game

// CountAreas returns how many distinct regions the active candidates belong to.
// Candidates are expected to share one owner; ownership is not checked here.
func CountAreas(b *Board, candidates [4]Pos, active [4]bool) int {
	var reps [4]Pos
	n := 0

	for i, c := range candidates {
		if !active[i] {
			continue
		}

		joined := false
		for j := 0; j < n && !joined; j++ {
			joined = Connected(b, c, reps[j])
		}
		if !joined {
			reps[n] = c
			n++
		}
	}
	return n
}

// CountAdjacentAreas returns the number of player's regions touching p.
// Placing a token on p merges all of them into one.
func CountAdjacentAreas(b *Board, p Pos, player int) int {
	if !b.In(p) {
		return 0
	}
	cells, active := CollectSameOwnerNeighbors(b, p, player)
	return CountAreas(b, cells, active)
}
