package game

import "fmt"

// Verify recomputes every counter from the board and compares it with the
// incrementally maintained values. It is meant for tests and simulations.
func (g *Game) Verify() error {
	b := &g.board
	n := len(g.players)

	occupied := make([]int, n)
	adjacent := make([]int, n)
	free := 0
	seen := make([]int, 0, 4)

	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			p := Pos{X: x, Y: y}
			o := b.At(p)
			if o >= n {
				return fmt.Errorf("%w: cell %v owned by unknown player %d", ErrInvariant, p, o)
			}
			if o != 0 {
				occupied[o]++
				continue
			}
			free++
			seen = seen[:0]
			for _, d := range orthogonal {
				q := p.add(d)
				if !b.In(q) {
					continue
				}
				if qo := b.At(q); qo != 0 && !containsOwner(seen, qo) {
					seen = append(seen, qo)
					adjacent[qo]++
				}
			}
		}
	}

	if free != g.free {
		return fmt.Errorf("%w: free cells %d, counted %d", ErrInvariant, g.free, free)
	}

	areas := countRegions(b, n)
	for pl := 1; pl < n; pl++ {
		st := g.players[pl]
		switch {
		case st.occupied != occupied[pl]:
			return fmt.Errorf("%w: player %d occupied %d, counted %d", ErrInvariant, pl, st.occupied, occupied[pl])
		case st.adjacentFree != adjacent[pl]:
			return fmt.Errorf("%w: player %d adjacent free %d, counted %d", ErrInvariant, pl, st.adjacentFree, adjacent[pl])
		case st.areas != areas[pl]:
			return fmt.Errorf("%w: player %d areas %d, counted %d", ErrInvariant, pl, st.areas, areas[pl])
		case st.areas > g.maxAreas:
			return fmt.Errorf("%w: player %d holds %d areas, limit %d", ErrInvariant, pl, st.areas, g.maxAreas)
		}
	}
	return nil
}

// countRegions labels every connected region with a flood fill and returns
// the number of regions per owner.
func countRegions(b *Board, owners int) []int {
	regions := make([]int, owners)
	visited := make([]bool, len(b.Cells))
	queue := make([]Pos, 0, 64)

	for i, o := range b.Cells {
		if o == 0 || visited[i] {
			continue
		}
		regions[o]++
		visited[i] = true
		queue = append(queue[:0], Pos{X: i % b.Width, Y: i / b.Width})

		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, d := range orthogonal {
				next := cur.add(d)
				if !b.In(next) {
					continue
				}
				j := b.index(next)
				if visited[j] || b.Cells[j] != o {
					continue
				}
				visited[j] = true
				queue = append(queue, next)
			}
		}
	}
	return regions
}
