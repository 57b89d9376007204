package physics

import "github.com/lixenwraith/robot-soccer/vmath"

// ResolveCollisions separates every overlapping pair of balls in a single pass
// Each ball of a pair moves half the overlap along the line of centers, leaving the pair tangent
// Pairs are visited once in index order; multi-way overlaps are not iterated to a fixed point
// Coincident centers have no separation axis and are skipped
// Returns the number of pairs adjusted
func ResolveCollisions(balls []*Ball) int {
	adjusted := 0
	for i := 0; i < len(balls); i++ {
		for j := i + 1; j < len(balls); j++ {
			if separate(balls[i], balls[j]) {
				adjusted++
			}
		}
	}
	return adjusted
}

// separate pushes a and b apart symmetrically when they overlap
func separate(a, b *Ball) bool {
	delta := vmath.V2Sub(b.Pos, a.Pos)
	dist := vmath.V2Mag(delta)
	if dist == 0 {
		return false
	}

	overlap := a.Radius + b.Radius - dist
	if overlap <= 0 {
		return false
	}

	push := vmath.V2Scale(delta, overlap/2/dist)
	a.Pos = vmath.V2Sub(a.Pos, push)
	b.Pos = vmath.V2Add(b.Pos, push)
	return true
}
