package asteroids

// resolveCollisions sweeps bullets against asteroids, lowest index first in
// both lists. A bullet removes the first asteroid it hits and is removed with
// it, so it scores at most once per tick. Removals are deferred: hits are
// marked during the sweep and both slices are compacted once afterwards.
// Returns the number of asteroids destroyed.
func (g *Game) resolveCollisions() int {
	if len(g.bullets) == 0 || len(g.asteroids) == 0 {
		return 0
	}

	destroyed := make([]bool, len(g.asteroids))
	hits := 0

	kept := g.bullets[:0]
	for _, b := range g.bullets {
		hit := false
		for j := range g.asteroids {
			if destroyed[j] {
				continue
			}
			if b.CollidesWith(g.asteroids[j]) {
				destroyed[j] = true
				hit = true
				break
			}
		}
		if hit {
			hits++
			g.score += g.rules.Reward
			continue
		}
		kept = append(kept, b)
	}
	clear(g.bullets[len(kept):])
	g.bullets = kept

	if hits == 0 {
		return 0
	}

	rocks := g.asteroids[:0]
	for j, a := range g.asteroids {
		if !destroyed[j] {
			rocks = append(rocks, a)
		}
	}
	clear(g.asteroids[len(rocks):])
	g.asteroids = rocks

	return hits
}
