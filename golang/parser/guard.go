package parser

// Stats describes the work done by one parse.
type Stats struct {
	// Invocations counts rule entries, including the ones refused by the
	// recursion guard.
	Invocations int
	MaxDepth    int
	GuardTrips  int
	Recoveries  int
}

type frame struct {
	rule Rule
	pos  int
}

// guard refuses to enter a rule at a position where the same rule is
// already active. It belongs to a single parse.
type guard struct {
	frames []frame
	stats  *Stats
}

func newGuard(stats *Stats) *guard {
	if stats == nil {
		stats = &Stats{}
	}
	return &guard{stats: stats}
}

// enter records the frame (rule, pos). Frames are pushed at non-decreasing
// positions, so only the top frames at pos need to be searched.
func (g *guard) enter(rule Rule, pos, depth int) bool {
	g.stats.Invocations++
	for i := len(g.frames) - 1; i >= 0 && g.frames[i].pos == pos; i-- {
		if g.frames[i].rule == rule {
			g.stats.GuardTrips++
			return false
		}
	}
	g.frames = append(g.frames, frame{rule: rule, pos: pos})
	if depth > g.stats.MaxDepth {
		g.stats.MaxDepth = depth
	}
	return true
}

func (g *guard) leave() {
	g.frames = g.frames[:len(g.frames)-1]
}
