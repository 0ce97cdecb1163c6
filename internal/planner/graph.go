package planner

import "sort"

// BlockingFactor describes how much future progress a single course gates.
type BlockingFactor struct {
	// DirectlyUnlocks lists the courses whose rule tree references this
	// course in a Leaf.
	DirectlyUnlocks []string `json:"directlyUnlocks"`

	// TransitivelyUnlocks is the closure of DirectlyUnlocks under the same
	// relation.
	TransitivelyUnlocks []string `json:"transitivelyUnlocks"`

	// ChainLength is the longest prerequisite path ending at this course.
	ChainLength int `json:"chainLength"`
}

// depGraph is the reverse-dependency view of a rule set, built once per
// session and shared read-only by every request.
type depGraph struct {
	// unlocks maps a prerequisite course to the targets it unlocks.
	unlocks map[string][]string
	// prereqs maps a target course to its distinct leaf references.
	prereqs map[string][]string

	chain      map[string]int
	transitive map[string][]string

	// cyclic marks courses whose chain length is undefined because their
	// prerequisite ancestry contains a cycle. members narrows that to the
	// courses actually sitting on a cycle; only those fail evaluation.
	cyclic       map[string]bool
	members      map[string]bool
	cycleMembers []string
}

// buildDepGraph derives the dependency graph from the rule set. Chain lengths
// are computed by dynamic programming over a Kahn topological order; the
// transitive closure per course uses iterative BFS with a visited set so each
// node is processed once regardless of fan-in.
func buildDepGraph(catalog *Catalog, rules *RuleSet) *depGraph {
	g := &depGraph{
		unlocks:    make(map[string][]string),
		prereqs:    make(map[string][]string),
		chain:      make(map[string]int),
		transitive: make(map[string][]string),
		cyclic:     make(map[string]bool),
		members:    make(map[string]bool),
	}

	for _, target := range rules.Targets() {
		rule, _ := rules.Get(target)
		refs := RuleCourses(rule)
		g.prereqs[target] = refs
		for _, ref := range refs {
			g.unlocks[ref] = append(g.unlocks[ref], target)
		}
	}
	for ref := range g.unlocks {
		sort.Strings(g.unlocks[ref])
	}

	g.computeChainLengths(catalog)
	g.computeClosures(catalog)
	return g
}

// computeChainLengths runs Kahn's algorithm over the prerequisite edges.
// Courses never reaching indegree zero sit on or below a cycle; their chain
// length stays undefined and they are marked cyclic.
func (g *depGraph) computeChainLengths(catalog *Catalog) {
	codes := catalog.Codes()
	indegree := make(map[string]int, len(codes))
	for _, code := range codes {
		indegree[code] = len(g.prereqs[code])
	}

	queue := make([]string, 0, len(codes))
	for _, code := range codes {
		if indegree[code] == 0 {
			queue = append(queue, code)
		}
	}

	processed := make(map[string]bool, len(codes))
	for len(queue) > 0 {
		code := queue[0]
		queue = queue[1:]
		processed[code] = true

		for _, target := range g.unlocks[code] {
			if g.chain[code]+1 > g.chain[target] {
				g.chain[target] = g.chain[code] + 1
			}
			indegree[target]--
			if indegree[target] == 0 {
				queue = append(queue, target)
			}
		}
	}

	for _, code := range codes {
		if !processed[code] {
			g.cyclic[code] = true
			delete(g.chain, code)
		}
	}

	// A leftover course either sits on a cycle or lies downstream of one.
	// Pruning leftover courses with no outgoing edge inside the leftover set
	// strips the downstream tail; what remains are the cycle members.
	remaining := make(map[string]bool, len(g.cyclic))
	for code := range g.cyclic {
		remaining[code] = true
	}
	for {
		removed := false
		for code := range remaining {
			hasSuccessor := false
			for _, target := range g.unlocks[code] {
				if remaining[target] {
					hasSuccessor = true
					break
				}
			}
			if !hasSuccessor {
				delete(remaining, code)
				removed = true
			}
		}
		if !removed {
			break
		}
	}
	for code := range remaining {
		g.members[code] = true
		g.cycleMembers = append(g.cycleMembers, code)
	}
	sort.Strings(g.cycleMembers)
}

// computeClosures precomputes the transitive unlock set of every course.
func (g *depGraph) computeClosures(catalog *Catalog) {
	for _, code := range catalog.Codes() {
		visited := make(map[string]bool)
		queue := append([]string(nil), g.unlocks[code]...)
		for len(queue) > 0 {
			next := queue[0]
			queue = queue[1:]
			if visited[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, g.unlocks[next]...)
		}

		closure := make([]string, 0, len(visited))
		for unlocked := range visited {
			closure = append(closure, unlocked)
		}
		sort.Strings(closure)
		g.transitive[code] = closure
	}
}

// blockingFactor returns the precomputed analysis for a course. The caller
// guarantees the course exists in the catalog.
func (g *depGraph) blockingFactor(code string) (BlockingFactor, error) {
	if g.cyclic[code] {
		return BlockingFactor{}, &CyclicRuleError{Course: code, Cycle: g.cycleMembers}
	}
	direct := g.unlocks[code]
	if direct == nil {
		direct = []string{}
	}
	transitive := g.transitive[code]
	if transitive == nil {
		transitive = []string{}
	}
	return BlockingFactor{
		DirectlyUnlocks:     direct,
		TransitivelyUnlocks: transitive,
		ChainLength:         g.chain[code],
	}, nil
}

// chainLength returns the longest prerequisite path ending at the course.
func (g *depGraph) chainLength(code string) (int, error) {
	if g.cyclic[code] {
		return 0, &CyclicRuleError{Course: code, Cycle: g.cycleMembers}
	}
	return g.chain[code], nil
}

// directUnlockCount is used by the ranker without copying the closure slices.
func (g *depGraph) directUnlockCount(code string) int {
	return len(g.unlocks[code])
}
