package knn

import (
	"math"
	"math/rand"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/AntonBallmaier/Frechet-Isomap/graph"
	"github.com/AntonBallmaier/Frechet-Isomap/internal/parallel"
)

// sampleRate and terminationThreshold are NN-descent's fixed tuning
// parameters: rho (the fraction of new candidates sampled per round)
// and tau (the convergence threshold).
const (
	sampleRate           = 0.9
	terminationThreshold = 0.001
)

// vertexSet is one vertex's B[v]: a sorted-by-distance set of up to k
// candidates, each flagged new or old. It is safe for concurrent use,
// since the local-join phase updates other vertices' sets from
// multiple goroutines at once.
type vertexSet struct {
	mu    sync.Mutex
	items []candidate
}

func (s *vertexSet) snapshot() []candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]candidate(nil), s.items...)
}

func (s *vertexSet) contains(idx int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.items {
		if c.idx == idx {
			return true
		}
	}
	return false
}

func (s *vertexSet) worstDist() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.items) == 0 {
		return math.Inf(1)
	}
	return s.items[len(s.items)-1].dist
}

// tryInsert implements NN-descent's "update": insert c if there is
// room, or if c beats the current worst entry. Returns whether the
// set actually changed.
func (s *vertexSet) tryInsert(k int, c candidate) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.items {
		if existing.idx == c.idx {
			return false
		}
	}
	if len(s.items) < k {
		s.items = insertSorted(s.items, c)
		return true
	}
	if c.dist < s.items[len(s.items)-1].dist {
		s.items = insertSorted(s.items[:len(s.items)-1], c)
		return true
	}
	return false
}

// clearNewFlags clears the new flag on the entries at the given
// positions (indices into the current snapshot ordering).
func (s *vertexSet) clearNewFlags(positions []int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range positions {
		if p < len(s.items) {
			s.items[p].isNew = false
		}
	}
}

func insertSorted(items []candidate, c candidate) []candidate {
	i := sort.Search(len(items), func(i int) bool { return items[i].dist >= c.dist })
	items = append(items, candidate{})
	copy(items[i+1:], items[i:])
	items[i] = c
	return items
}

// State holds NN-descent's incremental, re-entrant working set across
// repeated calls to Graph with varying k: growing k refines the
// existing state rather than rebuilding from scratch, and a call at
// the same or a smaller k than before is answered from the existing
// sets without recomputation.
type State struct {
	n      int
	metric Metric
	rng    *rand.Rand
	rngMu  sync.Mutex

	k           int
	initialized bool
	sets        []*vertexSet
	updates     int64
}

// NewState returns NN-descent working state for n vertices under
// metric. A nil rng defaults to the package-level math/rand source,
// mirroring gonum's graph generators (e.g. graph/graphs/gen).
func NewState(n int, metric Metric, rng *rand.Rand) *State {
	sets := make([]*vertexSet, n)
	for i := range sets {
		sets[i] = &vertexSet{}
	}
	return &State{n: n, metric: metric, rng: rng, sets: sets}
}

// Graph extracts the top-k neighbors of every vertex as a graph,
// refining the internal state first if k exceeds what has already
// been explored.
func (s *State) Graph(k int) (*graph.Graph, error) {
	if err := s.ensure(k); err != nil {
		return nil, err
	}

	g := graph.New(s.n)
	for v := 0; v < s.n; v++ {
		items := s.sets[v].snapshot()
		limit := k
		if limit > len(items) {
			limit = len(items)
		}
		for _, c := range items[:limit] {
			if err := g.AddEdge(v, c.idx, c.dist); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

func (s *State) ensure(k int) error {
	if !s.initialized {
		if err := s.randomInit(k); err != nil {
			return err
		}
		s.initialized = true
		s.k = k
	} else if k > s.k {
		if err := s.growSamples(k); err != nil {
			return err
		}
		s.k = k
	} else {
		return nil
	}
	return s.descend()
}

func (s *State) intn(n int) int {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	if s.rng != nil {
		return s.rng.Intn(n)
	}
	return rand.Intn(n)
}

// randomInit draws k distinct random others for every vertex,
// inserted as new candidates.
func (s *State) randomInit(k int) error {
	var firstErr error
	parallel.Range(s.n, func(lo, hi int) {
		for v := lo; v < hi; v++ {
			for _, u := range s.distinctRandomOthers(v, k) {
				d, err := s.metric.Distance(v, u)
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}
					return
				}
				s.sets[v].tryInsert(k, candidate{idx: u, dist: d, isNew: true})
			}
		}
	})
	return firstErr
}

// growSamples fills newly-available slots (from a larger k) with
// fresh random candidates, on top of whatever NN-descent has already
// converged to for the old, smaller k.
func (s *State) growSamples(k int) error {
	var firstErr error
	parallel.Range(s.n, func(lo, hi int) {
		for v := lo; v < hi; v++ {
			need := k - len(s.sets[v].snapshot())
			if need <= 0 {
				continue
			}
			for _, u := range s.distinctRandomOthers(v, need) {
				d, err := s.metric.Distance(v, u)
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}
					return
				}
				s.sets[v].tryInsert(k, candidate{idx: u, dist: d, isNew: true})
			}
		}
	})
	return firstErr
}

func (s *State) distinctRandomOthers(v, count int) []int {
	if count > s.n-1 {
		count = s.n - 1
	}
	seen := make(map[int]bool, count)
	seen[v] = true
	out := make([]int, 0, count)
	for len(out) < count {
		u := s.intn(s.n)
		if seen[u] {
			continue
		}
		seen[u] = true
		if !s.sets[v].contains(u) {
			out = append(out, u)
		}
	}
	return out
}

// descend runs local-join iterations until the number of successful
// updates in a round drops below terminationThreshold * n * k.
func (s *State) descend() error {
	k := s.k
	threshold := terminationThreshold * float64(s.n) * float64(k)
	sampleCap := int(math.Ceil(float64(k) * sampleRate))

	for {
		atomic.StoreInt64(&s.updates, 0)

		newSet := make([][]int, s.n)
		oldSet := make([][]int, s.n)

		var firstErr error
		parallel.Range(s.n, func(lo, hi int) {
			for v := lo; v < hi; v++ {
				items := s.sets[v].snapshot()
				var newIdx, oldIdx []int
				for i, c := range items {
					if c.isNew {
						newIdx = append(newIdx, i)
					} else {
						oldIdx = append(oldIdx, i)
					}
				}
				sampled := s.sampleIndices(newIdx, sampleCap)
				s.sets[v].clearNewFlags(sampled)

				newSet[v] = indicesToVertices(items, sampled)
				oldSet[v] = indicesToVertices(items, oldIdx)
			}
		})
		if firstErr != nil {
			return firstErr
		}

		newRev := make([][]int, s.n)
		oldRev := make([][]int, s.n)
		for v := 0; v < s.n; v++ {
			for _, u := range newSet[v] {
				newRev[u] = append(newRev[u], v)
			}
			for _, u := range oldSet[v] {
				oldRev[u] = append(oldRev[u], v)
			}
		}

		parallel.Range(s.n, func(lo, hi int) {
			for v := lo; v < hi; v++ {
				newSet[v] = append(newSet[v], s.sampleVertices(newRev[v], sampleCap)...)
				oldSet[v] = append(oldSet[v], s.sampleVertices(oldRev[v], sampleCap)...)
			}
		})

		parallel.Range(s.n, func(lo, hi int) {
			for v := lo; v < hi; v++ {
				if err := s.localJoin(k, newSet[v], oldSet[v]); err != nil {
					if firstErr == nil {
						firstErr = err
					}
					return
				}
			}
		})
		if firstErr != nil {
			return firstErr
		}

		if float64(atomic.LoadInt64(&s.updates)) < threshold {
			return nil
		}
	}
}

// localJoin handles a single vertex v: every ordered pair drawn from
// its sampled new/old neighbors is cross-checked against each other's
// candidate set.
func (s *State) localJoin(k int, newSet, oldSet []int) error {
	for _, u1 := range newSet {
		for _, u2 := range newSet {
			if u2 >= u1 {
				continue
			}
			if err := s.update(k, u1, u2); err != nil {
				return err
			}
		}
		for _, u2 := range oldSet {
			if u2 == u1 {
				continue
			}
			if err := s.update(k, u1, u2); err != nil {
				return err
			}
		}
	}
	return nil
}

// update attempts to insert (u2, dist(u1,u2)) into B[u1] and
// (u1, dist(u1,u2)) into B[u2], computing the distance only if the
// pair is not already known to one side.
func (s *State) update(k, u1, u2 int) error {
	if !s.sets[u1].contains(u2) {
		d, err := s.metric.DistanceCap(u1, u2, s.sets[u1].worstDist())
		if err != nil {
			return err
		}
		if !math.IsInf(d, 1) && s.sets[u1].tryInsert(k, candidate{idx: u2, dist: d, isNew: true}) {
			atomic.AddInt64(&s.updates, 1)
		}
	}
	if !s.sets[u2].contains(u1) {
		d, err := s.metric.DistanceCap(u2, u1, s.sets[u2].worstDist())
		if err != nil {
			return err
		}
		if !math.IsInf(d, 1) && s.sets[u2].tryInsert(k, candidate{idx: u1, dist: d, isNew: true}) {
			atomic.AddInt64(&s.updates, 1)
		}
	}
	return nil
}

func indicesToVertices(items []candidate, positions []int) []int {
	out := make([]int, len(positions))
	for i, p := range positions {
		out[i] = items[p].idx
	}
	return out
}

// sampleIndices returns a random subset of at most limit positions
// from idxs, via a partial Fisher-Yates shuffle.
func (s *State) sampleIndices(idxs []int, limit int) []int {
	if len(idxs) <= limit {
		return append([]int(nil), idxs...)
	}
	pool := append([]int(nil), idxs...)
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	for i := 0; i < limit; i++ {
		j := i
		if s.rng != nil {
			j += s.rng.Intn(len(pool) - i)
		} else {
			j += rand.Intn(len(pool) - i)
		}
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:limit]
}

func (s *State) sampleVertices(vertices []int, limit int) []int {
	if len(vertices) <= limit {
		return vertices
	}
	pool := append([]int(nil), vertices...)
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	for i := 0; i < limit; i++ {
		j := i
		if s.rng != nil {
			j += s.rng.Intn(len(pool) - i)
		} else {
			j += rand.Intn(len(pool) - i)
		}
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:limit]
}
