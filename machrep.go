package machrep

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"
)

/* The search maximizes the total profit of a purchase/resale sequence over
the machine offers of an instance. Nodes are "just purchased this machine"
states; the start sentinel sells the initial cash into the sequence and the
end sentinel liquidates it. A sequence is feasible as long as the running
cash balance never drops below zero. */

// Profit is the deterministic value of running machine a from its purchase
// day up to the purchase day of b: DailyProfit for every full idle day in
// between (no profit accrues on a transaction day), plus the resale of a,
// minus the cost of b. Edges going backwards or sideways in time are
// infeasible and yield -Inf.
func Profit(a, b MachineSpec) float64 {
	if a.Day >= b.Day {
		return math.Inf(-1)
	}
	return a.DailyProfit*float64(b.Day-a.Day-1) + a.ResaleValue - b.PurchaseCost
}

// Search holds all data of one search run: the ordered node list, the
// per-source edge rows, the suffix maxima backing the upper bound and the
// best complete value found so far. A Search is built once per instance via
// NewSearch and is not safe for concurrent use.
type Search struct {
	inst    Instance
	ordered []MachineSpec

	strategy string
	order    string
	prune    bool
	rng      *rand.Rand

	// Edge rows, keyed by source index, built on first expansion.
	rows      map[int]map[int]float64
	rowBuilds int

	// Suffix maxima over ordered[i:], precomputed per run.
	sufDaily  []float64
	sufResale []float64

	// Incumbent: best complete-path value (raw cash) found so far.
	bestKnown float64
	bestLog   []float64
}

// NewSearch validates the instance and options and prepares the ordered node
// list: start sentinel (day 0, resale = initial cash), the machines stably
// sorted by day, end sentinel (day = horizon+1). Construction either
// succeeds with a valid immutable search or fails; no partial state leaks.
func NewSearch(inst Instance, opts SearchOptions) (*Search, error) {
	if inst.HorizonDays < 0 {
		return nil, fmt.Errorf("machrep: horizon must be non-negative, got %d", inst.HorizonDays)
	}
	if inst.InitialCash < 0 {
		return nil, fmt.Errorf("machrep: initial cash must be non-negative, got %f", inst.InitialCash)
	}
	for i, m := range inst.Machines {
		if m.Day < 1 || m.Day > inst.HorizonDays {
			return nil, fmt.Errorf("machrep: machine %d has day %d outside [1,%d]", i, m.Day, inst.HorizonDays)
		}
		if m.PurchaseCost < 0 || m.ResaleValue < 0 || m.DailyProfit < 0 {
			return nil, fmt.Errorf("machrep: machine %d has negative values", i)
		}
		if m.ResaleValue >= m.PurchaseCost {
			return nil, fmt.Errorf("machrep: machine %d resells for %f but only costs %f", i, m.ResaleValue, m.PurchaseCost)
		}
	}

	switch opts.Strategy {
	case "":
		opts.Strategy = STRAT_BNB
	case STRAT_PLAIN, STRAT_BNB:
	default:
		return nil, fmt.Errorf("machrep: unsupported strategy: %s", opts.Strategy)
	}
	switch opts.Order {
	case "":
		if opts.Strategy == STRAT_BNB {
			opts.Order = ORDER_SHUFFLE
		} else {
			opts.Order = ORDER_IDENTITY
		}
	case ORDER_IDENTITY, ORDER_SHUFFLE:
	default:
		return nil, fmt.Errorf("machrep: unsupported branch order: %s", opts.Order)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ordered := make([]MachineSpec, 0, len(inst.Machines)+2)
	ordered = append(ordered, MachineSpec{Day: 0, ResaleValue: inst.InitialCash})
	ordered = append(ordered, inst.Machines...)
	// Stable keeps the original order among same-day offers.
	sort.SliceStable(ordered[1:], func(i, j int) bool {
		return ordered[1+i].Day < ordered[1+j].Day
	})
	ordered = append(ordered, MachineSpec{Day: inst.HorizonDays + 1})

	return &Search{
		inst:     inst,
		ordered:  ordered,
		strategy: opts.Strategy,
		order:    opts.Order,
		prune:    opts.Strategy == STRAT_BNB,
		rng:      rand.New(rand.NewSource(seed)),
	}, nil
}

// Run executes one full search and returns the optimal result. All per-run
// state (edge rows, suffix maxima, incumbent) is reset first, so a Search
// can be run repeatedly.
func (s *Search) Run() Result {
	s.rows = make(map[int]map[int]float64, len(s.ordered))
	s.rowBuilds = 0
	s.bestKnown = math.Inf(-1)
	s.bestLog = s.bestLog[:0]
	s.precomputeSuffixMaxima()

	rootBound := s.upperBound(0, 0)
	Log(3, "Starting %s search over %d nodes, root bound %.2f", s.strategy, len(s.ordered), rootBound)

	value, path, _ := s.search(0, 0, []int{0})

	steps := make([]float64, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		steps = append(steps, Profit(s.ordered[path[i-1]], s.ordered[path[i]]))
	}
	Log(2, "Search done, final cash %.2f over path %v", value, path)

	return Result{
		Obj:         value - s.inst.InitialCash,
		FinalCash:   value,
		Path:        path,
		StepProfits: steps,
		UBound:      rootBound - s.inst.InitialCash,
	}
}

// Ordered returns the node list the path indices of a Result refer to.
func (s *Search) Ordered() []MachineSpec {
	out := make([]MachineSpec, len(s.ordered))
	copy(out, s.ordered)
	return out
}

func (s *Search) precomputeSuffixMaxima() {
	n := len(s.ordered)
	s.sufDaily = make([]float64, n)
	s.sufResale = make([]float64, n)
	var daily, resale float64
	for i := n - 1; i >= 0; i-- {
		if s.ordered[i].DailyProfit > daily {
			daily = s.ordered[i].DailyProfit
		}
		if s.ordered[i].ResaleValue > resale {
			resale = s.ordered[i].ResaleValue
		}
		s.sufDaily[i] = daily
		s.sufResale[i] = resale
	}
}

// upperBound relaxes the remaining problem to a fictitious machine combining
// the best daily profit and best resale value among ordered[src:], run for
// all days left before the terminal transaction day. It can only overstate
// what is actually achievable from (src, cash), so pruning on it is safe.
func (s *Search) upperBound(src int, cash float64) float64 {
	remaining := (s.ordered[len(s.ordered)-1].Day - 1) - s.ordered[src].Day
	return cash + s.sufDaily[src]*float64(remaining) + s.sufResale[src]
}

// row returns the profits from src to every time-feasible later node,
// computing them on the first expansion of src. Same-day offers are never
// linked: time has to move strictly forward between purchases.
func (s *Search) row(src int) map[int]float64 {
	if r, ok := s.rows[src]; ok {
		return r
	}
	a := s.ordered[src]
	r := make(map[int]float64, len(s.ordered)-src-1)
	for d := src + 1; d < len(s.ordered); d++ {
		if a.Day >= s.ordered[d].Day {
			continue
		}
		r[d] = Profit(a, s.ordered[d])
	}
	s.rows[src] = r
	s.rowBuilds++
	return r
}

// search explores all liquidity-feasible continuations from (src, cash) and
// returns the best complete value and its path. ok is false when the branch
// was pruned away entirely and contributes no candidate.
func (s *Search) search(src int, cash float64, path []int) (float64, []int, bool) {
	if s.prune && s.upperBound(src, cash) < s.bestKnown {
		Log(4, "Pruning node %d at cash %.2f against incumbent %.2f", src, cash, s.bestKnown)
		return 0, nil, false
	}

	row := s.row(src)
	dests := make([]int, 0, len(row))
	for d := src + 1; d < len(s.ordered); d++ {
		if p, ok := row[d]; ok && cash+p >= 0 {
			dests = append(dests, d)
		}
	}

	if len(dests) == 0 {
		// Complete path. The end sentinel is always affordable, so this
		// only happens once the end node itself is reached.
		if cash > s.bestKnown {
			s.bestKnown = cash
			s.bestLog = append(s.bestLog, cash)
			Log(3, "New incumbent %.2f via %v", cash, path)
		}
		return cash, path, true
	}

	if s.order == ORDER_SHUFFLE {
		s.rng.Shuffle(len(dests), func(i, j int) {
			dests[i], dests[j] = dests[j], dests[i]
		})
	}

	best := math.Inf(-1)
	var bestPath []int
	found := false
	for _, d := range dests {
		next := append(append(make([]int, 0, len(path)+1), path...), d)
		value, full, ok := s.search(d, cash+row[d], next)
		if ok && (!found || value > best) {
			best, bestPath, found = value, full, true
		}
	}
	if !found {
		return 0, nil, false
	}
	return best, bestPath, true
}

// Solve builds a Search with default options for the given strategy and runs
// it once.
func Solve(strategy string, inst Instance) (Result, error) {
	s, err := NewSearch(inst, SearchOptions{Strategy: strategy})
	if err != nil {
		return Result{}, err
	}
	return s.Run(), nil
}
