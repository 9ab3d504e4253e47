package machrep

const (
	STRAT_PLAIN = "PLAIN"
	STRAT_BNB   = "BNB"

	ORDER_IDENTITY = "IDENTITY"
	ORDER_SHUFFLE  = "SHUFFLE"

	PROFIT_GEN_ONE = "ONE"
	PROFIT_GEN_RNG = "RNG"
)

// MachineSpec is a single purchase offer: the machine becomes available on
// Day, costs PurchaseCost to acquire, yields DailyProfit for every full day
// it is held (transaction days excluded) and can be resold for ResaleValue.
// The synthetic start and end sentinels reuse the same shape.
type MachineSpec struct {
	Day          int     `json:"day"`
	PurchaseCost float64 `json:"purchase_cost"`
	ResaleValue  float64 `json:"resale_value"`
	DailyProfit  float64 `json:"daily_profit"`
}

type Instance struct {
	Name    string `json:"name"`
	Comment string `json:"comment"`
	Type    string `json:"type"`

	MachineCount int           `json:"machine_count"`
	InitialCash  float64       `json:"initial_cash"`
	HorizonDays  int           `json:"horizon_days"`
	Machines     []MachineSpec `json:"machines"`

	Solution *Solution `json:"solution,omitempty"`
}

type Solution struct {
	Obj         float64   `json:"obj"`
	UBound      float64   `json:"ubound"`
	Optimal     bool      `json:"optimal"`
	FinalCash   float64   `json:"final_cash"`
	Path        []int     `json:"path"`
	StepProfits []float64 `json:"step_profits"`

	Strategy string  `json:"strategy"`
	Time     string  `json:"time"`
	System   SysInfo `json:"system"`
	Comment  string  `json:"comment"`
}

// SysInfo saves the basic system information
type SysInfo struct {
	Platform string
	CPU      string
	RAM      string
}

// Result is what a single search run produces. Obj is the net profit over
// the initial cash; FinalCash = InitialCash + Obj. Path holds node indices
// into the ordered spec list (0 = start sentinel, last = end sentinel).
type Result struct {
	Obj         float64
	FinalCash   float64
	Path        []int
	StepProfits []float64
	UBound      float64
}

// SearchOptions selects the traversal variant. Strategy is STRAT_PLAIN or
// STRAT_BNB, Order is ORDER_IDENTITY or ORDER_SHUFFLE (ignored for PLAIN,
// which always expands in identity order). Seed feeds the shuffle RNG so
// runs can be reproduced.
type SearchOptions struct {
	Strategy string
	Order    string
	Seed     int64
}
