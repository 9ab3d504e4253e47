package machrep

import (
	"fmt"
	"math"
	"regexp"
	"strings"
)

// ReplaySolution walks the recorded path over a freshly built node list and
// checks the two things a valid solution must satisfy: the running cash
// balance stays non-negative after every step, and the replayed net profit
// matches the recorded objective.
func ReplaySolution(inst Instance, sol Solution) (bool, string) {
	s, err := NewSearch(inst, SearchOptions{Strategy: STRAT_PLAIN})
	if err != nil {
		return false, fmt.Sprintf("The instance itself is invalid: %s", err.Error())
	}
	ordered := s.Ordered()
	if len(sol.Path) < 2 || sol.Path[0] != 0 || sol.Path[len(sol.Path)-1] != len(ordered)-1 {
		return false, fmt.Sprintf("The path %v does not run from the start node to the end node!", sol.Path)
	}
	cash := 0.0
	for i := 1; i < len(sol.Path); i++ {
		prev, act := sol.Path[i-1], sol.Path[i]
		if act <= prev || act >= len(ordered) {
			return false, fmt.Sprintf("The path %v is not strictly increasing within the node list!", sol.Path)
		}
		cash += Profit(ordered[prev], ordered[act])
		if cash < 0 {
			return false, fmt.Sprintf("The cash balance drops to %.2f after step %d!", cash, i)
		}
	}
	net := cash - inst.InitialCash
	if math.Abs(net-sol.Obj) > 1e-6 {
		return false, fmt.Sprintf("The replayed profit is %.2f but the solution claims %.2f!", net, sol.Obj)
	}
	return true, ""
}

// FormatPath renders a path as a purchase timeline for diagnostic output.
func FormatPath(ordered []MachineSpec, path []int) string {
	var b strings.Builder
	for i, idx := range path {
		if i > 0 {
			b.WriteString(" -> ")
		}
		if idx == 0 {
			b.WriteString("start")
		} else if idx == len(ordered)-1 {
			b.WriteString("end")
		} else {
			fmt.Fprintf(&b, "n%d(day %d)", idx, ordered[idx].Day)
		}
	}
	return b.String()
}

func SanitizeJsonArrayLineBreaks(json string) string {
	res := fmt.Sprintf("%s", json)
	var numbers = regexp.MustCompile(`\s*([-]?[0-9]+(\.[0-9]+)?),\s+([-]?[0-9]+(\.[0-9]+)?)(,)?`)
	var brackets = regexp.MustCompile(`\[(([-]?[0-9]+(\.[0-9]+)?,)+[-]?[0-9]+(\.[0-9]+)?)\s+\](,?)(\s+)`)
	for numbers.MatchString(res) {
		res = numbers.ReplaceAllString(res, "$1,$3$5")
	}
	for brackets.MatchString(res) {
		res = brackets.ReplaceAllString(res, "[$1]$5$6")
	}
	return res
}
