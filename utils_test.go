package machrep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solvedInstance(t *testing.T) (Instance, Solution) {
	t.Helper()
	inst := Instance{
		InitialCash: 10,
		HorizonDays: 10,
		Machines: []MachineSpec{
			{Day: 1, PurchaseCost: 5, ResaleValue: 2, DailyProfit: 3},
			{Day: 5, PurchaseCost: 4, ResaleValue: 1, DailyProfit: 2},
		},
	}
	res, err := Solve(STRAT_PLAIN, inst)
	require.NoError(t, err)
	return inst, Solution{Obj: res.Obj, Path: res.Path}
}

func TestReplaySolution(t *testing.T) {
	inst, sol := solvedInstance(t)

	valid, comment := ReplaySolution(inst, sol)
	assert.True(t, valid, comment)

	t.Run("claimed objective mismatch", func(t *testing.T) {
		bad := sol
		bad.Obj += 1
		valid, comment := ReplaySolution(inst, bad)
		assert.False(t, valid)
		assert.Contains(t, comment, "claims")
	})

	t.Run("path not ending at the end node", func(t *testing.T) {
		bad := sol
		bad.Path = sol.Path[:len(sol.Path)-1]
		valid, _ := ReplaySolution(inst, bad)
		assert.False(t, valid)
	})

	t.Run("path violating the cash balance", func(t *testing.T) {
		poor := inst
		poor.InitialCash = 0
		// Buying the day-1 machine with no cash drives the balance negative.
		bad := Solution{Obj: 0, Path: []int{0, 1, 3}}
		valid, comment := ReplaySolution(poor, bad)
		assert.False(t, valid)
		assert.Contains(t, comment, "balance")
	})
}

func TestFormatPath(t *testing.T) {
	inst, sol := solvedInstance(t)
	s, err := NewSearch(inst, SearchOptions{})
	require.NoError(t, err)

	out := FormatPath(s.Ordered(), sol.Path)
	assert.Contains(t, out, "start")
	assert.Contains(t, out, "end")
}

func TestSanitizeJsonArrayLineBreaks(t *testing.T) {
	in := "\"path\": [\n\t0,\n\t1,\n\t3\n]\n"
	out := SanitizeJsonArrayLineBreaks(in)
	assert.Contains(t, out, "[0,1,3]")
}
