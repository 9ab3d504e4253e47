package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"git.solver4all.com/azaryc2s/machrep"
	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "machrep-solver"
	app.Usage = "Solve a machine-replacement instance and write the solution back into it"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "input", Value: "input.json", Usage: "Path to the input instance"},
		cli.StringFlag{Name: "output", Usage: "Path to the output file. By default the input file will be overwritten adding the solution"},
		cli.StringFlag{Name: "strat", Value: machrep.STRAT_BNB, Usage: "Strategy for solving. BNB (default) or PLAIN"},
		cli.StringFlag{Name: "order", Usage: "Branch order. IDENTITY|SHUFFLE. Defaults to SHUFFLE for BNB and IDENTITY for PLAIN"},
		cli.Int64Flag{Name: "seed", Usage: "Seed for the branch-order RNG. 0 seeds from the clock"},
		cli.IntFlag{Name: "log", Value: 2, Usage: "Level of the logging output. Higher value is more verbose. Range 1-4"},
	}
	app.Action = solve
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func solve(c *cli.Context) error {
	machrep.InitLoggers(c.Int("log"))
	inputF := c.String("input")

	instStr, err := os.ReadFile(inputF)
	if err != nil {
		return fmt.Errorf("at %s: %w", inputF, err)
	}
	var inst machrep.Instance
	if err = json.Unmarshal(instStr, &inst); err != nil {
		return fmt.Errorf("at %s: %w", inputF, err)
	}

	hostStat, _ := host.Info()
	cpuStat, _ := cpu.Info()
	vmStat, _ := mem.VirtualMemory()
	sol := machrep.Solution{System: machrep.SysInfo{Platform: hostStat.Platform, CPU: cpuStat[0].ModelName, RAM: fmt.Sprintf("%d GB", (vmStat.Total / 1024 / 1024 / 1024))}}

	opts := machrep.SearchOptions{
		Strategy: c.String("strat"),
		Order:    c.String("order"),
		Seed:     c.Int64("seed"),
	}
	search, err := machrep.NewSearch(inst, opts)
	if err != nil {
		return fmt.Errorf("at %s: %w", inputF, err)
	}
	sol.Strategy = opts.Strategy
	sol.Comment = fmt.Sprintf("Solver-Settings: SolverDev: Zarychta, Strat=%s, Order=%s, Seed=%d", opts.Strategy, opts.Order, opts.Seed)

	startTime := time.Now()
	res := search.Run()
	sol.Time = time.Since(startTime).String()
	machrep.Log(2, "\n---OPTIMIZATION DONE---\n")

	sol.Obj = res.Obj
	sol.UBound = res.UBound
	sol.FinalCash = res.FinalCash
	sol.Path = res.Path
	sol.StepProfits = res.StepProfits
	sol.Optimal = true
	inst.Solution = &sol

	machrep.Log(2, "Found a sequence with net profit %.2f: %s", res.Obj, machrep.FormatPath(search.Ordered(), res.Path))

	solValid, validComment := machrep.ReplaySolution(inst, sol)
	if !solValid {
		machrep.Log(1, validComment)
	} else {
		machrep.Log(2, "The computed solution is valid!")
	}

	return writeSolution(inst, inputF, c.String("output"))
}

func writeSolution(inst machrep.Instance, inputF, outputF string) error {
	jsonInst, err := json.MarshalIndent(inst, "", "\t")
	if err != nil {
		return fmt.Errorf("at %s: %w", inputF, err)
	}
	jsonInst = []byte(machrep.SanitizeJsonArrayLineBreaks(string(jsonInst)))
	fileName := outputF
	if fileName == "" {
		fileName = inputF //overwrite the input file
	}
	if err = os.WriteFile(fileName, jsonInst, 0644); err != nil {
		return fmt.Errorf("at %s: %w", fileName, err)
	}
	return nil
}
