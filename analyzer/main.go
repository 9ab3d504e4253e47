package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"

	"git.solver4all.com/azaryc2s/machrep"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "machrep-analyzer"
	app.Usage = "Summarize a directory of solved instances as CSV"
	app.ArgsUsage = "DIR"
	app.Action = analyze
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func analyze(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("no directory passed")
	}
	dirName := c.Args().First()
	dir, err := os.ReadDir(dirName)
	if err != nil {
		return fmt.Errorf("couldn't open directory %s: %w", dirName, err)
	}
	fmt.Printf("Name,Strategy,Optimal,Time,Obj,UBound,Gap,Machines,Comment\n")
	for _, f := range dir {
		fileName := dirName + "/" + f.Name()
		if !strings.Contains(fileName, ".json") {
			continue
		}
		inst := machrep.Instance{}
		instStr, err := os.ReadFile(fileName)
		if err != nil {
			return fmt.Errorf("couldn't read %s: %w", f.Name(), err)
		}
		if err = json.Unmarshal(instStr, &inst); err != nil {
			return fmt.Errorf("couldn't parse %s: %w", f.Name(), err)
		}
		if inst.Solution == nil {
			fmt.Printf("No solution for %s\n", inst.Name)
			continue
		}
		sol := *inst.Solution
		solValid, validComment := machrep.ReplaySolution(inst, sol)
		if !solValid {
			sol.Comment = fmt.Sprintf("%s %s", sol.Comment, validComment)
		}
		gap := 0.0
		if sol.Obj != 0 {
			gap = math.Round((sol.UBound-sol.Obj)/math.Abs(sol.Obj)*1000) / 1000.0
		}
		fmt.Printf("%s,%s,%t,%s,%.2f,%.2f,%.4f,%d,%s\n", inst.Name, sol.Strategy, sol.Optimal, sol.Time, sol.Obj, sol.UBound, gap, inst.MachineCount, sol.Comment)
	}
	return nil
}
