package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"git.solver4all.com/azaryc2s/machrep"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "machrep-generator"
	app.Usage = "Generate random machine-replacement instances as JSON files"
	app.Flags = []cli.Flag{
		cli.IntSliceFlag{Name: "n", Usage: "List of number of machines"},
		cli.IntSliceFlag{Name: "horizon", Usage: "List of horizons in days"},
		cli.IntSliceFlag{Name: "cash", Usage: "List of initial cash values"},
		cli.StringSliceFlag{Name: "p", Usage: "List of daily-profit-generation strategies. (ONE|RNG)"},
		cli.StringFlag{Name: "name", Value: "zarychta", Usage: "Name for the instance"},
		cli.StringFlag{Name: "outputDir", Value: ".", Usage: "Output directory"},
		cli.IntFlag{Name: "count", Value: 1, Usage: "Number of instances per combination"},
		cli.IntFlag{Name: "costMax", Value: 100, Usage: "The highest purchase cost"},
		cli.IntFlag{Name: "profitMax", Value: 10, Usage: "The highest daily profit when using the RNG strategy"},
	}
	app.Action = generate
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func generate(c *cli.Context) error {
	name := c.String("name")
	output := c.String("outputDir")
	machines := c.IntSlice("n")
	horizons := c.IntSlice("horizon")
	cashes := c.IntSlice("cash")
	strategies := c.StringSlice("p")
	if len(strategies) == 0 {
		strategies = []string{machrep.PROFIT_GEN_RNG}
	}
	costMax := c.Int("costMax")
	profitMax := c.Int("profitMax")

	for l := 0; l < c.Int("count"); l++ {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		for _, n := range machines {
			for _, horizon := range horizons {
				for _, cash := range cashes {
					for _, p := range strategies {
						specs := make([]machrep.MachineSpec, n)
						for i := 0; i < n; i++ {
							cost := 2 + rng.Intn(costMax-1)
							daily := 1
							if p == machrep.PROFIT_GEN_RNG {
								daily = 1 + rng.Intn(profitMax)
							}
							specs[i] = machrep.MachineSpec{
								Day:          1 + rng.Intn(horizon),
								PurchaseCost: float64(cost),
								ResaleValue:  float64(rng.Intn(cost)),
								DailyProfit:  float64(daily),
							}
						}

						comment := fmt.Sprintf("%s instance Nr. %d with %d machines, horizon %d, cash %d and profits generated as %s", name, l, n, horizon, cash, p)
						instName := fmt.Sprintf("%s_%d_%d_%d_%s_%d", name, n, horizon, cash, p, l)
						inst := machrep.Instance{Name: instName, Comment: comment, Type: "machrep", MachineCount: n, InitialCash: float64(cash), HorizonDays: horizon, Machines: specs}

						jsonInst, err := json.MarshalIndent(inst, "", "\t")
						if err != nil {
							return err
						}
						jsonInst = []byte(machrep.SanitizeJsonArrayLineBreaks(string(jsonInst)))
						if err = os.WriteFile(fmt.Sprintf("%s/%s.json", output, instName), jsonInst, 0644); err != nil {
							return err
						}
					}
				}
			}
		}
	}
	return nil
}
