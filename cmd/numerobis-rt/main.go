// cmd/numerobis-rt/main.go: CLI smoke-test harness for the Numerobis
// embedding ABI.
//
// There is no compiler front-end in this module, so this CLI does not
// parse Numerobis source. It drives a handful of worked end-to-end
// scenarios directly through abi's exported functions, the same calls
// a compiled program would make, and prints each alongside its
// output.
//
// Usage:
//
//	numerobis-rt run          # run every scenario
//	numerobis-rt run -n 3     # run one scenario by number
package main

import (
	"fmt"
	"log"

	"github.com/rphle/numerobis-runtime/abi"
	"github.com/rphle/numerobis-runtime/diag"
	"github.com/rphle/numerobis-runtime/number"
	"github.com/rphle/numerobis-runtime/value"
	"github.com/spf13/cobra"
)

type scenario struct {
	n      int
	source string
	run    func() string
}

func scenarios() []scenario {
	return []scenario{
		{1, "echo(1m + 2m)", func() string {
			sum, err := abi.Add(abi.Int(1, abi.Meter), abi.Int(2, abi.Meter))
			if err != nil {
				log.Fatalf("scenario 1: %v", err)
			}
			return abi.Str(sum.Number())
		}},
		{2, "echo((1 m) / (1 s))", func() string {
			got := abi.Div(number.Int(1, abi.Meter), number.Int(1, abi.Second), diag.Loc{Line: 1}, nil)
			return abi.Str(got)
		}},
		{3, "echo(2 * 60 dBm)", func() string {
			return abi.Str(abi.Mul(number.Int(2, nil), number.Int(60, abi.DecibelMilliwatt)))
		}},
		{4, "echo(60 dBm |+| 60 dBm)", func() string {
			return abi.Str(abi.DAdd(number.Int(60, abi.DecibelMilliwatt), number.Int(60, abi.DecibelMilliwatt)))
		}},
		{5, "echo(0°C -> K)", func() string {
			return abi.Str(abi.Convert(number.Int(0, abi.Celsius), abi.Kelvin))
		}},
		{6, "echo([1,2,3][-1])", func() string {
			list := value.NewList([]value.Value{
				abi.Int(1, abi.One()),
				abi.Int(2, abi.One()),
				abi.Int(3, abi.One()),
			})
			got := abi.GetItem(list, -1, diag.Loc{Line: 1}, nil)
			return value.Str(got)
		}},
	}
}

func newRootCmd() *cobra.Command {
	var n int

	root := &cobra.Command{
		Use:   "numerobis-rt",
		Short: "Smoke-test harness for the Numerobis embedding ABI",
	}

	run := &cobra.Command{
		Use:   "run",
		Short: "Run one or all of the worked end-to-end scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			abi.RegisterUnitTable(abi.BuiltinUnits{})
			for _, s := range scenarios() {
				if n != 0 && s.n != n {
					continue
				}
				log.Printf("scenario %d: %s", s.n, s.source)
				fmt.Println(s.run())
			}
			return nil
		},
	}
	run.Flags().IntVarP(&n, "scenario", "n", 0, "run only this scenario number (default: all)")
	root.AddCommand(run)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
