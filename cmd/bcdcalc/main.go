// Copyright 2026, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/bcdcalc/regfile"
	"github.com/ezrec/bcdcalc/script"
	"github.com/ezrec/bcdcalc/translate"
)

func newRootCommand() (rootCmd *cobra.Command) {
	rootCmd = &cobra.Command{
		Use:           "bcdcalc",
		Short:         translate.From("Pocket calculator BCD register file"),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var verbose bool
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose mode")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: translate.From("Show the power-on register file"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			rf := regfile.NewRegisterFile()
			_, err = translate.Fprintf(cmd.OutOrStdout(), "%v", rf.String())
			return
		},
	}

	var a, b string
	canonCmd := &cobra.Command{
		Use:   "canon",
		Short: translate.From("Canonicalize raw A and B registers into C"),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			rf := regfile.NewRegisterFile()
			rf.Verbose = verbose

			err = rf.Write(regfile.REG_A, a)
			if err != nil {
				return
			}
			err = rf.Write(regfile.REG_B, b)
			if err != nil {
				return
			}

			rf.Canonicalize()

			_, err = translate.Fprintf(cmd.OutOrStdout(), "%v", rf.String())
			return
		},
	}
	canonCmd.Flags().StringVar(&a, "a", regfile.POWER_ON_A, "Raw register A")
	canonCmd.Flags().StringVar(&b, "b", regfile.POWER_ON_B, "Raw register B")

	runCmd := &cobra.Command{
		Use:   "run <script.star>...",
		Short: translate.From("Run trace scripts against a fresh register file"),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			for _, path := range args {
				var inf *os.File
				inf, err = os.Open(path)
				if err != nil {
					return
				}

				rf := regfile.NewRegisterFile()
				rf.Verbose = verbose

				sc := script.NewScript(rf)
				sc.Verbose = verbose
				sc.Output = cmd.OutOrStdout()

				_, err = sc.Exec(path, inf)
				inf.Close()
				if err != nil {
					return
				}
			}

			return
		},
	}

	rootCmd.AddCommand(showCmd, canonCmd, runCmd)

	return
}

func main() {
	err := newRootCommand().Execute()
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}
