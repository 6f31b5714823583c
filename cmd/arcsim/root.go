package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/djdv/go-arcreplacer/internal/workload"
)

type settings struct {
	capacities []int
	patterns   []string
	policies   []string
	length     int
	seeds      int
	verbose    bool
}

func newRootCommand() *cobra.Command {
	var (
		set = settings{
			capacities: []int{128, 512},
			policies:   []string{policyARC, policyHashicorp},
			seeds:      3,
		}
		cmd = &cobra.Command{
			Use:   "arcsim",
			Short: "Replay synthetic page access patterns against replacement policies",
			Long: "arcsim drives a buffer pool with each access pattern and reports\n" +
				"the hit rate of every policy, averaged over several seeds.",
			Args:          cobra.NoArgs,
			SilenceUsage:  true,
			SilenceErrors: false,
		}
	)
	for _, pattern := range workload.Patterns() {
		set.patterns = append(set.patterns, pattern.Name)
	}
	flags := cmd.Flags()
	flags.IntSliceVarP(&set.capacities, "capacity", "c", set.capacities, "pool capacities in frames")
	flags.StringSliceVarP(&set.patterns, "pattern", "p", set.patterns, "access patterns to replay")
	flags.StringSliceVar(&set.policies, "policy", set.policies, "policies to compare ("+policyARC+", "+policyHashicorp+")")
	flags.IntVarP(&set.length, "length", "n", 0, "truncate each sequence to this many accesses (0 keeps the full sequence)")
	flags.IntVar(&set.seeds, "seeds", set.seeds, "number of seeds per combination")
	flags.BoolVarP(&set.verbose, "verbose", "v", false, "log every run and replacer decision")
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		log := logrus.New()
		log.SetOutput(cmd.ErrOrStderr())
		log.SetLevel(logrus.WarnLevel)
		if set.verbose {
			log.SetLevel(logrus.DebugLevel)
		}
		return execute(cmd.OutOrStdout(), log, set)
	}
	return cmd
}

func (set settings) simulations() ([]simulation, error) {
	if set.seeds < 1 {
		return nil, fmt.Errorf("%w: must be >=1 but %d was requested",
			ErrInvalidSeeds, set.seeds)
	}
	for _, policy := range set.policies {
		if err := checkPolicy(policy); err != nil {
			return nil, err
		}
	}
	var sims []simulation
	for _, name := range set.patterns {
		pattern, err := workload.Lookup(name)
		if err != nil {
			return nil, err
		}
		for _, capacity := range set.capacities {
			for _, policy := range set.policies {
				sims = append(sims, simulation{
					pattern:  pattern,
					capacity: capacity,
					policy:   policy,
					length:   set.length,
					seeds:    set.seeds,
				})
			}
		}
	}
	return sims, nil
}

func execute(output io.Writer, log *logrus.Logger, set settings) error {
	sims, err := set.simulations()
	if err != nil {
		return err
	}
	table := tabwriter.NewWriter(output, 0, 0, 2, ' ', 0)
	fmt.Fprintln(table, "PATTERN\tCAPACITY\tPOLICY\tHIT RATE\tSTDDEV")
	for _, sim := range sims {
		result, err := sim.run(log)
		if err != nil {
			return err
		}
		fmt.Fprintf(table, "%s\t%d\t%s\t%.2f%%\t%.2f\n",
			result.pattern.Name, result.capacity, result.policy,
			result.mean*100, result.stddev*100)
	}
	return table.Flush()
}
