// Command replay builds AVL trees from random keys, deletes and
// reinserts some of them, and checks the sorted result against an
// independent multiset. It exits with status 1 if any round fails.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"go.lepak.sg/flatavl/tree/avl/replay"
)

func main() {
	cfg := replay.Defaults()

	pflag.IntVarP(&cfg.Nodes, "nodes", "n", cfg.Nodes, "number of keys to build the tree from")
	pflag.IntVarP(&cfg.Max, "max", "m", cfg.Max, "keys are drawn from [-max, max]")
	pflag.IntVarP(&cfg.Deletes, "deletes", "d", cfg.Deletes, "number of built keys to delete")
	pflag.IntVarP(&cfg.Inserts, "inserts", "i", cfg.Inserts, "number of keys to insert after deleting")
	pflag.Int64VarP(&cfg.Seed, "seed", "s", cfg.Seed, "seed of the first round, 0 for the clock")
	pflag.IntVarP(&cfg.Rounds, "rounds", "r", cfg.Rounds, "number of rounds")
	pflag.IntVarP(&cfg.Parallel, "parallel", "p", cfg.Parallel, "rounds to run at once")
	pflag.BoolVar(&cfg.Check, "check", cfg.Check, "check tree invariants after every phase")
	verbose := pflag.BoolP("verbose", "v", false, "log every phase")
	pflag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := cfg.Validate(); err != nil {
		log.WithError(err).Error("bad flags")
		pflag.Usage()
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	reports, err := replay.Run(ctx, cfg, log)
	if err != nil {
		log.WithError(err).Error("replay interrupted")
		os.Exit(1)
	}

	failed := 0
	for _, rep := range reports {
		entry := log.WithFields(logrus.Fields{
			"round":  rep.Round,
			"seed":   rep.Seed,
			"build":  rep.Build,
			"delete": rep.Delete,
			"insert": rep.Insert,
			"sort":   rep.Sort,
			"len":    humanize.Comma(int64(rep.Len)),
			"height": rep.Height,
			"slots":  humanize.Comma(int64(rep.Slots)),
		})

		switch {
		case rep.CheckErr != nil:
			failed++
			entry.WithError(rep.CheckErr).Error("invariant check failed")
		case !rep.Match:
			failed++
			entry.Error("tree values differ from reference")
		default:
			entry.Info("round passed")
		}
	}

	log.Infof("%s of %s rounds passed, %s keys per round",
		humanize.Comma(int64(len(reports)-failed)),
		humanize.Comma(int64(len(reports))),
		humanize.Comma(int64(cfg.Nodes)))

	if failed > 0 {
		os.Exit(1)
	}
}
