// Package replay drives an avl.Tree with a random workload and
// checks the result against an independent ordered multiset.
//
// One round builds a tree from Nodes random keys, deletes Deletes of
// those keys, inserts Inserts fresh ones, then compares the tree's
// sorted contents with the Reference that saw the same operations.
// Each phase is timed.
package replay

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"go.lepak.sg/flatavl/tree/avl"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Config describes the workload of every round and how rounds run.
type Config struct {
	// Nodes is the number of keys the tree is built from.
	Nodes int
	// Keys are drawn uniformly from [-Max, Max].
	Max int
	// Deletes is the number of built keys deleted again, chosen
	// without replacement. At most Nodes.
	Deletes int
	// Inserts is the number of fresh keys inserted after deleting.
	Inserts int
	// Seed seeds round 0; round r uses Seed+r.
	// Zero picks a seed from the clock.
	Seed int64
	// Rounds is the number of independent rounds.
	Rounds int
	// Parallel bounds how many rounds run at once.
	Parallel int
	// Check runs the tree's invariant check after each phase.
	Check bool
}

// Defaults returns the workload of the original benchmark:
// 10k keys in [-10k, 10k], 2k deletes, 3k inserts.
func Defaults() Config {
	return Config{
		Nodes:    10000,
		Max:      10000,
		Deletes:  2000,
		Inserts:  3000,
		Rounds:   1,
		Parallel: runtime.GOMAXPROCS(0),
	}
}

// Validate reports the first setting Run cannot work with.
func (c Config) Validate() error {
	switch {
	case c.Nodes < 0, c.Deletes < 0, c.Inserts < 0, c.Max < 0:
		return errors.New("counts and max must not be negative")
	case c.Deletes > c.Nodes:
		return fmt.Errorf("cannot delete %d of %d keys", c.Deletes, c.Nodes)
	case c.Rounds < 1:
		return errors.New("need at least one round")
	case c.Parallel < 1:
		return errors.New("parallel must be at least 1")
	}
	return nil
}

// Report is the outcome of one round.
type Report struct {
	Round int
	Seed  int64

	Build, Delete, Insert, Sort time.Duration

	// Len, Height and Slots describe the tree at the end.
	Len, Height, Slots int

	// Match is true if the tree's values equal the Reference's.
	Match bool
	// CheckErr is the first invariant violation seen, if Config.Check.
	CheckErr error
}

// Failed reports whether the round found a problem.
func (r Report) Failed() bool {
	return !r.Match || r.CheckErr != nil
}

// workload is the random input of one round.
type workload struct {
	build, deletes, inserts []int
}

func newWorkload(cfg Config, seed int64) workload {
	rd := rand.New(rand.NewSource(seed))
	key := func() int {
		return rd.Intn(2*cfg.Max+1) - cfg.Max
	}

	w := workload{
		build:   make([]int, cfg.Nodes),
		deletes: make([]int, cfg.Deletes),
		inserts: make([]int, cfg.Inserts),
	}

	for i := range w.build {
		w.build[i] = key()
	}
	for i, j := range rd.Perm(cfg.Nodes)[:cfg.Deletes] {
		w.deletes[i] = w.build[j]
	}
	for i := range w.inserts {
		w.inserts[i] = key()
	}

	return w
}

// Run runs cfg.Rounds rounds, at most cfg.Parallel at a time, and
// returns their reports in round order. Each round owns its tree.
// It returns early with the context's error if ctx is done.
func Run(ctx context.Context, cfg Config, log logrus.FieldLogger) ([]Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	reports := make([]Report, cfg.Rounds)
	sema := semaphore.NewWeighted(int64(cfg.Parallel))
	g, gctx := errgroup.WithContext(ctx)

	for r := 0; r < cfg.Rounds; r++ {
		if err := sema.Acquire(gctx, 1); err != nil {
			// gctx was canceled
			break
		}

		r := r
		g.Go(func() error {
			defer sema.Release(1)

			rep, err := RunRound(gctx, cfg, r, log)
			reports[r] = rep
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return reports, err
	}

	return reports, ctx.Err()
}

// RunRound runs round r of cfg on the calling goroutine.
func RunRound(ctx context.Context, cfg Config, r int, log logrus.FieldLogger) (Report, error) {
	rep := Report{
		Round: r,
		Seed:  cfg.Seed + int64(r),
	}
	log = log.WithFields(logrus.Fields{
		"round": rep.Round,
		"seed":  rep.Seed,
	})

	w := newWorkload(cfg, rep.Seed)
	ref := NewReference(w.build...)

	var tr *avl.Tree[int]
	phases := []struct {
		name    string
		elapsed *time.Duration
		run     func()
	}{
		{"build", &rep.Build, func() {
			tr = avl.New(w.build...)
		}},
		{"delete", &rep.Delete, func() {
			for _, k := range w.deletes {
				tr.Delete(k)
			}
		}},
		{"insert", &rep.Insert, func() {
			for _, k := range w.inserts {
				tr.Insert(k)
			}
		}},
	}

	for _, ph := range phases {
		if err := ctx.Err(); err != nil {
			return rep, err
		}

		start := time.Now()
		ph.run()
		*ph.elapsed = time.Since(start)

		log.WithFields(logrus.Fields{
			"phase":   ph.name,
			"elapsed": *ph.elapsed,
			"len":     tr.Len(),
		}).Debug("phase done")

		if cfg.Check && rep.CheckErr == nil {
			if err := tr.Check(); err != nil {
				rep.CheckErr = fmt.Errorf("after %s: %w", ph.name, err)
				log.WithError(err).WithField("phase", ph.name).Error("invariant check failed")
			}
		}
	}

	for _, k := range w.deletes {
		ref.Delete(k)
	}
	for _, k := range w.inserts {
		ref.Insert(k)
	}

	start := time.Now()
	got := tr.Values()
	rep.Sort = time.Since(start)

	rep.Match = slices.Equal(got, ref.Values())
	rep.Len, rep.Height, rep.Slots = tr.Len(), tr.Height(), tr.Slots()

	return rep, nil
}
