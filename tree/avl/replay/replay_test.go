package replay

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func small() Config {
	return Config{
		Nodes:    500,
		Max:      300,
		Deletes:  200,
		Inserts:  300,
		Seed:     42,
		Rounds:   4,
		Parallel: 2,
		Check:    true,
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) { *c = Defaults() }, false},
		{"small", func(c *Config) {}, false},
		{"empty workload", func(c *Config) { c.Nodes, c.Deletes, c.Inserts = 0, 0, 0 }, false},
		{"delete too many", func(c *Config) { c.Deletes = c.Nodes + 1 }, true},
		{"negative max", func(c *Config) { c.Max = -1 }, true},
		{"negative inserts", func(c *Config) { c.Inserts = -1 }, true},
		{"no rounds", func(c *Config) { c.Rounds = 0 }, true},
		{"no parallelism", func(c *Config) { c.Parallel = 0 }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := small()
			tt.mutate(&c)
			if tt.wantErr {
				assert.Error(t, c.Validate())
			} else {
				assert.NoError(t, c.Validate())
			}
		})
	}
}

func TestNewWorkload(t *testing.T) {
	cfg := small()
	w := newWorkload(cfg, 1)

	require.Len(t, w.build, cfg.Nodes)
	require.Len(t, w.deletes, cfg.Deletes)
	require.Len(t, w.inserts, cfg.Inserts)

	for _, k := range append(append([]int{}, w.build...), w.inserts...) {
		assert.GreaterOrEqual(t, k, -cfg.Max)
		assert.LessOrEqual(t, k, cfg.Max)
	}

	// deletes are drawn from build without replacement
	count := make(map[int]int)
	for _, k := range w.build {
		count[k]++
	}
	for _, k := range w.deletes {
		count[k]--
		assert.GreaterOrEqual(t, count[k], 0, "deleted %d too often", k)
	}

	assert.Equal(t, w, newWorkload(cfg, 1))
	assert.NotEqual(t, w, newWorkload(cfg, 2))
}

func TestRun(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	cfg := small()

	reports, err := Run(context.Background(), cfg, log)
	require.NoError(t, err)
	require.Len(t, reports, cfg.Rounds)

	for r, rep := range reports {
		assert.Equal(t, r, rep.Round)
		assert.Equal(t, cfg.Seed+int64(r), rep.Seed)
		assert.False(t, rep.Failed(), "round %d: %+v", r, rep)
		assert.Equal(t, cfg.Nodes-cfg.Deletes+cfg.Inserts, rep.Len)
		assert.GreaterOrEqual(t, rep.Slots, rep.Len)
		assert.Greater(t, rep.Height, 0)
	}

	// one entry per phase per round
	assert.Len(t, hook.AllEntries(), 3*cfg.Rounds)
	goleak.VerifyNone(t)
}

func TestRun_Invalid(t *testing.T) {
	log, _ := test.NewNullLogger()
	cfg := small()
	cfg.Rounds = 0

	_, err := Run(context.Background(), cfg, log)
	assert.Error(t, err)
}

func TestRun_Canceled(t *testing.T) {
	log, _ := test.NewNullLogger()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, small(), log)
	assert.ErrorIs(t, err, context.Canceled)
	goleak.VerifyNone(t)
}

func TestReference(t *testing.T) {
	r := NewReference(3, 1, 3, 2)

	assert.Equal(t, []int{1, 2, 3, 3}, r.Values())
	assert.True(t, r.Delete(3))
	assert.Equal(t, []int{1, 2, 3}, r.Values())
	assert.False(t, r.Delete(4))
	assert.True(t, r.Delete(1))
	assert.False(t, r.Delete(1))

	r.Insert(0)
	assert.Equal(t, []int{0, 2, 3}, r.Values())
	assert.Equal(t, 3, r.Len())
}
