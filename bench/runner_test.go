package bench

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/pairstore"
)

func TestNewRunnerValidation(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want error
	}{
		{"zero ops", []Option{WithOps(0)}, ErrInvalidOps},
		{"too many ops", []Option{WithOps(MaxOps + 1)}, ErrInvalidOps},
		{"unknown impl", []Option{WithImpls("skiplist")}, ErrUnknownImpl},
		{"no impls", []Option{WithImpls()}, ErrUnknownImpl},
		{"unknown workload", []Option{WithWorkloads("bursty")}, ErrUnknownWorkload},
		{"no workloads", []Option{WithWorkloads()}, ErrUnknownWorkload},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRunner(tt.opts...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestRunnerRun(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	var logs bytes.Buffer

	r, err := NewRunner(
		WithOps(500),
		WithSeed(4711),
		WithLogger(NewLogger(slog.NewJSONHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))),
		WithMetricsCollector(metrics),
	)
	require.NoError(t, err)

	rep, err := r.Run(context.Background())
	require.NoError(t, err)

	nImpls, nKinds := len(ImplNames()), len(Kinds())
	assert.NotEmpty(t, rep.RunID)
	assert.Len(t, rep.Workloads, nKinds)
	assert.Len(t, rep.Results, nImpls*nKinds*4)
	assert.Empty(t, rep.Failed())

	for _, res := range rep.Results {
		assert.Equal(t, 500, res.Ops)
		assert.True(t, res.Verified, "%s/%s/%s", res.Workload, res.Impl, res.Op)
	}

	// Every implementation ends up with the same number of distinct keys.
	for _, ws := range rep.Workloads {
		for _, res := range rep.Results {
			if res.Workload == ws.Kind {
				assert.Equal(t, ws.Distinct, res.Len)
			}
		}
	}

	stats := metrics.GetStats()
	phases := int64(nImpls * nKinds)
	assert.Equal(t, phases, stats.InsertPhases)
	assert.Equal(t, phases, stats.BulkPhases)
	assert.Equal(t, 2*phases, stats.LookupPhases)
	assert.Equal(t, 2*phases*500, stats.LookupOps)
	assert.Zero(t, stats.LookupMisses)
	assert.Zero(t, stats.BulkErrors)

	assert.Contains(t, logs.String(), `"msg":"phase completed"`)
	assert.Contains(t, logs.String(), `"msg":"workload generated"`)
	assert.Contains(t, logs.String(), `"msg":"run completed"`)
}

// lossyMap drops every other insert so that verification must fail.
type lossyMap struct {
	pairstore.Map
	n int
}

func (m *lossyMap) Insert(key, value int) {
	m.n++
	if m.n%2 == 0 {
		return
	}
	m.Map.Insert(key, value)
}

func TestRunnerReportsVerificationFailures(t *testing.T) {
	registry["lossy"] = func(c int) pairstore.Map {
		return &lossyMap{Map: pairstore.New(pairstore.WithCapacity(c))}
	}
	t.Cleanup(func() { delete(registry, "lossy") })

	r, err := NewRunner(WithOps(100), WithImpls("lossy"), WithWorkloads(Sequential))
	require.NoError(t, err)

	rep, err := r.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVerificationFailed)

	failed := rep.Failed()
	require.Len(t, failed, 2)
	assert.Equal(t, OpInsert, failed[0].Op)
	assert.Equal(t, OpLookup, failed[1].Op)
	assert.Equal(t, 50, failed[1].Misses)
}

// shiftedBulkMap stores every batch under shifted keys, keeping the
// number of distinct keys intact.
type shiftedBulkMap struct {
	pairstore.Map
}

func (m *shiftedBulkMap) BulkInsert(keys, values []int) error {
	shifted := make([]int, len(keys))
	for i, k := range keys {
		shifted[i] = k + 1_000_000_000
	}
	return m.Map.BulkInsert(shifted, values)
}

func TestRunnerVerifiesBulkContents(t *testing.T) {
	registry["shifted"] = func(c int) pairstore.Map {
		return &shiftedBulkMap{Map: pairstore.New(pairstore.WithCapacity(c))}
	}
	t.Cleanup(func() { delete(registry, "shifted") })

	metrics := &BasicMetricsCollector{}
	r, err := NewRunner(
		WithOps(100),
		WithImpls("shifted"),
		WithWorkloads(Sequential),
		WithMetricsCollector(metrics),
	)
	require.NoError(t, err)

	rep, err := r.Run(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVerificationFailed)

	failed := rep.Failed()
	require.Len(t, failed, 2)
	assert.Equal(t, OpBulkInsert, failed[0].Op)
	assert.Equal(t, 100, failed[0].Len, "Len alone does not reveal the corruption")
	assert.Equal(t, 100, failed[0].Misses)
	assert.Equal(t, OpBulkLookup, failed[1].Op)
	assert.Equal(t, 100, failed[1].Misses)

	assert.Equal(t, int64(100), metrics.GetStats().LookupMisses)
}

func TestRunnerCanceled(t *testing.T) {
	r, err := NewRunner(WithOps(10))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunnerCapacity(t *testing.T) {
	r, err := NewRunner()
	require.NoError(t, err)
	assert.Equal(t, 123, r.capacity(123))

	r, err = NewRunner(WithCapacityHint(0))
	require.NoError(t, err)
	assert.Equal(t, 0, r.capacity(123))
}
