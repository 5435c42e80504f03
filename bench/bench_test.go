// SPDX-License-Identifier: MIT

package bench_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/tinylr/bench"
	"github.com/katalvlaran/tinylr/dim"
	"github.com/katalvlaran/tinylr/pivot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallConfig() bench.Config {
	cfg := bench.DefaultConfig()
	cfg.Size = 8
	cfg.Iterations = 20
	cfg.Solve = true
	cfg.Multiply = true

	return cfg
}

func TestDefaultConfig(t *testing.T) {
	cfg := bench.DefaultConfig()
	assert.Equal(t, int64(123), cfg.Seed)
	assert.Equal(t, pivot.AbsMax, cfg.Strategy)
	assert.True(t, cfg.InvertDiagonal)
	assert.False(t, cfg.Fixed)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cfg := bench.DefaultConfig()
	cfg.Size = -1
	assert.ErrorIs(t, cfg.Validate(), bench.ErrBadSize)

	cfg = bench.DefaultConfig()
	cfg.Iterations = 0
	assert.ErrorIs(t, cfg.Validate(), bench.ErrBadIterations)

	cfg = bench.DefaultConfig()
	cfg.Strategy = pivot.Strategy(42)
	assert.ErrorIs(t, cfg.Validate(), pivot.ErrUnknownStrategy)
}

func TestDimension(t *testing.T) {
	assert.Equal(t, dim.Dimension(dim.Fixed[dim.N8]{}), bench.Dimension(8, true))
	assert.Equal(t, dim.Dimension(dim.Fixed[dim.N64]{}), bench.Dimension(64, true))
	assert.Equal(t, dim.Dimension(dim.NewDynamic(8)), bench.Dimension(8, false))
	assert.Equal(t, dim.Dimension(dim.NewDynamic(12)), bench.Dimension(12, true))
}

func TestRun_Deterministic(t *testing.T) {
	cfg := smallConfig()
	a, err := bench.Run(context.Background(), cfg)
	require.NoError(t, err)
	b, err := bench.Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, a.Checksum, b.Checksum)
	assert.Equal(t, "absmax", a.Strategy)
	assert.Equal(t, "dynamic(8)", a.Dimension)
}

func TestRun_FixedMatchesDynamic(t *testing.T) {
	cfg := smallConfig()
	dyn, err := bench.Run(context.Background(), cfg)
	require.NoError(t, err)

	cfg.Fixed = true
	fix, err := bench.Run(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, "fixed(8)", fix.Dimension)
	assert.Equal(t, dyn.Checksum, fix.Checksum)
}

func TestRun_AllStrategies(t *testing.T) {
	for _, s := range []pivot.Strategy{pivot.None, pivot.AbsMax, pivot.AbsMaxSwap} {
		cfg := smallConfig()
		cfg.Strategy = s
		cfg.InvertDiagonal = false
		_, err := bench.Run(context.Background(), cfg)
		assert.NoError(t, err, s.String())
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bench.Run(ctx, smallConfig())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_InvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Iterations = 0
	_, err := bench.Run(context.Background(), cfg)
	assert.ErrorIs(t, err, bench.ErrBadIterations)
}

func TestSweep(t *testing.T) {
	cfg := smallConfig()
	res, err := bench.Sweep(context.Background(), cfg, []int{2, 4, 8})
	require.NoError(t, err)
	require.Len(t, res, 3)
	for i, n := range []int{2, 4, 8} {
		assert.Equal(t, n, res[i].Config.Size)
	}

	res, err = bench.Sweep(context.Background(), cfg, []int{2, -1, 4})
	assert.ErrorIs(t, err, bench.ErrBadSize)
	assert.Len(t, res, 1)
}

func TestWriteJSON(t *testing.T) {
	res, err := bench.Sweep(context.Background(), smallConfig(), []int{2, 3})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, bench.WriteJSON(&buf, res))

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "absmax", decoded[0]["strategy"])
	assert.Contains(t, decoded[1], "factorize_ns")
	cfg, ok := decoded[1]["config"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, 3.0, cfg["size"])
}

func TestPlot(t *testing.T) {
	res, err := bench.Sweep(context.Background(), smallConfig(), []int{2, 4, 8})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "sweep.png")
	require.NoError(t, bench.Plot(res, path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
