package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/ezrec/tm/computation"
	"github.com/ezrec/tm/library"
)

func TestRecorder(t *testing.T) {
	assert := assert.New(t)

	reg := prometheus.NewRegistry()
	rec, err := NewRecorder(reg)
	assert.NoError(err)

	m, _ := library.Lookup("last-zero")
	for _, run := range []struct {
		word   string
		limits computation.Limits
	}{
		{"1110", computation.Limits{}},
		{"0001", computation.Limits{}},
		{"1110", computation.Limits{MaxTime: 3}},
	} {
		c, err := computation.BoundedStart(m, run.word, run.limits)
		assert.NoError(err)
		c.Hooks = rec.Hooks()
		c.Run()
	}

	assert.Equal(float64(7+7+3), testutil.ToFloat64(rec.Steps))
	assert.Equal(float64(1), testutil.ToFloat64(rec.Computations.WithLabelValues("accept")))
	assert.Equal(float64(1), testutil.ToFloat64(rec.Computations.WithLabelValues("reject")))
	assert.Equal(float64(1), testutil.ToFloat64(rec.Computations.WithLabelValues("timeout")))
	assert.Equal(1, testutil.CollectAndCount(rec.TapeCells, "tm_tape_cells"))

	// A second recorder cannot share the registry.
	_, err = NewRecorder(reg)
	assert.Error(err)
}
