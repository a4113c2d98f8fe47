package main

import (
	"bytes"
	"testing"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAdopters(t *testing.T) {
	a, err := parseAdopters("1,1,1")
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 1, 1}, a)

	a, err = parseAdopters(" 3, 0 ,12")
	require.NoError(t, err)
	assert.Equal(t, []uint64{3, 0, 12}, a)

	_, err = parseAdopters("1,-1")
	assert.Error(t, err)
	_, err = parseAdopters("1,,2")
	assert.Error(t, err)
}

func TestFormatShares(t *testing.T) {
	assert.Equal(t, "[0.6694 0.3306]", formatShares([]float64{3.24 / 4.84, 1.6 / 4.84}))
	assert.Equal(t, "[]", formatShares(nil))
}

func TestNewEnsemble(t *testing.T) {
	e, err := newEnsemble("1,1,1", 200, 5, 9)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 1, 1}, e.Adopters)
	assert.Equal(t, 200, e.Timesteps)
	assert.Equal(t, 5, e.Runs)
	assert.Equal(t, uint64(9), e.Seed)

	_, err = newEnsemble("1,1", 100, 0, 0)
	assert.EqualError(t, err, "need at least one run, got 0")
	_, err = newEnsemble("1,1", -1, 3, 0)
	assert.EqualError(t, err, "steps must not be negative, got -1")
	_, err = newEnsemble("x", 100, 3, 0)
	assert.Error(t, err)
}

func TestSetupLogging(t *testing.T) {
	var buf bytes.Buffer
	setupLogging(&buf, false)
	assert.Equal(t, logging.INFO, logging.GetLevel("polya"))
	logger.Infof("reproduced %d figures", 2)
	logger.Debugf("hidden")
	assert.Contains(t, buf.String(), "polya/cmd INFO reproduced 2 figures")
	assert.NotContains(t, buf.String(), "hidden")

	setupLogging(&buf, true)
	assert.Equal(t, logging.DEBUG, logging.GetLevel("polya"))
	assert.Equal(t, logging.DEBUG, logging.GetLevel("polya/figure"))
}
