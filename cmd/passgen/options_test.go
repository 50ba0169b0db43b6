package main

import (
	"errors"
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-gen/models"
)

func TestParseOptions_Defaults(t *testing.T) {
	opts, err := parseOptions([]string{}, io.Discard)

	require.NoError(t, err)
	assert.Equal(t, models.DefaultGenerationConfig(), opts.cfg)
	assert.Empty(t, opts.format)
	assert.False(t, opts.breach)
	assert.Equal(t, 4, opts.workers)
}

func TestParseOptions_Flags(t *testing.T) {
	t.Setenv(envSealPassphrase, "hunter2")

	opts, err := parseOptions([]string{
		"-mode", "BULK", "-length", "24", "-symbols=false", "-digits=false",
		"-exclude-similar", "-count", "3", "-format", "csv", "-out", "out.csv", "-breach", "-q",
	}, io.Discard)

	require.NoError(t, err)
	assert.Equal(t, models.ModeBulk, opts.cfg.Mode)
	assert.Equal(t, 24, opts.cfg.Length)
	assert.Equal(t, []models.Category{models.CategoryUpper, models.CategoryLower}, opts.cfg.Categories)
	assert.True(t, opts.cfg.ExcludeSimilar)
	assert.Equal(t, 3, opts.cfg.BulkCount)
	assert.Equal(t, models.ExportCSV, opts.format)
	assert.Equal(t, "out.csv", opts.out)
	assert.Equal(t, "hunter2", opts.passphrase)
	assert.True(t, opts.breach)
	assert.True(t, opts.quiet)
}

func TestParseOptions_Passphrase(t *testing.T) {
	opts, err := parseOptions([]string{"-mode", "passphrase", "-words", "7", "-separator", ".", "-capitalize", "-append"}, io.Discard)

	require.NoError(t, err)
	assert.Equal(t, models.ModePassphrase, opts.cfg.Mode)
	assert.Equal(t, 7, opts.cfg.WordCount)
	assert.Equal(t, ".", opts.cfg.Separator)
	assert.True(t, opts.cfg.CapitalizeWords)
	assert.True(t, opts.cfg.AppendNumberAndSymbol)
}

func TestParseOptions_Errors(t *testing.T) {
	_, err := parseOptions([]string{"-mode", "diceware"}, io.Discard)
	assert.ErrorIs(t, err, errUnknownMode)

	_, err = parseOptions([]string{"-length", "many"}, io.Discard)
	assert.Error(t, err)

	_, err = parseOptions([]string{"-h"}, io.Discard)
	assert.True(t, errors.Is(err, flag.ErrHelp))
}
