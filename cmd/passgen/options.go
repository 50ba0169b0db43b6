package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-pass-gen/models"
)

// envSealPassphrase lets scripts seal exports without putting the
// passphrase on the command line.
const envSealPassphrase = "PASSGEN_SEAL_PASSPHRASE"

var errUnknownMode = errors.New("unknown mode")

type options struct {
	cfg models.GenerationConfig

	format     models.ExportFormat
	out        string
	passphrase string

	breach      bool
	workers     int
	interactive bool
	quiet       bool
}

// parseOptions maps command-line flags onto a generation config. Defaults
// match the generator screen of the terminal client.
func parseOptions(args []string, stderr io.Writer) (options, error) {
	def := models.DefaultGenerationConfig()
	opts := options{cfg: def}

	var (
		mode                          string
		format                        string
		upper, lower, digits, symbols bool
	)

	fs := flag.NewFlagSet("passgen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&mode, "mode", string(def.Mode), "standard, passphrase, pattern or bulk")
	fs.IntVar(&opts.cfg.Length, "length", def.Length, "secret length (standard, bulk)")
	fs.BoolVar(&upper, "upper", true, "include upper-case letters")
	fs.BoolVar(&lower, "lower", true, "include lower-case letters")
	fs.BoolVar(&digits, "digits", true, "include digits")
	fs.BoolVar(&symbols, "symbols", true, "include symbols")
	fs.StringVar(&opts.cfg.CustomChars, "custom", "", "extra characters added to the charset")
	fs.BoolVar(&opts.cfg.ExcludeSimilar, "exclude-similar", false, "drop look-alike characters such as O0lI1|")
	fs.BoolVar(&opts.cfg.ExcludeAmbiguous, "exclude-ambiguous", false, "drop brackets, quotes and similar symbols")
	fs.BoolVar(&opts.cfg.AvoidRepeating, "avoid-repeating", false, "no character twice until the charset is used up")
	fs.IntVar(&opts.cfg.WordCount, "words", def.WordCount, "passphrase word count")
	fs.StringVar(&opts.cfg.Separator, "separator", def.Separator, "passphrase word separator")
	fs.BoolVar(&opts.cfg.CapitalizeWords, "capitalize", false, "capitalize passphrase words")
	fs.BoolVar(&opts.cfg.AppendNumberAndSymbol, "append", false, "append a digit and a symbol to the passphrase")
	fs.StringVar(&opts.cfg.Pattern, "pattern", def.Pattern, "pattern over L, U, N, S; other characters are literal")
	fs.IntVar(&opts.cfg.BulkCount, "count", def.BulkCount, "number of secrets in bulk mode")

	fs.StringVar(&format, "format", "", "export format: "+formatList())
	fs.StringVar(&opts.out, "out", "", "export file path, stdout when empty")
	fs.BoolVar(&opts.breach, "breach", false, "check every secret against the breach corpus")
	fs.IntVar(&opts.workers, "workers", 4, "parallel breach lookups")
	fs.BoolVar(&opts.interactive, "interactive", false, "ask for the options interactively")
	fs.BoolVar(&opts.interactive, "i", false, "shorthand for -interactive")
	fs.BoolVar(&opts.quiet, "q", false, "print secrets only")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	opts.cfg.Mode = models.Mode(strings.ToLower(mode))
	if !knownMode(opts.cfg.Mode) {
		return options{}, fmt.Errorf("%w: %q", errUnknownMode, mode)
	}

	opts.cfg.Categories = nil
	for category, on := range map[models.Category]bool{
		models.CategoryUpper:   upper,
		models.CategoryLower:   lower,
		models.CategoryDigits:  digits,
		models.CategorySymbols: symbols,
	} {
		opts.cfg = opts.cfg.WithCategory(category, on)
	}

	opts.format = models.ExportFormat(strings.ToLower(format))
	opts.passphrase = os.Getenv(envSealPassphrase)

	return opts, nil
}

func knownMode(mode models.Mode) bool {
	for _, m := range models.Modes {
		if m == mode {
			return true
		}
	}
	return false
}

func formatList() string {
	names := make([]string, 0, len(models.ExportFormats))
	for _, f := range models.ExportFormats {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}
