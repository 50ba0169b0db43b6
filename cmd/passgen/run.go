package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/internal/service"
	"github.com/MKhiriev/go-pass-gen/internal/workers"
	"github.com/MKhiriev/go-pass-gen/models"
)

type passgen struct {
	generator service.GeneratorService
	breach    service.BreachService
	export    service.ExportService

	stdout io.Writer
	logger *logger.Logger
}

// breachLookup checks one secret and keeps the outcome for printing.
type breachLookup struct {
	svc    service.BreachService
	secret string
	result models.BreachResult
}

func (l *breachLookup) Run(ctx context.Context) {
	l.result = l.svc.Check(ctx, l.secret)
}

func (p *passgen) run(ctx context.Context, opts options) error {
	result, err := p.generator.Generate(ctx, opts.cfg)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	if len(result.Secrets) == 0 {
		return fmt.Errorf("nothing to generate: the options leave no characters or words to draw from")
	}

	if opts.format != "" {
		return p.writeExport(ctx, opts, result.Secrets)
	}

	var lookups []*breachLookup
	if opts.breach {
		lookups = p.checkBreaches(ctx, result.Secrets, opts.workers)
	}

	for i, secret := range result.Secrets {
		line := secret
		if lookups != nil {
			line += "  " + breachNote(lookups[i].result)
		}
		fmt.Fprintln(p.stdout, line)
	}

	if !opts.quiet {
		a := result.Assessment
		fmt.Fprintf(p.stdout, "\nstrength: %s, %d bits of entropy, crack time %s\n", a.Tier, a.EntropyBits, a.EstimatedCrackTime)
	}
	return nil
}

func (p *passgen) checkBreaches(ctx context.Context, secrets []string, limit int) []*breachLookup {
	lookups := make([]*breachLookup, len(secrets))
	pool := workers.New(limit)
	for i, secret := range secrets {
		lookups[i] = &breachLookup{svc: p.breach, secret: secret}
		pool.Add(lookups[i])
	}
	pool.Run(ctx)
	return lookups
}

func (p *passgen) writeExport(ctx context.Context, opts options, secrets []string) error {
	file, err := p.export.Export(ctx, opts.format, secrets, opts.passphrase)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	if opts.out == "" {
		_, err = p.stdout.Write(file.Data)
		return err
	}

	if err = os.WriteFile(opts.out, file.Data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", opts.out, err)
	}

	p.logger.Info().Str("func", "*passgen.writeExport").
		Str("path", opts.out).
		Bool("sealed", file.Sealed).
		Msg("export written")
	if !opts.quiet {
		fmt.Fprintf(p.stdout, "wrote %d secrets (%s) to %s\n", len(secrets), humanize.Bytes(uint64(len(file.Data))), opts.out)
	}
	return nil
}

func breachNote(r models.BreachResult) string {
	switch {
	case !r.Checked:
		return "(not checked)"
	case r.Breached():
		return fmt.Sprintf("(seen %s times in breaches)", humanize.Comma(int64(r.OccurrenceCount)))
	default:
		return "(not found in breaches)"
	}
}
