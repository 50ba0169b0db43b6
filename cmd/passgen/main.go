// Command passgen prints freshly generated passwords or passphrases, or
// writes them to an export file.
//
//	passgen -length 24 -symbols=false
//	passgen -mode passphrase -words 6 -capitalize -breach
//	passgen -mode bulk -count 20 -format csv -out passwords.csv
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-pass-gen/internal/adapter"
	"github.com/MKhiriev/go-pass-gen/internal/config"
	"github.com/MKhiriev/go-pass-gen/internal/crypto"
	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/MKhiriev/go-pass-gen/internal/service"
	"github.com/MKhiriev/go-pass-gen/internal/validators"
)

func main() {
	log := logger.NewConsoleLogger("passgen")

	opts, err := parseOptions(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		os.Exit(2)
	}

	cfg, err := config.GetEnvConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if opts.interactive {
		opts, err = askOptions(surveyPrompter{}, opts, cfg.Generator)
		if errors.Is(err, errPromptAborted) {
			return
		}
		if err != nil {
			log.Fatal().Err(err).Msg("prompt failed")
		}
	}

	breachAdapter, err := adapter.NewHTTPBreachAdapter(cfg.Breach, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating breach adapter")
	}

	validator := validators.NewGenerationValidator(cfg.Generator)
	generator := service.NewGeneratorService(crypto.NewRandomSource(), service.NewStrengthService(), log)

	app := &passgen{
		generator: service.NewGeneratorValidationService(validator).Wrap(generator),
		breach:    service.NewBreachService(breachAdapter, log),
		export:    service.NewExportService(crypto.NewSealer(), validator, log),
		stdout:    os.Stdout,
		logger:    log,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.run(ctx, opts); err != nil {
		log.Fatal().Err(err).Msg("passgen failed")
	}
}
