package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/MKhiriev/go-pass-gen/internal/config"
	"github.com/MKhiriev/go-pass-gen/models"
)

var errPromptAborted = errors.New("prompt aborted")

// prompter asks the user one question at a time. surveyPrompter is the
// terminal implementation; tests script the answers.
type prompter interface {
	Select(message string, options []string, def string) (string, error)
	MultiSelect(message string, options []string, defaults []string) ([]string, error)
	Input(message, def string, validate func(string) error) (string, error)
	Confirm(message string, def bool) (bool, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Select(message string, options []string, def string) (string, error) {
	var out string
	err := survey.AskOne(&survey.Select{Message: message, Options: options, Default: def}, &out)
	return out, translateSurveyErr(err)
}

func (surveyPrompter) MultiSelect(message string, options []string, defaults []string) ([]string, error) {
	var out []string
	err := survey.AskOne(&survey.MultiSelect{Message: message, Options: options, Default: defaults}, &out)
	return out, translateSurveyErr(err)
}

func (surveyPrompter) Input(message, def string, validate func(string) error) (string, error) {
	var out string
	var opts []survey.AskOpt
	if validate != nil {
		opts = append(opts, survey.WithValidator(func(ans any) error {
			s, _ := ans.(string)
			return validate(s)
		}))
	}
	err := survey.AskOne(&survey.Input{Message: message, Default: def}, &out, opts...)
	return out, translateSurveyErr(err)
}

func (surveyPrompter) Confirm(message string, def bool) (bool, error) {
	var out bool
	err := survey.AskOne(&survey.Confirm{Message: message, Default: def}, &out)
	return out, translateSurveyErr(err)
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errPromptAborted
	}
	return err
}

// askOptions walks the user through the options relevant to the chosen
// mode, starting from the values in opts.
func askOptions(p prompter, opts options, limits config.Generator) (options, error) {
	modes := make([]string, 0, len(models.Modes))
	for _, m := range models.Modes {
		modes = append(modes, string(m))
	}

	mode, err := p.Select("Mode:", modes, string(opts.cfg.Mode))
	if err != nil {
		return opts, err
	}
	cfg := opts.cfg
	cfg.Mode = models.Mode(mode)

	switch cfg.Mode {
	case models.ModePassphrase:
		if cfg.WordCount, err = askInt(p, "Words:", cfg.WordCount, limits.MaxWordCount); err != nil {
			return opts, err
		}
		if cfg.Separator, err = p.Input("Separator:", cfg.Separator, maxRunes(1)); err != nil {
			return opts, err
		}
		if cfg.CapitalizeWords, err = p.Confirm("Capitalize words?", cfg.CapitalizeWords); err != nil {
			return opts, err
		}
		if cfg.AppendNumberAndSymbol, err = p.Confirm("Append a number and a symbol?", cfg.AppendNumberAndSymbol); err != nil {
			return opts, err
		}

	case models.ModePattern:
		if cfg.Pattern, err = p.Input("Pattern (L, U, N, S):", cfg.Pattern, maxRunes(limits.MaxLength)); err != nil {
			return opts, err
		}

	default:
		if cfg.Mode == models.ModeBulk {
			if cfg.BulkCount, err = askInt(p, "How many:", cfg.BulkCount, limits.MaxBulkCount); err != nil {
				return opts, err
			}
		}
		if cfg.Length, err = askInt(p, "Length:", cfg.Length, limits.MaxLength); err != nil {
			return opts, err
		}
		if cfg, err = askCategories(p, cfg); err != nil {
			return opts, err
		}
		if cfg.ExcludeSimilar, err = p.Confirm("Exclude look-alike characters?", cfg.ExcludeSimilar); err != nil {
			return opts, err
		}
		if cfg.ExcludeAmbiguous, err = p.Confirm("Exclude ambiguous symbols?", cfg.ExcludeAmbiguous); err != nil {
			return opts, err
		}
		if cfg.Mode == models.ModeStandard {
			if cfg.AvoidRepeating, err = p.Confirm("Avoid repeating characters?", cfg.AvoidRepeating); err != nil {
				return opts, err
			}
		}
	}

	opts.cfg = cfg
	if opts.breach, err = p.Confirm("Check against known breaches?", opts.breach); err != nil {
		return opts, err
	}
	return opts, nil
}

func askCategories(p prompter, cfg models.GenerationConfig) (models.GenerationConfig, error) {
	all := make([]string, 0, len(models.Categories))
	for _, c := range models.Categories {
		all = append(all, string(c))
	}
	defaults := make([]string, 0, len(cfg.Categories))
	for _, c := range cfg.Categories {
		defaults = append(defaults, string(c))
	}

	picked, err := p.MultiSelect("Character classes:", all, defaults)
	if err != nil {
		return cfg, err
	}

	cfg.Categories = nil
	for _, name := range picked {
		cfg = cfg.WithCategory(models.Category(name), true)
	}
	return cfg, nil
}

func askInt(p prompter, message string, def, hi int) (int, error) {
	answer, err := p.Input(message, strconv.Itoa(def), func(s string) error {
		n, convErr := strconv.Atoi(s)
		if convErr != nil {
			return fmt.Errorf("%q is not a number", s)
		}
		if n < 1 || n > hi {
			return fmt.Errorf("must be between 1 and %d", hi)
		}
		return nil
	})
	if err != nil {
		return def, err
	}
	return strconv.Atoi(answer)
}

func maxRunes(n int) func(string) error {
	return func(s string) error {
		if len([]rune(s)) > n {
			return fmt.Errorf("at most %d characters", n)
		}
		return nil
	}
}
