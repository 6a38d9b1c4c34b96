package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/nicolasgere/acronymcreator/lib/acronym"
	"github.com/nicolasgere/acronymcreator/lib/config"
	"github.com/nicolasgere/acronymcreator/lib/utils"
	"github.com/urfave/cli/v2"
)

const version = "0.1.0"

const (
	exitNoAcronym = 1
	exitUsage     = 2
)

const envPrefix = "ACRONYMCREATOR_"

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	app := createCliApp(stdout, stderr)

	if len(args) > 0 {
		args = append([]string{args[0]}, hoistFlags(args[1:])...)
	}

	if err := app.Run(args); err != nil {
		fmt.Fprintln(stderr, err)
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		return exitNoAcronym
	}
	return 0
}

// OutputFormat defines how a generated acronym is printed
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// flagValues holds the raw command line values before they are merged
// with the config file
type flagValues struct {
	configPath      string
	includeArticles bool
	minLength       int
	maxWords        int
	lowercase       bool
	mode            string
	format          string
	verbose         bool
	color           bool
}

func createCliApp(stdout, stderr io.Writer) *cli.App {
	var v flagValues

	return &cli.App{
		Name:      "acronymcreator",
		Usage:     "Generate acronyms from phrases",
		ArgsUsage: "PHRASE",
		Version:   version,
		Description: `Generate acronyms from phrases.

PHRASE: The phrase to create an acronym from

Examples:
  acronymcreator "The Quick Brown Fox"
  acronymcreator "Application Programming Interface" --include-articles
  acronymcreator "Very Long Phrase With Many Words" --max-words 3
  acronymcreator "Application Programming Interface" --mode syllable`,
		HideHelpCommand: true,
		Writer:          stdout,
		ErrWriter:       stderr,
		// Errors are reported by run so the exit code stays testable
		ExitErrHandler: func(*cli.Context, error) {},
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return cli.Exit(fmt.Sprintf("Incorrect usage: %v", err), exitUsage)
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "include-articles",
				Usage:       "Include articles (a, an, the) in the acronym",
				EnvVars:     []string{envPrefix + "INCLUDE_ARTICLES"},
				Destination: &v.includeArticles,
			},
			&cli.IntFlag{
				Name:        "min-length",
				Usage:       "Minimum word length to include",
				Value:       acronym.DefaultOptions().MinWordLength,
				EnvVars:     []string{envPrefix + "MIN_LENGTH"},
				Destination: &v.minLength,
			},
			&cli.IntFlag{
				Name:        "max-words",
				Usage:       "Maximum number of words to process",
				EnvVars:     []string{envPrefix + "MAX_WORDS"},
				Destination: &v.maxWords,
			},
			&cli.BoolFlag{
				Name:        "lowercase",
				Usage:       "Output acronym in lowercase",
				EnvVars:     []string{envPrefix + "LOWERCASE"},
				Destination: &v.lowercase,
			},
			&cli.StringFlag{
				Name:        "mode",
				Usage:       "Acronym mode: basic (first letters) or syllable",
				Aliases:     []string{"m"},
				Value:       string(acronym.ModeBasic),
				EnvVars:     []string{envPrefix + "MODE"},
				Destination: &v.mode,
			},
			&cli.StringFlag{
				Name:        "format",
				Usage:       "Output format: text (default), json",
				Aliases:     []string{"f"},
				Value:       string(FormatText),
				EnvVars:     []string{envPrefix + "FORMAT"},
				Destination: &v.format,
			},
			&cli.StringFlag{
				Name:        "config",
				Usage:       "Path to a YAML file with default options",
				Aliases:     []string{"c"},
				EnvVars:     []string{envPrefix + "CONFIG"},
				Destination: &v.configPath,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Usage:       "Log each processing step to stderr",
				Destination: &v.verbose,
			},
			&cli.BoolFlag{
				Name:        "color",
				Usage:       "Enable colored log output",
				Destination: &v.color,
			},
		},
		Action: func(c *cli.Context) error {
			return runAcronym(c, v, stdout, stderr)
		},
	}
}

func runAcronym(c *cli.Context, v flagValues, stdout, stderr io.Writer) error {
	level := slog.LevelWarn
	if v.verbose {
		level = slog.LevelDebug
	}
	logger := utils.NewLogger(stderr, level, v.color).With(utils.ComponentKey, "cli")

	switch c.NArg() {
	case 0:
		return cli.Exit("Missing argument: PHRASE", exitUsage)
	case 1:
	default:
		return cli.Exit(fmt.Sprintf("Got unexpected extra arguments: %s", strings.Join(c.Args().Tail(), " ")), exitUsage)
	}
	phrase := c.Args().First()

	file, err := config.Load(v.configPath)
	if err != nil {
		return cli.Exit(err.Error(), exitUsage)
	}
	if v.configPath != "" {
		logger.Debug("Loaded config file", "path", v.configPath)
	}

	opts, format := buildOptions(c, v, file)
	if err := opts.Validate(); err != nil {
		return cli.Exit(fmt.Sprintf("Invalid options: %v", err), exitUsage)
	}
	if format != FormatText && format != FormatJSON {
		return cli.Exit(fmt.Sprintf("unknown format: %s (use text or json)", format), exitUsage)
	}
	logger.Debug("Effective options",
		"include_articles", opts.IncludeArticles,
		"min_length", opts.MinWordLength,
		"max_words", opts.MaxWords.String(),
		"force_uppercase", opts.ForceUppercase,
		"mode", string(opts.Mode),
		"format", string(format))

	words := acronym.SelectWords(phrase, opts)
	logger.Debug("Selected words", "phrase", phrase, "words", words)

	result := acronym.Create(phrase, opts)
	if result == "" {
		logger.Debug("Nothing left to build an acronym from", "phrase", phrase)
		return cli.Exit("No acronym could be generated from the given phrase.", exitNoAcronym)
	}
	logger.Debug("Generated acronym", "acronym", result)

	return outputAcronym(stdout, format, phrase, result, words, opts.Mode)
}

// buildOptions merges flags over the config file over the defaults.
// A flag counts only when given on the command line or through its env var.
func buildOptions(c *cli.Context, v flagValues, file *config.File) (acronym.Options, OutputFormat) {
	opts := acronym.DefaultOptions()
	format := FormatText
	lowercase := false

	if file.IncludeArticles != nil {
		opts.IncludeArticles = *file.IncludeArticles
	}
	if file.MinLength != nil {
		opts.MinWordLength = *file.MinLength
	}
	if file.MaxWords != nil {
		opts.MaxWords = acronym.MaxWords(*file.MaxWords)
	}
	if file.Lowercase != nil {
		lowercase = *file.Lowercase
	}
	if file.Mode != nil {
		opts.Mode = acronym.Mode(*file.Mode)
	}
	if file.Format != nil {
		format = OutputFormat(*file.Format)
	}

	if c.IsSet("include-articles") {
		opts.IncludeArticles = v.includeArticles
	}
	if c.IsSet("min-length") {
		opts.MinWordLength = v.minLength
	}
	if c.IsSet("max-words") {
		opts.MaxWords = acronym.MaxWords(v.maxWords)
	}
	if c.IsSet("lowercase") {
		lowercase = v.lowercase
	}
	if c.IsSet("mode") {
		opts.Mode = acronym.Mode(v.mode)
	}
	if c.IsSet("format") {
		format = OutputFormat(v.format)
	}

	// The engine speaks in terms of forcing uppercase, the command line in
	// terms of asking for lowercase
	opts.ForceUppercase = !lowercase

	return opts, format
}

func outputAcronym(w io.Writer, format OutputFormat, phrase, result string, words []string, mode acronym.Mode) error {
	switch format {
	case FormatText:
		fmt.Fprintln(w, result)

	case FormatJSON:
		type Output struct {
			Phrase  string   `json:"phrase"`
			Acronym string   `json:"acronym"`
			Words   []string `json:"words"`
			Mode    string   `json:"mode"`
		}
		out := Output{Phrase: phrase, Acronym: result, Words: words, Mode: string(mode)}
		if out.Words == nil {
			out.Words = []string{} // Ensure empty array, not null
		}
		data, err := json.Marshal(out)
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))

	default:
		return cli.Exit(fmt.Sprintf("unknown format: %s (use text or json)", format), exitUsage)
	}

	return nil
}

// valueFlags are the flags that consume the following argument
var valueFlags = map[string]bool{
	"min-length": true,
	"max-words":  true,
	"mode":       true,
	"m":          true,
	"format":     true,
	"f":          true,
	"config":     true,
	"c":          true,
}

// hoistFlags moves flags in front of the positional arguments so they may
// be written after PHRASE. Everything after "--" stays positional.
func hoistFlags(args []string) []string {
	var flags, positional []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if len(a) < 2 || a[0] != '-' {
			positional = append(positional, a)
			continue
		}
		flags = append(flags, a)
		name := strings.TrimLeft(a, "-")
		if !strings.Contains(name, "=") && valueFlags[name] && i+1 < len(args) {
			i++
			flags = append(flags, args[i])
		}
	}

	hoisted := make([]string, 0, len(flags)+len(positional)+1)
	hoisted = append(hoisted, flags...)
	hoisted = append(hoisted, "--")
	return append(hoisted, positional...)
}
