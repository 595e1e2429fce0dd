// Package cmd implements the CLI application to inspect valuation sources.
package cmd

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/valuation"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Commands lists every subcommand of the application.
var Commands = []subcommands.Command{
	&chartCmd{},
	&unlocksCmd{},
	&collapseCmd{},
	&calendarCmd{},
	&monthsCmd{},
	&topicCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the YAML configuration file. Defaults to $VCS_CONFIG.")
var format = flag.String("format", "md", "Output format: md or json.")

// stdout is where commands write their result.
var stdout io.Writer = os.Stdout

// logger is the application logger, configured by LoadConfig.
var logger = logrus.New()

// LoadConfig reads the configuration of the application and configures the logger.
//
// A .env file in the working directory is loaded first, if any. Without a
// -config flag nor VCS_CONFIG, the default configuration is used.
func LoadConfig() (valuation.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return valuation.Config{}, fmt.Errorf("cannot load .env: %w", err)
	}
	name := *configFile
	if name == "" {
		name = os.Getenv("VCS_CONFIG")
	}
	cfg := valuation.DefaultConfig()
	if name != "" {
		var err error
		if cfg, err = valuation.LoadConfig(name); err != nil {
			return cfg, err
		}
	}
	configureLogger(cfg)
	logger.WithField("config", name).Debug("configuration loaded")
	return cfg, nil
}

func configureLogger(cfg valuation.Config) {
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
		logger.WithError(err).Warn("invalid log level, using info")
		return
	}
	logger.SetLevel(level)
}

// DecodeSources loads the sources file in using the configured paths.
func DecodeSources(cfg valuation.Config, in string) (valuation.Sources, error) {
	if in == "" {
		return valuation.Sources{}, errors.New("missing -in sources file")
	}
	s, err := valuation.LoadSourcesFile(in, cfg.Paths)
	if err != nil {
		return s, err
	}
	logger.WithFields(logrus.Fields{
		"priceHistory":  len(s.PriceHistory),
		"fundingRounds": len(s.FundingRounds),
		"orders":        len(s.Orders),
		"allocations":   len(s.Allocations),
		"portfolio":     len(s.Portfolio),
	}).Debug("sources loaded")
	return s, nil
}

// output prints v as JSON or its markdown rendering, depending on -format.
func output(v any, markdown func() string) subcommands.ExitStatus {
	switch *format {
	case "json":
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding json: %v\n", err)
			return subcommands.ExitFailure
		}
	case "md", "markdown":
		printMarkdown(markdown())
	default:
		fmt.Fprintf(os.Stderr, "Unknown format %q, want md or json\n", *format)
		return subcommands.ExitUsageError
	}
	return subcommands.ExitSuccess
}

// printMarkdown renders md for the terminal, or prints it raw when it cannot.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		logger.WithError(err).Debug("cannot render markdown")
		out = md
	}
	fmt.Fprint(stdout, out)
}
