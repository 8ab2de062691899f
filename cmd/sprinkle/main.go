// Command sprinkle reads a text stream on stdin, sprinkles randomly chosen
// ASCII-art sprites into the blank rectangles it finds, and writes the
// result to stdout.
package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Batchyx/Ascii-Art-Sprinkler/internal/buildinfo"
	"github.com/Batchyx/Ascii-Art-Sprinkler/internal/library"
	"github.com/Batchyx/Ascii-Art-Sprinkler/internal/logx"
	"github.com/Batchyx/Ascii-Art-Sprinkler/internal/sprinkle"
)

var (
	softMaxWidth      int
	seed              int64
	maxPlacementTries int
	batchLines        int
	logLevel          string
	logFormat         string
)

var rootCmd = &cobra.Command{
	Use:   "sprinkle <art-file>",
	Short: "Sprinkle ASCII art into the blank space of a text stream",
	Long: `sprinkle reads stdin, finds rectangles of blank space in it, and
fills some of them with sprites drawn from <art-file>, writing the
decorated text to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	flags := rootCmd.Flags()
	flags.IntVar(&softMaxWidth, "soft-max-width", 80, "column up to which blank space is searched for; does not truncate input")
	flags.Int64Var(&seed, "seed", 0, "seed the random generator for reproducible output (default: time-seeded)")
	flags.IntVar(&maxPlacementTries, "max-placement-tries", 5, "placement attempts per blank rectangle")
	flags.IntVar(&batchLines, "batch-lines", 0, "lines consumed between placement passes (default: tallest sprite's height)")
	flags.StringVar(&logLevel, "log-level", "warn", "minimum log level: debug, info, warn, error")
	flags.StringVar(&logFormat, "log-format", "text", "log output format: text, json, println, none")

	rootCmd.Version = buildinfo.Version()
	rootCmd.SetVersionTemplate("sprinkle {{.Version}}\n")
}

func run(cmd *cobra.Command, args []string) error {
	artFile := args[0]
	file, err := os.Open(artFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot read file %q: %v\n", artFile, err)
		os.Exit(1)
	}
	defer file.Close()

	arts, err := library.Parse(file)
	if err != nil {
		reportParseError(artFile, err)
		os.Exit(1)
	}

	rndSeed := seed
	if !cmd.Flags().Changed("seed") {
		rndSeed = time.Now().UnixNano()
	}
	rnd := rand.New(rand.NewSource(rndSeed))
	logger := logx.New(os.Stderr, logx.Format(logFormat), logx.ParseLevel(logLevel))

	opts := sprinkle.Options{
		SoftMaxWidth:      softMaxWidth,
		MaxPlacementTries: maxPlacementTries,
		BatchLines:        batchLines,
		Logger:            logger,
	}
	return sprinkle.Stream(os.Stdin, os.Stdout, arts, rnd, opts)
}

// reportParseError prints a syntax error the way the reference tool's
// main() does: file, line, message, and the offending line if one exists.
func reportParseError(artFile string, err error) {
	var perr *library.ParseError
	if errors.As(err, &perr) {
		fmt.Fprintf(os.Stderr, "syntax error in %s line %d: %s\n", artFile, perr.Line, perr.Msg)
		if perr.Context != "" {
			fmt.Fprintln(os.Stderr, perr.Context)
		}
		return
	}
	fmt.Fprintf(os.Stderr, "cannot parse %q: %v\n", artFile, err)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
