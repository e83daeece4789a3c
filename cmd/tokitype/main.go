// Package main provides the CLI entrypoint for tokitype.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/tokitype/internal/config"
	"github.com/verte-zerg/tokitype/internal/corpus"
	"github.com/verte-zerg/tokitype/internal/dispatch"
	"github.com/verte-zerg/tokitype/internal/logging"
	"github.com/verte-zerg/tokitype/internal/model"
	"github.com/verte-zerg/tokitype/internal/selector"
	"github.com/verte-zerg/tokitype/internal/session"
	"github.com/verte-zerg/tokitype/internal/stats"
	"github.com/verte-zerg/tokitype/internal/tui"
)

const (
	defaultWords            = 25
	defaultDeprecation      = "in-use"
	defaultHints            = true
	defaultFinishOnLastWord = true
)

// practiceFlags holds the selection and session flags shared by the root and
// sample commands.
type practiceFlags struct {
	corpus           string
	words            int
	core             bool
	common           bool
	uncommon         bool
	obscure          bool
	sandbox          bool
	deprecation      string
	ku               bool
	pu               bool
	commentary       bool
	definitions      bool
	hints            bool
	finishOnLastWord bool
	seed             int64
}

var (
	practice practiceFlags
	sample   practiceFlags
	debugLog bool

	importOut   string
	importForce bool
	infoCorpus  string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tokitype",
		Short:         "TUI typing trainer for word corpora",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	bindPracticeFlags(rootCmd, &practice)
	rootCmd.Flags().BoolVar(&practice.hints, "hints", defaultHints, "show the current word's definition")
	rootCmd.Flags().BoolVar(&practice.finishOnLastWord, "finish-on-last-word", defaultFinishOnLastWord, "finish once the last word is typed correctly")
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "verbose logging to the log file")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newSampleCmd())
	rootCmd.AddCommand(newCorpusCmd())

	return rootCmd
}

func bindPracticeFlags(cmd *cobra.Command, f *practiceFlags) {
	cmd.Flags().StringVar(&f.corpus, "corpus", "", "corpus file (.toml, .toml.bz2, .toml.zst, .db); empty uses the built-in corpus")
	cmd.Flags().IntVar(&f.words, "words", defaultWords, "words per session")
	cmd.Flags().BoolVar(&f.core, "core", true, "include core words")
	cmd.Flags().BoolVar(&f.common, "common", true, "include common words")
	cmd.Flags().BoolVar(&f.uncommon, "uncommon", false, "include uncommon words")
	cmd.Flags().BoolVar(&f.obscure, "obscure", false, "include obscure words")
	cmd.Flags().BoolVar(&f.sandbox, "sandbox", false, "include sandbox words")
	cmd.Flags().StringVar(&f.deprecation, "deprecation", defaultDeprecation, "deprecated words: in-use, deprecated or any")
	cmd.Flags().BoolVar(&f.ku, "ku", true, "allow words without ku data")
	cmd.Flags().BoolVar(&f.pu, "pu", true, "allow words without pu verbatim")
	cmd.Flags().BoolVar(&f.commentary, "commentary", true, "allow words without commentary")
	cmd.Flags().BoolVar(&f.definitions, "definitions", true, "allow words without definitions")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed for sampling (0 picks one)")
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyPracticeConfig(cmd, &practice, fileCfg.Practice)

	cfg, err := buildConfig(practice)
	if err != nil {
		return err
	}

	ctx := context.Background()
	started := time.Now()
	pending := corpus.LoadAsync(ctx, cfg.CorpusPath)

	logger, closeLog, err := logging.Setup(logging.Config{Path: config.DefaultLogPath(), Debug: debugLog})
	if err != nil {
		logErrf("logging disabled: %v\n", err)
	}
	defer func() {
		if cerr := closeLog(); cerr != nil {
			logErrf("failed to close log: %v\n", cerr)
		}
	}()

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("tokitype needs an interactive terminal; try: tokitype sample")
	}

	words, err := pending.Wait()
	if err != nil {
		logger.Error().Err(err).Str("path", cfg.CorpusPath).Msg("corpus load failed")
		return fmt.Errorf("failed to load corpus: %w", err)
	}
	logger.Info().
		Str("source", words.Source()).
		Int("records", words.Len()).
		Dur("elapsed", time.Since(started)).
		Msg("corpus loaded")

	disp := newDispatcher(words, cfg, newSelector(practice.seed), &logger)
	disp.Dispatch(dispatch.ApplySelection{Criteria: cfg.Criteria})

	m := tui.NewModel(tui.Config{
		Dispatcher: disp,
		Criteria:   cfg.Criteria,
		Hints:      cfg.Hints,
		Logger:     &logger,
	})
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newDispatcher(words *corpus.Corpus, cfg model.Config, sel *selector.Selector, logger *zerolog.Logger) *dispatch.Dispatcher {
	return dispatch.New(
		dispatch.NewPageStore(model.PageGame),
		dispatch.NewExitStore(),
		dispatch.NewSessionStore(dispatch.SessionStoreConfig{
			Corpus:   words,
			Selector: sel,
			Options:  session.Options{FinishOnLastWord: cfg.FinishOnLastWord},
			Logger:   logger,
		}),
	)
}

func newSelector(seed int64) *selector.Selector {
	if seed == 0 {
		return selector.New()
	}
	return selector.NewWithSource(rand.NewSource(seed))
}

func newSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print a word selection without starting a session",
		Args:  cobra.NoArgs,
		RunE:  runSampleCmd,
	}
	bindPracticeFlags(cmd, &sample)
	return cmd
}

func runSampleCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyPracticeConfig(cmd, &sample, fileCfg.Practice)
	cfg, err := buildConfig(sample)
	if err != nil {
		return err
	}
	words, err := corpus.Load(cmd.Context(), cfg.CorpusPath)
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}
	selected := newSelector(sample.seed).Select(cfg.Criteria, words)
	if err := stats.RenderSelection(cmd.OutOrStdout(), selected); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newCorpusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corpus",
		Short: "Inspect and convert word corpora",
	}

	info := &cobra.Command{
		Use:   "info",
		Short: "Show record counts per usage tier",
		Args:  cobra.NoArgs,
		RunE:  runCorpusInfoCmd,
	}
	info.Flags().StringVar(&infoCorpus, "corpus", "", "corpus file; empty uses the built-in corpus")

	importCmd := &cobra.Command{
		Use:   "import <corpus>",
		Short: "Convert a corpus into a SQLite cache",
		Args:  cobra.ExactArgs(1),
		RunE:  runCorpusImportCmd,
	}
	importCmd.Flags().StringVar(&importOut, "out", "", "output database (default: data dir corpus.db)")
	importCmd.Flags().BoolVar(&importForce, "force", false, "overwrite an existing database")

	cmd.AddCommand(info, importCmd)
	return cmd
}

func runCorpusInfoCmd(cmd *cobra.Command, _ []string) error {
	words, err := corpus.Load(cmd.Context(), infoCorpus)
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}
	if err := stats.RenderCorpusSummary(cmd.OutOrStdout(), words.Source(), words.Summarize()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runCorpusImportCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	src, err := corpus.Load(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to load corpus: %w", err)
	}
	out := importOut
	if out == "" {
		out = config.DefaultCorpusCachePath()
	}
	if !importForce {
		if _, err := os.Stat(out); err == nil {
			return fmt.Errorf("corpus cache already exists: %s (use --force to overwrite)", out)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat corpus cache: %w", err)
		}
	}

	db, err := corpus.OpenDB(out)
	if err != nil {
		return fmt.Errorf("failed to open corpus cache: %w", err)
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			logErrf("failed to close corpus cache: %v\n", cerr)
		}
	}()
	if err := db.Replace(ctx, src.Records()); err != nil {
		return fmt.Errorf("failed to write corpus cache: %w", err)
	}
	logErrf("Wrote %d words to %s\n", src.Len(), out)
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyPracticeConfig(cmd *cobra.Command, f *practiceFlags, p config.PracticeConfig) {
	applyConfig(cmd, "corpus", &f.corpus, p.Corpus)
	applyConfig(cmd, "words", &f.words, p.Words)
	applyConfig(cmd, "core", &f.core, p.Core)
	applyConfig(cmd, "common", &f.common, p.Common)
	applyConfig(cmd, "uncommon", &f.uncommon, p.Uncommon)
	applyConfig(cmd, "obscure", &f.obscure, p.Obscure)
	applyConfig(cmd, "sandbox", &f.sandbox, p.Sandbox)
	applyConfig(cmd, "deprecation", &f.deprecation, p.Deprecation)
	applyConfig(cmd, "ku", &f.ku, p.KU)
	applyConfig(cmd, "pu", &f.pu, p.PU)
	applyConfig(cmd, "commentary", &f.commentary, p.Commentary)
	applyConfig(cmd, "definitions", &f.definitions, p.Definitions)
	applyConfig(cmd, "hints", &f.hints, p.Hints)
	applyConfig(cmd, "finish-on-last-word", &f.finishOnLastWord, p.FinishOnLastWord)
}

// applyConfig copies a config file value into target unless the flag was set
// explicitly or the command has no such flag.
func applyConfig[T any](cmd *cobra.Command, name string, target, value *T) {
	if value == nil {
		return
	}
	flag := cmd.Flags().Lookup(name)
	if flag == nil || flag.Changed {
		return
	}
	*target = *value
}

func buildConfig(f practiceFlags) (model.Config, error) {
	if f.words <= 0 {
		return model.Config{}, fmt.Errorf("--words must be > 0")
	}
	deprecation, err := model.ParseDeprecation(f.deprecation)
	if err != nil {
		return model.Config{}, fmt.Errorf("invalid --deprecation: %w", err)
	}
	return model.Config{
		CorpusPath: f.corpus,
		Criteria: model.Criteria{
			Core:        f.core,
			Common:      f.common,
			Uncommon:    f.uncommon,
			Obscure:     f.obscure,
			Sandbox:     f.sandbox,
			Deprecation: deprecation,
			KU:          f.ku,
			PU:          f.pu,
			Commentary:  f.commentary,
			Definitions: f.definitions,
			Size:        f.words,
		},
		Hints:            f.hints,
		FinishOnLastWord: f.finishOnLastWord,
	}, nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tokitype configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# corpus = ""                  # Corpus file (.toml, .toml.bz2, .toml.zst, .db); empty uses the built-in corpus
# words = %d                   # Words per session
# core = true                  # Include core words
# common = true                # Include common words
# uncommon = false             # Include uncommon words
# obscure = false              # Include obscure words
# sandbox = false              # Include sandbox words
# deprecation = %q       # in-use, deprecated or any
# ku = true                    # Allow words without ku data
# pu = true                    # Allow words without pu verbatim
# commentary = true            # Allow words without commentary
# definitions = true           # Allow words without definitions
# hints = %t                 # Show the current word's definition
# finish-on-last-word = %t   # Finish once the last word is typed correctly
`,
		defaultWords,
		defaultDeprecation,
		defaultHints,
		defaultFinishOnLastWord,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
