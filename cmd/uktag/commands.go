package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cours-de-latin/uktag"
	"github.com/cours-de-latin/uktag/internal/app"
	"github.com/cours-de-latin/uktag/internal/config"
)

const (
	Version = "0.1.0"
	appName = "uktag"
)

// options are the flags shared by all subcommands.
type options struct {
	dataDir        string
	dictionary     string
	debugCompounds bool
	format         string
	logLevel       string
}

func rootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Ukrainian compound word tagger",
		Long: `uktag infers part-of-speech readings for words the dictionary cannot tag
on its own: numerals ("XIV", "25°С"), dates ("17.10.2026") and hyphenated
compounds ("сонях-красень", "по-українськи", "101-го").

Configuration is read from CONFIG_PATH (YAML) and UKTAG_* environment
variables; flags override both.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.dataDir, "data", "", "lexical data directory (overrides config)")
	pf.StringVar(&opts.dictionary, "dict", "", "dictionary dump, form<TAB>lemma<TAB>tag (overrides config)")
	pf.BoolVar(&opts.debugCompounds, "debug-compounds", false, "write unknown and tagged compounds to the debug logs")
	pf.StringVarP(&opts.format, "format", "f", "text", "output format: text, json or yaml")
	pf.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(tagCmd(&opts), parseTagCmd(&opts), versionCmd())
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
		},
	}
}

func tagCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tag [words...]",
		Short: "Print additional readings of words (read from stdin when none are given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(opts.format); err != nil {
				return err
			}
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			logger := app.NewLogger(cfg.Log, cmd.ErrOrStderr())

			engine, err := app.NewEngine(cfg, logger, nil)
			if err != nil {
				return err
			}
			defer engine.Close()

			words := args
			if len(words) == 0 {
				if words, err = readWords(cmd.InOrStdin()); err != nil {
					return err
				}
			}

			results, err := app.TagWords(cmd.Context(), engine.Tagger, words)
			if err != nil {
				return err
			}
			return writeResults(cmd.OutOrStdout(), opts.format, results)
		},
	}
}

func parseTagCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "parse-tag <tag>",
		Short: "Show the structure of a tag string",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkFormat(opts.format); err != nil {
				return err
			}
			info, err := app.DescribeTag(args[0])
			if err != nil {
				return err
			}
			return writeTagInfo(cmd.OutOrStdout(), opts.format, info)
		},
	}
}

// loadConfig loads the configuration and applies flag overrides.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if opts.dataDir != "" {
		cfg.Data.Dir = opts.dataDir
	}
	if opts.dictionary != "" {
		cfg.Data.Dictionary = opts.dictionary
	}
	if cmd.Flags().Changed("debug-compounds") {
		cfg.Debug.Compounds = opts.debugCompounds
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	// The CLI logs for humans.
	cfg.Log.Format = "text"
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

func checkFormat(format string) error {
	switch format {
	case "text", "json", "yaml":
		return nil
	}
	return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
}

// readWords splits r into whitespace-separated words.
func readWords(r io.Reader) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		words = append(words, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read words: %w", err)
	}
	return words, nil
}

func writeResults(w io.Writer, format string, results []app.WordResult) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "yaml":
		return writeYAML(w, results)
	}

	for _, res := range results {
		if len(res.Readings) == 0 {
			fmt.Fprintf(w, "%s\t-\n", res.Word)
			continue
		}
		tokens := make([]uktag.AnalyzedToken, 0, len(res.Readings))
		for _, r := range res.Readings {
			tag, err := uktag.ParseTag(r.Tag)
			if err != nil {
				return err
			}
			tokens = append(tokens, uktag.AnalyzedToken{Token: res.Word, Lemma: r.Lemma, Tag: tag})
		}
		fmt.Fprintln(w, uktag.FormatTagged(tokens))
	}
	return nil
}

func writeTagInfo(w io.Writer, format string, info app.TagInfo) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	case "yaml":
		return writeYAML(w, info)
	}

	fmt.Fprintf(w, "tag:        %s\n", info.Tag)
	fmt.Fprintf(w, "category:   %s\n", info.Category)
	if info.Gender != "" {
		fmt.Fprintf(w, "gender:     %s\n", info.Gender)
	}
	if info.Case != "" {
		fmt.Fprintf(w, "case:       %s (%s)\n", info.Case, info.CaseName)
	}
	if len(info.Markers) > 0 {
		fmt.Fprintf(w, "markers:    %s\n", strings.Join(info.Markers, " "))
	}
	var flags []string
	for _, f := range []struct {
		on   bool
		name string
	}{{info.Animate, "anim"}, {info.NotDecl, "nv"}, {info.CompB, "compb"}} {
		if f.on {
			flags = append(flags, f.name)
		}
	}
	flags = append(flags, info.Qualifiers...)
	if len(flags) > 0 {
		fmt.Fprintf(w, "flags:      %s\n", strings.Join(flags, " "))
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
