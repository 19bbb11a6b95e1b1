// lookup checks words against a webwords dictionary, either once from the
// command line or from an interactive shell.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/domino14/webwords/config"
	"github.com/domino14/webwords/lexicon"
)

type app struct {
	cfg *config.Config
}

// dictionary returns the configured dictionary, loading it on first use.
func (a *app) dictionary() (*lexicon.Dictionary, error) {
	return lexicon.Get(a.cfg, a.cfg.DefaultLexicon)
}

// useLexicon switches to another word list once it has loaded.
func (a *app) useLexicon(name string) (*lexicon.Dictionary, error) {
	dict, err := lexicon.Get(a.cfg, name)
	if err != nil {
		return nil, err
	}
	a.cfg.DefaultLexicon = name
	return dict, nil
}

func (a *app) lookup() (lexicon.Lookup, error) {
	dict, err := a.dictionary()
	if err != nil {
		return nil, err
	}
	return lexicon.WithRetry(lexicon.LocalLookup(dict), a.cfg.LookupAttempts), nil
}

// check writes one verdict line per word and reports whether all of them
// were valid.
func (a *app) check(ctx context.Context, words []string, w *strings.Builder) (bool, error) {
	lookup, err := a.lookup()
	if err != nil {
		return false, err
	}
	results, err := lookup(ctx, words)
	if err != nil {
		return false, err
	}
	allValid := true
	for i, word := range words {
		verdict := "valid"
		if !results[i] {
			verdict = "invalid"
			allValid = false
		}
		fmt.Fprintf(w, "%s: %s\n", strings.ToUpper(word), verdict)
	}
	return allValid, nil
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "lookup",
		Short:         "Check words against a word list",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.LoadFlags(cmd.Flags()); err != nil {
				return err
			}
			return a.cfg.SetLogLevel()
		},
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(&cobra.Command{
		Use:   "check WORD...",
		Short: "Check whether each word is in the dictionary",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var out strings.Builder
			allValid, err := a.check(cmd.Context(), args, &out)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out.String())
			if !allValid {
				return errInvalidWords
			}
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "info",
		Short: "Show the loaded dictionary's name, size and checksum",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dict, err := a.dictionary()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), describe(dict))
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "shell",
		Short: "Check words interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := newShellController(a)
			if err != nil {
				return err
			}
			return sc.loop(cmd.Context())
		},
	})
	return root
}

func describe(dict *lexicon.Dictionary) string {
	return fmt.Sprintf("%s: %d words, checksum %016x", dict.Name(), dict.NumWords(), dict.Checksum())
}

var errInvalidWords = errors.New("some words are not in the dictionary")

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := newRootCmd(&app{cfg: &config.Config{}})
	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, errInvalidWords) {
			log.Error().Err(err).Msg("lookup")
		}
		os.Exit(1)
	}
}
