package lexicon

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/webwords/cache"
	"github.com/domino14/webwords/config"
)

// readWords returns the first whitespace-separated field of every line.
func readWords(r io.Reader) ([]string, error) {
	words := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		// Split line into spaces.
		fields := strings.Fields(scanner.Text())
		if len(fields) > 0 {
			words = append(words, fields[0])
		}
	}
	return words, scanner.Err()
}

// Read builds a dictionary from a word list with one word per line.
// Anything after the first field on a line, such as a definition, is
// ignored.
func Read(name string, r io.Reader) (*Dictionary, error) {
	words, err := readWords(r)
	if err != nil {
		return nil, err
	}
	return build(name, words), nil
}

// LoadFiles builds a single dictionary from the union of several word
// lists, reading them concurrently.
func LoadFiles(ctx context.Context, name string, paths ...string) (*Dictionary, error) {
	lists := make([][]string, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()
			words, err := readWords(f)
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			lists[i] = words
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	total := 0
	for _, l := range lists {
		total += len(l)
	}
	words := make([]string, 0, total)
	for _, l := range lists {
		words = append(words, l...)
	}
	return build(name, words), nil
}

func build(name string, words []string) *Dictionary {
	d := NewDictionary(name, words)
	log.Info().Str("lexicon", name).Int("words", d.NumWords()).
		Str("checksum", fmt.Sprintf("%016x", d.Checksum())).Msg("loaded-dictionary")
	return d
}

func dictionaryPath(cfg *config.Config, name string) string {
	return filepath.Join(cfg.LexiconPath, name+".txt")
}

func loadDictionary(cfg *config.Config, name string) (any, error) {
	return LoadFiles(context.Background(), name, dictionaryPath(cfg, name))
}

// Get returns the named dictionary from <LexiconPath>/<name>.txt, loading
// it on first use and sharing it afterwards. Entries are keyed by file path,
// so configs with different lexicon paths never share one.
func Get(cfg *config.Config, name string) (*Dictionary, error) {
	obj, err := cache.Load(cfg, "dictionary:"+dictionaryPath(cfg, name), func(cfg *config.Config, key string) (any, error) {
		return loadDictionary(cfg, name)
	})
	if err != nil {
		return nil, err
	}
	return obj.(*Dictionary), nil
}
