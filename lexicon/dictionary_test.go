package lexicon

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/domino14/webwords/config"
)

var testWords = []string{"it", "qi", "house", "finder", "general", "party", "a", "", "HELLO"}

func TestIncludes(t *testing.T) {
	is := is.New(t)
	d := NewDictionary("test", testWords)

	// 0/1 letter words
	is.True(!d.Includes(""))
	is.True(!d.Includes("a"))
	// two letter words
	is.True(d.Includes("it"))
	is.True(d.Includes("qi"))

	for _, w := range []string{"house", "finder", "general", "party", "hello", "HoUsE"} {
		is.True(d.Includes(w))
	}
	for _, w := range []string{"pumperflink", "kerangaspliff", "jumpintung", "hous", "houses", "gen"} {
		is.True(!d.Includes(w))
	}
	is.Equal(d.NumWords(), 7)
	is.Equal(d.Name(), "test")
}

func TestIncludesMulti(t *testing.T) {
	d := NewDictionary("test", testWords)
	assert.Equal(t, []bool{true, false, true, false}, d.IncludesMulti([]string{"qi", "q", "party", "partyy"}))
	assert.Empty(t, d.IncludesMulti(nil))
}

func TestChecksum(t *testing.T) {
	is := is.New(t)
	a := NewDictionary("a", []string{"cat", "dog", "emu"})
	b := NewDictionary("b", []string{"EMU", "cat", "dog", "dog"})
	c := NewDictionary("c", []string{"cat", "dog"})
	is.Equal(a.Checksum(), b.Checksum())
	is.True(a.Checksum() != c.Checksum())
	is.Equal(b.NumWords(), 3)
}

func TestConcurrentReads(t *testing.T) {
	d := NewDictionary("test", testWords)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				assert.True(t, d.Includes("general"))
				assert.False(t, d.Includes("generals"))
			}
		}()
	}
	wg.Wait()
}

func TestRead(t *testing.T) {
	is := is.New(t)
	d, err := Read("defs", strings.NewReader("AA a rough lava\nQI   life force\n\nZ\nzzz\n"))
	is.NoErr(err)
	is.Equal(d.NumWords(), 3)
	is.True(d.Includes("aa"))
	is.True(d.Includes("qi"))
	is.True(!d.Includes("rough"))
	is.True(!d.Includes("z"))
}

func writeList(t *testing.T, dir, name string, words ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(words, "\n")+"\n"), 0o644))
	return path
}

func TestLoadFiles(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	p1 := writeList(t, dir, "one.txt", "cat", "dog")
	p2 := writeList(t, dir, "two.txt", "emu", "cat")

	d, err := LoadFiles(context.Background(), "both", p1, p2)
	is.NoErr(err)
	is.Equal(d.NumWords(), 3)
	is.True(d.Includes("emu"))

	_, err = LoadFiles(context.Background(), "missing", p1, filepath.Join(dir, "nope.txt"))
	is.True(errors.Is(err, os.ErrNotExist))
}

func TestGet(t *testing.T) {
	is := is.New(t)
	dir := t.TempDir()
	writeList(t, dir, "tiny.txt", "za", "qat")
	cfg := &config.Config{LexiconPath: dir}

	d, err := Get(cfg, "tiny")
	is.NoErr(err)
	is.True(d.Includes("qat"))

	// a second call is served from the cache
	is.NoErr(os.Remove(filepath.Join(dir, "tiny.txt")))
	d2, err := Get(cfg, "tiny")
	is.NoErr(err)
	is.True(d == d2)

	_, err = Get(cfg, "absent")
	is.True(err != nil)
}

func TestGetKeyedByPath(t *testing.T) {
	is := is.New(t)
	dirA, dirB := t.TempDir(), t.TempDir()
	writeList(t, dirA, "shared.txt", "za")
	writeList(t, dirB, "shared.txt", "qi", "xu")

	a, err := Get(&config.Config{LexiconPath: dirA}, "shared")
	is.NoErr(err)
	b, err := Get(&config.Config{LexiconPath: dirB}, "shared")
	is.NoErr(err)
	is.True(a != b)
	is.True(a.Includes("za"))
	is.True(!b.Includes("za"))
	is.Equal(b.NumWords(), 2)
}

func TestAcceptAll(t *testing.T) {
	is := is.New(t)
	var lex Lexicon = AcceptAll{}
	is.True(lex.HasWord("zzzzq"))
	is.True(!lex.HasWord("z"))
}

func TestLocalLookup(t *testing.T) {
	is := is.New(t)
	lookup := LocalLookup(NewDictionary("test", testWords))
	results, err := lookup(context.Background(), []string{"party", "partz"})
	is.NoErr(err)
	is.Equal(results, []bool{true, false})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = lookup(ctx, []string{"party"})
	is.True(errors.Is(err, context.Canceled))
}

func TestWithRetry(t *testing.T) {
	is := is.New(t)
	RetryDelay = time.Millisecond
	calls := 0
	flaky := func(ctx context.Context, words []string) ([]bool, error) {
		calls++
		if calls < 3 {
			return nil, errors.New("unavailable")
		}
		return []bool{true}, nil
	}
	results, err := WithRetry(flaky, 3)(context.Background(), []string{"qi"})
	is.NoErr(err)
	is.Equal(results, []bool{true})
	is.Equal(calls, 3)

	calls = 0
	_, err = WithRetry(flaky, 2)(context.Background(), []string{"qi"})
	is.Equal(err.Error(), "unavailable")
	is.Equal(calls, 2)
}

func TestWithRetryShortResults(t *testing.T) {
	is := is.New(t)
	RetryDelay = time.Millisecond
	calls := 0
	short := func(ctx context.Context, words []string) ([]bool, error) {
		calls++
		return []bool{true}, nil
	}
	_, err := WithRetry(short, 5)(context.Background(), []string{"qi", "za"})
	is.True(err != nil)
	is.Equal(calls, 1)
}
