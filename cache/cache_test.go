package cache

import (
	"errors"
	"sync"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/webwords/config"
)

func TestLoadOnce(t *testing.T) {
	is := is.New(t)
	cfg := &config.Config{}
	calls := 0
	loader := func(cfg *config.Config, key string) (any, error) {
		calls++
		return key + "-obj", nil
	}
	defer Evict("once")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			obj, err := Load(cfg, "once", loader)
			is.NoErr(err)
			is.Equal(obj.(string), "once-obj")
		}()
	}
	wg.Wait()
	is.Equal(calls, 1)
}

func TestFailedLoadNotCached(t *testing.T) {
	is := is.New(t)
	cfg := &config.Config{}
	boom := errors.New("boom")
	_, err := Load(cfg, "flaky", func(*config.Config, string) (any, error) {
		return nil, boom
	})
	is.Equal(err, boom)

	obj, err := Load(cfg, "flaky", func(*config.Config, string) (any, error) {
		return 42, nil
	})
	is.NoErr(err)
	is.Equal(obj.(int), 42)
	Evict("flaky")
}
