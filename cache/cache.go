// Package cache holds large read-only objects, such as dictionaries, that
// should be loaded once per process and shared by every game.
package cache

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/domino14/webwords/config"
)

type cache struct {
	sync.Mutex
	objects map[string]any
}

// LoadFunc builds the object stored under key.
type LoadFunc func(cfg *config.Config, key string) (any, error)

// GlobalObjectCache is the process-wide cache.
var GlobalObjectCache *cache

var createOnce sync.Once

func (c *cache) load(cfg *config.Config, key string, loadFunc LoadFunc) error {
	log.Debug().Str("key", key).Msg("loading into cache")

	obj, err := loadFunc(cfg, key)
	if err != nil {
		return err
	}
	c.objects[key] = obj

	return nil
}

func (c *cache) get(cfg *config.Config, key string, loadFunc LoadFunc) (any, error) {
	c.Lock()
	defer c.Unlock()
	if obj, ok := c.objects[key]; ok {
		log.Debug().Str("key", key).Msg("getting obj from cache")
		return obj, nil
	}
	if err := c.load(cfg, key, loadFunc); err != nil {
		return nil, err
	}
	return c.objects[key], nil
}

func (c *cache) evict(key string) {
	c.Lock()
	defer c.Unlock()
	delete(c.objects, key)
}

func CreateGlobalObjectCache() {
	createOnce.Do(func() {
		GlobalObjectCache = &cache{objects: make(map[string]any)}
	})
}

// Load returns the object cached under name, calling loadFunc the first
// time. A failed load is not cached.
func Load(cfg *config.Config, name string, loadFunc LoadFunc) (any, error) {
	CreateGlobalObjectCache()
	return GlobalObjectCache.get(cfg, name, loadFunc)
}

// Evict drops name so the next Load reloads it.
func Evict(name string) {
	CreateGlobalObjectCache()
	GlobalObjectCache.evict(name)
}
