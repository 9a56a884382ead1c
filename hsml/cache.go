package hsml

import (
	"hash/maphash"
	"sync"
	"time"

	"github.com/hsml-lab/hsml/hsml/debug"
	"github.com/hsml-lab/hsml/parser"
)

// cachedAST wraps a parsed tree with a fixed expiration time. Entries are
// immutable once stored; the compiler only reads the tree, so one entry
// can serve concurrent CompileContent calls.
type cachedAST struct {
	root    *parser.RootNode
	expires time.Time
}

// The AST cache is process-wide and opt-in per call (WithCache). Parsing
// dominates compilation cost for repeated templates, so sharing parsed
// trees across all callers maximizes the win. Expiry is a fixed TTL with a
// background sweeper rather than LRU; the cache grows between sweeps and
// shrinks during them, and there is no size limit.
var (
	astCache                sync.Map          // map[uint64]*cachedAST
	astCacheTTL             = 5 * time.Minute // default expiration time
	astCacheTTLOnce         sync.Once         // ensures TTL is set only once
	astCacheCleanupInterval = astCacheTTL / 2 // how often the sweeper runs
	astCacheCleanupOnce     sync.Once         // ensures the interval is set only once
	cacheConfigMutex        sync.RWMutex      // protects TTL/interval reads during startup
	cacheSweeperOnce        sync.Once         // starts the sweeper at most once

	// source hashing for cache keys; the random seed protects lookup
	// performance against adversarial inputs engineered to collide
	hashSeed     maphash.Seed
	hashSeedOnce sync.Once

	// singleflight bookkeeping so concurrent cache misses on the same
	// source parse it once
	sfMutex sync.Mutex
	sfCalls = make(map[uint64]*sfCall)
)

// SetASTCacheTTLOnce sets the time-to-live for cached AST entries. Only
// the first call has an effect. The sweeper interval becomes half of this
// value unless SetASTCacheCleanupIntervalOnce was called before.
func SetASTCacheTTLOnce(d time.Duration) {
	astCacheTTLOnce.Do(func() {
		cacheConfigMutex.Lock()
		astCacheTTL = d
		astCacheCleanupOnce.Do(func() {
			astCacheCleanupInterval = d / 2
		})
		cacheConfigMutex.Unlock()
	})
}

// SetASTCacheCleanupIntervalOnce sets how often expired AST cache entries
// are removed. Only the first call has an effect, and a call made after
// SetASTCacheTTLOnce has none, since that call already fixed the interval.
func SetASTCacheCleanupIntervalOnce(d time.Duration) {
	astCacheCleanupOnce.Do(func() {
		cacheConfigMutex.Lock()
		astCacheCleanupInterval = d
		cacheConfigMutex.Unlock()
	})
}

type sfCall struct {
	wg   sync.WaitGroup
	root *parser.RootNode
	err  error
}

// singleflightParse executes fn while ensuring only one execution per hash
// at a time. Callers that arrive while a parse is in flight wait for it
// and share its result, success or error.
func singleflightParse(hash uint64, fn func() (*parser.RootNode, error)) (*parser.RootNode, error) {
	sfMutex.Lock()
	if c, ok := sfCalls[hash]; ok {
		sfMutex.Unlock()
		c.wg.Wait()
		return c.root, c.err
	}
	c := &sfCall{}
	c.wg.Add(1)
	sfCalls[hash] = c
	sfMutex.Unlock()

	defer func() {
		c.wg.Done()
		sfMutex.Lock()
		delete(sfCalls, hash)
		sfMutex.Unlock()
	}()

	c.root, c.err = fn()
	return c.root, c.err
}

// hashSource returns a 64-bit hash of the source using the package-wide
// seed, so the cache never has to store or compare the sources themselves.
func hashSource(s string) uint64 {
	hashSeedOnce.Do(func() {
		hashSeed = maphash.MakeSeed()
	})
	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteString(s)
	return h.Sum64()
}

// parseAST handles parsing with optional caching.
func parseAST(source string, useCache bool) (*parser.RootNode, error) {
	if !useCache {
		return parseSource(source)
	}

	startCacheSweeper()

	hash := hashSource(source)
	if v, ok := astCache.Load(hash); ok {
		entry := v.(*cachedAST)
		if time.Now().Before(entry.expires) {
			debug.DebugLog("hsml", "cache-hit", "Reusing cached AST")
			return entry.root, nil
		}
		astCache.Delete(hash)
	}

	return singleflightParse(hash, func() (*parser.RootNode, error) {
		root, err := parseSource(source)
		if err != nil {
			return nil, err
		}
		cacheConfigMutex.RLock()
		ttl := astCacheTTL
		cacheConfigMutex.RUnlock()
		astCache.Store(hash, &cachedAST{root: root, expires: time.Now().Add(ttl)})
		return root, nil
	})
}

// startCacheSweeper launches the background goroutine that drops expired
// entries. It runs for the life of the process once any caller opts into
// caching.
func startCacheSweeper() {
	cacheSweeperOnce.Do(func() {
		cacheConfigMutex.RLock()
		interval := astCacheCleanupInterval
		cacheConfigMutex.RUnlock()

		go func() {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for range ticker.C {
				now := time.Now()
				astCache.Range(func(key, value interface{}) bool {
					if entry := value.(*cachedAST); now.After(entry.expires) {
						astCache.Delete(key)
					}
					return true
				})
			}
		}()
	})
}
