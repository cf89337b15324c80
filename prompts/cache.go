package prompts

import "sync"

// Cache memoizes loaded prompt templates so long-lived sessions don't stat
// the override directory on every request. Invalidate drops the memo when an
// override file changes on disk.
type Cache struct {
	mu           sync.RWMutex
	templatesDir string
	loaded       map[PromptKey]string
}

// NewCache creates a cache over the given templates directory. An empty
// directory means defaults only, which still benefits from the memo.
func NewCache(templatesDir string) *Cache {
	return &Cache{
		templatesDir: templatesDir,
		loaded:       make(map[PromptKey]string),
	}
}

// Get returns the prompt for key, loading and memoizing it on first use.
func (c *Cache) Get(key PromptKey) (string, error) {
	c.mu.RLock()
	content, ok := c.loaded[key]
	c.mu.RUnlock()
	if ok {
		return content, nil
	}

	content, err := GetPrompt(key, c.templatesDir)
	if err != nil {
		return "", err
	}

	c.mu.Lock()
	c.loaded[key] = content
	c.mu.Unlock()
	return content, nil
}

// Invalidate drops every memoized template. The next Get re-reads the
// override files, picking up edits, additions and deletions.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.loaded = make(map[PromptKey]string)
	c.mu.Unlock()
}
