package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/vmihailenco/msgpack/v5"

	"ferrite/internal/source"
	"ferrite/internal/token"
)

// Current schema version - increment when tokenPayload changes
const tokenCacheSchema uint16 = 1

// TokenCache хранит результаты лексера на диске по хэшу содержимого.
// Only successful lexes are stored. Thread-safe.
type TokenCache struct {
	mu  sync.RWMutex
	dir string
}

type tokenPayload struct {
	Schema uint16        `msgpack:"v"`
	Tokens []token.Token `msgpack:"t"`
	EOF    uint32        `msgpack:"e"`
}

// OpenTokenCache opens (creating if needed) a cache rooted at dir. An empty
// dir selects the user cache directory.
func OpenTokenCache(dir string) (*TokenCache, error) {
	if dir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, err
		}
		dir = filepath.Join(base, "ferrite", "tokens")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &TokenCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *TokenCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *TokenCache) pathFor(file *source.File) string {
	return filepath.Join(c.dir, hex.EncodeToString(file.Hash[:])+".mp")
}

// Get returns the cached tokens for file's content. Spans are rebased onto
// file.ID since file ids are only stable within one FileSet.
func (c *TokenCache) Get(file *source.File) ([]token.Token, source.Pos, bool, error) {
	if c == nil || file == nil {
		return nil, source.Pos{}, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, err := os.ReadFile(c.pathFor(file))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, source.Pos{}, false, nil
	}
	if err != nil {
		return nil, source.Pos{}, false, err
	}
	var payload tokenPayload
	if err := msgpack.Unmarshal(data, &payload); err != nil {
		return nil, source.Pos{}, false, fmt.Errorf("decode token cache: %w", err)
	}
	if payload.Schema != tokenCacheSchema {
		return nil, source.Pos{}, false, nil
	}
	for i := range payload.Tokens {
		payload.Tokens[i].Span.File = file.ID
	}
	return payload.Tokens, source.Pos{File: file.ID, Index: payload.EOF}, true, nil
}

// Put stores tokens for file's content, replacing any previous entry.
func (c *TokenCache) Put(file *source.File, toks []token.Token, eof source.Pos) error {
	if c == nil || file == nil {
		return nil
	}
	data, err := msgpack.Marshal(&tokenPayload{Schema: tokenCacheSchema, Tokens: toks, EOF: eof.Index})
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	f, err := os.CreateTemp(c.dir, "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	// Атомарная замена
	if err := os.Rename(tmp, c.pathFor(file)); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// Drop removes the entry for file's content, if present.
func (c *TokenCache) Drop(file *source.File) error {
	if c == nil || file == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	err := os.Remove(c.pathFor(file))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
