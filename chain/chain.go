package chain

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"chainvault/block"
	"chainvault/db"
	"chainvault/errors"
	"chainvault/logx"
)

// DefaultGenesisPayload seeds the first block when a chain is bootstrapped
// on an empty store.
var DefaultGenesisPayload = []byte("genesis")

// Chain maintains the append-only hash-linked ledger and its tip. The
// provider is the sole owner of block data; the chain owns only the tip
// pointer. Exactly one Chain instance should own a given store at a time;
// concurrent writers to the same store are unsupported.
type Chain struct {
	provider db.DatabaseProvider

	mu  sync.RWMutex
	tip string

	genesisPayload []byte
	maxDepth       int
}

// Option tweaks chain construction.
type Option func(*Chain)

// WithGenesisPayload overrides the payload used when bootstrapping a
// fresh chain. Has no effect when a tip already exists.
func WithGenesisPayload(payload []byte) Option {
	return func(c *Chain) {
		if len(payload) > 0 {
			c.genesisPayload = payload
		}
	}
}

// WithMaxDepth caps backward traversal. Walks exceeding the cap report
// corruption instead of looping forever on a maliciously cyclic chain.
func WithMaxDepth(depth int) Option {
	return func(c *Chain) {
		if depth > 0 {
			c.maxDepth = depth
		}
	}
}

// Open loads the chain tip from the provider, bootstrapping a genesis
// block on first run. The tip is adopted without validation; Validate is
// a separate, explicit operation.
func Open(provider db.DatabaseProvider, opts ...Option) (*Chain, error) {
	if provider == nil {
		return nil, fmt.Errorf("provider cannot be nil")
	}

	c := &Chain{
		provider:       provider,
		genesisPayload: DefaultGenesisPayload,
		maxDepth:       DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(c)
	}

	value, err := provider.Get(tipKey())
	if err != nil {
		return nil, errors.NewStoreError("failed to read tip", err)
	}

	if value == nil {
		if err := c.bootstrap(); err != nil {
			return nil, err
		}
		return c, nil
	}

	tip := string(value)
	if !utf8.ValidString(tip) || !block.ValidHashHex(tip) {
		return nil, errors.NewDecodeError(fmt.Sprintf("tip key holds invalid hash text %q", tip), nil)
	}

	c.tip = tip
	logx.Info("CHAIN", "Opened chain at tip ", tip)
	return c, nil
}

// bootstrap synthesizes the genesis block on an empty store.
func (c *Chain) bootstrap() error {
	genesis := block.New(c.genesisPayload, block.RootSentinel)
	if err := c.persist(genesis); err != nil {
		return err
	}
	c.tip = genesis.Hash
	logx.Info("CHAIN", "Bootstrapped genesis block ", genesis.Hash)
	return nil
}

// Append constructs a new block linked to the current tip and persists
// it. The in-memory tip is updated only after every write, including the
// tip-key write, has succeeded and been flushed; on any failure it is
// left unchanged so it never diverges from durably confirmed state.
func (c *Chain) Append(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	b := block.New(payload, c.tip)
	if err := c.persist(b); err != nil {
		return err
	}
	c.tip = b.Hash

	logx.Info("CHAIN", "Appended block ", b.Hash)
	return nil
}

// persist writes a block record and then advances the tip key, with a
// durability flush after each write. Block-first, tip-second: a crash
// between the two leaves the tip lagging one block (recoverable), never
// pointing at a record that does not exist.
func (c *Chain) persist(b *block.Block) error {
	value, err := b.Marshal()
	if err != nil {
		// serialization of a well-formed in-memory block cannot fail in
		// normal operation
		return errors.NewStoreError("failed to marshal block", err)
	}

	key := blockKey(b.Hash)
	exists, err := c.provider.Has(key)
	if err != nil {
		return errors.NewStoreError("failed to check block existence", err)
	}
	if exists {
		logx.Warn("CHAIN", "Block already present, rewriting ", b.Hash)
	}

	if err := c.provider.Put(key, value); err != nil {
		return errors.NewStoreError("failed to store block", err)
	}
	if err := c.provider.Flush(); err != nil {
		return errors.NewStoreError("failed to flush block", err)
	}

	if err := c.provider.Put(tipKey(), []byte(b.Hash)); err != nil {
		return errors.NewStoreError("failed to store tip", err)
	}
	if err := c.provider.Flush(); err != nil {
		return errors.NewStoreError("failed to flush tip", err)
	}
	return nil
}

// Tip returns the hash of the most recently appended block.
func (c *Chain) Tip() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tip
}

// Block retrieves a block by hash. Returns (nil, nil) when the hash does
// not resolve to a stored record.
func (c *Chain) Block(hash string) (*block.Block, error) {
	value, err := c.provider.Get(blockKey(hash))
	if err != nil {
		return nil, errors.NewStoreError("failed to get block", err)
	}
	if value == nil {
		return nil, nil
	}

	b, err := block.Unmarshal(value)
	if err != nil {
		return nil, errors.NewDecodeError(fmt.Sprintf("block %s is corrupt", hash), err)
	}
	return b, nil
}

// Walk iterates backward from the tip toward the root, calling fn for
// each block. Iteration stops when fn returns false, the root sentinel
// is reached, or a structural problem is hit (reported as an error).
// There is no forward index; tip-to-root is the only traversal order.
func (c *Chain) Walk(fn func(*block.Block) bool) error {
	cur := c.Tip()
	visited := make(map[string]struct{}, 64)

	for steps := 0; ; steps++ {
		if steps >= c.maxDepth {
			return errors.NewDecodeError(fmt.Sprintf("traversal exceeded %d blocks at %s", c.maxDepth, cur), nil)
		}
		if _, seen := visited[cur]; seen {
			return errors.NewDecodeError(fmt.Sprintf("predecessor cycle at %s", cur), nil)
		}
		visited[cur] = struct{}{}

		b, err := c.Block(cur)
		if err != nil {
			return err
		}
		if b == nil {
			return errors.NewDecodeError(fmt.Sprintf("missing block %s", cur), nil)
		}

		if !fn(b) || b.IsGenesis() {
			return nil
		}
		cur = b.PrevHash
	}
}

// Close releases the underlying provider.
func (c *Chain) Close() error {
	if err := c.provider.Close(); err != nil {
		logx.Error("CHAIN", "Failed to close provider: ", err)
		return errors.NewStoreError("failed to close provider", err)
	}
	return nil
}
