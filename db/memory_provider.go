package db

import (
	"sync"
)

// MemoryProvider implements DatabaseProvider on a plain map. Used for
// tests and ephemeral chains; Flush is a no-op since nothing outlives
// the process anyway.
type MemoryProvider struct {
	mu     sync.RWMutex
	data   map[string][]byte
	closed bool
}

// NewMemoryProvider creates an empty in-memory provider
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{
		data: make(map[string][]byte),
	}
}

// Get retrieves a value by key
func (p *MemoryProvider) Get(key []byte) ([]byte, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	value, ok := p.data[string(key)]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), value...), nil
}

// Put stores a key-value pair
func (p *MemoryProvider) Put(key, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.data[string(key)] = append([]byte(nil), value...)
	return nil
}

// Delete removes a key-value pair
func (p *MemoryProvider) Delete(key []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.data, string(key))
	return nil
}

// Has checks if a key exists
func (p *MemoryProvider) Has(key []byte) (bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	_, ok := p.data[string(key)]
	return ok, nil
}

// Flush is a no-op for the in-memory backend
func (p *MemoryProvider) Flush() error {
	return nil
}

// Close drops the data
func (p *MemoryProvider) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.closed = true
	p.data = nil
	return nil
}

// Batch returns a new batch for atomic operations
func (p *MemoryProvider) Batch() DatabaseBatch {
	return &MemoryBatch{provider: p}
}

type memoryBatchOp struct {
	key    string
	value  []byte
	delete bool
}

// MemoryBatch buffers operations and applies them under one lock
type MemoryBatch struct {
	provider *MemoryProvider
	ops      []memoryBatchOp
}

// Put adds a key-value pair to the batch
func (b *MemoryBatch) Put(key, value []byte) {
	b.ops = append(b.ops, memoryBatchOp{key: string(key), value: append([]byte(nil), value...)})
}

// Delete adds a deletion to the batch
func (b *MemoryBatch) Delete(key []byte) {
	b.ops = append(b.ops, memoryBatchOp{key: string(key), delete: true})
}

// Write commits all operations in the batch
func (b *MemoryBatch) Write() error {
	b.provider.mu.Lock()
	defer b.provider.mu.Unlock()

	for _, op := range b.ops {
		if op.delete {
			delete(b.provider.data, op.key)
			continue
		}
		b.provider.data[op.key] = op.value
	}
	return nil
}

// Reset clears the batch
func (b *MemoryBatch) Reset() {
	b.ops = b.ops[:0]
}

// Close releases batch resources
func (b *MemoryBatch) Close() {
	b.ops = nil
}
