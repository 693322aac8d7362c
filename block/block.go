package block

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"

	"chainvault/jsonx"
)

// RootSentinel is the reserved PrevHash value marking "no predecessor".
// It can never collide with a real hash (real hashes are 64 hex chars).
const RootSentinel = "0"

// HashHexLen is the length of a hex-encoded sha256 digest.
const HashHexLen = sha256.Size * 2

// Block is one ledger record. Immutable once finalized: Hash is computed
// over (Timestamp, Payload, PrevHash) at construction and never recomputed
// implicitly afterward.
type Block struct {
	Timestamp uint64 `json:"timestamp"` // ms since epoch
	Payload   []byte `json:"payload"`   // opaque application data
	PrevHash  string `json:"prev_hash"` // hex digest of predecessor, or RootSentinel
	Hash      string `json:"hash"`      // hex digest of this block's own content
}

// New builds a block linked to prevHash, stamped with the current time,
// and seals it with its content hash.
func New(payload []byte, prevHash string) *Block {
	b := &Block{
		Timestamp: uint64(time.Now().UnixMilli()),
		Payload:   payload,
		PrevHash:  prevHash,
	}
	b.Hash = b.ComputeHash()
	return b
}

// ComputeHash returns the hex-encoded sha256 over the block's logical
// fields. The Hash field itself is never part of the input. Payload is
// length-prefixed so (payload, prev_hash) boundaries stay unambiguous.
func (b *Block) ComputeHash() string {
	h := sha256.New()
	buf := make([]byte, 8)
	// Timestamp
	binary.BigEndian.PutUint64(buf, b.Timestamp)
	h.Write(buf)
	// Payload, length-prefixed
	binary.BigEndian.PutUint64(buf, uint64(len(b.Payload)))
	h.Write(buf)
	h.Write(b.Payload)
	// PrevHash
	h.Write([]byte(b.PrevHash))
	return hex.EncodeToString(h.Sum(nil))
}

// IsGenesis reports whether this block is the chain root.
func (b *Block) IsGenesis() bool {
	return b.PrevHash == RootSentinel
}

// Marshal encodes the block to its stable JSON storage form.
func (b *Block) Marshal() ([]byte, error) {
	return jsonx.Marshal(b)
}

// Unmarshal decodes a stored block.
func Unmarshal(data []byte) (*Block, error) {
	var b Block
	if err := jsonx.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("unmarshal block: %w", err)
	}
	return &b, nil
}

// ValidHashHex reports whether s looks like a hex-encoded digest.
// Used to sanity-check tip bytes read back from storage.
func ValidHashHex(s string) bool {
	if len(s) != HashHexLen {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
