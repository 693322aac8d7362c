package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBlockSealsHash(t *testing.T) {
	b := New([]byte("Transaction: Alice pays Bob 5"), RootSentinel)

	require.NotEmpty(t, b.Hash)
	assert.Equal(t, b.ComputeHash(), b.Hash)
	assert.True(t, ValidHashHex(b.Hash))
	assert.True(t, b.IsGenesis())
}

func TestComputeHashDeterministic(t *testing.T) {
	b := &Block{
		Timestamp: 1724457600000,
		Payload:   []byte("payload"),
		PrevHash:  RootSentinel,
	}
	first := b.ComputeHash()
	second := b.ComputeHash()
	assert.Equal(t, first, second)

	// the Hash field must not influence the digest
	b.Hash = "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"
	assert.Equal(t, first, b.ComputeHash())
}

func TestComputeHashCoversEveryField(t *testing.T) {
	base := Block{
		Timestamp: 1724457600000,
		Payload:   []byte("payload"),
		PrevHash:  RootSentinel,
	}

	tampered := base
	tampered.Payload = []byte("Payload")
	assert.NotEqual(t, base.ComputeHash(), tampered.ComputeHash(), "payload change must change hash")

	tampered = base
	tampered.Timestamp++
	assert.NotEqual(t, base.ComputeHash(), tampered.ComputeHash(), "timestamp change must change hash")

	tampered = base
	tampered.PrevHash = "1"
	assert.NotEqual(t, base.ComputeHash(), tampered.ComputeHash(), "prev hash change must change hash")
}

func TestPayloadBoundaryUnambiguous(t *testing.T) {
	// same concatenated bytes, different (payload, prev_hash) split
	a := Block{Timestamp: 1, Payload: []byte("ab"), PrevHash: "c"}
	b := Block{Timestamp: 1, Payload: []byte("a"), PrevHash: "bc"}
	assert.NotEqual(t, a.ComputeHash(), b.ComputeHash())
}

func TestMarshalRoundTrip(t *testing.T) {
	b := New([]byte("round trip"), RootSentinel)

	encoded, err := b.Marshal()
	require.NoError(t, err)

	decoded, err := Unmarshal(encoded)
	require.NoError(t, err)
	assert.Equal(t, b, decoded)

	// re-encoding must reproduce the identical bytes
	reencoded, err := decoded.Marshal()
	require.NoError(t, err)
	assert.Equal(t, encoded, reencoded)
}

func TestUnmarshalRejectsGarbage(t *testing.T) {
	_, err := Unmarshal([]byte("{not json"))
	assert.Error(t, err)
}

func TestValidHashHex(t *testing.T) {
	assert.False(t, ValidHashHex(RootSentinel))
	assert.False(t, ValidHashHex(""))
	assert.False(t, ValidHashHex("zz"))

	b := New(nil, RootSentinel)
	assert.True(t, ValidHashHex(b.Hash))
}
