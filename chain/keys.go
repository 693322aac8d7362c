package chain

// Database key layout. Block records live under the content-derived
// "blk:<hex hash>" keys and are written once; the tip key is the only
// entry rewritten during normal operation. The prefixes keep the
// reserved tip key disjoint from every possible block key.
const (
	PrefixBlock     = "blk:"
	PrefixChainMeta = "chain_meta:"

	ChainMetaKeyTip = "tip"
)

func blockKey(hash string) []byte {
	return []byte(PrefixBlock + hash)
}

func tipKey() []byte {
	return []byte(PrefixChainMeta + ChainMetaKeyTip)
}
