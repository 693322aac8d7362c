package chain

import (
	"chainvault/block"
	"chainvault/errors"
	"chainvault/logx"
)

// DefaultMaxDepth bounds backward traversal during validation and walks.
const DefaultMaxDepth = 1_000_000

// InvalidReason classifies why validation rejected the chain.
type InvalidReason string

const (
	// BrokenLink: a predecessor pointer referenced a block that does not
	// exist in the store, or the record stored under a hash key is not
	// the block that key names.
	BrokenLink InvalidReason = "broken_link"

	// TamperedData: a block's fields were altered without a matching
	// self-hash update.
	TamperedData InvalidReason = "tampered_data"

	// Corrupt: stored bytes failed to decode, or the link structure
	// itself is degenerate (cycle, runaway length).
	Corrupt InvalidReason = "corrupt"
)

// ValidationResult is a reported outcome, not an error: an invalid chain
// is an expected, detectable state.
type ValidationResult struct {
	Valid  bool
	Reason InvalidReason
	AtHash string
}

func valid() ValidationResult {
	return ValidationResult{Valid: true}
}

func invalid(reason InvalidReason, atHash string) ValidationResult {
	return ValidationResult{Reason: reason, AtHash: atHash}
}

// Validate walks backward from the in-memory tip to the root sentinel,
// recomputing every hash and checking link continuity. A store failure is
// returned as an error ("could not check"); a bad chain is returned as an
// Invalid result ("checked and found invalid"). Without intervening
// writes the result is the same on every call.
//
// What this catches, and what it cannot: editing a block without updating
// its hash is caught directly (TamperedData). Recomputing the edited
// block's own hash makes that block internally consistent, but the record
// then no longer matches the hash its descendant's predecessor link
// names, so the walk reports BrokenLink there — forging a predecessor
// would require recomputing every ancestor transitively. The one blind
// spot is the tip itself: a tip block rewritten with a recomputed hash
// and a matching tip-key update has no descendant to betray it, and is
// detectable only against an externally retained checkpoint of the
// expected tip hash. Hash chaining is tamper-evidence, not
// tamper-proofing.
func (c *Chain) Validate() (ValidationResult, error) {
	cur := c.Tip()
	visited := make(map[string]struct{}, 64)

	for steps := 0; ; steps++ {
		if steps >= c.maxDepth {
			logx.Warn("CHAIN", "Validation traversal cap hit at ", cur)
			return invalid(Corrupt, cur), nil
		}
		if _, seen := visited[cur]; seen {
			logx.Warn("CHAIN", "Validation found predecessor cycle at ", cur)
			return invalid(Corrupt, cur), nil
		}
		visited[cur] = struct{}{}

		value, err := c.provider.Get(blockKey(cur))
		if err != nil {
			return ValidationResult{}, errors.NewStoreError("failed to read block during validation", err)
		}
		if value == nil {
			return invalid(BrokenLink, cur), nil
		}

		b, err := block.Unmarshal(value)
		if err != nil {
			return invalid(Corrupt, cur), nil
		}

		if b.ComputeHash() != b.Hash {
			return invalid(TamperedData, cur), nil
		}
		if b.Hash != cur {
			// internally consistent record stored under a key it does not
			// hash to: the link no longer reaches the block it named
			return invalid(BrokenLink, cur), nil
		}

		if b.IsGenesis() {
			return valid(), nil
		}
		cur = b.PrevHash
	}
}
