package balance

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"time"

	"github.com/taxpilot-dev/taxpilot/internal/model"
)

// Hash returns the SHA-256 of the canonical CSV encoding of the entries,
// sorted by account so row order does not change the digest.
func Hash(entries []model.BalanceEntry) string {
	sorted := make([]model.BalanceEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Account < sorted[j].Account })

	var buf bytes.Buffer
	_ = WriteEntries(&buf, sorted)
	sum := sha256.Sum256(buf.Bytes())
	return hex.EncodeToString(sum[:])
}

// TakeSnapshot freezes a balance with its grand totals and content hash.
func TakeSnapshot(id string, entries []model.BalanceEntry, at time.Time) model.Snapshot {
	debit, credit := model.Totals(entries)
	return model.Snapshot{
		ID:          id,
		TakenAt:     at,
		Lines:       entries,
		TotalDebit:  debit,
		TotalCredit: credit,
		Hash:        Hash(entries),
	}
}
