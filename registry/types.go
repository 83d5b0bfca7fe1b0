package registry

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// QCI is a registry record as read from the chain, with the status
// reconciled to the Status enum. RawStatus keeps the bytes32 exactly as
// stored for callers that need to inspect unrecognized encodings.
type QCI struct {
	Number             *big.Int
	Title              string
	ChainName          string
	ContentHash        common.Hash
	IPFSUrl            string
	Author             common.Address
	CreatedAt          time.Time
	LastUpdated        time.Time
	Version            *big.Int
	Status             Status
	RawStatus          common.Hash
	Implementor        string
	ImplementationDate time.Time
	SnapshotProposalID string
}

// Implemented reports whether an implementation date has been recorded.
func (q *QCI) Implemented() bool {
	return !q.ImplementationDate.IsZero()
}

// HasSnapshot reports whether the record has been linked to a Snapshot
// proposal.
func (q *QCI) HasSnapshot() bool {
	return q.SnapshotProposalID != ""
}

// Draft is the author-supplied input of a create or update submission.
type Draft struct {
	Title       string
	ChainName   string
	ContentHash common.Hash
	IPFSUrl     string
}

// rawRecord aliases the tuple shape returned by the generated binding.
type rawRecord = struct {
	QciNumber          *big.Int
	Title              string
	ChainName          string
	ContentHash        [32]byte
	IpfsUrl            string
	Author             common.Address
	CreatedAt          *big.Int
	LastUpdated        *big.Int
	Version            *big.Int
	Status             [32]byte
	Implementor        string
	ImplementationDate *big.Int
	SnapshotProposalId string
}

// fromRaw converts a binding tuple into a QCI. The returned error is only
// ever an *ErrUnknownStatus; the record is still usable with Status falling
// back to Draft, so aggregating readers can log and keep going.
func fromRaw(raw rawRecord) (*QCI, error) {
	status, err := ParseStatus(raw.Status)
	q := &QCI{
		Number:             raw.QciNumber,
		Title:              raw.Title,
		ChainName:          raw.ChainName,
		ContentHash:        common.Hash(raw.ContentHash),
		IPFSUrl:            raw.IpfsUrl,
		Author:             raw.Author,
		CreatedAt:          unixTime(raw.CreatedAt),
		LastUpdated:        unixTime(raw.LastUpdated),
		Version:            raw.Version,
		Status:             status,
		RawStatus:          common.Hash(raw.Status),
		Implementor:        raw.Implementor,
		ImplementationDate: unixTime(raw.ImplementationDate),
		SnapshotProposalID: raw.SnapshotProposalId,
	}
	return q, err
}

func unixTime(ts *big.Int) time.Time {
	if ts == nil || ts.Sign() == 0 {
		return time.Time{}
	}
	return time.Unix(ts.Int64(), 0).UTC()
}
