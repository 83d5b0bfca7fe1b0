package registry

import (
	"bytes"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Status is the lifecycle position of a QCI record. The registry contract
// stores it as a bytes32 key, but older contract versions and the caching API
// have emitted it as a uint8 index, a JSON-coerced float (including
// scientific notation) and a plain name string. ParseStatus accepts all of
// them; everything downstream works with this enum only.
type Status uint8

const (
	StatusDraft Status = iota
	StatusReadyForSnapshot
	StatusPostedToSnapshot
)

const numStatuses = 3

var statusNames = [numStatuses]string{
	StatusDraft:            "Draft",
	StatusReadyForSnapshot: "Ready for Snapshot",
	StatusPostedToSnapshot: "Posted to Snapshot",
}

// statusKeys[i] is keccak256(statusNames[i]), the canonical on-chain encoding.
var statusKeys = func() [numStatuses]common.Hash {
	var keys [numStatuses]common.Hash
	for i, name := range statusNames {
		keys[i] = crypto.Keccak256Hash([]byte(name))
	}
	return keys
}()

// byNormalizedName maps case- and separator-insensitive names to statuses.
var byNormalizedName = func() map[string]Status {
	m := make(map[string]Status, numStatuses)
	for i, name := range statusNames {
		m[normalizeStatusName(name)] = Status(i)
	}
	return m
}()

func (s Status) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
	return statusNames[s]
}

func (s Status) Valid() bool {
	return uint8(s) < numStatuses
}

// Key returns the canonical bytes32 status key stored by the contract.
func (s Status) Key() common.Hash {
	if !s.Valid() {
		return common.Hash{}
	}
	return statusKeys[s]
}

// ErrUnknownStatus is returned when an on-chain or API value cannot be
// reconciled to any known status.
type ErrUnknownStatus struct {
	Value any
}

func (e *ErrUnknownStatus) Error() string {
	return fmt.Sprintf("unknown status value %v (%T)", e.Value, e.Value)
}

// ParseStatus reconciles any of the status encodings observed upstream back
// to a Status:
//
//   - integer kinds and *big.Int: the 0/1/2 index
//   - float64: JSON number coercion of the index, scientific notation included
//   - [32]byte / common.Hash: keccak256 name key, or legacy zero-padded ASCII
//   - string: a display name, a decimal index, a float/scientific-notation
//     index, or a 0x-prefixed hex key
func ParseStatus(v any) (Status, error) {
	switch val := v.(type) {
	case Status:
		if val.Valid() {
			return val, nil
		}
	case uint8:
		return statusFromIndex(uint64(val), v)
	case uint64:
		return statusFromIndex(val, v)
	case int:
		if val >= 0 {
			return statusFromIndex(uint64(val), v)
		}
	case int64:
		if val >= 0 {
			return statusFromIndex(uint64(val), v)
		}
	case *big.Int:
		if val != nil && val.Sign() >= 0 && val.IsUint64() {
			return statusFromIndex(val.Uint64(), v)
		}
	case float64:
		return statusFromFloat(val, v)
	case common.Hash:
		return statusFromKey(val, v)
	case [32]byte:
		return statusFromKey(common.Hash(val), v)
	case string:
		return statusFromString(val, v)
	}
	return StatusDraft, &ErrUnknownStatus{Value: v}
}

// ParseStatusOrDraft is the lenient variant used on read paths where a single
// malformed record must not abort an aggregation. Unknown values map to
// Draft.
func ParseStatusOrDraft(v any) Status {
	s, err := ParseStatus(v)
	if err != nil {
		return StatusDraft
	}
	return s
}

func statusFromIndex(idx uint64, orig any) (Status, error) {
	if idx < numStatuses {
		return Status(idx), nil
	}
	return StatusDraft, &ErrUnknownStatus{Value: orig}
}

func statusFromFloat(f float64, orig any) (Status, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f != math.Trunc(f) {
		return StatusDraft, &ErrUnknownStatus{Value: orig}
	}
	return statusFromIndex(uint64(f), orig)
}

func statusFromKey(key common.Hash, orig any) (Status, error) {
	for i, k := range statusKeys {
		if key == k {
			return Status(i), nil
		}
	}
	// Legacy contract versions stored the name itself, left-aligned ASCII
	// with zero padding.
	if name := bytes.TrimRight(key.Bytes(), "\x00"); len(name) > 0 {
		if s, ok := byNormalizedName[normalizeStatusName(string(name))]; ok {
			return s, nil
		}
	}
	return StatusDraft, &ErrUnknownStatus{Value: orig}
}

func statusFromString(raw string, orig any) (Status, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return StatusDraft, &ErrUnknownStatus{Value: orig}
	}
	if status, ok := byNormalizedName[normalizeStatusName(s)]; ok {
		return status, nil
	}
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		if len(s) == 2+2*common.HashLength {
			return statusFromKey(common.HexToHash(s), orig)
		}
		return StatusDraft, &ErrUnknownStatus{Value: orig}
	}
	if idx, err := strconv.ParseUint(s, 10, 64); err == nil {
		return statusFromIndex(idx, orig)
	}
	// Some upstream layers round-trip the index through a float and hand
	// back values like "1e+0" or "2E0".
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return statusFromFloat(f, orig)
	}
	return StatusDraft, &ErrUnknownStatus{Value: orig}
}

func normalizeStatusName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		switch r {
		case ' ', '\t', '-', '_':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
