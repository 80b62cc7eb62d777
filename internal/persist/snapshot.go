package persist

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/alexanderramin/ticklist/internal/domain"
)

// SnapshotVersion is the format version written by Encode.
const SnapshotVersion = 1

var (
	errEmptySnapshot   = errors.New("empty snapshot")
	errUnknownVersion  = errors.New("unknown snapshot version")
	errSnapshotPayload = errors.New("snapshot is neither an object nor an array")
)

type snapshot struct {
	Version int `json:"version"`
	// LastID is the highest sequence id ever minted for the list, so ids
	// of deleted items are not handed out again in a later session.
	LastID int64          `json:"last_id,omitempty"`
	Items  []snapshotItem `json:"items"`
}

type snapshotItem struct {
	ID   snapshotID `json:"id"`
	Text string     `json:"text"`
	Done bool       `json:"done"`
}

// snapshotID accepts both string ids and the numeric timestamp ids written
// by the unversioned legacy format.
type snapshotID string

func (id *snapshotID) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = snapshotID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	if i, err := n.Int64(); err == nil {
		*id = snapshotID(strconv.FormatInt(i, 10))
		return nil
	}
	*id = snapshotID(n.String())
	return nil
}

// Encode serialises items as a version-1 snapshot.
func Encode(items []domain.Item) ([]byte, error) {
	return EncodeWithLastID(items, 0)
}

// EncodeWithLastID is Encode plus the sequence high-water mark. A zero
// lastID is left out of the output.
func EncodeWithLastID(items []domain.Item, lastID int64) ([]byte, error) {
	s := snapshot{Version: SnapshotVersion, LastID: lastID, Items: make([]snapshotItem, 0, len(items))}
	for _, it := range items {
		s.Items = append(s.Items, snapshotItem{ID: snapshotID(it.ID), Text: it.Text, Done: it.Done})
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return b, nil
}

// Decoded is the raw result of decoding a snapshot, before repair.
type Decoded struct {
	Items  []domain.Item
	LastID int64
	Legacy bool // unversioned bare-array form
}

// Decode parses either a versioned snapshot object or the legacy bare
// array. It does not check the uniqueness invariant; see Bridge.Load.
func Decode(b []byte) (Decoded, error) {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return Decoded{}, errEmptySnapshot
	}

	var raw []snapshotItem
	var legacy bool
	var lastID int64
	switch b[0] {
	case '{':
		var s snapshot
		if err := json.Unmarshal(b, &s); err != nil {
			return Decoded{}, fmt.Errorf("json unmarshal: %w", err)
		}
		if s.Version != SnapshotVersion {
			return Decoded{}, fmt.Errorf("%w: %d", errUnknownVersion, s.Version)
		}
		raw = s.Items
		lastID = s.LastID
	case '[':
		if err := json.Unmarshal(b, &raw); err != nil {
			return Decoded{}, fmt.Errorf("json unmarshal: %w", err)
		}
		legacy = true
	case 'n':
		// A stored null is an empty list.
		if bytes.Equal(b, []byte("null")) {
			return Decoded{Items: []domain.Item{}}, nil
		}
		return Decoded{}, errSnapshotPayload
	default:
		return Decoded{}, errSnapshotPayload
	}

	items := make([]domain.Item, 0, len(raw))
	for _, r := range raw {
		items = append(items, domain.Item{ID: string(r.ID), Text: r.Text, Done: r.Done})
	}
	return Decoded{Items: items, LastID: lastID, Legacy: legacy}, nil
}
