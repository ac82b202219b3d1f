package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

var ErrInvalidID = errors.New("invalid identifier")

// ID is the canonical textual form of an identifier issued by the ledger.
// The ledger emits ids either as JSON numbers or as strings depending on the
// endpoint; both are normalised when decoded so that stores can compare ids
// with plain equality.
type ID string

// NilID is the zero value and never matches a real record
const NilID ID = ""

// ParseID normalises a textual id received from outside the ledger payloads
// (URL paths, mirror snapshots, CLI flags).
func ParseID(raw string) ID {
	s := strings.TrimSpace(raw)
	if s == "" {
		return NilID
	}
	if canonical, ok := integralNumber(s); ok {
		return ID(canonical)
	}
	return ID(s)
}

// integralNumber folds the numeric spellings a ledger emits for an integer
// ("42.0", "+42") onto "42". Plain digit strings are ids in their own right
// and keep leading zeros.
func integralNumber(s string) (string, bool) {
	whole, frac, hasFrac := strings.Cut(s, ".")
	if hasFrac {
		if frac == "" || strings.Trim(frac, "0") != "" {
			return "", false
		}
	} else if !strings.HasPrefix(s, "+") {
		return "", false
	}

	n, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return "", false
	}
	return strconv.FormatInt(n, 10), true
}

// NewID normalises an id of any supported dynamic type.
func NewID(v any) (ID, error) {
	switch t := v.(type) {
	case nil:
		return NilID, nil
	case ID:
		return ParseID(string(t)), nil
	case string:
		return ParseID(t), nil
	case int:
		return ID(strconv.Itoa(t)), nil
	case int32:
		return ID(strconv.FormatInt(int64(t), 10)), nil
	case int64:
		return ID(strconv.FormatInt(t, 10)), nil
	case uint64:
		return ID(strconv.FormatUint(t, 10)), nil
	case float64:
		if t != math.Trunc(t) {
			return NilID, fmt.Errorf("%w: %v", ErrInvalidID, t)
		}
		return ID(strconv.FormatInt(int64(t), 10)), nil
	case json.Number:
		return ParseID(t.String()), nil
	case fmt.Stringer:
		return ParseID(t.String()), nil
	default:
		return NilID, fmt.Errorf("%w: unsupported type %T", ErrInvalidID, v)
	}
}

// String returns the canonical text
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether the id is unset
func (id ID) IsZero() bool {
	return id == NilID
}

// UnmarshalJSON accepts numbers, strings and null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = NilID
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidID, err)
		}
		*id = ParseID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidID, string(data))
	}
	*id = ParseID(n.String())
	return nil
}

// MarshalJSON always writes the canonical string form.
func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}
