package error

import (
	"fmt"
	"strconv"
)

// Kind classifies a failure. The set is closed; callers compare kinds with ==.
type Kind uint8

const (
	// PacketCounterOverflow reports that an internal packet/sequence counter
	// exceeded its representable range.
	PacketCounterOverflow Kind = iota
	// Timeout reports that an operation was abandoned after exceeding its allotted time.
	Timeout
	// Other reports a failure that originated outside the library (I/O, terminal backend).
	Other
	// Internal reports a violated invariant inside the library. It indicates a defect.
	Internal
)

var kindNames = [...]string{
	PacketCounterOverflow: "PacketCounterOverflow",
	Timeout:               "Timeout",
	Other:                 "Other",
	Internal:              "Internal",
}

var kindDefaults = [...]string{
	PacketCounterOverflow: "packet counter overflow",
	Timeout:               "operation timed out",
	Other:                 "external failure",
	Internal:              "internal error",
}

// Kinds returns every classification in declaration order.
func Kinds() []Kind {
	return []Kind{PacketCounterOverflow, Timeout, Other, Internal}
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool { return int(k) < len(kindNames) }

func (k Kind) String() string {
	if !k.Valid() {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}

	return kindNames[k]
}

// defaultDescription is used when a constructor receives empty text.
func (k Kind) defaultDescription() string {
	if !k.Valid() {
		return "unclassified error"
	}

	return kindDefaults[k]
}

// ParseKind returns the Kind whose name is s. Names are case-sensitive.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}

	return 0, fmt.Errorf("unknown error kind %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("invalid error kind %d", uint8(k))
	}

	return []byte(kindNames[k]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}

	*k = parsed

	return nil
}
