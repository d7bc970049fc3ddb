package names

// Operation identifies an HTTP operation on a VTN resource. Subscriptions
// use operations to say which changes they want to be notified about.
type Operation string

// Well-known operations.
const (
	OperationGet    Operation = "GET"
	OperationPost   Operation = "POST"
	OperationPut    Operation = "PUT"
	OperationDelete Operation = "DELETE"
)

var operations = newRegistry(
	string(OperationGet),
	string(OperationPost),
	string(OperationPut),
	string(OperationDelete),
)

// ParseOperation parses an operation, interning unknown spellings.
// Empty or blank input fails with ErrEmptyName.
func ParseOperation(s string) (Operation, error) {
	c, err := operations.parse(s)
	return Operation(c), err
}

// String returns the canonical spelling.
func (o Operation) String() string { return string(o) }

// Equal reports case-insensitive equality.
func (o Operation) Equal(other Operation) bool { return equalFold(string(o), string(other)) }

// Compare orders two operations case-insensitively.
func (o Operation) Compare(other Operation) int { return compareFold(string(o), string(other)) }

// IsWellKnown reports whether this is one of the pre-registered operations.
func (o Operation) IsWellKnown() bool { return operations.isWellKnown(string(o)) }

// MarshalText implements encoding.TextMarshaler.
func (o Operation) MarshalText() ([]byte, error) { return []byte(o), nil }

// UnmarshalText implements encoding.TextUnmarshaler via ParseOperation.
func (o *Operation) UnmarshalText(text []byte) error {
	parsed, err := ParseOperation(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
