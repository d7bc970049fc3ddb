package names

// TargetType names a targeting dimension used in target value maps and
// list filters.
type TargetType string

// Well-known target types.
const (
	TargetTypePowerServiceLocation TargetType = "POWER_SERVICE_LOCATION"
	TargetTypeNetworkLocation      TargetType = "NETWORK_LOCATION"
	TargetTypeGroup                TargetType = "GROUP"
	TargetTypeResourceName         TargetType = "RESOURCE_NAME"
	TargetTypeVenName              TargetType = "VEN_NAME"
	TargetTypeEventName            TargetType = "EVENT_NAME"
	TargetTypeProgramName          TargetType = "PROGRAM_NAME"
	TargetTypeServiceArea          TargetType = "SERVICE_AREA"
)

var targetTypes = newRegistry(
	string(TargetTypePowerServiceLocation),
	string(TargetTypeNetworkLocation),
	string(TargetTypeGroup),
	string(TargetTypeResourceName),
	string(TargetTypeVenName),
	string(TargetTypeEventName),
	string(TargetTypeProgramName),
	string(TargetTypeServiceArea),
)

// ParseTargetType parses a target type, interning unknown spellings.
func ParseTargetType(s string) (TargetType, error) {
	c, err := targetTypes.parse(s)
	return TargetType(c), err
}

func (t TargetType) String() string               { return string(t) }
func (t TargetType) Equal(other TargetType) bool  { return equalFold(string(t), string(other)) }
func (t TargetType) Compare(other TargetType) int { return compareFold(string(t), string(other)) }
func (t TargetType) IsWellKnown() bool            { return targetTypes.isWellKnown(string(t)) }
func (t TargetType) MarshalText() ([]byte, error) { return []byte(t), nil }

func (t *TargetType) UnmarshalText(text []byte) error {
	parsed, err := ParseTargetType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
