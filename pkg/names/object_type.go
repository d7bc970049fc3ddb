package names

// ObjectType identifies the kind of an OpenADR protocol object.
type ObjectType string

// Well-known object types.
const (
	ObjectTypeProgram      ObjectType = "PROGRAM"
	ObjectTypeEvent        ObjectType = "EVENT"
	ObjectTypeReport       ObjectType = "REPORT"
	ObjectTypeSubscription ObjectType = "SUBSCRIPTION"
	ObjectTypeVen          ObjectType = "VEN"
	ObjectTypeResource     ObjectType = "RESOURCE"

	// Payload descriptor discriminators.
	ObjectTypeEventPayloadDescriptor  ObjectType = "EVENT_PAYLOAD_DESCRIPTOR"
	ObjectTypeReportPayloadDescriptor ObjectType = "REPORT_PAYLOAD_DESCRIPTOR"
)

var objectTypes = newRegistry(
	string(ObjectTypeProgram),
	string(ObjectTypeEvent),
	string(ObjectTypeReport),
	string(ObjectTypeSubscription),
	string(ObjectTypeVen),
	string(ObjectTypeResource),
	string(ObjectTypeEventPayloadDescriptor),
	string(ObjectTypeReportPayloadDescriptor),
)

// ParseObjectType parses an object type, interning unknown spellings.
func ParseObjectType(s string) (ObjectType, error) {
	c, err := objectTypes.parse(s)
	return ObjectType(c), err
}

func (o ObjectType) String() string               { return string(o) }
func (o ObjectType) Equal(other ObjectType) bool  { return equalFold(string(o), string(other)) }
func (o ObjectType) Compare(other ObjectType) int { return compareFold(string(o), string(other)) }
func (o ObjectType) IsWellKnown() bool            { return objectTypes.isWellKnown(string(o)) }
func (o ObjectType) MarshalText() ([]byte, error) { return []byte(o), nil }

func (o *ObjectType) UnmarshalText(text []byte) error {
	parsed, err := ParseObjectType(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
