package names

// ReadingType describes how a reported value was obtained.
type ReadingType string

// Well-known reading types.
const (
	ReadingTypeDirectRead ReadingType = "DIRECT_READ"
	ReadingTypeEstimated  ReadingType = "ESTIMATED"
	ReadingTypeSummed     ReadingType = "SUMMED"
	ReadingTypeMean       ReadingType = "MEAN"
	ReadingTypePeak       ReadingType = "PEAK"
	ReadingTypeForecast   ReadingType = "FORECAST"
	ReadingTypeAverage    ReadingType = "AVERAGE"
)

var readingTypes = newRegistry(
	string(ReadingTypeDirectRead),
	string(ReadingTypeEstimated),
	string(ReadingTypeSummed),
	string(ReadingTypeMean),
	string(ReadingTypePeak),
	string(ReadingTypeForecast),
	string(ReadingTypeAverage),
)

// ParseReadingType parses a reading type, interning unknown spellings.
func ParseReadingType(s string) (ReadingType, error) {
	c, err := readingTypes.parse(s)
	return ReadingType(c), err
}

func (r ReadingType) String() string                { return string(r) }
func (r ReadingType) Equal(other ReadingType) bool  { return equalFold(string(r), string(other)) }
func (r ReadingType) Compare(other ReadingType) int { return compareFold(string(r), string(other)) }
func (r ReadingType) IsWellKnown() bool             { return readingTypes.isWellKnown(string(r)) }
func (r ReadingType) MarshalText() ([]byte, error)  { return []byte(r), nil }

func (r *ReadingType) UnmarshalText(text []byte) error {
	parsed, err := ParseReadingType(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
