package names

// ProgramType categorizes a demand-response program. The set is open;
// VTNs may define their own program types.
type ProgramType string

// Well-known program types.
const (
	ProgramTypePricingTariff       ProgramType = "PRICING_TARIFF"
	ProgramTypePricingDynamic      ProgramType = "PRICING_DYNAMIC"
	ProgramTypePricingCriticalPeak ProgramType = "PRICING_CRITICAL_PEAK"
	ProgramTypeDemandResponse      ProgramType = "DEMAND_RESPONSE"
	ProgramTypeFrequencyRegulation ProgramType = "FREQUENCY_REGULATION"
	ProgramTypeLoadShifting        ProgramType = "LOAD_SHIFTING"
	ProgramTypeCapacityMarket      ProgramType = "CAPACITY_MARKET"
	ProgramTypePeakManagement      ProgramType = "PEAK_MANAGEMENT"
	ProgramTypeEmergency           ProgramType = "EMERGENCY"
)

var programTypes = newRegistry(
	string(ProgramTypePricingTariff),
	string(ProgramTypePricingDynamic),
	string(ProgramTypePricingCriticalPeak),
	string(ProgramTypeDemandResponse),
	string(ProgramTypeFrequencyRegulation),
	string(ProgramTypeLoadShifting),
	string(ProgramTypeCapacityMarket),
	string(ProgramTypePeakManagement),
	string(ProgramTypeEmergency),
)

// ParseProgramType parses a program type, interning unknown spellings.
func ParseProgramType(s string) (ProgramType, error) {
	c, err := programTypes.parse(s)
	return ProgramType(c), err
}

func (p ProgramType) String() string                { return string(p) }
func (p ProgramType) Equal(other ProgramType) bool  { return equalFold(string(p), string(other)) }
func (p ProgramType) Compare(other ProgramType) int { return compareFold(string(p), string(other)) }
func (p ProgramType) IsWellKnown() bool             { return programTypes.isWellKnown(string(p)) }
func (p ProgramType) MarshalText() ([]byte, error)  { return []byte(p), nil }

func (p *ProgramType) UnmarshalText(text []byte) error {
	parsed, err := ParseProgramType(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
