package names

// Unit names the unit of measure of a payload value.
type Unit string

// Well-known units. CELCIUS keeps the schema's spelling.
const (
	UnitKWH        Unit = "KWH"
	UnitGHG        Unit = "GHG"
	UnitVolts      Unit = "VOLTS"
	UnitAmps       Unit = "AMPS"
	UnitCelcius    Unit = "CELCIUS"
	UnitFahrenheit Unit = "FAHRENHEIT"
	UnitPercent    Unit = "PERCENT"
	UnitKW         Unit = "KW"
	UnitKVAH       Unit = "KVAH"
	UnitKVARH      Unit = "KVARH"
	UnitKVA        Unit = "KVA"
	UnitKVAR       Unit = "KVAR"
)

var units = newRegistry(
	string(UnitKWH),
	string(UnitGHG),
	string(UnitVolts),
	string(UnitAmps),
	string(UnitCelcius),
	string(UnitFahrenheit),
	string(UnitPercent),
	string(UnitKW),
	string(UnitKVAH),
	string(UnitKVARH),
	string(UnitKVA),
	string(UnitKVAR),
)

// ParseUnit parses a unit, interning unknown spellings.
func ParseUnit(s string) (Unit, error) {
	c, err := units.parse(s)
	return Unit(c), err
}

func (u Unit) String() string               { return string(u) }
func (u Unit) Equal(other Unit) bool        { return equalFold(string(u), string(other)) }
func (u Unit) Compare(other Unit) int       { return compareFold(string(u), string(other)) }
func (u Unit) IsWellKnown() bool            { return units.isWellKnown(string(u)) }
func (u Unit) MarshalText() ([]byte, error) { return []byte(u), nil }

func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
