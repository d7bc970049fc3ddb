package names

// PayloadType names the quantity carried by interval payloads and payload
// descriptors. Event payload types (prices, setpoints, alerts) and report
// payload types (readings, usage, storage state) share one open namespace;
// the descriptor's object type says which kind is meant.
type PayloadType string

// Well-known event payload types.
const (
	PayloadTypeSimple                  PayloadType = "SIMPLE"
	PayloadTypePrice                   PayloadType = "PRICE"
	PayloadTypeChargeStateSetpoint     PayloadType = "CHARGE_STATE_SETPOINT"
	PayloadTypeDispatchSetpoint        PayloadType = "DISPATCH_SETPOINT"
	PayloadTypeDispatchSetpointRel     PayloadType = "DISPATCH_SETPOINT_RELATIVE"
	PayloadTypeControlSetpoint         PayloadType = "CONTROL_SETPOINT"
	PayloadTypeExportPrice             PayloadType = "EXPORT_PRICE"
	PayloadTypeGHG                     PayloadType = "GHG"
	PayloadTypeCurve                   PayloadType = "CURVE"
	PayloadTypeOLS                     PayloadType = "OLS"
	PayloadTypeImportCapacitySub       PayloadType = "IMPORT_CAPACITY_SUBSCRIPTION"
	PayloadTypeImportCapacityRes       PayloadType = "IMPORT_CAPACITY_RESERVATION"
	PayloadTypeImportCapacityResFee    PayloadType = "IMPORT_CAPACITY_RESERVATION_FEE"
	PayloadTypeImportCapacityAvail     PayloadType = "IMPORT_CAPACITY_AVAILABLE"
	PayloadTypeImportCapacityAvailFee  PayloadType = "IMPORT_CAPACITY_AVAILABLE_PRICE"
	PayloadTypeExportCapacitySub       PayloadType = "EXPORT_CAPACITY_SUBSCRIPTION"
	PayloadTypeExportCapacityRes       PayloadType = "EXPORT_CAPACITY_RESERVATION"
	PayloadTypeExportCapacityResFee    PayloadType = "EXPORT_CAPACITY_RESERVATION_FEE"
	PayloadTypeExportCapacityAvail     PayloadType = "EXPORT_CAPACITY_AVAILABLE"
	PayloadTypeExportCapacityAvailFee  PayloadType = "EXPORT_CAPACITY_AVAILABLE_PRICE"
	PayloadTypeImportCapacityLimit     PayloadType = "IMPORT_CAPACITY_LIMIT"
	PayloadTypeExportCapacityLimit     PayloadType = "EXPORT_CAPACITY_LIMIT"
	PayloadTypeAlertGridEmergency      PayloadType = "ALERT_GRID_EMERGENCY"
	PayloadTypeAlertBlackStart         PayloadType = "ALERT_BLACK_START"
	PayloadTypeAlertPossibleOutage     PayloadType = "ALERT_POSSIBLE_OUTAGE"
	PayloadTypeAlertFlexAlert          PayloadType = "ALERT_FLEX_ALERT"
	PayloadTypeAlertFire               PayloadType = "ALERT_FIRE"
	PayloadTypeAlertFreezing           PayloadType = "ALERT_FREEZING"
	PayloadTypeAlertWind               PayloadType = "ALERT_WIND"
	PayloadTypeAlertTsunami            PayloadType = "ALERT_TSUNAMI"
	PayloadTypeAlertAirQuality         PayloadType = "ALERT_AIR_QUALITY"
	PayloadTypeAlertOther              PayloadType = "ALERT_OTHER"
	PayloadTypeCTA2045Reboot           PayloadType = "CTA2045_REBOOT"
	PayloadTypeCTA2045SetOverrideState PayloadType = "CTA2045_SET_OVERRIDE_STATUS"
)

// Well-known report payload types.
const (
	PayloadTypeReading                 PayloadType = "READING"
	PayloadTypeUsage                   PayloadType = "USAGE"
	PayloadTypeDemand                  PayloadType = "DEMAND"
	PayloadTypeSetpoint                PayloadType = "SETPOINT"
	PayloadTypeDeltaUsage              PayloadType = "DELTA_USAGE"
	PayloadTypeBaseline                PayloadType = "BASELINE"
	PayloadTypeOperatingState          PayloadType = "OPERATING_STATE"
	PayloadTypeUpRegulationAvail       PayloadType = "UP_REGULATION_AVAILABLE"
	PayloadTypeDownRegulationAvail     PayloadType = "DOWN_REGULATION_AVAILABLE"
	PayloadTypeRegulationSetpoint      PayloadType = "REGULATION_SETPOINT"
	PayloadTypeStorageUsableCapacity   PayloadType = "STORAGE_USABLE_CAPACITY"
	PayloadTypeStorageChargeLevel      PayloadType = "STORAGE_CHARGE_LEVEL"
	PayloadTypeStorageMaxDischarge     PayloadType = "STORAGE_MAX_DISCHARGE_POWER"
	PayloadTypeStorageMaxCharge        PayloadType = "STORAGE_MAX_CHARGE_POWER"
	PayloadTypeSimpleLevel             PayloadType = "SIMPLE_LEVEL"
	PayloadTypeUsageForecast           PayloadType = "USAGE_FORECAST"
	PayloadTypeStorageDispatchForecast PayloadType = "STORAGE_DISPATCH_FORECAST"
	PayloadTypeLoadShedDeltaAvail      PayloadType = "LOAD_SHED_DELTA_AVAILABLE"
	PayloadTypeGenerationDeltaAvail    PayloadType = "GENERATION_DELTA_AVAILABLE"
	PayloadTypeDataQuality             PayloadType = "DATA_QUALITY"
	PayloadTypeImportReservationCap    PayloadType = "IMPORT_RESERVATION_CAPACITY"
	PayloadTypeImportReservationFee    PayloadType = "IMPORT_RESERVATION_FEE"
	PayloadTypeExportReservationCap    PayloadType = "EXPORT_RESERVATION_CAPACITY"
	PayloadTypeExportReservationFee    PayloadType = "EXPORT_RESERVATION_FEE"
)

var payloadTypes = newRegistry(
	string(PayloadTypeSimple),
	string(PayloadTypePrice),
	string(PayloadTypeChargeStateSetpoint),
	string(PayloadTypeDispatchSetpoint),
	string(PayloadTypeDispatchSetpointRel),
	string(PayloadTypeControlSetpoint),
	string(PayloadTypeExportPrice),
	string(PayloadTypeGHG),
	string(PayloadTypeCurve),
	string(PayloadTypeOLS),
	string(PayloadTypeImportCapacitySub),
	string(PayloadTypeImportCapacityRes),
	string(PayloadTypeImportCapacityResFee),
	string(PayloadTypeImportCapacityAvail),
	string(PayloadTypeImportCapacityAvailFee),
	string(PayloadTypeExportCapacitySub),
	string(PayloadTypeExportCapacityRes),
	string(PayloadTypeExportCapacityResFee),
	string(PayloadTypeExportCapacityAvail),
	string(PayloadTypeExportCapacityAvailFee),
	string(PayloadTypeImportCapacityLimit),
	string(PayloadTypeExportCapacityLimit),
	string(PayloadTypeAlertGridEmergency),
	string(PayloadTypeAlertBlackStart),
	string(PayloadTypeAlertPossibleOutage),
	string(PayloadTypeAlertFlexAlert),
	string(PayloadTypeAlertFire),
	string(PayloadTypeAlertFreezing),
	string(PayloadTypeAlertWind),
	string(PayloadTypeAlertTsunami),
	string(PayloadTypeAlertAirQuality),
	string(PayloadTypeAlertOther),
	string(PayloadTypeCTA2045Reboot),
	string(PayloadTypeCTA2045SetOverrideState),
	string(PayloadTypeReading),
	string(PayloadTypeUsage),
	string(PayloadTypeDemand),
	string(PayloadTypeSetpoint),
	string(PayloadTypeDeltaUsage),
	string(PayloadTypeBaseline),
	string(PayloadTypeOperatingState),
	string(PayloadTypeUpRegulationAvail),
	string(PayloadTypeDownRegulationAvail),
	string(PayloadTypeRegulationSetpoint),
	string(PayloadTypeStorageUsableCapacity),
	string(PayloadTypeStorageChargeLevel),
	string(PayloadTypeStorageMaxDischarge),
	string(PayloadTypeStorageMaxCharge),
	string(PayloadTypeSimpleLevel),
	string(PayloadTypeUsageForecast),
	string(PayloadTypeStorageDispatchForecast),
	string(PayloadTypeLoadShedDeltaAvail),
	string(PayloadTypeGenerationDeltaAvail),
	string(PayloadTypeDataQuality),
	string(PayloadTypeImportReservationCap),
	string(PayloadTypeImportReservationFee),
	string(PayloadTypeExportReservationCap),
	string(PayloadTypeExportReservationFee),
)

// ParsePayloadType parses a payload type, interning unknown spellings.
func ParsePayloadType(s string) (PayloadType, error) {
	c, err := payloadTypes.parse(s)
	return PayloadType(c), err
}

func (p PayloadType) String() string                { return string(p) }
func (p PayloadType) Equal(other PayloadType) bool  { return equalFold(string(p), string(other)) }
func (p PayloadType) Compare(other PayloadType) int { return compareFold(string(p), string(other)) }
func (p PayloadType) IsWellKnown() bool             { return payloadTypes.isWellKnown(string(p)) }
func (p PayloadType) MarshalText() ([]byte, error)  { return []byte(p), nil }

func (p *PayloadType) UnmarshalText(text []byte) error {
	parsed, err := ParsePayloadType(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
