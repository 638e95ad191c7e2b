/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxdef

// NeXus unit categories
const (
	Units_null           UnitCategory = ""
	Units_Any            UnitCategory = "NX_ANY"
	Units_Angle          UnitCategory = "NX_ANGLE"
	Units_Area           UnitCategory = "NX_AREA"
	Units_Charge         UnitCategory = "NX_CHARGE"
	Units_Current        UnitCategory = "NX_CURRENT"
	Units_Dimensionless  UnitCategory = "NX_DIMENSIONLESS"
	Units_Emittance      UnitCategory = "NX_EMITTANCE"
	Units_Energy         UnitCategory = "NX_ENERGY"
	Units_Flux           UnitCategory = "NX_FLUX"
	Units_Frequency      UnitCategory = "NX_FREQUENCY"
	Units_Length         UnitCategory = "NX_LENGTH"
	Units_Mass           UnitCategory = "NX_MASS"
	Units_Per_Length     UnitCategory = "NX_PER_LENGTH"
	Units_Period         UnitCategory = "NX_PERIOD"
	Units_Power          UnitCategory = "NX_POWER"
	Units_Pressure       UnitCategory = "NX_PRESSURE"
	Units_Pulses         UnitCategory = "NX_PULSES"
	Units_Temperature    UnitCategory = "NX_TEMPERATURE"
	Units_Time           UnitCategory = "NX_TIME"
	Units_TimeOfFlight   UnitCategory = "NX_TIME_OF_FLIGHT"
	Units_Transformation UnitCategory = "NX_TRANSFORMATION"
	Units_Unitless       UnitCategory = "NX_UNITLESS"
	Units_Voltage        UnitCategory = "NX_VOLTAGE"
	Units_Wavelength     UnitCategory = "NX_WAVELENGTH"
	Units_Wavenumber     UnitCategory = "NX_WAVENUMBER"
)
