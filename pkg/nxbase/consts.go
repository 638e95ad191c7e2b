/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package nxbase

// Base class names
const (
	Class_NXobject          = "NXobject"
	Class_NXroot            = "NXroot"
	Class_NXentry           = "NXentry"
	Class_NXinstrument      = "NXinstrument"
	Class_NXsource          = "NXsource"
	Class_NXbeam            = "NXbeam"
	Class_NXtransformations = "NXtransformations"
	Class_NXdata            = "NXdata"
	Class_NXlog             = "NXlog"
	Class_NXmonitor         = "NXmonitor"
	Class_NXdetector        = "NXdetector"
	Class_NXsample          = "NXsample"
	Class_NXslit            = "NXslit"
	Class_NXdiskChopper     = "NXdisk_chopper"
	Class_NXmirror          = "NXmirror"
	Class_NXnote            = "NXnote"
	Class_NXcollection      = "NXcollection"
	Class_NXuser            = "NXuser"
)

// Field names
const (
	Field_Title              = "title"
	Field_Definition         = "definition"
	Field_StartTime          = "start_time"
	Field_EndTime            = "end_time"
	Field_Name               = "name"
	Field_Distance           = "distance"
	Field_IncidentEnergy     = "incident_energy"
	Field_IncidentWavelength = "incident_wavelength"
	Field_Flux               = "flux"
	Field_DependsOn          = "depends_on"
	Field_Time               = "time"
	Field_Value              = "value"
	Field_Description        = "description"
	Field_AverageValue       = "average_value"
	Field_Errors             = "errors"
	Field_Mode               = "mode"
	Field_Preset             = "preset"
	Field_Integral           = "integral"
	Field_Data               = "data"
	Field_PolarAngle         = "polar_angle"
)

// Attribute names
const (
	Attr_Signal             = "signal"
	Attr_Axes               = "axes"
	Attr_TransformationType = "transformation_type"
	Attr_Vector             = "vector"
	Attr_Start              = "start"
)

// Slot names
const (
	Slot_Instrument      = "instrument"
	Slot_Data            = "data"
	Slot_Monitor         = "monitor"
	Slot_Beam            = "beam"
	Slot_Detector        = "detector"
	Slot_Transformations = "transformations"
	Slot_Log             = "log"
)

const (
	TransformationType_Translation = "translation"
	TransformationType_Rotation    = "rotation"
)

// Suffix of uncertainty field name
const ErrorsSuffix = "_errors"
