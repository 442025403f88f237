// Copyright 2021 Converter Systems LLC. All rights reserved.

package ua

import (
	"time"
)

// DataValue holds the value, quality and timestamp.
// The value may be a built-in type, a slice of a built-in type, an *ExtensionObject
// or a []*ExtensionObject. Use GetValue or GetValueOrDefault to unwrap structures.
type DataValue struct {
	value             any
	statusCode        StatusCode
	sourceTimestamp   time.Time
	sourcePicoseconds uint16
	serverTimestamp   time.Time
	serverPicoseconds uint16
}

// NewDataValue returns a new DataValue.
func NewDataValue(value any, statusCode StatusCode, sourceTimestamp time.Time, sourcePicoseconds uint16, serverTimestamp time.Time, serverPicoseconds uint16) *DataValue {
	return &DataValue{value, statusCode, sourceTimestamp, sourcePicoseconds, serverTimestamp, serverPicoseconds}
}

// Value returns the value.
func (dv *DataValue) Value() any {
	return dv.value
}

// StatusCode returns the status code of the value.
func (dv *DataValue) StatusCode() StatusCode {
	return dv.statusCode
}

// SourceTimestamp returns the source timestamp.
func (dv *DataValue) SourceTimestamp() time.Time {
	return dv.sourceTimestamp
}

// SourcePicoseconds returns the source picoseconds.
func (dv *DataValue) SourcePicoseconds() uint16 {
	return dv.sourcePicoseconds
}

// ServerTimestamp returns the server timestamp.
func (dv *DataValue) ServerTimestamp() time.Time {
	return dv.serverTimestamp
}

// ServerPicoseconds returns the server picoseconds.
func (dv *DataValue) ServerPicoseconds() uint16 {
	return dv.serverPicoseconds
}
