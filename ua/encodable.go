// Copyright 2021 Converter Systems LLC. All rights reserved.

package ua

import (
	"time"
)

// Encodable is implemented by structures that can be carried in the body of
// an ExtensionObject. Register the type with a TypeLibrary so that its binary
// encoding id can be resolved.
type Encodable interface {
	// Encode writes the fields of the structure to the encoder.
	Encode(enc Encoder) error
	// Decode populates the fields of the structure from the decoder.
	Decode(dec Decoder) error
}

// Encoder writes the fields of a structure.
type Encoder interface {
	WriteBoolean(value bool) error
	WriteByte(value byte) error
	WriteUInt16(value uint16) error
	WriteInt32(value int32) error
	WriteUInt32(value uint32) error
	WriteInt64(value int64) error
	WriteDouble(value float64) error
	WriteString(value string) error
	WriteByteString(value []byte) error
	WriteDateTime(value time.Time) error
	WriteNodeID(value NodeID) error
	WriteExpandedNodeID(value ExpandedNodeID) error
	WriteStatusCode(value StatusCode) error
	WriteQualifiedName(value QualifiedName) error
	WriteLocalizedText(value LocalizedText) error
	WriteExtensionObject(value *ExtensionObject) error
	WriteDataValue(value *DataValue) error
	WriteDiagnosticInfo(value *DiagnosticInfo) error
	WriteUInt32Array(value []uint32) error
	WriteStringArray(value []string) error
	WriteStatusCodeArray(value []StatusCode) error
	WriteExtensionObjectArray(value []*ExtensionObject) error
	WriteDataValueArray(value []*DataValue) error
	WriteDiagnosticInfoArray(value []*DiagnosticInfo) error
}

// Decoder reads the fields of a structure.
type Decoder interface {
	ReadBoolean(value *bool) error
	ReadByte(value *byte) error
	ReadUInt16(value *uint16) error
	ReadInt32(value *int32) error
	ReadUInt32(value *uint32) error
	ReadInt64(value *int64) error
	ReadDouble(value *float64) error
	ReadString(value *string) error
	ReadByteString(value *[]byte) error
	ReadDateTime(value *time.Time) error
	ReadNodeID(value *NodeID) error
	ReadExpandedNodeID(value *ExpandedNodeID) error
	ReadStatusCode(value *StatusCode) error
	ReadQualifiedName(value *QualifiedName) error
	ReadLocalizedText(value *LocalizedText) error
	ReadExtensionObject(value **ExtensionObject) error
	ReadDataValue(value **DataValue) error
	ReadDiagnosticInfo(value **DiagnosticInfo) error
	ReadUInt32Array(value *[]uint32) error
	ReadStringArray(value *[]string) error
	ReadStatusCodeArray(value *[]StatusCode) error
	ReadExtensionObjectArray(value *[]*ExtensionObject) error
	ReadDataValueArray(value *[]*DataValue) error
	ReadDiagnosticInfoArray(value *[]*DiagnosticInfo) error
}

// WriteArray writes the length of a slice followed by each element. A nil slice is written with length -1.
func WriteArray[E any](enc Encoder, values []E, write func(Encoder, E) error) error {
	if values == nil {
		return enc.WriteInt32(-1)
	}
	if err := enc.WriteInt32(int32(len(values))); err != nil {
		return err
	}
	for _, v := range values {
		if err := write(enc, v); err != nil {
			return err
		}
	}
	return nil
}

// ReadArray reads a slice written by WriteArray. A negative length produces a nil slice.
func ReadArray[E any](dec Decoder, read func(Decoder, *E) error) ([]E, error) {
	var num int32
	if err := dec.ReadInt32(&num); err != nil {
		return nil, err
	}
	if num < 0 {
		return nil, nil
	}
	if num > maxArrayLength {
		return nil, BadEncodingLimitsExceeded
	}
	values := make([]E, num)
	for i := range values {
		if err := read(dec, &values[i]); err != nil {
			return nil, err
		}
	}
	return values, nil
}
