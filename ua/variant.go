// Copyright 2021 Converter Systems LLC. All rights reserved.

package ua

import (
	"time"

	"github.com/beevik/etree"
	"github.com/google/uuid"
)

// VariantType is the built-in type id of a value carried in a Variant.
type VariantType byte

// VariantTypes
const (
	VariantTypeNull VariantType = iota
	VariantTypeBoolean
	VariantTypeSByte
	VariantTypeByte
	VariantTypeInt16
	VariantTypeUInt16
	VariantTypeInt32
	VariantTypeUInt32
	VariantTypeInt64
	VariantTypeUInt64
	VariantTypeFloat
	VariantTypeDouble
	VariantTypeString
	VariantTypeDateTime
	VariantTypeGUID
	VariantTypeByteString
	VariantTypeXMLElement
	VariantTypeNodeID
	VariantTypeExpandedNodeID
	VariantTypeStatusCode
	VariantTypeQualifiedName
	VariantTypeLocalizedText
	VariantTypeExtensionObject
	VariantTypeDataValue
	VariantTypeVariant
	VariantTypeDiagnosticInfo
)

const (
	variantArrayFlag      = 0x80
	variantDimensionsFlag = 0x40
)

// WriteVariant writes a value as a Variant. The value must be nil or one of
// the built-in types, a slice of a built-in type, or an Encodable. An
// Encodable is written as an ExtensionObject using the binary encoding id
// found in the type library of the encoding context. A []byte is written as a ByteString.
func (enc *BinaryEncoder) WriteVariant(value any) error {
	switch v := value.(type) {
	case nil:
		return enc.WriteByte(byte(VariantTypeNull))
	case bool:
		return writeVariantScalar(enc, VariantTypeBoolean, v, enc.WriteBoolean)
	case int8:
		return writeVariantScalar(enc, VariantTypeSByte, v, enc.WriteSByte)
	case uint8:
		return writeVariantScalar(enc, VariantTypeByte, v, enc.WriteByte)
	case int16:
		return writeVariantScalar(enc, VariantTypeInt16, v, enc.WriteInt16)
	case uint16:
		return writeVariantScalar(enc, VariantTypeUInt16, v, enc.WriteUInt16)
	case int32:
		return writeVariantScalar(enc, VariantTypeInt32, v, enc.WriteInt32)
	case uint32:
		return writeVariantScalar(enc, VariantTypeUInt32, v, enc.WriteUInt32)
	case int64:
		return writeVariantScalar(enc, VariantTypeInt64, v, enc.WriteInt64)
	case uint64:
		return writeVariantScalar(enc, VariantTypeUInt64, v, enc.WriteUInt64)
	case float32:
		return writeVariantScalar(enc, VariantTypeFloat, v, enc.WriteFloat)
	case float64:
		return writeVariantScalar(enc, VariantTypeDouble, v, enc.WriteDouble)
	case string:
		return writeVariantScalar(enc, VariantTypeString, v, enc.WriteString)
	case time.Time:
		return writeVariantScalar(enc, VariantTypeDateTime, v, enc.WriteDateTime)
	case uuid.UUID:
		return writeVariantScalar(enc, VariantTypeGUID, v, enc.WriteGUID)
	case []byte:
		return writeVariantScalar(enc, VariantTypeByteString, v, enc.WriteByteString)
	case *etree.Element:
		return writeVariantScalar(enc, VariantTypeXMLElement, v, enc.WriteXMLElement)
	case NodeID:
		return writeVariantScalar(enc, VariantTypeNodeID, v, enc.WriteNodeID)
	case ExpandedNodeID:
		return writeVariantScalar(enc, VariantTypeExpandedNodeID, v, enc.WriteExpandedNodeID)
	case StatusCode:
		return writeVariantScalar(enc, VariantTypeStatusCode, v, enc.WriteStatusCode)
	case QualifiedName:
		return writeVariantScalar(enc, VariantTypeQualifiedName, v, enc.WriteQualifiedName)
	case LocalizedText:
		return writeVariantScalar(enc, VariantTypeLocalizedText, v, enc.WriteLocalizedText)
	case *ExtensionObject:
		return writeVariantScalar(enc, VariantTypeExtensionObject, v, enc.WriteExtensionObject)
	case *DataValue:
		return writeVariantScalar(enc, VariantTypeDataValue, v, enc.WriteDataValue)
	case *DiagnosticInfo:
		return writeVariantScalar(enc, VariantTypeDiagnosticInfo, v, enc.WriteDiagnosticInfo)
	case Encodable:
		eo, err := NewExtensionObject(v, enc.ec.TypeLibrary())
		if err != nil {
			return err
		}
		return writeVariantScalar(enc, VariantTypeExtensionObject, eo, enc.WriteExtensionObject)

	case []bool:
		return writeVariantArray(enc, VariantTypeBoolean, v, enc.WriteBoolean)
	case []int8:
		return writeVariantArray(enc, VariantTypeSByte, v, enc.WriteSByte)
	case []int16:
		return writeVariantArray(enc, VariantTypeInt16, v, enc.WriteInt16)
	case []uint16:
		return writeVariantArray(enc, VariantTypeUInt16, v, enc.WriteUInt16)
	case []int32:
		return writeVariantArray(enc, VariantTypeInt32, v, enc.WriteInt32)
	case []uint32:
		return writeVariantArray(enc, VariantTypeUInt32, v, enc.WriteUInt32)
	case []int64:
		return writeVariantArray(enc, VariantTypeInt64, v, enc.WriteInt64)
	case []uint64:
		return writeVariantArray(enc, VariantTypeUInt64, v, enc.WriteUInt64)
	case []float32:
		return writeVariantArray(enc, VariantTypeFloat, v, enc.WriteFloat)
	case []float64:
		return writeVariantArray(enc, VariantTypeDouble, v, enc.WriteDouble)
	case []string:
		return writeVariantArray(enc, VariantTypeString, v, enc.WriteString)
	case []time.Time:
		return writeVariantArray(enc, VariantTypeDateTime, v, enc.WriteDateTime)
	case []uuid.UUID:
		return writeVariantArray(enc, VariantTypeGUID, v, enc.WriteGUID)
	case [][]byte:
		return writeVariantArray(enc, VariantTypeByteString, v, enc.WriteByteString)
	case []NodeID:
		return writeVariantArray(enc, VariantTypeNodeID, v, enc.WriteNodeID)
	case []ExpandedNodeID:
		return writeVariantArray(enc, VariantTypeExpandedNodeID, v, enc.WriteExpandedNodeID)
	case []StatusCode:
		return writeVariantArray(enc, VariantTypeStatusCode, v, enc.WriteStatusCode)
	case []QualifiedName:
		return writeVariantArray(enc, VariantTypeQualifiedName, v, enc.WriteQualifiedName)
	case []LocalizedText:
		return writeVariantArray(enc, VariantTypeLocalizedText, v, enc.WriteLocalizedText)
	case []*ExtensionObject:
		return writeVariantArray(enc, VariantTypeExtensionObject, v, enc.WriteExtensionObject)
	case []*DataValue:
		return writeVariantArray(enc, VariantTypeDataValue, v, enc.WriteDataValue)
	case []*DiagnosticInfo:
		return writeVariantArray(enc, VariantTypeDiagnosticInfo, v, enc.WriteDiagnosticInfo)
	default:
		return BadEncodingError
	}
}

func writeVariantScalar[T any](enc *BinaryEncoder, t VariantType, value T, write func(T) error) error {
	if err := enc.WriteByte(byte(t)); err != nil {
		return BadEncodingError
	}
	return write(value)
}

func writeVariantArray[T any](enc *BinaryEncoder, t VariantType, values []T, write func(T) error) error {
	if err := enc.WriteByte(byte(t) | variantArrayFlag); err != nil {
		return BadEncodingError
	}
	if values == nil {
		return enc.WriteInt32(-1)
	}
	if err := enc.WriteInt32(int32(len(values))); err != nil {
		return BadEncodingError
	}
	for _, v := range values {
		if err := write(v); err != nil {
			return err
		}
	}
	return nil
}

// ReadVariant reads a Variant. Scalars are returned as their built-in Go
// type, arrays as a slice of it. ExtensionObjects are returned as
// *ExtensionObject; use GetValue to unwrap their bodies.
func (dec *BinaryDecoder) ReadVariant(value *any) error {
	var b byte
	if err := dec.ReadByte(&b); err != nil {
		return BadDecodingError
	}
	if (b & variantDimensionsFlag) != 0 {
		// multi-dimensional arrays are not supported
		return BadDecodingError
	}
	t := VariantType(b & 0x3F)
	if (b & variantArrayFlag) == 0 {
		v, err := dec.readVariantScalar(t)
		if err != nil {
			return err
		}
		*value = v
		return nil
	}
	v, err := dec.readVariantArray(t)
	if err != nil {
		return err
	}
	*value = v
	return nil
}

func (dec *BinaryDecoder) readVariantScalar(t VariantType) (any, error) {
	switch t {
	case VariantTypeNull:
		return nil, nil
	case VariantTypeBoolean:
		return readScalar(dec.ReadBoolean)
	case VariantTypeSByte:
		return readScalar(dec.ReadSByte)
	case VariantTypeByte:
		return readScalar(dec.ReadByte)
	case VariantTypeInt16:
		return readScalar(dec.ReadInt16)
	case VariantTypeUInt16:
		return readScalar(dec.ReadUInt16)
	case VariantTypeInt32:
		return readScalar(dec.ReadInt32)
	case VariantTypeUInt32:
		return readScalar(dec.ReadUInt32)
	case VariantTypeInt64:
		return readScalar(dec.ReadInt64)
	case VariantTypeUInt64:
		return readScalar(dec.ReadUInt64)
	case VariantTypeFloat:
		return readScalar(dec.ReadFloat)
	case VariantTypeDouble:
		return readScalar(dec.ReadDouble)
	case VariantTypeString:
		return readScalar(dec.ReadString)
	case VariantTypeDateTime:
		return readScalar(dec.ReadDateTime)
	case VariantTypeGUID:
		return readScalar(dec.ReadGUID)
	case VariantTypeByteString:
		return readScalar(dec.ReadByteString)
	case VariantTypeXMLElement:
		return readScalar(dec.ReadXMLElement)
	case VariantTypeNodeID:
		return readScalar(dec.ReadNodeID)
	case VariantTypeExpandedNodeID:
		return readScalar(dec.ReadExpandedNodeID)
	case VariantTypeStatusCode:
		return readScalar(dec.ReadStatusCode)
	case VariantTypeQualifiedName:
		return readScalar(dec.ReadQualifiedName)
	case VariantTypeLocalizedText:
		return readScalar(dec.ReadLocalizedText)
	case VariantTypeExtensionObject:
		return readScalar(dec.ReadExtensionObject)
	case VariantTypeDataValue:
		return readScalar(dec.ReadDataValue)
	case VariantTypeDiagnosticInfo:
		return readScalar(dec.ReadDiagnosticInfo)
	default:
		return nil, BadDecodingError
	}
}

func (dec *BinaryDecoder) readVariantArray(t VariantType) (any, error) {
	switch t {
	case VariantTypeBoolean:
		return readArray(dec, dec.ReadBoolean)
	case VariantTypeSByte:
		return readArray(dec, dec.ReadSByte)
	case VariantTypeByte:
		return readArray(dec, dec.ReadByte)
	case VariantTypeInt16:
		return readArray(dec, dec.ReadInt16)
	case VariantTypeUInt16:
		return readArray(dec, dec.ReadUInt16)
	case VariantTypeInt32:
		return readArray(dec, dec.ReadInt32)
	case VariantTypeUInt32:
		return readArray(dec, dec.ReadUInt32)
	case VariantTypeInt64:
		return readArray(dec, dec.ReadInt64)
	case VariantTypeUInt64:
		return readArray(dec, dec.ReadUInt64)
	case VariantTypeFloat:
		return readArray(dec, dec.ReadFloat)
	case VariantTypeDouble:
		return readArray(dec, dec.ReadDouble)
	case VariantTypeString:
		return readArray(dec, dec.ReadString)
	case VariantTypeDateTime:
		return readArray(dec, dec.ReadDateTime)
	case VariantTypeGUID:
		return readArray(dec, dec.ReadGUID)
	case VariantTypeByteString:
		return readArray(dec, dec.ReadByteString)
	case VariantTypeNodeID:
		return readArray(dec, dec.ReadNodeID)
	case VariantTypeExpandedNodeID:
		return readArray(dec, dec.ReadExpandedNodeID)
	case VariantTypeStatusCode:
		return readArray(dec, dec.ReadStatusCode)
	case VariantTypeQualifiedName:
		return readArray(dec, dec.ReadQualifiedName)
	case VariantTypeLocalizedText:
		return readArray(dec, dec.ReadLocalizedText)
	case VariantTypeExtensionObject:
		return readArray(dec, dec.ReadExtensionObject)
	case VariantTypeDataValue:
		return readArray(dec, dec.ReadDataValue)
	case VariantTypeDiagnosticInfo:
		return readArray(dec, dec.ReadDiagnosticInfo)
	default:
		return nil, BadDecodingError
	}
}

func readScalar[T any](read func(*T) error) (any, error) {
	var v T
	if err := read(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func readArray[T any](dec *BinaryDecoder, read func(*T) error) (any, error) {
	var num int32
	if err := dec.ReadInt32(&num); err != nil {
		return nil, BadDecodingError
	}
	if num < 0 {
		return []T(nil), nil
	}
	if num > maxArrayLength {
		return nil, BadEncodingLimitsExceeded
	}
	values := make([]T, num)
	for i := range values {
		if err := read(&values[i]); err != nil {
			return nil, err
		}
	}
	return values, nil
}
