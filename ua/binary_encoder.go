// Copyright 2021 Converter Systems LLC. All rights reserved.

package ua

import (
	"encoding/binary"
	"io"
	"math"
	"time"
	"unsafe"

	"github.com/beevik/etree"
	"github.com/djherbis/buffer"
	"github.com/google/uuid"
)

// BinaryEncoder encodes the UA Binary protocol.
type BinaryEncoder struct {
	w  io.Writer
	ec EncodingContext
	bs [8]byte
}

// NewBinaryEncoder returns a new encoder that writes to an io.Writer.
func NewBinaryEncoder(w io.Writer, ec EncodingContext) *BinaryEncoder {
	return &BinaryEncoder{w, ec, [8]byte{}}
}

// Encode writes an Encodable structure, without the ExtensionObject framing.
func (enc *BinaryEncoder) Encode(value Encodable) error {
	if isNilEncodable(value) {
		return BadEncodingError
	}
	return value.Encode(enc)
}

// WriteBoolean writes a boolean.
func (enc *BinaryEncoder) WriteBoolean(value bool) error {
	if value {
		enc.bs[0] = 1
	} else {
		enc.bs[0] = 0
	}
	if _, err := enc.w.Write(enc.bs[:1]); err != nil {
		return BadEncodingError
	}
	return nil
}

// WriteSByte writes a sbyte.
func (enc *BinaryEncoder) WriteSByte(value int8) error {
	return enc.WriteByte(byte(value))
}

// WriteByte writes a byte.
func (enc *BinaryEncoder) WriteByte(value byte) error {
	enc.bs[0] = value
	if _, err := enc.w.Write(enc.bs[:1]); err != nil {
		return BadEncodingError
	}
	return nil
}

// WriteInt16 writes a int16.
func (enc *BinaryEncoder) WriteInt16(value int16) error {
	return enc.WriteUInt16(uint16(value))
}

// WriteUInt16 writes a uint16.
func (enc *BinaryEncoder) WriteUInt16(value uint16) error {
	binary.LittleEndian.PutUint16(enc.bs[:2], value)
	if _, err := enc.w.Write(enc.bs[:2]); err != nil {
		return BadEncodingError
	}
	return nil
}

// WriteInt32 writes an int32.
func (enc *BinaryEncoder) WriteInt32(value int32) error {
	return enc.WriteUInt32(uint32(value))
}

// WriteUInt32 writes an uint32.
func (enc *BinaryEncoder) WriteUInt32(value uint32) error {
	binary.LittleEndian.PutUint32(enc.bs[:4], value)
	if _, err := enc.w.Write(enc.bs[:4]); err != nil {
		return BadEncodingError
	}
	return nil
}

// WriteInt64 writes an int64.
func (enc *BinaryEncoder) WriteInt64(value int64) error {
	return enc.WriteUInt64(uint64(value))
}

// WriteUInt64 writes an uint64.
func (enc *BinaryEncoder) WriteUInt64(value uint64) error {
	binary.LittleEndian.PutUint64(enc.bs[:8], value)
	if _, err := enc.w.Write(enc.bs[:8]); err != nil {
		return BadEncodingError
	}
	return nil
}

// WriteFloat writes a float.
func (enc *BinaryEncoder) WriteFloat(value float32) error {
	return enc.WriteUInt32(math.Float32bits(value))
}

// WriteDouble writes a double.
func (enc *BinaryEncoder) WriteDouble(value float64) error {
	return enc.WriteUInt64(math.Float64bits(value))
}

// WriteString writes a string. The empty string is written as null.
func (enc *BinaryEncoder) WriteString(value string) error {
	if len(value) == 0 {
		return enc.WriteInt32(-1)
	}
	if err := enc.WriteInt32(int32(len(value))); err != nil {
		return BadEncodingError
	}
	// eliminate alloc of a second byte array and copying of one byte array to another.
	if _, err := enc.w.Write(unsafe.Slice(unsafe.StringData(value), len(value))); err != nil {
		return BadEncodingError
	}
	return nil
}

// WriteDateTime writes a date/time.
func (enc *BinaryEncoder) WriteDateTime(value time.Time) error {
	if value.IsZero() {
		return enc.WriteInt64(0)
	}
	// ticks are 100 nanosecond intervals since January 1, 1601
	ticks := (value.Unix()+11644473600)*10000000 + int64(value.Nanosecond())/100
	if ticks < 0 {
		ticks = 0
	}
	if ticks >= 2650467743990000000 {
		ticks = 0x7FFFFFFFFFFFFFFF
	}
	return enc.WriteInt64(ticks)
}

// WriteGUID writes a UUID
func (enc *BinaryEncoder) WriteGUID(value uuid.UUID) error {
	enc.bs[0] = value[3]
	enc.bs[1] = value[2]
	enc.bs[2] = value[1]
	enc.bs[3] = value[0]
	enc.bs[4] = value[5]
	enc.bs[5] = value[4]
	enc.bs[6] = value[7]
	enc.bs[7] = value[6]
	if _, err := enc.w.Write(enc.bs[:8]); err != nil {
		return BadEncodingError
	}
	if _, err := enc.w.Write(value[8:]); err != nil {
		return BadEncodingError
	}
	return nil
}

// WriteByteString writes a ByteString. A nil slice is written as null.
func (enc *BinaryEncoder) WriteByteString(value []byte) error {
	if value == nil {
		return enc.WriteInt32(-1)
	}
	if err := enc.WriteInt32(int32(len(value))); err != nil {
		return BadEncodingError
	}
	if _, err := enc.w.Write(value); err != nil {
		return BadEncodingError
	}
	return nil
}

// WriteXMLElement writes a XmlElement. A nil element is written as null.
func (enc *BinaryEncoder) WriteXMLElement(value *etree.Element) error {
	if value == nil {
		return enc.WriteInt32(-1)
	}
	doc := etree.NewDocument()
	doc.SetRoot(value.Copy())
	s, err := doc.WriteToString()
	if err != nil {
		return BadEncodingError
	}
	return enc.WriteString(s)
}

// WriteNodeID writes a NodeID
func (enc *BinaryEncoder) WriteNodeID(value NodeID) error {
	return enc.writeNodeID(value, 0)
}

// writeNodeID writes a NodeID, or-ing the flags of an ExpandedNodeID into the encoding byte.
func (enc *BinaryEncoder) writeNodeID(value NodeID, flags byte) error {
	switch value.idType {
	case IDTypeNumeric:
		switch {
		case value.nid <= 255 && value.namespaceIndex == 0:
			if err := enc.WriteByte(0x00 | flags); err != nil {
				return BadEncodingError
			}
			if err := enc.WriteByte(byte(value.nid)); err != nil {
				return BadEncodingError
			}
		case value.nid <= 65535 && value.namespaceIndex <= 255:
			if err := enc.WriteByte(0x01 | flags); err != nil {
				return BadEncodingError
			}
			if err := enc.WriteByte(byte(value.namespaceIndex)); err != nil {
				return BadEncodingError
			}
			if err := enc.WriteUInt16(uint16(value.nid)); err != nil {
				return BadEncodingError
			}
		default:
			if err := enc.WriteByte(0x02 | flags); err != nil {
				return BadEncodingError
			}
			if err := enc.WriteUInt16(value.namespaceIndex); err != nil {
				return BadEncodingError
			}
			if err := enc.WriteUInt32(value.nid); err != nil {
				return BadEncodingError
			}
		}
	case IDTypeString:
		if err := enc.WriteByte(0x03 | flags); err != nil {
			return BadEncodingError
		}
		if err := enc.WriteUInt16(value.namespaceIndex); err != nil {
			return BadEncodingError
		}
		if err := enc.WriteString(value.sid); err != nil {
			return BadEncodingError
		}
	case IDTypeGUID:
		if err := enc.WriteByte(0x04 | flags); err != nil {
			return BadEncodingError
		}
		if err := enc.WriteUInt16(value.namespaceIndex); err != nil {
			return BadEncodingError
		}
		if err := enc.WriteGUID(value.gid); err != nil {
			return BadEncodingError
		}
	case IDTypeOpaque:
		if err := enc.WriteByte(0x05 | flags); err != nil {
			return BadEncodingError
		}
		if err := enc.WriteUInt16(value.namespaceIndex); err != nil {
			return BadEncodingError
		}
		if err := enc.WriteByteString([]byte(value.bid)); err != nil {
			return BadEncodingError
		}
	default:
		return BadEncodingError
	}
	return nil
}

// WriteExpandedNodeID writes an ExpandedNodeID
func (enc *BinaryEncoder) WriteExpandedNodeID(value ExpandedNodeID) error {
	var b byte
	if len(value.namespaceURI) > 0 {
		b |= 0x80
	}
	if value.serverIndex > 0 {
		b |= 0x40
	}
	if err := enc.writeNodeID(value.nodeID, b); err != nil {
		return BadEncodingError
	}
	if (b & 0x80) != 0 {
		if err := enc.WriteString(value.namespaceURI); err != nil {
			return BadEncodingError
		}
	}
	if (b & 0x40) != 0 {
		if err := enc.WriteUInt32(value.serverIndex); err != nil {
			return BadEncodingError
		}
	}
	return nil
}

// WriteStatusCode writes a StatusCode
func (enc *BinaryEncoder) WriteStatusCode(value StatusCode) error {
	return enc.WriteUInt32(uint32(value))
}

// WriteQualifiedName writes a QualifiedName
func (enc *BinaryEncoder) WriteQualifiedName(value QualifiedName) error {
	if err := enc.WriteUInt16(value.NamespaceIndex); err != nil {
		return BadEncodingError
	}
	return enc.WriteString(value.Name)
}

// WriteLocalizedText writes a LocalizedText
func (enc *BinaryEncoder) WriteLocalizedText(value LocalizedText) error {
	var b byte
	if value.Locale != "" {
		b |= 1
	}
	if value.Text != "" {
		b |= 2
	}
	if err := enc.WriteByte(b); err != nil {
		return BadEncodingError
	}
	if (b & 1) != 0 {
		if err := enc.WriteString(value.Locale); err != nil {
			return BadEncodingError
		}
	}
	if (b & 2) != 0 {
		if err := enc.WriteString(value.Text); err != nil {
			return BadEncodingError
		}
	}
	return nil
}

// writeTypeID writes the type id of an ExtensionObject as a NodeID of the local namespace table.
func (enc *BinaryEncoder) writeTypeID(id ExpandedNodeID) error {
	nodeID := id.ToNodeID(enc.ec.NamespaceURIs())
	if nodeID.IsNil() {
		return BadEncodingError
	}
	return enc.WriteNodeID(nodeID)
}

// WriteExtensionObject writes an ExtensionObject. A nil pointer is written as an ExtensionObject with no body.
func (enc *BinaryEncoder) WriteExtensionObject(value *ExtensionObject) error {
	switch value.BodyType() {
	case BodyTypeNone:
		if err := enc.WriteNodeID(NilNodeID); err != nil {
			return BadEncodingError
		}
		return enc.WriteByte(0x00)

	case BodyTypeByteString:
		if err := enc.writeTypeID(value.TypeID()); err != nil {
			return BadEncodingError
		}
		if err := enc.WriteByte(0x01); err != nil {
			return BadEncodingError
		}
		body, _ := value.ByteString()
		return enc.WriteByteString(body)

	case BodyTypeXMLElement:
		if err := enc.writeTypeID(value.TypeID()); err != nil {
			return BadEncodingError
		}
		if err := enc.WriteByte(0x02); err != nil {
			return BadEncodingError
		}
		body, _ := value.XMLElement()
		return enc.WriteXMLElement(body)

	case BodyTypeEncodable:
		if err := enc.writeTypeID(value.TypeID()); err != nil {
			return BadEncodingError
		}
		if err := enc.WriteByte(0x01); err != nil {
			return BadEncodingError
		}
		body, _ := value.Encodable()
		return enc.writeLengthPrefixed(body)
	}
	return BadEncodingError
}

// writeLengthPrefixed writes the encoding of the structure, preceded by its length in bytes.
func (enc *BinaryEncoder) writeLengthPrefixed(value Encodable) error {
	// cast writer to BufferAt to access superpowers
	if buf, ok := enc.w.(buffer.BufferAt); ok {
		mark := buf.Len() // mark where length is written
		bs := make([]byte, 4)
		if _, err := buf.Write(bs); err != nil {
			return BadEncodingError
		}
		start := buf.Len() // mark where encoding starts
		if err := value.Encode(enc); err != nil {
			return err
		}
		end := buf.Len() // mark where encoding ends
		binary.LittleEndian.PutUint32(bs, uint32(end-start))
		// write actual length at mark
		if _, err := buf.WriteAt(bs, mark); err != nil {
			return BadEncodingError
		}
		return nil
	}
	// if BufferAt interface not available
	buf2 := buffer.NewPartitionAt(bufferPool)
	defer buf2.Reset()
	enc2 := NewBinaryEncoder(buf2, enc.ec)
	if err := value.Encode(enc2); err != nil {
		return err
	}
	if err := enc.WriteInt32(int32(buf2.Len())); err != nil {
		return BadEncodingError
	}
	buf3 := bytesPool.Get().([]byte)
	defer bytesPool.Put(buf3)
	if _, err := io.CopyBuffer(enc.w, buf2, buf3); err != nil {
		return BadEncodingError
	}
	return nil
}

// WriteDataValue writes a DataValue
func (enc *BinaryEncoder) WriteDataValue(value *DataValue) error {
	if value == nil {
		return enc.WriteByte(0)
	}
	var b byte
	if value.Value() != nil {
		b |= 1
	}
	if value.StatusCode() != Good {
		b |= 2
	}
	if !value.SourceTimestamp().IsZero() {
		b |= 4
	}
	if value.SourcePicoseconds() != 0 {
		b |= 16
	}
	if !value.ServerTimestamp().IsZero() {
		b |= 8
	}
	if value.ServerPicoseconds() != 0 {
		b |= 32
	}
	if err := enc.WriteByte(b); err != nil {
		return BadEncodingError
	}
	if (b & 1) != 0 {
		if err := enc.WriteVariant(value.Value()); err != nil {
			return err
		}
	}
	if (b & 2) != 0 {
		if err := enc.WriteStatusCode(value.StatusCode()); err != nil {
			return BadEncodingError
		}
	}
	if (b & 4) != 0 {
		if err := enc.WriteDateTime(value.SourceTimestamp()); err != nil {
			return BadEncodingError
		}
	}
	if (b & 16) != 0 {
		if err := enc.WriteUInt16(value.SourcePicoseconds()); err != nil {
			return BadEncodingError
		}
	}
	if (b & 8) != 0 {
		if err := enc.WriteDateTime(value.ServerTimestamp()); err != nil {
			return BadEncodingError
		}
	}
	if (b & 32) != 0 {
		if err := enc.WriteUInt16(value.ServerPicoseconds()); err != nil {
			return BadEncodingError
		}
	}
	return nil
}

// WriteDiagnosticInfo writes a DiagnosticInfo
func (enc *BinaryEncoder) WriteDiagnosticInfo(value *DiagnosticInfo) error {
	if value == nil {
		return enc.WriteByte(0)
	}
	var b byte
	if value.SymbolicID >= 0 {
		b |= 1
	}
	if value.NamespaceURI >= 0 {
		b |= 2
	}
	if value.LocalizedText >= 0 {
		b |= 4
	}
	if value.Locale >= 0 {
		b |= 8
	}
	if value.AdditionalInfo != "" {
		b |= 16
	}
	if value.InnerStatusCode != Good {
		b |= 32
	}
	if value.InnerDiagnosticInfo != nil {
		b |= 64
	}
	if err := enc.WriteByte(b); err != nil {
		return BadEncodingError
	}
	if (b & 1) != 0 {
		if err := enc.WriteInt32(value.SymbolicID); err != nil {
			return BadEncodingError
		}
	}
	if (b & 2) != 0 {
		if err := enc.WriteInt32(value.NamespaceURI); err != nil {
			return BadEncodingError
		}
	}
	if (b & 8) != 0 {
		if err := enc.WriteInt32(value.Locale); err != nil {
			return BadEncodingError
		}
	}
	if (b & 4) != 0 {
		if err := enc.WriteInt32(value.LocalizedText); err != nil {
			return BadEncodingError
		}
	}
	if (b & 16) != 0 {
		if err := enc.WriteString(value.AdditionalInfo); err != nil {
			return BadEncodingError
		}
	}
	if (b & 32) != 0 {
		if err := enc.WriteStatusCode(value.InnerStatusCode); err != nil {
			return BadEncodingError
		}
	}
	if (b & 64) != 0 {
		if err := enc.WriteDiagnosticInfo(value.InnerDiagnosticInfo); err != nil {
			return BadEncodingError
		}
	}
	return nil
}

// WriteUInt32Array writes a uint32 array.
func (enc *BinaryEncoder) WriteUInt32Array(value []uint32) error {
	return WriteArray(enc, value, Encoder.WriteUInt32)
}

// WriteStringArray writes a string array.
func (enc *BinaryEncoder) WriteStringArray(value []string) error {
	return WriteArray(enc, value, Encoder.WriteString)
}

// WriteStatusCodeArray writes a StatusCode array.
func (enc *BinaryEncoder) WriteStatusCodeArray(value []StatusCode) error {
	return WriteArray(enc, value, Encoder.WriteStatusCode)
}

// WriteExtensionObjectArray writes an ExtensionObject array.
func (enc *BinaryEncoder) WriteExtensionObjectArray(value []*ExtensionObject) error {
	return WriteArray(enc, value, Encoder.WriteExtensionObject)
}

// WriteDataValueArray writes a DataValue array.
func (enc *BinaryEncoder) WriteDataValueArray(value []*DataValue) error {
	return WriteArray(enc, value, Encoder.WriteDataValue)
}

// WriteDiagnosticInfoArray writes a DiagnosticInfo array.
func (enc *BinaryEncoder) WriteDiagnosticInfoArray(value []*DiagnosticInfo) error {
	return WriteArray(enc, value, Encoder.WriteDiagnosticInfo)
}
