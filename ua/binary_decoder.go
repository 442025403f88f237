// Copyright 2021 Converter Systems LLC. All rights reserved.

package ua

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"time"
	"unsafe"

	"github.com/beevik/etree"
	"github.com/google/uuid"
)

// maxStringLength is the largest string or ByteString the decoder will allocate.
const maxStringLength = 1 << 24

// BinaryDecoder decodes the UA Binary protocol.
type BinaryDecoder struct {
	r  io.Reader
	ec EncodingContext
	bs [8]byte
}

// NewBinaryDecoder returns a new decoder that reads from an io.Reader.
func NewBinaryDecoder(r io.Reader, ec EncodingContext) *BinaryDecoder {
	return &BinaryDecoder{r, ec, [8]byte{}}
}

// Decode populates an Encodable structure, without the ExtensionObject framing.
func (dec *BinaryDecoder) Decode(value Encodable) error {
	if isNilEncodable(value) {
		return BadDecodingError
	}
	return value.Decode(dec)
}

// ReadBoolean reads a bool.
func (dec *BinaryDecoder) ReadBoolean(value *bool) error {
	if _, err := io.ReadFull(dec.r, dec.bs[:1]); err != nil {
		return BadDecodingError
	}
	*value = dec.bs[0] != 0
	return nil
}

// ReadSByte reads a int8.
func (dec *BinaryDecoder) ReadSByte(value *int8) error {
	if _, err := io.ReadFull(dec.r, dec.bs[:1]); err != nil {
		return BadDecodingError
	}
	*value = int8(dec.bs[0])
	return nil
}

// ReadByte reads a byte.
func (dec *BinaryDecoder) ReadByte(value *byte) error {
	if _, err := io.ReadFull(dec.r, dec.bs[:1]); err != nil {
		return BadDecodingError
	}
	*value = dec.bs[0]
	return nil
}

// ReadInt16 reads a int16.
func (dec *BinaryDecoder) ReadInt16(value *int16) error {
	if _, err := io.ReadFull(dec.r, dec.bs[:2]); err != nil {
		return BadDecodingError
	}
	*value = int16(binary.LittleEndian.Uint16(dec.bs[:2]))
	return nil
}

// ReadUInt16 reads a uint16.
func (dec *BinaryDecoder) ReadUInt16(value *uint16) error {
	if _, err := io.ReadFull(dec.r, dec.bs[:2]); err != nil {
		return BadDecodingError
	}
	*value = binary.LittleEndian.Uint16(dec.bs[:2])
	return nil
}

// ReadInt32 reads a int32.
func (dec *BinaryDecoder) ReadInt32(value *int32) error {
	if _, err := io.ReadFull(dec.r, dec.bs[:4]); err != nil {
		return BadDecodingError
	}
	*value = int32(binary.LittleEndian.Uint32(dec.bs[:4]))
	return nil
}

// ReadUInt32 reads a uint32.
func (dec *BinaryDecoder) ReadUInt32(value *uint32) error {
	if _, err := io.ReadFull(dec.r, dec.bs[:4]); err != nil {
		return BadDecodingError
	}
	*value = binary.LittleEndian.Uint32(dec.bs[:4])
	return nil
}

// ReadInt64 reads a int64.
func (dec *BinaryDecoder) ReadInt64(value *int64) error {
	if _, err := io.ReadFull(dec.r, dec.bs[:8]); err != nil {
		return BadDecodingError
	}
	*value = int64(binary.LittleEndian.Uint64(dec.bs[:8]))
	return nil
}

// ReadUInt64 reads a uint64.
func (dec *BinaryDecoder) ReadUInt64(value *uint64) error {
	if _, err := io.ReadFull(dec.r, dec.bs[:8]); err != nil {
		return BadDecodingError
	}
	*value = binary.LittleEndian.Uint64(dec.bs[:8])
	return nil
}

// ReadFloat reads a float32.
func (dec *BinaryDecoder) ReadFloat(value *float32) error {
	if _, err := io.ReadFull(dec.r, dec.bs[:4]); err != nil {
		return BadDecodingError
	}
	*value = math.Float32frombits(binary.LittleEndian.Uint32(dec.bs[:4]))
	return nil
}

// ReadDouble reads a float64.
func (dec *BinaryDecoder) ReadDouble(value *float64) error {
	if _, err := io.ReadFull(dec.r, dec.bs[:8]); err != nil {
		return BadDecodingError
	}
	*value = math.Float64frombits(binary.LittleEndian.Uint64(dec.bs[:8]))
	return nil
}

// readBytes reads a length-prefixed byte slice. A negative length returns nil.
func (dec *BinaryDecoder) readBytes() ([]byte, error) {
	var num int32
	if err := dec.ReadInt32(&num); err != nil {
		return nil, BadDecodingError
	}
	if num < 0 {
		return nil, nil
	}
	if num > maxStringLength {
		return nil, BadEncodingLimitsExceeded
	}
	bs := make([]byte, num)
	if _, err := io.ReadFull(dec.r, bs); err != nil {
		return nil, BadDecodingError
	}
	return bs, nil
}

// ReadString reads a string. A null string is read as the empty string.
func (dec *BinaryDecoder) ReadString(value *string) error {
	bs, err := dec.readBytes()
	if err != nil {
		return err
	}
	if len(bs) == 0 {
		*value = ""
		return nil
	}
	// eliminate alloc of a second byte array and copying from one byte array to another.
	*value = unsafe.String(unsafe.SliceData(bs), len(bs))
	return nil
}

// ReadDateTime reads a time.Time. The value zero is read as the zero time.
func (dec *BinaryDecoder) ReadDateTime(value *time.Time) error {
	// ticks are 100 nanosecond intervals since January 1, 1601
	var ticks int64
	if err := dec.ReadInt64(&ticks); err != nil {
		return BadDecodingError
	}
	if ticks <= 0 {
		*value = time.Time{}
		return nil
	}
	if ticks == 0x7FFFFFFFFFFFFFFF {
		ticks = 2650467743990000000
	}
	*value = time.Unix(ticks/10000000-11644473600, (ticks%10000000)*100).UTC()
	return nil
}

// ReadGUID reads a uuid.UUID.
func (dec *BinaryDecoder) ReadGUID(value *uuid.UUID) error {
	if _, err := io.ReadFull(dec.r, dec.bs[:8]); err != nil {
		return BadDecodingError
	}
	value[0] = dec.bs[3]
	value[1] = dec.bs[2]
	value[2] = dec.bs[1]
	value[3] = dec.bs[0]
	value[4] = dec.bs[5]
	value[5] = dec.bs[4]
	value[6] = dec.bs[7]
	value[7] = dec.bs[6]
	if _, err := io.ReadFull(dec.r, value[8:]); err != nil {
		return BadDecodingError
	}
	return nil
}

// ReadByteString reads a ByteString. A null ByteString is read as nil.
func (dec *BinaryDecoder) ReadByteString(value *[]byte) error {
	bs, err := dec.readBytes()
	if err != nil {
		return err
	}
	*value = bs
	return nil
}

// ReadXMLElement reads a XmlElement. A null or empty XmlElement is read as nil.
func (dec *BinaryDecoder) ReadXMLElement(value **etree.Element) error {
	var s string
	if err := dec.ReadString(&s); err != nil {
		return err
	}
	if s == "" {
		*value = nil
		return nil
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromString(s); err != nil {
		return BadDecodingError
	}
	*value = doc.Root()
	return nil
}

// ReadNodeID reads a NodeID.
func (dec *BinaryDecoder) ReadNodeID(value *NodeID) error {
	var b byte
	if err := dec.ReadByte(&b); err != nil {
		return BadDecodingError
	}
	return dec.readNodeID(b&0x0F, value)
}

func (dec *BinaryDecoder) readNodeID(b byte, value *NodeID) error {
	switch b {
	case 0x00:
		var id byte
		if err := dec.ReadByte(&id); err != nil {
			return BadDecodingError
		}
		*value = NewNodeIDNumeric(0, uint32(id))
		return nil

	case 0x01:
		var ns byte
		if err := dec.ReadByte(&ns); err != nil {
			return BadDecodingError
		}
		var id uint16
		if err := dec.ReadUInt16(&id); err != nil {
			return BadDecodingError
		}
		*value = NewNodeIDNumeric(uint16(ns), uint32(id))
		return nil

	case 0x02:
		var ns uint16
		if err := dec.ReadUInt16(&ns); err != nil {
			return BadDecodingError
		}
		var id uint32
		if err := dec.ReadUInt32(&id); err != nil {
			return BadDecodingError
		}
		*value = NewNodeIDNumeric(ns, id)
		return nil

	case 0x03:
		var ns uint16
		if err := dec.ReadUInt16(&ns); err != nil {
			return BadDecodingError
		}
		var id string
		if err := dec.ReadString(&id); err != nil {
			return BadDecodingError
		}
		*value = NewNodeIDString(ns, id)
		return nil

	case 0x04:
		var ns uint16
		if err := dec.ReadUInt16(&ns); err != nil {
			return BadDecodingError
		}
		var id uuid.UUID
		if err := dec.ReadGUID(&id); err != nil {
			return BadDecodingError
		}
		*value = NewNodeIDGUID(ns, id)
		return nil

	case 0x05:
		var ns uint16
		if err := dec.ReadUInt16(&ns); err != nil {
			return BadDecodingError
		}
		var id []byte
		if err := dec.ReadByteString(&id); err != nil {
			return BadDecodingError
		}
		*value = NewNodeIDOpaque(ns, ByteString(id))
		return nil

	default:
		return BadDecodingError
	}
}

// ReadExpandedNodeID reads an ExpandedNodeID.
func (dec *BinaryDecoder) ReadExpandedNodeID(value *ExpandedNodeID) error {
	var (
		n   NodeID
		nsu string
		svr uint32
		b   byte
	)
	if err := dec.ReadByte(&b); err != nil {
		return BadDecodingError
	}
	if err := dec.readNodeID(b&0x0F, &n); err != nil {
		return BadDecodingError
	}
	if (b & 0x80) != 0 {
		if err := dec.ReadString(&nsu); err != nil {
			return BadDecodingError
		}
	}
	if (b & 0x40) != 0 {
		if err := dec.ReadUInt32(&svr); err != nil {
			return BadDecodingError
		}
	}
	if nsu != "" {
		// the namespace index is not meaningful when the uri is present.
		n.namespaceIndex = 0
	}
	*value = ExpandedNodeID{svr, nsu, n}
	return nil
}

// ReadStatusCode reads a StatusCode.
func (dec *BinaryDecoder) ReadStatusCode(value *StatusCode) error {
	var u1 uint32
	if err := dec.ReadUInt32(&u1); err != nil {
		return BadDecodingError
	}
	*value = StatusCode(u1)
	return nil
}

// ReadQualifiedName reads a QualifiedName.
func (dec *BinaryDecoder) ReadQualifiedName(value *QualifiedName) error {
	var ns uint16
	if err := dec.ReadUInt16(&ns); err != nil {
		return BadDecodingError
	}
	var name string
	if err := dec.ReadString(&name); err != nil {
		return BadDecodingError
	}
	*value = QualifiedName{ns, name}
	return nil
}

// ReadLocalizedText reads a LocalizedText.
func (dec *BinaryDecoder) ReadLocalizedText(value *LocalizedText) error {
	var (
		text   string
		locale string
		b      byte
	)
	if err := dec.ReadByte(&b); err != nil {
		return BadDecodingError
	}
	if (b & 1) != 0 {
		if err := dec.ReadString(&locale); err != nil {
			return BadDecodingError
		}
	}
	if (b & 2) != 0 {
		if err := dec.ReadString(&text); err != nil {
			return BadDecodingError
		}
	}
	*value = LocalizedText{text, locale}
	return nil
}

// ReadExtensionObject reads an ExtensionObject. If the type library of the
// encoding context has a type registered for the binary encoding id, the body
// is decoded into a new instance of that type. Otherwise the body is kept as
// a ByteString. An ExtensionObject with no body is read as nil.
func (dec *BinaryDecoder) ReadExtensionObject(value **ExtensionObject) error {
	var nodeID NodeID
	if err := dec.ReadNodeID(&nodeID); err != nil {
		return BadDecodingError
	}
	var b byte
	if err := dec.ReadByte(&b); err != nil {
		return BadDecodingError
	}
	switch b {
	case 0x00:
		*value = nil
		return nil

	case 0x01:
		id := nodeID.ToExpandedNodeID(dec.ec.NamespaceURIs())
		var body []byte
		if err := dec.ReadByteString(&body); err != nil {
			return err
		}
		if body == nil {
			*value = nil
			return nil
		}
		if obj, ok := dec.ec.TypeLibrary().NewEncodable(id); ok {
			dec2 := NewBinaryDecoder(bytes.NewReader(body), dec.ec)
			if err := obj.Decode(dec2); err != nil {
				return BadDecodingError
			}
			*value = NewExtensionObjectWithTypeID(obj, id)
			return nil
		}
		*value = NewExtensionObjectByteString(body, id)
		return nil

	case 0x02:
		id := nodeID.ToExpandedNodeID(dec.ec.NamespaceURIs())
		var body *etree.Element
		if err := dec.ReadXMLElement(&body); err != nil {
			return err
		}
		if body == nil {
			*value = nil
			return nil
		}
		*value = NewExtensionObjectXMLElement(body, id)
		return nil

	default:
		return BadDecodingError
	}
}

// ReadDataValue reads a DataValue.
func (dec *BinaryDecoder) ReadDataValue(value **DataValue) error {
	var (
		v                 any
		statusCode        StatusCode
		sourceTimestamp   time.Time
		sourcePicoseconds uint16
		serverTimestamp   time.Time
		serverPicoseconds uint16
		b                 byte
	)
	if err := dec.ReadByte(&b); err != nil {
		return BadDecodingError
	}
	if (b & 1) != 0 {
		if err := dec.ReadVariant(&v); err != nil {
			return err
		}
	}
	if (b & 2) != 0 {
		if err := dec.ReadStatusCode(&statusCode); err != nil {
			return BadDecodingError
		}
	}
	if (b & 4) != 0 {
		if err := dec.ReadDateTime(&sourceTimestamp); err != nil {
			return BadDecodingError
		}
	}
	if (b & 16) != 0 {
		if err := dec.ReadUInt16(&sourcePicoseconds); err != nil {
			return BadDecodingError
		}
	}
	if (b & 8) != 0 {
		if err := dec.ReadDateTime(&serverTimestamp); err != nil {
			return BadDecodingError
		}
	}
	if (b & 32) != 0 {
		if err := dec.ReadUInt16(&serverPicoseconds); err != nil {
			return BadDecodingError
		}
	}
	*value = NewDataValue(v, statusCode, sourceTimestamp, sourcePicoseconds, serverTimestamp, serverPicoseconds)
	return nil
}

// ReadDiagnosticInfo reads a DiagnosticInfo. An empty DiagnosticInfo is read as nil.
func (dec *BinaryDecoder) ReadDiagnosticInfo(value **DiagnosticInfo) error {
	var symbolicID int32 = -1
	var namespaceURI int32 = -1
	var locale int32 = -1
	var localizedText int32 = -1
	var additionalInfo string
	var innerStatusCode StatusCode
	var innerDiagnosticInfo *DiagnosticInfo

	var b byte
	if err := dec.ReadByte(&b); err != nil {
		return BadDecodingError
	}
	if b == 0 {
		*value = nil
		return nil
	}
	if (b & 1) != 0 {
		if err := dec.ReadInt32(&symbolicID); err != nil {
			return BadDecodingError
		}
	}
	if (b & 2) != 0 {
		if err := dec.ReadInt32(&namespaceURI); err != nil {
			return BadDecodingError
		}
	}
	if (b & 8) != 0 {
		if err := dec.ReadInt32(&locale); err != nil {
			return BadDecodingError
		}
	}
	if (b & 4) != 0 {
		if err := dec.ReadInt32(&localizedText); err != nil {
			return BadDecodingError
		}
	}
	if (b & 16) != 0 {
		if err := dec.ReadString(&additionalInfo); err != nil {
			return BadDecodingError
		}
	}
	if (b & 32) != 0 {
		if err := dec.ReadStatusCode(&innerStatusCode); err != nil {
			return BadDecodingError
		}
	}
	if (b & 64) != 0 {
		if err := dec.ReadDiagnosticInfo(&innerDiagnosticInfo); err != nil {
			return BadDecodingError
		}
	}
	*value = NewDiagnosticInfo(namespaceURI, symbolicID, locale, localizedText, additionalInfo, innerStatusCode, innerDiagnosticInfo)
	return nil
}

// ReadUInt32Array reads a uint32 array.
func (dec *BinaryDecoder) ReadUInt32Array(value *[]uint32) error {
	return readArrayInto(dec, value, Decoder.ReadUInt32)
}

// ReadStringArray reads a string array.
func (dec *BinaryDecoder) ReadStringArray(value *[]string) error {
	return readArrayInto(dec, value, Decoder.ReadString)
}

// ReadStatusCodeArray reads a StatusCode array.
func (dec *BinaryDecoder) ReadStatusCodeArray(value *[]StatusCode) error {
	return readArrayInto(dec, value, Decoder.ReadStatusCode)
}

// ReadExtensionObjectArray reads an ExtensionObject array.
func (dec *BinaryDecoder) ReadExtensionObjectArray(value *[]*ExtensionObject) error {
	return readArrayInto(dec, value, Decoder.ReadExtensionObject)
}

// ReadDataValueArray reads a DataValue array.
func (dec *BinaryDecoder) ReadDataValueArray(value *[]*DataValue) error {
	return readArrayInto(dec, value, Decoder.ReadDataValue)
}

// ReadDiagnosticInfoArray reads a DiagnosticInfo array.
func (dec *BinaryDecoder) ReadDiagnosticInfoArray(value *[]*DiagnosticInfo) error {
	return readArrayInto(dec, value, Decoder.ReadDiagnosticInfo)
}

func readArrayInto[E any](dec Decoder, value *[]E, read func(Decoder, *E) error) error {
	values, err := ReadArray(dec, read)
	if err != nil {
		return err
	}
	*value = values
	return nil
}
