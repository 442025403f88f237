// Copyright 2021 Converter Systems LLC. All rights reserved.

package ua

import (
	"fmt"
	"reflect"

	"github.com/beevik/etree"
	"github.com/pkg/errors"
)

// BodyType is the kind of body carried by an ExtensionObject.
type BodyType byte

// BodyTypes
const (
	BodyTypeNone BodyType = iota
	BodyTypeByteString
	BodyTypeXMLElement
	BodyTypeEncodable
)

// String returns the name of the body type.
func (t BodyType) String() string {
	switch t {
	case BodyTypeNone:
		return "None"
	case BodyTypeByteString:
		return "ByteString"
	case BodyTypeXMLElement:
		return "XmlElement"
	case BodyTypeEncodable:
		return "Encodable"
	default:
		return fmt.Sprintf("BodyType(%d)", byte(t))
	}
}

// ExtensionObject carries a structure whose type is identified on the wire by
// an encoding id. The body is one of: nothing, a raw byte string, an xml
// element, or an Encodable. The type id is present only when a body is present.
//
// The zero value is an ExtensionObject with no body. ExtensionObjects are
// immutable and safe to share between goroutines.
type ExtensionObject struct {
	bodyType BodyType
	body     any
	typeID   ExpandedNodeID
}

// NilExtensionObject is the ExtensionObject with no body.
var NilExtensionObject = ExtensionObject{}

// NewExtensionObjectByteString returns an ExtensionObject with a body of raw
// bytes. If body is nil, the ExtensionObject has no body and the typeID is discarded.
func NewExtensionObjectByteString(body []byte, typeID ExpandedNodeID) *ExtensionObject {
	if body == nil {
		return &ExtensionObject{}
	}
	return &ExtensionObject{BodyTypeByteString, body, typeID}
}

// NewExtensionObjectXMLElement returns an ExtensionObject with a body of an
// xml element. If body is nil, the ExtensionObject has no body and the typeID is discarded.
func NewExtensionObjectXMLElement(body *etree.Element, typeID ExpandedNodeID) *ExtensionObject {
	if body == nil {
		return &ExtensionObject{}
	}
	return &ExtensionObject{BodyTypeXMLElement, body, typeID}
}

// NewExtensionObjectWithTypeID returns an ExtensionObject with a body of an
// Encodable and the given type id. The type library is not consulted. If body
// is nil, the ExtensionObject has no body and the typeID is discarded.
func NewExtensionObjectWithTypeID(body Encodable, typeID ExpandedNodeID) *ExtensionObject {
	if isNilEncodable(body) {
		return &ExtensionObject{}
	}
	return &ExtensionObject{BodyTypeEncodable, body, typeID}
}

// NewExtensionObject returns an ExtensionObject with a body of an Encodable.
// The type id is the binary encoding id registered in the type library for
// the type of the body. If lib is nil, DefaultTypeLibrary is used.
// If the type is not registered, the returned error has cause BadDataEncodingUnsupported.
func NewExtensionObject(body Encodable, lib *TypeLibrary) (*ExtensionObject, error) {
	if isNilEncodable(body) {
		return &ExtensionObject{}, nil
	}
	if lib == nil {
		lib = DefaultTypeLibrary()
	}
	id, ok := lib.FindBinaryEncodingID(reflect.TypeOf(body))
	if !ok {
		return nil, errors.Wrapf(BadDataEncodingUnsupported, "no binary encoding id registered for type %T", body)
	}
	return &ExtensionObject{BodyTypeEncodable, body, id}, nil
}

// BodyType returns the kind of body.
func (eo *ExtensionObject) BodyType() BodyType {
	if eo == nil {
		return BodyTypeNone
	}
	return eo.bodyType
}

// Body returns the body: nil, []byte, *etree.Element or Encodable, according to BodyType.
func (eo *ExtensionObject) Body() any {
	if eo == nil {
		return nil
	}
	return eo.body
}

// TypeID returns the type id, or NilExpandedNodeID if there is no body.
func (eo *ExtensionObject) TypeID() ExpandedNodeID {
	if eo == nil {
		return NilExpandedNodeID
	}
	return eo.typeID
}

// IsNil returns true if the ExtensionObject has no body.
func (eo *ExtensionObject) IsNil() bool {
	return eo.BodyType() == BodyTypeNone
}

// ByteString returns the body if the body type is BodyTypeByteString.
func (eo *ExtensionObject) ByteString() ([]byte, bool) {
	if eo.BodyType() != BodyTypeByteString {
		return nil, false
	}
	return eo.body.([]byte), true
}

// XMLElement returns the body if the body type is BodyTypeXMLElement.
func (eo *ExtensionObject) XMLElement() (*etree.Element, bool) {
	if eo.BodyType() != BodyTypeXMLElement {
		return nil, false
	}
	return eo.body.(*etree.Element), true
}

// Encodable returns the body if the body type is BodyTypeEncodable.
func (eo *ExtensionObject) Encodable() (Encodable, bool) {
	if eo.BodyType() != BodyTypeEncodable {
		return nil, false
	}
	return eo.body.(Encodable), true
}

// String returns a description of the ExtensionObject, e.g. "Encodable(i=631)"
func (eo *ExtensionObject) String() string {
	if eo.IsNil() {
		return "None"
	}
	return fmt.Sprintf("%s(%s)", eo.bodyType, eo.typeID)
}

// isNilEncodable reports whether v is nil or holds a nil pointer.
func isNilEncodable(v Encodable) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
