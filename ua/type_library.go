// Copyright 2021 Converter Systems LLC. All rights reserved.

package ua

import (
	"fmt"
	"reflect"
	"sort"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// TypeRecord declares the identifiers of a structure type.
type TypeRecord struct {
	// Type is the runtime type of the structure, usually a pointer type, e.g. *ReadRequest.
	Type reflect.Type
	// DataTypeID names the DataType node of the structure.
	DataTypeID ExpandedNodeID
	// BinaryEncodingID names the DefaultBinary encoding of the structure.
	BinaryEncodingID ExpandedNodeID
	// XMLEncodingID names the DefaultXml encoding of the structure. Optional.
	XMLEncodingID ExpandedNodeID
	// New returns a new, empty instance of Type.
	New func() Encodable
}

// StructureRecord returns the TypeRecord of structure T, where *T implements Encodable.
//
//	ua.StructureRecord[ReadRequest](ua.DataTypeIDReadRequest, ua.ObjectIDReadRequestEncodingDefaultBinary, ua.ObjectIDReadRequestEncodingDefaultXML)
func StructureRecord[T any, PT interface {
	*T
	Encodable
}](dataTypeID, binaryEncodingID, xmlEncodingID NodeID) TypeRecord {
	return TypeRecord{
		Type:             reflect.TypeOf(PT(nil)),
		DataTypeID:       NewExpandedNodeID(dataTypeID),
		BinaryEncodingID: NewExpandedNodeID(binaryEncodingID),
		XMLEncodingID:    NewExpandedNodeID(xmlEncodingID),
		New:              func() Encodable { return PT(new(T)) },
	}
}

// TypeLibrary resolves between runtime types and the identifiers a peer uses
// to recognize them on the wire. A TypeLibrary is immutable once built, so
// lookups are safe for concurrent use without locking.
type TypeLibrary struct {
	records               []*TypeRecord
	binaryEncodingIDs     map[reflect.Type]ExpandedNodeID
	xmlEncodingIDs        map[reflect.Type]ExpandedNodeID
	typesByBinaryEncoding map[ExpandedNodeID]*TypeRecord
	typesByXMLEncoding    map[ExpandedNodeID]*TypeRecord
	typesByDataType       map[ExpandedNodeID]reflect.Type
}

// FindBinaryEncodingID returns the binary encoding id registered for the type.
func (lib *TypeLibrary) FindBinaryEncodingID(typ reflect.Type) (ExpandedNodeID, bool) {
	id, ok := lib.binaryEncodingIDs[typ]
	return id, ok
}

// FindTypeByBinaryEncodingID returns the type registered for the binary encoding id.
func (lib *TypeLibrary) FindTypeByBinaryEncodingID(id ExpandedNodeID) (reflect.Type, bool) {
	if rec, ok := lib.typesByBinaryEncoding[id]; ok {
		return rec.Type, true
	}
	return nil, false
}

// FindXMLEncodingID returns the xml encoding id registered for the type.
func (lib *TypeLibrary) FindXMLEncodingID(typ reflect.Type) (ExpandedNodeID, bool) {
	id, ok := lib.xmlEncodingIDs[typ]
	return id, ok
}

// FindTypeByXMLEncodingID returns the type registered for the xml encoding id.
func (lib *TypeLibrary) FindTypeByXMLEncodingID(id ExpandedNodeID) (reflect.Type, bool) {
	if rec, ok := lib.typesByXMLEncoding[id]; ok {
		return rec.Type, true
	}
	return nil, false
}

// FindTypeByDataTypeID returns the type used to represent values of the data type.
func (lib *TypeLibrary) FindTypeByDataTypeID(id ExpandedNodeID) (reflect.Type, bool) {
	typ, ok := lib.typesByDataType[id]
	return typ, ok
}

// NewEncodable returns a new, empty instance of the type registered for the binary encoding id.
func (lib *TypeLibrary) NewEncodable(binaryEncodingID ExpandedNodeID) (Encodable, bool) {
	if rec, ok := lib.typesByBinaryEncoding[binaryEncodingID]; ok {
		return rec.New(), true
	}
	return nil, false
}

// Records returns a copy of the registered structure records, ordered by binary encoding id.
func (lib *TypeLibrary) Records() []TypeRecord {
	recs := make([]TypeRecord, len(lib.records))
	for i, rec := range lib.records {
		recs[i] = *rec
	}
	return recs
}

// TypeLibraryBuilder collects type records and builds an immutable TypeLibrary.
type TypeLibraryBuilder struct {
	records   []TypeRecord
	dataTypes []dataTypeRecord
}

type dataTypeRecord struct {
	id  ExpandedNodeID
	typ reflect.Type
}

// NewTypeLibraryBuilder returns an empty builder.
func NewTypeLibraryBuilder() *TypeLibraryBuilder {
	return &TypeLibraryBuilder{}
}

// Register adds structure records to the library.
func (b *TypeLibraryBuilder) Register(records ...TypeRecord) *TypeLibraryBuilder {
	b.records = append(b.records, records...)
	return b
}

// RegisterDataType maps a data type id to the runtime type used to represent
// its values, e.g. DataTypeIDBoolean to bool.
func (b *TypeLibraryBuilder) RegisterDataType(id ExpandedNodeID, typ reflect.Type) *TypeLibraryBuilder {
	b.dataTypes = append(b.dataTypes, dataTypeRecord{id, typ})
	return b
}

// Build returns the TypeLibrary. Registering two types under one encoding id,
// one type under two encoding ids, a type twice, or a data type id to two types
// is a configuration error; all such errors are reported together, each with
// cause BadConfigurationError.
func (b *TypeLibraryBuilder) Build() (*TypeLibrary, error) {
	lib := &TypeLibrary{
		records:               make([]*TypeRecord, 0, len(b.records)),
		binaryEncodingIDs:     make(map[reflect.Type]ExpandedNodeID, len(b.records)),
		xmlEncodingIDs:        make(map[reflect.Type]ExpandedNodeID, len(b.records)),
		typesByBinaryEncoding: make(map[ExpandedNodeID]*TypeRecord, len(b.records)),
		typesByXMLEncoding:    make(map[ExpandedNodeID]*TypeRecord, len(b.records)),
		typesByDataType:       make(map[ExpandedNodeID]reflect.Type, len(b.records)+len(b.dataTypes)),
	}
	var result *multierror.Error

	for i := range b.records {
		rec := b.records[i]
		if err := validateRecord(rec); err != nil {
			result = multierror.Append(result, err)
			continue
		}
		if id, ok := lib.binaryEncodingIDs[rec.Type]; ok {
			result = multierror.Append(result, configErrorf("type %s already registered with binary encoding id %s", rec.Type, id))
			continue
		}
		if other, ok := lib.typesByBinaryEncoding[rec.BinaryEncodingID]; ok {
			result = multierror.Append(result, configErrorf("binary encoding id %s of type %s already registered for type %s", rec.BinaryEncodingID, rec.Type, other.Type))
			continue
		}
		if !rec.XMLEncodingID.IsNil() {
			if other, ok := lib.typesByXMLEncoding[rec.XMLEncodingID]; ok {
				result = multierror.Append(result, configErrorf("xml encoding id %s of type %s already registered for type %s", rec.XMLEncodingID, rec.Type, other.Type))
				continue
			}
		}
		if other, ok := lib.typesByDataType[rec.DataTypeID]; ok {
			result = multierror.Append(result, configErrorf("data type id %s of type %s already registered for type %s", rec.DataTypeID, rec.Type, other))
			continue
		}
		lib.records = append(lib.records, &rec)
		lib.binaryEncodingIDs[rec.Type] = rec.BinaryEncodingID
		lib.typesByBinaryEncoding[rec.BinaryEncodingID] = &rec
		if !rec.XMLEncodingID.IsNil() {
			lib.xmlEncodingIDs[rec.Type] = rec.XMLEncodingID
			lib.typesByXMLEncoding[rec.XMLEncodingID] = &rec
		}
		lib.typesByDataType[rec.DataTypeID] = rec.Type
	}

	for _, dt := range b.dataTypes {
		if dt.id.IsNil() || dt.typ == nil {
			result = multierror.Append(result, configErrorf("data type registration requires an id and a type"))
			continue
		}
		if other, ok := lib.typesByDataType[dt.id]; ok {
			result = multierror.Append(result, configErrorf("data type id %s of type %s already registered for type %s", dt.id, dt.typ, other))
			continue
		}
		lib.typesByDataType[dt.id] = dt.typ
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	sort.Slice(lib.records, func(i, j int) bool {
		return lessExpandedNodeID(lib.records[i].BinaryEncodingID, lib.records[j].BinaryEncodingID)
	})
	return lib, nil
}

// MustBuild is like Build but panics if the registrations are inconsistent.
func (b *TypeLibraryBuilder) MustBuild() *TypeLibrary {
	lib, err := b.Build()
	if err != nil {
		panic(err)
	}
	return lib
}

func validateRecord(rec TypeRecord) error {
	switch {
	case rec.Type == nil:
		return configErrorf("record with binary encoding id %s has no type", rec.BinaryEncodingID)
	case rec.BinaryEncodingID.IsNil():
		return configErrorf("type %s has no binary encoding id", rec.Type)
	case rec.DataTypeID.IsNil():
		return configErrorf("type %s has no data type id", rec.Type)
	case rec.New == nil:
		return configErrorf("type %s has no constructor", rec.Type)
	}
	return nil
}

// lessExpandedNodeID orders by namespace, then numeric ids before others, then identifier.
func lessExpandedNodeID(a, b ExpandedNodeID) bool {
	if a.namespaceURI != b.namespaceURI {
		return a.namespaceURI < b.namespaceURI
	}
	if a.nodeID.namespaceIndex != b.nodeID.namespaceIndex {
		return a.nodeID.namespaceIndex < b.nodeID.namespaceIndex
	}
	if a.nodeID.idType != b.nodeID.idType {
		return a.nodeID.idType < b.nodeID.idType
	}
	if a.nodeID.idType == IDTypeNumeric {
		return a.nodeID.nid < b.nodeID.nid
	}
	return a.String() < b.String()
}

func configErrorf(format string, args ...any) error {
	return errors.Wrap(BadConfigurationError, fmt.Sprintf(format, args...))
}

var (
	defaultTypeLibrary     *TypeLibrary
	defaultTypeLibraryOnce sync.Once
)

// DefaultTypeLibrary returns the process-wide TypeLibrary holding the built-in
// data types and the standard structures. It is built on first use.
func DefaultTypeLibrary() *TypeLibrary {
	defaultTypeLibraryOnce.Do(func() {
		defaultTypeLibrary = NewStandardTypeLibraryBuilder().MustBuild()
	})
	return defaultTypeLibrary
}

// NewStandardTypeLibraryBuilder returns a builder holding the built-in data
// types and the standard structures. Register additional structures before building.
func NewStandardTypeLibraryBuilder() *TypeLibraryBuilder {
	b := NewTypeLibraryBuilder().Register(StandardTypes()...)
	for _, dt := range builtInDataTypes {
		b.RegisterDataType(NewExpandedNodeID(dt.id), dt.typ)
	}
	return b
}
