// Copyright 2021 Converter Systems LLC. All rights reserved.

package ua

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// IDType is the kind of identifier held by a NodeID.
type IDType byte

// IDTypes
const (
	IDTypeNumeric IDType = iota
	IDTypeString
	IDTypeGUID
	IDTypeOpaque
)

// NodeID identifies a Node in the namespace of the local server.
// NodeIDs are comparable and may be used as map keys.
type NodeID struct {
	namespaceIndex uint16
	idType         IDType
	nid            uint32
	sid            string
	gid            uuid.UUID
	bid            ByteString
}

// NewNodeIDNumeric constructs a new NodeID of numeric type.
func NewNodeIDNumeric(namespaceIndex uint16, identifier uint32) NodeID {
	return NodeID{namespaceIndex, IDTypeNumeric, identifier, "", uuid.Nil, ""}
}

// NewNodeIDString constructs a new NodeID of string type.
func NewNodeIDString(namespaceIndex uint16, identifier string) NodeID {
	return NodeID{namespaceIndex, IDTypeString, 0, identifier, uuid.Nil, ""}
}

// NewNodeIDGUID constructs a new NodeID of GUID type.
func NewNodeIDGUID(namespaceIndex uint16, identifier uuid.UUID) NodeID {
	return NodeID{namespaceIndex, IDTypeGUID, 0, "", identifier, ""}
}

// NewNodeIDOpaque constructs a new NodeID of opaque type.
func NewNodeIDOpaque(namespaceIndex uint16, identifier ByteString) NodeID {
	return NodeID{namespaceIndex, IDTypeOpaque, 0, "", uuid.Nil, identifier}
}

// NamespaceIndex returns the namespace index.
func (n NodeID) NamespaceIndex() uint16 {
	return n.namespaceIndex
}

// IDType returns the identifier type.
func (n NodeID) IDType() IDType {
	return n.idType
}

// Identifier returns the identifier.
func (n NodeID) Identifier() any {
	switch n.idType {
	case IDTypeNumeric:
		return n.nid
	case IDTypeString:
		return n.sid
	case IDTypeGUID:
		return n.gid
	case IDTypeOpaque:
		return n.bid
	}
	return nil
}

// NilNodeID is the nil value.
var NilNodeID = NodeID{}

// IsNil returns true if the nodeId is nil
func (n NodeID) IsNil() bool {
	if n.namespaceIndex > 0 {
		return false
	}
	switch n.idType {
	case IDTypeNumeric:
		return n.nid == 0
	case IDTypeString:
		return len(n.sid) == 0
	case IDTypeGUID:
		return n.gid == uuid.Nil
	case IDTypeOpaque:
		return len(n.bid) == 0
	}
	return false
}

// ParseNodeID returns a NodeID from a string representation.
//   - ParseNodeID("i=85") // integer, assumes ns=0
//   - ParseNodeID("ns=2;s=Demo.Static.Scalar.Float") // string
//   - ParseNodeID("ns=2;g=5ce9dbce-5d79-434c-9ac3-1cfba9a6e92c") // guid
//   - ParseNodeID("ns=2;b=YWJjZA==") // opaque byte string
//
// Malformed input returns NilNodeID.
func ParseNodeID(s string) NodeID {
	var ns uint64
	var err error
	if strings.HasPrefix(s, "ns=") {
		var pos = strings.Index(s, ";")
		if pos == -1 {
			return NilNodeID
		}
		ns, err = strconv.ParseUint(s[3:pos], 10, 16)
		if err != nil {
			return NilNodeID
		}
		s = s[pos+1:]
	}
	switch {
	case strings.HasPrefix(s, "i="):
		var id, err = strconv.ParseUint(s[2:], 10, 32)
		if err != nil {
			return NilNodeID
		}
		return NewNodeIDNumeric(uint16(ns), uint32(id))
	case strings.HasPrefix(s, "s="):
		return NewNodeIDString(uint16(ns), s[2:])
	case strings.HasPrefix(s, "g="):
		var id, err = uuid.Parse(s[2:])
		if err != nil {
			return NilNodeID
		}
		return NewNodeIDGUID(uint16(ns), id)
	case strings.HasPrefix(s, "b="):
		var id, err = base64.StdEncoding.DecodeString(s[2:])
		if err != nil {
			return NilNodeID
		}
		return NewNodeIDOpaque(uint16(ns), ByteString(id))
	}
	return NilNodeID
}

// String returns a string representation of the NodeID, e.g. "ns=2;s=Demo"
func (n NodeID) String() string {
	var prefix string
	if n.namespaceIndex > 0 {
		prefix = fmt.Sprintf("ns=%d;", n.namespaceIndex)
	}
	switch n.idType {
	case IDTypeNumeric:
		return fmt.Sprintf("%si=%d", prefix, n.nid)
	case IDTypeString:
		return fmt.Sprintf("%ss=%s", prefix, n.sid)
	case IDTypeGUID:
		return fmt.Sprintf("%sg=%s", prefix, n.gid)
	case IDTypeOpaque:
		return fmt.Sprintf("%sb=%s", prefix, base64.StdEncoding.EncodeToString([]byte(n.bid)))
	default:
		return ""
	}
}

// ToExpandedNodeID converts the NodeID to an ExpandedNodeID, replacing a
// non-zero namespace index with the matching uri from the table.
// Note: When creating a reference, and the target NodeID is a local node,
// use: NewExpandedNodeID(nodeId)
func (n NodeID) ToExpandedNodeID(namespaceURIs []string) ExpandedNodeID {
	ns := n.namespaceIndex
	if ns > 0 && int(ns) < len(namespaceURIs) {
		nsu := namespaceURIs[ns]
		id := n
		id.namespaceIndex = 0
		return ExpandedNodeID{0, nsu, id}
	}
	return ExpandedNodeID{nodeID: n}
}
