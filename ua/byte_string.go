// Copyright 2021 Converter Systems LLC. All rights reserved.

package ua

import (
	"encoding/base64"
	"encoding/json"
)

// ByteString is stored as a string so that it remains comparable.
// It is used as the identifier of opaque NodeIDs.
type ByteString string

// NilByteString is the nil value.
var NilByteString = ByteString("")

// String returns ByteString as a base64-encoded string.
func (b ByteString) String() string {
	return base64.StdEncoding.EncodeToString([]byte(b))
}

// MarshalJSON returns ByteString as a base64-encoded string.
func (b ByteString) MarshalJSON() ([]byte, error) {
	return json.Marshal([]byte(b))
}
