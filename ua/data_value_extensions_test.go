// Copyright 2021 Converter Systems LLC. All rights reserved.

package ua_test

import (
	"testing"
	"time"

	"github.com/awcullen/uaclient/ua"
	"github.com/pkg/errors"
	"gotest.tools/assert"
)

func newDataValue(value any) *ua.DataValue {
	return ua.NewDataValue(value, ua.Good, time.Time{}, 0, time.Time{}, 0)
}

func mustExtensionObject(t *testing.T, body ua.Encodable) *ua.ExtensionObject {
	eo, err := ua.NewExtensionObject(body, nil)
	assert.NilError(t, err)
	return eo
}

func TestGetValueNil(t *testing.T) {
	_, err := ua.GetValue(nil)
	assert.Equal(t, errors.Cause(err), ua.BadInvalidArgument)
}

func TestGetValueUnwrapsEncodable(t *testing.T) {
	req := &ua.ReadRequest{MaxAge: 500}
	v, err := ua.GetValue(newDataValue(mustExtensionObject(t, req)))
	assert.NilError(t, err)
	assert.Assert(t, v == any(req))
}

func TestGetValueKeepsByteString(t *testing.T) {
	eo := ua.NewExtensionObjectByteString([]byte{1}, ua.ParseExpandedNodeID("ns=2;i=3"))
	v, err := ua.GetValue(newDataValue(eo))
	assert.NilError(t, err)
	assert.Assert(t, v == any(eo))
}

func TestGetValueUnwrapsArray(t *testing.T) {
	a := &ua.ReadRequest{MaxAge: 1}
	b := &ua.ReadRequest{MaxAge: 2}
	raw := ua.NewExtensionObjectByteString([]byte{1}, ua.ParseExpandedNodeID("ns=2;i=3"))
	v, err := ua.GetValue(newDataValue([]*ua.ExtensionObject{
		mustExtensionObject(t, a),
		raw,
		mustExtensionObject(t, b),
	}))
	assert.NilError(t, err)
	values, ok := v.([]any)
	assert.Assert(t, ok, "%T", v)
	assert.Equal(t, len(values), 3)
	assert.Assert(t, values[0] == any(a))
	assert.Assert(t, values[1] == any(raw))
	assert.Assert(t, values[2] == any(b))
}

func TestGetValuePassesThrough(t *testing.T) {
	cases := []any{
		nil,
		int32(42),
		"foo",
		[]float64{1, 2},
		ua.NewNodeIDNumeric(0, 85),
	}
	for _, c := range cases {
		v, err := ua.GetValue(newDataValue(c))
		assert.NilError(t, err)
		assert.DeepEqual(t, v, c, allowUnexported)
	}
}

func TestGetValueOrDefault(t *testing.T) {
	req := &ua.ReadRequest{MaxAge: 500}
	dv := newDataValue(mustExtensionObject(t, req))

	assert.Assert(t, ua.GetValueOrDefault[*ua.ReadRequest](dv, nil) == req)
	assert.Assert(t, ua.GetValueOrZero[*ua.ReadRequest](dv) == req)

	// type mismatch falls back, and never panics.
	other := &ua.PublishRequest{}
	assert.Assert(t, ua.GetValueOrDefault[*ua.PublishRequest](dv, other) == other)
	assert.Assert(t, ua.GetValueOrZero[*ua.PublishRequest](dv) == nil)
	assert.Equal(t, ua.GetValueOrDefault(dv, int32(-1)), int32(-1))
	assert.Equal(t, ua.GetValueOrZero[string](dv), "")

	assert.Equal(t, ua.GetValueOrDefault(newDataValue(int32(7)), int32(-1)), int32(7))
	assert.Equal(t, ua.GetValueOrDefault(newDataValue(int32(7)), int64(-1)), int64(-1))
	assert.Equal(t, ua.GetValueOrDefault[string](nil, "none"), "none")
}

func TestGetValueOrDefaultInterface(t *testing.T) {
	req := &ua.ReadRequest{}
	dv := newDataValue(mustExtensionObject(t, req))
	v := ua.GetValueOrZero[ua.ServiceRequest](dv)
	assert.Assert(t, v == ua.ServiceRequest(req))
}

func TestGetArrayOrDefault(t *testing.T) {
	a := &ua.SubscriptionAcknowledgement{SubscriptionID: 1, SequenceNumber: 1}
	b := &ua.SubscriptionAcknowledgement{SubscriptionID: 1, SequenceNumber: 2}
	dv := newDataValue([]*ua.ExtensionObject{mustExtensionObject(t, a), mustExtensionObject(t, b)})

	acks := ua.GetArrayOrDefault[*ua.SubscriptionAcknowledgement](dv, nil)
	assert.Equal(t, len(acks), 2)
	assert.Assert(t, acks[0] == a)
	assert.Assert(t, acks[1] == b)
	assert.Equal(t, len(ua.GetArrayOrZero[*ua.SubscriptionAcknowledgement](dv)), 2)

	encodables := ua.GetArrayOrZero[ua.Encodable](dv)
	assert.Equal(t, len(encodables), 2)
}

func TestGetArrayOrDefaultAllOrNothing(t *testing.T) {
	a := &ua.SubscriptionAcknowledgement{SubscriptionID: 1, SequenceNumber: 1}
	// one element of another type spoils the whole array.
	dv := newDataValue([]*ua.ExtensionObject{
		mustExtensionObject(t, a),
		mustExtensionObject(t, &ua.ReadRequest{}),
		mustExtensionObject(t, a),
	})
	fallback := []*ua.SubscriptionAcknowledgement{}
	got := ua.GetArrayOrDefault(dv, fallback)
	assert.Equal(t, len(got), 0)
	assert.Assert(t, got != nil)
	assert.Assert(t, ua.GetArrayOrZero[*ua.SubscriptionAcknowledgement](dv) == nil)

	// so does a body that could not be decoded.
	dv = newDataValue([]*ua.ExtensionObject{
		mustExtensionObject(t, a),
		ua.NewExtensionObjectByteString([]byte{1}, ua.ParseExpandedNodeID("ns=2;i=3")),
	})
	assert.Assert(t, ua.GetArrayOrZero[*ua.SubscriptionAcknowledgement](dv) == nil)
}

func TestGetArrayOrDefaultBuiltIn(t *testing.T) {
	dv := newDataValue([]int32{1, 2, 3})
	assert.DeepEqual(t, ua.GetArrayOrZero[int32](dv), []int32{1, 2, 3})
	assert.Assert(t, ua.GetArrayOrZero[int64](dv) == nil)
	assert.DeepEqual(t, ua.GetArrayOrDefault(newDataValue(int32(1)), []int32{9}), []int32{9})
	assert.DeepEqual(t, ua.GetArrayOrDefault(nil, []int32{9}), []int32{9})
}

func TestGetValueOrDefaultSlice(t *testing.T) {
	r1 := &ua.ReadRequest{MaxAge: 1}
	r2 := &ua.ReadRequest{MaxAge: 2}
	dv := newDataValue([]*ua.ExtensionObject{mustExtensionObject(t, r1), mustExtensionObject(t, r2)})

	got := ua.GetValueOrDefault[[]*ua.ReadRequest](dv, nil)
	assert.Equal(t, len(got), 2)
	assert.Assert(t, got[0] == r1)
	assert.Assert(t, got[1] == r2)
	assert.Equal(t, len(ua.GetValueOrZero[[]ua.ServiceRequest](dv)), 2)
	assert.Equal(t, len(ua.GetValueOrZero[[]any](dv)), 2)

	// not a slice type.
	assert.Assert(t, ua.GetValueOrZero[*ua.ReadRequest](dv) == nil)
}

func TestGetValueOrDefaultSliceAllOrNothing(t *testing.T) {
	dv := newDataValue([]*ua.ExtensionObject{
		mustExtensionObject(t, &ua.ReadRequest{}),
		mustExtensionObject(t, &ua.SubscriptionAcknowledgement{SubscriptionID: 1}),
	})
	fallback := []*ua.ReadRequest{}
	got := ua.GetValueOrDefault(dv, fallback)
	assert.Equal(t, len(got), 0)
	assert.Assert(t, got != nil)
	assert.Assert(t, ua.GetValueOrZero[[]*ua.ReadRequest](dv) == nil)

	dv = newDataValue([]*ua.ExtensionObject{
		mustExtensionObject(t, &ua.ReadRequest{}),
		ua.NewExtensionObjectByteString([]byte{1}, ua.ParseExpandedNodeID("ns=2;i=3")),
	})
	assert.Assert(t, ua.GetValueOrZero[[]*ua.ReadRequest](dv) == nil)
}
