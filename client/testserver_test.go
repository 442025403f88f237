// Copyright 2021 Converter Systems LLC. All rights reserved.

package client_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/awcullen/uaclient/ua"
)

var (
	nodeTemperature = ua.ParseNodeID("ns=2;s=Demo.Temperature")
	nodeHeader      = ua.ParseNodeID("ns=2;s=Demo.Header")
	nodeAcks        = ua.ParseNodeID("ns=2;s=Demo.Acks")
	nodeRaw         = ua.ParseNodeID("ns=2;s=Demo.Raw")
)

type testSubscription struct {
	enabled   bool
	interval  float64
	seq       uint32
	available map[uint32]ua.NotificationMessage
}

// testServer serves the attribute and subscription service sets from memory.
type testServer struct {
	sync.Mutex
	values map[ua.NodeID]any
	nextID uint32
	subs   map[uint32]*testSubscription
}

func newTestServer() *testServer {
	return &testServer{
		values: map[ua.NodeID]any{
			nodeTemperature: float64(21.5),
			nodeHeader:      mustExtensionObject(&ua.RequestHeader{AuditEntryID: "audit", TimeoutHint: 1000}),
			nodeAcks: []*ua.ExtensionObject{
				mustExtensionObject(&ua.SubscriptionAcknowledgement{SubscriptionID: 1, SequenceNumber: 1}),
				mustExtensionObject(&ua.SubscriptionAcknowledgement{SubscriptionID: 1, SequenceNumber: 2}),
			},
			nodeRaw: ua.NewExtensionObjectByteString([]byte{1, 2, 3}, ua.ParseExpandedNodeID("nsu=urn:test;i=5001")),
		},
		subs: map[uint32]*testSubscription{},
	}
}

func mustExtensionObject(body ua.Encodable) *ua.ExtensionObject {
	eo, err := ua.NewExtensionObject(body, nil)
	if err != nil {
		panic(err)
	}
	return eo
}

func (srv *testServer) responseHeader(req ua.ServiceRequest, result ua.StatusCode) ua.ResponseHeader {
	return ua.ResponseHeader{
		Timestamp:     time.Now(),
		RequestHandle: req.Header().RequestHandle,
		ServiceResult: result,
	}
}

func (srv *testServer) ServeRequest(ctx context.Context, req ua.ServiceRequest) (ua.ServiceResponse, error) {
	srv.Lock()
	defer srv.Unlock()
	switch req := req.(type) {
	case *ua.ReadRequest:
		results := make([]*ua.DataValue, len(req.NodesToRead))
		for i, n := range req.NodesToRead {
			v, ok := srv.values[n.NodeID]
			if !ok || n.AttributeID != ua.AttributeIDValue {
				results[i] = ua.NewDataValue(nil, ua.BadNodeIDUnknown, time.Time{}, 0, time.Time{}, 0)
				continue
			}
			results[i] = ua.NewDataValue(v, ua.Good, time.Time{}, 0, time.Time{}, 0)
		}
		return &ua.ReadResponse{ResponseHeader: srv.responseHeader(req, ua.Good), Results: results}, nil

	case *ua.CreateSubscriptionRequest:
		srv.nextID++
		interval := req.RequestedPublishingInterval
		if interval < 100 {
			interval = 100
		}
		srv.subs[srv.nextID] = &testSubscription{
			enabled:   req.PublishingEnabled,
			interval:  interval,
			available: map[uint32]ua.NotificationMessage{},
		}
		return &ua.CreateSubscriptionResponse{
			ResponseHeader:            srv.responseHeader(req, ua.Good),
			SubscriptionID:            srv.nextID,
			RevisedPublishingInterval: interval,
			RevisedLifetimeCount:      req.RequestedLifetimeCount,
			RevisedMaxKeepAliveCount:  req.RequestedMaxKeepAliveCount,
		}, nil

	case *ua.ModifySubscriptionRequest:
		sub, ok := srv.subs[req.SubscriptionID]
		if !ok {
			return &ua.ModifySubscriptionResponse{ResponseHeader: srv.responseHeader(req, ua.BadSubscriptionIDInvalid)}, nil
		}
		sub.interval = req.RequestedPublishingInterval
		return &ua.ModifySubscriptionResponse{
			ResponseHeader:            srv.responseHeader(req, ua.Good),
			RevisedPublishingInterval: sub.interval,
			RevisedLifetimeCount:      req.RequestedLifetimeCount,
			RevisedMaxKeepAliveCount:  req.RequestedMaxKeepAliveCount,
		}, nil

	case *ua.SetPublishingModeRequest:
		results := make([]ua.StatusCode, len(req.SubscriptionIDs))
		for i, id := range req.SubscriptionIDs {
			sub, ok := srv.subs[id]
			if !ok {
				results[i] = ua.BadSubscriptionIDInvalid
				continue
			}
			sub.enabled = req.PublishingEnabled
		}
		return &ua.SetPublishingModeResponse{ResponseHeader: srv.responseHeader(req, ua.Good), Results: results}, nil

	case *ua.PublishRequest:
		results := make([]ua.StatusCode, len(req.SubscriptionAcknowledgements))
		for i, ack := range req.SubscriptionAcknowledgements {
			sub, ok := srv.subs[ack.SubscriptionID]
			if !ok {
				results[i] = ua.BadSubscriptionIDInvalid
				continue
			}
			if _, ok := sub.available[ack.SequenceNumber]; !ok {
				results[i] = ua.BadSequenceNumberUnknown
				continue
			}
			delete(sub.available, ack.SequenceNumber)
		}
		id, sub := srv.firstSubscription()
		if sub == nil {
			return &ua.PublishResponse{ResponseHeader: srv.responseHeader(req, ua.BadNoSubscription)}, nil
		}
		var msg ua.NotificationMessage
		if sub.enabled {
			sub.seq++
			msg = ua.NotificationMessage{
				SequenceNumber: sub.seq,
				PublishTime:    time.Now(),
				NotificationData: []*ua.ExtensionObject{
					mustExtensionObject(&ua.DataChangeNotification{
						MonitoredItems: []ua.MonitoredItemNotification{
							{ClientHandle: 42, Value: ua.NewDataValue(int32(sub.seq), ua.Good, time.Time{}, 0, time.Time{}, 0)},
						},
					}),
				},
			}
			sub.available[sub.seq] = msg
		} else {
			// keep-alive carries the next sequence number and no data.
			msg = ua.NotificationMessage{SequenceNumber: sub.seq + 1, PublishTime: time.Now()}
		}
		return &ua.PublishResponse{
			ResponseHeader:           srv.responseHeader(req, ua.Good),
			SubscriptionID:           id,
			AvailableSequenceNumbers: sub.availableSequenceNumbers(),
			NotificationMessage:      msg,
			Results:                  results,
		}, nil

	case *ua.RepublishRequest:
		sub, ok := srv.subs[req.SubscriptionID]
		if !ok {
			return &ua.RepublishResponse{ResponseHeader: srv.responseHeader(req, ua.BadSubscriptionIDInvalid)}, nil
		}
		msg, ok := sub.available[req.RetransmitSequenceNumber]
		if !ok {
			return &ua.RepublishResponse{ResponseHeader: srv.responseHeader(req, ua.BadMessageNotAvailable)}, nil
		}
		return &ua.RepublishResponse{ResponseHeader: srv.responseHeader(req, ua.Good), NotificationMessage: msg}, nil

	case *ua.TransferSubscriptionsRequest:
		results := make([]ua.TransferResult, len(req.SubscriptionIDs))
		for i, id := range req.SubscriptionIDs {
			sub, ok := srv.subs[id]
			if !ok {
				results[i] = ua.TransferResult{StatusCode: ua.BadSubscriptionIDInvalid}
				continue
			}
			results[i] = ua.TransferResult{StatusCode: ua.Good, AvailableSequenceNumbers: sub.availableSequenceNumbers()}
		}
		return &ua.TransferSubscriptionsResponse{ResponseHeader: srv.responseHeader(req, ua.Good), Results: results}, nil

	case *ua.DeleteSubscriptionsRequest:
		results := make([]ua.StatusCode, len(req.SubscriptionIDs))
		for i, id := range req.SubscriptionIDs {
			if _, ok := srv.subs[id]; !ok {
				results[i] = ua.BadSubscriptionIDInvalid
				continue
			}
			delete(srv.subs, id)
		}
		return &ua.DeleteSubscriptionsResponse{ResponseHeader: srv.responseHeader(req, ua.Good), Results: results}, nil
	}
	return nil, ua.BadServiceUnsupported
}

func (srv *testServer) firstSubscription() (uint32, *testSubscription) {
	var first uint32
	for id := range srv.subs {
		if first == 0 || id < first {
			first = id
		}
	}
	return first, srv.subs[first]
}

func (sub *testSubscription) availableSequenceNumbers() []uint32 {
	seqs := make([]uint32, 0, len(sub.available))
	for seq := range sub.available {
		seqs = append(seqs, seq)
	}
	sort.Slice(seqs, func(i, j int) bool { return seqs[i] < seqs[j] })
	return seqs
}
