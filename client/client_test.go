// Copyright 2021 Converter Systems LLC. All rights reserved.

package client_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/awcullen/uaclient/client"
	"github.com/awcullen/uaclient/ua"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gotest.tools/assert"
)

// channelFunc is an adapter to use an ordinary function as a RequestChannel.
type channelFunc func(ctx context.Context, req ua.ServiceRequest) (ua.ServiceResponse, error)

func (f channelFunc) Request(ctx context.Context, req ua.ServiceRequest) (ua.ServiceResponse, error) {
	return f(ctx, req)
}

func newLoopbackClient(t *testing.T, opts ...client.LoopbackOption) (*client.Client, *testServer) {
	t.Helper()
	srv := newTestServer()
	opts = append([]client.LoopbackOption{
		client.WithEncodingContext(ua.NewEncodingContext(ua.WithNamespaceURIs("urn:test"))),
	}, opts...)
	ch, err := client.NewLoopbackChannel(srv, opts...)
	assert.NilError(t, err)
	t.Cleanup(func() { ch.Close() })
	cli, err := client.New(ch)
	assert.NilError(t, err)
	return cli, srv
}

func TestNewRejectsNilChannel(t *testing.T) {
	_, err := client.New(nil)
	assert.Equal(t, errors.Cause(err), ua.BadInvalidArgument)
}

func TestServiceSetsRejectNilRequest(t *testing.T) {
	called := false
	cli, err := client.New(channelFunc(func(ctx context.Context, req ua.ServiceRequest) (ua.ServiceResponse, error) {
		called = true
		return nil, ua.BadUnexpectedError
	}))
	assert.NilError(t, err)
	ctx := context.Background()
	cases := map[string]func() error{
		"Read":                  func() error { _, err := cli.Read(ctx, nil); return err },
		"CreateSubscription":    func() error { _, err := cli.CreateSubscription(ctx, nil); return err },
		"ModifySubscription":    func() error { _, err := cli.ModifySubscription(ctx, nil); return err },
		"SetPublishingMode":     func() error { _, err := cli.SetPublishingMode(ctx, nil); return err },
		"Publish":               func() error { _, err := cli.Publish(ctx, nil); return err },
		"Republish":             func() error { _, err := cli.Republish(ctx, nil); return err },
		"TransferSubscriptions": func() error { _, err := cli.TransferSubscriptions(ctx, nil); return err },
		"DeleteSubscriptions":   func() error { _, err := cli.DeleteSubscriptions(ctx, nil); return err },
	}
	for name, call := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, errors.Cause(call()), ua.BadInvalidArgument)
		})
	}
	assert.Assert(t, !called)
}

func TestUnknownResponse(t *testing.T) {
	cli, err := client.New(channelFunc(func(ctx context.Context, req ua.ServiceRequest) (ua.ServiceResponse, error) {
		return &ua.PublishResponse{}, nil
	}))
	assert.NilError(t, err)
	res, err := cli.Read(context.Background(), &ua.ReadRequest{})
	assert.Assert(t, res == nil)
	assert.Equal(t, errors.Cause(err), ua.BadUnknownResponse)

	cli, err = client.New(channelFunc(func(ctx context.Context, req ua.ServiceRequest) (ua.ServiceResponse, error) {
		return nil, nil
	}))
	assert.NilError(t, err)
	_, err = cli.Read(context.Background(), &ua.ReadRequest{})
	assert.Equal(t, errors.Cause(err), ua.BadUnknownResponse)
}

func TestServiceResultIsReturned(t *testing.T) {
	cli, err := client.New(channelFunc(func(ctx context.Context, req ua.ServiceRequest) (ua.ServiceResponse, error) {
		return &ua.PublishResponse{ResponseHeader: ua.ResponseHeader{ServiceResult: ua.BadNoSubscription}}, nil
	}))
	assert.NilError(t, err)
	_, err = cli.Publish(context.Background(), &ua.PublishRequest{})
	assert.Equal(t, err, ua.BadNoSubscription)
}

func TestRequestHeaderIsFilled(t *testing.T) {
	var headers []ua.RequestHeader
	token := ua.NewNodeIDNumeric(1, 99)
	cli, err := client.New(
		channelFunc(func(ctx context.Context, req ua.ServiceRequest) (ua.ServiceResponse, error) {
			_, hasDeadline := ctx.Deadline()
			if !hasDeadline {
				return nil, ua.BadUnexpectedError
			}
			headers = append(headers, *req.Header())
			return &ua.ReadResponse{}, nil
		}),
		client.WithAuthenticationToken(token),
		client.WithDiagnosticsHint(0x3FF),
	)
	assert.NilError(t, err)
	_, err = cli.Read(context.Background(), &ua.ReadRequest{})
	assert.NilError(t, err)
	_, err = cli.Read(context.Background(), &ua.ReadRequest{RequestHeader: ua.RequestHeader{TimeoutHint: 500}})
	assert.NilError(t, err)

	assert.Equal(t, len(headers), 2)
	assert.Equal(t, headers[0].RequestHandle, uint32(1))
	assert.Equal(t, headers[1].RequestHandle, uint32(2))
	assert.Equal(t, headers[0].TimeoutHint, uint32(15000))
	assert.Equal(t, headers[1].TimeoutHint, uint32(500))
	assert.Equal(t, headers[0].AuthenticationToken, token)
	assert.Equal(t, headers[0].ReturnDiagnostics, uint32(0x3FF))
	assert.Assert(t, !headers[0].Timestamp.IsZero())
}

func TestNoTimeoutHint(t *testing.T) {
	var hints []uint32
	var deadlines []bool
	cli, err := client.New(
		channelFunc(func(ctx context.Context, req ua.ServiceRequest) (ua.ServiceResponse, error) {
			_, hasDeadline := ctx.Deadline()
			deadlines = append(deadlines, hasDeadline)
			hints = append(hints, req.Header().TimeoutHint)
			return &ua.ReadResponse{}, nil
		}),
		client.WithTimeoutHint(0),
	)
	assert.NilError(t, err)
	_, err = cli.Read(context.Background(), &ua.ReadRequest{})
	assert.NilError(t, err)
	// a hint set on the request still applies.
	_, err = cli.Read(context.Background(), &ua.ReadRequest{RequestHeader: ua.RequestHeader{TimeoutHint: 500}})
	assert.NilError(t, err)

	assert.DeepEqual(t, hints, []uint32{0, 500})
	assert.DeepEqual(t, deadlines, []bool{false, true})
}

func TestRead(t *testing.T) {
	cli, _ := newLoopbackClient(t)
	res, err := cli.Read(context.Background(), &ua.ReadRequest{
		NodesToRead: []ua.ReadValueID{
			{NodeID: nodeTemperature, AttributeID: ua.AttributeIDValue},
			{NodeID: nodeHeader, AttributeID: ua.AttributeIDValue},
			{NodeID: nodeAcks, AttributeID: ua.AttributeIDValue},
			{NodeID: nodeRaw, AttributeID: ua.AttributeIDValue},
			{NodeID: ua.ParseNodeID("ns=2;s=Missing"), AttributeID: ua.AttributeIDValue},
		},
	})
	assert.NilError(t, err)
	assert.Equal(t, len(res.Results), 5)

	assert.Equal(t, ua.GetValueOrZero[float64](res.Results[0]), 21.5)

	// structures arrive decoded, and are unwrapped from their ExtensionObject.
	header := ua.GetValueOrZero[*ua.RequestHeader](res.Results[1])
	assert.Assert(t, header != nil)
	assert.Equal(t, header.AuditEntryID, "audit")
	assert.Equal(t, header.TimeoutHint, uint32(1000))

	acks := ua.GetArrayOrZero[*ua.SubscriptionAcknowledgement](res.Results[2])
	assert.Equal(t, len(acks), 2)
	assert.Equal(t, *acks[1], ua.SubscriptionAcknowledgement{SubscriptionID: 1, SequenceNumber: 2})

	// a body of unknown type stays a ByteString, with its namespace uri restored.
	raw := ua.GetValueOrZero[*ua.ExtensionObject](res.Results[3])
	assert.Assert(t, raw != nil)
	assert.Equal(t, raw.BodyType(), ua.BodyTypeByteString)
	assert.Equal(t, raw.TypeID(), ua.ParseExpandedNodeID("nsu=urn:test;i=5001"))
	body, _ := raw.ByteString()
	assert.DeepEqual(t, body, []byte{1, 2, 3})

	assert.Equal(t, res.Results[4].StatusCode(), ua.BadNodeIDUnknown)
	assert.Assert(t, res.Results[4].Value() == nil)
}

func TestSubscriptionLifecycle(t *testing.T) {
	ctx := context.Background()
	cli, _ := newLoopbackClient(t)

	_, err := cli.Publish(ctx, &ua.PublishRequest{})
	assert.Equal(t, err, ua.BadNoSubscription)

	res, err := cli.CreateSubscription(ctx, &ua.CreateSubscriptionRequest{
		RequestedPublishingInterval: 10,
		RequestedMaxKeepAliveCount:  30,
		RequestedLifetimeCount:      90,
		PublishingEnabled:           true,
	})
	assert.NilError(t, err)
	id := res.SubscriptionID
	assert.Equal(t, res.RevisedPublishingInterval, 100.0)
	assert.Equal(t, res.RevisedLifetimeCount, uint32(90))

	mres, err := cli.ModifySubscription(ctx, &ua.ModifySubscriptionRequest{SubscriptionID: id, RequestedPublishingInterval: 500})
	assert.NilError(t, err)
	assert.Equal(t, mres.RevisedPublishingInterval, 500.0)
	_, err = cli.ModifySubscription(ctx, &ua.ModifySubscriptionRequest{SubscriptionID: id + 1})
	assert.Equal(t, err, ua.BadSubscriptionIDInvalid)

	pres, err := cli.Publish(ctx, &ua.PublishRequest{})
	assert.NilError(t, err)
	assert.Equal(t, pres.SubscriptionID, id)
	assert.Equal(t, pres.NotificationMessage.SequenceNumber, uint32(1))
	assert.Equal(t, len(pres.NotificationMessage.NotificationData), 1)
	dcn, ok := pres.NotificationMessage.NotificationData[0].Encodable()
	assert.Assert(t, ok)
	items := dcn.(*ua.DataChangeNotification).MonitoredItems
	assert.Equal(t, len(items), 1)
	assert.Equal(t, items[0].ClientHandle, uint32(42))
	assert.Equal(t, ua.GetValueOrZero[int32](items[0].Value), int32(1))

	rres, err := cli.Republish(ctx, &ua.RepublishRequest{SubscriptionID: id, RetransmitSequenceNumber: 1})
	assert.NilError(t, err)
	assert.Equal(t, rres.NotificationMessage.SequenceNumber, uint32(1))
	_, err = cli.Republish(ctx, &ua.RepublishRequest{SubscriptionID: id, RetransmitSequenceNumber: 7})
	assert.Equal(t, err, ua.BadMessageNotAvailable)

	sres, err := cli.SetPublishingMode(ctx, &ua.SetPublishingModeRequest{SubscriptionIDs: []uint32{id, id + 1}})
	assert.NilError(t, err)
	assert.DeepEqual(t, sres.Results, []ua.StatusCode{ua.Good, ua.BadSubscriptionIDInvalid})

	tres, err := cli.TransferSubscriptions(ctx, &ua.TransferSubscriptionsRequest{SubscriptionIDs: []uint32{id}})
	assert.NilError(t, err)
	assert.Equal(t, len(tres.Results), 1)
	assert.Equal(t, tres.Results[0].StatusCode, ua.Good)
	assert.DeepEqual(t, tres.Results[0].AvailableSequenceNumbers, []uint32{1})

	dres, err := cli.DeleteSubscriptions(ctx, &ua.DeleteSubscriptionsRequest{SubscriptionIDs: []uint32{id, id}})
	assert.NilError(t, err)
	assert.DeepEqual(t, dres.Results, []ua.StatusCode{ua.Good, ua.BadSubscriptionIDInvalid})
}

func TestPublisherAcknowledges(t *testing.T) {
	ctx := context.Background()
	cli, _ := newLoopbackClient(t)
	res, err := cli.CreateSubscription(ctx, &ua.CreateSubscriptionRequest{PublishingEnabled: true})
	assert.NilError(t, err)
	id := res.SubscriptionID

	pub := client.NewPublisher(cli)
	assert.Equal(t, len(pub.Pending()), 0)

	pres, err := pub.Publish(ctx)
	assert.NilError(t, err)
	assert.Equal(t, len(pres.Results), 0)
	assert.DeepEqual(t, pres.AvailableSequenceNumbers, []uint32{1})
	assert.DeepEqual(t, pub.Pending(), []ua.SubscriptionAcknowledgement{{SubscriptionID: id, SequenceNumber: 1}})

	// the second request acknowledges the first message.
	pres, err = pub.Publish(ctx)
	assert.NilError(t, err)
	assert.DeepEqual(t, pres.Results, []ua.StatusCode{ua.Good})
	assert.DeepEqual(t, pres.AvailableSequenceNumbers, []uint32{2})
	assert.DeepEqual(t, pub.Pending(), []ua.SubscriptionAcknowledgement{{SubscriptionID: id, SequenceNumber: 2}})

	// a keep-alive is not acknowledged.
	_, err = cli.SetPublishingMode(ctx, &ua.SetPublishingModeRequest{PublishingEnabled: false, SubscriptionIDs: []uint32{id}})
	assert.NilError(t, err)
	pres, err = pub.Publish(ctx)
	assert.NilError(t, err)
	assert.Equal(t, len(pres.NotificationMessage.NotificationData), 0)
	assert.Equal(t, pres.NotificationMessage.SequenceNumber, uint32(3))
	assert.DeepEqual(t, pres.Results, []ua.StatusCode{ua.Good})
	assert.Equal(t, len(pub.Pending()), 0)
}

func TestPublisherKeepsAcksOnError(t *testing.T) {
	var sent [][]ua.SubscriptionAcknowledgement
	fail := false
	cli, err := client.New(channelFunc(func(ctx context.Context, req ua.ServiceRequest) (ua.ServiceResponse, error) {
		preq := req.(*ua.PublishRequest)
		sent = append(sent, preq.SubscriptionAcknowledgements)
		if fail {
			return nil, ua.BadTimeout
		}
		return &ua.PublishResponse{
			SubscriptionID: 7,
			NotificationMessage: ua.NotificationMessage{
				SequenceNumber:   uint32(len(sent)),
				NotificationData: []*ua.ExtensionObject{ua.NewExtensionObjectByteString([]byte{0}, ua.ParseExpandedNodeID("i=1"))},
			},
		}, nil
	}))
	assert.NilError(t, err)
	ctx := context.Background()
	pub := client.NewPublisher(cli)

	_, err = pub.Publish(ctx)
	assert.NilError(t, err)
	fail = true
	_, err = pub.Publish(ctx)
	assert.Equal(t, err, ua.BadTimeout)
	fail = false
	_, err = pub.Publish(ctx)
	assert.NilError(t, err)

	want := []ua.SubscriptionAcknowledgement{{SubscriptionID: 7, SequenceNumber: 1}}
	assert.Equal(t, len(sent), 3)
	assert.Equal(t, len(sent[0]), 0)
	assert.DeepEqual(t, sent[1], want)
	assert.DeepEqual(t, sent[2], want)
	assert.DeepEqual(t, pub.Pending(), []ua.SubscriptionAcknowledgement{{SubscriptionID: 7, SequenceNumber: 3}})

	pub.Forget(7)
	assert.Equal(t, len(pub.Pending()), 0)
}

func TestPublisherRun(t *testing.T) {
	cli, _ := newLoopbackClient(t)
	_, err := cli.CreateSubscription(context.Background(), &ua.CreateSubscriptionRequest{PublishingEnabled: true})
	assert.NilError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var seqs []uint32
	err = client.NewPublisher(cli).Run(ctx, func(res *ua.PublishResponse) {
		seqs = append(seqs, res.NotificationMessage.SequenceNumber)
		if len(seqs) == 3 {
			cancel()
		}
	})
	assert.Equal(t, err, context.Canceled)
	assert.DeepEqual(t, seqs, []uint32{1, 2, 3})
}

func TestLoopbackTimeout(t *testing.T) {
	ch, err := client.NewLoopbackChannel(client.HandlerFunc(func(ctx context.Context, req ua.ServiceRequest) (ua.ServiceResponse, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	}))
	assert.NilError(t, err)
	defer ch.Close()
	cli, err := client.New(ch, client.WithTimeoutHint(50))
	assert.NilError(t, err)
	start := time.Now()
	_, err = cli.Read(context.Background(), &ua.ReadRequest{})
	assert.Equal(t, err, ua.BadRequestTimeout)
	assert.Assert(t, time.Since(start) < 10*time.Second)
}

func TestLoopbackClosed(t *testing.T) {
	ch, err := client.NewLoopbackChannel(newTestServer())
	assert.NilError(t, err)
	assert.NilError(t, ch.Close())
	assert.NilError(t, ch.Close())
	_, err = ch.Request(context.Background(), &ua.ReadRequest{})
	assert.Equal(t, err, ua.BadSecureChannelClosed)
}

// unregisteredRequest is a ServiceRequest that no type library knows.
type unregisteredRequest struct {
	RequestHeader ua.RequestHeader
}

func (r *unregisteredRequest) Header() *ua.RequestHeader   { return &r.RequestHeader }
func (r *unregisteredRequest) Encode(enc ua.Encoder) error { return r.RequestHeader.Encode(enc) }
func (r *unregisteredRequest) Decode(dec ua.Decoder) error { return r.RequestHeader.Decode(dec) }

func TestLoopbackUnregisteredRequest(t *testing.T) {
	ch, err := client.NewLoopbackChannel(newTestServer())
	assert.NilError(t, err)
	defer ch.Close()
	_, err = ch.Request(context.Background(), &unregisteredRequest{})
	assert.Equal(t, errors.Cause(err), ua.BadDataEncodingUnsupported)
}

// unregisteredResponse is a ServiceResponse that no type library knows.
type unregisteredResponse struct {
	ResponseHeader ua.ResponseHeader
}

func (r *unregisteredResponse) Header() *ua.ResponseHeader  { return &r.ResponseHeader }
func (r *unregisteredResponse) Encode(enc ua.Encoder) error { return r.ResponseHeader.Encode(enc) }
func (r *unregisteredResponse) Decode(dec ua.Decoder) error { return r.ResponseHeader.Decode(dec) }

func TestLoopbackUnregisteredResponse(t *testing.T) {
	ch, err := client.NewLoopbackChannel(client.HandlerFunc(func(ctx context.Context, req ua.ServiceRequest) (ua.ServiceResponse, error) {
		return &unregisteredResponse{}, nil
	}))
	assert.NilError(t, err)
	defer ch.Close()
	_, err = ch.Request(context.Background(), &ua.ReadRequest{})
	assert.Equal(t, errors.Cause(err), ua.BadDataEncodingUnsupported)
}

func TestLoopbackHandlerError(t *testing.T) {
	ch, err := client.NewLoopbackChannel(client.HandlerFunc(func(ctx context.Context, req ua.ServiceRequest) (ua.ServiceResponse, error) {
		return nil, ua.BadTooManyOperations
	}))
	assert.NilError(t, err)
	defer ch.Close()
	_, err = ch.Request(context.Background(), &ua.ReadRequest{})
	assert.Equal(t, err, ua.BadTooManyOperations)
}

func TestLoopbackOptions(t *testing.T) {
	srv := newTestServer()
	_, err := client.NewLoopbackChannel(nil)
	assert.Equal(t, errors.Cause(err), ua.BadInvalidArgument)
	_, err = client.NewLoopbackChannel(srv, client.WithMaxWorkers(0))
	assert.Equal(t, errors.Cause(err), ua.BadInvalidArgument)
	_, err = client.NewLoopbackChannel(srv, client.WithLogger(nil))
	assert.Equal(t, errors.Cause(err), ua.BadInvalidArgument)
	_, err = client.NewLoopbackChannel(srv, client.WithEncodingContext(nil))
	assert.Equal(t, errors.Cause(err), ua.BadInvalidArgument)
}

func TestLoopbackLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	cli, _ := newLoopbackClient(t, client.WithLogger(zap.New(core)))
	_, err := cli.Read(context.Background(), &ua.ReadRequest{})
	assert.NilError(t, err)
	entries := logs.FilterMessage("serving request").All()
	assert.Equal(t, len(entries), 1)
	assert.Equal(t, entries[0].ContextMap()["type"], "*ua.ReadRequest")
}

func TestLoopbackConcurrent(t *testing.T) {
	cli, _ := newLoopbackClient(t, client.WithMaxWorkers(2))
	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := cli.Read(context.Background(), &ua.ReadRequest{
				NodesToRead: []ua.ReadValueID{{NodeID: nodeTemperature, AttributeID: ua.AttributeIDValue}},
			})
			if err != nil {
				errs <- err
				return
			}
			if v := ua.GetValueOrZero[float64](res.Results[0]); v != 21.5 {
				errs <- errors.Errorf("unexpected value %v", v)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

// blockingHandler blocks requests with MaxAge 1 until release is closed, and counts served requests.
type blockingHandler struct {
	served  atomic.Int32
	started chan struct{}
	release chan struct{}
}

func newBlockingHandler() *blockingHandler {
	return &blockingHandler{started: make(chan struct{}), release: make(chan struct{})}
}

func (h *blockingHandler) ServeRequest(ctx context.Context, req ua.ServiceRequest) (ua.ServiceResponse, error) {
	h.served.Add(1)
	if r, ok := req.(*ua.ReadRequest); ok && r.MaxAge == 1 {
		close(h.started)
		<-h.release
	}
	return &ua.ReadResponse{ResponseHeader: ua.ResponseHeader{RequestHandle: req.Header().RequestHandle}}, nil
}

func TestLoopbackTimedOutRequestIsNotServed(t *testing.T) {
	h := newBlockingHandler()
	ch, err := client.NewLoopbackChannel(h, client.WithMaxWorkers(1))
	assert.NilError(t, err)
	defer ch.Close()

	done := make(chan error, 1)
	go func() {
		_, err := ch.Request(context.Background(), &ua.ReadRequest{MaxAge: 1})
		done <- err
	}()
	<-h.started

	// queued behind the blocked request until its deadline passes.
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = ch.Request(ctx, &ua.ReadRequest{MaxAge: 2})
	assert.Equal(t, err, ua.BadRequestTimeout)

	close(h.release)
	assert.NilError(t, <-done)
	_, err = ch.Request(context.Background(), &ua.ReadRequest{MaxAge: 3})
	assert.NilError(t, err)
	assert.Equal(t, h.served.Load(), int32(2))
}

func TestLoopbackCloseWithQueuedRequest(t *testing.T) {
	h := newBlockingHandler()
	ch, err := client.NewLoopbackChannel(h, client.WithMaxWorkers(1))
	assert.NilError(t, err)

	go ch.Request(context.Background(), &ua.ReadRequest{MaxAge: 1})
	<-h.started

	queued := make(chan error, 1)
	go func() {
		_, err := ch.Request(context.Background(), &ua.ReadRequest{MaxAge: 2})
		queued <- err
	}()
	time.Sleep(20 * time.Millisecond)

	closed := make(chan error, 1)
	go func() { closed <- ch.Close() }()
	assert.Equal(t, <-queued, ua.BadSecureChannelClosed)

	close(h.release)
	assert.NilError(t, <-closed)
	assert.Equal(t, h.served.Load(), int32(1))
}
