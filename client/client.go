// Copyright 2021 Converter Systems LLC. All rights reserved.

package client

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/awcullen/uaclient/ua"
	"github.com/pkg/errors"
)

const (
	defaultTimeoutHint     uint32 = 15000 // 15 seconds
	defaultDiagnosticsHint uint32 = 0
)

// Client exchanges service requests and responses with an OPC UA server over a RequestChannel.
type Client struct {
	channel             RequestChannel
	authenticationToken ua.NodeID
	timeoutHint         uint32
	diagnosticsHint     uint32
	requestHandle       uint32
}

// New returns a Client that sends requests over the given channel.
func New(ch RequestChannel, opts ...Option) (*Client, error) {
	if ch == nil {
		return nil, errors.Wrap(ua.BadInvalidArgument, "request channel is nil")
	}
	cli := &Client{
		channel:         ch,
		timeoutHint:     defaultTimeoutHint,
		diagnosticsHint: defaultDiagnosticsHint,
	}
	// apply each option to the default
	for _, opt := range opts {
		if err := opt(cli); err != nil {
			return nil, err
		}
	}
	return cli, nil
}

// request fills in the request header, sends the request and checks the service result.
// A TimeoutHint of 0 in the header means the client default. The resulting
// hint, if not 0, becomes the deadline of ctx.
func (ch *Client) request(ctx context.Context, req ua.ServiceRequest) (ua.ServiceResponse, error) {
	header := req.Header()
	header.Timestamp = time.Now()
	header.RequestHandle = atomic.AddUint32(&ch.requestHandle, 1)
	header.AuthenticationToken = ch.authenticationToken
	if header.TimeoutHint == 0 {
		header.TimeoutHint = ch.timeoutHint
	}
	if header.ReturnDiagnostics == 0 {
		header.ReturnDiagnostics = ch.diagnosticsHint
	}
	if header.TimeoutHint > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithDeadline(ctx, header.Timestamp.Add(time.Duration(header.TimeoutHint)*time.Millisecond))
		defer cancel()
	}
	res, err := ch.channel.Request(ctx, req)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, ua.BadUnknownResponse
	}
	if sr := res.Header().ServiceResult; sr != ua.Good {
		return nil, sr
	}
	return res, nil
}
