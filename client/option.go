// Copyright 2021 Converter Systems LLC. All rights reserved.

package client

import (
	"github.com/awcullen/uaclient/ua"
)

// Option is a functional option to be applied to a client during initialization.
type Option func(*Client) error

// WithTimeoutHint sets the default timeout hint of requests, in milliseconds. (default: 15000)
// It is used for requests whose header has a TimeoutHint of 0. A value of 0
// sends such requests with no timeout hint and no deadline.
func WithTimeoutHint(value uint32) Option {
	return func(c *Client) error {
		c.timeoutHint = value
		return nil
	}
}

// WithDiagnosticsHint sets the default diagnostics hint of requests. (default: None)
func WithDiagnosticsHint(value uint32) Option {
	return func(c *Client) error {
		c.diagnosticsHint = value
		return nil
	}
}

// WithAuthenticationToken sets the token of the session that is sent with every request.
func WithAuthenticationToken(value ua.NodeID) Option {
	return func(c *Client) error {
		c.authenticationToken = value
		return nil
	}
}
