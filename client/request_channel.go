// Copyright 2021 Converter Systems LLC. All rights reserved.

package client

import (
	"context"

	"github.com/awcullen/uaclient/ua"
)

// RequestChannel sends a service request to the server and returns the response.
// Implementations must be safe for concurrent use.
type RequestChannel interface {
	Request(ctx context.Context, req ua.ServiceRequest) (ua.ServiceResponse, error)
}
