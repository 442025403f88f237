// Copyright 2021 Converter Systems LLC. All rights reserved.

package client

import (
	"context"

	"github.com/awcullen/uaclient/ua"
	"github.com/pkg/errors"
)

// Read returns values of Attributes of one or more Nodes.
// See https://reference.opcfoundation.org/v104/Core/docs/Part4/5.10.2/
func (ch *Client) Read(ctx context.Context, request *ua.ReadRequest) (*ua.ReadResponse, error) {
	if request == nil {
		return nil, errors.Wrap(ua.BadInvalidArgument, "Read: request is nil")
	}
	return invoke[*ua.ReadResponse](ctx, ch, request)
}

// CreateSubscription creates a Subscription.
// See https://reference.opcfoundation.org/v104/Core/docs/Part4/5.13.2/
func (ch *Client) CreateSubscription(ctx context.Context, request *ua.CreateSubscriptionRequest) (*ua.CreateSubscriptionResponse, error) {
	if request == nil {
		return nil, errors.Wrap(ua.BadInvalidArgument, "CreateSubscription: request is nil")
	}
	return invoke[*ua.CreateSubscriptionResponse](ctx, ch, request)
}

// ModifySubscription modifies a Subscription.
// See https://reference.opcfoundation.org/v104/Core/docs/Part4/5.13.3/
func (ch *Client) ModifySubscription(ctx context.Context, request *ua.ModifySubscriptionRequest) (*ua.ModifySubscriptionResponse, error) {
	if request == nil {
		return nil, errors.Wrap(ua.BadInvalidArgument, "ModifySubscription: request is nil")
	}
	return invoke[*ua.ModifySubscriptionResponse](ctx, ch, request)
}

// SetPublishingMode enables sending of Notifications on one or more Subscriptions.
// See https://reference.opcfoundation.org/v104/Core/docs/Part4/5.13.4/
func (ch *Client) SetPublishingMode(ctx context.Context, request *ua.SetPublishingModeRequest) (*ua.SetPublishingModeResponse, error) {
	if request == nil {
		return nil, errors.Wrap(ua.BadInvalidArgument, "SetPublishingMode: request is nil")
	}
	return invoke[*ua.SetPublishingModeResponse](ctx, ch, request)
}

// Publish requests the Server to return a NotificationMessage or a keep-alive Message.
// See https://reference.opcfoundation.org/v104/Core/docs/Part4/5.13.5/
func (ch *Client) Publish(ctx context.Context, request *ua.PublishRequest) (*ua.PublishResponse, error) {
	if request == nil {
		return nil, errors.Wrap(ua.BadInvalidArgument, "Publish: request is nil")
	}
	return invoke[*ua.PublishResponse](ctx, ch, request)
}

// Republish requests the Server to republish a NotificationMessage from its retransmission queue.
// See https://reference.opcfoundation.org/v104/Core/docs/Part4/5.13.6/
func (ch *Client) Republish(ctx context.Context, request *ua.RepublishRequest) (*ua.RepublishResponse, error) {
	if request == nil {
		return nil, errors.Wrap(ua.BadInvalidArgument, "Republish: request is nil")
	}
	return invoke[*ua.RepublishResponse](ctx, ch, request)
}

// TransferSubscriptions transfers a Subscription and its MonitoredItems from one Session to another.
// See https://reference.opcfoundation.org/v104/Core/docs/Part4/5.13.7/
func (ch *Client) TransferSubscriptions(ctx context.Context, request *ua.TransferSubscriptionsRequest) (*ua.TransferSubscriptionsResponse, error) {
	if request == nil {
		return nil, errors.Wrap(ua.BadInvalidArgument, "TransferSubscriptions: request is nil")
	}
	return invoke[*ua.TransferSubscriptionsResponse](ctx, ch, request)
}

// DeleteSubscriptions deletes one or more Subscriptions.
// See https://reference.opcfoundation.org/v104/Core/docs/Part4/5.13.8/
func (ch *Client) DeleteSubscriptions(ctx context.Context, request *ua.DeleteSubscriptionsRequest) (*ua.DeleteSubscriptionsResponse, error) {
	if request == nil {
		return nil, errors.Wrap(ua.BadInvalidArgument, "DeleteSubscriptions: request is nil")
	}
	return invoke[*ua.DeleteSubscriptionsResponse](ctx, ch, request)
}

// invoke sends the request and asserts the type of the response.
func invoke[T ua.ServiceResponse](ctx context.Context, ch *Client, request ua.ServiceRequest) (T, error) {
	var zero T
	response, err := ch.request(ctx, request)
	if err != nil {
		return zero, err
	}
	res, ok := response.(T)
	if !ok {
		return zero, errors.Wrapf(ua.BadUnknownResponse, "expected %T, received %T", zero, response)
	}
	return res, nil
}
