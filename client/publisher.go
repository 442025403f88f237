// Copyright 2021 Converter Systems LLC. All rights reserved.

package client

import (
	"context"
	"sync"

	"github.com/awcullen/uaclient/ua"
	"github.com/gammazero/deque"
	"github.com/pkg/errors"
)

// Publisher sends PublishRequests for a client and acknowledges every
// NotificationMessage it receives with the next request.
type Publisher struct {
	sync.Mutex
	client *Client
	acks   deque.Deque[ua.SubscriptionAcknowledgement]
}

// NewPublisher returns a Publisher that sends requests with the given client.
func NewPublisher(cli *Client) *Publisher {
	return &Publisher{client: cli}
}

// Publish sends a PublishRequest carrying all pending acknowledgements and
// returns the response. If the request fails, the acknowledgements are kept
// for the next call. A NotificationMessage with data is queued for
// acknowledgement; a keep-alive is not.
func (p *Publisher) Publish(ctx context.Context) (*ua.PublishResponse, error) {
	p.Lock()
	acks := make([]ua.SubscriptionAcknowledgement, 0, p.acks.Len())
	for p.acks.Len() > 0 {
		acks = append(acks, p.acks.PopFront())
	}
	p.Unlock()

	res, err := p.client.Publish(ctx, &ua.PublishRequest{SubscriptionAcknowledgements: acks})
	if err != nil {
		p.Lock()
		for i := len(acks) - 1; i >= 0; i-- {
			p.acks.PushFront(acks[i])
		}
		p.Unlock()
		return nil, err
	}

	if len(res.NotificationMessage.NotificationData) > 0 {
		p.Lock()
		p.acks.PushBack(ua.SubscriptionAcknowledgement{
			SubscriptionID: res.SubscriptionID,
			SequenceNumber: res.NotificationMessage.SequenceNumber,
		})
		p.Unlock()
	}
	return res, nil
}

// Run publishes until the context is done or a request fails. Each response
// is passed to fn, in order.
func (p *Publisher) Run(ctx context.Context, fn func(*ua.PublishResponse)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		res, err := p.Publish(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return errors.Wrap(err, "publish")
		}
		fn(res)
	}
}

// Pending returns the acknowledgements that will be sent with the next request.
func (p *Publisher) Pending() []ua.SubscriptionAcknowledgement {
	p.Lock()
	defer p.Unlock()
	acks := make([]ua.SubscriptionAcknowledgement, p.acks.Len())
	for i := range acks {
		acks[i] = p.acks.At(i)
	}
	return acks
}

// Forget drops the pending acknowledgements of a subscription, e.g. after it is deleted.
func (p *Publisher) Forget(subscriptionID uint32) {
	p.Lock()
	defer p.Unlock()
	for n := p.acks.Len(); n > 0; n-- {
		ack := p.acks.PopFront()
		if ack.SubscriptionID != subscriptionID {
			p.acks.PushBack(ack)
		}
	}
}
