// Copyright 2021 Converter Systems LLC. All rights reserved.

package client_test

import (
	"context"
	"fmt"

	"github.com/awcullen/uaclient/client"
	"github.com/awcullen/uaclient/ua"
)

// This example demonstrates creating a subscription and receiving data changes.
func ExampleClient_CreateSubscription() {

	ctx := context.Background()

	// serve requests in process from the test server.
	ch, err := client.NewLoopbackChannel(newTestServer())
	if err != nil {
		fmt.Printf("Error opening channel. %s\n", err.Error())
		return
	}
	defer ch.Close()

	cli, err := client.New(ch)
	if err != nil {
		fmt.Printf("Error creating client. %s\n", err.Error())
		return
	}

	// prepare create subscription request
	req := &ua.CreateSubscriptionRequest{
		RequestedPublishingInterval: 1000.0,
		RequestedMaxKeepAliveCount:  30,
		RequestedLifetimeCount:      30 * 3,
		PublishingEnabled:           true,
	}

	// send request to server. receive response or error
	res, err := cli.CreateSubscription(ctx, req)
	if err != nil {
		fmt.Printf("Error creating subscription. %s\n", err.Error())
		return
	}

	// the publisher acknowledges each message with the next request.
	pub := client.NewPublisher(cli)
	for i := 0; i < 3; i++ {
		res2, err := pub.Publish(ctx)
		if err != nil {
			fmt.Printf("Error publishing. %s\n", err.Error())
			return
		}
		for _, data := range res2.NotificationMessage.NotificationData {
			body, _ := data.Encodable()
			switch body := body.(type) {
			case *ua.DataChangeNotification:
				for _, z := range body.MonitoredItems {
					fmt.Printf("sequence: %d, handle: %d, value: %v\n", res2.NotificationMessage.SequenceNumber, z.ClientHandle, z.Value.Value())
				}
			}
		}
	}

	// delete subscription
	_, err = cli.DeleteSubscriptions(ctx, &ua.DeleteSubscriptionsRequest{SubscriptionIDs: []uint32{res.SubscriptionID}})
	if err != nil {
		fmt.Printf("Error deleting subscription. %s\n", err.Error())
		return
	}
	pub.Forget(res.SubscriptionID)

	// Output:
	// sequence: 1, handle: 42, value: 1
	// sequence: 2, handle: 42, value: 2
	// sequence: 3, handle: 42, value: 3
}
