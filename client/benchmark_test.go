// Copyright 2021 Converter Systems LLC. All rights reserved.

package client_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/awcullen/uaclient/client"
	"github.com/awcullen/uaclient/ua"
)

func BenchmarkRead(b *testing.B) {
	ch, err := client.NewLoopbackChannel(newTestServer())
	if err != nil {
		b.Fatal(err)
	}
	defer ch.Close()
	cli, err := client.New(ch)
	if err != nil {
		b.Fatal(err)
	}
	benchmarks := []struct {
		name     string
		tagcount int
	}{
		{"50 tags", 50},
		{"100 tags", 100},
		{"500 tags", 500},
		{"1000 tags", 1000},
	}
	for _, bm := range benchmarks {
		b.Run(bm.name, func(b *testing.B) {
			// prep taglist
			nodesToRead := make([]ua.ReadValueID, bm.tagcount)
			for index := 0; index < bm.tagcount; index++ {
				nodesToRead[index] = ua.ReadValueID{
					AttributeID: ua.AttributeIDValue,
					NodeID:      [...]ua.NodeID{nodeTemperature, nodeHeader, nodeAcks}[index%3],
				}
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				req := &ua.ReadRequest{NodesToRead: nodesToRead}
				res, err := cli.Read(context.Background(), req)
				if err != nil {
					b.Fatal("Error reading. " + err.Error())
				}
				for _, z := range res.Results {
					if z.StatusCode().IsBad() {
						b.Fatal(fmt.Sprintf("Error reading value. %s", z.StatusCode().Error()))
					}
				}
			}
		})
	}
}
