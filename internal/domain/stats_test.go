package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ordersWithStatuses(statuses ...Status) []Order {
	orders := make([]Order, len(statuses))
	for i, s := range statuses {
		orders[i] = Order{ID: uint(i + 1), Status: s}
	}
	return orders
}

func TestCountStatuses_Empty(t *testing.T) {
	assert.Equal(t, Stats{}, CountStatuses(nil))
}

func TestCountStatuses_Buckets(t *testing.T) {
	orders := ordersWithStatuses(
		StatusPending, "", // pending bucket: explicit and absent
		StatusPickedUp, StatusInProgress, // in-progress bucket
		StatusDone, StatusDelivered, // completed bucket
	)

	stats := CountStatuses(orders)
	assert.Equal(t, 6, stats.Total)
	assert.Equal(t, 2, stats.Pending)
	assert.Equal(t, 2, stats.InProgress)
	assert.Equal(t, 2, stats.Completed)
}

func TestCountStatuses_UnknownCountsAsPending(t *testing.T) {
	stats := CountStatuses(ordersWithStatuses("mystery"))
	assert.Equal(t, Stats{Total: 1, Pending: 1}, stats)
}

// The three buckets partition any order list.
func TestCountStatuses_BucketsPartition(t *testing.T) {
	statuses := append([]Status{"", "bogus"}, StatusOrder...)
	var orders []Order
	for i, s := range statuses {
		for j := 0; j <= i; j++ {
			orders = append(orders, Order{Status: s})
		}
	}

	stats := CountStatuses(orders)
	assert.Equal(t, len(orders), stats.Total)
	assert.Equal(t, stats.Total, stats.Pending+stats.InProgress+stats.Completed)
}
