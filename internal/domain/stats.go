package domain

// Stats are the admin board counters. Every order lands in exactly one of
// the three buckets, so Pending+InProgress+Completed == Total.
type Stats struct {
	Total      int
	Pending    int
	InProgress int
	Completed  int
}

// CountStatuses recomputes the bucket counters from a full order list.
func CountStatuses(orders []Order) Stats {
	stats := Stats{Total: len(orders)}
	for _, o := range orders {
		switch NormalizeStatus(o.Status) {
		case StatusPickedUp, StatusInProgress:
			stats.InProgress++
		case StatusDone, StatusDelivered:
			stats.Completed++
		default:
			stats.Pending++
		}
	}
	return stats
}
