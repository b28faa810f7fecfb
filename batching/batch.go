package batching

// Batch is a set of elements flushed from the queue in one go.
type Batch[T any] struct {
	// ID uniquely identifies the batch.
	ID string
	// Items are the elements in enqueueing order.
	Items []T
	// Partial states whether the batch was released by the flush timeout before the minimum batch size was reached.
	Partial bool
	// Consumer is the index of the consumer which pulled the batch (DrainConsumer for the final batch of Drain).
	Consumer int
}

// Len returns the number of elements in the batch.
func (b *Batch[T]) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Items)
}
