// Package broadcast provides type-safe one-to-many value fan-out with
// automatic subscriber cleanup.
//
// Generics keep the published values strongly typed end to end:
//
//	b := broadcast.NewMemoryBroadcaster[string](16)
//	defer b.Close()
//
//	sub := b.Subscribe(ctx)
//	defer sub.Close()
//
//	_ = b.Publish(ctx, "hello")
//	for v := range sub.Receive() {
//		fmt.Println(v)
//	}
//
// Publishers never block: when a subscriber's buffer is full the value is
// dropped for that subscriber and the subscriber is removed. Subscriptions
// are also cleaned up when their context is cancelled or when the
// broadcaster closes.
package broadcast
