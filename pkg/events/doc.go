// Package events provides a minimal in-memory publish/subscribe bus used to
// observe engine lifecycles without coupling the engine to any transport.
//
// The bus is non-blocking: when a subscriber's buffer is full the message is
// dropped for that subscriber rather than stalling the publisher. Subscriber
// lifetimes are tied to a context and cleaned up automatically:
//
//	bus := events.NewBus[string](16)
//	sub := bus.Subscribe(ctx)
//	defer sub.Close()
//
//	go bus.Publish("hello")
//
//	for msg := range sub.C() {
//	    fmt.Println(msg)
//	}
package events
