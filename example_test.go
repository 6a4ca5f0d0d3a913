package mpsc_test

import (
	"fmt"

	"github.com/baxromumarov/mpsc"
)

func ExampleNew() {
	tx, rx := mpsc.New[string](2)

	_ = tx.TrySend("hello")
	_ = tx.TrySend("world")
	tx.Close()

	for {
		v, ok, _ := rx.Poll(mpsc.NoopWaker)
		if !ok {
			break
		}
		fmt.Println(v)
	}
	// Output:
	// hello
	// world
}

func ExampleSender_PollReady() {
	tx, rx := mpsc.New[int](1)
	defer tx.Close()

	woken := false
	waker := mpsc.WakerFunc(func() { woken = true })

	p, _ := tx.PollReady(waker)
	fmt.Println("first reserve:", p)
	_ = tx.StartSend(1)

	p, _ = tx.PollReady(waker)
	fmt.Println("second reserve:", p)

	v, _, _ := rx.Poll(mpsc.NoopWaker)
	fmt.Println("received:", v, "woken:", woken)

	p, _ = tx.PollReady(waker)
	fmt.Println("third reserve:", p)
	// Output:
	// first reserve: Ready
	// second reserve: Pending
	// received: 1 woken: true
	// third reserve: Ready
}

func ExampleSender_TrySend() {
	tx, rx := mpsc.New[string](1)
	defer rx.Close()
	defer tx.Close()

	fmt.Println(tx.TrySend("hello"))

	err := tx.TrySend("fail")
	v, _ := mpsc.ValueOf[string](err)
	fmt.Println(mpsc.IsFull(err), v)
	// Output:
	// <nil>
	// true fail
}

func ExampleReceiver_Close() {
	tx, rx := mpsc.New[int](4)
	defer tx.Close()

	_ = tx.TrySend(1)
	_ = tx.TrySend(2)
	rx.Close()

	fmt.Println("send after close:", tx.TrySend(3))
	for {
		v, ok, _ := rx.Poll(mpsc.NoopWaker)
		if !ok {
			break
		}
		fmt.Println("drained:", v)
	}
	// Output:
	// send after close: send failed: mpsc: channel is closed
	// drained: 1
	// drained: 2
}
