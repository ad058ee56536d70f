// Package carousel is a kinetic, infinitely wrapping card carousel.
//
// # Overview
//
// A Carousel lays a list of items out along a horizontal track, one card per
// slot, and lets the user fling the track with pointer drags and wheel
// steps. The rendered position eases towards the gesture target every frame
// and settles on the nearest card once input stops. The track can be bent
// into a cylindrical arc, and it never ends: the item list is doubled and
// slots that leave one side are moved a full lap to the other.
//
// # Quick Start
//
//	h := headless.New(1600, 900)
//	loop := frame.NewLoop(60, nil)
//	c, err := carousel.New(h, loop,
//	    carousel.WithItems(items),
//	    carousel.WithBend(3),
//	    carousel.WithOnSelect(func(i int) { fmt.Println("selected", items[i].Label) }),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer c.Destroy()
//	loop.Run(ctx)
//
// # Architecture
//
//   - Carousel: scroll state, gestures, snapping, the frame loop, lifecycle
//   - TrackItem: one slot; position, bend and wraparound
//   - CardSurface: the card artwork mesh a TrackItem carries
//   - package texture: renders an item into card artwork
//   - package scene, shader, render: what is drawn and how
//   - package host, frame: where frames go and when they run
//
// # Threading
//
// Everything a Carousel does runs on its scheduler's thread: frame
// callbacks, the snap timer and input handling. When the scheduler
// implements frame.Poster, input arriving on other goroutines is posted to
// it. Background photos load on their own goroutines and are published
// atomically.
package carousel
