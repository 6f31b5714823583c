package arcreplacer_test

import (
	"fmt"

	arcreplacer "github.com/djdv/go-arcreplacer"
)

func ExampleReplacer() {
	const capacity = 3 // Frames in the pool.
	replacer, err := arcreplacer.New(capacity)
	if err != nil {
		panic(err)
	}
	// Pages 10, 11 and 12 are pinned into frames 0, 1 and 2;
	// page 10 is pinned twice.
	replacer.RecordAccess(0, 10)
	replacer.RecordAccess(1, 11)
	replacer.RecordAccess(2, 12)
	replacer.RecordAccess(0, 10)
	// Everything is unpinned.
	for frame := range arcreplacer.FrameID(capacity) {
		replacer.SetEvictable(frame, true)
	}
	fmt.Println("evictable:", replacer.Size())
	if frame, ok := replacer.Evict(); ok {
		fmt.Println("evicted frame:", frame)
	}
	for page := range replacer.RecentGhosts() {
		fmt.Println("remembered page:", page)
	}
	// Output:
	// evictable: 3
	// evicted frame: 1
	// remembered page: 11
}

func ExampleReplacer_Remove() {
	replacer, err := arcreplacer.New(2)
	if err != nil {
		panic(err)
	}
	replacer.RecordAccess(0, 7)
	replacer.SetEvictable(0, true)
	// Page 7 is deleted; nothing is remembered about it.
	replacer.Remove(0)
	_, ok := replacer.Evict()
	fmt.Printf("victim: %t stats: %+v\n", ok, replacer.Stats())
	// Output:
	// victim: false stats: {Recent:0 Frequent:0 RecentGhost:0 FrequentGhost:0 Evictable:0 Target:0 Capacity:2}
}
