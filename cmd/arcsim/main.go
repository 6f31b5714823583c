// Command arcsim compares page replacement policies
// by replaying synthetic access patterns through a buffer pool.
package main

import "os"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
