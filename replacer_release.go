//go:build !arcreplacer_debug

package arcreplacer

const debugging = false

func assert(bool, string) {}
