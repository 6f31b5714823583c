//go:build arcreplacer_debug

package arcreplacer

const debugging = true

func assert(cond bool, message string) {
	if !cond {
		panic(message)
	}
}
