package assert

import "fmt"

// T panics with the formatted message if check is false.
// Use it for programmer errors only, never for conditions caused by input.
func T(check bool, msg string, args ...any) {
	if !check {
		panic("Assert failed: " + fmt.Sprintf(msg, args...))
	}
}
