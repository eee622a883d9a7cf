package terminal

import "golang.org/x/sys/unix"

// Bytes waiting in the input queue
const fionread = unix.TIOCINQ
