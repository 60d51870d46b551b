package utils

import (
	"strconv"
	"sync/atomic"
	"time"
)

var lastTxnToken int64

// TxnID generates a transaction id of the form TXN-<millisecond timestamp>.
// When two calls land on the same millisecond the token is bumped past the
// previous one, keeping ids unique and monotonically increasing.
func TxnID() string {
	for {
		last := atomic.LoadInt64(&lastTxnToken)

		token := time.Now().UnixMilli()
		if token <= last {
			token = last + 1
		}

		if atomic.CompareAndSwapInt64(&lastTxnToken, last, token) {
			return "TXN-" + strconv.FormatInt(token, 10)
		}
	}
}
