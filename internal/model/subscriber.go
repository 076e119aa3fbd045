package model

import (
	"strconv"
	"sync/atomic"
	"time"
)

type Subscriber struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

// SubscriberEntry is the listing projection. The id doubles as the
// unsubscribe token and is only exposed inside outbound email.
type SubscriberEntry struct {
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

var NilSubscriber = Subscriber{}

var lastID atomic.Int64

// NewID mirrors the ids the platform has always used: the current Unix
// time in milliseconds, as a decimal string. Calls landing on the same
// millisecond are bumped forward so ids stay unique within the process.
func NewID() string {
	for {
		now := time.Now().UnixMilli()
		last := lastID.Load()
		if now <= last {
			now = last + 1
		}
		if lastID.CompareAndSwap(last, now) {
			return strconv.FormatInt(now, 10)
		}
	}
}
