package logger

import (
	"os"
	"sync"
)

var (
	hostInstance string
	hostOnce     sync.Once
)

func Hostname() string {
	hostOnce.Do(func() {
		h, err := os.Hostname()
		if err != nil {
			hostInstance = "unknown"
		} else {
			hostInstance = h
		}
	})

	return hostInstance
}
