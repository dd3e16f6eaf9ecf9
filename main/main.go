package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/selectlist"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1
	before := make([]int, 4096)
	after := make([]int, 4096)
	for i := range before {
		before[i] = i
	}
	for i := range after {
		after[i] = len(before) + 1 + i
	}
	l := selectlist.FromLists(before, len(before), after)
	target := l.Len() - 1
	for i := 0; i < 10000; i++ {
		moved := l.Select(func(x int) bool { return x == target })
		_ = selectlist.MapBy(func(sel bool, x int) int {
			if sel {
				return -x
			}
			return x
		}, moved)
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
