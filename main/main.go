package main

import (
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/b64"
)

// Profiling harness: hammer the encode/decode loop with preallocated
// buffers and dump a heap profile to confirm the hot paths stay
// allocation-free.
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

	src := []byte("the quick brown fox jumps over the lazy dog 0123456789")
	enc := make([]byte, b64.EncodedLen(len(src)))
	dec := make([]byte, b64.DecodedLen(len(enc)))
	for i := 0; i < 10000; i++ {
		n, err := b64.Encode(enc, src)
		if err != nil {
			log.Fatal(err)
		}
		if _, err := b64.Decode(dec, enc[:n]); err != nil {
			log.Fatal(err)
		}
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
