// Command foreachprof drives the foreach algorithms in a hot loop so heap
// and CPU profiles can be collected over pprof.
package main

import (
	"log"
	"log/slog"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/rawbytedev/foreach"
	"github.com/rawbytedev/foreach/pkg/varstream"
)

func main() {
	go func() {
		log.Println(http.ListenAndServe("localhost:6060", nil))
	}()
	foreach.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	f, err := os.Create("mem.prof")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()
	runtime.MemProfileRate = 1

	coords := make([]uint64, 4096)
	for i := range coords {
		coords[i] = uint64(i * 3)
	}
	frame, err := varstream.Encode(foreach.Of(coords), varstream.Options{})
	if err != nil {
		log.Fatal(err)
	}
	stream, err := varstream.Decode(frame)
	if err != nil {
		log.Fatal(err)
	}
	dst := make([]uint64, len(coords))
	for i := 0; i < 10000; i++ {
		v, _ := foreach.OfRange(coords, 64, 1024)
		c := v.Cursor()
		for c.Next() {
			_ = c.Current()
		}
		_ = c.Close()
		_ = foreach.CopyTo(foreach.Of(coords), dst)
		if i%100 == 0 {
			if _, err := foreach.Zip(foreach.OfSequence[uint64](stream), v, v.Len()); err != nil {
				log.Fatal(err)
			}
		}
	}
	pprof.WriteHeapProfile(f)
	time.Sleep(5 * time.Minute)
}
