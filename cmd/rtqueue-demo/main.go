// Command rtqueue-demo exercises rtqueue.Queue with a configurable number
// of producers and consumers, reporting throughput and any timeouts.
package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"code.hybscloud.com/atomix"
	"github.com/alecthomas/kong"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"rtqueue"
)

// message is the value type carried through the demo queue: a producer
// tag plus a per-producer sequence number, enough to check per-producer
// FIFO ordering end to end.
type message struct {
	producer uuid.UUID
	seq      int
}

type cli struct {
	Capacity    int           `help:"Ring buffer capacity." default:"64"`
	Producers   int           `help:"Number of concurrent producer goroutines." default:"4"`
	Consumers   int           `help:"Number of concurrent consumer goroutines." default:"4"`
	PerProducer int           `help:"Messages pushed by each producer." default:"1000"`
	PushTimeout time.Duration `help:"Per-push timeout before giving up." default:"1s"`
}

func main() {
	var c cli
	kong.Parse(&c,
		kong.Name("rtqueue-demo"),
		kong.Description("Drives a bounded blocking queue with concurrent producers and consumers."),
	)

	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stdout))
	logger = level.NewFilter(logger, level.AllowInfo())
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)

	reg := prometheus.NewRegistry()
	q := rtqueue.New[message](c.Capacity,
		rtqueue.WithLogger(logger),
		rtqueue.WithMetrics(reg, "rtqueue_demo"),
	)

	level.Info(logger).Log("msg", "starting", "capacity", c.Capacity, "producers", c.Producers, "consumers", c.Consumers)

	total := c.Producers * c.PerProducer

	var produced, consumed atomix.Int64
	var wgProducers, wgConsumers sync.WaitGroup

	seen := make(chan message, total)

	wgProducers.Add(c.Producers)
	for p := 0; p < c.Producers; p++ {
		go func(id uuid.UUID) {
			defer wgProducers.Done()
			for seq := 0; seq < c.PerProducer; seq++ {
				m := message{producer: id, seq: seq}
				if err := q.PushTimeout(m, c.PushTimeout); err != nil {
					level.Error(logger).Log("msg", "push failed", "producer", id, "seq", seq, "err", err)
					return
				}
				produced.AddAcqRel(1)
			}
		}(uuid.New())
	}

	wgConsumers.Add(c.Consumers)
	for i := 0; i < c.Consumers; i++ {
		go func() {
			defer wgConsumers.Done()
			for {
				m, err := q.PopTimeout(c.PushTimeout)
				if err != nil {
					if rtqueue.IsTimedOut(err) {
						return
					}
					level.Error(logger).Log("msg", "pop failed", "err", err)
					return
				}
				consumed.AddAcqRel(1)
				seen <- m
			}
		}()
	}

	wgProducers.Wait()
	wgConsumers.Wait()
	close(seen)

	lastSeq := make(map[uuid.UUID]int)
	violations := 0
	for m := range seen {
		if last, ok := lastSeq[m.producer]; ok && m.seq <= last {
			violations++
		}
		lastSeq[m.producer] = m.seq
	}

	level.Info(logger).Log(
		"msg", "done",
		"produced", produced.LoadAcquire(),
		"consumed", consumed.LoadAcquire(),
		"remaining", q.Len(),
		"order_violations", violations,
	)
	fmt.Printf("produced=%d consumed=%d remaining=%d order_violations=%d\n",
		produced.LoadAcquire(), consumed.LoadAcquire(), q.Len(), violations)
}
