package main

import (
	"context"
	"flag"
	"runtime"
	"sync"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

var (
	benchmarkCount = flag.Int("benchmark.count", 1000, "the random search count for benchmark")
	benchmarkCPU   = flag.Int("benchmark.cpu", 1, "the cpu count for benchmark")
)

type benchmarkResult struct {
	count   int
	success int64
	paths   int64
	time    time.Duration
}

func runBenchmark(ctx context.Context, engine *Engine, cfg *Config) benchmarkResult {
	log.Logger.SetLevel(logrus.WarnLevel)
	// 预先生成benchmarkCount次搜索的到站链，每次搜索的窗口和到站都是随机的
	synthetic := NewSynthetic(*seed, &cfg.Slack)
	departures := cfg.IterationDepartureTimes()
	reqs := lo.Times(*benchmarkCount, func(int) []Window {
		return synthetic.Windows(departures, *destinations, cfg.Search.ReverseSearch)
	})

	// 开始benchmark
	start := time.Now()
	success := xsync.NewCounter()
	paths := xsync.NewCounter()
	search := func(windows []Window) {
		res, err := engine.Search(ctx, windows)
		if err != nil {
			log.Error("benchmark failed, err:", err)
			return
		}
		if len(res) > 0 {
			success.Inc()
			paths.Add(int64(len(res)))
		}
	}
	if *benchmarkCPU == 1 {
		for _, windows := range reqs {
			search(windows)
		}
	} else {
		// 设置cpu数量
		runtime.GOMAXPROCS(*benchmarkCPU)
		var wg sync.WaitGroup
		wg.Add(len(reqs))
		for _, windows := range reqs {
			go func(windows []Window) {
				defer wg.Done()
				search(windows)
				log.Info("benchmark finished one")
			}(windows)
		}
		wg.Wait()
	}
	result := benchmarkResult{
		count:   len(reqs),
		success: success.Value(),
		paths:   paths.Value(),
		time:    time.Since(start) * time.Duration(*benchmarkCPU),
	}
	avg := time.Duration(0)
	if result.count > 0 {
		avg = result.time / time.Duration(result.count)
	}
	log.Error(
		"benchmark finished", "\n",
		"count:", result.count, "\n",
		"time:", result.time, "\n",
		"avg:", avg, "\n",
		"success:", result.success, "\n",
		"paths:", result.paths, "\n",
	)
	return result
}
