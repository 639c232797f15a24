package main

import (
	"net/http"
	"net/http/pprof"

	"git.fiblab.net/sim/transitpath/metrics"
)

// 访问/debug/pprof/进入pprof实时分析页面，/metrics为prometheus指标
func startHTTPDebugger(addr string, collector *metrics.Collector) *http.Server {
	pprofHandler := http.NewServeMux()
	pprofHandler.Handle("/debug/pprof/", http.HandlerFunc(pprof.Index))
	pprofHandler.Handle("/debug/pprof/profile", http.HandlerFunc(pprof.Profile))
	pprofHandler.Handle("/metrics", collector.Handler())
	server := &http.Server{Addr: addr, Handler: pprofHandler}
	go server.ListenAndServe()
	return server
}
