package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"git.fiblab.net/sim/transitpath/metrics"
	"git.fiblab.net/sim/transitpath/raptor/path"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	easy "github.com/t-tomalak/logrus-easy-formatter"
)

var (
	// 配置信息
	configPath   = flag.String("config", "", "yaml config file, defaults to $TRANSITPATH_CONFIG (empty means built-in defaults)")
	logLevel     = flag.String("log-level", "info", "log level [debug, info, warn, error, fatal, panic]")
	seed         = flag.Int64("seed", 0, "the seed of the synthetic arrival chains")
	destinations = flag.Int("destinations", 20, "the destination arrivals per search window")
	interval     = flag.Duration("interval", 0, "repeat the search at this interval until stopped (0 means search once)")

	// 性能测试
	benchmark = flag.Bool("benchmark", false, "benchmark mode")
	pprofAddr = flag.String("pprof", "localhost:52102", "pprof and metrics listening address")

	LOG_LEVELS = map[string]logrus.Level{
		"debug": logrus.DebugLevel,
		"info":  logrus.InfoLevel,
		"warn":  logrus.WarnLevel,
		"error": logrus.ErrorLevel,
		"fatal": logrus.FatalLevel,
		"panic": logrus.PanicLevel,
	}
)

func main() {
	logrus.SetFormatter(&easy.Formatter{
		TimestampFormat: "2006-01-02 15:04:05.0000",
		LogFormat:       "[%module%] [%time%] [%lvl%] %msg%\n",
	})
	// .env不存在时忽略
	_ = godotenv.Load()
	flag.Parse()
	if level, ok := LOG_LEVELS[*logLevel]; ok {
		logrus.SetLevel(level)
	} else {
		logrus.Fatalf("invalid log level: %s", *logLevel)
	}

	cfg, err := loadConfigFromFlags()
	if err != nil {
		logrus.Fatalf("invalid config: %s", err)
	}
	collector := metrics.NewCollector()
	engine, err := NewEngine(cfg, nil, collector)
	if err != nil {
		logrus.Fatalf("failed to create engine: %s", err)
	}

	if *pprofAddr != "" {
		// 启动pprof
		startHTTPDebugger(*pprofAddr, collector)
	}

	// 优雅退出
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if *benchmark {
		// 性能测试
		runBenchmark(ctx, engine, cfg)
		return
	}

	synthetic := NewSynthetic(*seed, &cfg.Slack)
	for {
		windows := synthetic.Windows(cfg.IterationDepartureTimes(), *destinations, cfg.Search.ReverseSearch)
		paths, err := engine.Search(ctx, windows)
		if err != nil {
			log.Infof("search stopped: %v", err)
			break
		}
		printPaths(paths)
		if *interval <= 0 {
			break
		}
		select {
		case <-ctx.Done():
			log.Info("stopping...")
			return
		case <-time.After(*interval):
		}
	}
	log.Info("transitpath closes")
}

func loadConfigFromFlags() (*Config, error) {
	file := *configPath
	if file == "" {
		file = os.Getenv("TRANSITPATH_CONFIG")
	}
	if file == "" {
		return DefaultConfig(), nil
	}
	log.Infof("load config from %s", file)
	return LoadConfig(file)
}

func stopName(stop int) string {
	return fmt.Sprintf("S%d", stop)
}

func printPaths(paths []*path.Path) {
	log.Infof("%d pareto optimal paths", len(paths))
	for _, p := range paths {
		fmt.Println(p.Detailed(stopName))
	}
}
