package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/status"

	"bindec.io/bindec/grpcparse"
	"bindec.io/bindec/parser"
	"bindec.io/bindec/parserreg"

	_ "bindec.io/bindec/parsers/tokenledger"
)

func main() {
	fs := flag.NewFlagSet("bindec-grpcd", flag.ExitOnError)
	listen := fs.String("listen", "", "listen address (overrides config)")
	configPath := fs.String("config", "", "TOML config file")
	listParsers := fs.Bool("list-parsers", false, "List available parsers and exit")
	_ = fs.Parse(os.Args[1:])

	if *listParsers {
		for _, entry := range parserreg.Describe(parserreg.UsageDaemon) {
			if entry[1] == "" {
				fmt.Fprintf(os.Stdout, "%s\n", entry[0])
				continue
			}
			fmt.Fprintf(os.Stdout, "%s\t%s\n", entry[0], entry[1])
		}
		return
	}

	cfg := defaultServerConfig()
	if *configPath != "" {
		var err error
		cfg, err = loadServerConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}
	if *listen != "" {
		cfg.Listen = *listen
	}

	logger := newLogger(cfg.LogLevel)

	parsers, err := openParsers(cfg.Parsers)
	if err != nil {
		logger.Fatal().Err(err).Msg("loading parsers")
	}
	for name, p := range parsers {
		logger.Info().Str("parser", name).Str("source", p.Source()).
			Strs("recordTypes", p.RecordTypes()).Msg("parser loaded")
	}

	lis, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		logger.Fatal().Err(err).Str("listen", cfg.Listen).Msg("listen failed")
	}
	defer lis.Close()

	s := grpc.NewServer(grpc.UnaryInterceptor(loggingInterceptor(logger)))
	grpcparse.RegisterParserServer(s, &grpcparse.Server{Parsers: parsers})

	logger.Info().Str("listen", lis.Addr().String()).Int("parsers", len(parsers)).Msg("bindec-grpcd listening")
	if err := s.Serve(lis); err != nil {
		logger.Fatal().Err(err).Msg("serve failed")
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).Level(lvl).With().Timestamp().Str("app", "bindec-grpcd").Logger()
}

func openParsers(enabled []string) (map[string]*parser.Parser, error) {
	if len(enabled) == 0 {
		return parserreg.OpenAll(parserreg.UsageDaemon)
	}
	out := map[string]*parser.Parser{}
	for _, name := range enabled {
		p, err := parserreg.Open(name, parserreg.UsageDaemon)
		if err != nil {
			return nil, err
		}
		out[name] = p
	}
	return out, nil
}

func loggingInterceptor(logger zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		start := time.Now()
		resp, err := handler(ctx, req)
		evt := logger.Info()
		if err != nil {
			evt = logger.Warn().Str("code", status.Code(err).String())
		}
		evt.Str("method", info.FullMethod).Dur("took", time.Since(start)).Msg("rpc")
		return resp, err
	}
}
