package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jroosing/easyhosts/internal/config"
	"github.com/jroosing/easyhosts/internal/logging"
	"github.com/jroosing/easyhosts/internal/server"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to YAML configuration file (or set EASYHOSTS_CONFIG)")
		hostsPath  = flag.String("hosts", "", "Override hosts file path")
		dbPath     = flag.String("db", "", "Override state database path")
		host       = flag.String("host", "", "Override API bind host")
		port       = flag.Int("port", 0, "Override API bind port")
		ssid       = flag.Bool("ssid-switch", false, "Enable automatic profile switching by Wi-Fi network")
		jsonLogs   = flag.Bool("json-logs", false, "Enable JSON structured logging")
		debug      = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	cfg, err := config.Load(config.ResolveConfigPath(*configPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *hostsPath != "" {
		cfg.Hosts.Path = *hostsPath
	}
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}
	if *host != "" {
		cfg.API.Host = *host
	}
	if *port != 0 {
		cfg.API.Port = *port
	}
	if *ssid {
		cfg.SSID.AutoSwitch = true
	}
	if *jsonLogs {
		cfg.Logging.Structured = true
		cfg.Logging.StructuredFormat = "json"
	}
	if *debug {
		cfg.Logging.Level = "DEBUG"
	}

	logger := logging.Configure(logging.FromConfig(cfg.Logging))
	logger.Info("EasyHosts starting",
		"api", cfg.API.Enabled,
		"host", cfg.API.Host,
		"port", cfg.API.Port,
		"db", cfg.Database.Path,
		"ssid_switch", cfg.SSID.AutoSwitch,
		"auto_flush_dns", cfg.Hosts.AutoFlushDNS,
	)

	runner := server.NewRunner(logger)
	if err := runner.Run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "server exited with error: %v\n", err)
		os.Exit(1)
	}
}
