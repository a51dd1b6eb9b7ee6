package tool

import "flag"

// Config holds runtime overrides from CLI flags.
type Config struct {
	Log            string
	UsePort        int
	UseBackendURL  string
	UseConfigPath  string
	UsePageURL     string // public URL the QR code points at, defaults to the listen address
	SkipReachCheck bool   // disable the ICMP reachability probe on transport failures
}

// SetFlags parses CLI flags and returns the override config.
func SetFlags() Config {
	var cfg Config
	flag.StringVar(&cfg.Log, "log", "", "log mode: dev|prod|none")
	flag.IntVar(&cfg.UsePort, "usePort", 0, "override listen port for the client API")
	flag.StringVar(&cfg.UseBackendURL, "useBackendURL", "", "override translation backend base URL")
	flag.StringVar(&cfg.UseConfigPath, "useConfigPath", "", "override settings file path")
	flag.StringVar(&cfg.UsePageURL, "usePageURL", "", "override the page URL encoded into the QR code")
	flag.BoolVar(&cfg.SkipReachCheck, "skipReachCheck", false, "do not ping the backend host when a request fails")
	flag.Parse()
	return cfg
}
