package cfg

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultIPEchoURL     = "https://api64.ipify.org?format=json"
	DefaultHTTPTimeout   = 15 * time.Second
	DefaultWiFiIface     = "Wi-Fi"
	DefaultEthernetIface = "Ethernet"
)

type Config struct {
	Debug         bool
	IPEchoURL     string
	HTTPTimeout   time.Duration
	SpeedTest     bool
	WiFiIface     string
	EthernetIface string
}

// LoadConfig reads HOSTDIAG_* variables, after loading a .env file from the
// working directory if one exists. Bad values fall back to defaults.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Debug:         envBool("HOSTDIAG_DEBUG", false),
		IPEchoURL:     envString("HOSTDIAG_IP_ECHO_URL", DefaultIPEchoURL),
		HTTPTimeout:   envDuration("HOSTDIAG_HTTP_TIMEOUT", DefaultHTTPTimeout),
		SpeedTest:     envBool("HOSTDIAG_SPEEDTEST", true),
		WiFiIface:     envString("HOSTDIAG_WIFI_IFACE", DefaultWiFiIface),
		EthernetIface: envString("HOSTDIAG_ETHERNET_IFACE", DefaultEthernetIface),
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
