package config

import (
	"os"
	"sync"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName  string
	Port     string
	Env      string
	Debug    bool
	SiteName string
	SiteURL  string
	MediaUrl string
	// Backend commerce API bases. APIInternal is the server-side address,
	// APIPublic is the base exposed to the browser (same origin, no CORS).
	APIInternal    string
	APIPublic      string
	HostNameHeader string
	Currency       string
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		AppConfig = &Config{
			AppName:        GetEnv("APP_NAME", "sculpturesly"),
			Port:           os.Getenv("PORT"),
			Env:            os.Getenv("APP_ENV"),
			Debug:          os.Getenv("DEBUG") == "true",
			SiteName:       GetEnv("SITE_NAME", "Sculpturesly"),
			SiteURL:        GetEnv("SITE_URL", "https://sculpturesly.com"),
			MediaUrl:       GetEnv("MEDIA_URL", "https://sculpturesly.com/media/"),
			APIInternal:    os.Getenv("API_INTERNAL"),
			APIPublic:      os.Getenv("API_PUBLIC"),
			HostNameHeader: os.Getenv("HOSTNAME_HEADER"),
			Currency:       GetEnv("CURRENCY", "EUR"),
		}
	})
}

// IsDev reports whether the app runs in a development environment.
func IsDev() bool {
	if AppConfig == nil {
		return false
	}
	return AppConfig.Debug || AppConfig.Env == "dev" || AppConfig.Env == "development"
}
