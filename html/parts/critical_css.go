package parts

import (
	"log"
	"os"
	"sync"
)

var (
	cssOnce   sync.Once
	cachedCSS string
)

// GetCriticalCSS reads the critical CSS file and returns it as a string.
func GetCriticalCSS() (string, error) {
	css, err := os.ReadFile("assets/critical.min.css")
	if err != nil {
		log.Println("Critical CSS error:", err)
		return "", err
	}
	return string(css), nil
}

// GetCriticalCSSCached reads the file once per process. A missing file yields
// an empty string, pages render unstyled rather than failing.
func GetCriticalCSSCached() string {
	cssOnce.Do(func() {
		cachedCSS, _ = GetCriticalCSS()
	})
	return cachedCSS
}
