package media

import (
	"bytes"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"sculpturesly.GO/api"
	"sculpturesly.GO/config"
)

const maxDimension = 2000

func init() {
	api.RegisterRoute(RegisterMediaRoutes)
}

func mediaDir() string {
	return config.GetEnv("MEDIA_DIR", "media")
}

// RegisterMediaRoutes serves on-the-fly resized product imagery. Gallery
// originals live on disk under MEDIA_DIR; resized variants are cached beside
// them and re-encoded as WebP when the client accepts it.
func RegisterMediaRoutes(e *echo.Echo, _ *gorm.DB) {
	e.GET("/media/resize/:width/*", func(c echo.Context) error {
		width, err := strconv.Atoi(c.Param("width"))
		if err != nil || width <= 0 || width > maxDimension {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid width"})
		}

		rel := filepath.Clean("/" + c.Param("*"))
		src := filepath.Join(mediaDir(), rel)
		if !strings.HasPrefix(src, filepath.Clean(mediaDir())+string(os.PathSeparator)) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid path"})
		}

		asWebp := strings.Contains(c.Request().Header.Get("Accept"), "image/webp") ||
			c.QueryParam("format") == "webp"

		cached := cachePath(src, width, asWebp)
		if data, err := os.ReadFile(cached); err == nil {
			return c.Blob(http.StatusOK, contentType(asWebp), data)
		}

		img, err := imaging.Open(src, imaging.AutoOrientation(true))
		if err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "image not found"})
		}
		resized := imaging.Resize(img, width, 0, imaging.Lanczos)

		var buf bytes.Buffer
		if asWebp {
			err = webp.Encode(&buf, resized, &webp.Options{Quality: 82})
		} else {
			err = imaging.Encode(&buf, resized, imaging.JPEG, imaging.JPEGQuality(85))
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}

		// Cache write is best effort; serving the image matters more.
		os.MkdirAll(filepath.Dir(cached), 0o755)
		os.WriteFile(cached, buf.Bytes(), 0o644)

		c.Response().Header().Set("Cache-Control", "public, max-age=86400")
		return c.Blob(http.StatusOK, contentType(asWebp), buf.Bytes())
	})
}

func cachePath(src string, width int, asWebp bool) string {
	ext := ".jpg"
	if asWebp {
		ext = ".webp"
	}
	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	return filepath.Join(mediaDir(), ".cache", strconv.Itoa(width), base+ext)
}

func contentType(asWebp bool) string {
	if asWebp {
		return "image/webp"
	}
	return "image/jpeg"
}
