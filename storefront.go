//go:build !cli
// +build !cli

package main

import (
	"log"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"sculpturesly.GO/api"
	_ "sculpturesly.GO/api/cart"
	_ "sculpturesly.GO/api/catalog"
	_ "sculpturesly.GO/api/facebook"
	_ "sculpturesly.GO/api/media"
	_ "sculpturesly.GO/api/order"
	"sculpturesly.GO/config"
	_ "sculpturesly.GO/custom"
	_ "sculpturesly.GO/graphqlserver"
	"sculpturesly.GO/html"
	cartRepo "sculpturesly.GO/model/repository/cart"
)

func main() {
	config.LoadEnv()
	config.LoadAppConfig()

	// Initialize Redis
	config.InitRedis()
	redisStatus := "Redis not configured or not reachable, caching disabled."
	if config.RedisClient != nil {
		err := config.RedisClient.Ping(config.RedisCtx()).Err()
		if err == nil {
			redisStatus = "Redis connection successful."
		} else {
			config.RedisClient = nil // Disable Redis if not reachable
			redisStatus = "Redis configured but not reachable, caching disabled."
		}
	}
	log.Println(redisStatus)

	db, err := config.NewDB()
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	if err := cartRepo.NewCartRepository(db).AutoMigrate(); err != nil {
		log.Fatalf("failed to migrate local cart store: %v", err)
	}
	log.Println("Local cart store ready.")

	e := echo.New()
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.Gzip())
	e.Use(middleware.Decompress())

	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			duration := time.Since(start).Milliseconds()
			c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(duration, 10))
			return err
		}
	})

	e.Renderer = html.NewRenderer()

	apiGroup := e.Group("/api")
	api.ApplyModules(apiGroup, db)
	api.ApplyRoutes(e, db)

	// ASCII banner on start (random font each run)
	fonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "thick", "doom", "larry3d", "puffy", "rectangles"}
	fig := figure.NewFigure("Sculpturesly", fonts[rand.Intn(len(fonts))], true)
	fig.Print()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Storefront running on :%s", port)
	e.Logger.Fatal(e.Start(":" + port))
}
