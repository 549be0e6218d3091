package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"consignment-intake-service/internal/adapters/catalogstatic"
	"consignment-intake-service/internal/adapters/mail"
	"consignment-intake-service/internal/adapters/ratelimit"
	"consignment-intake-service/internal/adapters/repositories"
	"consignment-intake-service/internal/api"
	"consignment-intake-service/internal/config"
	"consignment-intake-service/internal/platform/db"
	"consignment-intake-service/internal/ports"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// Both delivery channels are optional: the server runs with neither, with
// one, or with both, and the intake endpoint reports what is configured.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	seedPath := config.Get("SEED_PATH", "data/seeds/catalog.json")
	configureURL := config.Get("CONFIGURE_URL", "/setup")

	store, catalogRepo := openStores()
	mailer := mail.NewResendMailer(os.Getenv("RESEND_API_KEY"), os.Getenv("RESEND_FROM"))
	if !mailer.Configured() {
		log.Println("RESEND_API_KEY not set (email notifications disabled)")
	}

	router := api.NewRouter(api.Deps{
		Limiter:       newLimiter(),
		Mailer:        mailer,
		Store:         store,
		Catalog:       catalogRepo,
		StaticCatalog: catalogstatic.New(seedPath),
		ClientKey:     api.DefaultKeyFunc(config.Bool("TRUST_PROXY")),
		ConfigureURL:  configureURL,
	})

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// openStores connects Postgres when DATABASE_URL is set. Without it the
// service still serves: submissions flow to email only and the catalog is
// served from the bundled seed.
func openStores() (ports.SubmissionStore, ports.CatalogRepository) {
	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Println("DATABASE_URL not set (submissions will not be persisted)")
		return repositories.NewPostgresSubmissionStore(nil), repositories.NewPostgresCatalogRepository(nil)
	}

	conn, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := repositories.InitSchema(conn); err != nil {
		log.Fatal(err)
	}

	return repositories.NewPostgresSubmissionStore(conn), repositories.NewPostgresCatalogRepository(conn)
}

// newLimiter picks the quota store: Redis when REDIS_URL is set (shared
// quota across instances), per-process memory otherwise.
func newLimiter() ports.RateLimiter {
	redisURL := os.Getenv("REDIS_URL")
	if strings.TrimSpace(redisURL) == "" {
		log.Println("REDIS_URL not set (rate limit quota is per-instance)")
		return ratelimit.NewMemoryLimiter()
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatalf("parse REDIS_URL: %v", err)
	}

	return ratelimit.NewRedisLimiter(redis.NewClient(opts))
}
