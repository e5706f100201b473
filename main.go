package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/devfoliohq/devfolio-api/pkg/api"
	"github.com/devfoliohq/devfolio-api/pkg/db"
	"github.com/devfoliohq/devfolio-api/pkg/util"
	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
)

func main() {
	godotenv.Load()

	util.InitConfig()

	if err := sentry.Init(sentry.ClientOptions{
		Dsn: os.Getenv("SENTRY_DSN"),
	}); err != nil {
		log.Fatal(err)
	}

	if err := db.InitDB(); err != nil {
		sentry.CaptureException(err)
		log.Fatal(err)
	}

	if err := db.InitS3(); err != nil {
		sentry.CaptureException(err)
		log.Fatal(err)
	}

	r := api.Router()

	log.Printf("Starting server at :8080\n")
	http.ListenAndServe(":8080", r)

	sentry.Flush(time.Second * 5)
}
