package main

import (
	"errors"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gs866812/kustia-mosque-backend/internal/auth"
	"github.com/gs866812/kustia-mosque-backend/internal/ledger"
	"github.com/gs866812/kustia-mosque-backend/internal/models"
	"github.com/gs866812/kustia-mosque-backend/internal/router"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// trackerDelay is how long the balance tracker waits after a record
// mutation before recomputing, so that bulk entry coalesces into a
// single refresh.
const trackerDelay = 300 * time.Millisecond

func main() {
	// A .env file is optional, the environment always wins
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		log.Fatal().Msg("environment variable API_URL must be set")
	}

	baseURL, err := url.Parse(apiURL)
	if err != nil {
		log.Fatal().Msg("environment variable API_URL must be a valid URL")
	}

	secret, ok := os.LookupEnv("JWT_SECRET")
	if !ok {
		log.Fatal().Msg("environment variable JWT_SECRET must be set")
	}

	// Create data directory
	dataDir := filepath.Join(".", "data")
	err = os.MkdirAll(dataDir, os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Connect to the database and migrate the schema
	err = models.Connect("data/gorm.db?_pragma=foreign_keys(1)")
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	err = seedModerator()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Tokens live for an hour, the clients refresh them after 50 minutes
	tokens := auth.NewService(secret, time.Hour)

	tracker := ledger.NewTracker(trackerDelay)
	defer tracker.Stop()

	r, err := router.Router(baseURL, tracker, tokens)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}

// seedModerator makes sure the moderator account from the environment
// exists with the configured password. Without ADMIN_EMAIL the
// administrative endpoints simply stay unreachable.
func seedModerator() error {
	email, ok := os.LookupEnv("ADMIN_EMAIL")
	if !ok {
		log.Warn().Msg("ADMIN_EMAIL is not set, no moderator account is available")
		return nil
	}

	password, ok := os.LookupEnv("ADMIN_PASSWORD")
	if !ok {
		return errors.New("ADMIN_PASSWORD must be set when ADMIN_EMAIL is")
	}

	var user models.User
	err := models.DB.Where(&models.User{Email: email}).First(&user).Error
	if err != nil && !errors.Is(err, models.ErrResourceNotFound) {
		return err
	}

	user.Email = email
	if err := user.SetPassword(password); err != nil {
		return err
	}

	return models.DB.Save(&user).Error
}
