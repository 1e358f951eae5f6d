package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// LoadDotenv loads a .env file when present. Missing files are fine in
// deployed environments where variables come from the process environment.
func LoadDotenv(log zerolog.Logger) {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("no .env file found, assuming environment variables are set")
	}
}

// InitDB initializes and returns the PostgreSQL connection.
//
// TranslateError is required: the like-uniqueness invariant is enforced by a
// database constraint, and repositories rely on gorm.ErrDuplicatedKey to
// surface the violation.
func InitDB(connStr string, log zerolog.Logger) (*gorm.DB, error) {
	if connStr == "" {
		return nil, fmt.Errorf("POSTGRES_CONN_STR environment variable not set")
	}

	db, err := gorm.Open(postgres.Open(connStr), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	// Ping the database to verify connection
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err = sqlDB.Ping(); err != nil {
		return nil, err
	}

	log.Info().Msg("connected to PostgreSQL")
	return db, nil
}

// CloseDB closes the underlying PostgreSQL connection.
func CloseDB(db *gorm.DB, log zerolog.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error().Err(err).Msg("getting SQL DB from GORM")
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("closing PostgreSQL connection")
		return
	}
	log.Info().Msg("PostgreSQL connection closed")
}
