package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// NewPostgresDB connects with retries; the database container usually needs
// a few seconds before it accepts connections.
func NewPostgresDB(cfg Config, log *logrus.Logger) (*sql.DB, error) {
	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName)

	var db *sql.DB
	var err error
	maxRetries := 10

	for i := 1; i <= maxRetries; i++ {
		log.WithFields(logrus.Fields{"attempt": i, "max": maxRetries}).Info("connecting to database")
		db, err = sql.Open("postgres", connStr)
		if err == nil {
			err = db.Ping()
		}

		if err == nil {
			log.Info("database connected")
			return db, nil
		}

		log.WithError(err).Warn("database not ready, waiting 2 seconds")
		time.Sleep(2 * time.Second)
	}

	return nil, fmt.Errorf("could not connect to database: %w", err)
}
