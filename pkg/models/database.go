package models

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

type ERContext string

const (
	DBContextURL ERContext = "er-backend-url"
)

// Connect opens the SQLite database and configures the connection pool.
func Connect(dsn string) error {
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)), config())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// This is done to prevent SQLITE_BUSY errors.
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	return setup(db)
}

// ConnectPostgres opens a connection to the PostgreSQL database of the
// host platform.
func ConnectPostgres(host, user, password, name string) error {
	log.Debug().Str("host", host).Str("database", name).Msg("Connecting to postgresql")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s", host, user, password, name)
	db, err := gorm.Open(postgres.Open(dsn), config())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	return setup(db)
}

func config() *gorm.Config {
	return &gorm.Config{
		Logger: &logger{
			Logger:        log.Logger,
			SlowThreshold: time.Second,
		},
	}
}

// setup configures the connection lifetime, registers the callbacks
// and sets the exported variable.
func setup(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	err = db.Callback().Query().After("*").Register("extendedreport:after_query", queryCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Query().After("*").Register("extendedreport:after_query_general", generalCallback)
	if err != nil {
		return err
	}

	err = db.Callback().Create().After("*").Register("extendedreport:after_create_general", generalCallback)
	if err != nil {
		return err
	}

	DB = db

	return nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		// Use the table name as information about the type of resource,
		// dropping the platform prefix
		name := strings.TrimPrefix(db.Statement.Table, "civicrm_")
		name = strings.ReplaceAll(name, "_", " ")

		// Remove plural "s"
		match := regexp.MustCompile("s$")
		name = match.ReplaceAllString(name, "")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in the sql module
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral

		return
	}
}

type table interface {
	TableName() string
}

// tables are all tables the reports read from.
var tables = []table{Contact{}, Membership{}, PriceFieldValue{}, LineItem{}}

// Migrate creates the tables the reports read from.
//
// In production, the schema is owned by the CRM. This is used for
// development databases and tests.
func Migrate(db *gorm.DB) error {
	models := make([]any, 0, len(tables))
	for _, t := range tables {
		models = append(models, t)
	}

	err := db.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}

// CheckSchema returns an error naming every table the reports read from
// that does not exist.
func CheckSchema(db *gorm.DB) error {
	var missing []string
	for _, t := range tables {
		if !db.Migrator().HasTable(t.TableName()) {
			missing = append(missing, t.TableName())
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingTables, strings.Join(missing, ", "))
	}

	return nil
}
