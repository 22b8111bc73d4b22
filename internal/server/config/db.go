package config

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/IvanChernomyrdin/go-todo-api/internal/shared/logger"
	"github.com/IvanChernomyrdin/go-todo-api/migrations"

	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v4/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Имена драйверов database/sql.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// DriverName определяет драйвер database/sql по схеме DSN.
//
// Допускаются и адреса в стиле SQLAlchemy с указанием драйвера
// (postgresql+psycopg2://...): часть после "+" отбрасывается.
func DriverName(dsn string) (string, error) {
	switch scheme := dsnScheme(dsn); scheme {
	case "postgres", "postgresql":
		return DriverPostgres, nil
	case "sqlite":
		return DriverSQLite, nil
	default:
		if strings.HasPrefix(dsn, "file:") {
			return DriverSQLite, nil
		}
		return "", fmt.Errorf("db.dsn: неподдерживаемая схема %q (ожидается postgres://, sqlite:// или file:)", dsn)
	}
}

// dsnScheme возвращает схему до "://" без суффикса "+driver".
func dsnScheme(dsn string) string {
	scheme, _, ok := strings.Cut(dsn, "://")
	if !ok {
		return ""
	}
	scheme, _, _ = strings.Cut(scheme, "+")
	return strings.ToLower(scheme)
}

// DataSource возвращает имя драйвера и строку подключения в том виде,
// который понимает сам драйвер.
//
// Для PostgreSQL убирается суффикс "+driver" из схемы.
// Для SQLite пути разбираются как в SQLAlchemy:
//   - sqlite:///todo.db    -> file:todo.db (относительный путь);
//   - sqlite:////var/x.db  -> file:/var/x.db (абсолютный путь);
//   - sqlite://./todo.db   -> file:./todo.db (короткая форма);
//   - file:...             -> как есть.
//
// Для SQLite всегда включаются внешние ключи (без них ON DELETE RESTRICT не работает).
func DataSource(dsn string) (driver, source string, err error) {
	driver, err = DriverName(dsn)
	if err != nil {
		return "", "", err
	}

	if driver == DriverPostgres {
		_, rest, _ := strings.Cut(dsn, "://")
		return driver, dsnScheme(dsn) + "://" + rest, nil
	}
	return driver, sqliteDSN(dsn), nil
}

// sqliteDSN приводит DSN к виду file:path и добавляет параметры соединения.
func sqliteDSN(dsn string) string {
	if !strings.HasPrefix(dsn, "file:") {
		_, path, _ := strings.Cut(dsn, "://")
		// sqlite:///rel -> rel, sqlite:////abs -> /abs
		path = strings.TrimPrefix(path, "/")
		dsn = "file:" + path
	}

	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	if !strings.Contains(dsn, "_foreign_keys") && !strings.Contains(dsn, "_fk") {
		dsn += sep + "_foreign_keys=on"
		sep = "&"
	}
	if !strings.Contains(dsn, "_busy_timeout") {
		dsn += sep + "_busy_timeout=5000"
	}
	return dsn
}

// OpenDB открывает пул соединений по DSN, настраивает его и проверяет доступность базы (Ping).
//
// Возвращает пул и имя драйвера. Закрывать пул должен вызывающий.
func OpenDB(cfg DBConfig) (*sql.DB, string, error) {
	driver, dsn, err := DataSource(cfg.DSN)
	if err != nil {
		return nil, "", err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, "", fmt.Errorf("open db: %w", err)
	}

	maxOpen := cfg.MaxOpenConns
	// sqlite не любит параллельных писателей
	if driver == DriverSQLite && maxOpen == 0 {
		maxOpen = 1
	}
	db.SetMaxOpenConns(maxOpen)
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, "", fmt.Errorf("ping db: %w", err)
	}
	return db, driver, nil
}

// Migrate применяет миграции для указанного драйвера.
//
// Если cfg.Path пустой, используются миграции, встроенные в бинарник,
// иначе каталог <path>/<dialect>.
// Если миграции уже применены, migrate.ErrNoChange не считается ошибкой.
func Migrate(db *sql.DB, driver string, cfg MigrationsConfig) error {
	var (
		dbDriver database.Driver
		dialect  string
		err      error
	)
	switch driver {
	case DriverPostgres:
		dialect = "postgres"
		dbDriver, err = postgres.WithInstance(db, &postgres.Config{})
	case DriverSQLite:
		dialect = "sqlite3"
		dbDriver, err = sqlite3.WithInstance(db, &sqlite3.Config{})
	default:
		return fmt.Errorf("migrate: неизвестный драйвер %q", driver)
	}
	if err != nil {
		return fmt.Errorf("creating migration driver: %w", err)
	}

	var m *migrate.Migrate
	if cfg.Path != "" {
		m, err = migrate.NewWithDatabaseInstance("file://"+strings.TrimRight(cfg.Path, "/")+"/"+dialect, dialect, dbDriver)
	} else {
		src, srcErr := iofs.New(migrations.FS, dialect)
		if srcErr != nil {
			return fmt.Errorf("creating migration source: %w", srcErr)
		}
		m, err = migrate.NewWithInstance("iofs", src, dialect, dbDriver)
	}
	if err != nil {
		return fmt.Errorf("creating migrations: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("applying migrations: %w", err)
	}

	// драйвер sqlite3 при Close закрывает весь пул, postgres: только своё соединение
	if driver == DriverPostgres {
		m.Close()
	}
	return nil
}

// Init открывает базу данных и, если включено, применяет миграции.
func Init(cfg *Config, log *logger.HTTPLogger) (*sql.DB, error) {
	sugar := log.Sugar()

	db, driver, err := OpenDB(cfg.DB)
	if err != nil {
		sugar.Errorf("error to connect db: %v", err)
		return nil, err
	}

	if cfg.Migrations.Enabled {
		if err := Migrate(db, driver, cfg.Migrations); err != nil {
			sugar.Errorf("error applying migrations: %v", err)
			db.Close()
			return nil, err
		}
		sugar.Info("migrations applied successfully")
	}
	return db, nil
}
