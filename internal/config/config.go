package config // package config loads application configuration from environment variables

import (
    "log" // log is used to report configuration errors and halt execution
    "os"  // os provides access to environment variables

    "github.com/joho/godotenv" // godotenv loads a local .env file during development
)

// Config holds all runtime configuration values.  Each field corresponds
// to an environment variable.  Database settings are required because a
// failed store connection at startup is fatal; the HTTP port falls back
// to 3000 when unset.
type Config struct {
    Env    string // application environment (e.g. "dev", "prod")
    Port   string // HTTP port to listen on
    DBUser string // database username
    DBPass string // database password (optional)
    DBHost string // database host address
    DBPort string // database port number
    DBName string // database name
}

// Load reads configuration values from environment variables and returns
// a Config.  A .env file is honored when present so the server can run
// locally without exporting variables.  Required variables are enforced
// by must() and missing values cause the program to exit with a fatal
// log message.
func Load() Config {
    if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
        log.Printf("could not load .env file: %v", err)
    }
    return Config{
        Env:    getenv("APP_ENV", "dev"),   // environment (dev/test/prod)
        Port:   getenv("APP_PORT", "3000"), // port to bind the HTTP server
        DBUser: must("DB_USER"),            // database user
        DBPass: os.Getenv("DB_PASS"),       // database password (empty allowed)
        DBHost: must("DB_HOST"),            // database host
        DBPort: getenv("DB_PORT", "3306"),  // database port
        DBName: must("DB_NAME"),            // database name
    }
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}
