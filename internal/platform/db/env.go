package db

import (
	"fmt"
	"os"
)

// CredentialsFromEnv reads DB_HOST, DB_PORT, DB_USER, DB_PASS and DB_NAME.
func CredentialsFromEnv() (Credentials, error) {
	vars := []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASS", "DB_NAME"}
	vals := make(map[string]string, len(vars))
	for _, key := range vars {
		val, ok := os.LookupEnv(key)
		if !ok {
			return Credentials{}, fmt.Errorf("environment variable is not set: %s", key)
		}
		vals[key] = val
	}

	return Credentials{
		Host:     vals["DB_HOST"],
		Port:     vals["DB_PORT"],
		User:     vals["DB_USER"],
		Password: vals["DB_PASS"],
		Name:     vals["DB_NAME"],
	}, nil
}
