package pinata

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// TokenEnvVar is the name the Pinata JWT is looked up under.
const TokenEnvVar = "PINATA_JWT"

// ResolveToken finds the Pinata JWT. A non-empty PINATA_JWT in envFile wins,
// otherwise the process environment is consulted. A missing envFile is not an
// error. ErrMissingCredential is returned when neither has a value.
func ResolveToken(envFile string) (string, error) {
	if envFile != "" {
		vals, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("load env file %s: %w", envFile, err)
		}
		if tok := vals[TokenEnvVar]; tok != "" {
			return tok, nil
		}
	}
	if tok := os.Getenv(TokenEnvVar); tok != "" {
		return tok, nil
	}
	return "", ErrMissingCredential
}
