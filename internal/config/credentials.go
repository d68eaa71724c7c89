package config

import (
	"os"

	"careminer/internal/types"
)

const DefaultUserAgent = "caregiving-intent-miner (read-only research script)"

// Credentials identifies this process to the Reddit API. All four required
// values come from the environment; they are read once at startup and never
// written back.
type Credentials struct {
	ClientID     string
	ClientSecret string
	Username     string
	Password     string
	UserAgent    string
}

// CredentialsFromEnv reads the credential set from the process environment.
// The first missing required variable aborts with a MissingEnvError naming it.
func CredentialsFromEnv() (Credentials, error) {
	var creds Credentials

	required := []struct {
		name string
		dst  *string
	}{
		{"REDDIT_CLIENT_ID", &creds.ClientID},
		{"REDDIT_CLIENT_SECRET", &creds.ClientSecret},
		{"REDDIT_USERNAME", &creds.Username},
		{"REDDIT_PASSWORD", &creds.Password},
	}

	for _, v := range required {
		val, ok := os.LookupEnv(v.name)
		if !ok {
			return Credentials{}, &types.MissingEnvError{Name: v.name}
		}
		*v.dst = val
	}

	creds.UserAgent = os.Getenv("REDDIT_USER_AGENT")
	if creds.UserAgent == "" {
		creds.UserAgent = DefaultUserAgent
	}

	return creds, nil
}
