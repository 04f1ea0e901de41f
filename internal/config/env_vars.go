package config

import "os"

const (
	serverURLEnvVar  = "RC_SERVER_URL"
	appKeyEnvVar     = "RC_APP_KEY"
	appSecretEnvVar  = "RC_APP_SECRET"
	appNameEnvVar    = "RC_APP_NAME"
	appVersionEnvVar = "RC_APP_VERSION"
	usernameEnvVar   = "RC_USERNAME"
	extensionEnvVar  = "RC_EXTENSION"
	passwordEnvVar   = "RC_PASSWORD"
)

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

// GetServerURL returns the API server base URL, e.g. "https://platform.devtest.ringcentral.com"
func (EnvVars) GetServerURL() string {
	return GetEnv(serverURLEnvVar, "https://platform.devtest.ringcentral.com")
}

func (EnvVars) GetAppKey() string {
	return GetEnv(appKeyEnvVar, "")
}

func (EnvVars) GetAppSecret() string {
	return GetEnv(appSecretEnvVar, "")
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameEnvVar, "")
}

func (EnvVars) GetAppVersion() string {
	return GetEnv(appVersionEnvVar, "")
}

func (EnvVars) GetUsername() string {
	return GetEnv(usernameEnvVar, "")
}

func (EnvVars) GetExtension() string {
	return GetEnv(extensionEnvVar, "")
}

func (EnvVars) GetPassword() string {
	return GetEnv(passwordEnvVar, "")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
