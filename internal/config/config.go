package config

type Config interface {
	EnvConfig
	OAuthConfig
}

type EnvConfig interface {
	GetServerURL() string
	GetAppKey() string
	GetAppSecret() string
	GetAppName() string
	GetAppVersion() string
	GetUsername() string
	GetExtension() string
	GetPassword() string
	GetEnv() string
}

type mainConfig struct {
	EnvVars
	OAuth
}

func New() Config {
	return mainConfig{}
}
