package database

import (
	"net"
	"net/url"
)

type PostgresSettings struct {
	User       string `yaml:"user"`
	Password   string `yaml:"password"`
	Host       string `yaml:"host"`
	Port       string `yaml:"port"`
	DBName     string `yaml:"name"`
	SSlEnabled bool   `yaml:"ssl"`
}

// GetUrl renders the settings as a postgres connection URL with credentials escaped.
func (s PostgresSettings) GetUrl() string {
	dsn := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(s.User, s.Password),
		Host:   net.JoinHostPort(s.Host, s.Port),
		Path:   "/" + s.DBName,
	}
	if !s.SSlEnabled {
		dsn.RawQuery = "sslmode=disable"
	}

	return dsn.String()
}
