package config

import (
	"github.com/jinzhu/configor"
)

type Config struct {
	AppConfig     AppConfig     `env:"APPCONFIG"`
	DBConfig      DBConfig      `env:"DBCONFIG"`
	LoyaltyConfig LoyaltyConfig `env:"LOYALTYCONFIG"`
}

type AppConfig struct {
	APPName string `default:"userapi"`
	Version string `default:"x.x.x" env:"VERSION"`
	Mode    string `default:"dev" env:"APP_MODE"`
	Port    int    `default:"8080" env:"APP_PORT"`
}

type DBConfig struct {
	Host     string `default:"localhost" env:"DBHOST"`
	DataBase string `default:"userapi" env:"DBNAME"`
	User     string `default:"postgres" env:"DBUSERNAME"`
	Password string `required:"true" env:"DBPASSWORD" default:"mysecretpassword"`
	Port     uint   `default:"5432" env:"DBPORT"`
	SSLMode  string `default:"disable" env:"DBSSL"`
}

type LoyaltyConfig struct {
	BaseURL   string `default:"http://localhost:8081" env:"LOYALTY_BASE_URL"`
	APIKey    string `default:"simple_api_key_for_authentication" env:"LOYALTY_API_KEY"`
	TimeoutMS int    `default:"500" env:"LOYALTY_TIMEOUT_MS"`
}

func LoadConfigOrPanic() Config {
	var config = Config{}
	configor.Load(&config, "config/config.dev.json")

	return config
}
