package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Data     DataConfig
	Defaults DefaultsConfig
}

type ServerConfig struct {
	Port               string
	Env                string
	JWTSecret          string `mapstructure:"jwt_secret"`
	JWTExpirationHours int    `mapstructure:"jwt_expiration_hours"`
}

type DataConfig struct {
	// Path of the bbolt file holding the ledger document.
	Path string
}

type DefaultsConfig struct {
	ShopName      string  `mapstructure:"shop_name"`
	ShopLogo      string  `mapstructure:"shop_logo"`
	LowThreshold  float64 `mapstructure:"low_threshold"`
	OwnerPassword string  `mapstructure:"owner_password"`
	StaffPassword string  `mapstructure:"staff_password"`
}

var AppConfig *Config

func LoadConfig() {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	// Read .env file
	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, checking environment variables: %v", err)
	}

	// Enable reading from OS environment variables as fallback/override
	viper.AutomaticEnv()

	viper.BindEnv("SERVER_PORT", "PORT") // Fallback to PORT if SERVER_PORT is missing
	viper.BindEnv("DATA_PATH")

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 24)
	viper.SetDefault("DATA_PATH", "feedshop.db")
	viper.SetDefault("SHOP_NAME", "Feed Shop")
	viper.SetDefault("LOW_THRESHOLD", 10)
	viper.SetDefault("OWNER_PASSWORD", "owner123")
	viper.SetDefault("STAFF_PASSWORD", "staff123")

	AppConfig = &Config{
		Server: ServerConfig{
			Port:               viper.GetString("SERVER_PORT"),
			Env:                viper.GetString("SERVER_ENV"),
			JWTSecret:          viper.GetString("JWT_SECRET"),
			JWTExpirationHours: viper.GetInt("JWT_EXPIRATION_HOURS"),
		},
		Data: DataConfig{
			Path: viper.GetString("DATA_PATH"),
		},
		Defaults: DefaultsConfig{
			ShopName:      viper.GetString("SHOP_NAME"),
			ShopLogo:      viper.GetString("SHOP_LOGO"),
			LowThreshold:  viper.GetFloat64("LOW_THRESHOLD"),
			OwnerPassword: viper.GetString("OWNER_PASSWORD"),
			StaffPassword: viper.GetString("STAFF_PASSWORD"),
		},
	}

	if AppConfig.Server.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET is empty; set it before exposing the server")
	}
}
