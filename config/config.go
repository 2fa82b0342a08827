package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Database   Database
	Auth       Auth
	Cloudinary Cloudinary
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Auth struct {
	JWTSecret          string
	TokenExpireHours   int
	AllowedEmailDomain string
}

type Cloudinary struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("TOKEN_EXPIRE_HOURS", 72)
	viper.SetDefault("CLOUDINARY_FOLDER", "qa-platform/audio")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Auth.JWTSecret = viper.GetString("JWT_SECRET")
	config.Auth.TokenExpireHours = viper.GetInt("TOKEN_EXPIRE_HOURS")
	config.Auth.AllowedEmailDomain = viper.GetString("ALLOWED_EMAIL_DOMAIN")

	config.Cloudinary.CloudName = viper.GetString("CLOUDINARY_CLOUD_NAME")
	config.Cloudinary.APIKey = viper.GetString("CLOUDINARY_API_KEY")
	config.Cloudinary.APISecret = viper.GetString("CLOUDINARY_API_SECRET")
	config.Cloudinary.Folder = viper.GetString("CLOUDINARY_FOLDER")

	log.Info().Str("port", config.Server.Port).Str("db_host", config.Database.Host).Msg("Config loaded")
	return &config, nil
}
