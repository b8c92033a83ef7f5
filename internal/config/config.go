package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig
	Admin   AdminConfig
	Payment PaymentConfig
	Catalog CatalogConfig
}

type ServerConfig struct {
	Port           string
	Env            string
	AllowedOrigins []string
}

type AdminConfig struct {
	// Secret is the shared admin secret compared byte-exact at login.
	// A static string, nothing more; see internal/auth.
	Secret string
}

type PaymentConfig struct {
	PayPalHandle   string
	WhatsAppNumber string
	SDKURL         string
	ButtonID       string
}

type CatalogConfig struct {
	// SeedFile optionally points at a JSON array of artwork records used
	// instead of the built-in seed catalog.
	SeedFile string
}

func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("ADMIN_SECRET", "@Negrita2000")
	viper.SetDefault("PAYPAL_HANDLE", "amycustom")
	viper.SetDefault("WHATSAPP_NUMBER", "56979518383")
	viper.SetDefault("PAYMENT_SDK_URL", "https://www.paypal.com/sdk/js?components=hosted-buttons&currency=USD")
	viper.SetDefault("PAYMENT_BUTTON_ID", "")
	viper.SetDefault("CATALOG_SEED_FILE", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	return &Config{
		Server: ServerConfig{
			Port:           viper.GetString("SERVER_PORT"),
			Env:            viper.GetString("SERVER_ENV"),
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
		},
		Admin: AdminConfig{
			Secret: viper.GetString("ADMIN_SECRET"),
		},
		Payment: PaymentConfig{
			PayPalHandle:   viper.GetString("PAYPAL_HANDLE"),
			WhatsAppNumber: viper.GetString("WHATSAPP_NUMBER"),
			SDKURL:         viper.GetString("PAYMENT_SDK_URL"),
			ButtonID:       viper.GetString("PAYMENT_BUTTON_ID"),
		},
		Catalog: CatalogConfig{
			SeedFile: viper.GetString("CATALOG_SEED_FILE"),
		},
	}
}
