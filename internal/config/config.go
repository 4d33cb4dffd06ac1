package config

import "github.com/spf13/viper"

// Config holds everything the process needs at startup.
type Config struct {
	DSN               string `mapstructure:"DSN"`
	Port              string `mapstructure:"PORT"`
	RazorpayKeyID     string `mapstructure:"RAZORPAY_KEY_ID"`
	RazorpayKeySecret string `mapstructure:"RAZORPAY_KEY_SECRET"`
	StaticDir         string `mapstructure:"STATIC_DIR"`
}

// Load reads config.env from the given directory. Real environment
// variables override values from the file.
func Load(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "3000")
	v.SetDefault("STATIC_DIR", "docs")

	err = v.ReadInConfig()
	if err != nil {
		return
	}

	err = v.Unmarshal(&config)
	return
}
