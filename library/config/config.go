package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/Astemirdum/school-library/pkg/auth"
	"github.com/Astemirdum/school-library/pkg/blob"
	"github.com/Astemirdum/school-library/pkg/kafka"
	"github.com/Astemirdum/school-library/pkg/logger"
	"github.com/Astemirdum/school-library/pkg/postgres"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"LIBRARY_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"LIBRARY_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"30s"`
	WriteTimeout time.Duration
}

const (
	StorageLocal    = "local"
	StorageSupabase = "supabase"
)

type Storage struct {
	Driver   string `envconfig:"STORAGE_DRIVER" default:"local"`
	BasePath string `envconfig:"STORAGE_PATH" default:"./storage"`
	BaseURL  string `envconfig:"STORAGE_URL" default:"/storage"`
	Supabase blob.SupabaseConfig
}

type Library struct {
	EmailDomain string `envconfig:"EMAIL_DOMAIN" default:"libratech.com"`
}

type Config struct {
	Server   HTTPServer  `yaml:"server"`
	Database postgres.DB `yaml:"db"`
	Log      logger.Log  `yaml:"log"`
	Kafka    kafka.Config
	Auth     auth.Config
	Storage  Storage
	Library  Library
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}
