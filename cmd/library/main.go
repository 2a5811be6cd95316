package main

import (
	stdLog "log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"

	"github.com/Astemirdum/school-library/library/app"
	"github.com/Astemirdum/school-library/library/config"
)

// envFile is read before the environment; a missing file is fine in
// containers where everything comes from the environment.
func envFile() string {
	if f := os.Getenv("ENV_FILE"); f != "" {
		return f
	}
	return ".env"
}

func main() {
	if err := godotenv.Load(envFile()); err != nil && !os.IsNotExist(err) {
		stdLog.Fatal("load envs from ", envFile(), ": ", err)
	}
	cfg := config.NewConfig(
		config.WithLogLevel(zapcore.DebugLevel),
		config.WithWriteTimeout(time.Minute),
	)

	app.Run(&cfg)
}
