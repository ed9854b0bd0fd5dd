package main

import (
	"context"
	"os"

	"github.com/amirasaad/ebanking/infra/initializer"
	"github.com/amirasaad/ebanking/pkg/config"
)

func main() {
	c := &cli{
		out:  os.Stdout,
		load: loadConfig,
		deps: initializer.InitializeDependencies,
	}
	if err := newRootCmd(c).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func loadConfig(envFile string) (*config.App, error) {
	if envFile == "" {
		return config.Load()
	}
	return config.Load(envFile)
}
