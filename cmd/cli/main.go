package main

import (
	"context"
	"log"
	"os"

	"github.com/dkovalenko/crewdesk/internal/buildinfo"
	"github.com/dkovalenko/crewdesk/internal/client/cli"
	"github.com/dkovalenko/crewdesk/internal/client/config"
	"github.com/dkovalenko/crewdesk/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewDefault()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(ctx)
}
