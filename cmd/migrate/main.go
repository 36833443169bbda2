package main

import (
	"easybooking/config"
	"easybooking/helper"
	"easybooking/shared/logger"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration direction (up/down) is required")
	}

	cfg := config.Get()

	if err := helper.Runner(cfg, os.Args[1]); err != nil {
		log.Fatal().Err(err).Str("valid", strings.Join(helper.Actions, ", ")).Msg("Migration failed")
	}
}
