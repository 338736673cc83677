package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path"

	"github.com/google/subcommands"
	"github.com/perofficial/biomarket/cmd"
	"github.com/perofficial/biomarket/logger"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	log := logger.Setup(*cmd.LogDir)
	log.Infow("biomarket started", "args", os.Args[1:])

	// A user interrupt is a normal way to leave the interactive menu.
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	go func() {
		<-interrupts
		fmt.Println("\n\n[INFO] Interrupted by user")
		log.Infow("interrupted by user")
		log.Sync()
		os.Exit(0)
	}()

	status := int(commander.Execute(context.Background()))
	log.Sync()
	os.Exit(status)
}
