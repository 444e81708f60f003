// Copyright (c) 2012-2014 Jeremy Latt
// Copyright (c) 2014-2015 Edmund Huber
// Copyright (c) 2016-2017 Daniel Oaks <daniel@danieloaks.net>
// Copyright (c) 2024 ergoclient contributors
// released under the MIT license

package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/docopt/docopt-go"
	"github.com/okzk/sdnotify"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/ergochat/ergoclient/irc"
	"github.com/ergochat/ergoclient/irc/command"
	"github.com/ergochat/ergoclient/irc/flock"
	"github.com/ergochat/ergoclient/irc/logger"
	"github.com/ergochat/ergoclient/irc/message"
	"github.com/ergochat/ergoclient/irc/mkcerts"
	"github.com/ergochat/ergoclient/irc/reply"
)

// set via linker flags, either by make or by goreleaser:
var commit = ""  // git hash
var version = "" // tagged version

// get a password from stdin from the user
func getPasswordFromTerminal() string {
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		log.Fatal("Error reading password:", err.Error())
	}
	return string(bytePassword)
}

func fileDoesNotExist(file string) bool {
	if _, err := os.Stat(file); os.IsNotExist(err) {
		return true
	}
	return false
}

// implements the `ergoclient mkcerts` command
func doMkcerts(configFile string, quiet bool) {
	config, err := irc.LoadConfig(configFile)
	if err != nil {
		log.Fatal(err)
	}
	cert, key := config.Server.TLS.Cert, config.Server.TLS.Key
	if cert == "" || key == "" {
		log.Fatal("No client certificate configured (set server.tls.cert and server.tls.key)")
	}
	if !(fileDoesNotExist(cert) && fileDoesNotExist(key)) {
		log.Fatalf("Preexisting TLS cert and/or key files: %s %s", cert, key)
	}
	if !quiet {
		log.Printf("making self-signed client certificate for %s\n", config.Identity.Nick)
	}
	fingerprint, err := mkcerts.CreateCert("ergoclient", config.Identity.Nick, cert, key)
	if err != nil {
		log.Fatal("  Could not create certificate:", err.Error())
	}
	if !quiet {
		log.Printf("  Certificate created at %s : %s\n", cert, key)
	}
	// the fingerprint is what gets registered with NickServ CERT ADD
	fmt.Println(fingerprint)
}

// implements the `ergoclient parse` command: one report per input line
func doParse(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, message.MaxLineLen), irc.DefaultMaxReadQ)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		msg, err := message.Parse(line)
		if err != nil {
			fmt.Fprintf(out, "%q: error: %v\n", line, err)
			continue
		}
		fmt.Fprintf(out, "%q\n", line)
		if prefix, ok := msg.Prefix(); ok {
			fmt.Fprintf(out, "  prefix:   %q\n", prefix)
		}
		fmt.Fprintf(out, "  command:  %q\n", msg.Command())
		for i, param := range msg.Params() {
			fmt.Fprintf(out, "  param %d:  %q\n", i, param)
		}
		if trailing, ok := msg.Trailing(); ok {
			fmt.Fprintf(out, "  trailing: %q\n", trailing)
		}
		fmt.Fprintf(out, "  event:    %s\n", describeEvent(irc.Classify(&msg)))
	}
	return scanner.Err()
}

func describeEvent(ev irc.Event) string {
	switch ev := ev.(type) {
	case irc.CommandEvent:
		return fmt.Sprintf("command %s %+v", ev.Command.Name(), ev.Command)
	case irc.ReplyEvent:
		return fmt.Sprintf("reply %s (%s) %+v", ev.Reply.Code, ev.Reply.Code.Name(), ev.Reply)
	default:
		return "unrecognized"
	}
}

// implements the `ergoclient run` command
func doRun(config *irc.Config, logman *logger.Manager, password string) error {
	if config.LockFile != "" {
		lock, err := flock.TryAcquireFlock(config.LockFile)
		if err != nil {
			return fmt.Errorf("Could not acquire lock file %s: %w", config.LockFile, err)
		}
		defer lock.Unlock()
		logman.Debug(logger.TypeBot, "Holding lock file", lock.Path())
	}

	client := irc.NewClient(config.ClientOptions(logman)...).Share()
	bot := newEchoBot(config, logman)
	// subscribe before connecting so nothing is missed
	commands := client.Commands(64)
	replies := client.Replies(64)

	if err := client.ConnectServer(config.Server); err != nil {
		return err
	}
	identity := config.Identity
	if err := client.Register(identity.Nick, identity.User, identity.Realname, password); err != nil {
		client.Disconnect()
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var group errgroup.Group
	group.Go(func() error {
		defer stop()
		return client.Listen()
	})
	group.Go(func() error {
		bot.serve(commands, replies)
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		if !client.IsConnected() {
			return nil
		}
		logman.Info(logger.TypeBot, "Shutting down")
		sdnotify.Stopping()
		client.Send(command.Quit{Message: "Shutting down"})
		if err := client.Disconnect(); err != nil && !errors.Is(err, irc.ErrNotConnected) {
			return err
		}
		return nil
	})
	return group.Wait()
}

func main() {
	irc.SetVersionString(version, commit)
	usage := `ergoclient.
Usage:
	ergoclient run [--conf <filename>] [--quiet] [--password]
	ergoclient parse
	ergoclient mkcerts [--conf <filename>] [--quiet]
	ergoclient numeric <code>
	ergoclient -h | --help
	ergoclient --version
Options:
	--conf <filename>  Configuration file to use [default: ergoclient.yaml].
	--quiet            Don't show startup/shutdown lines.
	--password         Prompt for the server password.
	-h --help          Show this screen.
	--version          Show version.`

	arguments, _ := docopt.ParseArgs(usage, nil, irc.Ver)

	// don't require a config file for parse or numeric
	if arguments["parse"].(bool) {
		if err := doParse(os.Stdin, os.Stdout); err != nil {
			log.Fatal("Error reading input:", err.Error())
		}
		return
	} else if arguments["numeric"].(bool) {
		code, err := reply.Lookup(arguments["<code>"].(string))
		if err != nil {
			code, err = reply.ByName(strings.ToUpper(arguments["<code>"].(string)))
		}
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s %s\n", code, code.Name())
		return
	} else if arguments["mkcerts"].(bool) {
		doMkcerts(arguments["--conf"].(string), arguments["--quiet"].(bool))
		return
	}

	configfile := arguments["--conf"].(string)
	config, err := irc.LoadConfig(configfile)
	if err != nil {
		log.Fatal("Config file did not load successfully: ", err.Error())
	}

	logman, err := logger.NewManager(config.Logging)
	if err != nil {
		log.Fatal("Logger did not load successfully:", err.Error())
	}
	defer logman.Close()

	if arguments["run"].(bool) {
		password := config.Identity.Password
		if arguments["--password"].(bool) {
			if !term.IsTerminal(int(syscall.Stdin)) {
				log.Fatal("--password requires a terminal")
			}
			fmt.Print("Enter Password: ")
			password = getPasswordFromTerminal()
			fmt.Print("\n")
		}
		if !arguments["--quiet"].(bool) {
			logman.Info(logger.TypeBot, fmt.Sprintf("%s starting", irc.Ver))
		}
		if err := doRun(config, logman, password); err != nil {
			logman.Error(logger.TypeBot, "Stopped with error", err.Error())
			logman.Close()
			os.Exit(1)
		}
		if !arguments["--quiet"].(bool) {
			logman.Info(logger.TypeBot, "Stopped", irc.Ver)
		}
	}
}
