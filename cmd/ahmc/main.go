package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alphahuman-xyz/alphahuman-go/client"
	"github.com/alphahuman-xyz/alphahuman-go/config"
	"github.com/alphahuman-xyz/alphahuman-go/models"
	"github.com/fatih/color"
)

var (
	logger     *slog.Logger
	configPath string
	namespace  string
)

func init() {
	logOpts := &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, logOpts))

	flag.StringVar(&configPath, "config", "", "Path to a profile file. When empty, credentials come from the environment.")
	flag.StringVar(&namespace, "namespace", "", "Namespace to scope read/delete operations to.")
}

func getClient() (*client.Client, error) {
	if configPath == "" {
		return client.CreateClientFromEnv(logger)
	}

	profile, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	token := profile.Token
	if token == "" {
		// Profiles may omit the secret; fall back to the environment.
		token = os.Getenv(client.DefaultApiKeyEnvVar)
	}

	return client.NewClient(&client.Config{
		Token:      token,
		BaseURL:    profile.BaseURL,
		Timeout:    profile.Timeout(),
		SkipVerify: profile.SkipVerify,
		Logger:     logger,
	})
}

func main() {
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	c, err := getClient()
	if err != nil {
		logger.Error("failed to create client", "error", err)
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}

	if err := runCommand(ctx, c, args); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func runCommand(ctx context.Context, c *client.Client, args []string) error {
	switch args[0] {
	case "ping":
		status, err := c.Ping(ctx)
		if err != nil {
			return err
		}
		for k, v := range status {
			fmt.Printf("%s: %s\n", color.YellowString(k), color.CyanString(v))
		}
		return nil

	case "ingest":
		if len(args) != 3 {
			return fmt.Errorf("usage: ingest <key> <content>")
		}
		ack, err := c.IngestMemory(ctx, []models.MemoryItem{
			{Key: args[1], Content: args[2], Namespace: namespace},
		})
		if err != nil {
			return err
		}
		fmt.Printf("ingested: %s updated: %s errors: %s\n",
			color.GreenString("%d", ack.Ingested),
			color.CyanString("%d", ack.Updated),
			color.RedString("%d", ack.Errors))
		return nil

	case "read":
		if len(args) != 2 {
			return fmt.Errorf("usage: read <key>")
		}
		return printItems(ctx, c, models.ReadRequest{Key: args[1], Namespace: namespace})

	case "read-ns":
		if len(args) != 2 {
			return fmt.Errorf("usage: read-ns <namespace>")
		}
		return printItems(ctx, c, models.ReadRequest{Namespace: args[1]})

	case "delete":
		if len(args) != 2 {
			return fmt.Errorf("usage: delete <key>")
		}
		result, err := c.DeleteMemory(ctx, models.DeleteRequest{Key: args[1], Namespace: namespace})
		if err != nil {
			return err
		}
		fmt.Printf("deleted: %s\n", color.GreenString("%d", result.Deleted))
		return nil

	case "delete-all":
		result, err := c.DeleteMemory(ctx, models.DeleteRequest{DeleteAll: true, Namespace: namespace})
		if err != nil {
			return err
		}
		fmt.Printf("deleted: %s\n", color.GreenString("%d", result.Deleted))
		return nil
	}

	printUsage()
	return fmt.Errorf("unknown command: %s", args[0])
}

func printItems(ctx context.Context, c *client.Client, req models.ReadRequest) error {
	result, err := c.ReadMemory(ctx, req)
	if err != nil {
		return err
	}
	for _, item := range result.Items {
		ns := item.Namespace
		if ns == "" {
			ns = "default"
		}
		fmt.Printf("%s %s %s\n", color.YellowString(ns), color.CyanString(item.Key), item.Content)
	}
	fmt.Printf("count: %d\n", result.Count)
	return nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `ahmc - Alphahuman Memory command-line client

Usage: ahmc [flags] <command> [args]

Commands:
  ping                      Check connectivity and credentials
  ingest <key> <content>    Upsert a single memory item
  read <key>                Read a single item by key
  read-ns <namespace>       Read every item in a namespace
  delete <key>              Delete a single item by key
  delete-all                Delete all memory for the current credentials

Flags:
`)
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Credentials are read from %s / %s unless -config points at a profile file.
`, client.DefaultApiKeyEnvVar, client.DefaultBaseURLEnvVar)
}
