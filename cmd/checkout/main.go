package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"growstocks/client/growstocks"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

const pollInterval = 5 * time.Second

func main() {
	slog.SetLogLoggerLevel(slog.LevelInfo)
	if len(os.Args) != 3 {
		fmt.Fprintln(os.Stderr, "usage: checkout <user-id> <amount>")
		os.Exit(2)
	}
	userId, err := strconv.Atoi(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, "user-id must be a number")
		os.Exit(2)
	}
	amount, err := strconv.Atoi(os.Args[2])
	if err != nil {
		fmt.Fprintln(os.Stderr, "amount must be a number")
		os.Exit(2)
	}

	client := growstocks.NewClient(&growstocks.Config{
		ClientId: mustEnvInt("CLIENT_ID"),
		Secret:   mustEnv("SECRET"),
		Redirects: growstocks.DefaultRedirects{
			Site: os.Getenv("SITE_URL"),
			Pay:  "%s/thanks",
		},
	})

	reference := uuid.NewString()
	tx, err := client.Pay.CreateTransaction(growstocks.User{Id: userId}, amount, "order "+reference)
	if err != nil {
		slog.Error("Failed to create transaction", "error", err)
		os.Exit(1)
	}
	slog.Info("Transaction created", "id", tx.Id, "reference", reference)

	payUrl, err := client.Pay.PaymentUrl(tx, "")
	if err != nil {
		slog.Error("Failed to build payment url", "error", err)
		os.Exit(1)
	}
	fmt.Println("Pay at:", payUrl)

	for {
		time.Sleep(pollInterval)
		info, err := client.Pay.FetchTransaction(tx)
		if err != nil {
			slog.Warn("Failed to fetch transaction. Retrying...", "error", err)
			continue
		}
		if info.Paid() {
			color.Green("Paid %d world locks at %s", info.Amount, info.Time.Format(time.DateTime))
			return
		}
		slog.Info("Awaiting payment", "status", info.Status)
	}
}

func mustEnv(key string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		panic(key + " environment variable not found")
	}
	return value
}

func mustEnvInt(key string) int {
	value, err := strconv.Atoi(mustEnv(key))
	if err != nil {
		panic(key + " environment variable is not a number")
	}
	return value
}
