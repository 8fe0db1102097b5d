package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"growstocks/client/growstocks"

	"github.com/fatih/color"
)

func main() {
	slog.SetLogLoggerLevel(slog.LevelInfo)
	client := growstocks.NewClient(&growstocks.Config{
		ClientId: mustEnvInt("CLIENT_ID"),
		Secret:   mustEnv("SECRET"),
		Scopes:   &growstocks.Scopes{Profile: true, Balance: true, Discord: true},
	})

	authUrl, err := client.Auth.AuthorizationUrl("http://localhost:8080/callback", nil)
	if err != nil {
		slog.Error("Failed to build authorization url", "error", err)
		os.Exit(1)
	}
	fmt.Println("Authorize at:", authUrl)
	fmt.Print("Paste the token from the callback: ")
	token, _ := bufio.NewReader(os.Stdin).ReadString('\n')

	user, err := client.Auth.FetchUser(strings.TrimSpace(token), nil)
	if err != nil {
		slog.Error("Failed to fetch user", "error", err)
		os.Exit(1)
	}
	color.Green("%s (grow id %s)", user.Name, user.GrowId)
	fmt.Println("id:", user.Id)
	if user.Email != nil {
		fmt.Println("email:", *user.Email)
	}
	fmt.Println("balance:", user.Balance)
	fmt.Println("discord:", user.DiscordId)
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
