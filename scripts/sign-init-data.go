//go:build ignore

// This script signs Telegram init data with a bot token so the gateway can
// be exercised without a Telegram client.
// Run with: go run scripts/sign-init-data.go -token "$GATEWAY_BOT_TOKEN" -user 42 -start <64 char id>

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/fineai/miniapp-gateway/pkg/telegram"
)

func main() {
	botToken := flag.String("token", os.Getenv("GATEWAY_BOT_TOKEN"), "Bot token")
	userID := flag.Int64("user", 111111, "Telegram user id")
	firstName := flag.String("first-name", "Test", "User first name")
	username := flag.String("username", "", "User name")
	startParam := flag.String("start", "", "Start parameter")
	flag.Parse()

	if *botToken == "" {
		fmt.Fprintln(os.Stderr, "bot token is required (-token or GATEWAY_BOT_TOKEN)")
		os.Exit(2)
	}

	usr, err := json.Marshal(telegram.User{ID: *userID, FirstName: *firstName, Username: *username})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode user: %v\n", err)
		os.Exit(1)
	}

	values := url.Values{}
	values.Set("query_id", fmt.Sprintf("local-%d", time.Now().UnixNano()))
	values.Set("auth_date", strconv.FormatInt(time.Now().Unix(), 10))
	values.Set("user", string(usr))
	if *startParam != "" {
		values.Set("start_param", *startParam)
	}
	values.Set("hash", telegram.SignInitData(values, *botToken))

	fmt.Println(values.Encode())
}
