//go:build ignore

// e2e-local.go - Smoke test against a locally running gateway.
//
// Test Flow:
// 1. Sign init data for a test user with the configured bot token
// 2. Launch the app (optionally with a short link start parameter)
// 3. Launch again with the same init data and expect a replay
// 4. Load the points screen and every profile tab
//
// Usage:
//   go run scripts/e2e-local.go [-config config.yaml] [-url http://localhost:8080] [-start <id>]

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/fineai/miniapp-gateway/pkg/config"
	"github.com/fineai/miniapp-gateway/pkg/telegram"
)

const (
	colorRed   = "\033[0;31m"
	colorGreen = "\033[0;32m"
	colorCyan  = "\033[0;36m"
	colorReset = "\033[0m"
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "Path to configuration file")
	baseURL := flag.String("url", "http://localhost:8080", "Gateway base URL")
	startParam := flag.String("start", "", "Start parameter to launch with")
	userID := flag.Int64("user", 424242, "Telegram user id")
	flag.Parse()

	cfg, err := config.LoadGateway(*cfgPath)
	if err != nil {
		fail("load configuration: %v", err)
	}

	initData := signInitData(cfg.Telegram.BotToken, *userID, *startParam)
	client := &http.Client{Timeout: 15 * time.Second}

	step("Launch")
	first := call(client, http.MethodPost, *baseURL+"/api/v1/launch", initData)
	fmt.Println(first)

	step("Launch replay")
	var plan struct {
		Replayed bool `json:"replayed"`
	}
	if err := json.Unmarshal([]byte(call(client, http.MethodPost, *baseURL+"/api/v1/launch", initData)), &plan); err != nil {
		fail("decode replay: %v", err)
	}
	if !plan.Replayed {
		fail("second launch with the same init data was not a replay")
	}
	ok("replayed")

	step("Points")
	fmt.Println(call(client, http.MethodGet, *baseURL+"/api/v1/points", initData))

	for _, tab := range []string{"conversations", "wallet", "points"} {
		step("Profile " + tab)
		fmt.Println(call(client, http.MethodGet, *baseURL+"/api/v1/profile?tab="+tab, initData))
	}

	ok("all steps passed")
}

func signInitData(botToken string, userID int64, startParam string) string {
	usr, _ := json.Marshal(telegram.User{ID: userID, FirstName: "Smoke Test"})

	values := url.Values{}
	values.Set("query_id", fmt.Sprintf("e2e-%d", time.Now().UnixNano()))
	values.Set("auth_date", strconv.FormatInt(time.Now().Unix(), 10))
	values.Set("user", string(usr))
	if startParam != "" {
		values.Set("start_param", startParam)
	}
	values.Set("hash", telegram.SignInitData(values, botToken))
	return values.Encode()
}

func call(client *http.Client, method, target, initData string) string {
	req, err := http.NewRequest(method, target, nil)
	if err != nil {
		fail("build request: %v", err)
	}
	req.Header.Set(telegram.HeaderInitData, initData)

	resp, err := client.Do(req)
	if err != nil {
		fail("%s %s: %v", method, target, err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fail("%s %s: status %d: %s", method, target, resp.StatusCode, body)
	}
	return string(body)
}

func step(name string) { fmt.Printf("%s==> %s%s\n", colorCyan, name, colorReset) }

func ok(msg string) { fmt.Printf("%s✓ %s%s\n", colorGreen, msg, colorReset) }

func fail(format string, args ...any) {
	fmt.Printf("%s✗ "+format+"%s\n", append(append([]any{colorRed}, args...), colorReset)...)
	os.Exit(1)
}
