package telegram

import (
	"net/url"
	"strings"
)

// AppLink builds the t.me deep link that opens the bot's Mini App with the
// given start parameter.
func AppLink(botUsername, startParam string) string {
	link := url.URL{
		Scheme: "https",
		Host:   "t.me",
		Path:   "/" + strings.TrimPrefix(botUsername, "@"),
	}
	if startParam != "" {
		link.RawQuery = url.Values{"startapp": []string{startParam}}.Encode()
	}
	return link.String()
}
