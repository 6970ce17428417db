package telegram

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"PoliceDigest/internal/ports"
)

const (
	defaultBaseURL = "https://api.telegram.org"
	maxMessageLen  = 4096
)

// apiResponse is the envelope every Bot API method answers with.
type apiResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code"`
	Description string `json:"description"`
}

// Notifier sends export notices to a Telegram chat via bot API.
type Notifier struct {
	botToken string
	chatID   string
	baseURL  string
	client   *http.Client
}

var _ ports.Notifier = (*Notifier)(nil)

// NewNotifier registers bot token and chat identifier.
func NewNotifier(botToken, chatID string) *Notifier {
	return &Notifier{
		botToken: botToken,
		chatID:   chatID,
		baseURL:  defaultBaseURL,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

// WithBaseURL points the notifier at another Bot API host.
func (n *Notifier) WithBaseURL(base string) *Notifier {
	n.baseURL = strings.TrimRight(base, "/")
	return n
}

// PublishReport posts a Markdown message to the chat. Messages longer than
// the Bot API limit are cut.
func (n *Notifier) PublishReport(ctx context.Context, message string) error {
	if n.botToken == "" || n.chatID == "" || n.client == nil {
		return goerr.New("telegram notifier misconfigured")
	}

	if r := []rune(message); len(r) > maxMessageLen {
		message = string(r[:maxMessageLen])
	}

	form := url.Values{
		"chat_id":                  {n.chatID},
		"text":                     {message},
		"parse_mode":               {"Markdown"},
		"disable_web_page_preview": {"true"},
	}
	endpoint := n.baseURL + "/bot" + n.botToken + "/sendMessage"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return goerr.Wrap(err, "build sendMessage request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.client.Do(req)
	if err != nil {
		return goerr.Wrap(err, "send message", goerr.V("chat_id", n.chatID))
	}
	defer resp.Body.Close()

	var body apiResponse
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err := json.Unmarshal(raw, &body); err != nil && resp.StatusCode == http.StatusOK {
		return goerr.Wrap(err, "decode telegram response")
	}
	if resp.StatusCode != http.StatusOK || !body.OK {
		return goerr.New("telegram rejected message",
			goerr.V("status", resp.StatusCode),
			goerr.V("error_code", body.ErrorCode),
			goerr.V("description", body.Description))
	}
	return nil
}
