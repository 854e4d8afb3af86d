package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

const defaultTelegramAPI = "https://api.telegram.org"

// TelegramNotifier implements Notifier via the Telegram Bot API.
type TelegramNotifier struct {
	token   string
	chatID  string
	apiBase string
	client  *resty.Client
}

// TelegramOption configures a TelegramNotifier.
type TelegramOption func(*TelegramNotifier)

// WithTelegramAPIBase overrides the Bot API base URL.
func WithTelegramAPIBase(base string) TelegramOption {
	return func(t *TelegramNotifier) {
		t.apiBase = strings.TrimRight(base, "/")
	}
}

// WithTelegramClient sets a custom resty client.
func WithTelegramClient(c *resty.Client) TelegramOption {
	return func(t *TelegramNotifier) {
		t.client = c
	}
}

// NewTelegramNotifier creates a notifier that posts to chatID using the
// bot identified by token.
func NewTelegramNotifier(token, chatID string, opts ...TelegramOption) *TelegramNotifier {
	t := &TelegramNotifier{
		token:   token,
		chatID:  chatID,
		apiBase: defaultTelegramAPI,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.client = newRestyClient(t.client)
	return t
}

// Name implements Notifier.
func (t *TelegramNotifier) Name() string { return "telegram" }

type telegramMessage struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

// Send posts p as a Markdown message.
func (t *TelegramNotifier) Send(ctx context.Context, p *Payload) error {
	msg := telegramMessage{
		ChatID:                t.chatID,
		Text:                  telegramText(p),
		ParseMode:             "Markdown",
		DisableWebPagePreview: true,
	}

	endpoint := fmt.Sprintf("%s/bot%s/sendMessage", t.apiBase, t.token)
	resp, err := postJSON(ctx, t.client, endpoint, msg)
	if err != nil {
		return fmt.Errorf("sending telegram message: %w", err)
	}

	if resp.IsError() {
		return fmt.Errorf("telegram returned %d: %s", resp.StatusCode(), resp.String())
	}

	return nil
}

func telegramText(p *Payload) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s *VPS 库存变化*\n\n", stockEmoji(p.Status))
	fmt.Fprintf(&b, "*原因*: %s\n", escapeMarkdown(p.Reason))
	fmt.Fprintf(&b, "*状态*: %s\n", StockLabel(p.Status))
	fmt.Fprintf(&b, "*Provider*: %s\n", escapeMarkdown(p.provider()))

	p.writeOptional(&b, "*%s*: %s\n", escapeMarkdown)

	fmt.Fprintf(&b, "\n*链接*: %s\n", escapeMarkdown(p.Target.URL))
	fmt.Fprintf(&b, "*时间*: %s", FormatTime(p.timestamp()))

	return b.String()
}

var markdownEscaper = strings.NewReplacer(
	"_", `\_`,
	"*", `\*`,
	"`", "\\`",
	"[", `\[`,
)

// escapeMarkdown escapes the characters that legacy Telegram Markdown
// treats as entity delimiters.
func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
