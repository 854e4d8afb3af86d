package notify

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

const (
	colorGreen = 0x2ECC71 // in stock
	colorRed   = 0xE74C3C // out of stock
)

// DiscordNotifier implements Notifier via Discord webhook.
type DiscordNotifier struct {
	webhookURL string
	client     *resty.Client
}

// DiscordOption configures a DiscordNotifier.
type DiscordOption func(*DiscordNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) DiscordOption {
	return func(d *DiscordNotifier) {
		d.client = resty.NewWithClient(c)
	}
}

// NewDiscordNotifier creates a new DiscordNotifier.
func NewDiscordNotifier(webhookURL string, opts ...DiscordOption) *DiscordNotifier {
	d := &DiscordNotifier{webhookURL: webhookURL}
	for _, opt := range opts {
		opt(d)
	}
	d.client = newRestyClient(d.client)
	return d
}

// Name implements Notifier.
func (d *DiscordNotifier) Name() string { return "discord" }

// discordWebhookPayload is the Discord webhook JSON structure.
type discordWebhookPayload struct {
	Embeds []discordEmbed `json:"embeds"`
}

type discordEmbed struct {
	Title       string              `json:"title"`
	URL         string              `json:"url,omitempty"`
	Color       int                 `json:"color"`
	Description string              `json:"description,omitempty"`
	Fields      []discordEmbedField `json:"fields,omitempty"`
	Timestamp   string              `json:"timestamp,omitempty"`
}

type discordEmbedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Send posts p as a single Discord embed.
func (d *DiscordNotifier) Send(ctx context.Context, p *Payload) error {
	payload := discordWebhookPayload{
		Embeds: []discordEmbed{buildEmbed(p)},
	}
	return d.post(ctx, payload)
}

func buildEmbed(p *Payload) discordEmbed {
	embed := discordEmbed{
		Title:       fmt.Sprintf("%s %s", stockEmoji(p.Status), p.Target.DisplayName()),
		URL:         p.Target.URL,
		Color:       colorRed,
		Description: p.Reason,
		Fields: []discordEmbedField{
			{Name: "Status", Value: StockLabel(p.Status), Inline: true},
			{Name: "Provider", Value: p.provider(), Inline: true},
		},
		Timestamp: p.timestamp().UTC().Format("2006-01-02T15:04:05Z07:00"),
	}

	if p.Status != nil && p.Status.InStock {
		embed.Color = colorGreen
	}
	if p.Target.Region != "" {
		embed.Fields = append(embed.Fields, discordEmbedField{Name: "Region", Value: p.Target.Region, Inline: true})
	}
	if p.Target.Plan != "" {
		embed.Fields = append(embed.Fields, discordEmbedField{Name: "Plan", Value: p.Target.Plan, Inline: true})
	}
	if p.Status != nil && p.Status.Price != nil {
		embed.Fields = append(embed.Fields, discordEmbedField{
			Name: "Price", Value: "$" + FormatNumber(*p.Status.Price), Inline: true,
		})
	}
	if p.Status != nil && p.Status.Qty != nil {
		embed.Fields = append(embed.Fields, discordEmbedField{
			Name: "Quantity", Value: FormatNumber(*p.Status.Qty), Inline: true,
		})
	}

	return embed
}

func (d *DiscordNotifier) post(ctx context.Context, payload discordWebhookPayload) error {
	resp, err := postJSON(ctx, d.client, d.webhookURL, payload)
	if err != nil {
		return fmt.Errorf("sending discord webhook: %w", err)
	}

	if resp.StatusCode() == http.StatusTooManyRequests {
		return fmt.Errorf("discord rate limited (429)")
	}

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		return fmt.Errorf("discord returned %d: %s", resp.StatusCode(), resp.String())
	}

	return nil
}
