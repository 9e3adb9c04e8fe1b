package support

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	neturl "net/url"
	"strings"
	"time"

	anthropicclient "github.com/anthropics/anthropic-sdk-go"
	anthropicoption "github.com/anthropics/anthropic-sdk-go/option"
	openaiclient "github.com/openai/openai-go/v2"
	openaioption "github.com/openai/openai-go/v2/option"
	"github.com/rohitgunthal18/pixico-core/internal/config"
)

const (
	openRouterBaseURL = "https://openrouter.ai/api/v1"
	replyMaxTokens    = 500
	upstreamTimeout   = 30 * time.Second
)

// ErrNotConfigured means no upstream credential is present. It is a server
// configuration problem, reported distinctly from an upstream call failure.
var ErrNotConfigured = errors.New("support: no completions api key configured")

func normalizeProviderType(raw string) string {
	t := strings.ToLower(strings.TrimSpace(raw))
	t = strings.ReplaceAll(t, "_", "-")
	t = strings.ReplaceAll(t, " ", "")
	return t
}

// complete forwards one system+user turn to the configured provider and
// returns the raw reply text. No conversation memory, no retries.
func complete(ctx context.Context, cfg config.SupportConfig, systemPrompt, userMessage string) (string, error) {
	if !cfg.Configured() {
		return "", ErrNotConfigured
	}

	switch t := normalizeProviderType(cfg.Type); t {
	case "anthropic":
		return completeAnthropic(ctx, cfg, systemPrompt, userMessage)
	case "openai-compatible", "openaicompatible":
		return completeHTTPChat(ctx, cfg, systemPrompt, userMessage)
	default:
		// "openai", "openrouter" and anything unrecognized go through the
		// OpenAI client; OpenRouter speaks the same protocol.
		return completeOpenAI(ctx, cfg, systemPrompt, userMessage, t == "openrouter")
	}
}

func completeOpenAI(ctx context.Context, cfg config.SupportConfig, systemPrompt, userMessage string, openRouter bool) (string, error) {
	opts := []openaioption.RequestOption{
		openaioption.WithAPIKey(strings.TrimSpace(cfg.APIKey)),
		openaioption.WithMaxRetries(0),
		openaioption.WithRequestTimeout(upstreamTimeout),
	}
	switch {
	case strings.TrimSpace(cfg.Endpoint) != "":
		opts = append(opts, openaioption.WithBaseURL(normalizeOpenAIBaseURL(cfg.Endpoint)))
	case openRouter:
		opts = append(opts, openaioption.WithBaseURL(openRouterBaseURL))
	}

	client := openaiclient.NewClient(opts...)
	resp, err := client.Chat.Completions.New(ctx, openaiclient.ChatCompletionNewParams{
		Model: openaiclient.ChatModel(cfg.Model),
		Messages: []openaiclient.ChatCompletionMessageParamUnion{
			openaiclient.SystemMessage(systemPrompt),
			openaiclient.UserMessage(userMessage),
		},
		MaxTokens: openaiclient.Int(replyMaxTokens),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return "", errors.New("empty response from upstream")
	}
	return resp.Choices[0].Message.Content, nil
}

func completeAnthropic(ctx context.Context, cfg config.SupportConfig, systemPrompt, userMessage string) (string, error) {
	opts := []anthropicoption.RequestOption{
		anthropicoption.WithAPIKey(strings.TrimSpace(cfg.APIKey)),
		anthropicoption.WithMaxRetries(0),
		anthropicoption.WithRequestTimeout(upstreamTimeout),
	}
	if endpoint := strings.TrimSpace(cfg.Endpoint); endpoint != "" {
		opts = append(opts, anthropicoption.WithBaseURL(strings.TrimRight(endpoint, "/")))
	}

	client := anthropicclient.NewClient(opts...)
	msg, err := client.Messages.New(ctx, anthropicclient.MessageNewParams{
		Model:     anthropicclient.Model(cfg.Model),
		MaxTokens: replyMaxTokens,
		System: []anthropicclient.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropicclient.MessageParam{
			anthropicclient.NewUserMessage(anthropicclient.NewTextBlock(userMessage)),
		},
	})
	if err != nil {
		return "", err
	}

	var full strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			full.WriteString(block.Text)
		}
	}
	text := full.String()
	if strings.TrimSpace(text) == "" {
		return "", errors.New("empty response from upstream")
	}
	return text, nil
}

// completeHTTPChat speaks the bare chat-completions wire protocol for
// self-hosted gateways that are compatible but not the official endpoint.
func completeHTTPChat(ctx context.Context, cfg config.SupportConfig, systemPrompt, userMessage string) (string, error) {
	endpoint := normalizeCompatibleEndpoint(cfg.Endpoint)

	body, _ := json.Marshal(map[string]interface{}{
		"model": cfg.Model,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": userMessage},
		},
		"max_tokens": replyMaxTokens,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+strings.TrimSpace(cfg.APIKey))
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: upstreamTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return "", fmt.Errorf("upstream error: %s", strings.TrimSpace(string(respBody)))
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", err
	}
	if result.Error != nil && strings.TrimSpace(result.Error.Message) != "" {
		return "", fmt.Errorf("upstream error: %s", result.Error.Message)
	}
	if len(result.Choices) == 0 {
		return "", errors.New("empty response from upstream")
	}
	return result.Choices[0].Message.Content, nil
}

func normalizeOpenAIBaseURL(raw string) string {
	base := strings.TrimSpace(raw)
	parsed, err := neturl.Parse(base)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return strings.TrimRight(base, "/")
	}

	path := strings.TrimRight(parsed.Path, "/")
	if !strings.HasSuffix(path, "/v1") {
		path += "/v1"
	}
	parsed.Path = path
	return strings.TrimRight(parsed.String(), "/")
}

func normalizeCompatibleEndpoint(raw string) string {
	base := strings.TrimSpace(raw)
	if base == "" {
		return "https://api.openai.com"
	}
	cleaned := strings.TrimRight(base, "/")
	cleaned = strings.TrimSuffix(cleaned, "/chat/completions")
	cleaned = strings.TrimSuffix(cleaned, "/v1")
	return strings.TrimRight(cleaned, "/")
}
