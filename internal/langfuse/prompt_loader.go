package langfuse

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Where a resolved prompt came from.
const (
	PromptFromLangfuse = "langfuse"
	PromptFromFile     = "file"
	PromptFromDefault  = "default"
)

// PromptFetchTimeout bounds the Langfuse prompt request.
const PromptFetchTimeout = 5 * time.Second

// PromptLoaderConfig names a managed prompt and its fallbacks.
type PromptLoaderConfig struct {
	BaseURL   string
	PublicKey string
	SecretKey string

	Name  string
	Label string
	// CachePath keeps the last prompt fetched from Langfuse and serves it when
	// Langfuse is unreachable.
	CachePath string
	// Default is served when neither Langfuse nor the cache has a prompt.
	Default string

	HTTPClient *http.Client
	Logger     *zap.Logger
}

var errLangfuseDisabled = errors.New("langfuse integration disabled")

// PromptLoader resolves a system prompt on first use and serves it for the life
// of the process. Langfuse wins over the cache file, which wins over Default.
type PromptLoader struct {
	cfg  PromptLoaderConfig
	http *http.Client
	log  *zap.Logger

	once   sync.Once
	text   string
	origin string
}

func NewPromptLoader(cfg PromptLoaderConfig) *PromptLoader {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 2 * PromptFetchTimeout}
	}
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &PromptLoader{cfg: cfg, http: httpClient, log: log.Named("prompts")}
}

// Prompt returns the resolved prompt. The first call loads it; the load ignores
// cancellation of ctx so an aborted request cannot pin the default.
func (l *PromptLoader) Prompt(ctx context.Context) string {
	l.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), PromptFetchTimeout)
		defer cancel()
		l.text, l.origin = l.resolve(ctx)
		l.log.Info("system prompt loaded", zap.String("prompt", l.cfg.Name), zap.String("origin", l.origin))
	})
	return l.text
}

// Origin reports where the prompt came from, empty before the first Prompt call.
func (l *PromptLoader) Origin() string {
	return l.origin
}

func (l *PromptLoader) resolve(ctx context.Context) (string, string) {
	if l.cfg.Name != "" {
		text, err := l.fetch(ctx)
		switch {
		case err == nil:
			if err := l.writeCache(text); err != nil {
				l.log.Warn("failed to cache prompt", zap.String("path", l.cfg.CachePath), zap.Error(err))
			}
			return text, PromptFromLangfuse
		case !errors.Is(err, errLangfuseDisabled):
			l.log.Warn("prompt fetch failed", zap.String("prompt", l.cfg.Name), zap.Error(err))
		}
	}

	if l.cfg.CachePath != "" {
		text, err := readPromptFile(l.cfg.CachePath)
		if err == nil {
			return text, PromptFromFile
		}
		l.log.Debug("no cached prompt", zap.String("path", l.cfg.CachePath), zap.Error(err))
	}
	return l.cfg.Default, PromptFromDefault
}

func (l *PromptLoader) promptURL() (string, error) {
	u, err := url.Parse(strings.TrimSuffix(l.cfg.BaseURL, "/"))
	if err != nil {
		return "", fmt.Errorf("invalid LANGFUSE_BASE_URL: %w", err)
	}
	u.Path = strings.TrimSuffix(u.Path, "/") + "/api/public/v2/prompts/" + url.PathEscape(l.cfg.Name)
	if l.cfg.Label != "" {
		u.RawQuery = url.Values{"label": {l.cfg.Label}}.Encode()
	}
	return u.String(), nil
}

func (l *PromptLoader) fetch(ctx context.Context) (string, error) {
	if l.cfg.BaseURL == "" || l.cfg.PublicKey == "" || l.cfg.SecretKey == "" {
		return "", errLangfuseDisabled
	}
	endpoint, err := l.promptURL()
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("create prompt request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(l.cfg.PublicKey, l.cfg.SecretKey)

	resp, err := l.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("call prompt API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("prompt API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload promptPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("decode prompt response: %w", err)
	}
	text, err := payload.render()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", errors.New("prompt is empty")
	}
	return text, nil
}

// promptPayload is the part of a Langfuse prompt version the coach needs.
// Text prompts carry a string, chat prompts a message list.
type promptPayload struct {
	Type   string          `json:"type"`
	Prompt json.RawMessage `json:"prompt"`
}

type promptMessage struct {
	Type    string `json:"type"`
	Role    string `json:"role"`
	Content string `json:"content"`
	Name    string `json:"name"`
}

func (p promptPayload) render() (string, error) {
	switch p.Type {
	case "", "text":
		var text string
		if err := json.Unmarshal(p.Prompt, &text); err != nil {
			return "", fmt.Errorf("parse text prompt: %w", err)
		}
		return text, nil
	case "chat":
		var messages []promptMessage
		if err := json.Unmarshal(p.Prompt, &messages); err != nil {
			return "", fmt.Errorf("parse chat prompt: %w", err)
		}
		return renderChat(messages), nil
	default:
		return "", fmt.Errorf("unsupported prompt type %q", p.Type)
	}
}

// renderChat flattens chat messages into "ROLE: content" blocks. Placeholders
// stay as {{name}} markers.
func renderChat(messages []promptMessage) string {
	parts := make([]string, 0, len(messages))
	for _, m := range messages {
		content := m.Content
		if m.Type == "placeholder" {
			if m.Name == "" {
				continue
			}
			content = "{{" + m.Name + "}}"
		}
		if content == "" {
			continue
		}
		role := strings.ToUpper(m.Role)
		if role == "" {
			role = "MESSAGE"
		}
		parts = append(parts, role+": "+content)
	}
	return strings.Join(parts, "\n\n")
}

func readPromptFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", errors.New("prompt file is empty")
	}
	return string(data), nil
}

func (l *PromptLoader) writeCache(text string) error {
	path := l.cfg.CachePath
	if path == "" {
		return nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, []byte(text), 0o600)
}
