package strategy

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"
)

// GeneratorClient - клиент внешнего сервиса генерации стратегий.
//
// Сервис принимает инструкцию на естественном языке (и, опционально,
// текущий исходник стратегии) и возвращает текст-кандидат. ВАЖНО: движок
// этот текст НЕ исполняет - он отдается человеку на ревью, а играют только
// вкомпилированные стратегии из Registry. Генерация - чисто вспомогательная
// фича фронтенда.
type GeneratorClient struct {
	Endpoint string
	APIKey   string
	HTTP     *http.Client
}

// ErrGeneratorDisabled возвращается, если внешний сервис не сконфигурирован.
var ErrGeneratorDisabled = errors.New("strategy generator is not configured")

// NewGeneratorFromEnv читает конфигурацию из окружения.
// XMAS_STRATEGY_API - URL эндпоинта, XMAS_STRATEGY_API_KEY - ключ (опционально).
func NewGeneratorFromEnv() *GeneratorClient {
	return &GeneratorClient{
		Endpoint: os.Getenv("XMAS_STRATEGY_API"),
		APIKey:   os.Getenv("XMAS_STRATEGY_API_KEY"),
		HTTP:     &http.Client{Timeout: 30 * time.Second},
	}
}

// Enabled сообщает, настроен ли внешний сервис.
func (c *GeneratorClient) Enabled() bool {
	return c.Endpoint != ""
}

type generateRequest struct {
	Instruction string `json:"instruction"`
	Source      string `json:"source,omitempty"`
}

type generateResponse struct {
	Source string `json:"source"`
}

// Generate отправляет инструкцию сервису и возвращает текст-кандидат стратегии.
// Ретраев нет: сбой терминален для запроса, решение о повторе - за вызывающим.
func (c *GeneratorClient) Generate(ctx context.Context, instruction, existingSource string) (string, error) {
	if !c.Enabled() {
		return "", ErrGeneratorDisabled
	}

	body, err := json.Marshal(generateRequest{
		Instruction: instruction,
		Source:      existingSource,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("call generator: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generator returned status %d", resp.StatusCode)
	}

	var parsed generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if parsed.Source == "" {
		return "", errors.New("generator returned empty source")
	}
	return parsed.Source, nil
}
