package whatsapp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"tailor-backend/internal/config"
)

// Provider defines the interface for WhatsApp API providers
type Provider interface {
	SendTemplateMessage(phone, templateName string, params []string) error
	GetName() string
}

// NewProvider picks the configured provider. Without an API key the mock
// provider is used, so development setups log messages instead of sending.
func NewProvider(cfg *config.Config) Provider {
	if cfg.WhatsApp.APIKey == "" {
		log.Printf("[WhatsApp] No API key configured, using mock provider")
		return &MockService{}
	}

	switch strings.ToLower(cfg.WhatsApp.Provider) {
	case "", "aisensy":
		return NewAiSensyService(cfg.WhatsApp.APIKey)
	default:
		log.Printf("[WhatsApp] Unknown provider %q, using mock provider", cfg.WhatsApp.Provider)
		return &MockService{}
	}
}

// AiSensyService implements WhatsApp via AiSensy
type AiSensyService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewAiSensyService(apiKey string) *AiSensyService {
	return &AiSensyService{
		apiKey:  apiKey,
		baseURL: "https://backend.aisensy.com/campaign/t1/api/v2",
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// SendTemplateMessage sends a template message via AiSensy
func (s *AiSensyService) SendTemplateMessage(phone, templateName string, params []string) error {
	payload := map[string]interface{}{
		"apiKey":         s.apiKey,
		"campaignName":   templateName,
		"destination":    formatPhoneNumber(phone),
		"userName":       "Customer",
		"templateParams": params,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest("POST", s.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("AiSensy API error: %s", string(body))
	}

	return nil
}

func (s *AiSensyService) GetName() string {
	return "AiSensy"
}

// MockService logs instead of sending; used when no provider is configured.
type MockService struct{}

func (s *MockService) SendTemplateMessage(phone, templateName string, params []string) error {
	log.Printf("[WhatsApp] MOCK send to %s template=%s params=%v", formatPhoneNumber(phone), templateName, params)
	return nil
}

func (s *MockService) GetName() string {
	return "Mock"
}

// formatPhoneNumber normalizes to an Indian E.164 number without the plus.
func formatPhoneNumber(phone string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)

	if len(digits) == 10 {
		return "91" + digits
	}
	return digits
}
