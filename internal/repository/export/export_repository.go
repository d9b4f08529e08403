package export

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ismaelallamtaoui/eco-score/domain"
	"github.com/ismaelallamtaoui/eco-score/pkg/logger"

	"github.com/pobyzaarif/goshortcute"
)

type WebhookConfig struct {
	WebhookURL        string
	BasicAuthUsername string
	BasicAuthPassword string
}

// WebhookRepository pushes computed score exports to a partner endpoint.
type WebhookRepository struct {
	webhookConfig WebhookConfig
}

func NewWebhookRepository(cfg WebhookConfig) *WebhookRepository {
	return &WebhookRepository{
		cfg,
	}
}

type payloadPushScores struct {
	GeneratedAt time.Time            `json:"generated_at"`
	Month       int                  `json:"month"`
	Scores      []domain.ScoreResult `json:"scores"`
}

func (r WebhookRepository) PushScores(month int, scores []domain.ScoreResult) (err error) {
	if r.webhookConfig.WebhookURL == "" {
		return fmt.Errorf("export webhook url is not configured")
	}

	payload := payloadPushScores{
		GeneratedAt: time.Now().UTC(),
		Month:       month,
		Scores:      scores,
	}

	payloadByte, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal json payload: %w", err)
	}

	client := &http.Client{Timeout: 10 * time.Second}
	req, err := http.NewRequest(http.MethodPost, r.webhookConfig.WebhookURL, strings.NewReader(string(payloadByte)))
	if err != nil {
		return err
	}

	buildBasicAuth := goshortcute.StringtoBase64Encode(r.webhookConfig.BasicAuthUsername + ":" + r.webhookConfig.BasicAuthPassword)
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Authorization", "Basic "+buildBasicAuth)

	res, err := client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 200 && res.StatusCode <= 299 {
		return nil
	}
	bodyBytes, _ := io.ReadAll(res.Body)
	logger.Error("export webhook rejected payload", "status", res.StatusCode, "body", string(bodyBytes))

	return fmt.Errorf("export webhook returned negative response %v", res.StatusCode)
}
