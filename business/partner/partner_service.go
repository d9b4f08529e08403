package partner

import (
	"errors"
	"io"
	"time"

	"github.com/ismaelallamtaoui/eco-score/domain"
	"github.com/ismaelallamtaoui/eco-score/internal/dataset"
	"github.com/ismaelallamtaoui/eco-score/pkg/config"
	"github.com/ismaelallamtaoui/eco-score/pkg/logger"
	"github.com/ismaelallamtaoui/eco-score/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

// previewLimit caps how many parsed rows an upload response echoes back.
const previewLimit = 50

type partnerService struct {
	apiKeyHash string
	jwtSecret  string
	tokenTTL   time.Duration
}

func NewPartnerService(cfg config.PartnerConfig) *partnerService {
	return &partnerService{
		apiKeyHash: cfg.APIKeyHash,
		jwtSecret:  cfg.JWTSecret,
		tokenTTL:   time.Duration(cfg.TokenTTLMin) * time.Minute,
	}
}

// IssueToken exchanges the partner API key for a short-lived JWT.
func (s *partnerService) IssueToken(apiKey string) (string, error) {
	if s.apiKeyHash == "" {
		logger.Error("partner api key hash is not configured")
		return "", errors.New("partner access is not configured")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.apiKeyHash), []byte(apiKey)); err != nil {
		logger.Warn("partner token request with invalid api key")
		return "", errors.New("invalid api key")
	}

	token, err := utils.GenerateJWT("partner", s.jwtSecret, s.tokenTTL)
	if err != nil {
		logger.Error("failed to sign partner token", err)
		return "", errors.New("failed to issue token")
	}

	return token, nil
}

// PreviewCatalog validates an uploaded product CSV and returns the first
// parsed rows, as the upload page shows them back to the partner.
func (s *partnerService) PreviewCatalog(r io.Reader) ([]domain.Product, int, error) {
	products, err := dataset.ParseProducts(r)
	if err != nil {
		return nil, 0, err
	}

	total := len(products)
	if total > previewLimit {
		products = products[:previewLimit]
	}

	logger.Info("partner catalog upload parsed", "rows", total)

	return products, total, nil
}
