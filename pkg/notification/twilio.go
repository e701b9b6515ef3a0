package notification

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"article-service/pkg/utils"

	"go.uber.org/zap"
)

const twilioAPIBase = "https://api.twilio.com/2010-04-01"

// TwilioSender posts messages to the Twilio Messages API over WhatsApp.
type TwilioSender struct {
	accountSID string
	authToken  string
	from       string
	baseURL    string
	client     *http.Client
	log        *zap.Logger
}

func NewTwilioSender(config utils.TwilioConfig, log *zap.Logger) *TwilioSender {
	return &TwilioSender{
		accountSID: config.AccountSID,
		authToken:  config.AuthToken,
		from:       config.From,
		baseURL:    twilioAPIBase,
		client:     &http.Client{Timeout: 10 * time.Second},
		log:        log.With(zap.String("sender", "twilio")),
	}
}

func (s *TwilioSender) Send(ctx context.Context, phoneNumber, message string) error {
	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", s.baseURL, s.accountSID)

	form := url.Values{}
	form.Set("From", "whatsapp:"+s.from)
	form.Set("To", "whatsapp:"+phoneNumber)
	form.Set("Body", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build twilio request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(s.accountSID, s.authToken)

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Error("Twilio request failed",
			zap.Error(err),
			zap.String("to", phoneNumber),
		)
		return fmt.Errorf("send twilio message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		s.log.Error("Twilio rejected message",
			zap.Int("status", resp.StatusCode),
			zap.String("to", phoneNumber),
			zap.ByteString("body", body),
		)
		return fmt.Errorf("twilio responded %d", resp.StatusCode)
	}

	s.log.Info("Message dispatched", zap.String("to", phoneNumber))
	return nil
}
