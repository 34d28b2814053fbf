package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/school-board/internal/handlers"
	"github.com/diegoclair/school-board/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const SigningSecret = "test-signing-secret"

type ServiceMocks struct {
	BoardServiceMock *mocks.MockBoardService
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		BoardServiceMock: mocks.NewMockBoardService(ctrl),
	}

	handler = handlers.NewSlackHandler(m.BoardServiceMock, SigningSecret, zap.NewNop())

	return
}

// GetRouterTest mounts the full HTTP surface over a mocked board service
func GetRouterTest(t *testing.T) (m ServiceMocks, router http.Handler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		BoardServiceMock: mocks.NewMockBoardService(ctrl),
	}

	logger := zap.NewNop()
	router = handlers.NewRouter(handlers.RouterConfig{
		Board:          m.BoardServiceMock,
		Slack:          handlers.NewSlackHandler(m.BoardServiceMock, SigningSecret, logger),
		AllowedOrigins: []string{"http://pano.local"},
		AdminRateLimit: 1000,
		Logger:         logger,
	})

	return
}

// CreateSlackRequest creates a properly signed Slack slash command request
func CreateSlackRequest(t *testing.T, text, userID, signingSecret string) *http.Request {
	t.Helper()

	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {"T123456789"},
		"team_domain":  {"test-school"},
		"channel_id":   {"C123456789"},
		"channel_name": {"pano"},
		"user_id":      {userID},
		"user_name":    {"mudur-yardimcisi"},
		"command":      {"/board"},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	body := form.Encode()

	req, err := http.NewRequest(http.MethodPost, "/slack/commands", strings.NewReader(body))
	require.NoError(t, err)

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)

	sig := generateSlackSignature(signingSecret, timestamp, body)
	req.Header.Set("X-Slack-Signature", sig)

	return req
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
