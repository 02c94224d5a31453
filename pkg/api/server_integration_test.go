package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teambuh/slamon/ent"
	"github.com/teambuh/slamon/ent/chat"
	"github.com/teambuh/slamon/pkg/config"
	"github.com/teambuh/slamon/pkg/database"
	"github.com/teambuh/slamon/pkg/faq"
	"github.com/teambuh/slamon/pkg/models"
	"github.com/teambuh/slamon/pkg/services"
	testdb "github.com/teambuh/slamon/test/database"
)

type recordingHandler struct {
	events []*models.ChatEvent
}

func (h *recordingHandler) HandleEvent(_ context.Context, event *models.ChatEvent) error {
	h.events = append(h.events, event)
	return nil
}

type apiFixture struct {
	client  *database.Client
	router  *gin.Engine
	handler *recordingHandler
	faqs    *services.FAQService
	matcher *faq.Matcher
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	client := testdb.NewTestClient(t)
	handler := &recordingHandler{}
	faqs := services.NewFAQService(client.Client)
	matcher := faq.NewMatcher(client.Client, faq.DefaultCacheTTL)

	server := NewServer(ServerDeps{
		DB:          client,
		Config:      &config.Config{System: &config.SystemConfig{ListenAddr: ":0", AdminRateLimit: 100, AdminRateWindow: time.Minute}},
		Settings:    services.NewSettingsService(client.Client),
		Chats:       services.NewChatService(client.Client),
		Requests:    services.NewRequestService(client.Client),
		FAQs:        faqs,
		Invitations: services.NewInvitationService(client.Client),
		Matcher:     matcher,
		Handler:     handler,
		BotToken:    "test-token",
		BotID:       777,
	})
	return &apiFixture{
		client:  client,
		router:  server.Router(),
		handler: handler,
		faqs:    faqs,
		matcher: matcher,
	}
}

func (f *apiFixture) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func (f *apiFixture) createChat(t *testing.T, id int64) *ent.Chat {
	t.Helper()
	c, err := f.client.Chat.Create().
		SetID(id).
		SetTitle("ООО Тест").
		SetChatType(chat.ChatTypeSupergroup).
		Save(context.Background())
	require.NoError(t, err)
	return c
}

func TestAPI_HealthAndReady(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)

	rec = f.do(t, http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPI_SettingsRoundTrip(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodGet, "/api/v1/settings", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"default_sla_threshold_minutes":60`)

	threshold := 90
	rec = f.do(t, http.MethodPut, "/api/v1/settings", UpdateSettingsRequest{
		DefaultSLAThresholdMinutes: &threshold,
		GlobalManagerIDs:           []string{"900"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"default_sla_threshold_minutes":90`)
}

func TestAPI_SettingsValidation(t *testing.T) {
	f := newAPIFixture(t)

	bad := -5
	rec := f.do(t, http.MethodPut, "/api/v1/settings", UpdateSettingsRequest{
		DefaultSLAThresholdMinutes: &bad,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAPI_ChatUpdate(t *testing.T) {
	f := newAPIFixture(t)
	f.createChat(t, -400100)

	enabled := true
	threshold := 30
	rec := f.do(t, http.MethodPatch, "/api/v1/chats/-400100", UpdateChatRequest{
		SLAEnabled:          &enabled,
		SLAThresholdMinutes: &threshold,
		AccountantIDs:       []string{"101"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	c, err := f.client.Chat.Get(context.Background(), -400100)
	require.NoError(t, err)
	assert.True(t, c.SLAEnabled)
	require.NotNil(t, c.SLAThresholdMinutes)
	assert.Equal(t, 30, *c.SLAThresholdMinutes)
}

func TestAPI_ChatNotFound(t *testing.T) {
	f := newAPIFixture(t)
	rec := f.do(t, http.MethodGet, "/api/v1/chats/12345", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAPI_FAQCreateInvalidatesMatcher(t *testing.T) {
	f := newAPIFixture(t)
	ctx := context.Background()

	// Warm the matcher cache while the FAQ base is empty.
	_, err := f.matcher.Match(ctx, "реквизиты для оплаты")
	require.NoError(t, err)

	rec := f.do(t, http.MethodPost, "/api/v1/faq", CreateFAQRequest{
		Question: "Какие реквизиты?",
		Keywords: []string{"реквизиты"},
		Answer:   "В закрепе.",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// The new entry is visible immediately, without waiting out the TTL.
	match, err := f.matcher.Match(ctx, "реквизиты для оплаты")
	require.NoError(t, err)
	require.NotNil(t, match)
	assert.Equal(t, "В закрепе.", match.Item.Answer)
}

func TestAPI_InvitationLifecycle(t *testing.T) {
	f := newAPIFixture(t)
	f.createChat(t, -400101)

	rec := f.do(t, http.MethodPost, "/api/v1/chats/-400101/invitations", CreateInvitationRequest{TTLHours: 24})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)

	rec = f.do(t, http.MethodPost, fmt.Sprintf("/api/v1/invitations/%s/redeem", created.ID),
		RedeemInvitationRequest{UserID: 42})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"outcome":"ok"`)

	// Second redemption of the same token is refused.
	rec = f.do(t, http.MethodPost, fmt.Sprintf("/api/v1/invitations/%s/redeem", created.ID),
		RedeemInvitationRequest{UserID: 43})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"outcome":"already_used"`)
}

func TestAPI_WebhookTokenCheck(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(t, http.MethodPost, "/webhook/telegram/wrong-token", map[string]any{"update_id": 1})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, f.handler.events)

	update := map[string]any{
		"update_id": 1,
		"message": map[string]any{
			"message_id": 5,
			"date":       time.Now().Unix(),
			"text":       "привет",
			"chat":       map[string]any{"id": -400102, "type": "supergroup", "title": "ООО Тест"},
			"from":       map[string]any{"id": 42, "is_bot": false, "first_name": "Иван"},
		},
	}
	rec = f.do(t, http.MethodPost, "/webhook/telegram/test-token", update)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, f.handler.events, 1)
	assert.Equal(t, models.EventMessage, f.handler.events[0].Type)
	assert.Equal(t, int64(-400102), f.handler.events[0].Chat.ID)
}

func TestSlidingWindow_Limits(t *testing.T) {
	w := newSlidingWindow(2, time.Minute)
	now := time.Now()

	assert.True(t, w.Allow("a", now))
	assert.True(t, w.Allow("a", now.Add(time.Second)))
	assert.False(t, w.Allow("a", now.Add(2*time.Second)))
	// A different client has its own budget.
	assert.True(t, w.Allow("b", now.Add(2*time.Second)))
	// The window slides: old entries expire.
	assert.True(t, w.Allow("a", now.Add(2*time.Minute)))
}

func TestSlidingWindow_EvictsIdleClients(t *testing.T) {
	w := newSlidingWindow(2, time.Minute)
	now := time.Now()

	assert.True(t, w.Allow("a", now))
	assert.True(t, w.Allow("b", now.Add(2*time.Minute)))

	// "a" has been idle for a full window; its key is gone, "b" remains.
	w.mu.Lock()
	_, hasA := w.clients["a"]
	_, hasB := w.clients["b"]
	w.mu.Unlock()
	assert.False(t, hasA)
	assert.True(t, hasB)
}
