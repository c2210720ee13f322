package httpapi

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/golang-jwt/jwt/v5"
	"github.com/riskibarqy/scout-market/internal/infrastructure/account/jwtauth"
	"github.com/riskibarqy/scout-market/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/scout-market/internal/platform/id"
	"github.com/riskibarqy/scout-market/internal/platform/logging"
	"github.com/riskibarqy/scout-market/internal/platform/metrics"
	"github.com/riskibarqy/scout-market/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type testServer struct {
	router   http.Handler
	verifier *jwtauth.Verifier
	metrics  *metrics.HTTP
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db := memory.NewDatabase()
	ids := id.NewUUIDGenerator()
	logger := logging.NewNop()

	userRepo := memory.NewUserRepository(db)
	lookupRepo := memory.NewLookupRepository(db)
	playerAdRepo := memory.NewPlayerAdvertisementRepository(db)
	clubAdRepo := memory.NewClubAdvertisementRepository(db)

	services := Services{
		Users:         usecase.NewUserService(userRepo, logger),
		Lookups:       usecase.NewLookupService(lookupRepo),
		PlayerAds:     usecase.NewPlayerAdvertisementService(playerAdRepo, lookupRepo, ids),
		ClubAds:       usecase.NewClubAdvertisementService(clubAdRepo, lookupRepo, ids),
		ClubOffers:    usecase.NewClubOfferService(memory.NewClubOfferRepository(db), playerAdRepo, lookupRepo, ids),
		PlayerOffers:  usecase.NewPlayerOfferService(memory.NewPlayerOfferRepository(db), clubAdRepo, lookupRepo, ids),
		ClubHistories: usecase.NewClubHistoryService(memory.NewClubHistoryRepository(db), lookupRepo, ids),
		Chats:         usecase.NewChatService(memory.NewChatRepository(db), memory.NewMessageRepository(db), userRepo, ids, logger),
		Favorites:     usecase.NewFavoriteService(memory.NewFavoriteRepository(db), playerAdRepo, clubAdRepo, ids),
		Problems:      usecase.NewProblemService(memory.NewProblemRepository(db), ids),
	}
	services.Summary = usecase.NewSummaryService(
		services.Users, services.PlayerAds, services.ClubAds, services.ClubOffers, services.PlayerOffers,
		services.ClubHistories, services.Chats, services.Problems, services.Favorites,
	)

	verifier, err := jwtauth.NewVerifier("router-test-secret", "")
	require.NoError(t, err)

	m := metrics.NewHTTP("scout_market_router_test")
	router := NewRouter(RouterConfig{
		Handler:    NewHandler(services, logger),
		Verifier:   verifier,
		Authorizer: services.Users,
		Logger:     logger,
		Metrics:    m,
	})

	return &testServer{router: router, verifier: verifier, metrics: m}
}

func (s *testServer) token(t *testing.T, subject, role string) string {
	t.Helper()

	signed, err := s.verifier.Sign(jwtauth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Role:  role,
		Email: subject + "@example.com",
	})
	require.NoError(t, err)
	return signed
}

func (s *testServer) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	switch v := body.(type) {
	case nil:
	case string:
		payload = []byte(v)
	default:
		encoded, err := sonic.Marshal(v)
		require.NoError(t, err)
		payload = encoded
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func dataObject(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	data, ok := decodeEnvelope(t, rec)["data"].(map[string]any)
	require.True(t, ok, "expected object data, body=%s", rec.Body.String())
	return data
}

func dataList(t *testing.T, rec *httptest.ResponseRecorder) []any {
	t.Helper()
	data, ok := decodeEnvelope(t, rec)["data"].([]any)
	require.True(t, ok, "expected list data, body=%s", rec.Body.String())
	return data
}

func playerAdBody() map[string]any {
	return map[string]any{
		"playerPositionId": 10,
		"league":           "Premier League",
		"region":           "Almaty",
		"age":              22,
		"height":           181,
		"playerFootId":     2,
		"salaryRange":      map[string]any{"min": "1000", "max": "5000"},
		"endDate":          time.Now().Add(30 * 24 * time.Hour).UTC().Format(time.RFC3339),
	}
}

func clubAdBody() map[string]any {
	return map[string]any{
		"playerPositionId": 10,
		"clubName":         "Kairat",
		"league":           "Premier League",
		"region":           "Almaty",
		"salaryRange":      map[string]any{"min": "2000", "max": "8000"},
		"endDate":          time.Now().Add(30 * 24 * time.Hour).UTC().Format(time.RFC3339),
	}
}

func clubOfferBody(adID string) map[string]any {
	return map[string]any{
		"playerAdvertisementId": adID,
		"playerPositionId":      10,
		"clubName":              "Kairat",
		"league":                "Premier League",
		"region":                "Almaty",
		"salary":                "4500",
		"additionalInformation": "two year deal",
	}
}

func TestRouter_SystemRoutes(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)

	rec := srv.do(t, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", dataObject(t, rec)["status"])

	rec = srv.do(t, http.MethodGet, "/api/problems", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/problems", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_ProvisionsCallerOnFirstRequest(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	token := srv.token(t, "player-1", "user")

	rec := srv.do(t, http.MethodGet, "/api/users/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	me := dataObject(t, rec)
	assert.Equal(t, "player-1", me["id"])
	assert.Equal(t, "player-1@example.com", me["email"])
	assert.Equal(t, "user", me["role"])

	rec = srv.do(t, http.MethodPut, "/api/users/player-1", token, map[string]any{
		"firstName": "Aidos",
		"lastName":  "Serik",
		"location":  "Astana",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Aidos", dataObject(t, rec)["firstName"])

	rec = srv.do(t, http.MethodGet, "/api/users/count", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, dataObject(t, rec)["count"])
}

func TestRouter_AdvertisementLifecycle(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	player := srv.token(t, "player-1", "user")
	other := srv.token(t, "player-2", "user")

	rec := srv.do(t, http.MethodPost, "/api/player-advertisements", player, playerAdBody())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	ad := dataObject(t, rec)
	adID := ad["id"].(string)
	assert.Equal(t, "player-1", ad["playerId"])
	assert.Equal(t, "1000", ad["salaryRange"].(map[string]any)["min"])

	rec = srv.do(t, http.MethodGet, "/api/player-advertisements/active", other, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, dataList(t, rec), 1)

	rec = srv.do(t, http.MethodGet, "/api/player-advertisements/inactive", other, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, dataList(t, rec))

	rec = srv.do(t, http.MethodGet, "/api/player-advertisements/user/player-1", other, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, dataList(t, rec), 1)

	body := playerAdBody()
	body["region"] = "Shymkent"
	rec = srv.do(t, http.MethodPut, "/api/player-advertisements/"+adID, other, body)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = srv.do(t, http.MethodPut, "/api/player-advertisements/"+adID, player, body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "Shymkent", dataObject(t, rec)["region"])

	rec = srv.do(t, http.MethodGet, "/api/player-advertisements/count?state=active", other, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 1, dataObject(t, rec)["count"])

	rec = srv.do(t, http.MethodDelete, "/api/player-advertisements/"+adID, player, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/player-advertisements/"+adID, player, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_RejectsMalformedBodies(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	token := srv.token(t, "player-1", "user")

	rec := srv.do(t, http.MethodPost, "/api/problems", token, `{"title":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/problems", token, `{"title":"a","description":"b","severity":"high"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/problems", token, map[string]any{"title": "missing description"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := playerAdBody()
	body["playerPositionId"] = 999
	rec = srv.do(t, http.MethodPost, "/api/player-advertisements", token, body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/club-offers?status=pending", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_ClubOfferDecision(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	player := srv.token(t, "player-1", "user")
	club := srv.token(t, "club-1", "user")
	stranger := srv.token(t, "stranger", "user")

	rec := srv.do(t, http.MethodPost, "/api/player-advertisements", player, playerAdBody())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	adID := dataObject(t, rec)["id"].(string)

	rec = srv.do(t, http.MethodPost, "/api/club-offers", player, clubOfferBody(adID))
	assert.Equal(t, http.StatusBadRequest, rec.Code, "offers on your own advertisement are rejected")

	rec = srv.do(t, http.MethodPost, "/api/club-offers", club, clubOfferBody(adID))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := dataObject(t, rec)
	offerID := created["id"].(string)
	assert.Equal(t, "offered", created["offerStatus"])
	assert.Equal(t, "club-1", created["clubMemberId"])

	rec = srv.do(t, http.MethodGet, "/api/club-offers/received", player, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, dataList(t, rec), 1)

	rec = srv.do(t, http.MethodPut, "/api/club-offers/"+offerID+"/accept", stranger, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = srv.do(t, http.MethodPut, "/api/club-offers/"+offerID+"/accept", player, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "accepted", dataObject(t, rec)["offerStatus"])

	rec = srv.do(t, http.MethodGet, "/api/club-offers?status=accepted", club, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, dataList(t, rec), 1)

	rec = srv.do(t, http.MethodGet, "/api/club-offers/count?status=offered", club, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 0, dataObject(t, rec)["count"])
}

func TestRouter_PlayerOfferOnClubAdvertisement(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	player := srv.token(t, "player-1", "user")
	club := srv.token(t, "club-1", "user")

	rec := srv.do(t, http.MethodPost, "/api/club-advertisements", club, clubAdBody())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	adID := dataObject(t, rec)["id"].(string)

	rec = srv.do(t, http.MethodPost, "/api/player-offers", player, map[string]any{
		"clubAdvertisementId": adID,
		"age":                 21,
		"height":              179,
		"playerFootId":        2,
		"salary":              "3000",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	offerID := dataObject(t, rec)["id"].(string)

	rec = srv.do(t, http.MethodPut, "/api/player-offers/"+offerID+"/reject", club, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "rejected", dataObject(t, rec)["offerStatus"])

	rec = srv.do(t, http.MethodGet, "/api/player-offers/user/player-1", club, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, dataList(t, rec), 1)
}

func TestRouter_Favorites(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	player := srv.token(t, "player-1", "user")
	club := srv.token(t, "club-1", "user")

	rec := srv.do(t, http.MethodPost, "/api/player-advertisements", player, playerAdBody())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	adID := dataObject(t, rec)["id"].(string)

	rec = srv.do(t, http.MethodPost, "/api/favorite-player-advertisements", club, map[string]any{"advertisementId": adID})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	favoriteID := dataObject(t, rec)["id"].(string)

	rec = srv.do(t, http.MethodPost, "/api/favorite-player-advertisements", club, map[string]any{"advertisementId": adID})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/favorite-club-advertisements", club, map[string]any{"advertisementId": "missing"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/favorite-player-advertisements/advertisements", club, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	ads := dataList(t, rec)
	require.Len(t, ads, 1)
	assert.Equal(t, adID, ads[0].(map[string]any)["id"])

	rec = srv.do(t, http.MethodGet, "/api/favorite-player-advertisements/user/club-1", player, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = srv.do(t, http.MethodDelete, "/api/favorite-player-advertisements/"+favoriteID, player, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = srv.do(t, http.MethodDelete, "/api/favorite-player-advertisements/"+favoriteID, club, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/favorite-player-advertisements", club, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, dataList(t, rec))
}

func TestRouter_OwnerScopedListingsRequireUserID(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	player := srv.token(t, "player-1", "user")
	club := srv.token(t, "club-1", "user")
	admin := srv.token(t, "admin-1", "admin")

	rec := srv.do(t, http.MethodPost, "/api/player-advertisements", player, playerAdBody())
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	adID := dataObject(t, rec)["id"].(string)

	rec = srv.do(t, http.MethodPost, "/api/club-offers", club, clubOfferBody(adID))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = srv.do(t, http.MethodGet, "/api/club-offers/user/club-1", player, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, dataList(t, rec), 1)

	for _, prefix := range []string{
		"/api/player-advertisements",
		"/api/club-advertisements",
		"/api/club-offers",
		"/api/player-offers",
		"/api/club-histories",
		"/api/chats",
		"/api/favorite-player-advertisements",
		"/api/favorite-club-advertisements",
	} {
		rec := srv.do(t, http.MethodGet, prefix+"/user/%20", admin, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, prefix)
	}
}

func TestRouter_ChatAndMessages(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	player := srv.token(t, "player-1", "user")
	club := srv.token(t, "club-1", "user")
	stranger := srv.token(t, "stranger", "user")

	rec := srv.do(t, http.MethodGet, "/api/users/me", club, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(t, http.MethodPost, "/api/chats", player, map[string]any{"userId": "club-1"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	chatID := dataObject(t, rec)["id"].(string)

	rec = srv.do(t, http.MethodPost, "/api/chats", club, map[string]any{"userId": "player-1"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, chatID, dataObject(t, rec)["id"], "reopening returns the same chat")

	rec = srv.do(t, http.MethodPost, "/api/messages", player, map[string]any{"chatId": chatID, "content": "hello"})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	msg := dataObject(t, rec)
	assert.Equal(t, "player-1", msg["senderId"])
	assert.Equal(t, "club-1", msg["receiverId"])

	rec = srv.do(t, http.MethodGet, "/api/messages/chat/"+chatID, club, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, dataList(t, rec), 1)

	rec = srv.do(t, http.MethodGet, "/api/messages/chat/"+chatID, stranger, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/chats", club, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, dataList(t, rec), 1)

	rec = srv.do(t, http.MethodGet, "/api/chats", stranger, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, dataList(t, rec))
}

func TestRouter_AdminOnlyOperations(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	member := srv.token(t, "player-1", "user")
	admin := srv.token(t, "admin-1", "admin")

	rec := srv.do(t, http.MethodPost, "/api/problems", member, map[string]any{
		"title":       "Cannot upload",
		"description": "The page hangs, then errors",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	problemID := dataObject(t, rec)["id"].(string)

	rec = srv.do(t, http.MethodPut, "/api/problems/"+problemID+"/solve", member, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = srv.do(t, http.MethodPut, "/api/problems/"+problemID+"/solve", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, true, dataObject(t, rec)["isSolved"])

	rec = srv.do(t, http.MethodGet, "/api/problems/solved", member, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, dataList(t, rec), 1)

	rec = srv.do(t, http.MethodGet, "/api/admin/summary", member, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/admin/summary", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	summary := dataObject(t, rec)
	assert.EqualValues(t, 2, summary["users"])
	assert.EqualValues(t, 1, summary["problems"])
	assert.EqualValues(t, 0, summary["unsolvedProblems"])
}

func TestRouter_BlockedUserIsForbidden(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	member := srv.token(t, "player-1", "user")
	admin := srv.token(t, "admin-1", "admin")

	rec := srv.do(t, http.MethodGet, "/api/users/me", member, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(t, http.MethodPut, "/api/users/player-1/block", member, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = srv.do(t, http.MethodPut, "/api/users/player-1/block", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, true, dataObject(t, rec)["isBlocked"])

	rec = srv.do(t, http.MethodGet, "/api/users/me", member, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = srv.do(t, http.MethodPut, "/api/users/player-1/unblock", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/users/me", member, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_ExportProblems(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	member := srv.token(t, "player-1", "user")
	admin := srv.token(t, "admin-1", "admin")

	rec := srv.do(t, http.MethodPost, "/api/problems", member, map[string]any{
		"title":       "Broken, badly",
		"description": "Search returns nothing",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = srv.do(t, http.MethodGet, "/api/problems/export", member, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = srv.do(t, http.MethodGet, "/api/problems/export", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/csv"))
	assert.Equal(t, `attachment; filename="problems.csv"`, rec.Header().Get("Content-Disposition"))
	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "id,title,description,creation_date,is_solved,requester_id", lines[0])
	assert.Contains(t, lines[1], `"Broken, badly"`)

	rec = srv.do(t, http.MethodGet, "/api/problems/export?format=xlsx", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows("problems")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Broken, badly", rows[1][1])

	rec = srv.do(t, http.MethodGet, "/api/problems/export?format=pdf", admin, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_LookupsAndMetrics(t *testing.T) {
	t.Parallel()
	srv := newTestServer(t)
	token := srv.token(t, "player-1", "user")

	rec := srv.do(t, http.MethodGet, "/api/offer-statuses", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, dataList(t, rec), 3)

	rec = srv.do(t, http.MethodGet, "/api/player-feet", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, dataList(t, rec))

	rec = srv.do(t, http.MethodGet, "/api/problems/does-not-exist", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = srv.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `route="GET /api/offer-statuses"`)
	assert.Contains(t, body, `route="GET /api/problems/{id}"`)
	assert.NotContains(t, body, "does-not-exist")
}
