package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"fitness_tracker"
	"fitness_tracker/internal/models"
	"fitness_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int64
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseIdentity service.Identity
	parseErr      error

	lastSignUp      service.SignUpInput
	lastGenEmail    string
	lastGenPassword string
	lastParseToken  string
}

func (m *mockAuth) SignUp(ctx context.Context, in service.SignUpInput) (int64, error) {
	m.lastSignUp = in
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(ctx context.Context, email, password string) (string, error) {
	m.lastGenEmail = email
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) IssueToken(userID int64, role string) (string, error) {
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (service.Identity, error) {
	m.lastParseToken = token
	return m.parseIdentity, m.parseErr
}

type mockOAuth struct {
	providers   []string
	loginURL    string
	loginErr    error
	token       string
	callbackErr error

	lastState    string
	lastProvider string
	lastCode     string
}

func (m *mockOAuth) Providers() []string { return m.providers }
func (m *mockOAuth) LoginURL(provider, state string) (string, error) {
	m.lastProvider = provider
	m.lastState = state
	return m.loginURL, m.loginErr
}
func (m *mockOAuth) Callback(ctx context.Context, provider, code string) (string, error) {
	m.lastProvider = provider
	m.lastCode = code
	return m.token, m.callbackErr
}

type mockLogs struct {
	log    *models.ExerciseLog
	list   []models.ExerciseLog
	daily  *models.DailySummary
	result *service.ImportResult
	err    error

	lastUserID int64
	lastID     int64
	lastInput  service.LogInput
	lastFilter service.LogFilter
	lastDate   string
	lastText   string
}

func (m *mockLogs) Create(ctx context.Context, userID int64, in service.LogInput) (*models.ExerciseLog, error) {
	m.lastUserID, m.lastInput = userID, in
	return m.log, m.err
}
func (m *mockLogs) Update(ctx context.Context, userID, id int64, in service.LogInput) (*models.ExerciseLog, error) {
	m.lastUserID, m.lastID, m.lastInput = userID, id, in
	return m.log, m.err
}
func (m *mockLogs) Delete(ctx context.Context, userID, id int64) error {
	m.lastUserID, m.lastID = userID, id
	return m.err
}
func (m *mockLogs) List(ctx context.Context, userID int64, f service.LogFilter) ([]models.ExerciseLog, error) {
	m.lastUserID, m.lastFilter = userID, f
	return m.list, m.err
}
func (m *mockLogs) Daily(ctx context.Context, userID int64, date string) (*models.DailySummary, error) {
	m.lastUserID, m.lastDate = userID, date
	return m.daily, m.err
}
func (m *mockLogs) Import(ctx context.Context, userID int64, text string) (*service.ImportResult, error) {
	m.lastUserID, m.lastText = userID, text
	return m.result, m.err
}

type mockRooms struct {
	room  *models.Room
	rooms []models.Room
	err   error

	lastUserID int64
	lastID     int64
	lastCode   string
	lastStatus string
	lastInput  service.RoomInput
	calls      []string
}

func (m *mockRooms) CreateRoom(ctx context.Context, ownerID int64, in service.RoomInput) (*models.Room, error) {
	m.calls = append(m.calls, "create")
	m.lastUserID, m.lastInput = ownerID, in
	return m.room, m.err
}
func (m *mockRooms) GetRoom(ctx context.Context, id int64) (*models.Room, error) {
	m.calls = append(m.calls, "get")
	m.lastID = id
	return m.room, m.err
}
func (m *mockRooms) GetRoomByCode(ctx context.Context, code string) (*models.Room, error) {
	m.calls = append(m.calls, "getByCode")
	m.lastCode = code
	return m.room, m.err
}
func (m *mockRooms) ListRooms(ctx context.Context, status string) ([]models.Room, error) {
	m.calls = append(m.calls, "list")
	m.lastStatus = status
	return m.rooms, m.err
}
func (m *mockRooms) JoinRoom(ctx context.Context, userID int64, code string) (*models.Room, error) {
	m.calls = append(m.calls, "join")
	m.lastUserID, m.lastCode = userID, code
	return m.room, m.err
}
func (m *mockRooms) LeaveRoom(ctx context.Context, userID, id int64) (*models.Room, error) {
	m.calls = append(m.calls, "leave")
	m.lastUserID, m.lastID = userID, id
	return m.room, m.err
}
func (m *mockRooms) StartRoom(ctx context.Context, userID, id int64) (*models.Room, error) {
	m.calls = append(m.calls, "start")
	m.lastUserID, m.lastID = userID, id
	return m.room, m.err
}
func (m *mockRooms) CloseRoom(ctx context.Context, userID, id int64) (*models.Room, error) {
	m.calls = append(m.calls, "close")
	m.lastUserID, m.lastID = userID, id
	return m.room, m.err
}

type mockRanking struct {
	mu    sync.Mutex
	top   []models.RankEntry
	entry *models.RankEntry
	err   error

	lastLimit  int
	lastUserID int64
}

func (m *mockRanking) AddScore(ctx context.Context, userID int64, delta int) (float64, error) {
	return 0, m.err
}
func (m *mockRanking) Top(ctx context.Context, limit int) ([]models.RankEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastLimit = limit
	return m.top, m.err
}
func (m *mockRanking) limit() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastLimit
}
func (m *mockRanking) RankOf(ctx context.Context, userID int64) (*models.RankEntry, error) {
	m.lastUserID = userID
	return m.entry, m.err
}
func (m *mockRanking) RemoveUser(ctx context.Context, userID int64) error { return m.err }

// mockCatalog overrides the calls exercised by the catalog tests; anything else
// panics on the nil embedded interface.
type mockCatalog struct {
	service.ExerciseCatalog

	category  *models.ExerciseCategory
	exercises []models.Exercise
	err       error

	lastActor      service.Identity
	lastCategory   service.CategoryInput
	lastCategoryID int64
}

func (m *mockCatalog) CreateCategory(ctx context.Context, actor service.Identity, in service.CategoryInput) (*models.ExerciseCategory, error) {
	m.lastActor, m.lastCategory = actor, in
	return m.category, m.err
}
func (m *mockCatalog) DeleteCategory(ctx context.Context, actor service.Identity, id int64) error {
	m.lastActor = actor
	return m.err
}
func (m *mockCatalog) ListExercises(ctx context.Context, categoryID int64) ([]models.Exercise, error) {
	m.lastCategoryID = categoryID
	return m.exercises, m.err
}

type mockUsers struct {
	user *models.User
	info *models.UserInfo
	err  error

	lastUserID   int64
	lastNickname string
	lastInfo     service.UserInfoInput
	deleted      bool
}

func (m *mockUsers) GetMe(ctx context.Context, userID int64) (*models.User, error) {
	m.lastUserID = userID
	return m.user, m.err
}
func (m *mockUsers) UpdateNickname(ctx context.Context, userID int64, nickname string) (*models.User, error) {
	m.lastUserID, m.lastNickname = userID, nickname
	return m.user, m.err
}
func (m *mockUsers) DeleteMe(ctx context.Context, userID int64) error {
	m.lastUserID = userID
	m.deleted = m.err == nil
	return m.err
}
func (m *mockUsers) GetInfo(ctx context.Context, userID int64) (*models.UserInfo, error) {
	m.lastUserID = userID
	return m.info, m.err
}
func (m *mockUsers) SaveInfo(ctx context.Context, userID int64, in service.UserInfoInput) (*models.UserInfo, error) {
	m.lastUserID, m.lastInfo = userID, in
	return m.info, m.err
}

// mockItems overrides the calls exercised by the item tests.
type mockItems struct {
	service.ItemCatalog

	category *models.ItemCategory
	item     *models.Item
	items    []models.Item
	err      error

	lastActor      service.Identity
	lastID         int64
	lastCategoryID int64
	lastItem       service.ItemInput
}

func (m *mockItems) CreateItemCategory(ctx context.Context, actor service.Identity, in service.ItemCategoryInput) (*models.ItemCategory, error) {
	m.lastActor = actor
	return m.category, m.err
}
func (m *mockItems) GetItemCategory(ctx context.Context, id int64) (*models.ItemCategory, error) {
	m.lastID = id
	return m.category, m.err
}
func (m *mockItems) CreateItem(ctx context.Context, actor service.Identity, in service.ItemInput) (*models.Item, error) {
	m.lastActor, m.lastItem = actor, in
	return m.item, m.err
}
func (m *mockItems) UpdateItem(ctx context.Context, actor service.Identity, id int64, in service.ItemInput) (*models.Item, error) {
	m.lastActor, m.lastID, m.lastItem = actor, id, in
	return m.item, m.err
}
func (m *mockItems) DeleteItem(ctx context.Context, actor service.Identity, id int64) error {
	m.lastActor, m.lastID = actor, id
	return m.err
}
func (m *mockItems) GetItem(ctx context.Context, id int64) (*models.Item, error) {
	m.lastID = id
	return m.item, m.err
}
func (m *mockItems) ListItems(ctx context.Context, categoryID int64) ([]models.Item, error) {
	m.lastCategoryID = categoryID
	return m.items, m.err
}

type mockCharacters struct {
	character *models.Character
	err       error

	lastUserID int64
	lastName   string
	lastID     int64
	calls      []string
}

func (m *mockCharacters) CreateCharacter(ctx context.Context, userID int64, name string) (*models.Character, error) {
	m.calls = append(m.calls, "create")
	m.lastUserID, m.lastName = userID, name
	return m.character, m.err
}
func (m *mockCharacters) GetCharacter(ctx context.Context, userID int64) (*models.Character, error) {
	m.calls = append(m.calls, "get")
	m.lastUserID = userID
	return m.character, m.err
}
func (m *mockCharacters) RenameCharacter(ctx context.Context, userID int64, name string) (*models.Character, error) {
	m.calls = append(m.calls, "rename")
	m.lastUserID, m.lastName = userID, name
	return m.character, m.err
}
func (m *mockCharacters) Equip(ctx context.Context, userID, itemID int64) (*models.Character, error) {
	m.calls = append(m.calls, "equip")
	m.lastUserID, m.lastID = userID, itemID
	return m.character, m.err
}
func (m *mockCharacters) Unequip(ctx context.Context, userID, itemCategoryID int64) (*models.Character, error) {
	m.calls = append(m.calls, "unequip")
	m.lastUserID, m.lastID = userID, itemCategoryID
	return m.character, m.err
}
func (m *mockCharacters) AddExp(ctx context.Context, userID int64, delta int) error { return m.err }

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}

// memberAuth accepts any token as user 7 with the USER role.
func memberAuth() *mockAuth {
	return &mockAuth{parseIdentity: service.Identity{UserID: 7, Role: models.RoleUser}}
}

// doRequest sends a request through r with an optional JSON body and bearer token.
func doRequest(r http.Handler, method, target, body, token string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, vv := range authHeader(token) {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// decodeError reads the JSON error body written by respondError.
func decodeError(t *testing.T, w *httptest.ResponseRecorder) fitness_tracker.ErrorResponse {
	t.Helper()
	var out fitness_tracker.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode error body %q: %v", w.Body.String(), err)
	}
	return out
}
