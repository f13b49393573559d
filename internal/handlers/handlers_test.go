package handlers_test

import (
	"LinkBoard/internal/config"
	"LinkBoard/internal/handlers"
	"LinkBoard/internal/middleware"
	"LinkBoard/internal/model"
	"LinkBoard/internal/repo"
	"LinkBoard/internal/service"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"
)

// newTestServer поднимает полный стек хендлеров над in-memory SQLite
func newTestServer(t *testing.T) (http.Handler, *config.Config) {
	t.Helper()

	dsn := fmt.Sprintf("file:handlers_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}, &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Image{}, &model.Link{}, &model.Post{}))

	cfg := &config.Config{AuthSecret: "test-secret", ImageMaxSizeMB: 1}
	logger := zap.NewNop().Sugar()

	userSvc := service.NewUserService(repo.NewUserRepository(db))
	linkSvc := service.NewLinkService(repo.NewLinkRepository(db))
	imageSvc := service.NewImageService(repo.NewImageRepository(db))
	postSvc := service.NewPostService(repo.NewPostRepository(db), imageSvc)

	h, err := handlers.NewHandler(userSvc, linkSvc, postSvc, imageSvc, logger, cfg)
	require.NoError(t, err)
	return h.Router, cfg
}

func addAuthCookie(t *testing.T, req *http.Request, userID int64, secret string) {
	t.Helper()
	rr := httptest.NewRecorder()
	_ = middleware.SetLoginCookie(rr, userID, secret)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}

// authCookies регистрирует пользователя через ручку и возвращает его cookie
func authCookies(t *testing.T, router http.Handler, login string) []*http.Cookie {
	t.Helper()
	body := fmt.Sprintf(`{"login":%q,"password":"p@ss"}`, login)
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code, "register failed: %s", rr.Body.String())
	return rr.Result().Cookies()
}
