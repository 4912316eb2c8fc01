package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ironhall/gym-service/internal/domain"
	"github.com/ironhall/gym-service/internal/qrtoken"
	"github.com/ironhall/gym-service/internal/service"
	apperrors "github.com/ironhall/gym-service/pkg/util/errorutil"
)

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).JSON(fiber.Map{"error": fiber.Map{
				"code":    de.Code,
				"message": de.Message,
			}})
		},
	})
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func errorCode(body map[string]any) string {
	e, _ := body["error"].(map[string]any)
	code, _ := e["code"].(string)
	return code
}

type mockAdminAuthenticator struct{ mock.Mock }

func (m *mockAdminAuthenticator) Login(ctx context.Context, email, password string) (domain.AdminSession, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.AdminSession), args.Error(1)
}

type mockQRCheckIn struct{ mock.Mock }

func (m *mockQRCheckIn) IssueToken(ctx context.Context) (qrtoken.Token, error) {
	args := m.Called(ctx)
	return args.Get(0).(qrtoken.Token), args.Error(1)
}

func (m *mockQRCheckIn) TokenTTL() time.Duration {
	return m.Called().Get(0).(time.Duration)
}

func (m *mockQRCheckIn) Login(ctx context.Context, tokenValue, email, password string) (*domain.MemberIdentity, error) {
	args := m.Called(ctx, tokenValue, email, password)
	if v, _ := args.Get(0).(*domain.MemberIdentity); v != nil {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockMemberManager struct{ mock.Mock }

func (m *mockMemberManager) Create(ctx context.Context, input service.MemberCreateInput) (*service.MemberView, error) {
	args := m.Called(ctx, input)
	if v, _ := args.Get(0).(*service.MemberView); v != nil {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockMemberManager) List(ctx context.Context) ([]service.MemberView, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]service.MemberView)
	return v, args.Error(1)
}

func (m *mockMemberManager) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockStockManager struct{ mock.Mock }

func (m *mockStockManager) List(ctx context.Context) ([]domain.StockItem, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]domain.StockItem)
	return v, args.Error(1)
}

func (m *mockStockManager) Create(ctx context.Context, input service.StockCreateInput) (*domain.StockItem, error) {
	args := m.Called(ctx, input)
	if v, _ := args.Get(0).(*domain.StockItem); v != nil {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStockManager) Update(ctx context.Context, id int64, input service.StockUpdateInput) (*domain.StockItem, error) {
	args := m.Called(ctx, id, input)
	if v, _ := args.Get(0).(*domain.StockItem); v != nil {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStockManager) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockEmployeeManager struct{ mock.Mock }

func (m *mockEmployeeManager) List(ctx context.Context) ([]domain.Employee, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]domain.Employee)
	return v, args.Error(1)
}

func (m *mockEmployeeManager) Create(ctx context.Context, input service.EmployeeCreateInput) (*domain.Employee, error) {
	args := m.Called(ctx, input)
	if v, _ := args.Get(0).(*domain.Employee); v != nil {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEmployeeManager) Toggle(ctx context.Context, id int64) (*domain.Employee, error) {
	args := m.Called(ctx, id)
	if v, _ := args.Get(0).(*domain.Employee); v != nil {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockEquipmentManager struct{ mock.Mock }

func (m *mockEquipmentManager) List(ctx context.Context) ([]service.EquipmentView, error) {
	args := m.Called(ctx)
	v, _ := args.Get(0).([]service.EquipmentView)
	return v, args.Error(1)
}

func (m *mockEquipmentManager) Create(ctx context.Context, input service.EquipmentCreateInput) (*service.EquipmentView, error) {
	args := m.Called(ctx, input)
	if v, _ := args.Get(0).(*service.EquipmentView); v != nil {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEquipmentManager) Update(ctx context.Context, id int64, input service.EquipmentUpdateInput) (*service.EquipmentView, error) {
	args := m.Called(ctx, id, input)
	if v, _ := args.Get(0).(*service.EquipmentView); v != nil {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEquipmentManager) RecordMaintenance(ctx context.Context, id int64, intervalMonths int) (*service.EquipmentView, error) {
	args := m.Called(ctx, id, intervalMonths)
	if v, _ := args.Get(0).(*service.EquipmentView); v != nil {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockEquipmentManager) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockDashboardReporter struct{ mock.Mock }

func (m *mockDashboardReporter) Summary(ctx context.Context) (*service.DashboardSummary, error) {
	args := m.Called(ctx)
	if v, _ := args.Get(0).(*service.DashboardSummary); v != nil {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockLoginReporter struct{ mock.Mock }

func (m *mockLoginReporter) Logins(ctx context.Context, rangeMonths int) (*domain.LoginAnalytics, error) {
	args := m.Called(ctx, rangeMonths)
	if v, _ := args.Get(0).(*domain.LoginAnalytics); v != nil {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func newRequest(method, path string) *http.Request {
	return httptest.NewRequest(method, path, nil)
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}
