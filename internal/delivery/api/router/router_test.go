package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"vendorradar/config"
	"vendorradar/internal/delivery/api/middleware"
	"vendorradar/internal/delivery/api/router/handler"
	"vendorradar/internal/delivery/api/validator"
	"vendorradar/internal/delivery/realtime"
	"vendorradar/internal/domain/entity"
	domainerrors "vendorradar/internal/domain/errors"
	"vendorradar/internal/domain/service"
	mockService "vendorradar/internal/mocks/service"
	mockUsecase "vendorradar/internal/mocks/usecase"
	"vendorradar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	vendorToken   = "vendor-token"
	customerToken = "customer-token"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type fixture struct {
	e          *echo.Echo
	vendorID   uuid.UUID
	customerID uuid.UUID
	search     *mockUsecase.MockSearchUsecase
	vendors    *mockUsecase.MockVendorUsecase
	customers  *mockUsecase.MockCustomerUsecase
	history    *mockUsecase.MockHistoryUsecase
	products   *mockUsecase.MockProductUsecase
	auth       *mockUsecase.MockAuthUsecase
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		vendorID:   uuid.New(),
		customerID: uuid.New(),
		search:     mockUsecase.NewMockSearchUsecase(t),
		vendors:    mockUsecase.NewMockVendorUsecase(t),
		customers:  mockUsecase.NewMockCustomerUsecase(t),
		history:    mockUsecase.NewMockHistoryUsecase(t),
		products:   mockUsecase.NewMockProductUsecase(t),
		auth:       mockUsecase.NewMockAuthUsecase(t),
	}

	tokens := mockService.NewMockTokenService(t)
	tokens.EXPECT().ValidateAccessToken(vendorToken).
		Return(&service.Claims{Subject: f.vendorID, Role: entity.RoleVendor}, nil).Maybe()
	tokens.EXPECT().ValidateAccessToken(customerToken).
		Return(&service.Claims{Subject: f.customerID, Role: entity.RoleCustomer}, nil).Maybe()
	tokens.EXPECT().ValidateAccessToken(mock.Anything).
		Return(nil, errors.New("token is malformed")).Maybe()

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(discardLogger).HandleHTTPError

	NewRouter(RouterParams{
		AuthHandler:     handler.NewAuthHandler(handler.AuthHandlerParams{AuthUC: f.auth, Logger: discardLogger}),
		SearchHandler:   handler.NewSearchHandler(handler.SearchHandlerParams{SearchUC: f.search, Logger: discardLogger}),
		VendorHandler:   handler.NewVendorHandler(handler.VendorHandlerParams{VendorUC: f.vendors, Logger: discardLogger}),
		CustomerHandler: handler.NewCustomerHandler(handler.CustomerHandlerParams{CustomerUC: f.customers, HistoryUC: f.history, Logger: discardLogger}),
		ProductHandler:  handler.NewProductHandler(handler.ProductHandlerParams{ProductUC: f.products, Logger: discardLogger}),
		Realtime: realtime.NewHandler(realtime.HandlerParams{
			Hub:    realtime.NewHub(discardLogger),
			Live:   mockUsecase.NewMockLiveLocationUsecase(t),
			Config: &config.Config{Realtime: &config.RealtimeConfig{}},
			Logger: discardLogger,
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(tokens),
	}).RegisterRoutes(e)
	f.e = e

	return f
}

type envelope struct {
	Data  map[string]json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

func (f *fixture) do(t *testing.T, method, target, token, body string) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	var out envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())

	return rec.Code, out
}

func TestHealth(t *testing.T) {
	f := newFixture(t)

	code, out := f.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `"ok"`, string(out.Data["status"]))
}

func TestSearch(t *testing.T) {
	f := newFixture(t)
	vendor := &entity.Vendor{ID: uuid.New(), Name: "Ana", BusinessName: "Ana's Fruit", IsAvailable: true}
	product := &entity.Product{ID: uuid.New(), VendorID: vendor.ID, Name: "Apples", Category: entity.CategoryFruits}

	f.search.EXPECT().Search(mock.Anything, mock.MatchedBy(func(q *usecase.SearchQuery) bool {
		return q.Query == "apples" &&
			q.Origin == orb.Point{-74.006, 40.7128} &&
			q.MaxDistanceKm == 5 &&
			q.Category != nil && *q.Category == entity.CategoryFruits &&
			q.Organic != nil && *q.Organic &&
			q.Local == nil
	})).Return(&usecase.SearchResult{
		Products: []*entity.ProductWithDistance{{Product: product, Vendor: vendor, Distance: 0.61234}},
		Vendors:  []*entity.VendorWithDistance{{Vendor: vendor, Distance: 0.61234}},
	}, nil)

	code, out := f.do(t, http.MethodGet,
		"/search?query=apples&longitude=-74.006&latitude=40.7128&maxDistance=5&category=fruits&organic=true", "", "")
	require.Equal(t, http.StatusOK, code)

	var products []map[string]any
	require.NoError(t, json.Unmarshal(out.Data["products"], &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Apples", products[0]["name"])
	assert.Equal(t, 0.61, products[0]["distance"])
	assert.Equal(t, "Ana's Fruit", products[0]["vendor"].(map[string]any)["businessName"])
	assert.JSONEq(t, `{"products":1,"vendors":1}`, string(out.Data["count"]))
}

func TestSearch_RejectsBadQueries(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name   string
		target string
	}{
		{name: "missing text", target: "/search?longitude=1&latitude=1"},
		{name: "missing latitude", target: "/search?query=milk&longitude=1"},
		{name: "latitude out of range", target: "/search?query=milk&longitude=1&latitude=91"},
		{name: "distance too large", target: "/search?query=milk&longitude=1&latitude=1&maxDistance=500"},
		{name: "unknown category", target: "/search?query=milk&longitude=1&latitude=1&category=toys"},
		{name: "limit too large", target: "/search?query=milk&longitude=1&latitude=1&limit=51"},
		{name: "zero distance", target: "/search?query=milk&longitude=1&latitude=1&maxDistance=0"},
		{name: "distance below minimum", target: "/search?query=milk&longitude=1&latitude=1&maxDistance=0.05"},
		{name: "zero limit", target: "/search?query=milk&longitude=1&latitude=1&limit=0"},
		{name: "nearby zero distance", target: "/vendors/nearby?longitude=1&latitude=1&maxDistance=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out := f.do(t, http.MethodGet, tt.target, "", "")
			assert.Equal(t, http.StatusBadRequest, code)
			require.NotNil(t, out.Error)
			assert.Equal(t, "VALIDATION_FAILED", out.Error.Code)
		})
	}
}

func TestVendorRoutes_RequireVendorRole(t *testing.T) {
	f := newFixture(t)

	code, out := f.do(t, http.MethodPut, "/vendors/location", "", `{"coordinates":[1,1]}`)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "UNAUTHORIZED", out.Error.Code)

	code, out = f.do(t, http.MethodPut, "/vendors/location", "garbage", `{"coordinates":[1,1]}`)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, out = f.do(t, http.MethodPut, "/vendors/location", customerToken, `{"coordinates":[1,1]}`)
	assert.Equal(t, http.StatusForbidden, code)
	assert.Equal(t, "FORBIDDEN", out.Error.Code)
	assert.Empty(t, out.Error.Details, "403 responses carry no details")

	code, _ = f.do(t, http.MethodGet, "/products", customerToken, "")
	assert.Equal(t, http.StatusForbidden, code)

	code, _ = f.do(t, http.MethodGet, "/customers/suggestions", vendorToken, "")
	assert.Equal(t, http.StatusForbidden, code)
}

func TestVendorUpdateLocation(t *testing.T) {
	f := newFixture(t)
	address := "Union Square"

	f.vendors.EXPECT().UpdateLocation(mock.Anything, f.vendorID, mock.MatchedBy(func(in *usecase.LocationInput) bool {
		return in.Coordinates == orb.Point{-74, 40.71} && in.Address != nil && *in.Address == address && in.City == nil
	})).Return(&entity.VendorLocation{Coordinates: orb.Point{-74, 40.71}, Address: address}, nil)

	code, out := f.do(t, http.MethodPut, "/vendors/location", vendorToken,
		`{"coordinates":[-74,40.71],"address":"Union Square"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(out.Data["location"]), "Union Square")

	code, out = f.do(t, http.MethodPut, "/vendors/location", vendorToken, `{"coordinates":[-74]}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_FAILED", out.Error.Code)

	code, out = f.do(t, http.MethodPut, "/vendors/location", vendorToken, `{"coordinates":[-190,0]}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, domainerrors.ErrInvalidCoordinates.ErrorCode(), out.Error.Code)
}

func TestVendorAvailability(t *testing.T) {
	f := newFixture(t)
	f.vendors.EXPECT().UpdateAvailability(mock.Anything, f.vendorID, false).Return(false, nil)

	code, out := f.do(t, http.MethodPut, "/vendors/availability", vendorToken, `{"isAvailable":false}`)
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `false`, string(out.Data["isAvailable"]))

	code, _ = f.do(t, http.MethodPut, "/vendors/availability", vendorToken, `{}`)
	assert.Equal(t, http.StatusBadRequest, code, "a missing flag is not read as false")
}

func TestPublicVendorRoutes(t *testing.T) {
	f := newFixture(t)
	vendor := &entity.Vendor{ID: uuid.New(), Name: "Bo"}

	f.vendors.EXPECT().FindNearby(mock.Anything, &usecase.NearbyVendorsInput{
		Origin:        orb.Point{2.35, 48.85},
		MaxDistanceKm: 3,
		Limit:         5,
	}).Return([]*entity.VendorWithDistance{{Vendor: vendor, Distance: 1.005}}, nil)
	f.vendors.EXPECT().GetPublicVendor(mock.Anything, vendor.ID).
		Return(&usecase.PublicVendor{Vendor: vendor, Products: []*entity.Product{}}, nil)

	code, out := f.do(t, http.MethodGet, "/vendors/nearby?longitude=2.35&latitude=48.85&maxDistance=3&limit=5", "", "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `1`, string(out.Data["count"]))

	code, out = f.do(t, http.MethodGet, "/vendors/"+vendor.ID.String(), "", "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, string(out.Data["products"]))

	code, _ = f.do(t, http.MethodGet, "/vendors/not-a-uuid", "", "")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestCustomerSearchHistory(t *testing.T) {
	f := newFixture(t)

	f.history.EXPECT().AddEntry(mock.Anything, f.customerID, mock.MatchedBy(func(in *usecase.AddHistoryInput) bool {
		return in.Query == "honey" && in.ResultsCount == 3 &&
			in.Coordinates != nil && *in.Coordinates == orb.Point{-0.12, 51.5}
	})).Return(nil)
	f.history.EXPECT().Suggestions(mock.Anything, f.customerID, 0).Return([]string{"honey", "fruits"}, nil)

	code, _ := f.do(t, http.MethodPost, "/customers/search-history", customerToken,
		`{"query":"honey","location":{"coordinates":[-0.12,51.5]},"resultsCount":3}`)
	assert.Equal(t, http.StatusCreated, code)

	code, _ = f.do(t, http.MethodPost, "/customers/search-history", customerToken, `{"resultsCount":3}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, out := f.do(t, http.MethodGet, "/customers/suggestions", customerToken, "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `["honey","fruits"]`, string(out.Data["suggestions"]))
}

func TestCustomerPreferences(t *testing.T) {
	f := newFixture(t)

	f.customers.EXPECT().UpdatePreferences(mock.Anything, f.customerID, mock.MatchedBy(func(in *usecase.UpdatePreferencesInput) bool {
		return len(in.Categories) == 2 && in.Categories[1] == entity.CategoryDairy &&
			in.MaxDistanceKm != nil && *in.MaxDistanceKm == 15 && in.Organic == nil
	})).Return(entity.Preferences{MaxDistanceKm: 15}, nil)

	code, _ := f.do(t, http.MethodPut, "/customers/preferences", customerToken,
		`{"categories":["fruits","dairy"],"maxDistance":15}`)
	assert.Equal(t, http.StatusOK, code)

	code, _ = f.do(t, http.MethodPut, "/customers/preferences", customerToken, `{"categories":["toys"]}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestProducts(t *testing.T) {
	f := newFixture(t)
	productID := uuid.New()

	f.products.EXPECT().CreateProduct(mock.Anything, f.vendorID, mock.MatchedBy(func(in *usecase.CreateProductInput) bool {
		return in.Name == "Eggs" && in.Category == entity.CategoryDairy && in.Unit == entity.UnitDozen && in.Price == 4.5
	})).Return(&entity.Product{ID: productID, Name: "Eggs"}, nil)
	f.products.EXPECT().DeleteProduct(mock.Anything, f.vendorID, productID).Return(domainerrors.ErrProductNotFound)

	code, out := f.do(t, http.MethodPost, "/products", vendorToken,
		`{"name":"Eggs","category":"dairy","unit":"dozen","price":4.5,"quantity":10}`)
	require.Equal(t, http.StatusCreated, code)
	assert.Contains(t, string(out.Data["product"]), productID.String())

	code, out = f.do(t, http.MethodPost, "/products", vendorToken, `{"name":"Eggs","category":"dairy","unit":"crate"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, out.Error.Details, "unit")

	code, out = f.do(t, http.MethodDelete, "/products/"+productID.String(), vendorToken, "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, domainerrors.ErrProductNotFound.ErrorCode(), out.Error.Code)
}

func TestAuthFlow(t *testing.T) {
	f := newFixture(t)
	vendor := &entity.Vendor{ID: f.vendorID, Name: "Cy"}

	f.auth.EXPECT().RegisterVendor(mock.Anything, mock.MatchedBy(func(in *usecase.RegisterVendorInput) bool {
		return in.Email == "cy@example.com" && in.Location != nil &&
			in.Location.Coordinates == orb.Point{151.2, -33.86} &&
			in.OperatingHours == entity.OperatingHours{Start: "07:00", End: "15:00"}
	})).Return(&usecase.AuthOutput{Token: "jwt", Role: entity.RoleVendor, Vendor: vendor}, nil)
	f.auth.EXPECT().LoginCustomer(mock.Anything, &usecase.LoginInput{Email: "dee@example.com", Password: "wrong"}).
		Return(nil, domainerrors.ErrInvalidCredentials)
	f.auth.EXPECT().Me(mock.Anything, f.vendorID, entity.RoleVendor).
		Return(&usecase.AuthOutput{Role: entity.RoleVendor, Vendor: vendor}, nil)

	code, out := f.do(t, http.MethodPost, "/auth/vendor/register", "", `{
		"name":"Cy","email":"cy@example.com","password":"secret1","phone":"+61255501234",
		"businessName":"Cy's Coffee","operatingHours":{"start":"07:00","end":"15:00"},
		"location":{"coordinates":[151.2,-33.86]}}`)
	require.Equal(t, http.StatusCreated, code)
	assert.JSONEq(t, `"jwt"`, string(out.Data["token"]))

	code, out = f.do(t, http.MethodPost, "/auth/vendor/register", "", `{
		"name":"Cy","email":"cy@example.com","password":"secret1","phone":"+61255501234",
		"businessName":"Cy's Coffee","operatingHours":{"start":"7am","end":"15:00"},
		"location":{"coordinates":[151.2,-33.86]}}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, out.Error.Details, "start")

	code, out = f.do(t, http.MethodPost, "/auth/customer/login", "", `{"email":"dee@example.com","password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, domainerrors.ErrInvalidCredentials.ErrorCode(), out.Error.Code)

	code, out = f.do(t, http.MethodGet, "/auth/me", vendorToken, "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `"vendor"`, string(out.Data["role"]))
	assert.NotContains(t, out.Data, "token")
}
