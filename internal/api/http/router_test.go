package http

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/warehouse-service/internal/api/http/handlers"
	"github.com/spec-kit/warehouse-service/internal/docstore"
	"github.com/spec-kit/warehouse-service/internal/events"
	"github.com/spec-kit/warehouse-service/internal/observability"
	"github.com/spec-kit/warehouse-service/internal/repository"
	"github.com/spec-kit/warehouse-service/internal/service"
)

type tickingClock struct {
	t time.Time
}

func (c *tickingClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	backend := docstore.NewMemoryBackend()
	clock := &tickingClock{t: time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)}
	deps := service.Dependencies{
		Products:   repository.NewProductRepository(backend),
		Customers:  repository.NewCustomerRepository(backend),
		Staff:      repository.NewStaffRepository(backend),
		Orders:     repository.NewOrderRepository(backend),
		Dispatcher: events.NewInMemoryDispatcher(),
		Logger:     zap.NewNop(),
		Clock:      clock.Now,
	}
	metrics := observability.NewMetrics()

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), metrics, 5*time.Second)
	RegisterRoutes(app, RouteConfig{
		Health:    handlers.NewHealthHandler("warehouse-service", "test", map[string]handlers.Pinger{backend.Name(): backend}),
		Products:  handlers.NewProductsHandler(service.NewProductService(deps)),
		Customers: handlers.NewCustomersHandler(service.NewCustomerService(deps)),
		Staff:     handlers.NewStaffHandler(service.NewStaffService(deps)),
		Orders:    handlers.NewOrdersHandler(service.NewOrderService(deps)),
		Metrics:   metrics,
	})
	return app
}

type result struct {
	status int
	body   []byte
}

func (r result) object(t *testing.T) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(r.body, &out), string(r.body))
	return out
}

func (r result) array(t *testing.T) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(r.body, &out), string(r.body))
	return out
}

func (r result) errorMessage(t *testing.T) string {
	t.Helper()
	msg, _ := r.object(t)["error"].(string)
	return msg
}

func send(t *testing.T, app *fiber.App, method, path, contentType, body string) result {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if contentType != "" {
		req.Header.Set(fiber.HeaderContentType, contentType)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return result{status: resp.StatusCode, body: raw}
}

func sendJSON(t *testing.T, app *fiber.App, method, path, body string) result {
	t.Helper()
	return send(t, app, method, path, fiber.MIMEApplicationJSON, body)
}

func createID(t *testing.T, app *fiber.App, path, body string) string {
	t.Helper()
	res := sendJSON(t, app, fiber.MethodPost, path, body)
	require.Equal(t, fiber.StatusCreated, res.status, string(res.body))
	id, ok := res.object(t)["id"].(string)
	require.True(t, ok)
	require.Len(t, id, 24)
	return id
}

func TestProducts_WidgetLifecycle(t *testing.T) {
	app := newTestApp(t)

	created := sendJSON(t, app, fiber.MethodPost, "/products", `{"name":"Widget","price":9.99,"amount":10}`)
	require.Equal(t, fiber.StatusCreated, created.status)
	product := created.object(t)
	id := product["id"].(string)

	fetched := sendJSON(t, app, fiber.MethodGet, "/products/"+id, "")
	require.Equal(t, fiber.StatusOK, fetched.status)
	assert.Equal(t, product, fetched.object(t))
	assert.Equal(t, "Widget", product["name"])
	assert.Equal(t, 9.99, product["price"])
	assert.Equal(t, 10.0, product["amount"])
	assert.Equal(t, product["created_at"], product["updated_at"])

	list := sendJSON(t, app, fiber.MethodGet, "/products", "")
	require.Equal(t, fiber.StatusOK, list.status)
	items := list.array(t)
	require.Len(t, items, 1)
	assert.Equal(t, id, items[0]["id"])

	updated := sendJSON(t, app, fiber.MethodPut, "/products/"+id, `{"amount":5}`)
	require.Equal(t, fiber.StatusOK, updated.status)
	after := updated.object(t)
	assert.Equal(t, 5.0, after["amount"])
	assert.Equal(t, 9.99, after["price"])
	assert.Equal(t, "Widget", after["name"])
	assert.Equal(t, product["created_at"], after["created_at"])
	assert.NotEqual(t, product["updated_at"], after["updated_at"])

	deleted := sendJSON(t, app, fiber.MethodDelete, "/products/"+id, "")
	assert.Equal(t, fiber.StatusNoContent, deleted.status)
	assert.Empty(t, deleted.body)

	missing := sendJSON(t, app, fiber.MethodGet, "/products/"+id, "")
	assert.Equal(t, fiber.StatusNotFound, missing.status)
	assert.Equal(t, "Product not found", missing.errorMessage(t))
}

func TestProducts_ListLimit(t *testing.T) {
	app := newTestApp(t)

	empty := sendJSON(t, app, fiber.MethodGet, "/products", "")
	assert.Equal(t, fiber.StatusOK, empty.status)
	assert.JSONEq(t, `[]`, string(empty.body))

	var ids []string
	for _, name := range []string{"a", "b", "c"} {
		ids = append(ids, createID(t, app, "/products", `{"name":"`+name+`","price":1,"amount":1}`))
	}

	tests := []struct {
		query string
		want  int
	}{
		{"?limit=2", 2},
		{"?limit=0", 0},
		{"?limit=10", 3},
		{"?limit=abc", 3},
		{"?limit=-1", 3},
		{"", 3},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			res := sendJSON(t, app, fiber.MethodGet, "/products"+tt.query, "")
			require.Equal(t, fiber.StatusOK, res.status)
			items := res.array(t)
			require.Len(t, items, tt.want)
			for i, item := range items {
				assert.Equal(t, ids[i], item["id"])
			}
		})
	}
}

func TestProducts_RequestValidation(t *testing.T) {
	app := newTestApp(t)

	missing := sendJSON(t, app, fiber.MethodPost, "/products", `{"name":"x"}`)
	assert.Equal(t, fiber.StatusBadRequest, missing.status)
	assert.Equal(t, "missing required fields: price, amount", missing.errorMessage(t))

	zeroes := sendJSON(t, app, fiber.MethodPost, "/products", `{"name":"","price":0,"amount":0}`)
	assert.Equal(t, fiber.StatusCreated, zeroes.status)

	invalid := sendJSON(t, app, fiber.MethodPost, "/products", `{"name":`)
	assert.Equal(t, fiber.StatusBadRequest, invalid.status)
	assert.Equal(t, "Bad request", invalid.errorMessage(t))

	noBody := sendJSON(t, app, fiber.MethodPost, "/products", "")
	assert.Equal(t, fiber.StatusBadRequest, noBody.status)

	wrongType := send(t, app, fiber.MethodPost, "/products", fiber.MIMETextPlain, `name=Widget`)
	assert.Equal(t, fiber.StatusUnsupportedMediaType, wrongType.status)
	assert.Equal(t, "Unsupported media type", wrongType.errorMessage(t))
}

func TestRouting_Errors(t *testing.T) {
	app := newTestApp(t)

	notAllowed := sendJSON(t, app, fiber.MethodPatch, "/products", `{}`)
	assert.Equal(t, fiber.StatusMethodNotAllowed, notAllowed.status)
	assert.Equal(t, "Method not allowed", notAllowed.errorMessage(t))

	unknown := sendJSON(t, app, fiber.MethodGet, "/warehouses", "")
	assert.Equal(t, fiber.StatusNotFound, unknown.status)
	assert.Equal(t, "Not found", unknown.errorMessage(t))

	malformed := sendJSON(t, app, fiber.MethodGet, "/customers/not-an-id", "")
	assert.Equal(t, fiber.StatusNotFound, malformed.status)
	assert.Equal(t, "Customer not found", malformed.errorMessage(t))
}

func TestRouting_PanicRecovered(t *testing.T) {
	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), nil, 0)
	app.Get("/boom", func(*fiber.Ctx) error { panic("boom") })

	res := sendJSON(t, app, fiber.MethodGet, "/boom", "")
	assert.Equal(t, fiber.StatusInternalServerError, res.status)
	assert.Equal(t, "Internal server error", res.errorMessage(t))
}

func TestCustomers_EmptyUpdateRefreshesTimestamp(t *testing.T) {
	app := newTestApp(t)
	id := createID(t, app, "/customers", `{"first_name":"Ada","last_name":"Lovelace","street":"Main 1","postal_code":"12345","age":36}`)
	before := sendJSON(t, app, fiber.MethodGet, "/customers/"+id, "").object(t)

	for _, body := range []string{"", "{}"} {
		res := sendJSON(t, app, fiber.MethodPut, "/customers/"+id, body)
		require.Equal(t, fiber.StatusOK, res.status, string(res.body))
		after := res.object(t)
		for _, key := range []string{"id", "first_name", "last_name", "street", "postal_code", "age", "created_at"} {
			assert.Equal(t, before[key], after[key], key)
		}
		assert.NotEqual(t, before["updated_at"], after["updated_at"])
		before = after
	}

	missing := sendJSON(t, app, fiber.MethodPut, "/customers/65f1c0ffee0000000000beef", `{"age":1}`)
	assert.Equal(t, fiber.StatusNotFound, missing.status)
}

func TestUpdate_IgnoresImmutableFields(t *testing.T) {
	app := newTestApp(t)

	customerID := createID(t, app, "/customers", `{"first_name":"Ada","last_name":"Lovelace","street":"Main 1","postal_code":"12345","age":36}`)
	before := sendJSON(t, app, fiber.MethodGet, "/customers/"+customerID, "").object(t)

	res := sendJSON(t, app, fiber.MethodPut, "/customers/"+customerID, `{"first_name":"X","street":"New","age":37}`)
	require.Equal(t, fiber.StatusOK, res.status, string(res.body))
	customer := res.object(t)
	assert.Equal(t, "Ada", customer["first_name"])
	assert.Equal(t, "Main 1", customer["street"])
	assert.Equal(t, 37.0, customer["age"])
	assert.NotEqual(t, before["updated_at"], customer["updated_at"])

	onlyName := sendJSON(t, app, fiber.MethodPut, "/customers/"+customerID, `{"first_name":"X"}`)
	require.Equal(t, fiber.StatusOK, onlyName.status)
	assert.Equal(t, "Ada", onlyName.object(t)["first_name"])
	assert.NotEqual(t, customer["updated_at"], onlyName.object(t)["updated_at"])

	productID := createID(t, app, "/products", `{"name":"Widget","price":9.99,"amount":10}`)
	renamed := sendJSON(t, app, fiber.MethodPut, "/products/"+productID, `{"name":"Renamed","price":4.5}`)
	require.Equal(t, fiber.StatusOK, renamed.status)
	product := renamed.object(t)
	assert.Equal(t, "Widget", product["name"])
	assert.Equal(t, 4.5, product["price"])
	assert.Equal(t, 10.0, product["amount"])
}

func TestStaff_DatesAndNotFound(t *testing.T) {
	app := newTestApp(t)

	res := sendJSON(t, app, fiber.MethodPost, "/staff", `{"first_name":"Grace","last_name":"Hopper","employee_since":"2015-02-01","age":40}`)
	require.Equal(t, fiber.StatusCreated, res.status, string(res.body))
	member := res.object(t)
	assert.Equal(t, "2015-02-01", member["employee_since"])

	badDate := sendJSON(t, app, fiber.MethodPost, "/staff", `{"first_name":"a","last_name":"b","employee_since":"01.02.2015","age":1}`)
	assert.Equal(t, fiber.StatusBadRequest, badDate.status)

	id := member["id"].(string)
	updated := sendJSON(t, app, fiber.MethodPut, "/staff/"+id, `{"employee_since":"2016-03-04","first_name":"Amazing","last_name":"Murray","age":41}`)
	require.Equal(t, fiber.StatusOK, updated.status)
	after := updated.object(t)
	assert.Equal(t, "2015-02-01", after["employee_since"])
	assert.Equal(t, "Grace", after["first_name"])
	assert.Equal(t, "Murray", after["last_name"])
	assert.Equal(t, 41.0, after["age"])

	require.Equal(t, fiber.StatusNoContent, sendJSON(t, app, fiber.MethodDelete, "/staff/"+id, "").status)
	gone := sendJSON(t, app, fiber.MethodDelete, "/staff/"+id, "")
	assert.Equal(t, fiber.StatusNotFound, gone.status)
	assert.Equal(t, "Staff member not found", gone.errorMessage(t))
}

func TestOrders_Flow(t *testing.T) {
	app := newTestApp(t)
	productID := createID(t, app, "/products", `{"name":"Widget","price":9.99,"amount":10}`)
	customerID := createID(t, app, "/customers", `{"first_name":"A","last_name":"B","street":"C","postal_code":"D","age":30}`)
	staffID := createID(t, app, "/staff", `{"first_name":"E","last_name":"F","employee_since":"2020-01-01","age":25}`)

	rejected := sendJSON(t, app, fiber.MethodPost, "/orders",
		`{"product_id":"`+productID+`","customer_id":"65f1c0ffee0000000000beef","staff_id":"`+staffID+`"}`)
	assert.Equal(t, fiber.StatusBadRequest, rejected.status)
	assert.Equal(t, "Customer referenced by customer_id not found", rejected.errorMessage(t))
	assert.JSONEq(t, `[]`, string(sendJSON(t, app, fiber.MethodGet, "/orders", "").body))

	incomplete := sendJSON(t, app, fiber.MethodPost, "/orders", `{"product_id":"`+productID+`"}`)
	assert.Equal(t, fiber.StatusBadRequest, incomplete.status)
	assert.Equal(t, "missing required fields: customer_id, staff_id", incomplete.errorMessage(t))

	created := sendJSON(t, app, fiber.MethodPost, "/orders",
		`{"product_id":"`+productID+`","customer_id":"`+customerID+`","staff_id":"`+staffID+`"}`)
	require.Equal(t, fiber.StatusCreated, created.status, string(created.body))
	order := created.object(t)
	assert.Equal(t, productID, order["product_id"])
	assert.Equal(t, customerID, order["customer_id"])
	assert.Equal(t, staffID, order["staff_id"])

	byProduct := sendJSON(t, app, fiber.MethodGet, "/orders/"+productID, "")
	require.Equal(t, fiber.StatusOK, byProduct.status)
	require.Len(t, byProduct.array(t), 1)
	assert.Equal(t, order["id"], byProduct.array(t)[0]["id"])

	limited := sendJSON(t, app, fiber.MethodGet, "/orders/"+productID+"?limit=0", "")
	assert.Equal(t, fiber.StatusOK, limited.status)
	assert.JSONEq(t, `[]`, string(limited.body))

	pair := sendJSON(t, app, fiber.MethodGet, "/orders/"+productID+"/"+customerID, "")
	require.Equal(t, fiber.StatusOK, pair.status)
	assert.Equal(t, order["id"], pair.object(t)["id"])

	noOrders := sendJSON(t, app, fiber.MethodGet, "/orders/"+customerID, "")
	assert.Equal(t, fiber.StatusNotFound, noOrders.status)
	assert.Equal(t, "Orders not found for the given product", noOrders.errorMessage(t))

	noPair := sendJSON(t, app, fiber.MethodGet, "/orders/"+productID+"/"+staffID, "")
	assert.Equal(t, fiber.StatusNotFound, noPair.status)
	assert.Equal(t, "Order not found for the given product and customer", noPair.errorMessage(t))

	notAllowed := sendJSON(t, app, fiber.MethodDelete, "/orders/"+productID, "")
	assert.Equal(t, fiber.StatusMethodNotAllowed, notAllowed.status)
}

func TestOperationalEndpoints(t *testing.T) {
	app := newTestApp(t)

	live := sendJSON(t, app, fiber.MethodGet, "/health/live", "")
	assert.Equal(t, fiber.StatusOK, live.status)
	assert.Equal(t, "alive", live.object(t)["status"])

	ready := sendJSON(t, app, fiber.MethodGet, "/health/ready", "")
	assert.Equal(t, fiber.StatusOK, ready.status)
	assert.Equal(t, map[string]any{"memory": "ok"}, ready.object(t)["dependencies"])

	metrics := send(t, app, fiber.MethodGet, "/metrics", "", "")
	assert.Equal(t, fiber.StatusOK, metrics.status)
	assert.Contains(t, string(metrics.body), "warehouse_http_requests_total")
}
