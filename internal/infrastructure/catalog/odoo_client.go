package catalog

import (
	"context"
	"errors"
	"fmt"
	"invoice_intake/internal/domain/entities"
	"invoice_intake/internal/usecase/interfaces"
	"log"
	"net"
	"net/http"
	"net/rpc"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/kolo/xmlrpc"
)

const (
	defaultOdooURL      = "http://localhost:8069/"
	defaultOdooUsername = "admin"
	defaultRPCTimeout   = 15 * time.Second

	modelPartner       = "res.partner"
	modelCurrency      = "res.currency"
	modelProduct       = "product.product"
	modelPurchaseOrder = "purchase.order"
	modelAccountMove   = "account.move"
)

var ErrMissingOdooCredentials = errors.New("missing ODOO_DB or ODOO_PASSWORD")

// Config holds the Odoo connection settings.
type Config struct {
	URL      string
	DB       string
	Username string
	Password string
	Timeout  time.Duration
}

// ConfigFromEnv reads ODOO_URL, ODOO_DB, ODOO_USERNAME and ODOO_PASSWORD.
func ConfigFromEnv() Config {
	return Config{
		URL:      getenvDefault("ODOO_URL", defaultOdooURL),
		DB:       os.Getenv("ODOO_DB"),
		Username: getenvDefault("ODOO_USERNAME", defaultOdooUsername),
		Password: os.Getenv("ODOO_PASSWORD"),
		Timeout:  defaultRPCTimeout,
	}
}

// OdooClient talks to Odoo over XML-RPC (/xmlrpc/2/common and
// /xmlrpc/2/object). The session uid is established once by Authenticate.
type OdooClient struct {
	cfg       Config
	baseURL   string
	transport http.RoundTripper
	uid       atomic.Int64
}

var _ interfaces.ICatalogClient = (*OdooClient)(nil)

func NewOdooClient(cfg Config) *OdooClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultRPCTimeout
	}
	dialer := &net.Dialer{Timeout: cfg.Timeout}
	return &OdooClient{
		cfg:     cfg,
		baseURL: strings.TrimRight(cfg.URL, "/"),
		transport: statusCheckingTransport{next: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			DialContext:           dialer.DialContext,
			TLSHandshakeTimeout:   cfg.Timeout,
			ResponseHeaderTimeout: cfg.Timeout,
		}},
	}
}

func (c *OdooClient) Authenticate(ctx context.Context) error {
	if c.cfg.DB == "" || c.cfg.Password == "" {
		return ErrMissingOdooCredentials
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", interfaces.ErrCatalogUnavailable, err)
	}

	var reply interface{}
	err := c.call("/xmlrpc/2/common", "authenticate", []interface{}{c.cfg.DB, c.cfg.Username, c.cfg.Password, map[string]interface{}{}}, &reply)
	if err != nil {
		log.Printf("[intake][catalog] authenticate failed url=%s db=%s err=%v", c.baseURL, c.cfg.DB, err)
		return err
	}
	uid, ok := toInt64(reply)
	if !ok || uid == 0 {
		log.Printf("[intake][catalog] authenticate rejected url=%s db=%s user=%s", c.baseURL, c.cfg.DB, c.cfg.Username)
		return fmt.Errorf("%w: authentication rejected for user %q", interfaces.ErrCatalogError, c.cfg.Username)
	}
	c.uid.Store(uid)
	log.Printf("[intake][catalog] connected url=%s db=%s uid=%d", c.baseURL, c.cfg.DB, uid)
	return nil
}

func (c *OdooClient) SearchVendors(ctx context.Context, name string) ([]entities.CatalogID, error) {
	domain := []interface{}{
		[]interface{}{"name", "ilike", name},
		[]interface{}{"supplier_rank", ">", 0},
	}
	return c.search(ctx, modelPartner, domain, 0)
}

func (c *OdooClient) ReadVendorPreferredCurrency(ctx context.Context, vendorID entities.CatalogID) string {
	records, err := c.read(ctx, modelPartner, int64(vendorID), []string{"property_purchase_currency_id"})
	if err != nil {
		log.Printf("[intake][catalog] vendor currency read failed vendor_id=%d err=%v", vendorID, err)
		return entities.DefaultCurrency
	}
	if len(records) == 0 {
		return entities.DefaultCurrency
	}
	currencyID, ok := many2oneID(records[0]["property_purchase_currency_id"])
	if !ok {
		return entities.DefaultCurrency
	}

	currencies, err := c.read(ctx, modelCurrency, currencyID, []string{"name"})
	if err != nil {
		log.Printf("[intake][catalog] currency read failed currency_id=%d err=%v", currencyID, err)
		return entities.DefaultCurrency
	}
	if len(currencies) == 0 {
		return entities.DefaultCurrency
	}
	if name := toString(currencies[0]["name"]); name != "" {
		return name
	}
	return entities.DefaultCurrency
}

func (c *OdooClient) SearchProducts(ctx context.Context, strategy interfaces.ProductSearchStrategy, term string, limit int) ([]entities.CatalogID, error) {
	var domain []interface{}
	switch strategy {
	case interfaces.SearchByName:
		domain = []interface{}{[]interface{}{"name", "ilike", term}}
	case interfaces.SearchByNameWildcard:
		domain = []interface{}{[]interface{}{"name", "ilike", "%" + term + "%"}}
	case interfaces.SearchByCode:
		domain = []interface{}{[]interface{}{"default_code", "ilike", term}}
	default:
		return nil, fmt.Errorf("%w: unknown product search strategy %q", interfaces.ErrCatalogError, strategy)
	}
	return c.search(ctx, modelProduct, domain, limit)
}

func (c *OdooClient) SearchSellableProducts(ctx context.Context, limit int) ([]entities.CatalogID, error) {
	domain := []interface{}{
		[]interface{}{"sale_ok", "=", true},
		[]interface{}{"active", "=", true},
	}
	return c.search(ctx, modelProduct, domain, limit)
}

func (c *OdooClient) ReadProduct(ctx context.Context, id entities.CatalogID) (entities.CatalogProduct, error) {
	records, err := c.read(ctx, modelProduct, int64(id), []string{"name", "list_price", "default_code"})
	if err != nil {
		return entities.CatalogProduct{}, err
	}
	if len(records) == 0 {
		return entities.CatalogProduct{}, fmt.Errorf("%w: product %d not found", interfaces.ErrCatalogError, id)
	}
	rec := records[0]
	price, _ := toFloat64(rec["list_price"])
	return entities.CatalogProduct{
		ID:        id,
		Name:      toString(rec["name"]),
		ListPrice: price,
		Code:      toString(rec["default_code"]),
	}, nil
}

func (c *OdooClient) ReadCurrencyRate(ctx context.Context, code string) (float64, bool, error) {
	var reply interface{}
	err := c.execute(ctx, modelCurrency, "search_read",
		[]interface{}{[]interface{}{[]interface{}{"name", "=", code}}},
		map[string]interface{}{"fields": []string{"rate"}, "limit": 1},
		&reply,
	)
	if err != nil {
		return 0, false, err
	}
	records := toRecords(reply)
	if len(records) == 0 {
		return 0, false, nil
	}
	rate, ok := toFloat64(records[0]["rate"])
	return rate, ok, nil
}

func (c *OdooClient) CreateVendor(ctx context.Context, name string) (entities.CatalogID, error) {
	vals := map[string]interface{}{
		"name":          name,
		"is_company":    true,
		"supplier_rank": 1,
		"customer_rank": 0,
	}
	id, err := c.create(ctx, modelPartner, vals)
	if err != nil {
		return 0, err
	}
	log.Printf("[intake][catalog] vendor created vendor_id=%d name=%q", id, name)
	return id, nil
}

func (c *OdooClient) CreatePurchaseOrder(ctx context.Context, vendorID entities.CatalogID, lines []entities.OrderLine) (entities.CatalogID, error) {
	orderLines := make([]interface{}, 0, len(lines))
	for _, l := range lines {
		orderLines = append(orderLines, []interface{}{0, 0, map[string]interface{}{
			"product_id":  int64(l.ProductID),
			"product_qty": l.Quantity,
			"price_unit":  l.UnitPrice,
			"name":        l.Name,
		}})
	}
	vals := map[string]interface{}{
		"partner_id": int64(vendorID),
		"order_line": orderLines,
		"state":      "draft",
	}
	return c.create(ctx, modelPurchaseOrder, vals)
}

func (c *OdooClient) CreateInvoice(ctx context.Context, vendorID entities.CatalogID, lines []entities.OrderLine) (entities.CatalogID, error) {
	invoiceLines := make([]interface{}, 0, len(lines))
	for _, l := range lines {
		invoiceLines = append(invoiceLines, []interface{}{0, 0, map[string]interface{}{
			"product_id": int64(l.ProductID),
			"quantity":   l.Quantity,
			"price_unit": l.UnitPrice,
			"name":       l.Name,
		}})
	}
	vals := map[string]interface{}{
		"move_type":        "in_invoice",
		"partner_id":       int64(vendorID),
		"invoice_line_ids": invoiceLines,
		"state":            "draft",
	}
	return c.create(ctx, modelAccountMove, vals)
}

func (c *OdooClient) search(ctx context.Context, model string, domain []interface{}, limit int) ([]entities.CatalogID, error) {
	var kwargs map[string]interface{}
	if limit > 0 {
		kwargs = map[string]interface{}{"limit": limit}
	}
	var reply interface{}
	if err := c.execute(ctx, model, "search", []interface{}{domain}, kwargs, &reply); err != nil {
		return nil, err
	}
	raw, ok := reply.([]interface{})
	if !ok {
		if reply == nil {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: unexpected search reply %T", interfaces.ErrCatalogError, reply)
	}
	ids := make([]entities.CatalogID, 0, len(raw))
	for _, v := range raw {
		if id, ok := toInt64(v); ok {
			ids = append(ids, entities.CatalogID(id))
		}
	}
	return ids, nil
}

func (c *OdooClient) read(ctx context.Context, model string, id int64, fields []string) ([]map[string]interface{}, error) {
	var reply interface{}
	err := c.execute(ctx, model, "read", []interface{}{[]interface{}{id}}, map[string]interface{}{"fields": fields}, &reply)
	if err != nil {
		return nil, err
	}
	return toRecords(reply), nil
}

func (c *OdooClient) create(ctx context.Context, model string, vals map[string]interface{}) (entities.CatalogID, error) {
	var reply interface{}
	if err := c.execute(ctx, model, "create", []interface{}{vals}, nil, &reply); err != nil {
		return 0, err
	}
	id, ok := toInt64(reply)
	if !ok || id == 0 {
		return 0, fmt.Errorf("%w: unexpected create reply %v", interfaces.ErrCatalogError, reply)
	}
	return entities.CatalogID(id), nil
}

func (c *OdooClient) execute(ctx context.Context, model, method string, args []interface{}, kwargs map[string]interface{}, reply interface{}) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", interfaces.ErrCatalogUnavailable, err)
	}
	uid := c.uid.Load()
	if uid == 0 {
		return fmt.Errorf("%w: not authenticated", interfaces.ErrCatalogUnavailable)
	}

	params := []interface{}{c.cfg.DB, uid, c.cfg.Password, model, method, args}
	if kwargs != nil {
		params = append(params, kwargs)
	}
	return c.call("/xmlrpc/2/object", "execute_kw", params, reply)
}

// call opens a short-lived client per request; net/rpc shuts a client down
// for good after a failed response.
func (c *OdooClient) call(path, method string, params []interface{}, reply interface{}) error {
	client, err := xmlrpc.NewClient(c.baseURL+path, c.transport)
	if err != nil {
		return fmt.Errorf("%w: %v", interfaces.ErrCatalogUnavailable, err)
	}
	defer client.Close()

	if err := client.Call(method, params, reply); err != nil {
		return classifyRPCError(err)
	}
	return nil
}

// statusCheckingTransport turns non-2xx replies into transport errors.
// kolo/xmlrpc would otherwise report them as server errors, which read like
// XML-RPC faults.
type statusCheckingTransport struct {
	next http.RoundTripper
}

func (t statusCheckingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("odoo replied status=%d", resp.StatusCode)
	}
	return resp, nil
}

// classifyRPCError maps XML-RPC faults (surfaced by net/rpc as ServerError)
// to ErrCatalogError and everything else to ErrCatalogUnavailable.
func classifyRPCError(err error) error {
	var serverErr rpc.ServerError
	if errors.As(err, &serverErr) {
		return fmt.Errorf("%w: %v", interfaces.ErrCatalogError, err)
	}
	return fmt.Errorf("%w: %v", interfaces.ErrCatalogUnavailable, err)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
