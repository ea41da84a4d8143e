// Package client is a typed wrapper over the storefront HTTP API, for
// frontends and tools written in Go.
package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"essencia/internal/domain"
	"essencia/internal/validate"
)

type (
	Product       = domain.Product
	Lead          = domain.Lead
	ViewedProduct = domain.ViewedProduct
	BlogPost      = domain.BlogPost
	BlogPage      = domain.BlogPage
	ProductInput  = validate.ProductInput
	BlogPostInput = validate.BlogPostInput
	FieldError    = validate.FieldError
)

const defaultTimeout = 10 * time.Second

// APIError is a non-2xx answer from the server.
type APIError struct {
	Status  int
	Message string
	Fields  []FieldError
}

func (e *APIError) Error() string {
	if len(e.Fields) > 0 {
		return fmt.Sprintf("api: %d: %s", e.Status, validate.Errors(e.Fields).Error())
	}
	return fmt.Sprintf("api: %d: %s", e.Status, e.Message)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var ae *APIError
	return errors.As(err, &ae) && ae.Status == fiber.StatusNotFound
}

type Client struct {
	base      string
	timeout   time.Duration
	adminUser string
	adminPass string
}

type Option func(*Client)

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithAdmin sets the basic auth credentials sent on write routes.
func WithAdmin(user, pass string) Option {
	return func(c *Client) { c.adminUser, c.adminPass = user, pass }
}

// New returns a client for the API served at baseURL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{base: strings.TrimRight(baseURL, "/"), timeout: defaultTimeout}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *Client) url(path string) string { return c.base + path }

// do sends the request built in a and decodes a 2xx body into out.
func (c *Client) do(a *fiber.Agent, admin bool, out any) error {
	a.Timeout(c.timeout)
	if admin && c.adminUser != "" {
		a.BasicAuth(c.adminUser, c.adminPass)
	}
	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	if code < 200 || code > 299 {
		return decodeError(code, body)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeError(code int, body []byte) error {
	ae := &APIError{Status: code}
	var env struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &env); err != nil || len(env.Error) == 0 {
		ae.Message = strings.TrimSpace(string(body))
		return ae
	}
	if err := json.Unmarshal(env.Error, &ae.Message); err == nil {
		return ae
	}
	if err := json.Unmarshal(env.Error, &ae.Fields); err == nil {
		ae.Message = "validation failed"
		return ae
	}
	ae.Message = string(env.Error)
	return ae
}

// pathSegment escapes s for use as one path segment. PathEscape leaves "+"
// alone, which some servers read as a space.
func pathSegment(s string) string {
	return strings.ReplaceAll(url.PathEscape(s), "+", "%2B")
}

func idPath(prefix string, id int64) string {
	return prefix + strconv.FormatInt(id, 10)
}

// ---------- Products ----------

func (c *Client) Products() ([]Product, error) {
	var ps []Product
	err := c.do(fiber.Get(c.url("/api/products")), false, &ps)
	return ps, err
}

// SearchProducts runs the server side substring search.
func (c *Client) SearchProducts(q string) ([]Product, error) {
	var ps []Product
	err := c.do(fiber.Get(c.url("/api/products?q="+url.QueryEscape(q))), false, &ps)
	return ps, err
}

func (c *Client) Product(id int64) (Product, error) {
	var p Product
	err := c.do(fiber.Get(c.url(idPath("/api/products/", id))), false, &p)
	return p, err
}

func (c *Client) ProductsByCategory(category string) ([]Product, error) {
	var ps []Product
	err := c.do(fiber.Get(c.url("/api/products/category/"+pathSegment(category))), false, &ps)
	return ps, err
}

func (c *Client) CreateProduct(in ProductInput) (Product, error) {
	var p Product
	err := c.do(fiber.Post(c.url("/api/products")).JSON(in), true, &p)
	return p, err
}

// UpdateProduct sends a partial update. Only the keys present in fields are
// changed; a nil "promoPrice" clears the promotional price.
func (c *Client) UpdateProduct(id int64, fields map[string]any) (Product, error) {
	var p Product
	err := c.do(fiber.Patch(c.url(idPath("/api/products/", id))).JSON(fields), true, &p)
	return p, err
}

func (c *Client) DeleteProduct(id int64) error {
	return c.do(fiber.Delete(c.url(idPath("/api/products/", id))), true, nil)
}

// ---------- Leads ----------

func (c *Client) Leads() ([]Lead, error) {
	var ls []Lead
	err := c.do(fiber.Get(c.url("/api/leads")), false, &ls)
	return ls, err
}

func (c *Client) Register(name, phone string) (Lead, error) {
	var l Lead
	body := validate.LeadRegistration{Name: name, Phone: phone}
	err := c.do(fiber.Post(c.url("/api/leads/register")).JSON(body), false, &l)
	return l, err
}

func (c *Client) Login(phone string) (Lead, error) {
	var l Lead
	err := c.do(fiber.Post(c.url("/api/leads/login")).JSON(validate.LeadLogin{Phone: phone}), false, &l)
	return l, err
}

func (c *Client) LeadByPhone(phone string) (Lead, error) {
	var l Lead
	err := c.do(fiber.Get(c.url("/api/leads/phone/"+pathSegment(phone))), false, &l)
	return l, err
}

// ---------- Viewed products ----------

func (c *Client) AddViewedProduct(leadID, productID int64) (ViewedProduct, error) {
	var v ViewedProduct
	body := validate.ViewedProductInput{LeadID: leadID, ProductID: productID}
	err := c.do(fiber.Post(c.url("/api/viewed-products")).JSON(body), false, &v)
	return v, err
}

// ViewedProductIDs lists the product ids a lead viewed, oldest first. Any
// failure yields an empty list so a storefront can render without history.
func (c *Client) ViewedProductIDs(leadID int64) []int64 {
	var vs []ViewedProduct
	if err := c.do(fiber.Get(c.url(idPath("/api/viewed-products/", leadID))), false, &vs); err != nil {
		return []int64{}
	}
	ids := make([]int64, 0, len(vs))
	for _, v := range vs {
		ids = append(ids, v.ProductID)
	}
	return ids
}

// ---------- Blog ----------

// BlogPosts fetches one page; page and limit <= 0 use the server defaults.
func (c *Client) BlogPosts(page, limit int) (BlogPage, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	path := "/api/blog"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	var res BlogPage
	err := c.do(fiber.Get(c.url(path)), false, &res)
	return res, err
}

// AllBlogPosts walks every page of size limit and returns the posts newest first.
func (c *Client) AllBlogPosts(limit int) ([]BlogPost, error) {
	if limit <= 0 {
		limit = validate.DefaultLimit
	}
	var all []BlogPost
	for page := 1; ; page++ {
		res, err := c.BlogPosts(page, limit)
		if err != nil {
			return nil, err
		}
		all = append(all, res.Posts...)
		if page >= res.TotalPages(limit) {
			return all, nil
		}
	}
}

func (c *Client) BlogPost(id int64) (BlogPost, error) {
	var p BlogPost
	err := c.do(fiber.Get(c.url(idPath("/api/blog/", id))), false, &p)
	return p, err
}

func (c *Client) CreateBlogPost(in BlogPostInput) (BlogPost, error) {
	var p BlogPost
	err := c.do(fiber.Post(c.url("/api/blog")).JSON(in), true, &p)
	return p, err
}
