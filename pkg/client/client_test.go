package client_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"essencia/internal/config"
	"essencia/internal/domain"
	"essencia/internal/http/handlers"
	"essencia/internal/repos"
	"essencia/pkg/client"
)

// serve starts the API on a loopback port and returns its base URL.
func serve(t *testing.T, cfg config.Config) string {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	require.NoError(t, err)
	require.NoError(t, repos.SeedIfEmpty(context.Background(), db))

	app := handlers.NewApp(handlers.NewDeps(db), cfg, nil)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() {
		_ = app.ShutdownWithTimeout(time.Second)
		_ = db.Close()
	})
	return "http://" + ln.Addr().String()
}

func TestClient_Catalog(t *testing.T) {
	c := client.New(serve(t, config.Config{}), client.WithTimeout(5*time.Second))

	ps, err := c.Products()
	require.NoError(t, err)
	require.Len(t, ps, 6)

	p, err := c.Product(ps[1].ID)
	require.NoError(t, err)
	assert.Equal(t, ps[1].Name, p.Name)

	_, err = c.Product(9999)
	assert.True(t, client.IsNotFound(err))
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Product not found", apiErr.Message)

	uni, err := c.ProductsByCategory("Unisex")
	require.NoError(t, err)
	assert.Len(t, uni, 2)

	hits, err := c.SearchProducts("rosa")
	require.NoError(t, err)
	assert.Len(t, hits, 1)
}

func TestClient_ProductWrites(t *testing.T) {
	c := client.New(serve(t, config.Config{}))

	price := domain.MustMoney("199.90")
	stock := 3
	created, err := c.CreateProduct(client.ProductInput{
		Name:     "Bleu",
		Brand:    "Chanel",
		Price:    &price,
		Image:    "https://example.com/bleu.jpg",
		Category: domain.Masculine,
		Notes:    "Toranja, Incenso",
		Stock:    &stock,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, created.Stock)

	updated, err := c.UpdateProduct(created.ID, map[string]any{"isPromotion": true, "promoPrice": "179.90"})
	require.NoError(t, err)
	assert.Equal(t, "179.90", updated.DisplayPrice().String())

	_, err = c.CreateProduct(client.ProductInput{Name: "x"})
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.Status)
	assert.NotEmpty(t, apiErr.Fields)

	require.NoError(t, c.DeleteProduct(created.ID))
	assert.True(t, client.IsNotFound(c.DeleteProduct(created.ID)))
}

func TestClient_AdminCredentials(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	base := serve(t, config.Config{AdminUser: "admin", AdminPasswordHash: string(hash)})

	in := client.BlogPostInput{Title: "t", Excerpt: "e", Content: "c", Image: "i"}

	_, err = client.New(base).CreateBlogPost(in)
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.Status)

	post, err := client.New(base, client.WithAdmin("admin", "s3cret")).CreateBlogPost(in)
	require.NoError(t, err)
	assert.NotZero(t, post.ID)
}

func TestClient_LeadsAndInterests(t *testing.T) {
	c := client.New(serve(t, config.Config{}))

	lead, err := c.Register("Ana", "11999990000")
	require.NoError(t, err)

	_, err = c.Register("Ana", "11999990000")
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Phone already registered", apiErr.Message)

	again, err := c.Login("11999990000")
	require.NoError(t, err)
	assert.Equal(t, lead.ID, again.ID)

	_, err = c.Login("0000000000")
	assert.True(t, client.IsNotFound(err))

	byPhone, err := c.LeadByPhone("11999990000")
	require.NoError(t, err)
	assert.Equal(t, lead.ID, byPhone.ID)

	leads, err := c.Leads()
	require.NoError(t, err)
	assert.Len(t, leads, 1)

	ps, err := c.Products()
	require.NoError(t, err)
	for _, id := range []int64{ps[4].ID, ps[0].ID, ps[4].ID} {
		_, err := c.AddViewedProduct(lead.ID, id)
		require.NoError(t, err)
	}

	ids := c.ViewedProductIDs(lead.ID)
	assert.Equal(t, []int64{ps[4].ID, ps[0].ID, ps[4].ID}, ids)

	interests := client.Interests(ps, ids)
	require.Len(t, interests, 2)
	assert.Equal(t, ps[0].ID, interests[0].ID)
	assert.Equal(t, ps[4].ID, interests[1].ID)
}

func TestClient_LeadByPhoneWithPlus(t *testing.T) {
	c := client.New(serve(t, config.Config{}))

	for _, phone := range []string{"+5511999999999", "+55 11 98888-7777"} {
		lead, err := c.Register("Bia", phone)
		require.NoError(t, err, phone)

		got, err := c.LeadByPhone(phone)
		require.NoError(t, err, phone)
		assert.Equal(t, lead.ID, got.ID, phone)
		assert.Equal(t, phone, got.Phone)
	}
}

func TestClient_ViewedProductIDsSwallowsErrors(t *testing.T) {
	c := client.New("http://127.0.0.1:1", client.WithTimeout(200*time.Millisecond))
	ids := c.ViewedProductIDs(1)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

func TestClient_Blog(t *testing.T) {
	c := client.New(serve(t, config.Config{}))

	page, err := c.BlogPosts(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, page.Total)
	require.Len(t, page.Posts, 3)

	small, err := c.BlogPosts(2, 2)
	require.NoError(t, err)
	assert.Len(t, small.Posts, 1)
	assert.Equal(t, 2, small.TotalPages(2))

	post, err := c.BlogPost(page.Posts[0].ID)
	require.NoError(t, err)
	assert.Equal(t, page.Posts[0].Title, post.Title)

	_, err = c.BlogPost(999)
	assert.True(t, client.IsNotFound(err))

	all, err := c.AllBlogPosts(2)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, page.Posts[0].ID, all[0].ID)
	assert.Equal(t, page.Posts[2].ID, all[2].ID)
}
