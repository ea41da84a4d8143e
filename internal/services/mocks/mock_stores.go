package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"essencia/internal/domain"
	"essencia/internal/validate"
)

type MockProductStore struct {
	mock.Mock
}

func (m *MockProductStore) All(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if ps := args.Get(0); ps != nil {
		return ps.([]domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductStore) Get(ctx context.Context, id int64) (domain.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductStore) ByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	args := m.Called(ctx, category)
	if ps := args.Get(0); ps != nil {
		return ps.([]domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductStore) Search(ctx context.Context, q string) ([]domain.Product, error) {
	args := m.Called(ctx, q)
	if ps := args.Get(0); ps != nil {
		return ps.([]domain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductStore) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductStore) Update(ctx context.Context, id int64, patch validate.ProductPatch) (domain.Product, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(domain.Product), args.Error(1)
}

func (m *MockProductStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockLeadStore struct {
	mock.Mock
}

func (m *MockLeadStore) All(ctx context.Context) ([]domain.Lead, error) {
	args := m.Called(ctx)
	if ls := args.Get(0); ls != nil {
		return ls.([]domain.Lead), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockLeadStore) ByPhone(ctx context.Context, phone string) (domain.Lead, error) {
	args := m.Called(ctx, phone)
	return args.Get(0).(domain.Lead), args.Error(1)
}

func (m *MockLeadStore) Create(ctx context.Context, name, phone string) (domain.Lead, error) {
	args := m.Called(ctx, name, phone)
	return args.Get(0).(domain.Lead), args.Error(1)
}

type MockViewedStore struct {
	mock.Mock
}

func (m *MockViewedStore) Add(ctx context.Context, leadID, productID int64) (domain.ViewedProduct, error) {
	args := m.Called(ctx, leadID, productID)
	return args.Get(0).(domain.ViewedProduct), args.Error(1)
}

func (m *MockViewedStore) ByLead(ctx context.Context, leadID int64) ([]domain.ViewedProduct, error) {
	args := m.Called(ctx, leadID)
	if vs := args.Get(0); vs != nil {
		return vs.([]domain.ViewedProduct), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockBlogStore struct {
	mock.Mock
}

func (m *MockBlogStore) Page(ctx context.Context, page, limit int) ([]domain.BlogPost, int, error) {
	args := m.Called(ctx, page, limit)
	var posts []domain.BlogPost
	if ps := args.Get(0); ps != nil {
		posts = ps.([]domain.BlogPost)
	}
	return posts, args.Int(1), args.Error(2)
}

func (m *MockBlogStore) Get(ctx context.Context, id int64) (domain.BlogPost, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.BlogPost), args.Error(1)
}

func (m *MockBlogStore) Create(ctx context.Context, p domain.BlogPost) (domain.BlogPost, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(domain.BlogPost), args.Error(1)
}
