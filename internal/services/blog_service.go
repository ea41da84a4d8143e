package services

import (
	"context"

	"essencia/internal/domain"
	"essencia/internal/validate"
)

type BlogService struct {
	Posts BlogStore
}

func NewBlogService(posts BlogStore) *BlogService { return &BlogService{Posts: posts} }

func (s *BlogService) Page(ctx context.Context, page, limit int) (domain.BlogPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = validate.DefaultLimit
	}
	posts, total, err := s.Posts.Page(ctx, page, limit)
	if err != nil {
		return domain.BlogPage{}, err
	}
	return domain.BlogPage{Posts: posts, Total: total}, nil
}

func (s *BlogService) Get(ctx context.Context, id int64) (domain.BlogPost, error) {
	p, err := s.Posts.Get(ctx, id)
	return p, notFound(err)
}

func (s *BlogService) Create(ctx context.Context, in validate.BlogPostInput) (domain.BlogPost, error) {
	return s.Posts.Create(ctx, in.BlogPost())
}
