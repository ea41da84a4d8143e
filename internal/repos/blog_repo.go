package repos

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"essencia/internal/domain"
)

const blogCols = `id, title, excerpt, content, image, product_id, created_at`

type BlogRepo struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewBlogRepo(db *sqlx.DB) *BlogRepo { return &BlogRepo{db: db, now: utcNow} }

// Page returns the posts of a 1-indexed page, newest first, and the total
// number of posts. A page past the end is empty but still reports the total.
func (r *BlogRepo) Page(ctx context.Context, page, limit int) ([]domain.BlogPost, int, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 6
	}
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM blog_posts`); err != nil {
		return nil, 0, err
	}
	posts := []domain.BlogPost{}
	if err := r.db.SelectContext(ctx, &posts, r.db.Rebind(`
	  SELECT `+blogCols+`
	  FROM blog_posts
	  ORDER BY created_at DESC, id DESC
	  LIMIT ? OFFSET ?
	`), limit, (page-1)*limit); err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// Get returns sql.ErrNoRows when the id is unknown.
func (r *BlogRepo) Get(ctx context.Context, id int64) (domain.BlogPost, error) {
	var p domain.BlogPost
	err := r.db.GetContext(ctx, &p, r.db.Rebind(`SELECT `+blogCols+` FROM blog_posts WHERE id = ?`), id)
	return p, err
}

func (r *BlogRepo) Create(ctx context.Context, p domain.BlogPost) (domain.BlogPost, error) {
	var out domain.BlogPost
	err := r.db.GetContext(ctx, &out, r.db.Rebind(`
	  INSERT INTO blog_posts(title, excerpt, content, image, product_id, created_at)
	  VALUES (?, ?, ?, ?, ?, ?)
	  RETURNING `+blogCols),
		p.Title, p.Excerpt, p.Content, p.Image, p.ProductID, r.now())
	return out, err
}
