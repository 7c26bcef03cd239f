package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines catalog business logic.
type Service interface {
	ListProducts(ctx context.Context, f Filter) ([]*Product, error)
	GetProduct(ctx context.Context, id string) (*Product, error)
	CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error)
	// Seed inserts the sample catalog when the products table is empty and
	// returns how many rows were written.
	Seed(ctx context.Context) (int, error)
}

// CreateProductRequest holds the data for creating a product.
type CreateProductRequest struct {
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Brand       Brand  `json:"brand"`
	Stock       int    `json:"stock"`
	Description string `json:"description"`
}

type service struct {
	repo    Repository
	logger  *zap.Logger
	samples func() []*Product
}

func NewService(repo Repository, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{repo: repo, logger: logger, samples: SampleProducts}
}

// ListProducts serves from the database and falls back to the sample
// catalog, with the same filters, when the query fails.
func (s *service) ListProducts(ctx context.Context, f Filter) ([]*Product, error) {
	f = normalizeFilter(f)
	products, err := s.repo.List(ctx, f)
	if err != nil {
		s.logger.Warn("product query failed, using sample catalog", zap.Error(err))
		return filterSamples(f), nil
	}
	return products, nil
}

func (s *service) GetProduct(ctx context.Context, id string) (*Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err == nil || errors.Is(err, ErrNotFound) {
		return p, err
	}
	s.logger.Warn("product lookup failed, using sample catalog", zap.String("id", id), zap.Error(err))
	for _, sp := range SampleProducts() {
		if sp.ID.String() == id {
			return sp, nil
		}
	}
	return nil, ErrNotFound
}

func (s *service) CreateProduct(ctx context.Context, req CreateProductRequest) (*Product, error) {
	return s.create(ctx, uuid.New(), req)
}

// Seed writes the sample catalog through the same validation as
// CreateProduct, keeping each sample's stable id.
func (s *service) Seed(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	if n > 0 {
		return 0, nil
	}
	samples := s.samples()
	for _, p := range samples {
		if err := requestFor(p).validate(); err != nil {
			return 0, fmt.Errorf("seed %q: %w", p.Name, err)
		}
	}
	for _, p := range samples {
		if _, err := s.create(ctx, p.ID, requestFor(p)); err != nil {
			return 0, fmt.Errorf("seed %q: %w", p.Name, err)
		}
	}
	return len(samples), nil
}

func (s *service) create(ctx context.Context, id uuid.UUID, req CreateProductRequest) (*Product, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	p := &Product{
		ID:          id,
		Name:        req.Name,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
		Brand:       req.Brand,
		Stock:       req.Stock,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r CreateProductRequest) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if r.Price <= 0 {
		return fmt.Errorf("price must be positive")
	}
	if r.Stock < 0 {
		return fmt.Errorf("stock must not be negative")
	}
	if !r.Brand.Valid() {
		return fmt.Errorf("invalid brand %q", r.Brand)
	}
	return nil
}

func requestFor(p *Product) CreateProductRequest {
	return CreateProductRequest{
		Name:        p.Name,
		Price:       p.Price,
		Image:       p.Image,
		Category:    p.Category,
		Brand:       p.Brand,
		Stock:       p.Stock,
		Description: p.Description,
	}
}

// normalizeFilter drops the storefront's "show everything" pseudo-values.
func normalizeFilter(f Filter) Filter {
	if f.Brand == "All Brands" {
		f.Brand = ""
	}
	if f.Category == "All Products" {
		f.Category = ""
	}
	f.Query = strings.TrimSpace(f.Query)
	return f
}

func filterSamples(f Filter) []*Product {
	q := strings.ToLower(f.Query)
	out := []*Product{}
	for _, p := range SampleProducts() {
		if f.Brand != "" && string(p.Brand) != f.Brand {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Description), q) {
			continue
		}
		out = append(out, p)
	}
	return out
}
