package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MarcGrol/grocerystore/lib/myerrors"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// Provider is the read-only source of products and categories.
type Provider interface {
	ListProducts(c context.Context) ([]Product, error)
	GetProduct(c context.Context, productUID string) (Product, error)
	ListCategories(c context.Context) ([]Category, error)
	GetCategory(c context.Context, categoryUID string) (Category, error)
	ProductsByCategory(c context.Context, categoryUID string) ([]Product, error)
	FeaturedProducts(c context.Context) ([]Product, error)
	SearchProducts(c context.Context, query string) ([]Product, error)
}

type fixtureProvider struct {
	products   []Product
	categories []Category
}

func NewFixtureProvider() Provider {
	return NewProvider(fixtureCategories(), fixtureProducts())
}

func NewProvider(categories []Category, products []Product) Provider {
	return &fixtureProvider{
		products:   products,
		categories: categories,
	}
}

func (p *fixtureProvider) ListProducts(c context.Context) ([]Product, error) {
	return p.filter(func(Product) bool { return true }), nil
}

func (p *fixtureProvider) GetProduct(c context.Context, productUID string) (Product, error) {
	for _, product := range p.products {
		if product.UID == productUID {
			return product.Clone(), nil
		}
	}
	return Product{}, myerrors.NewNotFoundError(fmt.Errorf("%w: %s", ErrProductNotFound, productUID))
}

func (p *fixtureProvider) ListCategories(c context.Context) ([]Category, error) {
	return append([]Category{}, p.categories...), nil
}

func (p *fixtureProvider) GetCategory(c context.Context, categoryUID string) (Category, error) {
	for _, category := range p.categories {
		if category.UID == categoryUID {
			return category, nil
		}
	}
	return Category{}, myerrors.NewNotFoundError(fmt.Errorf("%w: %s", ErrCategoryNotFound, categoryUID))
}

func (p *fixtureProvider) ProductsByCategory(c context.Context, categoryUID string) ([]Product, error) {
	_, err := p.GetCategory(c, categoryUID)
	if err != nil {
		return nil, err
	}
	return p.filter(func(product Product) bool {
		return product.Category.UID == categoryUID
	}), nil
}

func (p *fixtureProvider) FeaturedProducts(c context.Context) ([]Product, error) {
	return p.filter(func(product Product) bool {
		return product.Featured
	}), nil
}

func (p *fixtureProvider) SearchProducts(c context.Context, query string) ([]Product, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return p.ListProducts(c)
	}
	return p.filter(func(product Product) bool {
		return matchesQuery(product, q)
	}), nil
}

func matchesQuery(product Product, q string) bool {
	if strings.Contains(strings.ToLower(product.Name), q) ||
		strings.Contains(strings.ToLower(product.Description), q) ||
		strings.Contains(strings.ToLower(product.Category.Name), q) {
		return true
	}
	for _, tag := range product.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

func (p *fixtureProvider) filter(keep func(Product) bool) []Product {
	result := []Product{}
	for _, product := range p.products {
		if keep(product) {
			result = append(result, product.Clone())
		}
	}
	return result
}
