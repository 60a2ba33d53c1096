package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/orderly-app/orderly-api/internal/domain"
	"github.com/orderly-app/orderly-api/internal/domain/entity"
	"github.com/orderly-app/orderly-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implements ProductRepository on PostgreSQL (usable with pool or tx).
// The option group is stored as a JSONB document: options are read and written
// as one unit, which keeps the per-option stocks and the aggregate consistent
// under the row lock.
type ProductRepo struct {
	q Querier
}

// NewProductRepository builds the adapter. Pass pool or tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persists a new product.
func (r *ProductRepo) Create(product *entity.Product) error {
	group, err := marshalOptionGroup(product.OptionGroup)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO products (id, business_id, sku, name, price, stock, low_stock_threshold, status, option_group, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err = r.q.Exec(context.Background(), query,
		product.ID, product.BusinessID, product.SKU, product.Name, product.Price,
		product.Stock, product.LowStockThreshold, product.Status, group,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// GetByID returns a product by ID, nil when not found.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.getOne(productColumns+` WHERE id = $1`, id)
}

// GetByBusinessAndSKU returns a product by business and SKU, nil when not found.
func (r *ProductRepo) GetByBusinessAndSKU(businessID, sku string) (*entity.Product, error) {
	return r.getOne(productColumns+` WHERE business_id = $1 AND sku = $2`, businessID, sku)
}

// GetForUpdate locks the product row (SELECT FOR UPDATE). Only meaningful
// inside a transaction; the stock reconciliation path depends on it.
func (r *ProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.getOne(productColumns+` WHERE id = $1 FOR UPDATE`, id)
}

// Update rewrites the catalog fields including the option group.
func (r *ProductRepo) Update(product *entity.Product) error {
	group, err := marshalOptionGroup(product.OptionGroup)
	if err != nil {
		return err
	}
	query := `
		UPDATE products
		SET name = $2, price = $3, stock = $4, low_stock_threshold = $5, status = $6, option_group = $7, updated_at = $8
		WHERE id = $1`
	_, err = r.q.Exec(context.Background(), query,
		product.ID, product.Name, product.Price, product.Stock,
		product.LowStockThreshold, product.Status, group, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	return nil
}

// UpdateStock writes only the stock fields (aggregate plus option group),
// used by the order lifecycle under the row lock.
func (r *ProductRepo) UpdateStock(product *entity.Product) error {
	group, err := marshalOptionGroup(product.OptionGroup)
	if err != nil {
		return err
	}
	_, err = r.q.Exec(context.Background(),
		`UPDATE products SET stock = $2, option_group = $3, updated_at = now() WHERE id = $1`,
		product.ID, product.Stock, group,
	)
	if err != nil {
		return fmt.Errorf("update product stock: %w", err)
	}
	return nil
}

// ListByBusiness lists a business's products, newest first.
func (r *ProductRepo) ListByBusiness(businessID string, limit, offset int) ([]*entity.Product, error) {
	query := productColumns + ` WHERE business_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, businessID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// ListLowStock lists active products at or below their low stock threshold,
// lowest remaining stock first.
func (r *ProductRepo) ListLowStock(businessID string) ([]*entity.Product, error) {
	query := productColumns + `
		WHERE business_id = $1 AND status = 'active' AND low_stock_threshold > 0 AND stock <= low_stock_threshold
		ORDER BY stock ASC`
	rows, err := r.q.Query(context.Background(), query, businessID)
	if err != nil {
		return nil, fmt.Errorf("list low stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// CountLowStock counts active products at or below their low stock threshold.
// For products with options the aggregate stock column is already the sum of
// the option stocks.
func (r *ProductRepo) CountLowStock(businessID string) (int, error) {
	query := `
		SELECT COUNT(*) FROM products
		WHERE business_id = $1 AND status = 'active' AND low_stock_threshold > 0 AND stock <= low_stock_threshold`
	var count int
	if err := r.q.QueryRow(context.Background(), query, businessID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count low stock: %w", err)
	}
	return count, nil
}

// Delete removes a product by ID.
func (r *ProductRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

const productColumns = `
	SELECT id, business_id, sku, name, price, stock, low_stock_threshold, status, option_group, created_at, updated_at
	FROM products`

func (r *ProductRepo) getOne(query string, args ...any) (*entity.Product, error) {
	p, err := scanProduct(r.q.QueryRow(context.Background(), query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var group []byte
	err := row.Scan(
		&p.ID, &p.BusinessID, &p.SKU, &p.Name, &p.Price, &p.Stock,
		&p.LowStockThreshold, &p.Status, &group, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(group) > 0 {
		p.OptionGroup = &entity.ProductOptionGroup{}
		if err := json.Unmarshal(group, p.OptionGroup); err != nil {
			return nil, fmt.Errorf("decode option group: %w", err)
		}
	}
	return &p, nil
}

// marshalOptionGroup encodes the group for the JSONB column; nil stays NULL.
func marshalOptionGroup(group *entity.ProductOptionGroup) ([]byte, error) {
	if group == nil {
		return nil, nil
	}
	raw, err := json.Marshal(group)
	if err != nil {
		return nil, fmt.Errorf("encode option group: %w", err)
	}
	return raw, nil
}
