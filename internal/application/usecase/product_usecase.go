package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/orderly-app/orderly-api/internal/application/dto"
	"github.com/orderly-app/orderly-api/internal/domain"
	"github.com/orderly-app/orderly-api/internal/domain/entity"
	"github.com/orderly-app/orderly-api/internal/domain/repository"
)

// ProductUseCase catalog CRUD. Stock edits here are manual corrections; the
// order lifecycle adjusts stock through its own transactional path.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase builds the use case.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create creates a catalog item. When an option group is present, per-option
// stocks are the source of truth and the aggregate stock is set to their sum.
func (uc *ProductUseCase) Create(businessID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	sku := in.SKU
	if sku == "" {
		sku = generateSKU(in.Name)
	}
	existing, _ := uc.repo.GetByBusinessAndSKU(businessID, sku)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}

	now := time.Now()
	product := &entity.Product{
		ID:                uuid.New().String(),
		BusinessID:        businessID,
		SKU:               sku,
		Name:              in.Name,
		Price:             in.Price,
		Stock:             in.Stock,
		LowStockThreshold: in.LowStockThreshold,
		Status:            entity.ProductStatusActive,
		OptionGroup:       toOptionGroup(in.OptionGroup, true),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if product.HasOptions() {
		product.Stock = sumOptionStock(product.OptionGroup)
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID returns a product scoped to the caller's business.
func (uc *ProductUseCase) GetByID(businessID, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.BusinessID != businessID {
		return nil, domain.ErrNotFound
	}
	return toProductResponse(product), nil
}

// Update patches a product. Nil fields are left unchanged. Replacing the
// option group resets per-option stock tracking to the new group.
func (uc *ProductUseCase) Update(businessID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || product.BusinessID != businessID {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.LowStockThreshold != nil {
		product.LowStockThreshold = *in.LowStockThreshold
	}
	if in.Status != nil {
		product.Status = *in.Status
	}
	if in.OptionGroup != nil {
		product.OptionGroup = toOptionGroup(in.OptionGroup, false)
	}
	if product.HasOptions() {
		product.Stock = sumOptionStock(product.OptionGroup)
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List returns a business's catalog page.
func (uc *ProductUseCase) List(businessID string, page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	products, err := uc.repo.ListByBusiness(businessID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// LowStock returns the active products at or below their low stock threshold.
func (uc *ProductUseCase) LowStock(businessID string) (*dto.ProductListResponse, error) {
	products, err := uc.repo.ListLowStock(businessID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: len(items), Total: len(items)},
	}, nil
}

// Delete removes a product from the catalog. Orders that sold it keep their
// item snapshots.
func (uc *ProductUseCase) Delete(businessID, id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil || product.BusinessID != businessID {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// generateSKU derives a stable-looking SKU from the product name plus a short
// random suffix, e.g. "ICED-LATTE-3F2A91".
func generateSKU(name string) string {
	base := strings.ToUpper(strings.Join(strings.Fields(name), "-"))
	if len(base) > 16 {
		base = base[:16]
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:6]
	return fmt.Sprintf("%s-%s", base, suffix)
}

func sumOptionStock(group *entity.ProductOptionGroup) int {
	total := 0
	for _, opt := range group.Options {
		total += opt.Stock
	}
	return total
}

// toOptionGroup maps the request group. assignIDs mints option IDs for create;
// on update, options without an ID (new variants) also get one.
func toOptionGroup(in *dto.ProductOptionGroupRequest, assignIDs bool) *entity.ProductOptionGroup {
	if in == nil {
		return nil
	}
	group := &entity.ProductOptionGroup{
		Label:        in.Label,
		AffectsStock: true,
		Options:      make([]entity.ProductOption, 0, len(in.Options)),
	}
	for _, opt := range in.Options {
		id := opt.ID
		if assignIDs || id == "" {
			id = uuid.New().String()
		}
		group.Options = append(group.Options, entity.ProductOption{
			ID:                id,
			Label:             opt.Label,
			Stock:             opt.Stock,
			PriceAdjustment:   opt.PriceAdjustment,
			LowStockThreshold: opt.LowStockThreshold,
		})
	}
	return group
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	resp := &dto.ProductResponse{
		ID:                p.ID,
		SKU:               p.SKU,
		Name:              p.Name,
		Price:             p.Price,
		Stock:             p.Stock,
		LowStockThreshold: p.LowStockThreshold,
		Status:            p.Status,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
	if p.OptionGroup != nil {
		group := &dto.ProductOptionGroupResponse{
			Label:        p.OptionGroup.Label,
			AffectsStock: p.OptionGroup.AffectsStock,
			Options:      make([]dto.ProductOptionResponse, 0, len(p.OptionGroup.Options)),
		}
		for _, opt := range p.OptionGroup.Options {
			group.Options = append(group.Options, dto.ProductOptionResponse{
				ID:                opt.ID,
				Label:             opt.Label,
				Stock:             opt.Stock,
				PriceAdjustment:   opt.PriceAdjustment,
				LowStockThreshold: opt.LowStockThreshold,
			})
		}
		resp.OptionGroup = group
	}
	return resp
}
