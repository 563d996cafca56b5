package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/mosslight/storefront/internal/domain/catalog"
	"github.com/mosslight/storefront/internal/domain/shared"
	"github.com/mosslight/storefront/internal/domain/shared/valueobject"
)

// ProductService handles catalog business operations
type ProductService struct {
	productRepo catalog.ProductRepository
}

// NewProductService creates a new ProductService
func NewProductService(productRepo catalog.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// Create creates a new product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	exists, err := s.productRepo.ExistsBySKU(ctx, req.SKU)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Product with this SKU already exists")
	}

	product, err := catalog.NewProduct(req.SKU, req.Name, valueobject.NewMoneyUSD(req.Price))
	if err != nil {
		return nil, err
	}

	if req.Description != "" {
		if err := product.Update(req.Name, req.Description); err != nil {
			return nil, err
		}
	}
	if err := product.SetTaxRate(req.TaxRate); err != nil {
		return nil, err
	}
	if err := product.SetShippingPrice(req.ShippingPrice); err != nil {
		return nil, err
	}
	if req.Inventory != nil {
		if err := product.SetInventory(*req.Inventory); err != nil {
			return nil, err
		}
	}
	product.SetCategories(req.Categories)
	product.SetOptions(req.Colors, req.Sizes)

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// Get returns a product by ID
func (s *ProductService) Get(ctx context.Context, id uuid.UUID) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// List returns products matching the filter, paginated
func (s *ProductService) List(ctx context.Context, filter ProductListFilter) (*shared.Paginated[ProductResponse], error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	domainFilter.Search = filter.Search
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}

	var (
		products []catalog.Product
		err      error
	)
	if filter.Category != "" {
		products, err = s.productRepo.FindByCategory(ctx, filter.Category, domainFilter)
	} else {
		products, err = s.productRepo.FindAll(ctx, domainFilter)
	}
	if err != nil {
		return nil, err
	}

	total, err := s.productRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, err
	}

	items := make([]ProductResponse, 0, len(products))
	for i := range products {
		items = append(items, ToProductResponse(&products[i]))
	}

	result := shared.NewPaginated(items, total, domainFilter.Page, domainFilter.PageSize)
	return &result, nil
}

// Update updates a product
func (s *ProductService) Update(ctx context.Context, id uuid.UUID, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := product.Name
	if req.Name != nil {
		name = *req.Name
	}
	description := product.Description
	if req.Description != nil {
		description = *req.Description
	}
	if err := product.Update(name, description); err != nil {
		return nil, err
	}

	if req.Price != nil {
		if err := product.SetPrice(valueobject.NewMoneyUSD(*req.Price)); err != nil {
			return nil, err
		}
	}
	if req.TaxRate != nil {
		if err := product.SetTaxRate(req.TaxRate); err != nil {
			return nil, err
		}
	}
	if req.ShippingPrice != nil {
		if err := product.SetShippingPrice(req.ShippingPrice); err != nil {
			return nil, err
		}
	}
	if req.Inventory != nil {
		if err := product.SetInventory(*req.Inventory); err != nil {
			return nil, err
		}
	}
	if req.Categories != nil {
		product.SetCategories(req.Categories)
	}
	if req.Colors != nil || req.Sizes != nil {
		colors := product.Colors
		if req.Colors != nil {
			colors = req.Colors
		}
		sizes := product.Sizes
		if req.Sizes != nil {
			sizes = req.Sizes
		}
		product.SetOptions(colors, sizes)
	}
	if req.Status != nil {
		if err := s.applyStatus(product, catalog.ProductStatus(*req.Status)); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// Delete removes a product from the catalog
func (s *ProductService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.productRepo.Delete(ctx, id)
}

// AddVariant adds a size/color variant to a product
func (s *ProductService) AddVariant(ctx context.Context, productID uuid.UUID, req AddVariantRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	if _, err := product.AddVariant(req.Size, req.Color, valueobject.NewMoneyUSD(req.Price), req.Inventory); err != nil {
		return nil, err
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// UpdateVariant updates the price or inventory of an existing variant
func (s *ProductService) UpdateVariant(ctx context.Context, productID uuid.UUID, size, color string, req UpdateVariantRequest) (*ProductResponse, error) {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	variant := product.ResolveVariant(size, color)
	if variant == nil {
		return nil, shared.NewDomainError("VARIANT_UNAVAILABLE", "This size and color combination is unavailable")
	}

	if req.Price != nil {
		if err := variant.SetPrice(valueobject.NewMoneyUSD(*req.Price)); err != nil {
			return nil, err
		}
	}
	if req.Inventory != nil {
		if err := variant.SetInventory(*req.Inventory); err != nil {
			return nil, err
		}
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	resp := ToProductResponse(product)
	return &resp, nil
}

// RemoveVariant removes a variant from a product
func (s *ProductService) RemoveVariant(ctx context.Context, productID uuid.UUID, size, color string) error {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return err
	}

	if err := product.RemoveVariant(size, color); err != nil {
		return err
	}

	return s.productRepo.Save(ctx, product)
}

// SetImage attaches a stored image to a product
func (s *ProductService) SetImage(ctx context.Context, productID uuid.UUID, imageKey string) error {
	product, err := s.productRepo.FindByID(ctx, productID)
	if err != nil {
		return err
	}

	product.SetImageKey(imageKey)

	return s.productRepo.Save(ctx, product)
}

func (s *ProductService) applyStatus(product *catalog.Product, status catalog.ProductStatus) error {
	if product.Status == status {
		return nil
	}
	switch status {
	case catalog.ProductStatusActive:
		return product.Activate()
	case catalog.ProductStatusInactive:
		return product.Deactivate()
	case catalog.ProductStatusDiscontinued:
		return product.Discontinue()
	}
	return shared.NewDomainError("INVALID_STATUS", "Unknown product status")
}
