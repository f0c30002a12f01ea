package services

import (
	"strings"

	"github.com/QUANG221222/website-selling-cosmetics-v2-api/apperr"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/models"
	"github.com/QUANG221222/website-selling-cosmetics-v2-api/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type CosmeticInput struct {
	Name          string  `json:"nameCosmetic" binding:"required"`
	Brand         string  `json:"brand" binding:"required"`
	Classify      string  `json:"classify"`
	Quantity      int     `json:"quantity" binding:"min=0"`
	Description   string  `json:"description"`
	OriginalPrice float64 `json:"originalPrice" binding:"required,min=0"`
	DiscountPrice float64 `json:"discountPrice" binding:"min=0"`
	Rating        float64 `json:"rating" binding:"min=0,max=5"`
	IsNew         *bool   `json:"isNew"`
	IsSaleOff     *bool   `json:"isSaleOff"`
	Image         string  `json:"image"`
	PublicID      string  `json:"publicId"`
}

// CosmeticFilter mirrors the catalog listing query params.
type CosmeticFilter struct {
	Search    string
	Brand     string
	Classify  string
	MinPrice  *float64
	MaxPrice  *float64
	SortBy    string
	SortOrder string
}

// CreateCosmetic derives the slug from the name; the slug is unique among
// non-deleted cosmetics.
func CreateCosmetic(db *gorm.DB, in CosmeticInput) (*models.Cosmetic, error) {
	slug := utils.Slugify(in.Name)
	if slug == "" {
		return nil, apperr.BadRequest("cosmetic name does not produce a valid slug")
	}

	var existing models.Cosmetic
	err := db.Where("slug = ?", slug).First(&existing).Error
	if err == nil {
		return nil, apperr.Conflict("cosmetic %q already exists", in.Name)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.Wrap(err, "check slug")
	}

	cosmetic := models.Cosmetic{
		Name:          in.Name,
		Slug:          slug,
		Brand:         in.Brand,
		Classify:      in.Classify,
		Quantity:      in.Quantity,
		Description:   in.Description,
		OriginalPrice: in.OriginalPrice,
		DiscountPrice: in.DiscountPrice,
		Rating:        in.Rating,
		IsNew:         true,
		Image:         in.Image,
		PublicID:      in.PublicID,
	}
	if in.IsNew != nil {
		cosmetic.IsNew = *in.IsNew
	}
	if in.IsSaleOff != nil {
		cosmetic.IsSaleOff = *in.IsSaleOff
	}

	if err := db.Create(&cosmetic).Error; err != nil {
		return nil, errors.Wrap(err, "create cosmetic")
	}
	return &cosmetic, nil
}

func GetCosmeticByID(db *gorm.DB, id uint) (*models.Cosmetic, error) {
	var cosmetic models.Cosmetic
	if err := db.First(&cosmetic, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("cosmetic with id %d not found", id)
		}
		return nil, errors.Wrap(err, "fetch cosmetic")
	}
	return &cosmetic, nil
}

func GetCosmeticBySlug(db *gorm.DB, slug string) (*models.Cosmetic, error) {
	var cosmetic models.Cosmetic
	if err := db.Where("slug = ?", slug).First(&cosmetic).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("cosmetic %q not found", slug)
		}
		return nil, errors.Wrap(err, "fetch cosmetic")
	}
	return &cosmetic, nil
}

func applyCosmeticFilter(query *gorm.DB, f CosmeticFilter) *gorm.DB {
	if f.Search != "" {
		like := "%" + f.Search + "%"
		query = query.Where("name LIKE ? OR description LIKE ? OR brand LIKE ?", like, like, like)
	}
	if f.Brand != "" {
		query = query.Where("brand = ?", f.Brand)
	}
	if f.Classify != "" {
		query = query.Where("classify = ?", f.Classify)
	}
	if f.MinPrice != nil {
		query = query.Where("discount_price >= ?", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		query = query.Where("discount_price <= ?", *f.MaxPrice)
	}
	return query
}

func cosmeticOrderClause(f CosmeticFilter) string {
	sortBy := f.SortBy
	switch sortBy {
	case "name", "discount_price", "rating", "created_at":
	default:
		sortBy = "created_at"
	}
	order := strings.ToLower(f.SortOrder)
	if order != "asc" && order != "desc" {
		order = "desc"
	}
	return sortBy + " " + order
}

func GetAllCosmetics(db *gorm.DB, f CosmeticFilter) ([]models.Cosmetic, error) {
	var cosmetics []models.Cosmetic
	query := applyCosmeticFilter(db.Model(&models.Cosmetic{}), f)
	if err := query.Order(cosmeticOrderClause(f)).Find(&cosmetics).Error; err != nil {
		return nil, errors.Wrap(err, "list cosmetics")
	}
	return cosmetics, nil
}

func GetCosmeticsPaginated(db *gorm.DB, f CosmeticFilter, page, limit int) ([]models.Cosmetic, utils.Pagination, error) {
	var total int64
	if err := applyCosmeticFilter(db.Model(&models.Cosmetic{}), f).Count(&total).Error; err != nil {
		return nil, utils.Pagination{}, errors.Wrap(err, "count cosmetics")
	}

	var cosmetics []models.Cosmetic
	query := applyCosmeticFilter(db.Model(&models.Cosmetic{}), f).
		Order(cosmeticOrderClause(f)).
		Offset(utils.Offset(page, limit)).
		Limit(limit)
	if err := query.Find(&cosmetics).Error; err != nil {
		return nil, utils.Pagination{}, errors.Wrap(err, "list cosmetics page")
	}
	return cosmetics, utils.CalculatePagination(total, page, limit), nil
}

type UpdateCosmeticInput struct {
	Name          *string  `json:"nameCosmetic"`
	Brand         *string  `json:"brand"`
	Classify      *string  `json:"classify"`
	Quantity      *int     `json:"quantity"`
	Description   *string  `json:"description"`
	OriginalPrice *float64 `json:"originalPrice"`
	DiscountPrice *float64 `json:"discountPrice"`
	Rating        *float64 `json:"rating"`
	IsNew         *bool    `json:"isNew"`
	IsSaleOff     *bool    `json:"isSaleOff"`
	Image         *string  `json:"image"`
	PublicID      *string  `json:"publicId"`
}

// UpdateCosmetic applies a partial update; renaming re-derives the slug
// and re-checks uniqueness.
func UpdateCosmetic(db *gorm.DB, id uint, in UpdateCosmeticInput) (*models.Cosmetic, error) {
	var cosmetic models.Cosmetic
	if err := db.First(&cosmetic, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("cosmetic with id %d not found", id)
		}
		return nil, errors.Wrap(err, "fetch cosmetic")
	}

	updates := make(map[string]interface{})
	if in.Name != nil && *in.Name != "" && *in.Name != cosmetic.Name {
		slug := utils.Slugify(*in.Name)
		var other models.Cosmetic
		err := db.Where("slug = ? AND id <> ?", slug, id).First(&other).Error
		if err == nil {
			return nil, apperr.Conflict("cosmetic %q already exists", *in.Name)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(err, "check slug")
		}
		updates["name"] = *in.Name
		updates["slug"] = slug
	}
	if in.Brand != nil {
		updates["brand"] = *in.Brand
	}
	if in.Classify != nil {
		updates["classify"] = *in.Classify
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return nil, apperr.BadRequest("quantity cannot be negative")
		}
		updates["quantity"] = *in.Quantity
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.OriginalPrice != nil {
		updates["original_price"] = *in.OriginalPrice
	}
	if in.DiscountPrice != nil {
		updates["discount_price"] = *in.DiscountPrice
	}
	if in.Rating != nil {
		updates["rating"] = *in.Rating
	}
	if in.IsNew != nil {
		updates["is_new"] = *in.IsNew
	}
	if in.IsSaleOff != nil {
		updates["is_sale_off"] = *in.IsSaleOff
	}
	if in.Image != nil {
		updates["image"] = *in.Image
	}
	if in.PublicID != nil {
		updates["public_id"] = *in.PublicID
	}

	if len(updates) > 0 {
		if err := db.Model(&cosmetic).Updates(updates).Error; err != nil {
			return nil, errors.Wrap(err, "update cosmetic")
		}
	}
	return &cosmetic, nil
}

// DeleteCosmetic soft-deletes; historical order snapshots keep referencing
// the row, future cart additions will no longer find it.
func DeleteCosmetic(db *gorm.DB, id uint) error {
	var cosmetic models.Cosmetic
	if err := db.First(&cosmetic, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("cosmetic with id %d not found", id)
		}
		return errors.Wrap(err, "fetch cosmetic")
	}
	if err := db.Delete(&cosmetic).Error; err != nil {
		return errors.Wrap(err, "delete cosmetic")
	}
	return nil
}
