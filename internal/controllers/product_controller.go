package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jomboydon/landing_backend/internal/assets"
	"github.com/jomboydon/landing_backend/internal/models"
	"github.com/jomboydon/landing_backend/internal/storage"
)

const productImageDir = "images/products"

type ProductController struct {
	Content
}

func (pc *ProductController) List(c *gin.Context) {
	products := []models.Product{}
	if err := pc.DB.Order("created_at desc").Order("id desc").Find(&products).Error; err != nil {
		respondError(c, err, "Failed to fetch products")
		return
	}
	c.JSON(http.StatusOK, products)
}

func (pc *ProductController) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err, "")
		return
	}
	var product models.Product
	if err := pc.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		respondError(c, err, "Failed to fetch product")
		return
	}
	c.JSON(http.StatusOK, product)
}

// bindProduct applies the submitted form onto p. Absent keys leave the
// current value untouched.
func bindProduct(c *gin.Context, p *models.Product) error {
	postLocalized(c, "name").set(&p.Name, &p.NameRu, &p.NameUz)
	postLocalized(c, "description").setOpt(&p.Description, &p.DescriptionRu, &p.DescriptionUz)
	postLocalized(c, "category").set(&p.Category, &p.CategoryRu, &p.CategoryUz)
	if v := postValue(c, "price"); v.Present {
		price, err := parsePrice(v)
		if err != nil {
			return err
		}
		p.Price = price
	}
	if p.Name == "" {
		return invalid("name is required")
	}
	return nil
}

func (pc *ProductController) Create(c *gin.Context) {
	if err := parseForm(c); err != nil {
		respondError(c, err, "")
		return
	}
	var product models.Product
	if !postValue(c, "price").Present {
		respondError(c, invalid("price must be a non-negative number"), "")
		return
	}
	if err := bindProduct(c, &product); err != nil {
		respondError(c, err, "")
		return
	}

	if fh, ok := formFile(c, "image"); ok {
		ref, err := storage.SaveUpload(c.Request.Context(), pc.Storage, productImageDir, "product", fh)
		if err != nil {
			respondError(c, err, "Failed to upload image")
			return
		}
		product.ImageURL = ref.Ptr()
	}

	if err := pc.DB.Create(&product).Error; err != nil {
		storage.DiscardReplaced(c.Request.Context(), pc.Storage, assets.FromPtr(product.ImageURL), "")
		respondError(c, err, "Failed to create product")
		return
	}
	pc.changed(c, "New product added", "product", product.ID, map[string]any{"name": product.Name})
	c.JSON(http.StatusOK, product)
}

func (pc *ProductController) Update(c *gin.Context) {
	if err := parseForm(c); err != nil {
		respondError(c, err, "")
		return
	}
	id, err := parseID(c)
	if err != nil {
		respondError(c, err, "")
		return
	}
	var product models.Product
	if err := pc.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		respondError(c, err, "Failed to update product")
		return
	}
	if err := bindProduct(c, &product); err != nil {
		respondError(c, err, "")
		return
	}

	old := assets.FromPtr(product.ImageURL)
	uploaded := false
	if fh, ok := formFile(c, "image"); ok {
		ref, err := storage.SaveUpload(c.Request.Context(), pc.Storage, productImageDir, "product", fh)
		if err != nil {
			respondError(c, err, "Failed to upload image")
			return
		}
		product.ImageURL = ref.Ptr()
		uploaded = true
	} else if err := currentRef(postValue(c, "currentImageUrl", "imageUrl"), "currentImageUrl", old); err != nil {
		respondError(c, err, "")
		return
	}

	if err := pc.DB.Save(&product).Error; err != nil {
		if uploaded {
			storage.DiscardReplaced(c.Request.Context(), pc.Storage, assets.FromPtr(product.ImageURL), "")
		}
		respondError(c, err, "Failed to update product")
		return
	}
	if uploaded {
		storage.DiscardReplaced(c.Request.Context(), pc.Storage, old, assets.FromPtr(product.ImageURL))
	}
	pc.changed(c, "Product updated", "product", product.ID, map[string]any{"name": product.Name})
	c.JSON(http.StatusOK, product)
}

func (pc *ProductController) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, err, "")
		return
	}
	var product models.Product
	if err := pc.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		respondError(c, err, "Failed to delete product")
		return
	}
	if err := pc.DB.Delete(&product).Error; err != nil {
		respondError(c, err, "Failed to delete product")
		return
	}
	storage.DiscardReplaced(c.Request.Context(), pc.Storage, assets.FromPtr(product.ImageURL), "")
	pc.changed(c, "Product deleted", "product", product.ID, map[string]any{"name": product.Name})
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
