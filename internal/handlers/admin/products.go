package admin

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"panel_catalogo/internal/cache"
	"panel_catalogo/internal/models"
	"panel_catalogo/internal/repository"
	"panel_catalogo/internal/services"
	"panel_catalogo/internal/utils"
)

type ProductHandler struct {
	repo     repository.ProductRepository
	uploader services.Uploader
	cache    *cache.ProductListCache
	indexer  services.Indexer
}

func NewProductHandler(repo repository.ProductRepository, uploader services.Uploader,
	listCache *cache.ProductListCache, indexer services.Indexer) *ProductHandler {
	return &ProductHandler{
		repo:     repo,
		uploader: uploader,
		cache:    listCache,
		indexer:  indexer,
	}
}

// productForm son los campos ya validados de un envío de formulario.
type productForm struct {
	Name        string
	Description string
	Price       float64
	Categories  []string
	Tags        []string
	IsActive    *bool
}

// parseForm valida el formulario multipart. Devuelve false si falta algún
// campo obligatorio, el precio no es numérico o no hay categorías.
func parseForm(c *gin.Context) (productForm, bool) {
	var form productForm

	form.Name = strings.TrimSpace(c.PostForm("name"))
	form.Description = strings.TrimSpace(c.PostForm("description"))

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil || price <= 0 {
		return form, false
	}
	form.Price = price

	for _, raw := range c.PostFormArray("categories") {
		if slug := utils.Slugify(raw); slug != "" {
			form.Categories = append(form.Categories, slug)
		}
	}

	if form.Name == "" || form.Description == "" || len(form.Categories) == 0 {
		return form, false
	}

	// tags ausente queda nil: una actualización sin el campo no toca
	// las etiquetas existentes
	if raw, ok := c.GetPostForm("tags"); ok {
		form.Tags = []string{}
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				form.Tags = append(form.Tags, t)
			}
		}
	}

	if raw := c.PostForm("isActive"); raw != "" {
		active := raw == "true" || raw == "on" || raw == "1"
		form.IsActive = &active
	}

	return form, true
}

// uploadIfPresent sube la imagen del formulario si viene un archivo no vacío.
// Devuelve nil (sin error) cuando no hay archivo.
func (h *ProductHandler) uploadIfPresent(c *gin.Context) ([]string, error) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		// sin parte "image" (o envío no multipart) no hay nada que subir;
		// cualquier otro error es una parte malformada y debe aflorar
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}
	if header.Size == 0 {
		file.Close()
		return nil, nil
	}
	defer file.Close()

	url, err := h.upload(c, file, header)
	if err != nil {
		return nil, err
	}
	return []string{url}, nil
}

func (h *ProductHandler) upload(c *gin.Context, file multipart.File, header *multipart.FileHeader) (string, error) {
	return h.uploader.Upload(c.Request.Context(), file, header.Size,
		header.Header.Get("Content-Type"), header.Filename)
}

// productView resuelve las etiquetas de categoría para la respuesta;
// nunca se persisten.
type productView struct {
	models.Product
	CategoryLabels []string `json:"category_labels"`
}

func toViews(products []models.Product) []productView {
	views := make([]productView, 0, len(products))
	for _, p := range products {
		slugs := p.CategorySlugs()
		labels := make([]string, 0, len(slugs))
		for _, s := range slugs {
			labels = append(labels, models.CategoryLabel(s))
		}
		views = append(views, productView{Product: p, CategoryLabels: labels})
	}
	return views
}

func (h *ProductHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	if products, ok := h.cache.Get(ctx); ok {
		c.JSON(http.StatusOK, toViews(products))
		return
	}

	products, err := h.repo.ListByCreatedDesc(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener los productos"})
		return
	}

	h.cache.Set(ctx, products)
	c.JSON(http.StatusOK, toViews(products))
}

func (h *ProductHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	form, ok := parseForm(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Todos los campos son obligatorios"})
		return
	}

	slug := utils.Slugify(form.Name)

	// La subida va antes del chequeo de slug, como en el flujo original:
	// un duplicado puede dejar una imagen huérfana en el bucket.
	images, err := h.uploadIfPresent(c)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CreateProduct").Msg("fallo subida de imagen")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error al subir la imagen"})
		return
	}
	if images == nil {
		images = []string{}
	}

	// Chequeo previo solo para el mensaje amigable; el índice único decide.
	existing, err := h.repo.FindBySlug(ctx, slug)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error al crear el producto en la base de datos"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Ya existe un producto con este nombre/slug"})
		return
	}

	tags := form.Tags
	if tags == nil {
		tags = []string{}
	}

	product := &models.Product{
		Name:        form.Name,
		Slug:        slug,
		Description: form.Description,
		Price:       form.Price,
		Images:      images,
		Categories:  form.Categories,
		Tags:        tags,
		IsActive:    true,
	}

	if err := h.repo.Insert(ctx, product); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlug) {
			c.JSON(http.StatusConflict, gin.H{"success": false, "message": "Ya existe un producto con este nombre/slug"})
			return
		}
		log.Ctx(ctx).Error().Err(err).Str("component", "CreateProduct").Msg("fallo persistencia")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error al crear el producto en la base de datos"})
		return
	}

	h.cache.Invalidate(ctx)
	if h.indexer != nil {
		go h.indexer.IndexProduct(*product)
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ProductHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	form, ok := parseForm(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Todos los campos son obligatorios"})
		return
	}

	images, err := h.uploadIfPresent(c)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProduct").Msg("fallo subida de imagen")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error al subir la imagen"})
		return
	}

	update := repository.ProductUpdate{
		Name:        &form.Name,
		Description: &form.Description,
		Price:       &form.Price,
		Categories:  form.Categories,
		Tags:        form.Tags,
		IsActive:    form.IsActive,
	}
	// sin archivo nuevo, la lista de imágenes existente no se toca
	if images != nil {
		update.Images = images
	}

	if err := h.repo.UpdateByID(ctx, id, update); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProduct").Msg("fallo persistencia")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error al actualizar el producto"})
		return
	}

	h.cache.Invalidate(ctx)
	if h.indexer != nil {
		if updated, err := h.repo.FindByID(ctx, id); err == nil && updated != nil {
			go h.indexer.IndexProduct(*updated)
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *ProductHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	if err := h.repo.DeleteByID(ctx, id); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("fallo borrado")
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error al eliminar el producto"})
		return
	}

	h.cache.Invalidate(ctx)
	if h.indexer != nil {
		go h.indexer.RemoveProduct(id)
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
