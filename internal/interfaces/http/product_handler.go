package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/retail-stock/internal/application/catalog"
	"github.com/tu-usuario/retail-stock/internal/application/dto"
)

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	createUC *catalog.CreateProductUseCase
	queryUC  *catalog.ProductUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(createUC *catalog.CreateProductUseCase, queryUC *catalog.ProductUseCase) *ProductHandler {
	return &ProductHandler{createUC: createUC, queryUC: queryUC}
}

// Create crea un producto con inventario inicial opcional (unidad atómica).
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	input := catalog.CreateProductInput{
		Name:        in.Name,
		SKU:         in.SKU,
		Description: in.Description,
		Price:       in.Price.String(),
		WarehouseID: in.WarehouseID,
	}
	if in.InitialQuantity != nil {
		qty := in.InitialQuantity.String()
		input.InitialQuantity = &qty
	}

	productID, err := h.createUC.Create(c.Context(), input)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.CreateProductResponse{
		Message:   "Producto creado",
		ProductID: productID,
	})
}

// GetByID obtiene un producto por ID.
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id inválido"})
	}
	out, err := h.queryUC.GetByID(c.Context(), int64(id))
	if err != nil {
		return writeDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	return c.JSON(out)
}

// List lista productos con paginación.
func (h *ProductHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	items, err := h.queryUC.List(c.Context(), limit, offset)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(fiber.Map{"items": items})
}
