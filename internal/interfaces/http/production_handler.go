package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/produccion-pro/internal/application/dto"
	"github.com/tu-usuario/produccion-pro/internal/application/production"
	"github.com/tu-usuario/produccion-pro/internal/domain"
)

// maxBulkProducts acota el tamaño del cálculo masivo por request.
const maxBulkProducts = 100

// ProductionHandler maneja las consultas de capacidad de producción (protegido).
type ProductionHandler struct {
	availability *production.AvailabilityUseCase
	batch        *production.BatchUseCase
	multi        *production.MultiProductUseCase
}

// NewProductionHandler construye el handler.
func NewProductionHandler(availability *production.AvailabilityUseCase, batch *production.BatchUseCase, multi *production.MultiProductUseCase) *ProductionHandler {
	return &ProductionHandler{availability: availability, batch: batch, multi: multi}
}

// GetAvailability godoc
// @Summary      Disponibilidad de producción de un producto
// @Description  Calcula cuántas unidades pueden producirse con el stock actual
//
//	de materiales, con el desglose por componente y el cuello de botella.
//
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        product_id  path  string  true  "UUID del producto"
// @Success      200  {object}  dto.AvailabilityResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/production/availability/{product_id} [get]
func (h *ProductionHandler) GetAvailability(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	productID := c.Params("product_id")
	out, err := h.availability.GetAvailability(c.Context(), tenantID, productID)
	if err != nil {
		return mapProductionError(c, err)
	}
	return c.JSON(out)
}

// GetBulkAvailability godoc
// @Summary      Disponibilidad masiva de producción
// @Description  Ejecuta el cálculo de disponibilidad para varios productos en
//
//	paralelo. Cada entrada se resuelve de forma independiente: un producto con
//	error no aborta el lote.
//
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BulkAvailabilityRequest  true  "product_ids"
// @Success      200  {object}  dto.BulkAvailabilityResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/production/bulk-availability [post]
func (h *ProductionHandler) GetBulkAvailability(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.BulkAvailabilityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if len(in.ProductIDs) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_ids no puede estar vacío"})
	}
	if len(in.ProductIDs) > maxBulkProducts {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "máximo 100 productos por request"})
	}
	out, err := h.availability.GetBulkAvailability(c.Context(), tenantID, in.ProductIDs)
	if err != nil {
		return mapProductionError(c, err)
	}
	return c.JSON(out)
}

// GetProductionCapacity godoc
// @Summary      Capacidad de producción con estado de stock
// @Tags         production
// @Security     Bearer
// @Produce      json
// @Param        product_id  path  string  true  "UUID del producto"
// @Success      200  {object}  dto.ProductionCapacityResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/production/capacity/{product_id} [get]
func (h *ProductionHandler) GetProductionCapacity(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	productID := c.Params("product_id")
	out, err := h.availability.GetProductionCapacity(c.Context(), tenantID, productID)
	if err != nil {
		return mapProductionError(c, err)
	}
	return c.JSON(out)
}

// GetBatchRequirements godoc
// @Summary      Requerimientos de materiales para un lote
// @Description  Calcula la cantidad total de cada material para producir la
//
//	cantidad pedida, con faltantes y costo estimado. Las cantidades
//	fraccionarias no se redondean.
//
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BatchRequirementsRequest  true  "product_id, quantity"
// @Success      200  {object}  dto.BatchRequirementsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/production/batch-requirements [post]
func (h *ProductionHandler) GetBatchRequirements(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.BatchRequirementsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.batch.GetBatchRequirements(c.Context(), tenantID, in)
	if err != nil {
		return mapProductionError(c, err)
	}
	return c.JSON(out)
}

// GetOptimalBatchSize godoc
// @Summary      Tamaño óptimo de lote
// @Description  Máximo producible con el stock actual, acotado por min/max
//
//	opcionales, con tamaños de lote sugeridos.
//
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OptimalBatchSizeRequest  true  "product_id, min_quantity?, max_quantity?"
// @Success      200  {object}  dto.OptimalBatchSizeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/production/optimal-batch-size [post]
func (h *ProductionHandler) GetOptimalBatchSize(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.OptimalBatchSizeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.batch.GetOptimalBatchSize(c.Context(), tenantID, in)
	if err != nil {
		return mapProductionError(c, err)
	}
	return c.JSON(out)
}

// PlanMultiProduct godoc
// @Summary      Plan de producción multi-producto
// @Description  Agrega los requerimientos de materiales de varios productos
//
//	contra el mismo snapshot de stock y determina la factibilidad conjunta.
//	Un plan infactible devuelve los faltantes; no hay racionamiento parcial.
//
// @Tags         production
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.MultiProductPlanRequest  true  "products: [{product_id, quantity}]"
// @Success      200  {object}  dto.MultiProductPlanResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/production/multi-product-plan [post]
func (h *ProductionHandler) PlanMultiProduct(c *fiber.Ctx) error {
	tenantID := GetTenantID(c)
	if tenantID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.MultiProductPlanRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.multi.PlanProduction(c.Context(), tenantID, in)
	if err != nil {
		return mapProductionError(c, err)
	}
	return c.JSON(out)
}

// mapProductionError traduce los sentinels de dominio a códigos HTTP.
func mapProductionError(c *fiber.Ctx, err error) error {
	if err == domain.ErrInvalidInput {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	}
	if err == domain.ErrQuantityInvalid {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "cantidad inválida"})
	}
	if err == domain.ErrNotFound {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
	}
	if err == domain.ErrNotBOMManaged {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "NOT_BOM_MANAGED", Message: "el producto no se gestiona por lista de materiales"})
	}
	if err == domain.ErrForbidden {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
