package dto

import "github.com/shopspring/decimal"

// ComponentStatusDTO estado de un componente de la receta frente al stock.
type ComponentStatusDTO struct {
	MaterialID        string          `json:"material_id"`
	MaterialName      string          `json:"material_name"`
	Unit              string          `json:"unit"`
	QuantityRequired  decimal.Decimal `json:"quantity_required"`
	WastePercentage   decimal.Decimal `json:"waste_percentage"`
	EffectiveQuantity decimal.Decimal `json:"effective_quantity"`
	CurrentStock      decimal.Decimal `json:"current_stock"`
	AvailableUnits    int64           `json:"available_units"`
	Constraining      bool            `json:"constraining"`
}

// AvailabilityResponse respuesta de GET /api/production/availability/:product_id.
type AvailabilityResponse struct {
	ProductID          string               `json:"product_id"`
	AvailableQuantity  int64                `json:"available_quantity"`
	BottleneckMaterial *MaterialRefDTO      `json:"bottleneck_material,omitempty"` // nil = sin cuello de botella
	Components         []ComponentStatusDTO `json:"components"`
}

// MaterialRefDTO referencia mínima a un material.
type MaterialRefDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BulkAvailabilityRequest body para POST /api/production/bulk-availability.
type BulkAvailabilityRequest struct {
	ProductIDs []string `json:"product_ids"`
}

// BulkAvailabilityEntry resultado por producto del cálculo masivo. Un fallo en
// un producto no aborta el lote: se reporta en Error y el resto continúa.
type BulkAvailabilityEntry struct {
	ProductID string                `json:"product_id"`
	Result    *AvailabilityResponse `json:"result,omitempty"`
	Error     string                `json:"error,omitempty"`
}

// BulkAvailabilityResponse respuesta del cálculo masivo, en el orden del request.
type BulkAvailabilityResponse struct {
	RequestID string                  `json:"request_id"`
	Results   []BulkAvailabilityEntry `json:"results"`
}

// ProductionCapacityResponse respuesta de GET /api/production/capacity/:product_id.
// StockStatus: in_stock | low_stock | out_of_stock.
type ProductionCapacityResponse struct {
	ProductID          string               `json:"product_id"`
	AvailableQuantity  int64                `json:"available_quantity"`
	CanProduce         bool                 `json:"can_produce"`
	StockStatus        string               `json:"stock_status"`
	BottleneckMaterial *MaterialRefDTO      `json:"bottleneck_material,omitempty"`
	ComponentsStatus   []ComponentStatusDTO `json:"components_status"`
}

// BatchRequirementsRequest body para POST /api/production/batch-requirements.
type BatchRequirementsRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// MaterialRequirementDTO necesidad de un material para el lote solicitado.
type MaterialRequirementDTO struct {
	MaterialID       string          `json:"material_id"`
	MaterialName     string          `json:"material_name"`
	Unit             string          `json:"unit"`
	TotalRequired    decimal.Decimal `json:"total_required"` // sin redondeo
	CurrentStock     decimal.Decimal `json:"current_stock"`
	IsSufficient     bool            `json:"is_sufficient"`
	ShortageQuantity decimal.Decimal `json:"shortage_quantity"`
	EstimatedCost    decimal.Decimal `json:"estimated_cost"`
}

// BatchRequirementsResponse respuesta del plan de lote.
type BatchRequirementsResponse struct {
	ProductID            string                   `json:"product_id"`
	Quantity             int64                    `json:"quantity"`
	CanProduce           bool                     `json:"can_produce"`
	MaterialRequirements []MaterialRequirementDTO `json:"material_requirements"`
	TotalEstimatedCost   decimal.Decimal          `json:"total_estimated_cost"`
}

// OptimalBatchSizeRequest body para POST /api/production/optimal-batch-size.
type OptimalBatchSizeRequest struct {
	ProductID   string `json:"product_id"`
	MinQuantity *int64 `json:"min_quantity,omitempty"`
	MaxQuantity *int64 `json:"max_quantity,omitempty"`
}

// OptimalBatchSizeResponse respuesta con el máximo producible acotado y lotes sugeridos.
type OptimalBatchSizeResponse struct {
	ProductID          string          `json:"product_id"`
	MaximumProducible  int64           `json:"maximum_producible"`
	BottleneckMaterial *MaterialRefDTO `json:"bottleneck_material,omitempty"`
	SuggestedBatches   []int64         `json:"suggested_batches"`
}

// MultiProductPlanRequest body para POST /api/production/multi-product-plan.
type MultiProductPlanRequest struct {
	Products []ProductQuantityDTO `json:"products"`
}

// ProductQuantityDTO una solicitud de producción dentro del plan.
type ProductQuantityDTO struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

// ProductionPlanEntryDTO desglose por producto del plan multi-producto.
// Siempre refleja la cantidad solicitada completa, incluso si el plan global
// no es factible (el motor no raciona).
type ProductionPlanEntryDTO struct {
	ProductID            string                   `json:"product_id"`
	RecipeID             string                   `json:"recipe_id,omitempty"`
	Quantity             int64                    `json:"quantity"`
	CanProduceAlone      bool                     `json:"can_produce_alone"`
	MaterialRequirements []MaterialRequirementDTO `json:"material_requirements"`
	EstimatedCost        decimal.Decimal          `json:"estimated_cost"`
}

// MaterialShortageDTO déficit agregado de un material frente al plan.
type MaterialShortageDTO struct {
	MaterialID    string          `json:"material_id"`
	MaterialName  string          `json:"material_name"`
	TotalRequired decimal.Decimal `json:"total_required"`
	CurrentStock  decimal.Decimal `json:"current_stock"`
	Shortage      decimal.Decimal `json:"shortage"`
}

// MultiProductPlanResponse respuesta del plan multi-producto.
type MultiProductPlanResponse struct {
	ProductionPlan                 []ProductionPlanEntryDTO   `json:"production_plan"`
	AggregatedMaterialRequirements map[string]decimal.Decimal `json:"aggregated_material_requirements"`
	IsFeasible                     bool                       `json:"is_feasible"`
	TotalProductionCost            decimal.Decimal            `json:"total_production_cost"`
	Shortages                      []MaterialShortageDTO      `json:"shortages,omitempty"`
}
