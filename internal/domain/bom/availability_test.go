package bom_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tu-usuario/produccion-pro/internal/domain/bom"
	"github.com/tu-usuario/produccion-pro/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de construcción de snapshots
// ──────────────────────────────────────────────────────────────────────────────

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic("decimal de test inválido: " + s)
	}
	return d
}

func material(id, name, stock, reorder, cost string) *entity.Material {
	return &entity.Material{
		ID:            id,
		TenantID:      "tenant-1",
		Name:          name,
		Unit:          "kg",
		StockQuantity: dec(stock),
		ReorderLevel:  dec(reorder),
		UnitCost:      dec(cost),
	}
}

func component(materialID, qty, waste string) entity.RecipeComponent {
	return entity.RecipeComponent{
		RecipeID:         "recipe-1",
		MaterialID:       materialID,
		QuantityRequired: dec(qty),
		WastePercentage:  dec(waste),
	}
}

func recipe(components ...entity.RecipeComponent) *entity.Recipe {
	return &entity.Recipe{
		ID:            "recipe-1",
		TenantID:      "tenant-1",
		ProductID:     "product-1",
		Name:          "Pan campesino",
		YieldQuantity: dec("1"),
		YieldUnit:     "unidad",
		IsActive:      true,
		Components:    components,
	}
}

func materialMap(ms ...*entity.Material) map[string]*entity.Material {
	out := make(map[string]*entity.Material, len(ms))
	for _, m := range ms {
		out[m.ID] = m
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// EffectiveQuantity — fórmula de merma
// ──────────────────────────────────────────────────────────────────────────────

// Vector de referencia: 2.0 requerido con 25% de merma → 2.5 efectivo.
func TestEffectiveQuantity_VectorMerma25(t *testing.T) {
	got := bom.EffectiveQuantity(dec("2.0"), dec("25"))
	assert.True(t, got.Equal(dec("2.5")),
		"2.0 × (1 + 25/100) debe ser 2.5, fue %s", got)
}

func TestEffectiveQuantity_SinMerma(t *testing.T) {
	got := bom.EffectiveQuantity(dec("3.75"), decimal.Zero)
	assert.True(t, got.Equal(dec("3.75")), "sin merma la cantidad efectiva es la nominal")
}

func TestEffectiveQuantity_MermaFraccionaria(t *testing.T) {
	// 1.5 × (1 + 10.5/100) = 1.6575 exacto en decimal, sin error de float.
	got := bom.EffectiveQuantity(dec("1.5"), dec("10.5"))
	assert.True(t, got.Equal(dec("1.6575")), "la aritmética decimal debe ser exacta, fue %s", got)
}

// ──────────────────────────────────────────────────────────────────────────────
// ComputeAvailability — mínimo entre componentes y cuello de botella
// ──────────────────────────────────────────────────────────────────────────────

// Vector de referencia: harina 100 en stock con efectivo 2.5 → 40 unidades;
// azúcar 500 en stock con efectivo 1.0 → 500 unidades. El mínimo gana y la
// harina es el cuello de botella.
func TestComputeAvailability_MinimoEntreComponentes(t *testing.T) {
	r := recipe(
		component("mat-harina", "2.0", "25"),
		component("mat-azucar", "1.0", "0"),
	)
	ms := materialMap(
		material("mat-harina", "Harina", "100", "20", "1.50"),
		material("mat-azucar", "Azúcar", "500", "50", "0.80"),
	)

	got := bom.ComputeAvailability(r, ms)

	assert.Equal(t, int64(40), got.AvailableQuantity, "floor(100/2.5) = 40 limita la producción")
	assert.Equal(t, "mat-harina", got.BottleneckMaterialID)
	assert.Equal(t, "Harina", got.BottleneckMaterialName)
	require.Len(t, got.Components, 2)
	assert.Equal(t, int64(40), got.Components[0].AvailableUnits)
	assert.Equal(t, int64(500), got.Components[1].AvailableUnits)
}

// División entera hacia abajo: 7 / 2 = 3, nunca 3.5 redondeado.
func TestComputeAvailability_FloorNoRedondea(t *testing.T) {
	r := recipe(component("mat-a", "2", "0"))
	ms := materialMap(material("mat-a", "A", "7", "0", "1"))

	got := bom.ComputeAvailability(r, ms)
	assert.Equal(t, int64(3), got.AvailableQuantity, "las unidades producibles se truncan, no se redondean")
}

func TestComputeAvailability_RecetaNilCeroSinError(t *testing.T) {
	got := bom.ComputeAvailability(nil, materialMap())
	assert.Equal(t, int64(0), got.AvailableQuantity)
	assert.False(t, got.HasBottleneck(), "sin receta no hay cuello de botella")
}

func TestComputeAvailability_RecetaInactivaCero(t *testing.T) {
	r := recipe(component("mat-a", "1", "0"))
	r.IsActive = false
	got := bom.ComputeAvailability(r, materialMap(material("mat-a", "A", "100", "0", "1")))
	assert.Equal(t, int64(0), got.AvailableQuantity)
	assert.False(t, got.HasBottleneck())
}

func TestComputeAvailability_RecetaSinComponentesCero(t *testing.T) {
	got := bom.ComputeAvailability(recipe(), materialMap())
	assert.Equal(t, int64(0), got.AvailableQuantity)
	assert.False(t, got.HasBottleneck())
}

// Un material ausente del snapshot cuenta como stock cero y se vuelve el
// cuello de botella inmediato.
func TestComputeAvailability_MaterialAusenteStockCero(t *testing.T) {
	r := recipe(
		component("mat-fantasma", "1", "0"),
		component("mat-azucar", "1", "0"),
	)
	ms := materialMap(material("mat-azucar", "Azúcar", "500", "50", "0.80"))

	got := bom.ComputeAvailability(r, ms)
	assert.Equal(t, int64(0), got.AvailableQuantity)
	assert.Equal(t, "mat-fantasma", got.BottleneckMaterialID)
}

// Componentes con cantidad efectiva cero no restringen ni dividen por cero.
func TestComputeAvailability_ComponenteEfectivoCeroNoRestringe(t *testing.T) {
	r := recipe(
		component("mat-decorativo", "0", "0"),
		component("mat-harina", "2.0", "25"),
	)
	ms := materialMap(
		material("mat-decorativo", "Decorativo", "0", "0", "0"),
		material("mat-harina", "Harina", "100", "20", "1.50"),
	)

	got := bom.ComputeAvailability(r, ms)
	assert.Equal(t, int64(40), got.AvailableQuantity)
	assert.Equal(t, "mat-harina", got.BottleneckMaterialID)

	require.Len(t, got.Components, 2)
	assert.False(t, got.Components[0].Constraining, "efectivo 0 no debe restringir")
	assert.True(t, got.Components[1].Constraining)
}

// Empate en el mínimo: gana el material_id más bajo para ser determinista.
func TestComputeAvailability_EmpateGanaMaterialIDMenor(t *testing.T) {
	r := recipe(
		component("mat-b", "1", "0"),
		component("mat-a", "1", "0"),
	)
	ms := materialMap(
		material("mat-a", "A", "10", "0", "1"),
		material("mat-b", "B", "10", "0", "1"),
	)

	got := bom.ComputeAvailability(r, ms)
	assert.Equal(t, int64(10), got.AvailableQuantity)
	assert.Equal(t, "mat-a", got.BottleneckMaterialID, "en empate gana el id más bajo")
}

// El cálculo es puro: dos corridas sobre el mismo snapshot dan lo mismo y no
// mutan el stock del snapshot.
func TestComputeAvailability_IdempotenteYSinMutacion(t *testing.T) {
	r := recipe(component("mat-harina", "2.0", "25"))
	ms := materialMap(material("mat-harina", "Harina", "100", "20", "1.50"))

	first := bom.ComputeAvailability(r, ms)
	second := bom.ComputeAvailability(r, ms)

	assert.Equal(t, first, second, "el mismo snapshot siempre produce el mismo resultado")
	assert.True(t, ms["mat-harina"].StockQuantity.Equal(dec("100")),
		"el motor nunca muta el stock del snapshot")
}
