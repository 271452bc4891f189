// Package bom implementa el motor de restricciones de producción por lista de
// materiales (BOM): disponibilidad, planeación de lotes, factibilidad
// multi-producto, pronóstico de consumo y alertas de stock.
//
// Todas las funciones del paquete son puras: operan sobre snapshots inmutables
// de Material/Recipe/InventoryTransaction ya resueltos por la capa de
// repositorios y devuelven resultados con ciclo de vida de request. El motor
// nunca muta stock; sus salidas son consultivas, no reservas.
package bom

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// EffectiveQuantity convierte el requerimiento nominal de un componente en el
// requerimiento ajustado por merma:
//
//	efectivo = cantidad_requerida × (1 + merma% / 100)
func EffectiveQuantity(quantityRequired, wastePercentage decimal.Decimal) decimal.Decimal {
	factor := decimal.NewFromInt(1).Add(wastePercentage.Div(hundred))
	return quantityRequired.Mul(factor)
}
