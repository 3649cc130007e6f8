package dashboard

import (
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/Despensa-api/internal/domain/entity"
)

// dateLayout formato de los límites de fecha en los criterios.
const dateLayout = "2006-01-02"

// MatchesProduct evalúa si un producto pasa todas las dimensiones de
// filtrado activas. Función pura: sin estado, sin errores. Un campo
// ausente (ej. sin fecha de vencimiento) no pasa los filtros de rango que
// lo apuntan, y pasa cuando el límite no está fijado.
func MatchesProduct(p *entity.Product, c Criteria) bool {
	if p == nil {
		return false
	}
	if c.ProductName != "" && !containsFolded(p.Name, c.ProductName) {
		return false
	}
	if !decimalInRange(p.Price, c.MinPrice, c.MaxPrice) {
		return false
	}
	if !intInRange(p.Stock, c.MinStock, c.MaxStock) {
		return false
	}
	if !dateInRange(p.EntryDate, c.EntryDateFrom, c.EntryDateTo) {
		return false
	}
	if !dateInRange(p.ExpirationDate, c.ExpirationFrom, c.ExpirationTo) {
		return false
	}
	if c.QRBarcode != "" &&
		!containsFolded(p.QRCode, c.QRBarcode) && !containsFolded(p.Barcode, c.QRBarcode) {
		return false
	}
	if c.ProductType != FilterAll && c.ProductType != "" && p.Type != c.ProductType {
		return false
	}
	if c.SupplierID != FilterAll && c.SupplierID != "" && p.SupplierID != c.SupplierID {
		return false
	}
	return true
}

// MatchesSale evalúa si una venta pasa los filtros de venta y si su
// producto resuelto pasa los filtros de producto. Un huérfano (product ==
// nil) nunca coincide.
func MatchesSale(s *entity.Sale, p *entity.Product, c Criteria) bool {
	if s == nil || p == nil {
		return false
	}
	if !MatchesProduct(p, c) {
		return false
	}
	if !intInRange(s.Quantity, c.SaleQuantityMin, c.SaleQuantityMax) {
		return false
	}
	if !dateInRange(s.Date, c.SaleDateFrom, c.SaleDateTo) {
		return false
	}
	if c.SaleType != FilterAll && c.SaleType != "" && string(s.Type) != c.SaleType {
		return false
	}
	return true
}

// ── Coerción de límites ───────────────────────────────────────────────────────
// Un límite vacío o malformado es "sin límite" por ese lado; nunca error.

func parseDecimalBound(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

func parseIntBound(s string) (int, bool) {
	d, ok := parseDecimalBound(s)
	if !ok || !d.IsInteger() {
		return 0, false
	}
	return int(d.IntPart()), true
}

func parseDateBound(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func decimalInRange(v decimal.Decimal, minStr, maxStr string) bool {
	if min, ok := parseDecimalBound(minStr); ok && v.LessThan(min) {
		return false
	}
	if max, ok := parseDecimalBound(maxStr); ok && v.GreaterThan(max) {
		return false
	}
	return true
}

func intInRange(v int, minStr, maxStr string) bool {
	if min, ok := parseIntBound(minStr); ok && v < min {
		return false
	}
	if max, ok := parseIntBound(maxStr); ok && v > max {
		return false
	}
	return true
}

// dateInRange compara solo la fecha (día local), inclusivo en ambos
// extremos. Una fecha ausente (zero) no pasa si algún límite está fijado.
func dateInRange(v time.Time, fromStr, toStr string) bool {
	from, hasFrom := parseDateBound(fromStr)
	to, hasTo := parseDateBound(toStr)
	if !hasFrom && !hasTo {
		return true
	}
	if v.IsZero() {
		return false
	}
	day := dayOf(v)
	if hasFrom && day.Before(dayOf(from)) {
		return false
	}
	if hasTo && day.After(dayOf(to)) {
		return false
	}
	return true
}

// dayOf trunca un instante al inicio de su día local.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ── Comparación de texto ──────────────────────────────────────────────────────

// foldTransformer descompone (NFD), elimina marcas diacríticas y recompone.
// Así "Lácteos" y "lacteos" comparan igual, necesario para nombres de
// producto en español.
var foldTransformer = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// containsFolded indica si needle es substring de haystack ignorando
// mayúsculas y acentos.
func containsFolded(haystack, needle string) bool {
	return strings.Contains(foldText(haystack), foldText(needle))
}

func foldText(s string) string {
	folded, _, err := transform.String(foldTransformer, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}
