package visitor

import (
	"fmt"
	"strings"

	"github.com/go-leo/online-store/product"
	"golang.org/x/exp/slices"
)

// ReportGenerator renders one line per product, in visiting order.
type ReportGenerator struct {
	lines []string
}

func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{}
}

func (g *ReportGenerator) VisitElectronics(electronics *product.Electronics) string {
	line := fmt.Sprintf("[ELECTRONICS] %s - $%.2f, Warranty: %d months",
		electronics.Name(), electronics.Price(), electronics.WarrantyMonths())
	g.lines = append(g.lines, line)
	return line
}

func (g *ReportGenerator) VisitFood(food *product.Food) string {
	line := fmt.Sprintf("[FOOD] %s - $%.2f, Expires in: %d days",
		food.Name(), food.Price(), food.ExpirationDays())
	g.lines = append(g.lines, line)
	return line
}

func (g *ReportGenerator) VisitClothing(clothing *product.Clothing) string {
	line := fmt.Sprintf("[CLOTHING] %s - $%.2f, Size: %s",
		clothing.Name(), clothing.Price(), clothing.Size())
	g.lines = append(g.lines, line)
	return line
}

// Lines returns a copy of the report lines.
func (g *ReportGenerator) Lines() []string {
	return slices.Clone(g.lines)
}

// FullReport joins the report lines with newlines.
func (g *ReportGenerator) FullReport() string {
	return strings.Join(g.lines, "\n")
}

func (g *ReportGenerator) Reset() {
	g.lines = nil
}
