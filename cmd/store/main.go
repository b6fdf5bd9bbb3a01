package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/go-leo/online-store/cart"
	"github.com/go-leo/online-store/checkout"
	"github.com/go-leo/online-store/config"
	"github.com/go-leo/online-store/internal/logger"
	"github.com/go-leo/online-store/product"
	"github.com/go-leo/online-store/visitor"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	appLogger, err := logger.NewZapLogger(logger.FromConfig(cfg.Server.AppEnv, cfg.Logger))
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer appLogger.Sync()

	products, err := loadProducts(cfg.Store.CartFile)
	if err != nil {
		appLogger.Fatal("failed to load products", zap.String("file", cfg.Store.CartFile), zap.Error(err))
	}
	c := cart.New(products...)
	appLogger.Info("cart ready", zap.Int("items", c.Len()), zap.String("output", cfg.Store.Output))

	if cfg.Store.Output == "json" {
		data, err := checkout.Summarize(c, checkout.Logger(appLogger)).JSON()
		if err != nil {
			appLogger.Fatal("failed to marshal summary", zap.Error(err))
		}
		fmt.Println(string(data))
		return
	}
	run(os.Stdout, c, appLogger)
}

func loadProducts(file string) ([]product.Product, error) {
	if file == "" {
		return demoProducts(), nil
	}
	return product.Load(file)
}

func demoProducts() []product.Product {
	return []product.Product{
		product.NewElectronics("Gaming Laptop", 1200.0, 2.5, 24),
		product.NewElectronics("Smartphone", 800.0, 0.3, 12),
		product.NewFood("Organic Milk", 3.5, 1.0, 7),
		product.NewFood("Whole Wheat Bread", 2.0, 0.5, 5),
		product.NewClothing("Cotton T-Shirt", 25.0, 0.2, "L"),
		product.NewClothing("Blue Jeans", 60.0, 0.5, "32"),
	}
}

func separator(w io.Writer) {
	fmt.Fprintf(w, "\n%s\n\n", strings.Repeat("=", 60))
}

// run prints the cart, applies each store visitor to it and prints the final summary.
func run(w io.Writer, c *cart.Cart, l *zap.Logger) {
	fmt.Fprintln(w, "Welcome to Online Store - Visitor Pattern Demo")
	separator(w)

	fmt.Fprintln(w, c)
	fmt.Fprintf(w, "\nTotal Price: $%.2f\n", c.TotalPrice())
	separator(w)

	fmt.Fprintln(w, "APPLYING TAX CALCULATOR")
	tax := visitor.NewTaxCalculator()
	cart.ApplyVisitor(c, visitor.Logging[float64](l, "tax").Decorate(tax))
	fmt.Fprintf(w, "Total Tax: $%.2f\n", tax.TotalTax())
	separator(w)

	fmt.Fprintln(w, "APPLYING DISCOUNT CALCULATOR")
	discount := visitor.NewDiscountCalculator()
	cart.ApplyVisitor(c, visitor.Logging[float64](l, "discount").Decorate(discount))
	fmt.Fprintf(w, "Total Discount: $%.2f\n", discount.TotalDiscount())
	separator(w)

	fmt.Fprintln(w, "APPLYING SHIPPING CALCULATOR")
	shipping := visitor.NewShippingCalculator()
	cart.ApplyVisitor(c, visitor.Logging[float64](l, "shipping").Decorate(shipping))
	fmt.Fprintf(w, "Total Shipping Cost: $%.2f\n", shipping.TotalShipping())
	separator(w)

	fmt.Fprintln(w, "GENERATING PRODUCT REPORT")
	report := visitor.NewReportGenerator()
	cart.ApplyVisitor(c, visitor.Logging[string](l, "report").Decorate(report))
	fmt.Fprintln(w, report.FullReport())
	separator(w)

	fmt.Fprintln(w, "FINAL SUMMARY")
	fmt.Fprintln(w, checkout.Summarize(c))
	separator(w)
}
