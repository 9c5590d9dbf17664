// Package seed popula o armazenamento com lojas e produtos de demonstração. Tudo passa
// pelos serviços, então os status saem derivados e as validações valem.
package seed

import (
	"context"
	"fmt"

	"stockpile/internal/domain"
	"stockpile/internal/pkg/logger"
)

type storeSeed struct {
	name, location, manager string
	status                  domain.StoreStatus
}

type productSeed struct {
	name, sku          string
	category           domain.Category
	price              float64
	quantity, minStock int
	store              int // índice em demoStores
}

var demoStores = []storeSeed{
	{"Kofi Tech Hub", "Oxford St, Osu, Accra", "Kofi Mensah", domain.StoreActive},
	{"Ama's Furniture & Home", "Ring Rd Central, Accra", "Ama Asante", domain.StoreActive},
	{"Kantamanto Fashion", "Kantamanto Market, Accra", "Abena Owusu", domain.StoreActive},
	{"Kwame General Provisions", "Kejetia Market, Kumasi", "Kwame Boateng", domain.StoreActive},
	{"Adwoa's Corner Shop", "Labone, Accra", "Adwoa Darko", domain.StoreInactive},
}

var demoProducts = []productSeed{
	{"MacBook Pro 16\"", "MBP16-2024", domain.CategoryElectronics, 2499.99, 15, 5, 0},
	{"iPhone 15 Pro", "IPH15PRO", domain.CategoryElectronics, 999.99, 42, 10, 0},
	{"AirPods Pro (2nd gen)", "APP2-BLK", domain.CategoryElectronics, 249.99, 3, 15, 0},
	{"iPad Air 5", "IPAD-AIR5", domain.CategoryElectronics, 599.99, 0, 8, 0},
	{"Apple Watch Ultra 2", "AWU2", domain.CategoryElectronics, 799.99, 28, 10, 0},
	{"USB-C Hub 7-in-1", "USBC-HUB7", domain.CategoryElectronics, 49.99, 100, 20, 0},
	{"Magic Keyboard (Touch ID)", "MK-TOUCHID", domain.CategoryElectronics, 199.99, 8, 10, 0},
	{"DisplayPort Cable 2m", "DP-2M", domain.CategoryElectronics, 19.99, 74, 25, 0},
	{"Mesh Office Chair", "OFC-CHAIR-01", domain.CategoryFurniture, 379, 4, 3, 0},

	{"Standing Desk 140cm", "DESK-SIT-STAND-140", domain.CategoryFurniture, 699.99, 12, 5, 1},
	{"Ergonomic Chair Pro", "CHR-ERG-PRO", domain.CategoryFurniture, 449.99, 0, 8, 1},
	{"Bookshelf (Oak, 5 shelf)", "BSHELF-OAK5", domain.CategoryFurniture, 299.99, 25, 10, 1},
	{"Cordless Drill 18V", "DRILL-18V-BOSH", domain.CategoryTools, 129.99, 35, 10, 1},
	{"Circular Saw 7.25\"", "SAW-CIRC-725", domain.CategoryTools, 199.99, 4, 5, 1},
	{"Metric Wrench Set (8pc)", "WR-8PC-MET", domain.CategoryTools, 79.99, 50, 15, 1},

	{"Denim Jacket (M)", "JKT-DNM-M", domain.CategoryClothing, 89.99, 60, 20, 2},
	{"Running Shoes - Size 42", "SHOE-RUN-42", domain.CategoryClothing, 129.99, 2, 15, 2},
	{"Cotton T-Shirt 3-Pack (L)", "TEE-3PK-L", domain.CategoryClothing, 34.99, 200, 50, 2},
	{"Winter Parka (XL)", "PRKA-XL-NVY", domain.CategoryClothing, 259.99, 0, 10, 2},
	{"Silk Scarf (Floral)", "SCARF-SILK-FLR", domain.CategoryClothing, 49.99, 45, 20, 2},
	{"Leather Belt 32\"", "BLT-LTR-32", domain.CategoryClothing, 39.99, 80, 25, 2},
	{"Merino Wool Sweater (S)", "SWR-MRN-S", domain.CategoryClothing, 79.99, 13, 15, 2},
	{"Snap-back Cap", "CAP-SNAP-BLK", domain.CategoryClothing, 24.99, 37, 10, 2},

	{"Organic Coffee Beans 1kg", "COF-ORG-1KG", domain.CategoryFood, 18.99, 150, 30, 3},
	{"Extra Virgin Olive Oil 500ml", "OIL-EVO-500", domain.CategoryFood, 12.99, 5, 20, 3},
	{"Dark Chocolate Assortment", "CHOC-DRK-AST", domain.CategoryFood, 24.99, 75, 25, 3},
	{"Whey Protein Bars (24pk)", "PBAR-WHY-24", domain.CategoryFood, 29.99, 0, 15, 3},
	{"Sencha Green Tea (40 bags)", "TEA-GRN-40", domain.CategoryFood, 14.99, 90, 20, 3},
	{"JBL Clip 4 Speaker", "JBL-CLIP4-RED", domain.CategoryElectronics, 79.99, 22, 10, 3},
	{"Anker 20000mAh Powerbank", "ANKR-PB-20K", domain.CategoryElectronics, 49.99, 9, 10, 3},

	{"Vintage Table Lamp", "LAMP-VTG-BRS", domain.CategoryFurniture, 149.99, 3, 5, 4},
	{"Canvas Backpack 30L", "BAG-CNV-30L", domain.CategoryClothing, 54.99, 11, 10, 4},
	{"Mixed Dried Fruit 500g", "FRUIT-DRY-500", domain.CategoryFood, 9.99, 0, 10, 4},
	{"Soy Pillar Candles (set of 4)", "CNDL-SOY-4PK", domain.CategoryOther, 22.99, 30, 15, 4},
	{"A5 Notebook 3-Pack", "NB-A5-3PK", domain.CategoryOther, 15.99, 12, 10, 4},
}

// Result resume o que foi inserido.
type Result struct {
	Stores   int
	Products int
	Skipped  bool
}

// Run insere os dados de demonstração. Se já existir alguma loja nada é feito.
func Run(ctx context.Context, stores domain.StoreService, products domain.ProductService, log logger.Logger) (Result, error) {
	_, total, err := stores.ListStores(ctx, domain.StoreQuery{Page: domain.PageRequest{Number: 1, Limit: 1}})
	if err != nil {
		return Result{}, err
	}
	if total > 0 {
		log.Info("Base já populada, seed ignorado.", map[string]interface{}{"stores": total})
		return Result{Skipped: true}, nil
	}

	storeIDs := make([]string, len(demoStores))
	for i, s := range demoStores {
		status := s.status
		created, err := stores.CreateStore(ctx, domain.StoreDraft{
			Name:     s.name,
			Location: s.location,
			Manager:  s.manager,
			Status:   &status,
		})
		if err != nil {
			return Result{}, fmt.Errorf("seed: loja %q: %w", s.name, err)
		}
		storeIDs[i] = created.ID
	}

	for _, p := range demoProducts {
		quantity, minStock := p.quantity, p.minStock
		_, err := products.CreateProduct(ctx, domain.ProductDraft{
			Name:     p.name,
			SKU:      p.sku,
			Category: p.category,
			Price:    p.price,
			Quantity: &quantity,
			MinStock: &minStock,
			StoreID:  storeIDs[p.store],
		})
		if err != nil {
			return Result{}, fmt.Errorf("seed: produto %q: %w", p.sku, err)
		}
	}

	result := Result{Stores: len(demoStores), Products: len(demoProducts)}
	log.Info("Seed concluído.", map[string]interface{}{"stores": result.Stores, "products": result.Products})
	return result, nil
}
