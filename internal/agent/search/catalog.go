package search

import "github.com/IbalArrasyid/E-Commerce-Agent/internal/agent/model"

// DefaultCatalog is the built-in furniture inventory used by the in-memory
// search service. Descriptions carry both Indonesian and English keywords so
// text matching works in either language.
var DefaultCatalog = []model.Product{
	{
		ID:          "furn-001",
		Name:        "Sofa Skandinavia 3 Dudukan",
		Category:    "sofa",
		Color:       "putih",
		Material:    "kain",
		Brand:       "Nordika",
		Price:       4850000,
		Description: "Sofa tiga dudukan gaya skandinavia, kain putih, kaki kayu jati. Three-seat scandinavian sofa, white fabric, teak legs.",
		InStock:     true,
	},
	{
		ID:          "furn-002",
		Name:        "Sofa Sudut Minimalis",
		Category:    "sofa",
		Color:       "abu-abu",
		Material:    "kain",
		Brand:       "Livien",
		Price:       7200000,
		Description: "Sofa sudut L minimalis, kain abu-abu, busa tebal. Minimalist L-shaped corner sofa, grey fabric.",
		InStock:     true,
	},
	{
		ID:          "furn-003",
		Name:        "Sofa Kulit Klasik",
		Category:    "sofa",
		Color:       "coklat",
		Material:    "kulit",
		Brand:       "Heritage",
		Price:       12500000,
		Description: "Sofa dua dudukan kulit asli warna coklat, rangka mahoni. Classic two-seat genuine leather sofa, brown.",
		InStock:     false,
	},
	{
		ID:          "furn-004",
		Name:        "Meja Makan Jati 6 Kursi",
		Category:    "meja",
		Color:       "coklat",
		Material:    "jati",
		Brand:       "Jepara Craft",
		Price:       8900000,
		Description: "Meja makan kayu jati solid untuk enam orang. Solid teak dining table for six, wood table.",
		InStock:     true,
	},
	{
		ID:          "furn-005",
		Name:        "Meja Kerja Minimalis",
		Category:    "meja",
		Color:       "putih",
		Material:    "kayu",
		Brand:       "Livien",
		Price:       1450000,
		Description: "Meja kerja putih dengan laci, kayu engineered. White minimalist work desk with drawer, wood.",
		InStock:     true,
	},
	{
		ID:          "furn-006",
		Name:        "Kursi Makan Rotan",
		Category:    "kursi",
		Color:       "krem",
		Material:    "rotan",
		Brand:       "Nordika",
		Price:       780000,
		Description: "Kursi makan anyaman rotan alami, bantalan krem. Natural rattan dining chair, cream cushion.",
		InStock:     true,
	},
	{
		ID:          "furn-007",
		Name:        "Kursi Kantor Ergonomis",
		Category:    "kursi",
		Color:       "hitam",
		Material:    "kain",
		Brand:       "Ergo",
		Price:       2350000,
		Description: "Kursi kantor ergonomis hitam, sandaran jala. Ergonomic black office chair, mesh back.",
		InStock:     true,
	},
	{
		ID:          "furn-008",
		Name:        "Lemari Pakaian 3 Pintu",
		Category:    "lemari",
		Color:       "putih",
		Material:    "kayu",
		Brand:       "Jepara Craft",
		Price:       5600000,
		Description: "Lemari pakaian tiga pintu dengan cermin, kayu putih. Three-door white wooden wardrobe with mirror.",
		InStock:     true,
	},
	{
		ID:          "furn-009",
		Name:        "Rak Buku Industrial",
		Category:    "rak",
		Color:       "hitam",
		Material:    "besi",
		Brand:       "Ferro",
		Price:       1980000,
		Description: "Rak buku lima tingkat rangka besi hitam, papan kayu. Industrial five-tier bookshelf, black iron frame, wood shelf.",
		InStock:     true,
	},
	{
		ID:          "furn-010",
		Name:        "Kasur Spring Bed Queen",
		Category:    "kasur",
		Color:       "putih",
		Material:    "kain",
		Brand:       "DreamRest",
		Price:       6750000,
		Description: "Kasur spring bed ukuran queen, busa latex. Queen size spring bed mattress, latex foam.",
		InStock:     true,
	},
	{
		ID:          "furn-011",
		Name:        "Meja Kayu Rustic",
		Category:    "meja",
		Color:       "coklat",
		Material:    "kayu",
		Brand:       "Jepara Craft",
		Price:       3200000,
		Description: "Meja kayu solid gaya rustic, finishing natural. Rustic solid wood table, natural finish, meja kayu.",
		InStock:     true,
	},
	{
		ID:          "furn-012",
		Name:        "Nakas Minimalis Murah",
		Category:    "nakas",
		Color:       "putih",
		Material:    "kayu",
		Brand:       "Livien",
		Price:       420000,
		Description: "Nakas satu laci harga terjangkau, murah. Affordable minimalist nightstand, one drawer.",
		InStock:     true,
	},
}
