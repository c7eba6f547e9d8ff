package catalog

import "pharmahub/models"

// Static storefront seed. The catalog is read-only for the lifetime of the
// process; every cart and order line resolves against it.

var categories = []models.Category{
	{ID: 1, Name: "Thuốc cảm cúm & Sốt", Description: "Các loại thuốc điều trị cảm cúm, hạ sốt, giảm đau"},
	{ID: 2, Name: "Vitamin & Khoáng chất", Description: "Bổ sung vitamin và khoáng chất thiết yếu"},
	{ID: 3, Name: "Hỗ trợ tiêu hóa", Description: "Thuốc hỗ trợ tiêu hóa, men vi sinh"},
	{ID: 4, Name: "Chăm sóc cá nhân", Description: "Thuốc nhỏ mắt, chăm sóc sức khỏe cá nhân"},
	{ID: 5, Name: "Thực phẩm chức năng", Description: "Omega 3, Glucosamine và các thực phẩm bổ sung"},
	{ID: 6, Name: "Tim mạch", Description: "Thuốc điều trị các bệnh lý tim mạch"},
}

var products = []models.Product{
	{
		ID:           1,
		Name:         "Paracetamol 500mg",
		Description:  "Thuốc giảm đau, hạ sốt hiệu quả.",
		Category:     "Thuốc cảm cúm & Sốt",
		CategoryID:   1,
		Image:        "/images/products/med001.jpg",
		Images:       []string{"/images/products/med001-1.jpg", "/images/products/med001-2.jfif"},
		Manufacturer: "Dược phẩm ABC",
		Ingredients:  "Paracetamol 500mg",
		Usage:        "Giảm đau, hạ sốt.",
		Type:         "khongkedon",
		Units: []models.Unit{
			{Name: "Vỉ 10 viên", Price: 50000},
			{Name: "Hộp 10 vỉ", Price: 480000},
		},
	},
	{
		ID:           2,
		Name:         "Vitamin C 1000mg",
		Description:  "Tăng cường sức đề kháng, chống oxy hóa, hỗ trợ làm đẹp da.",
		Category:     "Vitamin & Khoáng chất",
		CategoryID:   2,
		Image:        "/images/products/med002.jpg",
		Images:       []string{"/images/products/med002.jpg"},
		Manufacturer: "Công ty TNHH Dinh Dưỡng XYZ",
		Ingredients:  "Vitamin C (L-Ascorbic Acid) 1000mg",
		Usage:        "Tăng cường sức đề kháng, chống oxy hóa, hỗ trợ làm đẹp da.",
		Type:         "khongkedon",
		Units: []models.Unit{
			{Name: "Chai 30 viên", Price: 120000},
			{Name: "Hộp 60 viên", Price: 230000},
		},
	},
	{
		ID:           3,
		Name:         "Men vi sinh Đại Bắc (Probiotics)",
		Description:  "Hỗ trợ tiêu hóa, cải thiện hệ vi sinh đường ruột, giảm đầy bụng khó tiêu.",
		Category:     "Hỗ trợ tiêu hóa",
		CategoryID:   3,
		Image:        "/images/products/med003.jpg",
		Images:       []string{"/images/products/med003.jpg"},
		Manufacturer: "Công ty Cổ phần Dược phẩm Đại Bắc",
		Ingredients:  "Lactobacillus acidophilus, Bifidobacterium bifidum, Enterococcus faecium, Bacillus subtilis.",
		Usage:        "Hỗ trợ tiêu hóa, cải thiện hệ vi sinh đường ruột, giảm đầy bụng khó tiêu.",
		Type:         "khongkedon",
		Units: []models.Unit{
			{Name: "Hộp 10 gói", Price: 85000},
			{Name: "Hộp 30 gói", Price: 240000},
		},
	},
	{
		ID:           4,
		Name:         "Omega-3 Fish Oil",
		Description:  "Dầu cá bổ sung Omega-3, hỗ trợ tim mạch và thị lực.",
		Category:     "Thực phẩm chức năng",
		CategoryID:   5,
		Image:        "/images/products/med004.jfif",
		Images:       []string{"/images/products/med004.jfif"},
		Manufacturer: "Nature's Bounty",
		Ingredients:  "Dầu cá tự nhiên (EPA 180mg, DHA 120mg)",
		Usage:        "Hỗ trợ tim mạch, não bộ và thị lực.",
		Type:         "khongkedon",
		Units: []models.Unit{
			{Name: "Lọ 100 viên", Price: 250000},
			{Name: "Lọ 200 viên", Price: 450000},
		},
	},
	{
		ID:           5,
		Name:         "Canxi D3 Extra",
		Description:  "Bổ sung canxi và vitamin D3 cho xương chắc khỏe.",
		Category:     "Vitamin & Khoáng chất",
		CategoryID:   2,
		Image:        "/images/products/med005.jpg",
		Images:       []string{"/images/products/med005.jpg"},
		Manufacturer: "Dược phẩm Hậu Giang",
		Ingredients:  "Calcium carbonate 500mg, Vitamin D3 200IU",
		Usage:        "Phòng ngừa loãng xương, hỗ trợ phát triển chiều cao.",
		Type:         "khongkedon",
		Units: []models.Unit{
			{Name: "Hộp 60 viên", Price: 180000},
		},
	},
	{
		ID:           6,
		Name:         "Nước nhỏ mắt V.Rohto",
		Description:  "Làm dịu mắt mỏi, khô rát do làm việc lâu với màn hình.",
		Category:     "Chăm sóc cá nhân",
		CategoryID:   4,
		Image:        "/images/products/med006.jpg",
		Images:       []string{"/images/products/med006.jpg"},
		Manufacturer: "Rohto-Mentholatum Việt Nam",
		Ingredients:  "Tetrahydrozoline HCl, Chlorpheniramine maleate, Vitamin B6",
		Usage:        "Nhỏ mắt 2-3 lần mỗi ngày, mỗi lần 1-2 giọt.",
		Type:         "khongkedon",
		Units: []models.Unit{
			{Name: "Lọ 13ml", Price: 45000},
		},
	},
	{
		ID:           7,
		Name:         "Panadol Extra",
		Description:  "Giảm nhanh các cơn đau đầu, đau nửa đầu kèm sốt.",
		Category:     "Thuốc cảm cúm & Sốt",
		CategoryID:   1,
		Image:        "/images/products/med007.jpg",
		Images:       []string{"/images/products/med007.jpg"},
		Manufacturer: "GSK",
		Ingredients:  "Paracetamol 500mg, Caffeine 65mg",
		Usage:        "Giảm đau, hạ sốt. Không dùng quá 8 viên/ngày.",
		Type:         "khongkedon",
		Units: []models.Unit{
			{Name: "Vỉ 10 viên", Price: 50000},
			{Name: "Hộp 12 vỉ", Price: 550000},
		},
	},
	{
		ID:           8,
		Name:         "Glucosamine 1500mg",
		Description:  "Hỗ trợ tái tạo sụn khớp, giảm đau nhức xương khớp.",
		Category:     "Thực phẩm chức năng",
		CategoryID:   5,
		Image:        "/images/products/med008.jpg",
		Images:       []string{"/images/products/med008.jpg"},
		Manufacturer: "Blackmores",
		Ingredients:  "Glucosamine sulfate 1500mg",
		Usage:        "Uống 1 viên/ngày sau bữa ăn.",
		Type:         "khongkedon",
		Units: []models.Unit{
			{Name: "Lọ 90 viên", Price: 390000},
			{Name: "Lọ 180 viên", Price: 690000},
		},
	},
	{
		ID:           9,
		Name:         "Berocca Performance",
		Description:  "Viên sủi bổ sung vitamin nhóm B và khoáng chất, giảm căng thẳng.",
		Category:     "Vitamin & Khoáng chất",
		CategoryID:   2,
		Image:        "/images/products/med009.jpg",
		Images:       []string{"/images/products/med009.jpg"},
		Manufacturer: "Bayer",
		Ingredients:  "Vitamin B1, B2, B6, B12, C, Calcium, Magnesium, Zinc",
		Usage:        "Hòa tan 1 viên trong 200ml nước, uống 1 lần/ngày.",
		Type:         "khongkedon",
		Units: []models.Unit{
			{Name: "Tuýp 10 viên", Price: 110000},
			{Name: "Tuýp 15 viên", Price: 155000},
		},
	},
	{
		ID:           10,
		Name:         "Siro ho Prospan",
		Description:  "Siro thảo dược trị ho, long đờm từ cao lá thường xuân.",
		Category:     "Thuốc cảm cúm & Sốt",
		CategoryID:   1,
		Image:        "/images/products/med010.jpg",
		Images:       []string{"/images/products/med010.jpg"},
		Manufacturer: "Engelhard Arzneimittel",
		Ingredients:  "Cao khô lá thường xuân 7mg/ml",
		Usage:        "Trẻ em và người lớn uống theo liều hướng dẫn.",
		Type:         "khongkedon",
		Units: []models.Unit{
			{Name: "Chai 100ml", Price: 95000},
		},
	},
	{
		ID:           11,
		Name:         "Concor 5mg",
		Description:  "Thuốc điều trị tăng huyết áp, đau thắt ngực.",
		Category:     "Tim mạch",
		CategoryID:   6,
		Image:        "/images/products/med011.jpg",
		Images:       []string{"/images/products/med011.jpg"},
		Manufacturer: "Merck",
		Ingredients:  "Bisoprolol fumarate 5mg",
		Usage:        "Dùng theo chỉ định của bác sĩ.",
		Type:         "kedon",
		Units: []models.Unit{
			{Name: "Hộp 30 viên", Price: 98000},
		},
	},
	{
		ID:           12,
		Name:         "Amoxicillin 500mg",
		Description:  "Kháng sinh phổ rộng điều trị các bệnh nhiễm khuẩn đường hô hấp.",
		Category:     "Thuốc cảm cúm & Sốt",
		CategoryID:   1,
		Image:        "/images/products/med012.jpg",
		Images:       []string{"/images/products/med012.jpg"},
		Manufacturer: "Stada",
		Ingredients:  "Amoxicillin 500mg",
		Usage:        "Kháng sinh điều trị nhiễm khuẩn.",
		Type:         "kedon",
		Units: []models.Unit{
			{Name: "Hộp 12 viên", Price: 75000},
			{Name: "Hộp 24 viên", Price: 140000},
		},
	},
}
