package gateway

// FieldType はカスタムマスターのフィールド型。
type FieldType string

const (
	FieldTypeText    FieldType = "text"
	FieldTypeNumeric FieldType = "numeric"
	FieldTypeBool    FieldType = "bool"
	FieldTypeDate    FieldType = "date"
)

// FieldDescriptor はカスタムマスターのフィールド定義。
// Item はレコードのどの属性を値として使うかを表す。
type FieldDescriptor struct {
	No   int       `json:"no"`
	Name string    `json:"name"`
	Type FieldType `json:"type"`
	Item string    `json:"item"`
}

// ParamDescriptor はレコード取得時に指定できる検索パラメータの定義。
type ParamDescriptor struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// Product は商品マスターの1レコード。
// 数値や真偽値もベンダー仕様に合わせて文字列で保持する。
type Product struct {
	ProductID     string
	ProductName   string
	Category      string
	Price         string
	StockQuantity string
	IsActive      string
	CreatedDate   string
}

// Attribute は属性名に対応する値を返す。未知の属性名の場合は false を返す。
func (p Product) Attribute(name string) (string, bool) {
	switch name {
	case "product_id":
		return p.ProductID, true
	case "product_name":
		return p.ProductName, true
	case "category":
		return p.Category, true
	case "price":
		return p.Price, true
	case "stock_quantity":
		return p.StockQuantity, true
	case "is_active":
		return p.IsActive, true
	case "created_date":
		return p.CreatedDate, true
	default:
		return "", false
	}
}

// FieldValue はレコード内の1フィールドの値。
type FieldValue struct {
	No    int    `json:"no"`
	Value string `json:"value"`
}

// Record はベンダー形式に整形したレコード。
type Record struct {
	Fields []FieldValue `json:"fields"`
}

// Catalog はモックサーバーが返す固定データ一式。
// 起動時に一度だけ組み立て、以降は読み取りのみ行う。
type Catalog struct {
	// Apply は getValue が返す指示列。
	Apply []Directive
	// Fields はフィールド定義。fields と getrecords の双方で共有する。
	Fields []FieldDescriptor
	// Params は検索パラメータ定義。
	Params []ParamDescriptor
	// Products は商品マスター。先頭がデフォルトレコードになる。
	Products []Product
}

// DefaultCatalog は組み込みの固定データを返す。
func DefaultCatalog() *Catalog {
	return &Catalog{
		Apply: defaultDirectives(),
		Fields: []FieldDescriptor{
			{No: 1, Name: "product_id", Type: FieldTypeText, Item: "product_id"},
			{No: 2, Name: "product_name", Type: FieldTypeText, Item: "product_name"},
			{No: 3, Name: "category", Type: FieldTypeText, Item: "category"},
			{No: 4, Name: "price", Type: FieldTypeNumeric, Item: "price"},
			{No: 5, Name: "stock_quantity", Type: FieldTypeNumeric, Item: "stock_quantity"},
			{No: 6, Name: "is_active", Type: FieldTypeBool, Item: "is_active"},
			{No: 7, Name: "created_date", Type: FieldTypeDate, Item: "created_date"},
		},
		Params: []ParamDescriptor{
			{Name: "product_id", Type: "string"},
		},
		Products: []Product{
			{ProductID: "1001", ProductName: "製品A", Category: "電子部品", Price: "15000", StockQuantity: "150", IsActive: "true", CreatedDate: "2024/01/15"},
			{ProductID: "1002", ProductName: "製品B", Category: "電子部品", Price: "12000", StockQuantity: "80", IsActive: "true", CreatedDate: "2024/02/10"},
			{ProductID: "1003", ProductName: "製品C", Category: "機械部品", Price: "5000", StockQuantity: "300", IsActive: "false", CreatedDate: "2024/03/05"},
			{ProductID: "1004", ProductName: "製品D", Category: "テストカテゴリ", Price: "0", StockQuantity: "0", IsActive: "true", CreatedDate: "2025/01/01"},
			{ProductID: "1005", ProductName: "製品E", Category: "消耗品", Price: "200", StockQuantity: "5000", IsActive: "true", CreatedDate: "2024/04/01"},
		},
	}
}

// Shape はフィールド定義の順に商品の属性を取り出してレコードに整形する。
// 各値の no はフィールド定義の no と一致する。
func (c *Catalog) Shape(p Product) Record {
	fields := make([]FieldValue, 0, len(c.Fields))
	for _, f := range c.Fields {
		v, _ := p.Attribute(f.Item)
		fields = append(fields, FieldValue{No: f.No, Value: v})
	}
	return Record{Fields: fields}
}

// DefaultRecord は先頭の商品を整形したレコードを返す。
func (c *Catalog) DefaultRecord() Record {
	if len(c.Products) == 0 {
		return Record{Fields: []FieldValue{}}
	}
	return c.Shape(c.Products[0])
}

// FilterProducts は product_id が完全一致する商品を元の順序で返す。
// productID が空、または一致する商品が無い場合は全件を返す。
func FilterProducts(products []Product, productID string) []Product {
	if productID == "" {
		return products
	}

	matched := make([]Product, 0, 1)
	for _, p := range products {
		if p.ProductID == productID {
			matched = append(matched, p)
		}
	}
	if len(matched) == 0 {
		return products
	}
	return matched
}
