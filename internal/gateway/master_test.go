package gateway

import (
	"reflect"
	"testing"
)

func TestFilterProducts(t *testing.T) {
	t.Parallel()

	products := DefaultCatalog().Products
	duplicated := append([]Product{}, products...)
	duplicated = append(duplicated, Product{ProductID: "1002", ProductName: "製品B2"})

	tests := []struct {
		name     string
		products []Product
		id       string
		wantIDs  []string
	}{
		{name: "空のIDは全件", products: products, id: "", wantIDs: []string{"1001", "1002", "1003", "1004", "1005"}},
		{name: "一致するIDは1件", products: products, id: "1003", wantIDs: []string{"1003"}},
		{name: "一致しないIDは全件", products: products, id: "9999", wantIDs: []string{"1001", "1002", "1003", "1004", "1005"}},
		{name: "前後に空白があるIDは一致しない", products: products, id: " 1001", wantIDs: []string{"1001", "1002", "1003", "1004", "1005"}},
		{name: "重複するIDはすべて元の順序で返す", products: duplicated, id: "1002", wantIDs: []string{"1002", "1002"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FilterProducts(tt.products, tt.id)
			ids := make([]string, 0, len(got))
			for _, p := range got {
				ids = append(ids, p.ProductID)
			}
			if !reflect.DeepEqual(ids, tt.wantIDs) {
				t.Errorf("FilterProducts(%q): got %v, want %v", tt.id, ids, tt.wantIDs)
			}
		})
	}

	t.Run("重複時は元の順序が保たれること", func(t *testing.T) {
		t.Parallel()

		got := FilterProducts(duplicated, "1002")
		if got[0].ProductName != "製品B" || got[1].ProductName != "製品B2" {
			t.Errorf("順序: got %q, %q", got[0].ProductName, got[1].ProductName)
		}
	})
}

func TestCatalogShape(t *testing.T) {
	t.Parallel()

	t.Run("フィールド定義の順に値が並ぶこと", func(t *testing.T) {
		t.Parallel()

		c := DefaultCatalog()
		got := c.Shape(c.Products[2])
		want := Record{Fields: []FieldValue{
			{No: 1, Value: "1003"},
			{No: 2, Value: "製品C"},
			{No: 3, Value: "機械部品"},
			{No: 4, Value: "5000"},
			{No: 5, Value: "300"},
			{No: 6, Value: "false"},
			{No: 7, Value: "2024/03/05"},
		}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Shape: got %+v, want %+v", got, want)
		}
	})

	t.Run("noとitemの対応はフィールド定義に従うこと", func(t *testing.T) {
		t.Parallel()

		c := &Catalog{Fields: []FieldDescriptor{
			{No: 7, Name: "created_date", Type: FieldTypeDate, Item: "created_date"},
			{No: 2, Name: "product_name", Type: FieldTypeText, Item: "product_name"},
		}}
		got := c.Shape(Product{ProductName: "製品X", CreatedDate: "2024/12/31"})
		want := Record{Fields: []FieldValue{
			{No: 7, Value: "2024/12/31"},
			{No: 2, Value: "製品X"},
		}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Shape: got %+v, want %+v", got, want)
		}
	})

	t.Run("未知のitemは空文字列になること", func(t *testing.T) {
		t.Parallel()

		c := &Catalog{Fields: []FieldDescriptor{{No: 1, Name: "x", Type: FieldTypeText, Item: "unknown"}}}
		got := c.Shape(Product{ProductID: "1001"})
		if got.Fields[0].Value != "" {
			t.Errorf("value: got %q, want empty", got.Fields[0].Value)
		}
	})

	t.Run("商品が無い場合のデフォルトレコードは空であること", func(t *testing.T) {
		t.Parallel()

		c := &Catalog{}
		if got := c.DefaultRecord(); len(got.Fields) != 0 {
			t.Errorf("DefaultRecord: got %+v", got)
		}
	})
}
