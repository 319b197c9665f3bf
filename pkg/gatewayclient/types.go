package gatewayclient

import "github.com/nao1215/irepo-gateway-mock/pkg/result"

// SelectItem は選択肢の1項目。
type SelectItem struct {
	Item     string `json:"item"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// Directive は apply 配列の1要素。
// Value は type が SetFocus の場合は空になる。
type Directive struct {
	Sheet       int          `json:"sheet"`
	Cluster     int          `json:"cluster"`
	Type        string       `json:"type"`
	Value       string       `json:"value,omitempty"`
	SelectItems []SelectItem `json:"selectItems,omitempty"`
}

// Field はカスタムマスターのフィールド定義。
type Field struct {
	No   int    `json:"no"`
	Name string `json:"name"`
	Type string `json:"type"`
	Item string `json:"item"`
}

// Param は検索パラメータ定義。
type Param struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// FieldValue はレコード内の1フィールドの値。
type FieldValue struct {
	No    int    `json:"no"`
	Value string `json:"value"`
}

// Record はカスタムマスターの1レコード。
type Record struct {
	Fields []FieldValue `json:"fields"`
}

// Value は no に対応する値を返す。
func (r Record) Value(no int) (string, bool) {
	for _, f := range r.Fields {
		if f.No == no {
			return f.Value, true
		}
	}
	return "", false
}

// Condition はレコード取得の検索条件の1要素。
type Condition struct {
	Parameter string `json:"parameter"`
	Value     string `json:"value"`
}

// ValueResponse は getValue のレスポンス。
type ValueResponse struct {
	Result result.Result `json:"result"`
	Apply  []Directive   `json:"apply"`
}

// FieldsResponse は master/fields のレスポンス。
type FieldsResponse struct {
	Result result.Result `json:"result"`
	Fields []Field       `json:"fields"`
}

// ParamsResponse は master/params のレスポンス。
type ParamsResponse struct {
	Result result.Result `json:"result"`
	Params []Param       `json:"params"`
}

// RecordsResponse は master/getrecords のレスポンス。
type RecordsResponse struct {
	Result        result.Result `json:"result"`
	Fields        []Field       `json:"fields"`
	DefaultRecord Record        `json:"defaultRecord"`
	Records       []Record      `json:"records"`
}
