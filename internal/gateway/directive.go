package gateway

import (
	_ "embed"
	"encoding/json"
)

// DirectiveType は apply 配列の各要素が持つ type の値。
type DirectiveType string

const (
	// DirectiveSetFocus はクラスターへのフォーカス移動。
	DirectiveSetFocus DirectiveType = "SetFocus"
	// DirectiveString は文字列値の設定。
	DirectiveString DirectiveType = "string"
	// DirectiveImage は画像値の設定。値はBase64エンコードしたPNG。
	DirectiveImage DirectiveType = "image"
	// DirectiveSetItemsToSelect は選択肢の設定。
	DirectiveSetItemsToSelect DirectiveType = "SetItemsToSelect"
)

// Coordinate は帳票上のクラスターの位置。
type Coordinate struct {
	Sheet   int `json:"sheet"`
	Cluster int `json:"cluster"`
}

// Directive は apply 配列の1要素。
// 具象型はこのパッケージで定義したものに限られる。
type Directive interface {
	json.Marshaler
	// Position は対象クラスターの位置を返す。
	Position() Coordinate
	// Type は type フィールドの値を返す。
	Type() DirectiveType

	isDirective()
}

// directiveHeader はすべての指示に共通するキー。
// 埋め込むことでJSONのキー順を sheet, cluster, type に揃える。
type directiveHeader struct {
	Coordinate
	Type DirectiveType `json:"type"`
}

// SetFocus はクラスターにフォーカスを移す指示。
type SetFocus struct {
	Target Coordinate
}

// Position implements Directive.
func (d SetFocus) Position() Coordinate { return d.Target }

// Type implements Directive.
func (SetFocus) Type() DirectiveType { return DirectiveSetFocus }

func (SetFocus) isDirective() {}

// MarshalJSON implements json.Marshaler.
func (d SetFocus) MarshalJSON() ([]byte, error) {
	return json.Marshal(directiveHeader{Coordinate: d.Target, Type: DirectiveSetFocus})
}

// StringValue はクラスターに文字列を設定する指示。
type StringValue struct {
	Target Coordinate
	Value  string
}

// Position implements Directive.
func (d StringValue) Position() Coordinate { return d.Target }

// Type implements Directive.
func (StringValue) Type() DirectiveType { return DirectiveString }

func (StringValue) isDirective() {}

// MarshalJSON implements json.Marshaler.
func (d StringValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		directiveHeader
		Value string `json:"value"`
	}{
		directiveHeader: directiveHeader{Coordinate: d.Target, Type: DirectiveString},
		Value:           d.Value,
	})
}

// ImageValue はクラスターに画像を設定する指示。
// Data は画像のバイナリで、JSONではBase64文字列になる。
type ImageValue struct {
	Target Coordinate
	Data   []byte
}

// Position implements Directive.
func (d ImageValue) Position() Coordinate { return d.Target }

// Type implements Directive.
func (ImageValue) Type() DirectiveType { return DirectiveImage }

func (ImageValue) isDirective() {}

// MarshalJSON implements json.Marshaler.
func (d ImageValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		directiveHeader
		Value []byte `json:"value"`
	}{
		directiveHeader: directiveHeader{Coordinate: d.Target, Type: DirectiveImage},
		Value:           d.Data,
	})
}

// SelectItem は選択肢の1項目。
type SelectItem struct {
	Item     string `json:"item"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// SetItemsToSelect はクラスターに選択肢と選択値を設定する指示。
type SetItemsToSelect struct {
	Target Coordinate
	Value  string
	Items  []SelectItem
}

// Position implements Directive.
func (d SetItemsToSelect) Position() Coordinate { return d.Target }

// Type implements Directive.
func (SetItemsToSelect) Type() DirectiveType { return DirectiveSetItemsToSelect }

func (SetItemsToSelect) isDirective() {}

// MarshalJSON implements json.Marshaler.
func (d SetItemsToSelect) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		directiveHeader
		Value       string       `json:"value"`
		SelectItems []SelectItem `json:"selectItems"`
	}{
		directiveHeader: directiveHeader{Coordinate: d.Target, Type: DirectiveSetItemsToSelect},
		Value:           d.Value,
		SelectItems:     d.Items,
	})
}

// cluster5Image はクラスター5に表示する10x10のPNG画像。
//
//go:embed assets/cluster5.png
var cluster5Image []byte

// defaultDirectives は getValue が返す固定の指示列を返す。
func defaultDirectives() []Directive {
	at := func(cluster int) Coordinate {
		return Coordinate{Sheet: 1, Cluster: cluster}
	}

	return []Directive{
		SetFocus{Target: at(1)},
		StringValue{Target: at(1), Value: "クラスター１の値（固定値文字）"},
		StringValue{Target: at(2), Value: "クラスター２の値（固定値文字）"},
		StringValue{Target: at(3), Value: "クラスター３の値（固定値文字）"},
		ImageValue{Target: at(5), Data: cluster5Image},
		SetItemsToSelect{
			Target: at(6),
			Value:  "PLCA",
			Items: []SelectItem{
				{Item: "PLCA", Label: "設備 PLC-A", Selected: true},
				{Item: "PLCB", Label: "設備 PLC-B", Selected: false},
			},
		},
	}
}
