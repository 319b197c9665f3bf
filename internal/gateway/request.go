package gateway

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin/binding"
)

const (
	// dataField はレコード取得の検索条件を格納するフォームフィールド名。
	dataField = "data"
	// productIDParameter は検索条件のうち商品IDを表すパラメータ名。
	productIDParameter = "product_id"
	// maxMultipartMemory はmultipartボディをメモリ上に保持する上限。
	maxMultipartMemory = 32 << 20
)

var (
	// ErrInvalidJSONBody はJSONボディが解析できない場合のエラー。
	ErrInvalidJSONBody = errors.New("JSONボディの形式が不正です")
	// errNullCluster は clusters に null 要素が含まれる場合のエラー。
	errNullCluster = errors.New("clustersにnullの要素が含まれています")
)

// readDataField はリクエストボディから data フィールドの生の値を取り出す。
// data が無い場合は nil を返す。
// multipartとJSONのボディ自体が壊れている場合のみエラーを返す。
func readDataField(r *http.Request, contentType string) ([]byte, error) {
	switch contentType {
	case binding.MIMEMultipartPOSTForm:
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			return nil, fmt.Errorf("multipartボディの解析に失敗: %w", err)
		}
		return nonEmpty(r.PostForm.Get(dataField)), nil

	case binding.MIMEPOSTForm:
		// 不正なエスケープを含んでいても解析できた範囲の値を使う
		_ = r.ParseForm()
		return nonEmpty(r.PostForm.Get(dataField)), nil

	case binding.MIMEJSON:
		body, err := io.ReadAll(r.Body)
		if err != nil {
			return nil, fmt.Errorf("リクエストボディの読み込みに失敗: %w", err)
		}
		return dataFromJSON(body)

	default:
		return nil, nil
	}
}

// dataFromJSON はJSONボディの data メンバーを取り出す。
// data が文字列の場合はその中身を、オブジェクト等の場合はJSONのまま返す。
func dataFromJSON(body []byte) ([]byte, error) {
	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return nil, nil
	}
	if !json.Valid(body) {
		return nil, ErrInvalidJSONBody
	}

	switch body[0] {
	case '{':
	case '[':
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: オブジェクトまたは配列である必要があります", ErrInvalidJSONBody)
	}

	var members map[string]json.RawMessage
	if err := json.Unmarshal(body, &members); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSONBody, err)
	}

	raw, ok := members[dataField]
	if !ok || string(raw) == "null" {
		return nil, nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return nonEmpty(s), nil
	}
	return raw, nil
}

// nonEmpty は空文字列を nil として返す。
func nonEmpty(s string) []byte {
	if s == "" {
		return nil
	}
	return []byte(s)
}

// recordQuery は data フィールドの検索条件。
type recordQuery struct {
	Clusters json.RawMessage `json:"clusters"`
}

// clusterCondition は検索条件の1要素。
type clusterCondition struct {
	Parameter string          `json:"parameter"`
	Value     json.RawMessage `json:"value"`
}

// parseProductID は data フィールドから商品IDの検索条件を取り出す。
// parameter が product_id の最初の要素を採用し、その value が文字列でなければ空文字列を返す。
// 条件が見つからない場合も空文字列を返す。
func parseProductID(data []byte) (string, error) {
	var q recordQuery
	if err := json.Unmarshal(data, &q); err != nil {
		return "", fmt.Errorf("検索条件の解析に失敗: %w", err)
	}

	var clusters []json.RawMessage
	if err := json.Unmarshal(q.Clusters, &clusters); err != nil {
		// clusters が配列でない場合は条件なしとして扱う
		return "", nil
	}

	for _, raw := range clusters {
		if string(bytes.TrimSpace(raw)) == "null" {
			return "", errNullCluster
		}

		var cond clusterCondition
		if err := json.Unmarshal(raw, &cond); err != nil {
			continue
		}
		if cond.Parameter != productIDParameter {
			continue
		}

		var id string
		if err := json.Unmarshal(cond.Value, &id); err != nil {
			return "", nil
		}
		return id, nil
	}
	return "", nil
}
