package gatewayclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/nao1215/irepo-gateway-mock/pkg/requestid"
	"github.com/nao1215/irepo-gateway-mock/pkg/result"
)

// Client はモックサーバー用のHTTPクライアント。
type Client struct {
	// httpClient は内部で使用するHTTPクライアント。
	httpClient *http.Client
	// baseURL は接続先のベースURL。
	baseURL string
	// token はAuthorizationヘッダーに付与するBearerトークン。
	token string
}

// New は新しいクライアントを生成する。
// baseURLには接続先のベースURL（例: "http://localhost:3000"）を指定する。
func New(baseURL, token string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: baseURL,
		token:   token,
	}
}

// APIError は2xx以外のレスポンスを表すエラー。
type APIError struct {
	// StatusCode はHTTPステータスコード。
	StatusCode int
	// Result はレスポンスの result オブジェクト。解析できなかった場合はゼロ値。
	Result result.Result
	// Body は result を解析できなかった場合の生のレスポンスボディ。
	Body string
}

// Error implements error.
func (e *APIError) Error() string {
	if e.Result.Description != "" {
		return fmt.Sprintf("HTTPエラー: status=%d, description=%s", e.StatusCode, e.Result.Description)
	}
	return fmt.Sprintf("HTTPエラー: status=%d, body=%s", e.StatusCode, e.Body)
}

// GetValue は通常の値取得を呼び出す。
func (c *Client) GetValue(ctx context.Context) (*ValueResponse, error) {
	var resp ValueResponse
	if err := c.do(ctx, http.MethodGet, "/api/getValue", nil, "", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Fields はカスタムマスターのフィールド定義を取得する。
func (c *Client) Fields(ctx context.Context) (*FieldsResponse, error) {
	var resp FieldsResponse
	if err := c.do(ctx, http.MethodGet, "/api/master/fields", nil, "", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Params はカスタムマスターの検索パラメータ定義を取得する。
func (c *Client) Params(ctx context.Context) (*ParamsResponse, error) {
	var resp ParamsResponse
	if err := c.do(ctx, http.MethodGet, "/api/master/params", nil, "", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetRecords は検索条件を multipart の data フィールドに入れてレコードを取得する。
func (c *Client) GetRecords(ctx context.Context, conditions ...Condition) (*RecordsResponse, error) {
	if conditions == nil {
		conditions = []Condition{}
	}
	data, err := json.Marshal(struct {
		Clusters []Condition `json:"clusters"`
	}{Clusters: conditions})
	if err != nil {
		return nil, fmt.Errorf("検索条件のシリアライズに失敗: %w", err)
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := mw.WriteField("data", string(data)); err != nil {
		return nil, fmt.Errorf("multipartボディの作成に失敗: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("multipartボディの作成に失敗: %w", err)
	}

	var resp RecordsResponse
	if err := c.do(ctx, http.MethodPost, "/api/master/getrecords", &body, mw.FormDataContentType(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetRecordsByProductID は商品IDで絞り込んでレコードを取得する。
func (c *Client) GetRecordsByProductID(ctx context.Context, productID string) (*RecordsResponse, error) {
	return c.GetRecords(ctx, Condition{Parameter: "product_id", Value: productID})
}

// do はHTTPリクエストを実行してJSONレスポンスを out にデシリアライズする共通処理。
func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("HTTPリクエストの作成に失敗: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	// コンテキストからリクエストIDを伝播する
	if id, ok := requestid.FromContext(ctx); ok {
		req.Header.Set(requestid.Header, id)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("HTTPリクエストの送信に失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var envelope result.Response
		if err := json.Unmarshal(respBody, &envelope); err == nil {
			apiErr.Result = envelope.Result
		} else {
			apiErr.Body = string(respBody)
		}
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("レスポンスボディのデシリアライズに失敗: %w", err)
	}
	return nil
}

// WithRequestID はコンテキストにリクエストIDを設定する。
// 設定したIDは X-Request-ID ヘッダーとして送信される。
func WithRequestID(ctx context.Context, id string) context.Context {
	return requestid.NewContext(ctx, id)
}
