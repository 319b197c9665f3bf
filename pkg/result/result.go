// Package result はi-Repo DirectGateway APIのレスポンスに共通する
// result オブジェクトを提供する。
//
// 成功・失敗を問わず、すべてのレスポンスはトップレベルに "result" キーを持ち、
// クライアントは code の値だけで成否を判定できる。
package result

const (
	// CodeSuccess は処理成功を表す結果コード。
	CodeSuccess = 0
	// CodeFailure は処理失敗を表す結果コード。
	CodeFailure = -1
)

// Result はレスポンスの result オブジェクト。
// description と remarks はエンドポイントによってどちらか一方が設定される。
type Result struct {
	// Code は結果コード。成功は0、失敗は-1。
	Code int `json:"code"`
	// Description は結果の説明文。
	Description string `json:"description,omitempty"`
	// Remarks は結果の補足メッセージ（順序付き）。
	Remarks []string `json:"remarks,omitempty"`
	// Error はサーバーエラー時の例外メッセージ。
	// 空文字列のメッセージもキーごと出力するためポインタで持つ。
	Error *string `json:"error,omitempty"`
}

// Response は result オブジェクトのみを持つレスポンスボディ。
// エラーレスポンスで使用する。
type Response struct {
	Result Result `json:"result"`
}

// Success は説明文付きの成功結果を返す。
func Success(description string) Result {
	return Result{Code: CodeSuccess, Description: description}
}

// SuccessWithRemarks は補足メッセージ付きの成功結果を返す。
func SuccessWithRemarks(remarks ...string) Result {
	return Result{Code: CodeSuccess, Remarks: remarks}
}

// Failure は説明文付きの失敗結果を返す。
func Failure(description string) Result {
	return Result{Code: CodeFailure, Description: description}
}

// FailureResponse は失敗結果のみを持つレスポンスボディを返す。
func FailureResponse(description string) Response {
	return Response{Result: Failure(description)}
}

// ErrorResponse は例外メッセージ付きの失敗レスポンスボディを返す。
func ErrorResponse(description, errMsg string) Response {
	r := Failure(description)
	r.Error = &errMsg
	return Response{Result: r}
}

// ErrorMessage は例外メッセージを返す。設定されていなければ空文字列。
func (r Result) ErrorMessage() string {
	if r.Error == nil {
		return ""
	}
	return *r.Error
}

// IsSuccess は結果コードが成功を表すかどうかを返す。
func (r Result) IsSuccess() bool {
	return r.Code == CodeSuccess
}
