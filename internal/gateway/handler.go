package gateway

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nao1215/irepo-gateway-mock/pkg/result"
)

const (
	msgGetValue          = "データ取得成功"
	msgGetFields         = "商品フィールド取得成功"
	msgGetParams         = "パラメータ取得成功"
	msgGetRecords        = "レコード取得成功"
	msgRecordCountFormat = "%d件のレコードを取得"
	msgNotFoundFormat    = "エンドポイントが見つかりません: %s"
)

// getValueResponse は getValue のレスポンス。
type getValueResponse struct {
	Result result.Result `json:"result"`
	Apply  []Directive   `json:"apply"`
}

// fieldsResponse は master/fields のレスポンス。
type fieldsResponse struct {
	Result result.Result     `json:"result"`
	Fields []FieldDescriptor `json:"fields"`
}

// paramsResponse は master/params のレスポンス。
type paramsResponse struct {
	Result result.Result     `json:"result"`
	Params []ParamDescriptor `json:"params"`
}

// recordsResponse は master/getrecords のレスポンス。
type recordsResponse struct {
	Result        result.Result     `json:"result"`
	Fields        []FieldDescriptor `json:"fields"`
	DefaultRecord Record            `json:"defaultRecord"`
	Records       []Record          `json:"records"`
}

// handleGetValue は固定の指示列を返すハンドラを返す。
// クエリとボディはログに出力するだけで結果には影響しない。
func (s *Server) handleGetValue() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if s.logger.Enabled(ctx, slog.LevelDebug) {
			body, err := c.GetRawData()
			if err != nil {
				s.logger.WarnContext(ctx, "リクエストボディの読み込みに失敗しました", slog.Any("error", err))
			}
			s.logger.DebugContext(ctx, "getValue",
				slog.Any("query", c.Request.URL.Query()),
				slog.String("body", string(body)),
			)
		}

		c.JSON(http.StatusOK, getValueResponse{
			Result: result.Success(msgGetValue),
			Apply:  s.catalog.Apply,
		})
	}
}

// handleGetFields はフィールド定義を返すハンドラを返す。
func (s *Server) handleGetFields() gin.HandlerFunc {
	return func(c *gin.Context) {
		s.logger.DebugContext(c.Request.Context(), "getFields", slog.Any("query", c.Request.URL.Query()))

		c.JSON(http.StatusOK, fieldsResponse{
			Result: result.SuccessWithRemarks(msgGetFields),
			Fields: s.catalog.Fields,
		})
	}
}

// handleGetParams は検索パラメータ定義を返すハンドラを返す。
func (s *Server) handleGetParams() gin.HandlerFunc {
	return func(c *gin.Context) {
		s.logger.DebugContext(c.Request.Context(), "getParams", slog.Any("query", c.Request.URL.Query()))

		c.JSON(http.StatusOK, paramsResponse{
			Result: result.SuccessWithRemarks(msgGetParams),
			Params: s.catalog.Params,
		})
	}
}

// handleGetRecords は product_id で絞り込んだ商品レコードを返すハンドラを返す。
// 検索条件が解析できない場合は絞り込まずに全件を返す。
func (s *Server) handleGetRecords() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		data, err := readDataField(c.Request, c.ContentType())
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		var productID string
		if data != nil {
			productID, err = parseProductID(data)
			if err != nil {
				s.logger.WarnContext(ctx, "検索条件を解析できないため全件を返します",
					slog.String("data", string(data)),
					slog.Any("error", err),
				)
			}
		}

		products := FilterProducts(s.catalog.Products, productID)
		records := make([]Record, 0, len(products))
		for _, p := range products {
			records = append(records, s.catalog.Shape(p))
		}

		s.logger.DebugContext(ctx, "getRecords",
			slog.String("content_type", c.ContentType()),
			slog.String("data", string(data)),
			slog.String("product_id", productID),
			slog.Int("count", len(records)),
		)

		c.JSON(http.StatusOK, recordsResponse{
			Result:        result.SuccessWithRemarks(msgGetRecords, fmt.Sprintf(msgRecordCountFormat, len(records))),
			Fields:        s.catalog.Fields,
			DefaultRecord: s.catalog.DefaultRecord(),
			Records:       records,
		})
	}
}

// handleNotFound は未定義のエンドポイントに対して404を返すハンドラを返す。
func (s *Server) handleNotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound,
			result.FailureResponse(fmt.Sprintf(msgNotFoundFormat, requestPath(c.Request))))
	}
}
