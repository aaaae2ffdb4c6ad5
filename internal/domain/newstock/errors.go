package newstock

import (
	"errors"
	"fmt"
)

// SchemaReason 標示上游表格結構不符預期的原因。
type SchemaReason string

const (
	ReasonMissingDateColumn     SchemaReason = "missing_date_column"
	ReasonDateParseFailed       SchemaReason = "date_parse_failed"
	ReasonMissingIdentityColumn SchemaReason = "missing_identity_column"
)

// SchemaError 表示上游表格缺少必要欄位或欄位無法解讀。
type SchemaError struct {
	Feed   FeedKind
	Reason SchemaReason
	Detail string
}

func (e *SchemaError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("schema error (%s/%s)", e.Feed, e.Reason)
	}
	return fmt.Sprintf("schema error (%s/%s): %s", e.Feed, e.Reason, e.Detail)
}

// IsSchemaError 檢查錯誤是否為表格結構錯誤。
func IsSchemaError(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}

// IncompleteDataError 表示篩選後的結果集缺少必填值，整批資料不可採用。
type IncompleteDataError struct {
	Feed  FeedKind
	Field string
}

func (e *IncompleteDataError) Error() string {
	return fmt.Sprintf("incomplete data (%s): field %q has empty values", e.Feed, e.Field)
}

// IsIncompleteDataError 檢查錯誤是否為資料不完整錯誤。
func IsIncompleteDataError(err error) bool {
	var ie *IncompleteDataError
	return errors.As(err, &ie)
}
