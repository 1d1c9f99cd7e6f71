package errors

// ErrorCode phân loại lỗi trả về cho client.
type ErrorCode int

const (
	ErrorCode_UNKNOWN ErrorCode = iota
	ErrorCode_INTERNAL
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_INVALID_PAYLOAD
	ErrorCode_CONFLICT
	ErrorCode_VALIDATION_FAILED

	ErrorCode_MEETING_NOT_FOUND
	ErrorCode_PARTICIPANT_NOT_FOUND
	ErrorCode_NOT_INVITED
	ErrorCode_SESSION_NOT_FOUND
	ErrorCode_SESSION_CLOSED

	ErrorCode_INTEGRATION_RECORD_API_FAILED
	ErrorCode_INTEGRATION_CACHE_FAILED

	ErrorCode_DB_CONNECTION_FAILED
	ErrorCode_DB_QUERY_FAILED
	ErrorCode_DB_TRANSACTION_FAILED
)

var codeNames = map[ErrorCode]string{
	ErrorCode_UNKNOWN:                       "UNKNOWN",
	ErrorCode_INTERNAL:                      "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:              "INVALID_ARGUMENT",
	ErrorCode_INVALID_PAYLOAD:               "INVALID_PAYLOAD",
	ErrorCode_CONFLICT:                      "CONFLICT",
	ErrorCode_VALIDATION_FAILED:             "VALIDATION_FAILED",
	ErrorCode_MEETING_NOT_FOUND:             "MEETING_NOT_FOUND",
	ErrorCode_PARTICIPANT_NOT_FOUND:         "PARTICIPANT_NOT_FOUND",
	ErrorCode_NOT_INVITED:                   "NOT_INVITED",
	ErrorCode_SESSION_NOT_FOUND:             "SESSION_NOT_FOUND",
	ErrorCode_SESSION_CLOSED:                "SESSION_CLOSED",
	ErrorCode_INTEGRATION_RECORD_API_FAILED: "INTEGRATION_RECORD_API_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:      "INTEGRATION_CACHE_FAILED",
	ErrorCode_DB_CONNECTION_FAILED:          "DB_CONNECTION_FAILED",
	ErrorCode_DB_QUERY_FAILED:               "DB_QUERY_FAILED",
	ErrorCode_DB_TRANSACTION_FAILED:         "DB_TRANSACTION_FAILED",
}

func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return codeNames[ErrorCode_UNKNOWN]
}
