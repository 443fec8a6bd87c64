package models

import "encoding/json"

// Response types carried in the "type" field of every /chat reply.
const (
	TypeDAX       = "dax"
	TypeSQLResult = "sql_result"
	TypeError     = "error"
	TypeText      = "text"
)

// Route is the handling strategy chosen for a prompt.
type Route string

const (
	RouteDAX       Route = "dax"
	RouteDataQuery Route = "data_query"
	RouteGeneral   Route = "general"
)

type ChatRequest struct {
	Prompt string `json:"prompt" binding:"required" example:"list all negative sentiment news"`
}

// QueryResult is the outcome of running one statement against the warehouse.
// It is either a sql_result (Columns + Data) or an error (Message).
type QueryResult struct {
	Type    string           `json:"type"`
	Columns []string         `json:"columns,omitempty"`
	Data    []map[string]any `json:"data,omitempty"`
	Message string           `json:"message,omitempty"`

	SQL string `json:"-"` // statement that was executed
}

// ChatResponse is the body returned by POST /chat.
//
//	{type: dax, response}
//	{type: sql_result, columns, data}
//	{type: error, message}
//	{type: text, response}
type ChatResponse struct {
	Type     string           `json:"type"`
	Response string           `json:"response,omitempty"`
	Columns  []string         `json:"columns,omitempty"`
	Data     []map[string]any `json:"data,omitempty"`
	Message  string           `json:"message,omitempty"`

	Route Route  `json:"-"`
	SQL   string `json:"-"`
}

// FromQueryResult lifts a data-route result into a chat response unchanged.
func FromQueryResult(r QueryResult) ChatResponse {
	return ChatResponse{
		Type:    r.Type,
		Columns: r.Columns,
		Data:    r.Data,
		Message: r.Message,
		SQL:     r.SQL,
	}
}

// MarshalJSON emits only the fields belonging to the response type, so an
// empty result set still carries "columns" and "data".
func (r ChatResponse) MarshalJSON() ([]byte, error) {
	switch r.Type {
	case TypeSQLResult:
		columns, data := r.Columns, r.Data
		if columns == nil {
			columns = []string{}
		}
		if data == nil {
			data = []map[string]any{}
		}
		return json.Marshal(struct {
			Type    string           `json:"type"`
			Columns []string         `json:"columns"`
			Data    []map[string]any `json:"data"`
		}{r.Type, columns, data})
	case TypeError:
		return json.Marshal(struct {
			Type    string `json:"type"`
			Message string `json:"message"`
		}{r.Type, r.Message})
	default:
		return json.Marshal(struct {
			Type     string `json:"type"`
			Response string `json:"response"`
		}{r.Type, r.Response})
	}
}

type ErrorResponse struct {
	Detail string `json:"detail"`
}

// ChatHistory is one stored /chat exchange.
type ChatHistory struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Prompt    string `json:"prompt"`
	Route     string `json:"route"`
	Type      string `json:"type"`
	SQL       string `json:"sql,omitempty"`
	Response  string `json:"response,omitempty"`
	RowCount  int    `json:"row_count,omitempty"`
	Timestamp string `json:"timestamp"`
}

type HistoryResponse struct {
	Items []ChatHistory `json:"items"`
}
