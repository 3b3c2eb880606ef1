package tablestore

import (
	"context"
	"encoding/json"
	"fmt"
)

// Condition is a single where-clause on a table field.
type Condition struct {
	FieldName string        `json:"FieldName"`
	Operator  string        `json:"Operator"`
	Values    []interface{} `json:"Values"`
}

// ConditionGroup ORs a set of conditions together; groups combine with the
// top-level where clauses using AND.
type ConditionGroup struct {
	Operator   string      `json:"operator"`
	Conditions []Condition `json:"conditions"`
}

// OrderBy sorts the fetched records server-side.
type OrderBy struct {
	FieldName string `json:"fieldName"`
	SortType  string `json:"sorttype"`
}

// FetchParams is the query payload for FetchRecords.
type FetchParams struct {
	Fields      []string         `json:"fields,omitempty"`
	Where       []Condition      `json:"where,omitempty"`
	WhereGroups []ConditionGroup `json:"whereGroups,omitempty"`
	OrderBy     []OrderBy        `json:"orderBy,omitempty"`
}

// FetchRecords queries a table and returns the raw matching records.
func (c *Client) FetchRecords(ctx context.Context, table string, params FetchParams) ([]map[string]interface{}, error) {
	resp, err := c.post(ctx, fmt.Sprintf("/tables/%s/records/query", table), params)
	if err != nil {
		return nil, err
	}

	var records []map[string]interface{}
	if len(resp.Data) > 0 {
		if err := json.Unmarshal(resp.Data, &records); err != nil {
			return nil, fmt.Errorf("failed to decode table records: %v", err)
		}
	}
	return records, nil
}

// GetRecordByID fetches a single record, returning nil when the table has
// no row with that ID.
func (c *Client) GetRecordByID(ctx context.Context, table string, id int) (map[string]interface{}, error) {
	resp, err := c.post(ctx, fmt.Sprintf("/tables/%s/records/%d", table, id), struct{}{})
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 || string(resp.Data) == "null" {
		return nil, nil
	}

	var record map[string]interface{}
	if err := json.Unmarshal(resp.Data, &record); err != nil {
		return nil, fmt.Errorf("failed to decode table record: %v", err)
	}
	return record, nil
}
